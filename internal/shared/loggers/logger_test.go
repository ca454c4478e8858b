package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONAtLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("info", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str(FieldRunID, "run-1").Msg("visible")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug line should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "run-1", entry[FieldRunID])
	assert.Contains(t, entry, "time")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New("loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCtx_ReturnsContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("debug", &buf)
	require.NoError(t, err)

	ctx := logger.WithContext(context.Background())
	Ctx(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}
