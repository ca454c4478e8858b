package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dataportal-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_SetServiceError_And_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	svcErr := svcerrors.NewInvalidArgumentError("RPT_1000", "invalid report filter", nil)
	appWriter.SetServiceError(svcErr)
	assert.Same(t, svcErr, appWriter.svcError)
	assert.Equal(t, "RPT_1000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_WrapsResponseWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusServiceUnavailable)
	_, _ = appWriter.Write([]byte("unavailable"))

	assert.Equal(t, http.StatusServiceUnavailable, appWriter.Status())
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "unavailable", rr.Body.String())
}

func TestResponseStatus(t *testing.T) {
	t.Parallel()

	t.Run("plain writer defaults to 200", func(t *testing.T) {
		status, code := responseStatus(httptest.NewRecorder())
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "", code)
	})

	t.Run("app writer before WriteHeader defaults to 200", func(t *testing.T) {
		status, _ := responseStatus(newAppResponseWriter(httptest.NewRecorder(), 1))
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("app writer reports status and code", func(t *testing.T) {
		appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
		appWriter.SetServiceError(svcerrors.NewInternalError("RPT_9003", nil))
		appWriter.WriteHeader(http.StatusInternalServerError)

		status, code := responseStatus(appWriter)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "RPT_9003", code)
	})
}
