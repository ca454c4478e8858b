package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewID generates a new ULID string. Used for report run ids and HTTP request ids.
var NewID = func() string {
	return ulid.Make().String()
}
