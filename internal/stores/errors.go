package stores

import "errors"

var (
	ErrArchiveNotFound      = errors.New("historical archive not found")
	ErrArchiveMalformed     = errors.New("historical archive malformed")
	ErrLiveStoreUnavailable = errors.New("live log store unavailable")
	ErrLiveQueryFailed      = errors.New("live log query failed")
)
