package aggregators

import (
	"fmt"

	"dataportal-stats/internal/shared/svcerrors"
)

const (
	codeInvalidFilter        = "RPT_1000"
	codeArchiveUnreadable    = "RPT_9000"
	codeArchiveMalformed     = "RPT_9001"
	codeLiveStoreUnavailable = "RPT_9002"
	codeLiveQueryFailed      = "RPT_9003"
	codeGBIFSourceFailed     = "RPT_9004"

	msgInvalidFilter        = "invalid report filter"
	msgLiveStoreUnavailable = "live log store unavailable"
)

// errInvalidFilter returns an error when the year/quarter filter cannot be applied.
func errInvalidFilter(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFilter, fmt.Sprintf("%s: %s", msgInvalidFilter, msg), cause)
}

// errArchiveUnreadable returns an error when the historical archive cannot be opened or read.
func errArchiveUnreadable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeArchiveUnreadable, fmt.Errorf("archiveUnreadable: %w", cause))
}

// errArchiveMalformed returns an error when a historical archive row cannot be decoded.
func errArchiveMalformed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeArchiveMalformed, fmt.Errorf("archiveMalformed: %w", cause))
}

// errLiveStoreUnavailable returns an error when the live log database does not exist.
func errLiveStoreUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeLiveStoreUnavailable, msgLiveStoreUnavailable, cause)
}

func errLiveQueryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeLiveQueryFailed, fmt.Errorf("liveQueryFailed: %w", cause))
}

func errGBIFSourceFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeGBIFSourceFailed, fmt.Errorf("gbifSourceFailed: %w", cause))
}
