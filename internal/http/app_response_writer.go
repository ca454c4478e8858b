package http

import (
	"net/http"

	"dataportal-stats/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter is a wrapper around the http.ResponseWriter that stores app details for middleware access
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// responseStatus returns the status written so far, 200 when the handler
// never called WriteHeader.
func responseStatus(w http.ResponseWriter) (int, string) {
	status, errorCode := 0, ""
	if appWriter, ok := w.(*appResponseWriter); ok {
		status = appWriter.Status()
		errorCode = appWriter.ErrorCode()
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, errorCode
}
