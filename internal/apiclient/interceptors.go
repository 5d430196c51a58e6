package apiclient

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/middleware/requestid"
	"github.com/noah-isme/unigov-client/pkg/session"
)

// AuthInterceptor attaches `Authorization: Bearer <token>` from the persisted
// `user` record. A missing store, a missing or unparsable record and a record
// without a token all leave the request unauthenticated; it never fails.
func AuthInterceptor(store session.Storage) RequestInterceptor {
	return func(req *http.Request) error {
		if store == nil {
			return nil
		}
		if token := session.Token(req.Context(), store); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// RequestIDInterceptor tags requests with an X-Request-ID unless one is set.
func RequestIDInterceptor() RequestInterceptor {
	return func(req *http.Request) error {
		if req.Header.Get(requestid.Header) == "" {
			req.Header.Set(requestid.Header, requestid.New())
		}
		return nil
	}
}

// LogErrorInterceptor logs every failed call with the values carried by the error.
func LogErrorInterceptor(logger *zap.Logger) ErrorInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(_ context.Context, err *appErrors.RequestError) {
		fields := []zap.Field{
			zap.String("method", err.Method),
			zap.String("url", err.URL),
			zap.Int("status", err.Status),
			zap.ByteString("body", err.Body),
			zap.String("message", err.Message),
		}
		if err.Err != nil {
			fields = append(fields, zap.Error(err.Err))
		}
		logger.Error("api request failed", fields...)
	}
}
