package api

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// NewLoggingMiddleware returns a Huma middleware that attaches a fresh
// LogData to each request and emits the aggregated entry once the
// operation completes, so every v1 operation logs the same single-entry
// shape the plain handlers get from LoggingWrapper.
func NewLoggingMiddleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.NewLogData(logger)
		endTimer := logData.AddTiming("duration")

		ctx = huma.WithValue(ctx, logging.LogDataKey, logData)
		next(ctx)
		endTimer()

		name := ctx.Operation().OperationID
		entry := logData.Log().WithField("status", ctx.Status())
		if ctx.Status() >= http.StatusInternalServerError {
			entry.Errorf("Handler.%v.Error", name)
			return
		}
		entry.Infof("Handler.%v.Complete", name)
	}
}

// tokenVerifier resolves a bearer token to an account id.
type tokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// NewAuthMiddleware returns a Huma middleware that enforces bearer auth
// on operations declaring a security requirement. The verified account id
// is placed in the request context for handlers.
func NewAuthMiddleware(api huma.API, tokens tokenVerifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		token, ok := strings.CutPrefix(ctx.Header("Authorization"), "Bearer ")
		if !ok || token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		accountID, err := tokens.VerifyToken(token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid bearer token")
			return
		}

		next(huma.WithValue(ctx, service.AccountIDKey, accountID))
	}
}
