package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged error and a generic 500 envelope.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", rec),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
					envelope.Fail(w, http.StatusInternalServerError, envelope.MsgInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
