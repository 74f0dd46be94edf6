package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// ownerSlot is filled by Identity so that Logger, which runs outside it,
// can still report the resolved owner.
type ownerSlot struct {
	id string
}

// Logger emits one "http.request" record per request. 5xx responses are
// logged at error level.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			slot := &ownerSlot{}

			next.ServeHTTP(sw, r.WithContext(withOwnerSlot(r.Context(), slot)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if slot.id != "" {
				attrs = append(attrs, slog.String("owner_id", slot.id))
			}

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}
