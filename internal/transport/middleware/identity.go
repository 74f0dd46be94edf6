package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type ownerProvisioner interface {
	EnsureOwner(ctx context.Context, ownerID uuid.UUID) error
}

// IdentityConfig controls how a request's owner is resolved.
type IdentityConfig struct {
	// Validator checks bearer tokens. Nil disables token auth.
	Validator tokenValidator
	// Owners creates the owner row the first time an owner is seen.
	// Nil skips provisioning.
	Owners ownerProvisioner
	// DefaultOwner serves requests without a token when AllowAnonymous is set.
	DefaultOwner   uuid.UUID
	AllowAnonymous bool
}

type ownerSlotKey struct{}

func withOwnerSlot(ctx context.Context, slot *ownerSlot) context.Context {
	return context.WithValue(ctx, ownerSlotKey{}, slot)
}

// Identity puts the owner id into the request context. A bearer token wins
// when present and valid. Without one the default owner is used if anonymous
// access is allowed. Any other case is answered with 401.
//
// Each resolved owner is provisioned once per process through cfg.Owners,
// so a token minted for a new owner works on its first request.
func Identity(cfg IdentityConfig, logger *slog.Logger) Middleware {
	var provisioned sync.Map

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID, ok := resolveOwner(r, cfg, logger)
			if !ok {
				envelope.Fail(w, http.StatusUnauthorized, envelope.MsgUnauthorized)
				return
			}

			if cfg.Owners != nil {
				if _, seen := provisioned.Load(ownerID); !seen {
					if err := cfg.Owners.EnsureOwner(r.Context(), ownerID); err != nil {
						logger.ErrorContext(r.Context(), "provision owner",
							slog.String("owner_id", ownerID.String()),
							slog.String("error", err.Error()),
							slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
						)
						envelope.Fail(w, http.StatusInternalServerError, envelope.MsgInternal)
						return
					}
					provisioned.Store(ownerID, struct{}{})
				}
			}

			if slot, _ := r.Context().Value(ownerSlotKey{}).(*ownerSlot); slot != nil {
				slot.id = ownerID.String()
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithOwnerID(r.Context(), ownerID)))
		})
	}
}

func resolveOwner(r *http.Request, cfg IdentityConfig, logger *slog.Logger) (uuid.UUID, bool) {
	token := extractBearerToken(r)
	if token == "" {
		if cfg.AllowAnonymous && cfg.DefaultOwner != uuid.Nil {
			return cfg.DefaultOwner, true
		}
		return uuid.Nil, false
	}

	if cfg.Validator == nil {
		return uuid.Nil, false
	}
	ownerID, err := cfg.Validator.ValidateToken(r.Context(), token)
	if err != nil {
		logger.WarnContext(r.Context(), "bearer token rejected",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		return uuid.Nil, false
	}
	return ownerID, true
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
