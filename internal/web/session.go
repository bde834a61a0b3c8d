package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// SessionKey is the session entry holding the visitor's identifier.
const SessionKey = "visitor"

type key struct{}

func GetVisitor(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(key{}).(string)
	return v, ok && v != ""
}

// SessionMiddleware makes the visitor identifier available through GetVisitor, handing out a new one to
// visitors without a session.
func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			session := handler.SessionManager.Load(r)

			visitor, err := session.GetString(SessionKey)
			if err != nil {
				log.Warn().Err(err).Msg("unreadable session, starting a new one")
				visitor = ""
			}

			if visitor == "" {
				visitor = handler.service.NewVisitor(ctx)
				if err = session.PutString(w, SessionKey, visitor); err != nil {
					log.Error().Err(err).Msg("failed to create session")
					http.Error(w, "failed to create session", http.StatusInternalServerError)
					return
				}
			}

			ctx = context.WithValue(ctx, key{}, visitor)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
