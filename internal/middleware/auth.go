package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/config"
)

type CtxKey int

const (
	CtxPlayerClaims CtxKey = iota
)

// PlayerClaims returns the claims put into the request context by [Auth].
func PlayerClaims(r *http.Request) (*config.PlayerClaims, bool) {
	claims, ok := r.Context().Value(CtxPlayerClaims).(*config.PlayerClaims)
	return claims, ok
}

// Auth attaches the player claims of a valid auth cookie pair to the request
// context. Requests with missing or invalid cookies pass through anonymously
// and get their stale cookies cleared.
func Auth(log logrus.FieldLogger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParsePlayerClaims(r)
			if err != nil {
				if _, cookieErr := r.Cookie("auth"); cookieErr == nil {
					log.WithError(err).Debug("invalid auth cookies")
					cookies.Clear(w)
				}
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxPlayerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
