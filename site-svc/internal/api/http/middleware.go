package httpapi

import (
	"context"
	"net/http"
	"time"

	"sabor-autentico/site-svc/internal/service"

	"github.com/rs/zerolog/hlog"
)

const SessionCookie = "sabor_session"

type ctxKey int

const sessionKey ctxKey = iota

// SessionMiddleware attaches the visitor's session to the request, creating
// one and setting the cookie when the request carries no live session.
func SessionMiddleware(sessions service.SessionRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = c.Value
			}

			session, created := sessions.GetOrCreate(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    session.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(r *http.Request) *service.Session {
	session, _ := r.Context().Value(sessionKey).(*service.Session)
	return session
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}
