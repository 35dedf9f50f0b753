package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/weddingweek/internal/logging"
	"github.com/JonMunkholm/weddingweek/internal/session"
)

type ctxKey int

const (
	sessionKey ctxKey = iota
	sessionNewKey
)

// withSession attaches the visitor's session, creating one (and its cookie)
// when the request carries no known id.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(s.cfg.Session.CookieName); err == nil {
			id = c.Value
		}

		sess, created := s.store.GetOrCreate(id)
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     s.cfg.Session.CookieName,
				Value:    sess.ID,
				Path:     "/",
				MaxAge:   int(s.cfg.Session.IdleTimeout.Seconds()),
				HttpOnly: true,
				Secure:   s.cfg.Session.SecureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			logging.FromContext(r.Context()).Debug("session created", "session_id", sess.ID)
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		ctx = context.WithValue(ctx, sessionNewKey, created)
		ctx = logging.WithSessionID(ctx, sess.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionIsNew reports whether withSession created the session for this
// request, i.e. the client has not yet sent the cookie back.
func sessionIsNew(ctx context.Context) bool {
	created, _ := ctx.Value(sessionNewKey).(bool)
	return created
}

// sessionFrom returns the session attached by withSession.
func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey).(*session.Session)
	return sess
}
