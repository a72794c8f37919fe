package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sessionContextKey string

const sessionKey = sessionContextKey("session")

// SessionCookieName identifies the anonymous storefront session. The cart
// lives server-side under this id; no account or login is involved.
const SessionCookieName = "audiophile_session"

// Session assigns a session id to first-time visitors and carries it in
// the request context for the cart handlers.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var sessionID string

		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey).(string); ok {
		return id
	}

	return ""
}

// ContextWithSession is used by tests to pin a session id.
func ContextWithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}
