package session

import (
	"net/http"

	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/pkg/errors"
)

// Middleware attaches the session state of the signed in user to the request
// context, creating it on first use. It must run after the token has been
// verified and its claims attached with WithClaims.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				httpx.LogStatus(w, http.StatusUnauthorized, log.WarnLevel, "session.claims")
				return
			}

			state, err := store.Load(r.Context(), claims.SessionID)
			switch {
			case errors.Is(err, ErrNotFound):
				state = &State{ID: claims.SessionID, UserEmail: claims.Email}
				if err := store.Save(r.Context(), state); err != nil {
					httpx.LogInternalError(w, "session.create", err)
					return
				}
				log.Debugf("session %s created", state.ID)
			case err != nil:
				httpx.LogInternalError(w, "session.load", err)
				return
			case state.UserEmail != claims.Email:
				state.UserEmail = claims.Email
				if err := store.Save(r.Context(), state); err != nil {
					httpx.LogInternalError(w, "session.update_email", err)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithState(r.Context(), state)))
		})
	}
}
