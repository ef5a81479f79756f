package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/go-chi/chi/middleware"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/mbolis/confirmation-statement/session"
)

// SignedIn checks the session token set by the account service. Without a
// valid one the user is sent to sign in, and returned here afterwards.
func SignedIn(secret, signInUrl, serviceUrl string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				redirectToSignIn(w, r, signInUrl, serviceUrl)
				return
			}

			claims, err := session.ParseToken(secret, token)
			if err != nil {
				log.Debugf("session token rejected: %s", err)
				redirectToSignIn(w, r, signInUrl, serviceUrl)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithClaims(r.Context(), claims)))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		return cookie.Value
	}
	// XXX header only used by smoke tests
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return auth[7:]
	}
	return ""
}

func redirectToSignIn(w http.ResponseWriter, r *http.Request, signInUrl, serviceUrl string) {
	returnTo := serviceUrl + r.URL.RequestURI()
	http.Redirect(w, r, signInUrl+"?return_to="+url.QueryEscape(returnTo), http.StatusFound)
}

// RequestLogger logs one line per request with its outcome.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		entry := log.WithFields(log.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     m.Code,
			"bytes":      m.Written,
			"duration":   m.Duration.String(),
		})
		switch {
		case m.Code >= http.StatusInternalServerError:
			entry.Error("request failed")
		case m.Code >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	})
}

// TrackPreviousPage remembers the last page viewed, so that a cancelled
// sign out can go back to it. It needs the session state in the context.
func TrackPreviousPage(store session.Store, skip ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := session.FromContext(r.Context())
			if r.Method == http.MethodGet && state != nil && !skipped(r.URL.Path, skip) {
				if page := r.URL.RequestURI(); page != state.PreviousPage {
					state.PreviousPage = page
					if err := store.Save(r.Context(), state); err != nil {
						log.Warnf("session.save_previous_page: %s", err)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func skipped(path string, skip []string) bool {
	for _, s := range skip {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}
