package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/session"
	"github.com/mbolis/confirmation-statement/validation"
)

func previousPage(r *http.Request) string {
	if s := session.FromContext(r.Context()); s != nil && s.PreviousPage != "" {
		return s.PreviousPage
	}
	return Root
}

func showSignOut(app app.App, w http.ResponseWriter, r *http.Request, msg string) {
	p := newPage(r, "Are you sure you want to sign out?", previousPage(r), nil)
	p.Error = msg
	renderPage(app, w, http.StatusOK, "signout", p)
}

func GetSignOut(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showSignOut(app, w, r, "")
	}
}

// PostSignOut ends the session on yes and goes back where the user came
// from on no.
func PostSignOut(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		answer, err := radioAnswer(r, radioField)
		if err != nil {
			fail(app, w, r, "signout.radio", err)
			return
		}

		switch answer {
		case "":
			showSignOut(app, w, r, "Select yes if you want to sign out")
		case validation.RadioYes:
			if s := session.FromContext(r.Context()); s != nil {
				if err := app.Sessions.Delete(r.Context(), s.ID); err != nil {
					fail(app, w, r, "signout.delete_session", err)
					return
				}
			}
			http.Redirect(w, r, app.SignOutUrl, http.StatusFound)
		case validation.RadioNo:
			http.Redirect(w, r, previousPage(r), http.StatusFound)
		default:
			fail(app, w, r, "signout.radio", badAnswer(answer))
		}
	}
}

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "OK"})
}
