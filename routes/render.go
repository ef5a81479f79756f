package routes

import (
	"net/http"

	"github.com/ajg/form"
	"github.com/go-chi/chi/middleware"
	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/mbolis/confirmation-statement/session"
	"github.com/mbolis/confirmation-statement/validation"
	"github.com/mbolis/confirmation-statement/views"
	"github.com/pkg/errors"
)

func newPage(r *http.Request, title, back string, data any) views.Page {
	p := views.Page{Title: title, BackLink: back, Data: data}
	if s := session.FromContext(r.Context()); s != nil {
		p.UserEmail = s.UserEmail
		p.SignOut = Root + PathSignOut
	}
	return p
}

func renderPage(app app.App, w http.ResponseWriter, status int, name string, p views.Page) {
	if err := app.Views.Render(w, status, name, p); err != nil {
		httpx.LogInternalError(w, "views.render."+name, err)
	}
}

// fail logs err under code and serves the error page with the status the
// error maps to.
func fail(app app.App, w http.ResponseWriter, r *http.Request, code string, err error) {
	httpx.LogError(code, err)
	renderPage(app, w, httpx.StatusOf(err), "error", newPage(r, "Sorry, there is a problem with this service", "", nil))
}

// recoverer serves the error page for a handler that panicked. An aborted
// handler is re-raised so the server drops the connection.
func recoverer(app app.App) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				middleware.PrintPrettyStack(rvr)
				fail(app, w, r, "routes.panic", errors.Errorf("panic: %v", rvr))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func badParam(msg, value string) error {
	return httpx.NewBadRequest(msg, validation.Truncate(value, validation.MaxLoggedValue))
}

const radioField = "radioButton"

// radioAnswer reads the radio button posted as field. An empty answer is
// valid; an unknown one is a validation error.
func radioAnswer(r *http.Request, field string) (string, error) {
	f := map[string]string{}
	if err := decodeForm(r, &f); err != nil {
		return "", err
	}
	answer := f[field]
	if !validation.IsValidRadio(answer) {
		return "", badAnswer(answer)
	}
	return answer, nil
}

func badAnswer(answer string) error {
	return httpx.NewValidationError("invalid radio answer", validation.Truncate(answer, validation.MaxLoggedValue))
}

func decodeForm(r *http.Request, dst any) error {
	d := form.NewDecoder(r.Body)
	d.IgnoreUnknownKeys(true)
	if err := d.Decode(dst); err != nil {
		return httpx.NewValidationError("undecodable form: "+errors.Cause(err).Error(), "")
	}
	return nil
}
