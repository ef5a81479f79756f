package routes

import (
	"net/http"
	"strings"

	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/session"
	"github.com/mbolis/confirmation-statement/validation"
)

type emailData struct {
	Email string
}

// RegisteredEmailAddress asks to confirm the address on record. A company
// without one goes straight to providing it.
var RegisteredEmailAddress = Task[emailData]{
	Section:       model.SectionEmail,
	Page:          "registered-email-address",
	Title:         "Check the registered email address",
	WrongPath:     PathProvideEmailAddress,
	MissingAnswer: "Select yes if the registered email address is correct",

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) (emailData, error) {
		email, err := app.API.GetRegisteredEmailAddress(r.Context(), ref.CompanyNumber)
		return emailData{Email: email}, err
	},

	Redirect: func(ref model.SubmissionRef, d emailData) string {
		if d.Email == "" {
			return submissionUrl(ref, PathProvideEmailAddress)
		}
		return ""
	},

	Confirm: func(d emailData) (any, string) {
		return d.Email, ""
	},
}

type emailForm struct {
	Email string `form:"registeredEmailAddress"`
}

func ProvideEmailAddress(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		state := session.FromContext(r.Context())
		back := taskListUrl(ref)

		if r.Method == http.MethodGet {
			renderPage(app, w, http.StatusOK, "provide-email-address",
				newPage(r, "Provide the registered email address", back, emailData{Email: state.EnteredEmailAddress}))
			return
		}

		var f emailForm
		if err := decodeForm(r, &f); err != nil {
			fail(app, w, r, "email.form", err)
			return
		}
		f.Email = strings.TrimSpace(f.Email)

		var msg string
		switch {
		case f.Email == "":
			msg = "Enter the registered email address"
		case !validation.IsValidEmail(f.Email):
			msg = "Enter an email address in the correct format, like name@example.com"
		}
		if msg != "" {
			p := newPage(r, "Provide the registered email address", back, emailData{Email: f.Email})
			p.Error = msg
			renderPage(app, w, http.StatusOK, "provide-email-address", p)
			return
		}

		state.EnteredEmailAddress = f.Email
		if err := app.Sessions.Save(r.Context(), state); err != nil {
			fail(app, w, r, "email.session_save", err)
			return
		}
		http.Redirect(w, r, submissionUrl(ref, PathCheckEmailAddress), http.StatusFound)
	}
}

// CheckEmailAddress shows the entered address back to the user. Posting
// stores it: as INITIAL_FILING when the company had no address on record.
func CheckEmailAddress(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		state := session.FromContext(r.Context())
		if state.EnteredEmailAddress == "" {
			http.Redirect(w, r, submissionUrl(ref, PathProvideEmailAddress), http.StatusFound)
			return
		}

		if r.Method == http.MethodGet {
			renderPage(app, w, http.StatusOK, "check-email-address",
				newPage(r, "Check the registered email address", submissionUrl(ref, PathProvideEmailAddress), emailData{Email: state.EnteredEmailAddress}))
			return
		}

		onRecord, err := app.API.GetRegisteredEmailAddress(r.Context(), ref.CompanyNumber)
		if err != nil {
			fail(app, w, r, "email.get_registered", err)
			return
		}
		status := model.StatusConfirmed
		if onRecord == "" {
			status = model.StatusInitialFiling
		}

		if err := app.Sections.UpdateSection(r.Context(), ref, model.SectionEmail, status, state.EnteredEmailAddress); err != nil {
			fail(app, w, r, "email.update_section", err)
			return
		}

		state.EnteredEmailAddress = ""
		if err := app.Sessions.Save(r.Context(), state); err != nil {
			log.Warnf("email.session_save: %s", err)
		}
		http.Redirect(w, r, taskListUrl(ref), http.StatusFound)
	}
}
