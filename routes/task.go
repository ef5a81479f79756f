package routes

import (
	"net/http"

	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/validation"
)

// Task is a page asking the user to confirm one section of the
// submission. D is the data the page displays.
//
// A posted answer sets the section status and redirects:
//   - yes: CONFIRMED (or YesStatus), to the task list (or YesPath)
//   - no: NOT_CONFIRMED, to WrongPath
//   - recently_filed: RECENT_FILING, to the task list
//   - no answer: the page is shown again with MissingAnswer
//
// The answer is read from the form field Field, radioButton unless set.
type Task[D any] struct {
	Section       model.Section
	Page          string
	Title         string
	WrongPath     string
	MissingAnswer string
	Field         string

	Load func(r *http.Request, app app.App, ref model.SubmissionRef) (D, error)

	// Redirect, when it returns a URL, replaces the page.
	Redirect func(ref model.SubmissionRef, data D) string
	// Back defaults to the task list.
	Back func(r *http.Request, ref model.SubmissionRef) string

	YesStatus model.Status
	YesPath   func(ref model.SubmissionRef) string
	// Confirm runs on yes with freshly loaded data. It returns the payload
	// stored with the section, or a message to show the page again with.
	Confirm func(data D) (payload any, msg string)
}

func (t Task[D]) Get(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.show(app, w, r, "")
	}
}

func (t Task[D]) Post(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		field := radioField
		if t.Field != "" {
			field = t.Field
		}
		answer, err := radioAnswer(r, field)
		if err != nil {
			fail(app, w, r, "task.radio."+t.Page, err)
			return
		}

		var (
			status  model.Status
			next    string
			payload any
		)
		switch answer {
		case "":
			t.show(app, w, r, t.MissingAnswer)
			return

		case validation.RadioYes:
			status, next = model.StatusConfirmed, taskListUrl(ref)
			if t.YesStatus != "" {
				status = t.YesStatus
			}
			if t.YesPath != nil {
				next = t.YesPath(ref)
			}
			if t.Confirm != nil {
				data, err := t.Load(r, app, ref)
				if err != nil {
					fail(app, w, r, "task.load."+t.Page, err)
					return
				}
				var msg string
				if payload, msg = t.Confirm(data); msg != "" {
					t.renderPage(app, w, r, data, msg)
					return
				}
			}

		case validation.RadioNo:
			status, next = model.StatusNotConfirmed, submissionUrl(ref, t.WrongPath)

		case validation.RadioRecentlyFiled:
			status, next = model.StatusRecentFiling, taskListUrl(ref)
		}

		if err := app.Sections.UpdateSection(r.Context(), ref, t.Section, status, payload); err != nil {
			fail(app, w, r, "task.update_section."+t.Page, err)
			return
		}
		log.Debugf("%s answered %s for company %s", t.Page, answer, ref.CompanyNumber)
		http.Redirect(w, r, next, http.StatusFound)
	}
}

func (t Task[D]) show(app app.App, w http.ResponseWriter, r *http.Request, msg string) {
	ref := refFrom(r)
	data, err := t.Load(r, app, ref)
	if err != nil {
		fail(app, w, r, "task.load."+t.Page, err)
		return
	}
	if t.Redirect != nil {
		if to := t.Redirect(ref, data); to != "" {
			http.Redirect(w, r, to, http.StatusFound)
			return
		}
	}
	t.renderPage(app, w, r, data, msg)
}

func (t Task[D]) renderPage(app app.App, w http.ResponseWriter, r *http.Request, data D, msg string) {
	ref := refFrom(r)
	back := taskListUrl(ref)
	if t.Back != nil {
		back = t.Back(r, ref)
	}
	p := newPage(r, t.Title, back, data)
	p.Error = msg
	renderPage(app, w, http.StatusOK, t.Page, p)
}
