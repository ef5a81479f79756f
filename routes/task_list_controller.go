package routes

import (
	"context"
	"net/http"

	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/format"
	"github.com/mbolis/confirmation-statement/model"
)

type taskRow struct {
	Name   string
	Url    string
	Status string
	Done   bool
}

type taskListData struct {
	Company      companyData
	MadeUpToDate string
	Tasks        []taskRow
	Completed    int
	ReviewUrl    string
}

// AllDone reports whether every task has been answered.
func (d taskListData) AllDone() bool {
	return d.Completed == len(d.Tasks)
}

var taskNames = map[model.Section]struct{ name, path string }{
	model.SectionSOC:               {"Statement of capital", PathStatementOfCapital},
	model.SectionSIC:               {"SIC codes", PathSIC},
	model.SectionROA:               {"Registered office address", PathRegisteredOfficeAddress},
	model.SectionActiveOfficer:     {"Officers", PathActiveOfficers},
	model.SectionPSC:               {"People with significant control (PSC)", PathActivePSCs},
	model.SectionShareholder:       {"Shareholders", PathShareholders},
	model.SectionRegisterLocations: {"Location of registers", PathRegisterLocations},
	model.SectionEmail:             {"Registered email address", PathRegisteredEmailAddress},
}

var statusLabels = map[model.Status]string{
	model.StatusConfirmed:     "CONFIRMED",
	model.StatusNotConfirmed:  "CHECK AGAIN",
	model.StatusRecentFiling:  "RECENTLY FILED",
	model.StatusInitialFiling: "PROVIDED",
}

func isDone(s model.Status) bool {
	return s == model.StatusConfirmed || s == model.StatusRecentFiling || s == model.StatusInitialFiling
}

// loadTaskList reads the submission and lists its sections in order. The
// email section is only listed once the email feature is enabled.
func loadTaskList(ctx context.Context, app app.App, ref model.SubmissionRef) (d taskListData, err error) {
	profile, err := app.API.GetCompanyProfile(ctx, ref.CompanyNumber)
	if err != nil {
		return d, err
	}
	if d.Company, err = newCompanyData(app, profile); err != nil {
		return d, err
	}
	submission, err := app.API.GetSubmission(ctx, ref.TransactionID, ref.SubmissionID)
	if err != nil {
		return d, err
	}

	madeUpTo := submission.Data.MadeUpToDate()
	if madeUpTo == "" {
		next, err := app.API.GetNextMadeUpToDate(ctx, ref.CompanyNumber)
		if err != nil {
			return d, err
		}
		madeUpTo = next.CurrentNextMadeUpToDate
		if next.NewNextMadeUpToDate != "" {
			madeUpTo = next.NewNextMadeUpToDate
		}
	}
	if d.MadeUpToDate, err = format.Date(madeUpTo); err != nil {
		return d, err
	}

	showEmail := app.EmailAddressFrom.Enabled(app.Now())
	for _, s := range model.Sections {
		if s == model.SectionEmail && !showEmail {
			continue
		}
		data, err := submission.Data.Section(s)
		if err != nil {
			return d, err
		}

		row := taskRow{Name: taskNames[s].name, Url: submissionUrl(ref, taskNames[s].path), Status: "NOT CHECKED"}
		if data != nil {
			row.Status = statusLabels[data.SectionStatus]
			row.Done = isDone(data.SectionStatus)
		}
		if row.Done {
			d.Completed++
		}
		d.Tasks = append(d.Tasks, row)
	}
	d.ReviewUrl = submissionUrl(ref, PathReview)
	return d, nil
}

func TaskList(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		data, err := loadTaskList(r.Context(), app, ref)
		if err != nil {
			fail(app, w, r, "task_list.load", err)
			return
		}
		renderPage(app, w, http.StatusOK, "task-list", newPage(r, "File a confirmation statement", submissionUrl(ref, PathTradingStatus), data))
	}
}

type wrongPage struct {
	Title   string
	Section string
}

// WrongDetails explains how to fix a section the user did not confirm.
func WrongDetails(app app.App, page wrongPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		renderPage(app, w, http.StatusOK, "wrong-details", newPage(r, page.Title, taskListUrl(ref), map[string]string{
			"Section":     page.Section,
			"TaskListUrl": taskListUrl(ref),
		}))
	}
}

var wrongPages = map[string]wrongPage{
	PathWrongOfficers:           {"Update the officers' details", "officers"},
	PathWrongPSCs:               {"Update the PSC details", "people with significant control"},
	PathWrongPSCStatement:       {"Update the PSC statement", "PSC statement"},
	PathWrongShareholders:       {"Update the shareholder details", "shareholders"},
	PathWrongStatementOfCapital: {"Update the statement of capital", "statement of capital"},
	PathWrongROA:                {"Update the registered office address", "registered office address"},
	PathWrongSIC:                {"Update the SIC codes", "SIC codes"},
	PathWrongRegisterLocations:  {"Update where the company records are kept", "register locations"},
}
