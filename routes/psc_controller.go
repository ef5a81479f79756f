package routes

import (
	"net/http"

	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/people"
)

type pscData struct {
	Count                   int
	Individuals             []people.PSCView
	RelevantLegalEntities   []people.CorporateView
	OtherRegistrablePersons []people.CorporateView
}

// ActivePSCs never confirms the PSC section by itself: a yes only leads on
// to the PSC statement, whose answer settles the section.
var ActivePSCs = Task[pscData]{
	Section:       model.SectionPSC,
	Page:          "active-psc-details",
	Title:         "Check the people with significant control (PSC)",
	WrongPath:     PathWrongPSCs,
	MissingAnswer: "Select yes if the PSC details are correct",
	YesStatus:     model.StatusNotConfirmed,
	YesPath: func(ref model.SubmissionRef) string {
		return pscStatementUrl(ref, true)
	},

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) (d pscData, err error) {
		pscs, err := app.API.GetPSCs(r.Context(), ref.TransactionID, ref.SubmissionID)
		if err != nil {
			return d, err
		}
		if err = people.CheckPSCCount(len(pscs), app.MaxPSCs(app.Now())); err != nil {
			return d, err
		}
		b, err := people.ClassifyPSCs(pscs)
		if err != nil {
			return d, err
		}

		d.Count = len(pscs)
		if d.Individuals, err = people.Individuals(b.Individuals, app.Lookup.NatureOfControl); err != nil {
			return d, err
		}
		if d.RelevantLegalEntities, err = people.Entities(b.RelevantLegalEntities, app.Lookup.NatureOfControl); err != nil {
			return d, err
		}
		d.OtherRegistrablePersons, err = people.Entities(b.OtherRegistrablePersons, app.Lookup.NatureOfControl)
		return d, err
	},

	Redirect: func(ref model.SubmissionRef, d pscData) string {
		if d.Count == 0 {
			return pscStatementUrl(ref, false)
		}
		return ""
	},
}

type pscStatementData struct {
	IsPsc     bool
	Statement string
}

var PSCStatement = Task[pscStatementData]{
	Section:       model.SectionPSC,
	Page:          "psc-statement",
	Title:         "Review the PSC statement",
	WrongPath:     PathWrongPSCStatement,
	MissingAnswer: "Select yes if the PSC statement is correct",

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) (d pscStatementData, err error) {
		if d.IsPsc, err = isPscParam(r); err != nil {
			return d, err
		}
		statements, err := app.API.GetPSCStatements(r.Context(), ref.CompanyNumber)
		if err != nil {
			return d, err
		}
		if len(statements) > 0 {
			d.Statement = app.Lookup.StatementDescription(statements[0].Statement)
		}
		return d, nil
	},

	Back: func(r *http.Request, ref model.SubmissionRef) string {
		if isPsc, _ := isPscParam(r); isPsc {
			return submissionUrl(ref, PathActivePSCs)
		}
		return taskListUrl(ref)
	},
}

func isPscParam(r *http.Request) (bool, error) {
	switch v := r.URL.Query().Get("isPsc"); v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, badParam("invalid isPsc parameter", v)
	}
}
