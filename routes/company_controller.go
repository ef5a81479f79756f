package routes

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/format"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/validation"
)

func Start(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(app, w, http.StatusOK, "start", newPage(r, "File a confirmation statement", "", map[string]string{
			"StartUrl": Root + PathCompanyNumber,
		}))
	}
}

// CompanyNumber hands over to the company lookup service, which comes back
// to the confirm company page with the number picked.
func CompanyNumber(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forward := app.ServiceUrl + Root + PathConfirmCompany + "?companyNumber={companyNumber}"
		http.Redirect(w, r, app.CompanyLookupUrl+"?forward="+url.QueryEscape(forward), http.StatusFound)
	}
}

type companyData struct {
	CompanyNumber  string
	CompanyName    string
	Status         string
	Type           string
	IncorporatedOn string
	Address        string
	NextMadeUpTo   string
	NextDue        string
}

func newCompanyData(app app.App, p *model.CompanyProfile) (d companyData, err error) {
	d = companyData{
		CompanyNumber: p.CompanyNumber,
		CompanyName:   p.CompanyName,
		Status:        app.Lookup.CompanyStatus(p.CompanyStatus),
		Type:          app.Lookup.CompanyType(p.Type),
		Address:       format.JoinAddress(p.RegisteredOfficeAddress),
	}
	if d.IncorporatedOn, err = format.Date(p.DateOfCreation); err != nil {
		return d, err
	}
	if d.NextMadeUpTo, err = format.Date(p.ConfirmationStatement.NextMadeUpTo); err != nil {
		return d, err
	}
	d.NextDue, err = format.Date(p.ConfirmationStatement.NextDue)
	return d, err
}

func companyNumberParam(r *http.Request) (string, error) {
	cn := r.URL.Query().Get("companyNumber")
	if !validation.IsValidCompanyNumber(cn) {
		return "", badParam("invalid company number", cn)
	}
	return cn, nil
}

func GetConfirmCompany(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cn, err := companyNumberParam(r)
		if err != nil {
			fail(app, w, r, "confirm_company.param", err)
			return
		}
		profile, err := app.API.GetCompanyProfile(r.Context(), cn)
		if err != nil {
			fail(app, w, r, "confirm_company.get_profile", err)
			return
		}
		data, err := newCompanyData(app, profile)
		if err != nil {
			fail(app, w, r, "confirm_company.format", err)
			return
		}
		renderPage(app, w, http.StatusOK, "confirm-company", newPage(r, "Confirm this is the correct company", Root+PathCompanyNumber, data))
	}
}

var stopReasons = map[string]string{
	model.EligibilityInvalidStatus:     StopInvalidStatus,
	model.EligibilityUseWebFiling:      StopUseWebFiling,
	model.EligibilityFilingNotRequired: StopFilingNotRequired,
	model.EligibilityTooManyPSCs:       StopTooManyPSCs,
	model.EligibilityOfficerCount:      StopOfficerCount,
}

// PostConfirmCompany checks the company can use the service, then opens a
// transaction and a submission in it.
func PostConfirmCompany(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cn, err := companyNumberParam(r)
		if err != nil {
			fail(app, w, r, "confirm_company.param", err)
			return
		}

		eligibility, err := app.API.GetEligibility(r.Context(), cn)
		if err != nil {
			fail(app, w, r, "confirm_company.eligibility", err)
			return
		}
		if code := eligibility.EligibilityStatusCode; code != model.EligibilityValid {
			reason, ok := stopReasons[code]
			if !ok {
				reason = StopUseWebFiling
			}
			log.Infof("company %s not eligible: %s", cn, code)
			http.Redirect(w, r, stopUrl(cn, reason), http.StatusFound)
			return
		}

		tx, err := app.API.CreateTransaction(r.Context(), cn)
		if err != nil {
			fail(app, w, r, "confirm_company.create_transaction", err)
			return
		}
		submission, err := app.API.CreateSubmission(r.Context(), tx.ID)
		if err != nil {
			fail(app, w, r, "confirm_company.create_submission", err)
			return
		}

		ref := model.SubmissionRef{CompanyNumber: cn, TransactionID: tx.ID, SubmissionID: submission.ID}
		http.Redirect(w, r, submissionUrl(ref, PathTradingStatus), http.StatusFound)
	}
}

type stopData struct {
	Reason  string
	Company companyData
}

var stopTitles = map[string]string{
	StopInvalidStatus:     "You cannot use this service",
	StopUseWebFiling:      "You need to use WebFiling",
	StopFilingNotRequired: "A confirmation statement is not required",
	StopTooManyPSCs:       "You cannot use this service",
	StopOfficerCount:      "You cannot use this service",
	StopNotTrading:        "You cannot use this service",
}

func Stop(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cn := chi.URLParam(r, "companyNumber")
		reason := chi.URLParam(r, "reason")
		title, ok := stopTitles[reason]
		if !ok {
			fail(app, w, r, "stop.reason", badParam("unknown stop reason", reason))
			return
		}
		if !validation.IsValidCompanyNumber(cn) {
			fail(app, w, r, "stop.company_number", badParam("invalid company number", cn))
			return
		}

		profile, err := app.API.GetCompanyProfile(r.Context(), cn)
		if err != nil {
			fail(app, w, r, "stop.get_profile", err)
			return
		}
		company, err := newCompanyData(app, profile)
		if err != nil {
			fail(app, w, r, "stop.format", err)
			return
		}
		renderPage(app, w, http.StatusOK, "stop", newPage(r, title, confirmCompanyUrl(cn), stopData{Reason: reason, Company: company}))
	}
}

func GetTradingStatus(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showTradingStatus(app, w, r, "")
	}
}

func showTradingStatus(app app.App, w http.ResponseWriter, r *http.Request, msg string) {
	ref := refFrom(r)
	p := newPage(r, "Check the trading status of shares", confirmCompanyUrl(ref.CompanyNumber), nil)
	p.Error = msg
	renderPage(app, w, http.StatusOK, "trading-status", p)
}

// PostTradingStatus only offers yes or no: a company whose shares were
// traded on a market cannot file here.
func PostTradingStatus(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		answer, err := radioAnswer(r, radioField)
		if err != nil {
			fail(app, w, r, "trading_status.radio", err)
			return
		}

		var next string
		switch answer {
		case "":
			showTradingStatus(app, w, r, "Select yes if no shares have been traded on a public market")
			return
		case validation.RadioYes:
			next = taskListUrl(ref)
		case validation.RadioNo:
			next = stopUrl(ref.CompanyNumber, StopNotTrading)
		default:
			fail(app, w, r, "trading_status.radio", badAnswer(answer))
			return
		}

		if err := app.Sections.UpdateTradingStatus(r.Context(), ref, answer == validation.RadioYes); err != nil {
			fail(app, w, r, "trading_status.update", err)
			return
		}
		http.Redirect(w, r, next, http.StatusFound)
	}
}
