package routes

import (
	"net/http"

	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/capital"
	"github.com/mbolis/confirmation-statement/format"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/people"
)

type officersData struct {
	Directors            []people.OfficerView
	Secretaries          []people.OfficerView
	CorporateDirectors   []people.CorporateView
	CorporateSecretaries []people.CorporateView
}

var ActiveOfficers = Task[officersData]{
	Section:       model.SectionActiveOfficer,
	Page:          "active-officers",
	Title:         "Check the officers' details",
	WrongPath:     PathWrongOfficers,
	MissingAnswer: "Select yes if the director details are correct",
	Field:         "activeOfficers",

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) (d officersData, err error) {
		officers, err := app.API.GetActiveOfficers(r.Context(), ref.TransactionID, ref.SubmissionID)
		if err != nil {
			return d, err
		}
		b, err := people.ClassifyOfficers(officers)
		if err != nil {
			return d, err
		}
		if d.Directors, err = people.Directors(b.Directors); err != nil {
			return d, err
		}
		if d.Secretaries, err = people.Secretaries(b.Secretaries); err != nil {
			return d, err
		}
		if d.CorporateDirectors, err = people.CorporateOfficers(b.CorporateDirectors); err != nil {
			return d, err
		}
		d.CorporateSecretaries, err = people.CorporateOfficers(b.CorporateSecretaries)
		return d, err
	},
}

var Shareholders = Task[[]people.ShareholderView]{
	Section:       model.SectionShareholder,
	Page:          "shareholders",
	Title:         "Check the shareholders",
	WrongPath:     PathWrongShareholders,
	MissingAnswer: "Select yes if the shareholder details are correct",

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) ([]people.ShareholderView, error) {
		shareholders, err := app.API.GetShareholders(r.Context(), ref.TransactionID, ref.SubmissionID)
		if err != nil {
			return nil, err
		}
		return people.Shareholders(shareholders)
	},
}

type capitalData struct {
	Capital   capital.View
	Result    capital.Result
	statement *model.StatementOfCapital
}

var StatementOfCapital = Task[capitalData]{
	Section:       model.SectionSOC,
	Page:          "statement-of-capital",
	Title:         "Check the statement of capital",
	WrongPath:     PathWrongStatementOfCapital,
	MissingAnswer: "Select yes if the statement of capital is correct",

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) (d capitalData, err error) {
		soc, err := app.API.GetStatementOfCapital(r.Context(), ref.TransactionID, ref.SubmissionID)
		if err != nil {
			return d, err
		}
		shareholders, err := app.API.GetShareholders(r.Context(), ref.TransactionID, ref.SubmissionID)
		if err != nil {
			return d, err
		}
		if d.Result, err = capital.Reconcile(soc, shareholders); err != nil {
			return d, err
		}
		if d.Capital, err = capital.Display(*soc); err != nil {
			return d, err
		}
		d.statement = soc
		return d, nil
	},

	Confirm: func(d capitalData) (any, string) {
		switch {
		case !d.Result.SharesMatch:
			return nil, "The total number of shares does not match the shares held by the shareholders"
		case !d.Result.UnpaidKnown:
			return nil, "The total amount unpaid is not known for this statement of capital"
		}
		return d.statement, ""
	},
}

var RegisteredOfficeAddress = Task[model.Address]{
	Section:       model.SectionROA,
	Page:          "registered-office-address",
	Title:         "Check the registered office address",
	WrongPath:     PathWrongROA,
	MissingAnswer: "Select yes if the registered office address is correct",

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) (model.Address, error) {
		profile, err := app.API.GetCompanyProfile(r.Context(), ref.CompanyNumber)
		if err != nil {
			return model.Address{}, err
		}
		return format.FormatAddress(profile.RegisteredOfficeAddress), nil
	},
}

type sicCode struct {
	Code        string
	Description string
}

var SIC = Task[[]sicCode]{
	Section:       model.SectionSIC,
	Page:          "sic",
	Title:         "Check the SIC codes",
	WrongPath:     PathWrongSIC,
	MissingAnswer: "Select yes if the SIC codes are correct",

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) ([]sicCode, error) {
		profile, err := app.API.GetCompanyProfile(r.Context(), ref.CompanyNumber)
		if err != nil {
			return nil, err
		}
		codes := make([]sicCode, len(profile.SicCodes))
		for i, code := range profile.SicCodes {
			codes[i] = sicCode{Code: code, Description: app.Lookup.SicDescription(code)}
		}
		return codes, nil
	},
}

type registerLocation struct {
	Register string
	Address  string
}

var RegisterLocations = Task[[]registerLocation]{
	Section:       model.SectionRegisterLocations,
	Page:          "register-locations",
	Title:         "Check where the company records are kept",
	WrongPath:     PathWrongRegisterLocations,
	MissingAnswer: "Select yes if the register locations are correct",

	Load: func(r *http.Request, app app.App, ref model.SubmissionRef) ([]registerLocation, error) {
		locations, err := app.API.GetRegisterLocations(r.Context(), ref.TransactionID, ref.SubmissionID)
		if err != nil {
			return nil, err
		}
		out := make([]registerLocation, len(locations))
		for i, l := range locations {
			out[i].Register = app.Lookup.RegisterType(l.RegisterTypeDesc)
			if l.SailAddress != nil {
				out[i].Address = format.JoinAddress(*l.SailAddress)
			}
		}
		return out, nil
	},
}
