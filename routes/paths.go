package routes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/validation"
)

const Root = "/confirmation-statement"

const (
	PathStart          = "/"
	PathCompanyNumber  = "/company-number"
	PathConfirmCompany = "/confirm-company"
	PathSignOut        = "/signout"
	PathStop           = "/company/{companyNumber}/stop/{reason}"

	submissionPattern = "/company/{companyNumber}/transaction/{transactionId}/submission/{submissionId}"
)

// Pages under a submission, relative to its URL.
const (
	PathTradingStatus           = "/trading-status"
	PathTaskList                = "/task-list"
	PathActiveOfficers          = "/active-officers"
	PathActivePSCs              = "/active-psc-details"
	PathPSCStatement            = "/psc-statement"
	PathShareholders            = "/shareholders"
	PathStatementOfCapital      = "/statement-of-capital"
	PathRegisteredOfficeAddress = "/registered-office-address"
	PathSIC                     = "/sic"
	PathRegisterLocations       = "/register-locations"
	PathRegisteredEmailAddress  = "/registered-email-address"
	PathProvideEmailAddress     = "/provide-email-address"
	PathCheckEmailAddress       = "/check-email-address"
	PathReview                  = "/review"
	PathPaymentCallback         = "/payment-callback"
	PathConfirmation            = "/confirmation"

	PathWrongOfficers           = "/wrong-officer-details"
	PathWrongPSCs               = "/wrong-psc-details"
	PathWrongPSCStatement       = "/wrong-psc-statement"
	PathWrongShareholders       = "/wrong-shareholders"
	PathWrongStatementOfCapital = "/wrong-statement-of-capital"
	PathWrongROA                = "/wrong-registered-office-address"
	PathWrongSIC                = "/wrong-sic"
	PathWrongRegisterLocations  = "/wrong-register-locations"
)

// Stop page reasons.
const (
	StopInvalidStatus     = "invalid-company-status"
	StopUseWebFiling      = "use-webfiling"
	StopFilingNotRequired = "no-filing-required"
	StopTooManyPSCs       = "too-many-pscs"
	StopOfficerCount      = "officer-count"
	StopNotTrading        = "not-trading"
)

func submissionUrl(ref model.SubmissionRef, page string) string {
	return fmt.Sprintf("%s/company/%s/transaction/%s/submission/%s%s", Root,
		url.PathEscape(ref.CompanyNumber), url.PathEscape(ref.TransactionID), url.PathEscape(ref.SubmissionID), page)
}

func taskListUrl(ref model.SubmissionRef) string {
	return submissionUrl(ref, PathTaskList)
}

func pscStatementUrl(ref model.SubmissionRef, isPsc bool) string {
	return fmt.Sprintf("%s?isPsc=%t", submissionUrl(ref, PathPSCStatement), isPsc)
}

func stopUrl(companyNumber, reason string) string {
	return fmt.Sprintf("%s/company/%s/stop/%s", Root, url.PathEscape(companyNumber), reason)
}

func confirmCompanyUrl(companyNumber string) string {
	return Root + PathConfirmCompany + "?companyNumber=" + url.QueryEscape(companyNumber)
}

type ctxKey int

const refKey ctxKey = iota

// withSubmission checks the submission URL parameters and attaches them to
// the request context.
func withSubmission(app app.App) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ref := model.SubmissionRef{
				CompanyNumber: chi.URLParam(r, "companyNumber"),
				TransactionID: chi.URLParam(r, "transactionId"),
				SubmissionID:  chi.URLParam(r, "submissionId"),
			}
			if !validation.IsValidCompanyNumber(ref.CompanyNumber) {
				fail(app, w, r, "request.company_number", badParam("invalid company number", ref.CompanyNumber))
				return
			}
			ctx := context.WithValue(r.Context(), refKey, ref)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func refFrom(r *http.Request) model.SubmissionRef {
	ref, _ := r.Context().Value(refKey).(model.SubmissionRef)
	return ref
}
