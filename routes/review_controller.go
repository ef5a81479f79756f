package routes

import (
	"net/http"

	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/session"
	"github.com/mbolis/confirmation-statement/validation"
)

const (
	lawfulPurposeAccepted = "accept"
	paymentPaid           = "paid"
)

type reviewForm struct {
	LawfulPurpose string `form:"lawfulActivityStatement"`
}

func Review(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		data, err := loadTaskList(r.Context(), app, ref)
		if err != nil {
			fail(app, w, r, "review.load", err)
			return
		}
		if !data.AllDone() {
			http.Redirect(w, r, taskListUrl(ref), http.StatusFound)
			return
		}

		if r.Method == http.MethodGet {
			renderPage(app, w, http.StatusOK, "review", newPage(r, "Submit the confirmation statement", taskListUrl(ref), data))
			return
		}

		var f reviewForm
		if err := decodeForm(r, &f); err != nil {
			fail(app, w, r, "review.form", err)
			return
		}
		if f.LawfulPurpose != lawfulPurposeAccepted {
			p := newPage(r, "Submit the confirmation statement", taskListUrl(ref), data)
			p.Error = "You need to accept the statement on the intended future activities of the company"
			renderPage(app, w, http.StatusOK, "review", p)
			return
		}

		if err := app.Sections.UpdateLawfulPurposeAcceptance(r.Context(), ref, true); err != nil {
			fail(app, w, r, "review.update_lawful_purpose", err)
			return
		}
		paymentUrl, err := app.API.CloseTransaction(r.Context(), ref.CompanyNumber, ref.TransactionID)
		if err != nil {
			fail(app, w, r, "review.close_transaction", err)
			return
		}
		if paymentUrl == "" {
			http.Redirect(w, r, submissionUrl(ref, PathConfirmation), http.StatusFound)
			return
		}

		journey, err := startPayment(app, r, ref, paymentUrl)
		if err != nil {
			fail(app, w, r, "review.start_payment", err)
			return
		}
		http.Redirect(w, r, journey, http.StatusFound)
	}
}

// startPayment opens a payment session for the closed transaction. The nonce
// saved in the session has to come back on the payment callback.
func startPayment(app app.App, r *http.Request, ref model.SubmissionRef, paymentUrl string) (string, error) {
	state := session.FromContext(r.Context())
	nonce, err := session.NewNonce()
	if err != nil {
		return "", err
	}
	state.PaymentNonce = nonce
	if err := app.Sessions.Save(r.Context(), state); err != nil {
		return "", err
	}

	payment, err := app.Payments.CreatePayment(r.Context(), model.PaymentRequest{
		RedirectURI: app.ServiceUrl + submissionUrl(ref, PathPaymentCallback),
		Reference:   "ConfirmationStatement_" + ref.TransactionID,
		Resource:    paymentUrl,
		State:       nonce,
	})
	if err != nil {
		return "", err
	}
	return payment.Links.Journey, nil
}

// PaymentCallback is where the payment service sends the user back. A state
// that does not match the session nonce is rejected.
func PaymentCallback(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		state := session.FromContext(r.Context())
		q := r.URL.Query()

		returned := q.Get("state")
		if state.PaymentNonce == "" || returned != state.PaymentNonce {
			fail(app, w, r, "payment_callback.state", httpx.NewBadRequest("payment state mismatch", validation.Truncate(returned, validation.MaxLoggedValue)))
			return
		}

		state.PaymentNonce = ""
		if err := app.Sessions.Save(r.Context(), state); err != nil {
			log.Warnf("payment_callback.session_save: %s", err)
		}

		if status := q.Get("status"); status != paymentPaid {
			log.Infof("payment for transaction %s ended with status %q", ref.TransactionID, validation.Truncate(status, validation.MaxLoggedValue))
			http.Redirect(w, r, submissionUrl(ref, PathReview), http.StatusFound)
			return
		}
		http.Redirect(w, r, submissionUrl(ref, PathConfirmation), http.StatusFound)
	}
}

type confirmationData struct {
	Company   companyData
	Reference string
}

func Confirmation(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := refFrom(r)
		profile, err := app.API.GetCompanyProfile(r.Context(), ref.CompanyNumber)
		if err != nil {
			fail(app, w, r, "confirmation.get_profile", err)
			return
		}
		company, err := newCompanyData(app, profile)
		if err != nil {
			fail(app, w, r, "confirmation.format", err)
			return
		}
		renderPage(app, w, http.StatusOK, "confirmation", newPage(r, "Confirmation statement submitted", "", confirmationData{
			Company:   company,
			Reference: ref.TransactionID,
		}))
	}
}
