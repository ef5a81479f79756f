package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/config"
	"github.com/mbolis/confirmation-statement/database"
	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/mbolis/confirmation-statement/lookup"
	"github.com/mbolis/confirmation-statement/metrics"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/routes"
	"github.com/mbolis/confirmation-statement/section"
	"github.com/mbolis/confirmation-statement/session"
	"github.com/mbolis/confirmation-statement/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret        = "test-secret"
	companyNumber = "12345678"
	base          = routes.Root + "/company/12345678/transaction/tx-1/submission/sub-1"
)

type fakeAPI struct {
	profile      model.CompanyProfile
	eligibility  string
	submission   *model.Submission
	puts         int
	officers     []model.Officer
	pscs         []model.PSC
	statements   []model.PSCStatement
	shareholders []model.Shareholder
	capital      *model.StatementOfCapital
	email        string
	paymentUrl   string
	panicWith    any
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		profile: model.CompanyProfile{
			CompanyNumber:  companyNumber,
			CompanyName:    "TEST LTD",
			Type:           "ltd",
			CompanyStatus:  "active",
			DateOfCreation: "2010-03-01",
			ConfirmationStatement: model.ConfirmationStatement{
				NextMadeUpTo: "2026-03-01",
				NextDue:      "2026-03-15",
			},
		},
		eligibility: model.EligibilityValid,
		submission: &model.Submission{ID: "sub-1", Data: model.SubmissionData{
			"confirmationStatementMadeUpToDate": []byte(`"2026-03-01"`),
		}},
	}
}

func (f *fakeAPI) GetSubmission(ctx context.Context, transactionID, submissionID string) (*model.Submission, error) {
	return f.submission, nil
}

func (f *fakeAPI) PutSubmission(ctx context.Context, transactionID, submissionID string, s *model.Submission) error {
	f.puts++
	f.submission = s
	return nil
}

func (f *fakeAPI) CreateSubmission(ctx context.Context, transactionID string) (*model.Submission, error) {
	return &model.Submission{ID: "sub-1"}, nil
}

func (f *fakeAPI) GetCompanyProfile(ctx context.Context, companyNumber string) (*model.CompanyProfile, error) {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	p := f.profile
	return &p, nil
}

func (f *fakeAPI) GetEligibility(ctx context.Context, companyNumber string) (*model.Eligibility, error) {
	return &model.Eligibility{EligibilityStatusCode: f.eligibility}, nil
}

func (f *fakeAPI) GetNextMadeUpToDate(ctx context.Context, companyNumber string) (*model.NextMadeUpToDate, error) {
	return &model.NextMadeUpToDate{CurrentNextMadeUpToDate: "2026-03-01"}, nil
}

func (f *fakeAPI) GetPSCStatements(ctx context.Context, companyNumber string) ([]model.PSCStatement, error) {
	return f.statements, nil
}

func (f *fakeAPI) GetRegisteredEmailAddress(ctx context.Context, companyNumber string) (string, error) {
	return f.email, nil
}

func (f *fakeAPI) GetActiveOfficers(ctx context.Context, transactionID, submissionID string) ([]model.Officer, error) {
	return f.officers, nil
}

func (f *fakeAPI) GetPSCs(ctx context.Context, transactionID, submissionID string) ([]model.PSC, error) {
	return f.pscs, nil
}

func (f *fakeAPI) GetShareholders(ctx context.Context, transactionID, submissionID string) ([]model.Shareholder, error) {
	return f.shareholders, nil
}

func (f *fakeAPI) GetRegisterLocations(ctx context.Context, transactionID, submissionID string) ([]model.RegisterLocation, error) {
	return nil, nil
}

func (f *fakeAPI) GetStatementOfCapital(ctx context.Context, transactionID, submissionID string) (*model.StatementOfCapital, error) {
	return f.capital, nil
}

func (f *fakeAPI) CreateTransaction(ctx context.Context, companyNumber string) (*model.Transaction, error) {
	return &model.Transaction{ID: "tx-1", CompanyNumber: companyNumber}, nil
}

func (f *fakeAPI) CloseTransaction(ctx context.Context, companyNumber, transactionID string) (string, error) {
	return f.paymentUrl, nil
}

type fakePayments struct {
	requests []model.PaymentRequest
}

func (f *fakePayments) CreatePayment(ctx context.Context, req model.PaymentRequest) (*model.Payment, error) {
	f.requests = append(f.requests, req)
	return &model.Payment{Links: model.PaymentLinks{Journey: "https://pay.example.com/journey"}}, nil
}

type fixture struct {
	api      *fakeAPI
	payments *fakePayments
	sessions *session.SQLStore
	app      app.App
	handler  http.Handler
	token    string
}

func newFixture(t *testing.T, configure ...func(*app.App)) *fixture {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "sessions.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	renderer, err := views.New()
	require.NoError(t, err)

	f := &fixture{api: newFakeAPI(), payments: &fakePayments{}, sessions: session.NewSQLStore(db)}
	m := metrics.New()
	f.app = app.App{
		Config: config.Config{
			SessionSecret:    secret,
			ServiceUrl:       "http://cs.example.com",
			SignInUrl:        "http://account.example.com/signin",
			SignOutUrl:       "http://account.example.com/signout",
			CompanyLookupUrl: "http://lookup.example.com",
			PSCLimit:         1,
			PSCLimitMultiple: 5,
			MetricsPath:      "/metrics",
		},
		API:      f.api,
		Payments: f.payments,
		Sections: section.NewUpdater(f.api, m.ObserveSection),
		Lookup:   lookup.Default(),
		Views:    renderer,
		Sessions: f.sessions,
		Metrics:  m,
		Now:      func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) },
	}
	for _, c := range configure {
		c(&f.app)
	}
	f.handler = routes.Wire(f.app)

	f.token, err = session.IssueToken(secret, "sid-1", "user@example.com", time.Hour)
	require.NoError(t, err)
	return f
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: f.token})
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func (f *fixture) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: f.token})
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func radio(answer string) url.Values {
	return url.Values{"radioButton": {answer}}
}

func officersAnswer(answer string) url.Values {
	return url.Values{"activeOfficers": {answer}}
}

func (f *fixture) sectionStatus(t *testing.T, s model.Section) model.Status {
	t.Helper()
	data, err := f.api.submission.Data.Section(s)
	require.NoError(t, err)
	require.NotNil(t, data, "section %s not written", s)
	return data.SectionStatus
}

func TestHealthcheck(t *testing.T) {
	f := newFixture(t)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.get(base + routes.PathTaskList)

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestStartIsPublic(t *testing.T) {
	f := newFixture(t)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, routes.Root, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), routes.Root+routes.PathCompanyNumber)
}

func TestUnsignedRequestGoesToSignIn(t *testing.T) {
	f := newFixture(t)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+routes.PathTaskList, nil))

	assert.Equal(t, http.StatusFound, w.Code)
	want := "http://account.example.com/signin?return_to=" + url.QueryEscape("http://cs.example.com"+base+routes.PathTaskList)
	assert.Equal(t, want, w.Header().Get("Location"))
}

func TestTamperedTokenGoesToSignIn(t *testing.T) {
	f := newFixture(t)
	f.token += "x"
	w := f.get(base + routes.PathTaskList)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "http://account.example.com/signin"))
}

func TestInvalidCompanyNumber(t *testing.T) {
	f := newFixture(t)
	w := f.get(routes.Root + "/company/bad!/transaction/tx-1/submission/sub-1" + routes.PathTaskList)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmCompany(t *testing.T) {
	f := newFixture(t)

	w := f.get(routes.Root + routes.PathConfirmCompany + "?companyNumber=" + companyNumber)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TEST LTD")
	assert.Contains(t, w.Body.String(), "1 March 2026")

	w = f.post(routes.Root+routes.PathConfirmCompany+"?companyNumber="+companyNumber, url.Values{})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, base+routes.PathTradingStatus, w.Header().Get("Location"))
}

func TestConfirmCompanyNotEligible(t *testing.T) {
	for code, reason := range map[string]string{
		model.EligibilityInvalidStatus:     routes.StopInvalidStatus,
		model.EligibilityFilingNotRequired: routes.StopFilingNotRequired,
		"SOMETHING_NEW":                    routes.StopUseWebFiling,
	} {
		t.Run(code, func(t *testing.T) {
			f := newFixture(t)
			f.api.eligibility = code

			w := f.post(routes.Root+routes.PathConfirmCompany+"?companyNumber="+companyNumber, url.Values{})
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, routes.Root+"/company/12345678/stop/"+reason, w.Header().Get("Location"))

			w = f.get(w.Header().Get("Location"))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestStopUnknownReason(t *testing.T) {
	f := newFixture(t)
	w := f.get(routes.Root + "/company/12345678/stop/whatever")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTradingStatus(t *testing.T) {
	f := newFixture(t)

	w := f.post(base+routes.PathTradingStatus, radio("yes"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, base+routes.PathTaskList, w.Header().Get("Location"))
	traded, err := f.api.submission.Data.TradingStatus()
	require.NoError(t, err)
	require.NotNil(t, traded)
	assert.True(t, *traded)

	w = f.post(base+routes.PathTradingStatus, radio("no"))
	assert.Equal(t, routes.Root+"/company/12345678/stop/"+routes.StopNotTrading, w.Header().Get("Location"))

	w = f.post(base+routes.PathTradingStatus, radio(""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Select yes if no shares have been traded")

	puts := f.api.puts
	w = f.post(base+routes.PathTradingStatus, radio("recently_filed"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, puts, f.api.puts)
}

func TestActiveOfficers(t *testing.T) {
	officers := []model.Officer{{
		Forename:          "john",
		Surname:           "smith",
		Role:              "Director",
		DateOfBirth:       &model.DateOfBirth{Month: 4, Year: 1970},
		DateOfAppointment: "2015-06-01",
	}}

	t.Run("get", func(t *testing.T) {
		f := newFixture(t)
		f.api.officers = officers
		w := f.get(base + routes.PathActiveOfficers)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "April 1970")
	})

	t.Run("no", func(t *testing.T) {
		f := newFixture(t)
		w := f.post(base+routes.PathActiveOfficers, officersAnswer("no"))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, base+routes.PathWrongOfficers, w.Header().Get("Location"))
		assert.Equal(t, model.StatusNotConfirmed, f.sectionStatus(t, model.SectionActiveOfficer))
	})

	t.Run("yes", func(t *testing.T) {
		f := newFixture(t)
		w := f.post(base+routes.PathActiveOfficers, officersAnswer("yes"))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, base+routes.PathTaskList, w.Header().Get("Location"))
		assert.Equal(t, model.StatusConfirmed, f.sectionStatus(t, model.SectionActiveOfficer))
	})

	t.Run("recently filed", func(t *testing.T) {
		f := newFixture(t)
		w := f.post(base+routes.PathActiveOfficers, officersAnswer("recently_filed"))
		assert.Equal(t, base+routes.PathTaskList, w.Header().Get("Location"))
		assert.Equal(t, model.StatusRecentFiling, f.sectionStatus(t, model.SectionActiveOfficer))
	})

	t.Run("missing answer", func(t *testing.T) {
		f := newFixture(t)
		f.api.officers = officers
		w := f.post(base+routes.PathActiveOfficers, url.Values{})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Select yes if the director details are correct")
		assert.Zero(t, f.api.puts)
	})

	t.Run("invalid answer", func(t *testing.T) {
		f := newFixture(t)
		w := f.post(base+routes.PathActiveOfficers, officersAnswer("maybe"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Zero(t, f.api.puts)
	})

	t.Run("generic field ignored", func(t *testing.T) {
		f := newFixture(t)
		w := f.post(base+routes.PathActiveOfficers, radio("yes"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, f.api.puts)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newFixture(t)
		f.api.officers = []model.Officer{{Surname: "smith", Role: "treasurer"}}
		w := f.get(base + routes.PathActiveOfficers)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func individualPSC() model.PSC {
	return model.PSC{
		AppointmentType: model.AppointmentIndividual,
		NameElements:    model.NameElements{Forename: "jane", Surname: "doe"},
		DateOfBirth:     &model.DateOfBirth{Month: 1, Year: 1980},
		NotifiedOn:      "2020-01-01",
		Address:         model.Address{Premises: "1", AddressLine1: "main street", Locality: "london", PostalCode: "sw1a 1aa"},
	}
}

func TestActivePSCs(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		f := newFixture(t)
		w := f.get(base + routes.PathActivePSCs)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, base+routes.PathPSCStatement+"?isPsc=false", w.Header().Get("Location"))
	})

	t.Run("one", func(t *testing.T) {
		f := newFixture(t)
		f.api.pscs = []model.PSC{individualPSC()}
		w := f.get(base + routes.PathActivePSCs)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "1, Main Street, London, SW1A 1AA")
	})

	t.Run("over the limit", func(t *testing.T) {
		f := newFixture(t)
		f.api.pscs = []model.PSC{individualPSC(), individualPSC()}
		w := f.get(base + routes.PathActivePSCs)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("multiple enabled", func(t *testing.T) {
		f := newFixture(t, func(a *app.App) {
			a.PSCMultipleFrom = config.EnabledFrom(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		})
		for i := 0; i < 5; i++ {
			f.api.pscs = append(f.api.pscs, individualPSC())
		}
		assert.Equal(t, http.StatusOK, f.get(base+routes.PathActivePSCs).Code)

		f.api.pscs = append(f.api.pscs, individualPSC())
		assert.Equal(t, http.StatusInternalServerError, f.get(base+routes.PathActivePSCs).Code)
	})

	t.Run("yes leads to the statement", func(t *testing.T) {
		f := newFixture(t)
		f.api.pscs = []model.PSC{individualPSC()}
		w := f.post(base+routes.PathActivePSCs, radio("yes"))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, base+routes.PathPSCStatement+"?isPsc=true", w.Header().Get("Location"))
		assert.Equal(t, model.StatusNotConfirmed, f.sectionStatus(t, model.SectionPSC))
	})
}

func TestPSCStatement(t *testing.T) {
	f := newFixture(t)
	f.api.statements = []model.PSCStatement{{Statement: "no-individual-or-entity-with-signficant-control"}}

	w := f.get(base + routes.PathPSCStatement + "?isPsc=true")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base+routes.PathActivePSCs)

	w = f.get(base + routes.PathPSCStatement + "?isPsc=false")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base+routes.PathTaskList)

	w = f.get(base + routes.PathPSCStatement + "?isPsc=maybe")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.post(base+routes.PathPSCStatement+"?isPsc=true", radio("yes"))
	assert.Equal(t, base+routes.PathTaskList, w.Header().Get("Location"))
	assert.Equal(t, model.StatusConfirmed, f.sectionStatus(t, model.SectionPSC))
}

func TestStatementOfCapital(t *testing.T) {
	unpaid := "0"
	soc := &model.StatementOfCapital{
		ClassOfShares:                "ordinary",
		Currency:                     "GBP",
		NumberAllotted:               "100",
		AggregateNominalValue:        "1",
		TotalNumberOfShares:          "100",
		TotalAggregateNominalValue:   "100",
		TotalAmountUnpaidForCurrency: &unpaid,
	}

	t.Run("reconciled", func(t *testing.T) {
		f := newFixture(t)
		f.api.capital = soc
		f.api.shareholders = []model.Shareholder{{Surname: "doe", Shares: "60"}, {Surname: "roe", Shares: "40"}}

		w := f.post(base+routes.PathStatementOfCapital, radio("yes"))
		assert.Equal(t, http.StatusFound, w.Code)
		data, err := f.api.submission.Data.Section(model.SectionSOC)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, data.SectionStatus)
		require.NotNil(t, data.StatementOfCapital)
		assert.Equal(t, "100", data.StatementOfCapital.TotalNumberOfShares)
	})

	t.Run("shares do not match", func(t *testing.T) {
		f := newFixture(t)
		f.api.capital = soc
		f.api.shareholders = []model.Shareholder{{Surname: "doe", Shares: "60"}}

		w := f.post(base+routes.PathStatementOfCapital, radio("yes"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "does not match")
		assert.Zero(t, f.api.puts)
	})
}

func TestWrongDetails(t *testing.T) {
	f := newFixture(t)
	w := f.get(base + routes.PathWrongSIC)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SIC codes")
}

func TestEmailFlow(t *testing.T) {
	f := newFixture(t)

	w := f.get(base + routes.PathRegisteredEmailAddress)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, base+routes.PathProvideEmailAddress, w.Header().Get("Location"))

	w = f.post(base+routes.PathProvideEmailAddress, url.Values{"registeredEmailAddress": {"not-an-email"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "correct format")

	w = f.post(base+routes.PathProvideEmailAddress, url.Values{"registeredEmailAddress": {" info@test.example "}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, base+routes.PathCheckEmailAddress, w.Header().Get("Location"))

	w = f.get(base + routes.PathCheckEmailAddress)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "info@test.example")

	w = f.post(base+routes.PathCheckEmailAddress, url.Values{})
	assert.Equal(t, base+routes.PathTaskList, w.Header().Get("Location"))
	data, err := f.api.submission.Data.Section(model.SectionEmail)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInitialFiling, data.SectionStatus)
	assert.Equal(t, "info@test.example", data.RegisteredEmailAddress)

	state, err := f.sessions.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Empty(t, state.EnteredEmailAddress)
}

func TestEmailFormExtraFields(t *testing.T) {
	f := newFixture(t)
	w := f.post(base+routes.PathProvideEmailAddress, url.Values{
		"registeredEmailAddress": {"info@test.example"},
		"_csrf":                  {"token"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, base+routes.PathCheckEmailAddress, w.Header().Get("Location"))
}

func TestReviewNeedsAllTasks(t *testing.T) {
	f := newFixture(t)
	w := f.get(base + routes.PathReview)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, base+routes.PathTaskList, w.Header().Get("Location"))
}

func completeAll(t *testing.T, f *fixture) {
	t.Helper()
	for _, s := range model.Sections {
		require.NoError(t, f.api.submission.Data.SetSection(s, model.SectionData{SectionStatus: model.StatusConfirmed}))
	}
}

func TestReviewAndPay(t *testing.T) {
	f := newFixture(t)
	completeAll(t, f)
	f.api.paymentUrl = "/transactions/tx-1/payment"

	w := f.get(base + routes.PathReview)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.post(base+routes.PathReview, url.Values{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You need to accept")

	w = f.post(base+routes.PathReview, url.Values{"lawfulActivityStatement": {"accept"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://pay.example.com/journey", w.Header().Get("Location"))
	assert.True(t, f.api.submission.Data.LawfulPurposeAccepted())

	require.Len(t, f.payments.requests, 1)
	req := f.payments.requests[0]
	assert.Equal(t, "http://cs.example.com"+base+routes.PathPaymentCallback, req.RedirectURI)
	assert.Equal(t, "/transactions/tx-1/payment", req.Resource)
	require.NotEmpty(t, req.State)

	w = f.get(base + routes.PathPaymentCallback + "?status=paid&state=forged")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.get(base + routes.PathPaymentCallback + "?status=paid&state=" + url.QueryEscape(req.State))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, base+routes.PathConfirmation, w.Header().Get("Location"))

	// the nonce is single use
	w = f.get(base + routes.PathPaymentCallback + "?status=paid&state=" + url.QueryEscape(req.State))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewWithoutFee(t *testing.T) {
	f := newFixture(t)
	completeAll(t, f)

	w := f.post(base+routes.PathReview, url.Values{"lawfulActivityStatement": {"accept"}})
	assert.Equal(t, base+routes.PathConfirmation, w.Header().Get("Location"))
	assert.Empty(t, f.payments.requests)

	w = f.get(base + routes.PathConfirmation)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tx-1")
}

func TestSignOut(t *testing.T) {
	f := newFixture(t)
	f.get(base + routes.PathTaskList)

	w := f.get(routes.Root + routes.PathSignOut)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base+routes.PathTaskList)

	w = f.post(routes.Root+routes.PathSignOut, radio("no"))
	assert.Equal(t, base+routes.PathTaskList, w.Header().Get("Location"))

	w = f.post(routes.Root+routes.PathSignOut, radio("yes"))
	assert.Equal(t, "http://account.example.com/signout", w.Header().Get("Location"))
	_, err := f.sessions.Load(context.Background(), "sid-1")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestErrorPageStatus(t *testing.T) {
	f := newFixture(t)
	w := f.post(base+routes.PathShareholders, radio(strings.Repeat("x", 500)))
	assert.Equal(t, httpx.StatusOf(httpx.NewValidationError("", "")), w.Code)
	assert.Contains(t, w.Body.String(), "Sorry, there is a problem with this service")
}

func TestPanicServesErrorPage(t *testing.T) {
	f := newFixture(t)
	f.api.panicWith = "profile lookup blew up"

	w := f.get(routes.Root + routes.PathConfirmCompany + "?companyNumber=" + companyNumber)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Sorry, there is a problem with this service")
	assert.NotContains(t, w.Body.String(), "blew up")
}

func TestAbortedHandlerIsReraised(t *testing.T) {
	f := newFixture(t)
	f.api.panicWith = http.ErrAbortHandler

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		f.get(routes.Root + routes.PathConfirmCompany + "?companyNumber=" + companyNumber)
	})
}
