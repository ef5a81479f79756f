package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/routes/middlewares"
	"github.com/mbolis/confirmation-statement/session"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.RequestID, middlewares.RequestLogger, recoverer(app), app.Metrics.Middleware)

	root.Get("/healthcheck", Healthcheck)
	root.Method(http.MethodGet, app.MetricsPath, app.Metrics.Handler())

	root.Route(Root, func(r chi.Router) {
		r.Get(PathStart, Start(app))

		r.Group(func(r chi.Router) {
			r.Use(
				middlewares.SignedIn(app.SessionSecret, app.SignInUrl, app.ServiceUrl),
				session.Middleware(app.Sessions),
				middlewares.TrackPreviousPage(app.Sessions, PathSignOut),
			)

			r.Get(PathCompanyNumber, CompanyNumber(app))
			r.Get(PathConfirmCompany, GetConfirmCompany(app))
			r.Post(PathConfirmCompany, PostConfirmCompany(app))
			r.Get(PathStop, Stop(app))
			r.Get(PathSignOut, GetSignOut(app))
			r.Post(PathSignOut, PostSignOut(app))

			r.Route(submissionPattern, func(r chi.Router) {
				r.Use(withSubmission(app))
				submissionRoutes(r, app)
			})
		})
	})

	return root
}

func submissionRoutes(r chi.Router, app app.App) {
	r.Get(PathTradingStatus, GetTradingStatus(app))
	r.Post(PathTradingStatus, PostTradingStatus(app))
	r.Get(PathTaskList, TaskList(app))

	r.Get(PathActiveOfficers, ActiveOfficers.Get(app))
	r.Post(PathActiveOfficers, ActiveOfficers.Post(app))
	r.Get(PathActivePSCs, ActivePSCs.Get(app))
	r.Post(PathActivePSCs, ActivePSCs.Post(app))
	r.Get(PathPSCStatement, PSCStatement.Get(app))
	r.Post(PathPSCStatement, PSCStatement.Post(app))
	r.Get(PathShareholders, Shareholders.Get(app))
	r.Post(PathShareholders, Shareholders.Post(app))
	r.Get(PathStatementOfCapital, StatementOfCapital.Get(app))
	r.Post(PathStatementOfCapital, StatementOfCapital.Post(app))
	r.Get(PathRegisteredOfficeAddress, RegisteredOfficeAddress.Get(app))
	r.Post(PathRegisteredOfficeAddress, RegisteredOfficeAddress.Post(app))
	r.Get(PathSIC, SIC.Get(app))
	r.Post(PathSIC, SIC.Post(app))
	r.Get(PathRegisterLocations, RegisterLocations.Get(app))
	r.Post(PathRegisterLocations, RegisterLocations.Post(app))

	r.Get(PathRegisteredEmailAddress, RegisteredEmailAddress.Get(app))
	r.Post(PathRegisteredEmailAddress, RegisteredEmailAddress.Post(app))
	r.Get(PathProvideEmailAddress, ProvideEmailAddress(app))
	r.Post(PathProvideEmailAddress, ProvideEmailAddress(app))
	r.Get(PathCheckEmailAddress, CheckEmailAddress(app))
	r.Post(PathCheckEmailAddress, CheckEmailAddress(app))

	for path, page := range wrongPages {
		r.Get(path, WrongDetails(app, page))
	}

	r.Get(PathReview, Review(app))
	r.Post(PathReview, Review(app))
	r.Get(PathPaymentCallback, PaymentCallback(app))
	r.Get(PathConfirmation, Confirmation(app))
}
