package app

import (
	"context"
	"time"

	"github.com/mbolis/confirmation-statement/config"
	"github.com/mbolis/confirmation-statement/lookup"
	"github.com/mbolis/confirmation-statement/metrics"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/mbolis/confirmation-statement/section"
	"github.com/mbolis/confirmation-statement/session"
	"github.com/mbolis/confirmation-statement/views"
)

// API is the part of the upstream services the wizard reads and writes.
type API interface {
	section.SubmissionAPI
	CreateSubmission(ctx context.Context, transactionID string) (*model.Submission, error)

	GetCompanyProfile(ctx context.Context, companyNumber string) (*model.CompanyProfile, error)
	GetEligibility(ctx context.Context, companyNumber string) (*model.Eligibility, error)
	GetNextMadeUpToDate(ctx context.Context, companyNumber string) (*model.NextMadeUpToDate, error)
	GetPSCStatements(ctx context.Context, companyNumber string) ([]model.PSCStatement, error)
	GetRegisteredEmailAddress(ctx context.Context, companyNumber string) (string, error)

	GetActiveOfficers(ctx context.Context, transactionID, submissionID string) ([]model.Officer, error)
	GetPSCs(ctx context.Context, transactionID, submissionID string) ([]model.PSC, error)
	GetShareholders(ctx context.Context, transactionID, submissionID string) ([]model.Shareholder, error)
	GetRegisterLocations(ctx context.Context, transactionID, submissionID string) ([]model.RegisterLocation, error)
	GetStatementOfCapital(ctx context.Context, transactionID, submissionID string) (*model.StatementOfCapital, error)

	CreateTransaction(ctx context.Context, companyNumber string) (*model.Transaction, error)
	CloseTransaction(ctx context.Context, companyNumber, transactionID string) (string, error)
}

type PaymentAPI interface {
	CreatePayment(ctx context.Context, req model.PaymentRequest) (*model.Payment, error)
}

type App struct {
	config.Config

	API      API
	Payments PaymentAPI
	Sections *section.Updater
	Lookup   lookup.Tables
	Views    *views.Renderer
	Sessions session.Store
	Metrics  *metrics.Metrics

	Now func() time.Time
}
