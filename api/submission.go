package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mbolis/confirmation-statement/model"
)

func submissionPath(transactionID, submissionID, suffix string) string {
	return fmt.Sprintf("/transactions/%s/confirmation-statement/%s", escape(transactionID, submissionID)...) + suffix
}

func (c *Client) GetSubmission(ctx context.Context, transactionID, submissionID string) (*model.Submission, error) {
	var submission model.Submission
	if err := c.get(ctx, "api.get_submission", submissionPath(transactionID, submissionID, ""), &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (c *Client) PutSubmission(ctx context.Context, transactionID, submissionID string, s *model.Submission) error {
	_, err := c.do(ctx, "api.put_submission", http.MethodPut, submissionPath(transactionID, submissionID, ""), s, nil)
	return err
}

// CreateSubmission starts a confirmation statement inside an open transaction.
func (c *Client) CreateSubmission(ctx context.Context, transactionID string) (*model.Submission, error) {
	var submission model.Submission
	path := fmt.Sprintf("/transactions/%s/confirmation-statement", escape(transactionID)...)
	if _, err := c.do(ctx, "api.create_submission", http.MethodPost, path, struct{}{}, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (c *Client) GetActiveOfficers(ctx context.Context, transactionID, submissionID string) ([]model.Officer, error) {
	var officers []model.Officer
	path := submissionPath(transactionID, submissionID, "/active-officers-details")
	if err := c.get(ctx, "api.get_active_officers", path, &officers); err != nil {
		return nil, err
	}
	return officers, nil
}

func (c *Client) GetPSCs(ctx context.Context, transactionID, submissionID string) ([]model.PSC, error) {
	var pscs []model.PSC
	path := submissionPath(transactionID, submissionID, "/persons-of-significant-control")
	if err := c.get(ctx, "api.get_pscs", path, &pscs); err != nil {
		return nil, err
	}
	return pscs, nil
}

func (c *Client) GetShareholders(ctx context.Context, transactionID, submissionID string) ([]model.Shareholder, error) {
	var shareholders []model.Shareholder
	path := submissionPath(transactionID, submissionID, "/shareholders")
	if err := c.get(ctx, "api.get_shareholders", path, &shareholders); err != nil {
		return nil, err
	}
	return shareholders, nil
}

func (c *Client) GetRegisterLocations(ctx context.Context, transactionID, submissionID string) ([]model.RegisterLocation, error) {
	var locations []model.RegisterLocation
	path := submissionPath(transactionID, submissionID, "/register-locations")
	if err := c.get(ctx, "api.get_register_locations", path, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) GetStatementOfCapital(ctx context.Context, transactionID, submissionID string) (*model.StatementOfCapital, error) {
	var soc model.StatementOfCapital
	path := submissionPath(transactionID, submissionID, "/statement-of-capital")
	if err := c.get(ctx, "api.get_statement_of_capital", path, &soc); err != nil {
		return nil, err
	}
	return &soc, nil
}
