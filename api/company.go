package api

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/pkg/errors"
)

func (c *Client) GetCompanyProfile(ctx context.Context, companyNumber string) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	path := fmt.Sprintf("/company/%s", escape(companyNumber)...)
	if err := c.get(ctx, "api.get_company_profile", path, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetEligibility(ctx context.Context, companyNumber string) (*model.Eligibility, error) {
	var eligibility model.Eligibility
	path := fmt.Sprintf("/confirmation-statement/company/%s/eligibility", escape(companyNumber)...)
	err := c.get(ctx, "api.get_eligibility", path, &eligibility)
	if err == nil {
		return &eligibility, nil
	}

	// an ineligible company comes back as 400 with the reason in the body
	var remote *httpx.RemoteError
	if errors.As(err, &remote) && remote.StatusCode == http.StatusBadRequest {
		if json.Unmarshal(remote.Body, &eligibility) == nil && eligibility.EligibilityStatusCode != "" {
			return &eligibility, nil
		}
	}
	return nil, err
}

func (c *Client) GetNextMadeUpToDate(ctx context.Context, companyNumber string) (*model.NextMadeUpToDate, error) {
	var date model.NextMadeUpToDate
	path := fmt.Sprintf("/confirmation-statement/company/%s/next-made-up-to-date", escape(companyNumber)...)
	if err := c.get(ctx, "api.get_next_made_up_to_date", path, &date); err != nil {
		return nil, err
	}
	return &date, nil
}

// GetPSCStatements lists the company's PSC statements. The service answers
// 404 for a company that has none.
func (c *Client) GetPSCStatements(ctx context.Context, companyNumber string) ([]model.PSCStatement, error) {
	var list model.PSCStatementList
	path := fmt.Sprintf("/company/%s/persons-with-significant-control-statements", escape(companyNumber)...)
	err := c.get(ctx, "api.get_psc_statements", path, &list)
	if httpx.IsStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// GetRegisteredEmailAddress returns "" when the company holds no address.
func (c *Client) GetRegisteredEmailAddress(ctx context.Context, companyNumber string) (string, error) {
	var email model.RegisteredEmailAddress
	path := fmt.Sprintf("/company/%s/registered-email-address", escape(companyNumber)...)
	err := c.get(ctx, "api.get_registered_email_address", path, &email)
	if httpx.IsStatus(err, http.StatusNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email.RegisteredEmailAddress, nil
}
