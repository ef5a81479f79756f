package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mbolis/confirmation-statement/model"
)

const (
	transactionDescription = "Confirmation statement"
	transactionReference   = "ConfirmationStatementReference"
	transactionClosed      = "closed"
)

func (c *Client) CreateTransaction(ctx context.Context, companyNumber string) (*model.Transaction, error) {
	in := model.Transaction{
		CompanyNumber: companyNumber,
		Description:   transactionDescription,
		Reference:     transactionReference,
	}
	var out model.Transaction
	if _, err := c.do(ctx, "api.create_transaction", http.MethodPost, "/transactions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseTransaction closes the transaction and returns the URL of the payment
// session to start, or "" when the filing is free.
func (c *Client) CloseTransaction(ctx context.Context, companyNumber, transactionID string) (string, error) {
	in := model.Transaction{
		CompanyNumber: companyNumber,
		Description:   transactionDescription,
		Reference:     transactionReference,
		Status:        transactionClosed,
	}
	path := fmt.Sprintf("/transactions/%s", escape(transactionID)...)
	resp, err := c.do(ctx, "api.close_transaction", http.MethodPut, path, in, nil)
	if err != nil {
		return "", err
	}
	return resp.Header.Get(HeaderPaymentRequired), nil
}

// CreatePayment opens a payment session. The client must point at the
// payments service.
func (c *Client) CreatePayment(ctx context.Context, req model.PaymentRequest) (*model.Payment, error) {
	var payment model.Payment
	if _, err := c.do(ctx, "api.create_payment", http.MethodPost, "/payments", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
