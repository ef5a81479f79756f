package model

type Transaction struct {
	ID            string            `json:"id,omitempty"`
	CompanyNumber string            `json:"company_number"`
	Description   string            `json:"description"`
	Reference     string            `json:"reference"`
	Status        string            `json:"status,omitempty"`
	Links         map[string]string `json:"links,omitempty"`
}

type PaymentRequest struct {
	RedirectURI string `json:"redirect_uri"`
	Reference   string `json:"reference"`
	Resource    string `json:"resource"`
	State       string `json:"state"`
}

type PaymentLinks struct {
	Journey  string `json:"journey"`
	Resource string `json:"resource,omitempty"`
	Self     string `json:"self,omitempty"`
}

type Payment struct {
	Amount    string       `json:"amount"`
	Reference string       `json:"reference"`
	Status    string       `json:"status"`
	Links     PaymentLinks `json:"links"`
}
