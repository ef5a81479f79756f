package model

type StatementOfCapital struct {
	ClassOfShares                string  `json:"classOfShares"`
	Currency                     string  `json:"currency"`
	NumberAllotted               string  `json:"numberAllotted"`
	AggregateNominalValue        string  `json:"aggregateNominalValue"`
	PrescribedParticulars        string  `json:"prescribedParticulars"`
	TotalNumberOfShares          string  `json:"totalNumberOfShares"`
	TotalAggregateNominalValue   string  `json:"totalAggregateNominalValue"`
	TotalAmountUnpaidForCurrency *string `json:"totalAmountUnpaidForCurrency"`
}

type Shareholder struct {
	Forename1      string `json:"foreName1,omitempty"`
	Forename2      string `json:"foreName2,omitempty"`
	OtherForenames string `json:"otherForenames,omitempty"`
	Surname        string `json:"surname"`
	Shares         string `json:"shares"`
	ClassOfShares  string `json:"classOfShares"`
	CurrencyCode   string `json:"currencyCode"`
}
