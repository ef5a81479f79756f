package model

type Address struct {
	CareOf       string `json:"care_of,omitempty"`
	PoBox        string `json:"po_box,omitempty"`
	Premises     string `json:"premises,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Region       string `json:"region,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

type CompanyProfile struct {
	CompanyNumber           string                `json:"company_number"`
	CompanyName             string                `json:"company_name"`
	Type                    string                `json:"type"`
	CompanyStatus           string                `json:"company_status"`
	DateOfCreation          string                `json:"date_of_creation"`
	Jurisdiction            string                `json:"jurisdiction,omitempty"`
	SicCodes                []string              `json:"sic_codes,omitempty"`
	RegisteredOfficeAddress Address               `json:"registered_office_address"`
	ConfirmationStatement   ConfirmationStatement `json:"confirmation_statement"`
}

type ConfirmationStatement struct {
	NextMadeUpTo string `json:"next_made_up_to,omitempty"`
	NextDue      string `json:"next_due,omitempty"`
	Overdue      bool   `json:"overdue,omitempty"`
}

// Eligibility status codes returned by the eligibility check.
const (
	EligibilityValid             = "COMPANY_VALID_FOR_FAST_FILING_SERVICE"
	EligibilityInvalidStatus     = "INVALID_COMPANY_STATUS"
	EligibilityUseWebFiling      = "INVALID_COMPANY_TYPE_USE_WEB_FILING"
	EligibilityFilingNotRequired = "INVALID_COMPANY_TYPE_CS01_FILING_NOT_REQUIRED"
	EligibilityTooManyPSCs       = "INVALID_COMPANY_APPOINTMENTS_MORE_THAN_FIVE_PSCS"
	EligibilityOfficerCount      = "INVALID_COMPANY_APPOINTMENTS_INVALID_NUMBER_OF_OFFICERS"
)

type Eligibility struct {
	EligibilityStatusCode string `json:"eligibility_status_code"`
}

type NextMadeUpToDate struct {
	CurrentNextMadeUpToDate string `json:"current_next_made_up_to_date"`
	IsDue                   bool   `json:"is_due"`
	NewNextMadeUpToDate     string `json:"new_next_made_up_to_date,omitempty"`
}

type RegisterLocation struct {
	RegisterTypeDesc string   `json:"register_type_desc"`
	SailAddress      *Address `json:"sail_address,omitempty"`
}

type RegisteredEmailAddress struct {
	RegisteredEmailAddress string `json:"registered_email_address"`
}
