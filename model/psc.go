package model

const (
	AppointmentIndividual             = "individual"
	AppointmentRelevantLegalEntity    = "relevant-legal-entity"
	AppointmentOtherRegistrablePerson = "other-registrable-person"
)

type NameElements struct {
	Title          string `json:"title,omitempty"`
	Forename       string `json:"forename,omitempty"`
	OtherForenames string `json:"other_forenames,omitempty"`
	MiddleName     string `json:"middle_name,omitempty"`
	Surname        string `json:"surname,omitempty"`
}

// PSC is an active person with significant control. Legal entities and
// other registrable persons are named by Name; individuals by NameElements.
type PSC struct {
	AppointmentType    string          `json:"appointment_type"`
	NameElements       NameElements    `json:"name_elements"`
	Name               string          `json:"name,omitempty"`
	Nationality        string          `json:"nationality,omitempty"`
	CountryOfResidence string          `json:"country_of_residence,omitempty"`
	DateOfBirth        *DateOfBirth    `json:"date_of_birth,omitempty"`
	NotifiedOn         string          `json:"notified_on"`
	NaturesOfControl   []string        `json:"natures_of_control"`
	Address            Address         `json:"address"`
	Identification     *Identification `json:"identification,omitempty"`
}

type PSCStatement struct {
	Statement  string `json:"statement"`
	NotifiedOn string `json:"notified_on"`
	Kind       string `json:"kind,omitempty"`
}

type PSCStatementList struct {
	Items []PSCStatement `json:"items"`
}
