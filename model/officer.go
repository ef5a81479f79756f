package model

type DateOfBirth struct {
	Day   int `json:"day,omitempty"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

type Identification struct {
	IdentificationType string `json:"identification_type,omitempty"`
	LegalAuthority     string `json:"legal_authority,omitempty"`
	LegalForm          string `json:"legal_form,omitempty"`
	PlaceRegistered    string `json:"place_registered,omitempty"`
	CountryRegistered  string `json:"country_registered,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
}

// Officer is an active director or secretary as held on the register.
// Corporate officers carry their name in Surname.
type Officer struct {
	Forename           string          `json:"fore_name,omitempty"`
	OtherForenames     string          `json:"other_forenames,omitempty"`
	Surname            string          `json:"surname"`
	Nationality        string          `json:"nationality,omitempty"`
	Occupation         string          `json:"occupation,omitempty"`
	DateOfBirth        *DateOfBirth    `json:"date_of_birth,omitempty"`
	DateOfAppointment  string          `json:"date_of_appointment"`
	ServiceAddress     Address         `json:"service_address"`
	ResidentialAddress Address         `json:"residential_address"`
	Role               string          `json:"role"`
	IsCorporate        bool            `json:"is_corporate"`
	Identification     *Identification `json:"identification,omitempty"`
}
