package model

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type Status string

const (
	StatusConfirmed     Status = "CONFIRMED"
	StatusNotConfirmed  Status = "NOT_CONFIRMED"
	StatusRecentFiling  Status = "RECENT_FILING"
	StatusInitialFiling Status = "INITIAL_FILING"
)

// Section is the key a section is stored under in the submission data.
type Section string

const (
	SectionActiveOfficer     Section = "activeOfficerDetailsData"
	SectionPSC               Section = "personsSignificantControlData"
	SectionRegisterLocations Section = "registerLocationsData"
	SectionROA               Section = "registeredOfficeAddressData"
	SectionShareholder       Section = "shareholderData"
	SectionSIC               Section = "sicCodeData"
	SectionSOC               Section = "statementOfCapitalData"
	SectionEmail             Section = "registeredEmailAddressData"
)

// Sections lists every reviewable section in task list order.
var Sections = []Section{
	SectionSOC,
	SectionSIC,
	SectionROA,
	SectionActiveOfficer,
	SectionPSC,
	SectionShareholder,
	SectionRegisterLocations,
	SectionEmail,
}

var sectionNames = map[Section]string{
	SectionActiveOfficer:     "ACTIVE_OFFICER",
	SectionPSC:               "PSC",
	SectionRegisterLocations: "REGISTER_LOCATIONS",
	SectionROA:               "ROA",
	SectionShareholder:       "SHAREHOLDER",
	SectionSIC:               "SIC",
	SectionSOC:               "SOC",
	SectionEmail:             "EMAIL",
}

// String returns the short upper case name used in logs and metrics.
func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return string(s)
}

const (
	keyTradingStatus = "tradingStatusData"
	keyLawfulPurpose = "acceptLawfulPurposeStatement"
	keyMadeUpToDate  = "confirmationStatementMadeUpToDate"
)

type SectionData struct {
	SectionStatus          Status              `json:"sectionStatus"`
	StatementOfCapital     *StatementOfCapital `json:"statementOfCapital,omitempty"`
	RegisteredEmailAddress string              `json:"registeredEmailAddress,omitempty"`
}

type TradingStatusData struct {
	TradingStatusAnswer bool `json:"tradingStatusAnswer"`
}

type Submission struct {
	ID    string            `json:"id"`
	Links map[string]string `json:"links,omitempty"`
	Data  SubmissionData    `json:"data"`
}

// SubmissionData keeps every key as raw JSON so that writing one section back
// leaves the others byte for byte as the upstream service returned them.
type SubmissionData map[string]json.RawMessage

// Section returns the data held for s, or nil when the section is absent.
func (d SubmissionData) Section(s Section) (*SectionData, error) {
	raw, ok := d[string(s)]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var data SectionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, "decode section %s", s)
	}
	return &data, nil
}

func (d SubmissionData) SetSection(s Section, data SectionData) error {
	return d.set(string(s), data)
}

func (d SubmissionData) TradingStatus() (*bool, error) {
	raw, ok := d[keyTradingStatus]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var data TradingStatusData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "decode trading status")
	}
	return &data.TradingStatusAnswer, nil
}

func (d SubmissionData) SetTradingStatus(answer bool) error {
	return d.set(keyTradingStatus, TradingStatusData{TradingStatusAnswer: answer})
}

func (d SubmissionData) LawfulPurposeAccepted() bool {
	var accepted bool
	if raw, ok := d[keyLawfulPurpose]; ok {
		_ = json.Unmarshal(raw, &accepted)
	}
	return accepted
}

func (d SubmissionData) SetLawfulPurposeAccepted(accepted bool) error {
	return d.set(keyLawfulPurpose, accepted)
}

// MadeUpToDate is the confirmation statement date as YYYY-MM-DD, if known.
func (d SubmissionData) MadeUpToDate() string {
	var date string
	if raw, ok := d[keyMadeUpToDate]; ok {
		_ = json.Unmarshal(raw, &date)
	}
	return date
}

func (d SubmissionData) set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	d[key] = raw
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// SubmissionRef identifies a submission from the wizard's URL parameters.
type SubmissionRef struct {
	CompanyNumber string
	TransactionID string
	SubmissionID  string
}
