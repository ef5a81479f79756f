package people

import (
	"github.com/mbolis/confirmation-statement/format"
	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/pkg/errors"
)

// Describer maps an enumeration key to its display text.
type Describer func(key string) string

type OfficerView struct {
	Name               string
	DateOfBirth        string
	Nationality        string
	Occupation         string
	AppointedOn        string
	ServiceAddress     string
	ResidentialAddress string
}

type CorporateView struct {
	Name               string
	RegistrationNumber string
	LegalForm          string
	GoverningLaw       string
	PlaceRegistered    string
	AppointedOn        string
	Address            string
	NotifiedOn         string
	NaturesOfControl   []string
}

type PSCView struct {
	Name               string
	DateOfBirth        string
	Nationality        string
	CountryOfResidence string
	NotifiedOn         string
	Address            string
	NaturesOfControl   []string
}

// OfficerDateOfBirth renders the date of birth of a natural officer. Asking
// for a corporate officer's, or finding none, is an invariant violation.
func OfficerDateOfBirth(o model.Officer) (string, error) {
	if o.IsCorporate {
		return "", httpx.Invariantf("date of birth requested for corporate officer %q", o.Surname)
	}
	if o.DateOfBirth == nil {
		return "", httpx.Invariantf("officer %q has no date of birth", o.Surname)
	}
	return format.MonthYear(*o.DateOfBirth), nil
}

// DateOfBirth renders the date of birth of an individual PSC. Legal entities
// and other registrable persons never have one.
func DateOfBirth(p model.PSC) (string, error) {
	if p.AppointmentType != model.AppointmentIndividual {
		return "", httpx.Invariantf("date of birth requested for %s PSC", p.AppointmentType)
	}
	if p.DateOfBirth == nil {
		return "", httpx.Invariantf("individual PSC %q has no date of birth", p.NameElements.Surname)
	}
	return format.MonthYear(*p.DateOfBirth), nil
}

// Directors builds display records for natural directors.
func Directors(officers []model.Officer) ([]OfficerView, error) {
	views := make([]OfficerView, 0, len(officers))
	for _, o := range officers {
		v, err := officerView(o)
		if err != nil {
			return nil, err
		}
		if v.DateOfBirth, err = OfficerDateOfBirth(o); err != nil {
			return nil, err
		}
		v.ResidentialAddress = format.JoinAddress(o.ResidentialAddress)
		views = append(views, v)
	}
	return views, nil
}

// Secretaries builds display records for natural secretaries, which show
// neither date of birth nor residential address.
func Secretaries(officers []model.Officer) ([]OfficerView, error) {
	views := make([]OfficerView, 0, len(officers))
	for _, o := range officers {
		v, err := officerView(o)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func officerView(o model.Officer) (OfficerView, error) {
	appointed, err := format.Date(o.DateOfAppointment)
	if err != nil {
		return OfficerView{}, errors.Wrapf(err, "officer %q appointment", o.Surname)
	}
	return OfficerView{
		Name:           format.PersonName(o.Surname, o.Forename, o.OtherForenames),
		Nationality:    format.TitleCase(o.Nationality),
		Occupation:     format.TitleCase(o.Occupation),
		AppointedOn:    appointed,
		ServiceAddress: format.JoinAddress(o.ServiceAddress),
	}, nil
}

// CorporateOfficers builds display records for corporate directors and
// secretaries. Upstream holds their name in the surname field, so it is
// upper cased like any surname.
func CorporateOfficers(officers []model.Officer) ([]CorporateView, error) {
	views := make([]CorporateView, 0, len(officers))
	for _, o := range officers {
		appointed, err := format.Date(o.DateOfAppointment)
		if err != nil {
			return nil, errors.Wrapf(err, "corporate officer %q appointment", o.Surname)
		}
		v := CorporateView{
			Name:        format.Upper(o.Surname),
			AppointedOn: appointed,
			Address:     format.JoinAddress(o.ServiceAddress),
		}
		identify(&v, o.Identification)
		views = append(views, v)
	}
	return views, nil
}

func Individuals(pscs []model.PSC, describe Describer) ([]PSCView, error) {
	views := make([]PSCView, 0, len(pscs))
	for _, p := range pscs {
		dob, err := DateOfBirth(p)
		if err != nil {
			return nil, err
		}
		notified, err := format.Date(p.NotifiedOn)
		if err != nil {
			return nil, errors.Wrapf(err, "PSC %q notification", p.NameElements.Surname)
		}
		n := p.NameElements
		views = append(views, PSCView{
			Name:               format.PersonName(n.Surname, n.Title, n.Forename, n.OtherForenames, n.MiddleName),
			DateOfBirth:        dob,
			Nationality:        format.TitleCase(p.Nationality),
			CountryOfResidence: format.TitleCase(p.CountryOfResidence),
			NotifiedOn:         notified,
			Address:            format.JoinAddress(p.Address),
			NaturesOfControl:   describeAll(p.NaturesOfControl, describe),
		})
	}
	return views, nil
}

// Entities builds display records for relevant legal entities and other
// registrable persons.
func Entities(pscs []model.PSC, describe Describer) ([]CorporateView, error) {
	views := make([]CorporateView, 0, len(pscs))
	for _, p := range pscs {
		notified, err := format.Date(p.NotifiedOn)
		if err != nil {
			return nil, errors.Wrapf(err, "PSC %q notification", p.Name)
		}
		v := CorporateView{
			Name:             format.TitleCase(p.Name),
			NotifiedOn:       notified,
			Address:          format.JoinAddress(p.Address),
			NaturesOfControl: describeAll(p.NaturesOfControl, describe),
		}
		identify(&v, p.Identification)
		views = append(views, v)
	}
	return views, nil
}

func identify(v *CorporateView, id *model.Identification) {
	if id == nil {
		return
	}
	v.RegistrationNumber = format.Upper(id.RegistrationNumber)
	v.LegalForm = format.TitleCase(id.LegalForm)
	v.GoverningLaw = format.TitleCase(id.LegalAuthority)
	v.PlaceRegistered = format.TitleCase(id.PlaceRegistered)
}

func describeAll(keys []string, describe Describer) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = describe(k)
	}
	return out
}

type ShareholderView struct {
	Name          string
	Shares        string
	ClassOfShares string
}

func Shareholders(shareholders []model.Shareholder) ([]ShareholderView, error) {
	views := make([]ShareholderView, 0, len(shareholders))
	for _, s := range shareholders {
		shares, err := format.Shares(s.Shares)
		if err != nil {
			return nil, errors.Wrapf(err, "shareholder %q", s.Surname)
		}
		views = append(views, ShareholderView{
			Name:          format.PersonName(s.Surname, s.Forename1, s.Forename2, s.OtherForenames),
			Shares:        shares,
			ClassOfShares: format.Upper(s.ClassOfShares),
		})
	}
	return views, nil
}
