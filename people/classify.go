// Package people sorts a company's officers and PSCs into the groups the
// review pages display, and builds their display records.
package people

import (
	"strings"

	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/mbolis/confirmation-statement/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	RoleDirector  = "director"
	RoleSecretary = "secretary"
)

type OfficerBuckets struct {
	Directors            []model.Officer
	Secretaries          []model.Officer
	CorporateDirectors   []model.Officer
	CorporateSecretaries []model.Officer
}

func (b OfficerBuckets) Len() int {
	return len(b.Directors) + len(b.Secretaries) + len(b.CorporateDirectors) + len(b.CorporateSecretaries)
}

type PSCBuckets struct {
	Individuals             []model.PSC
	RelevantLegalEntities   []model.PSC
	OtherRegistrablePersons []model.PSC
}

func (b PSCBuckets) Len() int {
	return len(b.Individuals) + len(b.RelevantLegalEntities) + len(b.OtherRegistrablePersons)
}

// ClassifyOfficers splits officers by role and corporate flag, keeping their
// order. Roles are matched ignoring case and width since upstream data mixes
// both. An officer with any other role is an invariant violation: every
// record lands in exactly one bucket.
func ClassifyOfficers(officers []model.Officer) (OfficerBuckets, error) {
	// a Collator keeps buffers, so one per call
	c := collate.New(language.English, collate.IgnoreCase, collate.IgnoreWidth)

	var b OfficerBuckets
	for _, o := range officers {
		role := strings.TrimSpace(o.Role)
		switch {
		case c.CompareString(role, RoleDirector) == 0 && o.IsCorporate:
			b.CorporateDirectors = append(b.CorporateDirectors, o)
		case c.CompareString(role, RoleDirector) == 0:
			b.Directors = append(b.Directors, o)
		case c.CompareString(role, RoleSecretary) == 0 && o.IsCorporate:
			b.CorporateSecretaries = append(b.CorporateSecretaries, o)
		case c.CompareString(role, RoleSecretary) == 0:
			b.Secretaries = append(b.Secretaries, o)
		default:
			return OfficerBuckets{}, httpx.Invariantf("unknown officer role %q", role)
		}
	}
	return b, nil
}

// ClassifyPSCs splits pscs by appointment type. There is no default bucket:
// an unknown type fails.
func ClassifyPSCs(pscs []model.PSC) (PSCBuckets, error) {
	var b PSCBuckets
	for _, p := range pscs {
		switch p.AppointmentType {
		case model.AppointmentIndividual:
			b.Individuals = append(b.Individuals, p)
		case model.AppointmentRelevantLegalEntity:
			b.RelevantLegalEntities = append(b.RelevantLegalEntities, p)
		case model.AppointmentOtherRegistrablePerson:
			b.OtherRegistrablePersons = append(b.OtherRegistrablePersons, p)
		default:
			return PSCBuckets{}, httpx.Invariantf("unknown PSC appointment type %q", p.AppointmentType)
		}
	}
	return b, nil
}

// CheckPSCCount fails when a company reports more active PSCs than max.
func CheckPSCCount(count, max int) error {
	if count > max {
		return httpx.Invariantf("%d active PSCs returned, at most %d expected", count, max)
	}
	return nil
}
