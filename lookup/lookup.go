// Package lookup resolves enumeration keys from the upstream APIs to display
// text. Keys missing from a table pass through unchanged.
package lookup

import (
	"embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yml
var data embed.FS

const (
	TableCompanyType          = "company_type"
	TableCompanyStatus        = "company_status"
	TableSicDescriptions      = "sic_descriptions"
	TableRegisterTypes        = "register_types"
	TableNatureOfControl      = "description"
	TableStatementDescription = "statement_description"
)

// Tables holds every enumeration table by name.
type Tables map[string]map[string]string

// Load reads both enumeration files. An empty path falls back to the
// embedded copy.
func Load(constantsPath, pscPath string) (Tables, error) {
	t := Tables{}
	if err := t.merge(constantsPath, "data/constants.yml"); err != nil {
		return nil, err
	}
	if err := t.merge(pscPath, "data/psc_descriptions.yml"); err != nil {
		return nil, err
	}
	return t, nil
}

// Default returns the embedded tables.
func Default() Tables {
	t, err := Load("", "")
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tables) merge(path, embedded string) error {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = data.ReadFile(embedded)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return errors.Wrapf(err, "read enumerations %s", path)
	}

	var tables map[string]map[string]string
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return errors.Wrapf(err, "parse enumerations %s", path)
	}
	for name, table := range tables {
		t[name] = table
	}
	return nil
}

// Lookup returns the text for key in table, or key itself if either is unknown.
func (t Tables) Lookup(table, key string) string {
	if text, ok := t[table][key]; ok {
		return text
	}
	return key
}

func (t Tables) CompanyType(key string) string {
	return t.Lookup(TableCompanyType, key)
}

func (t Tables) CompanyStatus(key string) string {
	return t.Lookup(TableCompanyStatus, key)
}

func (t Tables) SicDescription(code string) string {
	return t.Lookup(TableSicDescriptions, code)
}

func (t Tables) RegisterType(key string) string {
	return t.Lookup(TableRegisterTypes, key)
}

func (t Tables) NatureOfControl(key string) string {
	return t.Lookup(TableNatureOfControl, key)
}

func (t Tables) StatementDescription(key string) string {
	return t.Lookup(TableStatementDescription, key)
}
