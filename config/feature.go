package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const flagDateLayout = "2006-01-02"

// FeatureFlag switches a feature on from a given instant. A nil EnabledFrom
// means the feature is off.
type FeatureFlag struct {
	EnabledFrom *time.Time
}

func EnabledFrom(t time.Time) FeatureFlag {
	return FeatureFlag{EnabledFrom: &t}
}

func (f FeatureFlag) Enabled(now time.Time) bool {
	return f.EnabledFrom != nil && !now.Before(*f.EnabledFrom)
}

// ParseFeatureFlag reads a YYYY-MM-DD date (midnight UTC). An empty value
// yields a disabled flag.
func ParseFeatureFlag(value string) (FeatureFlag, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return FeatureFlag{}, nil
	}
	t, err := time.Parse(flagDateLayout, value)
	if err != nil {
		return FeatureFlag{}, errors.Wrapf(err, "invalid feature flag date %q", value)
	}
	return EnabledFrom(t), nil
}
