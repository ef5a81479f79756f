package config

import (
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CS"

type Config struct {
	Addr     string
	Debug    bool
	JSONLogs bool

	DBUrl         string
	SessionSecret string
	SessionMaxAge time.Duration

	APIUrl         string
	PaymentsAPIUrl string
	APIKey         string

	ServiceUrl       string
	SignInUrl        string
	SignOutUrl       string
	CompanyLookupUrl string

	ConstantsYAML       string
	PSCDescriptionsYAML string

	PSCLimit         int
	PSCLimitMultiple int
	PSCMultipleFrom  FeatureFlag
	EmailAddressFrom FeatureFlag

	MetricsPath string
}

// Flags registers every configuration flag on fs. Each flag can also be
// given as an environment variable, e.g. --api-url as CS_API_URL.
func Flags(fs *pflag.FlagSet) {
	fs.String("host", "0.0.0.0", "listen host name")
	fs.Uint("port", 3000, "listen port number")
	fs.Bool("debug", false, "log at DEBUG level")
	fs.Bool("json-logs", false, "log in JSON format")

	fs.String("db-url", "cs-sessions.sqlite", "path to SQLite3 session DB file")
	fs.String("session-secret", "", "HMAC secret shared with the account service to verify session tokens")
	fs.Duration("session-max-age", 7*24*time.Hour, "sessions idle for longer are purged at start")

	fs.String("api-url", "", "base URL of the internal company and confirmation statement APIs")
	fs.String("payments-api-url", "", "base URL of the payments API")
	fs.String("api-key", "", "key sent to the upstream APIs")

	fs.String("service-url", "http://localhost:3000", "public base URL of this service")
	fs.String("sign-in-url", "", "account service sign in page")
	fs.String("sign-out-url", "", "account service sign out page")
	fs.String("company-lookup-url", "", "company lookup page used to pick a company number")

	fs.String("constants-yaml", "", "path to the constants enumeration YAML (embedded copy if empty)")
	fs.String("psc-descriptions-yaml", "", "path to the PSC descriptions enumeration YAML (embedded copy if empty)")

	fs.Int("psc-limit", 1, "maximum number of active PSCs")
	fs.Int("psc-limit-multiple", 5, "maximum number of active PSCs once multiple PSCs are enabled")
	fs.String("psc-multiple-from", "", "date (YYYY-MM-DD) from which multiple PSCs are allowed")
	fs.String("email-address-from", "", "date (YYYY-MM-DD) from which the registered email address task is shown")

	fs.String("metrics-path", "/metrics", "path serving Prometheus metrics")
}

// NewViper binds fs and the CS_ environment into a fresh viper instance.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}
	return v, nil
}

func Load(v *viper.Viper) (cfg Config, err error) {
	cfg.Addr = net.JoinHostPort(v.GetString("host"), strconv.Itoa(v.GetInt("port")))
	cfg.Debug = v.GetBool("debug")
	cfg.JSONLogs = v.GetBool("json-logs")

	cfg.DBUrl = v.GetString("db-url")
	cfg.SessionSecret = v.GetString("session-secret")
	cfg.SessionMaxAge = v.GetDuration("session-max-age")

	cfg.APIUrl = strings.TrimSuffix(v.GetString("api-url"), "/")
	cfg.PaymentsAPIUrl = strings.TrimSuffix(v.GetString("payments-api-url"), "/")
	cfg.APIKey = v.GetString("api-key")

	cfg.ServiceUrl = strings.TrimSuffix(v.GetString("service-url"), "/")
	cfg.SignInUrl = v.GetString("sign-in-url")
	cfg.SignOutUrl = v.GetString("sign-out-url")
	cfg.CompanyLookupUrl = v.GetString("company-lookup-url")

	cfg.ConstantsYAML = v.GetString("constants-yaml")
	cfg.PSCDescriptionsYAML = v.GetString("psc-descriptions-yaml")

	cfg.PSCLimit = v.GetInt("psc-limit")
	cfg.PSCLimitMultiple = v.GetInt("psc-limit-multiple")
	cfg.MetricsPath = v.GetString("metrics-path")

	var result *multierror.Error
	for name, value := range map[string]string{
		"session-secret":     cfg.SessionSecret,
		"api-url":            cfg.APIUrl,
		"payments-api-url":   cfg.PaymentsAPIUrl,
		"api-key":            cfg.APIKey,
		"sign-in-url":        cfg.SignInUrl,
		"sign-out-url":       cfg.SignOutUrl,
		"company-lookup-url": cfg.CompanyLookupUrl,
	} {
		if value == "" {
			result = multierror.Append(result, errors.Errorf("missing parameter --%s", name))
		}
	}
	if cfg.PSCLimit < 1 || cfg.PSCLimitMultiple < cfg.PSCLimit {
		result = multierror.Append(result, errors.Errorf("invalid PSC limits %d/%d", cfg.PSCLimit, cfg.PSCLimitMultiple))
	}

	cfg.PSCMultipleFrom, err = ParseFeatureFlag(v.GetString("psc-multiple-from"))
	if err != nil {
		result = multierror.Append(result, errors.Wrap(err, "psc-multiple-from"))
	}
	cfg.EmailAddressFrom, err = ParseFeatureFlag(v.GetString("email-address-from"))
	if err != nil {
		result = multierror.Append(result, errors.Wrap(err, "email-address-from"))
	}

	if result != nil {
		result.ErrorFormat = func(errs []error) string {
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			return strings.Join(msgs, "; ")
		}
	}
	err = result.ErrorOrNil()
	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

// MaxPSCs is the number of active PSCs a company may have at time now
// before the PSC task refuses to render.
func (cfg Config) MaxPSCs(now time.Time) int {
	if cfg.PSCMultipleFrom.Enabled(now) {
		return cfg.PSCLimitMultiple
	}
	return cfg.PSCLimit
}
