package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	KeyBucket     = "storage.bucket"
	KeyNamespace  = "storage.namespace"
	KeyPublicBase = "storage.public_base"
	KeyRegion     = "storage.region"
	KeyProfile    = "storage.profile"
	KeyBackend    = "storage.backend"
	KeyEndpoint   = "storage.endpoint"

	KeyMaxSize = "media.max_size"

	KeyCleanupEnabled = "cleanup.enabled"
	KeyCleanupConfirm = "cleanup.confirm"

	KeyReportPath = "report.path"

	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// legacyEnv maps keys to the environment variables used by existing setups.
var legacyEnv = map[string]string{
	KeyBucket:     "AWS_S3_BUCKET",
	KeyNamespace:  "AWS_S3_DIRNAME",
	KeyPublicBase: "AWS_CLOUDFRONT_DOMAIN",
	KeyRegion:     "AWS_S3_BUCKET_REGION",
	KeyProfile:    "AWS_CLI_PROFILE",
}

// Settings are the plain values the publishing pipeline runs with.
type Settings struct {
	Bucket     string
	Namespace  string
	PublicBase string
	Region     string
	Profile    string
	Backend    string
	Endpoint   string

	MaxSize int

	CleanupEnabled bool
	CleanupConfirm bool

	ReportPath string

	LogLevel  string
	LogFormat string
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, "s3")
	v.SetDefault(KeyMaxSize, 0)
	v.SetDefault(KeyCleanupEnabled, true)
	v.SetDefault(KeyCleanupConfirm, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	v.SetEnvPrefix("mdship")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		prefixed := "MDSHIP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			panic(err)
		}
	}
}

// Load reads the settings from v.
func Load(v *viper.Viper) Settings {
	return Settings{
		Bucket:         v.GetString(KeyBucket),
		Namespace:      v.GetString(KeyNamespace),
		PublicBase:     strings.TrimSuffix(v.GetString(KeyPublicBase), "/"),
		Region:         v.GetString(KeyRegion),
		Profile:        v.GetString(KeyProfile),
		Backend:        v.GetString(KeyBackend),
		Endpoint:       v.GetString(KeyEndpoint),
		MaxSize:        v.GetInt(KeyMaxSize),
		CleanupEnabled: v.GetBool(KeyCleanupEnabled),
		CleanupConfirm: v.GetBool(KeyCleanupConfirm),
		ReportPath:     v.GetString(KeyReportPath),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
	}
}

// Validate checks that everything needed to build object keys and URLs is set.
func (s Settings) Validate() error {
	var missing []string

	if s.Bucket == "" {
		missing = append(missing, KeyBucket)
	}
	if s.Namespace == "" {
		missing = append(missing, KeyNamespace)
	}
	if s.PublicBase == "" {
		missing = append(missing, KeyPublicBase)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}
