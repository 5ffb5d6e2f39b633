package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10M"
	defaultBasePath           = "/api"
	defaultCookieName         = "token"
	defaultTokenTTL           = 7 * 24 * time.Hour
	defaultBcryptCost         = 10
	defaultMediaMaxBytes      = 5 << 20

	// EnvProduction switches cookies to Secure + SameSite=None.
	EnvProduction = "production"
	// EnvDevelopment skips Pub/Sub push token verification in the worker.
	EnvDevelopment = "development"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		BasePath           string `json:"basePath" yaml:"basePath"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS struct {
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Media configures where uploaded cover images and avatars are stored
	Media *MediaConfig `json:"media" yaml:"media"`

	// PubSub configuration for activity event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for blog share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// PostgresConfig embeds the go-lib connection settings and adds schema management.
type PostgresConfig struct {
	postgres.DBConn `mapstructure:",squash"`

	// AutoMigrate runs gorm AutoMigrate on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	Cookie     struct {
		Name string `json:"name" yaml:"name"`
	} `json:"cookie" yaml:"cookie"`

	// ExposeTokenInBody keeps returning the session token in signup/login bodies
	// in addition to the http-only cookie.
	ExposeTokenInBody bool `json:"exposeTokenInBody" yaml:"exposeTokenInBody"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MediaConfig defines the blob bucket used for uploaded images
type MediaConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. mem://, file:///var/lib/storyhub/media, s3://bucket?region=eu-west-1
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prepended to object keys to build the URL returned to clients
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxBytes int64 `json:"maxBytes" yaml:"maxBytes"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// IsProduction reports whether the service runs with production cookie settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// CookieName returns the session cookie name, falling back to "token".
func (c *Config) CookieName() string {
	if c.Auth == nil || c.Auth.Cookie.Name == "" {
		return defaultCookieName
	}

	return c.Auth.Cookie.Name
}

// TokenTTL returns the configured session lifetime, 7 days by default.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth == nil || c.Auth.TokenTTL <= 0 {
		return defaultTokenTTL
	}

	return c.Auth.TokenTTL
}

// BcryptCost returns the configured bcrypt cost.
func (c *Config) BcryptCost() int {
	if c.Auth == nil || c.Auth.BcryptCost == 0 {
		return defaultBcryptCost
	}

	return c.Auth.BcryptCost
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.BasePath == "" {
		cfg.HTTP.BasePath = defaultBasePath
	}
	if len(cfg.HTTP.CORS.AllowOrigins) == 0 {
		cfg.HTTP.CORS.AllowOrigins = []string{"http://localhost:5173"}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{ExposeTokenInBody: true}
	}
	if cfg.Media == nil {
		cfg.Media = &MediaConfig{BucketURL: "mem://"}
	}
	if cfg.Media.MaxBytes <= 0 {
		cfg.Media.MaxBytes = defaultMediaMaxBytes
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
