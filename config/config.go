package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionTTL         = 8 * time.Hour
	defaultSessionCookie      = "SESSION"
	defaultMemberDomain       = "ucsb.edu"
	defaultWorkerPort         = 8081
)

// Database drivers understood by the persistence layer.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Frontend modes.
const (
	FrontendOff    = "off"
	FrontendStatic = "static"
	FrontendProxy  = "proxy"
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
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	Frontend FrontendConfig `json:"frontend" yaml:"frontend"`

	SystemInfo SystemInfoConfig `json:"systemInfo" yaml:"systemInfo"`

	// PubSub configuration for resource change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker serves the Pub/Sub push endpoint that audits resource events
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`
}

// DatabaseConfig selects the storage backend.
type DatabaseConfig struct {
	// Driver is "postgres" (default) or "sqlite"
	Driver string `json:"driver" yaml:"driver"`
	// SQLitePath is the DSN used when Driver is "sqlite", e.g. "file:ucsb.db" or ":memory:"
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`
	// AutoMigrate creates or updates tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AuthConfig defines authentication and role-granting configuration
type AuthConfig struct {
	// AdminEmails are granted ROLE_ADMIN on login
	AdminEmails []string `json:"adminEmails" yaml:"adminEmails"`
	// MemberHostedDomain grants ROLE_MEMBER to accounts from this Google Workspace domain
	MemberHostedDomain string        `json:"memberHostedDomain" yaml:"memberHostedDomain"`
	SessionTTL         time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	SessionCookie      string        `json:"sessionCookie" yaml:"sessionCookie"`
	SecureCookie       bool          `json:"secureCookie" yaml:"secureCookie"`
}

// FrontendConfig controls how non-API paths are served
type FrontendConfig struct {
	Mode      string `json:"mode" yaml:"mode"`
	StaticDir string `json:"staticDir" yaml:"staticDir"`
	ProxyURL  string `json:"proxyURL" yaml:"proxyURL"`
}

// SystemInfoConfig holds values exposed by /api/systemInfo
type SystemInfoConfig struct {
	ShowSwaggerUILink bool   `json:"showSwaggerUILink" yaml:"showSwaggerUILink"`
	SourceRepo        string `json:"sourceRepo" yaml:"sourceRepo"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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

// IsAdminEmail reports whether email is listed in auth.adminEmails.
func (c AuthConfig) IsAdminEmail(email string) bool {
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}

	return false
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// AUTH_ADMINEMAILS -> auth.adminEmails, keeping the YAML casing.
			key := canonicalizeEnvKey(k, existingConfigMap)
			if isListKey(key) {
				return key, splitList(v)
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.SessionCookie == "" {
		cfg.Auth.SessionCookie = defaultSessionCookie
	}
	if cfg.Auth.MemberHostedDomain == "" {
		cfg.Auth.MemberHostedDomain = defaultMemberDomain
	}
	if cfg.Frontend.Mode == "" {
		cfg.Frontend.Mode = FrontendOff
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}

func isListKey(key string) bool {
	return key == "auth.adminEmails"
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
