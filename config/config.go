package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cambaeats/internal/domain/constants"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultBackendBaseURL     = "http://localhost:8080/api"
	defaultBackendTimeout     = 15 * time.Second
	defaultSessionKey         = "cart-storage"
	defaultFallbackPrefix     = "temp-"
	defaultSessionIdleTTL     = 30 * time.Minute
	defaultSessionSweep       = time.Minute
	defaultShippingFee        = "5"
	defaultQRCodeSize         = 256
)

// Session pointer store providers.
const (
	SessionProviderBlob     = "blob"
	SessionProviderPostgres = "postgres"
)

// Cart creation strategies used when the engine needs a fresh remote cart.
const (
	CreateStrategyFindOrCreate = "findOrCreate"
	CreateStrategyCreate       = "create"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the REST service owning products, carts, line items and orders
	Backend BackendConfig `json:"backend" yaml:"backend"`

	// Session configures where the active cart identifier is persisted
	Session SessionConfig `json:"session" yaml:"session"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Cart CartConfig `json:"cart" yaml:"cart"`

	Checkout CheckoutConfig `json:"checkout" yaml:"checkout"`

	// ClientLog configures the remote observability sink
	ClientLog *ClientLogConfig `json:"clientLog" yaml:"clientLog"`

	// QRCode configuration for payment QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// BackendConfig defines how to reach the backend REST API
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines the session pointer store
type SessionConfig struct {
	// Provider type: "blob" (gocloud.dev bucket) or "postgres"
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=blob postgres"`

	// BucketURL is a gocloud.dev URL, e.g. file:///var/lib/cambaeats, mem://, gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Key is the storage entry name, suffixed per client session
	Key string `json:"key" yaml:"key"`
}

// CartConfig tunes the cart engine
type CartConfig struct {
	// SerializeMutations runs cart operations of one engine one at a time
	SerializeMutations bool `json:"serializeMutations" yaml:"serializeMutations"`

	// CreateStrategy picks the gateway call used to obtain a fresh cart
	CreateStrategy string `json:"createStrategy" yaml:"createStrategy" validate:"omitempty,oneof=findOrCreate create"`

	// FallbackPrefix marks identifiers synthesized in local-fallback mode
	FallbackPrefix string `json:"fallbackPrefix" yaml:"fallbackPrefix"`

	// SessionIdleTTL evicts in-memory session carts not touched for this long
	SessionIdleTTL time.Duration `json:"sessionIdleTTL" yaml:"sessionIdleTTL"`

	SessionSweepInterval time.Duration `json:"sessionSweepInterval" yaml:"sessionSweepInterval"`
}

// CheckoutConfig tunes the checkout flow
type CheckoutConfig struct {
	ShippingFee        string `json:"shippingFee" yaml:"shippingFee"`
	ClearCartOnFailure bool   `json:"clearCartOnFailure" yaml:"clearCartOnFailure"`
}

// ShippingFeeDecimal parses ShippingFee, falling back to the default fee.
func (c CheckoutConfig) ShippingFeeDecimal() decimal.Decimal {
	fee, err := decimal.NewFromString(strings.TrimSpace(c.ShippingFee))
	if err != nil || fee.IsNegative() {
		return decimal.RequireFromString(defaultShippingFee)
	}

	return fee
}

// ClientLogConfig defines the remote client log sink
type ClientLogConfig struct {
	// Provider type: "" (disabled), "http" (POST {backend}/logs/client) or "google" (Pub/Sub)
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=http google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size" validate:"omitempty,gte=64"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// BACKEND_BASEURL -> backend.baseUrl (not backend.baseurl)
			return canonicalizeEnvKey(k, existingConfigMap), v
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	if cfg.Session.Provider == SessionProviderPostgres && cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional setting left empty by the YAML file and env.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		cfg.Backend.BaseURL = defaultBackendBaseURL
	}
	cfg.Backend.BaseURL = strings.TrimSuffix(cfg.Backend.BaseURL, "/")
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}
	if cfg.Session.Provider == "" {
		cfg.Session.Provider = SessionProviderBlob
	}
	if cfg.Session.BucketURL == "" {
		cfg.Session.BucketURL = "mem://"
	}
	if cfg.Session.Key == "" {
		cfg.Session.Key = defaultSessionKey
	}
	if cfg.Cart.CreateStrategy == "" {
		cfg.Cart.CreateStrategy = CreateStrategyFindOrCreate
	}
	if cfg.Cart.FallbackPrefix == "" {
		cfg.Cart.FallbackPrefix = defaultFallbackPrefix
	}
	if cfg.Cart.SessionIdleTTL <= 0 {
		cfg.Cart.SessionIdleTTL = defaultSessionIdleTTL
	}
	if cfg.Cart.SessionSweepInterval <= 0 {
		cfg.Cart.SessionSweepInterval = defaultSessionSweep
	}
	if strings.TrimSpace(cfg.Checkout.ShippingFee) == "" {
		cfg.Checkout.ShippingFee = defaultShippingFee
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: defaultQRCodeSize, ErrorCorrectionLevel: "M"}
	}
}

// Validate checks the struct tags of the loaded configuration.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if cfg.Session.Provider == SessionProviderPostgres && cfg.Postgres == nil {
		return errors.New("postgres settings are required for the postgres session provider")
	}
	if cfg.ClientLog != nil && cfg.ClientLog.Provider == constants.ClientLogProviderGoogle {
		if cfg.ClientLog.ProjectID == "" || cfg.ClientLog.TopicID == "" {
			return errors.New("project ID and topic ID are required for the google client log provider")
		}
	}

	return nil
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

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{field}.
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
