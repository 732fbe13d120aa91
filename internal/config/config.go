package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every automatically bound environment variable,
// e.g. MINIO_ADMIN_SERVER_ADDR for server.addr.
const EnvPrefix = "MINIO_ADMIN"

type Config struct {
	Server Server `mapstructure:"server" yaml:"server"`
	Logger Logger `mapstructure:"logger" yaml:"logger"`
	MinIO  MinIO  `mapstructure:"minio" yaml:"minio"`
	Client Client `mapstructure:"client" yaml:"client"`
}

type Server struct {
	Addr        string `mapstructure:"addr" yaml:"addr"`
	StaticDir   string `mapstructure:"static_dir" yaml:"static_dir"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	// MetricsAddr optionally serves /metrics on a second listener.
	MetricsAddr string `mapstructure:"metrics_addr" yaml:"metrics_addr"`
}

type Logger struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
}

type MinIO struct {
	URL      string `mapstructure:"url" yaml:"url"`
	RootUser string `mapstructure:"root_user" yaml:"root_user"`
	Password string `mapstructure:"password" yaml:"password"`
	Region   string `mapstructure:"region" yaml:"region"`
	// TLS settings for HTTPS endpoints. All optional.
	CACert             string `mapstructure:"ca_cert" yaml:"ca_cert"`
	ClientCert         string `mapstructure:"client_cert" yaml:"client_cert"`
	ClientKey          string `mapstructure:"client_key" yaml:"client_key"`
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// Client configures mlactl's connection to a running admin API server.
type Client struct {
	APIURL  string        `mapstructure:"api_url" yaml:"api_url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// NewViper returns a viper instance with defaults and environment bindings
// applied. Callers may bind command-line flags onto it before LoadFrom.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "./dist")
	v.SetDefault("server.service_name", "minio-lite-admin")
	v.SetDefault("server.metrics_addr", "")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty", false)
	v.SetDefault("minio.url", "http://localhost:9000")
	v.SetDefault("minio.root_user", "")
	v.SetDefault("minio.password", "")
	v.SetDefault("minio.region", "us-east-1")
	v.SetDefault("minio.ca_cert", "")
	v.SetDefault("minio.client_cert", "")
	v.SetDefault("minio.client_key", "")
	v.SetDefault("minio.insecure_skip_verify", false)
	v.SetDefault("client.api_url", "http://localhost:8080")
	v.SetDefault("client.timeout", 30*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional names used by MinIO tooling and container images.
	_ = v.BindEnv("server.addr", EnvPrefix+"_SERVER_ADDR", "HTTP_LISTEN_ADDR")
	_ = v.BindEnv("logger.level", EnvPrefix+"_LOGGER_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("minio.url", EnvPrefix+"_MINIO_URL", "MINIO_URL")
	_ = v.BindEnv("minio.root_user", EnvPrefix+"_MINIO_ROOT_USER", "MINIO_ROOT_USER")
	_ = v.BindEnv("minio.password", EnvPrefix+"_MINIO_PASSWORD", "MINIO_ROOT_PASSWORD")

	return v
}

// Load reads configuration from defaults, the environment and an optional
// config file. An empty path searches for config.yaml in . and ./config.
func Load(path string) (*Config, error) {
	return LoadFrom(NewViper(), path)
}

// LoadFrom is Load on a caller-provided viper instance.
func LoadFrom(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the settings required by the given component are
// present. Components: "server", "client".
func (c *Config) Validate(component string) error {
	var missing []string

	switch component {
	case "server":
		if c.Server.Addr == "" {
			missing = append(missing, "server.addr")
		}
		if c.MinIO.URL == "" {
			missing = append(missing, "minio.url")
		}
		if c.MinIO.RootUser == "" {
			missing = append(missing, "minio.root_user")
		}
		if c.MinIO.Password == "" {
			missing = append(missing, "minio.password")
		}
	case "client":
		if c.Client.APIURL == "" {
			missing = append(missing, "client.api_url")
		}
	default:
		return fmt.Errorf("unknown component %q", component)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	if component == "server" {
		u, err := url.Parse(c.MinIO.URL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("minio.url must be an http(s) URL, got %q", c.MinIO.URL)
		}
		if (c.MinIO.ClientCert == "") != (c.MinIO.ClientKey == "") {
			return fmt.Errorf("minio.client_cert and minio.client_key must both be set")
		}
	}
	return nil
}

// Redacted returns a copy with secrets masked, suitable for display.
func (c *Config) Redacted() Config {
	out := *c
	if out.MinIO.Password != "" {
		out.MinIO.Password = "********"
	}
	return out
}
