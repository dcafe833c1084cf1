package config

import (
	"net"
	"strconv"
	"time"
)

// ServerConfig is shared by every demo listener; each one gets its own envPrefix.
type ServerConfig struct {
	Enabled      bool          `env:"ENABLED" envDefault:"true"`
	Host         string        `env:"HOST" envDefault:"0.0.0.0"`
	Port         int           `env:"PORT"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type MetricsConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Host    string `env:"HOST" envDefault:"0.0.0.0"`
	Port    int    `env:"PORT" envDefault:"9090"`
}

type LogConfig struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"apidemo"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	// e.g. "otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
}

// ProbeConfig drives cmd/probe. Host is the address the probe dials;
// ports come from the server sections.
type ProbeConfig struct {
	Host    string        `env:"HOST" envDefault:"127.0.0.1"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`

	FastAPI       ServerConfig        `envPrefix:"FASTAPI_"`
	Flask         ServerConfig        `envPrefix:"FLASK_"`
	Gin           ServerConfig        `envPrefix:"GIN_"`
	Echo          ServerConfig        `envPrefix:"ECHO_"`
	Metrics       MetricsConfig       `envPrefix:"METRICS_"`
	Log           LogConfig           `envPrefix:"LOG_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
	Probe         ProbeConfig         `envPrefix:"PROBE_"`
}

// Default ports match the ones the demo servers have always used.
const (
	defaultGinPort     = 8080
	defaultEchoPort    = 8081
	defaultFastAPIPort = 8082
	defaultFlaskPort   = 8083
)

func (c *Config) applyPortDefaults() {
	for _, s := range []struct {
		cfg  *ServerConfig
		port int
	}{
		{&c.Gin, defaultGinPort},
		{&c.Echo, defaultEchoPort},
		{&c.FastAPI, defaultFastAPIPort},
		{&c.Flask, defaultFlaskPort},
	} {
		if s.cfg.Port == 0 {
			s.cfg.Port = s.port
		}
	}
}

// Server returns a ServerConfig for the metrics listener with the same
// timeouts the demo servers default to.
func (c MetricsConfig) Server() ServerConfig {
	return ServerConfig{
		Enabled:      c.Enabled,
		Host:         c.Host,
		Port:         c.Port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
