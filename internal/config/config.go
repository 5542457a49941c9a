package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Server    Server    `yaml:"server"`
	Game      Game      `yaml:"game"`
	Console   Console   `yaml:"console"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Server struct {
	Scheme  string        `yaml:"scheme" env:"TICTACTOE_SERVER_SCHEME" env-default:"http"`
	Host    string        `yaml:"host" env:"TICTACTOE_SERVER_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"TICTACTOE_SERVER_PORT" env-default:"3000"`
	Timeout time.Duration `yaml:"timeout" env:"TICTACTOE_SERVER_TIMEOUT" env-default:"0s"`
}

type Game struct {
	MaxRounds    int  `yaml:"max-rounds" env:"TICTACTOE_MAX_ROUNDS" env-default:"5"`
	ClientStarts bool `yaml:"client-starts" env:"TICTACTOE_CLIENT_STARTS" env-default:"false"`
	Autoplay     bool `yaml:"autoplay" env:"TICTACTOE_AUTOPLAY" env-default:"false"`
}

type Console struct {
	Color bool `yaml:"color" env:"TICTACTOE_COLOR" env-default:"false"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	ServiceName  string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tictactoe-client"`
}

// MustLoad - load configuration from the config.yml file, or from the environment alone when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	return config, nil
}

// GetServerURL returns the base URL every game server request is built on.
func (that *Server) GetServerURL() string {
	serverURL := url.URL{
		Scheme: that.Scheme,
		Host:   net.JoinHostPort(that.Host, that.Port),
	}

	return serverURL.String()
}
