package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Endpoint defaults
const (
	DefaultHost    = "localhost"
	DefaultPort    = 8080
	APIPathPrefix  = "/api/v1"
	ConfigFileName = "config"
	EnvFileName    = ".env"
)

// Viper keys; AutomaticEnv maps them to the upper-case environment names
const (
	KeyServerHost = "server_host"
	KeyServerPort = "server_port"
	KeyDownloadTo = "download_dir"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
)

// Server identifies the transfer API endpoint
type Server struct {
	Host string `mapstructure:"server_host"`
	Port int    `mapstructure:"server_port"`
}

// DefaultServer returns localhost:8080
func DefaultServer() Server {
	return Server{Host: DefaultHost, Port: DefaultPort}
}

// WithDefaults fills unset fields from DefaultServer
func (s Server) WithDefaults() Server {
	if strings.TrimSpace(s.Host) == "" {
		s.Host = DefaultHost
	}
	if s.Port == 0 {
		s.Port = DefaultPort
	}
	return s
}

// Validate checks the endpoint is usable
func (s Server) Validate() error {
	if strings.TrimSpace(s.Host) == "" {
		return errors.New("server host is empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("server port %d out of range", s.Port)
	}
	return nil
}

// BaseURL returns http://{host}:{port}/api/v1
func (s Server) BaseURL() string {
	s = s.WithDefaults()
	return fmt.Sprintf("http://%s:%d%s", s.Host, s.Port, APIPathPrefix)
}

// Config holds everything resolved at startup
type Config struct {
	Server      Server
	DownloadDir string
	LogLevel    string
	LogFormat   string
}

// Load resolves the configuration from dir (defaults to the working directory)
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	v.SetDefault(KeyServerHost, DefaultHost)
	v.SetDefault(KeyServerPort, DefaultPort)
	v.SetDefault(KeyDownloadTo, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "")

	// .env sits between the built-in defaults and config.yaml
	dotenv, err := godotenv.Read(filepath.Join(dir, EnvFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", EnvFileName, err)
	}
	for _, key := range []string{KeyServerHost, KeyServerPort, KeyDownloadTo, KeyLogLevel, KeyLogFormat} {
		if value, ok := dotenv[strings.ToUpper(key)]; ok {
			v.SetDefault(key, value)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	port, err := strconv.Atoi(strings.TrimSpace(v.GetString(KeyServerPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", KeyServerPort, v.GetString(KeyServerPort), err)
	}

	cfg := &Config{
		Server: Server{
			Host: strings.TrimSpace(v.GetString(KeyServerHost)),
			Port: port,
		},
		DownloadDir: v.GetString(KeyDownloadTo),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
	}
	// A blank host means unset. An explicit port 0 is left for Validate.
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}

	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
