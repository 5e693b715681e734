package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the settings of the CLI and the HTTP server.
// Values come from QREET_* environment variables and an optional qreet.yaml.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	QR   QRConfig
}

// AppConfig general settings.
type AppConfig struct {
	Env      string // development, production
	LogLevel string
}

// HTTPConfig server settings.
type HTTPConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// QRConfig rendering settings.
type QRConfig struct {
	Size  int    // PNG side in pixels
	Level string // L, M, Q, H
}

// Load reads configuration from the environment and, when present, qreet.yaml in . or ./config.
func Load() (*Config, error) {
	return load(viper.New())
}

// LoadFile reads configuration from an explicit file, still letting env vars win.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("qreet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("QREET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("env"),
			LogLevel: v.GetString("log.level"),
		},
		HTTP: HTTPConfig{
			Address:      v.GetString("http.address"),
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
		},
		QR: QRConfig{
			Size:  v.GetInt("qr.size"),
			Level: v.GetString("qr.level"),
		},
	}

	if cfg.QR.Size <= 0 {
		return nil, fmt.Errorf("config: qr.size must be positive, got %d", cfg.QR.Size)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("qr.size", 256)
	v.SetDefault("qr.level", "M")
}
