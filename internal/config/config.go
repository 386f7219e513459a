package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDriver   string `yaml:"db_driver"`
	DBHost     string `yaml:"db_host"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBPort     string `yaml:"db_port"`

	AppPort string `yaml:"app_port"`
	AppEnv  string `yaml:"app_env"`

	JWTSecret          string `yaml:"jwt_secret"`
	TokenTTLHours      int    `yaml:"token_ttl_hours"`
	AcceptLegacyTokens bool   `yaml:"accept_legacy_tokens"`

	OrderNumberOffset  int `yaml:"order_number_offset"`
	DeliveryETAMinutes int `yaml:"delivery_eta_minutes"`

	CORSOrigin        string `yaml:"cors_origin"`
	AMQPURL           string `yaml:"amqp_url"`
	InternalSecretKey string `yaml:"internal_secret_key"`
}

var ErrMissingDBHost = errors.New("environment variables not loaded properly: DB_HOST is empty")

func defaults() *Config {
	return &Config{
		DBDriver:           "postgres",
		DBPort:             "5432",
		AppPort:            "8080",
		AppEnv:             "development",
		TokenTTLHours:      30 * 24,
		OrderNumberOffset:  1000,
		DeliveryETAMinutes: 45,
		CORSOrigin:         "http://localhost:3000",
	}
}

// Load reads .env (if present), an optional YAML file named by CONFIG_FILE,
// and the process environment. Environment variables win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.DBHost == "" {
		return nil, ErrMissingDBHost
	}

	return cfg, nil
}

// LoadConfig is Load for binaries: any error is fatal.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c *Config) DeliveryETA() time.Duration {
	return time.Duration(c.DeliveryETAMinutes) * time.Minute
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"DB_DRIVER":           &cfg.DBDriver,
		"DB_HOST":             &cfg.DBHost,
		"DB_USER":             &cfg.DBUser,
		"DB_PASSWORD":         &cfg.DBPassword,
		"DB_NAME":             &cfg.DBName,
		"DB_PORT":             &cfg.DBPort,
		"APP_PORT":            &cfg.AppPort,
		"APP_ENV":             &cfg.AppEnv,
		"JWT_SECRET":          &cfg.JWTSecret,
		"CORS_ORIGIN":         &cfg.CORSOrigin,
		"AMQP_URL":            &cfg.AMQPURL,
		"INTERNAL_SECRET_KEY": &cfg.InternalSecretKey,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"TOKEN_TTL_HOURS":      &cfg.TokenTTLHours,
		"ORDER_NUMBER_OFFSET":  &cfg.OrderNumberOffset,
		"DELIVERY_ETA_MINUTES": &cfg.DeliveryETAMinutes,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv("ACCEPT_LEGACY_TOKENS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ACCEPT_LEGACY_TOKENS: %w", err)
		}
		cfg.AcceptLegacyTokens = b
	}

	return nil
}
