package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Log       LogConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	AppName     string `validate:"required"`
	Environment string `validate:"required"`
	HTTPPort    string `validate:"required,numeric"`
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32 `validate:"gte=0"`
	PoolMinConns        int32 `validate:"gte=0"`
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration

	RunMigrations bool
	RunSeeders    bool
}

type JWTConfig struct {
	AccessSecret    string `validate:"required,min=16"`
	AccessExpiresIn time.Duration
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Format string `validate:"oneof=json console"`
}

type RecommendConfig struct {
	JobCount       int `validate:"gte=1,ltefield=MaxCount"`
	CandidateCount int `validate:"gte=1,ltefield=MaxCount"`
	MaxCount       int `validate:"gte=1"`
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads the full server configuration. App, HTTP and JWT settings are
// required.
func Load() (Config, error) {
	return load(true)
}

// LoadTooling reads configuration for commands that neither serve HTTP nor
// verify tokens. App, HTTP and JWT settings become optional and are not
// validated.
func LoadTooling() (Config, error) {
	return load(false)
}

func load(serving bool) (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	need := req
	if !serving {
		need = opt
	}

	cfg.App = AppConfig{
		AppName:     need("APP_NAME"),
		Environment: need("APP_ENV"),
		HTTPPort:    need("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:              opt("DB_HOST"),
		DBPort:              opt("DB_PORT"),
		DBName:              opt("DB_NAME"),
		DBUser:              opt("DB_USER"),
		DBPassword:          opt("DB_PASSWORD"),
		DBSSLMode:           orDefault(opt("DB_SSL_MODE"), "disable"),
		ConnectTimeout:      durationOr(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:        int32(intOr(opt("DB_MAX_CONNS"), 10)),
		PoolMinConns:        int32(intOr(opt("DB_MIN_CONNS"), 0)),
		PoolMaxConnLifetime: durationOr(opt("DB_MAX_CONN_LIFETIME"), time.Hour),
		PoolMaxConnIdleTime: durationOr(opt("DB_MAX_CONN_IDLE_TIME"), 30*time.Minute),
		RunMigrations:       boolOr(opt("RUN_MIGRATIONS"), false),
		RunSeeders:          boolOr(opt("RUN_SEEDERS"), false),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    need("JWT_ACCESS_SECRET"),
		AccessExpiresIn: durationOr(opt("JWT_ACCESS_EXPIRES_IN"), 15*time.Minute),
	}

	cfg.Log = LogConfig{
		Level:  strings.ToLower(orDefault(opt("LOG_LEVEL"), "info")),
		Format: strings.ToLower(orDefault(opt("LOG_FORMAT"), "json")),
	}

	cfg.Recommend = RecommendConfig{
		JobCount:       intOr(opt("RECOMMEND_JOB_COUNT"), 6),
		CandidateCount: intOr(opt("RECOMMEND_CANDIDATE_COUNT"), 10),
		MaxCount:       intOr(opt("RECOMMEND_MAX_COUNT"), 50),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	validate := cfg.Validate
	if !serving {
		validate = cfg.validateTooling
	}
	if err := validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) validateTooling() error {
	v := validator.New()
	for _, section := range []any{c.Database, c.Log, c.Recommend} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOr(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func boolOr(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func durationOr(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
