package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "agency"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "AGENCY_DB_DSN"
	EnvDBHost = "AGENCY_DB_HOST"
	EnvDBUser = "AGENCY_DB_USER"
	EnvDBName = "AGENCY_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Reports      ReportsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AGENCY_APP_ENV" required:"true"`
	Port         string `envconfig:"AGENCY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AGENCY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AGENCY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AGENCY_DB_DSN"`
	Driver string `envconfig:"AGENCY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AGENCY_DB_HOST"`
	LegacyPort     int    `envconfig:"AGENCY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AGENCY_DB_USER"`
	LegacyPassword string `envconfig:"AGENCY_DB_PASSWORD"`
	LegacyName     string `envconfig:"AGENCY_DB_NAME"`
	LegacySSLMode  string `envconfig:"AGENCY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AGENCY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AGENCY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AGENCY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AGENCY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AGENCY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AGENCY_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"AGENCY_JWT_EXPIRATION_MINUTES" default:"720"`
}

type ReportsConfig struct {
	// RequestTimeout bounds the whole dashboard fan-out; a single deadline
	// covers all six reads.
	RequestTimeout time.Duration `envconfig:"AGENCY_REPORTS_REQUEST_TIMEOUT" default:"15s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"AGENCY_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
