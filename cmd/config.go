package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	// AdminID and AdminName describe the administrator account provisioned at startup.
	AdminID   string
	AdminName string

	// DBDSN, when set, replaces the connection string built from the DB* fields.
	DBDSN string
}

// LoadConfig reads settings in order: .env (if present), environment, then
// command line flags. A missing .env file is only reported.
func LoadConfig(envFile string, args []string, logger *slog.Logger) (Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		logger.Warn(".env not loaded", "file", envFile, "error", err)
	}

	cfg := Config{
		HTTPPort:   envOr("HTTP_PORT", defaultHTTPPort),
		DBHost:     envOr("DB_HOST", defaultDBHost),
		DBPort:     envOr("DB_PORT", defaultDBPort),
		DBUser:     envOr("DB_USER", defaultDBUser),
		DBPassword: envOr("DB_PASSWORD", defaultDBPassword),
		DBName:     envOr("DB_NAME", defaultDBName),
		DBSslMode:  envOr("DB_SSLMODE", defaultDBSslMode),
		LogLevel:   envOr("LOG_LEVEL", defaultLogLevel),
		AdminID:    envOr("ADMIN_ID", defaultAdminID),
		AdminName:  envOr("ADMIN_NAME", defaultAdminName),
		DBDSN:      os.Getenv("DB_DSN"),
	}

	flags := pflag.NewFlagSet("shipping", pflag.ContinueOnError)
	flags.StringVarP(&cfg.HTTPPort, "http-port", "p", cfg.HTTPPort, "port to listen on")
	flags.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "postgres connection string")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var portErr error
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		portErr = errs.NewValueIsInvalidErrorWithCause("httpPort", fmt.Errorf("invalid port %q", c.HTTPPort))
	}

	var levelErr error
	if _, err := c.SlogLevel(); err != nil {
		levelErr = err
	}

	var dbErr error
	if c.DBDSN == "" && (c.DBHost == "" || c.DBName == "") {
		dbErr = errs.NewValueIsRequiredError("dbHost/dbName")
	}

	var adminErr error
	if _, err := kernel.UUIDFromString(c.AdminID); err != nil {
		adminErr = errs.NewValueIsInvalidErrorWithCause("adminId", err)
	}

	return errors.Join(portErr, levelErr, dbErr, adminErr)
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("logLevel", err)
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
