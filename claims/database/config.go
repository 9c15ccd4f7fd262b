package database

import (
	"errors"

	"github.com/nisavid/32health-assmt-claim-process/claims/utils"
	"github.com/nisavid/32health-assmt-claim-process/conf"
	"github.com/nisavid/32health-assmt-claim-process/log"
)

type Config struct {
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	ConnMaxIdleTime    int

	DatabaseURL string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		MaxOpenConns:       utils.GetEnvInt("CLAIMS_DB_MAX_OPEN_CONNS", 60),
		MaxIdleConns:       utils.GetEnvInt("CLAIMS_DB_MAX_IDLE_CONNS", 40),
		ConnMaxLifetimeMin: utils.GetEnvInt("CLAIMS_DB_CONN_MAX_LIFETIME_MIN", 5),
		ConnMaxIdleTime:    utils.GetEnvInt("CLAIMS_DB_CONN_MAX_IDLE_TIME", 30),
		DatabaseURL:        conf.GetEnv("DATABASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("invalid config, DatabaseURL must be set")
	}

	log.API.Info("Successfully loaded configuration for Database.")

	return cfg, nil
}
