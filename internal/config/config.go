package config

import (
	"time"

	"github.com/Bessima/token-shipping/internal/middlewares/logger"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/caarlos0/env"
	"go.uber.org/zap"
)

const (
	defaultJWTSecret            = "token-shipping-dev-secret"
	defaultTokenTeamPassword    = "54321"
	defaultShippingTeamPassword = "12345"
	defaultSessionTTL           = 12 * time.Hour
)

type Config struct {
	Address string `env:"RUN_ADDRESS"`

	ShipmentsFile string `env:"SHIPMENTS_FILE"`
	ManifestDir   string `env:"MANIFEST_DIR"`
	AssetsDir     string `env:"ASSETS_DIR"`
	DatabaseDNS   string `env:"DATABASE_URI"`
	LogLevel      string `env:"LOG_LEVEL"`

	JWTSecret            string        `env:"JWT_SECRET"`
	TokenTeamPassword    string        `env:"TOKEN_TEAM_PASSWORD"`
	ShippingTeamPassword string        `env:"SHIPPING_TEAM_PASSWORD"`
	SessionTTL           time.Duration `env:"SESSION_TTL"`
}

func InitConfig() *Config {
	flags := Flags{}
	flags.Init()

	cfg := Config{
		Address:       flags.address,
		ShipmentsFile: flags.shipmentsFile,
		ManifestDir:   flags.manifestDir,
		AssetsDir:     flags.assetsDir,
		DatabaseDNS:   flags.dbDNS,
		LogLevel:      flags.logLevel,
	}
	cfg.setDefaults()
	cfg.parseEnv()

	return &cfg
}

func (cfg *Config) setDefaults() {
	cfg.JWTSecret = defaultJWTSecret
	cfg.TokenTeamPassword = defaultTokenTeamPassword
	cfg.ShippingTeamPassword = defaultShippingTeamPassword
	cfg.SessionTTL = defaultSessionTTL
}

func (cfg *Config) parseEnv() {
	err := env.Parse(cfg)
	if err != nil {
		logger.Log.Warn("Getting an error while parsing the configuration", zap.String("err", err.Error()))
	}
}

// RolePasswords is the shared password of every role.
func (cfg *Config) RolePasswords() map[models.Role]string {
	return map[models.Role]string{
		models.TokenTeamRole:    cfg.TokenTeamPassword,
		models.ShippingTeamRole: cfg.ShippingTeamPassword,
	}
}

func (cfg *Config) UsesDatabase() bool {
	return cfg.DatabaseDNS != ""
}
