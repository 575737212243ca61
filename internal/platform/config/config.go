package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	AuthModeDev  = "dev"
	AuthModeJWT  = "jwt"
	AuthModeOdin = "odin"
)

// Config agrupa la configuración del servicio.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port" validate:"gt=0,lt=65536"`
	AppName string `mapstructure:"app_name"`
}

type DatabaseConfig struct {
	// Vacío => storage in-memory (modo dev).
	DSN     string `mapstructure:"dsn"`
	Migrate bool   `mapstructure:"migrate"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type AuthConfig struct {
	Mode       string `mapstructure:"mode" validate:"oneof=dev jwt odin"`
	JWTSecret  string `mapstructure:"jwt_secret" validate:"required_if=Mode jwt,omitempty,min=32"`
	OdinURL    string `mapstructure:"odin_base_url" validate:"required_if=Mode odin,omitempty,url"`
	OdinAPIKey string `mapstructure:"odin_api_key" validate:"required_if=Mode odin"`
	BcryptCost int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// envBindings mantiene los nombres de variables que ya usaba el servicio.
var envBindings = map[string]string{
	"server.port":        "PORT",
	"server.app_name":    "APP_NAME",
	"database.dsn":       "DB_DSN",
	"database.migrate":   "DB_MIGRATE",
	"log.level":          "LOG_LEVEL",
	"log.format":         "LOG_FORMAT",
	"auth.mode":          "AUTH_MODE",
	"auth.jwt_secret":    "JWT_SECRET",
	"auth.odin_base_url": "ODIN_BASE_URL",
	"auth.odin_api_key":  "ODIN_API_KEY",
	"auth.bcrypt_cost":   "BCRYPT_COST",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.app_name", "vet-clinic-records")
	v.SetDefault("database.migrate", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("auth.mode", AuthModeDev)
	v.SetDefault("auth.bcrypt_cost", 10)
}

// Load lee env vars y, si configFile no está vacío, un archivo de config.
// Las env vars pisan lo que venga en el archivo.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.Auth.Mode = strings.ToLower(strings.TrimSpace(cfg.Auth.Mode))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
