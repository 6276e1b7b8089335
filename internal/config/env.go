package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type envConfig struct {
	Port     string `env:"PORT" env-default:"8080"`
	AppName  string `env:"APP_NAME" env-default:"Sequel Events Portal"`
	Env      string `env:"ENV" env-default:"DEV"`
	BaseURL  string `env:"SEQUEL_API_URL" env-default:"https://api.introvoke.com" validate:"required,url"`
	Audience string `env:"SEQUEL_AUDIENCE" env-default:"https://www.introvoke.com/api" validate:"required"`

	// InsecureCookie disables the Secure cookie flag so the portal can be
	// exercised over plain http://localhost.
	InsecureCookie bool `env:"INSECURE_COOKIE" env-default:"false"`
}

var _ Config = (*envConfig)(nil)

// New reads configuration from the environment and validates it.
func New() (Config, error) {
	var cfg envConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *envConfig) GetPort() string {
	port := c.Port
	if port != "" && port[0] != ':' {
		port = ":" + port
	}
	return port
}

func (c *envConfig) GetAppName() string { return c.AppName }

func (c *envConfig) GetEnv() string { return c.Env }

func (c *envConfig) GetAPIBaseURL() string { return c.BaseURL }

func (c *envConfig) GetAudience() string { return c.Audience }

func (c *envConfig) CookieSecure() bool { return !c.InsecureCookie }
