package config

// Config is the composed configuration surface consumed by the rest of the
// application. Concrete values come from environment variables, see env.go.
type Config interface {
	EnvConfig
	SequelConfig
	CookieConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

// SequelConfig configures access to the Sequel API.
type SequelConfig interface {
	GetAPIBaseURL() string
	GetAudience() string
}

// CookieConfig configures the session cookie.
type CookieConfig interface {
	CookieSecure() bool
}
