package config

import "time"

// Environment names accepted by App.Env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	DefaultHTTPAddress    = "localhost:8000"
	DefaultServerURL      = "http://localhost:8000"
	DefaultTokenIssuer    = "go-notes-keeper"
	DefaultTokenDuration  = 60 * time.Minute
	DefaultRequestTimeout = 10 * time.Second
	DefaultLocalDSN       = "notes-keeper.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Env:           EnvProduction,
		},
		Storage: Storage{
			Local: Local{DSN: DefaultLocalDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			CORSOrigins:    []string{"*"},
		},
		Adapter: Adapter{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
