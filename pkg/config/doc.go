// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for reading `.env` files and
// `github.com/caarlos0/env/v11` for parsing tagged structs:
//
//	type Config struct {
//	    DefaultCountry string `env:"SHOP_DEFAULT_COUNTRY" envDefault:"GB"`
//	    LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Load reads the `.env` file in the working directory the first time it is
// called, if one exists; variables already present in the process
// environment win. Use LoadEnv to read other files explicitly; their values
// override the process environment.
//
// Failures are reported with the sentinel errors in errors.go joined with the
// underlying cause, so `errors.Is` works on the result.
package config
