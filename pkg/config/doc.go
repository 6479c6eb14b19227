// Package config loads the SDK configuration from environment variables,
// with an optional .env file for development setups. It wraps
// github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	client, _ := apiclient.New(cfg.APIBaseURL, apiclient.WithTimeout(cfg.RequestTimeout))
//
// All variables carry the COMMERCEAI_ prefix and have working defaults, so a
// zero-configuration local run points at http://localhost:8000/api/v1.
package config
