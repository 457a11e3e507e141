// Package config loads client configuration from files and the environment.
//
// It uses Viper to read a configuration file (YAML, JSON or TOML) and godotenv
// to load a .env file, then overlays every environment variable so that
// PROMOSTANDARDS_PRICING_SERVICE_URL fills promostandards.pricing_service_url.
// Precedence, lowest to highest: values already present in the target
// struct, the configuration file, the environment (including .env).
//
// # Usage
//
//	var cfg struct {
//	    PromoStandards Settings `mapstructure:"promostandards"`
//	}
//	err := config.LoadConfig("promostandards", &cfg, config.WithConfigFile("config.yml"))
package config
