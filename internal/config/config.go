package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		JWT struct {
			// Secret is read from the JWT_SECRET environment variable,
			// never from the config file.
			Secret string `yaml:"-"`
			Expiry string `yaml:"expiry"`
		} `yaml:"jwt"`
		Bcrypt struct {
			Cost int `yaml:"cost"`
		} `yaml:"bcrypt"`
	} `yaml:"auth"`
}

var AppConfig Config

func LoadConfig() error {
	file, err := os.ReadFile("config/config.yaml")
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(file, &AppConfig); err != nil {
		return err
	}

	AppConfig.Server.Port = getEnvOr("PORT", AppConfig.Server.Port)
	AppConfig.Auth.JWT.Secret = os.Getenv("JWT_SECRET")
	AppConfig.Auth.JWT.Expiry = getEnvOr("JWT_EXPIRES_IN", AppConfig.Auth.JWT.Expiry)

	if rounds := os.Getenv("BCRYPT_SALT_ROUNDS"); rounds != "" {
		if cost, err := strconv.Atoi(rounds); err == nil {
			AppConfig.Auth.Bcrypt.Cost = cost
		}
	}

	return nil
}

func getEnvOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
