package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Messages struct {
	User struct {
		Success struct {
			Created string `yaml:"created"`
			Updated string `yaml:"updated"`
			Deleted string `yaml:"deleted"`
			Fetched string `yaml:"fetched"`
			Listed  string `yaml:"listed"`
		} `yaml:"success"`
		Error struct {
			NotFound       string `yaml:"not_found"`
			EmailExists    string `yaml:"email_exists"`
			UsernameExists string `yaml:"username_exists"`
		} `yaml:"error"`
	} `yaml:"user"`
	Auth struct {
		Success struct {
			Login string `yaml:"login"`
		} `yaml:"success"`
		Error struct {
			InvalidCredentials string `yaml:"invalid_credentials"`
			AccountNotActive   string `yaml:"account_not_active"`
			TokenRequired      string `yaml:"token_required"`
			TokenExpired       string `yaml:"token_expired"`
			TokenInvalid       string `yaml:"token_invalid"`
		} `yaml:"error"`
	} `yaml:"auth"`
	Validation struct {
		Error struct {
			InvalidRequest string `yaml:"invalid_request"`
		} `yaml:"error"`
	} `yaml:"validation"`
	Server struct {
		Error struct {
			Internal string `yaml:"internal"`
		} `yaml:"error"`
	} `yaml:"server"`
}

var AppMessages Messages

func LoadMessages() error {
	file, err := os.ReadFile("config/messages.yaml")
	if err != nil {
		return err
	}

	return yaml.Unmarshal(file, &AppMessages)
}
