package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type DBParam struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Name     string `toml:"name"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	SSLMode  string `toml:"ssl_mode"`
}

type ConfigParam struct {
	ServerPort     string  `toml:"server_port"`
	HandleCORS     bool    `toml:"handle_cors"`
	JWTSigningKey  string  `toml:"jwt_signing_key"`
	TokenValidity  string  `toml:"token_validity"`
	SingleUserMode bool    `toml:"single_user_mode"`
	DefaultActor   string  `toml:"default_actor"`
	DB             DBParam `toml:"db"`
}

var cfg *ConfigParam

func Config() *ConfigParam {
	return cfg
}

func LoadConfig(filename string) error {
	if filename == "" {
		cfg = defaultConfig()
		return nil
	}
	// Read the config file
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}
	// Parse the config file
	cp := *defaultConfig()
	if _, err := toml.Decode(string(content), &cp); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}
	// assign config to global cfg
	cfg = &cp
	return nil
}

func defaultConfig() *ConfigParam {
	return &ConfigParam{
		ServerPort:     "8196",
		HandleCORS:     true,
		TokenValidity:  "12h",
		SingleUserMode: true,
		DefaultActor:   "admin@localhost",
		DB: DBParam{
			Host:     "localhost",
			Port:     5432,
			Name:     "articod",
			User:     "catalog_api",
			Password: "",
			SSLMode:  "disable",
		},
	}
}

func init() {
	err := LoadConfig("")
	if err != nil {
		panic(err)
	}
}
