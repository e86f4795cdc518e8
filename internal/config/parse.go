package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/chat-relay/internal/validator"
)

// ParseAndValidate reads the TOML config and fills the store credentials from the environment.
// The .env file in the working directory is loaded first, if it exists.
func ParseAndValidate(filename string) (Config, error) {
	var conf Config
	if _, err := toml.DecodeFile(filename, &conf); err != nil {
		return conf, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return conf, fmt.Errorf("load .env: %v", err)
	}

	if err := envconfig.Process("", &conf.Stores.Credentials); err != nil {
		return conf, fmt.Errorf("process env: %v", err)
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}
