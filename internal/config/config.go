package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Logging    Logging  `yaml:"logging"`
	Categories []string `yaml:"categories" validate:"required,min=1"`
	Snapshot   string   `yaml:"snapshot"`
}

type Logging struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic("can't unmarshal config file")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return &cfg
}
