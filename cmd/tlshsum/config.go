package main

import (
	"github.com/spf13/viper"
)

// Config holds tlshsum's defaults, loaded from (in increasing
// precedence) a config file, the TLSHSUM_ environment, and command-line
// flags, mirroring how the teacher repo layers viper under its daemon
// configs.
type Config struct {
	Algo          string `mapstructure:"algo"`
	IncludeLength bool   `mapstructure:"include_length"`
}

func defaultConfig() *Config {
	return &Config{
		Algo:          "TLSH",
		IncludeLength: true,
	}
}

// loadConfig reads tlshsum.yaml from the working directory or
// $HOME/.tlsh-go, if present, falling back silently to defaultConfig
// when no file is found.
func loadConfig() (*Config, error) {
	cfg := defaultConfig()

	viper.SetConfigName("tlshsum")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.tlsh-go")
	viper.SetEnvPrefix("TLSHSUM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if viper.IsSet("algo") {
		cfg.Algo = viper.GetString("algo")
	}
	if viper.IsSet("include_length") {
		cfg.IncludeLength = viper.GetBool("include_length")
	}

	return cfg, nil
}
