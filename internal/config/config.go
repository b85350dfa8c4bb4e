package config

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. PCSET_DEBUG=true
const EnvPrefix = "PCSET"

type Config struct {
	Debug bool `mapstructure:"debug"`
	// Concurrency is the number of workers used to build the set-class catalog
	Concurrency int `mapstructure:"concurrency"`
}

func Default() Config {
	return Config{
		Debug:       false,
		Concurrency: runtime.NumCPU(),
	}
}

// Load resolves the configuration from defaults, an optional config file,
// the environment and whatever flags were bound to v, in increasing priority.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	def := Default()
	v.SetDefault("debug", def.Debug)
	v.SetDefault("concurrency", def.Concurrency)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", cfgFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not decode config")
	}

	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	return &cfg, nil
}
