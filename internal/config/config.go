package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/tcfw/minichain/internal/utils/logging"
)

const (
	Cfg_verbose = "verbose"
	Cfg_output  = "output"
)

var (
	defaults = map[string]interface{}{
		Cfg_verbose: false,
		Cfg_output:  "table",
	}
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func GetConfig() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("minichain")
	viper.AddConfigPath("/etc/minichain/")
	viper.AddConfigPath("$HOME/.minichain")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("MINICHAIN")
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error
			logging.Entry().Debug("no config found")
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	c := &Config{
		output: viper.GetString(Cfg_output),
	}

	c.chain, err = buildChainConfig()
	if err != nil {
		return nil, errors.Wrap(err, "chain config")
	}

	if viper.GetBool(Cfg_verbose) {
		logging.SetVerbose(true)
		logging.Entry().WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	chain  *Chain
	output string
}

func (c *Config) Chain() *Chain {
	return c.chain
}

// Output is the report format, table or yaml
func (c *Config) Output() string {
	return c.output
}
