package cmd

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/curesma/registry-bridge/curesma"
	"github.com/curesma/registry-bridge/redcap"
)

type Config struct {
	// REDCap holds the connection to the registry project.
	REDCap redcap.Config `koanf:"redcap"`
	// CureSMA holds the connection to the data-exchange endpoint.
	CureSMA curesma.Config `koanf:"curesma"`
	// Public holds the configuration for the trigger interface.
	Public   InterfaceConfig `koanf:"public"`
	LogLevel zerolog.Level   `koanf:"loglevel"`
}

func (c Config) Validate() error {
	if err := c.REDCap.Validate(); err != nil {
		return fmt.Errorf("invalid REDCap configuration: %w", err)
	}
	if err := c.CureSMA.Validate(); err != nil {
		return fmt.Errorf("invalid CureSMA configuration: %w", err)
	}
	return nil
}

// InterfaceConfig holds the configuration for an HTTP interface.
type InterfaceConfig struct {
	// Address holds the address to listen on.
	Address string `koanf:"address"`
}

// LoadConfig loads the configuration from the environment.
func LoadConfig() (*Config, error) {
	result := DefaultConfig()
	if err := loadConfigInto(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func loadConfigInto(target any) error {
	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue("BRIDGE_", ".", func(key string, value string) (string, interface{}) {
		key = strings.Replace(strings.ToLower(strings.TrimPrefix(key, "BRIDGE_")), "_", ".", -1)
		if len(value) == 0 {
			return key, nil
		}
		return key, value
	}), nil)
	if err != nil {
		return err
	}
	return k.Unmarshal("", target)
}

// DefaultConfig returns sensible, but not complete, default configuration values.
func DefaultConfig() Config {
	return Config{
		LogLevel: zerolog.InfoLevel,
		Public: InterfaceConfig{
			Address: ":8080",
		},
		REDCap:  redcap.DefaultConfig(),
		CureSMA: curesma.DefaultConfig(),
	}
}
