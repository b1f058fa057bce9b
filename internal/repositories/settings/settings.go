package settings

import (
	"errors"
	"fmt"
	"os/user"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configName = "apache"
	envPrefix  = "APACHE"
	configDir  = ".apache"
)

// Settings holds the optional tuning read from apache.yaml and APACHE_* variables.
type Settings struct {
	// Shell is empty to use the platform shell.
	Shell          string            `mapstructure:"shell"`
	ChunkSize      int               `mapstructure:"chunk_size"`
	MaxOutputBytes int               `mapstructure:"max_output_bytes"`
	LogLevel       string            `mapstructure:"log_level"`
	Probes         map[string]string `mapstructure:"probes"`
}

// Load reads settings from cfgFile, or searches the working directory,
// ~/.apache and /etc/apache for apache.yaml when cfgFile is empty.
// A missing config file is only an error when cfgFile names it explicitly.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("shell", "")
	v.SetDefault("chunk_size", 1024)
	v.SetDefault("max_output_bytes", 0)
	v.SetDefault("log_level", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if usr, err := user.Current(); err == nil {
			v.AddConfigPath(filepath.Join(usr.HomeDir, configDir))
		}
		v.AddConfigPath("/etc/apache/")
	}

	v.SetEnvPrefix(envPrefix) // APACHE_SHELL, APACHE_CHUNK_SIZE, ...
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", s.ChunkSize)
	}
	if s.MaxOutputBytes < 0 {
		return fmt.Errorf("max_output_bytes cannot be negative, got %d", s.MaxOutputBytes)
	}
	return nil
}
