package cli

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config is the inspectgen configuration.
type Config struct {
	Scan   ScanConfig   `mapstructure:"scan"`
	Gen    GenConfig    `mapstructure:"gen"`
	Browse BrowseConfig `mapstructure:"browse"`
}

// ScanConfig selects the member sources of the metadata cache.
type ScanConfig struct {
	Properties bool `mapstructure:"properties"`
	Fields     bool `mapstructure:"fields"`
}

// GenConfig configures code generation.
type GenConfig struct {
	Package     string `mapstructure:"package"`
	PackagePath string `mapstructure:"package_path"`
	OutputDir   string `mapstructure:"output_dir"`
	Comments    bool   `mapstructure:"comments"`
}

// BrowseConfig configures the ls command.
type BrowseConfig struct {
	Root  string `mapstructure:"root"`
	Store string `mapstructure:"store"`
}

// ErrInvalidConfig is returned when a loaded configuration is unusable.
var ErrInvalidConfig = errors.New("invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("scan.properties", true)
	v.SetDefault("scan.fields", true)
	v.SetDefault("gen.package", "inspectors")
	v.SetDefault("gen.package_path", "")
	v.SetDefault("gen.output_dir", "./generated")
	v.SetDefault("gen.comments", true)
	v.SetDefault("browse.root", ".")
	v.SetDefault("browse.store", ".inspectgen/browse.yaml")
}

// LoadConfig reads path, or inspectgen.yaml from the working directory when
// path is empty, through fs. A missing default file is not an error.
func LoadConfig(v *viper.Viper, fs afero.Fs, path string) (*Config, error) {
	setDefaults(v)
	v.SetFs(fs)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("inspectgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("INSPECTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if !token.IsIdentifier(cfg.Gen.Package) {
		return fmt.Errorf("%w: gen.package %q is not a Go identifier", ErrInvalidConfig, cfg.Gen.Package)
	}

	if cfg.Gen.OutputDir == "" {
		return fmt.Errorf("%w: gen.output_dir is empty", ErrInvalidConfig)
	}

	if !cfg.Scan.Properties && !cfg.Scan.Fields {
		return fmt.Errorf("%w: scan.properties and scan.fields are both disabled", ErrInvalidConfig)
	}

	return nil
}
