package internal

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"
)

const configSchema = `{
	"type": "object",
	"properties": {
		"capacity": {"type": "integer", "minimum": 0},
		"log_level": {"type": "string", "enum": ["debug", "info", "warn", "error"]},
		"log_encoding": {"type": "string", "enum": ["console", "json"]}
	},
	"required": ["capacity", "log_level", "log_encoding"]
}`

// Config holds the settings of one console run. A zero Capacity means the
// capacity is asked for interactively.
type Config struct {
	Capacity    int    `mapstructure:"capacity" json:"capacity"`
	LogLevel    string `mapstructure:"log_level" json:"log_level"`
	LogEncoding string `mapstructure:"log_encoding" json:"log_encoding"`
}

// LoadConfig reads COACH_* variables (optionally from a .env file) and the
// file named by COACH_CONFIG, if any.
func LoadConfig() (Config, error) {
	// Optional for local runs
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("COACH")
	v.AutomaticEnv()

	v.SetDefault("capacity", 0)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_encoding", "console")

	if path := TrimLines(os.Getenv("COACH_CONFIG")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", path)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewGoLoader(cfg),
	)
	if err != nil {
		return errors.Wrap(err, "validate config")
	}
	if !result.Valid() {
		return SchemaErrors(result.Errors())
	}
	return nil
}
