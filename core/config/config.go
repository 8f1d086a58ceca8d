package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"backoffice/core/database"
	"backoffice/core/logger"
	"backoffice/core/server"
	"backoffice/core/storage"
	"backoffice/core/validation"
	"backoffice/feature/feeds"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full back office configuration, one section per concern.
type Config struct {
	// Server is the HTTP listener and its write mode.
	Server server.Config `mapstructure:"server"`
	// Database is the store every dataset is staged and promoted in.
	Database database.Config `mapstructure:"database"`
	// Storage is the MinIO bucket feeds are read from.
	Storage storage.Config `mapstructure:"storage"`
	// Feeds maps dataset names to object keys.
	Feeds feeds.Config `mapstructure:"feeds"`
	Log   logger.Config `mapstructure:"log"`
}

// LoadConfig reads <path>/.env (when present) and the environment on top of
// the struct tag defaults, then validates the result. Environment keys are the
// upper-cased dotted keys: DATABASE_DRIVER sets database.driver.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validation.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// bindValues registers every mapstructure key of iface with viper, using the
// field's `default` tag as its value. Registering empty defaults too is what
// lets AutomaticEnv see the key on Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	walkDefaults(t, prefix, v.SetDefault)
}

func walkDefaults(t reflect.Type, prefix string, set func(key string, value any)) {
	for i := range t.NumField() {
		f := t.Field(i)
		name := f.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			walkDefaults(f.Type, name, set)
			continue
		}
		set(name, f.Tag.Get("default"))
	}
}
