package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all runtime settings. Values are layered: built-in
// defaults, then an optional YAML file, then LEDGER_* environment
// variables.
type Config struct {
	Port             string `koanf:"port"`
	DataFile         string `koanf:"data_file"`
	AdminPassword    string `koanf:"admin_password"`
	JWTSecret        string `koanf:"jwt_secret"`
	TokenTTLMinutes  int    `koanf:"token_ttl_minutes"`
	LoginAttempts    int    `koanf:"login_attempts"`
	InterestSchedule string `koanf:"interest_schedule"`
	SnapshotSchedule string `koanf:"snapshot_schedule"`
	Workers          int    `koanf:"workers"`
}

// Load builds the Config. The file path may be empty or point to a
// missing file; only a present-but-unreadable file is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	_ = k.Load(confmap.Provider(map[string]interface{}{
		"port":              "9446",
		"data_file":         "bank_data.txt",
		"admin_password":    "admin123",
		"jwt_secret":        "local-dev-secret",
		"token_ttl_minutes": 15,
		"login_attempts":    3,
		"interest_schedule": "@monthly",
		"snapshot_schedule": "@every 5m",
		"workers":           4,
	}, "."), nil)

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("LEDGER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LEDGER_"))
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
