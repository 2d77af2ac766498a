package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Path is the default config directory, relative to the module root.
const Path = "infra/config"

// MustLoad loads the config for the given key from the default directory.
func MustLoad(key string, v interface{}) []byte {
	b, err := Load(Path, key, v)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// Load loads the json config for the given key from the given directory into v.
func Load(dir, key string, v interface{}) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%s.json", key)))
	if err != nil {
		return nil, fmt.Errorf("could not load config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("dir", dir).Str("config", key).Msg("loaded config")

	return b, nil
}
