package config

import (
	"encoding/json"
	"os"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so the file only
// overrides what it actually sets.
type jsonConfig struct {
	DatabasePath *string `json:"database_path"`
	SessionKey   *string `json:"session_key"`
	Seed         *bool   `json:"seed"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. When no file is given, nothing happens. Read or
// unmarshal errors panic; the entry point treats a broken config file
// as fatal.
func parseJSON(cfg *Config) {
	path := configFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SessionKey != nil {
		cfg.SessionKey = *jc.SessionKey
	}
	if jc.Seed != nil {
		cfg.Seed = *jc.Seed
	}
}
