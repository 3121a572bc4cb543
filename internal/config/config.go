// Package config resolves the identifiers and credentials a sync run needs
// from Viper configuration and the process environment.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/agentstation/mirrorsync/internal/notion"
	"github.com/agentstation/mirrorsync/pkg/errors"
)

// Environment variable names read by Load.
const (
	EnvToken    = "NOTION_TOKEN"
	EnvMasterDB = "MASTER_DB_ID"
	EnvMirrorDB = "MIRROR_DB_ID"
)

// Config holds the resolved inputs of one sync run. Database IDs are already
// normalized to the store's canonical hyphenated form.
type Config struct {
	Token    string
	MasterDB string
	MirrorDB string
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Load resolves and validates the run configuration. Database identifiers may
// be raw IDs, hyphenated UUIDs, or full Notion URLs; they are normalized here
// so the rest of the system only sees canonical IDs.
func Load() (*Config, error) {
	token := GetString(EnvToken)
	if token == "" {
		return nil, errors.NewConfigError("notion", "missing "+EnvToken, nil)
	}

	master := GetString(EnvMasterDB)
	mirror := GetString(EnvMirrorDB)
	if master == "" || mirror == "" {
		return nil, errors.NewConfigError("notion",
			EnvMasterDB+" and/or "+EnvMirrorDB+" are missing", nil)
	}

	return &Config{
		Token:    token,
		MasterDB: notion.NormalizeDatabaseID(master),
		MirrorDB: notion.NormalizeDatabaseID(mirror),
	}, nil
}
