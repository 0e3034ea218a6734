package services

import (
	"os"
	"path/filepath"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings.
const (
	keyDataDir      = "data.dir"
	keyDataSource   = "data.source"
	keySQLitePath   = "data.sqlite_path"
	keyDurationUnit = "data.duration_unit"
	keyFilesPrefix  = "data.files."
	keyDefaultStep  = "browse.default_step"
	keyStrictRows   = "data.strict"
)

// Defaults used when configuration leaves a setting unset.
const (
	DefaultSource       = "csv"
	DefaultDurationUnit = "seconds"
	DefaultStep         = 5
	defaultSQLiteFile   = "bikeshare.db"
)

// Overrides replaces configured values, typically from command-line flags.
// Empty fields are ignored.
type Overrides struct {
	DataDir string
	Source  string
}

// SettingsService resolves explorer settings from configuration and defaults.
type SettingsService struct {
	configStore driven.ConfigStore
	overrides   Overrides
}

// NewSettingsService creates a new settings service.
// configStore may be nil, in which case only defaults apply.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// SetOverrides sets values that take precedence over the config store.
func (s *SettingsService) SetOverrides(o Overrides) {
	s.overrides = o
}

// Get returns the resolved settings.
func (s *SettingsService) Get() driving.Settings {
	dataDir := s.getString(keyDataDir, ".")
	if s.overrides.DataDir != "" {
		dataDir = s.overrides.DataDir
	}
	source := s.getString(keyDataSource, DefaultSource)
	if s.overrides.Source != "" {
		source = s.overrides.Source
	}

	settings := driving.Settings{
		DataDir:      expandHome(dataDir),
		Source:       source,
		DurationUnit: s.getString(keyDurationUnit, DefaultDurationUnit),
		Files:        make(map[domain.City]string, len(domain.AllCities())),
		DefaultStep:  s.getInt(keyDefaultStep, DefaultStep),
		StrictRows:   s.getBool(keyStrictRows),
	}

	settings.SQLitePath = expandHome(s.getString(keySQLitePath, filepath.Join(dataDir, defaultSQLiteFile)))
	for _, city := range domain.AllCities() {
		settings.Files[city] = s.getString(keyFilesPrefix+city.String(), city.FileName())
	}

	return settings
}

func (s *SettingsService) getString(key, fallback string) string {
	if s.configStore == nil {
		return fallback
	}
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if s.configStore == nil {
		return fallback
	}
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getBool(key string) bool {
	if s.configStore == nil {
		return false
	}
	return s.configStore.GetBool(key)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
