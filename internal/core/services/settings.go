package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/gearscan/internal/core/domain"
	"github.com/custodia-labs/gearscan/internal/core/ports/driven"
	"github.com/custodia-labs/gearscan/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyGearSymbol   = domain.SettingGearSymbol
	keyDataDir      = domain.SettingDataDir
	keyOutputFormat = domain.SettingOutputFormat
	keyOutputColor  = domain.SettingOutputColor
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Values that are missing or
// invalid in the store fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Scan: domain.ScanSettings{
			GearSymbol: s.getGearSymbol(defaults.Scan.GearSymbol),
		},
		Input: domain.InputSettings{
			DataDir: s.configStore.GetString(keyDataDir),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
			Color:  s.getBool(keyOutputColor, defaults.Output.Color),
		},
	}

	return settings, nil
}

// Set validates and persists a single setting by key.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyGearSymbol:
		r, size := utf8.DecodeRuneInString(value)
		if size == 0 || size != len(value) || !domain.ValidGearSymbol(r) {
			return fmt.Errorf("%w: gear symbol must be a single non-digit character other than '.', got %q",
				domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, value)

	case keyDataDir:
		return s.configStore.Set(key, strings.TrimSpace(value))

	case keyOutputFormat:
		format := domain.OutputFormat(strings.ToLower(value))
		if !format.IsValid() {
			return fmt.Errorf("%w: output format must be %q or %q, got %q",
				domain.ErrInvalidInput, domain.OutputText, domain.OutputJSON, value)
		}
		return s.configStore.Set(key, format.String())

	case keyOutputColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: output colour must be a boolean, got %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, b)

	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownSetting, key)
	}
}

// Reset removes a stored setting so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if !slices.Contains(s.Keys(), key) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSetting, key)
	}
	return s.configStore.Delete(key)
}

// Keys lists the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{keyGearSymbol, keyDataDir, keyOutputFormat, keyOutputColor}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are persisted.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getGearSymbol(defaultVal rune) rune {
	val := s.configStore.GetString(keyGearSymbol)
	r, size := utf8.DecodeRuneInString(val)
	if size == 0 || size != len(val) || !domain.ValidGearSymbol(r) {
		return defaultVal
	}
	return r
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(keyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
