package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harunnryd/clickcall/pkg/errorsx"
	"github.com/spf13/viper"
)

const settingsFile = "settings"

// Store loads and saves Settings under a fixed user-scoped directory.
// Single-user desktop context: no locking, writers come only from the
// settings flow.
type Store struct {
	dir string
}

// Loader is the read side consumed by the call pipeline.
type Loader interface {
	Load() (Settings, error)
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the per-user settings directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "clickcall"), nil
}

// Load reads the saved settings. Returns a not_configured error when no
// prior save exists; field contents are not validated here.
func (s *Store) Load() (Settings, error) {
	v := viper.New()
	v.SetConfigName(settingsFile)
	v.SetConfigType("yaml")
	v.AddConfigPath(s.dir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Settings{}, errorsx.New("no settings saved", errorsx.ReasonNotConfigured)
		}
		if os.IsNotExist(err) {
			return Settings{}, errorsx.New("no settings saved", errorsx.ReasonNotConfigured)
		}
		return Settings{}, errorsx.Wrap(fmt.Errorf("read settings: %w", err), errorsx.ReasonPersistence)
	}
	var out Settings
	if err := v.Unmarshal(&out); err != nil {
		return Settings{}, errorsx.Wrap(fmt.Errorf("unmarshal settings: %w", err), errorsx.ReasonPersistence)
	}
	return out, nil
}

// Save writes the settings durably, creating the directory on first run.
func (s *Store) Save(in Settings) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errorsx.Wrap(fmt.Errorf("create settings dir %s: %w", s.dir, err), errorsx.ReasonPersistence)
	}
	v := viper.New()
	v.Set("domain", in.Domain)
	v.Set("extension", in.Extension)
	v.Set("key", in.Key)
	v.Set("auto_answer", in.AutoAnswer)
	path := filepath.Join(s.dir, settingsFile+".yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return errorsx.Wrap(fmt.Errorf("write settings %s: %w", path, err), errorsx.ReasonPersistence)
	}
	return nil
}

var _ Loader = (*Store)(nil)
