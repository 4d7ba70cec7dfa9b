package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/wire"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/pkg/log"
)

var ProviderSet = wire.NewSet(NewAudioStore)

// NewAudioStore picks the scratch backend named by storage.driver.
func NewAudioStore(c *config.Config, l *log.Logger) (domain.AudioStore, error) {
	switch strings.ToLower(c.Storage.Driver) {
	case "", "local":
		s, err := NewLocalStore(c.Storage.Dir, l)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "minio", "oss":
		s, err := NewMinioStore(c, l)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
}

// CheckName rejects names that are not a single plain path element.
func CheckName(name string) error {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidFileName, name)
	}
	return nil
}
