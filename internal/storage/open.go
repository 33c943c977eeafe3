package storage

import (
	"fmt"

	"fyne.io/fyne/v2"

	"realtime-translator/internal/config"
	"realtime-translator/internal/logger"
)

// Open creates the configured backend. The preferences backend needs a
// running Fyne app; without one it falls back to SQLite at path.
func Open(backend, path string, app fyne.App) (Store, error) {
	switch backend {
	case config.StorageMemory:
		return NewMemoryStore(), nil
	case config.StoragePreferences:
		if app != nil {
			return NewPreferencesStore(app), nil
		}
		logger.Warn("storage: preferences backend needs the desktop app, using sqlite at %s", path)
		return OpenSQLite(path)
	case config.StorageSQLite, "":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
