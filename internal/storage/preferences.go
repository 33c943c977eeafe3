package storage

import "fyne.io/fyne/v2"

// PreferencesStore keeps values in the desktop app's Fyne preferences.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps the preferences of a Fyne app.
func NewPreferencesStore(app fyne.App) *PreferencesStore {
	return &PreferencesStore{prefs: app.Preferences()}
}

// Get treats an empty string as a missing key; Fyne preferences do not
// distinguish the two.
func (p *PreferencesStore) Get(key string) (string, bool, error) {
	v := p.prefs.String(key)
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (p *PreferencesStore) Set(key, value string) error {
	p.prefs.SetString(key, value)
	return nil
}

func (p *PreferencesStore) Delete(key string) error {
	p.prefs.RemoveValue(key)
	return nil
}

// Close is a no-op; the app owns its preferences.
func (p *PreferencesStore) Close() error {
	return nil
}
