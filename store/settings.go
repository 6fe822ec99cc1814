package store

import (
	"log"
	"sync"

	"shoppos/models"
)

const settingsKey = "inventory_system_settings"

// SettingsStore holds the receipt template. Static configuration, no
// invariants.
type SettingsStore struct {
	mu       sync.Mutex
	settings models.Settings
	snaps    Snapshotter
}

func NewSettingsStore(snaps Snapshotter) *SettingsStore {
	s := &SettingsStore{snaps: snaps, settings: defaultSettings()}

	var stored models.Settings
	if err := snaps.Load(settingsKey, &stored); err == nil && stored.ShopName != "" {
		s.settings = stored
	}
	return s
}

func (s *SettingsStore) Get() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *SettingsStore) Update(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	if err := s.snaps.Save(settingsKey, settings); err != nil {
		log.Printf("failed to persist settings: %v", err)
	}
}
