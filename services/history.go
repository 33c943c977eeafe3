package services

import (
	"sync"

	"realtime-translator/internal/config"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/storage"
	"realtime-translator/models"
)

// HistoryStore owns the translation history and persists a full snapshot on
// every mutation.
type HistoryStore struct {
	mu      sync.RWMutex
	store   storage.Store
	key     string
	limit   int
	records models.HistoryLog
}

// NewHistoryStore creates an empty history backed by store. A nil store keeps
// history in memory only. Call Load to rehydrate.
func NewHistoryStore(store storage.Store) *HistoryStore {
	return &HistoryStore{
		store: store,
		key:   config.HistoryStorageKey,
		limit: config.HistoryLimit,
	}
}

// Load reads the persisted snapshot. Missing or corrupt data yields an empty
// log; errors are never returned.
func (h *HistoryStore) Load() models.HistoryLog {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = nil
	if h.store == nil {
		return nil
	}

	raw, ok, err := h.store.Get(h.key)
	if err != nil {
		logger.Debug("history: read failed, starting empty: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	records, err := models.ParseHistory(raw)
	if err != nil {
		logger.Debug("history: corrupt snapshot, starting empty: %v", err)
		return nil
	}
	h.records = records.Truncate(h.limit)
	return h.copyLocked()
}

// Append puts r at the front, truncates, and persists. The in-memory log is
// updated even when persisting fails.
func (h *HistoryStore) Append(r models.TranslationRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records.Prepend(r, h.limit)
	return h.persistLocked()
}

// Clear empties the log and persists the empty snapshot.
func (h *HistoryStore) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = models.HistoryLog{}
	return h.persistLocked()
}

// Records returns a copy of the log, newest first.
func (h *HistoryStore) Records() models.HistoryLog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.copyLocked()
}

// At returns the record at index i.
func (h *HistoryStore) At(i int) (models.TranslationRecord, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if i < 0 || i >= len(h.records) {
		return models.TranslationRecord{}, false
	}
	return h.records[i], true
}

// Len returns the number of records.
func (h *HistoryStore) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

func (h *HistoryStore) copyLocked() models.HistoryLog {
	out := make(models.HistoryLog, len(h.records))
	copy(out, h.records)
	return out
}

func (h *HistoryStore) persistLocked() error {
	if h.store == nil {
		return nil
	}
	data, err := h.records.Marshal()
	if err != nil {
		return err
	}
	if err := h.store.Set(h.key, data); err != nil {
		logger.Warn("history: persist failed: %v", err)
		return err
	}
	return nil
}
