package state

import (
	"sync"
	"time"
)

// DefaultSaveDebounce coalesces layout writes during continuous drags.
const DefaultSaveDebounce = 100 * time.Millisecond

// Saver persists group layouts to a Storage, debounced.
type Saver struct {
	storage Storage
	delay   time.Duration

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]map[string]Entry // group key -> panel key -> entry
	inflight  map[string]map[string]Entry // taken by a running Flush, not yet written

	flushMu sync.Mutex // one read-modify-write of the storage at a time
}

// NewSaver creates a Saver writing to storage after delay of inactivity.
func NewSaver(storage Storage, delay time.Duration) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDebounce
	}
	return &Saver{
		storage: storage,
		delay:   delay,
		pending: make(map[string]map[string]Entry),
	}
}

// Load returns the entry saved for a panel combination, including writes
// that are still pending or being flushed.
func (s *Saver) Load(groupKey, panelKey string) (*Entry, bool) {
	s.saveMu.Lock()
	for _, entries := range []map[string]map[string]Entry{s.pending, s.inflight} {
		if e, ok := entries[groupKey][panelKey]; ok {
			s.saveMu.Unlock()
			return &e, true
		}
	}
	s.saveMu.Unlock()

	stored, ok := s.storage.GetItem(groupKey)
	if !ok {
		return nil, false
	}
	return Decode(stored, panelKey)
}

// Save schedules e to be written. Saves within the debounce window replace
// each other.
func (s *Saver) Save(groupKey, panelKey string, e Entry) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if s.pending[groupKey] == nil {
		s.pending[groupKey] = make(map[string]Entry)
	}
	s.pending[groupKey][panelKey] = e

	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(s.delay, s.Flush)
}

// Flush writes pending entries immediately. Concurrent flushes run one
// after the other, each merging into what the previous one stored.
func (s *Saver) Flush() {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.saveMu.Lock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	pending := s.pending
	s.pending = make(map[string]map[string]Entry)
	s.inflight = pending
	s.saveMu.Unlock()

	defer func() {
		s.saveMu.Lock()
		s.inflight = nil
		s.saveMu.Unlock()
	}()

	for groupKey, byPanel := range pending {
		stored, _ := s.storage.GetItem(groupKey)
		for panelKey, e := range byPanel {
			encoded, err := Encode(stored, panelKey, e)
			if err != nil {
				continue
			}
			stored = encoded
		}
		s.storage.SetItem(groupKey, stored)
	}
}

// Close flushes pending writes.
func (s *Saver) Close() {
	s.Flush()
}
