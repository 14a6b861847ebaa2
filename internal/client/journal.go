package client

import (
	"sync"
	"time"
)

// JournalEntry records one command line that was fully written.
type JournalEntry struct {
	ConnectionID string    `json:"connection_id"`
	Tag          uint64    `json:"tag"`
	Command      string    `json:"command"`
	SentAt       time.Time `json:"sent_at"`
}

// Journal keeps the most recent sent commands in tag order. It is a
// diagnostic record only; entries are never matched against events.
type Journal struct {
	mu    sync.RWMutex
	limit int
	items []JournalEntry
}

func NewJournal(limit int) *Journal {
	if limit < 0 {
		limit = 0
	}
	return &Journal{limit: limit}
}

func (j *Journal) Record(entry JournalEntry) {
	if j.limit == 0 {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.items) == j.limit {
		copy(j.items, j.items[1:])
		j.items = j.items[:len(j.items)-1]
	}
	j.items = append(j.items, entry)
}

// Lookup finds the entry for tag on the given connection.
func (j *Journal) Lookup(connectionID string, tag uint64) (JournalEntry, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	for i := len(j.items) - 1; i >= 0; i-- {
		item := j.items[i]
		if item.ConnectionID == connectionID && item.Tag == tag {
			return item, true
		}
	}
	return JournalEntry{}, false
}

func (j *Journal) List() []JournalEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]JournalEntry, len(j.items))
	copy(out, j.items)
	return out
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.items)
}
