// internal/game/matchmaker.go
package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/daviddc5/Game2-sub000/internal/models"
)

// Matchmaker holds waiting players and pairs them strictly first-come,
// first-served. Pairing hands both entries to the injected PairFn, which is
// responsible for building the room; the matchmaker itself knows nothing
// about rooms.
type Matchmaker struct {
	mu    sync.Mutex
	queue []*models.QueueEntry

	// PairFn is called outside the queue lock for each removed pair,
	// oldest entry first.
	PairFn func(a, b *models.QueueEntry)

	logger *logrus.Logger
}

// NewMatchmaker returns an empty queue.
func NewMatchmaker(logger *logrus.Logger) *Matchmaker {
	if logger == nil {
		logger = logrus.New()
	}
	return &Matchmaker{logger: logger}
}

// Enqueue appends an entry. A connection may hold at most one queue slot;
// a duplicate is rejected without touching the existing entry.
func (m *Matchmaker) Enqueue(entry *models.QueueEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.queue {
		if e.ConnID == entry.ConnID {
			return ErrAlreadyQueued
		}
	}
	m.queue = append(m.queue, entry)
	m.logger.WithFields(logrus.Fields{
		"conn":      entry.ConnID,
		"character": entry.CharacterID,
		"queued":    len(m.queue),
	}).Info("player queued")
	return nil
}

// TryPair removes the two oldest entries while at least two remain and
// invokes PairFn for each pair. Arrival order is the only scheduling rule.
func (m *Matchmaker) TryPair() {
	var pairs [][2]*models.QueueEntry

	m.mu.Lock()
	for len(m.queue) >= 2 {
		a, b := m.queue[0], m.queue[1]
		m.queue = m.queue[2:]
		if a.ConnID == b.ConnID {
			// Cannot pair an entry with itself; drop the duplicate.
			m.queue = append([]*models.QueueEntry{a}, m.queue...)
			continue
		}
		pairs = append(pairs, [2]*models.QueueEntry{a, b})
	}
	m.mu.Unlock()

	for _, pair := range pairs {
		if m.PairFn == nil {
			m.logger.Warn("matchmaker has no PairFn; dropping pair")
			continue
		}
		m.PairFn(pair[0], pair[1])
	}
}

// Remove deletes the entry for a connection, typically because it dropped
// while still queued. Reports whether an entry was removed.
func (m *Matchmaker) Remove(connID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.queue {
		if e.ConnID == connID {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			m.logger.WithField("conn", connID).Info("queued player removed")
			return true
		}
	}
	return false
}

// Len returns the number of waiting entries.
func (m *Matchmaker) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}
