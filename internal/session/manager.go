// internal/session/manager.go
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session owns one cart store and one energy meter for a single
// device. HTTP handlers serialize store access through the embedded
// mutex; the stores themselves expect exactly one writer at a time.
type Session struct {
	sync.Mutex
	ID        uuid.UUID
	Cart      *CartStore
	Energy    *EnergyMeter
	CreatedAt time.Time

	lastSeen time.Time
}

// Manager is the in-memory session registry. Sessions are never
// persisted; an idle session is swept after the configured TTL.
type Manager struct {
	mtx      sync.RWMutex
	sessions map[uuid.UUID]*Session

	energyMax float64
	idleTTL   time.Duration
}

func NewManager(energyMax float64, idleTTL, sweepInterval time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = 2 * time.Hour
	}
	if sweepInterval <= 0 {
		sweepInterval = 5 * time.Minute
	}

	m := &Manager{
		sessions:  make(map[uuid.UUID]*Session),
		energyMax: energyMax,
		idleTTL:   idleTTL,
	}

	// Sweep idle sessions periodically
	go m.sweep(sweepInterval)

	return m
}

func (m *Manager) Create() *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New(),
		Cart:      NewCartStore(),
		Energy:    NewEnergyMeter(m.energyMax),
		CreatedAt: now,
		lastSeen:  now,
	}

	m.mtx.Lock()
	m.sessions[sess.ID] = sess
	m.mtx.Unlock()

	return sess
}

// Get returns the session for id, refreshing its idle timer. Expired
// sessions are treated as missing and dropped on the spot.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, false
	}

	if time.Since(sess.lastSeen) > m.idleTTL {
		delete(m.sessions, id)
		return nil, false
	}

	sess.lastSeen = time.Now()
	return sess, true
}

func (m *Manager) Delete(id uuid.UUID) {
	m.mtx.Lock()
	delete(m.sessions, id)
	m.mtx.Unlock()
}

func (m *Manager) Len() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sweep(interval time.Duration) {
	for {
		time.Sleep(interval)

		m.mtx.Lock()
		swept := 0
		for id, sess := range m.sessions {
			if time.Since(sess.lastSeen) > m.idleTTL {
				delete(m.sessions, id)
				swept++
			}
		}
		remaining := len(m.sessions)
		m.mtx.Unlock()

		if swept > 0 {
			logrus.WithFields(logrus.Fields{
				"swept":     swept,
				"remaining": remaining,
			}).Info("Swept idle sessions")
		}
	}
}
