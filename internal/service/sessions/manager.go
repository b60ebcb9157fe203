package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
)

// Manager реестр активных сессий планирования
//
// Сессии живут только в памяти: рабочий набор - транзиентное состояние
// одного календарного вида, источник истины - хранилище. Истекшие по TTL
// сессии вытесняются фоновым janitor-ом.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl    time.Duration
	logger Logger
}

// NewManager создает менеджер сессий с указанным TTL
func NewManager(ttl time.Duration, logger Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create регистрирует новую сессию с готовым рабочим набором
func (m *Manager) Create(
	grid domain.TimeGrid,
	set *workingset.WorkingSet,
	startDate, endDate time.Time,
) (*Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate session id: %v", ErrInternal, err)
	}

	now := time.Now()
	session := &Session{
		ID:        id,
		Grid:      grid,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		set:       set,
	}
	session.Touch(now)

	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	m.logger.Info("sessions: created session id=%s, range=%s..%s, items=%d",
		id, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), set.Len())

	return session, nil
}

// Get возвращает сессию по id и обновляет её время последнего обращения
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
	}

	session.Touch(time.Now())
	return session, nil
}

// Close удаляет сессию
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
	}

	m.logger.Info("sessions: closed session id=%s", id)
	return nil
}

// Count возвращает количество активных сессий
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// RunJanitor запускает цикл вытеснения истекших сессий
// Останавливается при закрытии stopCh; запускается горутиной из main
func (m *Manager) RunJanitor(stopCh <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			m.evictExpired(now)
		}
	}
}

func (m *Manager) evictExpired(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, session := range m.sessions {
		if now.Sub(session.LastAccess()) > m.ttl {
			delete(m.sessions, id)
			m.logger.Info("sessions: evicted expired session id=%s (idle for %s)",
				id, now.Sub(session.LastAccess()).Round(time.Second))
		}
	}
}

// newSessionID генерирует случайный идентификатор сессии
func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
