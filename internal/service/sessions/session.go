package sessions

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
)

// Session активная сессия планирования: один видимый календарный вид
// (день, неделя или сетка месяца) с его рабочим набором
//
// Ядро планирования однопоточное: все операции над рабочим набором
// выполняются под мьютексом сессии. Вызовы хранилища выполняются ВНЕ
// мьютекса - см. протокол оптимистичных мутаций в usecase-слое.
type Session struct {
	ID        string
	Grid      domain.TimeGrid
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time

	mu  sync.Mutex
	set *workingset.WorkingSet

	lastAccess atomicTime
}

// Lock захватывает мьютекс сессии
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock освобождает мьютекс сессии
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Set возвращает рабочий набор сессии
// Вызывающая сторона обязана держать мьютекс сессии
func (s *Session) Set() *workingset.WorkingSet {
	return s.set
}

// Touch обновляет время последнего обращения (для TTL-вытеснения)
func (s *Session) Touch(now time.Time) {
	s.lastAccess.Store(now)
}

// LastAccess возвращает время последнего обращения
func (s *Session) LastAccess() time.Time {
	return s.lastAccess.Load()
}

// atomicTime потокобезопасное время последнего обращения
// Janitor читает его без захвата мьютекса сессии
type atomicTime struct {
	mu sync.Mutex
	t  time.Time
}

func (a *atomicTime) Store(t time.Time) {
	a.mu.Lock()
	a.t = t
	a.mu.Unlock()
}

func (a *atomicTime) Load() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.t
}
