package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Registry хранит живые сценарии в памяти по случайному UUID.
// Запись живет, пока к ней обращаются чаще, чем раз в ttl.
type Registry[T any] struct {
	kind string
	ttl  time.Duration

	mu    sync.Mutex
	items map[string]*entry[T]

	now     func() time.Time
	metrics Metrics
	logger  Logger
}

// NewRegistry создает реестр сессий вида kind
func NewRegistry[T any](kind string, ttl time.Duration, metrics Metrics, logger Logger) *Registry[T] {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Registry[T]{
		kind:    kind,
		ttl:     ttl,
		items:   make(map[string]*entry[T]),
		now:     time.Now,
		metrics: metrics,
		logger:  logger,
	}
}

// Put сохраняет значение и возвращает идентификатор сессии
func (r *Registry[T]) Put(value T) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.items[id] = &entry[T]{value: value, lastSeen: r.now()}
	n := len(r.items)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(r.kind, n)
	return id
}

// Get возвращает значение и продлевает сессию
func (r *Registry[T]) Get(id string) (T, error) {
	var zero T

	if _, err := uuid.Parse(id); err != nil {
		return zero, ErrSessionNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return zero, ErrSessionNotFound
	}

	now := r.now()
	if r.expired(e, now) {
		delete(r.items, id)
		r.metrics.SetActiveSessions(r.kind, len(r.items))
		return zero, ErrSessionNotFound
	}

	e.lastSeen = now
	return e.value, nil
}

// Delete удаляет сессию; false, если ее не было
func (r *Registry[T]) Delete(id string) bool {
	r.mu.Lock()
	_, ok := r.items[id]
	delete(r.items, id)
	n := len(r.items)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(r.kind, n)
	return ok
}

// Len количество сессий, включая еще не вычищенные истекшие
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sweep удаляет истекшие сессии и возвращает их количество
func (r *Registry[T]) Sweep() int {
	r.mu.Lock()
	now := r.now()
	removed := 0
	for id, e := range r.items {
		if r.expired(e, now) {
			delete(r.items, id)
			removed++
		}
	}
	n := len(r.items)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(r.kind, n)
	return removed
}

// Run периодически чистит истекшие сессии, пока не отменен ctx
func (r *Registry[T]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("Sessions: janitor started for %s, ttl=%s, interval=%s", r.kind, r.ttl, interval)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Sessions: janitor stopped for %s", r.kind)
			return
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				r.logger.Info("Sessions: expired %d %s sessions", removed, r.kind)
			}
		}
	}
}

func (r *Registry[T]) expired(e *entry[T], now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}
