package database

import (
	"context"
	"sync"
)

// memoryPrimary is an in-process Primary used when no MONGO_URL is
// configured, keeping the service runnable against seed files alone. It
// starts empty, so reads fall through to the seed exactly as a cold
// database would, and writes land in memory until the process exits.
type memoryPrimary[ID comparable, T any] struct {
	mu      sync.RWMutex
	records []T
	idOf    func(T) ID
}

func NewMemoryPrimary[ID comparable, T any](idOf func(T) ID) Primary[ID, T] {
	return &memoryPrimary[ID, T]{idOf: idOf}
}

func (p *memoryPrimary[ID, T]) List(ctx context.Context) ([]T, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]T, len(p.records))
	copy(out, p.records)
	return out, nil
}

func (p *memoryPrimary[ID, T]) Find(ctx context.Context, id ID) (T, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, record := range p.records {
		if p.idOf(record) == id {
			return record, true, nil
		}
	}
	var zero T
	return zero, false, nil
}

func (p *memoryPrimary[ID, T]) Insert(ctx context.Context, record T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records = append(p.records, record)
	return nil
}

func (p *memoryPrimary[ID, T]) Replace(ctx context.Context, id ID, record T) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, existing := range p.records {
		if p.idOf(existing) == id {
			p.records[i] = record
			return true, nil
		}
	}
	return false, nil
}

func (p *memoryPrimary[ID, T]) Delete(ctx context.Context, id ID) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, existing := range p.records {
		if p.idOf(existing) == id {
			p.records = append(p.records[:i], p.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (p *memoryPrimary[ID, T]) Reset(ctx context.Context, records []T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records = make([]T, len(records))
	copy(p.records, records)
	return nil
}
