package store

import (
	"context"
	"sync"
)

// MemoryStore keeps tables in process memory. Used by tests and the
// "memory" backend for local development. All operations are atomic under
// one mutex, which the remote backends cannot guarantee.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string][]*Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string][]*Record)}
}

func (m *MemoryStore) FetchTable(_ context.Context, table string) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.tables[table]
	out := make([]*Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (m *MemoryStore) AppendRecord(_ context.Context, table string, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = append(m.tables[table], rec.Clone())
	return nil
}

func (m *MemoryStore) ReplaceTable(_ context.Context, table string, recs []*Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([]*Record, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, r.Clone())
	}
	m.tables[table] = rows
	return nil
}
