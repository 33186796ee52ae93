// Package storagetest provides an in-process storage.Storage for tests.
package storagetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/bgraf/mdship/storage"
)

var _ storage.Storage = (*Memory)(nil)

// Memory keeps objects in process and records every put. It never fails
// unless told to via Fail.
type Memory struct {
	mu      sync.Mutex
	objects map[string]storage.Object
	calls   []string

	// Fail, if set, is consulted before every put; a non-nil result is
	// returned as the transport error.
	Fail func(obj storage.Object) error
}

func NewMemory() *Memory {
	return &Memory{objects: make(map[string]storage.Object)}
}

func (m *Memory) PutObject(ctx context.Context, obj storage.Object) (storage.Ack, error) {
	if err := ctx.Err(); err != nil {
		return storage.Ack{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, obj.Key)

	if m.Fail != nil {
		if err := m.Fail(obj); err != nil {
			return storage.Ack{}, err
		}
	}

	m.objects[obj.Bucket+"/"+obj.Key] = obj

	return storage.Ack{ETag: fmt.Sprintf("\"%d\"", len(m.calls))}, nil
}

// Calls returns the keys of all attempted puts in order.
func (m *Memory) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.calls...)
}

// Get returns a stored object.
func (m *Memory) Get(bucket, key string) (storage.Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[bucket+"/"+key]
	return obj, ok
}
