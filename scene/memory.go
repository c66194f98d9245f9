package scene

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"windingcircle/curve"
)

// Memory is an in-process Store
type Memory struct {
	mu      sync.Mutex
	objects map[string]curve.Sequence
}

// NewMemory returns an empty Memory store
func NewMemory() *Memory {
	return &Memory{objects: make(map[string]curve.Sequence)}
}

func (m *Memory) Upsert(name string, seq curve.Sequence) (bool, error) {
	if err := CheckName(name); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	_, replaced := m.objects[name]
	m.objects[name] = slices.Clone(seq)
	return replaced, nil
}

func (m *Memory) Create(name string, seq curve.Sequence) (string, error) {
	if err := CheckName(name); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	name = FreeName(name, func(n string) bool {
		_, ok := m.objects[n]
		return ok
	})
	m.objects[name] = slices.Clone(seq)
	return name, nil
}

func (m *Memory) Get(name string) (curve.Sequence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq, ok := m.objects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return slices.Clone(seq), nil
}

func (m *Memory) Delete(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.objects[name]
	delete(m.objects, name)
	return ok, nil
}

func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.objects))
	for name := range m.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
