package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/effective-security/interviewsim/simmodel"
)

type inMemory struct {
	mu      sync.RWMutex
	notes   []simmodel.NoteEntry
	slots   map[simmodel.Slot]simmodel.BookedSlot
	counter uint64
}

// NewMemoryStore returns an empty in-memory session store
func NewMemoryStore() Store {
	return &inMemory{}
}

func (m *inMemory) Notes(_ context.Context) ([]simmodel.NoteEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.notes), nil
}

func (m *inMemory) WriteNote(_ context.Context, entry simmodel.NoteEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = []simmodel.NoteEntry{entry}
	return nil
}

func (m *inMemory) AppendNote(_ context.Context, entry simmodel.NoteEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append(m.notes, entry)
	return nil
}

func (m *inMemory) Slots(_ context.Context) ([]simmodel.BookedSlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]simmodel.BookedSlot, 0, len(m.slots))
	for _, b := range m.slots {
		res = append(res, b)
	}
	sortBooked(res)
	return res, nil
}

func (m *inMemory) GetSlot(_ context.Context, slot simmodel.Slot) (*simmodel.BookedSlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.slots[slot]; ok {
		return &b, nil
	}
	return nil, nil
}

func (m *inMemory) BookSlot(_ context.Context, booked *simmodel.BookedSlot) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.slots == nil {
		// create on first use
		m.slots = make(map[simmodel.Slot]simmodel.BookedSlot)
	}
	if _, ok := m.slots[booked.Slot]; ok {
		return false, nil
	}
	m.slots[booked.Slot] = *booked
	return true, nil
}

func (m *inMemory) NextID(_ context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return m.counter, nil
}

func (m *inMemory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = nil
	m.slots = nil
	m.counter = 0
	return nil
}

func sortBooked(list []simmodel.BookedSlot) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Slot.String() < list[j].Slot.String()
	})
}
