package state

import (
	"fmt"
	"sync"
)

type StateStore[T any] interface {
	GetState(id string) (T, error)
	SetState(id string, state T)
	GetOrCreate(id string, create func() T) (T, bool)
	DeleteState(id string)
	Len() int
}

type InMemoryStateStore[T any] struct {
	mut   sync.RWMutex
	store map[string]T
}

func NewInMemoryStore[T any]() *InMemoryStateStore[T] {
	return &InMemoryStateStore[T]{store: make(map[string]T)}
}

func (i *InMemoryStateStore[T]) GetState(id string) (T, error) {
	i.mut.RLock()
	defer i.mut.RUnlock()
	state, exists := i.store[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("No state found for id %s", id)
	}
	return state, nil
}

func (i *InMemoryStateStore[T]) SetState(id string, state T) {
	i.mut.Lock()
	defer i.mut.Unlock()
	i.store[id] = state
}

// GetOrCreate returns the state stored under id, storing create() first when absent.
func (i *InMemoryStateStore[T]) GetOrCreate(id string, create func() T) (T, bool) {
	i.mut.Lock()
	defer i.mut.Unlock()
	if state, exists := i.store[id]; exists {
		return state, false
	}
	state := create()
	i.store[id] = state
	return state, true
}

func (i *InMemoryStateStore[T]) DeleteState(id string) {
	i.mut.Lock()
	defer i.mut.Unlock()
	delete(i.store, id)
}

func (i *InMemoryStateStore[T]) Len() int {
	i.mut.RLock()
	defer i.mut.RUnlock()
	return len(i.store)
}
