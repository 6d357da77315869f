package service

import (
	"sync"

	"github.com/google/uuid"
)

// UserLocks serialises read-modify-write cycles of one user's stored documents.
// Services writing the same keys must share one registry.
type UserLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock blocks until uid is free and returns the unlock func.
func (ul *UserLocks) Lock(uid uuid.UUID) func() {
	ul.mu.Lock()
	l, ok := ul.locks[uid]
	if !ok {
		l = &sync.Mutex{}
		ul.locks[uid] = l
	}
	ul.mu.Unlock()
	l.Lock()
	return l.Unlock
}
