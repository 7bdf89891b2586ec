package store

import (
	"context"
	"slices"
	"sync"
)

// userLocker is a keyed mutex. Entries are reference counted and removed
// once nobody holds or waits for them.
type userLocker struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocker() *userLocker {
	return &userLocker{locks: make(map[string]*userLock)}
}

// Lock acquires the locks of all usernames in lexical order and returns the
// function releasing them. Duplicates are locked once.
func (l *userLocker) Lock(ctx context.Context, usernames ...string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys := slices.Compact(slices.Sorted(slices.Values(usernames)))
	for _, key := range keys {
		l.acquire(key)
	}

	unlock := func() {
		for i := len(keys) - 1; i >= 0; i-- {
			l.release(keys[i])
		}
	}

	if err := ctx.Err(); err != nil {
		unlock()
		return nil, err
	}

	return unlock, nil
}

func (l *userLocker) acquire(key string) {
	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &userLock{}
		l.locks[key] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()
}

func (l *userLocker) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock := l.locks[key]
	lock.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, key)
	}
}

// size returns the number of live entries.
func (l *userLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
