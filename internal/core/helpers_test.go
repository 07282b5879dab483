package core

import (
	"errors"
	"sync"
)

type fakeSignal struct {
	mu     sync.Mutex
	frames []Frame
	full   bool
	closed bool
}

func (f *fakeSignal) TrySend(fr Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.full {
		return errors.New("full")
	}
	f.frames = append(f.frames, fr)
	return nil
}

func (f *fakeSignal) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeSignal) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func newTestSession(id string) (Session, *fakeSignal) {
	sig := &fakeSignal{}
	return NewSession(SessionID(id), sig), sig
}
