package memory

import (
	"context"
	"errors"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("no active transaction")

// stagedWrite checks its precondition against a state and applies itself to
// it. Both run with the store mutex held.
type stagedWrite struct {
	check func(st state) error
	apply func(st state)
}

// UnitOfWork stages writes and commits them atomically.
type UnitOfWork struct {
	store  *Store
	active bool
	writes []stagedWrite
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	uow.writes = nil
	return nil
}

// Commit applies every staged write to a copy of the committed state and
// swaps it in only if all preconditions and uniqueness rules hold.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	defer uow.reset()

	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.committed.clone()
	for _, w := range uow.writes {
		if err := w.check(next); err != nil {
			return err
		}
		w.apply(next)
	}
	if err := next.checkUniqueness(); err != nil {
		return err
	}

	s.committed = next
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.reset()
	return nil
}

func (uow *UnitOfWork) reset() {
	uow.active = false
	uow.writes = nil
}

// stage runs the check immediately so a stale write fails at the call site,
// as it does against the database, and again at commit.
func (uow *UnitOfWork) stage(w stagedWrite) error {
	s := uow.store
	s.mu.Lock()
	err := w.check(s.committed)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	uow.writes = append(uow.writes, w)
	return nil
}

// read runs fn against the committed state.
func (uow *UnitOfWork) read(fn func(st state)) {
	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.committed)
}
