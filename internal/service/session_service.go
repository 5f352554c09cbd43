package service

import (
	"context"
	"sync"

	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/repository"
)

// SessionService groups finalized transactions into bounded sessions.
// The list is kept most-recently-created-first and only its head ever
// accepts new transactions; capacity forces a fresh session. Recorded
// transactions are never modified; the only destructive operation is the
// confirmed bulk clear.
type SessionService interface {
	Record(ctx context.Context, tx model.Transaction) (model.Session, error)
	ClearAll(ctx context.Context, confirm bool) error
	Sessions() []model.Session
	Find(sessionID string) (model.Session, error)
	AllTransactions() []model.Transaction
}

type sessionService struct {
	mu       sync.Mutex
	repo     repository.SessionRepository
	sessions []model.Session
}

// NewSessionService starts a fresh work shift: the session list begins
// empty and the persisted snapshot is reset to match.
func NewSessionService(ctx context.Context, repo repository.SessionRepository) (SessionService, error) {
	s := &sessionService{repo: repo, sessions: []model.Session{}}
	if err := repo.Save(ctx, s.sessions); err != nil {
		return nil, err
	}
	return s, nil
}

// appendTransaction is the aggregator's state transition. The append-vs-
// create decision happens before anything is touched, and the result is a
// fresh list. The input list and its sessions are never mutated, so a
// failed persist leaves the previous state intact.
func appendTransaction(sessions []model.Session, tx model.Transaction) []model.Session {
	if len(sessions) > 0 && !sessions[0].Full() {
		head := sessions[0]
		txs := make([]model.Transaction, 0, len(head.Transactions)+1)
		txs = append(txs, tx)
		txs = append(txs, head.Transactions...)
		head.Transactions = txs

		next := make([]model.Session, len(sessions))
		copy(next, sessions)
		next[0] = head
		return next
	}

	fresh := model.Session{
		SessionID:    model.NewSessionID(tx.Date, tx.BusinessName, tx.Cashier, len(sessions)+1),
		Transactions: []model.Transaction{tx},
	}
	next := make([]model.Session, 0, len(sessions)+1)
	next = append(next, fresh)
	next = append(next, sessions...)
	return next
}

func (s *sessionService) Record(ctx context.Context, tx model.Transaction) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := appendTransaction(s.sessions, tx)
	if err := s.repo.Save(ctx, next); err != nil {
		return model.Session{}, err
	}
	s.sessions = next
	return next[0], nil
}

func (s *sessionService) ClearAll(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) == 0 {
		return ErrNoSessions
	}

	empty := []model.Session{}
	if err := s.repo.Save(ctx, empty); err != nil {
		return err
	}
	s.sessions = empty
	return nil
}

func (s *sessionService) Sessions() []model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

func (s *sessionService) Find(sessionID string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.sessions {
		if session.SessionID == sessionID {
			return session, nil
		}
	}
	return model.Session{}, ErrSessionNotFound
}

// AllTransactions flattens every session's transactions into one sequence:
// sessions newest-first, transactions within each session newest-first.
func (s *sessionService) AllTransactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []model.Transaction
	for _, session := range s.sessions {
		all = append(all, session.Transactions...)
	}
	return all
}
