package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/store"
)

// SessionRepository mirrors the in-memory session list to the "sessions"
// key. The aggregator is the authority; the store only ever receives whole
// snapshots, written at record and clear time.
type SessionRepository interface {
	Load(ctx context.Context) ([]model.Session, error)
	Save(ctx context.Context, sessions []model.Session) error
}

type sessionRepo struct{ blobs store.BlobStore }

func NewSessionRepository(blobs store.BlobStore) SessionRepository {
	return &sessionRepo{blobs: blobs}
}

func (r *sessionRepo) Load(ctx context.Context) ([]model.Session, error) {
	blob, err := r.blobs.Get(ctx, store.KeySessions)
	if errors.Is(err, store.ErrNotFound) {
		return []model.Session{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sessions []model.Session
	if err := json.Unmarshal(blob, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) Save(ctx context.Context, sessions []model.Session) error {
	blob, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return r.blobs.Set(ctx, store.KeySessions, blob)
}
