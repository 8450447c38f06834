package application_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/grigorev/user-directory/internal/domain/entity"
	"github.com/grigorev/user-directory/internal/domain/repository"
)

// memRepo is an in-memory UserRepository with the same contract the
// postgres implementation satisfies: unique emails across every status,
// idempotent bulk updates, deleted rows hidden from List.
type memRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*entity.User
	err   error // when set, every call fails with it
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[int64]*entity.User)}
}

func (r *memRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now()
	if u.Status == "" {
		u.Status = entity.StatusActive
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) List(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.User
	for _, u := range r.users {
		if u.Status == entity.StatusDeleted {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) TouchLastLogin(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

func (r *memRepo) UpdateStatus(_ context.Context, ids []int64, status entity.Status) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var affected int64
	for _, id := range ids {
		u, ok := r.users[id]
		if !ok || u.Status == status {
			continue
		}
		u.Status = status
		affected++
	}
	return affected, nil
}

var _ repository.UserRepository = (*memRepo)(nil)
