package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/passby/passby-backend/internal/domain/entity"
	repo "github.com/passby/passby-backend/internal/domain/repository"
)

// In-memory repository fakes backing the service tests.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
}

var _ repo.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memUserInfoRepo struct {
	mu    sync.Mutex
	infos map[int64]*entity.UserInfo
}

var _ repo.UserInfoRepository = (*memUserInfoRepo)(nil)

func newMemUserInfoRepo() *memUserInfoRepo {
	return &memUserInfoRepo{infos: make(map[int64]*entity.UserInfo)}
}

func (r *memUserInfoRepo) Upsert(_ context.Context, info *entity.UserInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	info.UpdatedAt = time.Now()
	cp := *info
	r.infos[info.UserID] = &cp
	return nil
}

func (r *memUserInfoRepo) GetByUserID(_ context.Context, userID int64) (*entity.UserInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.infos[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *info
	return &cp, nil
}

type memGeoFenceRepo struct {
	mu     sync.Mutex
	nextID int64
	events []entity.GeoFenceEvent
}

var _ repo.GeoFenceRepository = (*memGeoFenceRepo)(nil)

func newMemGeoFenceRepo() *memGeoFenceRepo { return &memGeoFenceRepo{} }

func (r *memGeoFenceRepo) Append(_ context.Context, ev *entity.GeoFenceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ev.ID = r.nextID
	ev.CreatedAt = time.Now()
	r.events = append(r.events, *ev)
	return nil
}

func (r *memGeoFenceRepo) ListByUser(_ context.Context, userID int64) ([]entity.GeoFenceEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.GeoFenceEvent, 0)
	for _, ev := range r.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].OccurredAt.Before(out[j].OccurredAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type memFitnessRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []entity.FitnessRecord
}

var _ repo.FitnessRepository = (*memFitnessRepo)(nil)

func newMemFitnessRepo() *memFitnessRepo { return &memFitnessRepo{} }

func (r *memFitnessRepo) Save(_ context.Context, rec *entity.FitnessRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	rec.CreatedAt = time.Now()
	r.records = append(r.records, *rec)
	return nil
}

func (r *memFitnessRepo) ListByUser(_ context.Context, userID int64, from, to time.Time) ([]entity.FitnessRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.FitnessRecord, 0)
	for _, rec := range r.records {
		if rec.UserID != userID {
			continue
		}
		if !from.IsZero() && rec.RecordedAt.Before(from) {
			continue
		}
		if !to.IsZero() && rec.RecordedAt.After(to) {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordedAt.Before(out[j].RecordedAt) })
	return out, nil
}

type memPassedRepo struct {
	mu     sync.Mutex
	nextID int64
	events []entity.PassedUserEvent
}

var _ repo.PassedUserRepository = (*memPassedRepo)(nil)

func newMemPassedRepo() *memPassedRepo { return &memPassedRepo{} }

func (r *memPassedRepo) Append(_ context.Context, ev *entity.PassedUserEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ev.ID = r.nextID
	r.events = append(r.events, *ev)
	return nil
}

func (r *memPassedRepo) ListByUserBetween(_ context.Context, userID int64, from, to time.Time) ([]entity.PassedUserEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.PassedUserEvent, 0)
	for _, ev := range r.events {
		if ev.UserID != userID || ev.PassedAt.Before(from) || !ev.PassedAt.Before(to) {
			continue
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PassedAt.Before(out[j].PassedAt) })
	return out, nil
}

func (r *memPassedRepo) LastBetweenPair(_ context.Context, userID, otherUserID int64) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var last time.Time
	found := false
	for _, ev := range r.events {
		match := (ev.UserID == userID && ev.OtherUserID == otherUserID) ||
			(ev.UserID == otherUserID && ev.OtherUserID == userID)
		if match && ev.PassedAt.After(last) {
			last = ev.PassedAt
			found = true
		}
	}
	if !found {
		return time.Time{}, repo.ErrNotFound
	}
	return last, nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[int64]Session
}

var _ SessionStore = (*memSessions)(nil)

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[int64]Session)}
}

func (s *memSessions) Put(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess
	return nil
}

func (s *memSessions) Get(_ context.Context, userID int64) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok, nil
}

func (s *memSessions) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
