// Package session holds who is logged in and mirrors it to the persisted store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/azaliaz/ruboni/internal/domain/consts"
	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/logger"
	storerrors "github.com/azaliaz/ruboni/internal/storage/errors"
)

type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type actionKind int

const (
	actLogin actionKind = iota
	actLogout
	actUpdateUser
)

type action struct {
	kind  actionKind
	user  *models.User
	token string
}

type state struct {
	user  *models.User
	token string
}

// reduce is the pure transition; it never touches storage.
func reduce(s state, a action) state {
	switch a.kind {
	case actLogin:
		return state{user: a.user, token: a.token}
	case actLogout:
		return state{}
	case actUpdateUser:
		return state{user: a.user, token: s.token}
	}
	return s
}

type Store struct {
	mu      sync.RWMutex
	st      state
	loading bool
	stor    Storage
}

func New(stor Storage) *Store {
	return &Store{
		stor:    stor,
		loading: true,
	}
}

// Init rehydrates the session. Both user and token must be present;
// a user that does not decode to an identified account purges both keys.
func (s *Store) Init(ctx context.Context) {
	log := logger.Get()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	rawUser, err := s.stor.Get(ctx, consts.KeyUser)
	if err != nil {
		if !errors.Is(err, storerrors.ErrKeyNotFound) {
			log.Error().Err(err).Msg("read persisted user")
		}
		return
	}
	token, err := s.stor.Get(ctx, consts.KeyToken)
	if err != nil {
		if !errors.Is(err, storerrors.ErrKeyNotFound) {
			log.Error().Err(err).Msg("read persisted token")
		}
		return
	}

	var user *models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user == nil || user.ID == 0 {
		log.Debug().Err(err).Msg("corrupted persisted user, purging")
		s.purge(ctx)
		return
	}

	s.mu.Lock()
	s.st = reduce(s.st, action{kind: actLogin, user: user, token: token})
	s.mu.Unlock()
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Login(ctx context.Context, user models.User, token string) {
	s.apply(ctx, action{kind: actLogin, user: &user, token: token})
}

// Logout is safe to call when already logged out.
func (s *Store) Logout(ctx context.Context) {
	s.apply(ctx, action{kind: actLogout})
}

func (s *Store) UpdateUser(ctx context.Context, user models.User) {
	s.apply(ctx, action{kind: actUpdateUser, user: &user})
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.user != nil
}

// User returns a copy of the current user, false when logged out.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.user == nil {
		return models.User{}, false
	}
	return *s.st.user, true
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.token
}

func (s *Store) apply(ctx context.Context, a action) {
	s.mu.Lock()
	s.st = reduce(s.st, a)
	next := s.st
	s.mu.Unlock()

	s.save(ctx, a.kind, next)
}

// save mirrors the new state into storage. Failures are logged only.
func (s *Store) save(ctx context.Context, kind actionKind, st state) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(ctx, consts.StoreCtxTimeout)
	defer cancel()

	switch kind {
	case actLogout:
		s.purge(ctx)
		return
	case actLogin:
		if err := s.stor.Set(ctx, consts.KeyToken, st.token); err != nil {
			log.Error().Err(err).Msg("persist token")
		}
	}

	if st.user == nil {
		return
	}
	raw, err := json.Marshal(st.user)
	if err != nil {
		log.Error().Err(err).Msg("encode user")
		return
	}
	if err := s.stor.Set(ctx, consts.KeyUser, string(raw)); err != nil {
		log.Error().Err(err).Msg("persist user")
	}
}

func (s *Store) purge(ctx context.Context) {
	log := logger.Get()
	for _, key := range []string{consts.KeyUser, consts.KeyToken} {
		if err := s.stor.Remove(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("remove persisted session key")
		}
	}
}
