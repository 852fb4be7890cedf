// Package store keeps the dev CMS content in memory.
package store

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/azaliaz/ruboni/internal/logger"
)

type MemStore struct {
	mu         sync.RWMutex
	users      map[int64]User
	resetCodes map[string]int64
	bookings   map[int64]Booking
	lodges     []Lodge
	products   []Product
	safaris    []Safari
	nextUser   int64
	nextBook   int64
	now        func() time.Time
}

func New() *MemStore {
	return &MemStore{
		users:      make(map[int64]User),
		resetCodes: make(map[string]int64),
		bookings:   make(map[int64]Booking),
		now:        time.Now,
	}
}

// NewSeeded builds a store holding the seed users and catalogue.
func NewSeeded(seed Seed) (*MemStore, error) {
	ms := New()
	for _, u := range seed.Users {
		created, err := ms.CreateUser(User{
			Username:  cmp.Or(u.Username, u.Email),
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Phone:     u.Phone,
		}, u.Password)
		if err != nil {
			return nil, err
		}
		if u.Confirmed {
			created.Confirmed = true
			created.ConfirmationToken = ""
			ms.users[created.ID] = created
		}
	}
	created := ms.now().UTC()
	for _, l := range seed.Lodges {
		l.DocumentID = uuid.NewString()
		l.CreatedAt = created
		ms.lodges = append(ms.lodges, l)
	}
	for _, p := range seed.Products {
		p.DocumentID = uuid.NewString()
		ms.products = append(ms.products, p)
	}
	for _, s := range seed.Safaris {
		s.DocumentID = uuid.NewString()
		ms.safaris = append(ms.safaris, s)
	}
	return ms, nil
}

// CreateUser stores a new unconfirmed user with a bcrypt hash of password.
func (ms *MemStore) CreateUser(u User, password string) (User, error) {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, err := ms.findUser(u.Email); err == nil {
		return User{}, ErrUserExists
	}
	if _, err := ms.findUser(u.Username); err == nil {
		return User{}, ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("hash password failed")
		return User{}, err
	}
	ms.nextUser++
	u.ID = ms.nextUser
	u.DocumentID = uuid.NewString()
	u.PassHash = hash
	u.Confirmed = false
	u.ConfirmationToken = uuid.NewString()
	u.CreatedAt = ms.now().UTC()
	ms.users[u.ID] = u
	log.Debug().Int64("id", u.ID).Str("confirmation", u.ConfirmationToken).Msg("user registered")
	return u, nil
}

// Authenticate matches identifier against email or username.
func (ms *MemStore) Authenticate(identifier, password string) (User, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	u, err := ms.findUser(identifier)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(u.PassHash, []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (ms *MemStore) User(id int64) (User, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	u, ok := ms.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (ms *MemStore) ChangePassword(id int64, current, password string) (User, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	u, ok := ms.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if bcrypt.CompareHashAndPassword(u.PassHash, []byte(current)) != nil {
		return User{}, ErrInvalidCurrentPass
	}
	if current == password {
		return User{}, ErrSamePassword
	}
	return ms.setPassword(u, password)
}

// IssueResetCode returns an empty code for unknown emails so callers
// cannot probe which addresses exist.
func (ms *MemStore) IssueResetCode(email string) (string, error) {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	u, err := ms.findUser(email)
	if err != nil {
		log.Debug().Str("email", email).Msg("reset requested for unknown email")
		return "", nil
	}
	code := uuid.NewString()
	ms.resetCodes[code] = u.ID
	log.Info().Str("email", email).Str("code", code).Msg("password reset code issued")
	return code, nil
}

func (ms *MemStore) ResetPassword(code, password string) (User, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	id, ok := ms.resetCodes[code]
	if !ok {
		return User{}, ErrInvalidCode
	}
	delete(ms.resetCodes, code)
	return ms.setPassword(ms.users[id], password)
}

func (ms *MemStore) ConfirmEmail(token string) (User, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if token == "" {
		return User{}, ErrInvalidToken
	}
	for id, u := range ms.users {
		if u.ConfirmationToken == token {
			u.Confirmed = true
			u.ConfirmationToken = ""
			ms.users[id] = u
			return u, nil
		}
	}
	return User{}, ErrInvalidToken
}

func (ms *MemStore) setPassword(u User, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.PassHash = hash
	ms.users[u.ID] = u
	return u, nil
}

func (ms *MemStore) findUser(login string) (User, error) {
	if login == "" {
		return User{}, ErrNotFound
	}
	for _, u := range ms.users {
		if strings.EqualFold(u.Email, login) || u.Username == login {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (ms *MemStore) CreateBooking(b Booking) Booking {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.nextBook++
	b.ID = ms.nextBook
	b.DocumentID = uuid.NewString()
	b.CreatedAt = ms.now().UTC()
	b.UpdatedAt = b.CreatedAt
	ms.bookings[b.ID] = b
	return b
}

// Bookings lists matching bookings ordered by id.
func (ms *MemStore) Bookings(f BookingFilter) []Booking {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]Booking, 0, len(ms.bookings))
	for _, b := range ms.bookings {
		if f.match(b) {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b Booking) int { return int(a.ID - b.ID) })
	return out
}

func (ms *MemStore) Booking(id int64) (Booking, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	b, ok := ms.bookings[id]
	if !ok {
		return Booking{}, ErrNotFound
	}
	return b, nil
}

// UpdateBooking applies patch under the store lock.
func (ms *MemStore) UpdateBooking(id int64, patch func(*Booking)) (Booking, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	b, ok := ms.bookings[id]
	if !ok {
		return Booking{}, ErrNotFound
	}
	patch(&b)
	b.ID = id
	b.UpdatedAt = ms.now().UTC()
	ms.bookings[id] = b
	return b, nil
}

func (ms *MemStore) DeleteBooking(id int64) (Booking, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	b, ok := ms.bookings[id]
	if !ok {
		return Booking{}, ErrNotFound
	}
	delete(ms.bookings, id)
	return b, nil
}

func (ms *MemStore) Lodges() []Lodge {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return slices.Clone(ms.lodges)
}

func (ms *MemStore) Lodge(id int64) (Lodge, error) {
	return find(ms, ms.lodges, func(l Lodge) bool { return l.ID == id })
}

func (ms *MemStore) Products() []Product {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return slices.Clone(ms.products)
}

func (ms *MemStore) Product(id int64) (Product, error) {
	return find(ms, ms.products, func(p Product) bool { return p.ID == id })
}

func (ms *MemStore) Safaris() []Safari {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return slices.Clone(ms.safaris)
}

func (ms *MemStore) Safari(id int64) (Safari, error) {
	return find(ms, ms.safaris, func(s Safari) bool { return s.ID == id })
}

func find[T any](ms *MemStore, items []T, match func(T) bool) (T, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	for _, it := range items {
		if match(it) {
			return it, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}
