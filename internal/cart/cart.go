// Package cart keeps the shopping cart and writes it through to the persisted store.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/azaliaz/ruboni/internal/domain/consts"
	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/logger"
	"github.com/azaliaz/ruboni/internal/metrics"
	storerrors "github.com/azaliaz/ruboni/internal/storage/errors"
)

var (
	ErrAuthRequired = errors.New("please log in to checkout")
	ErrEmptyCart    = errors.New("your cart is empty")
)

type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Session interface {
	IsAuthenticated() bool
}

type Store struct {
	mu    sync.RWMutex
	items []models.CartItem
	stor  Storage
	sess  Session
	now   func() time.Time
}

func New(stor Storage, sess Session) *Store {
	return &Store{
		items: []models.CartItem{},
		stor:  stor,
		sess:  sess,
		now:   time.Now,
	}
}

// Init loads the persisted cart. Corrupted data is dropped and the cart starts empty;
// duplicate product lines are merged.
func (s *Store) Init(ctx context.Context) {
	log := logger.Get()
	raw, err := s.stor.Get(ctx, consts.KeyCart)
	if err != nil {
		if !errors.Is(err, storerrors.ErrKeyNotFound) {
			log.Error().Err(err).Msg("read persisted cart")
		}
		return
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Debug().Err(err).Msg("corrupted persisted cart, discarding")
		return
	}

	s.mu.Lock()
	s.items = fold(items)
	s.mu.Unlock()
}

// fold replays persisted line items through Reduce so duplicate products
// merge into one line. Lines with quantity below 1 are skipped.
func fold(persisted []models.CartItem) []models.CartItem {
	items := []models.CartItem{}
	for _, it := range persisted {
		if it.Quantity < 1 {
			continue
		}
		have := 0
		if i := slices.IndexFunc(items, func(c models.CartItem) bool { return c.ProductID == it.ProductID }); i >= 0 {
			have = items[i].Quantity
		}
		items = Reduce(items, Action{
			Kind:    ActAdd,
			Product: models.Product{ID: it.ProductID, Title: it.Title, Price: it.UnitPrice},
		})
		items = Reduce(items, Action{Kind: ActUpdateQuantity, ProductID: it.ProductID, Quantity: have + it.Quantity})
	}
	return items
}

func (s *Store) AddToCart(ctx context.Context, product models.Product) {
	s.dispatch(ctx, Action{Kind: ActAdd, Product: product})
	metrics.IncCartAdded()
}

// AddToCartQuantity adds the product n times, as the product page quantity picker does.
func (s *Store) AddToCartQuantity(ctx context.Context, product models.Product, n int) {
	for range n {
		s.AddToCart(ctx, product)
	}
}

func (s *Store) RemoveFromCart(ctx context.Context, productID int64) {
	s.dispatch(ctx, Action{Kind: ActRemove, ProductID: productID})
}

func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	s.dispatch(ctx, Action{Kind: ActUpdateQuantity, ProductID: productID, Quantity: quantity})
}

func (s *Store) ClearCart(ctx context.Context) {
	s.dispatch(ctx, Action{Kind: ActClear})
}

func (s *Store) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TotalItems(s.items)
}

func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TotalPrice(s.items)
}

type Line struct {
	models.CartItem
	Subtotal float64 `json:"subtotal"`
}

type Snapshot struct {
	Items      []Line    `json:"items"`
	TotalItems int       `json:"totalItems"`
	Total      float64   `json:"total"`
	CapturedAt time.Time `json:"capturedAt"`
}

// Checkout captures the cart for the order step and clears it.
func (s *Store) Checkout(ctx context.Context) (Snapshot, error) {
	if s.sess == nil || !s.sess.IsAuthenticated() {
		metrics.IncCheckout("unauthenticated")
		return Snapshot{}, ErrAuthRequired
	}

	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		metrics.IncCheckout("empty")
		return Snapshot{}, ErrEmptyCart
	}
	snap := Snapshot{
		TotalItems: TotalItems(s.items),
		Total:      TotalPrice(s.items),
		CapturedAt: s.now(),
	}
	for _, it := range s.items {
		snap.Items = append(snap.Items, Line{CartItem: it, Subtotal: it.Subtotal()})
	}
	s.items = Reduce(s.items, Action{Kind: ActClear})
	s.mu.Unlock()

	s.save(ctx, []models.CartItem{})
	metrics.IncCheckout("ok")
	return snap, nil
}

func (s *Store) dispatch(ctx context.Context, a Action) {
	s.mu.Lock()
	s.items = Reduce(s.items, a)
	next := slices.Clone(s.items)
	s.mu.Unlock()

	s.save(ctx, next)
}

func (s *Store) save(ctx context.Context, items []models.CartItem) {
	log := logger.Get()
	raw, err := json.Marshal(items)
	if err != nil {
		log.Error().Err(err).Msg("encode cart")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, consts.StoreCtxTimeout)
	defer cancel()
	if err := s.stor.Set(ctx, consts.KeyCart, string(raw)); err != nil {
		log.Error().Err(err).Msg("persist cart")
	}
}
