package service

import (
	"context"
	"errors"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory store
// ---------------------------------------------------------------------------

// memStore backs every repository port with maps. Within snapshots the maps
// and restores them when fn fails, mirroring a rolled back transaction.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*domain.User
	shops    map[int64]*domain.Shop
	products map[int64]*domain.Product
	nextID   int64

	// deleteProductsErr makes the transactional product delete fail after
	// the shop rows were already removed.
	deleteProductsErr error
	createErr         error
	ownerLookups      int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]*domain.User),
		shops:    make(map[int64]*domain.Shop),
		products: make(map[int64]*domain.Product),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) addUser(username string, role domain.Role) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &domain.User{ID: m.id(), Username: username, PasswordHash: "hashed:secret1", Role: role}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addShop(ownerID int64, name string) *domain.Shop {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &domain.Shop{ID: m.id(), OwnerID: ownerID, Name: name, DeliveryOption: domain.DeliveryNone}
	m.shops[s.ID] = s
	return s
}

func (m *memStore) addProduct(shopID int64, name string) *domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &domain.Product{ID: m.id(), ShopID: shopID, Name: name}
	m.products[p.ID] = p
	return p
}

func (m *memStore) counts() (shops, products int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.shops), len(m.products)
}

func (m *memStore) ShopOwner(_ context.Context, shopID int64) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ownerLookups++
	s, ok := m.shops[shopID]
	if !ok {
		return 0, false, nil
	}
	return s.OwnerID, true, nil
}

func (m *memStore) ProductOwner(_ context.Context, productID int64) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ownerLookups++
	p, ok := m.products[productID]
	if !ok {
		return 0, false, nil
	}
	s, ok := m.shops[p.ShopID]
	if !ok {
		return 0, false, nil
	}
	return s.OwnerID, true, nil
}

func (m *memStore) Within(_ context.Context, fn func(tx ports.MutationTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	shops, products := maps.Clone(m.shops), maps.Clone(m.products)
	if err := fn(memTx{m}); err != nil {
		m.shops, m.products = shops, products
		return err
	}
	return nil
}

type memTx struct{ m *memStore }

func (t memTx) ShopsByIDs(_ context.Context, ids []int64) ([]*domain.Shop, error) {
	var out []*domain.Shop
	for _, id := range ids {
		if s, ok := t.m.shops[id]; ok {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (t memTx) ProductOwnershipsByIDs(_ context.Context, ids []int64) ([]domain.ProductOwnership, error) {
	var out []domain.ProductOwnership
	for _, id := range ids {
		p, ok := t.m.products[id]
		if !ok {
			continue
		}
		s := t.m.shops[p.ShopID]
		out = append(out, domain.ProductOwnership{ProductID: p.ID, ShopID: p.ShopID, OwnerID: s.OwnerID})
	}
	return out, nil
}

func (t memTx) DeleteShops(ctx context.Context, ids []int64) error {
	var orphaned []int64
	for _, id := range ids {
		delete(t.m.shops, id)
		for pid, p := range t.m.products {
			if p.ShopID == id {
				orphaned = append(orphaned, pid)
			}
		}
	}
	return t.DeleteProducts(ctx, orphaned)
}

func (t memTx) DeleteProducts(_ context.Context, ids []int64) error {
	if t.m.deleteProductsErr != nil {
		return t.m.deleteProductsErr
	}
	for _, id := range ids {
		delete(t.m.products, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Repository views
// ---------------------------------------------------------------------------

type memUsers struct{ m *memStore }

func (r memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return nil, domain.ErrUserExists
		}
	}
	clone := *u
	clone.ID = r.m.id()
	r.m.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r memUsers) List(_ context.Context) ([]*domain.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*domain.User, 0, len(r.m.users))
	for _, u := range r.m.users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memUsers) UpdatePasswordHash(_ context.Context, id int64, hash string) (*domain.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	clone := *u
	return &clone, nil
}

func (r memUsers) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	for _, s := range r.m.shops {
		if s.OwnerID == id {
			return domain.ErrUserOwnsShops
		}
	}
	delete(r.m.users, id)
	return nil
}

func (r memUsers) Count(_ context.Context) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return int64(len(r.m.users)), nil
}

type memShops struct{ m *memStore }

func (r memShops) Create(_ context.Context, s *domain.Shop) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.createErr != nil {
		return r.m.createErr
	}
	s.ID = r.m.id()
	clone := *s
	r.m.shops[s.ID] = &clone
	return nil
}

func (r memShops) FindByID(_ context.Context, id int64) (*domain.Shop, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.shops[id]
	if !ok {
		return nil, domain.ErrShopNotFound
	}
	clone := *s
	return &clone, nil
}

func (r memShops) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Shop, error) {
	all, _ := r.List(context.Background())
	out := make([]*domain.Shop, 0, len(all))
	for _, s := range all {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r memShops) List(_ context.Context) ([]*domain.Shop, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*domain.Shop, 0, len(r.m.shops))
	for _, s := range r.m.shops {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memProducts struct{ m *memStore }

func (r memProducts) Create(_ context.Context, p *domain.Product) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.createErr != nil {
		return r.m.createErr
	}
	if _, ok := r.m.shops[p.ShopID]; !ok {
		return domain.ErrShopNotFound
	}
	p.ID = r.m.id()
	clone := *p
	r.m.products[p.ID] = &clone
	return nil
}

func (r memProducts) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r memProducts) ListByShop(_ context.Context, shopID int64) ([]*domain.Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []*domain.Product{}
	for _, p := range r.m.products {
		if p.ShopID == shopID {
			clone := *p
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProducts) Update(_ context.Context, p *domain.Product) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	stored, ok := r.m.products[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	shopID := stored.ShopID
	*stored = *p
	stored.ShopID = shopID
	return nil
}

// ---------------------------------------------------------------------------
// Idempotency and hashing stubs
// ---------------------------------------------------------------------------

type memIdempotency struct {
	mu      sync.Mutex
	pending map[string]bool
	done    map[string]int64
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{pending: map[string]bool{}, done: map[string]int64{}}
}

func (s *memIdempotency) Reserve(_ context.Context, key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.done[key]; ok {
		return id, false, nil
	}
	if s.pending[key] {
		return 0, false, domain.ErrRequestInFlight
	}
	s.pending[key] = true
	return 0, true, nil
}

func (s *memIdempotency) Complete(_ context.Context, key string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
	s.done[key] = id
	return nil
}

func (s *memIdempotency) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
	return nil
}

// plainHasher stands in for bcrypt.
type plainHasher struct{}

var errMismatch = errors.New("password mismatch")

func (plainHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

func (plainHasher) Compare(hash, plaintext string) error {
	if hash != "hashed:"+plaintext {
		return errMismatch
	}
	return nil
}

var discardLogger = zerolog.Nop()

func adminIdentity() domain.UserIdentity {
	return domain.UserIdentity{UserID: 900, Username: "root", Role: domain.RoleAdmin}
}

func shopIdentity(u *domain.User) domain.UserIdentity {
	return u.Identity()
}
