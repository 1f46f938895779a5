package handlers

import (
	"context"
	"time"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
	"github.com/nlefevre/gocommerce/pkg/helpers"
)

// In-memory repositories for exercising handlers end to end over httptest.

type memRevocationStore struct {
	revoked map[string]time.Time
}

func newMemRevocationStore() *memRevocationStore {
	return &memRevocationStore{revoked: map[string]time.Time{}}
}

func (m *memRevocationStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *memRevocationStore) Revoked(_ context.Context, tokenID string) bool {
	exp, ok := m.revoked[tokenID]
	return ok && time.Now().Before(exp)
}

type memUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[int64]*entity.User{}} }

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *memUserRepo) SetVerified(_ context.Context, id int64) error {
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	now := time.Now()
	u.IsVerified = true
	u.VerifiedAt = &now
	return nil
}

type memProductRepo struct {
	nextID   int64
	products map[int64]*entity.Product
}

func newMemProductRepo() *memProductRepo { return &memProductRepo{products: map[int64]*entity.Product{}} }

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(m.products))
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memProductRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.products[id]
	return ok, nil
}

func (m *memProductRepo) SetImageURL(_ context.Context, id int64, url string) error {
	p, ok := m.products[id]
	if !ok {
		return repo.ErrNotFound
	}
	p.ImageURL = url
	return nil
}

type memReviewRepo struct {
	nextID  int64
	reviews map[int64]*entity.Review
}

func newMemReviewRepo() *memReviewRepo { return &memReviewRepo{reviews: map[int64]*entity.Review{}} }

func (m *memReviewRepo) Create(_ context.Context, r *entity.Review) error {
	m.nextID++
	r.ID = m.nextID
	cp := *r
	m.reviews[r.ID] = &cp
	return nil
}

func (m *memReviewRepo) GetByID(_ context.Context, id int64) (*entity.Review, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memReviewRepo) ListByProduct(_ context.Context, productID int64) ([]entity.Review, error) {
	out := make([]entity.Review, 0)
	for id := int64(1); id <= m.nextID; id++ {
		if r, ok := m.reviews[id]; ok && r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReviewRepo) Update(_ context.Context, r *entity.Review) error {
	if _, ok := m.reviews[r.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *r
	m.reviews[r.ID] = &cp
	return nil
}

func (m *memReviewRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.reviews[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.reviews, id)
	return nil
}

type memOrderRepo struct {
	nextID int64
	orders map[int64]*entity.Order
}

func newMemOrderRepo() *memOrderRepo { return &memOrderRepo{orders: map[int64]*entity.Order{}} }

func (m *memOrderRepo) CreateWithItems(_ context.Context, o *entity.Order, items []entity.OrderItem, ship *entity.Shipping) error {
	m.nextID++
	o.ID = m.nextID
	for i := range items {
		items[i].ID = int64(i + 1)
		items[i].OrderID = o.ID
	}
	ship.ID = m.nextID
	ship.OrderID = o.ID
	o.Items = items
	o.Shipping = ship
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) ListByUser(_ context.Context, userID int64) ([]entity.Order, error) {
	out := make([]entity.Order, 0)
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) Update(_ context.Context, o *entity.Order) error {
	if _, ok := m.orders[o.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.orders[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

type memPaymentRepo struct {
	nextID   int64
	payments []entity.Payment
}

func (m *memPaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	m.nextID++
	p.ID = m.nextID
	m.payments = append(m.payments, *p)
	return nil
}

func (m *memPaymentRepo) ListByOrder(_ context.Context, orderID int64) ([]entity.Payment, error) {
	out := make([]entity.Payment, 0)
	for _, p := range m.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memCartRepo struct {
	nextCartID int64
	nextItemID int64
	carts      map[int64]*entity.Cart
	items      map[int64]*entity.CartItem
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[int64]*entity.Cart{}, items: map[int64]*entity.CartItem{}}
}

func (m *memCartRepo) CreateForUser(_ context.Context, userID int64) (*entity.Cart, error) {
	m.nextCartID++
	c := &entity.Cart{ID: m.nextCartID, UserID: userID, CreatedAt: time.Now()}
	m.carts[c.ID] = c
	return c, nil
}

func (m *memCartRepo) GetByID(_ context.Context, id int64) (*entity.Cart, error) {
	c, ok := m.carts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCartRepo) GetByUserID(_ context.Context, userID int64) (*entity.Cart, error) {
	for _, c := range m.carts {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memCartRepo) ListItems(_ context.Context, cartID int64) ([]entity.CartItem, error) {
	out := make([]entity.CartItem, 0)
	for id := int64(1); id <= m.nextItemID; id++ {
		if it, ok := m.items[id]; ok && it.CartID == cartID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (m *memCartRepo) AddItem(_ context.Context, item *entity.CartItem) error {
	m.nextItemID++
	item.ID = m.nextItemID
	item.AddedAt = time.Now()
	cp := *item
	m.items[item.ID] = &cp
	m.carts[item.CartID].TotalItems++
	return nil
}

func (m *memCartRepo) UpdateItemQuantity(_ context.Context, cartID, itemID int64, quantity int) error {
	it, ok := m.items[itemID]
	if !ok || it.CartID != cartID {
		return repo.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (m *memCartRepo) RemoveItem(_ context.Context, cartID, itemID int64) error {
	it, ok := m.items[itemID]
	if !ok || it.CartID != cartID {
		return repo.ErrNotFound
	}
	delete(m.items, itemID)
	m.carts[cartID].TotalItems--
	return nil
}

type memWishlistRepo struct {
	nextID     int64
	nextItemID int64
	lists      map[int64]*entity.Wishlist
	items      map[int64]*entity.WishlistItem
}

func newMemWishlistRepo() *memWishlistRepo {
	return &memWishlistRepo{lists: map[int64]*entity.Wishlist{}, items: map[int64]*entity.WishlistItem{}}
}

func (m *memWishlistRepo) CreateForUser(_ context.Context, userID int64) (*entity.Wishlist, error) {
	m.nextID++
	w := &entity.Wishlist{ID: m.nextID, UserID: userID, CreatedAt: time.Now()}
	m.lists[w.ID] = w
	return w, nil
}

func (m *memWishlistRepo) GetByID(_ context.Context, id int64) (*entity.Wishlist, error) {
	w, ok := m.lists[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (m *memWishlistRepo) GetByUserID(_ context.Context, userID int64) (*entity.Wishlist, error) {
	for _, w := range m.lists {
		if w.UserID == userID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memWishlistRepo) ListItems(_ context.Context, wishlistID int64) ([]entity.WishlistItem, error) {
	out := make([]entity.WishlistItem, 0)
	for id := int64(1); id <= m.nextItemID; id++ {
		if it, ok := m.items[id]; ok && it.WishlistID == wishlistID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (m *memWishlistRepo) AddItem(_ context.Context, item *entity.WishlistItem) error {
	m.nextItemID++
	item.ID = m.nextItemID
	item.AddedAt = time.Now()
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *memWishlistRepo) UpdateItemQuantity(_ context.Context, wishlistID, itemID int64, quantity int) error {
	it, ok := m.items[itemID]
	if !ok || it.WishlistID != wishlistID {
		return repo.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (m *memWishlistRepo) RemoveItem(_ context.Context, wishlistID, itemID int64) error {
	it, ok := m.items[itemID]
	if !ok || it.WishlistID != wishlistID {
		return repo.ErrNotFound
	}
	delete(m.items, itemID)
	return nil
}

type stubGateway struct {
	lastAmount int64
}

func (g *stubGateway) CreateIntent(_ context.Context, amountCents int64, _ string) (string, string, error) {
	g.lastAmount = amountCents
	return "pi_stub", "pi_stub_secret", nil
}

var (
	_ repo.UserRepository     = (*memUserRepo)(nil)
	_ repo.ProductRepository  = (*memProductRepo)(nil)
	_ repo.ReviewRepository   = (*memReviewRepo)(nil)
	_ helpers.RevocationStore = (*memRevocationStore)(nil)
	_ repo.OrderRepository    = (*memOrderRepo)(nil)
	_ repo.PaymentRepository  = (*memPaymentRepo)(nil)
	_ repo.CartRepository     = (*memCartRepo)(nil)
	_ repo.WishlistRepository = (*memWishlistRepo)(nil)
)
