package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
)

// In-memory repositories backing the service tests.

func userFixture(name string) *entity.User {
	return &entity.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}
}

func productFixture(name, price string) *entity.Product {
	return &entity.Product{Name: name, Description: name + " description", Price: decimal.RequireFromString(price), StockQuantity: 10}
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	// mirrors the unique constraint on users.email
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return repo.ErrConflict
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) SetVerified(_ context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	now := time.Now()
	u.IsVerified = true
	u.VerifiedAt = &now
	return nil
}

type fakeProductRepo struct {
	nextID   int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

func (f *fakeProductRepo) SetImageURL(_ context.Context, id int64, url string) error {
	p, ok := f.products[id]
	if !ok {
		return repo.ErrNotFound
	}
	p.ImageURL = url
	return nil
}

type fakeOrderRepo struct {
	nextID  int64
	orders  map[int64]*entity.Order
	created []entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*entity.Order{}}
}

func (f *fakeOrderRepo) CreateWithItems(_ context.Context, o *entity.Order, items []entity.OrderItem, ship *entity.Shipping) error {
	f.nextID++
	o.ID = f.nextID
	for i := range items {
		items[i].ID = int64(i + 1)
		items[i].OrderID = o.ID
	}
	ship.ID = f.nextID
	ship.OrderID = o.ID
	o.Items = items
	o.Shipping = ship
	cp := *o
	f.orders[o.ID] = &cp
	f.created = append(f.created, cp)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]entity.Order, error) {
	out := make([]entity.Order, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	if _, ok := f.orders[o.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

type fakeCartRepo struct {
	nextCartID int64
	nextItemID int64
	carts      map[int64]*entity.Cart
	items      map[int64]*entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[int64]*entity.Cart{}, items: map[int64]*entity.CartItem{}}
}

func (f *fakeCartRepo) CreateForUser(_ context.Context, userID int64) (*entity.Cart, error) {
	f.nextCartID++
	c := &entity.Cart{ID: f.nextCartID, UserID: userID, CreatedAt: time.Now()}
	f.carts[c.ID] = c
	return c, nil
}

func (f *fakeCartRepo) GetByID(_ context.Context, id int64) (*entity.Cart, error) {
	c, ok := f.carts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCartRepo) GetByUserID(_ context.Context, userID int64) (*entity.Cart, error) {
	for _, c := range f.carts {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCartRepo) ListItems(_ context.Context, cartID int64) ([]entity.CartItem, error) {
	out := make([]entity.CartItem, 0)
	for id := int64(1); id <= f.nextItemID; id++ {
		if it, ok := f.items[id]; ok && it.CartID == cartID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, item *entity.CartItem) error {
	f.nextItemID++
	item.ID = f.nextItemID
	item.AddedAt = time.Now()
	cp := *item
	f.items[item.ID] = &cp
	f.carts[item.CartID].TotalItems++
	return nil
}

func (f *fakeCartRepo) UpdateItemQuantity(_ context.Context, cartID, itemID int64, quantity int) error {
	it, ok := f.items[itemID]
	if !ok || it.CartID != cartID {
		return repo.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, cartID, itemID int64) error {
	it, ok := f.items[itemID]
	if !ok || it.CartID != cartID {
		return repo.ErrNotFound
	}
	delete(f.items, itemID)
	f.carts[cartID].TotalItems--
	return nil
}

type fakeWishlistRepo struct {
	nextID     int64
	nextItemID int64
	lists      map[int64]*entity.Wishlist
	items      map[int64]*entity.WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{lists: map[int64]*entity.Wishlist{}, items: map[int64]*entity.WishlistItem{}}
}

func (f *fakeWishlistRepo) CreateForUser(_ context.Context, userID int64) (*entity.Wishlist, error) {
	f.nextID++
	w := &entity.Wishlist{ID: f.nextID, UserID: userID, CreatedAt: time.Now()}
	f.lists[w.ID] = w
	return w, nil
}

func (f *fakeWishlistRepo) GetByID(_ context.Context, id int64) (*entity.Wishlist, error) {
	w, ok := f.lists[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWishlistRepo) GetByUserID(_ context.Context, userID int64) (*entity.Wishlist, error) {
	for _, w := range f.lists {
		if w.UserID == userID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeWishlistRepo) ListItems(_ context.Context, wishlistID int64) ([]entity.WishlistItem, error) {
	out := make([]entity.WishlistItem, 0)
	for id := int64(1); id <= f.nextItemID; id++ {
		if it, ok := f.items[id]; ok && it.WishlistID == wishlistID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) AddItem(_ context.Context, item *entity.WishlistItem) error {
	f.nextItemID++
	item.ID = f.nextItemID
	item.AddedAt = time.Now()
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeWishlistRepo) UpdateItemQuantity(_ context.Context, wishlistID, itemID int64, quantity int) error {
	it, ok := f.items[itemID]
	if !ok || it.WishlistID != wishlistID {
		return repo.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (f *fakeWishlistRepo) RemoveItem(_ context.Context, wishlistID, itemID int64) error {
	it, ok := f.items[itemID]
	if !ok || it.WishlistID != wishlistID {
		return repo.ErrNotFound
	}
	delete(f.items, itemID)
	return nil
}

var (
	_ repo.UserRepository     = (*fakeUserRepo)(nil)
	_ repo.ProductRepository  = (*fakeProductRepo)(nil)
	_ repo.OrderRepository    = (*fakeOrderRepo)(nil)
	_ repo.CartRepository     = (*fakeCartRepo)(nil)
	_ repo.WishlistRepository = (*fakeWishlistRepo)(nil)
)
