package order

import (
	"context"
	"sync"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/order"
)

// 内存假实现,供下单/取消用例的单元测试使用
// 集成测试(test/integration)使用真实MySQL验证锁与事务,
// 这里只验证用例本身的编排逻辑

// fakeTxManager 用互斥锁把事务串行化,模拟数据库行锁的效果
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	mu    sync.Mutex
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	repo := &fakeBookRepo{books: make(map[uint]*book.Book)}
	for _, b := range books {
		repo.books[b.ID] = b
	}
	return repo
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == isbn {
			clone := *b
			return &clone, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*book.Book
	for _, b := range r.books {
		clone := *b
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	// 事务已被fakeTxManager串行化,这里等价于FindByID
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.Stock += delta
	return nil
}

// stockOf 断言辅助:查当前库存
func (r *fakeBookRepo) stockOf(id uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.books[id].Stock
}

// fakeCartRepo 内存购物车仓储
type fakeCartRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*cart.Item
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{nextID: 1, items: make(map[uint]*cart.Item)}
}

func (r *fakeCartRepo) Create(ctx context.Context, item *cart.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCartRepo) FindByID(ctx context.Context, id uint) (*cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, cart.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeCartRepo) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.UserID == userID && item.BookID == bookID {
			clone := *item
			return &clone, nil
		}
	}
	return nil, cart.ErrItemNotFound
}

func (r *fakeCartRepo) ListByUserID(ctx context.Context, userID uint) ([]*cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*cart.Item
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeCartRepo) Update(ctx context.Context, item *cart.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return cart.ErrItemNotFound
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepo) ClearByUserID(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeCartRepo) countByUser(userID uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, item := range r.items {
		if item.UserID == userID {
			count++
		}
	}
	return count
}

// fakeOrderRepo 内存订单仓储
type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID uint
	orders map[uint]*order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, orders: make(map[uint]*order.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextID
	r.nextID++
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		o.Items[i].ID = uint(i + 1)
	}
	clone := *o
	r.orders[o.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *fakeOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.OrderNo == orderNo {
			clone := *o
			return &clone, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	clone := *o
	r.orders[o.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			clone := *o
			result = append(result, &clone)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeOrderRepo) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*order.Order
	for _, o := range r.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		clone := *o
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (r *fakeOrderRepo) Stats(ctx context.Context, since time.Time) (*order.StatsResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := &order.StatsResult{CountByStatus: make(map[order.Status]int64)}
	for _, o := range r.orders {
		if o.CreatedAt.Before(since) {
			continue
		}
		result.TotalOrders++
		result.CountByStatus[o.Status]++
		if o.PaymentStatus == order.PaymentPaid {
			result.TotalRevenue += o.TotalAmount
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}
