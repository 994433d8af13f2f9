package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 内存假仓储,只实现加购/查看/管理用例涉及的路径

type fakeBookRepo struct {
	books map[uint]*book.Book
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}
func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}
func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error      { return nil }
func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}
func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}
func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error { return nil }

type fakeCartRepo struct {
	nextID uint
	items  map[uint]*cart.Item
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{nextID: 1, items: make(map[uint]*cart.Item)}
}

func (r *fakeCartRepo) Create(ctx context.Context, item *cart.Item) error {
	item.ID = r.nextID
	r.nextID++
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCartRepo) FindByID(ctx context.Context, id uint) (*cart.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, cart.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeCartRepo) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*cart.Item, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.BookID == bookID {
			clone := *item
			return &clone, nil
		}
	}
	return nil, cart.ErrItemNotFound
}

func (r *fakeCartRepo) ListByUserID(ctx context.Context, userID uint) ([]*cart.Item, error) {
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
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepo) ClearByUserID(ctx context.Context, userID uint) error {
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func newTestBook(id uint, title string, price int64, stock int) *book.Book {
	b := book.NewBook("9787115428028", title, "作者", "出版社", price, stock, "", "", nil)
	b.ID = id
	return b
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("首次加购创建新条目", func(t *testing.T) {
		bookRepo := &fakeBookRepo{books: map[uint]*book.Book{1: newTestBook(1, "Go", 1000, 10)}}
		cartRepo := newFakeCartRepo()

		uc := NewAddToCartUseCase(cartRepo, bookRepo)
		item, err := uc.Execute(ctx, 100, 1, 2)
		require.NoError(t, err)

		assert.NotZero(t, item.ID)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("重复加购累加数量", func(t *testing.T) {
		bookRepo := &fakeBookRepo{books: map[uint]*book.Book{1: newTestBook(1, "Go", 1000, 10)}}
		cartRepo := newFakeCartRepo()

		uc := NewAddToCartUseCase(cartRepo, bookRepo)
		first, err := uc.Execute(ctx, 100, 1, 2)
		require.NoError(t, err)

		second, err := uc.Execute(ctx, 100, 1, 3)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "应复用同一条目")
		assert.Equal(t, 5, second.Quantity, "数量应累加为2+3=5")

		items, err := cartRepo.ListByUserID(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, items, 1, "不应产生重复条目")
	})

	t.Run("加购数量超过库存失败", func(t *testing.T) {
		bookRepo := &fakeBookRepo{books: map[uint]*book.Book{1: newTestBook(1, "限量版", 1000, 2)}}
		cartRepo := newFakeCartRepo()

		uc := NewAddToCartUseCase(cartRepo, bookRepo)
		_, err := uc.Execute(ctx, 100, 1, 3)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
		assert.Contains(t, appErr.Message, "限量版")
	})

	t.Run("图书不存在失败", func(t *testing.T) {
		bookRepo := &fakeBookRepo{books: map[uint]*book.Book{}}
		cartRepo := newFakeCartRepo()

		uc := NewAddToCartUseCase(cartRepo, bookRepo)
		_, err := uc.Execute(ctx, 100, 999, 1)

		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("数量为0失败", func(t *testing.T) {
		bookRepo := &fakeBookRepo{books: map[uint]*book.Book{1: newTestBook(1, "Go", 1000, 10)}}
		uc := NewAddToCartUseCase(newFakeCartRepo(), bookRepo)

		_, err := uc.Execute(ctx, 100, 1, 0)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})
}

func TestManageCart(t *testing.T) {
	ctx := context.Background()

	t.Run("修改数量", func(t *testing.T) {
		cartRepo := newFakeCartRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 2)))

		uc := NewManageCartUseCase(cartRepo)
		item, err := uc.UpdateQuantity(ctx, 100, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("不能操作他人条目", func(t *testing.T) {
		cartRepo := newFakeCartRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 2)))

		uc := NewManageCartUseCase(cartRepo)
		_, err := uc.UpdateQuantity(ctx, 200, 1, 5)
		assert.ErrorIs(t, err, cart.ErrItemNotFound)

		err = uc.RemoveItem(ctx, 200, 1)
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})

	t.Run("清空购物车幂等", func(t *testing.T) {
		cartRepo := newFakeCartRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 2)))

		uc := NewManageCartUseCase(cartRepo)
		require.NoError(t, uc.Clear(ctx, 100))
		require.NoError(t, uc.Clear(ctx, 100), "空购物车再次清空也应成功")

		items, err := cartRepo.ListByUserID(ctx, 100)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
