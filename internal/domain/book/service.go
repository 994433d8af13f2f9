package book

import (
	"context"
	"regexp"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 封装跨实体的业务规则校验(ISBN格式、价格范围)
// 2. 写操作由管理员发起,权限校验在接口层的中间件完成
type Service interface {
	// PublishBook 上架图书
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字)
	// - 价格必须在1-9999999分之间
	// - 库存必须>=0
	// - ISBN不能重复
	PublishBook(ctx context.Context, isbn, title, author, publisher string, price int64, stock int, coverURL, description string, categoryIDs []uint) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBookInfo 更新图书信息(可选更新价格)
	UpdateBookInfo(ctx context.Context, id uint, title, author, publisher, coverURL, description string, price int64, categoryIDs []uint) (*Book, error)

	// RestockBook 管理员补货/盘减(delta可为负,但结果不能为负库存)
	RestockBook(ctx context.Context, id uint, delta int) (*Book, error)

	// DeleteBook 下架图书(软删除)
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表(公开接口)
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PublishBook 上架图书
func (s *service) PublishBook(ctx context.Context, isbn, title, author, publisher string, price int64, stock int, coverURL, description string, categoryIDs []uint) (*Book, error) {
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	if price < 1 || price > 9999999 {
		return nil, ErrInvalidPrice
	}

	if stock < 0 {
		return nil, ErrInvalidStock
	}

	// ISBN唯一性最终由数据库UNIQUE索引保证,这里提前检查给出友好错误
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && err != ErrBookNotFound {
		return nil, err
	}

	b := NewBook(isbn, title, author, publisher, price, stock, coverURL, description, categoryIDs)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBookInfo 更新图书信息
// price<=0表示不修改价格;categoryIDs为nil表示不修改分类
func (s *service) UpdateBookInfo(ctx context.Context, id uint, title, author, publisher, coverURL, description string, price int64, categoryIDs []uint) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.UpdateInfo(title, author, publisher, coverURL, description)

	if price > 0 {
		if price > 9999999 {
			return nil, ErrInvalidPrice
		}
		if err := b.UpdatePrice(price); err != nil {
			return nil, err
		}
	}

	if categoryIDs != nil {
		b.CategoryIDs = categoryIDs
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// RestockBook 管理员补货
// 走UpdateStock原子操作而不是读改写,和下单扣减共用同一套负库存守卫
func (s *service) RestockBook(ctx context.Context, id uint, delta int) (*Book, error) {
	if delta == 0 {
		return nil, ErrInvalidQuantity
	}

	if err := s.repo.UpdateStock(ctx, id, delta); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// DeleteBook 下架图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// isValidISBN 校验ISBN格式
// 支持ISBN-10和ISBN-13,允许带分隔符(978-7-115-42802-8)
// 简化实现:只检查位数(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	re := regexp.MustCompile(`[^0-9Xx]`)
	clean := re.ReplaceAllString(isbn, "")

	length := len(clean)
	return length == 10 || length == 13
}
