package book

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
)

// PublishBookUseCase 图书上架用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO,与HTTP层解耦
type PublishBookUseCase struct {
	bookService book.Service
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	ISBN        string // ISBN号
	Title       string // 书名
	Author      string // 作者
	Publisher   string // 出版社
	Price       int64  // 价格(分)
	Stock       int    // 初始库存
	CoverURL    string // 封面图URL
	Description string // 图书描述
	CategoryIDs []uint // 所属分类
}

// Execute 执行上架用例
// 业务规则校验(ISBN格式、价格范围、重复检查)由领域服务负责
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookDetail, error) {
	b, err := uc.bookService.PublishBook(
		ctx,
		req.ISBN,
		req.Title,
		req.Author,
		req.Publisher,
		req.Price,
		req.Stock,
		req.CoverURL,
		req.Description,
		req.CategoryIDs,
	)
	if err != nil {
		return nil, err
	}

	return NewBookDetail(b), nil
}
