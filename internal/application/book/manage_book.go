package book

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
)

// ManageBookUseCase 图书管理用例(查详情、更新、补货、下架)
type ManageBookUseCase struct {
	bookService book.Service
}

// NewManageBookUseCase 创建图书管理用例
func NewManageBookUseCase(bookService book.Service) *ManageBookUseCase {
	return &ManageBookUseCase{
		bookService: bookService,
	}
}

// GetBook 查询图书详情(公开接口)
func (uc *ManageBookUseCase) GetBook(ctx context.Context, id uint) (*BookDetail, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewBookDetail(b), nil
}

// UpdateBookRequest 更新请求DTO
// 空字符串/零值表示不修改对应字段;CategoryIDs为nil表示不修改分类
type UpdateBookRequest struct {
	Title       string
	Author      string
	Publisher   string
	CoverURL    string
	Description string
	Price       int64 // 分,<=0表示不修改
	CategoryIDs []uint
}

// UpdateBook 更新图书信息(管理员)
func (uc *ManageBookUseCase) UpdateBook(ctx context.Context, id uint, req UpdateBookRequest) (*BookDetail, error) {
	b, err := uc.bookService.UpdateBookInfo(ctx, id,
		req.Title, req.Author, req.Publisher, req.CoverURL, req.Description,
		req.Price, req.CategoryIDs)
	if err != nil {
		return nil, err
	}
	return NewBookDetail(b), nil
}

// RestockBook 补货/盘减(管理员)
// delta为正表示补货,为负表示盘减;结果不能为负库存
func (uc *ManageBookUseCase) RestockBook(ctx context.Context, id uint, delta int) (*BookDetail, error) {
	b, err := uc.bookService.RestockBook(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	return NewBookDetail(b), nil
}

// DeleteBook 下架图书(管理员,软删除)
// 历史订单明细保存了标题和价格快照,不受下架影响
func (uc *ManageBookUseCase) DeleteBook(ctx context.Context, id uint) error {
	return uc.bookService.DeleteBook(ctx, id)
}
