package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookmall/internal/domain/book"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 数据库特定错误(ISBN重复、记录不存在)转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书(含分类关联)
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Publisher:   b.Publisher,
		Price:       b.Price,
		Stock:       b.Stock,
		CoverURL:    b.CoverURL,
		Description: b.Description,
		Categories:  toCategoryRefs(b.CategoryIDs),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书(预加载分类)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Preload("Categories").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
// 注意:不更新Stock列——库存只走UpdateStock原子操作,避免读改写覆盖并发扣减
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	db := r.db.WithContext(ctx)

	updates := map[string]interface{}{
		"title":       b.Title,
		"author":      b.Author,
		"publisher":   b.Publisher,
		"price":       b.Price,
		"cover_url":   b.CoverURL,
		"description": b.Description,
		"updated_at":  b.UpdatedAt,
	}

	result := db.Model(&BookModel{}).Where("id = ?", b.ID).Updates(updates)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	// 替换分类关联
	if b.CategoryIDs != nil {
		model := BookModel{ID: b.ID}
		refs := toCategoryRefs(b.CategoryIDs)
		if err := db.Model(&model).Association("Categories").Replace(refs); err != nil {
			return apperrors.Wrap(err, "更新图书分类失败")
		}
	}

	return nil
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 分页查询图书列表
// 支持关键词搜索、分类过滤、价格区间、排序
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.db.WithContext(ctx).Model(&BookModel{})

	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR author LIKE ? OR publisher LIKE ?", keyword, keyword, keyword)
	}

	if params.CategoryID > 0 {
		// 通过关联表过滤分类
		query = query.Where("id IN (?)",
			r.db.Table("book_categories").
				Select("book_model_id").
				Where("category_model_id = ?", params.CategoryID))
	}

	if params.MinPrice > 0 {
		query = query.Where("price >= ?", params.MinPrice)
	}
	if params.MaxPrice > 0 {
		query = query.Where("price <= ?", params.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	switch params.SortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}

	offset := (params.Page - 1) * params.PageSize
	err := query.Preload("Categories").
		Limit(params.PageSize).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// LockByID 悲观锁查询图书(用于下单事务)
// SELECT * FROM books WHERE id = ? FOR UPDATE
// 必须通过dbFromContext参与事务,否则锁无意义
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := dbFromContext(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateStock 更新库存(原子操作)
// UPDATE books SET stock = stock + ? WHERE id = ? AND stock + ? >= 0
// WHERE守卫防止负库存;RowsAffected=0时区分"不存在"和"库存不足"
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("stock + ? >= 0", delta).
		Update("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		// 图书存在,说明是库存不足
		return book.ErrInsufficientStock
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toBookEntity(model *BookModel) *book.Book {
	categoryIDs := make([]uint, len(model.Categories))
	for i, c := range model.Categories {
		categoryIDs[i] = c.ID
	}

	return &book.Book{
		ID:          model.ID,
		ISBN:        model.ISBN,
		Title:       model.Title,
		Author:      model.Author,
		Publisher:   model.Publisher,
		Price:       model.Price,
		Stock:       model.Stock,
		CoverURL:    model.CoverURL,
		Description: model.Description,
		CategoryIDs: categoryIDs,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// toCategoryRefs 分类ID列表 → 关联引用(只带主键,GORM据此写关联表)
func toCategoryRefs(ids []uint) []CategoryModel {
	refs := make([]CategoryModel, len(ids))
	for i, id := range ids {
		refs[i] = CategoryModel{ID: id}
	}
	return refs
}
