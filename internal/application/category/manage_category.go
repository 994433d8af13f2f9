package category

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/category"
)

// ManageCategoryUseCase 分类管理用例
// 分类是薄CRUD,一个用例承载全部操作
type ManageCategoryUseCase struct {
	categoryService category.Service
}

// NewManageCategoryUseCase 创建分类管理用例
func NewManageCategoryUseCase(categoryService category.Service) *ManageCategoryUseCase {
	return &ManageCategoryUseCase{
		categoryService: categoryService,
	}
}

// CategoryView 分类视图DTO
type CategoryView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func newCategoryView(c *category.Category) *CategoryView {
	return &CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Create 创建分类(管理员)
func (uc *ManageCategoryUseCase) Create(ctx context.Context, name, description string) (*CategoryView, error) {
	c, err := uc.categoryService.CreateCategory(ctx, name, description)
	if err != nil {
		return nil, err
	}
	return newCategoryView(c), nil
}

// Get 查询分类详情(公开)
func (uc *ManageCategoryUseCase) Get(ctx context.Context, id uint) (*CategoryView, error) {
	c, err := uc.categoryService.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newCategoryView(c), nil
}

// List 查询全部分类(公开,不分页)
func (uc *ManageCategoryUseCase) List(ctx context.Context) ([]*CategoryView, error) {
	categories, err := uc.categoryService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*CategoryView, len(categories))
	for i, c := range categories {
		views[i] = newCategoryView(c)
	}
	return views, nil
}

// Update 更新分类(管理员),name为空表示不改名
func (uc *ManageCategoryUseCase) Update(ctx context.Context, id uint, name, description string) (*CategoryView, error) {
	c, err := uc.categoryService.UpdateCategory(ctx, id, name, description)
	if err != nil {
		return nil, err
	}
	return newCategoryView(c), nil
}

// Delete 删除分类(管理员)
// 只删除分类与关联关系,分类下的图书保留
func (uc *ManageCategoryUseCase) Delete(ctx context.Context, id uint) error {
	return uc.categoryService.DeleteCategory(ctx, id)
}
