package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类
	// 名称或slug重复时返回ErrCategoryDuplicate
	Create(ctx context.Context, category *Category) error

	// FindByID 根据ID查找分类
	FindByID(ctx context.Context, id uint) (*Category, error)

	// List 查询全部分类(数量有限,不分页)
	List(ctx context.Context) ([]*Category, error)

	// Update 更新分类
	Update(ctx context.Context, category *Category) error

	// Delete 删除分类(只删分类和关联关系,不删图书)
	Delete(ctx context.Context, id uint) error
}
