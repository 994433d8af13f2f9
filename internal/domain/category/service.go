package category

import (
	"context"
)

// Service 分类领域服务
// 分类是纯CRUD,Service只做名称校验与slug生成
type Service interface {
	// CreateCategory 创建分类(管理员)
	CreateCategory(ctx context.Context, name, description string) (*Category, error)

	// GetCategoryByID 查询分类
	GetCategoryByID(ctx context.Context, id uint) (*Category, error)

	// ListCategories 查询全部分类
	ListCategories(ctx context.Context) ([]*Category, error)

	// UpdateCategory 更新分类(管理员),name为空表示不改名
	UpdateCategory(ctx context.Context, id uint, name, description string) (*Category, error)

	// DeleteCategory 删除分类(管理员)
	DeleteCategory(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCategory(ctx context.Context, name, description string) (*Category, error) {
	if len(name) < 1 || len(name) > 50 {
		return nil, ErrInvalidName
	}

	c := NewCategory(name, description)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCategoryByID(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateCategory(ctx context.Context, id uint, name, description string) (*Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != c.Name {
		if len(name) > 50 {
			return nil, ErrInvalidName
		}
		c.Rename(name)
	}
	if description != "" {
		c.Description = description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
