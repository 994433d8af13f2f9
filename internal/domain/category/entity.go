package category

import (
	"regexp"
	"strings"
	"time"
)

// Category 图书分类实体
// 设计说明:
// 1. Name业务唯一,Slug由Name派生(用于前端友好URL)
// 2. 与Book是多对多关系,关联关系由Book侧维护
type Category struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建分类(工厂方法)
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Slug:        Slugify(name),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Rename 重命名分类,同步更新Slug
func (c *Category) Rename(name string) {
	c.Name = name
	c.Slug = Slugify(name)
	c.UpdatedAt = time.Now()
}

// Slugify 从名称生成slug
// 规则:小写,非字母数字折叠为连字符,去掉首尾连字符
// 例如:"Science Fiction" → "science-fiction"
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
