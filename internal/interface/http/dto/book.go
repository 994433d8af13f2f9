package dto

// 图书相关HTTP DTO

// PublishBookRequest 上架图书请求(管理员)
type PublishBookRequest struct {
	ISBN        string `json:"isbn" binding:"required" example:"9787115428028"`
	Title       string `json:"title" binding:"required,max=255" example:"Go语言实战"`
	Author      string `json:"author" binding:"required,max=255" example:"William Kennedy"`
	Publisher   string `json:"publisher" binding:"omitempty,max=255" example:"人民邮电出版社"`
	Price       int64  `json:"price" binding:"required,gt=0" example:"5900"` // 单位:分
	Stock       int    `json:"stock" binding:"gte=0" example:"100"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	CategoryIDs []uint `json:"category_ids"`
}

// UpdateBookRequest 更新图书请求(管理员)
// 所有字段可选,省略/零值表示不修改
type UpdateBookRequest struct {
	Title       string `json:"title" binding:"omitempty,max=255"`
	Author      string `json:"author" binding:"omitempty,max=255"`
	Publisher   string `json:"publisher" binding:"omitempty,max=255"`
	Price       int64  `json:"price" binding:"omitempty,gt=0"` // 单位:分
	CoverURL    string `json:"cover_url" binding:"omitempty,url"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	CategoryIDs []uint `json:"category_ids"`
}

// RestockBookRequest 补货请求(管理员)
// delta为正表示补货,为负表示盘减
type RestockBookRequest struct {
	Delta int `json:"delta" binding:"required" example:"50"`
}

// ListBooksQuery 图书列表查询参数
type ListBooksQuery struct {
	Page       int    `form:"page,default=1" binding:"omitempty,gte=1"`
	PageSize   int    `form:"page_size,default=20" binding:"omitempty,gte=1,lte=100"`
	Keyword    string `form:"keyword"`
	CategoryID uint   `form:"category_id"`
	MinPrice   int64  `form:"min_price" binding:"omitempty,gte=0"` // 单位:分
	MaxPrice   int64  `form:"max_price" binding:"omitempty,gte=0"` // 单位:分
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc created_at_desc"`
}
