package dto

// 购物车相关HTTP DTO

// AddToCartRequest 加入购物车请求
type AddToCartRequest struct {
	BookID   uint `json:"book_id" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"required,gt=0" example:"2"`
}

// UpdateCartItemRequest 修改购物车条目数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0" example:"3"`
}
