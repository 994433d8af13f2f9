package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookmall/docs" // swagger文档注册
	appbook "github.com/xiebiao/bookmall/internal/application/book"
	appcart "github.com/xiebiao/bookmall/internal/application/cart"
	appcategory "github.com/xiebiao/bookmall/internal/application/category"
	apporder "github.com/xiebiao/bookmall/internal/application/order"
	appuser "github.com/xiebiao/bookmall/internal/application/user"
	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/category"
	"github.com/xiebiao/bookmall/internal/domain/user"
	"github.com/xiebiao/bookmall/internal/infrastructure/config"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookmall/internal/interface/http/handler"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	"github.com/xiebiao/bookmall/pkg/jwt"
	"github.com/xiebiao/bookmall/pkg/response"
)

// main 主程序入口
// 依赖注入链:Repository ← Service ← UseCase ← Handler
// 说明:手动组装依赖;wire.go提供等价的Wire注入器(wire gen ./cmd/api)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化MySQL连接(含AutoMigrate)
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 5. 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	categoryService := category.NewService(categoryRepo)

	// 6. 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)
	refreshUseCase := appuser.NewRefreshTokenUseCase(jwtManager)
	profileUseCase := appuser.NewProfileUseCase(userService)

	publishBookUseCase := appbook.NewPublishBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	manageBookUseCase := appbook.NewManageBookUseCase(bookService)

	manageCategoryUseCase := appcategory.NewManageCategoryUseCase(categoryService)

	addToCartUseCase := appcart.NewAddToCartUseCase(cartRepo, bookRepo)
	getCartUseCase := appcart.NewGetCartUseCase(cartRepo, bookRepo)
	manageCartUseCase := appcart.NewManageCartUseCase(cartRepo)

	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, bookRepo, cartRepo, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	cancelOrderUseCase := apporder.NewCancelOrderUseCase(orderRepo, bookRepo, txManager)
	adminOrderUseCase := apporder.NewAdminOrderUseCase(orderRepo)
	updateStatusUseCase := apporder.NewUpdateStatusUseCase(orderRepo)

	// 7. 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, refreshUseCase, profileUseCase)
	bookHandler := handler.NewBookHandler(publishBookUseCase, listBooksUseCase, manageBookUseCase)
	categoryHandler := handler.NewCategoryHandler(manageCategoryUseCase)
	cartHandler := handler.NewCartHandler(addToCartUseCase, getCartUseCase, manageCartUseCase)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, getOrderUseCase, listOrdersUseCase,
		cancelOrderUseCase, adminOrderUseCase, updateStatusUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 初始化Gin引擎并注册路由
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	registerRoutes(r, userHandler, bookHandler, categoryHandler, cartHandler, orderHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("服务启动: http://localhost%s (swagger: /swagger/index.html)", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 三层访问控制:公开 / 登录(RequireAuth) / 管理员(RequireAuth+RequireAdmin)
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// Swagger文档(生产环境建议关闭或加访问控制)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证模块(公开)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.RefreshToken)
			auth.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 目录模块(公开只读)
		v1.GET("/books", bookHandler.List)
		v1.GET("/books/:id", bookHandler.Get)
		v1.GET("/categories", categoryHandler.List)
		v1.GET("/categories/:id", categoryHandler.Get)

		// 需要登录的接口
		authorized := v1.Group("")
		authorized.Use(authMiddleware.RequireAuth())
		{
			// 个人资料
			authorized.GET("/users/me", userHandler.GetProfile)
			authorized.PUT("/users/me", userHandler.UpdateProfile)

			// 购物车
			authorized.GET("/cart", cartHandler.Get)
			authorized.DELETE("/cart", cartHandler.Clear)
			authorized.POST("/cart/items", cartHandler.Add)
			authorized.PUT("/cart/items/:id", cartHandler.UpdateItem)
			authorized.DELETE("/cart/items/:id", cartHandler.RemoveItem)

			// 订单
			authorized.POST("/orders", orderHandler.Create)
			authorized.GET("/orders", orderHandler.List)
			authorized.GET("/orders/:id", orderHandler.Get)
			authorized.PUT("/orders/:id/cancel", orderHandler.Cancel)
		}

		// 管理接口
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			// 图书管理
			admin.POST("/books", bookHandler.Publish)
			admin.PUT("/books/:id", bookHandler.Update)
			admin.PATCH("/books/:id/stock", bookHandler.Restock)
			admin.DELETE("/books/:id", bookHandler.Delete)

			// 分类管理
			admin.POST("/categories", categoryHandler.Create)
			admin.PUT("/categories/:id", categoryHandler.Update)
			admin.DELETE("/categories/:id", categoryHandler.Delete)

			// 订单管理
			admin.GET("/orders", orderHandler.AdminList)
			admin.GET("/orders/stats", orderHandler.Stats)
			admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
			admin.PUT("/orders/:id/payment", orderHandler.UpdatePaymentStatus)
		}
	}
}
