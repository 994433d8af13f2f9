//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 运行 `wire gen ./cmd/api` 生成wire_gen.go;
// main.go中的手动组装与此等价,二者保持同步

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

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
)

// infrastructureSet 基础设施层:配置、MySQL、Redis
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewCategoryRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	provideTxManager,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	category.NewService,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	provideLoginUseCase,
	provideLogoutUseCase,
	appuser.NewRefreshTokenUseCase,
	appuser.NewProfileUseCase,
	appbook.NewPublishBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewManageBookUseCase,
	appcategory.NewManageCategoryUseCase,
	appcart.NewAddToCartUseCase,
	appcart.NewGetCartUseCase,
	appcart.NewManageCartUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewCancelOrderUseCase,
	apporder.NewAdminOrderUseCase,
	apporder.NewUpdateStatusUseCase,
)

// middlewareSet JWT管理器、会话存储、认证中间件
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewCategoryHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置提取JWT参数
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建会话存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideTxManager 事务管理器,以应用层接口形态提供
// 下单/取消用例依赖apporder.TxManager接口,便于单元测试替换
func provideTxManager(db *gorm.DB) apporder.TxManager {
	return mysql.NewTxManager(db)
}

// provideLoginUseCase 登录用例需要Refresh Token有效期(会话TTL)
func provideLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
	cfg *config.Config,
) *appuser.LoginUseCase {
	return appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
}

// provideLogoutUseCase 登出用例需要Access Token有效期(黑名单TTL)
func provideLogoutUseCase(sessionStore *redis.SessionStore, cfg *config.Config) *appuser.LogoutUseCase {
	return appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)
}

// provideGinEngine 创建Gin引擎并注册全部路由
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	registerRoutes(r, userHandler, bookHandler, categoryHandler, cartHandler, orderHandler, authMiddleware)
	return r
}

// InitializeApp Wire注入器入口
// 依赖链:*gin.Engine ← Handler ← UseCase ← Service ← Repository ← *gorm.DB ← *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
