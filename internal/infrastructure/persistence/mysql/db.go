package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookmall/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 启动时AutoMigrate表结构（生产环境应改用版本化迁移脚本）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只创建表、补字段，不删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&BookModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. infrastructure层的数据模型，带GORM tag；domain实体不依赖GORM
// 2. Repository负责模型与领域实体间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:100;not null;comment:姓名"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt哈希）"`
	Role      string         `gorm:"size:10;not null;default:user;comment:角色(user/admin)"`
	Address   string         `gorm:"type:text;comment:默认收货地址"`
	Phone     string         `gorm:"size:20;comment:电话"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:50;not null;comment:分类名"`
	Slug        string    `gorm:"uniqueIndex;size:60;not null;comment:URL标识"`
	Description string    `gorm:"type:text;comment:描述"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格int64存"分"(避免浮点数精度问题)
// 2. ISBN唯一索引;Stock只会经由原子UPDATE变更
// 3. 与分类多对多,关联表book_categories
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	ISBN        string          `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Title       string          `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string          `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Publisher   string          `gorm:"size:100;comment:出版社"`
	Price       int64           `gorm:"index:idx_list;not null;comment:价格(分)"`
	Stock       int             `gorm:"not null;default:0;comment:库存数量"`
	CoverURL    string          `gorm:"size:500;comment:封面图片URL"`
	Description string          `gorm:"type:text;comment:图书描述"`
	Categories  []CategoryModel `gorm:"many2many:book_categories"`
	CreatedAt   time.Time       `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt  `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// CartItemModel GORM购物车条目模型
// (user_id, book_id)复合唯一索引:同一本书只有一行,重复加购累加数量
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_book;not null;comment:用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_user_book;not null;comment:图书ID"`
	Quantity  int       `gorm:"not null;default:1;comment:数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 与OrderItemModel一对多;OrderNo唯一索引(业务主键)
// 2. Status/PaymentStatus用tinyint存储
type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	OrderNo         string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID          uint             `gorm:"index;not null;comment:买家用户ID"`
	TotalAmount     int64            `gorm:"not null;comment:订单总金额(分)"`
	Status          int              `gorm:"index;type:tinyint;default:1;comment:订单状态(1待处理2处理中3已发货4已送达5已取消)"`
	PaymentStatus   int              `gorm:"type:tinyint;default:1;comment:支付状态(1待支付2已支付3失败)"`
	PaymentMethod   string           `gorm:"size:20;not null;comment:支付方式"`
	ShippingAddress string           `gorm:"type:text;not null;comment:收货地址"`
	Notes           string           `gorm:"type:text;comment:买家备注"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt       time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price/Title是下单时刻的快照,创建后永不UPDATE
type OrderItemModel struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"index;not null;comment:订单ID"`
	BookID   uint   `gorm:"index;not null;comment:图书ID"`
	Title    string `gorm:"size:200;not null;comment:下单时书名快照"`
	Quantity int    `gorm:"not null;comment:购买数量"`
	Price    int64  `gorm:"not null;comment:下单时单价(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}
