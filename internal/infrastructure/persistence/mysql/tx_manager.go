package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务DB在context中的键(非导出类型,避免与其他包的键冲突)
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量),各Repository的getDB方法读取
// 3. fn返回error时自动ROLLBACK,返回nil时自动COMMIT
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn内通过txCtx调用的所有Repository操作都会落在同一事务中
//
// 使用示例(下单流程):
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    book, err := bookRepo.LockByID(ctx, bookID) // SELECT FOR UPDATE
//	    if err != nil {
//	        return err
//	    }
//	    if err := orderRepo.Create(ctx, order); err != nil {
//	        return err // 自动回滚
//	    }
//	    return bookRepo.UpdateStock(ctx, bookID, -quantity)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// dbFromContext 从context提取事务DB,没有事务时退回默认DB
// 各Repository共用,保证同一事务内的语句走同一连接
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
