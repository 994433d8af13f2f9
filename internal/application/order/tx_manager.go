package order

import (
	"context"
)

// TxManager 事务边界抽象
// 设计说明:
// 1. 下单/取消必须在单个数据库事务内完成(全有或全无)
// 2. 应用层只依赖这个小接口,mysql.TxManager是生产实现
// 3. 单元测试用假实现替换,不需要真实数据库
type TxManager interface {
	// Transaction 在一个事务中执行fn
	// fn返回error时回滚,返回nil时提交
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
