package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 图书与分类模块集成测试
// 公开查询任何人可访问;写操作需要管理员角色

func TestBookCatalog(t *testing.T) {
	RequireServer(t)

	t.Run("图书列表公开可访问", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "")
		assert.Equal(t, 0, resp.Code)
	})

	t.Run("分类列表公开可访问", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/categories", "")
		assert.Equal(t, 0, resp.Code)
	})

	t.Run("不存在的图书返回404", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/99999999", "")
		assert.NotEqual(t, 0, resp.Code)
	})
}

func TestBookAdmin(t *testing.T) {
	RequireServer(t)
	adminToken := AdminToken(t)

	t.Run("普通用户不能上架图书", func(t *testing.T) {
		_, userToken := RegisterTestUser(t, "not_admin")

		resp := PostJSON(t, BaseURL+"/admin/books", map[string]interface{}{
			"isbn":   GenerateTestISBN(),
			"title":  "越权上架",
			"author": "测试作者",
			"price":  1000,
			"stock":  10,
		}, userToken)

		assert.NotEqual(t, 0, resp.Code, "非管理员应被拒绝")
	})

	t.Run("上架与查询", func(t *testing.T) {
		bookID := PublishTestBook(t, adminToken, "集成测试图书", 8900, 10)

		resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
		require.Equal(t, 0, resp.Code)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "集成测试图书", data.Title)
		assert.Equal(t, int64(8900), data.Price)
		assert.Equal(t, "89.00", data.PriceYuan)
		assert.Equal(t, 10, data.Stock)
	})

	t.Run("ISBN重复上架失败", func(t *testing.T) {
		isbn := GenerateTestISBN()
		req := map[string]interface{}{
			"isbn":   isbn,
			"title":  "重复ISBN",
			"author": "测试作者",
			"price":  1000,
			"stock":  5,
		}

		resp := PostJSON(t, BaseURL+"/admin/books", req, adminToken)
		require.Equal(t, 0, resp.Code)

		resp = PostJSON(t, BaseURL+"/admin/books", req, adminToken)
		assert.NotEqual(t, 0, resp.Code, "重复ISBN应该失败")
	})

	t.Run("补货与盘减", func(t *testing.T) {
		bookID := PublishTestBook(t, adminToken, "补货测试", 1000, 10)

		resp := PatchJSON(t, fmt.Sprintf("%s/admin/books/%d/stock", BaseURL, bookID),
			map[string]int{"delta": 5}, adminToken)
		require.Equal(t, 0, resp.Code)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 15, data.Stock, "补货后库存应为10+5=15")

		// 盘减超过库存应失败
		resp = PatchJSON(t, fmt.Sprintf("%s/admin/books/%d/stock", BaseURL, bookID),
			map[string]int{"delta": -100}, adminToken)
		assert.NotEqual(t, 0, resp.Code, "盘减至负库存应该失败")
	})

	t.Run("更新图书信息", func(t *testing.T) {
		bookID := PublishTestBook(t, adminToken, "改价前", 1000, 10)

		resp := PutJSON(t, fmt.Sprintf("%s/admin/books/%d", BaseURL, bookID),
			map[string]interface{}{
				"title": "改价后",
				"price": 2000,
			}, adminToken)
		require.Equal(t, 0, resp.Code)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "改价后", data.Title)
		assert.Equal(t, int64(2000), data.Price)
	})

	t.Run("下架图书", func(t *testing.T) {
		bookID := PublishTestBook(t, adminToken, "下架测试", 1000, 10)

		resp := DeleteJSON(t, fmt.Sprintf("%s/admin/books/%d", BaseURL, bookID), adminToken)
		require.Equal(t, 0, resp.Code)

		resp = GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
		assert.NotEqual(t, 0, resp.Code, "下架后不应再查到")
	})
}
