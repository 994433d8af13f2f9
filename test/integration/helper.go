package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 黑盒测试:通过HTTP访问运行中的服务,验证完整链路
// (Handler → UseCase → Service → Repository → MySQL/Redis)
//
// 运行前提:
//  1. docker compose up -d 启动MySQL与Redis
//  2. go run ./cmd/api 启动服务
//  3. 管理端测试需要环境变量 BOOKMALL_TEST_ADMIN_EMAIL / BOOKMALL_TEST_ADMIN_PASSWORD
//     (管理员账号需事先在数据库中将role置为admin)

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

var emailSeq uint64

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// UserData 用户响应数据
type UserData struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginData 登录响应数据
type LoginData struct {
	User         UserData `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

// BookData 图书响应数据
type BookData struct {
	ID        uint   `json:"id"`
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	Stock     int    `json:"stock"`
}

// CartData 购物车响应数据
type CartData struct {
	Items []struct {
		ItemID   uint  `json:"item_id"`
		BookID   uint  `json:"book_id"`
		Quantity int   `json:"quantity"`
		Subtotal int64 `json:"subtotal"`
	} `json:"items"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
}

// OrderData 订单响应数据
type OrderData struct {
	OrderID         uint   `json:"order_id"`
	OrderNo         string `json:"order_no"`
	TotalAmount     int64  `json:"total_amount"`
	TotalAmountYuan string `json:"total_amount_yuan"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	Items           []struct {
		BookID   uint   `json:"book_id"`
		Title    string `json:"title"`
		Quantity int    `json:"quantity"`
		Price    int64  `json:"price"`
	} `json:"items"`
}

// RequireServer 服务未启动时跳过测试而不是失败
func RequireServer(t *testing.T) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", "localhost:8080", time.Second)
	if err != nil {
		t.Skip("服务未运行,跳过集成测试(先启动 go run ./cmd/api)")
	}
	conn.Close()
}

// doJSON 发送HTTP请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// PatchJSON 发送PATCH请求
func PatchJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPatch, url, data, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 时间戳+自增序号,避免同一秒内注册冲突
func GenerateTestEmail(prefix string) string {
	seq := atomic.AddUint64(&emailSeq, 1)
	return fmt.Sprintf("%s_%d_%d@test.com", prefix, time.Now().Unix(), seq)
}

// GenerateTestISBN 生成唯一的测试ISBN(978+10位数字)
func GenerateTestISBN() string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("978%010d", timestamp%10000000000)
}

// RegisterTestUser 注册并登录测试用户,返回用户ID和Access Token
func RegisterTestUser(t *testing.T, prefix string) (uint, string) {
	t.Helper()

	email := GenerateTestEmail(prefix)
	password := "test1234"

	resp := PostJSON(t, BaseURL+"/auth/register", map[string]string{
		"name":     "测试用户",
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, resp.Code, "注册失败: %s", resp.Message)

	resp = PostJSON(t, BaseURL+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, resp.Code, "登录失败: %s", resp.Message)

	var data LoginData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.AccessToken)

	return data.User.ID, data.AccessToken
}

// AdminToken 登录管理员账号,未配置时跳过测试
func AdminToken(t *testing.T) string {
	t.Helper()

	email := os.Getenv("BOOKMALL_TEST_ADMIN_EMAIL")
	password := os.Getenv("BOOKMALL_TEST_ADMIN_PASSWORD")
	if email == "" || password == "" {
		t.Skip("未配置管理员测试账号,跳过(设置BOOKMALL_TEST_ADMIN_EMAIL/PASSWORD)")
	}

	resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, resp.Code, "管理员登录失败: %s", resp.Message)

	var data LoginData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Equal(t, "admin", data.User.Role, "测试账号不是管理员")

	return data.AccessToken
}

// PublishTestBook 上架测试图书,返回图书ID
func PublishTestBook(t *testing.T, adminToken, title string, price int64, stock int) uint {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/admin/books", map[string]interface{}{
		"isbn":   GenerateTestISBN(),
		"title":  title,
		"author": "测试作者",
		"price":  price,
		"stock":  stock,
	}, adminToken)
	require.Equal(t, 0, resp.Code, "上架图书失败: %s", resp.Message)

	var data BookData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotZero(t, data.ID)

	return data.ID
}

// AddToCart 加购辅助
func AddToCart(t *testing.T, token string, bookID uint, quantity int) {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
		"book_id":  bookID,
		"quantity": quantity,
	}, token)
	require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)
}
