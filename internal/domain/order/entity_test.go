package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseStatus 状态token解析
func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"pending":    StatusPending,
		"processing": StatusProcessing,
		"shipped":    StatusShipped,
		"delivered":  StatusDelivered,
		"cancelled":  StatusCancelled,
	}
	for token, want := range cases {
		got, err := ParseStatus(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got)
		assert.Equal(t, token, got.String())
	}

	_, err := ParseStatus("refunded")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

// TestCalculateTotal 总金额等于明细价格快照×数量之和
func TestCalculateTotal(t *testing.T) {
	// 购物车示例:A 10.00元×2 + B 5.00元×1 = 25.00元
	o := &Order{
		Items: []Item{
			{BookID: 1, Quantity: 2, Price: 1000},
			{BookID: 2, Quantity: 1, Price: 500},
		},
	}
	assert.Equal(t, int64(2500), o.CalculateTotal())
}

// TestCancel 取消规则:pending/processing可取消,其余状态拒绝,不可重复取消
func TestCancel(t *testing.T) {
	t.Run("pending可取消", func(t *testing.T) {
		o := &Order{Status: StatusPending}
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})

	t.Run("processing可取消", func(t *testing.T) {
		o := &Order{Status: StatusProcessing}
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})

	t.Run("shipped不可取消", func(t *testing.T) {
		o := &Order{Status: StatusShipped}
		assert.ErrorIs(t, o.Cancel(), ErrInvalidCancellation)
		assert.Equal(t, StatusShipped, o.Status)
	})

	t.Run("重复取消被拒绝", func(t *testing.T) {
		o := &Order{Status: StatusPending}
		require.NoError(t, o.Cancel())
		assert.ErrorIs(t, o.Cancel(), ErrInvalidCancellation)
	})
}

// TestSetStatus 管理员改状态只校验枚举成员资格,不做状态机限制
func TestSetStatus(t *testing.T) {
	o := &Order{Status: StatusDelivered}

	// 线上行为:允许delivered回退pending(人工纠错)
	require.NoError(t, o.SetStatus(StatusPending))
	assert.Equal(t, StatusPending, o.Status)

	assert.ErrorIs(t, o.SetStatus(Status(99)), ErrInvalidStatus)
}

// TestSetPaymentStatus 支付成功自动推进pending→processing
func TestSetPaymentStatus(t *testing.T) {
	o := &Order{Status: StatusPending, PaymentStatus: PaymentPending}
	o.SetPaymentStatus(PaymentPaid)
	assert.Equal(t, PaymentPaid, o.PaymentStatus)
	assert.Equal(t, StatusProcessing, o.Status)

	// 非pending状态不自动推进
	o2 := &Order{Status: StatusShipped, PaymentStatus: PaymentPending}
	o2.SetPaymentStatus(PaymentPaid)
	assert.Equal(t, StatusShipped, o2.Status)
}

// TestPaymentMethod 支付方式枚举
func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentMethodCreditCard.IsValid())
	assert.True(t, PaymentMethodPaypal.IsValid())
	assert.True(t, PaymentMethodCashOnDelivery.IsValid())
	assert.False(t, PaymentMethod("bitcoin").IsValid())
}
