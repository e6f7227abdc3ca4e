package posapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/cloverconnect/lib/myerrors"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(350), ToMinorUnits(3.50))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, 7.0, ToMajorUnits(700))
}

func TestOrderTotal(t *testing.T) {
	total := OrderTotal([]LineItemRequest{
		{Name: "Coffee", Price: 3.50, Quantity: 2},
		{Name: "Bagel", Price: 2.25, Quantity: 1},
	})
	assert.Equal(t, int64(925), total)
}

func TestValidateCreateOrder(t *testing.T) {
	testCases := []struct {
		name    string
		req     CreateOrderRequest
		problem string
	}{
		{
			name:    "No items",
			req:     CreateOrderRequest{},
			problem: "items is required",
		},
		{
			name:    "Empty items",
			req:     CreateOrderRequest{Items: []LineItemRequest{}},
			problem: "items must contain at least 1 entry",
		},
		{
			name:    "Missing name",
			req:     CreateOrderRequest{Items: []LineItemRequest{{Price: 1, Quantity: 1}}},
			problem: "items[0].name is required",
		},
		{
			name:    "Zero price",
			req:     CreateOrderRequest{Items: []LineItemRequest{{Name: "Tea", Price: 1, Quantity: 1}, {Name: "Coffee", Price: 0, Quantity: 1}}},
			problem: "items[1].price must be greater than 0",
		},
		{
			name:    "Negative price",
			req:     CreateOrderRequest{Items: []LineItemRequest{{Name: "Coffee", Price: -3.5, Quantity: 1}}},
			problem: "items[0].price must be greater than 0",
		},
		{
			name:    "Zero quantity",
			req:     CreateOrderRequest{Items: []LineItemRequest{{Name: "Coffee", Price: 3.5, Quantity: 0}}},
			problem: "items[0].quantity must be at least 1",
		},
		{
			name:    "Price beyond maximum",
			req:     CreateOrderRequest{Items: []LineItemRequest{{Name: "Gold", Price: 1e18, Quantity: 1}}},
			problem: "items[0].price must be at most 1000000",
		},
		{
			name:    "Quantity beyond maximum",
			req:     CreateOrderRequest{Items: []LineItemRequest{{Name: "Coffee", Price: 3.5, Quantity: MaxQuantity + 1}}},
			problem: "items[0].quantity must be at most 10000",
		},
		{
			name:    "Too many items",
			req:     CreateOrderRequest{Items: make([]LineItemRequest, MaxItems+1)},
			problem: "items must contain at most 1000 entries",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.req)
			assert.Error(t, err)
			assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
			assert.Equal(t, tc.problem, myerrors.GetMessage(err))
		})
	}

	t.Run("Valid", func(t *testing.T) {
		err := Validate(CreateOrderRequest{Items: []LineItemRequest{{Name: "Coffee", Price: 3.5, Quantity: 2}}})
		assert.NoError(t, err)
	})

	t.Run("Largest order total fits minor units", func(t *testing.T) {
		items := make([]LineItemRequest, MaxItems)
		for i := range items {
			items[i] = LineItemRequest{Name: "Gold", Price: MaxPrice, Quantity: MaxQuantity}
		}
		assert.NoError(t, Validate(CreateOrderRequest{Items: items}))
		assert.Equal(t, int64(MaxItems)*MaxPrice*100*MaxQuantity, OrderTotal(items))
	})
}

func TestValidateAddLineItem(t *testing.T) {
	assert.NoError(t, Validate(AddLineItemRequest{Name: "Muffin", Price: 2.5}))
	assert.Error(t, Validate(AddLineItemRequest{Name: "Muffin", Price: 2.5, Quantity: -1}))
	assert.Error(t, Validate(AddLineItemRequest{Price: 2.5}))
	assert.Error(t, Validate(AddLineItemRequest{Name: "Gold", Price: 1e18}))
	assert.Error(t, Validate(AddLineItemRequest{Name: "Muffin", Price: 2.5, Quantity: MaxQuantity + 1}))
}

func TestDemoPayment(t *testing.T) {
	assert.True(t, Payment{Type: PaymentTypeDemo}.IsDemo())
	assert.False(t, Payment{}.IsDemo())
}
