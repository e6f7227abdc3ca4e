package posapi

import (
	"math"
)

const (
	DefaultCurrency = "USD"
	DefaultUnitName = "each"

	// PaymentTypeDemo marks a payment that was simulated because the merchant has no usable tender
	PaymentTypeDemo = "DEMO_EXTERNAL_PAYMENT"
	PaymentStatusOK = "SUCCESS"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type TokenRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri,omitempty"`
	MerchantID  string `json:"merchant_id,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse carries the vendor expirations as unix seconds.
type TokenResponse struct {
	Success                bool   `json:"success"`
	AccessToken            string `json:"access_token"`
	RefreshToken           string `json:"refresh_token,omitempty"`
	MerchantID             string `json:"merchant_id,omitempty"`
	AccessTokenExpiration  int64  `json:"access_token_expiration,omitempty"`
	RefreshTokenExpiration int64  `json:"refresh_token_expiration,omitempty"`
}

type Address struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country,omitempty"`
}

type Merchant struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Currency string   `json:"currency"`
	Timezone string   `json:"timezone,omitempty"`
	Address  *Address `json:"address,omitempty"`
}

type MerchantResponse struct {
	Success  bool     `json:"success"`
	Merchant Merchant `json:"merchant"`
}

// Upper bounds keep every order total representable in minor units.
const (
	MaxPrice    = 1000000
	MaxQuantity = 10000
	MaxItems    = 1000
)

type LineItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0,lte=1000000"`
	Quantity int     `json:"quantity" validate:"min=1,max=10000"`
}

type CreateOrderRequest struct {
	Items []LineItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

type AddLineItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0,lte=1000000"`
	Quantity int     `json:"quantity,omitempty" validate:"omitempty,min=1,max=10000"`
	UnitName string  `json:"unitName,omitempty"`
}

type PayRequest struct {
	CardToken string `json:"cardToken,omitempty"`
}

type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	UnitQty  int    `json:"unitQty,omitempty"`
	UnitName string `json:"unitName,omitempty"`
}

type Order struct {
	ID           string     `json:"id"`
	Total        int64      `json:"total"`
	Currency     string     `json:"currency"`
	State        string     `json:"state,omitempty"`
	LineItems    []LineItem `json:"lineItems"`
	CreatedTime  int64      `json:"createdTime,omitempty"`
	ModifiedTime int64      `json:"modifiedTime,omitempty"`
}

type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

type LineItemResponse struct {
	Success  bool     `json:"success"`
	LineItem LineItem `json:"lineItem"`
}

type TenderSummary struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type OrderSummary struct {
	ID       string `json:"id"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}

type Payment struct {
	ID        string `json:"id"`
	Status    string `json:"status,omitempty"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Type      string `json:"type,omitempty"`
	Simulated bool   `json:"simulated,omitempty"`
	Message   string `json:"message,omitempty"`

	Tender *TenderSummary `json:"tender,omitempty"`
	Order  *OrderSummary  `json:"order,omitempty"`

	TipAmount   int64  `json:"tipAmount,omitempty"`
	TaxAmount   int64  `json:"taxAmount,omitempty"`
	Result      string `json:"result,omitempty"`
	CreatedTime int64  `json:"createdTime,omitempty"`
	CardType    string `json:"cardType,omitempty"`
	Last4       string `json:"last4,omitempty"`
	AuthCode    string `json:"authCode,omitempty"`
}

func (p Payment) IsDemo() bool {
	return p.Type == PaymentTypeDemo
}

type PaymentResponse struct {
	Success bool    `json:"success"`
	Payment Payment `json:"payment"`
}

type PaymentsResponse struct {
	Success  bool      `json:"success"`
	Payments []Payment `json:"payments"`
}

// Transaction is the local projection of a completed payment, amount is in major currency units.
type Transaction struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Details   any     `json:"details,omitempty"`
}

type TransactionsResponse struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
}

func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func ToMajorUnits(amount int64) float64 {
	return float64(amount) / 100
}

// OrderTotal sums the draft items the way the vendor will: every unit price rounded to minor units first.
func OrderTotal(items []LineItemRequest) int64 {
	total := int64(0)
	for _, item := range items {
		total += ToMinorUnits(item.Price) * int64(item.Quantity)
	}
	return total
}
