package posclient

// Credential is the bearer token and merchant a vendor call is made for.
type Credential struct {
	AccessToken string
	MerchantID  string
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
	Currency string   `json:"currency,omitempty"`
	Timezone string   `json:"timezone,omitempty"`
	Address  *Address `json:"address,omitempty"`
}

type Reference struct {
	ID string `json:"id"`
}

type LineItem struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	UnitQty  int    `json:"unitQty,omitempty"`
	UnitName string `json:"unitName,omitempty"`
}

type LineItems struct {
	Elements []LineItem `json:"elements"`
}

type Order struct {
	ID           string     `json:"id"`
	Total        int64      `json:"total"`
	Currency     string     `json:"currency,omitempty"`
	State        string     `json:"state,omitempty"`
	LineItems    *LineItems `json:"lineItems,omitempty"`
	CreatedTime  int64      `json:"createdTime,omitempty"`
	ModifiedTime int64      `json:"modifiedTime,omitempty"`
}

type AtomicLineItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	UnitName string `json:"unitName"`
}

type OrderCart struct {
	LineItems      []AtomicLineItem `json:"lineItems"`
	GroupLineItems bool             `json:"groupLineItems"`
}

type AtomicOrderRequest struct {
	OrderCart OrderCart `json:"orderCart"`
}

type CreateLineItemRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	UnitQty  int    `json:"unitQty"`
	UnitName string `json:"unitName"`
}

type Tender struct {
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`
	LabelKey string `json:"labelKey,omitempty"`
	Editable bool   `json:"editable,omitempty"`
	Enabled  bool   `json:"enabled,omitempty"`
}

type tenders struct {
	Elements []Tender `json:"elements"`
}

type CardTransaction struct {
	CardType string `json:"cardType,omitempty"`
	Last4    string `json:"last4,omitempty"`
	AuthCode string `json:"authCode,omitempty"`
}

type Payment struct {
	ID              string           `json:"id"`
	Amount          int64            `json:"amount"`
	TipAmount       int64            `json:"tipAmount,omitempty"`
	TaxAmount       int64            `json:"taxAmount,omitempty"`
	Result          string           `json:"result,omitempty"`
	CreatedTime     int64            `json:"createdTime,omitempty"`
	Order           *Reference       `json:"order,omitempty"`
	Tender          *Reference       `json:"tender,omitempty"`
	CardTransaction *CardTransaction `json:"cardTransaction,omitempty"`
}

type payments struct {
	Elements []Payment `json:"elements"`
}

type CreatePaymentRequest struct {
	Amount int64     `json:"amount"`
	Tender Reference `json:"tender"`
}
