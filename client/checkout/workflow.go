package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarcGrol/cloverconnect/client/session"
	"github.com/MarcGrol/cloverconnect/lib/myerrors"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/lib/mystore"
	"github.com/MarcGrol/cloverconnect/lib/myuuid"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

const (
	draftUID = "current"
	// DefaultCardToken is sent when paying without an explicit card token
	DefaultCardToken = "test_token"
)

var (
	ErrOrderAlreadyCreated = errors.New("order already created")
	ErrEmptyDraft          = errors.New("please add at least one item")
	ErrNoOrder             = errors.New("please create an order first")
)

type DraftItem struct {
	ID string `json:"id"`
	posapi.LineItemRequest
}

// Draft holds the line items collected before the order is created remotely. Once OrderID is set
// the draft is frozen.
type Draft struct {
	Items   []DraftItem `json:"items"`
	OrderID string      `json:"orderId,omitempty"`
}

func (d Draft) Total() int64 {
	return posapi.OrderTotal(d.lineItems())
}

func (d Draft) lineItems() []posapi.LineItemRequest {
	items := make([]posapi.LineItemRequest, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, item.LineItemRequest)
	}
	return items
}

type Workflow struct {
	api    PosAPI
	drafts mystore.Store[Draft]
	uuider myuuid.UUIDer
	notify session.Notifier
	logger mylog.Logger
}

func NewWorkflow(api PosAPI, drafts mystore.Store[Draft], uuider myuuid.UUIDer, notify session.Notifier) *Workflow {
	if notify == nil {
		notify = func(kind session.NotificationKind, message string) {}
	}
	return &Workflow{
		api:    api,
		drafts: drafts,
		uuider: uuider,
		notify: notify,
		logger: mylog.New("checkout"),
	}
}

func (w *Workflow) Current(c context.Context) (Draft, error) {
	draft, _, err := w.drafts.Get(c, draftUID)
	if err != nil {
		return Draft{}, fmt.Errorf("error fetching draft: %s", err)
	}
	return draft, nil
}

func (w *Workflow) AddItem(c context.Context, item posapi.LineItemRequest) (Draft, error) {
	err := posapi.Validate(item)
	if err != nil {
		return Draft{}, err
	}

	draft := Draft{}
	err = w.drafts.RunInTransaction(c, func(c context.Context) error {
		draft, err = w.Current(c)
		if err != nil {
			return err
		}
		if draft.OrderID != "" {
			return ErrOrderAlreadyCreated
		}

		draft.Items = append(draft.Items, DraftItem{
			ID:              w.uuider.Create(),
			LineItemRequest: item,
		})

		return w.drafts.Put(c, draftUID, draft)
	})
	if err != nil {
		return Draft{}, err
	}

	w.notify(session.NotifySuccess, fmt.Sprintf("Added %s to order", item.Name))

	return draft, nil
}

func (w *Workflow) RemoveItem(c context.Context, itemID string) (Draft, error) {
	draft := Draft{}
	err := w.drafts.RunInTransaction(c, func(c context.Context) error {
		var err error
		draft, err = w.Current(c)
		if err != nil {
			return err
		}
		if draft.OrderID != "" {
			return ErrOrderAlreadyCreated
		}

		remaining := make([]DraftItem, 0, len(draft.Items))
		for _, item := range draft.Items {
			if item.ID != itemID {
				remaining = append(remaining, item)
			}
		}
		if len(remaining) == len(draft.Items) {
			return myerrors.NewNotFoundError(fmt.Errorf("item %s not found in draft", itemID))
		}
		draft.Items = remaining

		return w.drafts.Put(c, draftUID, draft)
	})
	if err != nil {
		return Draft{}, err
	}

	w.notify(session.NotifyInfo, "Item removed from order")

	return draft, nil
}

// Clear starts a new flow: draft items and the created order are forgotten.
func (w *Workflow) Clear(c context.Context) error {
	err := w.drafts.Delete(c, draftUID)
	if err != nil {
		return fmt.Errorf("error clearing draft: %s", err)
	}

	w.notify(session.NotifyInfo, "All items cleared")

	return nil
}

func (w *Workflow) CreateOrder(c context.Context) (posapi.Order, error) {
	draft, err := w.Current(c)
	if err != nil {
		return posapi.Order{}, err
	}
	if draft.OrderID != "" {
		return posapi.Order{}, ErrOrderAlreadyCreated
	}
	if len(draft.Items) == 0 {
		return posapi.Order{}, ErrEmptyDraft
	}

	w.logger.Log(c, "", mylog.SeverityInfo, "Create order with %d items", len(draft.Items))

	order, err := w.api.CreateOrder(c, posapi.CreateOrderRequest{Items: draft.lineItems()})
	if err != nil {
		w.notify(session.NotifyError, fmt.Sprintf("Order creation failed: %s", err))
		return posapi.Order{}, err
	}

	draft.OrderID = order.ID
	err = w.drafts.Put(c, draftUID, draft)
	if err != nil {
		return posapi.Order{}, fmt.Errorf("error storing draft: %s", err)
	}

	w.logger.Log(c, order.ID, mylog.SeverityInfo, "Created order %s with total %d", order.ID, order.Total)
	w.notify(session.NotifySuccess, fmt.Sprintf("Order created successfully: %s", order.ID))

	return order, nil
}

// Order fetches the remote state of the created order.
func (w *Workflow) Order(c context.Context) (posapi.Order, error) {
	orderID, err := w.orderID(c)
	if err != nil {
		return posapi.Order{}, err
	}
	return w.api.GetOrder(c, orderID)
}

func (w *Workflow) Pay(c context.Context, cardToken string) (posapi.Payment, error) {
	orderID, err := w.orderID(c)
	if err != nil {
		return posapi.Payment{}, err
	}
	if cardToken == "" {
		cardToken = DefaultCardToken
	}

	w.logger.Log(c, orderID, mylog.SeverityInfo, "Pay order %s", orderID)

	payment, err := w.api.PayOrder(c, orderID, posapi.PayRequest{CardToken: cardToken})
	if err != nil {
		w.notify(session.NotifyError, fmt.Sprintf("Payment failed: %s", err))
		return posapi.Payment{}, err
	}

	if payment.IsDemo() {
		w.notify(session.NotifyWarning, "Payment simulated: merchant has no usable tender")
	} else {
		w.notify(session.NotifySuccess, "Payment processed successfully!")
	}

	return payment, nil
}

func (w *Workflow) PaymentStatus(c context.Context) ([]posapi.Payment, error) {
	orderID, err := w.orderID(c)
	if err != nil {
		return nil, err
	}
	return w.api.OrderPayments(c, orderID)
}

func (w *Workflow) History(c context.Context) ([]posapi.Transaction, error) {
	return w.api.Transactions(c)
}

func (w *Workflow) orderID(c context.Context) (string, error) {
	draft, err := w.Current(c)
	if err != nil {
		return "", err
	}
	if draft.OrderID == "" {
		return "", ErrNoOrder
	}
	return draft.OrderID, nil
}
