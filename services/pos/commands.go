package pos

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarcGrol/cloverconnect/lib/myerrors"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/services/pos/posclient"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

const (
	demoPaymentMessage = "Demo payment processed successfully. In production, use external payment processors or cash tenders."
	timestampLayout    = "2006-01-02T15:04:05.000Z07:00"
)

func (s *service) getMerchant(c context.Context, cred resolvedCredential, legacy bool) (posapi.Merchant, error) {
	s.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "Fetch merchant %s using %s credential", cred.MerchantID, cred.Source)

	merchant, err := s.posClient.GetMerchant(c, cred.Credential)
	if err != nil {
		if legacy && myerrors.IsNotFound(err) {
			return posapi.Merchant{}, myerrors.NewNotFoundError(errors.New("Merchant not found"))
		}
		if myerrors.IsNotFound(err) {
			return posapi.Merchant{}, myerrors.NewVendorError(errors.New("Failed to fetch merchant information"), myerrors.GetMessage(err))
		}
		return posapi.Merchant{}, err
	}

	return toMerchant(merchant), nil
}

func (s *service) createOrder(c context.Context, cred resolvedCredential, req posapi.CreateOrderRequest) (posapi.Order, error) {
	err := posapi.Validate(req)
	if err != nil {
		return posapi.Order{}, err
	}

	lineItems := make([]posclient.AtomicLineItem, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, posclient.AtomicLineItem{
			Name:     item.Name,
			Price:    posapi.ToMinorUnits(item.Price),
			Quantity: item.Quantity,
			UnitName: posapi.DefaultUnitName,
		})
	}

	s.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "Create atomic order with %d items (expected total %d)", len(lineItems), posapi.OrderTotal(req.Items))

	order, err := s.posClient.CreateAtomicOrder(c, cred.Credential, posclient.AtomicOrderRequest{
		OrderCart: posclient.OrderCart{
			LineItems:      lineItems,
			GroupLineItems: false,
		},
	})
	if err != nil {
		return posapi.Order{}, err
	}

	s.logger.Log(c, order.ID, mylog.SeverityInfo, "Created order %s with total %d", order.ID, order.Total)

	return toOrder(order), nil
}

func (s *service) getOrder(c context.Context, cred resolvedCredential, orderID string) (posapi.Order, error) {
	s.logger.Log(c, orderID, mylog.SeverityInfo, "Fetch order %s", orderID)

	order, err := s.posClient.GetOrder(c, cred.Credential, orderID, true)
	if err != nil {
		return posapi.Order{}, err
	}

	return toOrder(order), nil
}

func (s *service) addLineItem(c context.Context, cred resolvedCredential, orderID string, req posapi.AddLineItemRequest) (posapi.LineItem, error) {
	err := posapi.Validate(req)
	if err != nil {
		return posapi.LineItem{}, err
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.UnitName == "" {
		req.UnitName = posapi.DefaultUnitName
	}

	s.logger.Log(c, orderID, mylog.SeverityInfo, "Add line item '%s' to order %s", req.Name, orderID)

	lineItem, err := s.posClient.AddLineItem(c, cred.Credential, orderID, posclient.CreateLineItemRequest{
		Name:     req.Name,
		Price:    posapi.ToMinorUnits(req.Price),
		UnitQty:  req.Quantity,
		UnitName: req.UnitName,
	})
	if err != nil {
		return posapi.LineItem{}, err
	}

	return toLineItem(lineItem), nil
}

func (s *service) deleteLineItem(c context.Context, cred resolvedCredential, orderID string, lineItemID string) error {
	s.logger.Log(c, orderID, mylog.SeverityInfo, "Delete line item %s from order %s", lineItemID, orderID)

	return s.posClient.DeleteLineItem(c, cred.Credential, orderID, lineItemID)
}

func (s *service) payOrder(c context.Context, cred resolvedCredential, orderID string) (posapi.Payment, error) {
	s.logger.Log(c, orderID, mylog.SeverityInfo, "Pay order %s", orderID)

	order, err := s.posClient.GetOrder(c, cred.Credential, orderID, false)
	if err != nil {
		return posapi.Payment{}, err
	}

	if order.Total <= 0 {
		return posapi.Payment{}, myerrors.NewInvalidInputError(errors.New("Order has no total amount"))
	}

	currency := currencyOrDefault(order.Currency)
	summary := &posapi.OrderSummary{ID: order.ID, Total: order.Total, Currency: order.Currency}

	tenders, err := s.posClient.ListTenders(c, cred.Credential)
	if err != nil {
		return posapi.Payment{}, err
	}

	tender, found := selectTender(tenders)
	if !found {
		if len(tenders) == 0 {
			return posapi.Payment{}, myerrors.NewInvalidInputError(errors.New("No suitable payment tender available. Please configure an external payment tender in your Clover account."))
		}

		s.logger.Log(c, orderID, mylog.SeverityWarn, "None of the %d tenders qualifies: simulating payment for order %s", len(tenders), orderID)

		return posapi.Payment{
			ID:        fmt.Sprintf("demo_%s", s.uuider.Create()),
			Status:    posapi.PaymentStatusOK,
			Amount:    order.Total,
			Currency:  currency,
			OrderID:   orderID,
			Type:      posapi.PaymentTypeDemo,
			Simulated: true,
			Message:   demoPaymentMessage,
			Order:     summary,
		}, nil
	}

	s.logger.Log(c, orderID, mylog.SeverityInfo, "Charge %d %s on tender %s (%s)", order.Total, currency, tender.ID, tender.Label)

	payment, err := s.posClient.CreatePayment(c, cred.Credential, orderID, posclient.CreatePaymentRequest{
		Amount: order.Total,
		Tender: posclient.Reference{ID: tender.ID},
	})
	if err != nil {
		return posapi.Payment{}, err
	}

	status := payment.Result
	if status == "" {
		status = posapi.PaymentStatusOK
	}

	s.transactions.Record(c, posapi.Transaction{
		ID:        payment.ID,
		OrderID:   orderID,
		Amount:    posapi.ToMajorUnits(order.Total),
		Status:    status,
		Timestamp: s.nower.Now().UTC().Format(timestampLayout),
		Details:   payment,
	})

	s.logger.Log(c, orderID, mylog.SeverityInfo, "Paid order %s with payment %s (%s)", orderID, payment.ID, status)

	return posapi.Payment{
		ID:       payment.ID,
		Status:   status,
		Amount:   payment.Amount,
		Currency: currency,
		OrderID:  orderID,
		Tender:   &posapi.TenderSummary{ID: tender.ID, Label: tender.Label},
		Order:    summary,
	}, nil
}

func (s *service) listOrderPayments(c context.Context, cred resolvedCredential, orderID string) ([]posapi.Payment, error) {
	s.logger.Log(c, orderID, mylog.SeverityInfo, "Fetch payments of order %s", orderID)

	payments, err := s.posClient.ListOrderPayments(c, cred.Credential, orderID)
	if err != nil {
		return nil, err
	}

	result := make([]posapi.Payment, 0, len(payments))
	for _, p := range payments {
		result = append(result, toPayment(p))
	}

	return result, nil
}

func (s *service) getPayment(c context.Context, cred resolvedCredential, paymentID string) (posapi.Payment, error) {
	s.logger.Log(c, paymentID, mylog.SeverityInfo, "Fetch payment %s", paymentID)

	payment, err := s.posClient.GetPayment(c, cred.Credential, paymentID)
	if err != nil {
		return posapi.Payment{}, err
	}

	result := toPayment(payment)
	if payment.Order != nil {
		result.OrderID = payment.Order.ID
		result.Order = &posapi.OrderSummary{ID: payment.Order.ID}
	}

	return result, nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return posapi.DefaultCurrency
	}
	return currency
}

func toMerchant(m posclient.Merchant) posapi.Merchant {
	merchant := posapi.Merchant{
		ID:       m.ID,
		Name:     m.Name,
		Currency: currencyOrDefault(m.Currency),
		Timezone: m.Timezone,
	}
	if m.Address != nil {
		merchant.Address = &posapi.Address{
			Address1: m.Address.Address1,
			Address2: m.Address.Address2,
			City:     m.Address.City,
			State:    m.Address.State,
			Zip:      m.Address.Zip,
			Country:  m.Address.Country,
		}
	}
	return merchant
}

func toOrder(o posclient.Order) posapi.Order {
	lineItems := []posapi.LineItem{}
	if o.LineItems != nil {
		for _, li := range o.LineItems.Elements {
			lineItems = append(lineItems, toLineItem(li))
		}
	}

	return posapi.Order{
		ID:           o.ID,
		Total:        o.Total,
		Currency:     currencyOrDefault(o.Currency),
		State:        o.State,
		LineItems:    lineItems,
		CreatedTime:  o.CreatedTime,
		ModifiedTime: o.ModifiedTime,
	}
}

func toLineItem(li posclient.LineItem) posapi.LineItem {
	return posapi.LineItem{
		ID:       li.ID,
		Name:     li.Name,
		Price:    li.Price,
		UnitQty:  li.UnitQty,
		UnitName: li.UnitName,
	}
}

func toPayment(p posclient.Payment) posapi.Payment {
	payment := posapi.Payment{
		ID:          p.ID,
		Amount:      p.Amount,
		TipAmount:   p.TipAmount,
		TaxAmount:   p.TaxAmount,
		Result:      p.Result,
		CreatedTime: p.CreatedTime,
	}
	if p.CardTransaction != nil {
		payment.CardType = p.CardTransaction.CardType
		payment.Last4 = p.CardTransaction.Last4
		payment.AuthCode = p.CardTransaction.AuthCode
	}
	return payment
}
