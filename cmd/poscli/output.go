package main

import (
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/cloverconnect/client/checkout"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

func printDraft(a *app, draft checkout.Draft) {
	if len(draft.Items) == 0 {
		fmt.Fprintln(a.out, "No items added yet")
		return
	}
	for _, item := range draft.Items {
		fmt.Fprintf(a.out, "%s  %-20s %6.2f x %d = %7.2f\n", item.ID, item.Name, item.Price, item.Quantity,
			posapi.ToMajorUnits(posapi.ToMinorUnits(item.Price)*int64(item.Quantity)))
	}
	fmt.Fprintf(a.out, "Total: %.2f\n", posapi.ToMajorUnits(draft.Total()))
}

func printOrder(a *app, order posapi.Order) {
	fmt.Fprintf(a.out, "Order %s (%s)\n", order.ID, order.State)
	for _, item := range order.LineItems {
		fmt.Fprintf(a.out, "  %s  %-20s %7.2f\n", item.ID, item.Name, posapi.ToMajorUnits(item.Price))
	}
	fmt.Fprintf(a.out, "Total: %.2f %s\n", posapi.ToMajorUnits(order.Total), order.Currency)
}

func printPayment(a *app, payment posapi.Payment) {
	kind := "payment"
	if payment.IsDemo() {
		kind = "simulated payment"
	}
	fmt.Fprintf(a.out, "%s %s: %s %.2f %s\n", kind, payment.ID, payment.Status, posapi.ToMajorUnits(payment.Amount), payment.Currency)
	if payment.Message != "" {
		fmt.Fprintf(a.out, "  %s\n", payment.Message)
	}
}

func printJSON(a *app, value any) error {
	data, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, string(data))
	return nil
}
