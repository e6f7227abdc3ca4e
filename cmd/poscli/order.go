package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MarcGrol/cloverconnect/client/checkout"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

func orderCmd(loader *configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Build, create and pay an order",
	}

	addCmd := &cobra.Command{
		Use:   "add [name] [price]",
		Short: "Add a line item to the draft order",
		Args:  cobra.ExactArgs(2),
	}
	addCmd.Flags().IntP("quantity", "q", 1, "Quantity")
	addCmd.RunE = withApp(loader, func(c context.Context, a *app, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid price '%s'", args[1])
		}
		quantity, _ := addCmd.Flags().GetInt("quantity")

		draft, err := a.workflow.AddItem(c, posapi.LineItemRequest{
			Name:     args[0],
			Price:    price,
			Quantity: quantity,
		})
		if err != nil {
			return err
		}

		printDraft(a, draft)
		return nil
	})
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove [item-id]",
		Short: "Remove a line item from the draft order",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			draft, err := a.workflow.RemoveItem(c, args[0])
			if err != nil {
				return err
			}

			printDraft(a, draft)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Discard the draft and start a new order",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			return a.workflow.Clear(c)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the draft, or the created order",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			draft, err := a.workflow.Current(c)
			if err != nil {
				return err
			}
			if draft.OrderID == "" {
				printDraft(a, draft)
				return nil
			}

			order, err := a.workflow.Order(c)
			if err != nil {
				return err
			}

			printOrder(a, order)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the order at Clover from the draft",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			order, err := a.workflow.CreateOrder(c)
			if err != nil {
				return err
			}

			printOrder(a, order)
			return nil
		}),
	})

	payCmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay the created order",
		Args:  cobra.NoArgs,
	}
	payCmd.Flags().String("card-token", checkout.DefaultCardToken, "Card token")
	payCmd.RunE = withApp(loader, func(c context.Context, a *app, args []string) error {
		cardToken, _ := payCmd.Flags().GetString("card-token")

		payment, err := a.workflow.Pay(c, cardToken)
		if err != nil {
			return err
		}

		printPayment(a, payment)
		return nil
	})
	cmd.AddCommand(payCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List the payments of the created order",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			payments, err := a.workflow.PaymentStatus(c)
			if err != nil {
				return err
			}

			if len(payments) == 0 {
				fmt.Fprintln(a.out, "No payments found")
				return nil
			}
			for _, payment := range payments {
				printPayment(a, payment)
			}
			return nil
		}),
	})

	return cmd
}
