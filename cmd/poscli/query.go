package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func merchantCmd(loader *configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merchant",
		Short: "Show the merchant",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String("id", "", "Merchant id (default: the connected merchant)")
	cmd.RunE = withApp(loader, func(c context.Context, a *app, args []string) error {
		merchantID, _ := cmd.Flags().GetString("id")
		if merchantID == "" {
			cred, err := a.connector.Status(c)
			if err != nil {
				return err
			}
			merchantID = cred.MerchantID
		}

		merchant, err := a.api.Merchant(c, merchantID)
		if err != nil {
			return err
		}

		return printJSON(a, merchant)
	})
	return cmd
}

func paymentCmd(loader *configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Inspect payments",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [payment-id]",
		Short: "Show a single payment",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			payment, err := a.api.GetPayment(c, args[0])
			if err != nil {
				return err
			}

			return printJSON(a, payment)
		}),
	})

	return cmd
}

func transactionsCmd(loader *configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "List the transactions recorded by the relay",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			transactions, err := a.workflow.History(c)
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Fprintln(a.out, "No transactions yet")
				return nil
			}
			for _, tx := range transactions {
				fmt.Fprintf(a.out, "%s  %-24s %-10s %8.2f  order %s\n", tx.Timestamp, tx.ID, tx.Status, tx.Amount, tx.OrderID)
			}
			return nil
		}),
	}
}

func healthCmd(loader *configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the relay server",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			health, err := a.api.Health(c)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s: %s\n", health.Status, health.Message)
			return nil
		}),
	}
}
