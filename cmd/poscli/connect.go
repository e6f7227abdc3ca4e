package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MarcGrol/cloverconnect/client/session"
)

func connectCmd(loader *configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect with a Clover merchant account",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start the authorization flow",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			authURL, err := a.connector.StartFlow(c)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Open this url in your browser and approve the app:\n\n  %s\n\n", authURL)
			fmt.Fprintln(a.out, "Afterwards run the 'poscli connect finish' command shown on the result page.")
			return nil
		}),
	})

	finishCmd := &cobra.Command{
		Use:   "finish",
		Short: "Finish the authorization flow with the values returned by Clover",
		Args:  cobra.NoArgs,
	}
	finishCmd.Flags().String("code", "", "Authorization code")
	finishCmd.Flags().String("state", "", "State returned with the code")
	finishCmd.Flags().String("merchant-id", "", "Merchant id returned with the code")
	_ = finishCmd.MarkFlagRequired("code")
	_ = finishCmd.MarkFlagRequired("state")
	finishCmd.RunE = withApp(loader, func(c context.Context, a *app, args []string) error {
		code, _ := finishCmd.Flags().GetString("code")
		state, _ := finishCmd.Flags().GetString("state")
		merchantID, _ := finishCmd.Flags().GetString("merchant-id")

		cred, err := a.connector.CompleteFlow(c, code, state, merchantID)
		if err != nil {
			return err
		}

		printCredential(a, cred)
		return nil
	})
	cmd.AddCommand(finishCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			cred, err := a.connector.Status(c)
			if err != nil {
				return err
			}

			printCredential(a, cred)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Refresh the access token now",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			err := a.scheduler.AttemptRefresh(c)
			if err != nil {
				return err
			}

			cred, err := a.connector.Status(c)
			if err != nil {
				return err
			}

			printCredential(a, cred)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Keep the session alive by refreshing the access token before it expires",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			c, stop := signal.NotifyContext(c, os.Interrupt, syscall.SIGTERM)
			defer stop()

			cred, err := a.connector.CheckExistingAuth(c)
			if err != nil {
				return err
			}
			if !cred.Authenticated() {
				return fmt.Errorf("not connected, run 'poscli connect start' first")
			}

			fmt.Fprintf(a.out, "Watching session of merchant %s (refresh %s), press ctrl-c to stop\n", cred.MerchantID, a.scheduler.State())

			<-c.Done()
			return nil
		}),
	})

	return cmd
}

func disconnectCmd(loader *configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: withApp(loader, func(c context.Context, a *app, args []string) error {
			return a.connector.Disconnect(c)
		}),
	}
}

func printCredential(a *app, cred session.Credential) {
	if !cred.Authenticated() {
		fmt.Fprintln(a.out, "Not connected")
		return
	}

	now := time.Now()
	fmt.Fprintf(a.out, "Merchant:       %s (%s)\n", cred.MerchantName, cred.MerchantID)
	fmt.Fprintf(a.out, "Currency:       %s\n", cred.MerchantCurrency)
	fmt.Fprintf(a.out, "Access token:   %s\n", expiryStatus(cred.AccessExpiry, now))
	fmt.Fprintf(a.out, "Refresh token:  %s\n", expiryStatus(cred.RefreshExpiry, now))
}

func expiryStatus(expiry time.Time, now time.Time) string {
	if expiry.IsZero() {
		return "no expiry known"
	}
	if !now.Before(expiry) {
		return fmt.Sprintf("expired at %s", expiry.Format(time.RFC3339))
	}
	return fmt.Sprintf("valid until %s", expiry.Format(time.RFC3339))
}
