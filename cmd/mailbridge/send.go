package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailbridge/app/bridge"
	"github.com/dmitrymomot/mailbridge/core/email"
)

func newSendCmd() *cobra.Command {
	var (
		to, title, body string
		outbox          string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Validate and deliver one email, the same way POST /send-email does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			opts := []bridge.AppOption{bridge.WithConfig(cfg), bridge.WithLogger(log)}
			if outbox != "" {
				opts = append(opts, bridge.WithSender(email.NewDevSender(outbox)))
			}

			app, err := bridge.NewApp(opts...)
			if err != nil {
				return err
			}

			req := bridge.SendRequest{To: &to, Title: &title, Body: &body}
			if err := app.Handlers().Send(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient mailbox")
	cmd.Flags().StringVar(&title, "title", "", "subject line")
	cmd.Flags().StringVar(&body, "body", "", "plain-text body")
	cmd.Flags().StringVar(&outbox, "outbox", "", "write the message to this directory instead of the relay")
	for _, name := range []string{"to", "title", "body"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
