package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/frizinak/inbetween-go-swipe/hook"
	"github.com/frizinak/inbetween-go-swipe/swipe"
	"github.com/spf13/cobra"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print swipes made by dragging the left mouse button anywhere on the desktop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := a.conf.Tracker()
			if err != nil {
				return err
			}

			src := hook.New(a.l)
			tr := swipe.New(a.l, src.Host(), tc)
			out := cmd.OutOrStdout()
			_, err = tr.Attach(hook.ID, 1, swipe.DetailedHandler(func(s swipe.Swipe) {
				fmt.Fprintln(out, s)
			}), false)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			if err := src.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
