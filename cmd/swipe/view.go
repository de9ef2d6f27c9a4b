package main

import (
	"github.com/frizinak/inbetween-go-swipe/view"
	"github.com/spf13/cobra"
)

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open a window that shows recognised swipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := a.conf.Tracker()
			if err != nil {
				return err
			}

			v, err := view.New(a.l, tc, a.conf.Fingers, a.conf.SuppressDefault)
			if err != nil {
				return err
			}
			v.Start()
			return nil
		},
	}
}
