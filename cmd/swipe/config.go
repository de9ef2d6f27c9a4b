package main

import (
	"encoding/json"
	"fmt"

	"github.com/frizinak/inbetween-go-swipe/config"
	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "    ")
			return enc.Encode(a.conf)
		},
	}

	c.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.EnsureConfig(a.file); err != nil {
				return err
			}
			a.l.Info("config ready")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.file)
			return err
		},
	})

	return c
}
