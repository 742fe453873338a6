package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jekabolt/grbpwr-insights/internal/seed"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var (
		tenantId int
		clients  int
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill a tenant with fake clients and orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			cfg, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			sc := cfg.Seed
			if cmd.Flags().Changed("tenant") {
				sc.TenantId = tenantId
			}
			if cmd.Flags().Changed("clients") {
				sc.Clients = clients
			}

			res, err := seed.New(db, sc, seed.WithProgress(os.Stderr)).Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nseeded %d clients with %d orders, total %s\n",
				res.Clients, res.Orders, res.Total.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().IntVarP(&tenantId, "tenant", "t", 0, "tenant id to seed")
	cmd.Flags().IntVarP(&clients, "clients", "n", 0, "number of clients to create")
	return cmd
}
