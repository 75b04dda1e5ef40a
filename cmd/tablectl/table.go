package main

import (
	"context"
	"fmt"
	"os"

	"tablebook/cmd/bootstrap"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase"

	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Manage the table catalog",
	}
	cmd.AddCommand(newTableAddCmd())
	cmd.AddCommand(newTableListCmd())
	return cmd
}

func tablesUseCase(ctx context.Context) (usecase.TablesUseCase, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	stores, cleanup, err := bootstrap.BuildStores(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return usecase.NewTablesUseCase(stores.Tables, cfg.Store.Timeout), cleanup, nil
}

func newTableAddCmd() *cobra.Command {
	var (
		id       int
		number   int
		places   int
		vip      bool
		minOrder int
	)

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a table to the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			uc, cleanup, err := tablesUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			params := usecase.CreateTableParams{
				ID:     id,
				Number: number,
				Places: places,
				IsVip:  vip,
			}
			if cmd.Flags().Changed("min-order") {
				params.MinOrder = &minOrder
			}

			created, err := uc.Create(ctx, params)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "created table %d (number %d)\n", created, number)
			return nil
		},
	}

	c.Flags().IntVar(&id, "id", 0, "catalog id")
	c.Flags().IntVar(&number, "number", 0, "table number guests book against")
	c.Flags().IntVar(&places, "places", 0, "seat count")
	c.Flags().BoolVar(&vip, "vip", false, "mark the table as VIP")
	c.Flags().IntVar(&minOrder, "min-order", 0, "minimum order for VIP tables")
	_ = c.MarkFlagRequired("id")
	_ = c.MarkFlagRequired("number")
	_ = c.MarkFlagRequired("places")
	return c
}

func newTableListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the table catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			uc, cleanup, err := tablesUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tables, err := uc.List(ctx)
			if err != nil {
				return err
			}

			for _, t := range tables {
				line := fmt.Sprintf("table %d: number=%d places=%d vip=%v", t.ID, t.Number, t.Places, t.IsVip)
				if t.MinOrder != nil {
					line += fmt.Sprintf(" minOrder=%d", *t.MinOrder)
				}
				fmt.Fprintln(os.Stdout, line)
			}
			return nil
		},
	}
}
