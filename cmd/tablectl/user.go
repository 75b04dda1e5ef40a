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

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserAddCmd())
	return cmd
}

func newUserAddCmd() *cobra.Command {
	var email, pass, firstName, lastName string

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			stores, cleanup, err := bootstrap.BuildStores(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecase.NewAuthUseCase(stores.Users, bootstrap.NewJWTService(cfg), cfg.Store.Timeout)
			err = uc.SignUp(ctx, usecase.SignUpParams{
				FirstName: firstName,
				LastName:  lastName,
				Email:     email,
				Password:  pass,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "created user %q\n", email)
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "email address")
	c.Flags().StringVar(&pass, "password", "", "password")
	c.Flags().StringVar(&firstName, "first-name", "", "first name")
	c.Flags().StringVar(&lastName, "last-name", "", "last name")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	return c
}
