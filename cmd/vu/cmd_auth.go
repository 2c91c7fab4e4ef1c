package main

import (
	"fmt"
	"io"

	"vulearn/internal/api/v1/dto"

	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var payload dto.LoginDTO
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			resp, err := a.auth.Login(ctx, payload)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			return a.print(cmd.OutOrStdout(), resp.User, func(w io.Writer) {
				fmt.Fprintf(w, "Logged in as %s (%s)\n", resp.User.Email, resp.User.Role)
			})
		},
	}
	cmd.Flags().StringVar(&payload.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&payload.Password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			if err := a.auth.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			user, err := a.auth.CurrentUser(ctx)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), user, func(w io.Writer) {
				fmt.Fprintf(w, "%s <%s> %s\n", user.Name, user.Email, user.Role)
			})
		},
	}
}
