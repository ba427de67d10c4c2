package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/gebeyahub/gebeya-go/api"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print("email: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}
			fmt.Print("password: ")
			password, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return err
			}

			auth, err := client.API().Login(cmd.Context(), api.LoginRequest{
				Email:    email,
				Password: string(password),
			})
			if err != nil {
				return err
			}
			name := email
			if auth.User != nil && auth.User.FullName != "" {
				name = auth.User.FullName
			}
			fmt.Printf("logged in as %s\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.API().Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}
