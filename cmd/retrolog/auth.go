package main

import (
	"fmt"

	"retrolog/internal/models"
	"retrolog/internal/validation"

	"github.com/spf13/cobra"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
	loginEmail       string
	loginPassword    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.ValidateName(registerName); err != nil {
			return err
		}
		if err := validation.ValidateEmail(registerEmail); err != nil {
			return err
		}
		if err := validation.ValidatePassword(registerPassword); err != nil {
			return err
		}

		resp := api.Register(cmd.Context(), registerName, registerEmail, registerPassword)
		if resp == nil {
			return fmt.Errorf("registration failed")
		}

		if err := store.Login(identityFromAuth(resp)); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Welcome aboard, %s!\n", resp.User.Name)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.ValidateEmail(loginEmail); err != nil {
			return err
		}
		if loginPassword == "" {
			return fmt.Errorf("password is required")
		}

		resp := api.Login(cmd.Context(), loginEmail, loginPassword)
		if resp == nil {
			return fmt.Errorf("login failed")
		}

		if err := store.Login(identityFromAuth(resp)); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Welcome back, %s!\n", resp.User.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Logout(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := store.Current()
		if !state.IsAuthenticated {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s <%s> (id %s)\n", state.User.Name, state.User.Email, state.User.ID)
		return nil
	},
}

func identityFromAuth(resp *models.AuthResponse) models.Identity {
	return models.Identity{
		ID:    resp.User.ID,
		Name:  resp.User.Name,
		Email: resp.User.Email,
		Token: resp.AccessToken,
	}
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "password")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password")
}
