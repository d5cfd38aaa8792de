package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lightbnb/lightbnb/internal/model"
	"github.com/lightbnb/lightbnb/internal/password"
	"github.com/lightbnb/lightbnb/internal/store"
)

func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up and register users",
	}
	cmd.AddCommand(userGetCmd(), userAddCmd())
	return cmd
}

func userGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a user by email or id",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			id, _ := cmd.Flags().GetInt64("id")

			return withStore(cmd.Context(), func(s *store.Store) error {
				var (
					user *model.User
					err  error
				)
				if cmd.Flags().Changed("email") {
					user, err = s.GetUserWithEmail(cmd.Context(), email)
				} else {
					user, err = s.GetUserWithID(cmd.Context(), id)
				}
				if errors.Is(err, store.ErrNotFound) {
					return errors.New("user not found")
				}
				if err != nil {
					return fmt.Errorf("failed to get user: %w", err)
				}

				printUsers(cmd.OutOrStdout(), *user)
				return nil
			})
		},
	}

	cmd.Flags().String("email", "", "Email address of the user")
	cmd.Flags().Int64("id", 0, "Id of the user")
	cmd.MarkFlagsOneRequired("email", "id")
	cmd.MarkFlagsMutuallyExclusive("email", "id")

	return cmd
}

func userAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			plain, _ := cmd.Flags().GetString("password")

			hashed, err := password.Hash(plain)
			if err != nil {
				return err
			}

			return withStore(cmd.Context(), func(s *store.Store) error {
				user, err := s.AddUser(cmd.Context(), model.NewUser{Name: name, Email: email, Password: hashed})
				if errors.Is(err, store.ErrDuplicateEmail) {
					return fmt.Errorf("a user with email %s already exists", email)
				}
				if err != nil {
					return fmt.Errorf("failed to add user: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Added user %d: %s <%s>\n", user.ID, user.Name, user.Email)
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password, stored as a bcrypt hash")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func printUsers(w io.Writer, users ...model.User) {
	fmt.Fprintf(w, "%-8s  %-24s  %-32s\n", "ID", "Name", "Email")
	for _, u := range users {
		fmt.Fprintf(w, "%-8d  %-24s  %-32s\n", u.ID, u.Name, u.Email)
	}
}
