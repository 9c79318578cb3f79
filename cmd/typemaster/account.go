package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/typemaster/internal/auth"
)

var (
	signupEmail     string
	signupUsername  string
	signupFirstName string
	signupLastName  string

	loginToken string
	tokenEmail string

	profileFirstName string
	profileLastName  string

	deleteConfirmed bool
)

func newSignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE:  runSignupCmd,
	}
	cmd.Flags().StringVar(&signupEmail, "email", "", "email address")
	cmd.Flags().StringVar(&signupUsername, "username", "", "username")
	cmd.Flags().StringVar(&signupFirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&signupLastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func runSignupCmd(cmd *cobra.Command, _ []string) error {
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	u, err := a.auth.Signup(context.Background(), auth.SignupData{
		Email:     signupEmail,
		Password:  password,
		Username:  signupUsername,
		FirstName: signupFirstName,
		LastName:  signupLastName,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, err = fmt.Fprintf(out, "Welcome, %s! You are signed in.\nYour sign-in token: %s\nKeep it to sign in later with: typemaster login --token %s\n",
		u.DisplayName(), u.Token, u.Token)
	return err
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with your token",
		Args:  cobra.NoArgs,
		RunE:  runLoginCmd,
	}
	cmd.Flags().StringVar(&loginToken, "token", "", "sign-in token")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func runLoginCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	u, err := a.auth.Login(context.Background(), loginToken)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s).\n", u.Username, u.Email)
	return err
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.auth.Logout(context.Background()); err != nil {
				return fmt.Errorf("failed to sign out: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return err
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			u, err := a.currentUser(context.Background())
			if err != nil {
				return err
			}
			name := strings.TrimSpace(u.FirstName + " " + u.LastName)
			if name == "" {
				name = "-"
			}
			lines := []string{
				fmt.Sprintf("Username: %s", u.Username),
				fmt.Sprintf("Name: %s", name),
				fmt.Sprintf("Email: %s", u.Email),
				fmt.Sprintf("Token: %s", u.Token),
				fmt.Sprintf("Member since: %s", u.CreatedAt.Local().Format("2006-01-02")),
				fmt.Sprintf("Current level: %d", u.Progress.CurrentLevel),
			}
			return writeLines(cmd.OutOrStdout(), lines)
		},
	}
}

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Recover or reset your sign-in token",
	}
	recoverCmd := &cobra.Command{
		Use:   "recover",
		Short: "Show the token for an email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTokenCmd(cmd, false)
		},
	}
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Issue a new token; the old one stops working",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTokenCmd(cmd, true)
		},
	}
	for _, c := range []*cobra.Command{recoverCmd, resetCmd} {
		c.Flags().StringVar(&tokenEmail, "email", "", "account email")
		_ = c.MarkFlagRequired("email")
		cmd.AddCommand(c)
	}
	return cmd
}

func runTokenCmd(cmd *cobra.Command, reset bool) error {
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	var token string
	if reset {
		token, err = a.auth.ResetToken(ctx, tokenEmail, password)
	} else {
		token, err = a.auth.RecoverToken(ctx, tokenEmail, password)
	}
	if err != nil {
		return err
	}
	label := "Your token"
	if reset {
		label = "Your new token"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", label, token)
	return err
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update your first and last name",
		Args:  cobra.NoArgs,
		RunE:  runProfileCmd,
	}
	cmd.Flags().StringVar(&profileFirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&profileLastName, "last-name", "", "last name")
	return cmd
}

func runProfileCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	first, last := u.FirstName, u.LastName
	if cmd.Flags().Changed("first-name") {
		first = strings.TrimSpace(profileFirstName)
	}
	if cmd.Flags().Changed("last-name") {
		last = strings.TrimSpace(profileLastName)
	}
	if err := a.store.UpdateProfile(ctx, u.ID, first, last); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile saved: %s\n", strings.TrimSpace(first+" "+last))
	return err
}

func newDeleteAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the signed-in account and all of its history",
		Args:  cobra.NoArgs,
		RunE:  runDeleteAccountCmd,
	}
	cmd.Flags().BoolVar(&deleteConfirmed, "yes", false, "confirm deletion")
	return cmd
}

func runDeleteAccountCmd(cmd *cobra.Command, _ []string) error {
	if !deleteConfirmed {
		return fmt.Errorf("this cannot be undone; rerun with --yes to delete the account")
	}
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	if err := a.store.DeleteUser(ctx, u.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	a.logger.Info("account deleted", zap.String("user_id", u.ID))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Account %s deleted.\n", u.Username)
	return err
}

// readPassword prompts on stderr and reads without echo when stdin is a
// terminal. Piped input is read one line at a time.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(stdinReader)
	}
	logErrf("%s", prompt)
	raw, err := term.ReadPassword(fd)
	logErrln()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

var stdinReader = bufio.NewReader(os.Stdin)

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
