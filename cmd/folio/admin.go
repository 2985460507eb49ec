package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/folio/internal/content"
	"github.com/folio/internal/editor"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	adminServer string
	adminToken  string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Edit content through the API of a running server",
	Long: `Each admin command loads the current document from the server, applies
the requested change to a working copy, validates it and saves the whole
document back. Write commands need a token from "folio admin login",
passed with --token or FOLIO_TOKEN.`,
}

func newClient() *editor.Client {
	token := adminToken
	if token == "" {
		token = os.Getenv("FOLIO_TOKEN")
	}
	return editor.NewClient(adminServer, token, nil)
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid index %q", raw)
	}
	return index, nil
}

var loginUsername, loginPassword string

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange admin credentials for a bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := newClient().Login(cmd.Context(), loginUsername, loginPassword)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the current token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newClient().Logout(cmd.Context())
	},
}

var currentPassword, newPassword string

var adminPasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the admin password",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newClient().ChangePassword(cmd.Context(), currentPassword, newPassword)
	},
}

var adminUploadCmd = &cobra.Command{
	Use:   "upload <image>",
	Short: "Upload an image and print its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		url, err := newClient().Upload(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminServer, "server", "http://localhost:8080", "base URL of the folio server")
	adminCmd.PersistentFlags().StringVar(&adminToken, "token", "", "bearer token (defaults to $FOLIO_TOKEN)")

	adminLoginCmd.Flags().StringVar(&loginUsername, "username", "", "admin username")
	adminLoginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password")
	adminPasswordCmd.Flags().StringVar(&currentPassword, "current", "", "current password")
	adminPasswordCmd.Flags().StringVar(&newPassword, "new", "", "new password (at least 6 characters)")

	adminCmd.AddCommand(adminLoginCmd, adminLogoutCmd, adminPasswordCmd, adminUploadCmd,
		personalInfoCmd, projectsCmd, techStackCmd, linksCmd)
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func activeLabel(link content.LinkItem) string {
	if link.IsActive {
		return "active"
	}
	return "inactive"
}
