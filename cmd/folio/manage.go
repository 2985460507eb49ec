package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	initUsername string
	initPassword string
)

var initUserCmd = &cobra.Command{
	Use:   "init-user",
	Short: "Create an admin account if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if initUsername == "" || initPassword == "" {
			return errors.New("--username and --password are required")
		}
		if err := db.Init(cfg.DatabasePath); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		created, err := db.EnsureUser(db.DB, initUsername, initPassword)
		if err != nil {
			return err
		}
		if created {
			logger.Info("admin user created", zap.String("username", initUsername))
			fmt.Fprintf(cmd.OutOrStdout(), "created admin user %q\n", initUsername)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "admin user %q already exists\n", initUsername)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <bundle.yaml>",
	Short: "Replace all four content documents from a YAML bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		bundle, err := content.DecodeBundle(f)
		if err != nil {
			return err
		}
		store, err := content.NewStore(cfg.DataDir)
		if err != nil {
			return err
		}
		if err := store.Import(bundle); err != nil {
			return err
		}
		logger.Info("content imported",
			zap.String("file", args[0]),
			zap.Int("projects", len(bundle.Projects)),
			zap.Int("links", len(bundle.Links)),
		)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [bundle.yaml]",
	Short: "Write all four content documents as one YAML bundle",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := content.NewStore(cfg.DataDir)
		if err != nil {
			return err
		}
		bundle, err := store.Export()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return content.EncodeBundle(cmd.OutOrStdout(), bundle)
		}
		return writeBundleFile(args[0], bundle)
	},
}

// writeBundleFile 写入 path，关闭失败同样视为导出失败
func writeBundleFile(path string, bundle content.Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := content.EncodeBundle(f, bundle); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func init() {
	initUserCmd.Flags().StringVar(&initUsername, "username", "", "admin username")
	initUserCmd.Flags().StringVar(&initPassword, "password", "", "admin password")
}
