package main

import (
	"errors"
	"fmt"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write sample content and a default admin account",
	Long: `seed fills an empty DATA_DIR with a sample profile, two projects, a tech
stack and a few links, and creates the admin user admin/admin123 when no
ADMIN_USER_NAME is configured. Existing content is kept unless --force is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := content.NewStore(cfg.DataDir)
		if err != nil {
			return err
		}

		current, err := store.Export()
		if err != nil {
			return err
		}
		if !seedForce && (current.PersonalInfo.Name != "" || len(current.Projects) > 0) {
			return errors.New("content already exists, use --force to overwrite")
		}
		if err := store.Import(sampleBundle()); err != nil {
			return err
		}

		if err := db.Init(cfg.DatabasePath); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		username, password := cfg.AdminUserName, cfg.AdminPassword
		if username == "" || password == "" {
			username, password = "admin", "admin123"
		}
		created, err := db.EnsureUser(db.DB, username, password)
		if err != nil {
			return err
		}

		logger.Info("sample content written", zap.String("data_dir", store.Dir()), zap.Bool("user_created", created))
		fmt.Fprintf(cmd.OutOrStdout(), "sample content written to %s\n", store.Dir())
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "admin user: %s (password: %s)\n", username, password)
		}
		return nil
	},
}

func sampleBundle() content.Bundle {
	first := content.NewProject()
	first.ID = 1
	first.Title = "Folio"
	first.Description = "A portfolio site backed by four JSON documents."
	first.ShortDescription = "Portfolio site and content API"
	first.Images = []string{}
	first.Link = "https://github.com/example/folio"
	first.Tags = []string{"Go", "Gin", "SQLite", "Markdown"}
	first.Category = "Full Stack"
	first.Duration = "3 weeks"
	first.Status = content.StatusCompleted
	first.Technologies.Backend = []string{"Go", "Gin"}
	first.Technologies.Authentication = []string{"bcrypt", "Bearer tokens"}
	first.Technologies.Deployment = []string{"Docker"}
	first.Features = []string{"Content API", "Admin CLI", "Server rendered pages"}
	first.Challenges = []string{"Keeping writes atomic without a database"}
	first.Learnings = []string{"Temp file plus rename is enough for single writer updates"}
	first.Overview = "## Overview\n\nEach content type lives in **one JSON file** and is replaced as a whole on every save."

	second := content.NewProject()
	second.ID = 2
	second.Title = "Habit Heatmap"
	second.Description = "A small tracker that renders a yearly activity heatmap."
	second.Images = []string{}
	second.Tags = []string{"Go", "HTMX"}
	second.Category = "Frontend"
	second.Status = content.StatusInProgress
	second.Technologies.Frontend = []string{"HTMX", "Tailwind CSS"}

	return content.Bundle{
		PersonalInfo: content.PersonalInfo{
			Name:        "Alex Doe",
			Title:       "Software Engineer",
			Description: "I build web services and the tools around them.",
			Email:       "alex@example.com",
			SocialLinks: content.SocialLinks{
				GitHub:   "https://github.com/example",
				LinkedIn: "https://www.linkedin.com/in/example",
			},
			Navigation: []content.NavItem{
				{Name: "About", Href: "/#about"},
				{Name: "Projects", Href: "/projects"},
				{Name: "Contact", Href: "/#contact"},
			},
			Footer: content.Footer{
				Copyright: "© Alex Doe",
				Links:     []content.NavItem{{Name: "GitHub", Href: "https://github.com/example"}},
			},
		},
		Projects: []content.Project{first, second},
		TechStack: []content.TechCategory{
			{Category: "Languages", Technologies: []content.Technology{{Name: "Go", Icon: "🐹"}, {Name: "TypeScript", Icon: "📘"}}},
			{Category: "Infrastructure", Technologies: []content.Technology{{Name: "Docker", Icon: "🐳"}, {Name: "SQLite", Icon: content.DefaultTechIcon}}},
		},
		Links: []content.LinkItem{
			{ID: 1, Title: "Blog", URL: "https://blog.example.com", Category: "Content", IsActive: true, CreatedAt: "2026-01-01T00:00:00Z"},
			{ID: 2, Title: "Old portfolio", URL: "https://old.example.com", Category: "Personal", IsActive: false, CreatedAt: "2025-06-01T00:00:00Z"},
		},
	}
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite existing content")
}
