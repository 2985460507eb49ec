package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/folio/internal/content"
	"github.com/folio/internal/editor"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List and edit projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := newClient().ListProjects(cmd.Context())
		if err != nil {
			return err
		}
		tbl := newTable("ID", "TITLE", "STATUS", "TAGS")
		for _, p := range projects {
			tbl.addRow(strconv.FormatInt(p.ID, 10), p.Title, p.Status, joinOrDash(p.Tags))
		}
		return tbl.render(cmd.OutOrStdout())
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		project, err := newClient().GetProject(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printYAML(cmd.OutOrStdout(), project)
	},
}

var projectFlags struct {
	title, description, short, image, link, liveDemo string
	category, duration, status, overview             string
	tags, removeTags, features, challenges, learning []string
	techs, gallery                                   []string
}

var projectsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := editor.NewBlankProjectEditor()
		if err := applyProjectFlags(cmd, e); err != nil {
			return err
		}
		return saveProject(cmd, e)
	},
}

var projectsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a project; list flags append to existing entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		project, err := newClient().GetProject(cmd.Context(), id)
		if err != nil {
			return err
		}
		e := editor.NewProjectEditor(project)
		if err := applyProjectFlags(cmd, e); err != nil {
			return err
		}
		if !e.Dirty() {
			return nil
		}
		return saveProject(cmd, e)
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return newClient().DeleteProject(cmd.Context(), id)
	},
}

func applyProjectFlags(cmd *cobra.Command, e *editor.ProjectEditor) error {
	w := e.Working()
	flags := cmd.Flags()
	set := func(flag string, dst *string, value string) {
		if flags.Changed(flag) {
			*dst = value
		}
	}
	set("title", &w.Title, projectFlags.title)
	set("description", &w.Description, projectFlags.description)
	set("short", &w.ShortDescription, projectFlags.short)
	set("image", &w.Image, projectFlags.image)
	set("link", &w.Link, projectFlags.link)
	set("live-demo", &w.LiveDemo, projectFlags.liveDemo)
	set("category", &w.Category, projectFlags.category)
	set("duration", &w.Duration, projectFlags.duration)
	set("status", &w.Status, projectFlags.status)
	set("overview", &w.Overview, projectFlags.overview)

	for _, tag := range projectFlags.tags {
		e.AddTag(tag)
	}
	for _, tag := range projectFlags.removeTags {
		e.RemoveTag(tag)
	}
	for _, value := range projectFlags.features {
		e.AddItem(editor.Features, value)
	}
	for _, value := range projectFlags.challenges {
		e.AddItem(editor.Challenges, value)
	}
	for _, value := range projectFlags.learning {
		e.AddItem(editor.Learnings, value)
	}
	for _, pair := range projectFlags.techs {
		category, name, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --tech %q, want category=name", pair)
		}
		if _, err := e.AddTechnology(strings.ToLower(strings.TrimSpace(category)), name); err != nil {
			return fmt.Errorf("%s: %w", pair, err)
		}
	}
	for _, url := range projectFlags.gallery {
		e.AddImage()
		if err := e.UpdateImage(len(w.Images)-1, url); err != nil {
			return err
		}
	}
	return nil
}

func saveProject(cmd *cobra.Command, e *editor.ProjectEditor) error {
	if err := e.Save(cmd.Context(), newClient()); err != nil {
		return err
	}
	return printYAML(cmd.OutOrStdout(), e.Committed())
}

func init() {
	for _, c := range []*cobra.Command{projectsAddCmd, projectsEditCmd} {
		f := c.Flags()
		f.StringVar(&projectFlags.title, "title", "", "project title")
		f.StringVar(&projectFlags.description, "description", "", "project description")
		f.StringVar(&projectFlags.short, "short", "", "short description")
		f.StringVar(&projectFlags.image, "image", "", "cover image URL")
		f.StringVar(&projectFlags.link, "link", "", "repository URL")
		f.StringVar(&projectFlags.liveDemo, "live-demo", "", "live demo URL")
		f.StringVar(&projectFlags.category, "category", "", "category (suggested: "+strings.Join(content.ProjectCategories, ", ")+")")
		f.StringVar(&projectFlags.duration, "duration", "", "duration text")
		f.StringVar(&projectFlags.status, "status", "", "Planning, In Progress, Completed or On Hold")
		f.StringVar(&projectFlags.overview, "overview", "", "markdown overview")
		f.StringArrayVar(&projectFlags.tags, "tag", nil, "add a tag (repeatable)")
		f.StringArrayVar(&projectFlags.removeTags, "remove-tag", nil, "remove a tag (repeatable)")
		f.StringArrayVar(&projectFlags.features, "feature", nil, "add a feature (repeatable)")
		f.StringArrayVar(&projectFlags.challenges, "challenge", nil, "add a challenge (repeatable)")
		f.StringArrayVar(&projectFlags.learning, "learning", nil, "add a learning (repeatable)")
		f.StringArrayVar(&projectFlags.techs, "tech", nil, "add a technology as category=name (repeatable)")
		f.StringArrayVar(&projectFlags.gallery, "gallery", nil, "add a gallery image URL (repeatable)")
	}

	projectsCmd.AddCommand(projectsListCmd, projectsShowCmd, projectsAddCmd, projectsEditCmd, projectsDeleteCmd)
}
