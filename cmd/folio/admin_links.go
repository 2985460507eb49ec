package main

import (
	"fmt"
	"strconv"

	"github.com/folio/internal/content"
	"github.com/folio/internal/editor"
	"github.com/spf13/cobra"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List and edit links",
}

var linksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List links grouped by active state",
	RunE: func(cmd *cobra.Command, args []string) error {
		links, err := newClient().ListLinks(cmd.Context(), nil)
		if err != nil {
			return err
		}
		board := editor.NewLinkBoard(links)

		tbl := newTable("ID", "STATE", "TITLE", "CATEGORY", "URL")
		for _, group := range [][]content.LinkItem{board.Active, board.Inactive} {
			for _, link := range group {
				tbl.addRow(strconv.FormatInt(link.ID, 10), activeLabel(link), link.Title, link.Category, link.URL)
			}
		}
		if err := tbl.render(cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\ncategories: %s\n", joinOrDash(board.Categories))
		return nil
	},
}

var linkFlags struct {
	title, url, description, category string
	inactive                          bool
}

var linksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a link",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := editor.NewBlankLinkEditor()
		w := e.Working()
		w.Title = linkFlags.title
		w.URL = linkFlags.url
		w.Description = linkFlags.description
		w.Category = linkFlags.category
		w.IsActive = !linkFlags.inactive
		if err := e.Save(cmd.Context(), newClient()); err != nil {
			return err
		}
		return printYAML(cmd.OutOrStdout(), e.Committed())
	},
}

var linksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		client := newClient()
		links, err := client.ListLinks(cmd.Context(), nil)
		if err != nil {
			return err
		}

		for _, link := range links {
			if link.ID != id {
				continue
			}
			e := editor.NewLinkEditor(link)
			w := e.Working()
			flags := cmd.Flags()
			if flags.Changed("title") {
				w.Title = linkFlags.title
			}
			if flags.Changed("url") {
				w.URL = linkFlags.url
			}
			if flags.Changed("description") {
				w.Description = linkFlags.description
			}
			if flags.Changed("category") {
				w.Category = linkFlags.category
			}
			if flags.Changed("inactive") {
				w.IsActive = !linkFlags.inactive
			}
			if !e.Dirty() {
				return nil
			}
			if err := e.Save(cmd.Context(), client); err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), e.Committed())
		}
		return fmt.Errorf("link %d not found", id)
	},
}

var linksToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a link between active and inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		link, err := newClient().ToggleLink(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d is now %s\n", link.ID, activeLabel(link))
		return nil
	},
}

var linksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return newClient().DeleteLink(cmd.Context(), id)
	},
}

func init() {
	for _, c := range []*cobra.Command{linksAddCmd, linksEditCmd} {
		f := c.Flags()
		f.StringVar(&linkFlags.title, "title", "", "link title")
		f.StringVar(&linkFlags.url, "url", "", "link URL")
		f.StringVar(&linkFlags.description, "description", "", "optional description")
		f.StringVar(&linkFlags.category, "category", "", "category, e.g. Personal, Social, Content, Work, Other")
		f.BoolVar(&linkFlags.inactive, "inactive", false, "store the link as inactive")
	}
	linksCmd.AddCommand(linksListCmd, linksAddCmd, linksEditCmd, linksToggleCmd, linksDeleteCmd)
}
