package main

import (
	"fmt"

	"github.com/folio/internal/content"
	"github.com/folio/internal/editor"
	"github.com/spf13/cobra"
)

var techStackCmd = &cobra.Command{
	Use:   "tech-stack",
	Short: "Show or edit tech stack categories",
}

var techStackShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the tech stack with indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := newClient().GetTechStack(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, category := range categories {
			fmt.Fprintf(out, "[%d] %s\n", i, category.Category)
			for j, tech := range category.Technologies {
				fmt.Fprintf(out, "    [%d] %s %s\n", j, tech.Icon, tech.Name)
			}
		}
		return nil
	},
}

func techStackCommand(use, short string, nargs int, apply func(e *editor.TechStackEditor, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.RangeArgs(nargs, nargs+1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()
			categories, err := client.GetTechStack(cmd.Context())
			if err != nil {
				return err
			}
			e := editor.NewTechStackEditor(categories)
			if err := apply(e, args); err != nil {
				return err
			}
			if !e.Dirty() {
				return nil
			}
			return e.Save(cmd.Context(), client)
		},
	}
}

func init() {
	techStackCmd.AddCommand(
		techStackShowCmd,
		techStackCommand("add-category <name>", "Append a category", 1, func(e *editor.TechStackEditor, args []string) error {
			e.AddCategory(args[0])
			return nil
		}),
		techStackCommand("rename-category <index> <name>", "Rename a category", 2, func(e *editor.TechStackEditor, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return e.RenameCategory(index, args[1])
		}),
		techStackCommand("remove-category <index>", "Remove a category", 1, func(e *editor.TechStackEditor, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return e.RemoveCategory(index)
		}),
		techStackCommand("add-tech <category-index> <name> [icon]", "Append a technology", 2, func(e *editor.TechStackEditor, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			icon := ""
			if len(args) > 2 {
				icon = args[2]
			}
			_, err = e.AddTechnology(index, args[1], icon)
			return err
		}),
		techStackCommand("update-tech <category-index> <tech-index> <name> [icon]", "Replace a technology", 3, func(e *editor.TechStackEditor, args []string) error {
			ci, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			ti, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			tech := content.Technology{Name: args[2]}
			if len(args) > 3 {
				tech.Icon = args[3]
			}
			return e.UpdateTechnology(ci, ti, tech)
		}),
		techStackCommand("remove-tech <category-index> <tech-index>", "Remove a technology", 2, func(e *editor.TechStackEditor, args []string) error {
			ci, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			ti, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return e.RemoveTechnology(ci, ti)
		}),
	)
}
