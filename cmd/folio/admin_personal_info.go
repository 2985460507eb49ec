package main

import (
	"github.com/folio/internal/content"
	"github.com/folio/internal/editor"
	"github.com/spf13/cobra"
)

var personalInfoCmd = &cobra.Command{
	Use:     "personal-info",
	Aliases: []string{"profile"},
	Short:   "Show or edit the personal info document",
}

var personalInfoShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the personal info document",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := newClient().GetPersonalInfo(cmd.Context())
		if err != nil {
			return err
		}
		return printYAML(cmd.OutOrStdout(), info)
	},
}

var profileFields struct {
	name, title, description, email, profileImage string
	github, linkedin, twitter, copyright          string
}

var personalInfoSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update scalar fields of the personal info document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return editPersonalInfo(cmd, func(e *editor.PersonalInfoEditor) error {
			w := e.Working()
			flags := cmd.Flags()
			set := func(flag string, dst *string, value string) {
				if flags.Changed(flag) {
					*dst = value
				}
			}
			set("name", &w.Name, profileFields.name)
			set("title", &w.Title, profileFields.title)
			set("description", &w.Description, profileFields.description)
			set("email", &w.Email, profileFields.email)
			set("profile-image", &w.ProfileImage, profileFields.profileImage)
			set("github", &w.SocialLinks.GitHub, profileFields.github)
			set("linkedin", &w.SocialLinks.LinkedIn, profileFields.linkedin)
			set("twitter", &w.SocialLinks.Twitter, profileFields.twitter)
			set("copyright", &w.Footer.Copyright, profileFields.copyright)
			return nil
		})
	},
}

func navCommands(use, short string, add func(*editor.PersonalInfoEditor, string, string), update func(*editor.PersonalInfoEditor, int, content.NavItem) error, remove func(*editor.PersonalInfoEditor, int) error) *cobra.Command {
	group := &cobra.Command{Use: use, Short: short}
	group.AddCommand(
		&cobra.Command{
			Use:   "add <name> <href>",
			Short: "Append an item",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return editPersonalInfo(cmd, func(e *editor.PersonalInfoEditor) error {
					add(e, args[0], args[1])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "update <index> <name> <href>",
			Short: "Replace the item at index",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := parseIndex(args[0])
				if err != nil {
					return err
				}
				return editPersonalInfo(cmd, func(e *editor.PersonalInfoEditor) error {
					return update(e, index, content.NavItem{Name: args[1], Href: args[2]})
				})
			},
		},
		&cobra.Command{
			Use:   "remove <index>",
			Short: "Remove the item at index",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := parseIndex(args[0])
				if err != nil {
					return err
				}
				return editPersonalInfo(cmd, func(e *editor.PersonalInfoEditor) error {
					return remove(e, index)
				})
			},
		},
	)
	return group
}

func editPersonalInfo(cmd *cobra.Command, apply func(*editor.PersonalInfoEditor) error) error {
	client := newClient()
	info, err := client.GetPersonalInfo(cmd.Context())
	if err != nil {
		return err
	}

	e := editor.NewPersonalInfoEditor(info)
	if err := apply(e); err != nil {
		return err
	}
	if !e.Dirty() {
		return nil
	}
	if err := e.Save(cmd.Context(), client); err != nil {
		return err
	}
	return printYAML(cmd.OutOrStdout(), e.Committed())
}

func init() {
	f := personalInfoSetCmd.Flags()
	f.StringVar(&profileFields.name, "name", "", "display name")
	f.StringVar(&profileFields.title, "title", "", "job title")
	f.StringVar(&profileFields.description, "description", "", "short bio")
	f.StringVar(&profileFields.email, "email", "", "contact email")
	f.StringVar(&profileFields.profileImage, "profile-image", "", "profile image URL")
	f.StringVar(&profileFields.github, "github", "", "GitHub URL")
	f.StringVar(&profileFields.linkedin, "linkedin", "", "LinkedIn URL")
	f.StringVar(&profileFields.twitter, "twitter", "", "Twitter URL")
	f.StringVar(&profileFields.copyright, "copyright", "", "footer copyright text")

	personalInfoCmd.AddCommand(
		personalInfoShowCmd,
		personalInfoSetCmd,
		navCommands("nav", "Edit navigation items",
			(*editor.PersonalInfoEditor).AddNavItem,
			(*editor.PersonalInfoEditor).UpdateNavItem,
			(*editor.PersonalInfoEditor).RemoveNavItem),
		navCommands("footer", "Edit footer links",
			(*editor.PersonalInfoEditor).AddFooterLink,
			(*editor.PersonalInfoEditor).UpdateFooterLink,
			(*editor.PersonalInfoEditor).RemoveFooterLink),
	)
}
