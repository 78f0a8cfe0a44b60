package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/skills"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "List and inspect available skills",
	Long: `Skills are the capabilities this toolbox exposes to an assistant: every
subcommand is a builtin skill, and extra skills can be packaged as
directories with a SKILL.md file under ./skills or ~/.skillkit/skills.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available skills",
	Run: func(_ *cobra.Command, _ []string) {
		listSkillsCmd()
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Show a skill's description and instructions",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		showSkillCmd(args[0])
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	rootCmd.AddCommand(skillCmd)
}

func listSkillsCmd() {
	discovery, err := skills.NewDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	all, err := discovery.List()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tCOMMAND\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t----\t-------\t-----------")

	for _, skill := range all {
		kind := "builtin"
		command := skill.Command
		if !skill.Builtin() {
			kind = "packaged"
			command = skill.Directory
		}
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", skill.Name, kind, command, description)
	}
	tw.Flush()
}

func showSkillCmd(name string) {
	discovery, err := skills.NewDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	skill, err := discovery.Get(name)
	if err != nil {
		presenter.Error(err, "Skill not found")
		os.Exit(1)
	}

	presenter.Section(skill.Name)
	presenter.Info(skill.Description)
	if skill.Builtin() {
		presenter.Info(fmt.Sprintf("Run with: %s", skill.Command))
		return
	}
	presenter.Info(fmt.Sprintf("Directory: %s", skill.Directory))
	if skill.Content != "" {
		presenter.Separator()
		fmt.Println(skill.Content)
	}
}
