package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hirescope/client"
	"hirescope/insights"
)

var (
	synSkill    string
	synValues   []string
	synContext  string
	synInactive bool
)

var synonymsCmd = &cobra.Command{
	Use:   "synonyms",
	Short: "Manage skill synonyms",
	Long: `Manage an organization's skill synonym entries.

Examples:
  hirescope synonyms list --org acme
  hirescope synonyms add --org acme --skill React --values "react.js,reactjs" --context web_framework
  hirescope synonyms update <id> --org acme --skill React --values "react.js,reactjs,rjs"
  hirescope synonyms delete <id>`,
	RunE: runSynonymList,
}

var synonymListCmd = &cobra.Command{
	Use:   "list",
	Short: "List synonym entries",
	RunE:  runSynonymList,
}

var synonymAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a synonym entry",
	RunE:  runSynonymAdd,
}

var synonymUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a synonym entry's values and context",
	Args:  cobra.ExactArgs(1),
	RunE:  runSynonymUpdate,
}

var synonymDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a synonym entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runSynonymDelete,
}

func init() {
	for _, cmd := range []*cobra.Command{synonymAddCmd, synonymUpdateCmd} {
		cmd.Flags().StringVar(&synSkill, "skill", "", "canonical skill name (required)")
		cmd.Flags().StringSliceVar(&synValues, "values", nil, "synonym terms (required)")
		cmd.Flags().StringVar(&synContext, "context", "", "context tag: web_framework, language, database, tool, library")
		cmd.Flags().BoolVar(&synInactive, "inactive", false, "create the entry disabled")
		_ = cmd.MarkFlagRequired("skill")
		_ = cmd.MarkFlagRequired("values")
	}

	synonymsCmd.AddCommand(synonymListCmd)
	synonymsCmd.AddCommand(synonymAddCmd)
	synonymsCmd.AddCommand(synonymUpdateCmd)
	synonymsCmd.AddCommand(synonymDeleteCmd)
}

func synonymPayload() client.SynonymPayload {
	return client.SynonymPayload{
		OrganizationID: orgID,
		Skill:          synSkill,
		Synonyms:       synValues,
		Context:        synContext,
		Active:         !synInactive,
	}
}

func runSynonymList(cmd *cobra.Command, args []string) error {
	entries, err := api.ListSynonyms(context.Background(), orgID)
	if err != nil {
		return reportError("synonym list", err)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Skill synonyms — %s", orgID)))
	fmt.Println()
	for _, e := range entries {
		status := goodStyle.Render("active")
		if !e.Active {
			status = infoStyle.Render("inactive")
		}
		context := ""
		if e.Context != "" {
			context = infoStyle.Render(" [" + insights.HumanizeKey(e.Context) + "]")
		}
		fmt.Printf("  %-36s %-20s → %s%s  %s\n",
			e.ID, e.Skill, strings.Join(e.Synonyms, ", "), context, status)
	}
	return nil
}

func runSynonymAdd(cmd *cobra.Command, args []string) error {
	entry, err := api.CreateSynonym(context.Background(), synonymPayload())
	if err != nil {
		return reportError("synonym add", err)
	}

	fmt.Println(goodStyle.Render(fmt.Sprintf("Created %s (%s → %s)",
		entry.ID, entry.Skill, strings.Join(entry.Synonyms, ", "))))
	logger.Info("synonym created", "id", entry.ID, "skill", entry.Skill)
	return nil
}

func runSynonymUpdate(cmd *cobra.Command, args []string) error {
	entry, err := api.UpdateSynonym(context.Background(), args[0], synonymPayload())
	if err != nil {
		return reportError("synonym update", err)
	}

	fmt.Println(goodStyle.Render(fmt.Sprintf("Updated %s (%s → %s)",
		entry.ID, entry.Skill, strings.Join(entry.Synonyms, ", "))))
	logger.Info("synonym updated", "id", entry.ID, "skill", entry.Skill)
	return nil
}

func runSynonymDelete(cmd *cobra.Command, args []string) error {
	if err := api.DeleteSynonym(context.Background(), args[0]); err != nil {
		return reportError("synonym delete", err)
	}

	fmt.Println(goodStyle.Render("Deleted " + args[0]))
	logger.Info("synonym deleted", "id", args[0])
	return nil
}
