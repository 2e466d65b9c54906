// ABOUTME: CLI commands for the analysis history.
// ABOUTME: list, show, delete, and note editing over the History Store.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "List past analyses",
	Long: `List past food analyses, most recent first.

Each line shows: ID  DATE  SCORE  GRADE  NAME  (NOTE)

The store keeps at most 100 records; the oldest are discarded first.

EXAMPLES:

  vish history                   # Last 20 analyses
  vish history -n 50             # Last 50
  vish history show <id>         # Full detail for one record
  vish history note <id> "text"  # Attach or replace a note
  vish history delete <id>       # Remove a record`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		records, err := hist.All()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No analyses recorded yet.")
			return nil
		}
		if historyLimit > 0 && len(records) > historyLimit {
			records = records[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, rec := range records {
			note := ""
			if rec.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(rec.Note, 30))
			}
			fmt.Printf("%s %s %s %s %s%s\n",
				faint.Sprint(rec.ID),
				faint.Sprint(rec.CreatedAt.Format("2006-01-02 15:04")),
				scoreColored(rec.Result.Overall.VishScore),
				gradeColored(rec.Result.Overall.Grade),
				rec.FoodName,
				note)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one analysis in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		rec, ok, err := hist.Get(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no analysis with ID %s", args[0])
		}

		printResult(&rec.Result)
		faint := color.New(color.Faint)
		faint.Printf("Analyzed %s", rec.CreatedAt.Format("2006-01-02 15:04"))
		if rec.Note != "" {
			faint.Printf("  note: %s", rec.Note)
		}
		fmt.Println()
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an analysis",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		ok, err := hist.Delete(args[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No analysis with ID %s.\n", args[0])
			return nil
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

var historyNoteCmd = &cobra.Command{
	Use:   "note <id> <text>",
	Short: "Attach or replace the note on an analysis",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		ok, err := hist.UpdateNote(args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No analysis with ID %s.\n", args[0])
			return nil
		}
		color.Green("✓ Updated note on %s", args[0])
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")
	historyCmd.AddCommand(historyShowCmd, historyDeleteCmd, historyNoteCmd)
	rootCmd.AddCommand(historyCmd)
}
