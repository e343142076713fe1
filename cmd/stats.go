package cmd

import (
	"fmt"

	"github.com/mwhitten/gitgym/internal/progress"
	"github.com/mwhitten/gitgym/internal/tutorial"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show saved progress and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := progress.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open progress store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		last, err := st.LastSection(ctx)
		if err != nil {
			return err
		}
		if sec, ok := tutorial.ByID(last); ok {
			fmt.Printf("Last viewed section: %s\n", sec.Title)
		} else {
			fmt.Println("Last viewed section: (none)")
		}

		recs, err := st.Attempts(ctx)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No quiz attempts yet.")
			return nil
		}

		fmt.Printf("\nQuiz attempts (%d):\n", len(recs))
		for _, rec := range recs {
			result := "not passed"
			if rec.Passed {
				result = "passed"
			}
			fmt.Printf("  %s  %2d/%2d  %3d%%  %s\n",
				rec.TakenAt.Format("2006-01-02 15:04"),
				rec.Correct, rec.Total, rec.Percent, result)
		}
		return nil
	},
}
