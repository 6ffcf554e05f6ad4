package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/output"
	"github.com/huvdesign/brandcheck/internal/store"
	"github.com/huvdesign/brandcheck/internal/survey"
)

var listFilter survey.ListFilter

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored submissions, newest first",
	RunE:  runList,
}

func init() {
	addFilterFlags(listCmd, &listFilter)
	listCmd.Flags().IntVar(&listFilter.Limit, "limit", 20, "Maximum number of submissions (0 for all)")
	rootCmd.AddCommand(listCmd)
}

// addFilterFlags registers the submission filter flags shared by list and
// export.
func addFilterFlags(cmd *cobra.Command, f *survey.ListFilter) {
	cmd.Flags().StringVar(&f.Company, "company", "", "Company name substring")
	cmd.Flags().StringVar(&f.Phase, "phase", "", "Business phase")
	cmd.Flags().StringVar(&f.Industry, "industry", "", "Industry")
}

// listItem is the JSON form of one listed submission.
type listItem struct {
	ID        string           `json:"id"`
	CreatedAt string           `json:"created_at"`
	Company   string           `json:"company"`
	Industry  string           `json:"industry,omitempty"`
	Phase     string           `json:"phase,omitempty"`
	Average   string           `json:"average"`
	Rating    diagnosis.Rating `json:"rating"`
	Edited    bool             `json:"edited"`
	AIReport  bool             `json:"ai_report"`
}

func toListItem(s *store.Submission) listItem {
	return listItem{
		ID:        s.ID,
		CreatedAt: s.CreatedAt.Local().Format("2006-01-02 15:04"),
		Company:   s.CompanyName,
		Industry:  s.Industry,
		Phase:     s.BusinessPhase,
		Average:   diagnosis.FormatScore(s.AvgScore),
		Rating:    diagnosis.ClassifyRating(s.AvgScore),
		Edited:    s.EditedReport != nil,
		AIReport:  s.AIReport != nil,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	subs, err := svc.List(listFilter)
	if err != nil {
		return err
	}

	items := make([]listItem, 0, len(subs))
	for _, s := range subs {
		items = append(items, toListItem(s))
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return output.WriteJSON(w, items)
	}

	fmt.Fprintln(w, output.Section(fmt.Sprintf("Submissions (%d)", len(items))))
	fmt.Fprintln(w)
	if len(items) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render(" No submissions match."))
		return nil
	}

	t := output.NewTable("ID", "Date", "Company", "Phase", "Avg", "Rating", "Flags").
		MaxCellWidth(36).
		AlignRight(4)
	for _, it := range items {
		flags := ""
		if it.Edited {
			flags += "edited "
		}
		if it.AIReport {
			flags += "ai"
		}
		t.AddRow(it.ID, it.CreatedAt, it.Company, it.Phase, it.Average,
			output.RatingBadge(it.Rating), flags)
	}
	t.Print(w)
	return nil
}
