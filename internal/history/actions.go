// Package history implements the corpus and analysis inspection commands.
package history

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"sentencas/internal/common"
	"sentencas/pkg/db"
	"sentencas/pkg/report"
)

const timeFormat = "2006-01-02 15:04:05"

func openDatabase(c *cli.Context) (*db.DB, error) {
	cfg, err := common.LoadOptionalConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := db.Open(common.ResolveDBPath(c, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// CorporaAction lists stored corpora.
func CorporaAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	infos, err := database.ListCorpora(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list corpora: %w", err)
	}

	if len(infos) == 0 {
		fmt.Println("No corpora found. Run 'sentencas generate' first.")
		return nil
	}

	fmt.Printf("%-38s %-20s %-6s %-12s %-6s\n", "ID", "Created", "Size", "Language", "Conf")
	fmt.Println(strings.Repeat("-", 88))
	for _, info := range infos {
		fmt.Printf("%-38s %-20s %-6d %-12s %-6.2f\n",
			info.CorpusID,
			info.CreatedAt.Format(timeFormat),
			info.Size,
			info.Language,
			info.LanguageConfidence,
		)
	}
	fmt.Printf("\nTotal: %d corpora\n", len(infos))
	fmt.Printf("\nTip: Use 'sentencas corpus show <id>' to see decisions\n")
	return nil
}

// CorpusShowAction prints one corpus with a preview of its decisions.
func CorpusShowAction(c *cli.Context) error {
	corpusID := c.Args().First()
	if corpusID == "" {
		return fmt.Errorf("corpus ID is required")
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	info, err := database.GetCorpusInfo(corpusID)
	if err != nil {
		return err
	}
	corpus, err := database.GetCorpus(corpusID)
	if err != nil {
		return err
	}

	fmt.Printf("Corpus %s\n", info.CorpusID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:    %s\n", info.CreatedAt.Format(timeFormat))
	fmt.Printf("Seed:       %d\n", info.Seed)
	fmt.Printf("Decisions:  %d\n", info.Size)
	fmt.Printf("Language:   %s (confidence %.2f)\n", info.Language, info.LanguageConfidence)

	limit := c.Int("limit")
	if limit <= 0 || limit > len(corpus) {
		limit = len(corpus)
	}
	fmt.Printf("\nDecisions (%d of %d):\n", limit, len(corpus))
	fmt.Println(strings.Repeat("-", 80))
	for _, d := range corpus[:limit] {
		fmt.Printf("%4d. [%s] [%s] %s\n", d.ID, d.Tribunal, d.Resultado, report.Truncate(d.Ementa, 60))
	}
	return nil
}

// AnalysesAction lists stored analysis runs.
func AnalysesAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	records, err := database.ListAnalyses(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No analyses found. Run 'sentencas analyze' first.")
		return nil
	}

	fmt.Printf("%-38s %-20s %-8s %-8s %-8s %s\n", "ID", "Created", "Filter", "Scanned", "Matches", "Terms")
	fmt.Println(strings.Repeat("-", 110))
	for _, rec := range records {
		fmt.Printf("%-38s %-20s %-8s %-8d %-8d %s\n",
			rec.AnalysisID,
			rec.CreatedAt.Format(timeFormat),
			rec.TribunalFilter,
			rec.ScannedCount,
			rec.MatchCount,
			report.Truncate(rec.RawTerms, 40),
		)
	}
	fmt.Printf("\nTotal: %d analyses\n", len(records))
	fmt.Printf("\nTip: Use 'sentencas analysis show <id>' for term counts\n")
	return nil
}

// AnalysisShowAction prints one analysis run with its ranked term counts.
func AnalysisShowAction(c *cli.Context) error {
	analysisID := c.Args().First()
	if analysisID == "" {
		return fmt.Errorf("analysis ID is required")
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	rec, freqs, err := database.GetAnalysis(analysisID)
	if err != nil {
		return err
	}

	fmt.Printf("Analysis %s\n", rec.AnalysisID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:    %s\n", rec.CreatedAt.Format(timeFormat))
	fmt.Printf("Corpus:     %s\n", rec.CorpusID)
	fmt.Printf("Filter:     %s\n", rec.TribunalFilter)
	fmt.Printf("Terms:      %s\n", rec.RawTerms)
	fmt.Printf("Scanned:    %d decisions, %d matched\n", rec.ScannedCount, rec.MatchCount)

	fmt.Println("\nTerm frequencies:")
	fmt.Printf("%-40s %10s\n", "Term", "Count")
	fmt.Println(strings.Repeat("-", 51))
	for _, tc := range freqs {
		fmt.Printf("%-40s %10d\n", tc.Term, tc.Count)
	}
	return nil
}
