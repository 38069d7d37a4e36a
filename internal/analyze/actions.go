package analyze

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"sentencas/internal/common"
	"sentencas/models"
	"sentencas/pkg/analyzer"
	"sentencas/pkg/db"
	"sentencas/pkg/langid"
	"sentencas/pkg/report"
	"sentencas/pkg/simulator"
)

// AnalyzeAction runs the full pipeline against a stored corpus: validate
// terms, filter by tribunal, count frequencies, select matches, render and
// record the result.
func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadOptionalConfig(c)
	if err != nil {
		return err
	}

	rawTerms := c.String("terms")
	if rawTerms == "" {
		rawTerms = cfg.DefaultTerms
	}
	if strings.TrimSpace(rawTerms) == "" {
		return fmt.Errorf("no search terms provided: use --terms \"dano moral, prescrição\"")
	}

	tribunal, err := models.ParseTribunal(c.String("tribunal"))
	if err != nil {
		return err
	}

	database, err := db.Open(common.ResolveDBPath(c, cfg))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	corpusID, corpus, err := resolveCorpus(c, cfg, database, logger)
	if err != nil {
		return err
	}

	req := models.Request{TribunalFilter: tribunal, RawTerms: rawTerms}
	result, err := analyzer.Run(corpus, req)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyTermList) {
			return fmt.Errorf("term list is empty after normalization: provide at least one non-empty term")
		}
		return err
	}
	logger.Info("analysis complete", "corpus_id", corpusID,
		"terms", len(result.Terms), "scanned", result.ScannedCount, "matches", len(result.Matches))

	analysisID := uuid.NewString()
	rec := db.AnalysisRecord{
		AnalysisID:     analysisID,
		CorpusID:       corpusID,
		TribunalFilter: tribunal,
		RawTerms:       rawTerms,
		ScannedCount:   result.ScannedCount,
		MatchCount:     len(result.Matches),
	}
	if err := database.InsertAnalysis(rec, result.Report); err != nil {
		// The analysis itself succeeded; history is best effort.
		logger.Warn("failed to record analysis", "error", err)
	}

	sampleSize := c.Int("sample")
	if !c.IsSet("sample") && cfg.SampleSize > 0 {
		sampleSize = cfg.SampleSize
	}
	summary := report.Build(req, result, sampleSize)

	switch c.String("format") {
	case "yaml":
		return summary.WriteYAML(os.Stdout)
	case "json":
		return summary.WriteJSON(os.Stdout)
	case "", "table":
		return summary.WriteTable(os.Stdout)
	default:
		return fmt.Errorf("invalid format %q: must be table, yaml or json", c.String("format"))
	}
}

// resolveCorpus picks the corpus to analyze: --corpus if given, else the
// most recent stored one, else a fresh simulation stored on the spot.
func resolveCorpus(c *cli.Context, cfg *models.Config, database *db.DB, logger *slog.Logger) (string, models.Corpus, error) {
	corpusID := c.String("corpus")
	if corpusID == "" {
		var err error
		corpusID, err = database.LatestCorpusID()
		if errors.Is(err, db.ErrNotFound) {
			return simulateAndStore(c, cfg, database, logger)
		}
		if err != nil {
			return "", nil, err
		}
	}

	corpus, err := database.GetCorpus(corpusID)
	if err != nil {
		return "", nil, err
	}
	return corpusID, corpus, nil
}

func simulateAndStore(c *cli.Context, cfg *models.Config, database *db.DB, logger *slog.Logger) (string, models.Corpus, error) {
	seed := c.Int64("seed")
	if !c.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	size := cfg.CorpusSize

	corpus := simulator.New(seed).Corpus(size)
	detection := langid.New().DetectCorpus(corpus)
	logger.Info("no stored corpus, simulated one", "size", len(corpus), "seed", seed,
		"language", detection.Language)

	corpusID := uuid.NewString()
	if err := database.InsertCorpus(corpusID, seed, corpus, detection.Language, detection.Confidence); err != nil {
		return "", nil, fmt.Errorf("failed to store corpus: %w", err)
	}
	return corpusID, corpus, nil
}
