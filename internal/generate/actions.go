package generate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"sentencas/internal/common"
	"sentencas/pkg/db"
	"sentencas/pkg/langid"
	"sentencas/pkg/simulator"
)

// GenerateAction simulates a corpus, detects its language and stores it.
func GenerateAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadOptionalConfig(c)
	if err != nil {
		return err
	}

	seed := c.Int64("seed")
	if !c.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	size := c.Int("size")
	if !c.IsSet("size") && cfg.CorpusSize > 0 {
		size = cfg.CorpusSize
	}

	corpus := simulator.New(seed).Corpus(size)
	detection := langid.New().DetectCorpus(corpus)
	logger.Info("corpus generated", "size", len(corpus), "seed", seed,
		"language", detection.Language, "language_confidence", detection.Confidence)

	database, err := db.Open(common.ResolveDBPath(c, cfg))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	corpusID := uuid.NewString()
	if err := database.InsertCorpus(corpusID, seed, corpus, detection.Language, detection.Confidence); err != nil {
		return fmt.Errorf("failed to store corpus: %w", err)
	}

	fmt.Printf("Corpus %s stored: %d decisions, seed %d, language %s\n",
		corpusID, len(corpus), seed, detection.Language)
	return nil
}
