package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"sentencas/internal/analyze"
	"sentencas/internal/generate"
	"sentencas/internal/history"
	"sentencas/pkg/help"
	"sentencas/pkg/report"
	"sentencas/pkg/simulator"
)

func main() {
	app := &cli.App{
		Name:  "sentencas",
		Usage: "keyword frequency analysis over simulated STF/STJ decision summaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "database path (default: sentencas.db next to the binary)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file (default: ./config.yaml when present)",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "generate and store a simulated corpus",
				Action: generate.GenerateAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "size",
						Value: simulator.DefaultSize,
						Usage: "number of decisions to generate",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "random seed (default: current time)",
					},
				},
			},
			{
				Name:   "analyze",
				Usage:  "run a term frequency analysis against a stored corpus",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "terms",
						Usage: "comma-separated search terms, e.g. \"dano moral, prescrição\"",
					},
					&cli.StringFlag{
						Name:  "tribunal",
						Value: "AMBOS",
						Usage: "AMBOS, STF or STJ",
					},
					&cli.StringFlag{
						Name:  "corpus",
						Usage: "corpus ID (default: most recent stored corpus)",
					},
					&cli.IntFlag{
						Name:  "sample",
						Value: report.DefaultSampleSize,
						Usage: "matching decisions to include in the sample",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "table",
						Usage: "table, yaml or json",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "random seed when a corpus has to be simulated first",
					},
				},
			},
			{
				Name:  "corpus",
				Usage: "inspect stored corpora",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list stored corpora, newest first",
						Action: history.CorporaAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum rows to show"},
						},
					},
					{
						Name:      "show",
						Usage:     "show one corpus and a preview of its decisions",
						ArgsUsage: "<corpus_id>",
						Action:    history.CorpusShowAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "decisions to preview (0 = all)"},
						},
					},
				},
			},
			{
				Name:  "analysis",
				Usage: "inspect past analysis runs",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list stored analysis runs, newest first",
						Action: history.AnalysesAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum rows to show"},
						},
					},
					{
						Name:      "show",
						Usage:     "show one analysis run with its term counts",
						ArgsUsage: "<analysis_id>",
						Action:    history.AnalysisShowAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "print a machine-readable quick start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
