// Package report renders analysis results as tables and serializable
// summaries for the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"sentencas/models"
	"sentencas/pkg/analyzer"
)

// DefaultSampleSize is how many matching decisions the sample shows.
const DefaultSampleSize = 10

const ementaDisplayWidth = 60

// Summary is the serializable form of one analysis run.
type Summary struct {
	TribunalFilter models.Tribunal          `json:"tribunal_filter" yaml:"tribunal_filter"`
	Terms          []string                 `json:"terms" yaml:"terms"`
	ScannedCount   int                      `json:"scanned_count" yaml:"scanned_count"`
	MatchCount     int                      `json:"match_count" yaml:"match_count"`
	Frequencies    analyzer.FrequencyReport `json:"frequencies" yaml:"frequencies"`
	ByResultado    map[models.Resultado]int `json:"by_resultado" yaml:"by_resultado"`
	ByTribunal     map[models.Tribunal]int  `json:"by_tribunal" yaml:"by_tribunal"`
	Sample         models.Corpus            `json:"sample" yaml:"sample"`
}

// Build assembles a summary from the analysis result. The sample is the
// first sampleSize matching decisions in corpus order.
func Build(req models.Request, res *analyzer.Result, sampleSize int) *Summary {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	sample := res.Matches
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	return &Summary{
		TribunalFilter: req.TribunalFilter,
		Terms:          res.Terms,
		ScannedCount:   res.ScannedCount,
		MatchCount:     len(res.Matches),
		Frequencies:    res.Report,
		ByResultado:    CountByResultado(res.Matches),
		ByTribunal:     CountByTribunal(res.Matches),
		Sample:         sample,
	}
}

// CountByResultado groups a corpus by outcome label.
func CountByResultado(corpus models.Corpus) map[models.Resultado]int {
	counts := make(map[models.Resultado]int)
	for _, d := range corpus {
		counts[d.Resultado]++
	}
	return counts
}

// CountByTribunal groups a corpus by issuing court.
func CountByTribunal(corpus models.Corpus) map[models.Tribunal]int {
	counts := make(map[models.Tribunal]int)
	for _, d := range corpus {
		counts[d.Tribunal]++
	}
	return counts
}

// WriteTable renders the summary as fixed-width tables.
func (s *Summary) WriteTable(w io.Writer) error {
	fmt.Fprintf(w, "Analysis: %d of %d decisions match (tribunal filter: %s)\n",
		s.MatchCount, s.ScannedCount, s.TribunalFilter)
	fmt.Fprintln(w, strings.Repeat("=", 80))

	fmt.Fprintln(w, "\nTerm frequencies:")
	fmt.Fprintf(w, "%-40s %10s\n", "Term", "Count")
	fmt.Fprintln(w, strings.Repeat("-", 51))
	nonzero := 0
	for _, tc := range s.Frequencies {
		fmt.Fprintf(w, "%-40s %10d\n", tc.Term, tc.Count)
		if tc.Count > 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		fmt.Fprintln(w, "\nNone of the terms occur in the filtered decisions.")
	}

	if s.MatchCount == 0 {
		fmt.Fprintln(w, "\nNo decisions match the terms; nothing to sample.")
		return nil
	}

	fmt.Fprintln(w, "\nMatches by resultado:")
	for _, r := range []models.Resultado{models.ResultadoProcedente, models.ResultadoImprocedente, models.ResultadoParcialmenteProcedente} {
		if n := s.ByResultado[r]; n > 0 {
			fmt.Fprintf(w, "  %-25s %5d\n", r, n)
		}
	}

	fmt.Fprintln(w, "\nMatches by tribunal:")
	for _, tr := range []models.Tribunal{models.TribunalSTF, models.TribunalSTJ} {
		if n := s.ByTribunal[tr]; n > 0 {
			fmt.Fprintf(w, "  %-25s %5d\n", tr, n)
		}
	}

	fmt.Fprintf(w, "\nSample (%d of %d matches):\n", len(s.Sample), s.MatchCount)
	fmt.Fprintf(w, "%-6s %-9s %-24s %s\n", "ID", "Tribunal", "Resultado", "Ementa")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, d := range s.Sample {
		fmt.Fprintf(w, "%-6d %-9s %-24s %s\n", d.ID, d.Tribunal, d.Resultado, Truncate(d.Ementa, ementaDisplayWidth))
	}

	return nil
}

// WriteYAML renders the summary as YAML.
func (s *Summary) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON renders the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Truncate shortens a string to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
