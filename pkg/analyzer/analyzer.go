// Package analyzer implements whole-word term frequency analysis over a
// corpus of decision summaries. All functions are pure: the corpus is
// injected by the caller and never mutated.
package analyzer

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"sentencas/models"
)

// ErrEmptyTermList is returned when the raw term input normalizes to nothing.
var ErrEmptyTermList = errors.New("term list is empty")

// TermCount pairs a normalized term with its aggregate occurrence count.
type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// FrequencyReport lists term counts sorted descending by count; ties keep
// the input order of the terms.
type FrequencyReport []TermCount

// Result bundles the outputs of one analysis run.
type Result struct {
	Terms        []string
	Report       FrequencyReport
	Matches      models.Corpus
	ScannedCount int
}

// NormalizeTerms splits a comma-separated input into trimmed, lower-cased
// terms, discarding empty pieces and duplicates while preserving first
// appearance order.
func NormalizeTerms(raw string) ([]string, error) {
	seen := make(map[string]struct{})
	var terms []string
	for _, piece := range strings.Split(raw, ",") {
		term := strings.ToLower(strings.TrimSpace(piece))
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return nil, ErrEmptyTermList
	}
	return terms, nil
}

// boundaryClass matches any rune that is not a word character. Unicode
// letters count as word characters, so an ASCII \b would wrongly treat
// accented terms like "mérito" or "fé" as already ended at the accent.
const boundaryClass = `[^\p{L}\p{N}_]`

// termPattern builds the whole-word pattern for a single term. The term
// content is quoted so regex metacharacters in user input match literally.
// The term itself is capture group 1; see countOccurrences.
func termPattern(term string) string {
	return `(?:\A|` + boundaryClass + `)(` + regexp.QuoteMeta(term) + `)(?:` + boundaryClass + `|\z)`
}

func compileTerm(term string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`(?i)` + termPattern(term))
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern for term %q: %w", term, err)
	}
	return re, nil
}

// countOccurrences counts non-overlapping whole-word occurrences of a
// compiled term pattern in text. The scan resumes right after the term
// itself (capture group 1) rather than after the whole match, so a single
// delimiter rune can close one occurrence and open the next.
func countOccurrences(re *regexp.Regexp, text string) int {
	count := 0
	offset := 0
	for offset <= len(text) {
		loc := re.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}
		count++
		offset += loc[3]
	}
	return count
}

// CountFrequencies sums whole-word occurrences of each term over every
// ementa in the corpus. Matching is case-insensitive. The report is sorted
// descending by count with ties broken by input order.
func CountFrequencies(corpus models.Corpus, terms []string) (FrequencyReport, error) {
	report := make(FrequencyReport, 0, len(terms))
	for _, term := range terms {
		re, err := compileTerm(term)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, d := range corpus {
			total += countOccurrences(re, d.Ementa)
		}
		report = append(report, TermCount{Term: term, Count: total})
	}
	sort.SliceStable(report, func(i, j int) bool {
		return report[i].Count > report[j].Count
	})
	return report, nil
}

// SelectMatches returns the decisions whose ementa contains at least one of
// the terms as a whole word, preserving corpus order.
func SelectMatches(corpus models.Corpus, terms []string) (models.Corpus, error) {
	if len(terms) == 0 {
		return nil, ErrEmptyTermList
	}
	alternates := make([]string, len(terms))
	for i, term := range terms {
		alternates[i] = termPattern(term)
	}
	re, err := regexp.Compile(`(?i)` + strings.Join(alternates, "|"))
	if err != nil {
		return nil, fmt.Errorf("failed to compile alternation pattern: %w", err)
	}

	var matches models.Corpus
	for _, d := range corpus {
		if re.MatchString(d.Ementa) {
			matches = append(matches, d)
		}
	}
	return matches, nil
}

// FilterByTribunal returns the corpus unchanged for AMBOS, otherwise only
// the decisions of the requested tribunal, preserving order.
func FilterByTribunal(corpus models.Corpus, tribunal models.Tribunal) models.Corpus {
	if tribunal == models.TribunalAmbos || tribunal == "" {
		return corpus
	}
	filtered := make(models.Corpus, 0, len(corpus))
	for _, d := range corpus {
		if d.Tribunal == tribunal {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// Run executes the full pipeline for one request: validate and normalize
// the terms, filter by tribunal, count frequencies, select matches.
// Validation failures happen before any counting starts.
func Run(corpus models.Corpus, req models.Request) (*Result, error) {
	terms, err := NormalizeTerms(req.RawTerms)
	if err != nil {
		return nil, err
	}

	filtered := FilterByTribunal(corpus, req.TribunalFilter)

	report, err := CountFrequencies(filtered, terms)
	if err != nil {
		return nil, err
	}

	matches, err := SelectMatches(filtered, terms)
	if err != nil {
		return nil, err
	}

	return &Result{
		Terms:        terms,
		Report:       report,
		Matches:      matches,
		ScannedCount: len(filtered),
	}, nil
}
