package models

// Request describes one analysis invocation: which tribunal subset to
// consider and the raw comma-separated term input exactly as the user
// typed it. The corpus is passed separately so callers decide where it
// comes from.
type Request struct {
	TribunalFilter Tribunal `json:"tribunal_filter" yaml:"tribunal_filter"`
	RawTerms       string   `json:"raw_terms" yaml:"raw_terms"`
}
