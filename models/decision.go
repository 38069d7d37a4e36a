// Package models defines the data structures shared across the analyzer.
package models

import "fmt"

// Tribunal identifies the issuing court of a decision.
type Tribunal string

const (
	TribunalSTF Tribunal = "STF"
	TribunalSTJ Tribunal = "STJ"

	// TribunalAmbos is the filter value meaning "both courts".
	TribunalAmbos Tribunal = "AMBOS"
)

// ParseTribunal validates a tribunal filter value from user input.
func ParseTribunal(s string) (Tribunal, error) {
	switch Tribunal(s) {
	case TribunalSTF, TribunalSTJ, TribunalAmbos:
		return Tribunal(s), nil
	case "":
		return TribunalAmbos, nil
	default:
		return "", fmt.Errorf("invalid tribunal %q: must be AMBOS, STF or STJ", s)
	}
}

// Resultado is the outcome label of a decision.
type Resultado string

const (
	ResultadoProcedente             Resultado = "Procedente"
	ResultadoImprocedente           Resultado = "Improcedente"
	ResultadoParcialmenteProcedente Resultado = "Parcialmente Procedente"
)

// ParseResultado validates an outcome label read back from storage.
func ParseResultado(s string) (Resultado, error) {
	switch Resultado(s) {
	case ResultadoProcedente, ResultadoImprocedente, ResultadoParcialmenteProcedente:
		return Resultado(s), nil
	default:
		return "", fmt.Errorf("invalid resultado %q", s)
	}
}

// Decision is one court decision summary. Immutable once generated.
type Decision struct {
	ID        int64     `json:"id" yaml:"id"`
	Tribunal  Tribunal  `json:"tribunal" yaml:"tribunal"`
	Ementa    string    `json:"ementa" yaml:"ementa"`
	Resultado Resultado `json:"resultado" yaml:"resultado"`
}

// Corpus is an ordered collection of decisions. Created once per session
// and treated as read-only by every pipeline stage.
type Corpus []Decision
