// Package langid identifies the dominant language of corpus text.
package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"sentencas/models"
)

// The simulated domain is Brazilian Portuguese; Spanish and English are the
// plausible confusions on short legal text. Restricting the candidate set
// keeps detection accurate on ementa-length input.
var candidates = []lingua.Language{
	lingua.Portuguese,
	lingua.Spanish,
	lingua.English,
}

// Detection is the detected language of a text and the detector's
// confidence in that call.
type Detection struct {
	Language   string  `json:"language" yaml:"language"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Detector wraps a lingua detector configured for the corpus domain.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// DetectText identifies the language of a single text.
func (d *Detector) DetectText(text string) Detection {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Detection{Language: "unknown"}
	}
	return Detection{
		Language:   lang.String(),
		Confidence: d.detector.ComputeLanguageConfidence(text, lang),
	}
}

// DetectCorpus samples ementa text from the corpus and reports the dominant
// language. A small sample is enough: the corpus is homogeneous by
// construction.
func (d *Detector) DetectCorpus(corpus models.Corpus) Detection {
	const maxSample = 20
	var sb strings.Builder
	for i, dec := range corpus {
		if i >= maxSample {
			break
		}
		sb.WriteString(dec.Ementa)
		sb.WriteByte(' ')
	}
	return d.DetectText(sb.String())
}
