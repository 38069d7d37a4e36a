// Package simulator generates synthetic jurisprudence corpora that mirror
// the structure of STF/STJ decision summaries. Generation is deterministic
// for a given seed so a session's corpus can be reproduced and tested.
package simulator

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"sentencas/models"
)

// DefaultSize is the corpus size used when none is configured.
const DefaultSize = 200

// termosJuridicos is the pool of legal terms seeded into the ementas.
var termosJuridicos = []string{
	"dano moral", "repercussão geral", "inconstitucionalidade",
	"habeas corpus", "recurso extraordinário", "competência",
	"direito do consumidor", "prescrição", "coisa julgada",
	"liberdade de expressão", "imposto de renda", "tributário",
	"indenização", "responsabilidade civil", "nulidade", "mérito",
	"decisão monocrática", "agravo regimental", "precedente",
}

// palavrasComuns is filler vocabulary that varies the ementa texts.
var palavrasComuns = []string{
	"analisada", "proferida", "julgado", "entendimento", "reafirmado",
	"unânime", "acolhido", "rejeitado", "parcialmente", "provido",
	"desprovido", "mérito", "questão", "relevante", "jurisprudência",
}

var tribunais = []models.Tribunal{models.TribunalSTF, models.TribunalSTJ}

var resultados = []models.Resultado{
	models.ResultadoProcedente,
	models.ResultadoImprocedente,
	models.ResultadoParcialmenteProcedente,
}

// Generator produces simulated decision corpora from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator seeded for reproducible output.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Corpus generates size decisions with sequential IDs starting at 1.
// A non-positive size falls back to DefaultSize.
func (g *Generator) Corpus(size int) models.Corpus {
	if size <= 0 {
		size = DefaultSize
	}
	corpus := make(models.Corpus, 0, size)
	for i := 0; i < size; i++ {
		corpus = append(corpus, models.Decision{
			ID:        int64(i + 1),
			Tribunal:  tribunais[g.rng.Intn(len(tribunais))],
			Ementa:    g.ementa(i + 1),
			Resultado: resultados[g.rng.Intn(len(resultados))],
		})
	}
	return corpus
}

// ementa assembles one summary text: 5 to 10 distinct elements drawn from
// the combined vocabulary, "dano moral" appended to roughly 20% of the
// texts so frequency searches always have something to find, and a fixed
// closing sentence referencing the decision number.
func (g *Generator) ementa(n int) string {
	pool := make([]string, 0, len(termosJuridicos)+len(palavrasComuns))
	pool = append(pool, termosJuridicos...)
	pool = append(pool, palavrasComuns...)

	count := 5 + g.rng.Intn(6)
	perm := g.rng.Perm(len(pool))
	elements := make([]string, 0, count+1)
	for _, idx := range perm[:count] {
		elements = append(elements, pool[idx])
	}

	if g.rng.Float64() < 0.2 {
		elements = append(elements, "dano moral")
	}

	text := strings.Join(elements, " ")
	text += fmt.Sprintf(". A Corte Superior decidiu a questão %d com base na lei.", n)
	return capitalize(text)
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
