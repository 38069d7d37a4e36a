package simulator

import (
	"reflect"
	"strings"
	"testing"

	"sentencas/models"
)

func TestCorpus_Deterministic(t *testing.T) {
	first := New(42).Corpus(50)
	second := New(42).Corpus(50)
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different corpora")
	}

	other := New(43).Corpus(50)
	if reflect.DeepEqual(first, other) {
		t.Error("different seeds produced identical corpora")
	}
}

func TestCorpus_DefaultSize(t *testing.T) {
	corpus := New(1).Corpus(0)
	if len(corpus) != DefaultSize {
		t.Errorf("Corpus(0) size = %d, want %d", len(corpus), DefaultSize)
	}
}

func TestCorpus_Structure(t *testing.T) {
	corpus := New(7).Corpus(100)

	for i, d := range corpus {
		if d.ID != int64(i+1) {
			t.Fatalf("decision %d has ID %d, want sequential from 1", i, d.ID)
		}
		if d.Tribunal != models.TribunalSTF && d.Tribunal != models.TribunalSTJ {
			t.Fatalf("decision %d has tribunal %q", i, d.Tribunal)
		}
		if _, err := models.ParseResultado(string(d.Resultado)); err != nil {
			t.Fatalf("decision %d: %v", i, err)
		}
		if !strings.Contains(d.Ementa, "A Corte Superior decidiu a questão") {
			t.Fatalf("decision %d ementa missing closing sentence: %q", i, d.Ementa)
		}
	}
}

func TestCorpus_SeedsDanoMoral(t *testing.T) {
	corpus := New(3).Corpus(DefaultSize)

	found := 0
	for _, d := range corpus {
		if strings.Contains(strings.ToLower(d.Ementa), "dano moral") {
			found++
		}
	}
	// ~20% forced injection plus random draws from the term pool: a full-size
	// corpus without any occurrence would mean the seeding is broken.
	if found == 0 {
		t.Error("no ementa contains \"dano moral\" in a default-size corpus")
	}
}
