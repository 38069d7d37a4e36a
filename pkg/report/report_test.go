package report

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"sentencas/models"
	"sentencas/pkg/analyzer"
)

func testResult() *analyzer.Result {
	return &analyzer.Result{
		Terms: []string{"dano moral", "prescrição"},
		Report: analyzer.FrequencyReport{
			{Term: "dano moral", Count: 3},
			{Term: "prescrição", Count: 1},
		},
		Matches: models.Corpus{
			{ID: 1, Tribunal: models.TribunalSTF, Ementa: "Dano moral e indenização.", Resultado: models.ResultadoProcedente},
			{ID: 2, Tribunal: models.TribunalSTJ, Ementa: "Prescrição e coisa julgada.", Resultado: models.ResultadoImprocedente},
			{ID: 5, Tribunal: models.TribunalSTF, Ementa: "Dano moral reafirmado.", Resultado: models.ResultadoProcedente},
		},
		ScannedCount: 10,
	}
}

func TestBuild(t *testing.T) {
	req := models.Request{TribunalFilter: models.TribunalAmbos, RawTerms: "dano moral, prescrição"}
	s := Build(req, testResult(), 2)

	if s.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", s.MatchCount)
	}
	if len(s.Sample) != 2 {
		t.Errorf("sample size = %d, want 2", len(s.Sample))
	}
	if s.Sample[0].ID != 1 || s.Sample[1].ID != 2 {
		t.Errorf("sample must keep corpus order, got IDs %d, %d", s.Sample[0].ID, s.Sample[1].ID)
	}

	if got := s.ByResultado[models.ResultadoProcedente]; got != 2 {
		t.Errorf("ByResultado[Procedente] = %d, want 2", got)
	}
	if got := s.ByResultado[models.ResultadoImprocedente]; got != 1 {
		t.Errorf("ByResultado[Improcedente] = %d, want 1", got)
	}
	if got := s.ByTribunal[models.TribunalSTF]; got != 2 {
		t.Errorf("ByTribunal[STF] = %d, want 2", got)
	}
	if got := s.ByTribunal[models.TribunalSTJ]; got != 1 {
		t.Errorf("ByTribunal[STJ] = %d, want 1", got)
	}
}

func TestWriteTable(t *testing.T) {
	req := models.Request{TribunalFilter: models.TribunalAmbos}
	s := Build(req, testResult(), 0)

	var buf bytes.Buffer
	if err := s.WriteTable(&buf); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"dano moral", "prescrição", "Procedente", "STF", "Sample (3 of 3 matches)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTable_NoResults(t *testing.T) {
	res := &analyzer.Result{
		Terms:        []string{"competência"},
		Report:       analyzer.FrequencyReport{{Term: "competência", Count: 0}},
		ScannedCount: 10,
	}
	s := Build(models.Request{TribunalFilter: models.TribunalSTJ}, res, 0)

	var buf bytes.Buffer
	if err := s.WriteTable(&buf); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "None of the terms occur") {
		t.Errorf("missing empty-frequency notice:\n%s", out)
	}
	if !strings.Contains(out, "No decisions match") {
		t.Errorf("missing empty-match notice:\n%s", out)
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	s := Build(models.Request{TribunalFilter: models.TribunalAmbos}, testResult(), 0)

	var buf bytes.Buffer
	if err := s.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	var got Summary
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got.MatchCount != s.MatchCount || len(got.Frequencies) != len(s.Frequencies) {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"curto", 10, "curto"},
		{"prescrição e coisa julgada", 11, "prescrição…"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
