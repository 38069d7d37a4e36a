package db

import (
	"errors"
	"reflect"
	"testing"

	"sentencas/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func testCorpus() models.Corpus {
	return models.Corpus{
		{ID: 1, Tribunal: models.TribunalSTF, Ementa: "Dano moral e indenização.", Resultado: models.ResultadoProcedente},
		{ID: 2, Tribunal: models.TribunalSTJ, Ementa: "Prescrição e coisa julgada.", Resultado: models.ResultadoImprocedente},
		{ID: 3, Tribunal: models.TribunalSTF, Ementa: "Habeas corpus acolhido.", Resultado: models.ResultadoParcialmenteProcedente},
	}
}

func TestInsertAndGetCorpus(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	corpus := testCorpus()
	if err := db.InsertCorpus("c1", 42, corpus, "Portuguese", 0.97); err != nil {
		t.Fatalf("InsertCorpus() error = %v", err)
	}

	got, err := db.GetCorpus("c1")
	if err != nil {
		t.Fatalf("GetCorpus() error = %v", err)
	}
	if !reflect.DeepEqual(got, corpus) {
		t.Errorf("GetCorpus() = %v, want %v", got, corpus)
	}

	info, err := db.GetCorpusInfo("c1")
	if err != nil {
		t.Fatalf("GetCorpusInfo() error = %v", err)
	}
	if info.Seed != 42 || info.Size != 3 || info.Language != "Portuguese" {
		t.Errorf("GetCorpusInfo() = %+v", info)
	}
}

func TestGetCorpus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetCorpus("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCorpus() error = %v, want ErrNotFound", err)
	}
	if _, err := db.GetCorpusInfo("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCorpusInfo() error = %v, want ErrNotFound", err)
	}
}

func TestLatestCorpusID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.LatestCorpusID(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LatestCorpusID() on empty db error = %v, want ErrNotFound", err)
	}

	if err := db.InsertCorpus("c1", 1, testCorpus(), "Portuguese", 0.9); err != nil {
		t.Fatalf("InsertCorpus() error = %v", err)
	}
	if err := db.InsertCorpus("c2", 2, testCorpus(), "Portuguese", 0.9); err != nil {
		t.Fatalf("InsertCorpus() error = %v", err)
	}

	got, err := db.LatestCorpusID()
	if err != nil {
		t.Fatalf("LatestCorpusID() error = %v", err)
	}
	if got != "c2" {
		t.Errorf("LatestCorpusID() = %q, want c2", got)
	}
}

func TestListCorpora(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, id := range []string{"c1", "c2", "c3"} {
		if err := db.InsertCorpus(id, 7, testCorpus(), "Portuguese", 0.9); err != nil {
			t.Fatalf("InsertCorpus(%s) error = %v", id, err)
		}
	}

	infos, err := db.ListCorpora(2)
	if err != nil {
		t.Fatalf("ListCorpora() error = %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("ListCorpora(2) returned %d rows", len(infos))
	}
	if infos[0].CorpusID != "c3" {
		t.Errorf("newest corpus first: got %q, want c3", infos[0].CorpusID)
	}
}
