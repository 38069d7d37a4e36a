package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sentencas/models"
)

// ErrNotFound is returned when a requested corpus or analysis does not exist.
var ErrNotFound = errors.New("not found")

// CorpusInfo is the stored metadata of one generated corpus.
type CorpusInfo struct {
	CorpusID           string
	Seed               int64
	Size               int
	Language           string
	LanguageConfidence float64
	CreatedAt          time.Time
}

// InsertCorpus stores a corpus and its decisions in one transaction.
func (db *DB) InsertCorpus(corpusID string, seed int64, corpus models.Corpus, language string, confidence float64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO corpora (corpus_id, seed, size, language, language_confidence)
		VALUES (?, ?, ?, ?, ?)
	`, corpusID, seed, len(corpus), language, confidence)
	if err != nil {
		return fmt.Errorf("failed to insert corpus: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO decisions (corpus_id, decision_id, tribunal, ementa, resultado)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare decision insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range corpus {
		if _, err := stmt.Exec(corpusID, d.ID, string(d.Tribunal), d.Ementa, string(d.Resultado)); err != nil {
			return fmt.Errorf("failed to insert decision %d: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit corpus: %w", err)
	}
	return nil
}

// GetCorpus loads the decisions of a corpus in their original order.
func (db *DB) GetCorpus(corpusID string) (models.Corpus, error) {
	rows, err := db.Query(`
		SELECT decision_id, tribunal, ementa, resultado
		FROM decisions
		WHERE corpus_id = ?
		ORDER BY decision_id
	`, corpusID)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var corpus models.Corpus
	for rows.Next() {
		var d models.Decision
		var tribunal, resultado string
		if err := rows.Scan(&d.ID, &tribunal, &d.Ementa, &resultado); err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		d.Tribunal = models.Tribunal(tribunal)
		d.Resultado = models.Resultado(resultado)
		corpus = append(corpus, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read decisions: %w", err)
	}

	if len(corpus) == 0 {
		return nil, fmt.Errorf("corpus %s: %w", corpusID, ErrNotFound)
	}
	return corpus, nil
}

// GetCorpusInfo loads the metadata row of a corpus.
func (db *DB) GetCorpusInfo(corpusID string) (*CorpusInfo, error) {
	var info CorpusInfo
	err := db.QueryRow(`
		SELECT corpus_id, seed, size, language, language_confidence, created_at
		FROM corpora
		WHERE corpus_id = ?
	`, corpusID).Scan(&info.CorpusID, &info.Seed, &info.Size, &info.Language, &info.LanguageConfidence, &info.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("corpus %s: %w", corpusID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get corpus info: %w", err)
	}
	return &info, nil
}

// LatestCorpusID returns the most recently created corpus.
func (db *DB) LatestCorpusID() (string, error) {
	var corpusID string
	err := db.QueryRow(`
		SELECT corpus_id FROM corpora
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&corpusID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest corpus: %w", err)
	}
	return corpusID, nil
}

// ListCorpora returns stored corpora, newest first.
func (db *DB) ListCorpora(limit int) ([]CorpusInfo, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT corpus_id, seed, size, language, language_confidence, created_at
		FROM corpora
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpora: %w", err)
	}
	defer rows.Close()

	var infos []CorpusInfo
	for rows.Next() {
		var info CorpusInfo
		if err := rows.Scan(&info.CorpusID, &info.Seed, &info.Size, &info.Language, &info.LanguageConfidence, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan corpus info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
