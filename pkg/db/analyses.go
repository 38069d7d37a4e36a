package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sentencas/models"
	"sentencas/pkg/analyzer"
)

// AnalysisRecord is the stored metadata of one analysis run.
type AnalysisRecord struct {
	AnalysisID     string
	CorpusID       string
	TribunalFilter models.Tribunal
	RawTerms       string
	ScannedCount   int
	MatchCount     int
	CreatedAt      time.Time
}

// InsertAnalysis stores an analysis run and its ranked term counts in one
// transaction.
func (db *DB) InsertAnalysis(rec AnalysisRecord, report analyzer.FrequencyReport) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO analyses (analysis_id, corpus_id, tribunal_filter, raw_terms, scanned_count, match_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.AnalysisID, rec.CorpusID, string(rec.TribunalFilter), rec.RawTerms, rec.ScannedCount, rec.MatchCount)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}

	for rank, tc := range report {
		_, err = tx.Exec(`
			INSERT INTO analysis_terms (analysis_id, rank, term, count)
			VALUES (?, ?, ?, ?)
		`, rec.AnalysisID, rank, tc.Term, tc.Count)
		if err != nil {
			return fmt.Errorf("failed to insert term count for %q: %w", tc.Term, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit analysis: %w", err)
	}
	return nil
}

// GetAnalysis loads one analysis run and its term counts in rank order.
func (db *DB) GetAnalysis(analysisID string) (*AnalysisRecord, analyzer.FrequencyReport, error) {
	var rec AnalysisRecord
	var tribunal string
	err := db.QueryRow(`
		SELECT analysis_id, corpus_id, tribunal_filter, raw_terms, scanned_count, match_count, created_at
		FROM analyses
		WHERE analysis_id = ?
	`, analysisID).Scan(&rec.AnalysisID, &rec.CorpusID, &tribunal, &rec.RawTerms, &rec.ScannedCount, &rec.MatchCount, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("analysis %s: %w", analysisID, ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	rec.TribunalFilter = models.Tribunal(tribunal)

	rows, err := db.Query(`
		SELECT term, count FROM analysis_terms
		WHERE analysis_id = ?
		ORDER BY rank
	`, analysisID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query term counts: %w", err)
	}
	defer rows.Close()

	var report analyzer.FrequencyReport
	for rows.Next() {
		var tc analyzer.TermCount
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, nil, fmt.Errorf("failed to scan term count: %w", err)
		}
		report = append(report, tc)
	}
	return &rec, report, rows.Err()
}

// ListAnalyses returns stored analysis runs, newest first.
func (db *DB) ListAnalyses(limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT analysis_id, corpus_id, tribunal_filter, raw_terms, scanned_count, match_count, created_at
		FROM analyses
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var tribunal string
		if err := rows.Scan(&rec.AnalysisID, &rec.CorpusID, &tribunal, &rec.RawTerms, &rec.ScannedCount, &rec.MatchCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		rec.TribunalFilter = models.Tribunal(tribunal)
		records = append(records, rec)
	}
	return records, rows.Err()
}
