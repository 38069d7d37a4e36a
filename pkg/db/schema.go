package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Corpora: one row per generated corpus
CREATE TABLE IF NOT EXISTS corpora (
    corpus_id TEXT PRIMARY KEY,
    seed INTEGER NOT NULL,
    size INTEGER NOT NULL,
    language TEXT,
    language_confidence REAL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_corpora_created ON corpora(created_at DESC);

-- Decisions: corpus rows, ordered by decision_id within a corpus
CREATE TABLE IF NOT EXISTS decisions (
    corpus_id TEXT NOT NULL,
    decision_id INTEGER NOT NULL,
    tribunal TEXT NOT NULL,
    ementa TEXT NOT NULL,
    resultado TEXT NOT NULL,
    PRIMARY KEY (corpus_id, decision_id),
    FOREIGN KEY (corpus_id) REFERENCES corpora(corpus_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_decisions_tribunal ON decisions(corpus_id, tribunal);

-- Analyses: one row per analysis run
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id TEXT PRIMARY KEY,
    corpus_id TEXT NOT NULL,
    tribunal_filter TEXT NOT NULL,
    raw_terms TEXT NOT NULL,
    scanned_count INTEGER NOT NULL,
    match_count INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (corpus_id) REFERENCES corpora(corpus_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_analyses_corpus ON analyses(corpus_id);

-- Per-term counts of an analysis; rank 0 is the highest count
CREATE TABLE IF NOT EXISTS analysis_terms (
    analysis_id TEXT NOT NULL,
    rank INTEGER NOT NULL,
    term TEXT NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (analysis_id, rank),
    FOREIGN KEY (analysis_id) REFERENCES analyses(analysis_id) ON DELETE CASCADE
);
`
