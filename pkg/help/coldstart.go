package help

const ColdstartYAML = `# sentencas Quick Start

tribunal_filters:
  AMBOS: "Analyze decisions from both courts (default)"
  STF: "Supremo Tribunal Federal only"
  STJ: "Superior Tribunal de Justiça only"

commands:
  generate_corpus: |
    sentencas generate --size 200 --seed 42

  basic_analysis: |
    sentencas analyze --terms "dano moral, inconstitucionalidade, indenização"

  filtered_analysis: |
    sentencas analyze --terms "prescrição" --tribunal STJ

  machine_readable: |
    sentencas analyze --terms "dano moral" --format yaml
    sentencas analyze --terms "dano moral" --format json --quiet

  list_corpora: |
    sentencas corpus list

  corpus_details: |
    sentencas corpus show <corpus_id>

  list_analyses: |
    sentencas analysis list

  analysis_details: |
    sentencas analysis show <analysis_id>

matching_rules:
  - "Terms are comma-separated; whitespace around each term is ignored"
  - "Matching is case-insensitive and whole-word only"
  - "Accented characters count as word characters (mérito never matches meritocracia)"
  - "Regex metacharacters in terms are matched literally"
  - "Overlapping terms count independently (moral also matches inside dano moral)"

storage:
  - "Corpora and analysis runs are stored in SQLite (sentencas.db next to the binary)"
  - "Override the location with --db or db_path in config.yaml"
  - "analyze reuses the most recent corpus unless --corpus is given"
  - "Without any stored corpus, analyze simulates and stores one first"

error_behavior:
  - "Empty or whitespace-only --terms: fails before any analysis runs"
  - "Zero matches or all-zero counts are valid no-result outputs, not errors"
`
