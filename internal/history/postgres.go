// internal/history/postgres.go
package history

import (
	"context"
	"database/sql"
	"fmt"

	"globalmind/internal/common/database"
)

const insertQuery = `
	INSERT INTO query_history
		(request_id, query, language, intent, confidence, processing_time_ms, cultural_matches, real_world_used, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const aggregateQuery = `
	SELECT
		COUNT(*),
		COALESCE(AVG(confidence), 0),
		COALESCE(AVG(CASE WHEN cultural_matches > 0 THEN 1.0 ELSE 0.0 END), 0),
		COALESCE(AVG(processing_time_ms), 0)
	FROM query_history`

const byLanguageQuery = `
	SELECT language, COUNT(*)
	FROM query_history
	GROUP BY language`

// PostgresStore persists query stats to the query_history table.
type PostgresStore struct {
	db *database.PostgresClient
}

func NewPostgresStore(db *database.PostgresClient) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Add(ctx context.Context, rec Record) error {
	_, err := s.db.Exec(ctx, insertQuery,
		rec.RequestID,
		rec.Query,
		string(rec.Language),
		string(rec.Intent),
		rec.Confidence,
		rec.ProcessingTimeMs,
		rec.CulturalMatches,
		rec.RealWorldUsed,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert query history: %w", err)
	}
	return nil
}

func (s *PostgresStore) Aggregates(ctx context.Context) (*Aggregates, error) {
	agg := &Aggregates{
		QueriesByLanguage: make(map[string]int64),
	}

	row := s.db.QueryRow(ctx, aggregateQuery)
	if err := row.Scan(
		&agg.TotalQueries,
		&agg.AverageAccuracy,
		&agg.CulturalRelevance,
		&agg.AverageResponseTimeMs,
	); err != nil {
		if err == sql.ErrNoRows {
			return agg, nil
		}
		return nil, fmt.Errorf("aggregate query history: %w", err)
	}

	rows, err := s.db.Query(ctx, byLanguageQuery)
	if err != nil {
		return nil, fmt.Errorf("aggregate by language: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lang string
		var n int64
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, fmt.Errorf("scan language row: %w", err)
		}
		agg.QueriesByLanguage[lang] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate language rows: %w", err)
	}
	return agg, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
