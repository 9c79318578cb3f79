package store

import (
	"context"

	"github.com/verte-zerg/typemaster/internal/model"
)

// InsertGameResult stores a finished game and returns its id.
func (s *Store) InsertGameResult(ctx context.Context, g model.GameResult) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO game_results
		(user_id, played_at, score, words_typed, level, accuracy, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.UserID, formatTime(g.PlayedAt), g.Score, g.WordsTyped, g.Level, g.Accuracy, g.DurationSeconds,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListGameResults returns the games of a user, newest first. A positive
// limit caps the number of rows.
func (s *Store) ListGameResults(ctx context.Context, userID string, limit int) ([]model.GameResult, error) {
	query := `SELECT id, user_id, played_at, score, words_typed, level, accuracy, duration_seconds
		FROM game_results WHERE user_id = ? ORDER BY played_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)
	var results []model.GameResult
	for rows.Next() {
		var (
			g        model.GameResult
			playedAt string
		)
		if err := rows.Scan(&g.ID, &g.UserID, &playedAt, &g.Score, &g.WordsTyped, &g.Level, &g.Accuracy, &g.DurationSeconds); err != nil {
			return nil, err
		}
		g.PlayedAt, err = parseTime(playedAt)
		if err != nil {
			return nil, err
		}
		results = append(results, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// BestGameScore returns the highest score of a user, or 0 without games.
func (s *Store) BestGameScore(ctx context.Context, userID string) (int, error) {
	var best int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(score), 0) FROM game_results WHERE user_id = ?`, userID).Scan(&best)
	return best, err
}
