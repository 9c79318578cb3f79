package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/typemaster/internal/model"
)

// AttemptFilter narrows attempt queries.
type AttemptFilter struct {
	UserID  string
	LevelID *int
	Since   *time.Time
	Passed  *bool
	Last    int
}

// InsertAttempt stores a finished session and returns its id.
func (s *Store) InsertAttempt(ctx context.Context, a model.Attempt) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO attempts
		(user_id, level_id, started_at, ended_at, chars, errors, wpm, accuracy, elapsed_seconds, passed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.UserID, a.LevelID, formatTime(a.StartedAt), formatTime(a.EndedAt),
		a.Chars, a.Errors, a.WPM, a.Accuracy, a.ElapsedSeconds, boolInt(a.Passed),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAttempts returns attempts matching filter in chronological order.
// When Last is set only the most recent Last attempts are returned.
func (s *Store) ListAttempts(ctx context.Context, filter AttemptFilter) ([]model.Attempt, error) {
	base := `SELECT id, user_id, level_id, started_at, ended_at, chars, errors, wpm, accuracy, elapsed_seconds, passed
		FROM attempts`
	where := []string{"user_id = ?"}
	args := []any{filter.UserID}
	if filter.LevelID != nil {
		where = append(where, "level_id = ?")
		args = append(args, *filter.LevelID)
	}
	if filter.Since != nil {
		where = append(where, "ended_at >= ?")
		args = append(args, formatTime(*filter.Since))
	}
	if filter.Passed != nil {
		where = append(where, "passed = ?")
		args = append(args, boolInt(*filter.Passed))
	}
	query := base + " WHERE " + strings.Join(where, " AND ")
	if filter.Last > 0 {
		query = fmt.Sprintf("SELECT * FROM (%s ORDER BY ended_at DESC, id DESC LIMIT %d) ORDER BY ended_at ASC, id ASC", query, filter.Last)
	} else {
		query += " ORDER BY ended_at ASC, id ASC"
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)
	var attempts []model.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attempts, nil
}

// FirstPassingAttempts returns the earliest passing attempt per level.
func (s *Store) FirstPassingAttempts(ctx context.Context, userID string) (map[int]model.Attempt, error) {
	passed := true
	attempts, err := s.ListAttempts(ctx, AttemptFilter{UserID: userID, Passed: &passed})
	if err != nil {
		return nil, err
	}
	first := make(map[int]model.Attempt)
	for _, a := range attempts {
		if a.LevelID == 0 {
			continue
		}
		if _, ok := first[a.LevelID]; !ok {
			first[a.LevelID] = a
		}
	}
	return first, nil
}

func scanAttempt(rows *sql.Rows) (model.Attempt, error) {
	var (
		a       model.Attempt
		started string
		ended   string
	)
	if err := rows.Scan(&a.ID, &a.UserID, &a.LevelID, &started, &ended, &a.Chars, &a.Errors,
		&a.WPM, &a.Accuracy, &a.ElapsedSeconds, &a.Passed); err != nil {
		return model.Attempt{}, err
	}
	var err error
	a.StartedAt, err = parseTime(started)
	if err != nil {
		return model.Attempt{}, err
	}
	a.EndedAt, err = parseTime(ended)
	if err != nil {
		return model.Attempt{}, err
	}
	return a, nil
}
