package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/verte-zerg/typemaster/internal/model"
)

const currentUserKey = "current_user_id"

const userColumns = `id, email, username, first_name, last_name, token, password_hash, created_at,
	current_level, lessons_completed, aggregate_wpm, aggregate_accuracy, total_time_seconds,
	sound_enabled, auto_save, show_tips, keyboard_layout`

// CreateUser inserts a new account with its progress and settings.
func (s *Store) CreateUser(ctx context.Context, u model.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)
	_, err = tx.ExecContext(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.Token, u.PasswordHash, formatTime(u.CreatedAt),
		u.Progress.CurrentLevel, u.Progress.Stats.LessonsCompleted, u.Progress.Stats.AggregateWPM,
		u.Progress.Stats.AggregateAccuracy, u.Progress.Stats.TotalTimeSeconds,
		boolInt(u.Settings.SoundEnabled), boolInt(u.Settings.AutoSave), boolInt(u.Settings.ShowTips),
		u.Settings.KeyboardLayout,
	)
	if err != nil {
		return err
	}
	if err := writeCompleted(ctx, tx, u.ID, u.Progress.CompletedLevels); err != nil {
		return err
	}
	return tx.Commit()
}

// UserByID loads an account by id.
func (s *Store) UserByID(ctx context.Context, id string) (model.User, error) {
	return s.userWhere(ctx, "id = ?", id)
}

// UserByToken loads an account by sign-in token.
func (s *Store) UserByToken(ctx context.Context, token string) (model.User, error) {
	return s.userWhere(ctx, "token = ?", token)
}

// UserByEmail loads an account by email address.
func (s *Store) UserByEmail(ctx context.Context, email string) (model.User, error) {
	return s.userWhere(ctx, "email = ?", email)
}

// UserByUsername loads an account by username.
func (s *Store) UserByUsername(ctx context.Context, username string) (model.User, error) {
	return s.userWhere(ctx, "username = ?", username)
}

// ListUsers returns every account ordered by creation time.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, username`)
	if err != nil {
		return nil, err
	}
	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			closeRows(rows)
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		closeRows(rows)
		return nil, err
	}
	closeRows(rows)
	for i := range users {
		completed, err := readCompleted(ctx, s.db, users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Progress.CompletedLevels = completed
	}
	return users, nil
}

// UpdateToken replaces the sign-in token of an account.
func (s *Store) UpdateToken(ctx context.Context, userID, token string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET token = ? WHERE id = ?`, token, userID)
	if err != nil {
		return err
	}
	return expectRow(res, userID)
}

// UpdateProfile replaces the editable name fields of an account.
func (s *Store) UpdateProfile(ctx context.Context, userID, firstName, lastName string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET first_name = ?, last_name = ? WHERE id = ?`,
		firstName, lastName, userID)
	if err != nil {
		return err
	}
	return expectRow(res, userID)
}

// UpdateSettings replaces the preferences of an account.
func (s *Store) UpdateSettings(ctx context.Context, userID string, st model.Settings) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users
		SET sound_enabled = ?, auto_save = ?, show_tips = ?, keyboard_layout = ?
		WHERE id = ?`,
		boolInt(st.SoundEnabled), boolInt(st.AutoSave), boolInt(st.ShowTips), st.KeyboardLayout, userID)
	if err != nil {
		return err
	}
	return expectRow(res, userID)
}

// DeleteUser removes an account and its history.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)
	for _, stmt := range []string{
		`DELETE FROM completed_levels WHERE user_id = ?`,
		`DELETE FROM attempts WHERE user_id = ?`,
		`DELETE FROM game_results WHERE user_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
			return err
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	if err := expectRow(res, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM app_state WHERE key = ? AND value = ?`, currentUserKey, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// SetCurrentUserID records the signed-in account. An empty id signs out.
func (s *Store) SetCurrentUserID(ctx context.Context, userID string) error {
	if userID == "" {
		_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, currentUserKey)
		return err
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, currentUserKey, userID)
	return err
}

// CurrentUserID returns the signed-in account id, or "" when signed out.
func (s *Store) CurrentUserID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, currentUserKey).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

// GetProgress loads the progression record of an account.
func (s *Store) GetProgress(ctx context.Context, userID string) (model.UserProgress, error) {
	return readProgress(ctx, s.db, userID)
}

// UpdateProgress applies fn to the stored record inside one transaction.
func (s *Store) UpdateProgress(ctx context.Context, userID string, fn func(model.UserProgress) model.UserProgress) (model.UserProgress, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.UserProgress{}, err
	}
	defer rollback(tx)
	cur, err := readProgress(ctx, tx, userID)
	if err != nil {
		return model.UserProgress{}, err
	}
	next := fn(cur)
	_, err = tx.ExecContext(ctx, `UPDATE users
		SET current_level = ?, lessons_completed = ?, aggregate_wpm = ?, aggregate_accuracy = ?, total_time_seconds = ?
		WHERE id = ?`,
		next.CurrentLevel, next.Stats.LessonsCompleted, next.Stats.AggregateWPM,
		next.Stats.AggregateAccuracy, next.Stats.TotalTimeSeconds, userID)
	if err != nil {
		return model.UserProgress{}, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM completed_levels WHERE user_id = ?`, userID); err != nil {
		return model.UserProgress{}, err
	}
	if err := writeCompleted(ctx, tx, userID, next.CompletedLevels); err != nil {
		return model.UserProgress{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.UserProgress{}, err
	}
	return next, nil
}

func (s *Store) userWhere(ctx context.Context, where string, arg any) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("user %v: %w", arg, model.ErrNotFound)
	}
	if err != nil {
		return model.User{}, err
	}
	completed, err := readCompleted(ctx, s.db, u.ID)
	if err != nil {
		return model.User{}, err
	}
	u.Progress.CompletedLevels = completed
	return u, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (model.User, error) {
	var (
		u         model.User
		createdAt string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.Token, &u.PasswordHash, &createdAt,
		&u.Progress.CurrentLevel, &u.Progress.Stats.LessonsCompleted, &u.Progress.Stats.AggregateWPM,
		&u.Progress.Stats.AggregateAccuracy, &u.Progress.Stats.TotalTimeSeconds,
		&u.Settings.SoundEnabled, &u.Settings.AutoSave, &u.Settings.ShowTips, &u.Settings.KeyboardLayout,
	)
	if err != nil {
		return model.User{}, err
	}
	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func readProgress(ctx context.Context, q queryer, userID string) (model.UserProgress, error) {
	var p model.UserProgress
	err := q.QueryRowContext(ctx, `SELECT current_level, lessons_completed, aggregate_wpm, aggregate_accuracy, total_time_seconds
		FROM users WHERE id = ?`, userID).Scan(
		&p.CurrentLevel, &p.Stats.LessonsCompleted, &p.Stats.AggregateWPM,
		&p.Stats.AggregateAccuracy, &p.Stats.TotalTimeSeconds,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserProgress{}, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}
	if err != nil {
		return model.UserProgress{}, err
	}
	p.CompletedLevels, err = readCompleted(ctx, q, userID)
	if err != nil {
		return model.UserProgress{}, err
	}
	return p, nil
}

func readCompleted(ctx context.Context, q queryer, userID string) ([]int, error) {
	rows, err := q.QueryContext(ctx, `SELECT level_id FROM completed_levels WHERE user_id = ? ORDER BY level_id`, userID)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)
	completed := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		completed = append(completed, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return completed, nil
}

func writeCompleted(ctx context.Context, q queryer, userID string, ids []int) error {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	for _, id := range sorted {
		if _, err := q.ExecContext(ctx, `INSERT OR IGNORE INTO completed_levels (user_id, level_id) VALUES (?, ?)`, userID, id); err != nil {
			return err
		}
	}
	return nil
}

func expectRow(res sql.Result, userID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}
	return nil
}
