package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// ProgressRepo handles activity progress and round history.
type ProgressRepo struct {
	db *sql.DB
}

func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// Get returns progress for one activity. A missing row comes back as a zero
// ActivityProgress with the ID filled in, so new activities need no special
// casing.
func (r *ProgressRepo) Get(ctx context.Context, activityID string) (ActivityProgress, error) {
	var p ActivityProgress
	var seen int
	err := r.db.QueryRowContext(ctx, `
	SELECT activity_id, stars, best_score, rounds_played, tutorial_seen, updated_at
	FROM activity_progress WHERE activity_id = ?`, activityID).
		Scan(&p.ActivityID, &p.Stars, &p.BestScore, &p.RoundsPlayed, &seen, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return ActivityProgress{ActivityID: activityID}, nil
	}
	if err != nil {
		return ActivityProgress{}, err
	}
	p.TutorialSeen = seen != 0
	return p, nil
}

func (r *ProgressRepo) All(ctx context.Context) (map[string]ActivityProgress, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT activity_id, stars, best_score, rounds_played, tutorial_seen, updated_at
	FROM activity_progress`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]ActivityProgress)
	for rows.Next() {
		var p ActivityProgress
		var seen int
		if err := rows.Scan(&p.ActivityID, &p.Stars, &p.BestScore, &p.RoundsPlayed, &seen, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.TutorialSeen = seen != 0
		out[p.ActivityID] = p
	}
	return out, rows.Err()
}

// RecordRound stores one finished round and folds it into the rollup.
// Stars and best score only ever go up. The rollup row is written first so
// the history row's foreign key always has a parent, even for an activity
// that has never been played.
func (r *ProgressRepo) RecordRound(ctx context.Context, round Round) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO activity_progress(activity_id, stars, best_score, rounds_played, tutorial_seen, updated_at)
	VALUES (?, ?, ?, 1, 0, CURRENT_TIMESTAMP)
	ON CONFLICT(activity_id) DO UPDATE SET
	 stars=MAX(stars, excluded.stars),
	 best_score=MAX(best_score, excluded.best_score),
	 rounds_played=rounds_played+1,
	 updated_at=CURRENT_TIMESTAMP;
	`, round.ActivityID, round.Stars, round.Correct)
	if err != nil {
		return err
	}

	if round.ID == "" {
		round.ID = uuid.New().String()
	}
	_, err = tx.ExecContext(ctx, `
	INSERT INTO round_history(id, activity_id, difficulty, correct, total, stars, played_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		round.ID, round.ActivityID, round.Difficulty, round.Correct, round.Total, round.Stars, round.PlayedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// MarkTutorialSeen records that the intro overlay for an activity was
// dismissed, so it is not shown again on the next visit.
func (r *ProgressRepo) MarkTutorialSeen(ctx context.Context, activityID string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO activity_progress(activity_id, stars, best_score, rounds_played, tutorial_seen, updated_at)
	VALUES (?, 0, 0, 0, 1, CURRENT_TIMESTAMP)
	ON CONFLICT(activity_id) DO UPDATE SET
	 tutorial_seen=1,
	 updated_at=CURRENT_TIMESTAMP;
	`, activityID)
	return err
}

// Recent returns the newest rounds across all activities, newest first.
func (r *ProgressRepo) Recent(ctx context.Context, limit int) ([]Round, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, activity_id, difficulty, correct, total, stars, played_at
	FROM round_history ORDER BY played_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Round
	for rows.Next() {
		var rd Round
		if err := rows.Scan(&rd.ID, &rd.ActivityID, &rd.Difficulty, &rd.Correct, &rd.Total, &rd.Stars, &rd.PlayedAt); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

// ResetAll wipes all progress and history. Used by the reset-progress
// command, not reachable from the TUI.
func (r *ProgressRepo) ResetAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM round_history`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM activity_progress`); err != nil {
		return err
	}
	return tx.Commit()
}
