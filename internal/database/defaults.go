package database

import (
	"context"
	"database/sql"

	"owlet/internal/content"
	"owlet/internal/database/repository"
)

// SeedDefaults ensures baseline settings and progress rows exist for new
// databases. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, difficulty, feedback string) error {
	settings := repository.NewSettingsRepo(db)
	existing, err := settings.All(ctx)
	if err != nil {
		return err
	}
	if _, ok := existing["difficulty"]; !ok {
		if err := settings.Upsert(ctx, "difficulty", difficulty); err != nil {
			return err
		}
	}
	if _, ok := existing["feedback"]; !ok {
		if err := settings.Upsert(ctx, "feedback", feedback); err != nil {
			return err
		}
	}

	for _, act := range content.Activities() {
		_, err := db.ExecContext(ctx, `
		INSERT OR IGNORE INTO activity_progress(activity_id, stars, best_score, rounds_played, tutorial_seen, updated_at)
		VALUES (?, 0, 0, 0, 0, CURRENT_TIMESTAMP)`, act.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
