package repository

import "time"

// Setting is a single key/value preference row.
type Setting struct {
	ID        string
	Key       string
	Value     string
	UpdatedAt time.Time
}

// ActivityProgress is the per-activity rollup shown in the Learn and
// Progress tabs. Stars is the best result so far, not the latest.
type ActivityProgress struct {
	ActivityID   string
	Stars        int
	BestScore    int
	RoundsPlayed int
	TutorialSeen bool
	UpdatedAt    time.Time
}

// Round records one finished practice round.
type Round struct {
	ID         string
	ActivityID string
	Difficulty string
	Correct    int
	Total      int
	Stars      int
	PlayedAt   time.Time
}
