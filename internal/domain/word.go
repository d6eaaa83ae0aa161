package domain

import "time"

// Word represents a word-translation pair.
// Word is the foreign form the user is learning, Translation is the
// native one. Drill similarity is computed over the foreign form.
type Word struct {
	ID          int
	UserID      int64
	Word        string
	Translation string
	CreatedAt   time.Time
}
