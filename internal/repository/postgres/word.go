package postgres

import (
	"database/sql"

	"contraster/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SaveWord saves a word-translation pair
func (r *WordRepo) SaveWord(userID int64, word, translation string) error {
	query := `
		INSERT INTO words (user_id, word, translation)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, word, translation)
	return err
}

// GetRandomWord returns a random word for the user
func (r *WordRepo) GetRandomWord(userID int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT id, user_id, word, translation, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&w.ID, &w.UserID, &w.Word, &w.Translation, &w.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// GetAllWords returns the user's full word pool, oldest first.
// The drill engine does its own shuffling, the order here only has to
// be stable.
func (r *WordRepo) GetAllWords(userID int64) ([]*domain.Word, error) {
	query := `
		SELECT id, user_id, word, translation, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []*domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.UserID, &w.Word, &w.Translation, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, &w)
	}

	return words, rows.Err()
}

// CountWords returns the number of saved words for the user
func (r *WordRepo) CountWords(userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM words WHERE user_id = $1`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// CleanOldWords deletes words older than specified days
func (r *WordRepo) CleanOldWords(days int) error {
	query := `
		DELETE FROM words
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
