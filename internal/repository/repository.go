package repository

import (
	"contraster/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// WordRepository defines word data operations
type WordRepository interface {
	SaveWord(userID int64, word, translation string) error
	GetRandomWord(userID int64) (*domain.Word, error)
	GetAllWords(userID int64) ([]*domain.Word, error)
	CountWords(userID int64) (int, error)
	CleanOldWords(days int) error
}
