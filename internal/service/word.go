package service

import (
	"fmt"

	"contraster/internal/domain"
	"contraster/internal/repository"
)

// MinDrillWords is the smallest pool a drill session accepts. Three
// words is the engine's hard floor, one extra keeps distractor choice
// from collapsing to "the only other two words" on every trial.
const MinDrillWords = 4

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// SaveWordPair saves a word-translation pair
func (s *WordService) SaveWordPair(userID int64, word, translation string) error {
	if word == "" || translation == "" {
		return fmt.Errorf("word and translation cannot be empty")
	}
	return s.wordRepo.SaveWord(userID, word, translation)
}

// GetRandomPair returns a random word-translation pair
func (s *WordService) GetRandomPair(userID int64) (*domain.Word, error) {
	return s.wordRepo.GetRandomWord(userID)
}

// CountWords returns how many words the user has saved
func (s *WordService) CountWords(userID int64) (int, error) {
	return s.wordRepo.CountWords(userID)
}
