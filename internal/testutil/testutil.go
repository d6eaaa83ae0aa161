package testutil

import (
	"time"

	"contraster/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestWord creates a test word
func NewTestWord(id int, userID int64, word, translation string) *domain.Word {
	return &domain.Word{
		ID:          id,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// NewTestWords creates a pool of test words from foreign forms,
// translations derived mechanically
func NewTestWords(userID int64, forms ...string) []*domain.Word {
	words := make([]*domain.Word, len(forms))
	for i, f := range forms {
		words[i] = NewTestWord(i+1, userID, f, "перевод-"+f)
	}
	return words
}
