package service

import (
	"contraster/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles retention cleanup
type StatsService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(wordRepo repository.WordRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// CleanupOldData removes words older than 60 days. Stale pairs only
// pollute the drill pool, the exercise is meant for recent vocabulary.
func (s *StatsService) CleanupOldData() error {
	const retentionDays = 60

	s.logger.Info("Starting cleanup of old words", zap.Int("retention_days", retentionDays))

	err := s.wordRepo.CleanOldWords(retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old words", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
