package service

import (
	"fmt"
	"sync"

	"contraster/internal/exercise"
	"contraster/internal/levenshtein"
	"contraster/internal/repository"

	"go.uber.org/zap"
)

// DrillMode selects the level policy for a session
type DrillMode string

const (
	// DrillStatic keeps every round at the dissimilar level
	DrillStatic DrillMode = "static"
	// DrillProgressive walks the configured level schedule round by round
	DrillProgressive DrillMode = "progressive"
)

// DrillService runs contrasting drill sessions, one engine per user.
// Engines are single-caller by design; the service serializes access
// so overlapping bot callbacks cannot interleave two trial requests
// on the same session.
type DrillService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger

	rounds   int
	schedule []int

	mu       sync.Mutex
	sessions map[int64]*exercise.Engine
}

// NewDrillService creates a new drill service. rounds and schedule
// come from config; config validation guarantees the schedule covers
// every round.
func NewDrillService(wordRepo repository.WordRepository, logger *zap.Logger, rounds int, schedule []int) *DrillService {
	return &DrillService{
		wordRepo: wordRepo,
		logger:   logger,
		rounds:   rounds,
		schedule: schedule,
		sessions: make(map[int64]*exercise.Engine),
	}
}

// Start begins a new drill session for the user, replacing any session
// already in progress, and returns the first trial.
func (s *DrillService) Start(userID int64, mode DrillMode) (*exercise.Trial, error) {
	words, err := s.wordRepo.GetAllWords(userID)
	if err != nil {
		return nil, err
	}
	if len(words) < MinDrillWords {
		return nil, fmt.Errorf("not enough words for a drill: have %d, need %d", len(words), MinDrillWords)
	}

	var eng *exercise.Engine
	switch mode {
	case DrillProgressive:
		eng, err = exercise.NewProgressive(words, s.rounds, s.schedule, levenshtein.Distance)
	default:
		eng, err = exercise.NewStatic(words, s.rounds, levenshtein.Distance)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[userID] = eng
	trial := eng.Advance()
	s.mu.Unlock()

	s.logger.Info("Drill session started",
		zap.Int64("user_id", userID),
		zap.String("mode", string(mode)),
		zap.Int("pool_size", eng.PoolSize()),
		zap.Int("rounds", s.rounds),
	)

	return trial, nil
}

// Next returns the next trial of the user's session. A nil trial with
// nil error means the session ran all its rounds; the session is
// removed. Calling Next without an active session is an error.
func (s *DrillService) Next(userID int64) (*exercise.Trial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, ok := s.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("no active drill session for user %d", userID)
	}

	trial := eng.Advance()
	if trial == nil {
		delete(s.sessions, userID)
		s.logger.Info("Drill session finished",
			zap.Int64("user_id", userID),
			zap.Int("pool_size", eng.PoolSize()),
		)
	}

	return trial, nil
}

// Stop drops the user's session if one is active
func (s *DrillService) Stop(userID int64) {
	s.mu.Lock()
	_, active := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if active {
		s.logger.Info("Drill session stopped", zap.Int64("user_id", userID))
	}
}

// Active reports whether the user has a session in progress
func (s *DrillService) Active(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	return ok
}
