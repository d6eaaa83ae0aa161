package handler

import (
	"sync"

	"contraster/internal/domain"
	"contraster/internal/middleware"
	"contraster/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	wordService  *service.WordService
	drillService *service.DrillService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	wordService *service.WordService,
	drillService *service.DrillService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		wordService:  wordService,
		drillService: drillService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers.
// Drill entry points sit behind the auth middleware; the plain text
// path stays open so the password can come through it.
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/drill", h.handleDrillCommand, auth)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnRandomPair, h.handleRandomPair, auth)
	h.bot.Handle(&btnMore, h.handleRandomPair, auth)
	h.bot.Handle(&btnDrill, h.handleDrillStatic, auth)
	h.bot.Handle(&btnDrillHard, h.handleDrillProgressive, auth)
	h.bot.Handle(&btnDrillStop, h.handleDrillStop, auth)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnRandomPair = tele.Btn{
		Unique: "random_pair",
		Text:   "🎲 Случайная пара",
	}
	btnMore = tele.Btn{
		Unique: "more",
		Text:   "🔄 Ещё",
	}
	btnDrill = tele.Btn{
		Unique: "drill_static",
		Text:   "⚔️ Контраст-дрилл",
	}
	btnDrillHard = tele.Btn{
		Unique: "drill_progressive",
		Text:   "📈 Дрилл по нарастающей",
	}
	btnDrillStop = tele.Btn{
		Unique: "drill_stop",
		Text:   "🏳️ Завершить",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Отменить",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnRandomPair),
		menu.Row(btnDrill),
		menu.Row(btnDrillHard),
	)
	return menu
}
