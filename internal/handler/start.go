package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command and returns to the main menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if !authorized {
		// Request password
		h.ResetState(userID)
		return c.Send("Привет! Этот бот по паролю. Знаешь — вводи:")
	}

	// Leaving the menu drops any drill in progress
	h.drillService.Stop(userID)
	h.ResetState(userID)

	count, err := h.wordService.CountWords(userID)
	if err != nil {
		h.logger.Error("Failed to count words", zap.Error(err))
		count = 0
	}

	text := fmt.Sprintf("🏠 Главное меню\n\nСлов в копилке: %d\n\nОтправь слово, чтобы добавить пару, или выбери действие:", count)

	// Edit message if came from a callback, send new otherwise
	if c.Callback() != nil {
		if err := c.Edit(text, mainMenuMarkup()); err != nil {
			return h.handleEditError(err, c, userID)
		}
		return c.Respond()
	}
	return c.Send(text, mainMenuMarkup())
}
