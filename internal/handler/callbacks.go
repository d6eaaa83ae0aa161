package handler

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// If message is not modified, it means it was already edited by another callback
	// Just acknowledge and return nil - don't send new message
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	// Log the error to understand why Edit failed
	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Handle specific button callbacks by Unique first
	switch callback.Unique {
	case "random_pair", "more":
		return h.handleRandomPair(c)
	case "drill_static":
		return h.handleDrillStatic(c)
	case "drill_progressive":
		return h.handleDrillProgressive(c)
	case "drill_stop":
		return h.handleDrillStop(c)
	case "ans_ok":
		return h.handleAnswerCorrect(c)
	case "ans_no":
		return h.handleAnswerWrong(c)
	case "cancel":
		return h.handleCancel(c)
	case "main_menu":
		return h.handleStart(c)
	}

	// If Unique is empty, try to handle by Data (for buttons with Unique that didn't come through)
	if callback.Unique == "" {
		switch data {
		case "random_pair", "more":
			return h.handleRandomPair(c)
		case "drill_static":
			return h.handleDrillStatic(c)
		case "drill_progressive":
			return h.handleDrillProgressive(c)
		case "drill_stop":
			return h.handleDrillStop(c)
		case "ans_ok":
			return h.handleAnswerCorrect(c)
		case "ans_no":
			return h.handleAnswerWrong(c)
		case "cancel":
			return h.handleCancel(c)
		case "main_menu":
			return h.handleStart(c)
		}
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleRandomPair shows one random saved pair
func (h *Handler) handleRandomPair(c tele.Context) error {
	userID := c.Sender().ID

	word, err := h.wordService.GetRandomPair(userID)
	if err != nil {
		h.logger.Error("Failed to get random pair", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
	}

	if word == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "У тебя пока нет сохранённых слов",
			ShowAlert: true,
		})
	}

	text := fmt.Sprintf("🎲 %s — %s", word.Word, word.Translation)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnMore),
		markup.Row(btnMainMenu),
	)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handled := h.handleEditError(err, c, userID); handled == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleCancel aborts the add-pair flow
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	if err := c.Edit("Отменено"); err != nil {
		if handled := h.handleEditError(err, c, userID); handled == nil {
			return nil
		}
	}
	return h.handleStart(c)
}
