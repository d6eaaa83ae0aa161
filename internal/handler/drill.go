package handler

import (
	"fmt"
	"math/rand"

	"contraster/internal/domain"
	"contraster/internal/exercise"
	"contraster/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleDrillCommand handles /drill [hard]
func (h *Handler) handleDrillCommand(c tele.Context) error {
	if c.Message() != nil && c.Message().Payload == "hard" {
		return h.startDrill(c, service.DrillProgressive)
	}
	return h.startDrill(c, service.DrillStatic)
}

// handleDrillStatic starts a fixed-level drill from the menu button
func (h *Handler) handleDrillStatic(c tele.Context) error {
	return h.startDrill(c, service.DrillStatic)
}

// handleDrillProgressive starts a drill that walks the level schedule
func (h *Handler) handleDrillProgressive(c tele.Context) error {
	return h.startDrill(c, service.DrillProgressive)
}

func (h *Handler) startDrill(c tele.Context, mode service.DrillMode) error {
	userID := c.Sender().ID

	trial, err := h.drillService.Start(userID, mode)
	if err != nil {
		h.logger.Warn("Failed to start drill",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("mode", string(mode)),
		)
		msg := fmt.Sprintf("Для дрилла нужно минимум %d слов. Добавь ещё и возвращайся!", service.MinDrillWords)
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: msg, ShowAlert: true})
		}
		return c.Send(msg)
	}

	h.SetState(userID, &domain.StateData{State: domain.StateDrilling})

	return h.sendTrial(c, trial)
}

// handleDrillStop ends the session early
func (h *Handler) handleDrillStop(c tele.Context) error {
	h.drillService.Stop(c.Sender().ID)
	return h.handleStart(c)
}

// handleAnswerCorrect moves the drill forward after a right answer
func (h *Handler) handleAnswerCorrect(c tele.Context) error {
	userID := c.Sender().ID

	trial, err := h.drillService.Next(userID)
	if err != nil {
		// Session vanished (restart, timeout cleanup); back to menu
		h.logger.Warn("Answer without active drill", zap.Int64("user_id", userID))
		return h.handleStart(c)
	}

	if trial == nil {
		// All rounds played
		h.ResetState(userID)
		menu := &tele.ReplyMarkup{}
		menu.Inline(menu.Row(btnDrill), menu.Row(btnMainMenu))
		if err := c.Edit("🏁 Дрилл завершён! Все раунды пройдены.", menu); err != nil {
			return h.handleEditError(err, c, userID)
		}
		return c.Respond(&tele.CallbackResponse{Text: "✅ Верно!"})
	}

	if err := c.Respond(&tele.CallbackResponse{Text: "✅ Верно!"}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.sendTrial(c, trial)
}

// handleAnswerWrong only acknowledges; the user keeps guessing on the
// same trial
func (h *Handler) handleAnswerWrong(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: "❌ Мимо, попробуй ещё"})
}

// sendTrial renders one trial: the native translation as the question,
// the three foreign forms as buttons in random order
func (h *Handler) sendTrial(c tele.Context, trial *exercise.Trial) error {
	userID := c.Sender().ID

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(trial.Pairs)+1)

	order := rand.Perm(len(trial.Pairs))
	for _, i := range order {
		unique := "ans_no"
		if i == 0 {
			unique = "ans_ok"
		}
		rows = append(rows, markup.Row(markup.Data(trial.Pairs[i].Word, unique)))
	}
	rows = append(rows, markup.Row(btnDrillStop))
	markup.Inline(rows...)

	text := fmt.Sprintf("%s Как будет «%s»?", levelBadge(trial.Level), trial.Pairs[0].Translation)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handled := h.handleEditError(err, c, userID); handled == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return nil
	}
	return c.Send(text, markup)
}

// levelBadge marks how treacherous the distractors are
func levelBadge(level int) string {
	switch level {
	case exercise.LevelVerySimilar:
		return "🔴"
	case exercise.LevelSimilar:
		return "🟡"
	default:
		return "🟢"
	}
}
