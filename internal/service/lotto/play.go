package lotto

import (
	"context"
	"errors"

	"gamehall_backend/internal/game"
	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/service"

	"github.com/shopspring/decimal"
)

// Play Покупает билет: списывает ставку и проводит тираж через координатор.
// Билет должен быть заполнен полностью (6 основных + 1 бонусное).
// Замок сервиса удерживается на весь раунд: пока идёт тираж,
// состав билета менять нельзя
func (s *serv) Play(ctx context.Context, bet decimal.Decimal) (*model.Outcome, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, service.ErrNoActiveSession
	}

	// Неполный билет отсекаем до списания ставки
	if sess.IsOpen() &&
		(len(sess.MainSelected()) != s.cfg.MainPicks() || len(sess.BonusSelected()) != s.cfg.BonusPicks()) {
		return nil, game.ErrIncompleteTicket
	}

	return s.coord.Play(ctx, userID, sess, bet)
}
