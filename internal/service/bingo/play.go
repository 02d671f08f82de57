package bingo

import (
	"context"
	"errors"

	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/service"

	"github.com/shopspring/decimal"
)

// Play Проводит партию по активной карточке через координатор.
// Замок сервиса удерживается на весь раунд: пока идёт розыгрыш,
// отметки на карточке менять нельзя
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

	return s.coord.Play(ctx, userID, sess, bet)
}
