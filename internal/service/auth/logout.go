package auth

import (
	"context"
	"log"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Узнаём владельца сессии до её удаления
	user, err := s.authRepo.GetUserBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}

	err = s.authRepo.DeleteSession(ctx, sessionID)
	if err != nil {
		return err
	}

	// Сохраняем баланс и выгружаем кошелёк из памяти
	if err := s.walletServ.Release(ctx, user.ID); err != nil {
		log.Println("failed to release wallet:", err)
	}

	return nil
}
