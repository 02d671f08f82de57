package auth

import (
	"gamehall_backend/internal/config"
	"gamehall_backend/internal/repository"
	"gamehall_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager  trm.Manager
	userRepo   repository.UserRepository
	authRepo   repository.AuthRepository
	jwtConfig  config.JWTConfig
	walletServ service.WalletService
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	walletServ service.WalletService,
) service.AuthService {
	return &serv{
		txManager:  txManager,
		userRepo:   userRepo,
		authRepo:   authRepo,
		jwtConfig:  jwtConfig,
		walletServ: walletServ,
	}
}

// generateSessionID Генерирует идентификатор сессии
func generateSessionID() string {
	return uuid.NewString()
}
