package repository

import (
	"context"

	"gamehall_backend/internal/model"

	"github.com/shopspring/decimal"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshHash string, err error)
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// WalletRepository Персистентность кошелька: ядро само в БД не ходит,
// сервисный слой сохраняет снимки и транзакции через этот интерфейс
type WalletRepository interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
	UpsertBalance(ctx context.Context, userID int, balance decimal.Decimal) error
	InsertTransaction(ctx context.Context, userID int, tx model.Transaction) error
	// ListTransactions Возвращает транзакции пользователя, новые первыми
	ListTransactions(ctx context.Context, userID int, limit int) ([]model.Transaction, error)
}
