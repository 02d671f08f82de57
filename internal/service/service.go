package service

import (
	"context"
	"errors"

	"gamehall_backend/internal/model"

	"github.com/shopspring/decimal"
)

// ErrNoActiveSession У игрока нет активной сессии этой игры
var ErrNoActiveSession = errors.New("no active game session")

type KenoService interface {
	NewSession(ctx context.Context) (*model.KenoState, error)
	Select(ctx context.Context, number int) (*model.KenoState, error)
	Deselect(ctx context.Context, number int) (*model.KenoState, error)
	Clear(ctx context.Context) (*model.KenoState, error)
	State(ctx context.Context) (*model.KenoState, error)
	Play(ctx context.Context, bet decimal.Decimal) (*model.Outcome, error)
}

type BingoService interface {
	NewSession(ctx context.Context) (*model.BingoState, error)
	Mark(ctx context.Context, row, col int) (*model.BingoState, error)
	Unmark(ctx context.Context, row, col int) (*model.BingoState, error)
	Clear(ctx context.Context) (*model.BingoState, error)
	State(ctx context.Context) (*model.BingoState, error)
	Play(ctx context.Context, bet decimal.Decimal) (*model.Outcome, error)
}

type LottoService interface {
	NewSession(ctx context.Context) (*model.LottoState, error)
	SelectMain(ctx context.Context, number int) (*model.LottoState, error)
	SelectBonus(ctx context.Context, number int) (*model.LottoState, error)
	DeselectMain(ctx context.Context, number int) (*model.LottoState, error)
	DeselectBonus(ctx context.Context, number int) (*model.LottoState, error)
	QuickPick(ctx context.Context) (*model.LottoState, error)
	Clear(ctx context.Context) (*model.LottoState, error)
	State(ctx context.Context) (*model.LottoState, error)
	Play(ctx context.Context, bet decimal.Decimal) (*model.Outcome, error)
}

type WalletService interface {
	Deposit(ctx context.Context, amount decimal.Decimal) (*model.Transaction, error)
	Withdraw(ctx context.Context, amount decimal.Decimal) (*model.Transaction, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
	Transactions(ctx context.Context, limit int) ([]model.Transaction, error)

	// Hydrate Загружает сохранённый снимок кошелька в память (на логине)
	Hydrate(ctx context.Context, userID int) error
	// GrantWelcomeBonus Начисляет приветственный бонус новому игроку
	GrantWelcomeBonus(ctx context.Context, userID int) error
	// Release Сохраняет баланс и выгружает кошелёк из памяти (на логауте)
	Release(ctx context.Context, userID int) error
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
