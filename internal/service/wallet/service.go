package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/repository"
	"gamehall_backend/internal/service"
	walletcore "gamehall_backend/internal/wallet"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

// Количество транзакций, поднимаемых из БД при восстановлении кошелька
const hydrateTxLimit = 100

type serv struct {
	ledgers   *walletcore.Registry
	repo      repository.WalletRepository
	txManager trm.Manager
}

// NewWalletService Создать сервис кошелька
func NewWalletService(
	ledgers *walletcore.Registry,
	repo repository.WalletRepository,
	txManager trm.Manager,
) service.WalletService {
	return &serv{
		ledgers:   ledgers,
		repo:      repo,
		txManager: txManager,
	}
}

// Balance Текущий баланс игрока
func (s *serv) Balance(ctx context.Context) (decimal.Decimal, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return decimal.Zero, errors.New("user id not found in context")
	}
	return s.ledgers.Ledger(userID).Balance(), nil
}

// Transactions История транзакций игрока, новые первыми
func (s *serv) Transactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	txs := s.ledgers.Ledger(userID).Transactions()
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

// reference Генерирует метку операции вида DEP123456 / WD123456
func reference(prefix string) string {
	return fmt.Sprintf("%s%06d", prefix, rand.Intn(1000000))
}
