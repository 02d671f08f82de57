package wallet

import (
	"context"
	"errors"
	"log"

	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Приветственный бонус новому игроку
var welcomeBonus = decimal.NewFromInt(1000)

const welcomeReference = "WELCOME"

// Deposit Пополняет баланс игрока
func (s *serv) Deposit(ctx context.Context, amount decimal.Decimal) (*model.Transaction, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	ledger := s.ledgers.Ledger(userID)
	tx, err := ledger.Credit(amount, model.TxDeposit, "", reference("DEP"))
	if err != nil {
		return nil, err
	}

	s.persist(ctx, userID, ledger.Balance(), tx)
	return tx, nil
}

// Withdraw Резервирует сумму под вывод: баланс уменьшается сразу,
// транзакция остаётся pending до внешнего подтверждения
func (s *serv) Withdraw(ctx context.Context, amount decimal.Decimal) (*model.Transaction, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	ledger := s.ledgers.Ledger(userID)
	tx, err := ledger.RequestWithdrawal(amount, reference("WD"))
	if err != nil {
		return nil, err
	}

	s.persist(ctx, userID, ledger.Balance(), tx)
	return tx, nil
}

// GrantWelcomeBonus Начисляет стартовый бонус свежезарегистрированному игроку
func (s *serv) GrantWelcomeBonus(ctx context.Context, userID int) error {
	ledger := s.ledgers.Ledger(userID)
	tx, err := ledger.Credit(welcomeBonus, model.TxBonus, "", welcomeReference)
	if err != nil {
		return err
	}

	s.persist(ctx, userID, ledger.Balance(), tx)
	return nil
}

// Hydrate Поднимает сохранённый снимок кошелька в память.
// Вызывается на логине; уже загруженный кошелёк не перетирается,
// чтобы не потерять операции текущей сессии
func (s *serv) Hydrate(ctx context.Context, userID int) error {
	ledger := s.ledgers.Ledger(userID)

	snap := ledger.Snapshot()
	if len(snap.Transactions) > 0 || !snap.Balance.IsZero() {
		return nil
	}

	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return err
	}

	txs, err := s.repo.ListTransactions(ctx, userID, hydrateTxLimit)
	if err != nil {
		return err
	}

	// В снимке транзакции хранятся старыми вперёд
	ordered := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		ordered[len(ordered)-1-i] = tx
	}

	ledger.Restore(model.WalletSnapshot{
		Balance:      balance,
		Transactions: ordered,
	})
	return nil
}

// Release Сохраняет баланс и выгружает кошелёк из памяти (на логауте)
func (s *serv) Release(ctx context.Context, userID int) error {
	ledger := s.ledgers.Ledger(userID)

	err := s.repo.UpsertBalance(ctx, userID, ledger.Balance())
	if err != nil {
		return err
	}

	s.ledgers.Drop(userID)
	return nil
}

// persist Сохраняет транзакцию и баланс одной транзакцией БД.
// Кошелёк в памяти авторитетен: сбой сохранения логируется
func (s *serv) persist(ctx context.Context, userID int, balance decimal.Decimal, tx *model.Transaction) {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.InsertTransaction(txCtx, userID, *tx); err != nil {
			return err
		}
		return s.repo.UpsertBalance(txCtx, userID, balance)
	})
	if err != nil {
		log.Println("failed to persist wallet state:", err)
	}
}
