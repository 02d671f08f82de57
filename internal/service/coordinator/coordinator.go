package coordinator

import (
	"context"
	"errors"
	"log"
	"sync"

	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/game"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/repository"
	"gamehall_backend/internal/wallet"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

// ErrInvalidWager Ставка вне допустимого диапазона [minBet, maxBet]
var ErrInvalidWager = errors.New("wager is out of allowed bet range")

// refundReference Пометка компенсирующего начисления при сбое розыгрыша
const refundReference = "refund"

// Coordinator Проводит цикл ставка -> розыгрыш -> расчёт.
// Единственный компонент, которому разрешено дергать и кошелёк, и сессию.
// Порядок шагов несущий: списание до розыгрыша, розыгрыш до начисления —
// игрок не может получить тираж не заплатив, и кошелёк не получает
// выигрыш по сессии без ставки
type Coordinator struct {
	ledgers    *wallet.Registry
	provider   draw.Provider
	walletRepo repository.WalletRepository
	txManager  trm.Manager

	// Не больше одного активного розыгрыша на кошелёк
	mtx       sync.Mutex
	playLocks map[int]*sync.Mutex
}

func New(
	ledgers *wallet.Registry,
	provider draw.Provider,
	walletRepo repository.WalletRepository,
	txManager trm.Manager,
) *Coordinator {
	return &Coordinator{
		ledgers:    ledgers,
		provider:   provider,
		walletRepo: walletRepo,
		txManager:  txManager,
		playLocks:  make(map[int]*sync.Mutex),
	}
}

// playLock Возвращает замок розыгрышей для конкретного игрока
func (c *Coordinator) playLock(userID int) *sync.Mutex {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	l, ok := c.playLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		c.playLocks[userID] = l
	}
	return l
}

// Play Принимает ставку по открытой сессии и доводит раунд до расчёта.
// При нехватке средств сессия остаётся открытой и ничего не меняется.
// После успешного списания откат невозможен: сбой розыгрыша
// компенсируется обратным начислением ставки
func (c *Coordinator) Play(ctx context.Context, userID int, sess game.Session, wager decimal.Decimal) (*model.Outcome, error) {
	lock := c.playLock(userID)
	lock.Lock()
	defer lock.Unlock()

	// Валидация до каких-либо эффектов
	if !sess.IsOpen() {
		return nil, game.ErrInvalidStateTransition
	}
	if wager.LessThan(sess.MinBet()) || wager.GreaterThan(sess.MaxBet()) {
		return nil, ErrInvalidWager
	}

	ledger := c.ledgers.Ledger(userID)

	// 1. Списание ставки
	debitTx, err := ledger.Debit(wager, model.TxWager, sess.GameID(), "")
	if err != nil {
		return nil, err
	}

	// 2. Фиксация сессии и розыгрыш
	err = sess.Commit(wager)
	if err == nil {
		_, err = sess.Draw(c.provider)
	}
	if err != nil {
		// Ставка уже списана — возвращаем её компенсирующим начислением
		refundTx, creditErr := ledger.Credit(wager, model.TxPayout, sess.GameID(), refundReference)
		if creditErr != nil {
			log.Println("refund credit failed:", creditErr)
			return nil, err
		}
		c.persist(ctx, userID, ledger.Balance(), debitTx, refundTx)
		return nil, err
	}

	// 3. Оценка завершенного розыгрыша
	res, err := sess.Evaluate()
	if err != nil {
		return nil, err
	}

	// 4. Начисление выигрыша, если он есть
	var payoutTx *model.Transaction
	if res.Payout.GreaterThan(decimal.Zero) {
		payoutTx, err = ledger.Credit(res.Payout, model.TxPayout, sess.GameID(), "")
		if err != nil {
			return nil, err
		}
	}

	// 5. Сохранение транзакций и баланса одной транзакцией БД
	c.persist(ctx, userID, ledger.Balance(), debitTx, payoutTx)

	return &model.Outcome{
		GameID:  sess.GameID(),
		Wager:   wager,
		Payout:  res.Payout,
		Balance: ledger.Balance(),
		Keno:    res.Keno,
		Bingo:   res.Bingo,
		Lotto:   res.Lotto,
	}, nil
}

// persist Сохраняет произведённые транзакции и итоговый баланс.
// Кошелёк в памяти авторитетен: сбой сохранения логируется,
// но результат раунда не отменяет
func (c *Coordinator) persist(ctx context.Context, userID int, balance decimal.Decimal, txs ...*model.Transaction) {
	if c.walletRepo == nil || c.txManager == nil {
		return
	}

	err := c.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, tx := range txs {
			if tx == nil {
				continue
			}
			if err := c.walletRepo.InsertTransaction(txCtx, userID, *tx); err != nil {
				return err
			}
		}
		return c.walletRepo.UpsertBalance(txCtx, userID, balance)
	})
	if err != nil {
		log.Println("failed to persist wallet state:", err)
	}
}
