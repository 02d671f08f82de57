package wallet_repo

import (
	"context"
	"errors"

	"gamehall_backend/internal/model"
	"gamehall_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	walletsTable = "wallets"
	colUserID    = "user_id"
	colBalance   = "balance"

	txTable      = "wallet_transactions"
	colTxID      = "id"
	colKind      = "kind"
	colAmount    = "amount"
	colStatus    = "status"
	colCreatedAt = "created_at"
	colGameID    = "game_id"
	colReference = "reference"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWalletRepository(dbc *pgxpool.Pool) repository.WalletRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetBalance - получение сохранённого баланса кошелька.
// Возвращает ноль, если записи ещё нет
func (r *repo) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	// Формируем запрос
	query := sq.Select(colBalance).
		From(walletsTable).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return decimal.NewFromString(raw)
}

// UpsertBalance - сохраняет текущий баланс кошелька
func (r *repo) UpsertBalance(ctx context.Context, userID int, balance decimal.Decimal) error {
	// Формируем запрос
	query := sq.Insert(walletsTable).
		Columns(colUserID, colBalance).
		Values(userID, balance.String()).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " + colBalance + " = EXCLUDED." + colBalance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// InsertTransaction - дописывает транзакцию кошелька в журнал
func (r *repo) InsertTransaction(ctx context.Context, userID int, tx model.Transaction) error {
	// Формируем запрос
	query := sq.Insert(txTable).
		Columns(colTxID, colUserID, colKind, colAmount, colStatus, colCreatedAt, colGameID, colReference).
		Values(tx.ID, userID, string(tx.Kind), tx.Amount.String(), string(tx.Status), tx.Timestamp, tx.GameID, tx.Reference).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// ListTransactions - возвращает транзакции пользователя, новые первыми
func (r *repo) ListTransactions(ctx context.Context, userID int, limit int) ([]model.Transaction, error) {
	// Формируем запрос
	query := sq.Select(colTxID, colKind, colAmount, colStatus, colCreatedAt, colGameID, colReference).
		From(txTable).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var (
			tx        model.Transaction
			kind      string
			rawAmount string
			status    string
		)
		err = rows.Scan(&tx.ID, &kind, &rawAmount, &status, &tx.Timestamp, &tx.GameID, &tx.Reference)
		if err != nil {
			return nil, err
		}
		tx.Kind = model.TxKind(kind)
		tx.Status = model.TxStatus(status)
		tx.Amount, err = decimal.NewFromString(rawAmount)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}

	return out, rows.Err()
}
