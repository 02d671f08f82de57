package game

import (
	"errors"

	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidStateTransition Операция недопустима в текущем статусе сессии
	ErrInvalidStateTransition = errors.New("operation not allowed in current session state")
	// ErrSelectionLimitExceeded Превышен лимит выбора чисел/ячеек
	ErrSelectionLimitExceeded = errors.New("selection limit exceeded")
	// ErrInvalidSelection Число/ячейка вне допустимого диапазона
	ErrInvalidSelection = errors.New("selection out of range")
)

// Variant Вариант игры
type Variant string

const (
	VariantKeno  Variant = "keno"
	VariantBingo Variant = "bingo"
	VariantLotto Variant = "lotto"
)

// Status Статус сессии. Метки зависят от варианта, но жизненный цикл общий:
// открыта для выбора -> ставка принята (розыгрыш) -> завершена (только чтение)
type Status string

const (
	// Кено
	StatusWaiting  Status = "waiting"
	StatusDrawing  Status = "drawing"
	StatusComplete Status = "complete"
	// Бинго
	StatusPlaying Status = "playing"
	// Лото
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusDrawn  Status = "drawn"
)

// Session Общий контракт сессии для всех вариантов игры.
// Сессия живет один раунд: после завершения розыгрыша она только читается,
// новый раунд — всегда новый экземпляр
type Session interface {
	ID() string
	GameID() string
	Variant() Variant
	Status() Status

	// IsOpen Сессия открыта для изменения выбора и принятия ставки
	IsOpen() bool
	// MinBet, MaxBet Допустимый диапазон ставки из конфигурации игры
	MinBet() decimal.Decimal
	MaxBet() decimal.Decimal

	// Commit Фиксирует ставку и замораживает выбор.
	// Вызывается только координатором после успешного списания ставки —
	// сама сессия деньги не трогает
	Commit(wager decimal.Decimal) error
	// Draw Выполняет розыгрыш через провайдер и записывает его ровно один раз.
	// Повторный вызов идемпотентен: возвращает уже записанный результат
	Draw(p draw.Provider) ([]int, error)
	// Evaluate Считает результат завершенного розыгрыша.
	// Доступен только в терминальном статусе
	Evaluate() (*Result, error)
}

// Result Итог оценки розыгрыша. Payout — итоговая выплата с учётом ставки
// (и джекпота для лото), ноль если выигрыша нет
type Result struct {
	Payout decimal.Decimal

	Keno  *model.KenoResult
	Bingo *model.BingoResult
	Lotto *model.LottoResult
}

// содержит ли набор значение
func contains(set []int, n int) bool {
	for _, v := range set {
		if v == n {
			return true
		}
	}
	return false
}

// удалить значение из среза с сохранением порядка
func remove(set []int, n int) []int {
	out := set[:0]
	for _, v := range set {
		if v != n {
			out = append(out, v)
		}
	}
	return out
}
