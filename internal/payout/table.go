package payout

import "github.com/shopspring/decimal"

// NumberTable Таблица выплат по количеству совпадений.
// Отсутствующий ключ трактуется как нулевой множитель, ошибок не бывает
type NumberTable map[int]decimal.Decimal

// Multiplier Множитель выплаты для данного количества совпадений
func (t NumberTable) Multiplier(matchCount int) decimal.Decimal {
	if m, ok := t[matchCount]; ok {
		return m
	}
	return decimal.Zero
}

// PatternTable Таблица выплат по имени паттерна (бинго)
type PatternTable map[string]decimal.Decimal

// Multiplier Множитель выплаты для данного паттерна
func (t PatternTable) Multiplier(pattern string) decimal.Decimal {
	if m, ok := t[pattern]; ok {
		return m
	}
	return decimal.Zero
}

// TierRule Одно правило призового уровня лото
type TierRule struct {
	Name        string
	MainMatches int
	NeedBonus   bool
	Multiplier  decimal.Decimal
	// Jackpot Уровень оплачивается фиксированной суммой джекпота, а не множителем
	Jackpot bool
}

// TierRules Упорядоченный список правил, проверяется от старшего уровня к младшему
type TierRules []TierRule

// Resolve Находит первый подходящий уровень для данного числа совпадений.
// Возвращает nil, если ни один уровень не подошёл (выплата ноль)
func (rules TierRules) Resolve(mainMatches int, bonusMatch bool) *TierRule {
	for i := range rules {
		r := &rules[i]
		if mainMatches != r.MainMatches {
			continue
		}
		if r.NeedBonus && !bonusMatch {
			continue
		}
		return r
	}
	return nil
}
