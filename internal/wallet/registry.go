package wallet

import "sync"

// Registry Реестр кошельков, по одному на игрока.
// Идентификатор игрока приходит от подсистемы аутентификации
// и используется только как пространство имён
type Registry struct {
	mtx     sync.RWMutex
	ledgers map[int]*Ledger
}

func NewRegistry() *Registry {
	return &Registry{
		ledgers: make(map[int]*Ledger),
	}
}

// Ledger Возвращает кошелёк игрока, создавая пустой при первом обращении
func (r *Registry) Ledger(playerID int) *Ledger {
	r.mtx.RLock()
	l, ok := r.ledgers[playerID]
	r.mtx.RUnlock()
	if ok {
		return l
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	if l, ok := r.ledgers[playerID]; ok {
		return l
	}
	l = NewLedger(playerID)
	r.ledgers[playerID] = l
	return l
}

// Drop Убирает кошелёк из реестра (при логауте, после сохранения снимка)
func (r *Registry) Drop(playerID int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.ledgers, playerID)
}
