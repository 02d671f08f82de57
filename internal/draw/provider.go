package draw

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrInvalidRange Запрошено больше чисел, чем есть в пуле.
// Это ошибка конфигурации, а не пользовательская
var ErrInvalidRange = errors.New("draw count exceeds pool size")

// Provider Источник случайных розыгрышей.
// Единственный источник недетерминизма в ядре: вся остальная логика чистая,
// поэтому в тестах провайдер подменяется на детерминированный
type Provider interface {
	// DrawNumbers возвращает count различных чисел из [1, poolSize]
	// равновероятно и без повторов. Порядок элементов — порядок вытягивания
	DrawNumbers(poolSize, count int) ([]int, error)
}

type provider struct {
	mtx sync.Mutex
	rnd *rand.Rand
}

// NewProvider Создать провайдер со случайным зерном
func NewProvider() Provider {
	return &provider{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededProvider Создать провайдер с фиксированным зерном (для воспроизводимости)
func NewSeededProvider(seed int64) Provider {
	return &provider{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// DrawNumbers Тянет count чисел из пула [1, poolSize] без возвращения.
// Частичный Фишер-Йетс: перемешиваем только первые count позиций
func (p *provider) DrawNumbers(poolSize, count int) ([]int, error) {
	if poolSize <= 0 || count <= 0 {
		return nil, ErrInvalidRange
	}
	if count > poolSize {
		return nil, ErrInvalidRange
	}

	pool := make([]int, poolSize)
	for i := range pool {
		pool[i] = i + 1
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	drawn := make([]int, count)
	for i := 0; i < count; i++ {
		j := i + p.rnd.Intn(poolSize-i)
		pool[i], pool[j] = pool[j], pool[i]
		drawn[i] = pool[i]
	}

	return drawn, nil
}
