package admin

import (
	"log/slog"
	"sync"

	"github.com/DanteFuaran/dfc-tg-shop/internal/lib/sl"
)

// applyOptimistic применяет изменение локально до подтверждения
// сервером и откатывает его к снимку, если вызов завершился ошибкой.
// Откат сопровождается записью в журнал.
//
// Мьютекс не удерживается на время сетевого вызова, поэтому
// одновременные мутации разных полей друг друга не блокируют.
// Гонки вида «последняя запись побеждает» при одновременных мутациях
// одной сущности допускаются осознанно: более строгая согласованность
// не входит в задачи хранилища.
func applyOptimistic[T any](mu *sync.Mutex, log *slog.Logger, op string, target *T, next T, confirm func() error) error {
	mu.Lock()
	prev := *target
	*target = next
	mu.Unlock()

	if err := confirm(); err != nil {
		mu.Lock()
		*target = prev
		mu.Unlock()
		log.Warn("optimistic mutation rolled back", slog.String("op", op), sl.Err(err))
		return err
	}
	return nil
}
