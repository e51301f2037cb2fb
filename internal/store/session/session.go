// Package session реализует хранилище составного представления сессии.
//
// Хранилище собирает независимые ресурсы бэкенда — профиль, подписку,
// флаги функциональности, каталог тарифов, счётчики тикетов и бренд —
// в одно атомарно наблюдаемое представление. Наблюдатели никогда не
// видят «рваное» состояние: новое представление вычисляется целиком и
// записывается одним присваиванием.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DanteFuaran/dfc-tg-shop/internal/lib/sl"
	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// API описывает операции шлюза, необходимые хранилищу сессии.
type API interface {
	// SessionData возвращает составной пакет данных пользователя.
	SessionData(ctx context.Context) (*models.SessionData, error)
	// Brand возвращает атрибуты бренда.
	Brand(ctx context.Context) (*models.Brand, error)
}

// View — составное представление сессии, доступное всем экранам.
// Значение самодостаточно: читатель получает копию и может работать
// с ней, не опасаясь конкурентных изменений.
type View struct {
	User            *models.User
	Subscription    *models.Subscription // nil — подписки нет
	Features        *models.Features
	Plans           []models.Plan
	BotUsername     string
	RefLink         string
	SupportURL      string
	TrialAvailable  bool
	DefaultCurrency string
	BotLocale       string
	TicketUnread    int
	HasOpenTickets  bool
	Gateways        []models.GatewayOption
	Brand           models.Brand
	Authenticated   bool
}

// Store — хранилище сессии. Создаётся явно при старте приложения
// и передаётся потребителям; модульных синглтонов нет.
type Store struct {
	api API
	log *slog.Logger

	mu   sync.RWMutex
	view View
	seq  uint64 // номер последнего выданного запроса Refresh
}

// New создаёт хранилище с представлением по умолчанию.
func New(api API, log *slog.Logger) *Store {
	return &Store{
		api: api,
		log: log,
		view: View{
			DefaultCurrency: "RUB",
			BotLocale:       "RU",
			Brand:           models.DefaultBrand(),
		},
	}
}

// Refresh обновляет составное представление.
//
// Основной запрос данных сессии и необязательный запрос бренда
// выполняются одновременно, поэтому задержка ограничена более
// медленным из двух. Ошибка основного запроса проваливает операцию
// целиком: хранилище переходит в неаутентифицированное состояние,
// остальные поля остаются прежними. Ошибка запроса бренда
// проглатывается, вместо него подставляются значения по умолчанию.
//
// Ответ устаревшего запроса (начатого раньше более нового Refresh)
// отбрасывается и не может затереть более свежее представление.
func (s *Store) Refresh(ctx context.Context) error {
	const op = "store.session.Refresh"

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	brandCh := make(chan models.Brand, 1)
	go func() {
		brand, err := s.api.Brand(ctx)
		if err != nil {
			s.log.Warn("brand fetch failed, using defaults", sl.Err(err))
			brandCh <- models.DefaultBrand()
			return
		}
		brandCh <- *brand
	}()

	data, err := s.api.SessionData(ctx)
	brand := <-brandCh
	if err != nil {
		s.mu.Lock()
		if seq == s.seq {
			s.view.Authenticated = false
		}
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}

	next := assemble(data, brand)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		s.log.Debug("stale refresh discarded", slog.Uint64("seq", seq))
		return nil
	}
	s.view = next
	return nil
}

// assemble собирает новое представление целиком до единственной
// записи состояния. Подписка уже нормализована на этапе декодирования:
// пустой объект с провода превратился в nil.
func assemble(data *models.SessionData, brand models.Brand) View {
	user := data.User
	features := data.Features

	var sub *models.Subscription
	if data.Subscription.Subscription != nil {
		v := *data.Subscription.Subscription
		sub = &v
	}

	return View{
		User:            &user,
		Subscription:    sub,
		Features:        &features,
		Plans:           data.Plans,
		BotUsername:     data.BotUsername,
		RefLink:         data.RefLink,
		SupportURL:      data.SupportURL,
		TrialAvailable:  data.TrialAvailable,
		DefaultCurrency: data.DefaultCurrency,
		BotLocale:       data.BotLocale,
		TicketUnread:    data.TicketUnread,
		HasOpenTickets:  data.HasOpenTickets,
		Gateways:        data.AvailableGateways,
		Brand:           brand,
		Authenticated:   true,
	}
}

// Snapshot возвращает копию текущего представления.
func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// IsAuthenticated сообщает, действительна ли сессия. Пока флаг false,
// потребители обязаны считать все поля представления отсутствующими.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Authenticated
}

// SetTicketCounters записывает агрегаты тикетов, вычисленные
// хранилищем тикетов. Запись локальная: новых запросов к бэкенду
// она не порождает, циклической подгрузки сессии не возникает.
func (s *Store) SetTicketCounters(unread int, hasOpen bool) {
	s.mu.Lock()
	s.view.TicketUnread = unread
	s.view.HasOpenTickets = hasOpen
	s.mu.Unlock()
}

// Clear сбрасывает хранилище к начальному состоянию. Вызывается
// при выходе из аккаунта.
func (s *Store) Clear() {
	s.mu.Lock()
	s.view = View{
		DefaultCurrency: "RUB",
		BotLocale:       "RU",
		Brand:           models.DefaultBrand(),
	}
	s.mu.Unlock()
}
