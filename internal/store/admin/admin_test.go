package admin

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DanteFuaran/dfc-tg-shop/internal/gateway"
	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

type APIMock struct{ mock.Mock }

func (m *APIMock) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminStats), args.Error(1)
}

func (m *APIMock) AdminUsers(ctx context.Context, page int, search string) (*models.UserPage, error) {
	args := m.Called(ctx, page, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPage), args.Error(1)
}

func (m *APIMock) SetUserRole(ctx context.Context, telegramID int64, role string) error {
	return m.Called(ctx, telegramID, role).Error(0)
}

func (m *APIMock) AddBalance(ctx context.Context, telegramID int64, amount float64) error {
	return m.Called(ctx, telegramID, amount).Error(0)
}

func (m *APIMock) AddBonusBalance(ctx context.Context, telegramID int64, amount float64) error {
	return m.Called(ctx, telegramID, amount).Error(0)
}

func (m *APIMock) BlockUser(ctx context.Context, telegramID int64, blocked bool) error {
	return m.Called(ctx, telegramID, blocked).Error(0)
}

func (m *APIMock) AdminPlans(ctx context.Context) ([]models.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plan), args.Error(1)
}

func (m *APIMock) CreatePlan(ctx context.Context, plan models.Plan) (*models.Plan, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *APIMock) UpdatePlan(ctx context.Context, id int64, plan models.Plan) error {
	return m.Called(ctx, id, plan).Error(0)
}

func (m *APIMock) DeletePlan(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) TogglePlan(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) AdminSettings(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *APIMock) UpdateSettings(ctx context.Context, settings models.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

func (m *APIMock) AdminGateways(ctx context.Context) ([]models.PaymentGateway, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentGateway), args.Error(1)
}

func (m *APIMock) UpdateGateway(ctx context.Context, id int64, gw models.PaymentGateway) error {
	return m.Called(ctx, id, gw).Error(0)
}

func (m *APIMock) AdminPromocodes(ctx context.Context) ([]models.Promocode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Promocode), args.Error(1)
}

func (m *APIMock) CreatePromocode(ctx context.Context, promo models.Promocode) (*models.Promocode, error) {
	args := m.Called(ctx, promo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promocode), args.Error(1)
}

func (m *APIMock) TogglePromocode(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) DeletePromocode(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) AdminBroadcasts(ctx context.Context) ([]models.Broadcast, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Broadcast), args.Error(1)
}

func (m *APIMock) CreateBroadcast(ctx context.Context, text, audience string) (*models.Broadcast, error) {
	args := m.Called(ctx, text, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Broadcast), args.Error(1)
}

func (m *APIMock) DeleteBroadcast(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) AdminTickets(ctx context.Context) ([]models.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *APIMock) AdminTicket(ctx context.Context, id int64) (*models.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *APIMock) AdminReply(ctx context.Context, id int64, text, imageData string) (*models.TicketMessage, error) {
	args := m.Called(ctx, id, text, imageData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TicketMessage), args.Error(1)
}

func (m *APIMock) AdminEditMessage(ctx context.Context, ticketID, msgID int64, text string) error {
	return m.Called(ctx, ticketID, msgID, text).Error(0)
}

func (m *APIMock) AdminDeleteMessage(ctx context.Context, ticketID, msgID int64) error {
	return m.Called(ctx, ticketID, msgID).Error(0)
}

func (m *APIMock) AdminCloseTicket(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) DeleteTicket(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) Brand(ctx context.Context) (*models.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

func (m *APIMock) SaveBrand(ctx context.Context, brand models.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newStoreWithPlans(t *testing.T) (*APIMock, *Store) {
	t.Helper()
	api := new(APIMock)
	store := New(api, newNoopLogger())
	api.On("AdminPlans", mock.Anything).Return([]models.Plan{
		{ID: 1, Name: "Basic", IsActive: true},
		{ID: 2, Name: "Pro", IsActive: false},
	}, nil).Once()
	require.NoError(t, store.FetchPlans(context.Background()))
	return api, store
}

func TestStore_RollbackIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))

	api := new(APIMock)
	store := New(api, log)
	api.On("AdminPlans", mock.Anything).Return([]models.Plan{
		{ID: 1, Name: "Basic", IsActive: true},
	}, nil).Once()
	require.NoError(t, store.FetchPlans(context.Background()))

	api.On("TogglePlan", mock.Anything, int64(1)).
		Return(&gateway.HTTPError{Status: 500}).Once()

	require.Error(t, store.TogglePlan(context.Background(), 1))
	assert.Contains(t, buf.String(), "optimistic mutation rolled back")
	assert.Contains(t, buf.String(), "store.admin.TogglePlan")
}

func TestStore_TogglePlan_RollsBackOnFailure(t *testing.T) {
	api, store := newStoreWithPlans(t)
	before := store.Plans()

	api.On("TogglePlan", mock.Anything, int64(1)).
		Return(&gateway.HTTPError{Status: 500}).Once()

	require.Error(t, store.TogglePlan(context.Background(), 1))
	assert.Equal(t, before, store.Plans())
}

func TestStore_TogglePlan_KeepsOptimisticValueOnSuccess(t *testing.T) {
	api, store := newStoreWithPlans(t)

	api.On("TogglePlan", mock.Anything, int64(2)).Return(nil).Once()

	require.NoError(t, store.TogglePlan(context.Background(), 2))
	plans := store.Plans()
	assert.True(t, plans[1].IsActive)
	assert.True(t, plans[0].IsActive) // соседний тариф не тронут
}

func TestStore_UpdatePlan_RollsBackOnFailure(t *testing.T) {
	api, store := newStoreWithPlans(t)
	before := store.Plans()

	updated := models.Plan{ID: 1, Name: "Basic v2", IsActive: true}
	api.On("UpdatePlan", mock.Anything, int64(1), updated).
		Return(&gateway.HTTPError{Status: 422}).Once()

	require.Error(t, store.UpdatePlan(context.Background(), updated))
	assert.Equal(t, before, store.Plans())
}

func TestStore_DeletePlan(t *testing.T) {
	tests := []struct {
		name      string
		apiErr    error
		wantPlans int
	}{
		{name: "success removes plan", apiErr: nil, wantPlans: 1},
		{name: "failure restores plan", apiErr: &gateway.HTTPError{Status: 500}, wantPlans: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, store := newStoreWithPlans(t)
			api.On("DeletePlan", mock.Anything, int64(2)).Return(tt.apiErr).Once()

			err := store.DeletePlan(context.Background(), 2)
			if tt.apiErr != nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, store.Plans(), tt.wantPlans)
		})
	}
}

func TestStore_CreatePlan_AppendsConfirmedCopyOnly(t *testing.T) {
	api, store := newStoreWithPlans(t)

	draft := models.Plan{Name: "Ultra"}
	created := models.Plan{ID: 3, Name: "Ultra", IsActive: true}
	api.On("CreatePlan", mock.Anything, draft).Return(&created, nil).Once()

	got, err := store.CreatePlan(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, created, *got)

	plans := store.Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, int64(3), plans[2].ID)
}

func TestStore_CreatePlan_FailureAddsNothing(t *testing.T) {
	api, store := newStoreWithPlans(t)

	draft := models.Plan{Name: "Ultra"}
	api.On("CreatePlan", mock.Anything, draft).
		Return(nil, &gateway.HTTPError{Status: 500}).Once()

	_, err := store.CreatePlan(context.Background(), draft)
	require.Error(t, err)
	assert.Len(t, store.Plans(), 2)
}

func TestStore_UpdateSettings_RollsBackOnFailure(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	api.On("AdminSettings", mock.Anything).
		Return(&models.Settings{DefaultCurrency: "RUB", PurchasesAllowed: true}, nil).Once()
	require.NoError(t, store.FetchSettings(context.Background()))

	next := models.Settings{DefaultCurrency: "USD", PurchasesAllowed: false}
	api.On("UpdateSettings", mock.Anything, next).
		Return(&gateway.HTTPError{Status: 500}).Once()

	require.Error(t, store.UpdateSettings(context.Background(), next))

	settings := store.Settings()
	require.NotNil(t, settings)
	assert.Equal(t, "RUB", settings.DefaultCurrency)
	assert.True(t, settings.PurchasesAllowed)
}

func TestStore_UpdateSettings_Success(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	next := models.Settings{DefaultCurrency: "USD"}
	api.On("UpdateSettings", mock.Anything, next).Return(nil).Once()

	require.NoError(t, store.UpdateSettings(context.Background(), next))
	assert.Equal(t, "USD", store.Settings().DefaultCurrency)
}

func TestStore_ToggleGateway(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	api.On("AdminGateways", mock.Anything).Return([]models.PaymentGateway{
		{ID: 7, Type: models.GatewayTelegramStars, IsActive: true},
	}, nil).Once()
	require.NoError(t, store.FetchGateways(context.Background()))

	api.On("UpdateGateway", mock.Anything, int64(7), mock.Anything).
		Return(&gateway.HTTPError{Status: 500}).Once()

	require.Error(t, store.ToggleGateway(context.Background(), 7))
	assert.True(t, store.Gateways()[0].IsActive)

	api.On("UpdateGateway", mock.Anything, int64(7), mock.Anything).Return(nil).Once()
	require.NoError(t, store.ToggleGateway(context.Background(), 7))
	assert.False(t, store.Gateways()[0].IsActive)
}

func TestStore_ToggleGateway_UnknownID(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	err := store.ToggleGateway(context.Background(), 99)
	require.Error(t, err)
	api.AssertNotCalled(t, "UpdateGateway", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_ToggleGateway_ZeroID(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	api.On("AdminGateways", mock.Anything).Return([]models.PaymentGateway{
		{ID: 0, Type: models.GatewayBalance, IsActive: false},
	}, nil).Once()
	require.NoError(t, store.FetchGateways(context.Background()))

	api.On("UpdateGateway", mock.Anything, int64(0), mock.Anything).Return(nil).Once()

	require.NoError(t, store.ToggleGateway(context.Background(), 0))
	assert.True(t, store.Gateways()[0].IsActive)
}

func TestStore_UserMutations_RollBackOnFailure(t *testing.T) {
	seed := func(t *testing.T) (*APIMock, *Store) {
		api := new(APIMock)
		store := New(api, newNoopLogger())
		api.On("AdminUsers", mock.Anything, 1, "").Return(&models.UserPage{
			Users: []models.User{
				{TelegramID: 100, Role: models.RoleUser, Balance: 50},
				{TelegramID: 200, Role: models.RoleUser, Balance: 10},
			},
			Total: 2,
			Page:  1,
		}, nil).Once()
		require.NoError(t, store.FetchUsers(context.Background(), 1, ""))
		return api, store
	}

	t.Run("set role rollback", func(t *testing.T) {
		api, store := seed(t)
		api.On("SetUserRole", mock.Anything, int64(100), models.RoleAdmin).
			Return(&gateway.HTTPError{Status: 403}).Once()

		require.Error(t, store.SetUserRole(context.Background(), 100, models.RoleAdmin))
		assert.Equal(t, models.RoleUser, store.Users().Users[0].Role)
	})

	t.Run("add balance rollback", func(t *testing.T) {
		api, store := seed(t)
		api.On("AddBalance", mock.Anything, int64(100), 25.0).
			Return(&gateway.HTTPError{Status: 500}).Once()

		require.Error(t, store.AddBalance(context.Background(), 100, 25))
		assert.Equal(t, 50.0, store.Users().Users[0].Balance)
	})

	t.Run("block rollback", func(t *testing.T) {
		api, store := seed(t)
		api.On("BlockUser", mock.Anything, int64(200), true).
			Return(&gateway.HTTPError{Status: 500}).Once()

		require.Error(t, store.BlockUser(context.Background(), 200, true))
		assert.False(t, store.Users().Users[1].IsBlocked)
	})
}

func TestStore_UserMutations_ApplyOnSuccess(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())
	api.On("AdminUsers", mock.Anything, 1, "").Return(&models.UserPage{
		Users: []models.User{{TelegramID: 100, Role: models.RoleUser, Balance: 50}},
		Total: 1,
		Page:  1,
	}, nil).Once()
	require.NoError(t, store.FetchUsers(context.Background(), 1, ""))

	api.On("SetUserRole", mock.Anything, int64(100), models.RoleAdmin).Return(nil).Once()
	api.On("AddBalance", mock.Anything, int64(100), 25.0).Return(nil).Once()
	api.On("AddBonusBalance", mock.Anything, int64(100), 5.0).Return(nil).Once()

	ctx := context.Background()
	require.NoError(t, store.SetUserRole(ctx, 100, models.RoleAdmin))
	require.NoError(t, store.AddBalance(ctx, 100, 25))
	require.NoError(t, store.AddBonusBalance(ctx, 100, 5))

	user := store.Users().Users[0]
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, 75.0, user.Balance)
	assert.Equal(t, 5.0, user.ReferralBalance)
}

func TestStore_TogglePromocode_RollsBackOnFailure(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	api.On("AdminPromocodes", mock.Anything).Return([]models.Promocode{
		{ID: 5, Code: "SPRING", IsActive: true},
	}, nil).Once()
	require.NoError(t, store.FetchPromocodes(context.Background()))

	api.On("TogglePromocode", mock.Anything, int64(5)).
		Return(&gateway.HTTPError{Status: 500}).Once()

	require.Error(t, store.TogglePromocode(context.Background(), 5))
	assert.True(t, store.Promocodes()[0].IsActive)
}

func TestStore_CreateBroadcast_PrependsConfirmedCopy(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	api.On("AdminBroadcasts", mock.Anything).Return([]models.Broadcast{
		{ID: 1, Text: "old"},
	}, nil).Once()
	require.NoError(t, store.FetchBroadcasts(context.Background()))

	created := models.Broadcast{ID: 2, Text: "hello everyone", Audience: "all"}
	api.On("CreateBroadcast", mock.Anything, "hello everyone", "all").Return(&created, nil).Once()

	got, err := store.CreateBroadcast(context.Background(), "hello everyone", "all")
	require.NoError(t, err)
	assert.Equal(t, created, *got)

	broadcasts := store.Broadcasts()
	require.Len(t, broadcasts, 2)
	assert.Equal(t, int64(2), broadcasts[0].ID)
}

func TestStore_CloseTicket_RollsBackOnFailure(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	api.On("AdminTickets", mock.Anything).Return([]models.Ticket{
		{ID: 9, Status: models.TicketOpen},
	}, nil).Once()
	require.NoError(t, store.FetchTickets(context.Background()))

	api.On("AdminCloseTicket", mock.Anything, int64(9)).
		Return(&gateway.HTTPError{Status: 500}).Once()

	require.Error(t, store.CloseTicket(context.Background(), 9))
	assert.Equal(t, models.TicketOpen, store.Tickets()[0].Status)

	api.On("AdminCloseTicket", mock.Anything, int64(9)).Return(nil).Once()
	require.NoError(t, store.CloseTicket(context.Background(), 9))
	assert.Equal(t, models.TicketClosed, store.Tickets()[0].Status)
}

func openSupportTicket(t *testing.T, api *APIMock, store *Store) {
	t.Helper()
	api.On("AdminTicket", mock.Anything, int64(9)).Return(&models.Ticket{
		ID:      9,
		Subject: "Refund request",
		Status:  models.TicketWaiting,
		Messages: []models.TicketMessage{
			{ID: 1, Sender: models.SenderUser, Text: "Please refund"},
		},
	}, nil).Once()
	require.NoError(t, store.OpenTicket(context.Background(), 9))
}

func TestStore_OpenTicket(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())
	openSupportTicket(t, api, store)

	current := store.CurrentTicket()
	require.NotNil(t, current)
	assert.Equal(t, int64(9), current.ID)
	assert.Len(t, current.Messages, 1)
}

func TestStore_ReplyTicket_AppendsServerEcho(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())
	openSupportTicket(t, api, store)

	echo := &models.TicketMessage{ID: 2, Sender: models.SenderAdmin, Text: "Refund issued"}
	api.On("AdminReply", mock.Anything, int64(9), "Refund issued", "").Return(echo, nil).Once()

	require.NoError(t, store.ReplyTicket(context.Background(), 9, "Refund issued", ""))

	messages := store.CurrentTicket().Messages
	require.Len(t, messages, 2)
	assert.Equal(t, *echo, messages[1])
}

func TestStore_ReplyTicket_FailureLeavesStateUntouched(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())
	openSupportTicket(t, api, store)

	api.On("AdminReply", mock.Anything, int64(9), "Refund issued", "").
		Return(nil, &gateway.HTTPError{Status: 500}).Once()

	before := store.CurrentTicket()
	require.Error(t, store.ReplyTicket(context.Background(), 9, "Refund issued", ""))
	assert.Equal(t, before, store.CurrentTicket())
}

func TestStore_EditTicketMessage(t *testing.T) {
	tests := []struct {
		name     string
		apiErr   error
		wantText string
	}{
		{name: "success replaces text", apiErr: nil, wantText: "edited"},
		{name: "failure keeps text", apiErr: &gateway.HTTPError{Status: 500}, wantText: "Please refund"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(APIMock)
			store := New(api, newNoopLogger())
			openSupportTicket(t, api, store)

			api.On("AdminEditMessage", mock.Anything, int64(9), int64(1), "edited").Return(tt.apiErr).Once()

			err := store.EditTicketMessage(context.Background(), 9, 1, "edited")
			if tt.apiErr != nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantText, store.CurrentTicket().Messages[0].Text)
		})
	}
}

func TestStore_DeleteTicketMessage(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())
	openSupportTicket(t, api, store)

	api.On("AdminDeleteMessage", mock.Anything, int64(9), int64(1)).Return(nil).Once()

	require.NoError(t, store.DeleteTicketMessage(context.Background(), 9, 1))
	assert.Empty(t, store.CurrentTicket().Messages)
}

func TestStore_CloseTicket_MarksCurrent(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())
	openSupportTicket(t, api, store)

	api.On("AdminCloseTicket", mock.Anything, int64(9)).Return(nil).Once()

	require.NoError(t, store.CloseTicket(context.Background(), 9))
	assert.Equal(t, models.TicketClosed, store.CurrentTicket().Status)
}

func TestStore_DeleteTicket_DropsCurrent(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())
	openSupportTicket(t, api, store)

	api.On("DeleteTicket", mock.Anything, int64(9)).Return(nil).Once()

	require.NoError(t, store.DeleteTicket(context.Background(), 9))
	assert.Nil(t, store.CurrentTicket())
}

func TestStore_SaveBrand_RollsBackOnFailure(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	api.On("Brand", mock.Anything).
		Return(&models.Brand{Name: "Old Name", Slogan: "Old"}, nil).Once()
	require.NoError(t, store.FetchBrand(context.Background()))

	next := models.Brand{Name: "New Name", Slogan: "New"}
	api.On("SaveBrand", mock.Anything, next).
		Return(&gateway.HTTPError{Status: 500}).Once()

	require.Error(t, store.SaveBrand(context.Background(), next))
	assert.Equal(t, "Old Name", store.Brand().Name)
}

func TestStore_FetchStats(t *testing.T) {
	api := new(APIMock)
	store := New(api, newNoopLogger())

	api.On("AdminStats", mock.Anything).Return(&models.AdminStats{
		TotalUsers: 120, ActiveSubscriptions: 80,
	}, nil).Once()

	require.NoError(t, store.FetchStats(context.Background()))
	stats := store.Stats()
	require.NotNil(t, stats)
	assert.Equal(t, 120, stats.TotalUsers)
}
