package app

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"troop_cookies/internal/config"
	"troop_cookies/internal/models"
	"troop_cookies/internal/pkg/logger"
	"troop_cookies/internal/storage/mocks"
)

func newTestApp(t *testing.T) (*App, *mocks.MockStorage) {
	t.Helper()

	l, err := logger.CreateLogger(config.LogLevel)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := mocks.NewMockStorage(ctrl)
	return NewApp(mockDB, l), mockDB
}

func TestProcessCreateTrade_RejectsSelfTrade(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.ProcessCreateTrade(context.Background(), 2, models.CreateTradeRequest{
		ToUserID: 2,
		Offering: map[string]int{"TMint": 1},
	})
	assert.ErrorIs(t, err, ErrSelfTrade)
}

func TestProcessCreateTrade_RejectsUnknownCookie(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.ProcessCreateTrade(context.Background(), 2, models.CreateTradeRequest{
		ToUserID: 3,
		Offering: map[string]int{"Oreo": 1},
	})
	assert.ErrorIs(t, err, ErrInvalidCookieType)
}

func TestProcessCreateTrade_StripsZeroQuantities(t *testing.T) {
	app, mockDB := newTestApp(t)

	mockDB.EXPECT().GetUserByID(gomock.Any(), int32(2)).
		Return(&models.User{ID: 2, Name: "Daisy D."}, nil)
	mockDB.EXPECT().GetUserByID(gomock.Any(), int32(3)).
		Return(&models.User{ID: 3, Name: "Brownie B."}, nil)
	mockDB.EXPECT().CreateTrade(gomock.Any(), gomock.AssignableToTypeOf(&models.TradeRequest{})).
		Return(nil)

	trade, err := app.ProcessCreateTrade(context.Background(), 2, models.CreateTradeRequest{
		ToUserID:   3,
		Offering:   map[string]int{"TMint": 2, "Sam": 0, "Tre": -1},
		Requesting: map[string]int{"Advf": 1},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"TMint": 2}, trade.Offering)
	assert.Equal(t, map[string]int{"Advf": 1}, trade.Requesting)
	assert.Equal(t, "Daisy D.", trade.FromUserName)
	assert.Equal(t, "Brownie B.", trade.ToUserName)
}

func TestProcessCreateTrade_RejectsEmptyTrade(t *testing.T) {
	app, _ := newTestApp(t)

	// Every line zero or negative collapses to an empty trade.
	_, err := app.ProcessCreateTrade(context.Background(), 2, models.CreateTradeRequest{
		ToUserID:   3,
		Offering:   map[string]int{"TMint": 0},
		Requesting: map[string]int{"Sam": -4},
	})
	assert.ErrorIs(t, err, ErrEmptyTrade)
}

func TestProcessRespondTrade_OnlyCounterpartyMayRespond(t *testing.T) {
	app, mockDB := newTestApp(t)

	pending := &models.TradeRequest{
		ID:         "trade-1",
		FromUserID: 2,
		ToUserID:   3,
		Status:     models.TradePending,
	}

	mockDB.EXPECT().GetTrade(gomock.Any(), "trade-1").Return(pending, nil).Times(2)

	// The proposer cannot accept their own trade, and neither can a third
	// scout who happens to know the id.
	_, err := app.ProcessRespondTrade(context.Background(), 2, "trade-1", true)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = app.ProcessRespondTrade(context.Background(), 4, "trade-1", true)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProcessRespondTrade_DelegatesResolution(t *testing.T) {
	app, mockDB := newTestApp(t)

	pending := &models.TradeRequest{
		ID:         "trade-1",
		FromUserID: 2,
		ToUserID:   3,
		Status:     models.TradePending,
	}
	accepted := *pending
	accepted.Status = models.TradeAccepted

	mockDB.EXPECT().GetTrade(gomock.Any(), "trade-1").Return(pending, nil)
	mockDB.EXPECT().ResolveTrade(gomock.Any(), "trade-1", true).Return(&accepted, nil)

	trade, err := app.ProcessRespondTrade(context.Background(), 3, "trade-1", true)
	require.NoError(t, err)
	assert.Equal(t, models.TradeAccepted, trade.Status)
}
