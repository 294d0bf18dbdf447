package app

import (
	"context"

	"troop_cookies/internal/catalog"
	"troop_cookies/internal/models"
)

// normalizeTradeLines drops zero and negative quantities and rejects unknown
// cookie codes. Absent or zeroed entries are simply not part of the trade.
func normalizeTradeLines(lines map[string]int) (map[string]int, error) {
	normalized := make(map[string]int)
	for cookieType, qty := range lines {
		if qty <= 0 {
			continue
		}
		if !catalog.Valid(cookieType) {
			return nil, ErrInvalidCookieType
		}
		normalized[cookieType] = qty
	}
	return normalized, nil
}

// ProcessCreateTrade proposes a trade from the calling scout to another.
// Holdings are not checked at proposal time; they are validated when the
// counterparty accepts, since stock may change in between.
func (app *App) ProcessCreateTrade(ctx context.Context, actorID int32, req models.CreateTradeRequest) (*models.TradeRequest, error) {
	if req.ToUserID == actorID {
		return nil, ErrSelfTrade
	}

	offering, err := normalizeTradeLines(req.Offering)
	if err != nil {
		return nil, err
	}
	requesting, err := normalizeTradeLines(req.Requesting)
	if err != nil {
		return nil, err
	}
	if len(offering) == 0 && len(requesting) == 0 {
		return nil, ErrEmptyTrade
	}

	actor, err := app.db.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	counterparty, err := app.db.GetUserByID(ctx, req.ToUserID)
	if err != nil {
		return nil, err
	}

	trade := &models.TradeRequest{
		FromUserID:   actor.ID,
		FromUserName: actor.Name,
		ToUserID:     counterparty.ID,
		ToUserName:   counterparty.Name,
		Offering:     offering,
		Requesting:   requesting,
	}
	if err := app.db.CreateTrade(ctx, trade); err != nil {
		return nil, err
	}
	return trade, nil
}

// ProcessRespondTrade accepts or rejects a pending trade. Only the named
// counterparty may respond; in particular the proposer cannot accept their
// own trade. Responding to an already resolved trade is a no-op.
func (app *App) ProcessRespondTrade(ctx context.Context, actorID int32, tradeID string, accept bool) (*models.TradeRequest, error) {
	trade, err := app.db.GetTrade(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if trade.ToUserID != actorID {
		return nil, ErrUnauthorized
	}

	return app.db.ResolveTrade(ctx, tradeID, accept)
}

// ProcessListTrades returns every trade, newest first.
func (app *App) ProcessListTrades(ctx context.Context) ([]models.TradeRequest, error) {
	return app.db.ListTrades(ctx)
}
