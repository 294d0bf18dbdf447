package app

import (
	"context"

	"troop_cookies/internal/catalog"
	"troop_cookies/internal/models"
)

// ProcessSetField overwrites one inventory counter. Scouts may edit their
// own records, subject to the remaining >= 0 invariant; the admin may edit
// anyone's and bypasses the check entirely (the correction escape hatch).
func (app *App) ProcessSetField(ctx context.Context, actorID int32, req models.SetFieldRequest) error {
	if !models.ValidField(req.Field) {
		return ErrInvalidField
	}
	if !catalog.Valid(req.CookieType) {
		return ErrInvalidCookieType
	}

	actor, err := app.db.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}
	if req.UserID != actorID && !actor.IsAdmin {
		return ErrUnauthorized
	}
	if !actor.IsAdmin && req.Value < 0 {
		return ErrNegativeValue
	}

	return app.db.SetInventoryField(ctx, req.UserID, req.CookieType, req.Field,
		req.Value, actor.Name, actor.IsAdmin)
}

// ProcessRecordSale records boxes sold by the calling scout. This is the
// only path by which a non-admin reduces their own remaining stock.
func (app *App) ProcessRecordSale(ctx context.Context, actorID int32, req models.SaleRequest) error {
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !catalog.Valid(req.CookieType) {
		return ErrInvalidCookieType
	}

	actor, err := app.db.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}

	return app.db.RecordSale(ctx, actorID, req.CookieType, req.Quantity, actor.Name)
}

// ProcessTransfer moves boxes between two scouts' additional counters.
// Admin only.
func (app *App) ProcessTransfer(ctx context.Context, actorID int32, req models.TransferRequest) error {
	if _, err := app.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !catalog.Valid(req.CookieType) {
		return ErrInvalidCookieType
	}
	if req.FromUserID == req.ToUserID {
		return ErrSelfTrade
	}

	return app.db.TransferBoxes(ctx, req.FromUserID, req.ToUserID, req.CookieType, req.Quantity)
}

// ProcessGetRemaining returns the derived remaining count for one scout and
// cookie type. A missing record reads as zero.
func (app *App) ProcessGetRemaining(ctx context.Context, userID int32, cookieType string) (int, error) {
	if !catalog.Valid(cookieType) {
		return 0, ErrInvalidCookieType
	}
	record, err := app.db.GetInventoryRecord(ctx, userID, cookieType)
	if err != nil {
		return 0, err
	}
	return record.Remaining(), nil
}

// ProcessTroopInventory returns every scout's inventory. Admin only.
func (app *App) ProcessTroopInventory(ctx context.Context, actorID int32) (map[int32]map[string]models.CookieRecord, error) {
	if _, err := app.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return app.db.GetTroopInventory(ctx)
}

// ProcessUserInventory returns one scout's inventory in catalog order. A
// scout may read their own rows; the admin may read anyone's.
func (app *App) ProcessUserInventory(ctx context.Context, actorID, userID int32) ([]models.InventoryRow, error) {
	actor, err := app.db.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if userID != actorID && !actor.IsAdmin {
		return nil, ErrUnauthorized
	}

	inventory, err := app.db.GetUserInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]models.InventoryRow, 0, len(catalog.CookieTypes))
	for _, cookieType := range catalog.CookieTypes {
		record := inventory[cookieType]
		rows = append(rows, models.InventoryRow{
			CookieType: cookieType,
			Label:      catalog.Labels[cookieType],
			Starting:   record.Starting,
			Additional: record.Additional,
			Sold:       record.Sold,
			Remaining:  record.Remaining(),
		})
	}
	return rows, nil
}

// ProcessListLogs returns audit entries most-recent-first, optionally capped.
func (app *App) ProcessListLogs(ctx context.Context, limit int) ([]models.InventoryLog, error) {
	return app.db.ListLogs(ctx, limit)
}
