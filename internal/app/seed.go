package app

import (
	"context"

	"troop_cookies/internal/config"
	"troop_cookies/internal/models"
	"troop_cookies/internal/pkg/security"
)

// seedScout is one roster entry created at first run or after a reset.
type seedScout struct {
	name      string
	level     string
	inventory map[string]int
}

var seedRoster = []seedScout{
	{name: "Maya Lopez", level: "Cadette", inventory: map[string]int{"Advf": 50, "Sam": 79, "Tags": 45, "TMint": 88, "Exp": 41, "Toff": 11, "C4C": 19, "LmUp": 15, "Tre": 12, "D-S-D": 14}},
	{name: "Harper Quinn", level: "Junior", inventory: map[string]int{"Advf": 12, "LmUp": 12, "Tre": 12, "D-S-D": 12, "Sam": 24, "Tags": 12, "TMint": 24, "Exp": 24, "C4C": 5}},
	{name: "Rosie Bennett", level: "Brownie", inventory: map[string]int{"Advf": 12, "LmUp": 12, "Tre": 12, "D-S-D": 12, "Sam": 12, "Tags": 12, "TMint": 12, "Exp": 12}},
	{name: "Isla Navarro", level: "Senior", inventory: map[string]int{"Advf": 24, "LmUp": 12, "Tre": 24, "D-S-D": 12, "Sam": 72, "Tags": 36, "TMint": 120, "Exp": 36, "Toff": 12}},
	{name: "Juniper Hayes", level: "Ambassador", inventory: map[string]int{"Advf": 15, "LmUp": 15, "Tre": 14, "D-S-D": 15, "Sam": 45, "Tags": 16, "TMint": 37, "Exp": 12, "C4C": 1}},
	{name: "Penny Okafor", level: "Daisy", inventory: map[string]int{"Advf": 14, "LmUp": 12, "Tre": 12, "D-S-D": 12, "Sam": 14, "Tags": 13, "TMint": 14, "Exp": 14, "Toff": 12, "C4C": 6}},
	{name: "Wren Castillo", level: "Junior", inventory: map[string]int{"Sam": 2, "Tags": 8, "TMint": 12, "Exp": 3, "Toff": 1}},
	{name: "Sadie Whitfield", level: "Daisy", inventory: map[string]int{}},
}

var seedBooths = []models.BoothSignup{
	{Business: "Fresh Market", Location: "Main St entrance", Date: "2026-02-07", StartTime: "10:00", EndTime: "14:00", Duration: "4h"},
	{Business: "Hardware Depot", Location: "Garden center doors", Date: "2026-02-14", StartTime: "09:00", EndTime: "12:00", Duration: "3h"},
}

// EnsureSeed populates an empty database with the admin account, the demo
// roster with starting inventory, and the booth schedule. A non-empty
// roster is left alone.
func (app *App) EnsureSeed(ctx context.Context) error {
	count, err := app.db.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return app.seed(ctx)
}

func (app *App) seed(ctx context.Context) error {
	admin := &models.User{
		Username: config.AdminUsername,
		Name:     "Troop Leader",
		Level:    "OrderCzar",
		IsAdmin:  true,
	}
	if _, err := app.db.CreateUser(ctx, admin, security.HashPIN(config.AdminPassword)); err != nil {
		return err
	}

	for _, scout := range seedRoster {
		user := &models.User{
			Username: security.GenerateUsername(scout.name),
			Name:     scout.name,
			Level:    scout.level,
		}
		user, err := app.db.CreateUser(ctx, user, security.HashPIN(security.GeneratePIN()))
		if err != nil {
			return err
		}
		for cookieType, starting := range scout.inventory {
			record := models.CookieRecord{Starting: starting}
			if err := app.db.SeedInventoryRecord(ctx, user.ID, cookieType, record); err != nil {
				return err
			}
		}
	}

	for _, booth := range seedBooths {
		b := booth
		if err := app.db.AddBooth(ctx, &b); err != nil {
			return err
		}
	}

	return nil
}

// ProcessReset wipes every table, including the audit log, and reseeds the
// roster. Admin only. This is the single operation allowed to clear logs.
func (app *App) ProcessReset(ctx context.Context, actorID int32) error {
	if _, err := app.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if err := app.db.ResetSystem(ctx); err != nil {
		return err
	}
	return app.seed(ctx)
}
