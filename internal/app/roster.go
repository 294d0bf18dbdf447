package app

import (
	"context"
	"errors"

	"troop_cookies/internal/models"
	"troop_cookies/internal/pkg/security"
	"troop_cookies/internal/storage"
)

func validLevel(level string) bool {
	for _, l := range models.ScoutLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ProcessAddScout creates a new roster entry with a generated username and
// 4-digit PIN. Admin only. The PIN is returned in plaintext exactly once so
// the admin can hand it to the scout.
func (app *App) ProcessAddScout(ctx context.Context, actorID int32, req models.AddScoutRequest) (*models.User, error) {
	if _, err := app.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if !validLevel(req.Level) {
		return nil, ErrInvalidLevel
	}

	username := security.GenerateUsername(req.Name)
	if _, _, err := app.db.GetUserByUsername(ctx, username); err == nil {
		username = security.AlternateUsername(req.Name)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	pin := security.GeneratePIN()
	user := &models.User{
		Username: username,
		Name:     req.Name,
		Level:    req.Level,
	}
	user, err := app.db.CreateUser(ctx, user, security.HashPIN(pin))
	if err != nil {
		return nil, err
	}

	user.PIN = pin
	return user, nil
}

// ProcessRemoveScout deletes a scout and, through the schema cascade, their
// inventory records. Admin only.
func (app *App) ProcessRemoveScout(ctx context.Context, actorID, userID int32) error {
	if _, err := app.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return app.db.DeleteUser(ctx, userID)
}

// ProcessListScouts returns the troop roster.
func (app *App) ProcessListScouts(ctx context.Context) ([]models.User, error) {
	return app.db.ListUsers(ctx)
}

// ProcessUpdateBanner stores the calling scout's banner color preference.
func (app *App) ProcessUpdateBanner(ctx context.Context, actorID int32, color string) error {
	return app.db.UpdateBannerColor(ctx, actorID, color)
}
