package app

import (
	"context"
	"fmt"

	"troop_cookies/internal/importer"
	"troop_cookies/internal/models"
)

// Import modes: replace overwrites the starting counters, add accumulates
// into the additional counters (for restock reports).
const (
	ImportModeReplace = "replace"
	ImportModeAdd     = "add"
)

// ProcessImport applies a parsed cookie report to the ledger. Admin only.
// Each matched cell becomes one admin-override field write with its own
// audit entry; unmatched scouts and columns are collected as row errors.
func (app *App) ProcessImport(ctx context.Context, actorID int32, req models.ImportRequest) (*models.ImportResult, error) {
	actor, err := app.requireAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if req.Mode != ImportModeReplace && req.Mode != ImportModeAdd {
		return nil, ErrInvalidImportMode
	}

	report, err := importer.Parse(req.CSV)
	if err != nil {
		return nil, err
	}

	users, err := app.db.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := &models.ImportResult{Errors: report.Errors}
	for _, cell := range report.Cells {
		scout := importer.MatchScout(users, cell.ScoutName)
		if scout == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("no rostered scout matches %q", cell.ScoutName))
			continue
		}

		field := models.FieldStarting
		value := cell.Quantity
		if req.Mode == ImportModeAdd {
			record, err := app.db.GetInventoryRecord(ctx, scout.ID, cell.CookieType)
			if err != nil {
				return result, err
			}
			field = models.FieldAdditional
			value = record.Additional + cell.Quantity
		}

		err := app.db.SetInventoryField(ctx, scout.ID, cell.CookieType, field, value, actor.Name, true)
		if err != nil {
			return result, err
		}
		result.Applied++
	}

	return result, nil
}
