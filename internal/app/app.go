// Package app provides the core business logic for the troop cookie
// tracker: authentication, the inventory ledger, box transfers and trades,
// roster management, the booth and meeting schedule, notifications, chat,
// and bulk report import. It validates requests, performs capability checks,
// and delegates persistence to the storage layer.
package app

import (
	"context"
	"errors"
	"strings"

	"troop_cookies/internal/catalog"
	"troop_cookies/internal/models"
	"troop_cookies/internal/pkg/auth"
	"troop_cookies/internal/pkg/logger"
	"troop_cookies/internal/pkg/security"
	"troop_cookies/internal/storage"
)

// Predefined errors for invalid or disallowed requests.
var (
	// ErrMissingUsernameOrPIN indicates a login attempt without credentials.
	ErrMissingUsernameOrPIN = errors.New("app: missing username or pin")
	// ErrUnauthorized indicates a scout attempting an operation reserved for
	// the admin or for a different scout.
	ErrUnauthorized = errors.New("app: operation not allowed for this scout")
	// ErrInvalidCookieType indicates a cookie code outside the catalog.
	ErrInvalidCookieType = errors.New("app: unknown cookie type")
	// ErrInvalidField indicates an inventory field other than
	// starting/additional/sold.
	ErrInvalidField = errors.New("app: unknown inventory field")
	// ErrInvalidQuantity indicates a zero or negative quantity.
	ErrInvalidQuantity = errors.New("app: quantity must be positive")
	// ErrNegativeValue indicates a non-admin attempting to write a negative
	// counter value.
	ErrNegativeValue = errors.New("app: value must not be negative")
	// ErrSelfTrade indicates a trade or transfer naming the same scout on
	// both sides.
	ErrSelfTrade = errors.New("app: cannot trade with yourself")
	// ErrEmptyTrade indicates a trade with no positive quantity on either side.
	ErrEmptyTrade = errors.New("app: trade must include at least one box")
	// ErrInvalidLevel indicates an unknown scout level.
	ErrInvalidLevel = errors.New("app: unknown scout level")
	// ErrMissingName indicates a roster entry without a display name.
	ErrMissingName = errors.New("app: missing scout name")
	// ErrInvalidImportMode indicates an import mode other than replace/add.
	ErrInvalidImportMode = errors.New("app: import mode must be replace or add")
	// ErrEmptyMessage indicates a chat message without content.
	ErrEmptyMessage = errors.New("app: message content is empty")
)

// App encapsulates the application logic and dependencies required to
// process requests.
type App struct {
	db  storage.Storage
	log *logger.Logger
}

// NewApp creates a new App with the provided storage and logger.
func NewApp(db storage.Storage, log *logger.Logger) *App {
	return &App{db: db, log: log}
}

// ProcessAuth verifies a scout's username and PIN and issues a token.
func (app *App) ProcessAuth(ctx context.Context, req models.AuthRequest) (string, error) {
	if req.Username == "" || req.PIN == "" {
		return "", ErrMissingUsernameOrPIN
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	user, pinHash, err := app.db.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := security.CheckPIN(pinHash, req.PIN); err != nil {
		return "", err
	}

	if err := app.db.SetOnline(ctx, user.ID, true); err != nil {
		app.log.Sugar().Errorf("Failed to mark scout %d online: %s", user.ID, err)
	}

	return auth.GenerateToken(user.ID, user.IsAdmin)
}

// ProcessLogout clears the scout's online flag.
func (app *App) ProcessLogout(ctx context.Context, userID int32) error {
	return app.db.SetOnline(ctx, userID, false)
}

// requireAdmin resolves the acting scout and rejects non-admins. Every
// admin-only operation calls this at its entry point.
func (app *App) requireAdmin(ctx context.Context, actorID int32) (*models.User, error) {
	actor, err := app.db.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin {
		return nil, ErrUnauthorized
	}
	return actor, nil
}

// ProcessInfo aggregates the calling scout's profile, inventory with derived
// remaining counts, financial summary, and unread notification count.
func (app *App) ProcessInfo(ctx context.Context, userID int32) (*models.InfoResponse, error) {
	user, err := app.db.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	inventory, err := app.db.GetUserInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]models.InventoryRow, 0, len(catalog.CookieTypes))
	var financial models.FinancialSummary
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
		financial.BoxesSold += record.Sold
		financial.TotalDue += record.Sold * catalog.Prices[cookieType]
	}
	financial.TroopProfit = financial.BoxesSold * catalog.TroopProfitPerBox

	unread, err := app.db.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.InfoResponse{
		Scout:               *user,
		Inventory:           rows,
		Financial:           financial,
		UnreadNotifications: unread,
	}, nil
}
