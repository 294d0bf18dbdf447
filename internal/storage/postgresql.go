// Package storage provides primitives for connecting to and interacting with
// the troop database. It defines the Storage interface along with a
// PostgreSQL implementation that manages the roster, the cookie inventory
// ledger, trades, the audit log, and troop schedule and messaging records.
//
// All ledger arithmetic happens inside transactions: rows are locked with
// SELECT ... FOR UPDATE before they are read, so a transfer or trade
// settlement either applies in full or not at all, even under concurrent
// callers.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"troop_cookies/internal/models"
	"troop_cookies/internal/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	createUserQuery   = `INSERT INTO users (username, name, level, is_admin, pin_hash) VALUES ($1, $2, $3, $4, $5) RETURNING id;`
	userByNameQuery   = `SELECT id, username, name, level, is_admin, is_online, banner_color, pin_hash FROM users WHERE username = $1;`
	userByIDQuery     = `SELECT id, username, name, level, is_admin, is_online, banner_color FROM users WHERE id = $1;`
	listUsersQuery    = `SELECT id, username, name, level, is_admin, is_online, banner_color FROM users ORDER BY name;`
	deleteUserQuery   = `DELETE FROM users WHERE id = $1;`
	updateBannerQuery = `UPDATE users SET banner_color = $1 WHERE id = $2;`
	setOnlineQuery    = `UPDATE users SET is_online = $1 WHERE id = $2;`
	userNameTxQuery   = `SELECT name FROM users WHERE id = $1;`
	countUsersQuery   = `SELECT COUNT(*) FROM users;`
)

// Storage defines the methods required for data storage operations.
type Storage interface {
	// Close closes the database connection.
	Close()

	// Bootstrap applies the schema; ResetSystem wipes all tables.
	Bootstrap(ctx context.Context) error
	ResetSystem(ctx context.Context) error

	// Roster and authentication.
	CountUsers(ctx context.Context) (int, error)
	CreateUser(ctx context.Context, user *models.User, pinHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, string, error)
	GetUserByID(ctx context.Context, userID int32) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int32) error
	UpdateBannerColor(ctx context.Context, userID int32, color string) error
	SetOnline(ctx context.Context, userID int32, online bool) error

	// Inventory ledger.
	GetInventoryRecord(ctx context.Context, userID int32, cookieType string) (models.CookieRecord, error)
	GetUserInventory(ctx context.Context, userID int32) (map[string]models.CookieRecord, error)
	GetTroopInventory(ctx context.Context) (map[int32]map[string]models.CookieRecord, error)
	SetInventoryField(ctx context.Context, userID int32, cookieType, field string, value int, changedBy string, override bool) error
	SeedInventoryRecord(ctx context.Context, userID int32, cookieType string, record models.CookieRecord) error
	RecordSale(ctx context.Context, userID int32, cookieType string, quantity int, changedBy string) error
	TransferBoxes(ctx context.Context, fromUserID, toUserID int32, cookieType string, quantity int) error

	// Trades.
	CreateTrade(ctx context.Context, trade *models.TradeRequest) error
	GetTrade(ctx context.Context, tradeID string) (*models.TradeRequest, error)
	ListTrades(ctx context.Context) ([]models.TradeRequest, error)
	ResolveTrade(ctx context.Context, tradeID string, accept bool) (*models.TradeRequest, error)

	// Audit log.
	ListLogs(ctx context.Context, limit int) ([]models.InventoryLog, error)

	// Booths and meetings.
	AddBooth(ctx context.Context, booth *models.BoothSignup) error
	ListBooths(ctx context.Context) ([]models.BoothSignup, error)
	DeleteBooth(ctx context.Context, boothID string) error
	AddMeeting(ctx context.Context, meeting *models.TroopMeeting) error
	ListMeetings(ctx context.Context) ([]models.TroopMeeting, error)
	DeleteMeeting(ctx context.Context, meetingID string) (*models.TroopMeeting, error)

	// Notifications.
	AddNotification(ctx context.Context, notification *models.TroopNotification) error
	ListNotifications(ctx context.Context) ([]models.TroopNotification, error)
	MarkNotificationsRead(ctx context.Context, userID int32) error
	CountUnreadNotifications(ctx context.Context, userID int32) (int, error)

	// Messages.
	AddMessage(ctx context.Context, message *models.ChatMessage) error
	ListMessages(ctx context.Context, userID int32) ([]models.ChatMessage, error)
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db  *sql.DB
	log *logger.Logger
}

// NewPostgreSQL opens a connection with the provided connection string and
// pings the database to ensure connectivity.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// CountUsers returns the roster size; used to decide whether to seed.
func (postgresql *PostgreSQL) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := postgresql.db.QueryRowContext(ctx, countUsersQuery).Scan(&count); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query countUsersQuery: %s", err)
		return 0, err
	}
	return count, nil
}

// CreateUser inserts a new scout with the given PIN hash and returns the
// user with their generated id filled in.
func (postgresql *PostgreSQL) CreateUser(ctx context.Context, user *models.User, pinHash string) (*models.User, error) {
	err := postgresql.db.QueryRowContext(ctx, createUserQuery,
		user.Username, user.Name, user.Level, user.IsAdmin, pinHash).Scan(&user.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createUserQuery: %s", err)
		return user, err
	}
	return user, nil
}

// GetUserByUsername returns a scout and their stored PIN hash. Returns
// ErrNotFound when the username is not on the roster.
func (postgresql *PostgreSQL) GetUserByUsername(ctx context.Context, username string) (*models.User, string, error) {
	user := &models.User{}
	var pinHash string

	err := postgresql.db.QueryRowContext(ctx, userByNameQuery, username).Scan(
		&user.ID, &user.Username, &user.Name, &user.Level,
		&user.IsAdmin, &user.IsOnline, &user.BannerColor, &pinHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query userByNameQuery: %s", err)
		return nil, "", err
	}

	return user, pinHash, nil
}

// GetUserByID returns a scout by id, or ErrNotFound.
func (postgresql *PostgreSQL) GetUserByID(ctx context.Context, userID int32) (*models.User, error) {
	user := &models.User{}

	err := postgresql.db.QueryRowContext(ctx, userByIDQuery, userID).Scan(
		&user.ID, &user.Username, &user.Name, &user.Level,
		&user.IsAdmin, &user.IsOnline, &user.BannerColor)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query userByIDQuery: %s", err)
		return nil, err
	}

	return user, nil
}

// ListUsers returns the full roster ordered by display name.
func (postgresql *PostgreSQL) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := postgresql.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listUsersQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Name, &user.Level,
			&user.IsAdmin, &user.IsOnline, &user.BannerColor); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListUsers method: %s", err)
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListUsers method: %s", err)
		return users, err
	}

	return users, nil
}

// DeleteUser removes a scout; their inventory records go with them via the
// ON DELETE CASCADE on the inventory table.
func (postgresql *PostgreSQL) DeleteUser(ctx context.Context, userID int32) error {
	result, err := postgresql.db.ExecContext(ctx, deleteUserQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteUserQuery: %s", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in deleteUserQuery: %s", err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateBannerColor stores a scout's display-color preference.
func (postgresql *PostgreSQL) UpdateBannerColor(ctx context.Context, userID int32, color string) error {
	if _, err := postgresql.db.ExecContext(ctx, updateBannerQuery, color, userID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateBannerQuery: %s", err)
		return err
	}
	return nil
}

// SetOnline flips a scout's online flag.
func (postgresql *PostgreSQL) SetOnline(ctx context.Context, userID int32, online bool) error {
	if _, err := postgresql.db.ExecContext(ctx, setOnlineQuery, online, userID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query setOnlineQuery: %s", err)
		return err
	}
	return nil
}

// userNameTx resolves a scout's display name inside a transaction.
func (postgresql *PostgreSQL) userNameTx(ctx context.Context, tx *sql.Tx, userID int32) (string, error) {
	var name string
	err := tx.QueryRowContext(ctx, userNameTxQuery, userID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query userNameTxQuery: %s", err)
		return "", err
	}
	return name, nil
}
