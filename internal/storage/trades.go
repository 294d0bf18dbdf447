package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"

	"troop_cookies/internal/models"

	"github.com/google/uuid"
)

const (
	createTradeQuery = `INSERT INTO trades (id, from_user_id, from_user_name, to_user_id, to_user_name, offering, requesting, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at;`
	getTradeQuery    = `SELECT id, from_user_id, from_user_name, to_user_id, to_user_name, offering, requesting, status, created_at FROM trades WHERE id = $1;`
	lockTradeQuery   = `SELECT id, from_user_id, from_user_name, to_user_id, to_user_name, offering, requesting, status, created_at FROM trades WHERE id = $1 FOR UPDATE;`
	listTradesQuery  = `SELECT id, from_user_id, from_user_name, to_user_id, to_user_name, offering, requesting, status, created_at FROM trades ORDER BY created_at DESC;`
	setTradeQuery    = `UPDATE trades SET status = $1 WHERE id = $2;`
)

// CreateTrade stores a new pending trade. The id is generated here.
func (postgresql *PostgreSQL) CreateTrade(ctx context.Context, trade *models.TradeRequest) error {
	offering, err := json.Marshal(trade.Offering)
	if err != nil {
		return err
	}
	requesting, err := json.Marshal(trade.Requesting)
	if err != nil {
		return err
	}

	trade.ID = uuid.NewString()
	trade.Status = models.TradePending
	err = postgresql.db.QueryRowContext(ctx, createTradeQuery, trade.ID,
		trade.FromUserID, trade.FromUserName, trade.ToUserID, trade.ToUserName,
		offering, requesting, trade.Status).Scan(&trade.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createTradeQuery: %s", err)
		return err
	}
	return nil
}

func scanTrade(row interface {
	Scan(dest ...any) error
}) (*models.TradeRequest, error) {
	trade := &models.TradeRequest{}
	var offering, requesting []byte
	err := row.Scan(&trade.ID, &trade.FromUserID, &trade.FromUserName,
		&trade.ToUserID, &trade.ToUserName, &offering, &requesting,
		&trade.Status, &trade.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(offering, &trade.Offering); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(requesting, &trade.Requesting); err != nil {
		return nil, err
	}
	return trade, nil
}

// GetTrade returns one trade by id, or ErrNotFound.
func (postgresql *PostgreSQL) GetTrade(ctx context.Context, tradeID string) (*models.TradeRequest, error) {
	trade, err := scanTrade(postgresql.db.QueryRowContext(ctx, getTradeQuery, tradeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getTradeQuery: %s", err)
		return nil, err
	}
	return trade, nil
}

// ListTrades returns every trade, newest first.
func (postgresql *PostgreSQL) ListTrades(ctx context.Context) ([]models.TradeRequest, error) {
	rows, err := postgresql.db.QueryContext(ctx, listTradesQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listTradesQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	trades := make([]models.TradeRequest, 0)
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListTrades method: %s", err)
			return nil, err
		}
		trades = append(trades, *trade)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListTrades method: %s", err)
		return trades, err
	}

	return trades, nil
}

// ledgerKey addresses one inventory row touched by a trade settlement.
type ledgerKey struct {
	userID     int32
	cookieType string
}

// ResolveTrade accepts or rejects a pending trade. Responding to an already
// resolved trade is a no-op that returns the stored trade unchanged.
//
// Acceptance runs in a single transaction: the trade row and every touched
// inventory row are locked, every offering line is revalidated against the
// proposer's remaining and every requesting line against the counterparty's,
// and any shortfall aborts the whole settlement with ErrInsufficientStock.
// Only then do the movements, the audit entries, and the status change
// commit together.
func (postgresql *PostgreSQL) ResolveTrade(ctx context.Context, tradeID string, accept bool) (*models.TradeRequest, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	trade, err := scanTrade(tx.QueryRowContext(ctx, lockTradeQuery, tradeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query lockTradeQuery: %s", err)
		return nil, err
	}

	if trade.Status != models.TradePending {
		return trade, nil
	}

	if !accept {
		if _, err := tx.ExecContext(ctx, setTradeQuery, models.TradeRejected, tradeID); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query setTradeQuery: %s", err)
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		trade.Status = models.TradeRejected
		return trade, nil
	}

	// Net movement of each party's additional counter per cookie type.
	// Zero and negative quantities are not part of the trade.
	deltas := make(map[ledgerKey]int)
	for cookieType, qty := range trade.Offering {
		if qty <= 0 {
			continue
		}
		deltas[ledgerKey{trade.FromUserID, cookieType}] -= qty
		deltas[ledgerKey{trade.ToUserID, cookieType}] += qty
	}
	for cookieType, qty := range trade.Requesting {
		if qty <= 0 {
			continue
		}
		deltas[ledgerKey{trade.ToUserID, cookieType}] -= qty
		deltas[ledgerKey{trade.FromUserID, cookieType}] += qty
	}

	keys := make([]ledgerKey, 0, len(deltas))
	for key := range deltas {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].userID != keys[j].userID {
			return keys[i].userID < keys[j].userID
		}
		return keys[i].cookieType < keys[j].cookieType
	})

	records := make(map[ledgerKey]models.CookieRecord, len(keys))
	for _, key := range keys {
		record, err := postgresql.lockRecordTx(ctx, tx, key.userID, key.cookieType)
		if err != nil {
			return nil, err
		}
		records[key] = record
	}

	// Each line is validated against the pre-trade state of the party
	// giving the boxes away, before anything moves.
	for cookieType, qty := range trade.Offering {
		if qty <= 0 {
			continue
		}
		if qty > records[ledgerKey{trade.FromUserID, cookieType}].Remaining() {
			return nil, ErrInsufficientStock
		}
	}
	for cookieType, qty := range trade.Requesting {
		if qty <= 0 {
			continue
		}
		if qty > records[ledgerKey{trade.ToUserID, cookieType}].Remaining() {
			return nil, ErrInsufficientStock
		}
	}

	counterpart := map[int32]string{
		trade.FromUserID: trade.ToUserName,
		trade.ToUserID:   trade.FromUserName,
	}
	for _, key := range keys {
		delta := deltas[key]
		if delta == 0 {
			continue
		}
		record := records[key]
		updated := record
		updated.Additional += delta
		if err := postgresql.writeRecordTx(ctx, tx, key.userID, key.cookieType, updated); err != nil {
			return nil, err
		}

		userName, err := postgresql.userNameTx(ctx, tx, key.userID)
		if err != nil {
			return nil, err
		}
		err = postgresql.appendLogTx(ctx, tx, models.InventoryLog{
			UserID:     key.userID,
			UserName:   userName,
			CookieType: key.cookieType,
			Field:      models.FieldAdditional,
			OldValue:   record.Additional,
			NewValue:   updated.Additional,
			ChangedBy:  "Trade with " + counterpart[key.userID],
		})
		if err != nil {
			return nil, err
		}
	}

	if _, err := tx.ExecContext(ctx, setTradeQuery, models.TradeAccepted, tradeID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query setTradeQuery: %s", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	trade.Status = models.TradeAccepted
	return trade, nil
}
