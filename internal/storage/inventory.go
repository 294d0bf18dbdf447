package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"troop_cookies/internal/models"

	"github.com/google/uuid"
)

const (
	getRecordQuery     = `SELECT starting, additional, sold FROM inventory WHERE user_id = $1 AND cookie_type = $2;`
	ensureRecordQuery  = `INSERT INTO inventory (user_id, cookie_type) VALUES ($1, $2) ON CONFLICT (user_id, cookie_type) DO NOTHING;`
	lockRecordQuery    = `SELECT starting, additional, sold FROM inventory WHERE user_id = $1 AND cookie_type = $2 FOR UPDATE;`
	upsertRecordQuery  = `INSERT INTO inventory (user_id, cookie_type, starting, additional, sold) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (user_id, cookie_type) DO UPDATE SET starting = $3, additional = $4, sold = $5;`
	userInventoryQuery = `SELECT cookie_type, starting, additional, sold FROM inventory WHERE user_id = $1;`
	allInventoryQuery  = `SELECT user_id, cookie_type, starting, additional, sold FROM inventory;`
	appendLogQuery     = `INSERT INTO inventory_logs (id, user_id, user_name, cookie_type, field, old_value, new_value, changed_by) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	listLogsQuery      = `SELECT id, user_id, user_name, cookie_type, field, old_value, new_value, changed_by, created_at FROM inventory_logs ORDER BY created_at DESC;`
	listLogsCapQuery   = `SELECT id, user_id, user_name, cookie_type, field, old_value, new_value, changed_by, created_at FROM inventory_logs ORDER BY created_at DESC LIMIT $1;`
)

// GetInventoryRecord returns the record for (scout, cookie). A missing row
// reads as an all-zero record.
func (postgresql *PostgreSQL) GetInventoryRecord(ctx context.Context, userID int32, cookieType string) (models.CookieRecord, error) {
	var record models.CookieRecord
	err := postgresql.db.QueryRowContext(ctx, getRecordQuery, userID, cookieType).Scan(
		&record.Starting, &record.Additional, &record.Sold)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CookieRecord{}, nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getRecordQuery: %s", err)
		return record, err
	}
	return record, nil
}

// GetUserInventory returns all records for one scout keyed by cookie code.
func (postgresql *PostgreSQL) GetUserInventory(ctx context.Context, userID int32) (map[string]models.CookieRecord, error) {
	rows, err := postgresql.db.QueryContext(ctx, userInventoryQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query userInventoryQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	inventory := make(map[string]models.CookieRecord)
	for rows.Next() {
		var cookieType string
		var record models.CookieRecord
		if err := rows.Scan(&cookieType, &record.Starting, &record.Additional, &record.Sold); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in GetUserInventory method: %s", err)
			return nil, err
		}
		inventory[cookieType] = record
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in GetUserInventory method: %s", err)
		return inventory, err
	}

	return inventory, nil
}

// GetTroopInventory returns every record in the ledger keyed by scout id.
func (postgresql *PostgreSQL) GetTroopInventory(ctx context.Context) (map[int32]map[string]models.CookieRecord, error) {
	rows, err := postgresql.db.QueryContext(ctx, allInventoryQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query allInventoryQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	inventory := make(map[int32]map[string]models.CookieRecord)
	for rows.Next() {
		var userID int32
		var cookieType string
		var record models.CookieRecord
		if err := rows.Scan(&userID, &cookieType, &record.Starting, &record.Additional, &record.Sold); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in GetTroopInventory method: %s", err)
			return nil, err
		}
		if inventory[userID] == nil {
			inventory[userID] = make(map[string]models.CookieRecord)
		}
		inventory[userID][cookieType] = record
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in GetTroopInventory method: %s", err)
		return inventory, err
	}

	return inventory, nil
}

// lockRecordTx reads a record under FOR UPDATE. A missing row is
// materialized as all zeroes first, so the SELECT always locks a real row;
// FOR UPDATE on a non-existent row locks nothing, and two settlements
// crediting the same fresh record could then both read zeroes.
func (postgresql *PostgreSQL) lockRecordTx(ctx context.Context, tx *sql.Tx, userID int32, cookieType string) (models.CookieRecord, error) {
	if _, err := tx.ExecContext(ctx, ensureRecordQuery, userID, cookieType); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query ensureRecordQuery: %s", err)
		return models.CookieRecord{}, err
	}

	var record models.CookieRecord
	err := tx.QueryRowContext(ctx, lockRecordQuery, userID, cookieType).Scan(
		&record.Starting, &record.Additional, &record.Sold)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query lockRecordQuery: %s", err)
		return record, err
	}
	return record, nil
}

func (postgresql *PostgreSQL) writeRecordTx(ctx context.Context, tx *sql.Tx, userID int32, cookieType string, record models.CookieRecord) error {
	_, err := tx.ExecContext(ctx, upsertRecordQuery, userID, cookieType,
		record.Starting, record.Additional, record.Sold)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query upsertRecordQuery: %s", err)
	}
	return err
}

// appendLogTx writes one audit entry inside the mutating transaction, so
// the entry commits together with the change it records.
func (postgresql *PostgreSQL) appendLogTx(ctx context.Context, tx *sql.Tx, entry models.InventoryLog) error {
	_, err := tx.ExecContext(ctx, appendLogQuery, uuid.NewString(),
		entry.UserID, entry.UserName, entry.CookieType, entry.Field,
		entry.OldValue, entry.NewValue, entry.ChangedBy)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query appendLogQuery: %s", err)
	}
	return err
}

// SetInventoryField overwrites one counter of one record and appends an
// audit entry, in a single transaction. Unless override is set, a write
// that would make the derived remaining negative fails with ErrInvariant
// and nothing is persisted. Override is the admin correction path.
func (postgresql *PostgreSQL) SetInventoryField(ctx context.Context, userID int32, cookieType, field string, value int, changedBy string, override bool) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userName, err := postgresql.userNameTx(ctx, tx, userID)
	if err != nil {
		return err
	}

	record, err := postgresql.lockRecordTx(ctx, tx, userID, cookieType)
	if err != nil {
		return err
	}

	oldValue := 0
	updated := record
	switch field {
	case models.FieldStarting:
		oldValue, updated.Starting = record.Starting, value
	case models.FieldAdditional:
		oldValue, updated.Additional = record.Additional, value
	case models.FieldSold:
		oldValue, updated.Sold = record.Sold, value
	default:
		return fmt.Errorf("storage: unknown inventory field %q", field)
	}

	if !override && updated.Remaining() < 0 {
		return ErrInvariant
	}

	if err := postgresql.writeRecordTx(ctx, tx, userID, cookieType, updated); err != nil {
		return err
	}

	err = postgresql.appendLogTx(ctx, tx, models.InventoryLog{
		UserID:     userID,
		UserName:   userName,
		CookieType: cookieType,
		Field:      field,
		OldValue:   oldValue,
		NewValue:   value,
		ChangedBy:  changedBy,
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

// SeedInventoryRecord writes a record directly, without an audit entry.
// Used only when populating a fresh or freshly reset database.
func (postgresql *PostgreSQL) SeedInventoryRecord(ctx context.Context, userID int32, cookieType string, record models.CookieRecord) error {
	_, err := postgresql.db.ExecContext(ctx, upsertRecordQuery, userID, cookieType,
		record.Starting, record.Additional, record.Sold)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query upsertRecordQuery: %s", err)
	}
	return err
}

// RecordSale increments a scout's sold counter by quantity. Fails with
// ErrOverSell when quantity exceeds the remaining stock at the time of the
// call; the record is left untouched.
func (postgresql *PostgreSQL) RecordSale(ctx context.Context, userID int32, cookieType string, quantity int, changedBy string) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userName, err := postgresql.userNameTx(ctx, tx, userID)
	if err != nil {
		return err
	}

	record, err := postgresql.lockRecordTx(ctx, tx, userID, cookieType)
	if err != nil {
		return err
	}

	if quantity > record.Remaining() {
		return ErrOverSell
	}

	updated := record
	updated.Sold += quantity
	if err := postgresql.writeRecordTx(ctx, tx, userID, cookieType, updated); err != nil {
		return err
	}

	err = postgresql.appendLogTx(ctx, tx, models.InventoryLog{
		UserID:     userID,
		UserName:   userName,
		CookieType: cookieType,
		Field:      models.FieldSold,
		OldValue:   record.Sold,
		NewValue:   updated.Sold,
		ChangedBy:  changedBy,
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

// TransferBoxes moves quantity boxes from one scout's additional counter to
// another's, in one transaction covering both rows and both audit entries.
// Fails with ErrInsufficientStock when quantity exceeds the sender's
// remaining. Rows are locked in scout-id order so two concurrent opposite
// transfers cannot deadlock.
func (postgresql *PostgreSQL) TransferBoxes(ctx context.Context, fromUserID, toUserID int32, cookieType string, quantity int) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fromName, err := postgresql.userNameTx(ctx, tx, fromUserID)
	if err != nil {
		return err
	}
	toName, err := postgresql.userNameTx(ctx, tx, toUserID)
	if err != nil {
		return err
	}

	first, second := fromUserID, toUserID
	if second < first {
		first, second = second, first
	}
	records := make(map[int32]models.CookieRecord, 2)
	for _, id := range []int32{first, second} {
		record, err := postgresql.lockRecordTx(ctx, tx, id, cookieType)
		if err != nil {
			return err
		}
		records[id] = record
	}

	fromRecord, toRecord := records[fromUserID], records[toUserID]
	if quantity > fromRecord.Remaining() {
		return ErrInsufficientStock
	}

	updatedFrom := fromRecord
	updatedFrom.Additional -= quantity
	updatedTo := toRecord
	updatedTo.Additional += quantity

	if err := postgresql.writeRecordTx(ctx, tx, fromUserID, cookieType, updatedFrom); err != nil {
		return err
	}
	if err := postgresql.writeRecordTx(ctx, tx, toUserID, cookieType, updatedTo); err != nil {
		return err
	}

	err = postgresql.appendLogTx(ctx, tx, models.InventoryLog{
		UserID:     fromUserID,
		UserName:   fromName,
		CookieType: cookieType,
		Field:      models.FieldAdditional,
		OldValue:   fromRecord.Additional,
		NewValue:   updatedFrom.Additional,
		ChangedBy:  "Transfer to " + toName,
	})
	if err != nil {
		return err
	}
	err = postgresql.appendLogTx(ctx, tx, models.InventoryLog{
		UserID:     toUserID,
		UserName:   toName,
		CookieType: cookieType,
		Field:      models.FieldAdditional,
		OldValue:   toRecord.Additional,
		NewValue:   updatedTo.Additional,
		ChangedBy:  "Transfer from " + fromName,
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListLogs returns audit entries most-recent-first. A limit of zero or less
// returns everything.
func (postgresql *PostgreSQL) ListLogs(ctx context.Context, limit int) ([]models.InventoryLog, error) {
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = postgresql.db.QueryContext(ctx, listLogsCapQuery, limit)
	} else {
		rows, err = postgresql.db.QueryContext(ctx, listLogsQuery)
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listLogsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.InventoryLog, 0)
	for rows.Next() {
		var entry models.InventoryLog
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.UserName, &entry.CookieType,
			&entry.Field, &entry.OldValue, &entry.NewValue, &entry.ChangedBy, &entry.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListLogs method: %s", err)
			return nil, err
		}
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListLogs method: %s", err)
		return logs, err
	}

	return logs, nil
}
