package storage

import (
	"context"
	"database/sql"
	"errors"

	"troop_cookies/internal/models"

	"github.com/google/uuid"
)

const (
	addBoothQuery      = `INSERT INTO booths (id, business, location, notes, date, start_time, end_time, duration) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	listBoothsQuery    = `SELECT id, business, location, notes, date, start_time, end_time, duration FROM booths ORDER BY date, start_time;`
	deleteBoothQuery   = `DELETE FROM booths WHERE id = $1;`
	addMeetingQuery    = `INSERT INTO meetings (id, title, description, date, start_time, end_time, location) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	listMeetingsQuery  = `SELECT id, title, description, date, start_time, end_time, location FROM meetings ORDER BY date, start_time;`
	getMeetingQuery    = `SELECT id, title, description, date, start_time, end_time, location FROM meetings WHERE id = $1;`
	deleteMeetingQuery = `DELETE FROM meetings WHERE id = $1;`
	addNotifQuery      = `INSERT INTO notifications (id, type, title, message) VALUES ($1, $2, $3, $4) RETURNING created_at;`
	listNotifsQuery    = `SELECT id, type, title, message, created_at FROM notifications ORDER BY created_at DESC;`
	listNotifReadsQ    = `SELECT notification_id, user_id FROM notification_reads;`
	markReadQuery      = `INSERT INTO notification_reads (notification_id, user_id) SELECT id, $1 FROM notifications ON CONFLICT DO NOTHING;`
	markOneReadQuery   = `INSERT INTO notification_reads (notification_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`
	countUnreadQuery   = `SELECT COUNT(*) FROM notifications n WHERE NOT EXISTS (SELECT 1 FROM notification_reads r WHERE r.notification_id = n.id AND r.user_id = $1);`
	addMessageQuery    = `INSERT INTO messages (id, sender_id, sender_name, recipient_id, content) VALUES ($1, $2, $3, $4, $5) RETURNING created_at;`
	listMessagesQuery  = `SELECT id, sender_id, sender_name, recipient_id, content, created_at FROM messages WHERE recipient_id IS NULL OR sender_id = $1 OR recipient_id = $1 ORDER BY created_at;`
)

// AddBooth stores a booth signup; the id is generated here.
func (postgresql *PostgreSQL) AddBooth(ctx context.Context, booth *models.BoothSignup) error {
	booth.ID = uuid.NewString()
	_, err := postgresql.db.ExecContext(ctx, addBoothQuery, booth.ID,
		booth.Business, booth.Location, booth.Notes, booth.Date,
		booth.StartTime, booth.EndTime, booth.Duration)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query addBoothQuery: %s", err)
	}
	return err
}

// ListBooths returns booth signups in chronological order.
func (postgresql *PostgreSQL) ListBooths(ctx context.Context) ([]models.BoothSignup, error) {
	rows, err := postgresql.db.QueryContext(ctx, listBoothsQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listBoothsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	booths := make([]models.BoothSignup, 0)
	for rows.Next() {
		var booth models.BoothSignup
		if err := rows.Scan(&booth.ID, &booth.Business, &booth.Location, &booth.Notes,
			&booth.Date, &booth.StartTime, &booth.EndTime, &booth.Duration); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListBooths method: %s", err)
			return nil, err
		}
		booths = append(booths, booth)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListBooths method: %s", err)
		return booths, err
	}

	return booths, nil
}

// DeleteBooth removes a booth signup, or returns ErrNotFound.
func (postgresql *PostgreSQL) DeleteBooth(ctx context.Context, boothID string) error {
	result, err := postgresql.db.ExecContext(ctx, deleteBoothQuery, boothID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteBoothQuery: %s", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// AddMeeting stores a troop meeting; the id is generated here.
func (postgresql *PostgreSQL) AddMeeting(ctx context.Context, meeting *models.TroopMeeting) error {
	meeting.ID = uuid.NewString()
	_, err := postgresql.db.ExecContext(ctx, addMeetingQuery, meeting.ID,
		meeting.Title, meeting.Description, meeting.Date,
		meeting.StartTime, meeting.EndTime, meeting.Location)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query addMeetingQuery: %s", err)
	}
	return err
}

// ListMeetings returns meetings in chronological order.
func (postgresql *PostgreSQL) ListMeetings(ctx context.Context) ([]models.TroopMeeting, error) {
	rows, err := postgresql.db.QueryContext(ctx, listMeetingsQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listMeetingsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	meetings := make([]models.TroopMeeting, 0)
	for rows.Next() {
		var meeting models.TroopMeeting
		if err := rows.Scan(&meeting.ID, &meeting.Title, &meeting.Description,
			&meeting.Date, &meeting.StartTime, &meeting.EndTime, &meeting.Location); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListMeetings method: %s", err)
			return nil, err
		}
		meetings = append(meetings, meeting)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListMeetings method: %s", err)
		return meetings, err
	}

	return meetings, nil
}

// DeleteMeeting removes a meeting and returns it, so the caller can publish
// a cancellation notice. Returns ErrNotFound for unknown ids.
func (postgresql *PostgreSQL) DeleteMeeting(ctx context.Context, meetingID string) (*models.TroopMeeting, error) {
	meeting := &models.TroopMeeting{}
	err := postgresql.db.QueryRowContext(ctx, getMeetingQuery, meetingID).Scan(
		&meeting.ID, &meeting.Title, &meeting.Description,
		&meeting.Date, &meeting.StartTime, &meeting.EndTime, &meeting.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getMeetingQuery: %s", err)
		return nil, err
	}

	if _, err := postgresql.db.ExecContext(ctx, deleteMeetingQuery, meetingID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteMeetingQuery: %s", err)
		return nil, err
	}
	return meeting, nil
}

// AddNotification publishes a troop-wide notification, optionally pre-marked
// read for the author.
func (postgresql *PostgreSQL) AddNotification(ctx context.Context, notification *models.TroopNotification) error {
	notification.ID = uuid.NewString()
	err := postgresql.db.QueryRowContext(ctx, addNotifQuery, notification.ID,
		notification.Type, notification.Title, notification.Message).Scan(&notification.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query addNotifQuery: %s", err)
		return err
	}

	for _, userID := range notification.ReadBy {
		if _, err := postgresql.db.ExecContext(ctx, markOneReadQuery, notification.ID, userID); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query markOneReadQuery: %s", err)
			return err
		}
	}
	return nil
}

// ListNotifications returns notifications newest first with read marks.
func (postgresql *PostgreSQL) ListNotifications(ctx context.Context) ([]models.TroopNotification, error) {
	rows, err := postgresql.db.QueryContext(ctx, listNotifsQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listNotifsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	notifications := make([]models.TroopNotification, 0)
	for rows.Next() {
		var notification models.TroopNotification
		if err := rows.Scan(&notification.ID, &notification.Type, &notification.Title,
			&notification.Message, &notification.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListNotifications method: %s", err)
			return nil, err
		}
		notification.ReadBy = make([]int32, 0)
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListNotifications method: %s", err)
		return notifications, err
	}

	readRows, err := postgresql.db.QueryContext(ctx, listNotifReadsQ)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listNotifReadsQ: %s", err)
		return nil, err
	}
	defer readRows.Close()

	readBy := make(map[string][]int32)
	for readRows.Next() {
		var notificationID string
		var userID int32
		if err := readRows.Scan(&notificationID, &userID); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListNotifications method: %s", err)
			return nil, err
		}
		readBy[notificationID] = append(readBy[notificationID], userID)
	}
	if err := readRows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListNotifications method: %s", err)
		return notifications, err
	}

	for i := range notifications {
		if ids, ok := readBy[notifications[i].ID]; ok {
			notifications[i].ReadBy = ids
		}
	}

	return notifications, nil
}

// MarkNotificationsRead marks every notification read for one scout.
func (postgresql *PostgreSQL) MarkNotificationsRead(ctx context.Context, userID int32) error {
	if _, err := postgresql.db.ExecContext(ctx, markReadQuery, userID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query markReadQuery: %s", err)
		return err
	}
	return nil
}

// CountUnreadNotifications returns how many notifications a scout has not
// yet marked read.
func (postgresql *PostgreSQL) CountUnreadNotifications(ctx context.Context, userID int32) (int, error) {
	var count int
	if err := postgresql.db.QueryRowContext(ctx, countUnreadQuery, userID).Scan(&count); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query countUnreadQuery: %s", err)
		return 0, err
	}
	return count, nil
}

// AddMessage stores a chat message; the id is generated here.
func (postgresql *PostgreSQL) AddMessage(ctx context.Context, message *models.ChatMessage) error {
	message.ID = uuid.NewString()
	err := postgresql.db.QueryRowContext(ctx, addMessageQuery, message.ID,
		message.SenderID, message.SenderName, message.RecipientID, message.Content).Scan(&message.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query addMessageQuery: %s", err)
	}
	return err
}

// ListMessages returns the messages visible to one scout (broadcasts plus
// their own direct messages), oldest first.
func (postgresql *PostgreSQL) ListMessages(ctx context.Context, userID int32) ([]models.ChatMessage, error) {
	rows, err := postgresql.db.QueryContext(ctx, listMessagesQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listMessagesQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var message models.ChatMessage
		var recipientID sql.NullInt32
		if err := rows.Scan(&message.ID, &message.SenderID, &message.SenderName,
			&recipientID, &message.Content, &message.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListMessages method: %s", err)
			return nil, err
		}
		if recipientID.Valid {
			id := recipientID.Int32
			message.RecipientID = &id
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListMessages method: %s", err)
		return messages, err
	}

	return messages, nil
}
