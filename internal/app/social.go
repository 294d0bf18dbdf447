package app

import (
	"context"
	"fmt"

	"troop_cookies/internal/models"
)

// ProcessSendMessage posts a chat message from the calling scout. A nil
// recipient means a troop-wide broadcast.
func (app *App) ProcessSendMessage(ctx context.Context, actorID int32, req models.SendMessageRequest) (*models.ChatMessage, error) {
	if req.Content == "" {
		return nil, ErrEmptyMessage
	}

	actor, err := app.db.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	message := &models.ChatMessage{
		SenderID:    actor.ID,
		SenderName:  actor.Name,
		RecipientID: req.RecipientID,
		Content:     req.Content,
	}
	if err := app.db.AddMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ProcessListMessages returns the messages visible to the calling scout.
func (app *App) ProcessListMessages(ctx context.Context, actorID int32) ([]models.ChatMessage, error) {
	return app.db.ListMessages(ctx, actorID)
}

// ProcessAddBooth schedules a booth shift. Admin only.
func (app *App) ProcessAddBooth(ctx context.Context, actorID int32, booth models.BoothSignup) (*models.BoothSignup, error) {
	if _, err := app.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if err := app.db.AddBooth(ctx, &booth); err != nil {
		return nil, err
	}
	return &booth, nil
}

// ProcessListBooths returns the booth schedule.
func (app *App) ProcessListBooths(ctx context.Context) ([]models.BoothSignup, error) {
	return app.db.ListBooths(ctx)
}

// ProcessRemoveBooth deletes a booth shift. Admin only.
func (app *App) ProcessRemoveBooth(ctx context.Context, actorID int32, boothID string) error {
	if _, err := app.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return app.db.DeleteBooth(ctx, boothID)
}

// ProcessAddMeeting schedules a meeting and publishes a meeting_added
// notification. Admin only. The notification is fire-and-forget: a publish
// failure is logged and the meeting stands.
func (app *App) ProcessAddMeeting(ctx context.Context, actorID int32, meeting models.TroopMeeting) (*models.TroopMeeting, error) {
	actor, err := app.requireAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := app.db.AddMeeting(ctx, &meeting); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%q has been scheduled for %s at %s.", meeting.Title, meeting.Date, meeting.StartTime)
	if meeting.Location != "" {
		message += " Location: " + meeting.Location
	}
	notification := &models.TroopNotification{
		Type:    models.NotifMeetingAdded,
		Title:   "New Troop Meeting",
		Message: message,
		ReadBy:  []int32{actor.ID},
	}
	if err := app.db.AddNotification(ctx, notification); err != nil {
		app.log.Sugar().Errorf("Failed to publish meeting_added notification: %s", err)
	}

	return &meeting, nil
}

// ProcessListMeetings returns the meeting schedule.
func (app *App) ProcessListMeetings(ctx context.Context) ([]models.TroopMeeting, error) {
	return app.db.ListMeetings(ctx)
}

// ProcessRemoveMeeting cancels a meeting and publishes a meeting_deleted
// notification. Admin only.
func (app *App) ProcessRemoveMeeting(ctx context.Context, actorID int32, meetingID string) error {
	actor, err := app.requireAdmin(ctx, actorID)
	if err != nil {
		return err
	}

	meeting, err := app.db.DeleteMeeting(ctx, meetingID)
	if err != nil {
		return err
	}

	notification := &models.TroopNotification{
		Type:    models.NotifMeetingDeleted,
		Title:   "Meeting Cancelled",
		Message: fmt.Sprintf("%q on %s has been cancelled.", meeting.Title, meeting.Date),
		ReadBy:  []int32{actor.ID},
	}
	if err := app.db.AddNotification(ctx, notification); err != nil {
		app.log.Sugar().Errorf("Failed to publish meeting_deleted notification: %s", err)
	}

	return nil
}

// ProcessListNotifications returns every notification, newest first.
func (app *App) ProcessListNotifications(ctx context.Context) ([]models.TroopNotification, error) {
	return app.db.ListNotifications(ctx)
}

// ProcessMarkNotificationsRead marks everything read for the calling scout.
func (app *App) ProcessMarkNotificationsRead(ctx context.Context, actorID int32) error {
	return app.db.MarkNotificationsRead(ctx, actorID)
}
