package service

import (
	"context"
	"net/http"
	"strconv"

	"troop_cookies/internal/models"

	"github.com/go-chi/chi/v5"
)

// listScoutsHandler returns the troop roster.
func (handlers *handlers) listScoutsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if _, ok := actorID(req); !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	users, err := handlers.app.ProcessListScouts(ctx)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, users)
}

// addScoutHandler creates a roster entry. Admin only. The response includes
// the generated username and one-time plaintext PIN.
func (handlers *handlers) addScoutHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var addScoutRequest models.AddScoutRequest
	if err := readBody(req, &addScoutRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := handlers.app.ProcessAddScout(ctx, userID, addScoutRequest)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, user)
}

// removeScoutHandler deletes a scout and their inventory. Admin only.
func (handlers *handlers) removeScoutHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(req, "userID"), 10, 32)
	if err != nil {
		writeErrorResponse(res, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessRemoveScout(ctx, userID, int32(targetID)); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// bannerHandler updates the calling scout's banner color.
func (handlers *handlers) bannerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var bannerRequest models.BannerRequest
	if err := readBody(req, &bannerRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessUpdateBanner(ctx, userID, bannerRequest.Color); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

func (handlers *handlers) listMessagesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	messages, err := handlers.app.ProcessListMessages(ctx, userID)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, messages)
}

func (handlers *handlers) sendMessageHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var sendMessageRequest models.SendMessageRequest
	if err := readBody(req, &sendMessageRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	message, err := handlers.app.ProcessSendMessage(ctx, userID, sendMessageRequest)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, message)
}

func (handlers *handlers) listBoothsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if _, ok := actorID(req); !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	booths, err := handlers.app.ProcessListBooths(ctx)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, booths)
}

func (handlers *handlers) addBoothHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var booth models.BoothSignup
	if err := readBody(req, &booth); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handlers.app.ProcessAddBooth(ctx, userID, booth)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, created)
}

func (handlers *handlers) removeBoothHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := handlers.app.ProcessRemoveBooth(ctx, userID, chi.URLParam(req, "boothID")); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

func (handlers *handlers) listMeetingsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if _, ok := actorID(req); !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	meetings, err := handlers.app.ProcessListMeetings(ctx)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, meetings)
}

func (handlers *handlers) addMeetingHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var meeting models.TroopMeeting
	if err := readBody(req, &meeting); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handlers.app.ProcessAddMeeting(ctx, userID, meeting)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, created)
}

func (handlers *handlers) removeMeetingHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := handlers.app.ProcessRemoveMeeting(ctx, userID, chi.URLParam(req, "meetingID")); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

func (handlers *handlers) listNotificationsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if _, ok := actorID(req); !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	notifications, err := handlers.app.ProcessListNotifications(ctx)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, notifications)
}

func (handlers *handlers) markNotificationsReadHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := handlers.app.ProcessMarkNotificationsRead(ctx, userID); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// importHandler applies an uploaded cookie report to the ledger. Admin only.
func (handlers *handlers) importHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var importRequest models.ImportRequest
	if err := readBody(req, &importRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handlers.app.ProcessImport(ctx, userID, importRequest)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, result)
}

// resetHandler wipes and reseeds the whole system. Admin only.
func (handlers *handlers) resetHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := handlers.app.ProcessReset(ctx, userID); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}
