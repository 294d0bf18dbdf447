// Package service contains the HTTP handler implementations for the troop
// cookie tracker API. It parses requests, calls the business logic in the
// app package, maps domain and database errors to HTTP statuses, and writes
// JSON responses.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"troop_cookies/internal/app"
	"troop_cookies/internal/models"
	"troop_cookies/internal/pkg/auth"
	"troop_cookies/internal/pkg/logger"
	"troop_cookies/internal/storage"

	"github.com/go-chi/chi/v5"
	pgconn "github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	pgx_pgconn "github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const requestTimeout = 10 * time.Second

// handlers aggregates dependencies needed by HTTP handlers.
type handlers struct {
	app *app.App
	log *logger.Logger
}

func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}

func writeJSON(res http.ResponseWriter, payload any) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	res.Write(result)
}

// mapDomainError translates app and storage errors to HTTP statuses. The
// ledger's failure kinds surface as 409 so callers can re-prompt; capability
// failures as 403; shape errors as 400.
func mapDomainError(res http.ResponseWriter, err error) {
	var pgError *pgconn.PgError
	var pgxError *pgx_pgconn.PgError

	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeErrorResponse(res, "not found", http.StatusNotFound)
	case errors.Is(err, app.ErrUnauthorized):
		writeErrorResponse(res, "not allowed", http.StatusForbidden)
	case errors.Is(err, storage.ErrOverSell):
		writeErrorResponse(res, "sale exceeds remaining boxes", http.StatusConflict)
	case errors.Is(err, storage.ErrInsufficientStock):
		writeErrorResponse(res, "not enough remaining boxes", http.StatusConflict)
	case errors.Is(err, storage.ErrInvariant):
		writeErrorResponse(res, "change would make remaining boxes negative", http.StatusConflict)
	case errors.Is(err, app.ErrInvalidCookieType),
		errors.Is(err, app.ErrInvalidField),
		errors.Is(err, app.ErrInvalidQuantity),
		errors.Is(err, app.ErrNegativeValue),
		errors.Is(err, app.ErrSelfTrade),
		errors.Is(err, app.ErrEmptyTrade),
		errors.Is(err, app.ErrInvalidLevel),
		errors.Is(err, app.ErrMissingName),
		errors.Is(err, app.ErrInvalidImportMode),
		errors.Is(err, app.ErrEmptyMessage):
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
	case errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation,
		errors.As(err, &pgxError) && pgxError.Code == pgerrcode.UniqueViolation:
		writeErrorResponse(res, "record already exists", http.StatusConflict)
	default:
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
	}
}

func readBody(req *http.Request, target any) error {
	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(requestBody, target)
}

func actorID(req *http.Request) (int32, bool) {
	userID, ok := req.Context().Value(auth.ContextUserID).(int32)
	return userID, ok && userID != 0
}

func actorIsAdmin(req *http.Request) bool {
	isAdmin, ok := req.Context().Value(auth.ContextIsAdmin).(bool)
	return ok && isAdmin
}

// authHandler handles login requests: it validates the username and PIN and
// returns a token.
func (handlers *handlers) authHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var authRequest models.AuthRequest
	var authResponse models.AuthResponse

	if err := readBody(req, &authRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	authResponse.Token, err = handlers.app.ProcessAuth(ctx, authRequest)
	if err != nil {
		if errors.Is(err, app.ErrMissingUsernameOrPIN) {
			writeErrorResponse(res, "missing username or pin", http.StatusBadRequest)
			return
		}
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			writeErrorResponse(res, "incorrect username or pin", http.StatusUnauthorized)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(res, authResponse)
}

// infoHandler returns the calling scout's profile, inventory, financial
// summary, and unread notification count.
func (handlers *handlers) infoHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	info, err := handlers.app.ProcessInfo(ctx, userID)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, info)
}

func (handlers *handlers) logoutHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := handlers.app.ProcessLogout(ctx, userID); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// setFieldHandler overwrites one inventory counter for a scout.
func (handlers *handlers) setFieldHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var setFieldRequest models.SetFieldRequest
	if err := readBody(req, &setFieldRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessSetField(ctx, userID, setFieldRequest); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// saleHandler records boxes sold by the calling scout.
func (handlers *handlers) saleHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var saleRequest models.SaleRequest
	if err := readBody(req, &saleRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessRecordSale(ctx, userID, saleRequest); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// transferHandler moves boxes between two scouts. Admin only.
func (handlers *handlers) transferHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var transferRequest models.TransferRequest
	if err := readBody(req, &transferRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessTransfer(ctx, userID, transferRequest); err != nil {
		mapDomainError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// troopInventoryHandler returns every scout's records. Admin only.
func (handlers *handlers) troopInventoryHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	inventory, err := handlers.app.ProcessTroopInventory(ctx, userID)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, inventory)
}

// userInventoryHandler returns one scout's records in catalog order.
func (handlers *handlers) userInventoryHandler(res http.ResponseWriter, req *http.Request) {
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

	rows, err := handlers.app.ProcessUserInventory(ctx, userID, int32(targetID))
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, rows)
}

// remainingHandler returns the derived remaining count for one scout and
// cookie type. Scouts read their own; the admin claim on the token covers
// reading anyone's, with no roster lookup.
func (handlers *handlers) remainingHandler(res http.ResponseWriter, req *http.Request) {
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
	if int32(targetID) != userID && !actorIsAdmin(req) {
		writeErrorResponse(res, "not allowed", http.StatusForbidden)
		return
	}

	cookieType := chi.URLParam(req, "cookieType")
	remaining, err := handlers.app.ProcessGetRemaining(ctx, int32(targetID), cookieType)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, models.RemainingResponse{CookieType: cookieType, Remaining: remaining})
}

// logsHandler returns audit entries most-recent-first. An optional limit
// query parameter caps the result.
func (handlers *handlers) logsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if _, ok := actorID(req); !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorResponse(res, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	logs, err := handlers.app.ProcessListLogs(ctx, limit)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, logs)
}

// createTradeHandler proposes a trade from the calling scout.
func (handlers *handlers) createTradeHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createTradeRequest models.CreateTradeRequest
	if err := readBody(req, &createTradeRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	trade, err := handlers.app.ProcessCreateTrade(ctx, userID, createTradeRequest)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, trade)
}

// respondTradeHandler lets the named counterparty accept or reject a trade.
func (handlers *handlers) respondTradeHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := actorID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var respondTradeRequest models.RespondTradeRequest
	if err := readBody(req, &respondTradeRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	tradeID := chi.URLParam(req, "tradeID")
	trade, err := handlers.app.ProcessRespondTrade(ctx, userID, tradeID, respondTradeRequest.Accept)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, trade)
}

func (handlers *handlers) listTradesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if _, ok := actorID(req); !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	trades, err := handlers.app.ProcessListTrades(ctx)
	if err != nil {
		mapDomainError(res, err)
		return
	}
	writeJSON(res, trades)
}
