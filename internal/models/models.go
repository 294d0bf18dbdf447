// Package models defines the data structures used throughout the application:
// scouts, per-cookie inventory records, trades, audit log entries, booth and
// meeting schedules, notifications, chat messages, and the request/response
// payloads of the HTTP API.
package models

import "time"

// Inventory field names. Every ledger mutation targets exactly one of these.
const (
	FieldStarting   = "starting"
	FieldAdditional = "additional"
	FieldSold       = "sold"
)

// ValidField reports whether field names one of the three inventory counters.
func ValidField(field string) bool {
	return field == FieldStarting || field == FieldAdditional || field == FieldSold
}

// Trade request statuses. Pending is the only non-terminal state.
const (
	TradePending  = "pending"
	TradeAccepted = "accepted"
	TradeRejected = "rejected"
)

// Scout levels, youngest to oldest, plus the admin's OrderCzar tag.
var ScoutLevels = []string{"Daisy", "Brownie", "Junior", "Cadette", "Senior", "Ambassador", "OrderCzar"}

// User represents a troop member. PIN is only populated transiently, when a
// scout is first created; storage keeps a bcrypt hash.
type User struct {
	ID          int32  `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	IsAdmin     bool   `json:"isAdmin"`
	IsOnline    bool   `json:"isOnline"`
	BannerColor string `json:"bannerColor,omitempty"`
	PIN         string `json:"pin,omitempty"`
}

// CookieRecord holds the three counters tracked per (scout, cookie type).
// Starting is the units initially assigned, Additional the net units gained
// or lost through restocks, transfers, and trades (it may go negative), and
// Sold the cumulative units recorded sold.
type CookieRecord struct {
	Starting   int `json:"starting"`
	Additional int `json:"additional"`
	Sold       int `json:"sold"`
}

// Remaining derives the stock a scout can still sell or trade.
func (r CookieRecord) Remaining() int {
	return r.Starting + r.Additional - r.Sold
}

// InventoryRow is one catalog entry of a scout's inventory as returned by
// the API, with the derived remaining count included.
type InventoryRow struct {
	CookieType string `json:"cookieType"`
	Label      string `json:"label"`
	Starting   int    `json:"starting"`
	Additional int    `json:"additional"`
	Sold       int    `json:"sold"`
	Remaining  int    `json:"remaining"`
}

// RemainingResponse is the derived remaining count for one (scout, cookie).
type RemainingResponse struct {
	CookieType string `json:"cookieType"`
	Remaining  int    `json:"remaining"`
}

// TradeRequest is a proposed two-party exchange of remaining stock. Offering
// maps cookie code to the quantity the proposer gives, Requesting to what
// they want back. Status moves pending -> accepted|rejected and then never
// changes again.
type TradeRequest struct {
	ID           string         `json:"id"`
	FromUserID   int32          `json:"fromUserId"`
	FromUserName string         `json:"fromUserName"`
	ToUserID     int32          `json:"toUserId"`
	ToUserName   string         `json:"toUserName"`
	Offering     map[string]int `json:"offering"`
	Requesting   map[string]int `json:"requesting"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// InventoryLog is one immutable audit record of a single inventory field
// change: who it belongs to, what changed, the before/after values, and who
// made the change.
type InventoryLog struct {
	ID         string    `json:"id"`
	UserID     int32     `json:"userId"`
	UserName   string    `json:"userName"`
	CookieType string    `json:"cookieType"`
	Field      string    `json:"field"`
	OldValue   int       `json:"oldValue"`
	NewValue   int       `json:"newValue"`
	ChangedBy  string    `json:"changedBy"`
	CreatedAt  time.Time `json:"timestamp"`
}

// BoothSignup is a scheduled cookie booth shift.
type BoothSignup struct {
	ID        string `json:"id"`
	Business  string `json:"business"`
	Location  string `json:"location"`
	Notes     string `json:"notes,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration,omitempty"`
}

// TroopMeeting is a scheduled troop meeting.
type TroopMeeting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location,omitempty"`
}

// Notification kinds published by calendar mutations.
const (
	NotifMeetingAdded   = "meeting_added"
	NotifMeetingDeleted = "meeting_deleted"
)

// TroopNotification is a broadcast announcement with per-scout read marks.
type TroopNotification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
	ReadBy    []int32   `json:"readBy"`
}

// ChatMessage is a troop-wide or direct message. RecipientID is nil for
// broadcast messages.
type ChatMessage struct {
	ID          string    `json:"id"`
	SenderID    int32     `json:"senderId"`
	SenderName  string    `json:"senderName"`
	RecipientID *int32    `json:"recipientId"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"timestamp"`
}

// AuthRequest is the login payload: username plus the scout's PIN.
type AuthRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

// AuthResponse carries the JWT issued on successful login.
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// SetFieldRequest overwrites one inventory counter of one scout.
type SetFieldRequest struct {
	UserID     int32  `json:"userId"`
	CookieType string `json:"cookieType"`
	Field      string `json:"field"`
	Value      int    `json:"value"`
}

// SaleRequest records boxes sold by the calling scout.
type SaleRequest struct {
	CookieType string `json:"cookieType"`
	Quantity   int    `json:"quantity"`
}

// TransferRequest moves boxes between two scouts (admin only).
type TransferRequest struct {
	FromUserID int32  `json:"fromUserId"`
	ToUserID   int32  `json:"toUserId"`
	CookieType string `json:"cookieType"`
	Quantity   int    `json:"quantity"`
}

// CreateTradeRequest proposes a trade to another scout.
type CreateTradeRequest struct {
	ToUserID   int32          `json:"toUserId"`
	Offering   map[string]int `json:"offering"`
	Requesting map[string]int `json:"requesting"`
}

// RespondTradeRequest accepts or rejects a pending trade.
type RespondTradeRequest struct {
	Accept bool `json:"accept"`
}

// AddScoutRequest creates a new roster entry; username and PIN are generated.
type AddScoutRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// SendMessageRequest posts a chat message; RecipientID nil means broadcast.
type SendMessageRequest struct {
	Content     string `json:"content"`
	RecipientID *int32 `json:"recipientId"`
}

// BannerRequest updates the calling scout's banner color.
type BannerRequest struct {
	Color string `json:"color"`
}

// ImportRequest is a parsed spreadsheet import submission. Mode "replace"
// writes the starting field, "add" adds to the additional field.
type ImportRequest struct {
	Mode string `json:"mode"`
	CSV  string `json:"csv"`
}

// ImportResult summarizes a bulk import: applied cell count plus any rows or
// columns that could not be matched.
type ImportResult struct {
	Applied int      `json:"applied"`
	Errors  []string `json:"errors,omitempty"`
}

// FinancialSummary is derived money math for one scout: boxes sold valued at
// catalog unit prices, plus the troop's cut.
type FinancialSummary struct {
	BoxesSold   int `json:"boxesSold"`
	TotalDue    int `json:"totalDue"`
	TroopProfit int `json:"troopProfit"`
}

// InfoResponse is the /api/info payload for the calling scout.
type InfoResponse struct {
	Scout               User             `json:"scout"`
	Inventory           []InventoryRow   `json:"inventory"`
	Financial           FinancialSummary `json:"financial"`
	UnreadNotifications int              `json:"unreadNotifications"`
}
