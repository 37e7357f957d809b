package models

import (
	"fmt"
	"time"
)

// Table request lifecycle.
const (
	RequestStatusPending    = "PENDING"
	RequestStatusInProgress = "IN_PROGRESS"
	RequestStatusResolved   = "RESOLVED"
)

// Well-known request types. The type field is free-form; unknown values
// fall back to a generic notification template.
const (
	RequestTypeCallWaiter = "GARSON_CAĞIR"
	RequestTypeGeneral    = "İSTEK"
	RequestTypeComplaint  = "ŞİKAYET"
	RequestTypeHelp       = "YARDIM"
)

// TableRequest is an ad-hoc service call raised from a table: call the
// waiter, a free-form request, a complaint, or a plea for help.
type TableRequest struct {
	ID          int64      `json:"id,omitempty"`
	TableID     int64      `json:"table_id"`
	TableNumber string     `json:"table_number,omitempty"`
	RequestType string     `json:"request_type"`
	Message     string     `json:"message,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// CreateTableRequestRequest is the payload of POST /api/table-requests.
type CreateTableRequestRequest struct {
	TableID     int64  `json:"table_id"`
	RequestType string `json:"request_type"`
	Message     string `json:"message,omitempty"`
}

// Validate rejects structurally invalid requests before any mutation.
func (req *CreateTableRequestRequest) Validate() error {
	if req.TableID == 0 {
		return fmt.Errorf("%w: table request must reference a table", ErrInvalidArgument)
	}
	if req.RequestType == "" {
		return fmt.Errorf("%w: request type cannot be empty", ErrInvalidArgument)
	}
	return nil
}

// NotificationText renders the human-readable kitchen line for a request.
// tableNumber is the table label the kitchen screen shows.
func (r *TableRequest) NotificationText(tableNumber string) string {
	msg := r.Message
	switch r.RequestType {
	case RequestTypeCallWaiter:
		return fmt.Sprintf("🔔 %s - Garson çağırıldı", tableNumber)
	case RequestTypeGeneral:
		if msg == "" {
			msg = "İstek var"
		}
		return fmt.Sprintf("📋 %s - İstek: %s", tableNumber, msg)
	case RequestTypeComplaint:
		if msg == "" {
			msg = "Şikayet var"
		}
		return fmt.Sprintf("⚠️ %s - Şikayet: %s", tableNumber, msg)
	case RequestTypeHelp:
		if msg == "" {
			msg = "Yardım gerekli"
		}
		return fmt.Sprintf("🆘 %s - Yardım istendi: %s", tableNumber, msg)
	default:
		return fmt.Sprintf("📢 %s - %s: %s", tableNumber, r.RequestType, msg)
	}
}
