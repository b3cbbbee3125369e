package dto

import (
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// TransactionResponse is the public view of an audit record
type TransactionResponse struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	InitiatorID   string         `json:"initiatorId"`
	InitiatorRole string         `json:"initiatorRole,omitempty"`
	TargetUID     string         `json:"targetUid,omitempty"`
	RequestID     *string        `json:"requestId,omitempty"`
	Details       map[string]any `json:"details"`
	Timestamp     time.Time      `json:"timestamp"`
}

// TransactionListResponse wraps audit records, newest first
type TransactionListResponse struct {
	Status       string                `json:"status"`
	Transactions []TransactionResponse `json:"transactions"`
}

// NewTransactionListResponse maps audit records
func NewTransactionListResponse(records []*entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(records))
	for _, t := range records {
		details := t.Details
		if details == nil {
			details = map[string]any{}
		}
		out = append(out, TransactionResponse{
			ID:            t.ID,
			Type:          string(t.Type),
			InitiatorID:   t.InitiatorID,
			InitiatorRole: string(t.InitiatorRole),
			TargetUID:     t.TargetUID,
			RequestID:     t.RequestID,
			Details:       details,
			Timestamp:     t.Timestamp,
		})
	}
	return TransactionListResponse{Status: StatusSuccess, Transactions: out}
}
