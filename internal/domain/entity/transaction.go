package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
)

// TransactionType identifies the operation an audit record describes
type TransactionType string

// Transaction types
const (
	TypeCredit               TransactionType = "credit"
	TypeRedeem               TransactionType = "redeem"
	TypeCreateBunk           TransactionType = "create_bunk"
	TypeDeleteBunk           TransactionType = "delete_bunk"
	TypeAssignManager        TransactionType = "assign_manager"
	TypeUnassignManager      TransactionType = "unassign_manager"
	TypeSetUserRole          TransactionType = "set_user_role"
	TypeUpdateGlobalConfig   TransactionType = "update_global_config"
	TypeDeleteUser           TransactionType = "delete_user"
	TypeUpdateUserProfile    TransactionType = "update_user_profile"
	TypeCustomerRegistration TransactionType = "customer_registration"
	TypeAutoVerify           TransactionType = "auto_verify"
)

// SystemInitiator is the initiator id of records written by triggers
const SystemInitiator = "system"

// Details keys shared by writers and readers of audit records
const (
	DetailTargetUID       = "targetUid"
	DetailAmountSpent     = "amountSpent"
	DetailPointsToRedeem  = "pointsToRedeem"
	DetailPointsChange    = "pointsChange"
	DetailResultingPoints = "resultingPoints"
	DetailRedeemedValue   = "redeemedValue"
	DetailBunkID          = "bunkId"
	DetailBunk            = "bunk"
)

// Transaction is an immutable audit record of one state-changing operation
type Transaction struct {
	ID            string
	Type          TransactionType
	InitiatorID   string
	InitiatorRole Role
	Timestamp     time.Time
	TargetUID     string  // Denormalized from Details for lookups
	RequestID     *string // Optional idempotency key
	Details       map[string]any
}

// NewTransaction creates an audit record stamped with the current time
func NewTransaction(
	id string,
	txType TransactionType,
	initiatorID string,
	initiatorRole Role,
	details map[string]any,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if id == "" {
		return nil, errs.ErrInvalidID
	}
	if initiatorID == "" {
		return nil, errs.Invalidf("audit record requires an initiator")
	}
	if details == nil {
		details = map[string]any{}
	}

	target, _ := details[DetailTargetUID].(string)

	return &Transaction{
		ID:            id,
		Type:          txType,
		InitiatorID:   initiatorID,
		InitiatorRole: initiatorRole,
		Timestamp:     timeProvider.Now().UTC(),
		TargetUID:     target,
		Details:       details,
	}, nil
}

// WithRequestID attaches an idempotency key
func (t *Transaction) WithRequestID(requestID string) *Transaction {
	if requestID != "" {
		t.RequestID = &requestID
	}
	return t
}

// ResultingPoints reads the balance recorded after a ledger operation
func (t *Transaction) ResultingPoints() int64 {
	return detailInt(t.Details, DetailResultingPoints)
}

// PointsChange reads the signed point delta of a ledger operation
func (t *Transaction) PointsChange() int64 {
	return detailInt(t.Details, DetailPointsChange)
}

// detailInt reads an integer back from details, which round-trip through JSON as float64
func detailInt(details map[string]any, key string) int64 {
	switch v := details[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
