package dto

// CreditRequest asks for points for an amount spent at a bunk
type CreditRequest struct {
	CustomerID  string   `json:"customerId"`
	BunkID      string   `json:"bunkId"`
	AmountSpent *float64 `json:"amountSpent"`
	RequestID   string   `json:"requestId,omitempty"`
}

// CreditResponse reports the customer's new balance
type CreditResponse struct {
	Status      string `json:"status"`
	NewPoints   int64  `json:"newPoints"`
	PointsAdded int64  `json:"pointsAdded"`
	Replayed    bool   `json:"replayed,omitempty"`
}

// RedeemRequest asks to redeem points at a bunk
type RedeemRequest struct {
	CustomerID     string `json:"customerId"`
	BunkID         string `json:"bunkId"`
	PointsToRedeem *int64 `json:"pointsToRedeem"`
	RequestID      string `json:"requestId,omitempty"`
}

// RedeemResponse reports the new balance and the currency value redeemed
type RedeemResponse struct {
	Status        string  `json:"status"`
	NewPoints     int64   `json:"newPoints"`
	RedeemedValue float64 `json:"redeemedValue"`
	Replayed      bool    `json:"replayed,omitempty"`
}
