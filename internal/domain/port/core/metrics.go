package core

// LedgerMetrics records business metrics for ledger and admin operations
type LedgerMetrics interface {
	// ObserveOperation records the outcome ("success" or an error kind) and latency of an operation
	ObserveOperation(operation, outcome string, elapsed Duration)
	// AddPoints records points moved by a credit or redeem
	AddPoints(operation string, points int64)
}
