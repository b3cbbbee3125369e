package dto

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status   string      `json:"status"`
	Database string      `json:"database"`
	Pool     *PoolStatus `json:"pool,omitempty"`
}

// PoolStatus is a summary of the connection pool
type PoolStatus struct {
	OpenConnections int   `json:"openConnections"`
	InUse           int   `json:"inUse"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"waitCount"`
	MaxOpen         int   `json:"maxOpen"`
}
