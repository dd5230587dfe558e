package api

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck reports one subsystem inside a HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// backoffResponse is the 429 body telling an agent how long to wait
// before polling again.
type backoffResponse struct {
	Error          string `json:"error"`
	BackoffSeconds int    `json:"backoff_seconds"`
}

// authenticateResponse confirms a bearer token maps to a live agent.
type authenticateResponse struct {
	Authenticated bool `json:"authenticated"`
	AgentID       int  `json:"agent_id"`
}

// resourceResponse is the operator view of a resource. The download
// URL is signed and expires; file_handle is the stable storage key.
type resourceResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	FileName    string `json:"file_name"`
	FileHandle  string `json:"file_handle"`
	Type        string `json:"resource_type"`
	LineCount   *int64 `json:"line_count,omitempty"`
	ByteSize    int64  `json:"byte_size"`
	Checksum    string `json:"checksum,omitempty"`
	Sensitive   bool   `json:"sensitive"`
	DownloadURL string `json:"download_url"`
}
