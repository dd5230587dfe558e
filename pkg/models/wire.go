package models

import "time"

// ProjectRef identifies a project an agent is assigned to.
type ProjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RegistrationResponse is returned once when an agent redeems its
// registration token. The bearer token is never shown again.
type RegistrationResponse struct {
	AgentID  int64        `json:"agent_id"`
	Token    string       `json:"token"`
	Projects []ProjectRef `json:"projects"`
}

// AgentResponse is the agent's own view of its record.
type AgentResponse struct {
	ID              int64               `json:"id"`
	HostName        string              `json:"host_name"`
	ClientSignature string              `json:"client_signature"`
	OperatingSystem string              `json:"operating_system"`
	State           string              `json:"state"`
	Devices         []string            `json:"devices"`
	AdvancedConfig  AdvancedAgentConfig `json:"advanced_config"`
	Projects        []ProjectRef        `json:"projects"`
}

// Heartbeat commands an agent can receive.
const (
	CommandContinue = "continue"
	CommandPause    = "pause"
	CommandStop     = "stop"
	CommandBackoff  = "backoff"
)

// HeartbeatResponse tells the agent what to do until its next check-in.
type HeartbeatResponse struct {
	Command        string `json:"command"`
	BackoffSeconds int    `json:"backoff_seconds,omitempty"`
}

// TaskResponse is the slice of work handed to an agent. Skip and Limit
// are omitted when the task covers the attack's full keyspace.
type TaskResponse struct {
	ID        int64     `json:"id"`
	AttackID  int64     `json:"attack_id"`
	StartDate time.Time `json:"start_date"`
	Status    string    `json:"status"`
	Skip      *int64    `json:"skip,omitempty"`
	Limit     *int64    `json:"limit,omitempty"`
}

// TaskStatusResponse wraps the polling answer when no task is handed out.
type TaskStatusResponse struct {
	Status string `json:"status"`
}

// AttackResourceFile points an agent at a shared resource download.
// Checksum is the base64-encoded MD5 of the file body.
type AttackResourceFile struct {
	ID          int64  `json:"id"`
	DownloadURL string `json:"download_url"`
	Checksum    string `json:"checksum"`
	FileName    string `json:"file_name"`
}

// AttackResponse carries everything an agent needs to configure hashcat
// for one attack, including signed download URLs for the hash list and
// any referenced resources.
type AttackResponse struct {
	ID                      int64               `json:"id"`
	AttackMode              string              `json:"attack_mode"`
	AttackModeHashcat       int                 `json:"attack_mode_hashcat"`
	Mask                    string              `json:"mask"`
	IncrementMode           bool                `json:"increment_mode"`
	IncrementMinimum        int                 `json:"increment_minimum"`
	IncrementMaximum        int                 `json:"increment_maximum"`
	Optimized               bool                `json:"optimized"`
	SlowCandidateGenerators bool                `json:"slow_candidate_generators"`
	WorkloadProfile         int                 `json:"workload_profile"`
	DisableMarkov           bool                `json:"disable_markov"`
	ClassicMarkov           bool                `json:"classic_markov"`
	MarkovThreshold         int                 `json:"markov_threshold"`
	LeftRule                string              `json:"left_rule,omitempty"`
	RightRule               string              `json:"right_rule,omitempty"`
	CustomCharset1          string              `json:"custom_charset_1,omitempty"`
	CustomCharset2          string              `json:"custom_charset_2,omitempty"`
	CustomCharset3          string              `json:"custom_charset_3,omitempty"`
	CustomCharset4          string              `json:"custom_charset_4,omitempty"`
	HashListID              int64               `json:"hash_list_id"`
	HashMode                int                 `json:"hash_mode"`
	WordList                *AttackResourceFile `json:"word_list,omitempty"`
	RuleList                *AttackResourceFile `json:"rule_list,omitempty"`
	MaskList                *AttackResourceFile `json:"mask_list,omitempty"`
	HashListURL             string              `json:"hash_list_url"`
	HashListChecksum        string              `json:"hash_list_checksum"`
	URL                     string              `json:"url"`
}

// AgentConfigurationResponse is served to agents on startup.
type AgentConfigurationResponse struct {
	Config     AdvancedAgentConfig `json:"config"`
	APIVersion int                 `json:"api_version"`
}

// CrackSubmission reports one recovered plaintext.
type CrackSubmission struct {
	Timestamp time.Time `json:"timestamp"`
	Hash      string    `json:"hash"`
	PlainText string    `json:"plain_text"`
}

// BenchmarkRecord is one device/hash-type speed measurement.
type BenchmarkRecord struct {
	HashType  int     `json:"hash_type"`
	Device    int     `json:"device"`
	HashSpeed float64 `json:"hash_speed"`
	RuntimeMs int64   `json:"runtime_ms"`
}

// BenchmarkSubmission is the bulk benchmark upload body.
type BenchmarkSubmission struct {
	HashcatBenchmarks []BenchmarkRecord `json:"hashcat_benchmarks"`
}

// ErrorSubmission reports an agent-side failure, optionally tied to a task.
type ErrorSubmission struct {
	Severity string         `json:"severity"`
	Message  string         `json:"message"`
	Context  map[string]any `json:"context,omitempty"`
}
