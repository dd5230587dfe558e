package models

// AdvancedAgentConfig tunes an agent's hashcat invocation and check-in
// cadence. Stored per agent and served on GET /client/configuration.
type AdvancedAgentConfig struct {
	AgentUpdateInterval       int    `json:"agent_update_interval"`
	UseNativeHashcat          bool   `json:"use_native_hashcat"`
	BackendDevices            string `json:"backend_devices,omitempty"`
	OpenCLDevices             string `json:"opencl_devices,omitempty"`
	EnableAdditionalHashTypes bool   `json:"enable_additional_hash_types"`
}

// DefaultAgentConfig is applied to newly registered agents.
func DefaultAgentConfig() AdvancedAgentConfig {
	return AdvancedAgentConfig{
		AgentUpdateInterval:       30,
		UseNativeHashcat:          false,
		EnableAdditionalHashTypes: false,
	}
}
