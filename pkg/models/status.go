package models

import "time"

// DeviceStatus is hashcat's per-device snapshot inside a status frame.
// Temperature is -1 when the device does not report one.
type DeviceStatus struct {
	DeviceID    int    `json:"device_id"`
	DeviceName  string `json:"device_name"`
	DeviceType  string `json:"device_type"`
	Speed       int64  `json:"speed"`
	Utilization int    `json:"utilization"`
	Temperature int    `json:"temperature"`
}

// HashcatGuess describes the candidate generator position within a frame.
type HashcatGuess struct {
	GuessBase           string  `json:"guess_base"`
	GuessBaseCount      int64   `json:"guess_base_count"`
	GuessBaseOffset     int64   `json:"guess_base_offset"`
	GuessBasePercentage float64 `json:"guess_base_percentage"`
	GuessMod            string  `json:"guess_mod"`
	GuessModCount       int64   `json:"guess_mod_count"`
	GuessModOffset      int64   `json:"guess_mod_offset"`
	GuessModPercentage  float64 `json:"guess_mod_percentage"`
	GuessMode           int     `json:"guess_mode"`
}

// HashcatStatusFrame is one parsed hashcat --status-json line relayed by
// an agent. Progress is [done, total] for the task's slice; recovered
// counts are [new, total] pairs.
type HashcatStatusFrame struct {
	OriginalLine    string         `json:"original_line,omitempty"`
	Time            time.Time      `json:"time"`
	Session         string         `json:"session"`
	HashcatGuess    HashcatGuess   `json:"hashcat_guess"`
	Status          int            `json:"status"`
	Target          string         `json:"target"`
	Progress        []int64        `json:"progress"`
	RestorePoint    int64          `json:"restore_point"`
	RecoveredHashes []int          `json:"recovered_hashes"`
	RecoveredSalts  []int          `json:"recovered_salts"`
	Rejected        int64          `json:"rejected"`
	Devices         []DeviceStatus `json:"devices"`
	TimeStart       time.Time      `json:"time_start"`
	EstimatedStop   time.Time      `json:"estimated_stop"`
}

// ProgressDone returns the frame's completed-candidates count.
func (f *HashcatStatusFrame) ProgressDone() int64 {
	if len(f.Progress) > 0 {
		return f.Progress[0]
	}
	return 0
}

// ProgressTotal returns the frame's total-candidates count.
func (f *HashcatStatusFrame) ProgressTotal() int64 {
	if len(f.Progress) > 1 {
		return f.Progress[1]
	}
	return 0
}
