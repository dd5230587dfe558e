package models

import "fmt"

// Attack mode names as stored on attacks and sent to agents.
const (
	AttackModeDictionary       = "dictionary"
	AttackModeMask             = "mask"
	AttackModeHybridDictionary = "hybrid_dictionary"
	AttackModeHybridMask       = "hybrid_mask"
)

// hashcatModeNumbers maps attack mode names to hashcat's -a values.
var hashcatModeNumbers = map[string]int{
	AttackModeDictionary:       0,
	AttackModeMask:             3,
	AttackModeHybridDictionary: 6,
	AttackModeHybridMask:       7,
}

// HashcatModeNumber returns the hashcat -a number for an attack mode name.
func HashcatModeNumber(mode string) (int, error) {
	n, ok := hashcatModeNumbers[mode]
	if !ok {
		return 0, fmt.Errorf("unknown attack mode %q", mode)
	}
	return n, nil
}

// Agent error severities, ordered from least to most severe. A fatal
// error fails the associated task.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityMinor    = "minor"
	SeverityMajor    = "major"
	SeverityCritical = "critical"
	SeverityFatal    = "fatal"
)

// ValidSeverity reports whether s is a recognized error severity.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityMinor, SeverityMajor, SeverityCritical, SeverityFatal:
		return true
	}
	return false
}
