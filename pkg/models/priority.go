// Package models contains wire-level request/response models and business
// domain types shared between the API layer and services.
package models

import (
	"encoding/json"
	"fmt"
)

// Priority orders campaigns for dispatch. Higher values are matched first.
type Priority int

const (
	PriorityDeferred Priority = iota
	PriorityRoutine
	PriorityPriority
	PriorityUrgent
	PriorityImmediate
	PriorityFlash
)

var priorityNames = map[Priority]string{
	PriorityDeferred:  "deferred",
	PriorityRoutine:   "routine",
	PriorityPriority:  "priority",
	PriorityUrgent:    "urgent",
	PriorityImmediate: "immediate",
	PriorityFlash:     "flash",
}

var prioritiesByName = func() map[string]Priority {
	m := make(map[string]Priority, len(priorityNames))
	for p, name := range priorityNames {
		m[name] = p
	}
	return m
}()

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// Valid reports whether p is one of the named priority levels.
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

// ParsePriority converts a wire name ("routine", "flash", ...) to a Priority.
func ParsePriority(s string) (Priority, error) {
	if p, ok := prioritiesByName[s]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}

// MarshalJSON encodes the priority as its wire name.
func (p Priority) MarshalJSON() ([]byte, error) {
	name, ok := priorityNames[p]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown priority %d", int(p))
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts a wire name and validates it.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
