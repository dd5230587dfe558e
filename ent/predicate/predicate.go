// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentError is the predicate function for agenterror builders.
type AgentError func(*sql.Selector)

// Attack is the predicate function for attack builders.
type Attack func(*sql.Selector)

// Benchmark is the predicate function for benchmark builders.
type Benchmark func(*sql.Selector)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// CrackResult is the predicate function for crackresult builders.
type CrackResult func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// HashItem is the predicate function for hashitem builders.
type HashItem func(*sql.Selector)

// HashList is the predicate function for hashlist builders.
type HashList func(*sql.Selector)

// HashcatStatus is the predicate function for hashcatstatus builders.
type HashcatStatus func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Resource is the predicate function for resource builders.
type Resource func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
