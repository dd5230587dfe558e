// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/resource"
)

// Attack is the model entity for the Attack schema.
type Attack struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID int `json:"campaign_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// State holds the value of the "state" field.
	State attack.State `json:"state,omitempty"`
	// AttackMode holds the value of the "attack_mode" field.
	AttackMode attack.AttackMode `json:"attack_mode,omitempty"`
	// Mask holds the value of the "mask" field.
	Mask string `json:"mask,omitempty"`
	// IncrementMode holds the value of the "increment_mode" field.
	IncrementMode bool `json:"increment_mode,omitempty"`
	// IncrementMinimum holds the value of the "increment_minimum" field.
	IncrementMinimum int `json:"increment_minimum,omitempty"`
	// IncrementMaximum holds the value of the "increment_maximum" field.
	IncrementMaximum int `json:"increment_maximum,omitempty"`
	// Optimized holds the value of the "optimized" field.
	Optimized bool `json:"optimized,omitempty"`
	// SlowCandidateGenerators holds the value of the "slow_candidate_generators" field.
	SlowCandidateGenerators bool `json:"slow_candidate_generators,omitempty"`
	// WorkloadProfile holds the value of the "workload_profile" field.
	WorkloadProfile int `json:"workload_profile,omitempty"`
	// DisableMarkov holds the value of the "disable_markov" field.
	DisableMarkov bool `json:"disable_markov,omitempty"`
	// ClassicMarkov holds the value of the "classic_markov" field.
	ClassicMarkov bool `json:"classic_markov,omitempty"`
	// MarkovThreshold holds the value of the "markov_threshold" field.
	MarkovThreshold int `json:"markov_threshold,omitempty"`
	// LeftRule holds the value of the "left_rule" field.
	LeftRule string `json:"left_rule,omitempty"`
	// RightRule holds the value of the "right_rule" field.
	RightRule string `json:"right_rule,omitempty"`
	// CustomCharset1 holds the value of the "custom_charset_1" field.
	CustomCharset1 string `json:"custom_charset_1,omitempty"`
	// CustomCharset2 holds the value of the "custom_charset_2" field.
	CustomCharset2 string `json:"custom_charset_2,omitempty"`
	// CustomCharset3 holds the value of the "custom_charset_3" field.
	CustomCharset3 string `json:"custom_charset_3,omitempty"`
	// CustomCharset4 holds the value of the "custom_charset_4" field.
	CustomCharset4 string `json:"custom_charset_4,omitempty"`
	// WordListID holds the value of the "word_list_id" field.
	WordListID *int `json:"word_list_id,omitempty"`
	// RuleListID holds the value of the "rule_list_id" field.
	RuleListID *int `json:"rule_list_id,omitempty"`
	// MaskListID holds the value of the "mask_list_id" field.
	MaskListID *int `json:"mask_list_id,omitempty"`
	// dispatch order within the campaign
	Position int `json:"position,omitempty"`
	// TotalKeyspace holds the value of the "total_keyspace" field.
	TotalKeyspace *int64 `json:"total_keyspace,omitempty"`
	// DispatchedKeyspace holds the value of the "dispatched_keyspace" field.
	DispatchedKeyspace int64 `json:"dispatched_keyspace,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime *time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *time.Time `json:"end_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttackQuery when eager-loading is set.
	Edges        AttackEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttackEdges holds the relations/edges for other nodes in the graph.
type AttackEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// WordList holds the value of the word_list edge.
	WordList *Resource `json:"word_list,omitempty"`
	// RuleList holds the value of the rule_list edge.
	RuleList *Resource `json:"rule_list,omitempty"`
	// MaskList holds the value of the mask_list edge.
	MaskList *Resource `json:"mask_list,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttackEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// WordListOrErr returns the WordList value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttackEdges) WordListOrErr() (*Resource, error) {
	if e.WordList != nil {
		return e.WordList, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: resource.Label}
	}
	return nil, &NotLoadedError{edge: "word_list"}
}

// RuleListOrErr returns the RuleList value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttackEdges) RuleListOrErr() (*Resource, error) {
	if e.RuleList != nil {
		return e.RuleList, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: resource.Label}
	}
	return nil, &NotLoadedError{edge: "rule_list"}
}

// MaskListOrErr returns the MaskList value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttackEdges) MaskListOrErr() (*Resource, error) {
	if e.MaskList != nil {
		return e.MaskList, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: resource.Label}
	}
	return nil, &NotLoadedError{edge: "mask_list"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e AttackEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[4] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attack) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attack.FieldIncrementMode, attack.FieldOptimized, attack.FieldSlowCandidateGenerators, attack.FieldDisableMarkov, attack.FieldClassicMarkov:
			values[i] = new(sql.NullBool)
		case attack.FieldID, attack.FieldCampaignID, attack.FieldIncrementMinimum, attack.FieldIncrementMaximum, attack.FieldWorkloadProfile, attack.FieldMarkovThreshold, attack.FieldWordListID, attack.FieldRuleListID, attack.FieldMaskListID, attack.FieldPosition, attack.FieldTotalKeyspace, attack.FieldDispatchedKeyspace:
			values[i] = new(sql.NullInt64)
		case attack.FieldName, attack.FieldState, attack.FieldAttackMode, attack.FieldMask, attack.FieldLeftRule, attack.FieldRightRule, attack.FieldCustomCharset1, attack.FieldCustomCharset2, attack.FieldCustomCharset3, attack.FieldCustomCharset4:
			values[i] = new(sql.NullString)
		case attack.FieldStartTime, attack.FieldEndTime, attack.FieldCreatedAt, attack.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attack fields.
func (_m *Attack) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attack.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attack.FieldCampaignID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = int(value.Int64)
			}
		case attack.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case attack.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = attack.State(value.String)
			}
		case attack.FieldAttackMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attack_mode", values[i])
			} else if value.Valid {
				_m.AttackMode = attack.AttackMode(value.String)
			}
		case attack.FieldMask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mask", values[i])
			} else if value.Valid {
				_m.Mask = value.String
			}
		case attack.FieldIncrementMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field increment_mode", values[i])
			} else if value.Valid {
				_m.IncrementMode = value.Bool
			}
		case attack.FieldIncrementMinimum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field increment_minimum", values[i])
			} else if value.Valid {
				_m.IncrementMinimum = int(value.Int64)
			}
		case attack.FieldIncrementMaximum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field increment_maximum", values[i])
			} else if value.Valid {
				_m.IncrementMaximum = int(value.Int64)
			}
		case attack.FieldOptimized:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field optimized", values[i])
			} else if value.Valid {
				_m.Optimized = value.Bool
			}
		case attack.FieldSlowCandidateGenerators:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field slow_candidate_generators", values[i])
			} else if value.Valid {
				_m.SlowCandidateGenerators = value.Bool
			}
		case attack.FieldWorkloadProfile:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workload_profile", values[i])
			} else if value.Valid {
				_m.WorkloadProfile = int(value.Int64)
			}
		case attack.FieldDisableMarkov:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field disable_markov", values[i])
			} else if value.Valid {
				_m.DisableMarkov = value.Bool
			}
		case attack.FieldClassicMarkov:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field classic_markov", values[i])
			} else if value.Valid {
				_m.ClassicMarkov = value.Bool
			}
		case attack.FieldMarkovThreshold:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field markov_threshold", values[i])
			} else if value.Valid {
				_m.MarkovThreshold = int(value.Int64)
			}
		case attack.FieldLeftRule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_rule", values[i])
			} else if value.Valid {
				_m.LeftRule = value.String
			}
		case attack.FieldRightRule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field right_rule", values[i])
			} else if value.Valid {
				_m.RightRule = value.String
			}
		case attack.FieldCustomCharset1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_charset_1", values[i])
			} else if value.Valid {
				_m.CustomCharset1 = value.String
			}
		case attack.FieldCustomCharset2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_charset_2", values[i])
			} else if value.Valid {
				_m.CustomCharset2 = value.String
			}
		case attack.FieldCustomCharset3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_charset_3", values[i])
			} else if value.Valid {
				_m.CustomCharset3 = value.String
			}
		case attack.FieldCustomCharset4:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_charset_4", values[i])
			} else if value.Valid {
				_m.CustomCharset4 = value.String
			}
		case attack.FieldWordListID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_list_id", values[i])
			} else if value.Valid {
				_m.WordListID = new(int)
				*_m.WordListID = int(value.Int64)
			}
		case attack.FieldRuleListID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rule_list_id", values[i])
			} else if value.Valid {
				_m.RuleListID = new(int)
				*_m.RuleListID = int(value.Int64)
			}
		case attack.FieldMaskListID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mask_list_id", values[i])
			} else if value.Valid {
				_m.MaskListID = new(int)
				*_m.MaskListID = int(value.Int64)
			}
		case attack.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case attack.FieldTotalKeyspace:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_keyspace", values[i])
			} else if value.Valid {
				_m.TotalKeyspace = new(int64)
				*_m.TotalKeyspace = value.Int64
			}
		case attack.FieldDispatchedKeyspace:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dispatched_keyspace", values[i])
			} else if value.Valid {
				_m.DispatchedKeyspace = value.Int64
			}
		case attack.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = new(time.Time)
				*_m.StartTime = value.Time
			}
		case attack.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case attack.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case attack.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Attack.
// This includes values selected through modifiers, order, etc.
func (_m *Attack) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the Attack entity.
func (_m *Attack) QueryCampaign() *CampaignQuery {
	return NewAttackClient(_m.config).QueryCampaign(_m)
}

// QueryWordList queries the "word_list" edge of the Attack entity.
func (_m *Attack) QueryWordList() *ResourceQuery {
	return NewAttackClient(_m.config).QueryWordList(_m)
}

// QueryRuleList queries the "rule_list" edge of the Attack entity.
func (_m *Attack) QueryRuleList() *ResourceQuery {
	return NewAttackClient(_m.config).QueryRuleList(_m)
}

// QueryMaskList queries the "mask_list" edge of the Attack entity.
func (_m *Attack) QueryMaskList() *ResourceQuery {
	return NewAttackClient(_m.config).QueryMaskList(_m)
}

// QueryTasks queries the "tasks" edge of the Attack entity.
func (_m *Attack) QueryTasks() *TaskQuery {
	return NewAttackClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this Attack.
// Note that you need to call Attack.Unwrap() before calling this method if this Attack
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attack) Update() *AttackUpdateOne {
	return NewAttackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attack entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attack) Unwrap() *Attack {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attack is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attack) String() string {
	var builder strings.Builder
	builder.WriteString("Attack(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("attack_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttackMode))
	builder.WriteString(", ")
	builder.WriteString("mask=")
	builder.WriteString(_m.Mask)
	builder.WriteString(", ")
	builder.WriteString("increment_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncrementMode))
	builder.WriteString(", ")
	builder.WriteString("increment_minimum=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncrementMinimum))
	builder.WriteString(", ")
	builder.WriteString("increment_maximum=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncrementMaximum))
	builder.WriteString(", ")
	builder.WriteString("optimized=")
	builder.WriteString(fmt.Sprintf("%v", _m.Optimized))
	builder.WriteString(", ")
	builder.WriteString("slow_candidate_generators=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlowCandidateGenerators))
	builder.WriteString(", ")
	builder.WriteString("workload_profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkloadProfile))
	builder.WriteString(", ")
	builder.WriteString("disable_markov=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisableMarkov))
	builder.WriteString(", ")
	builder.WriteString("classic_markov=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClassicMarkov))
	builder.WriteString(", ")
	builder.WriteString("markov_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarkovThreshold))
	builder.WriteString(", ")
	builder.WriteString("left_rule=")
	builder.WriteString(_m.LeftRule)
	builder.WriteString(", ")
	builder.WriteString("right_rule=")
	builder.WriteString(_m.RightRule)
	builder.WriteString(", ")
	builder.WriteString("custom_charset_1=")
	builder.WriteString(_m.CustomCharset1)
	builder.WriteString(", ")
	builder.WriteString("custom_charset_2=")
	builder.WriteString(_m.CustomCharset2)
	builder.WriteString(", ")
	builder.WriteString("custom_charset_3=")
	builder.WriteString(_m.CustomCharset3)
	builder.WriteString(", ")
	builder.WriteString("custom_charset_4=")
	builder.WriteString(_m.CustomCharset4)
	builder.WriteString(", ")
	if v := _m.WordListID; v != nil {
		builder.WriteString("word_list_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RuleListID; v != nil {
		builder.WriteString("rule_list_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaskListID; v != nil {
		builder.WriteString("mask_list_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	if v := _m.TotalKeyspace; v != nil {
		builder.WriteString("total_keyspace=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("dispatched_keyspace=")
	builder.WriteString(fmt.Sprintf("%v", _m.DispatchedKeyspace))
	builder.WriteString(", ")
	if v := _m.StartTime; v != nil {
		builder.WriteString("start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Attacks is a parsable slice of Attack.
type Attacks []*Attack
