// Code generated by ent, DO NOT EDIT.

package attack

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCampaignID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldName, v))
}

// Mask applies equality check predicate on the "mask" field. It's identical to MaskEQ.
func Mask(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldMask, v))
}

// IncrementMode applies equality check predicate on the "increment_mode" field. It's identical to IncrementModeEQ.
func IncrementMode(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldIncrementMode, v))
}

// IncrementMinimum applies equality check predicate on the "increment_minimum" field. It's identical to IncrementMinimumEQ.
func IncrementMinimum(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldIncrementMinimum, v))
}

// IncrementMaximum applies equality check predicate on the "increment_maximum" field. It's identical to IncrementMaximumEQ.
func IncrementMaximum(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldIncrementMaximum, v))
}

// Optimized applies equality check predicate on the "optimized" field. It's identical to OptimizedEQ.
func Optimized(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldOptimized, v))
}

// SlowCandidateGenerators applies equality check predicate on the "slow_candidate_generators" field. It's identical to SlowCandidateGeneratorsEQ.
func SlowCandidateGenerators(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldSlowCandidateGenerators, v))
}

// WorkloadProfile applies equality check predicate on the "workload_profile" field. It's identical to WorkloadProfileEQ.
func WorkloadProfile(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldWorkloadProfile, v))
}

// DisableMarkov applies equality check predicate on the "disable_markov" field. It's identical to DisableMarkovEQ.
func DisableMarkov(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldDisableMarkov, v))
}

// ClassicMarkov applies equality check predicate on the "classic_markov" field. It's identical to ClassicMarkovEQ.
func ClassicMarkov(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldClassicMarkov, v))
}

// MarkovThreshold applies equality check predicate on the "markov_threshold" field. It's identical to MarkovThresholdEQ.
func MarkovThreshold(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldMarkovThreshold, v))
}

// LeftRule applies equality check predicate on the "left_rule" field. It's identical to LeftRuleEQ.
func LeftRule(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldLeftRule, v))
}

// RightRule applies equality check predicate on the "right_rule" field. It's identical to RightRuleEQ.
func RightRule(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldRightRule, v))
}

// CustomCharset1 applies equality check predicate on the "custom_charset_1" field. It's identical to CustomCharset1EQ.
func CustomCharset1(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCustomCharset1, v))
}

// CustomCharset2 applies equality check predicate on the "custom_charset_2" field. It's identical to CustomCharset2EQ.
func CustomCharset2(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCustomCharset2, v))
}

// CustomCharset3 applies equality check predicate on the "custom_charset_3" field. It's identical to CustomCharset3EQ.
func CustomCharset3(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCustomCharset3, v))
}

// CustomCharset4 applies equality check predicate on the "custom_charset_4" field. It's identical to CustomCharset4EQ.
func CustomCharset4(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCustomCharset4, v))
}

// WordListID applies equality check predicate on the "word_list_id" field. It's identical to WordListIDEQ.
func WordListID(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldWordListID, v))
}

// RuleListID applies equality check predicate on the "rule_list_id" field. It's identical to RuleListIDEQ.
func RuleListID(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldRuleListID, v))
}

// MaskListID applies equality check predicate on the "mask_list_id" field. It's identical to MaskListIDEQ.
func MaskListID(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldMaskListID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldPosition, v))
}

// TotalKeyspace applies equality check predicate on the "total_keyspace" field. It's identical to TotalKeyspaceEQ.
func TotalKeyspace(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldTotalKeyspace, v))
}

// DispatchedKeyspace applies equality check predicate on the "dispatched_keyspace" field. It's identical to DispatchedKeyspaceEQ.
func DispatchedKeyspace(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldDispatchedKeyspace, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldEndTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldUpdatedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldCampaignID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContainsFold(FieldName, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldState, vs...))
}

// AttackModeEQ applies the EQ predicate on the "attack_mode" field.
func AttackModeEQ(v AttackMode) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldAttackMode, v))
}

// AttackModeNEQ applies the NEQ predicate on the "attack_mode" field.
func AttackModeNEQ(v AttackMode) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldAttackMode, v))
}

// AttackModeIn applies the In predicate on the "attack_mode" field.
func AttackModeIn(vs ...AttackMode) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldAttackMode, vs...))
}

// AttackModeNotIn applies the NotIn predicate on the "attack_mode" field.
func AttackModeNotIn(vs ...AttackMode) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldAttackMode, vs...))
}

// MaskEQ applies the EQ predicate on the "mask" field.
func MaskEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldMask, v))
}

// MaskNEQ applies the NEQ predicate on the "mask" field.
func MaskNEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldMask, v))
}

// MaskIn applies the In predicate on the "mask" field.
func MaskIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldMask, vs...))
}

// MaskNotIn applies the NotIn predicate on the "mask" field.
func MaskNotIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldMask, vs...))
}

// MaskGT applies the GT predicate on the "mask" field.
func MaskGT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldMask, v))
}

// MaskGTE applies the GTE predicate on the "mask" field.
func MaskGTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldMask, v))
}

// MaskLT applies the LT predicate on the "mask" field.
func MaskLT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldMask, v))
}

// MaskLTE applies the LTE predicate on the "mask" field.
func MaskLTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldMask, v))
}

// MaskContains applies the Contains predicate on the "mask" field.
func MaskContains(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContains(FieldMask, v))
}

// MaskHasPrefix applies the HasPrefix predicate on the "mask" field.
func MaskHasPrefix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasPrefix(FieldMask, v))
}

// MaskHasSuffix applies the HasSuffix predicate on the "mask" field.
func MaskHasSuffix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasSuffix(FieldMask, v))
}

// MaskIsNil applies the IsNil predicate on the "mask" field.
func MaskIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldMask))
}

// MaskNotNil applies the NotNil predicate on the "mask" field.
func MaskNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldMask))
}

// MaskEqualFold applies the EqualFold predicate on the "mask" field.
func MaskEqualFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEqualFold(FieldMask, v))
}

// MaskContainsFold applies the ContainsFold predicate on the "mask" field.
func MaskContainsFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContainsFold(FieldMask, v))
}

// IncrementModeEQ applies the EQ predicate on the "increment_mode" field.
func IncrementModeEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldIncrementMode, v))
}

// IncrementModeNEQ applies the NEQ predicate on the "increment_mode" field.
func IncrementModeNEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldIncrementMode, v))
}

// IncrementMinimumEQ applies the EQ predicate on the "increment_minimum" field.
func IncrementMinimumEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldIncrementMinimum, v))
}

// IncrementMinimumNEQ applies the NEQ predicate on the "increment_minimum" field.
func IncrementMinimumNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldIncrementMinimum, v))
}

// IncrementMinimumIn applies the In predicate on the "increment_minimum" field.
func IncrementMinimumIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldIncrementMinimum, vs...))
}

// IncrementMinimumNotIn applies the NotIn predicate on the "increment_minimum" field.
func IncrementMinimumNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldIncrementMinimum, vs...))
}

// IncrementMinimumGT applies the GT predicate on the "increment_minimum" field.
func IncrementMinimumGT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldIncrementMinimum, v))
}

// IncrementMinimumGTE applies the GTE predicate on the "increment_minimum" field.
func IncrementMinimumGTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldIncrementMinimum, v))
}

// IncrementMinimumLT applies the LT predicate on the "increment_minimum" field.
func IncrementMinimumLT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldIncrementMinimum, v))
}

// IncrementMinimumLTE applies the LTE predicate on the "increment_minimum" field.
func IncrementMinimumLTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldIncrementMinimum, v))
}

// IncrementMaximumEQ applies the EQ predicate on the "increment_maximum" field.
func IncrementMaximumEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldIncrementMaximum, v))
}

// IncrementMaximumNEQ applies the NEQ predicate on the "increment_maximum" field.
func IncrementMaximumNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldIncrementMaximum, v))
}

// IncrementMaximumIn applies the In predicate on the "increment_maximum" field.
func IncrementMaximumIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldIncrementMaximum, vs...))
}

// IncrementMaximumNotIn applies the NotIn predicate on the "increment_maximum" field.
func IncrementMaximumNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldIncrementMaximum, vs...))
}

// IncrementMaximumGT applies the GT predicate on the "increment_maximum" field.
func IncrementMaximumGT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldIncrementMaximum, v))
}

// IncrementMaximumGTE applies the GTE predicate on the "increment_maximum" field.
func IncrementMaximumGTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldIncrementMaximum, v))
}

// IncrementMaximumLT applies the LT predicate on the "increment_maximum" field.
func IncrementMaximumLT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldIncrementMaximum, v))
}

// IncrementMaximumLTE applies the LTE predicate on the "increment_maximum" field.
func IncrementMaximumLTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldIncrementMaximum, v))
}

// OptimizedEQ applies the EQ predicate on the "optimized" field.
func OptimizedEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldOptimized, v))
}

// OptimizedNEQ applies the NEQ predicate on the "optimized" field.
func OptimizedNEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldOptimized, v))
}

// SlowCandidateGeneratorsEQ applies the EQ predicate on the "slow_candidate_generators" field.
func SlowCandidateGeneratorsEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldSlowCandidateGenerators, v))
}

// SlowCandidateGeneratorsNEQ applies the NEQ predicate on the "slow_candidate_generators" field.
func SlowCandidateGeneratorsNEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldSlowCandidateGenerators, v))
}

// WorkloadProfileEQ applies the EQ predicate on the "workload_profile" field.
func WorkloadProfileEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldWorkloadProfile, v))
}

// WorkloadProfileNEQ applies the NEQ predicate on the "workload_profile" field.
func WorkloadProfileNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldWorkloadProfile, v))
}

// WorkloadProfileIn applies the In predicate on the "workload_profile" field.
func WorkloadProfileIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldWorkloadProfile, vs...))
}

// WorkloadProfileNotIn applies the NotIn predicate on the "workload_profile" field.
func WorkloadProfileNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldWorkloadProfile, vs...))
}

// WorkloadProfileGT applies the GT predicate on the "workload_profile" field.
func WorkloadProfileGT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldWorkloadProfile, v))
}

// WorkloadProfileGTE applies the GTE predicate on the "workload_profile" field.
func WorkloadProfileGTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldWorkloadProfile, v))
}

// WorkloadProfileLT applies the LT predicate on the "workload_profile" field.
func WorkloadProfileLT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldWorkloadProfile, v))
}

// WorkloadProfileLTE applies the LTE predicate on the "workload_profile" field.
func WorkloadProfileLTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldWorkloadProfile, v))
}

// DisableMarkovEQ applies the EQ predicate on the "disable_markov" field.
func DisableMarkovEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldDisableMarkov, v))
}

// DisableMarkovNEQ applies the NEQ predicate on the "disable_markov" field.
func DisableMarkovNEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldDisableMarkov, v))
}

// ClassicMarkovEQ applies the EQ predicate on the "classic_markov" field.
func ClassicMarkovEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldClassicMarkov, v))
}

// ClassicMarkovNEQ applies the NEQ predicate on the "classic_markov" field.
func ClassicMarkovNEQ(v bool) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldClassicMarkov, v))
}

// MarkovThresholdEQ applies the EQ predicate on the "markov_threshold" field.
func MarkovThresholdEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldMarkovThreshold, v))
}

// MarkovThresholdNEQ applies the NEQ predicate on the "markov_threshold" field.
func MarkovThresholdNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldMarkovThreshold, v))
}

// MarkovThresholdIn applies the In predicate on the "markov_threshold" field.
func MarkovThresholdIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldMarkovThreshold, vs...))
}

// MarkovThresholdNotIn applies the NotIn predicate on the "markov_threshold" field.
func MarkovThresholdNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldMarkovThreshold, vs...))
}

// MarkovThresholdGT applies the GT predicate on the "markov_threshold" field.
func MarkovThresholdGT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldMarkovThreshold, v))
}

// MarkovThresholdGTE applies the GTE predicate on the "markov_threshold" field.
func MarkovThresholdGTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldMarkovThreshold, v))
}

// MarkovThresholdLT applies the LT predicate on the "markov_threshold" field.
func MarkovThresholdLT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldMarkovThreshold, v))
}

// MarkovThresholdLTE applies the LTE predicate on the "markov_threshold" field.
func MarkovThresholdLTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldMarkovThreshold, v))
}

// LeftRuleEQ applies the EQ predicate on the "left_rule" field.
func LeftRuleEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldLeftRule, v))
}

// LeftRuleNEQ applies the NEQ predicate on the "left_rule" field.
func LeftRuleNEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldLeftRule, v))
}

// LeftRuleIn applies the In predicate on the "left_rule" field.
func LeftRuleIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldLeftRule, vs...))
}

// LeftRuleNotIn applies the NotIn predicate on the "left_rule" field.
func LeftRuleNotIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldLeftRule, vs...))
}

// LeftRuleGT applies the GT predicate on the "left_rule" field.
func LeftRuleGT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldLeftRule, v))
}

// LeftRuleGTE applies the GTE predicate on the "left_rule" field.
func LeftRuleGTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldLeftRule, v))
}

// LeftRuleLT applies the LT predicate on the "left_rule" field.
func LeftRuleLT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldLeftRule, v))
}

// LeftRuleLTE applies the LTE predicate on the "left_rule" field.
func LeftRuleLTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldLeftRule, v))
}

// LeftRuleContains applies the Contains predicate on the "left_rule" field.
func LeftRuleContains(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContains(FieldLeftRule, v))
}

// LeftRuleHasPrefix applies the HasPrefix predicate on the "left_rule" field.
func LeftRuleHasPrefix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasPrefix(FieldLeftRule, v))
}

// LeftRuleHasSuffix applies the HasSuffix predicate on the "left_rule" field.
func LeftRuleHasSuffix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasSuffix(FieldLeftRule, v))
}

// LeftRuleIsNil applies the IsNil predicate on the "left_rule" field.
func LeftRuleIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldLeftRule))
}

// LeftRuleNotNil applies the NotNil predicate on the "left_rule" field.
func LeftRuleNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldLeftRule))
}

// LeftRuleEqualFold applies the EqualFold predicate on the "left_rule" field.
func LeftRuleEqualFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEqualFold(FieldLeftRule, v))
}

// LeftRuleContainsFold applies the ContainsFold predicate on the "left_rule" field.
func LeftRuleContainsFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContainsFold(FieldLeftRule, v))
}

// RightRuleEQ applies the EQ predicate on the "right_rule" field.
func RightRuleEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldRightRule, v))
}

// RightRuleNEQ applies the NEQ predicate on the "right_rule" field.
func RightRuleNEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldRightRule, v))
}

// RightRuleIn applies the In predicate on the "right_rule" field.
func RightRuleIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldRightRule, vs...))
}

// RightRuleNotIn applies the NotIn predicate on the "right_rule" field.
func RightRuleNotIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldRightRule, vs...))
}

// RightRuleGT applies the GT predicate on the "right_rule" field.
func RightRuleGT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldRightRule, v))
}

// RightRuleGTE applies the GTE predicate on the "right_rule" field.
func RightRuleGTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldRightRule, v))
}

// RightRuleLT applies the LT predicate on the "right_rule" field.
func RightRuleLT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldRightRule, v))
}

// RightRuleLTE applies the LTE predicate on the "right_rule" field.
func RightRuleLTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldRightRule, v))
}

// RightRuleContains applies the Contains predicate on the "right_rule" field.
func RightRuleContains(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContains(FieldRightRule, v))
}

// RightRuleHasPrefix applies the HasPrefix predicate on the "right_rule" field.
func RightRuleHasPrefix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasPrefix(FieldRightRule, v))
}

// RightRuleHasSuffix applies the HasSuffix predicate on the "right_rule" field.
func RightRuleHasSuffix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasSuffix(FieldRightRule, v))
}

// RightRuleIsNil applies the IsNil predicate on the "right_rule" field.
func RightRuleIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldRightRule))
}

// RightRuleNotNil applies the NotNil predicate on the "right_rule" field.
func RightRuleNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldRightRule))
}

// RightRuleEqualFold applies the EqualFold predicate on the "right_rule" field.
func RightRuleEqualFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEqualFold(FieldRightRule, v))
}

// RightRuleContainsFold applies the ContainsFold predicate on the "right_rule" field.
func RightRuleContainsFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContainsFold(FieldRightRule, v))
}

// CustomCharset1EQ applies the EQ predicate on the "custom_charset_1" field.
func CustomCharset1EQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCustomCharset1, v))
}

// CustomCharset1NEQ applies the NEQ predicate on the "custom_charset_1" field.
func CustomCharset1NEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldCustomCharset1, v))
}

// CustomCharset1In applies the In predicate on the "custom_charset_1" field.
func CustomCharset1In(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldCustomCharset1, vs...))
}

// CustomCharset1NotIn applies the NotIn predicate on the "custom_charset_1" field.
func CustomCharset1NotIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldCustomCharset1, vs...))
}

// CustomCharset1GT applies the GT predicate on the "custom_charset_1" field.
func CustomCharset1GT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldCustomCharset1, v))
}

// CustomCharset1GTE applies the GTE predicate on the "custom_charset_1" field.
func CustomCharset1GTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldCustomCharset1, v))
}

// CustomCharset1LT applies the LT predicate on the "custom_charset_1" field.
func CustomCharset1LT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldCustomCharset1, v))
}

// CustomCharset1LTE applies the LTE predicate on the "custom_charset_1" field.
func CustomCharset1LTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldCustomCharset1, v))
}

// CustomCharset1Contains applies the Contains predicate on the "custom_charset_1" field.
func CustomCharset1Contains(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContains(FieldCustomCharset1, v))
}

// CustomCharset1HasPrefix applies the HasPrefix predicate on the "custom_charset_1" field.
func CustomCharset1HasPrefix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasPrefix(FieldCustomCharset1, v))
}

// CustomCharset1HasSuffix applies the HasSuffix predicate on the "custom_charset_1" field.
func CustomCharset1HasSuffix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasSuffix(FieldCustomCharset1, v))
}

// CustomCharset1IsNil applies the IsNil predicate on the "custom_charset_1" field.
func CustomCharset1IsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldCustomCharset1))
}

// CustomCharset1NotNil applies the NotNil predicate on the "custom_charset_1" field.
func CustomCharset1NotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldCustomCharset1))
}

// CustomCharset1EqualFold applies the EqualFold predicate on the "custom_charset_1" field.
func CustomCharset1EqualFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEqualFold(FieldCustomCharset1, v))
}

// CustomCharset1ContainsFold applies the ContainsFold predicate on the "custom_charset_1" field.
func CustomCharset1ContainsFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContainsFold(FieldCustomCharset1, v))
}

// CustomCharset2EQ applies the EQ predicate on the "custom_charset_2" field.
func CustomCharset2EQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCustomCharset2, v))
}

// CustomCharset2NEQ applies the NEQ predicate on the "custom_charset_2" field.
func CustomCharset2NEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldCustomCharset2, v))
}

// CustomCharset2In applies the In predicate on the "custom_charset_2" field.
func CustomCharset2In(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldCustomCharset2, vs...))
}

// CustomCharset2NotIn applies the NotIn predicate on the "custom_charset_2" field.
func CustomCharset2NotIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldCustomCharset2, vs...))
}

// CustomCharset2GT applies the GT predicate on the "custom_charset_2" field.
func CustomCharset2GT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldCustomCharset2, v))
}

// CustomCharset2GTE applies the GTE predicate on the "custom_charset_2" field.
func CustomCharset2GTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldCustomCharset2, v))
}

// CustomCharset2LT applies the LT predicate on the "custom_charset_2" field.
func CustomCharset2LT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldCustomCharset2, v))
}

// CustomCharset2LTE applies the LTE predicate on the "custom_charset_2" field.
func CustomCharset2LTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldCustomCharset2, v))
}

// CustomCharset2Contains applies the Contains predicate on the "custom_charset_2" field.
func CustomCharset2Contains(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContains(FieldCustomCharset2, v))
}

// CustomCharset2HasPrefix applies the HasPrefix predicate on the "custom_charset_2" field.
func CustomCharset2HasPrefix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasPrefix(FieldCustomCharset2, v))
}

// CustomCharset2HasSuffix applies the HasSuffix predicate on the "custom_charset_2" field.
func CustomCharset2HasSuffix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasSuffix(FieldCustomCharset2, v))
}

// CustomCharset2IsNil applies the IsNil predicate on the "custom_charset_2" field.
func CustomCharset2IsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldCustomCharset2))
}

// CustomCharset2NotNil applies the NotNil predicate on the "custom_charset_2" field.
func CustomCharset2NotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldCustomCharset2))
}

// CustomCharset2EqualFold applies the EqualFold predicate on the "custom_charset_2" field.
func CustomCharset2EqualFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEqualFold(FieldCustomCharset2, v))
}

// CustomCharset2ContainsFold applies the ContainsFold predicate on the "custom_charset_2" field.
func CustomCharset2ContainsFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContainsFold(FieldCustomCharset2, v))
}

// CustomCharset3EQ applies the EQ predicate on the "custom_charset_3" field.
func CustomCharset3EQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCustomCharset3, v))
}

// CustomCharset3NEQ applies the NEQ predicate on the "custom_charset_3" field.
func CustomCharset3NEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldCustomCharset3, v))
}

// CustomCharset3In applies the In predicate on the "custom_charset_3" field.
func CustomCharset3In(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldCustomCharset3, vs...))
}

// CustomCharset3NotIn applies the NotIn predicate on the "custom_charset_3" field.
func CustomCharset3NotIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldCustomCharset3, vs...))
}

// CustomCharset3GT applies the GT predicate on the "custom_charset_3" field.
func CustomCharset3GT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldCustomCharset3, v))
}

// CustomCharset3GTE applies the GTE predicate on the "custom_charset_3" field.
func CustomCharset3GTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldCustomCharset3, v))
}

// CustomCharset3LT applies the LT predicate on the "custom_charset_3" field.
func CustomCharset3LT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldCustomCharset3, v))
}

// CustomCharset3LTE applies the LTE predicate on the "custom_charset_3" field.
func CustomCharset3LTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldCustomCharset3, v))
}

// CustomCharset3Contains applies the Contains predicate on the "custom_charset_3" field.
func CustomCharset3Contains(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContains(FieldCustomCharset3, v))
}

// CustomCharset3HasPrefix applies the HasPrefix predicate on the "custom_charset_3" field.
func CustomCharset3HasPrefix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasPrefix(FieldCustomCharset3, v))
}

// CustomCharset3HasSuffix applies the HasSuffix predicate on the "custom_charset_3" field.
func CustomCharset3HasSuffix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasSuffix(FieldCustomCharset3, v))
}

// CustomCharset3IsNil applies the IsNil predicate on the "custom_charset_3" field.
func CustomCharset3IsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldCustomCharset3))
}

// CustomCharset3NotNil applies the NotNil predicate on the "custom_charset_3" field.
func CustomCharset3NotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldCustomCharset3))
}

// CustomCharset3EqualFold applies the EqualFold predicate on the "custom_charset_3" field.
func CustomCharset3EqualFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEqualFold(FieldCustomCharset3, v))
}

// CustomCharset3ContainsFold applies the ContainsFold predicate on the "custom_charset_3" field.
func CustomCharset3ContainsFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContainsFold(FieldCustomCharset3, v))
}

// CustomCharset4EQ applies the EQ predicate on the "custom_charset_4" field.
func CustomCharset4EQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCustomCharset4, v))
}

// CustomCharset4NEQ applies the NEQ predicate on the "custom_charset_4" field.
func CustomCharset4NEQ(v string) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldCustomCharset4, v))
}

// CustomCharset4In applies the In predicate on the "custom_charset_4" field.
func CustomCharset4In(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldCustomCharset4, vs...))
}

// CustomCharset4NotIn applies the NotIn predicate on the "custom_charset_4" field.
func CustomCharset4NotIn(vs ...string) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldCustomCharset4, vs...))
}

// CustomCharset4GT applies the GT predicate on the "custom_charset_4" field.
func CustomCharset4GT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldCustomCharset4, v))
}

// CustomCharset4GTE applies the GTE predicate on the "custom_charset_4" field.
func CustomCharset4GTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldCustomCharset4, v))
}

// CustomCharset4LT applies the LT predicate on the "custom_charset_4" field.
func CustomCharset4LT(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldCustomCharset4, v))
}

// CustomCharset4LTE applies the LTE predicate on the "custom_charset_4" field.
func CustomCharset4LTE(v string) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldCustomCharset4, v))
}

// CustomCharset4Contains applies the Contains predicate on the "custom_charset_4" field.
func CustomCharset4Contains(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContains(FieldCustomCharset4, v))
}

// CustomCharset4HasPrefix applies the HasPrefix predicate on the "custom_charset_4" field.
func CustomCharset4HasPrefix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasPrefix(FieldCustomCharset4, v))
}

// CustomCharset4HasSuffix applies the HasSuffix predicate on the "custom_charset_4" field.
func CustomCharset4HasSuffix(v string) predicate.Attack {
	return predicate.Attack(sql.FieldHasSuffix(FieldCustomCharset4, v))
}

// CustomCharset4IsNil applies the IsNil predicate on the "custom_charset_4" field.
func CustomCharset4IsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldCustomCharset4))
}

// CustomCharset4NotNil applies the NotNil predicate on the "custom_charset_4" field.
func CustomCharset4NotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldCustomCharset4))
}

// CustomCharset4EqualFold applies the EqualFold predicate on the "custom_charset_4" field.
func CustomCharset4EqualFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldEqualFold(FieldCustomCharset4, v))
}

// CustomCharset4ContainsFold applies the ContainsFold predicate on the "custom_charset_4" field.
func CustomCharset4ContainsFold(v string) predicate.Attack {
	return predicate.Attack(sql.FieldContainsFold(FieldCustomCharset4, v))
}

// WordListIDEQ applies the EQ predicate on the "word_list_id" field.
func WordListIDEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldWordListID, v))
}

// WordListIDNEQ applies the NEQ predicate on the "word_list_id" field.
func WordListIDNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldWordListID, v))
}

// WordListIDIn applies the In predicate on the "word_list_id" field.
func WordListIDIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldWordListID, vs...))
}

// WordListIDNotIn applies the NotIn predicate on the "word_list_id" field.
func WordListIDNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldWordListID, vs...))
}

// WordListIDIsNil applies the IsNil predicate on the "word_list_id" field.
func WordListIDIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldWordListID))
}

// WordListIDNotNil applies the NotNil predicate on the "word_list_id" field.
func WordListIDNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldWordListID))
}

// RuleListIDEQ applies the EQ predicate on the "rule_list_id" field.
func RuleListIDEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldRuleListID, v))
}

// RuleListIDNEQ applies the NEQ predicate on the "rule_list_id" field.
func RuleListIDNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldRuleListID, v))
}

// RuleListIDIn applies the In predicate on the "rule_list_id" field.
func RuleListIDIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldRuleListID, vs...))
}

// RuleListIDNotIn applies the NotIn predicate on the "rule_list_id" field.
func RuleListIDNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldRuleListID, vs...))
}

// RuleListIDIsNil applies the IsNil predicate on the "rule_list_id" field.
func RuleListIDIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldRuleListID))
}

// RuleListIDNotNil applies the NotNil predicate on the "rule_list_id" field.
func RuleListIDNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldRuleListID))
}

// MaskListIDEQ applies the EQ predicate on the "mask_list_id" field.
func MaskListIDEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldMaskListID, v))
}

// MaskListIDNEQ applies the NEQ predicate on the "mask_list_id" field.
func MaskListIDNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldMaskListID, v))
}

// MaskListIDIn applies the In predicate on the "mask_list_id" field.
func MaskListIDIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldMaskListID, vs...))
}

// MaskListIDNotIn applies the NotIn predicate on the "mask_list_id" field.
func MaskListIDNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldMaskListID, vs...))
}

// MaskListIDIsNil applies the IsNil predicate on the "mask_list_id" field.
func MaskListIDIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldMaskListID))
}

// MaskListIDNotNil applies the NotNil predicate on the "mask_list_id" field.
func MaskListIDNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldMaskListID))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldPosition, v))
}

// TotalKeyspaceEQ applies the EQ predicate on the "total_keyspace" field.
func TotalKeyspaceEQ(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldTotalKeyspace, v))
}

// TotalKeyspaceNEQ applies the NEQ predicate on the "total_keyspace" field.
func TotalKeyspaceNEQ(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldTotalKeyspace, v))
}

// TotalKeyspaceIn applies the In predicate on the "total_keyspace" field.
func TotalKeyspaceIn(vs ...int64) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldTotalKeyspace, vs...))
}

// TotalKeyspaceNotIn applies the NotIn predicate on the "total_keyspace" field.
func TotalKeyspaceNotIn(vs ...int64) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldTotalKeyspace, vs...))
}

// TotalKeyspaceGT applies the GT predicate on the "total_keyspace" field.
func TotalKeyspaceGT(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldTotalKeyspace, v))
}

// TotalKeyspaceGTE applies the GTE predicate on the "total_keyspace" field.
func TotalKeyspaceGTE(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldTotalKeyspace, v))
}

// TotalKeyspaceLT applies the LT predicate on the "total_keyspace" field.
func TotalKeyspaceLT(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldTotalKeyspace, v))
}

// TotalKeyspaceLTE applies the LTE predicate on the "total_keyspace" field.
func TotalKeyspaceLTE(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldTotalKeyspace, v))
}

// TotalKeyspaceIsNil applies the IsNil predicate on the "total_keyspace" field.
func TotalKeyspaceIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldTotalKeyspace))
}

// TotalKeyspaceNotNil applies the NotNil predicate on the "total_keyspace" field.
func TotalKeyspaceNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldTotalKeyspace))
}

// DispatchedKeyspaceEQ applies the EQ predicate on the "dispatched_keyspace" field.
func DispatchedKeyspaceEQ(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldDispatchedKeyspace, v))
}

// DispatchedKeyspaceNEQ applies the NEQ predicate on the "dispatched_keyspace" field.
func DispatchedKeyspaceNEQ(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldDispatchedKeyspace, v))
}

// DispatchedKeyspaceIn applies the In predicate on the "dispatched_keyspace" field.
func DispatchedKeyspaceIn(vs ...int64) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldDispatchedKeyspace, vs...))
}

// DispatchedKeyspaceNotIn applies the NotIn predicate on the "dispatched_keyspace" field.
func DispatchedKeyspaceNotIn(vs ...int64) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldDispatchedKeyspace, vs...))
}

// DispatchedKeyspaceGT applies the GT predicate on the "dispatched_keyspace" field.
func DispatchedKeyspaceGT(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldDispatchedKeyspace, v))
}

// DispatchedKeyspaceGTE applies the GTE predicate on the "dispatched_keyspace" field.
func DispatchedKeyspaceGTE(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldDispatchedKeyspace, v))
}

// DispatchedKeyspaceLT applies the LT predicate on the "dispatched_keyspace" field.
func DispatchedKeyspaceLT(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldDispatchedKeyspace, v))
}

// DispatchedKeyspaceLTE applies the LTE predicate on the "dispatched_keyspace" field.
func DispatchedKeyspaceLTE(v int64) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldDispatchedKeyspace, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeIsNil applies the IsNil predicate on the "start_time" field.
func StartTimeIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldStartTime))
}

// StartTimeNotNil applies the NotNil predicate on the "start_time" field.
func StartTimeNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldStartTime))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.Attack {
	return predicate.Attack(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.Attack {
	return predicate.Attack(sql.FieldNotNull(FieldEndTime))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Attack {
	return predicate.Attack(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWordList applies the HasEdge predicate on the "word_list" edge.
func HasWordList() predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WordListTable, WordListColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWordListWith applies the HasEdge predicate on the "word_list" edge with a given conditions (other predicates).
func HasWordListWith(preds ...predicate.Resource) predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := newWordListStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuleList applies the HasEdge predicate on the "rule_list" edge.
func HasRuleList() predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RuleListTable, RuleListColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRuleListWith applies the HasEdge predicate on the "rule_list" edge with a given conditions (other predicates).
func HasRuleListWith(preds ...predicate.Resource) predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := newRuleListStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMaskList applies the HasEdge predicate on the "mask_list" edge.
func HasMaskList() predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MaskListTable, MaskListColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMaskListWith applies the HasEdge predicate on the "mask_list" edge with a given conditions (other predicates).
func HasMaskListWith(preds ...predicate.Resource) predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := newMaskListStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Attack {
	return predicate.Attack(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attack) predicate.Attack {
	return predicate.Attack(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attack) predicate.Attack {
	return predicate.Attack(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attack) predicate.Attack {
	return predicate.Attack(sql.NotPredicates(p))
}
