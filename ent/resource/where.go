// Code generated by ent, DO NOT EDIT.

package resource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldName, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldFileName, v))
}

// FileHandle applies equality check predicate on the "file_handle" field. It's identical to FileHandleEQ.
func FileHandle(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldFileHandle, v))
}

// LineCount applies equality check predicate on the "line_count" field. It's identical to LineCountEQ.
func LineCount(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldLineCount, v))
}

// ByteSize applies equality check predicate on the "byte_size" field. It's identical to ByteSizeEQ.
func ByteSize(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldByteSize, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldChecksum, v))
}

// Sensitive applies equality check predicate on the "sensitive" field. It's identical to SensitiveEQ.
func Sensitive(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldSensitive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldName, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldFileName, v))
}

// FileHandleEQ applies the EQ predicate on the "file_handle" field.
func FileHandleEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldFileHandle, v))
}

// FileHandleNEQ applies the NEQ predicate on the "file_handle" field.
func FileHandleNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldFileHandle, v))
}

// FileHandleIn applies the In predicate on the "file_handle" field.
func FileHandleIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldFileHandle, vs...))
}

// FileHandleNotIn applies the NotIn predicate on the "file_handle" field.
func FileHandleNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldFileHandle, vs...))
}

// FileHandleGT applies the GT predicate on the "file_handle" field.
func FileHandleGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldFileHandle, v))
}

// FileHandleGTE applies the GTE predicate on the "file_handle" field.
func FileHandleGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldFileHandle, v))
}

// FileHandleLT applies the LT predicate on the "file_handle" field.
func FileHandleLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldFileHandle, v))
}

// FileHandleLTE applies the LTE predicate on the "file_handle" field.
func FileHandleLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldFileHandle, v))
}

// FileHandleContains applies the Contains predicate on the "file_handle" field.
func FileHandleContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldFileHandle, v))
}

// FileHandleHasPrefix applies the HasPrefix predicate on the "file_handle" field.
func FileHandleHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldFileHandle, v))
}

// FileHandleHasSuffix applies the HasSuffix predicate on the "file_handle" field.
func FileHandleHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldFileHandle, v))
}

// FileHandleEqualFold applies the EqualFold predicate on the "file_handle" field.
func FileHandleEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldFileHandle, v))
}

// FileHandleContainsFold applies the ContainsFold predicate on the "file_handle" field.
func FileHandleContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldFileHandle, v))
}

// ResourceTypeEQ applies the EQ predicate on the "resource_type" field.
func ResourceTypeEQ(v ResourceType) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldResourceType, v))
}

// ResourceTypeNEQ applies the NEQ predicate on the "resource_type" field.
func ResourceTypeNEQ(v ResourceType) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldResourceType, v))
}

// ResourceTypeIn applies the In predicate on the "resource_type" field.
func ResourceTypeIn(vs ...ResourceType) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldResourceType, vs...))
}

// ResourceTypeNotIn applies the NotIn predicate on the "resource_type" field.
func ResourceTypeNotIn(vs ...ResourceType) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldResourceType, vs...))
}

// LineCountEQ applies the EQ predicate on the "line_count" field.
func LineCountEQ(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldLineCount, v))
}

// LineCountNEQ applies the NEQ predicate on the "line_count" field.
func LineCountNEQ(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldLineCount, v))
}

// LineCountIn applies the In predicate on the "line_count" field.
func LineCountIn(vs ...int64) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldLineCount, vs...))
}

// LineCountNotIn applies the NotIn predicate on the "line_count" field.
func LineCountNotIn(vs ...int64) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldLineCount, vs...))
}

// LineCountGT applies the GT predicate on the "line_count" field.
func LineCountGT(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldLineCount, v))
}

// LineCountGTE applies the GTE predicate on the "line_count" field.
func LineCountGTE(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldLineCount, v))
}

// LineCountLT applies the LT predicate on the "line_count" field.
func LineCountLT(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldLineCount, v))
}

// LineCountLTE applies the LTE predicate on the "line_count" field.
func LineCountLTE(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldLineCount, v))
}

// LineCountIsNil applies the IsNil predicate on the "line_count" field.
func LineCountIsNil() predicate.Resource {
	return predicate.Resource(sql.FieldIsNull(FieldLineCount))
}

// LineCountNotNil applies the NotNil predicate on the "line_count" field.
func LineCountNotNil() predicate.Resource {
	return predicate.Resource(sql.FieldNotNull(FieldLineCount))
}

// ByteSizeEQ applies the EQ predicate on the "byte_size" field.
func ByteSizeEQ(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldByteSize, v))
}

// ByteSizeNEQ applies the NEQ predicate on the "byte_size" field.
func ByteSizeNEQ(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldByteSize, v))
}

// ByteSizeIn applies the In predicate on the "byte_size" field.
func ByteSizeIn(vs ...int64) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldByteSize, vs...))
}

// ByteSizeNotIn applies the NotIn predicate on the "byte_size" field.
func ByteSizeNotIn(vs ...int64) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldByteSize, vs...))
}

// ByteSizeGT applies the GT predicate on the "byte_size" field.
func ByteSizeGT(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldByteSize, v))
}

// ByteSizeGTE applies the GTE predicate on the "byte_size" field.
func ByteSizeGTE(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldByteSize, v))
}

// ByteSizeLT applies the LT predicate on the "byte_size" field.
func ByteSizeLT(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldByteSize, v))
}

// ByteSizeLTE applies the LTE predicate on the "byte_size" field.
func ByteSizeLTE(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldByteSize, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldChecksum, v))
}

// SensitiveEQ applies the EQ predicate on the "sensitive" field.
func SensitiveEQ(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldSensitive, v))
}

// SensitiveNEQ applies the NEQ predicate on the "sensitive" field.
func SensitiveNEQ(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldSensitive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProjects applies the HasEdge predicate on the "projects" edge.
func HasProjects() predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, ProjectsTable, ProjectsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectsWith applies the HasEdge predicate on the "projects" edge with a given conditions (other predicates).
func HasProjectsWith(preds ...predicate.Project) predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := newProjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWordListAttacks applies the HasEdge predicate on the "word_list_attacks" edge.
func HasWordListAttacks() predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WordListAttacksTable, WordListAttacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWordListAttacksWith applies the HasEdge predicate on the "word_list_attacks" edge with a given conditions (other predicates).
func HasWordListAttacksWith(preds ...predicate.Attack) predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := newWordListAttacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuleListAttacks applies the HasEdge predicate on the "rule_list_attacks" edge.
func HasRuleListAttacks() predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RuleListAttacksTable, RuleListAttacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRuleListAttacksWith applies the HasEdge predicate on the "rule_list_attacks" edge with a given conditions (other predicates).
func HasRuleListAttacksWith(preds ...predicate.Attack) predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := newRuleListAttacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMaskListAttacks applies the HasEdge predicate on the "mask_list_attacks" edge.
func HasMaskListAttacks() predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MaskListAttacksTable, MaskListAttacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMaskListAttacksWith applies the HasEdge predicate on the "mask_list_attacks" edge with a given conditions (other predicates).
func HasMaskListAttacksWith(preds ...predicate.Attack) predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := newMaskListAttacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.NotPredicates(p))
}
