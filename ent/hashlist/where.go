// Code generated by ent, DO NOT EDIT.

package hashlist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldDescription, v))
}

// HashTypeID applies equality check predicate on the "hash_type_id" field. It's identical to HashTypeIDEQ.
func HashTypeID(v int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldHashTypeID, v))
}

// Separator applies equality check predicate on the "separator" field. It's identical to SeparatorEQ.
func Separator(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldSeparator, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldItemCount, v))
}

// UncrackedCount applies equality check predicate on the "uncracked_count" field. It's identical to UncrackedCountEQ.
func UncrackedCount(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldUncrackedCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldProjectID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.HashList {
	return predicate.HashList(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.HashList {
	return predicate.HashList(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.HashList {
	return predicate.HashList(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.HashList {
	return predicate.HashList(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.HashList {
	return predicate.HashList(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.HashList {
	return predicate.HashList(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.HashList {
	return predicate.HashList(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.HashList {
	return predicate.HashList(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.HashList {
	return predicate.HashList(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.HashList {
	return predicate.HashList(sql.FieldContainsFold(FieldDescription, v))
}

// HashTypeIDEQ applies the EQ predicate on the "hash_type_id" field.
func HashTypeIDEQ(v int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldHashTypeID, v))
}

// HashTypeIDNEQ applies the NEQ predicate on the "hash_type_id" field.
func HashTypeIDNEQ(v int) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldHashTypeID, v))
}

// HashTypeIDIn applies the In predicate on the "hash_type_id" field.
func HashTypeIDIn(vs ...int) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldHashTypeID, vs...))
}

// HashTypeIDNotIn applies the NotIn predicate on the "hash_type_id" field.
func HashTypeIDNotIn(vs ...int) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldHashTypeID, vs...))
}

// HashTypeIDGT applies the GT predicate on the "hash_type_id" field.
func HashTypeIDGT(v int) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldHashTypeID, v))
}

// HashTypeIDGTE applies the GTE predicate on the "hash_type_id" field.
func HashTypeIDGTE(v int) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldHashTypeID, v))
}

// HashTypeIDLT applies the LT predicate on the "hash_type_id" field.
func HashTypeIDLT(v int) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldHashTypeID, v))
}

// HashTypeIDLTE applies the LTE predicate on the "hash_type_id" field.
func HashTypeIDLTE(v int) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldHashTypeID, v))
}

// SeparatorEQ applies the EQ predicate on the "separator" field.
func SeparatorEQ(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldSeparator, v))
}

// SeparatorNEQ applies the NEQ predicate on the "separator" field.
func SeparatorNEQ(v string) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldSeparator, v))
}

// SeparatorIn applies the In predicate on the "separator" field.
func SeparatorIn(vs ...string) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldSeparator, vs...))
}

// SeparatorNotIn applies the NotIn predicate on the "separator" field.
func SeparatorNotIn(vs ...string) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldSeparator, vs...))
}

// SeparatorGT applies the GT predicate on the "separator" field.
func SeparatorGT(v string) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldSeparator, v))
}

// SeparatorGTE applies the GTE predicate on the "separator" field.
func SeparatorGTE(v string) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldSeparator, v))
}

// SeparatorLT applies the LT predicate on the "separator" field.
func SeparatorLT(v string) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldSeparator, v))
}

// SeparatorLTE applies the LTE predicate on the "separator" field.
func SeparatorLTE(v string) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldSeparator, v))
}

// SeparatorContains applies the Contains predicate on the "separator" field.
func SeparatorContains(v string) predicate.HashList {
	return predicate.HashList(sql.FieldContains(FieldSeparator, v))
}

// SeparatorHasPrefix applies the HasPrefix predicate on the "separator" field.
func SeparatorHasPrefix(v string) predicate.HashList {
	return predicate.HashList(sql.FieldHasPrefix(FieldSeparator, v))
}

// SeparatorHasSuffix applies the HasSuffix predicate on the "separator" field.
func SeparatorHasSuffix(v string) predicate.HashList {
	return predicate.HashList(sql.FieldHasSuffix(FieldSeparator, v))
}

// SeparatorEqualFold applies the EqualFold predicate on the "separator" field.
func SeparatorEqualFold(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEqualFold(FieldSeparator, v))
}

// SeparatorContainsFold applies the ContainsFold predicate on the "separator" field.
func SeparatorContainsFold(v string) predicate.HashList {
	return predicate.HashList(sql.FieldContainsFold(FieldSeparator, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int64) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int64) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldItemCount, v))
}

// UncrackedCountEQ applies the EQ predicate on the "uncracked_count" field.
func UncrackedCountEQ(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldUncrackedCount, v))
}

// UncrackedCountNEQ applies the NEQ predicate on the "uncracked_count" field.
func UncrackedCountNEQ(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldUncrackedCount, v))
}

// UncrackedCountIn applies the In predicate on the "uncracked_count" field.
func UncrackedCountIn(vs ...int64) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldUncrackedCount, vs...))
}

// UncrackedCountNotIn applies the NotIn predicate on the "uncracked_count" field.
func UncrackedCountNotIn(vs ...int64) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldUncrackedCount, vs...))
}

// UncrackedCountGT applies the GT predicate on the "uncracked_count" field.
func UncrackedCountGT(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldUncrackedCount, v))
}

// UncrackedCountGTE applies the GTE predicate on the "uncracked_count" field.
func UncrackedCountGTE(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldUncrackedCount, v))
}

// UncrackedCountLT applies the LT predicate on the "uncracked_count" field.
func UncrackedCountLT(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldUncrackedCount, v))
}

// UncrackedCountLTE applies the LTE predicate on the "uncracked_count" field.
func UncrackedCountLTE(v int64) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldUncrackedCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.HashItem) predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCampaigns applies the HasEdge predicate on the "campaigns" edge.
func HasCampaigns() predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CampaignsTable, CampaignsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignsWith applies the HasEdge predicate on the "campaigns" edge with a given conditions (other predicates).
func HasCampaignsWith(preds ...predicate.Campaign) predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := newCampaignsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HashList) predicate.HashList {
	return predicate.HashList(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HashList) predicate.HashList {
	return predicate.HashList(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HashList) predicate.HashList {
	return predicate.HashList(sql.NotPredicates(p))
}
