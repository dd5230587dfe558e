// Code generated by ent, DO NOT EDIT.

package hashitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldID, id))
}

// HashListID applies equality check predicate on the "hash_list_id" field. It's identical to HashListIDEQ.
func HashListID(v int) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldHashListID, v))
}

// HashValue applies equality check predicate on the "hash_value" field. It's identical to HashValueEQ.
func HashValue(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldHashValue, v))
}

// Salt applies equality check predicate on the "salt" field. It's identical to SaltEQ.
func Salt(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldSalt, v))
}

// Plaintext applies equality check predicate on the "plaintext" field. It's identical to PlaintextEQ.
func Plaintext(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldPlaintext, v))
}

// CrackedAt applies equality check predicate on the "cracked_at" field. It's identical to CrackedAtEQ.
func CrackedAt(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldCrackedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldCreatedAt, v))
}

// HashListIDEQ applies the EQ predicate on the "hash_list_id" field.
func HashListIDEQ(v int) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldHashListID, v))
}

// HashListIDNEQ applies the NEQ predicate on the "hash_list_id" field.
func HashListIDNEQ(v int) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldHashListID, v))
}

// HashListIDIn applies the In predicate on the "hash_list_id" field.
func HashListIDIn(vs ...int) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldHashListID, vs...))
}

// HashListIDNotIn applies the NotIn predicate on the "hash_list_id" field.
func HashListIDNotIn(vs ...int) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldHashListID, vs...))
}

// HashValueEQ applies the EQ predicate on the "hash_value" field.
func HashValueEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldHashValue, v))
}

// HashValueNEQ applies the NEQ predicate on the "hash_value" field.
func HashValueNEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldHashValue, v))
}

// HashValueIn applies the In predicate on the "hash_value" field.
func HashValueIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldHashValue, vs...))
}

// HashValueNotIn applies the NotIn predicate on the "hash_value" field.
func HashValueNotIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldHashValue, vs...))
}

// HashValueGT applies the GT predicate on the "hash_value" field.
func HashValueGT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldHashValue, v))
}

// HashValueGTE applies the GTE predicate on the "hash_value" field.
func HashValueGTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldHashValue, v))
}

// HashValueLT applies the LT predicate on the "hash_value" field.
func HashValueLT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldHashValue, v))
}

// HashValueLTE applies the LTE predicate on the "hash_value" field.
func HashValueLTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldHashValue, v))
}

// HashValueContains applies the Contains predicate on the "hash_value" field.
func HashValueContains(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContains(FieldHashValue, v))
}

// HashValueHasPrefix applies the HasPrefix predicate on the "hash_value" field.
func HashValueHasPrefix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasPrefix(FieldHashValue, v))
}

// HashValueHasSuffix applies the HasSuffix predicate on the "hash_value" field.
func HashValueHasSuffix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasSuffix(FieldHashValue, v))
}

// HashValueEqualFold applies the EqualFold predicate on the "hash_value" field.
func HashValueEqualFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEqualFold(FieldHashValue, v))
}

// HashValueContainsFold applies the ContainsFold predicate on the "hash_value" field.
func HashValueContainsFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContainsFold(FieldHashValue, v))
}

// SaltEQ applies the EQ predicate on the "salt" field.
func SaltEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldSalt, v))
}

// SaltNEQ applies the NEQ predicate on the "salt" field.
func SaltNEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldSalt, v))
}

// SaltIn applies the In predicate on the "salt" field.
func SaltIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldSalt, vs...))
}

// SaltNotIn applies the NotIn predicate on the "salt" field.
func SaltNotIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldSalt, vs...))
}

// SaltGT applies the GT predicate on the "salt" field.
func SaltGT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldSalt, v))
}

// SaltGTE applies the GTE predicate on the "salt" field.
func SaltGTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldSalt, v))
}

// SaltLT applies the LT predicate on the "salt" field.
func SaltLT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldSalt, v))
}

// SaltLTE applies the LTE predicate on the "salt" field.
func SaltLTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldSalt, v))
}

// SaltContains applies the Contains predicate on the "salt" field.
func SaltContains(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContains(FieldSalt, v))
}

// SaltHasPrefix applies the HasPrefix predicate on the "salt" field.
func SaltHasPrefix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasPrefix(FieldSalt, v))
}

// SaltHasSuffix applies the HasSuffix predicate on the "salt" field.
func SaltHasSuffix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasSuffix(FieldSalt, v))
}

// SaltEqualFold applies the EqualFold predicate on the "salt" field.
func SaltEqualFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEqualFold(FieldSalt, v))
}

// SaltContainsFold applies the ContainsFold predicate on the "salt" field.
func SaltContainsFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContainsFold(FieldSalt, v))
}

// PlaintextEQ applies the EQ predicate on the "plaintext" field.
func PlaintextEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldPlaintext, v))
}

// PlaintextNEQ applies the NEQ predicate on the "plaintext" field.
func PlaintextNEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldPlaintext, v))
}

// PlaintextIn applies the In predicate on the "plaintext" field.
func PlaintextIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldPlaintext, vs...))
}

// PlaintextNotIn applies the NotIn predicate on the "plaintext" field.
func PlaintextNotIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldPlaintext, vs...))
}

// PlaintextGT applies the GT predicate on the "plaintext" field.
func PlaintextGT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldPlaintext, v))
}

// PlaintextGTE applies the GTE predicate on the "plaintext" field.
func PlaintextGTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldPlaintext, v))
}

// PlaintextLT applies the LT predicate on the "plaintext" field.
func PlaintextLT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldPlaintext, v))
}

// PlaintextLTE applies the LTE predicate on the "plaintext" field.
func PlaintextLTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldPlaintext, v))
}

// PlaintextContains applies the Contains predicate on the "plaintext" field.
func PlaintextContains(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContains(FieldPlaintext, v))
}

// PlaintextHasPrefix applies the HasPrefix predicate on the "plaintext" field.
func PlaintextHasPrefix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasPrefix(FieldPlaintext, v))
}

// PlaintextHasSuffix applies the HasSuffix predicate on the "plaintext" field.
func PlaintextHasSuffix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasSuffix(FieldPlaintext, v))
}

// PlaintextIsNil applies the IsNil predicate on the "plaintext" field.
func PlaintextIsNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldIsNull(FieldPlaintext))
}

// PlaintextNotNil applies the NotNil predicate on the "plaintext" field.
func PlaintextNotNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldNotNull(FieldPlaintext))
}

// PlaintextEqualFold applies the EqualFold predicate on the "plaintext" field.
func PlaintextEqualFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEqualFold(FieldPlaintext, v))
}

// PlaintextContainsFold applies the ContainsFold predicate on the "plaintext" field.
func PlaintextContainsFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContainsFold(FieldPlaintext, v))
}

// CrackedAtEQ applies the EQ predicate on the "cracked_at" field.
func CrackedAtEQ(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldCrackedAt, v))
}

// CrackedAtNEQ applies the NEQ predicate on the "cracked_at" field.
func CrackedAtNEQ(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldCrackedAt, v))
}

// CrackedAtIn applies the In predicate on the "cracked_at" field.
func CrackedAtIn(vs ...time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldCrackedAt, vs...))
}

// CrackedAtNotIn applies the NotIn predicate on the "cracked_at" field.
func CrackedAtNotIn(vs ...time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldCrackedAt, vs...))
}

// CrackedAtGT applies the GT predicate on the "cracked_at" field.
func CrackedAtGT(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldCrackedAt, v))
}

// CrackedAtGTE applies the GTE predicate on the "cracked_at" field.
func CrackedAtGTE(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldCrackedAt, v))
}

// CrackedAtLT applies the LT predicate on the "cracked_at" field.
func CrackedAtLT(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldCrackedAt, v))
}

// CrackedAtLTE applies the LTE predicate on the "cracked_at" field.
func CrackedAtLTE(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldCrackedAt, v))
}

// CrackedAtIsNil applies the IsNil predicate on the "cracked_at" field.
func CrackedAtIsNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldIsNull(FieldCrackedAt))
}

// CrackedAtNotNil applies the NotNil predicate on the "cracked_at" field.
func CrackedAtNotNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldNotNull(FieldCrackedAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasHashList applies the HasEdge predicate on the "hash_list" edge.
func HasHashList() predicate.HashItem {
	return predicate.HashItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HashListTable, HashListColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHashListWith applies the HasEdge predicate on the "hash_list" edge with a given conditions (other predicates).
func HasHashListWith(preds ...predicate.HashList) predicate.HashItem {
	return predicate.HashItem(func(s *sql.Selector) {
		step := newHashListStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HashItem) predicate.HashItem {
	return predicate.HashItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HashItem) predicate.HashItem {
	return predicate.HashItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HashItem) predicate.HashItem {
	return predicate.HashItem(sql.NotPredicates(p))
}
