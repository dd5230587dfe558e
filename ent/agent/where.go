// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// HostName applies equality check predicate on the "host_name" field. It's identical to HostNameEQ.
func HostName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldHostName, v))
}

// ClientSignature applies equality check predicate on the "client_signature" field. It's identical to ClientSignatureEQ.
func ClientSignature(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldClientSignature, v))
}

// OperatingSystem applies equality check predicate on the "operating_system" field. It's identical to OperatingSystemEQ.
func OperatingSystem(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldOperatingSystem, v))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldToken, v))
}

// RegistrationToken applies equality check predicate on the "registration_token" field. It's identical to RegistrationTokenEQ.
func RegistrationToken(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegistrationToken, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastIpaddress applies equality check predicate on the "last_ipaddress" field. It's identical to LastIpaddressEQ.
func LastIpaddress(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastIpaddress, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldLabel, v))
}

// HostNameEQ applies the EQ predicate on the "host_name" field.
func HostNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldHostName, v))
}

// HostNameNEQ applies the NEQ predicate on the "host_name" field.
func HostNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldHostName, v))
}

// HostNameIn applies the In predicate on the "host_name" field.
func HostNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldHostName, vs...))
}

// HostNameNotIn applies the NotIn predicate on the "host_name" field.
func HostNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldHostName, vs...))
}

// HostNameGT applies the GT predicate on the "host_name" field.
func HostNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldHostName, v))
}

// HostNameGTE applies the GTE predicate on the "host_name" field.
func HostNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldHostName, v))
}

// HostNameLT applies the LT predicate on the "host_name" field.
func HostNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldHostName, v))
}

// HostNameLTE applies the LTE predicate on the "host_name" field.
func HostNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldHostName, v))
}

// HostNameContains applies the Contains predicate on the "host_name" field.
func HostNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldHostName, v))
}

// HostNameHasPrefix applies the HasPrefix predicate on the "host_name" field.
func HostNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldHostName, v))
}

// HostNameHasSuffix applies the HasSuffix predicate on the "host_name" field.
func HostNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldHostName, v))
}

// HostNameEqualFold applies the EqualFold predicate on the "host_name" field.
func HostNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldHostName, v))
}

// HostNameContainsFold applies the ContainsFold predicate on the "host_name" field.
func HostNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldHostName, v))
}

// ClientSignatureEQ applies the EQ predicate on the "client_signature" field.
func ClientSignatureEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldClientSignature, v))
}

// ClientSignatureNEQ applies the NEQ predicate on the "client_signature" field.
func ClientSignatureNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldClientSignature, v))
}

// ClientSignatureIn applies the In predicate on the "client_signature" field.
func ClientSignatureIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldClientSignature, vs...))
}

// ClientSignatureNotIn applies the NotIn predicate on the "client_signature" field.
func ClientSignatureNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldClientSignature, vs...))
}

// ClientSignatureGT applies the GT predicate on the "client_signature" field.
func ClientSignatureGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldClientSignature, v))
}

// ClientSignatureGTE applies the GTE predicate on the "client_signature" field.
func ClientSignatureGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldClientSignature, v))
}

// ClientSignatureLT applies the LT predicate on the "client_signature" field.
func ClientSignatureLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldClientSignature, v))
}

// ClientSignatureLTE applies the LTE predicate on the "client_signature" field.
func ClientSignatureLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldClientSignature, v))
}

// ClientSignatureContains applies the Contains predicate on the "client_signature" field.
func ClientSignatureContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldClientSignature, v))
}

// ClientSignatureHasPrefix applies the HasPrefix predicate on the "client_signature" field.
func ClientSignatureHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldClientSignature, v))
}

// ClientSignatureHasSuffix applies the HasSuffix predicate on the "client_signature" field.
func ClientSignatureHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldClientSignature, v))
}

// ClientSignatureEqualFold applies the EqualFold predicate on the "client_signature" field.
func ClientSignatureEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldClientSignature, v))
}

// ClientSignatureContainsFold applies the ContainsFold predicate on the "client_signature" field.
func ClientSignatureContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldClientSignature, v))
}

// OperatingSystemEQ applies the EQ predicate on the "operating_system" field.
func OperatingSystemEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldOperatingSystem, v))
}

// OperatingSystemNEQ applies the NEQ predicate on the "operating_system" field.
func OperatingSystemNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldOperatingSystem, v))
}

// OperatingSystemIn applies the In predicate on the "operating_system" field.
func OperatingSystemIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldOperatingSystem, vs...))
}

// OperatingSystemNotIn applies the NotIn predicate on the "operating_system" field.
func OperatingSystemNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldOperatingSystem, vs...))
}

// OperatingSystemGT applies the GT predicate on the "operating_system" field.
func OperatingSystemGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldOperatingSystem, v))
}

// OperatingSystemGTE applies the GTE predicate on the "operating_system" field.
func OperatingSystemGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldOperatingSystem, v))
}

// OperatingSystemLT applies the LT predicate on the "operating_system" field.
func OperatingSystemLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldOperatingSystem, v))
}

// OperatingSystemLTE applies the LTE predicate on the "operating_system" field.
func OperatingSystemLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldOperatingSystem, v))
}

// OperatingSystemContains applies the Contains predicate on the "operating_system" field.
func OperatingSystemContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldOperatingSystem, v))
}

// OperatingSystemHasPrefix applies the HasPrefix predicate on the "operating_system" field.
func OperatingSystemHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldOperatingSystem, v))
}

// OperatingSystemHasSuffix applies the HasSuffix predicate on the "operating_system" field.
func OperatingSystemHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldOperatingSystem, v))
}

// OperatingSystemEqualFold applies the EqualFold predicate on the "operating_system" field.
func OperatingSystemEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldOperatingSystem, v))
}

// OperatingSystemContainsFold applies the ContainsFold predicate on the "operating_system" field.
func OperatingSystemContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldOperatingSystem, v))
}

// DevicesIsNil applies the IsNil predicate on the "devices" field.
func DevicesIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldDevices))
}

// DevicesNotNil applies the NotNil predicate on the "devices" field.
func DevicesNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldDevices))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldToken, v))
}

// TokenIsNil applies the IsNil predicate on the "token" field.
func TokenIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldToken))
}

// TokenNotNil applies the NotNil predicate on the "token" field.
func TokenNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldToken))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldToken, v))
}

// RegistrationTokenEQ applies the EQ predicate on the "registration_token" field.
func RegistrationTokenEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegistrationToken, v))
}

// RegistrationTokenNEQ applies the NEQ predicate on the "registration_token" field.
func RegistrationTokenNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRegistrationToken, v))
}

// RegistrationTokenIn applies the In predicate on the "registration_token" field.
func RegistrationTokenIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRegistrationToken, vs...))
}

// RegistrationTokenNotIn applies the NotIn predicate on the "registration_token" field.
func RegistrationTokenNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRegistrationToken, vs...))
}

// RegistrationTokenGT applies the GT predicate on the "registration_token" field.
func RegistrationTokenGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRegistrationToken, v))
}

// RegistrationTokenGTE applies the GTE predicate on the "registration_token" field.
func RegistrationTokenGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRegistrationToken, v))
}

// RegistrationTokenLT applies the LT predicate on the "registration_token" field.
func RegistrationTokenLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRegistrationToken, v))
}

// RegistrationTokenLTE applies the LTE predicate on the "registration_token" field.
func RegistrationTokenLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRegistrationToken, v))
}

// RegistrationTokenContains applies the Contains predicate on the "registration_token" field.
func RegistrationTokenContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldRegistrationToken, v))
}

// RegistrationTokenHasPrefix applies the HasPrefix predicate on the "registration_token" field.
func RegistrationTokenHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldRegistrationToken, v))
}

// RegistrationTokenHasSuffix applies the HasSuffix predicate on the "registration_token" field.
func RegistrationTokenHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldRegistrationToken, v))
}

// RegistrationTokenIsNil applies the IsNil predicate on the "registration_token" field.
func RegistrationTokenIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldRegistrationToken))
}

// RegistrationTokenNotNil applies the NotNil predicate on the "registration_token" field.
func RegistrationTokenNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldRegistrationToken))
}

// RegistrationTokenEqualFold applies the EqualFold predicate on the "registration_token" field.
func RegistrationTokenEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldRegistrationToken, v))
}

// RegistrationTokenContainsFold applies the ContainsFold predicate on the "registration_token" field.
func RegistrationTokenContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldRegistrationToken, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldState, vs...))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastSeenAt, v))
}

// LastSeenAtIsNil applies the IsNil predicate on the "last_seen_at" field.
func LastSeenAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastSeenAt))
}

// LastSeenAtNotNil applies the NotNil predicate on the "last_seen_at" field.
func LastSeenAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastSeenAt))
}

// LastIpaddressEQ applies the EQ predicate on the "last_ipaddress" field.
func LastIpaddressEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastIpaddress, v))
}

// LastIpaddressNEQ applies the NEQ predicate on the "last_ipaddress" field.
func LastIpaddressNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastIpaddress, v))
}

// LastIpaddressIn applies the In predicate on the "last_ipaddress" field.
func LastIpaddressIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastIpaddress, vs...))
}

// LastIpaddressNotIn applies the NotIn predicate on the "last_ipaddress" field.
func LastIpaddressNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastIpaddress, vs...))
}

// LastIpaddressGT applies the GT predicate on the "last_ipaddress" field.
func LastIpaddressGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastIpaddress, v))
}

// LastIpaddressGTE applies the GTE predicate on the "last_ipaddress" field.
func LastIpaddressGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastIpaddress, v))
}

// LastIpaddressLT applies the LT predicate on the "last_ipaddress" field.
func LastIpaddressLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastIpaddress, v))
}

// LastIpaddressLTE applies the LTE predicate on the "last_ipaddress" field.
func LastIpaddressLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastIpaddress, v))
}

// LastIpaddressContains applies the Contains predicate on the "last_ipaddress" field.
func LastIpaddressContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldLastIpaddress, v))
}

// LastIpaddressHasPrefix applies the HasPrefix predicate on the "last_ipaddress" field.
func LastIpaddressHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldLastIpaddress, v))
}

// LastIpaddressHasSuffix applies the HasSuffix predicate on the "last_ipaddress" field.
func LastIpaddressHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldLastIpaddress, v))
}

// LastIpaddressEqualFold applies the EqualFold predicate on the "last_ipaddress" field.
func LastIpaddressEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldLastIpaddress, v))
}

// LastIpaddressContainsFold applies the ContainsFold predicate on the "last_ipaddress" field.
func LastIpaddressContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldLastIpaddress, v))
}

// AdvancedConfigIsNil applies the IsNil predicate on the "advanced_config" field.
func AdvancedConfigIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldAdvancedConfig))
}

// AdvancedConfigNotNil applies the NotNil predicate on the "advanced_config" field.
func AdvancedConfigNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldAdvancedConfig))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProjects applies the HasEdge predicate on the "projects" edge.
func HasProjects() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, ProjectsTable, ProjectsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectsWith applies the HasEdge predicate on the "projects" edge with a given conditions (other predicates).
func HasProjectsWith(preds ...predicate.Project) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newProjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBenchmarks applies the HasEdge predicate on the "benchmarks" edge.
func HasBenchmarks() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BenchmarksTable, BenchmarksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBenchmarksWith applies the HasEdge predicate on the "benchmarks" edge with a given conditions (other predicates).
func HasBenchmarksWith(preds ...predicate.Benchmark) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newBenchmarksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentErrors applies the HasEdge predicate on the "agent_errors" edge.
func HasAgentErrors() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentErrorsTable, AgentErrorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentErrorsWith applies the HasEdge predicate on the "agent_errors" edge with a given conditions (other predicates).
func HasAgentErrorsWith(preds ...predicate.AgentError) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newAgentErrorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
