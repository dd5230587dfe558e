// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// HashcatStatusUpdate is the builder for updating HashcatStatus entities.
type HashcatStatusUpdate struct {
	config
	hooks    []Hook
	mutation *HashcatStatusMutation
}

// Where appends a list predicates to the HashcatStatusUpdate builder.
func (_u *HashcatStatusUpdate) Where(ps ...predicate.HashcatStatus) *HashcatStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOriginalLine sets the "original_line" field.
func (_u *HashcatStatusUpdate) SetOriginalLine(v string) *HashcatStatusUpdate {
	_u.mutation.SetOriginalLine(v)
	return _u
}

// SetNillableOriginalLine sets the "original_line" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableOriginalLine(v *string) *HashcatStatusUpdate {
	if v != nil {
		_u.SetOriginalLine(*v)
	}
	return _u
}

// ClearOriginalLine clears the value of the "original_line" field.
func (_u *HashcatStatusUpdate) ClearOriginalLine() *HashcatStatusUpdate {
	_u.mutation.ClearOriginalLine()
	return _u
}

// SetSession sets the "session" field.
func (_u *HashcatStatusUpdate) SetSession(v string) *HashcatStatusUpdate {
	_u.mutation.SetSession(v)
	return _u
}

// SetNillableSession sets the "session" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableSession(v *string) *HashcatStatusUpdate {
	if v != nil {
		_u.SetSession(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *HashcatStatusUpdate) SetStatusCode(v int) *HashcatStatusUpdate {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableStatusCode(v *int) *HashcatStatusUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *HashcatStatusUpdate) AddStatusCode(v int) *HashcatStatusUpdate {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *HashcatStatusUpdate) SetTarget(v string) *HashcatStatusUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableTarget(v *string) *HashcatStatusUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetProgressDone sets the "progress_done" field.
func (_u *HashcatStatusUpdate) SetProgressDone(v int64) *HashcatStatusUpdate {
	_u.mutation.ResetProgressDone()
	_u.mutation.SetProgressDone(v)
	return _u
}

// SetNillableProgressDone sets the "progress_done" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableProgressDone(v *int64) *HashcatStatusUpdate {
	if v != nil {
		_u.SetProgressDone(*v)
	}
	return _u
}

// AddProgressDone adds value to the "progress_done" field.
func (_u *HashcatStatusUpdate) AddProgressDone(v int64) *HashcatStatusUpdate {
	_u.mutation.AddProgressDone(v)
	return _u
}

// SetProgressTotal sets the "progress_total" field.
func (_u *HashcatStatusUpdate) SetProgressTotal(v int64) *HashcatStatusUpdate {
	_u.mutation.ResetProgressTotal()
	_u.mutation.SetProgressTotal(v)
	return _u
}

// SetNillableProgressTotal sets the "progress_total" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableProgressTotal(v *int64) *HashcatStatusUpdate {
	if v != nil {
		_u.SetProgressTotal(*v)
	}
	return _u
}

// AddProgressTotal adds value to the "progress_total" field.
func (_u *HashcatStatusUpdate) AddProgressTotal(v int64) *HashcatStatusUpdate {
	_u.mutation.AddProgressTotal(v)
	return _u
}

// SetRestorePoint sets the "restore_point" field.
func (_u *HashcatStatusUpdate) SetRestorePoint(v int64) *HashcatStatusUpdate {
	_u.mutation.ResetRestorePoint()
	_u.mutation.SetRestorePoint(v)
	return _u
}

// SetNillableRestorePoint sets the "restore_point" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableRestorePoint(v *int64) *HashcatStatusUpdate {
	if v != nil {
		_u.SetRestorePoint(*v)
	}
	return _u
}

// AddRestorePoint adds value to the "restore_point" field.
func (_u *HashcatStatusUpdate) AddRestorePoint(v int64) *HashcatStatusUpdate {
	_u.mutation.AddRestorePoint(v)
	return _u
}

// SetRecoveredHashes sets the "recovered_hashes" field.
func (_u *HashcatStatusUpdate) SetRecoveredHashes(v []int) *HashcatStatusUpdate {
	_u.mutation.SetRecoveredHashes(v)
	return _u
}

// AppendRecoveredHashes appends value to the "recovered_hashes" field.
func (_u *HashcatStatusUpdate) AppendRecoveredHashes(v []int) *HashcatStatusUpdate {
	_u.mutation.AppendRecoveredHashes(v)
	return _u
}

// ClearRecoveredHashes clears the value of the "recovered_hashes" field.
func (_u *HashcatStatusUpdate) ClearRecoveredHashes() *HashcatStatusUpdate {
	_u.mutation.ClearRecoveredHashes()
	return _u
}

// SetRecoveredSalts sets the "recovered_salts" field.
func (_u *HashcatStatusUpdate) SetRecoveredSalts(v []int) *HashcatStatusUpdate {
	_u.mutation.SetRecoveredSalts(v)
	return _u
}

// AppendRecoveredSalts appends value to the "recovered_salts" field.
func (_u *HashcatStatusUpdate) AppendRecoveredSalts(v []int) *HashcatStatusUpdate {
	_u.mutation.AppendRecoveredSalts(v)
	return _u
}

// ClearRecoveredSalts clears the value of the "recovered_salts" field.
func (_u *HashcatStatusUpdate) ClearRecoveredSalts() *HashcatStatusUpdate {
	_u.mutation.ClearRecoveredSalts()
	return _u
}

// SetRejected sets the "rejected" field.
func (_u *HashcatStatusUpdate) SetRejected(v int64) *HashcatStatusUpdate {
	_u.mutation.ResetRejected()
	_u.mutation.SetRejected(v)
	return _u
}

// SetNillableRejected sets the "rejected" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableRejected(v *int64) *HashcatStatusUpdate {
	if v != nil {
		_u.SetRejected(*v)
	}
	return _u
}

// AddRejected adds value to the "rejected" field.
func (_u *HashcatStatusUpdate) AddRejected(v int64) *HashcatStatusUpdate {
	_u.mutation.AddRejected(v)
	return _u
}

// SetDevices sets the "devices" field.
func (_u *HashcatStatusUpdate) SetDevices(v []models.DeviceStatus) *HashcatStatusUpdate {
	_u.mutation.SetDevices(v)
	return _u
}

// AppendDevices appends value to the "devices" field.
func (_u *HashcatStatusUpdate) AppendDevices(v []models.DeviceStatus) *HashcatStatusUpdate {
	_u.mutation.AppendDevices(v)
	return _u
}

// ClearDevices clears the value of the "devices" field.
func (_u *HashcatStatusUpdate) ClearDevices() *HashcatStatusUpdate {
	_u.mutation.ClearDevices()
	return _u
}

// SetHashcatGuess sets the "hashcat_guess" field.
func (_u *HashcatStatusUpdate) SetHashcatGuess(v models.HashcatGuess) *HashcatStatusUpdate {
	_u.mutation.SetHashcatGuess(v)
	return _u
}

// SetNillableHashcatGuess sets the "hashcat_guess" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableHashcatGuess(v *models.HashcatGuess) *HashcatStatusUpdate {
	if v != nil {
		_u.SetHashcatGuess(*v)
	}
	return _u
}

// ClearHashcatGuess clears the value of the "hashcat_guess" field.
func (_u *HashcatStatusUpdate) ClearHashcatGuess() *HashcatStatusUpdate {
	_u.mutation.ClearHashcatGuess()
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *HashcatStatusUpdate) SetTimeStart(v time.Time) *HashcatStatusUpdate {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableTimeStart(v *time.Time) *HashcatStatusUpdate {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// ClearTimeStart clears the value of the "time_start" field.
func (_u *HashcatStatusUpdate) ClearTimeStart() *HashcatStatusUpdate {
	_u.mutation.ClearTimeStart()
	return _u
}

// SetEstimatedStop sets the "estimated_stop" field.
func (_u *HashcatStatusUpdate) SetEstimatedStop(v time.Time) *HashcatStatusUpdate {
	_u.mutation.SetEstimatedStop(v)
	return _u
}

// SetNillableEstimatedStop sets the "estimated_stop" field if the given value is not nil.
func (_u *HashcatStatusUpdate) SetNillableEstimatedStop(v *time.Time) *HashcatStatusUpdate {
	if v != nil {
		_u.SetEstimatedStop(*v)
	}
	return _u
}

// ClearEstimatedStop clears the value of the "estimated_stop" field.
func (_u *HashcatStatusUpdate) ClearEstimatedStop() *HashcatStatusUpdate {
	_u.mutation.ClearEstimatedStop()
	return _u
}

// Mutation returns the HashcatStatusMutation object of the builder.
func (_u *HashcatStatusUpdate) Mutation() *HashcatStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HashcatStatusUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HashcatStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HashcatStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HashcatStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HashcatStatusUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HashcatStatus.task"`)
	}
	return nil
}

func (_u *HashcatStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hashcatstatus.Table, hashcatstatus.Columns, sqlgraph.NewFieldSpec(hashcatstatus.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalLine(); ok {
		_spec.SetField(hashcatstatus.FieldOriginalLine, field.TypeString, value)
	}
	if _u.mutation.OriginalLineCleared() {
		_spec.ClearField(hashcatstatus.FieldOriginalLine, field.TypeString)
	}
	if value, ok := _u.mutation.Session(); ok {
		_spec.SetField(hashcatstatus.FieldSession, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(hashcatstatus.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(hashcatstatus.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(hashcatstatus.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressDone(); ok {
		_spec.SetField(hashcatstatus.FieldProgressDone, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProgressDone(); ok {
		_spec.AddField(hashcatstatus.FieldProgressDone, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProgressTotal(); ok {
		_spec.SetField(hashcatstatus.FieldProgressTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProgressTotal(); ok {
		_spec.AddField(hashcatstatus.FieldProgressTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RestorePoint(); ok {
		_spec.SetField(hashcatstatus.FieldRestorePoint, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRestorePoint(); ok {
		_spec.AddField(hashcatstatus.FieldRestorePoint, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RecoveredHashes(); ok {
		_spec.SetField(hashcatstatus.FieldRecoveredHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecoveredHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hashcatstatus.FieldRecoveredHashes, value)
		})
	}
	if _u.mutation.RecoveredHashesCleared() {
		_spec.ClearField(hashcatstatus.FieldRecoveredHashes, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecoveredSalts(); ok {
		_spec.SetField(hashcatstatus.FieldRecoveredSalts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecoveredSalts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hashcatstatus.FieldRecoveredSalts, value)
		})
	}
	if _u.mutation.RecoveredSaltsCleared() {
		_spec.ClearField(hashcatstatus.FieldRecoveredSalts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rejected(); ok {
		_spec.SetField(hashcatstatus.FieldRejected, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRejected(); ok {
		_spec.AddField(hashcatstatus.FieldRejected, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Devices(); ok {
		_spec.SetField(hashcatstatus.FieldDevices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDevices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hashcatstatus.FieldDevices, value)
		})
	}
	if _u.mutation.DevicesCleared() {
		_spec.ClearField(hashcatstatus.FieldDevices, field.TypeJSON)
	}
	if value, ok := _u.mutation.HashcatGuess(); ok {
		_spec.SetField(hashcatstatus.FieldHashcatGuess, field.TypeJSON, value)
	}
	if _u.mutation.HashcatGuessCleared() {
		_spec.ClearField(hashcatstatus.FieldHashcatGuess, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(hashcatstatus.FieldTimeStart, field.TypeTime, value)
	}
	if _u.mutation.TimeStartCleared() {
		_spec.ClearField(hashcatstatus.FieldTimeStart, field.TypeTime)
	}
	if value, ok := _u.mutation.EstimatedStop(); ok {
		_spec.SetField(hashcatstatus.FieldEstimatedStop, field.TypeTime, value)
	}
	if _u.mutation.EstimatedStopCleared() {
		_spec.ClearField(hashcatstatus.FieldEstimatedStop, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hashcatstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HashcatStatusUpdateOne is the builder for updating a single HashcatStatus entity.
type HashcatStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HashcatStatusMutation
}

// SetOriginalLine sets the "original_line" field.
func (_u *HashcatStatusUpdateOne) SetOriginalLine(v string) *HashcatStatusUpdateOne {
	_u.mutation.SetOriginalLine(v)
	return _u
}

// SetNillableOriginalLine sets the "original_line" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableOriginalLine(v *string) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetOriginalLine(*v)
	}
	return _u
}

// ClearOriginalLine clears the value of the "original_line" field.
func (_u *HashcatStatusUpdateOne) ClearOriginalLine() *HashcatStatusUpdateOne {
	_u.mutation.ClearOriginalLine()
	return _u
}

// SetSession sets the "session" field.
func (_u *HashcatStatusUpdateOne) SetSession(v string) *HashcatStatusUpdateOne {
	_u.mutation.SetSession(v)
	return _u
}

// SetNillableSession sets the "session" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableSession(v *string) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetSession(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *HashcatStatusUpdateOne) SetStatusCode(v int) *HashcatStatusUpdateOne {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableStatusCode(v *int) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *HashcatStatusUpdateOne) AddStatusCode(v int) *HashcatStatusUpdateOne {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *HashcatStatusUpdateOne) SetTarget(v string) *HashcatStatusUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableTarget(v *string) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetProgressDone sets the "progress_done" field.
func (_u *HashcatStatusUpdateOne) SetProgressDone(v int64) *HashcatStatusUpdateOne {
	_u.mutation.ResetProgressDone()
	_u.mutation.SetProgressDone(v)
	return _u
}

// SetNillableProgressDone sets the "progress_done" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableProgressDone(v *int64) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetProgressDone(*v)
	}
	return _u
}

// AddProgressDone adds value to the "progress_done" field.
func (_u *HashcatStatusUpdateOne) AddProgressDone(v int64) *HashcatStatusUpdateOne {
	_u.mutation.AddProgressDone(v)
	return _u
}

// SetProgressTotal sets the "progress_total" field.
func (_u *HashcatStatusUpdateOne) SetProgressTotal(v int64) *HashcatStatusUpdateOne {
	_u.mutation.ResetProgressTotal()
	_u.mutation.SetProgressTotal(v)
	return _u
}

// SetNillableProgressTotal sets the "progress_total" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableProgressTotal(v *int64) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetProgressTotal(*v)
	}
	return _u
}

// AddProgressTotal adds value to the "progress_total" field.
func (_u *HashcatStatusUpdateOne) AddProgressTotal(v int64) *HashcatStatusUpdateOne {
	_u.mutation.AddProgressTotal(v)
	return _u
}

// SetRestorePoint sets the "restore_point" field.
func (_u *HashcatStatusUpdateOne) SetRestorePoint(v int64) *HashcatStatusUpdateOne {
	_u.mutation.ResetRestorePoint()
	_u.mutation.SetRestorePoint(v)
	return _u
}

// SetNillableRestorePoint sets the "restore_point" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableRestorePoint(v *int64) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetRestorePoint(*v)
	}
	return _u
}

// AddRestorePoint adds value to the "restore_point" field.
func (_u *HashcatStatusUpdateOne) AddRestorePoint(v int64) *HashcatStatusUpdateOne {
	_u.mutation.AddRestorePoint(v)
	return _u
}

// SetRecoveredHashes sets the "recovered_hashes" field.
func (_u *HashcatStatusUpdateOne) SetRecoveredHashes(v []int) *HashcatStatusUpdateOne {
	_u.mutation.SetRecoveredHashes(v)
	return _u
}

// AppendRecoveredHashes appends value to the "recovered_hashes" field.
func (_u *HashcatStatusUpdateOne) AppendRecoveredHashes(v []int) *HashcatStatusUpdateOne {
	_u.mutation.AppendRecoveredHashes(v)
	return _u
}

// ClearRecoveredHashes clears the value of the "recovered_hashes" field.
func (_u *HashcatStatusUpdateOne) ClearRecoveredHashes() *HashcatStatusUpdateOne {
	_u.mutation.ClearRecoveredHashes()
	return _u
}

// SetRecoveredSalts sets the "recovered_salts" field.
func (_u *HashcatStatusUpdateOne) SetRecoveredSalts(v []int) *HashcatStatusUpdateOne {
	_u.mutation.SetRecoveredSalts(v)
	return _u
}

// AppendRecoveredSalts appends value to the "recovered_salts" field.
func (_u *HashcatStatusUpdateOne) AppendRecoveredSalts(v []int) *HashcatStatusUpdateOne {
	_u.mutation.AppendRecoveredSalts(v)
	return _u
}

// ClearRecoveredSalts clears the value of the "recovered_salts" field.
func (_u *HashcatStatusUpdateOne) ClearRecoveredSalts() *HashcatStatusUpdateOne {
	_u.mutation.ClearRecoveredSalts()
	return _u
}

// SetRejected sets the "rejected" field.
func (_u *HashcatStatusUpdateOne) SetRejected(v int64) *HashcatStatusUpdateOne {
	_u.mutation.ResetRejected()
	_u.mutation.SetRejected(v)
	return _u
}

// SetNillableRejected sets the "rejected" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableRejected(v *int64) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetRejected(*v)
	}
	return _u
}

// AddRejected adds value to the "rejected" field.
func (_u *HashcatStatusUpdateOne) AddRejected(v int64) *HashcatStatusUpdateOne {
	_u.mutation.AddRejected(v)
	return _u
}

// SetDevices sets the "devices" field.
func (_u *HashcatStatusUpdateOne) SetDevices(v []models.DeviceStatus) *HashcatStatusUpdateOne {
	_u.mutation.SetDevices(v)
	return _u
}

// AppendDevices appends value to the "devices" field.
func (_u *HashcatStatusUpdateOne) AppendDevices(v []models.DeviceStatus) *HashcatStatusUpdateOne {
	_u.mutation.AppendDevices(v)
	return _u
}

// ClearDevices clears the value of the "devices" field.
func (_u *HashcatStatusUpdateOne) ClearDevices() *HashcatStatusUpdateOne {
	_u.mutation.ClearDevices()
	return _u
}

// SetHashcatGuess sets the "hashcat_guess" field.
func (_u *HashcatStatusUpdateOne) SetHashcatGuess(v models.HashcatGuess) *HashcatStatusUpdateOne {
	_u.mutation.SetHashcatGuess(v)
	return _u
}

// SetNillableHashcatGuess sets the "hashcat_guess" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableHashcatGuess(v *models.HashcatGuess) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetHashcatGuess(*v)
	}
	return _u
}

// ClearHashcatGuess clears the value of the "hashcat_guess" field.
func (_u *HashcatStatusUpdateOne) ClearHashcatGuess() *HashcatStatusUpdateOne {
	_u.mutation.ClearHashcatGuess()
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *HashcatStatusUpdateOne) SetTimeStart(v time.Time) *HashcatStatusUpdateOne {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableTimeStart(v *time.Time) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// ClearTimeStart clears the value of the "time_start" field.
func (_u *HashcatStatusUpdateOne) ClearTimeStart() *HashcatStatusUpdateOne {
	_u.mutation.ClearTimeStart()
	return _u
}

// SetEstimatedStop sets the "estimated_stop" field.
func (_u *HashcatStatusUpdateOne) SetEstimatedStop(v time.Time) *HashcatStatusUpdateOne {
	_u.mutation.SetEstimatedStop(v)
	return _u
}

// SetNillableEstimatedStop sets the "estimated_stop" field if the given value is not nil.
func (_u *HashcatStatusUpdateOne) SetNillableEstimatedStop(v *time.Time) *HashcatStatusUpdateOne {
	if v != nil {
		_u.SetEstimatedStop(*v)
	}
	return _u
}

// ClearEstimatedStop clears the value of the "estimated_stop" field.
func (_u *HashcatStatusUpdateOne) ClearEstimatedStop() *HashcatStatusUpdateOne {
	_u.mutation.ClearEstimatedStop()
	return _u
}

// Mutation returns the HashcatStatusMutation object of the builder.
func (_u *HashcatStatusUpdateOne) Mutation() *HashcatStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the HashcatStatusUpdate builder.
func (_u *HashcatStatusUpdateOne) Where(ps ...predicate.HashcatStatus) *HashcatStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HashcatStatusUpdateOne) Select(field string, fields ...string) *HashcatStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HashcatStatus entity.
func (_u *HashcatStatusUpdateOne) Save(ctx context.Context) (*HashcatStatus, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HashcatStatusUpdateOne) SaveX(ctx context.Context) *HashcatStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HashcatStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HashcatStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HashcatStatusUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HashcatStatus.task"`)
	}
	return nil
}

func (_u *HashcatStatusUpdateOne) sqlSave(ctx context.Context) (_node *HashcatStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hashcatstatus.Table, hashcatstatus.Columns, sqlgraph.NewFieldSpec(hashcatstatus.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HashcatStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hashcatstatus.FieldID)
		for _, f := range fields {
			if !hashcatstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hashcatstatus.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalLine(); ok {
		_spec.SetField(hashcatstatus.FieldOriginalLine, field.TypeString, value)
	}
	if _u.mutation.OriginalLineCleared() {
		_spec.ClearField(hashcatstatus.FieldOriginalLine, field.TypeString)
	}
	if value, ok := _u.mutation.Session(); ok {
		_spec.SetField(hashcatstatus.FieldSession, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(hashcatstatus.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(hashcatstatus.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(hashcatstatus.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressDone(); ok {
		_spec.SetField(hashcatstatus.FieldProgressDone, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProgressDone(); ok {
		_spec.AddField(hashcatstatus.FieldProgressDone, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProgressTotal(); ok {
		_spec.SetField(hashcatstatus.FieldProgressTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProgressTotal(); ok {
		_spec.AddField(hashcatstatus.FieldProgressTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RestorePoint(); ok {
		_spec.SetField(hashcatstatus.FieldRestorePoint, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRestorePoint(); ok {
		_spec.AddField(hashcatstatus.FieldRestorePoint, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RecoveredHashes(); ok {
		_spec.SetField(hashcatstatus.FieldRecoveredHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecoveredHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hashcatstatus.FieldRecoveredHashes, value)
		})
	}
	if _u.mutation.RecoveredHashesCleared() {
		_spec.ClearField(hashcatstatus.FieldRecoveredHashes, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecoveredSalts(); ok {
		_spec.SetField(hashcatstatus.FieldRecoveredSalts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecoveredSalts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hashcatstatus.FieldRecoveredSalts, value)
		})
	}
	if _u.mutation.RecoveredSaltsCleared() {
		_spec.ClearField(hashcatstatus.FieldRecoveredSalts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rejected(); ok {
		_spec.SetField(hashcatstatus.FieldRejected, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRejected(); ok {
		_spec.AddField(hashcatstatus.FieldRejected, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Devices(); ok {
		_spec.SetField(hashcatstatus.FieldDevices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDevices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hashcatstatus.FieldDevices, value)
		})
	}
	if _u.mutation.DevicesCleared() {
		_spec.ClearField(hashcatstatus.FieldDevices, field.TypeJSON)
	}
	if value, ok := _u.mutation.HashcatGuess(); ok {
		_spec.SetField(hashcatstatus.FieldHashcatGuess, field.TypeJSON, value)
	}
	if _u.mutation.HashcatGuessCleared() {
		_spec.ClearField(hashcatstatus.FieldHashcatGuess, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(hashcatstatus.FieldTimeStart, field.TypeTime, value)
	}
	if _u.mutation.TimeStartCleared() {
		_spec.ClearField(hashcatstatus.FieldTimeStart, field.TypeTime)
	}
	if value, ok := _u.mutation.EstimatedStop(); ok {
		_spec.SetField(hashcatstatus.FieldEstimatedStop, field.TypeTime, value)
	}
	if _u.mutation.EstimatedStopCleared() {
		_spec.ClearField(hashcatstatus.FieldEstimatedStop, field.TypeTime)
	}
	_node = &HashcatStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hashcatstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
