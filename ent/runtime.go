// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/event"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/schema"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescHostName is the schema descriptor for host_name field.
	agentDescHostName := agentFields[1].Descriptor()
	// agent.HostNameValidator is a validator for the "host_name" field. It is called by the builders before save.
	agent.HostNameValidator = agentDescHostName.Validators[0].(func(string) error)
	// agentDescClientSignature is the schema descriptor for client_signature field.
	agentDescClientSignature := agentFields[2].Descriptor()
	// agent.ClientSignatureValidator is a validator for the "client_signature" field. It is called by the builders before save.
	agent.ClientSignatureValidator = agentDescClientSignature.Validators[0].(func(string) error)
	// agentDescOperatingSystem is the schema descriptor for operating_system field.
	agentDescOperatingSystem := agentFields[3].Descriptor()
	// agent.DefaultOperatingSystem holds the default value on creation for the operating_system field.
	agent.DefaultOperatingSystem = agentDescOperatingSystem.Default.(string)
	// agentDescLastIpaddress is the schema descriptor for last_ipaddress field.
	agentDescLastIpaddress := agentFields[9].Descriptor()
	// agent.DefaultLastIpaddress holds the default value on creation for the last_ipaddress field.
	agent.DefaultLastIpaddress = agentDescLastIpaddress.Default.(string)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[11].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[12].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agenterrorFields := schema.AgentError{}.Fields()
	_ = agenterrorFields
	// agenterrorDescMessage is the schema descriptor for message field.
	agenterrorDescMessage := agenterrorFields[3].Descriptor()
	// agenterror.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	agenterror.MessageValidator = agenterrorDescMessage.Validators[0].(func(string) error)
	// agenterrorDescRecordedAt is the schema descriptor for recorded_at field.
	agenterrorDescRecordedAt := agenterrorFields[5].Descriptor()
	// agenterror.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	agenterror.DefaultRecordedAt = agenterrorDescRecordedAt.Default.(func() time.Time)
	attackFields := schema.Attack{}.Fields()
	_ = attackFields
	// attackDescIncrementMode is the schema descriptor for increment_mode field.
	attackDescIncrementMode := attackFields[5].Descriptor()
	// attack.DefaultIncrementMode holds the default value on creation for the increment_mode field.
	attack.DefaultIncrementMode = attackDescIncrementMode.Default.(bool)
	// attackDescIncrementMinimum is the schema descriptor for increment_minimum field.
	attackDescIncrementMinimum := attackFields[6].Descriptor()
	// attack.DefaultIncrementMinimum holds the default value on creation for the increment_minimum field.
	attack.DefaultIncrementMinimum = attackDescIncrementMinimum.Default.(int)
	// attack.IncrementMinimumValidator is a validator for the "increment_minimum" field. It is called by the builders before save.
	attack.IncrementMinimumValidator = func() func(int) error {
		validators := attackDescIncrementMinimum.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(increment_minimum int) error {
			for _, fn := range fns {
				if err := fn(increment_minimum); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attackDescIncrementMaximum is the schema descriptor for increment_maximum field.
	attackDescIncrementMaximum := attackFields[7].Descriptor()
	// attack.DefaultIncrementMaximum holds the default value on creation for the increment_maximum field.
	attack.DefaultIncrementMaximum = attackDescIncrementMaximum.Default.(int)
	// attack.IncrementMaximumValidator is a validator for the "increment_maximum" field. It is called by the builders before save.
	attack.IncrementMaximumValidator = func() func(int) error {
		validators := attackDescIncrementMaximum.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(increment_maximum int) error {
			for _, fn := range fns {
				if err := fn(increment_maximum); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attackDescOptimized is the schema descriptor for optimized field.
	attackDescOptimized := attackFields[8].Descriptor()
	// attack.DefaultOptimized holds the default value on creation for the optimized field.
	attack.DefaultOptimized = attackDescOptimized.Default.(bool)
	// attackDescSlowCandidateGenerators is the schema descriptor for slow_candidate_generators field.
	attackDescSlowCandidateGenerators := attackFields[9].Descriptor()
	// attack.DefaultSlowCandidateGenerators holds the default value on creation for the slow_candidate_generators field.
	attack.DefaultSlowCandidateGenerators = attackDescSlowCandidateGenerators.Default.(bool)
	// attackDescWorkloadProfile is the schema descriptor for workload_profile field.
	attackDescWorkloadProfile := attackFields[10].Descriptor()
	// attack.DefaultWorkloadProfile holds the default value on creation for the workload_profile field.
	attack.DefaultWorkloadProfile = attackDescWorkloadProfile.Default.(int)
	// attack.WorkloadProfileValidator is a validator for the "workload_profile" field. It is called by the builders before save.
	attack.WorkloadProfileValidator = func() func(int) error {
		validators := attackDescWorkloadProfile.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(workload_profile int) error {
			for _, fn := range fns {
				if err := fn(workload_profile); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attackDescDisableMarkov is the schema descriptor for disable_markov field.
	attackDescDisableMarkov := attackFields[11].Descriptor()
	// attack.DefaultDisableMarkov holds the default value on creation for the disable_markov field.
	attack.DefaultDisableMarkov = attackDescDisableMarkov.Default.(bool)
	// attackDescClassicMarkov is the schema descriptor for classic_markov field.
	attackDescClassicMarkov := attackFields[12].Descriptor()
	// attack.DefaultClassicMarkov holds the default value on creation for the classic_markov field.
	attack.DefaultClassicMarkov = attackDescClassicMarkov.Default.(bool)
	// attackDescMarkovThreshold is the schema descriptor for markov_threshold field.
	attackDescMarkovThreshold := attackFields[13].Descriptor()
	// attack.DefaultMarkovThreshold holds the default value on creation for the markov_threshold field.
	attack.DefaultMarkovThreshold = attackDescMarkovThreshold.Default.(int)
	// attackDescPosition is the schema descriptor for position field.
	attackDescPosition := attackFields[23].Descriptor()
	// attack.DefaultPosition holds the default value on creation for the position field.
	attack.DefaultPosition = attackDescPosition.Default.(int)
	// attackDescDispatchedKeyspace is the schema descriptor for dispatched_keyspace field.
	attackDescDispatchedKeyspace := attackFields[25].Descriptor()
	// attack.DefaultDispatchedKeyspace holds the default value on creation for the dispatched_keyspace field.
	attack.DefaultDispatchedKeyspace = attackDescDispatchedKeyspace.Default.(int64)
	// attackDescCreatedAt is the schema descriptor for created_at field.
	attackDescCreatedAt := attackFields[28].Descriptor()
	// attack.DefaultCreatedAt holds the default value on creation for the created_at field.
	attack.DefaultCreatedAt = attackDescCreatedAt.Default.(func() time.Time)
	// attackDescUpdatedAt is the schema descriptor for updated_at field.
	attackDescUpdatedAt := attackFields[29].Descriptor()
	// attack.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	attack.DefaultUpdatedAt = attackDescUpdatedAt.Default.(func() time.Time)
	// attack.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	attack.UpdateDefaultUpdatedAt = attackDescUpdatedAt.UpdateDefault.(func() time.Time)
	benchmarkFields := schema.Benchmark{}.Fields()
	_ = benchmarkFields
	// benchmarkDescHashType is the schema descriptor for hash_type field.
	benchmarkDescHashType := benchmarkFields[1].Descriptor()
	// benchmark.HashTypeValidator is a validator for the "hash_type" field. It is called by the builders before save.
	benchmark.HashTypeValidator = benchmarkDescHashType.Validators[0].(func(int) error)
	// benchmarkDescDevice is the schema descriptor for device field.
	benchmarkDescDevice := benchmarkFields[2].Descriptor()
	// benchmark.DeviceValidator is a validator for the "device" field. It is called by the builders before save.
	benchmark.DeviceValidator = benchmarkDescDevice.Validators[0].(func(int) error)
	// benchmarkDescRuntimeMs is the schema descriptor for runtime_ms field.
	benchmarkDescRuntimeMs := benchmarkFields[4].Descriptor()
	// benchmark.DefaultRuntimeMs holds the default value on creation for the runtime_ms field.
	benchmark.DefaultRuntimeMs = benchmarkDescRuntimeMs.Default.(int64)
	// benchmarkDescMeasuredAt is the schema descriptor for measured_at field.
	benchmarkDescMeasuredAt := benchmarkFields[5].Descriptor()
	// benchmark.DefaultMeasuredAt holds the default value on creation for the measured_at field.
	benchmark.DefaultMeasuredAt = benchmarkDescMeasuredAt.Default.(func() time.Time)
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[2].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = campaignDescName.Validators[0].(func(string) error)
	// campaignDescPriority is the schema descriptor for priority field.
	campaignDescPriority := campaignFields[4].Descriptor()
	// campaign.DefaultPriority holds the default value on creation for the priority field.
	campaign.DefaultPriority = models.Priority(campaignDescPriority.Default.(int))
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[6].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[7].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	crackresultFields := schema.CrackResult{}.Fields()
	_ = crackresultFields
	// crackresultDescHashValue is the schema descriptor for hash_value field.
	crackresultDescHashValue := crackresultFields[1].Descriptor()
	// crackresult.HashValueValidator is a validator for the "hash_value" field. It is called by the builders before save.
	crackresult.HashValueValidator = crackresultDescHashValue.Validators[0].(func(string) error)
	// crackresultDescCrackedAt is the schema descriptor for cracked_at field.
	crackresultDescCrackedAt := crackresultFields[3].Descriptor()
	// crackresult.DefaultCrackedAt holds the default value on creation for the cracked_at field.
	crackresult.DefaultCrackedAt = crackresultDescCrackedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescChannel is the schema descriptor for channel field.
	eventDescChannel := eventFields[0].Descriptor()
	// event.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	event.ChannelValidator = eventDescChannel.Validators[0].(func(string) error)
	// eventDescEventType is the schema descriptor for event_type field.
	eventDescEventType := eventFields[1].Descriptor()
	// event.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	event.EventTypeValidator = eventDescEventType.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	hashitemFields := schema.HashItem{}.Fields()
	_ = hashitemFields
	// hashitemDescHashValue is the schema descriptor for hash_value field.
	hashitemDescHashValue := hashitemFields[1].Descriptor()
	// hashitem.HashValueValidator is a validator for the "hash_value" field. It is called by the builders before save.
	hashitem.HashValueValidator = hashitemDescHashValue.Validators[0].(func(string) error)
	// hashitemDescSalt is the schema descriptor for salt field.
	hashitemDescSalt := hashitemFields[2].Descriptor()
	// hashitem.DefaultSalt holds the default value on creation for the salt field.
	hashitem.DefaultSalt = hashitemDescSalt.Default.(string)
	// hashitemDescCreatedAt is the schema descriptor for created_at field.
	hashitemDescCreatedAt := hashitemFields[6].Descriptor()
	// hashitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	hashitem.DefaultCreatedAt = hashitemDescCreatedAt.Default.(func() time.Time)
	hashlistFields := schema.HashList{}.Fields()
	_ = hashlistFields
	// hashlistDescName is the schema descriptor for name field.
	hashlistDescName := hashlistFields[1].Descriptor()
	// hashlist.NameValidator is a validator for the "name" field. It is called by the builders before save.
	hashlist.NameValidator = hashlistDescName.Validators[0].(func(string) error)
	// hashlistDescHashTypeID is the schema descriptor for hash_type_id field.
	hashlistDescHashTypeID := hashlistFields[3].Descriptor()
	// hashlist.HashTypeIDValidator is a validator for the "hash_type_id" field. It is called by the builders before save.
	hashlist.HashTypeIDValidator = hashlistDescHashTypeID.Validators[0].(func(int) error)
	// hashlistDescSeparator is the schema descriptor for separator field.
	hashlistDescSeparator := hashlistFields[4].Descriptor()
	// hashlist.DefaultSeparator holds the default value on creation for the separator field.
	hashlist.DefaultSeparator = hashlistDescSeparator.Default.(string)
	// hashlist.SeparatorValidator is a validator for the "separator" field. It is called by the builders before save.
	hashlist.SeparatorValidator = hashlistDescSeparator.Validators[0].(func(string) error)
	// hashlistDescItemCount is the schema descriptor for item_count field.
	hashlistDescItemCount := hashlistFields[5].Descriptor()
	// hashlist.DefaultItemCount holds the default value on creation for the item_count field.
	hashlist.DefaultItemCount = hashlistDescItemCount.Default.(int64)
	// hashlistDescUncrackedCount is the schema descriptor for uncracked_count field.
	hashlistDescUncrackedCount := hashlistFields[6].Descriptor()
	// hashlist.DefaultUncrackedCount holds the default value on creation for the uncracked_count field.
	hashlist.DefaultUncrackedCount = hashlistDescUncrackedCount.Default.(int64)
	// hashlistDescCreatedAt is the schema descriptor for created_at field.
	hashlistDescCreatedAt := hashlistFields[7].Descriptor()
	// hashlist.DefaultCreatedAt holds the default value on creation for the created_at field.
	hashlist.DefaultCreatedAt = hashlistDescCreatedAt.Default.(func() time.Time)
	// hashlistDescUpdatedAt is the schema descriptor for updated_at field.
	hashlistDescUpdatedAt := hashlistFields[8].Descriptor()
	// hashlist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hashlist.DefaultUpdatedAt = hashlistDescUpdatedAt.Default.(func() time.Time)
	// hashlist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hashlist.UpdateDefaultUpdatedAt = hashlistDescUpdatedAt.UpdateDefault.(func() time.Time)
	hashcatstatusFields := schema.HashcatStatus{}.Fields()
	_ = hashcatstatusFields
	// hashcatstatusDescSession is the schema descriptor for session field.
	hashcatstatusDescSession := hashcatstatusFields[2].Descriptor()
	// hashcatstatus.DefaultSession holds the default value on creation for the session field.
	hashcatstatus.DefaultSession = hashcatstatusDescSession.Default.(string)
	// hashcatstatusDescTarget is the schema descriptor for target field.
	hashcatstatusDescTarget := hashcatstatusFields[4].Descriptor()
	// hashcatstatus.DefaultTarget holds the default value on creation for the target field.
	hashcatstatus.DefaultTarget = hashcatstatusDescTarget.Default.(string)
	// hashcatstatusDescProgressDone is the schema descriptor for progress_done field.
	hashcatstatusDescProgressDone := hashcatstatusFields[5].Descriptor()
	// hashcatstatus.DefaultProgressDone holds the default value on creation for the progress_done field.
	hashcatstatus.DefaultProgressDone = hashcatstatusDescProgressDone.Default.(int64)
	// hashcatstatusDescProgressTotal is the schema descriptor for progress_total field.
	hashcatstatusDescProgressTotal := hashcatstatusFields[6].Descriptor()
	// hashcatstatus.DefaultProgressTotal holds the default value on creation for the progress_total field.
	hashcatstatus.DefaultProgressTotal = hashcatstatusDescProgressTotal.Default.(int64)
	// hashcatstatusDescRestorePoint is the schema descriptor for restore_point field.
	hashcatstatusDescRestorePoint := hashcatstatusFields[7].Descriptor()
	// hashcatstatus.DefaultRestorePoint holds the default value on creation for the restore_point field.
	hashcatstatus.DefaultRestorePoint = hashcatstatusDescRestorePoint.Default.(int64)
	// hashcatstatusDescRejected is the schema descriptor for rejected field.
	hashcatstatusDescRejected := hashcatstatusFields[10].Descriptor()
	// hashcatstatus.DefaultRejected holds the default value on creation for the rejected field.
	hashcatstatus.DefaultRejected = hashcatstatusDescRejected.Default.(int64)
	// hashcatstatusDescReceivedAt is the schema descriptor for received_at field.
	hashcatstatusDescReceivedAt := hashcatstatusFields[15].Descriptor()
	// hashcatstatus.DefaultReceivedAt holds the default value on creation for the received_at field.
	hashcatstatus.DefaultReceivedAt = hashcatstatusDescReceivedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[0].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[2].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[3].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	resourceFields := schema.Resource{}.Fields()
	_ = resourceFields
	// resourceDescName is the schema descriptor for name field.
	resourceDescName := resourceFields[0].Descriptor()
	// resource.NameValidator is a validator for the "name" field. It is called by the builders before save.
	resource.NameValidator = resourceDescName.Validators[0].(func(string) error)
	// resourceDescFileName is the schema descriptor for file_name field.
	resourceDescFileName := resourceFields[1].Descriptor()
	// resource.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	resource.FileNameValidator = resourceDescFileName.Validators[0].(func(string) error)
	// resourceDescFileHandle is the schema descriptor for file_handle field.
	resourceDescFileHandle := resourceFields[2].Descriptor()
	// resource.FileHandleValidator is a validator for the "file_handle" field. It is called by the builders before save.
	resource.FileHandleValidator = resourceDescFileHandle.Validators[0].(func(string) error)
	// resourceDescByteSize is the schema descriptor for byte_size field.
	resourceDescByteSize := resourceFields[5].Descriptor()
	// resource.DefaultByteSize holds the default value on creation for the byte_size field.
	resource.DefaultByteSize = resourceDescByteSize.Default.(int64)
	// resourceDescChecksum is the schema descriptor for checksum field.
	resourceDescChecksum := resourceFields[6].Descriptor()
	// resource.DefaultChecksum holds the default value on creation for the checksum field.
	resource.DefaultChecksum = resourceDescChecksum.Default.(string)
	// resourceDescSensitive is the schema descriptor for sensitive field.
	resourceDescSensitive := resourceFields[7].Descriptor()
	// resource.DefaultSensitive holds the default value on creation for the sensitive field.
	resource.DefaultSensitive = resourceDescSensitive.Default.(bool)
	// resourceDescCreatedAt is the schema descriptor for created_at field.
	resourceDescCreatedAt := resourceFields[8].Descriptor()
	// resource.DefaultCreatedAt holds the default value on creation for the created_at field.
	resource.DefaultCreatedAt = resourceDescCreatedAt.Default.(func() time.Time)
	// resourceDescUpdatedAt is the schema descriptor for updated_at field.
	resourceDescUpdatedAt := resourceFields[9].Descriptor()
	// resource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	resource.DefaultUpdatedAt = resourceDescUpdatedAt.Default.(func() time.Time)
	// resource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	resource.UpdateDefaultUpdatedAt = resourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescKeyspaceOffset is the schema descriptor for keyspace_offset field.
	taskDescKeyspaceOffset := taskFields[3].Descriptor()
	// task.DefaultKeyspaceOffset holds the default value on creation for the keyspace_offset field.
	task.DefaultKeyspaceOffset = taskDescKeyspaceOffset.Default.(int64)
	// taskDescKeyspaceLimit is the schema descriptor for keyspace_limit field.
	taskDescKeyspaceLimit := taskFields[4].Descriptor()
	// task.DefaultKeyspaceLimit holds the default value on creation for the keyspace_limit field.
	task.DefaultKeyspaceLimit = taskDescKeyspaceLimit.Default.(int64)
	// taskDescProgressPercentage is the schema descriptor for progress_percentage field.
	taskDescProgressPercentage := taskFields[5].Descriptor()
	// task.DefaultProgressPercentage holds the default value on creation for the progress_percentage field.
	task.DefaultProgressPercentage = taskDescProgressPercentage.Default.(float64)
	// taskDescActivityTimestamp is the schema descriptor for activity_timestamp field.
	taskDescActivityTimestamp := taskFields[7].Descriptor()
	// task.DefaultActivityTimestamp holds the default value on creation for the activity_timestamp field.
	task.DefaultActivityTimestamp = taskDescActivityTimestamp.Default.(func() time.Time)
	// taskDescStale is the schema descriptor for stale field.
	taskDescStale := taskFields[8].Descriptor()
	// task.DefaultStale holds the default value on creation for the stale field.
	task.DefaultStale = taskDescStale.Default.(bool)
	// taskDescStartDate is the schema descriptor for start_date field.
	taskDescStartDate := taskFields[10].Descriptor()
	// task.DefaultStartDate holds the default value on creation for the start_date field.
	task.DefaultStartDate = taskDescStartDate.Default.(func() time.Time)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[12].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
