// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/pantryops/pantryd/db/ent/schema"
	"github.com/pantryops/pantryd/gen/ent/auditentry"
	"github.com/pantryops/pantryd/gen/ent/ingestionjob"
	"github.com/pantryops/pantryd/gen/ent/interactionevent"
	"github.com/pantryops/pantryd/gen/ent/inventoryitem"
	"github.com/pantryops/pantryd/gen/ent/metricssnapshot"
	"github.com/pantryops/pantryd/gen/ent/toolinvocation"
	"github.com/pantryops/pantryd/gen/ent/upload"
	"github.com/pantryops/pantryd/gen/ent/uploadjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescUserID is the schema descriptor for user_id field.
	auditentryDescUserID := auditentryFields[1].Descriptor()
	// auditentry.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	auditentry.UserIDValidator = auditentryDescUserID.Validators[0].(func(string) error)
	// auditentryDescAction is the schema descriptor for action field.
	auditentryDescAction := auditentryFields[2].Descriptor()
	// auditentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditentry.ActionValidator = auditentryDescAction.Validators[0].(func(string) error)
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[5].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	// auditentryDescID is the schema descriptor for id field.
	auditentryDescID := auditentryFields[0].Descriptor()
	// auditentry.DefaultID holds the default value on creation for the id field.
	auditentry.DefaultID = auditentryDescID.Default.(func() uuid.UUID)
	ingestionjobFields := schema.IngestionJob{}.Fields()
	_ = ingestionjobFields
	// ingestionjobDescUserID is the schema descriptor for user_id field.
	ingestionjobDescUserID := ingestionjobFields[1].Descriptor()
	// ingestionjob.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	ingestionjob.UserIDValidator = ingestionjobDescUserID.Validators[0].(func(string) error)
	// ingestionjobDescStatus is the schema descriptor for status field.
	ingestionjobDescStatus := ingestionjobFields[5].Descriptor()
	// ingestionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ingestionjob.StatusValidator = ingestionjobDescStatus.Validators[0].(func(string) error)
	// ingestionjobDescCreatedAt is the schema descriptor for created_at field.
	ingestionjobDescCreatedAt := ingestionjobFields[9].Descriptor()
	// ingestionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	ingestionjob.DefaultCreatedAt = ingestionjobDescCreatedAt.Default.(func() time.Time)
	// ingestionjobDescUpdatedAt is the schema descriptor for updated_at field.
	ingestionjobDescUpdatedAt := ingestionjobFields[11].Descriptor()
	// ingestionjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ingestionjob.DefaultUpdatedAt = ingestionjobDescUpdatedAt.Default.(func() time.Time)
	// ingestionjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ingestionjob.UpdateDefaultUpdatedAt = ingestionjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ingestionjobDescID is the schema descriptor for id field.
	ingestionjobDescID := ingestionjobFields[0].Descriptor()
	// ingestionjob.DefaultID holds the default value on creation for the id field.
	ingestionjob.DefaultID = ingestionjobDescID.Default.(func() uuid.UUID)
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescUserID is the schema descriptor for user_id field.
	interactioneventDescUserID := interactioneventFields[1].Descriptor()
	// interactionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interactionevent.UserIDValidator = interactioneventDescUserID.Validators[0].(func(string) error)
	// interactioneventDescAgent is the schema descriptor for agent field.
	interactioneventDescAgent := interactioneventFields[3].Descriptor()
	// interactionevent.AgentValidator is a validator for the "agent" field. It is called by the builders before save.
	interactionevent.AgentValidator = interactioneventDescAgent.Validators[0].(func(string) error)
	// interactioneventDescUsedFallback is the schema descriptor for used_fallback field.
	interactioneventDescUsedFallback := interactioneventFields[5].Descriptor()
	// interactionevent.DefaultUsedFallback holds the default value on creation for the used_fallback field.
	interactionevent.DefaultUsedFallback = interactioneventDescUsedFallback.Default.(bool)
	// interactioneventDescLatencyMs is the schema descriptor for latency_ms field.
	interactioneventDescLatencyMs := interactioneventFields[6].Descriptor()
	// interactionevent.LatencyMsValidator is a validator for the "latency_ms" field. It is called by the builders before save.
	interactionevent.LatencyMsValidator = interactioneventDescLatencyMs.Validators[0].(func(int64) error)
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventFields[9].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescID is the schema descriptor for id field.
	interactioneventDescID := interactioneventFields[0].Descriptor()
	// interactionevent.DefaultID holds the default value on creation for the id field.
	interactionevent.DefaultID = interactioneventDescID.Default.(func() uuid.UUID)
	inventoryitemFields := schema.InventoryItem{}.Fields()
	_ = inventoryitemFields
	// inventoryitemDescUserID is the schema descriptor for user_id field.
	inventoryitemDescUserID := inventoryitemFields[1].Descriptor()
	// inventoryitem.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	inventoryitem.UserIDValidator = inventoryitemDescUserID.Validators[0].(func(string) error)
	// inventoryitemDescName is the schema descriptor for name field.
	inventoryitemDescName := inventoryitemFields[2].Descriptor()
	// inventoryitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	inventoryitem.NameValidator = inventoryitemDescName.Validators[0].(func(string) error)
	// inventoryitemDescNameKey is the schema descriptor for name_key field.
	inventoryitemDescNameKey := inventoryitemFields[3].Descriptor()
	// inventoryitem.NameKeyValidator is a validator for the "name_key" field. It is called by the builders before save.
	inventoryitem.NameKeyValidator = inventoryitemDescNameKey.Validators[0].(func(string) error)
	// inventoryitemDescQuantity is the schema descriptor for quantity field.
	inventoryitemDescQuantity := inventoryitemFields[4].Descriptor()
	// inventoryitem.DefaultQuantity holds the default value on creation for the quantity field.
	inventoryitem.DefaultQuantity = inventoryitemDescQuantity.Default.(float64)
	// inventoryitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	inventoryitem.QuantityValidator = inventoryitemDescQuantity.Validators[0].(func(float64) error)
	// inventoryitemDescUnit is the schema descriptor for unit field.
	inventoryitemDescUnit := inventoryitemFields[5].Descriptor()
	// inventoryitem.DefaultUnit holds the default value on creation for the unit field.
	inventoryitem.DefaultUnit = inventoryitemDescUnit.Default.(string)
	// inventoryitemDescCategory is the schema descriptor for category field.
	inventoryitemDescCategory := inventoryitemFields[6].Descriptor()
	// inventoryitem.DefaultCategory holds the default value on creation for the category field.
	inventoryitem.DefaultCategory = inventoryitemDescCategory.Default.(string)
	// inventoryitemDescLowStockThreshold is the schema descriptor for low_stock_threshold field.
	inventoryitemDescLowStockThreshold := inventoryitemFields[8].Descriptor()
	// inventoryitem.DefaultLowStockThreshold holds the default value on creation for the low_stock_threshold field.
	inventoryitem.DefaultLowStockThreshold = inventoryitemDescLowStockThreshold.Default.(float64)
	// inventoryitem.LowStockThresholdValidator is a validator for the "low_stock_threshold" field. It is called by the builders before save.
	inventoryitem.LowStockThresholdValidator = inventoryitemDescLowStockThreshold.Validators[0].(func(float64) error)
	// inventoryitemDescCreatedAt is the schema descriptor for created_at field.
	inventoryitemDescCreatedAt := inventoryitemFields[11].Descriptor()
	// inventoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inventoryitem.DefaultCreatedAt = inventoryitemDescCreatedAt.Default.(func() time.Time)
	// inventoryitemDescUpdatedAt is the schema descriptor for updated_at field.
	inventoryitemDescUpdatedAt := inventoryitemFields[12].Descriptor()
	// inventoryitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inventoryitem.DefaultUpdatedAt = inventoryitemDescUpdatedAt.Default.(func() time.Time)
	// inventoryitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inventoryitem.UpdateDefaultUpdatedAt = inventoryitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inventoryitemDescID is the schema descriptor for id field.
	inventoryitemDescID := inventoryitemFields[0].Descriptor()
	// inventoryitem.DefaultID holds the default value on creation for the id field.
	inventoryitem.DefaultID = inventoryitemDescID.Default.(func() uuid.UUID)
	metricssnapshotFields := schema.MetricsSnapshot{}.Fields()
	_ = metricssnapshotFields
	// metricssnapshotDescKey is the schema descriptor for key field.
	metricssnapshotDescKey := metricssnapshotFields[1].Descriptor()
	// metricssnapshot.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	metricssnapshot.KeyValidator = metricssnapshotDescKey.Validators[0].(func(string) error)
	// metricssnapshotDescTotal is the schema descriptor for total field.
	metricssnapshotDescTotal := metricssnapshotFields[2].Descriptor()
	// metricssnapshot.DefaultTotal holds the default value on creation for the total field.
	metricssnapshot.DefaultTotal = metricssnapshotDescTotal.Default.(int64)
	// metricssnapshot.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	metricssnapshot.TotalValidator = metricssnapshotDescTotal.Validators[0].(func(int64) error)
	// metricssnapshotDescSuccessCount is the schema descriptor for success_count field.
	metricssnapshotDescSuccessCount := metricssnapshotFields[3].Descriptor()
	// metricssnapshot.DefaultSuccessCount holds the default value on creation for the success_count field.
	metricssnapshot.DefaultSuccessCount = metricssnapshotDescSuccessCount.Default.(int64)
	// metricssnapshot.SuccessCountValidator is a validator for the "success_count" field. It is called by the builders before save.
	metricssnapshot.SuccessCountValidator = metricssnapshotDescSuccessCount.Validators[0].(func(int64) error)
	// metricssnapshotDescFallbackCount is the schema descriptor for fallback_count field.
	metricssnapshotDescFallbackCount := metricssnapshotFields[4].Descriptor()
	// metricssnapshot.DefaultFallbackCount holds the default value on creation for the fallback_count field.
	metricssnapshot.DefaultFallbackCount = metricssnapshotDescFallbackCount.Default.(int64)
	// metricssnapshot.FallbackCountValidator is a validator for the "fallback_count" field. It is called by the builders before save.
	metricssnapshot.FallbackCountValidator = metricssnapshotDescFallbackCount.Validators[0].(func(int64) error)
	// metricssnapshotDescLatencySumMs is the schema descriptor for latency_sum_ms field.
	metricssnapshotDescLatencySumMs := metricssnapshotFields[5].Descriptor()
	// metricssnapshot.DefaultLatencySumMs holds the default value on creation for the latency_sum_ms field.
	metricssnapshot.DefaultLatencySumMs = metricssnapshotDescLatencySumMs.Default.(int64)
	// metricssnapshot.LatencySumMsValidator is a validator for the "latency_sum_ms" field. It is called by the builders before save.
	metricssnapshot.LatencySumMsValidator = metricssnapshotDescLatencySumMs.Validators[0].(func(int64) error)
	// metricssnapshotDescConfidenceSum is the schema descriptor for confidence_sum field.
	metricssnapshotDescConfidenceSum := metricssnapshotFields[6].Descriptor()
	// metricssnapshot.DefaultConfidenceSum holds the default value on creation for the confidence_sum field.
	metricssnapshot.DefaultConfidenceSum = metricssnapshotDescConfidenceSum.Default.(float64)
	// metricssnapshotDescLatencyLt2s is the schema descriptor for latency_lt_2s field.
	metricssnapshotDescLatencyLt2s := metricssnapshotFields[7].Descriptor()
	// metricssnapshot.DefaultLatencyLt2s holds the default value on creation for the latency_lt_2s field.
	metricssnapshot.DefaultLatencyLt2s = metricssnapshotDescLatencyLt2s.Default.(int64)
	// metricssnapshot.LatencyLt2sValidator is a validator for the "latency_lt_2s" field. It is called by the builders before save.
	metricssnapshot.LatencyLt2sValidator = metricssnapshotDescLatencyLt2s.Validators[0].(func(int64) error)
	// metricssnapshotDescLatency2s5s is the schema descriptor for latency_2s_5s field.
	metricssnapshotDescLatency2s5s := metricssnapshotFields[8].Descriptor()
	// metricssnapshot.DefaultLatency2s5s holds the default value on creation for the latency_2s_5s field.
	metricssnapshot.DefaultLatency2s5s = metricssnapshotDescLatency2s5s.Default.(int64)
	// metricssnapshot.Latency2s5sValidator is a validator for the "latency_2s_5s" field. It is called by the builders before save.
	metricssnapshot.Latency2s5sValidator = metricssnapshotDescLatency2s5s.Validators[0].(func(int64) error)
	// metricssnapshotDescLatencyGt5s is the schema descriptor for latency_gt_5s field.
	metricssnapshotDescLatencyGt5s := metricssnapshotFields[9].Descriptor()
	// metricssnapshot.DefaultLatencyGt5s holds the default value on creation for the latency_gt_5s field.
	metricssnapshot.DefaultLatencyGt5s = metricssnapshotDescLatencyGt5s.Default.(int64)
	// metricssnapshot.LatencyGt5sValidator is a validator for the "latency_gt_5s" field. It is called by the builders before save.
	metricssnapshot.LatencyGt5sValidator = metricssnapshotDescLatencyGt5s.Validators[0].(func(int64) error)
	// metricssnapshotDescConfidenceLow is the schema descriptor for confidence_low field.
	metricssnapshotDescConfidenceLow := metricssnapshotFields[10].Descriptor()
	// metricssnapshot.DefaultConfidenceLow holds the default value on creation for the confidence_low field.
	metricssnapshot.DefaultConfidenceLow = metricssnapshotDescConfidenceLow.Default.(int64)
	// metricssnapshot.ConfidenceLowValidator is a validator for the "confidence_low" field. It is called by the builders before save.
	metricssnapshot.ConfidenceLowValidator = metricssnapshotDescConfidenceLow.Validators[0].(func(int64) error)
	// metricssnapshotDescConfidenceMedium is the schema descriptor for confidence_medium field.
	metricssnapshotDescConfidenceMedium := metricssnapshotFields[11].Descriptor()
	// metricssnapshot.DefaultConfidenceMedium holds the default value on creation for the confidence_medium field.
	metricssnapshot.DefaultConfidenceMedium = metricssnapshotDescConfidenceMedium.Default.(int64)
	// metricssnapshot.ConfidenceMediumValidator is a validator for the "confidence_medium" field. It is called by the builders before save.
	metricssnapshot.ConfidenceMediumValidator = metricssnapshotDescConfidenceMedium.Validators[0].(func(int64) error)
	// metricssnapshotDescConfidenceHigh is the schema descriptor for confidence_high field.
	metricssnapshotDescConfidenceHigh := metricssnapshotFields[12].Descriptor()
	// metricssnapshot.DefaultConfidenceHigh holds the default value on creation for the confidence_high field.
	metricssnapshot.DefaultConfidenceHigh = metricssnapshotDescConfidenceHigh.Default.(int64)
	// metricssnapshot.ConfidenceHighValidator is a validator for the "confidence_high" field. It is called by the builders before save.
	metricssnapshot.ConfidenceHighValidator = metricssnapshotDescConfidenceHigh.Validators[0].(func(int64) error)
	// metricssnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	metricssnapshotDescUpdatedAt := metricssnapshotFields[13].Descriptor()
	// metricssnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	metricssnapshot.DefaultUpdatedAt = metricssnapshotDescUpdatedAt.Default.(func() time.Time)
	// metricssnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	metricssnapshot.UpdateDefaultUpdatedAt = metricssnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// metricssnapshotDescID is the schema descriptor for id field.
	metricssnapshotDescID := metricssnapshotFields[0].Descriptor()
	// metricssnapshot.DefaultID holds the default value on creation for the id field.
	metricssnapshot.DefaultID = metricssnapshotDescID.Default.(func() uuid.UUID)
	toolinvocationFields := schema.ToolInvocation{}.Fields()
	_ = toolinvocationFields
	// toolinvocationDescCallID is the schema descriptor for call_id field.
	toolinvocationDescCallID := toolinvocationFields[2].Descriptor()
	// toolinvocation.CallIDValidator is a validator for the "call_id" field. It is called by the builders before save.
	toolinvocation.CallIDValidator = toolinvocationDescCallID.Validators[0].(func(string) error)
	// toolinvocationDescName is the schema descriptor for name field.
	toolinvocationDescName := toolinvocationFields[3].Descriptor()
	// toolinvocation.NameValidator is a validator for the "name" field. It is called by the builders before save.
	toolinvocation.NameValidator = toolinvocationDescName.Validators[0].(func(string) error)
	// toolinvocationDescStatus is the schema descriptor for status field.
	toolinvocationDescStatus := toolinvocationFields[4].Descriptor()
	// toolinvocation.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	toolinvocation.StatusValidator = toolinvocationDescStatus.Validators[0].(func(string) error)
	// toolinvocationDescCreatedAt is the schema descriptor for created_at field.
	toolinvocationDescCreatedAt := toolinvocationFields[7].Descriptor()
	// toolinvocation.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolinvocation.DefaultCreatedAt = toolinvocationDescCreatedAt.Default.(func() time.Time)
	// toolinvocationDescUpdatedAt is the schema descriptor for updated_at field.
	toolinvocationDescUpdatedAt := toolinvocationFields[8].Descriptor()
	// toolinvocation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	toolinvocation.DefaultUpdatedAt = toolinvocationDescUpdatedAt.Default.(func() time.Time)
	// toolinvocation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	toolinvocation.UpdateDefaultUpdatedAt = toolinvocationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// toolinvocationDescID is the schema descriptor for id field.
	toolinvocationDescID := toolinvocationFields[0].Descriptor()
	// toolinvocation.DefaultID holds the default value on creation for the id field.
	toolinvocation.DefaultID = toolinvocationDescID.Default.(func() uuid.UUID)
	uploadFields := schema.Upload{}.Fields()
	_ = uploadFields
	// uploadDescUserID is the schema descriptor for user_id field.
	uploadDescUserID := uploadFields[1].Descriptor()
	// upload.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	upload.UserIDValidator = uploadDescUserID.Validators[0].(func(string) error)
	// uploadDescFilename is the schema descriptor for filename field.
	uploadDescFilename := uploadFields[2].Descriptor()
	// upload.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	upload.FilenameValidator = uploadDescFilename.Validators[0].(func(string) error)
	// uploadDescOriginalFilename is the schema descriptor for original_filename field.
	uploadDescOriginalFilename := uploadFields[3].Descriptor()
	// upload.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	upload.OriginalFilenameValidator = uploadDescOriginalFilename.Validators[0].(func(string) error)
	// uploadDescContentType is the schema descriptor for content_type field.
	uploadDescContentType := uploadFields[4].Descriptor()
	// upload.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	upload.ContentTypeValidator = uploadDescContentType.Validators[0].(func(string) error)
	// uploadDescSourceType is the schema descriptor for source_type field.
	uploadDescSourceType := uploadFields[6].Descriptor()
	// upload.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	upload.SourceTypeValidator = uploadDescSourceType.Validators[0].(func(string) error)
	// uploadDescStoragePath is the schema descriptor for storage_path field.
	uploadDescStoragePath := uploadFields[7].Descriptor()
	// upload.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	upload.StoragePathValidator = uploadDescStoragePath.Validators[0].(func(string) error)
	// uploadDescBucket is the schema descriptor for bucket field.
	uploadDescBucket := uploadFields[8].Descriptor()
	// upload.BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	upload.BucketValidator = uploadDescBucket.Validators[0].(func(string) error)
	// uploadDescStatus is the schema descriptor for status field.
	uploadDescStatus := uploadFields[9].Descriptor()
	// upload.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	upload.StatusValidator = uploadDescStatus.Validators[0].(func(string) error)
	// uploadDescCreatedAt is the schema descriptor for created_at field.
	uploadDescCreatedAt := uploadFields[14].Descriptor()
	// upload.DefaultCreatedAt holds the default value on creation for the created_at field.
	upload.DefaultCreatedAt = uploadDescCreatedAt.Default.(func() time.Time)
	// uploadDescUpdatedAt is the schema descriptor for updated_at field.
	uploadDescUpdatedAt := uploadFields[15].Descriptor()
	// upload.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	upload.DefaultUpdatedAt = uploadDescUpdatedAt.Default.(func() time.Time)
	// upload.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	upload.UpdateDefaultUpdatedAt = uploadDescUpdatedAt.UpdateDefault.(func() time.Time)
	// uploadDescID is the schema descriptor for id field.
	uploadDescID := uploadFields[0].Descriptor()
	// upload.DefaultID holds the default value on creation for the id field.
	upload.DefaultID = uploadDescID.Default.(func() uuid.UUID)
	uploadjobFields := schema.UploadJob{}.Fields()
	_ = uploadjobFields
	// uploadjobDescUserID is the schema descriptor for user_id field.
	uploadjobDescUserID := uploadjobFields[2].Descriptor()
	// uploadjob.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	uploadjob.UserIDValidator = uploadjobDescUserID.Validators[0].(func(string) error)
	// uploadjobDescStoragePath is the schema descriptor for storage_path field.
	uploadjobDescStoragePath := uploadjobFields[3].Descriptor()
	// uploadjob.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	uploadjob.StoragePathValidator = uploadjobDescStoragePath.Validators[0].(func(string) error)
	// uploadjobDescBucket is the schema descriptor for bucket field.
	uploadjobDescBucket := uploadjobFields[4].Descriptor()
	// uploadjob.BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	uploadjob.BucketValidator = uploadjobDescBucket.Validators[0].(func(string) error)
	// uploadjobDescContentType is the schema descriptor for content_type field.
	uploadjobDescContentType := uploadjobFields[5].Descriptor()
	// uploadjob.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	uploadjob.ContentTypeValidator = uploadjobDescContentType.Validators[0].(func(string) error)
	// uploadjobDescSourceType is the schema descriptor for source_type field.
	uploadjobDescSourceType := uploadjobFields[6].Descriptor()
	// uploadjob.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	uploadjob.SourceTypeValidator = uploadjobDescSourceType.Validators[0].(func(string) error)
	// uploadjobDescStatus is the schema descriptor for status field.
	uploadjobDescStatus := uploadjobFields[7].Descriptor()
	// uploadjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	uploadjob.StatusValidator = uploadjobDescStatus.Validators[0].(func(string) error)
	// uploadjobDescAttempts is the schema descriptor for attempts field.
	uploadjobDescAttempts := uploadjobFields[8].Descriptor()
	// uploadjob.DefaultAttempts holds the default value on creation for the attempts field.
	uploadjob.DefaultAttempts = uploadjobDescAttempts.Default.(int)
	// uploadjob.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	uploadjob.AttemptsValidator = uploadjobDescAttempts.Validators[0].(func(int) error)
	// uploadjobDescCreatedAt is the schema descriptor for created_at field.
	uploadjobDescCreatedAt := uploadjobFields[10].Descriptor()
	// uploadjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadjob.DefaultCreatedAt = uploadjobDescCreatedAt.Default.(func() time.Time)
	// uploadjobDescUpdatedAt is the schema descriptor for updated_at field.
	uploadjobDescUpdatedAt := uploadjobFields[11].Descriptor()
	// uploadjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	uploadjob.DefaultUpdatedAt = uploadjobDescUpdatedAt.Default.(func() time.Time)
	// uploadjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	uploadjob.UpdateDefaultUpdatedAt = uploadjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// uploadjobDescID is the schema descriptor for id field.
	uploadjobDescID := uploadjobFields[0].Descriptor()
	// uploadjob.DefaultID holds the default value on creation for the id field.
	uploadjob.DefaultID = uploadjobDescID.Default.(func() uuid.UUID)
}
