// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// IngestionJob is the predicate function for ingestionjob builders.
type IngestionJob func(*sql.Selector)

// InteractionEvent is the predicate function for interactionevent builders.
type InteractionEvent func(*sql.Selector)

// InventoryItem is the predicate function for inventoryitem builders.
type InventoryItem func(*sql.Selector)

// MetricsSnapshot is the predicate function for metricssnapshot builders.
type MetricsSnapshot func(*sql.Selector)

// ToolInvocation is the predicate function for toolinvocation builders.
type ToolInvocation func(*sql.Selector)

// Upload is the predicate function for upload builders.
type Upload func(*sql.Selector)

// UploadJob is the predicate function for uploadjob builders.
type UploadJob func(*sql.Selector)
