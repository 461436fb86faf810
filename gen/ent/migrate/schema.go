// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogColumns holds the columns for the "audit_log" table.
	AuditLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "item_names", Type: field.TypeJSON},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogTable holds the schema information for the "audit_log" table.
	AuditLogTable = &schema.Table{
		Name:       "audit_log",
		Columns:    AuditLogColumns,
		PrimaryKey: []*schema.Column{AuditLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogColumns[1], AuditLogColumns[5]},
			},
		},
	}
	// IngestionJobsColumns holds the columns for the "ingestion_jobs" table.
	IngestionJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "input_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "upload_id", Type: field.TypeUUID, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "agent_response", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result_summary", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IngestionJobsTable holds the schema information for the "ingestion_jobs" table.
	IngestionJobsTable = &schema.Table{
		Name:       "ingestion_jobs",
		Columns:    IngestionJobsColumns,
		PrimaryKey: []*schema.Column{IngestionJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestionjob_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{IngestionJobsColumns[1], IngestionJobsColumns[5], IngestionJobsColumns[9]},
			},
			{
				Name:    "ingestionjob_upload_id",
				Unique:  false,
				Columns: []*schema.Column{IngestionJobsColumns[3]},
			},
		},
	}
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "input", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "agent", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "used_fallback", Type: field.TypeBool, Default: false},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[9]},
			},
			{
				Name:    "interactionevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1], InteractionEventsColumns[9]},
			},
		},
	}
	// InventoryItemsColumns holds the columns for the "inventory_items" table.
	InventoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "name_key", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit", Type: field.TypeString, Default: "unit"},
		{Name: "category", Type: field.TypeString, Default: "uncategorized"},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "low_stock_threshold", Type: field.TypeFloat64, Default: 1, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "expiration", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InventoryItemsTable holds the schema information for the "inventory_items" table.
	InventoryItemsTable = &schema.Table{
		Name:       "inventory_items",
		Columns:    InventoryItemsColumns,
		PrimaryKey: []*schema.Column{InventoryItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inventoryitem_user_id_name_key",
				Unique:  true,
				Columns: []*schema.Column{InventoryItemsColumns[1], InventoryItemsColumns[3]},
			},
			{
				Name:    "inventoryitem_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[1], InventoryItemsColumns[12]},
			},
		},
	}
	// MetricsSnapshotsColumns holds the columns for the "metrics_snapshots" table.
	MetricsSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "total", Type: field.TypeInt64, Default: 0},
		{Name: "success_count", Type: field.TypeInt64, Default: 0},
		{Name: "fallback_count", Type: field.TypeInt64, Default: 0},
		{Name: "latency_sum_ms", Type: field.TypeInt64, Default: 0},
		{Name: "confidence_sum", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_lt_2s", Type: field.TypeInt64, Default: 0},
		{Name: "latency_2s_5s", Type: field.TypeInt64, Default: 0},
		{Name: "latency_gt_5s", Type: field.TypeInt64, Default: 0},
		{Name: "confidence_low", Type: field.TypeInt64, Default: 0},
		{Name: "confidence_medium", Type: field.TypeInt64, Default: 0},
		{Name: "confidence_high", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MetricsSnapshotsTable holds the schema information for the "metrics_snapshots" table.
	MetricsSnapshotsTable = &schema.Table{
		Name:       "metrics_snapshots",
		Columns:    MetricsSnapshotsColumns,
		PrimaryKey: []*schema.Column{MetricsSnapshotsColumns[0]},
	}
	// ToolInvocationsColumns holds the columns for the "tool_invocations" table.
	ToolInvocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "call_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ToolInvocationsTable holds the schema information for the "tool_invocations" table.
	ToolInvocationsTable = &schema.Table{
		Name:       "tool_invocations",
		Columns:    ToolInvocationsColumns,
		PrimaryKey: []*schema.Column{ToolInvocationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolinvocation_job_id_call_id",
				Unique:  true,
				Columns: []*schema.Column{ToolInvocationsColumns[1], ToolInvocationsColumns[2]},
			},
		},
	}
	// UploadsColumns holds the columns for the "uploads" table.
	UploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "source_type", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "bucket", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "processing_job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "ingestion_job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "text_preview", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UploadsTable holds the schema information for the "uploads" table.
	UploadsTable = &schema.Table{
		Name:       "uploads",
		Columns:    UploadsColumns,
		PrimaryKey: []*schema.Column{UploadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "upload_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{UploadsColumns[1], UploadsColumns[9], UploadsColumns[14]},
			},
		},
	}
	// UploadJobsColumns holds the columns for the "upload_jobs" table.
	UploadJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "bucket", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "upload_id", Type: field.TypeUUID},
	}
	// UploadJobsTable holds the schema information for the "upload_jobs" table.
	UploadJobsTable = &schema.Table{
		Name:       "upload_jobs",
		Columns:    UploadJobsColumns,
		PrimaryKey: []*schema.Column{UploadJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "upload_jobs_uploads_jobs",
				Columns:    []*schema.Column{UploadJobsColumns[11]},
				RefColumns: []*schema.Column{UploadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uploadjob_upload_id",
				Unique:  false,
				Columns: []*schema.Column{UploadJobsColumns[11]},
			},
			{
				Name:    "uploadjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{UploadJobsColumns[6], UploadJobsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogTable,
		IngestionJobsTable,
		InteractionEventsTable,
		InventoryItemsTable,
		MetricsSnapshotsTable,
		ToolInvocationsTable,
		UploadsTable,
		UploadJobsTable,
	}
)

func init() {
	AuditLogTable.Annotation = &entsql.Annotation{
		Table: "audit_log",
	}
	IngestionJobsTable.Annotation = &entsql.Annotation{
		Table: "ingestion_jobs",
	}
	InteractionEventsTable.Annotation = &entsql.Annotation{
		Table: "interaction_events",
	}
	InventoryItemsTable.Annotation = &entsql.Annotation{
		Table: "inventory_items",
	}
	MetricsSnapshotsTable.Annotation = &entsql.Annotation{
		Table: "metrics_snapshots",
	}
	ToolInvocationsTable.Annotation = &entsql.Annotation{
		Table: "tool_invocations",
	}
	UploadsTable.Annotation = &entsql.Annotation{
		Table: "uploads",
	}
	UploadJobsTable.ForeignKeys[0].RefTable = UploadsTable
	UploadJobsTable.Annotation = &entsql.Annotation{
		Table: "upload_jobs",
	}
}
