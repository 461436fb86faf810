package constants

// UploadStatus is the canonical status for rows in uploads.
type UploadStatus string

// Stable values (store these exact strings in DB).
const (
	UploadStatusAwaitingUpload UploadStatus = "awaiting_upload" // reserved, blob not written yet
	UploadStatusQueued         UploadStatus = "queued"          // client confirmed, job created
	UploadStatusProcessing     UploadStatus = "processing"      // text extracted, ingestion running
	UploadStatusCompleted      UploadStatus = "completed"       // terminal, job runner only
	UploadStatusFailed         UploadStatus = "failed"          // terminal, job runner only
)

// UploadJobStatus tracks the worker-side lifecycle of an upload job.
type UploadJobStatus string

const (
	UploadJobStatusQueued         UploadJobStatus = "queued"
	UploadJobStatusReceived       UploadJobStatus = "received"        // blob downloaded
	UploadJobStatusAwaitingParser UploadJobStatus = "awaiting_parser" // text extracted, handed to ingestion
	UploadJobStatusCompleted      UploadJobStatus = "completed"
	UploadJobStatusFailed         UploadJobStatus = "failed"
)

// IngestionStatus is the externally observable state of an ingestion job.
type IngestionStatus string

const (
	IngestionStatusPending   IngestionStatus = "pending"
	IngestionStatusCompleted IngestionStatus = "completed"
	IngestionStatusFailed    IngestionStatus = "failed"
)

// ToolInvocationStatus pairs a tool call with its result.
type ToolInvocationStatus string

const (
	ToolInvocationInProgress ToolInvocationStatus = "in_progress"
	ToolInvocationCompleted  ToolInvocationStatus = "completed"
)

// AuditAction tags an audit log entry with the batch-level action that produced it.
type AuditAction string

const (
	AuditActionUpdate AuditAction = "update"
	AuditActionApply  AuditAction = "apply"
	AuditActionAgent  AuditAction = "agent"
)

// UploadStatuses lists every valid uploads.status value.
var UploadStatuses = []string{
	string(UploadStatusAwaitingUpload),
	string(UploadStatusQueued),
	string(UploadStatusProcessing),
	string(UploadStatusCompleted),
	string(UploadStatusFailed),
}

// UploadJobStatuses lists every valid upload_job.status value.
var UploadJobStatuses = []string{
	string(UploadJobStatusQueued),
	string(UploadJobStatusReceived),
	string(UploadJobStatusAwaitingParser),
	string(UploadJobStatusCompleted),
	string(UploadJobStatusFailed),
}

// IngestionStatuses lists every valid ingestion_job.status value.
var IngestionStatuses = []string{
	string(IngestionStatusPending),
	string(IngestionStatusCompleted),
	string(IngestionStatusFailed),
}

// AuditActions lists every valid audit_log.action value.
var AuditActions = []string{
	string(AuditActionUpdate),
	string(AuditActionApply),
	string(AuditActionAgent),
}
