package upload

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/extract"
)

type fakeStarter struct {
	ingestionID uuid.UUID
	createErr   error
	execErr     error

	createdText string
	createdMeta json.RawMessage
	executed    []uuid.UUID
}

func (f *fakeStarter) CreateFromUpload(_ context.Context, _ string, _ uuid.UUID, text string, metadata json.RawMessage) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.createdText = text
	f.createdMeta = metadata
	if f.ingestionID == uuid.Nil {
		f.ingestionID = uuid.New()
	}
	return f.ingestionID, nil
}

func (f *fakeStarter) ExecuteJob(_ context.Context, jobID uuid.UUID) error {
	f.executed = append(f.executed, jobID)
	return f.execErr
}

type processorFixture struct {
	repo    *fakeRepo
	store   *fakeObjectStore
	starter *fakeStarter
	proc    *Processor
	upload  Upload
	job     Job
}

func newProcessorFixture(t *testing.T, uploadStatus constants.UploadStatus, blob []byte) *processorFixture {
	t.Helper()
	repo := newFakeRepo()
	store := &fakeObjectStore{blobs: map[string][]byte{}}
	starter := &fakeStarter{}

	u, err := repo.CreateUpload(context.Background(), Upload{
		UserID:      "alice",
		Filename:    "list.txt",
		ContentType: "text/plain",
		SourceType:  constants.SourceText,
		StoragePath: "uploads/alice/list.txt",
		Bucket:      "pantry-uploads",
		Status:      uploadStatus,
	})
	if err != nil {
		t.Fatalf("CreateUpload: %v", err)
	}
	job, err := repo.CreateJob(context.Background(), Job{
		UploadID:    u.ID,
		UserID:      u.UserID,
		StoragePath: u.StoragePath,
		Bucket:      u.Bucket,
		ContentType: u.ContentType,
		SourceType:  u.SourceType,
		Status:      constants.UploadJobStatusQueued,
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if blob != nil {
		store.blobs[u.Bucket+"/"+u.StoragePath] = blob
	}

	extractor := NewTextExtractor(nil, discardLogger())
	return &processorFixture{
		repo:    repo,
		store:   store,
		starter: starter,
		proc:    NewProcessor(repo, store, extractor, starter, discardLogger()),
		upload:  u,
		job:     job,
	}
}

func TestProcessorHandsOffToIngestion(t *testing.T) {
	fx := newProcessorFixture(t, constants.UploadStatusQueued, []byte("bought 2 gallons of milk"))

	if err := fx.proc.Process(context.Background(), fx.job.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if fx.starter.createdText != "bought 2 gallons of milk" {
		t.Errorf("ingestion text = %q", fx.starter.createdText)
	}
	var meta map[string]string
	if err := json.Unmarshal(fx.starter.createdMeta, &meta); err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if meta["upload_id"] != fx.upload.ID.String() || meta["source_type"] != "text" {
		t.Errorf("metadata = %v", meta)
	}
	if len(fx.starter.executed) != 1 || fx.starter.executed[0] != fx.starter.ingestionID {
		t.Errorf("executed = %v", fx.starter.executed)
	}

	job, _ := fx.repo.GetJob(context.Background(), fx.job.ID)
	if job.Status != constants.UploadJobStatusCompleted {
		t.Errorf("job status = %s, want completed", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", job.Attempts)
	}

	u, _ := fx.repo.GetUpload(context.Background(), fx.upload.ID)
	if u.Status != constants.UploadStatusProcessing {
		t.Errorf("upload status = %s, want processing (terminal state belongs to the runner)", u.Status)
	}
	if u.IngestionJobID == nil || *u.IngestionJobID != fx.starter.ingestionID {
		t.Errorf("ingestion job id = %v", u.IngestionJobID)
	}
	if u.TextPreview == nil || *u.TextPreview != "bought 2 gallons of milk" {
		t.Errorf("preview = %v", u.TextPreview)
	}
}

func TestProcessorFailsJobWhenBlobMissing(t *testing.T) {
	fx := newProcessorFixture(t, constants.UploadStatusQueued, nil)

	if err := fx.proc.Process(context.Background(), fx.job.ID); err == nil {
		t.Fatal("expected download error")
	}

	job, _ := fx.repo.GetJob(context.Background(), fx.job.ID)
	if job.Status != constants.UploadJobStatusFailed {
		t.Errorf("job status = %s, want failed", job.Status)
	}
	if job.LastError == nil || !strings.Contains(*job.LastError, "download") {
		t.Errorf("last error = %v", job.LastError)
	}
	u, _ := fx.repo.GetUpload(context.Background(), fx.upload.ID)
	if u.Status != constants.UploadStatusFailed {
		t.Errorf("upload status = %s, want failed", u.Status)
	}
	if len(fx.starter.executed) != 0 {
		t.Error("ingestion must not run for a failed download")
	}
}

func TestProcessorFailsJobOnEmptyText(t *testing.T) {
	fx := newProcessorFixture(t, constants.UploadStatusQueued, []byte("   \n\t "))

	if err := fx.proc.Process(context.Background(), fx.job.ID); err == nil {
		t.Fatal("expected empty-text error")
	}
	u, _ := fx.repo.GetUpload(context.Background(), fx.upload.ID)
	if u.Status != constants.UploadStatusFailed {
		t.Errorf("upload status = %s, want failed", u.Status)
	}
}

func TestProcessorSkipsDuplicateJob(t *testing.T) {
	// another worker already moved the upload past queued
	fx := newProcessorFixture(t, constants.UploadStatusProcessing, []byte("bought milk"))

	if err := fx.proc.Process(context.Background(), fx.job.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if fx.starter.createdText != "" || len(fx.starter.executed) != 0 {
		t.Error("duplicate job must not reach ingestion")
	}
	u, _ := fx.repo.GetUpload(context.Background(), fx.upload.ID)
	if u.Status != constants.UploadStatusProcessing {
		t.Errorf("upload status = %s, want untouched processing", u.Status)
	}
}

func TestProcessorFailsProcessingWhenIngestionCreateFails(t *testing.T) {
	fx := newProcessorFixture(t, constants.UploadStatusQueued, []byte("bought milk"))
	fx.starter.createErr = errors.New("ingestion store down")

	if err := fx.proc.Process(context.Background(), fx.job.ID); err == nil {
		t.Fatal("expected ingestion create error")
	}
	u, _ := fx.repo.GetUpload(context.Background(), fx.upload.ID)
	if u.Status != constants.UploadStatusFailed {
		t.Errorf("upload status = %s, want failed", u.Status)
	}
	job, _ := fx.repo.GetJob(context.Background(), fx.job.ID)
	if job.Status != constants.UploadJobStatusFailed {
		t.Errorf("job status = %s, want failed", job.Status)
	}
}

func TestProcessorLeavesUploadToRunnerOnExecuteError(t *testing.T) {
	fx := newProcessorFixture(t, constants.UploadStatusQueued, []byte("bought milk"))
	fx.starter.execErr = errors.New("agent blew up")

	if err := fx.proc.Process(context.Background(), fx.job.ID); err == nil {
		t.Fatal("expected execute error")
	}
	job, _ := fx.repo.GetJob(context.Background(), fx.job.ID)
	if job.Status != constants.UploadJobStatusFailed {
		t.Errorf("job status = %s, want failed", job.Status)
	}
	// upload terminal state is owned by the ingestion runner once the job exists
	u, _ := fx.repo.GetUpload(context.Background(), fx.upload.ID)
	if u.Status != constants.UploadStatusProcessing {
		t.Errorf("upload status = %s, want processing", u.Status)
	}
}

func TestPreview(t *testing.T) {
	if got := preview("  bought\n\n2   gallons\tof milk  "); got != "bought 2 gallons of milk" {
		t.Errorf("preview = %q", got)
	}
	long := strings.Repeat("milk ", 100)
	if got := preview(long); len(got) != previewLen {
		t.Errorf("len = %d, want %d", len(got), previewLen)
	}
}

func TestItemsToText(t *testing.T) {
	got := ItemsToText([]extract.ExtractedItem{
		{Name: "milk", Quantity: 2, Unit: "gallon", Action: extract.ActionAdd},
		{Name: "eggs", Quantity: 1, Action: extract.ActionSubtract},
		{Name: "rice", Quantity: 3, Unit: "lb", Action: extract.ActionSet},
	})
	want := "bought 2 gallon of milk\nused 1 unit of eggs\nhave 3 lb of rice"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}
