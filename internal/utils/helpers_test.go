package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/extract"
	"github.com/pantryops/pantryd/internal/upload"
)

func TestToPBItemCarriesAllFields(t *testing.T) {
	it := extract.ExtractedItem{
		Name:       "Milk",
		Quantity:   2,
		Unit:       "gallon",
		Action:     "add",
		Category:   "dairy",
		Location:   "fridge",
		Brand:      "Acme",
		Notes:      "organic",
		Confidence: 0.9,
		Expiration: common.Some("2026-09-15T00:00:00Z"),
	}

	pb := ToPBItem(it)
	if pb.GetName() != "Milk" || pb.GetBrand() != "Acme" {
		t.Errorf("item = %+v", pb)
	}
	if pb.GetExpiration() != "2026-09-15T00:00:00Z" || pb.GetClearExpiration() {
		t.Errorf("expiration = %q, clear = %v", pb.GetExpiration(), pb.GetClearExpiration())
	}
}

func TestToPBItemClearExpiration(t *testing.T) {
	pb := ToPBItem(extract.ExtractedItem{Name: "Milk", Expiration: common.Null[string]()})
	if !pb.GetClearExpiration() || pb.Expiration != nil {
		t.Errorf("item = %+v", pb)
	}
}

func TestToPBUploadCarriesStorageFields(t *testing.T) {
	size := int64(2048)
	procJob := uuid.New()
	ingJob := uuid.New()
	u := upload.Upload{
		ID:               uuid.New(),
		UserID:           "alice",
		Filename:         "receipt.pdf",
		OriginalFilename: "my receipt (1).pdf",
		ContentType:      "application/pdf",
		SizeBytes:        &size,
		SourceType:       constants.SourcePDF,
		StoragePath:      "uploads/alice/xyz/receipt.pdf",
		Bucket:           "pantry-uploads",
		Status:           constants.UploadStatusCompleted,
		ProcessingJobID:  &procJob,
		IngestionJobID:   &ingJob,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	pb := ToPBUpload(u)
	if pb.GetOriginalFilename() != "my receipt (1).pdf" {
		t.Errorf("original filename = %q", pb.GetOriginalFilename())
	}
	if pb.GetSizeBytes() != 2048 {
		t.Errorf("size = %d, want 2048", pb.GetSizeBytes())
	}
	if pb.GetBucket() != "pantry-uploads" || pb.GetStoragePath() != "uploads/alice/xyz/receipt.pdf" {
		t.Errorf("storage = %q / %q", pb.GetBucket(), pb.GetStoragePath())
	}
	if pb.GetProcessingJobId() != procJob.String() || pb.GetIngestionJobId() != ingJob.String() {
		t.Errorf("job ids = %q / %q", pb.GetProcessingJobId(), pb.GetIngestionJobId())
	}
}

func TestToPBUploadAbsentOptionalFields(t *testing.T) {
	pb := ToPBUpload(upload.Upload{
		ID:     uuid.New(),
		UserID: "alice",
		Status: constants.UploadStatusAwaitingUpload,
	})
	if pb.GetSizeBytes() != 0 || pb.GetProcessingJobId() != "" || pb.GetIngestionJobId() != "" {
		t.Errorf("upload = %+v", pb)
	}
}
