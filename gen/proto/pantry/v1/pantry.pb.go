// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: pantry/v1/pantry.proto

package pantryv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ParseTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextRequest) Reset() {
	*x = ParseTextRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextRequest) ProtoMessage() {}

func (x *ParseTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextRequest.ProtoReflect.Descriptor instead.
func (*ParseTextRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{0}
}

func (x *ParseTextRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ParseTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ParseImageRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	UserId      string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Image       []byte                 `protobuf:"bytes,2,opt,name=image,proto3" json:"image,omitempty"`
	ContentType string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	// "image_receipt" or "image_list"; defaults to receipt handling.
	SourceHint    string `protobuf:"bytes,4,opt,name=source_hint,json=sourceHint,proto3" json:"source_hint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseImageRequest) Reset() {
	*x = ParseImageRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseImageRequest) ProtoMessage() {}

func (x *ParseImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseImageRequest.ProtoReflect.Descriptor instead.
func (*ParseImageRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{1}
}

func (x *ParseImageRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ParseImageRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ParseImageRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ParseImageRequest) GetSourceHint() string {
	if x != nil {
		return x.SourceHint
	}
	return ""
}

type ExtractedItem struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Name     string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Quantity float64                `protobuf:"fixed64,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Unit     string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	// "add", "subtract" or "set".
	Action            string   `protobuf:"bytes,4,opt,name=action,proto3" json:"action,omitempty"`
	Category          string   `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	Location          string   `protobuf:"bytes,6,opt,name=location,proto3" json:"location,omitempty"`
	LowStockThreshold *float64 `protobuf:"fixed64,7,opt,name=low_stock_threshold,json=lowStockThreshold,proto3,oneof" json:"low_stock_threshold,omitempty"`
	// RFC 3339 instant. clear_expiration distinguishes "remove the stored
	// date" from "no opinion".
	Expiration      *string `protobuf:"bytes,8,opt,name=expiration,proto3,oneof" json:"expiration,omitempty"`
	ClearExpiration bool    `protobuf:"varint,9,opt,name=clear_expiration,json=clearExpiration,proto3" json:"clear_expiration,omitempty"`
	Notes           string  `protobuf:"bytes,10,opt,name=notes,proto3" json:"notes,omitempty"`
	Confidence      float64 `protobuf:"fixed64,11,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Brand           string  `protobuf:"bytes,12,opt,name=brand,proto3" json:"brand,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExtractedItem) Reset() {
	*x = ExtractedItem{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedItem) ProtoMessage() {}

func (x *ExtractedItem) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedItem.ProtoReflect.Descriptor instead.
func (*ExtractedItem) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractedItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExtractedItem) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ExtractedItem) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *ExtractedItem) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *ExtractedItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ExtractedItem) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *ExtractedItem) GetLowStockThreshold() float64 {
	if x != nil && x.LowStockThreshold != nil {
		return *x.LowStockThreshold
	}
	return 0
}

func (x *ExtractedItem) GetExpiration() string {
	if x != nil && x.Expiration != nil {
		return *x.Expiration
	}
	return ""
}

func (x *ExtractedItem) GetClearExpiration() bool {
	if x != nil {
		return x.ClearExpiration
	}
	return false
}

func (x *ExtractedItem) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *ExtractedItem) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractedItem) GetBrand() string {
	if x != nil {
		return x.Brand
	}
	return ""
}

type ParseResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Items             []*ExtractedItem       `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	OverallConfidence float64                `protobuf:"fixed64,2,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	NeedsReview       bool                   `protobuf:"varint,3,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	UsedFallback      bool                   `protobuf:"varint,4,opt,name=used_fallback,json=usedFallback,proto3" json:"used_fallback,omitempty"`
	// Advisory extraction error; items may still be present.
	Error         string `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseResponse) Reset() {
	*x = ParseResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseResponse) ProtoMessage() {}

func (x *ParseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseResponse.ProtoReflect.Descriptor instead.
func (*ParseResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{3}
}

func (x *ParseResponse) GetItems() []*ExtractedItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ParseResponse) GetOverallConfidence() float64 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *ParseResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ParseResponse) GetUsedFallback() bool {
	if x != nil {
		return x.UsedFallback
	}
	return false
}

func (x *ParseResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ApplyUpdatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Updates       []*ExtractedItem       `protobuf:"bytes,2,rep,name=updates,proto3" json:"updates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyUpdatesRequest) Reset() {
	*x = ApplyUpdatesRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyUpdatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyUpdatesRequest) ProtoMessage() {}

func (x *ApplyUpdatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyUpdatesRequest.ProtoReflect.Descriptor instead.
func (*ApplyUpdatesRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{4}
}

func (x *ApplyUpdatesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ApplyUpdatesRequest) GetUpdates() []*ExtractedItem {
	if x != nil {
		return x.Updates
	}
	return nil
}

type ApplyOutcome struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Id      string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name    string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Success bool                   `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	// "created" or "updated".
	ResultAction  string   `protobuf:"bytes,4,opt,name=result_action,json=resultAction,proto3" json:"result_action,omitempty"`
	Quantity      *float64 `protobuf:"fixed64,5,opt,name=quantity,proto3,oneof" json:"quantity,omitempty"`
	LowStock      bool     `protobuf:"varint,6,opt,name=low_stock,json=lowStock,proto3" json:"low_stock,omitempty"`
	Message       string   `protobuf:"bytes,7,opt,name=message,proto3" json:"message,omitempty"`
	Error         string   `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyOutcome) Reset() {
	*x = ApplyOutcome{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyOutcome) ProtoMessage() {}

func (x *ApplyOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyOutcome.ProtoReflect.Descriptor instead.
func (*ApplyOutcome) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{5}
}

func (x *ApplyOutcome) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ApplyOutcome) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ApplyOutcome) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ApplyOutcome) GetResultAction() string {
	if x != nil {
		return x.ResultAction
	}
	return ""
}

func (x *ApplyOutcome) GetQuantity() float64 {
	if x != nil && x.Quantity != nil {
		return *x.Quantity
	}
	return 0
}

func (x *ApplyOutcome) GetLowStock() bool {
	if x != nil {
		return x.LowStock
	}
	return false
}

func (x *ApplyOutcome) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ApplyOutcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ApplySummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Successful    int32                  `protobuf:"varint,2,opt,name=successful,proto3" json:"successful,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplySummary) Reset() {
	*x = ApplySummary{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplySummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplySummary) ProtoMessage() {}

func (x *ApplySummary) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplySummary.ProtoReflect.Descriptor instead.
func (*ApplySummary) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{6}
}

func (x *ApplySummary) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ApplySummary) GetSuccessful() int32 {
	if x != nil {
		return x.Successful
	}
	return 0
}

func (x *ApplySummary) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ApplyUpdatesResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Success          bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Outcomes         []*ApplyOutcome        `protobuf:"bytes,2,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	Summary          *ApplySummary          `protobuf:"bytes,3,opt,name=summary,proto3" json:"summary,omitempty"`
	ValidationErrors []string               `protobuf:"bytes,4,rep,name=validation_errors,json=validationErrors,proto3" json:"validation_errors,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ApplyUpdatesResponse) Reset() {
	*x = ApplyUpdatesResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyUpdatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyUpdatesResponse) ProtoMessage() {}

func (x *ApplyUpdatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyUpdatesResponse.ProtoReflect.Descriptor instead.
func (*ApplyUpdatesResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{7}
}

func (x *ApplyUpdatesResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ApplyUpdatesResponse) GetOutcomes() []*ApplyOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

func (x *ApplyUpdatesResponse) GetSummary() *ApplySummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

func (x *ApplyUpdatesResponse) GetValidationErrors() []string {
	if x != nil {
		return x.ValidationErrors
	}
	return nil
}

type RunAgentRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Text   string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	// Opaque JSON, stored on the job.
	MetadataJson  string `protobuf:"bytes,3,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunAgentRequest) Reset() {
	*x = RunAgentRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunAgentRequest) ProtoMessage() {}

func (x *RunAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunAgentRequest.ProtoReflect.Descriptor instead.
func (*RunAgentRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{8}
}

func (x *RunAgentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *RunAgentRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *RunAgentRequest) GetMetadataJson() string {
	if x != nil {
		return x.MetadataJson
	}
	return ""
}

type RunAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Response      string                 `protobuf:"bytes,2,opt,name=response,proto3" json:"response,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunAgentResponse) Reset() {
	*x = RunAgentResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunAgentResponse) ProtoMessage() {}

func (x *RunAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunAgentResponse.ProtoReflect.Descriptor instead.
func (*RunAgentResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{9}
}

func (x *RunAgentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *RunAgentResponse) GetResponse() string {
	if x != nil {
		return x.Response
	}
	return ""
}

type CreateIngestionJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	MetadataJson  string                 `protobuf:"bytes,3,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateIngestionJobRequest) Reset() {
	*x = CreateIngestionJobRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateIngestionJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateIngestionJobRequest) ProtoMessage() {}

func (x *CreateIngestionJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateIngestionJobRequest.ProtoReflect.Descriptor instead.
func (*CreateIngestionJobRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{10}
}

func (x *CreateIngestionJobRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateIngestionJobRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *CreateIngestionJobRequest) GetMetadataJson() string {
	if x != nil {
		return x.MetadataJson
	}
	return ""
}

type GetIngestionJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetIngestionJobRequest) Reset() {
	*x = GetIngestionJobRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetIngestionJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetIngestionJobRequest) ProtoMessage() {}

func (x *GetIngestionJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetIngestionJobRequest.ProtoReflect.Descriptor instead.
func (*GetIngestionJobRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{11}
}

func (x *GetIngestionJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type IngestionJob struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Id     string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// "pending", "completed" or "failed".
	Status        string `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	InputText     string `protobuf:"bytes,4,opt,name=input_text,json=inputText,proto3" json:"input_text,omitempty"`
	UploadId      string `protobuf:"bytes,5,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	AgentResponse string `protobuf:"bytes,6,opt,name=agent_response,json=agentResponse,proto3" json:"agent_response,omitempty"`
	ResultSummary string `protobuf:"bytes,7,opt,name=result_summary,json=resultSummary,proto3" json:"result_summary,omitempty"`
	LastError     string `protobuf:"bytes,8,opt,name=last_error,json=lastError,proto3" json:"last_error,omitempty"`
	CreatedAt     string `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	FinishedAt    string `protobuf:"bytes,10,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestionJob) Reset() {
	*x = IngestionJob{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestionJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestionJob) ProtoMessage() {}

func (x *IngestionJob) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestionJob.ProtoReflect.Descriptor instead.
func (*IngestionJob) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{12}
}

func (x *IngestionJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *IngestionJob) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *IngestionJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *IngestionJob) GetInputText() string {
	if x != nil {
		return x.InputText
	}
	return ""
}

func (x *IngestionJob) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *IngestionJob) GetAgentResponse() string {
	if x != nil {
		return x.AgentResponse
	}
	return ""
}

func (x *IngestionJob) GetResultSummary() string {
	if x != nil {
		return x.ResultSummary
	}
	return ""
}

func (x *IngestionJob) GetLastError() string {
	if x != nil {
		return x.LastError
	}
	return ""
}

func (x *IngestionJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *IngestionJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ReserveUploadRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	UserId      string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename    string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	SizeBytes   int64                  `protobuf:"varint,4,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	// "text", "pdf", "image_receipt", "image_list"; inferred from
	// content_type when empty.
	SourceHint    string `protobuf:"bytes,5,opt,name=source_hint,json=sourceHint,proto3" json:"source_hint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReserveUploadRequest) Reset() {
	*x = ReserveUploadRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReserveUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReserveUploadRequest) ProtoMessage() {}

func (x *ReserveUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReserveUploadRequest.ProtoReflect.Descriptor instead.
func (*ReserveUploadRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{13}
}

func (x *ReserveUploadRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ReserveUploadRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ReserveUploadRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ReserveUploadRequest) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *ReserveUploadRequest) GetSourceHint() string {
	if x != nil {
		return x.SourceHint
	}
	return ""
}

type ReserveUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadId      string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	UploadUrl     string                 `protobuf:"bytes,2,opt,name=upload_url,json=uploadUrl,proto3" json:"upload_url,omitempty"`
	StoragePath   string                 `protobuf:"bytes,3,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	Bucket        string                 `protobuf:"bytes,4,opt,name=bucket,proto3" json:"bucket,omitempty"`
	UrlExpiresAt  string                 `protobuf:"bytes,5,opt,name=url_expires_at,json=urlExpiresAt,proto3" json:"url_expires_at,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReserveUploadResponse) Reset() {
	*x = ReserveUploadResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReserveUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReserveUploadResponse) ProtoMessage() {}

func (x *ReserveUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReserveUploadResponse.ProtoReflect.Descriptor instead.
func (*ReserveUploadResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{14}
}

func (x *ReserveUploadResponse) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *ReserveUploadResponse) GetUploadUrl() string {
	if x != nil {
		return x.UploadUrl
	}
	return ""
}

func (x *ReserveUploadResponse) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *ReserveUploadResponse) GetBucket() string {
	if x != nil {
		return x.Bucket
	}
	return ""
}

func (x *ReserveUploadResponse) GetUrlExpiresAt() string {
	if x != nil {
		return x.UrlExpiresAt
	}
	return ""
}

func (x *ReserveUploadResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type QueueUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadId      string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueueUploadRequest) Reset() {
	*x = QueueUploadRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueueUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueueUploadRequest) ProtoMessage() {}

func (x *QueueUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueueUploadRequest.ProtoReflect.Descriptor instead.
func (*QueueUploadRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{15}
}

func (x *QueueUploadRequest) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

type QueueUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadId      string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueueUploadResponse) Reset() {
	*x = QueueUploadResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueueUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueueUploadResponse) ProtoMessage() {}

func (x *QueueUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueueUploadResponse.ProtoReflect.Descriptor instead.
func (*QueueUploadResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{16}
}

func (x *QueueUploadResponse) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *QueueUploadResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *QueueUploadResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadId      string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUploadRequest) Reset() {
	*x = GetUploadRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUploadRequest) ProtoMessage() {}

func (x *GetUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUploadRequest.ProtoReflect.Descriptor instead.
func (*GetUploadRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{17}
}

func (x *GetUploadRequest) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

type Upload struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId           string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename         string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType      string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	SourceType       string                 `protobuf:"bytes,5,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	Status           string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	LastError        string                 `protobuf:"bytes,7,opt,name=last_error,json=lastError,proto3" json:"last_error,omitempty"`
	IngestionJobId   string                 `protobuf:"bytes,8,opt,name=ingestion_job_id,json=ingestionJobId,proto3" json:"ingestion_job_id,omitempty"`
	TextPreview      string                 `protobuf:"bytes,9,opt,name=text_preview,json=textPreview,proto3" json:"text_preview,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,12,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	SizeBytes        int64                  `protobuf:"varint,13,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	Bucket           string                 `protobuf:"bytes,14,opt,name=bucket,proto3" json:"bucket,omitempty"`
	StoragePath      string                 `protobuf:"bytes,15,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	ProcessingJobId  string                 `protobuf:"bytes,16,opt,name=processing_job_id,json=processingJobId,proto3" json:"processing_job_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Upload) Reset() {
	*x = Upload{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Upload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Upload) ProtoMessage() {}

func (x *Upload) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Upload.ProtoReflect.Descriptor instead.
func (*Upload) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{18}
}

func (x *Upload) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Upload) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Upload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Upload) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Upload) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *Upload) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Upload) GetLastError() string {
	if x != nil {
		return x.LastError
	}
	return ""
}

func (x *Upload) GetIngestionJobId() string {
	if x != nil {
		return x.IngestionJobId
	}
	return ""
}

func (x *Upload) GetTextPreview() string {
	if x != nil {
		return x.TextPreview
	}
	return ""
}

func (x *Upload) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Upload) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Upload) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Upload) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *Upload) GetBucket() string {
	if x != nil {
		return x.Bucket
	}
	return ""
}

func (x *Upload) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *Upload) GetProcessingJobId() string {
	if x != nil {
		return x.ProcessingJobId
	}
	return ""
}

type GetMetricsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// "global" or a UTC date "2006-01-02". Empty means global.
	Key           string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMetricsRequest) Reset() {
	*x = GetMetricsRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMetricsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMetricsRequest) ProtoMessage() {}

func (x *GetMetricsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMetricsRequest.ProtoReflect.Descriptor instead.
func (*GetMetricsRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{19}
}

func (x *GetMetricsRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

type MetricsSnapshot struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Key              string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Total            int64                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	SuccessCount     int64                  `protobuf:"varint,3,opt,name=success_count,json=successCount,proto3" json:"success_count,omitempty"`
	FallbackCount    int64                  `protobuf:"varint,4,opt,name=fallback_count,json=fallbackCount,proto3" json:"fallback_count,omitempty"`
	LatencySumMs     int64                  `protobuf:"varint,5,opt,name=latency_sum_ms,json=latencySumMs,proto3" json:"latency_sum_ms,omitempty"`
	ConfidenceSum    float64                `protobuf:"fixed64,6,opt,name=confidence_sum,json=confidenceSum,proto3" json:"confidence_sum,omitempty"`
	LatencyLt_2S     int64                  `protobuf:"varint,7,opt,name=latency_lt_2s,json=latencyLt2s,proto3" json:"latency_lt_2s,omitempty"`
	Latency_2S_5S    int64                  `protobuf:"varint,8,opt,name=latency_2s_5s,json=latency2s5s,proto3" json:"latency_2s_5s,omitempty"`
	LatencyGt_5S     int64                  `protobuf:"varint,9,opt,name=latency_gt_5s,json=latencyGt5s,proto3" json:"latency_gt_5s,omitempty"`
	ConfidenceLow    int64                  `protobuf:"varint,10,opt,name=confidence_low,json=confidenceLow,proto3" json:"confidence_low,omitempty"`
	ConfidenceMedium int64                  `protobuf:"varint,11,opt,name=confidence_medium,json=confidenceMedium,proto3" json:"confidence_medium,omitempty"`
	ConfidenceHigh   int64                  `protobuf:"varint,12,opt,name=confidence_high,json=confidenceHigh,proto3" json:"confidence_high,omitempty"`
	SuccessRate      float64                `protobuf:"fixed64,13,opt,name=success_rate,json=successRate,proto3" json:"success_rate,omitempty"`
	FallbackRate     float64                `protobuf:"fixed64,14,opt,name=fallback_rate,json=fallbackRate,proto3" json:"fallback_rate,omitempty"`
	AvgLatencyMs     float64                `protobuf:"fixed64,15,opt,name=avg_latency_ms,json=avgLatencyMs,proto3" json:"avg_latency_ms,omitempty"`
	AvgConfidence    float64                `protobuf:"fixed64,16,opt,name=avg_confidence,json=avgConfidence,proto3" json:"avg_confidence,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *MetricsSnapshot) Reset() {
	*x = MetricsSnapshot{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MetricsSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MetricsSnapshot) ProtoMessage() {}

func (x *MetricsSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MetricsSnapshot.ProtoReflect.Descriptor instead.
func (*MetricsSnapshot) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{20}
}

func (x *MetricsSnapshot) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *MetricsSnapshot) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *MetricsSnapshot) GetSuccessCount() int64 {
	if x != nil {
		return x.SuccessCount
	}
	return 0
}

func (x *MetricsSnapshot) GetFallbackCount() int64 {
	if x != nil {
		return x.FallbackCount
	}
	return 0
}

func (x *MetricsSnapshot) GetLatencySumMs() int64 {
	if x != nil {
		return x.LatencySumMs
	}
	return 0
}

func (x *MetricsSnapshot) GetConfidenceSum() float64 {
	if x != nil {
		return x.ConfidenceSum
	}
	return 0
}

func (x *MetricsSnapshot) GetLatencyLt_2S() int64 {
	if x != nil {
		return x.LatencyLt_2S
	}
	return 0
}

func (x *MetricsSnapshot) GetLatency_2S_5S() int64 {
	if x != nil {
		return x.Latency_2S_5S
	}
	return 0
}

func (x *MetricsSnapshot) GetLatencyGt_5S() int64 {
	if x != nil {
		return x.LatencyGt_5S
	}
	return 0
}

func (x *MetricsSnapshot) GetConfidenceLow() int64 {
	if x != nil {
		return x.ConfidenceLow
	}
	return 0
}

func (x *MetricsSnapshot) GetConfidenceMedium() int64 {
	if x != nil {
		return x.ConfidenceMedium
	}
	return 0
}

func (x *MetricsSnapshot) GetConfidenceHigh() int64 {
	if x != nil {
		return x.ConfidenceHigh
	}
	return 0
}

func (x *MetricsSnapshot) GetSuccessRate() float64 {
	if x != nil {
		return x.SuccessRate
	}
	return 0
}

func (x *MetricsSnapshot) GetFallbackRate() float64 {
	if x != nil {
		return x.FallbackRate
	}
	return 0
}

func (x *MetricsSnapshot) GetAvgLatencyMs() float64 {
	if x != nil {
		return x.AvgLatencyMs
	}
	return 0
}

func (x *MetricsSnapshot) GetAvgConfidence() float64 {
	if x != nil {
		return x.AvgConfidence
	}
	return 0
}

type GetMetricsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Snapshot      *MetricsSnapshot       `protobuf:"bytes,1,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMetricsResponse) Reset() {
	*x = GetMetricsResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMetricsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMetricsResponse) ProtoMessage() {}

func (x *GetMetricsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMetricsResponse.ProtoReflect.Descriptor instead.
func (*GetMetricsResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{21}
}

func (x *GetMetricsResponse) GetSnapshot() *MetricsSnapshot {
	if x != nil {
		return x.Snapshot
	}
	return nil
}

var File_pantry_v1_pantry_proto protoreflect.FileDescriptor

const file_pantry_v1_pantry_proto_rawDesc = "" +
	"\n" +
	"\x16pantry/v1/pantry.proto\x12\tpantry.v1\"?\n" +
	"\x10ParseTextRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"\x86\x01\n" +
	"\x11ParseImageRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05image\x18\x02 \x01(\fR\x05image\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x1f\n" +
	"\vsource_hint\x18\x04 \x01(\tR\n" +
	"sourceHint\"\x9b\x03\n" +
	"\rExtractedItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x01R\bquantity\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\x12\x16\n" +
	"\x06action\x18\x04 \x01(\tR\x06action\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x1a\n" +
	"\blocation\x18\x06 \x01(\tR\blocation\x123\n" +
	"\x13low_stock_threshold\x18\a \x01(\x01H\x00R\x11lowStockThreshold\x88\x01\x01\x12#\n" +
	"\n" +
	"expiration\x18\b \x01(\tH\x01R\n" +
	"expiration\x88\x01\x01\x12)\n" +
	"\x10clear_expiration\x18\t \x01(\bR\x0fclearExpiration\x12\x14\n" +
	"\x05notes\x18\n" +
	" \x01(\tR\x05notes\x12\x1e\n" +
	"\n" +
	"confidence\x18\v \x01(\x01R\n" +
	"confidence\x12\x14\n" +
	"\x05brand\x18\f \x01(\tR\x05brandB\x16\n" +
	"\x14_low_stock_thresholdB\r\n" +
	"\v_expiration\"\xcc\x01\n" +
	"\rParseResponse\x12.\n" +
	"\x05items\x18\x01 \x03(\v2\x18.pantry.v1.ExtractedItemR\x05items\x12-\n" +
	"\x12overall_confidence\x18\x02 \x01(\x01R\x11overallConfidence\x12!\n" +
	"\fneeds_review\x18\x03 \x01(\bR\vneedsReview\x12#\n" +
	"\rused_fallback\x18\x04 \x01(\bR\fusedFallback\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"b\n" +
	"\x13ApplyUpdatesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x122\n" +
	"\aupdates\x18\x02 \x03(\v2\x18.pantry.v1.ExtractedItemR\aupdates\"\xec\x01\n" +
	"\fApplyOutcome\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\asuccess\x18\x03 \x01(\bR\asuccess\x12#\n" +
	"\rresult_action\x18\x04 \x01(\tR\fresultAction\x12\x1f\n" +
	"\bquantity\x18\x05 \x01(\x01H\x00R\bquantity\x88\x01\x01\x12\x1b\n" +
	"\tlow_stock\x18\x06 \x01(\bR\blowStock\x12\x18\n" +
	"\amessage\x18\a \x01(\tR\amessage\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05errorB\v\n" +
	"\t_quantity\"\\\n" +
	"\fApplySummary\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x1e\n" +
	"\n" +
	"successful\x18\x02 \x01(\x05R\n" +
	"successful\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\"\xc5\x01\n" +
	"\x14ApplyUpdatesResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x123\n" +
	"\boutcomes\x18\x02 \x03(\v2\x17.pantry.v1.ApplyOutcomeR\boutcomes\x121\n" +
	"\asummary\x18\x03 \x01(\v2\x17.pantry.v1.ApplySummaryR\asummary\x12+\n" +
	"\x11validation_errors\x18\x04 \x03(\tR\x10validationErrors\"c\n" +
	"\x0fRunAgentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12#\n" +
	"\rmetadata_json\x18\x03 \x01(\tR\fmetadataJson\"E\n" +
	"\x10RunAgentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1a\n" +
	"\bresponse\x18\x02 \x01(\tR\bresponse\"m\n" +
	"\x19CreateIngestionJobRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12#\n" +
	"\rmetadata_json\x18\x03 \x01(\tR\fmetadataJson\"/\n" +
	"\x16GetIngestionJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\xb8\x02\n" +
	"\fIngestionJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"input_text\x18\x04 \x01(\tR\tinputText\x12\x1b\n" +
	"\tupload_id\x18\x05 \x01(\tR\buploadId\x12%\n" +
	"\x0eagent_response\x18\x06 \x01(\tR\ragentResponse\x12%\n" +
	"\x0eresult_summary\x18\a \x01(\tR\rresultSummary\x12\x1d\n" +
	"\n" +
	"last_error\x18\b \x01(\tR\tlastError\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vfinished_at\x18\n" +
	" \x01(\tR\n" +
	"finishedAt\"\xae\x01\n" +
	"\x14ReserveUploadRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\x04 \x01(\x03R\tsizeBytes\x12\x1f\n" +
	"\vsource_hint\x18\x05 \x01(\tR\n" +
	"sourceHint\"\xcc\x01\n" +
	"\x15ReserveUploadResponse\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12\x1d\n" +
	"\n" +
	"upload_url\x18\x02 \x01(\tR\tuploadUrl\x12!\n" +
	"\fstorage_path\x18\x03 \x01(\tR\vstoragePath\x12\x16\n" +
	"\x06bucket\x18\x04 \x01(\tR\x06bucket\x12$\n" +
	"\x0eurl_expires_at\x18\x05 \x01(\tR\furlExpiresAt\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\"1\n" +
	"\x12QueueUploadRequest\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\"a\n" +
	"\x13QueueUploadResponse\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\"/\n" +
	"\x10GetUploadRequest\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\"\x86\x04\n" +
	"\x06Upload\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12\x1f\n" +
	"\vsource_type\x18\x05 \x01(\tR\n" +
	"sourceType\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"last_error\x18\a \x01(\tR\tlastError\x12(\n" +
	"\x10ingestion_job_id\x18\b \x01(\tR\x0eingestionJobId\x12!\n" +
	"\ftext_preview\x18\t \x01(\tR\vtextPreview\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\x12+\n" +
	"\x11original_filename\x18\f \x01(\tR\x10originalFilename\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\r \x01(\x03R\tsizeBytes\x12\x16\n" +
	"\x06bucket\x18\x0e \x01(\tR\x06bucket\x12!\n" +
	"\fstorage_path\x18\x0f \x01(\tR\vstoragePath\x12*\n" +
	"\x11processing_job_id\x18\x10 \x01(\tR\x0fprocessingJobId\"%\n" +
	"\x11GetMetricsRequest\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\"\xd0\x04\n" +
	"\x0fMetricsSnapshot\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x03R\x05total\x12#\n" +
	"\rsuccess_count\x18\x03 \x01(\x03R\fsuccessCount\x12%\n" +
	"\x0efallback_count\x18\x04 \x01(\x03R\rfallbackCount\x12$\n" +
	"\x0elatency_sum_ms\x18\x05 \x01(\x03R\flatencySumMs\x12%\n" +
	"\x0econfidence_sum\x18\x06 \x01(\x01R\rconfidenceSum\x12\"\n" +
	"\rlatency_lt_2s\x18\a \x01(\x03R\vlatencyLt2s\x12\"\n" +
	"\rlatency_2s_5s\x18\b \x01(\x03R\vlatency2s5s\x12\"\n" +
	"\rlatency_gt_5s\x18\t \x01(\x03R\vlatencyGt5s\x12%\n" +
	"\x0econfidence_low\x18\n" +
	" \x01(\x03R\rconfidenceLow\x12+\n" +
	"\x11confidence_medium\x18\v \x01(\x03R\x10confidenceMedium\x12'\n" +
	"\x0fconfidence_high\x18\f \x01(\x03R\x0econfidenceHigh\x12!\n" +
	"\fsuccess_rate\x18\r \x01(\x01R\vsuccessRate\x12#\n" +
	"\rfallback_rate\x18\x0e \x01(\x01R\ffallbackRate\x12$\n" +
	"\x0eavg_latency_ms\x18\x0f \x01(\x01R\favgLatencyMs\x12%\n" +
	"\x0eavg_confidence\x18\x10 \x01(\x01R\ravgConfidence\"L\n" +
	"\x12GetMetricsResponse\x126\n" +
	"\bsnapshot\x18\x01 \x01(\v2\x1a.pantry.v1.MetricsSnapshotR\bsnapshot2\x9d\x01\n" +
	"\x11ExtractionService\x12B\n" +
	"\tParseText\x12\x1b.pantry.v1.ParseTextRequest\x1a\x18.pantry.v1.ParseResponse\x12D\n" +
	"\n" +
	"ParseImage\x12\x1c.pantry.v1.ParseImageRequest\x1a\x18.pantry.v1.ParseResponse2c\n" +
	"\x10InventoryService\x12O\n" +
	"\fApplyUpdates\x12\x1e.pantry.v1.ApplyUpdatesRequest\x1a\x1f.pantry.v1.ApplyUpdatesResponse2\xfb\x01\n" +
	"\x10IngestionService\x12C\n" +
	"\bRunAgent\x12\x1a.pantry.v1.RunAgentRequest\x1a\x1b.pantry.v1.RunAgentResponse\x12S\n" +
	"\x12CreateIngestionJob\x12$.pantry.v1.CreateIngestionJobRequest\x1a\x17.pantry.v1.IngestionJob\x12M\n" +
	"\x0fGetIngestionJob\x12!.pantry.v1.GetIngestionJobRequest\x1a\x17.pantry.v1.IngestionJob2\xef\x01\n" +
	"\x0eUploadsService\x12R\n" +
	"\rReserveUpload\x12\x1f.pantry.v1.ReserveUploadRequest\x1a .pantry.v1.ReserveUploadResponse\x12L\n" +
	"\vQueueUpload\x12\x1d.pantry.v1.QueueUploadRequest\x1a\x1e.pantry.v1.QueueUploadResponse\x12;\n" +
	"\tGetUpload\x12\x1b.pantry.v1.GetUploadRequest\x1a\x11.pantry.v1.Upload2[\n" +
	"\x0eMetricsService\x12I\n" +
	"\n" +
	"GetMetrics\x12\x1c.pantry.v1.GetMetricsRequest\x1a\x1d.pantry.v1.GetMetricsResponseB;Z9github.com/pantryops/pantryd/gen/proto/pantry/v1;pantryv1b\x06proto3"

var (
	file_pantry_v1_pantry_proto_rawDescOnce sync.Once
	file_pantry_v1_pantry_proto_rawDescData []byte
)

func file_pantry_v1_pantry_proto_rawDescGZIP() []byte {
	file_pantry_v1_pantry_proto_rawDescOnce.Do(func() {
		file_pantry_v1_pantry_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pantry_v1_pantry_proto_rawDesc), len(file_pantry_v1_pantry_proto_rawDesc)))
	})
	return file_pantry_v1_pantry_proto_rawDescData
}

var file_pantry_v1_pantry_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_pantry_v1_pantry_proto_goTypes = []any{
	(*ParseTextRequest)(nil),          // 0: pantry.v1.ParseTextRequest
	(*ParseImageRequest)(nil),         // 1: pantry.v1.ParseImageRequest
	(*ExtractedItem)(nil),             // 2: pantry.v1.ExtractedItem
	(*ParseResponse)(nil),             // 3: pantry.v1.ParseResponse
	(*ApplyUpdatesRequest)(nil),       // 4: pantry.v1.ApplyUpdatesRequest
	(*ApplyOutcome)(nil),              // 5: pantry.v1.ApplyOutcome
	(*ApplySummary)(nil),              // 6: pantry.v1.ApplySummary
	(*ApplyUpdatesResponse)(nil),      // 7: pantry.v1.ApplyUpdatesResponse
	(*RunAgentRequest)(nil),           // 8: pantry.v1.RunAgentRequest
	(*RunAgentResponse)(nil),          // 9: pantry.v1.RunAgentResponse
	(*CreateIngestionJobRequest)(nil), // 10: pantry.v1.CreateIngestionJobRequest
	(*GetIngestionJobRequest)(nil),    // 11: pantry.v1.GetIngestionJobRequest
	(*IngestionJob)(nil),              // 12: pantry.v1.IngestionJob
	(*ReserveUploadRequest)(nil),      // 13: pantry.v1.ReserveUploadRequest
	(*ReserveUploadResponse)(nil),     // 14: pantry.v1.ReserveUploadResponse
	(*QueueUploadRequest)(nil),        // 15: pantry.v1.QueueUploadRequest
	(*QueueUploadResponse)(nil),       // 16: pantry.v1.QueueUploadResponse
	(*GetUploadRequest)(nil),          // 17: pantry.v1.GetUploadRequest
	(*Upload)(nil),                    // 18: pantry.v1.Upload
	(*GetMetricsRequest)(nil),         // 19: pantry.v1.GetMetricsRequest
	(*MetricsSnapshot)(nil),           // 20: pantry.v1.MetricsSnapshot
	(*GetMetricsResponse)(nil),        // 21: pantry.v1.GetMetricsResponse
}
var file_pantry_v1_pantry_proto_depIdxs = []int32{
	2,  // 0: pantry.v1.ParseResponse.items:type_name -> pantry.v1.ExtractedItem
	2,  // 1: pantry.v1.ApplyUpdatesRequest.updates:type_name -> pantry.v1.ExtractedItem
	5,  // 2: pantry.v1.ApplyUpdatesResponse.outcomes:type_name -> pantry.v1.ApplyOutcome
	6,  // 3: pantry.v1.ApplyUpdatesResponse.summary:type_name -> pantry.v1.ApplySummary
	20, // 4: pantry.v1.GetMetricsResponse.snapshot:type_name -> pantry.v1.MetricsSnapshot
	0,  // 5: pantry.v1.ExtractionService.ParseText:input_type -> pantry.v1.ParseTextRequest
	1,  // 6: pantry.v1.ExtractionService.ParseImage:input_type -> pantry.v1.ParseImageRequest
	4,  // 7: pantry.v1.InventoryService.ApplyUpdates:input_type -> pantry.v1.ApplyUpdatesRequest
	8,  // 8: pantry.v1.IngestionService.RunAgent:input_type -> pantry.v1.RunAgentRequest
	10, // 9: pantry.v1.IngestionService.CreateIngestionJob:input_type -> pantry.v1.CreateIngestionJobRequest
	11, // 10: pantry.v1.IngestionService.GetIngestionJob:input_type -> pantry.v1.GetIngestionJobRequest
	13, // 11: pantry.v1.UploadsService.ReserveUpload:input_type -> pantry.v1.ReserveUploadRequest
	15, // 12: pantry.v1.UploadsService.QueueUpload:input_type -> pantry.v1.QueueUploadRequest
	17, // 13: pantry.v1.UploadsService.GetUpload:input_type -> pantry.v1.GetUploadRequest
	19, // 14: pantry.v1.MetricsService.GetMetrics:input_type -> pantry.v1.GetMetricsRequest
	3,  // 15: pantry.v1.ExtractionService.ParseText:output_type -> pantry.v1.ParseResponse
	3,  // 16: pantry.v1.ExtractionService.ParseImage:output_type -> pantry.v1.ParseResponse
	7,  // 17: pantry.v1.InventoryService.ApplyUpdates:output_type -> pantry.v1.ApplyUpdatesResponse
	9,  // 18: pantry.v1.IngestionService.RunAgent:output_type -> pantry.v1.RunAgentResponse
	12, // 19: pantry.v1.IngestionService.CreateIngestionJob:output_type -> pantry.v1.IngestionJob
	12, // 20: pantry.v1.IngestionService.GetIngestionJob:output_type -> pantry.v1.IngestionJob
	14, // 21: pantry.v1.UploadsService.ReserveUpload:output_type -> pantry.v1.ReserveUploadResponse
	16, // 22: pantry.v1.UploadsService.QueueUpload:output_type -> pantry.v1.QueueUploadResponse
	18, // 23: pantry.v1.UploadsService.GetUpload:output_type -> pantry.v1.Upload
	21, // 24: pantry.v1.MetricsService.GetMetrics:output_type -> pantry.v1.GetMetricsResponse
	15, // [15:25] is the sub-list for method output_type
	5,  // [5:15] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_pantry_v1_pantry_proto_init() }
func file_pantry_v1_pantry_proto_init() {
	if File_pantry_v1_pantry_proto != nil {
		return
	}
	file_pantry_v1_pantry_proto_msgTypes[2].OneofWrappers = []any{}
	file_pantry_v1_pantry_proto_msgTypes[5].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pantry_v1_pantry_proto_rawDesc), len(file_pantry_v1_pantry_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_pantry_v1_pantry_proto_goTypes,
		DependencyIndexes: file_pantry_v1_pantry_proto_depIdxs,
		MessageInfos:      file_pantry_v1_pantry_proto_msgTypes,
	}.Build()
	File_pantry_v1_pantry_proto = out.File
	file_pantry_v1_pantry_proto_goTypes = nil
	file_pantry_v1_pantry_proto_depIdxs = nil
}
