// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: pantry/v1/pantry.proto

package pantryv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ExtractionService_ParseText_FullMethodName  = "/pantry.v1.ExtractionService/ParseText"
	ExtractionService_ParseImage_FullMethodName = "/pantry.v1.ExtractionService/ParseImage"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionService is the synchronous parse surface. Pure: nothing is
// written to inventory.
type ExtractionServiceClient interface {
	ParseText(ctx context.Context, in *ParseTextRequest, opts ...grpc.CallOption) (*ParseResponse, error)
	ParseImage(ctx context.Context, in *ParseImageRequest, opts ...grpc.CallOption) (*ParseResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) ParseText(ctx context.Context, in *ParseTextRequest, opts ...grpc.CallOption) (*ParseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ParseText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ParseImage(ctx context.Context, in *ParseImageRequest, opts ...grpc.CallOption) (*ParseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ParseImage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
//
// ExtractionService is the synchronous parse surface. Pure: nothing is
// written to inventory.
type ExtractionServiceServer interface {
	ParseText(context.Context, *ParseTextRequest) (*ParseResponse, error)
	ParseImage(context.Context, *ParseImageRequest) (*ParseResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) ParseText(context.Context, *ParseTextRequest) (*ParseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseText not implemented")
}
func (UnimplementedExtractionServiceServer) ParseImage(context.Context, *ParseImageRequest) (*ParseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseImage not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_ParseText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ParseText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ParseText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ParseText(ctx, req.(*ParseTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ParseImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ParseImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ParseImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ParseImage(ctx, req.(*ParseImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseText",
			Handler:    _ExtractionService_ParseText_Handler,
		},
		{
			MethodName: "ParseImage",
			Handler:    _ExtractionService_ParseImage_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/pantry.proto",
}

const (
	InventoryService_ApplyUpdates_FullMethodName = "/pantry.v1.InventoryService/ApplyUpdates"
)

// InventoryServiceClient is the client API for InventoryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InventoryService mutates the caller's inventory in validated batches.
type InventoryServiceClient interface {
	ApplyUpdates(ctx context.Context, in *ApplyUpdatesRequest, opts ...grpc.CallOption) (*ApplyUpdatesResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc}
}

func (c *inventoryServiceClient) ApplyUpdates(ctx context.Context, in *ApplyUpdatesRequest, opts ...grpc.CallOption) (*ApplyUpdatesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApplyUpdatesResponse)
	err := c.cc.Invoke(ctx, InventoryService_ApplyUpdates_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InventoryServiceServer is the server API for InventoryService service.
// All implementations must embed UnimplementedInventoryServiceServer
// for forward compatibility.
//
// InventoryService mutates the caller's inventory in validated batches.
type InventoryServiceServer interface {
	ApplyUpdates(context.Context, *ApplyUpdatesRequest) (*ApplyUpdatesResponse, error)
	mustEmbedUnimplementedInventoryServiceServer()
}

// UnimplementedInventoryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) ApplyUpdates(context.Context, *ApplyUpdatesRequest) (*ApplyUpdatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyUpdates not implemented")
}
func (UnimplementedInventoryServiceServer) mustEmbedUnimplementedInventoryServiceServer() {}
func (UnimplementedInventoryServiceServer) testEmbeddedByValue()                          {}

// UnsafeInventoryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InventoryServiceServer will
// result in compilation errors.
type UnsafeInventoryServiceServer interface {
	mustEmbedUnimplementedInventoryServiceServer()
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	// If the following call pancis, it indicates UnimplementedInventoryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

func _InventoryService_ApplyUpdates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyUpdatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ApplyUpdates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ApplyUpdates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ApplyUpdates(ctx, req.(*ApplyUpdatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InventoryService_ServiceDesc is the grpc.ServiceDesc for InventoryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ApplyUpdates",
			Handler:    _InventoryService_ApplyUpdates_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/pantry.proto",
}

const (
	IngestionService_RunAgent_FullMethodName           = "/pantry.v1.IngestionService/RunAgent"
	IngestionService_CreateIngestionJob_FullMethodName = "/pantry.v1.IngestionService/CreateIngestionJob"
	IngestionService_GetIngestionJob_FullMethodName    = "/pantry.v1.IngestionService/GetIngestionJob"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// IngestionService runs the tool-mediated agent flow, inline or as a durable
// async job.
type IngestionServiceClient interface {
	RunAgent(ctx context.Context, in *RunAgentRequest, opts ...grpc.CallOption) (*RunAgentResponse, error)
	CreateIngestionJob(ctx context.Context, in *CreateIngestionJobRequest, opts ...grpc.CallOption) (*IngestionJob, error)
	GetIngestionJob(ctx context.Context, in *GetIngestionJobRequest, opts ...grpc.CallOption) (*IngestionJob, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) RunAgent(ctx context.Context, in *RunAgentRequest, opts ...grpc.CallOption) (*RunAgentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunAgentResponse)
	err := c.cc.Invoke(ctx, IngestionService_RunAgent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) CreateIngestionJob(ctx context.Context, in *CreateIngestionJobRequest, opts ...grpc.CallOption) (*IngestionJob, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestionJob)
	err := c.cc.Invoke(ctx, IngestionService_CreateIngestionJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) GetIngestionJob(ctx context.Context, in *GetIngestionJobRequest, opts ...grpc.CallOption) (*IngestionJob, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestionJob)
	err := c.cc.Invoke(ctx, IngestionService_GetIngestionJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
//
// IngestionService runs the tool-mediated agent flow, inline or as a durable
// async job.
type IngestionServiceServer interface {
	RunAgent(context.Context, *RunAgentRequest) (*RunAgentResponse, error)
	CreateIngestionJob(context.Context, *CreateIngestionJobRequest) (*IngestionJob, error)
	GetIngestionJob(context.Context, *GetIngestionJobRequest) (*IngestionJob, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) RunAgent(context.Context, *RunAgentRequest) (*RunAgentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunAgent not implemented")
}
func (UnimplementedIngestionServiceServer) CreateIngestionJob(context.Context, *CreateIngestionJobRequest) (*IngestionJob, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateIngestionJob not implemented")
}
func (UnimplementedIngestionServiceServer) GetIngestionJob(context.Context, *GetIngestionJobRequest) (*IngestionJob, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetIngestionJob not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_RunAgent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunAgentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).RunAgent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_RunAgent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).RunAgent(ctx, req.(*RunAgentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_CreateIngestionJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateIngestionJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).CreateIngestionJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_CreateIngestionJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).CreateIngestionJob(ctx, req.(*CreateIngestionJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_GetIngestionJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetIngestionJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).GetIngestionJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_GetIngestionJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).GetIngestionJob(ctx, req.(*GetIngestionJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunAgent",
			Handler:    _IngestionService_RunAgent_Handler,
		},
		{
			MethodName: "CreateIngestionJob",
			Handler:    _IngestionService_CreateIngestionJob_Handler,
		},
		{
			MethodName: "GetIngestionJob",
			Handler:    _IngestionService_GetIngestionJob_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/pantry.proto",
}

const (
	UploadsService_ReserveUpload_FullMethodName = "/pantry.v1.UploadsService/ReserveUpload"
	UploadsService_QueueUpload_FullMethodName   = "/pantry.v1.UploadsService/QueueUpload"
	UploadsService_GetUpload_FullMethodName     = "/pantry.v1.UploadsService/GetUpload"
)

// UploadsServiceClient is the client API for UploadsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// UploadsService is the async file pipeline: reserve a signed URL, confirm
// the write, poll status.
type UploadsServiceClient interface {
	ReserveUpload(ctx context.Context, in *ReserveUploadRequest, opts ...grpc.CallOption) (*ReserveUploadResponse, error)
	QueueUpload(ctx context.Context, in *QueueUploadRequest, opts ...grpc.CallOption) (*QueueUploadResponse, error)
	GetUpload(ctx context.Context, in *GetUploadRequest, opts ...grpc.CallOption) (*Upload, error)
}

type uploadsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUploadsServiceClient(cc grpc.ClientConnInterface) UploadsServiceClient {
	return &uploadsServiceClient{cc}
}

func (c *uploadsServiceClient) ReserveUpload(ctx context.Context, in *ReserveUploadRequest, opts ...grpc.CallOption) (*ReserveUploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReserveUploadResponse)
	err := c.cc.Invoke(ctx, UploadsService_ReserveUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uploadsServiceClient) QueueUpload(ctx context.Context, in *QueueUploadRequest, opts ...grpc.CallOption) (*QueueUploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(QueueUploadResponse)
	err := c.cc.Invoke(ctx, UploadsService_QueueUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uploadsServiceClient) GetUpload(ctx context.Context, in *GetUploadRequest, opts ...grpc.CallOption) (*Upload, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Upload)
	err := c.cc.Invoke(ctx, UploadsService_GetUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UploadsServiceServer is the server API for UploadsService service.
// All implementations must embed UnimplementedUploadsServiceServer
// for forward compatibility.
//
// UploadsService is the async file pipeline: reserve a signed URL, confirm
// the write, poll status.
type UploadsServiceServer interface {
	ReserveUpload(context.Context, *ReserveUploadRequest) (*ReserveUploadResponse, error)
	QueueUpload(context.Context, *QueueUploadRequest) (*QueueUploadResponse, error)
	GetUpload(context.Context, *GetUploadRequest) (*Upload, error)
	mustEmbedUnimplementedUploadsServiceServer()
}

// UnimplementedUploadsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUploadsServiceServer struct{}

func (UnimplementedUploadsServiceServer) ReserveUpload(context.Context, *ReserveUploadRequest) (*ReserveUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReserveUpload not implemented")
}
func (UnimplementedUploadsServiceServer) QueueUpload(context.Context, *QueueUploadRequest) (*QueueUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QueueUpload not implemented")
}
func (UnimplementedUploadsServiceServer) GetUpload(context.Context, *GetUploadRequest) (*Upload, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUpload not implemented")
}
func (UnimplementedUploadsServiceServer) mustEmbedUnimplementedUploadsServiceServer() {}
func (UnimplementedUploadsServiceServer) testEmbeddedByValue()                        {}

// UnsafeUploadsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UploadsServiceServer will
// result in compilation errors.
type UnsafeUploadsServiceServer interface {
	mustEmbedUnimplementedUploadsServiceServer()
}

func RegisterUploadsServiceServer(s grpc.ServiceRegistrar, srv UploadsServiceServer) {
	// If the following call pancis, it indicates UnimplementedUploadsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UploadsService_ServiceDesc, srv)
}

func _UploadsService_ReserveUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReserveUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadsServiceServer).ReserveUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadsService_ReserveUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadsServiceServer).ReserveUpload(ctx, req.(*ReserveUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UploadsService_QueueUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueueUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadsServiceServer).QueueUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadsService_QueueUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadsServiceServer).QueueUpload(ctx, req.(*QueueUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UploadsService_GetUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadsServiceServer).GetUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadsService_GetUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadsServiceServer).GetUpload(ctx, req.(*GetUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UploadsService_ServiceDesc is the grpc.ServiceDesc for UploadsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UploadsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.UploadsService",
	HandlerType: (*UploadsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReserveUpload",
			Handler:    _UploadsService_ReserveUpload_Handler,
		},
		{
			MethodName: "QueueUpload",
			Handler:    _UploadsService_QueueUpload_Handler,
		},
		{
			MethodName: "GetUpload",
			Handler:    _UploadsService_GetUpload_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/pantry.proto",
}

const (
	MetricsService_GetMetrics_FullMethodName = "/pantry.v1.MetricsService/GetMetrics"
)

// MetricsServiceClient is the client API for MetricsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MetricsService exposes aggregated interaction snapshots.
type MetricsServiceClient interface {
	GetMetrics(ctx context.Context, in *GetMetricsRequest, opts ...grpc.CallOption) (*GetMetricsResponse, error)
}

type metricsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMetricsServiceClient(cc grpc.ClientConnInterface) MetricsServiceClient {
	return &metricsServiceClient{cc}
}

func (c *metricsServiceClient) GetMetrics(ctx context.Context, in *GetMetricsRequest, opts ...grpc.CallOption) (*GetMetricsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMetricsResponse)
	err := c.cc.Invoke(ctx, MetricsService_GetMetrics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MetricsServiceServer is the server API for MetricsService service.
// All implementations must embed UnimplementedMetricsServiceServer
// for forward compatibility.
//
// MetricsService exposes aggregated interaction snapshots.
type MetricsServiceServer interface {
	GetMetrics(context.Context, *GetMetricsRequest) (*GetMetricsResponse, error)
	mustEmbedUnimplementedMetricsServiceServer()
}

// UnimplementedMetricsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMetricsServiceServer struct{}

func (UnimplementedMetricsServiceServer) GetMetrics(context.Context, *GetMetricsRequest) (*GetMetricsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMetrics not implemented")
}
func (UnimplementedMetricsServiceServer) mustEmbedUnimplementedMetricsServiceServer() {}
func (UnimplementedMetricsServiceServer) testEmbeddedByValue()                        {}

// UnsafeMetricsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MetricsServiceServer will
// result in compilation errors.
type UnsafeMetricsServiceServer interface {
	mustEmbedUnimplementedMetricsServiceServer()
}

func RegisterMetricsServiceServer(s grpc.ServiceRegistrar, srv MetricsServiceServer) {
	// If the following call pancis, it indicates UnimplementedMetricsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MetricsService_ServiceDesc, srv)
}

func _MetricsService_GetMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMetricsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MetricsServiceServer).GetMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MetricsService_GetMetrics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MetricsServiceServer).GetMetrics(ctx, req.(*GetMetricsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MetricsService_ServiceDesc is the grpc.ServiceDesc for MetricsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MetricsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.MetricsService",
	HandlerType: (*MetricsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMetrics",
			Handler:    _MetricsService_GetMetrics_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/pantry.proto",
}
