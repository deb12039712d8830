package grpc

// proto.go defines the gRPC server interface for credit.v1.CreditRiskService.
// Messages travel with the JSON codec, so the descriptor is maintained by hand.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "credit.v1.CreditRiskService"

// Full method names, used by the role policy and in tests.
const (
	MethodComputeSnapshot         = "/" + ServiceName + "/ComputeSnapshot"
	MethodGetEvaluation           = "/" + ServiceName + "/GetEvaluation"
	MethodDecideRequest           = "/" + ServiceName + "/DecideRequest"
	MethodDecideLoanRequest       = "/" + ServiceName + "/DecideLoanRequest"
	MethodDecideSettlementRequest = "/" + ServiceName + "/DecideSettlementRequest"
	MethodSubmitLoanRequest       = "/" + ServiceName + "/SubmitLoanRequest"
	MethodSubmitSettlementRequest = "/" + ServiceName + "/SubmitSettlementRequest"
	MethodListLoans               = "/" + ServiceName + "/ListLoans"
	MethodListPaymentHistory      = "/" + ServiceName + "/ListPaymentHistory"
	MethodProbabilityOfDefault    = "/" + ServiceName + "/ProbabilityOfDefault"
	MethodClassifyRisk            = "/" + ServiceName + "/ClassifyRisk"
)

// CreditRiskServiceServer is the server API for CreditRiskService.
type CreditRiskServiceServer interface {
	ComputeSnapshot(context.Context, *ComputeSnapshotRequest) (*ComputeSnapshotResponse, error)
	GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationResponse, error)
	DecideRequest(context.Context, *DecideRequestRequest) (*DecideRequestResponse, error)
	DecideLoanRequest(context.Context, *DecideLoanRequestRequest) (*DecideLoanRequestResponse, error)
	DecideSettlementRequest(context.Context, *DecideSettlementRequestRequest) (*DecideSettlementRequestResponse, error)
	SubmitLoanRequest(context.Context, *SubmitLoanRequestRequest) (*SubmitLoanRequestResponse, error)
	SubmitSettlementRequest(context.Context, *SubmitSettlementRequestRequest) (*SubmitSettlementRequestResponse, error)
	ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error)
	ListPaymentHistory(context.Context, *ListPaymentHistoryRequest) (*ListPaymentHistoryResponse, error)
	ProbabilityOfDefault(context.Context, *ProbabilityOfDefaultRequest) (*ProbabilityOfDefaultResponse, error)
	ClassifyRisk(context.Context, *ClassifyRiskRequest) (*ClassifyRiskResponse, error)
	mustEmbedUnimplementedCreditRiskServiceServer()
}

// UnimplementedCreditRiskServiceServer provides forward-compatible default implementations.
type UnimplementedCreditRiskServiceServer struct{}

func (UnimplementedCreditRiskServiceServer) ComputeSnapshot(context.Context, *ComputeSnapshotRequest) (*ComputeSnapshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeSnapshot not implemented")
}
func (UnimplementedCreditRiskServiceServer) GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluation not implemented")
}
func (UnimplementedCreditRiskServiceServer) DecideRequest(context.Context, *DecideRequestRequest) (*DecideRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideRequest not implemented")
}
func (UnimplementedCreditRiskServiceServer) DecideLoanRequest(context.Context, *DecideLoanRequestRequest) (*DecideLoanRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideLoanRequest not implemented")
}
func (UnimplementedCreditRiskServiceServer) DecideSettlementRequest(context.Context, *DecideSettlementRequestRequest) (*DecideSettlementRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideSettlementRequest not implemented")
}
func (UnimplementedCreditRiskServiceServer) SubmitLoanRequest(context.Context, *SubmitLoanRequestRequest) (*SubmitLoanRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitLoanRequest not implemented")
}
func (UnimplementedCreditRiskServiceServer) SubmitSettlementRequest(context.Context, *SubmitSettlementRequestRequest) (*SubmitSettlementRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitSettlementRequest not implemented")
}
func (UnimplementedCreditRiskServiceServer) ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedCreditRiskServiceServer) ListPaymentHistory(context.Context, *ListPaymentHistoryRequest) (*ListPaymentHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPaymentHistory not implemented")
}
func (UnimplementedCreditRiskServiceServer) ProbabilityOfDefault(context.Context, *ProbabilityOfDefaultRequest) (*ProbabilityOfDefaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProbabilityOfDefault not implemented")
}
func (UnimplementedCreditRiskServiceServer) ClassifyRisk(context.Context, *ClassifyRiskRequest) (*ClassifyRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClassifyRisk not implemented")
}
func (UnimplementedCreditRiskServiceServer) mustEmbedUnimplementedCreditRiskServiceServer() {}

// RegisterCreditRiskServiceServer registers srv with the gRPC server.
func RegisterCreditRiskServiceServer(s grpclib.ServiceRegistrar, srv CreditRiskServiceServer) {
	s.RegisterService(&_CreditRiskService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CreditRiskService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CreditRiskServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ComputeSnapshot", Handler: _CreditRiskService_ComputeSnapshot_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetEvaluation", Handler: _CreditRiskService_GetEvaluation_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "DecideRequest", Handler: _CreditRiskService_DecideRequest_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "DecideLoanRequest", Handler: _CreditRiskService_DecideLoanRequest_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "DecideSettlementRequest", Handler: _CreditRiskService_DecideSettlementRequest_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "SubmitLoanRequest", Handler: _CreditRiskService_SubmitLoanRequest_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "SubmitSettlementRequest", Handler: _CreditRiskService_SubmitSettlementRequest_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ListLoans", Handler: _CreditRiskService_ListLoans_Handler},                             //nolint:revive // gRPC handler registration
		{MethodName: "ListPaymentHistory", Handler: _CreditRiskService_ListPaymentHistory_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ProbabilityOfDefault", Handler: _CreditRiskService_ProbabilityOfDefault_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ClassifyRisk", Handler: _CreditRiskService_ClassifyRisk_Handler},                       //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_ComputeSnapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeSnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).ComputeSnapshot(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodComputeSnapshot,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).ComputeSnapshot(ctx, req.(*ComputeSnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_GetEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).GetEvaluation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodGetEvaluation,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).GetEvaluation(ctx, req.(*GetEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_DecideRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).DecideRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodDecideRequest,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).DecideRequest(ctx, req.(*DecideRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_DecideLoanRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideLoanRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).DecideLoanRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodDecideLoanRequest,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).DecideLoanRequest(ctx, req.(*DecideLoanRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_DecideSettlementRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideSettlementRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).DecideSettlementRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodDecideSettlementRequest,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).DecideSettlementRequest(ctx, req.(*DecideSettlementRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_SubmitLoanRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitLoanRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).SubmitLoanRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodSubmitLoanRequest,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).SubmitLoanRequest(ctx, req.(*SubmitLoanRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_SubmitSettlementRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitSettlementRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).SubmitSettlementRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodSubmitSettlementRequest,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).SubmitSettlementRequest(ctx, req.(*SubmitSettlementRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).ListLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodListLoans,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).ListLoans(ctx, req.(*ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_ListPaymentHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPaymentHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).ListPaymentHistory(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodListPaymentHistory,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).ListPaymentHistory(ctx, req.(*ListPaymentHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_ProbabilityOfDefault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProbabilityOfDefaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).ProbabilityOfDefault(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodProbabilityOfDefault,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).ProbabilityOfDefault(ctx, req.(*ProbabilityOfDefaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditRiskService_ClassifyRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyRiskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).ClassifyRisk(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodClassifyRisk,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).ClassifyRisk(ctx, req.(*ClassifyRiskRequest))
	}
	return interceptor(ctx, in, info, handler)
}
