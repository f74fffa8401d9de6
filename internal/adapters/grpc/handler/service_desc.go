package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName は OnboardingService の完全修飾名です。
const ServiceName = "onboarding.v1.OnboardingService"

// OnboardingServiceServer は OnboardingService のサーバー側インターフェースです。
// メッセージには protobuf の well-known types を使います。
type OnboardingServiceServer interface {
	RegisterEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteEmployee(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	StartOrientation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReviewDeptPolicies(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MoveIntoCubicle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetReport(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	ClearReport(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

// RegisterOnboardingServiceServer は srv を gRPC サーバーに登録します。
func RegisterOnboardingServiceServer(s grpc.ServiceRegistrar, srv OnboardingServiceServer) {
	s.RegisterService(&OnboardingServiceDesc, srv)
}

// FullMethod は RPC 名から完全修飾メソッド名を組み立てます。
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryHandler は各 RPC の grpc.MethodDesc ハンドラを生成します。
func unaryHandler[Resp any](method string, call func(OnboardingServiceServer, context.Context, *structpb.Struct) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(OnboardingServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*structpb.Struct))
		})
	}
}

// OnboardingServiceDesc は OnboardingService の grpc.ServiceDesc です。
var OnboardingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OnboardingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterEmployee", Handler: unaryHandler("RegisterEmployee", OnboardingServiceServer.RegisterEmployee)},
		{MethodName: "GetEmployee", Handler: unaryHandler("GetEmployee", OnboardingServiceServer.GetEmployee)},
		{MethodName: "ListEmployees", Handler: unaryHandler("ListEmployees", OnboardingServiceServer.ListEmployees)},
		{MethodName: "UpdateEmployee", Handler: unaryHandler("UpdateEmployee", OnboardingServiceServer.UpdateEmployee)},
		{MethodName: "DeleteEmployee", Handler: unaryHandler("DeleteEmployee", OnboardingServiceServer.DeleteEmployee)},
		{MethodName: "StartOrientation", Handler: unaryHandler("StartOrientation", OnboardingServiceServer.StartOrientation)},
		{MethodName: "ReviewDeptPolicies", Handler: unaryHandler("ReviewDeptPolicies", OnboardingServiceServer.ReviewDeptPolicies)},
		{MethodName: "MoveIntoCubicle", Handler: unaryHandler("MoveIntoCubicle", OnboardingServiceServer.MoveIntoCubicle)},
		{MethodName: "GetReport", Handler: unaryHandler("GetReport", OnboardingServiceServer.GetReport)},
		{MethodName: "ClearReport", Handler: unaryHandler("ClearReport", OnboardingServiceServer.ClearReport)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "onboarding/v1/onboarding.proto",
}
