package handler

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ogurasousui/employee-onboarding/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const timestampLayout = time.RFC3339Nano

// OnboardingGrpcHandler は OnboardingService の gRPC 実装です。
type OnboardingGrpcHandler struct {
	svc employee.UseCase
}

var _ OnboardingServiceServer = (*OnboardingGrpcHandler)(nil)

// NewOnboardingGrpcHandler は OnboardingGrpcHandler を生成します。
func NewOnboardingGrpcHandler(svc employee.UseCase) *OnboardingGrpcHandler {
	return &OnboardingGrpcHandler{svc: svc}
}

// RegisterEmployee は社員を登録します。
func (h *OnboardingGrpcHandler) RegisterEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := employee.RegisterEmployeeInput{}
	var err error
	if in.FirstName, err = stringField(req, "first_name"); err != nil {
		return nil, err
	}
	if in.LastName, err = stringField(req, "last_name"); err != nil {
		return nil, err
	}
	if in.SSN, err = stringField(req, "ssn"); err != nil {
		return nil, err
	}

	created, err := h.svc.RegisterEmployee(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployee(created)
}

// GetEmployee は社員を取得します。
func (h *OnboardingGrpcHandler) GetEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetEmployee(ctx, employee.GetEmployeeInput{ID: id})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployee(found)
}

// ListEmployees は社員の一覧を取得します。
func (h *OnboardingGrpcHandler) ListEmployees(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	pageSize, err := intField(req, "page_size")
	if err != nil {
		return nil, err
	}
	pageToken, err := stringField(req, "page_token")
	if err != nil {
		return nil, err
	}
	movedIn, err := optionalBoolField(req, "moved_in")
	if err != nil {
		return nil, err
	}

	result, err := h.svc.ListEmployees(ctx, employee.ListEmployeesInput{
		PageSize:  pageSize,
		PageToken: pageToken,
		MovedIn:   movedIn,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	employees := make([]any, 0, len(result.Employees))
	for _, s := range result.Employees {
		employees = append(employees, employeeFields(s))
	}

	resp, err := structpb.NewStruct(map[string]any{
		"employees":       employees,
		"next_page_token": result.NextPageToken,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return resp, nil
}

// UpdateEmployee は指定された項目だけを更新します。
func (h *OnboardingGrpcHandler) UpdateEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req)
	if err != nil {
		return nil, err
	}

	in := employee.UpdateEmployeeInput{ID: id}
	if in.FirstName, err = optionalStringField(req, "first_name"); err != nil {
		return nil, err
	}
	if in.LastName, err = optionalStringField(req, "last_name"); err != nil {
		return nil, err
	}
	if in.SSN, err = optionalStringField(req, "ssn"); err != nil {
		return nil, err
	}
	if in.CubeID, err = optionalStringField(req, "cube_id"); err != nil {
		return nil, err
	}

	rawDate, err := optionalStringField(req, "orientation_date")
	if err != nil {
		return nil, err
	}
	if rawDate != nil {
		date, err := parseTimestamp(*rawDate)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("orientation_date: %v", err))
		}
		in.OrientationDate = &date
	}

	updated, err := h.svc.UpdateEmployee(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployee(updated)
}

// DeleteEmployee は社員を削除します。
func (h *OnboardingGrpcHandler) DeleteEmployee(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	id, err := requireID(req)
	if err != nil {
		return nil, err
	}

	if err := h.svc.DeleteEmployee(ctx, employee.DeleteEmployeeInput{ID: id}); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// StartOrientation は初回オリエンテーションを実行します。
func (h *OnboardingGrpcHandler) StartOrientation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req)
	if err != nil {
		return nil, err
	}
	cubeID, err := stringField(req, "cube_id")
	if err != nil {
		return nil, err
	}

	updated, err := h.svc.StartOrientation(ctx, employee.StartOrientationInput{ID: id, CubeID: cubeID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployee(updated)
}

// ReviewDeptPolicies は部署ポリシー確認を記録します。
func (h *OnboardingGrpcHandler) ReviewDeptPolicies(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req)
	if err != nil {
		return nil, err
	}

	updated, err := h.svc.ReviewDeptPolicies(ctx, employee.ReviewDeptPoliciesInput{ID: id})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployee(updated)
}

// MoveIntoCubicle は座席移動を記録します。
func (h *OnboardingGrpcHandler) MoveIntoCubicle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req)
	if err != nil {
		return nil, err
	}
	cubeID, err := stringField(req, "cube_id")
	if err != nil {
		return nil, err
	}

	updated, err := h.svc.MoveIntoCubicle(ctx, employee.MoveIntoCubicleInput{ID: id, CubeID: cubeID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployee(updated)
}

// GetReport はレポート本文を返します。
func (h *OnboardingGrpcHandler) GetReport(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	id, err := requireID(req)
	if err != nil {
		return nil, err
	}

	report, err := h.svc.GetReport(ctx, employee.GetReportInput{ID: id})
	if err != nil {
		return nil, toStatusError(err)
	}
	return wrapperspb.String(report), nil
}

// ClearReport はレポートを空にします。
func (h *OnboardingGrpcHandler) ClearReport(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	id, err := requireID(req)
	if err != nil {
		return nil, err
	}

	if err := h.svc.ClearReport(ctx, employee.ClearReportInput{ID: id}); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

func toProtoEmployee(s *employee.Snapshot) (*structpb.Struct, error) {
	if s == nil {
		return nil, status.Error(codes.Internal, "empty employee")
	}
	resp, err := structpb.NewStruct(employeeFields(s))
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode employee: %v", err))
	}
	return resp, nil
}

func employeeFields(s *employee.Snapshot) map[string]any {
	return map[string]any{
		"id":                     s.ID,
		"first_name":             s.FirstName,
		"last_name":              s.LastName,
		"ssn":                    s.SSN,
		"met_with_hr":            s.MetWithHr,
		"met_dept_staff":         s.MetDeptStaff,
		"reviewed_dept_policies": s.ReviewedDeptPolicies,
		"moved_in":               s.MovedIn,
		"cube_id":                s.CubeID,
		"orientation_date":       formatTimestamp(s.OrientationDate),
		"created_at":             formatTimestamp(s.CreatedAt),
		"updated_at":             formatTimestamp(s.UpdatedAt),
	}
}

func requireID(req *structpb.Struct) (string, error) {
	if req == nil {
		return "", status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := stringField(req, "id")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(id) == "" {
		return "", status.Error(codes.InvalidArgument, "id is required")
	}
	return id, nil
}

// stringField は文字列フィールドを返します。存在しない場合は空文字列です。
func stringField(req *structpb.Struct, name string) (string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a string", name))
	}
	return s.StringValue, nil
}

func optionalStringField(req *structpb.Struct, name string) (*string, error) {
	if _, ok := req.GetFields()[name]; !ok {
		return nil, nil
	}
	value, err := stringField(req, name)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func intField(req *structpb.Struct, name string) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || n.NumberValue > math.MaxInt32 || n.NumberValue < math.MinInt32 {
		return 0, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be an integer", name))
	}
	return int(n.NumberValue), nil
}

func optionalBoolField(req *structpb.Struct, name string) (*bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a bool", name))
	}
	value := b.BoolValue
	return &value, nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid format, expected RFC 3339")
	}
	return t, nil
}
