package employee

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は永続化された社員に対するオンボーディングのユースケースをまとめます。
// 1 回の呼び出しごとに社員を読み込み、エンティティの操作を 1 つ実行して保存します。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
	newID func() string
}

// UseCase はオンボーディングユースケースの公開インターフェースです。
type UseCase interface {
	RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*Snapshot, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Snapshot, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Snapshot, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error
	StartOrientation(ctx context.Context, in StartOrientationInput) (*Snapshot, error)
	ReviewDeptPolicies(ctx context.Context, in ReviewDeptPoliciesInput) (*Snapshot, error)
	MoveIntoCubicle(ctx context.Context, in MoveIntoCubicleInput) (*Snapshot, error)
	GetReport(ctx context.Context, in GetReportInput) (string, error)
	ClearReport(ctx context.Context, in ClearReportInput) error
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx, newID: uuid.NewString}
}

// RegisterEmployeeInput は社員登録時の入力です。
type RegisterEmployeeInput struct {
	FirstName string
	LastName  string
	SSN       string
}

// UpdateEmployeeInput は社員更新時の入力です。nil の項目は変更しません。
type UpdateEmployeeInput struct {
	ID              string
	FirstName       *string
	LastName        *string
	SSN             *string
	CubeID          *string
	OrientationDate *time.Time
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	ID string
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	PageSize  int
	PageToken string
	MovedIn   *bool
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees     []*Snapshot
	NextPageToken string
}

// StartOrientationInput は初回オリエンテーション実行時の入力です。
type StartOrientationInput struct {
	ID     string
	CubeID string
}

// ReviewDeptPoliciesInput は部署ポリシー確認の入力です。
type ReviewDeptPoliciesInput struct {
	ID string
}

// MoveIntoCubicleInput は座席移動の入力です。
type MoveIntoCubicleInput struct {
	ID     string
	CubeID string
}

// GetReportInput はレポート取得の入力です。
type GetReportInput struct {
	ID string
}

// ClearReportInput はレポート消去の入力です。
type ClearReportInput struct {
	ID string
}

// RegisterEmployee は必須項目を検証し、新しい社員を登録します。
func (s *Service) RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*Snapshot, error) {
	emp, err := New(in.FirstName, in.LastName, in.SSN)
	if err != nil {
		return nil, err
	}
	if err := emp.AssignID(s.newID()); err != nil {
		return nil, err
	}

	var created *Snapshot
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		snap := emp.Snapshot()
		snap.CreatedAt = now
		snap.UpdatedAt = now

		result, err := s.repo.Create(txCtx, &snap)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Snapshot, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var result *Snapshot
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は社員の一覧を取得します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		employees []*Snapshot
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, token, err := s.repo.List(txCtx, ListEmployeesFilter{
			MovedIn: in.MovedIn,
			Limit:   limit,
			Offset:  offset,
		})
		if err != nil {
			return err
		}
		employees = found
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListEmployeesResult{Employees: employees, NextPageToken: nextToken}, nil
}

// UpdateEmployee はセッター経由で社員情報を更新します。いずれかの検証に失敗した場合は何も保存しません。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Snapshot, error) {
	return s.mutate(ctx, in.ID, func(emp *Employee) error {
		if in.FirstName != nil {
			if err := emp.SetFirstName(*in.FirstName); err != nil {
				return err
			}
		}
		if in.LastName != nil {
			if err := emp.SetLastName(*in.LastName); err != nil {
				return err
			}
		}
		if in.SSN != nil {
			if err := emp.SetSSN(*in.SSN); err != nil {
				return err
			}
		}
		if in.CubeID != nil {
			if err := emp.SetCubeID(*in.CubeID); err != nil {
				return err
			}
		}
		if in.OrientationDate != nil {
			if err := emp.SetOrientationDate(*in.OrientationDate); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteEmployee は社員を削除します。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error {
	id, err := normalizeID(in.ID)
	if err != nil {
		return err
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
}

// StartOrientation は初回オリエンテーションを実行します。
// 座席 ID の検証に失敗した場合も、先行する 3 ステップの結果は保存したうえでエラーを返します。
func (s *Service) StartOrientation(ctx context.Context, in StartOrientationInput) (*Snapshot, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var (
		updated   *Snapshot
		orientErr error
	)
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, err := s.load(txCtx, id)
		if err != nil {
			return err
		}

		orientErr = emp.DoFirstTimeOrientation(in.CubeID)

		result, err := s.save(txCtx, emp)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	if orientErr != nil {
		return nil, orientErr
	}
	return updated, nil
}

// ReviewDeptPolicies は部署ポリシー確認を単独で記録します。
func (s *Service) ReviewDeptPolicies(ctx context.Context, in ReviewDeptPoliciesInput) (*Snapshot, error) {
	return s.mutate(ctx, in.ID, func(emp *Employee) error {
		emp.ReviewDeptPolicies()
		return nil
	})
}

// MoveIntoCubicle は座席移動を単独で記録します。
func (s *Service) MoveIntoCubicle(ctx context.Context, in MoveIntoCubicleInput) (*Snapshot, error) {
	return s.mutate(ctx, in.ID, func(emp *Employee) error {
		return emp.MoveIntoCubicle(in.CubeID)
	})
}

// GetReport は社員のレポート本文を返します。
func (s *Service) GetReport(ctx context.Context, in GetReportInput) (string, error) {
	found, err := s.GetEmployee(ctx, GetEmployeeInput{ID: in.ID})
	if err != nil {
		return "", err
	}
	return found.Report, nil
}

// ClearReport は社員のレポートを空にします。
func (s *Service) ClearReport(ctx context.Context, in ClearReportInput) error {
	_, err := s.mutate(ctx, in.ID, func(emp *Employee) error {
		emp.Report().ClearReport()
		return nil
	})
	return err
}

// mutate は社員を読み込み fn を適用して保存します。fn がエラーを返した場合は保存しません。
func (s *Service) mutate(ctx context.Context, rawID string, fn func(*Employee) error) (*Snapshot, error) {
	id, err := normalizeID(rawID)
	if err != nil {
		return nil, err
	}

	var updated *Snapshot
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, err := s.load(txCtx, id)
		if err != nil {
			return err
		}

		if err := fn(emp); err != nil {
			return err
		}

		result, err := s.save(txCtx, emp)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) load(ctx context.Context, id string) (*Employee, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrEmployeeNotFound
	}

	emp, err := Restore(*found, WithClock(s.clock))
	if err != nil {
		return nil, fmt.Errorf("employee: restore %s: %w", id, err)
	}
	return emp, nil
}

func (s *Service) save(ctx context.Context, emp *Employee) (*Snapshot, error) {
	snap := emp.Snapshot()
	snap.UpdatedAt = s.clock.Now()

	result, err := s.repo.Update(ctx, &snap)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("employee: save %s: %w", snap.ID, err)
	}
	return result, nil
}

// normalizeID は ID を UUID として検証し、正規形に揃えます。
func normalizeID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("id: %w", ErrInvalidID)
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("id %q: %w", trimmed, ErrInvalidID)
	}
	return parsed.String(), nil
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
