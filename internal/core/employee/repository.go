package employee

import "context"

// Repository は社員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, s *Snapshot) (*Snapshot, error)
	Update(ctx context.Context, s *Snapshot) (*Snapshot, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Snapshot, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*Snapshot, string, error)
}

// ListEmployeesFilter は一覧取得用フィルタです。
type ListEmployeesFilter struct {
	MovedIn *bool
	Limit   int
	Offset  int
}
