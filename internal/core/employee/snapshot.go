package employee

import "time"

// Snapshot は Employee の永続化用の値です。リポジトリはこの型を介してのみ内部状態にアクセスします。
type Snapshot struct {
	ID                   string
	FirstName            string
	LastName             string
	SSN                  string
	MetWithHr            bool
	MetDeptStaff         bool
	ReviewedDeptPolicies bool
	MovedIn              bool
	CubeID               string
	OrientationDate      time.Time
	Report               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Snapshot は現在の状態を Snapshot に写します。CreatedAt/UpdatedAt は呼び出し側が設定します。
func (e *Employee) Snapshot() Snapshot {
	return Snapshot{
		ID:                   e.id,
		FirstName:            e.firstName,
		LastName:             e.lastName,
		SSN:                  e.ssn,
		MetWithHr:            e.metWithHr,
		MetDeptStaff:         e.metDeptStaff,
		ReviewedDeptPolicies: e.reviewedDeptPolicies,
		MovedIn:              e.movedIn,
		CubeID:               e.cubeID,
		OrientationDate:      e.orientationDate,
		Report:               e.report.Text(),
	}
}

// Restore は Snapshot から Employee を復元します。識別項目はセッターと同じ規則で検証します。
func Restore(s Snapshot, opts ...Option) (*Employee, error) {
	e, err := New(s.FirstName, s.LastName, s.SSN, opts...)
	if err != nil {
		return nil, err
	}

	if s.ID != "" {
		if err := e.AssignID(s.ID); err != nil {
			return nil, err
		}
	}
	if s.CubeID != "" {
		if err := e.SetCubeID(s.CubeID); err != nil {
			return nil, err
		}
	}
	if !s.OrientationDate.IsZero() {
		if err := e.SetOrientationDate(s.OrientationDate); err != nil {
			return nil, err
		}
	}

	e.metWithHr = s.MetWithHr
	e.metDeptStaff = s.MetDeptStaff
	e.reviewedDeptPolicies = s.ReviewedDeptPolicies
	e.movedIn = s.MovedIn
	e.report.AddData(s.Report)
	return e, nil
}
