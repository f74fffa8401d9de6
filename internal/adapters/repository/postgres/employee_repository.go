package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/employee-onboarding/internal/core/employee"
	pgdb "github.com/ogurasousui/employee-onboarding/internal/platform/db/postgres"
)

const (
	uniqueViolationCode      = "23505"
	invalidTextCode          = "22P02"
	serializationFailureCode = "40001"
)

const employeeColumns = `id, first_name, last_name, ssn,
               met_with_hr, met_dept_staff, reviewed_dept_policies, moved_in,
               cube_id, orientation_date, report, created_at, updated_at`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, s *employee.Snapshot) (*employee.Snapshot, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (id, first_name, last_name, ssn,
                               met_with_hr, met_dept_staff, reviewed_dept_policies, moved_in,
                               cube_id, orientation_date, report, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING `+employeeColumns,
		s.ID,
		s.FirstName,
		s.LastName,
		s.SSN,
		s.MetWithHr,
		s.MetDeptStaff,
		s.ReviewedDeptPolicies,
		s.MovedIn,
		nullableString(s.CubeID),
		nullableTime(s.OrientationDate),
		s.Report,
		s.CreatedAt,
		s.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return created, nil
}

// Update は社員の状態とレポートを上書きします。
func (r *EmployeeRepository) Update(ctx context.Context, s *employee.Snapshot) (*employee.Snapshot, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employees
           SET first_name = $1,
               last_name = $2,
               ssn = $3,
               met_with_hr = $4,
               met_dept_staff = $5,
               reviewed_dept_policies = $6,
               moved_in = $7,
               cube_id = $8,
               orientation_date = $9,
               report = $10,
               updated_at = $11
         WHERE id = $12
        RETURNING `+employeeColumns,
		s.FirstName,
		s.LastName,
		s.SSN,
		s.MetWithHr,
		s.MetDeptStaff,
		s.ReviewedDeptPolicies,
		s.MovedIn,
		nullableString(s.CubeID),
		nullableTime(s.OrientationDate),
		s.Report,
		s.UpdatedAt,
		s.ID,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return updated, nil
}

// Delete は社員を削除します。
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Snapshot, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return found, nil
}

// List は社員の一覧を作成日時の新しい順に取得します。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Snapshot, string, error) {
	if filter.Limit <= 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1
	args := make([]any, 0, 3)

	whereClause := ""
	if filter.MovedIn != nil {
		args = append(args, *filter.MovedIn)
		whereClause = "\n         WHERE moved_in = $" + strconv.Itoa(len(args))
	}

	args = append(args, limitWithBuffer)
	limitPlaceholder := "$" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	offsetPlaceholder := "$" + strconv.Itoa(len(args))

	query := `
        SELECT ` + employeeColumns + `
          FROM employees` + whereClause + `
         ORDER BY created_at DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translatePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Snapshot, 0, filter.Limit)
	for rows.Next() {
		s, err := scanEmployee(rows)
		if err != nil {
			return nil, "", translatePgError(err)
		}
		employees = append(employees, s)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translatePgError(err)
	}

	var nextToken string
	if len(employees) == limitWithBuffer {
		employees = employees[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return employees, nextToken, nil
}

func scanEmployee(row pgx.Row) (*employee.Snapshot, error) {
	var (
		s               employee.Snapshot
		cubeID          sql.NullString
		orientationDate sql.NullTime
	)

	if err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.SSN,
		&s.MetWithHr,
		&s.MetDeptStaff,
		&s.ReviewedDeptPolicies,
		&s.MovedIn,
		&cubeID,
		&orientationDate,
		&s.Report,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	if cubeID.Valid {
		s.CubeID = cubeID.String
	}
	if orientationDate.Valid {
		s.OrientationDate = orientationDate.Time
	}
	return &s, nil
}

func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return employee.ErrEmployeeAlreadyExists
		case invalidTextCode:
			return employee.ErrInvalidID
		case serializationFailureCode:
			return employee.ErrConcurrentUpdate
		}
	}
	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableTime(value time.Time) any {
	if value.IsZero() {
		return nil
	}
	return value
}
