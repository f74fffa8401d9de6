package employee

import (
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minSSNLength = 9
	maxSSNLength = 11
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Employee は入社オリエンテーションの状態を保持する社員エンティティです。
// フィールドはすべて非公開で、変更はメソッド経由でのみ行います。
type Employee struct {
	id                   string
	firstName            string
	lastName             string
	ssn                  string
	metWithHr            bool
	metDeptStaff         bool
	reviewedDeptPolicies bool
	movedIn              bool
	cubeID               string
	orientationDate      time.Time

	clock  Clock
	report *ReportService
}

// Option は Employee 生成時の挙動を変更します。
type Option func(*Employee)

// WithClock はオリエンテーション日時の取得元を差し替えます。
func WithClock(c Clock) Option {
	return func(e *Employee) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithReportOutput は PrintReport の出力先を差し替えます。
func WithReportOutput(w io.Writer) Option {
	return func(e *Employee) {
		if w != nil {
			e.report.out = w
		}
	}
}

// New は必須項目を検証したうえで Employee を生成します。検証はセッターに委譲します。
func New(firstName, lastName, ssn string, opts ...Option) (*Employee, error) {
	e := &Employee{
		clock:  realClock{},
		report: NewReportService(os.Stdout),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := e.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := e.SetSSN(ssn); err != nil {
		return nil, err
	}
	return e, nil
}

// ID は永続化時に割り当てられた識別子を返します。未保存の場合は空文字列です。
func (e *Employee) ID() string {
	return e.id
}

// AssignID は識別子を設定します。空文字列は拒否します。
func (e *Employee) AssignID(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ErrInvalidID
	}
	e.id = trimmed
	return nil
}

func (e *Employee) FirstName() string {
	return e.firstName
}

// SetFirstName は名を設定します。空の場合は ValidationError を返し、値は変更しません。
func (e *Employee) SetFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return required("first name")
	}
	e.firstName = firstName
	return nil
}

func (e *Employee) LastName() string {
	return e.lastName
}

// SetLastName は姓を設定します。
func (e *Employee) SetLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return required("last name")
	}
	e.lastName = lastName
	return nil
}

func (e *Employee) SSN() string {
	return e.ssn
}

// SetSSN は社会保障番号を設定します。ハイフン込みを許容するため 9〜11 文字を受け付けます。
func (e *Employee) SetSSN(ssn string) error {
	if err := validateSSN(ssn); err != nil {
		return err
	}
	e.ssn = ssn
	return nil
}

func (e *Employee) HasMetWithHr() bool {
	return e.metWithHr
}

func (e *Employee) HasMetDeptStaff() bool {
	return e.metDeptStaff
}

func (e *Employee) HasReviewedDeptPolicies() bool {
	return e.reviewedDeptPolicies
}

func (e *Employee) HasMovedIn() bool {
	return e.movedIn
}

func (e *Employee) CubeID() string {
	return e.cubeID
}

// SetCubeID は座席 ID を設定します。
func (e *Employee) SetCubeID(cubeID string) error {
	if strings.TrimSpace(cubeID) == "" {
		return required("cube id")
	}
	e.cubeID = cubeID
	return nil
}

// OrientationDate はオリエンテーション日時を UTC で返します。未設定の場合はゼロ値です。
func (e *Employee) OrientationDate() time.Time {
	return e.orientationDate
}

// SetOrientationDate はオリエンテーション日時を設定します。ゼロ値は拒否します。
// レポートの日付が保存先のタイムゾーンに左右されないよう UTC に揃えて保持します。
func (e *Employee) SetOrientationDate(date time.Time) error {
	if date.IsZero() {
		return required("orientation date")
	}
	e.orientationDate = date.UTC()
	return nil
}

// Report は社員が所有するレポートを返します。
func (e *Employee) Report() *ReportService {
	return e.report
}

// PrintReport は蓄積されたレポートを出力します。
func (e *Employee) PrintReport() error {
	return e.report.OutputReport()
}

func (e *Employee) String() string {
	return "Employee{firstName=" + e.firstName + ", lastName=" + e.lastName + ", ssn=" + e.ssn + "}"
}

func validateSSN(ssn string) error {
	n := utf8.RuneCountInString(ssn)
	if strings.TrimSpace(ssn) == "" || n < minSSNLength || n > maxSSNLength {
		return invalid("ssn", "%s and must be between %d and %d characters (if hyphens are used)", requiredMsg, minSSNLength, maxSSNLength)
	}
	return nil
}
