package employee

const (
	dateLayout = "1/2/06"
	newline    = "\n"
)

// DoFirstTimeOrientation は初回オリエンテーションを決められた順序で実行します。
// HR 面談、部署スタッフとの顔合わせ、部署ポリシー確認、座席への移動の順です。
// 座席 ID の検証に失敗しても、それまでの 3 ステップの状態とログは残ります。
func (e *Employee) DoFirstTimeOrientation(cubeID string) error {
	e.orientationDate = e.clock.Now().UTC()
	e.meetWithHrForBenefitAndSalaryInfo()
	e.meetDepartmentStaff()
	e.ReviewDeptPolicies()
	return e.MoveIntoCubicle(cubeID)
}

// 入社時に一度だけ行う想定のため非公開です。
func (e *Employee) meetWithHrForBenefitAndSalaryInfo() {
	e.metWithHr = true
	e.report.AddData(e.fullName() + " met with HR on " + e.formattedDate() + newline)
}

func (e *Employee) meetDepartmentStaff() {
	e.metDeptStaff = true
	e.report.AddData(e.fullName() + " met with dept staff on " + e.formattedDate() + newline)
}

// ReviewDeptPolicies は部署ポリシーの確認を記録します。ポリシー改定時に単独で呼ばれることがあります。
//
// 日付は保持中のオリエンテーション日時 (UTC) をそのまま使います。
// オリエンテーション前に呼ばれた場合はゼロ値 (1/1/01) が出力されます。
func (e *Employee) ReviewDeptPolicies() {
	e.reviewedDeptPolicies = true
	e.report.AddData(e.fullName() + " reviewed dept policies on " + e.formattedDate() + newline)
}

// MoveIntoCubicle は座席への移動を記録します。席替えの際に単独で呼ばれることがあります。
func (e *Employee) MoveIntoCubicle(cubeID string) error {
	if err := e.SetCubeID(cubeID); err != nil {
		return err
	}

	e.movedIn = true
	e.report.AddData(e.fullName() + " moved into cubicle " + cubeID + " on " + e.formattedDate() + newline)
	return nil
}

func (e *Employee) fullName() string {
	return e.firstName + " " + e.lastName
}

func (e *Employee) formattedDate() string {
	return e.orientationDate.Format(dateLayout)
}
