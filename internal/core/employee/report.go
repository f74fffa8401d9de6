package employee

import (
	"io"
	"os"
	"strings"
)

// ReportService は社員の作業ログを追記専用で蓄積します。
// 1 つの Employee が専有し、他のインスタンスと共有しません。
type ReportService struct {
	buf strings.Builder
	out io.Writer
}

// NewReportService は空のレポートを生成します。out が nil の場合は標準出力に書き込みます。
func NewReportService(out io.Writer) *ReportService {
	if out == nil {
		out = os.Stdout
	}
	return &ReportService{out: out}
}

// AddData は text をそのまま末尾に追加します。区切り文字は呼び出し側の責務です。
func (r *ReportService) AddData(text string) {
	r.buf.WriteString(text)
}

// OutputReport は現在のレポート全体を 1 回の書き込みで出力します。内容はクリアしません。
func (r *ReportService) OutputReport() error {
	if r.buf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.out, r.buf.String())
	return err
}

// ClearReport はレポートを空にします。
func (r *ReportService) ClearReport() {
	r.buf.Reset()
}

// Text は現在のレポート内容を返します。
func (r *ReportService) Text() string {
	return r.buf.String()
}
