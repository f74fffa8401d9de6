package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ogurasousui/employee-onboarding/internal/core/employee"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run は社員を生成し、初回オリエンテーションを実行してレポートを出力します。
// 検証エラーの表示はこの層の責務です。
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("onboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		firstName = fs.String("first", "", "first name of the new employee")
		lastName  = fs.String("last", "", "last name of the new employee")
		ssn       = fs.String("ssn", "", "social security number, 9 to 11 characters")
		cubeID    = fs.String("cube", "", "cubicle to move into")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	emp, err := employee.New(*firstName, *lastName, *ssn, employee.WithReportOutput(stdout))
	if err != nil {
		fmt.Fprintf(stderr, "cannot create employee: %v\n", err)
		return err
	}

	orientErr := emp.DoFirstTimeOrientation(*cubeID)
	if err := emp.PrintReport(); err != nil {
		fmt.Fprintf(stderr, "cannot print report: %v\n", err)
		return err
	}
	if orientErr != nil {
		fmt.Fprintf(stderr, "orientation incomplete: %v\n", orientErr)
		return orientErr
	}
	return nil
}
