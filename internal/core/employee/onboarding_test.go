package employee

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newOnboardingEmployee(t *testing.T, now time.Time) *Employee {
	t.Helper()

	emp, err := New("Jane", "Doe", "123456789", WithClock(&stubClock{now: now}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return emp
}

func reportLines(emp *Employee) []string {
	return strings.Split(strings.TrimSuffix(emp.Report().Text(), "\n"), "\n")
}

func TestDoFirstTimeOrientation_RunsStepsInOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC)
	emp := newOnboardingEmployee(t, now)

	if err := emp.DoFirstTimeOrientation("C-12"); err != nil {
		t.Fatalf("DoFirstTimeOrientation returned error: %v", err)
	}

	if !emp.HasMetWithHr() || !emp.HasMetDeptStaff() || !emp.HasReviewedDeptPolicies() || !emp.HasMovedIn() {
		t.Fatalf("expected all onboarding flags true")
	}
	if emp.CubeID() != "C-12" {
		t.Fatalf("expected cube id C-12, got %q", emp.CubeID())
	}
	if !emp.OrientationDate().Equal(now) {
		t.Fatalf("expected orientation date %v, got %v", now, emp.OrientationDate())
	}

	want := []string{
		"Jane Doe met with HR on 3/4/24",
		"Jane Doe met with dept staff on 3/4/24",
		"Jane Doe reviewed dept policies on 3/4/24",
		"Jane Doe moved into cubicle C-12 on 3/4/24",
	}
	got := reportLines(emp)
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: want %q got %q", i, want[i], got[i])
		}
	}
}

func TestDoFirstTimeOrientation_MissingCubeKeepsEarlierSteps(t *testing.T) {
	t.Parallel()

	emp := newOnboardingEmployee(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))

	err := emp.DoFirstTimeOrientation("")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	if !emp.HasMetWithHr() || !emp.HasMetDeptStaff() || !emp.HasReviewedDeptPolicies() {
		t.Fatalf("expected the first three steps to stay committed")
	}
	if emp.HasMovedIn() || emp.CubeID() != "" {
		t.Fatalf("expected move-in to be skipped")
	}
	if lines := reportLines(emp); len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
}

func TestReviewDeptPolicies_Independent(t *testing.T) {
	t.Parallel()

	emp := newOnboardingEmployee(t, time.Now())

	emp.ReviewDeptPolicies()

	if !emp.HasReviewedDeptPolicies() {
		t.Fatalf("expected reviewed-policies flag true")
	}
	if emp.HasMetWithHr() || emp.HasMetDeptStaff() || emp.HasMovedIn() {
		t.Fatalf("expected other flags untouched")
	}

	// No orientation yet, so the zero date is rendered.
	if got := emp.Report().Text(); got != "Jane Doe reviewed dept policies on 1/1/01\n" {
		t.Fatalf("unexpected report: %q", got)
	}
}

func TestReviewDeptPolicies_UsesStoredOrientationDate(t *testing.T) {
	t.Parallel()

	emp := newOnboardingEmployee(t, time.Now())
	if err := emp.SetOrientationDate(time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("SetOrientationDate returned error: %v", err)
	}

	emp.ReviewDeptPolicies()

	if got := emp.Report().Text(); got != "Jane Doe reviewed dept policies on 12/25/23\n" {
		t.Fatalf("unexpected report: %q", got)
	}
}

func TestMoveIntoCubicle_Repeated(t *testing.T) {
	t.Parallel()

	emp := newOnboardingEmployee(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	if err := emp.DoFirstTimeOrientation("C-12"); err != nil {
		t.Fatalf("DoFirstTimeOrientation returned error: %v", err)
	}

	if err := emp.MoveIntoCubicle("C-12"); err != nil {
		t.Fatalf("MoveIntoCubicle returned error: %v", err)
	}

	lines := reportLines(emp)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %q", lines)
	}
	if lines[3] != lines[4] {
		t.Fatalf("expected identical move-in lines, got %q and %q", lines[3], lines[4])
	}
	if !emp.HasMovedIn() {
		t.Fatalf("expected moved-in flag true")
	}
}

func TestMoveIntoCubicle_InvalidLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	emp := newOnboardingEmployee(t, time.Now())

	if err := emp.MoveIntoCubicle(" "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if emp.HasMovedIn() {
		t.Fatalf("expected moved-in flag false")
	}
	if emp.Report().Text() != "" {
		t.Fatalf("expected empty report, got %q", emp.Report().Text())
	}
}

func TestOrientationDate_FormattedInUTC(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	emp := newOnboardingEmployee(t, time.Date(2024, 3, 5, 1, 0, 0, 0, tokyo))

	if err := emp.DoFirstTimeOrientation("C-12"); err != nil {
		t.Fatalf("DoFirstTimeOrientation returned error: %v", err)
	}
	if loc := emp.OrientationDate().Location(); loc != time.UTC {
		t.Fatalf("expected UTC orientation date, got %v", loc)
	}
	if got := reportLines(emp)[0]; got != "Jane Doe met with HR on 3/4/24" {
		t.Fatalf("unexpected first line: %q", got)
	}
}

func TestOrientationDate_StableAcrossTimeZoneRoundTrip(t *testing.T) {
	t.Parallel()

	emp := newOnboardingEmployee(t, time.Date(2024, 3, 4, 23, 30, 0, 0, time.UTC))
	if err := emp.DoFirstTimeOrientation("C-12"); err != nil {
		t.Fatalf("DoFirstTimeOrientation returned error: %v", err)
	}

	// timestamptz から読み戻した値はセッションのタイムゾーンで返ります。
	snap := emp.Snapshot()
	snap.OrientationDate = snap.OrientationDate.In(time.FixedZone("JST", 9*60*60))

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if err := restored.MoveIntoCubicle("C-7"); err != nil {
		t.Fatalf("MoveIntoCubicle returned error: %v", err)
	}

	lines := reportLines(restored)
	if got := lines[len(lines)-1]; got != "Jane Doe moved into cubicle C-7 on 3/4/24" {
		t.Fatalf("unexpected last line: %q", got)
	}
}

func TestSetOrientationDate_StoresUTC(t *testing.T) {
	t.Parallel()

	emp := newOnboardingEmployee(t, time.Now())
	date := time.Date(2023, 12, 25, 20, 0, 0, 0, time.FixedZone("PST", -8*60*60))
	if err := emp.SetOrientationDate(date); err != nil {
		t.Fatalf("SetOrientationDate returned error: %v", err)
	}

	if !emp.OrientationDate().Equal(date) || emp.OrientationDate().Location() != time.UTC {
		t.Fatalf("expected %v in UTC, got %v", date, emp.OrientationDate())
	}

	emp.ReviewDeptPolicies()
	if got := emp.Report().Text(); got != "Jane Doe reviewed dept policies on 12/26/23\n" {
		t.Fatalf("unexpected report: %q", got)
	}
}
