package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_PrintsOrientationReport(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-first", "Jane", "-last", "Doe", "-ssn", "123-45-6789", "-cube", "C-12"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run returned error: %v (stderr=%q)", err, stderr.String())
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", stdout.String())
	}
	if !strings.HasPrefix(lines[0], "Jane Doe met with HR on ") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "Jane Doe moved into cubicle C-12 on ") {
		t.Fatalf("unexpected last line %q", lines[3])
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected empty stderr, got %q", stderr.String())
	}
}

func TestRun_InvalidSSN(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-first", "Jane", "-last", "Doe", "-ssn", "123"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no report output, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "ssn is mandatory") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRun_MissingCubePrintsPartialReport(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-first", "Jane", "-last", "Doe", "-ssn", "123456789"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := strings.Count(stdout.String(), "\n"); got != 3 {
		t.Fatalf("expected 3 report lines, got %d: %q", got, stdout.String())
	}
	if !strings.Contains(stderr.String(), "cube id is mandatory") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}
