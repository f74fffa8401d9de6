package employee

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestReportService_AddDataConcatenates(t *testing.T) {
	t.Parallel()

	r := NewReportService(&bytes.Buffer{})
	r.AddData("first")
	r.AddData("second")

	if r.Text() != "firstsecond" {
		t.Fatalf("expected verbatim concatenation, got %q", r.Text())
	}
}

func TestReportService_OutputReportSingleWrite(t *testing.T) {
	t.Parallel()

	out := &countingWriter{}
	r := NewReportService(out)
	r.AddData("a\n")
	r.AddData("b\n")

	if err := r.OutputReport(); err != nil {
		t.Fatalf("OutputReport returned error: %v", err)
	}

	if out.writes != 1 {
		t.Fatalf("expected a single write, got %d", out.writes)
	}
	if out.String() != "a\nb\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if r.Text() != "a\nb\n" {
		t.Fatalf("expected buffer to be kept after output, got %q", r.Text())
	}
}

func TestReportService_ClearThenOutputIsEmpty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := NewReportService(&out)
	r.AddData("line\n")
	r.ClearReport()

	if err := r.OutputReport(); err != nil {
		t.Fatalf("OutputReport returned error: %v", err)
	}

	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
	if r.Text() != "" {
		t.Fatalf("expected empty buffer, got %q", r.Text())
	}
}

func TestReportService_OutputReportWriterError(t *testing.T) {
	t.Parallel()

	r := NewReportService(failingWriter{})
	r.AddData("line\n")

	if err := r.OutputReport(); err == nil {
		t.Fatal("expected writer error")
	}
}
