package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ayoub-D1/downloads-organizer/internal/output"
	"github.com/Ayoub-D1/downloads-organizer/internal/util"
)

func TestLoadTable(t *testing.T) {
	// Empty path yields the built-in table.
	table, err := loadTable("")
	if err != nil {
		t.Fatalf("loadTable failed: %v", err)
	}
	if got := table.Classify("photo.jpg"); got != "images" {
		t.Errorf("Classify(photo.jpg) = %q, want images", got)
	}

	// A rules file replaces it.
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte("categories:\n  pictures: [.jpg]\n"), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}
	table, err = loadTable(path)
	if err != nil {
		t.Fatalf("loadTable failed: %v", err)
	}
	if got := table.Classify("photo.jpg"); got != "pictures" {
		t.Errorf("Classify(photo.jpg) = %q, want pictures", got)
	}

	if _, err := loadTable(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing rules file")
	}
}

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	logger := util.NewLogger(&buf)

	report := output.NewReport("/downloads", logger, false, false)
	report.Record(output.FileResult{Name: "a.jpg", Category: "images", Status: output.StatusMoved})
	report.Record(output.FileResult{Name: "b.jpg", Category: "images", Status: output.StatusMoved})
	report.Record(output.FileResult{Name: "c.pdf", Category: "documents", Status: output.StatusMoved})
	buf.Reset()

	printPlan(logger, report)

	out := buf.String()
	for _, want := range []string{"images/", "documents/", "a.jpg", "c.pdf", "Would move 3 files"} {
		if !strings.Contains(out, want) {
			t.Errorf("Plan missing %q:\n%s", want, out)
		}
	}
	// Categories are listed in sorted order.
	if strings.Index(out, "documents/") > strings.Index(out, "images/") {
		t.Errorf("Expected documents/ before images/:\n%s", out)
	}
}

func TestPrintPlanEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := util.NewLogger(&buf)
	report := output.NewReport("/downloads", logger, false, false)

	printPlan(logger, report)

	if !strings.Contains(buf.String(), "Nothing to move") {
		t.Errorf("Expected 'Nothing to move', got:\n%s", buf.String())
	}
}
