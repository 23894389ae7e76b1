package patch

// patch_test.go — before/after tests for the boilerplate header edits.
//
// Fixtures live in testdata/patch.txtar: for each header, the archive
// holds the pristine input and the exact expected output for testModel.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/marian-pritsak/DASH-1/internal/sai"
)

func testModel() *sai.Model {
	return &sai.Model{
		AppName: "dash",
		Tables: []sai.TableDescriptor{
			{Name: "eni", IsObject: true},
			{Name: "outbound_routing_entry"},
		},
	}
}

// fixture returns the named file's content from the txtar archive.
func fixture(t *testing.T, archive *txtar.Archive, name string) string {
	t.Helper()
	for _, f := range archive.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("fixture %q not in archive", name)
	return ""
}

func loadArchive(t *testing.T) *txtar.Archive {
	t.Helper()
	archive, err := txtar.ParseFile(filepath.Join("testdata", "patch.txtar"))
	if err != nil {
		t.Fatalf("parse archive: %v", err)
	}
	return archive
}

// applyFixture runs transform over the named fixture and diffs against its
// .patched counterpart.
func applyFixture(t *testing.T, name string, transform func([]string, *sai.Model) []string) {
	t.Helper()
	archive := loadArchive(t)
	input := fixture(t, archive, name)
	want := fixture(t, archive, name+".patched")

	got := strings.Join(transform(strings.Split(input, "\n"), testModel()), "\n")
	if got != want {
		t.Errorf("%s patch mismatch:\n--- got\n%s\n--- want\n%s", name, got, want)
	}
}

func TestExtensions(t *testing.T) {
	applyFixture(t, "saiextensions.h", Extensions)
}

func TestTypeExtensions(t *testing.T) {
	applyFixture(t, "saitypesextensions.h", TypeExtensions)
}

func TestObject(t *testing.T) {
	applyFixture(t, "saiobject.h", Object)
}

// A file without markers passes through unchanged.
func TestNoMarkersUntouched(t *testing.T) {
	lines := []string{"#include <saitypes.h>", "", "typedef int sai_dummy_t;"}
	for _, transform := range []func([]string, *sai.Model) []string{Extensions, TypeExtensions, Object} {
		got := transform(lines, testModel())
		if strings.Join(got, "\n") != strings.Join(lines, "\n") {
			t.Errorf("marker-less input was modified: %v", got)
		}
	}
}

func TestFile(t *testing.T) {
	archive := loadArchive(t)
	path := filepath.Join(t.TempDir(), "saitypesextensions.h")
	if err := os.WriteFile(path, []byte(fixture(t, archive, "saitypesextensions.h")), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if err := File(path, testModel(), TypeExtensions); err != nil {
		t.Fatalf("File error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != fixture(t, archive, "saitypesextensions.h.patched") {
		t.Errorf("patched file mismatch:\n%s", got)
	}
}

func TestFileMissing(t *testing.T) {
	if err := File(filepath.Join(t.TempDir(), "absent.h"), testModel(), Extensions); err == nil {
		t.Error("expected error for missing file")
	}
}
