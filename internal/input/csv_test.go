package input

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unicostudio/b-ai-localization/pkg/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp csv: %v", err)
	}
	return path
}

func TestReadSourceRowsSemicolonDelimited(t *testing.T) {
	path := writeTempCSV(t, "IDS;EN;LOCID\nID1;Hello Lily!;LEVEL_TEXT_1\nID1;Tap it.;HINT_1\nID2;Done!;END_2\n")

	rows, err := ReadSourceRows(path)
	if err != nil {
		t.Fatalf("ReadSourceRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ImageID != "ID1" || rows[0].EnglishText != "Hello Lily!" || rows[0].LocID != "LEVEL_TEXT_1" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[2].ImageID != "ID2" {
		t.Fatalf("unexpected third row: %+v", rows[2])
	}
}

func TestReadSourceRowsCommaFallback(t *testing.T) {
	path := writeTempCSV(t, "IDS,EN,LOCID\nID1,Hello!,LEVEL_TEXT_1\n")

	rows, err := ReadSourceRows(path)
	if err != nil {
		t.Fatalf("ReadSourceRows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].EnglishText != "Hello!" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestReadSourceRowsStripsBOM(t *testing.T) {
	path := writeTempCSV(t, "\ufeffIDS;EN;LOCID\nID1;Hi;HINT_1\n")

	rows, err := ReadSourceRows(path)
	if err != nil {
		t.Fatalf("ReadSourceRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestReadSourceRowsMissingColumnIsFatal(t *testing.T) {
	path := writeTempCSV(t, "IDS;EN\nID1;Hello!\n")

	rows, err := ReadSourceRows(path)
	if err == nil {
		t.Fatal("expected error for missing LOCID column")
	}
	if len(rows) != 0 {
		t.Fatalf("expected zero rows on validation failure, got %d", len(rows))
	}

	var valErr *errors.ValidationError
	if !stderrors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "LOCID") {
		t.Fatalf("error must name the missing column: %v", err)
	}
}

func TestReadSourceRowsSkipsEmptyLocID(t *testing.T) {
	path := writeTempCSV(t, "IDS;EN;LOCID\nID1;Hello!;LEVEL_TEXT_1\nID1;orphan;\n")

	rows, err := ReadSourceRows(path)
	if err != nil {
		t.Fatalf("ReadSourceRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected orphan row skipped, got %d rows", len(rows))
	}
}

func TestReadSourceRowsMissingFile(t *testing.T) {
	if _, err := ReadSourceRows(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
