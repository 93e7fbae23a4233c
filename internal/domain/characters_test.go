package domain

import "testing"

func TestParseCharacterTableRecordArray(t *testing.T) {
	data := []byte(`[
		{"Character Name (EN)": "Lily", "TR": "Bediş", "FR": "Lili"},
		{"Character Name (EN)": "Lazy Larry", "TR": "Tembel Temel"},
		{"Character Name (EN)": "", "TR": "orphan"}
	]`)

	table, err := ParseCharacterTable(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if got := table["turkish"]["Lily"]; got != "Bediş" {
		t.Fatalf("expected turkish Lily -> Bediş, got %q", got)
	}
	if got := table["french"]["Lily"]; got != "Lili" {
		t.Fatalf("expected french Lily -> Lili, got %q", got)
	}
	if got := table["turkish"]["Lazy Larry"]; got != "Tembel Temel" {
		t.Fatalf("expected turkish Lazy Larry -> Tembel Temel, got %q", got)
	}
	if _, ok := table["french"]["Lazy Larry"]; ok {
		t.Fatal("expected no french entry for Lazy Larry")
	}
}

func TestParseCharacterTablePreformatted(t *testing.T) {
	data := []byte(`{"turkish": {"Lily": "Bediş"}, "german": {"Poppy": "Poppi"}}`)

	table, err := ParseCharacterTable(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := table["turkish"]["Lily"]; got != "Bediş" {
		t.Fatalf("expected turkish Lily -> Bediş, got %q", got)
	}
	if got := table["german"]["Poppy"]; got != "Poppi" {
		t.Fatalf("expected german Poppy -> Poppi, got %q", got)
	}
}

func TestParseCharacterTableRejectsGarbage(t *testing.T) {
	if _, err := ParseCharacterTable([]byte(`"just a string"`)); err == nil {
		t.Fatal("expected an error for non-character JSON")
	}
	if _, err := ParseCharacterTable([]byte(`[]`)); err == nil {
		t.Fatal("expected an error for empty record array")
	}
}

func TestDefaultCharacterTableHasTurkishLily(t *testing.T) {
	table, err := DefaultCharacterTable()
	if err != nil {
		t.Fatalf("embedded table failed to load: %v", err)
	}
	if got := table["turkish"]["Lily"]; got != "Bediş" {
		t.Fatalf("expected embedded turkish Lily -> Bediş, got %q", got)
	}
	if len(table.Languages()) == 0 {
		t.Fatal("expected at least one language in embedded table")
	}
}
