package domain

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/unicostudio/b-ai-localization/pkg/errors"
)

// CharacterTable maps languageName -> (canonical English character name ->
// localized name). Read-only after initialization; shared by all groups.
type CharacterTable map[string]map[string]string

//go:embed data/characters.json
var defaultCharactersJSON []byte

// characterRecord is one row of the record-array character format, keyed by
// "Character Name (EN)" plus one column per language code.
type characterRecord map[string]string

// DefaultCharacterTable loads the embedded character data.
func DefaultCharacterTable() (CharacterTable, error) {
	table, err := parseCharacterRecords(defaultCharactersJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded character data: %w", err)
	}
	return table, nil
}

// LoadCharacterTable reads a user-supplied character file. Two shapes are
// accepted: the record-array format and the pre-formatted
// languageName -> {englishName: localizedName} mapping. An override fully
// replaces the default table, never merges per-language.
func LoadCharacterTable(path string) (CharacterTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCharacterDataError("failed to read character file", path, err)
	}
	table, err := ParseCharacterTable(data)
	if err != nil {
		return nil, errors.NewCharacterDataError("failed to parse character file", path, err)
	}
	return table, nil
}

// ParseCharacterTable decodes character data in either accepted shape.
func ParseCharacterTable(data []byte) (CharacterTable, error) {
	if table, err := parseCharacterRecords(data); err == nil {
		return table, nil
	}

	var preformatted CharacterTable
	if err := json.Unmarshal(data, &preformatted); err != nil {
		return nil, fmt.Errorf("character data matches neither record-array nor per-language format: %w", err)
	}
	if len(preformatted) == 0 {
		return nil, fmt.Errorf("character data contains no languages")
	}
	return preformatted, nil
}

func parseCharacterRecords(data []byte) (CharacterTable, error) {
	var records []characterRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("character data contains no records")
	}

	table := make(CharacterTable)
	for _, record := range records {
		englishName := record["Character Name (EN)"]
		if englishName == "" {
			englishName = record["EN"]
		}
		if englishName == "" {
			continue
		}

		for column, localized := range record {
			if column == "Character Name (EN)" || column == "EN" || localized == "" {
				continue
			}
			lang := CharacterColumnLanguage(column)
			if table[lang] == nil {
				table[lang] = make(map[string]string)
			}
			table[lang][englishName] = localized
		}
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("character records carry no language columns")
	}
	return table, nil
}

// Languages lists the languages present in the table.
func (t CharacterTable) Languages() []string {
	langs := make([]string, 0, len(t))
	for lang := range t {
		langs = append(langs, lang)
	}
	return langs
}
