package domain

import "encoding/json"

// SourceRow is one translatable unit read from the input table. LocID is
// unique across a run; ImageID is shared by every row on the same screenshot.
type SourceRow struct {
	ImageID     string
	EnglishText string
	LocID       string
}

// ImageGroup holds all rows sharing one image identifier, in input order.
type ImageGroup struct {
	ImageID string
	Rows    []SourceRow
}

// GroupByImage partitions rows by image identifier, preserving first-seen
// order of groups and of rows within each group. Flattening the result
// reproduces the input row sequence exactly.
func GroupByImage(rows []SourceRow) []*ImageGroup {
	var groups []*ImageGroup
	index := make(map[string]*ImageGroup)

	for _, row := range rows {
		group, ok := index[row.ImageID]
		if !ok {
			group = &ImageGroup{ImageID: row.ImageID}
			index[row.ImageID] = group
			groups = append(groups, group)
		}
		group.Rows = append(group.Rows, row)
	}

	return groups
}

// LocalizationEntry is the per-row output: the English source plus one string
// per requested language. PerLanguage always ends up with an entry for every
// requested language; failures are explicit placeholder strings, never
// omissions.
type LocalizationEntry struct {
	English     string
	PerLanguage map[string]string
}

// ItemResult is the per-group output record. Entries grows as rows finish;
// EntryOrder preserves row order for serialization.
type ItemResult struct {
	Filename    string
	Description string
	OCRText     string
	Entries     map[string]*LocalizationEntry
	EntryOrder  []string
}

func NewItemResult(filename string) *ItemResult {
	return &ItemResult{
		Filename: filename,
		Entries:  make(map[string]*LocalizationEntry),
	}
}

// SetEntry stores a finished row under its LocID.
func (r *ItemResult) SetEntry(locID string, entry *LocalizationEntry) {
	if _, exists := r.Entries[locID]; !exists {
		r.EntryOrder = append(r.EntryOrder, locID)
	}
	r.Entries[locID] = entry
}

// MarshalJSON flattens the result into the full-format shape: filename,
// description and OCR_EN metadata keys plus one sub-object per LocID with
// "EN" and per-language strings.
func (r *ItemResult) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(r.Entries)+3)
	obj["filename"] = r.Filename
	obj["description"] = r.Description
	obj["OCR_EN"] = r.OCRText

	for locID, entry := range r.Entries {
		sub := make(map[string]string, len(entry.PerLanguage)+1)
		sub["EN"] = entry.English
		for lang, text := range entry.PerLanguage {
			sub[lang] = text
		}
		obj[locID] = sub
	}

	return json.Marshal(obj)
}
