package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// SectionInstance is one configured block of a page. Data holds the content
// values keyed by field key; Translations holds per-language partial overlays
// of Data. Styles apply to the whole section, FieldStyles are keyed by dotted
// field path and ItemStyles are keyed by repeater field key (shared across
// all items of that repeater).
type SectionInstance struct {
	ID           string                            `json:"id"`
	Type         string                            `json:"type"`
	Variant      string                            `json:"variant,omitempty"`
	Data         map[string]interface{}            `json:"data"`
	Styles       map[string]interface{}            `json:"styles,omitempty"`
	FieldStyles  map[string]map[string]interface{} `json:"field_styles,omitempty"`
	ItemStyles   map[string]map[string]interface{} `json:"item_styles,omitempty"`
	Translations map[string]map[string]interface{} `json:"translations,omitempty"`
	Disabled     bool                              `json:"disabled,omitempty"`
}

// PageSections is the ordered list of section instances of a page, persisted
// as a single jsonb column.
type PageSections []SectionInstance

func (ps *PageSections) Scan(value interface{}) error {
	if value == nil {
		*ps = PageSections{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PageSections")
	}

	return json.Unmarshal(bytes, ps)
}

func (ps PageSections) Value() (driver.Value, error) {
	if len(ps) == 0 {
		return nil, nil
	}
	return json.Marshal(ps)
}

// FindByID returns the index of the section with the given id, or -1.
func (ps PageSections) FindByID(id string) int {
	for i := range ps {
		if ps[i].ID == id {
			return i
		}
	}
	return -1
}
