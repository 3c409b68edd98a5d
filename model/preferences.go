// Package model - per-view UI preferences.
package model

// ViewPreferences captures column visibility and sort state for one table
// view. It is an explicit value object handed to the caller by the API; the
// core never keeps this as ambient state.
type ViewPreferences struct {
	Key            string   `json:"_key,omitempty"`
	View           string   `json:"view"`
	HiddenColumns  []string `json:"hidden_columns,omitempty"`
	SortField      string   `json:"sort_field,omitempty"`
	SortDescending bool     `json:"sort_descending,omitempty"`
	PageSize       int      `json:"page_size,omitempty"`
	ObjType        string   `json:"objtype,omitempty"`
}

// NewViewPreferences creates preferences for a view with default values.
func NewViewPreferences(view string) *ViewPreferences {
	return &ViewPreferences{
		View:     view,
		PageSize: 25,
		ObjType:  "ViewPreferences",
	}
}
