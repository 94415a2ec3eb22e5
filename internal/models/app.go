package models

import "time"

// Mode is the input mode of the UI
type Mode int

const (
	Browse Mode = iota
	Editing
)

// AppModel represents the UI state - only local UI concerns.
// Snapshot and view data are owned by the core and replaced wholesale on every update.
type AppModel struct {
	Persons     []Person  // Visible list from the latest view model, nil when hidden
	ListShown   bool      // Whether the list is rendered
	ButtonColor string    // Toggle button background from the view model
	ClassName   string    // Style classes for the paragraph, space separated
	Total       int       // Number of records in the current snapshot
	Cursor      int       // Index of the highlighted row
	Mode        Mode      // Browse or Editing
	EditingID   string    // ID of the record being edited
	Status      string    // Status bar text
	UpdatedAt   time.Time // When the core produced the current snapshot
	Width       int       // Terminal width
	Height      int       // Terminal height
}
