package layout

import "fmt"

// ValidationError represents a file-level validation error, such as an
// unsupported version or an empty layout list.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LayoutError represents an error in an individual layout definition
// (bad column span, duplicate name, unknown field kind).
type LayoutError struct {
	Index   int    // 0-based index of the layout in the file
	Name    string // layout name (may be empty if the name is missing)
	Field   string
	Message string
	Cause   error
}

func (e *LayoutError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("layout %q: %s: %s", e.Name, e.Field, e.Message)
	}
	return fmt.Sprintf("layout[%d]: %s: %s", e.Index, e.Field, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *LayoutError) Unwrap() error {
	return e.Cause
}
