package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MaxFileSize is the maximum allowed size for a layout file (1MB).
	MaxFileSize = 1 * 1024 * 1024

	// MaxLayoutCount caps the number of layouts in one file.
	MaxLayoutCount = 256

	// LineWidth is the fixed width of a Nordic line; spans must fit it.
	LineWidth = 80

	// SupportedVersion is the currently supported file format version.
	SupportedVersion = 1
)

// sanitizePathError strips the path from os.PathError so error text
// does not leak filesystem layout to users.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Load reads and parses a layout file from the given path.
// Returns an error if the file cannot be read, is too large, is not a
// regular file, or fails validation.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout file: %w", sanitizePathError(err))
	}
	defer f.Close()

	// Stat the descriptor, not the path, to avoid TOCTOU.
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat layout file: %w", sanitizePathError(err))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("layout file must be a regular file")
	}
	if info.Size() == 0 {
		return nil, errors.New("layout file is empty")
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("layout file too large: %d bytes (max %d)", info.Size(), MaxFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", sanitizePathError(err))
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("layout file too large: %d bytes (max %d)", len(data), MaxFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a layout file from a byte slice.
func LoadBytes(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, errors.New("layout file is empty")
	}

	var lf File
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := lf.Validate(); err != nil {
		return nil, err
	}
	return &lf, nil
}

// Validate performs schema-level validation:
//   - supported version
//   - at least one layout, at most MaxLayoutCount
//   - required fields (code, name, at least one field span)
//   - unique layout names
//   - spans within [0,LineWidth) with start < end
//   - known field kinds
func (f *File) Validate() error {
	if f.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", f.Version, SupportedVersion),
		}
	}
	if len(f.Layouts) == 0 {
		return &ValidationError{
			Field:   "layouts",
			Message: "at least one layout is required",
		}
	}
	if len(f.Layouts) > MaxLayoutCount {
		return &ValidationError{
			Field:   "layouts",
			Message: fmt.Sprintf("too many layouts (%d), maximum allowed is %d", len(f.Layouts), MaxLayoutCount),
		}
	}

	seen := make(map[string]int, len(f.Layouts))
	for i, l := range f.Layouts {
		if l.Code == "" {
			return &LayoutError{Index: i, Name: l.Name, Field: "code", Message: "code is required"}
		}
		if l.Name == "" {
			return &LayoutError{Index: i, Field: "name", Message: "name is required"}
		}
		if prev, exists := seen[l.Name]; exists {
			return &LayoutError{
				Index: i, Name: l.Name, Field: "name",
				Message: fmt.Sprintf("duplicate name (previously defined at layout[%d])", prev),
			}
		}
		seen[l.Name] = i

		if len(l.Fields) == 0 {
			return &LayoutError{Index: i, Name: l.Name, Field: "fields", Message: "at least one field is required"}
		}
		for _, fd := range l.Fields {
			if fd.Name == "" {
				return &LayoutError{Index: i, Name: l.Name, Field: "fields", Message: "field name is required"}
			}
			if fd.Start < 0 || fd.End > LineWidth || fd.Start >= fd.End {
				return &LayoutError{
					Index: i, Name: l.Name, Field: fd.Name,
					Message: fmt.Sprintf("invalid span [%d,%d): must satisfy 0 <= start < end <= %d", fd.Start, fd.End, LineWidth),
				}
			}
			switch fd.Kind {
			case "", "string", "int", "float":
			default:
				return &LayoutError{
					Index: i, Name: l.Name, Field: fd.Name,
					Message: fmt.Sprintf("unknown kind %q (want string, int or float)", fd.Kind),
				}
			}
		}
	}
	return nil
}
