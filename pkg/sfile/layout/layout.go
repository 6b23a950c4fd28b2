// Package layout provides user-defined line layouts for Nordic S-files.
// Agencies extend the format with vendor-specific line types; a layout
// file declares their column spans in YAML so such lines can be decoded
// into Event.Extensions instead of falling through as unknown.
package layout

import "github.com/seisio/sfile-go/internal/parser"

// File represents the structure of a YAML layout file.
//
// Example:
//
//	version: 1
//	layouts:
//	  - code: "V"
//	    name: velocity_model
//	    fields:
//	      - name: model
//	        start: 1
//	        end: 11
//	      - name: vp_vs
//	        start: 12
//	        end: 18
//	        kind: float
type File struct {
	// Version is the layout file format version. Currently only
	// version 1 is supported.
	Version int `yaml:"version"`

	// Layouts is the list of layout definitions.
	Layouts []Layout `yaml:"layouts"`
}

// Layout declares one vendor-extension line type.
type Layout struct {
	// Code identifies matching lines: a single character matches the
	// terminal column (column 80), a longer string matches as a
	// trailing suffix (like the standard EC3 and MACRO3 cues).
	Code string `yaml:"code"`

	// Name labels decoded lines in Event.Extensions. Names must be
	// unique within a file.
	Name string `yaml:"name"`

	// Fields are the column spans to extract.
	Fields []Field `yaml:"fields"`
}

// Field declares one column span of a layout.
type Field struct {
	// Name keys the extracted value in Extension.Fields.
	Name string `yaml:"name"`

	// Start and End are 0-based half-open column offsets in [0,80].
	Start int `yaml:"start"`
	End   int `yaml:"end"`

	// Kind is the semantic type: "string" (default), "int" or "float".
	// Numeric kinds are validated during extraction.
	Kind string `yaml:"kind"`

	// Required makes a blank span a parse failure for the whole file.
	Required bool `yaml:"required"`
}

// Compile converts the file into the parser's extension-layout form.
// The file must have been validated first (Load and LoadBytes do this).
func (f *File) Compile() []parser.ExtLayout {
	out := make([]parser.ExtLayout, 0, len(f.Layouts))
	for _, l := range f.Layouts {
		ext := parser.ExtLayout{Code: l.Code, Name: l.Name}
		for _, fd := range l.Fields {
			kind := fd.Kind
			if kind == "" {
				kind = "string"
			}
			ext.Fields = append(ext.Fields, parser.ExtField{
				Name:     fd.Name,
				Start:    fd.Start,
				End:      fd.End,
				Kind:     kind,
				Required: fd.Required,
			})
		}
		out = append(out, ext)
	}
	return out
}
