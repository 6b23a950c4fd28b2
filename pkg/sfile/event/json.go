package event

import "encoding/json"

// jsonEvent is the wire shape for Event. Raw lines are deliberately
// excluded; callers that want them (e.g. the CLI --raw flag) attach
// RawLines() themselves.
type jsonEvent struct {
	Header       Hypocenter           `json:"header"`
	Alternates   []Hypocenter         `json:"alternates,omitempty"`
	HighAccuracy *Hypocenter          `json:"high_accuracy,omitempty"`
	Uncertainty  *Uncertainty         `json:"uncertainty,omitempty"`
	Phases       []Phase              `json:"phases,omitempty"`
	FaultPlanes  []FaultPlaneSolution `json:"fault_plane_solutions,omitempty"`
	Comments     []string             `json:"comments,omitempty"`
	Macroseismic []string             `json:"macroseismic,omitempty"`
	Waveforms    []string             `json:"waveforms,omitempty"`
	Pictures     []string             `json:"pictures,omitempty"`
	MacroMaps    []string             `json:"macro_maps,omitempty"`
	Explosions   []Explosion          `json:"explosions,omitempty"`
	ID           string               `json:"id,omitempty"`
	Extensions   []Extension          `json:"extensions,omitempty"`
	Unknown      []RawLine            `json:"unknown_lines,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e *Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonEvent{
		Header:       e.header,
		Alternates:   e.alternates,
		HighAccuracy: e.highAccuracy,
		Uncertainty:  e.uncertainty,
		Phases:       e.phases,
		FaultPlanes:  e.faultPlanes,
		Comments:     e.comments,
		Macroseismic: e.macroseismic,
		Waveforms:    e.waveforms,
		Pictures:     e.pictures,
		MacroMaps:    e.macroMaps,
		Explosions:   e.explosions,
		ID:           e.id,
		Extensions:   e.extensions,
		Unknown:      e.unknown,
	})
}
