package event

// Builder assembles an Event line by line. It is used by the parser;
// applications normally obtain Events through sfile.Parse.
//
// The zero Builder is not usable; call NewBuilder.
type Builder struct {
	ev *Event
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{ev: &Event{}}
}

// SetHeader sets the primary hypocenter. The parser calls this once,
// for the first type 1 line; later type 1 lines go to AddAlternate.
func (b *Builder) SetHeader(h Hypocenter) *Builder {
	b.ev.header = h
	return b
}

// AddAlternate appends a revised or alternate hypocenter solution.
func (b *Builder) AddAlternate(h Hypocenter) *Builder {
	b.ev.alternates = append(b.ev.alternates, h)
	return b
}

// SetHighAccuracy sets the type H high-accuracy hypocenter.
func (b *Builder) SetHighAccuracy(h Hypocenter) *Builder {
	b.ev.highAccuracy = &h
	return b
}

// SetUncertainty sets the type E error estimates.
func (b *Builder) SetUncertainty(u Uncertainty) *Builder {
	b.ev.uncertainty = &u
	return b
}

// AddPhase appends an arrival row.
func (b *Builder) AddPhase(p Phase) *Builder {
	b.ev.phases = append(b.ev.phases, p)
	return b
}

// AddFaultPlaneSolution appends a type F solution.
func (b *Builder) AddFaultPlaneSolution(f FaultPlaneSolution) *Builder {
	b.ev.faultPlanes = append(b.ev.faultPlanes, f)
	return b
}

// AddComment appends a type 3 comment text.
func (b *Builder) AddComment(text string) *Builder {
	b.ev.comments = append(b.ev.comments, text)
	return b
}

// AddMacroseismic appends a type 2 macroseismic text.
func (b *Builder) AddMacroseismic(text string) *Builder {
	b.ev.macroseismic = append(b.ev.macroseismic, text)
	return b
}

// AddWaveform appends a type 6 waveform file reference.
func (b *Builder) AddWaveform(ref string) *Builder {
	b.ev.waveforms = append(b.ev.waveforms, ref)
	return b
}

// AddPicture appends a type P picture file reference.
func (b *Builder) AddPicture(ref string) *Builder {
	b.ev.pictures = append(b.ev.pictures, ref)
	return b
}

// AddMacroMap appends a MACRO3 map file reference.
func (b *Builder) AddMacroMap(ref string) *Builder {
	b.ev.macroMaps = append(b.ev.macroMaps, ref)
	return b
}

// AddExplosion appends an EC3 explosion record.
func (b *Builder) AddExplosion(x Explosion) *Builder {
	b.ev.explosions = append(b.ev.explosions, x)
	return b
}

// SetID sets the type I event ID.
func (b *Builder) SetID(id string) *Builder {
	b.ev.id = id
	return b
}

// AddExtension appends a decoded vendor-extension line.
func (b *Builder) AddExtension(x Extension) *Builder {
	b.ev.extensions = append(b.ev.extensions, x)
	return b
}

// AddUnknown retains an unrecognized line verbatim.
func (b *Builder) AddUnknown(num int, text string) *Builder {
	b.ev.unknown = append(b.ev.unknown, RawLine{Num: num, Text: text})
	return b
}

// SetRaw records the original input text and its line split.
func (b *Builder) SetRaw(text string, lines []string) *Builder {
	b.ev.rawText = text
	b.ev.rawLines = append([]string(nil), lines...)
	return b
}

// Build returns the assembled Event. The Builder must not be reused.
func (b *Builder) Build() *Event {
	ev := b.ev
	b.ev = nil
	return ev
}
