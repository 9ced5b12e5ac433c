package measurement

// Field names a body measurement. Unknown names are allowed everywhere and
// simply have no ranges attached.
type Field string

const (
	Neck     Field = "neck"
	Bust     Field = "bust"
	Waist    Field = "waist"
	Hip      Field = "hip"
	Shoulder Field = "shoulder"
	Sleeve   Field = "sleeve"
	Inseam   Field = "inseam"
	Outseam  Field = "outseam"
	Thigh    Field = "thigh"
	Calf     Field = "calf"
	Height   Field = "height"
)

// BodyFields lists the length fields of a MeasurementSet in display order.
func BodyFields() []Field {
	return []Field{Neck, Bust, Waist, Hip, Shoulder, Sleeve, Inseam, Outseam, Thigh, Calf, Height}
}

// IsBodyField reports whether f is one of BodyFields.
func (f Field) IsBodyField() bool {
	for _, known := range BodyFields() {
		if f == known {
			return true
		}
	}
	return false
}

// Range is an inclusive interval in inches.
type Range struct {
	Min float64
	Max float64
}

// rangeTolerance absorbs the rounding of the metric factors, which are not
// exact reciprocals of 2.54. 152.4cm converts to 60.00003in.
const rangeTolerance = 1e-4

// Contains reports whether v lies in [Min, Max], give or take rangeTolerance.
func (r Range) Contains(v float64) bool {
	return v >= r.Min-rangeTolerance && v <= r.Max+rangeTolerance
}

// plausibleRanges bound what a human body can measure. Values outside are
// rejected. Height has no plausibility range.
var plausibleRanges = map[Field]Range{
	Neck:     {Min: 10, Max: 25},
	Bust:     {Min: 20, Max: 60},
	Waist:    {Min: 20, Max: 60},
	Hip:      {Min: 25, Max: 65},
	Shoulder: {Min: 12, Max: 30},
	Sleeve:   {Min: 15, Max: 40},
	Inseam:   {Min: 20, Max: 40},
	Outseam:  {Min: 30, Max: 50},
	Thigh:    {Min: 15, Max: 35},
	Calf:     {Min: 10, Max: 25},
}

type referenceRange struct {
	common  Range
	typical Range
}

// referenceRanges describe the adult population: common is where most
// readings fall, typical is the middle of it. Falling outside only warns.
var referenceRanges = map[Field]referenceRange{
	Neck:     {common: Range{12, 20}, typical: Range{14, 17}},
	Bust:     {common: Range{28, 50}, typical: Range{32, 42}},
	Waist:    {common: Range{24, 45}, typical: Range{28, 36}},
	Hip:      {common: Range{30, 50}, typical: Range{34, 44}},
	Shoulder: {common: Range{14, 22}, typical: Range{16, 19}},
	Sleeve:   {common: Range{20, 28}, typical: Range{23, 26}},
	Inseam:   {common: Range{26, 36}, typical: Range{30, 34}},
	Outseam:  {common: Range{36, 48}, typical: Range{40, 44}},
	Thigh:    {common: Range{18, 30}, typical: Range{20, 26}},
	Calf:     {common: Range{12, 20}, typical: Range{14, 17}},
	Height:   {common: Range{48, 84}, typical: Range{60, 72}},
}

// PlausibleRange returns the hard range for f in inches.
func PlausibleRange(f Field) (Range, bool) {
	r, ok := plausibleRanges[f]
	return r, ok
}

// CommonRange returns the population range for f in inches.
func CommonRange(f Field) (Range, bool) {
	r, ok := referenceRanges[f]
	return r.common, ok
}

// TypicalRange returns the typical sub-range for f in inches.
func TypicalRange(f Field) (Range, bool) {
	r, ok := referenceRanges[f]
	return r.typical, ok
}
