package domain

import "fmt"

// PropertyTag identifies one SDF property section required on a
// converted molecule block.
type PropertyTag string

// The closed set of property tags every converted block must carry.
// MoNA records store these after the structural body, one
// ">  <TAG>" header line followed by a value line.
const (
	TagMassSpecPeaks PropertyTag = "MASS SPECTRAL PEAKS"
	TagInChIKey      PropertyTag = "INCHIKEY"
	TagInChI         PropertyTag = "INCHI"
	TagName          PropertyTag = "NAME"
	TagExactMass     PropertyTag = "EXACT MASS"
)

// RequiredTags returns the tags a block must carry to count as valid,
// in the order they are checked.
func RequiredTags() []PropertyTag {
	return []PropertyTag{
		TagMassSpecPeaks,
		TagInChIKey,
		TagInChI,
		TagName,
		TagExactMass,
	}
}

// Valid reports whether the tag belongs to the supported set.
func (t PropertyTag) Valid() bool {
	switch t {
	case TagMassSpecPeaks, TagInChIKey, TagInChI, TagName, TagExactMass:
		return true
	default:
		return false
	}
}

// Header returns the SDF section header line form of the tag.
func (t PropertyTag) Header() string {
	return fmt.Sprintf(">  <%s>", string(t))
}
