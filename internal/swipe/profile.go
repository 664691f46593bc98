package swipe

// Default seeking-age bounds used when a profile carries no explicit preference.
const (
	DefaultSeekingAgeMin = 18
	DefaultSeekingAgeMax = 50
)

// MaxPhotoRefs is the number of photo slots a profile has.
const MaxPhotoRefs = 3

// AgeRange is an inclusive [Min, Max] age filter.
type AgeRange struct {
	Min int
	Max int
}

// DefaultAgeRange returns the built-in {18, 50} bounds.
func DefaultAgeRange() AgeRange {
	return AgeRange{Min: DefaultSeekingAgeMin, Max: DefaultSeekingAgeMax}
}

// Profile is a user's public card plus their seeking preferences.
type Profile struct {
	ID            string
	DisplayName   string
	Age           int
	Profession    string
	PhotoRefs     []string
	SeekingAgeMin int
	SeekingAgeMax int
}

// SeekingRange returns the profile's age preference, substituting def for
// absent (zero) bounds and clamping so that Min <= Max.
func (p Profile) SeekingRange(def AgeRange) AgeRange {
	lo, hi := p.SeekingAgeMin, p.SeekingAgeMax
	if lo <= 0 {
		lo = def.Min
	}
	if hi <= 0 {
		hi = def.Max
	}
	lo, hi = ClampSeekingAge(lo, hi)
	return AgeRange{Min: lo, Max: hi}
}

// ClampSeekingAge enforces min <= max by raising max to min.
//
// Example:
//
//	ClampSeekingAge(30, 25) // -> 30, 30
func ClampSeekingAge(lo, hi int) (int, int) {
	return lo, max(lo, hi)
}

// Settings is the owner-editable part of a profile.
// Nil fields are left untouched on save.
type Settings struct {
	DisplayName   *string
	Age           *int
	Profession    *string
	PhotoRefs     []string
	SeekingAgeMin *int
	SeekingAgeMax *int
}

// Apply returns a copy of p with s merged in. Once either seeking bound is
// set, an absent one is filled from def (zero def means {18, 50}) and the
// range is clamped, so saving only a minimum keeps the default maximum.
func (s Settings) Apply(p Profile, def AgeRange) Profile {
	out := p
	if s.DisplayName != nil {
		out.DisplayName = *s.DisplayName
	}
	if s.Age != nil {
		out.Age = *s.Age
	}
	if s.Profession != nil {
		out.Profession = *s.Profession
	}
	if len(s.PhotoRefs) > 0 {
		out.PhotoRefs = append([]string(nil), s.PhotoRefs...)
	}
	if s.SeekingAgeMin != nil {
		out.SeekingAgeMin = *s.SeekingAgeMin
	}
	if s.SeekingAgeMax != nil {
		out.SeekingAgeMax = *s.SeekingAgeMax
	}
	if out.SeekingAgeMin > 0 || out.SeekingAgeMax > 0 {
		if def.Min <= 0 || def.Max <= 0 {
			def = DefaultAgeRange()
		}
		r := out.SeekingRange(def)
		out.SeekingAgeMin, out.SeekingAgeMax = r.Min, r.Max
	}
	return out
}
