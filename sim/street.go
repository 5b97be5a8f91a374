package sim

// ZoneKind classifies a stretch of the street.
type ZoneKind string

const (
	// ZoneNone is returned for positions off either end of the street.
	ZoneNone      ZoneKind = ""
	ZoneSafe      ZoneKind = "safe"
	ZoneDangerous ZoneKind = "dangerous"
)

// HitProbability is the chance of being hit on each classification made
// while standing in a dangerous zone.
const HitProbability = 0.05

// Zone is a contiguous segment of the street.
type Zone struct {
	Kind   ZoneKind
	Length float64
}

// Band is a half-open interval [Start, End) along the crossing axis.
type Band struct {
	Start float64
	End   float64
}

// Street is the fixed crossing: sidewalk edge, two lanes separated by a
// median, and the far edge. Immutable and safe to share between walks.
type Street struct {
	zones []Zone
	total float64
}

// NewStreet returns the standard street layout.
func NewStreet() *Street {
	zones := []Zone{
		{Kind: ZoneSafe, Length: 1},
		{Kind: ZoneDangerous, Length: 2},
		{Kind: ZoneSafe, Length: 2},
		{Kind: ZoneDangerous, Length: 2},
		{Kind: ZoneSafe, Length: 1},
	}
	total := 0.0
	for _, z := range zones {
		total += z.Length
	}
	return &Street{zones: zones, total: total}
}

// TotalLength returns the sum of zone lengths.
func (s *Street) TotalLength() float64 {
	return s.total
}

// HitProbability returns the per-classification collision chance in dangerous zones.
func (s *Street) HitProbability() float64 {
	return HitProbability
}

// Zones returns a copy of the zone list in crossing order.
func (s *Street) Zones() []Zone {
	out := make([]Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

// ZoneAt returns the kind of zone containing y. Boundaries belong to the
// zone that starts there. Returns ZoneNone when y < 0 or y >= TotalLength.
func (s *Street) ZoneAt(y float64) ZoneKind {
	offset := 0.0
	for _, z := range s.zones {
		if offset <= y && y < offset+z.Length {
			return z.Kind
		}
		offset += z.Length
	}
	return ZoneNone
}

// DangerBands returns the intervals covered by dangerous zones.
func (s *Street) DangerBands() []Band {
	var bands []Band
	offset := 0.0
	for _, z := range s.zones {
		if z.Kind == ZoneDangerous {
			bands = append(bands, Band{Start: offset, End: offset + z.Length})
		}
		offset += z.Length
	}
	return bands
}
