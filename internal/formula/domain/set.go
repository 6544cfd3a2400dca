package domain

// Formula names understood by the typed set. Anything else stays reachable
// through Lookup for the dynamically keyed families (foam, dimensions,
// discounts).
const (
	NameFirstSeat            = "first_seat"
	NameAdditionalSeat       = "additional_seat"
	NameCornerSeat           = "corner_seat"
	NameBackrestSeat         = "backrest_seat"
	NameLoungerBase          = "lounger_base"
	NameLoungerAdditional6In = "lounger_additional_6inch"
	NameLoungerStorage       = "lounger_storage"
	NameConsole6In           = "console_6in"
	NameConsole10In          = "console_10in"
	NamePillowSimple         = "pillow_simple"
	NamePillowDiamondQuilted = "pillow_diamond_quilted"
	NamePillowBeltQuilted    = "pillow_belt_quilted"
	NamePillowTassels        = "pillow_tassels"
)

// Set is the resolved formula set for one category. Every typed field
// carries its fallback default when the underlying row is absent, so
// callers never branch on missing formulas.
type Set struct {
	FirstSeatPct      float64 `json:"first_seat_pct"`
	AdditionalSeatPct float64 `json:"additional_seat_pct"`
	CornerSeatPct     float64 `json:"corner_seat_pct"`
	BackrestSeatPct   float64 `json:"backrest_seat_pct"`

	LoungerBase          float64 `json:"lounger_base"`
	LoungerAdditional6In float64 `json:"lounger_additional_6inch"`
	LoungerStorage       float64 `json:"lounger_storage"`

	Console6In  float64 `json:"console_6in"`
	Console10In float64 `json:"console_10in"`

	PillowSimple         float64 `json:"pillow_simple"`
	PillowDiamondQuilted float64 `json:"pillow_diamond_quilted"`
	PillowBeltQuilted    float64 `json:"pillow_belt_quilted"`
	PillowTassels        float64 `json:"pillow_tassels"`

	values map[string]float64
}

// NewSet resolves rows into a typed set. Defaults live here and nowhere
// else.
func NewSet(rows []*PricingFormula) *Set {
	values := make(map[string]float64, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}

	s := &Set{values: values}
	s.FirstSeatPct = s.valueOr(NameFirstSeat, 100)
	s.AdditionalSeatPct = s.valueOr(NameAdditionalSeat, 70)
	s.CornerSeatPct = s.valueOr(NameCornerSeat, 100)
	s.BackrestSeatPct = s.valueOr(NameBackrestSeat, 20)
	s.LoungerBase = s.valueOr(NameLoungerBase, 15000)
	s.LoungerAdditional6In = s.valueOr(NameLoungerAdditional6In, 1000)
	s.LoungerStorage = s.valueOr(NameLoungerStorage, 3000)
	s.Console6In = s.valueOr(NameConsole6In, 4500)
	s.Console10In = s.valueOr(NameConsole10In, 6500)
	s.PillowSimple = s.valueOr(NamePillowSimple, 1200)
	s.PillowDiamondQuilted = s.valueOr(NamePillowDiamondQuilted, 3500)
	s.PillowBeltQuilted = s.valueOr(NamePillowBeltQuilted, 4000)
	s.PillowTassels = s.valueOr(NamePillowTassels, 2500)
	return s
}

// Lookup fetches a dynamically keyed formula value such as
// "foam_memory_foam" or "seat_depth_24". The second return reports
// whether the row exists.
func (s *Set) Lookup(name string) (float64, bool) {
	if s == nil || s.values == nil {
		return 0, false
	}
	v, ok := s.values[name]
	return v, ok
}

func (s *Set) valueOr(name string, fallback float64) float64 {
	if v, ok := s.values[name]; ok {
		return v
	}
	return fallback
}
