package model

// Case represents one testimonial/outcome record in the case store
type Case struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Context string `json:"context,omitempty"`
	Summary string `json:"summary,omitempty"`

	Visa  string `json:"visa,omitempty"`  // Visa class (e.g. "EB-1A", "EB-2 NIW", "O-1A")
	Field string `json:"field,omitempty"` // Profession/domain tag (e.g. "IT", "Наука")

	RFE     bool   `json:"rfe,omitempty"`     // Request for Evidence received
	NOID    bool   `json:"noid,omitempty"`    // Notice of Intent to Deny received
	Premium bool   `json:"premium,omitempty"` // Premium processing used
	Prep    string `json:"prep,omitempty"`    // "", "self", or "attorney"

	ServiceCenter          string `json:"service_center,omitempty"`
	ServiceCenterUncertain bool   `json:"service_center_uncertain,omitempty"`
	ServiceCenterNote      string `json:"service_center_note,omitempty"`
	ConsulateCity          string `json:"consulate_city,omitempty"`

	TimelineDays int `json:"timeline_days,omitempty"` // Days from filing to decision
	CostUSD      int `json:"cost_usd,omitempty"`
	RecLetters   int `json:"rec_letters,omitempty"` // Recommendation letter count

	Attorney        string   `json:"attorney,omitempty"`
	ClaimedCriteria []string `json:"claimed_criteria,omitempty"` // Criteria the author says were claimed
	Criteria        []string `json:"criteria,omitempty"`         // Legacy field, used when claimed_criteria is absent

	// HideContext is derived by the pipeline: true when context adds
	// nothing beyond the summary. Never authoritative input.
	HideContext bool `json:"hide_context,omitempty"`
}

// PrepSelf and PrepAttorney are the two known preparation modes.
const (
	PrepSelf     = "self"
	PrepAttorney = "attorney"
)

// EffectiveCriteria returns claimed_criteria when present, else the legacy
// criteria list.
func (c *Case) EffectiveCriteria() []string {
	if len(c.ClaimedCriteria) > 0 {
		return c.ClaimedCriteria
	}
	return c.Criteria
}

// HasStructuredSignal reports whether the record carries at least one
// structured metadata signal that rescues it from the garbage filter.
func (c *Case) HasStructuredSignal() bool {
	return c.Field != "" ||
		c.ServiceCenter != "" ||
		c.ConsulateCity != "" ||
		c.RFE || c.Premium || c.NOID
}

// Store is one full case-store snapshot: a single JSON document holding an
// ordered sequence of case records. Read and rewritten wholesale.
type Store struct {
	Cases []Case `json:"cases"`
}

// Counts holds the per-filter case counts used for navigation labels.
type Counts struct {
	Premium int
	Self    int
	RFE     int
	VSC     int
	NSC     int
}

// CountCases tallies the filter counts over a batch of cases.
func CountCases(cases []Case) Counts {
	var n Counts
	for i := range cases {
		c := &cases[i]
		if c.Premium {
			n.Premium++
		}
		if c.Prep == PrepSelf {
			n.Self++
		}
		if c.RFE {
			n.RFE++
		}
		switch c.ServiceCenter {
		case "VSC":
			n.VSC++
		case "NSC":
			n.NSC++
		}
	}
	return n
}
