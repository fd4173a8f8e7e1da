package entities

// Cents is a monetary amount in BRL minor units (centavos).
//
// All pricing math in the service uses integer minor units; floating point
// is only allowed at the presentation boundary.
type Cents int64

// ServiceCategory groups catalog entries for display/filtering.
type ServiceCategory string

const (
	CategoryConsultation    ServiceCategory = "consultation"
	CategoryVaccine         ServiceCategory = "vaccine"
	CategoryExam            ServiceCategory = "exam"
	CategorySurgery         ServiceCategory = "surgery"
	CategoryHospitalization ServiceCategory = "hospitalization"
)

// CoverageCondition is the authoritative coverage state of a catalog entry.
//
// Domain notes:
//   - Decided at catalog-authoring time; never derived from display tag text.
//   - Grace/limit conditions can be bypassed within a session by paying the
//     corresponding fee (see the coverage use case).
type CoverageCondition string

const (
	CoverageCovered      CoverageCondition = "covered"
	CoverageGracePeriod  CoverageCondition = "grace_period"
	CoverageLimitReached CoverageCondition = "limit_reached"
	CoverageNoCoverage   CoverageCondition = "no_coverage"
)

// InteractionMode says what the front desk can do with a catalog entry.
type InteractionMode string

const (
	InteractionAddToCart    InteractionMode = "add_to_cart"
	InteractionForward      InteractionMode = "forward"
	InteractionNone         InteractionMode = "none"
	InteractionOfferUpgrade InteractionMode = "offer_upgrade"
)

// TagSeverity drives tag rendering only; it carries no gating semantics.
type TagSeverity string

const (
	SeveritySuccess TagSeverity = "success"
	SeverityWarning TagSeverity = "warning"
	SeverityError   TagSeverity = "error"
	SeverityNeutral TagSeverity = "neutral"
)

// CoverageTag is a display badge attached to a catalog entry.
type CoverageTag struct {
	Label    string      `json:"label"`
	Severity TagSeverity `json:"severity"`
}

// Service is an immutable catalog entry.
//
// Monetary representation:
//   - ListPrice is the full price; Copay is the guardian share under coverage.
//   - AnticipationFee/LimitFee are the surcharges to bypass a grace period or
//     purchase extra allowance, charged per unit when the bypass line is added.
type Service struct {
	ID              string            `json:"id"`
	Code            string            `json:"code"`
	Name            string            `json:"name"`
	Category        ServiceCategory   `json:"category"`
	ListPrice       Cents             `json:"list_price"`
	Copay           Cents             `json:"copay"`
	Coverage        CoverageCondition `json:"coverage"`
	Tags            []CoverageTag     `json:"tags,omitempty"`
	BlockMessage    string            `json:"block_message,omitempty"`
	Disabled        bool              `json:"disabled"`
	Interaction     InteractionMode   `json:"interaction"`
	AnticipationFee Cents             `json:"anticipation_fee,omitempty"`
	LimitFee        Cents             `json:"limit_fee,omitempty"`
}
