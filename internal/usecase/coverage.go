package usecase

import "vetdesk/internal/domain/entities"

// CoverageOutcome is the gate decision for one catalog entry. Every outcome
// is a successful decision, not a failure.
type CoverageOutcome string

const (
	OutcomeAllowed         CoverageOutcome = "allowed"
	OutcomeGracePeriod     CoverageOutcome = "grace_period"
	OutcomeLimitReached    CoverageOutcome = "limit_reached"
	OutcomeNoCoverage      CoverageOutcome = "no_coverage"
	OutcomeRequiresForward CoverageOutcome = "requires_forward"
	OutcomeOffersUpgrade   CoverageOutcome = "offers_upgrade"
	OutcomeUnavailable     CoverageOutcome = "unavailable"
)

// Blocking reports whether the outcome blocks a cart add pending a fee
// payment or an upgrade.
func (o CoverageOutcome) Blocking() bool {
	switch o {
	case OutcomeNoCoverage, OutcomeLimitReached, OutcomeGracePeriod:
		return true
	}
	return false
}

// EvaluateCoverage decides whether svc may be added to the cart given the
// session's unlocked service ids.
//
// The precedence is total and deterministic; the first match wins:
//
//	no_coverage > limit_reached > grace_period > forward > offer_upgrade >
//	none/disabled > allowed
//
// An unlocked id skips the three coverage-condition branches; the unlocked
// set is monotonic within a session.
func EvaluateCoverage(svc entities.Service, unlocked map[string]bool) CoverageOutcome {
	locked := !unlocked[svc.ID]

	switch {
	case locked && svc.Coverage == entities.CoverageNoCoverage:
		return OutcomeNoCoverage
	case locked && svc.Coverage == entities.CoverageLimitReached:
		return OutcomeLimitReached
	case locked && svc.Coverage == entities.CoverageGracePeriod:
		return OutcomeGracePeriod
	case svc.Interaction == entities.InteractionForward:
		return OutcomeRequiresForward
	case svc.Interaction == entities.InteractionOfferUpgrade:
		return OutcomeOffersUpgrade
	case svc.Interaction == entities.InteractionNone || svc.Disabled:
		return OutcomeUnavailable
	default:
		return OutcomeAllowed
	}
}
