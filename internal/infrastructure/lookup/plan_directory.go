package lookup

import (
	"context"

	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// PlanDirectory is an in-memory guardian/patient directory keyed by digits-only
// identifiers. It stands in for the plan administrator's directory service and
// mirrors the record shapes that service returns.
type PlanDirectory struct {
	byIdentifier map[string]entities.LookupResult
}

var _ interfaces.IAccountLookup = (*PlanDirectory)(nil)

// NewPlanDirectory seeds the directory with demonstration accounts covering
// every account standing the session flow branches on.
func NewPlanDirectory() *PlanDirectory {
	d := &PlanDirectory{byIdentifier: map[string]entities.LookupResult{}}

	d.register(entities.LookupResult{
		Guardian:      entities.Guardian{ID: "gdn-001", Name: "Helena Prado", TaxID: "52998224725", Phone: "11987650001"},
		AccountStatus: entities.AccountActive,
		Patients: []entities.Patient{
			{ID: "pat-001", Name: "Thor", Species: "dog", Breed: "golden retriever", PlanID: "plan-essencial"},
		},
	})

	d.register(entities.LookupResult{
		Guardian:      entities.Guardian{ID: "gdn-002", Name: "Ricardo Lemos", TaxID: "15350946056", Phone: "11987650002"},
		AccountStatus: entities.AccountActive,
		Patients: []entities.Patient{
			{ID: "pat-002", Name: "Mia", Species: "cat", Breed: "siamese", PlanID: "plan-completo"},
			{ID: "pat-003", Name: "Fred", Species: "cat", PlanID: "plan-completo"},
			{ID: "pat-004", Name: "Luna", Species: "dog", Breed: "shih tzu", PlanID: "plan-essencial"},
		},
	})

	d.register(entities.LookupResult{
		Guardian:      entities.Guardian{ID: "gdn-003", Name: "Beatriz Nunes", TaxID: "83368342007", Phone: "21987650003"},
		AccountStatus: entities.AccountDelinquent,
		Patients: []entities.Patient{
			{ID: "pat-005", Name: "Bidu", Species: "dog", Breed: "beagle", PlanID: "plan-essencial"},
		},
	})

	d.register(entities.LookupResult{
		Guardian:      entities.Guardian{ID: "gdn-004", Name: "Otávio Faria", TaxID: "28625587887", Phone: "31987650004"},
		AccountStatus: entities.AccountNoPlan,
		Patients: []entities.Patient{
			{ID: "pat-006", Name: "Nina", Species: "cat"},
		},
	})

	return d
}

func (d *PlanDirectory) register(result entities.LookupResult) {
	d.byIdentifier[result.Guardian.TaxID] = result
	if result.Guardian.Phone != "" {
		d.byIdentifier[result.Guardian.Phone] = result
	}
}

func (d *PlanDirectory) Lookup(_ context.Context, identifier string) (*entities.LookupResult, error) {
	result, ok := d.byIdentifier[identifier]
	if !ok {
		log.Info().Str("identifier", identifier).Msg("[lookup] no account for identifier")
		return nil, nil
	}
	out := result
	out.Patients = append([]entities.Patient(nil), result.Patients...)
	return &out, nil
}
