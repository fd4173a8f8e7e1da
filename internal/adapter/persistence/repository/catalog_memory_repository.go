package repository

import (
	"context"

	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase/interfaces"
)

// CatalogMemoryRepository serves the static veterinary service catalog from
// memory. Coverage conditions, interaction modes and fees are authored here;
// tags are display-only badges and never drive gating.
type CatalogMemoryRepository struct {
	services []entities.Service
	byID     map[string]entities.Service
}

var _ interfaces.ICatalogRepository = (*CatalogMemoryRepository)(nil)

func NewCatalogMemoryRepository() *CatalogMemoryRepository {
	services := seedCatalog()
	byID := make(map[string]entities.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	return &CatalogMemoryRepository{services: services, byID: byID}
}

func (r *CatalogMemoryRepository) List(_ context.Context) ([]entities.Service, error) {
	out := make([]entities.Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

// GetByID returns the zero Service when the id is unknown; callers check
// Service.ID before use.
func (r *CatalogMemoryRepository) GetByID(_ context.Context, id string) (entities.Service, error) {
	return r.byID[id], nil
}

func seedCatalog() []entities.Service {
	return []entities.Service{
		{
			ID:          "svc-consulta-geral",
			Code:        "CONS-001",
			Name:        "Consulta clínica geral",
			Category:    entities.CategoryConsultation,
			ListPrice:   18000,
			Copay:       3000,
			Coverage:    entities.CoverageCovered,
			Interaction: entities.InteractionAddToCart,
			Tags: []entities.CoverageTag{
				{Label: "coberto", Severity: entities.SeveritySuccess},
			},
		},
		{
			ID:          "svc-consulta-derm",
			Code:        "CONS-002",
			Name:        "Consulta dermatológica",
			Category:    entities.CategoryConsultation,
			ListPrice:   22000,
			Copay:       4500,
			Coverage:    entities.CoverageCovered,
			Interaction: entities.InteractionAddToCart,
			Tags: []entities.CoverageTag{
				{Label: "coberto", Severity: entities.SeveritySuccess},
			},
		},
		{
			ID:              "svc-vacina-v10",
			Code:            "VAC-001",
			Name:            "Vacina polivalente V10",
			Category:        entities.CategoryVaccine,
			ListPrice:       12000,
			Copay:           2000,
			Coverage:        entities.CoverageGracePeriod,
			Interaction:     entities.InteractionAddToCart,
			BlockMessage:    "Serviço em carência até 15/10. Antecipe por uma taxa para liberar agora.",
			AnticipationFee: 3500,
			Tags: []entities.CoverageTag{
				{Label: "carência", Severity: entities.SeverityWarning},
			},
		},
		{
			ID:           "svc-vacina-antirrabica",
			Code:         "VAC-002",
			Name:         "Vacina antirrábica",
			Category:     entities.CategoryVaccine,
			ListPrice:    9000,
			Copay:        1500,
			Coverage:     entities.CoverageLimitReached,
			Interaction:  entities.InteractionAddToCart,
			BlockMessage: "Limite anual de vacinas atingido. Compre uma dose extra para liberar.",
			LimitFee:     6000,
			Tags: []entities.CoverageTag{
				{Label: "limite atingido", Severity: entities.SeverityError},
			},
		},
		{
			ID:          "svc-hemograma",
			Code:        "EXM-001",
			Name:        "Hemograma completo",
			Category:    entities.CategoryExam,
			ListPrice:   8000,
			Copay:       1200,
			Coverage:    entities.CoverageCovered,
			Interaction: entities.InteractionAddToCart,
			Tags: []entities.CoverageTag{
				{Label: "coberto", Severity: entities.SeveritySuccess},
			},
		},
		{
			ID:              "svc-ultrassom",
			Code:            "EXM-002",
			Name:            "Ultrassonografia abdominal",
			Category:        entities.CategoryExam,
			ListPrice:       25000,
			Copay:           5000,
			Coverage:        entities.CoverageGracePeriod,
			Interaction:     entities.InteractionAddToCart,
			BlockMessage:    "Serviço em carência. Antecipe por uma taxa para liberar agora.",
			AnticipationFee: 7500,
			Tags: []entities.CoverageTag{
				{Label: "carência", Severity: entities.SeverityWarning},
			},
		},
		{
			ID:           "svc-rx-torax",
			Code:         "EXM-003",
			Name:         "Radiografia de tórax",
			Category:     entities.CategoryExam,
			ListPrice:    15000,
			Copay:        0,
			Coverage:     entities.CoverageNoCoverage,
			Interaction:  entities.InteractionOfferUpgrade,
			BlockMessage: "Sem cobertura no plano atual. Disponível no plano Completo.",
			Tags: []entities.CoverageTag{
				{Label: "sem cobertura", Severity: entities.SeverityError},
			},
		},
		{
			ID:           "svc-castracao",
			Code:         "CIR-001",
			Name:         "Castração eletiva",
			Category:     entities.CategorySurgery,
			ListPrice:    80000,
			Copay:        12000,
			Coverage:     entities.CoverageCovered,
			Interaction:  entities.InteractionForward,
			BlockMessage: "Procedimento cirúrgico: requer encaminhamento ao centro cirúrgico.",
			Tags: []entities.CoverageTag{
				{Label: "requer encaminhamento", Severity: entities.SeverityNeutral},
			},
		},
		{
			ID:           "svc-ortopedica",
			Code:         "CIR-002",
			Name:         "Cirurgia ortopédica",
			Category:     entities.CategorySurgery,
			ListPrice:    350000,
			Copay:        0,
			Coverage:     entities.CoverageNoCoverage,
			Interaction:  entities.InteractionNone,
			BlockMessage: "Sem cobertura para este procedimento.",
			Tags: []entities.CoverageTag{
				{Label: "sem cobertura", Severity: entities.SeverityError},
			},
		},
		{
			ID:          "svc-internacao-diaria",
			Code:        "INT-001",
			Name:        "Internação (diária)",
			Category:    entities.CategoryHospitalization,
			ListPrice:   45000,
			Copay:       9000,
			Coverage:    entities.CoverageCovered,
			Interaction: entities.InteractionAddToCart,
			Tags: []entities.CoverageTag{
				{Label: "coberto", Severity: entities.SeveritySuccess},
			},
		},
		{
			ID:           "svc-fisioterapia",
			Code:         "INT-002",
			Name:         "Fisioterapia veterinária",
			Category:     entities.CategoryHospitalization,
			ListPrice:    16000,
			Copay:        3200,
			Coverage:     entities.CoverageCovered,
			Disabled:     true,
			Interaction:  entities.InteractionNone,
			BlockMessage: "Serviço temporariamente indisponível nesta unidade.",
			Tags: []entities.CoverageTag{
				{Label: "indisponível", Severity: entities.SeverityNeutral},
			},
		},
	}
}
