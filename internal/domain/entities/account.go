package entities

// AccountStatus is the plan standing of a guardian account.
type AccountStatus string

const (
	AccountActive     AccountStatus = "active"
	AccountNoPlan     AccountStatus = "no_plan"
	AccountDelinquent AccountStatus = "delinquent"
)

// Guardian is the tutor responsible for one or more patients.
type Guardian struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone"`
}

// Patient is an animal under a guardian's plan.
type Patient struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`
	PlanID  string `json:"plan_id,omitempty"`
}

// LookupResult is what the plan directory returns for a matched identifier.
type LookupResult struct {
	Guardian      Guardian      `json:"guardian"`
	Patients      []Patient     `json:"patients"`
	AccountStatus AccountStatus `json:"account_status"`
}
