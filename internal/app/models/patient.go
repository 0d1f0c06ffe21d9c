package models

// Patient is the canonical patient shape. Wire-format variants of the plan
// association are normalized into PlanoSaude at the REST-client boundary;
// core logic never sees the raw aliases.
type Patient struct {
	ID         int64       `json:"id"`
	Nome       string      `json:"nome"`
	CPF        string      `json:"cpf"`
	Telefone   *string     `json:"telefone"`
	PlanoID    *int64      `json:"plano_id"`
	PlanoSaude *HealthPlan `json:"plano_saude,omitempty"`
}
