package requests

type CreateHealthPlan struct {
	Nome      string `json:"nome" validate:"required"`
	Operadora string `json:"operadora" validate:"required"`
	Validade  string `json:"validade" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=ativo inativo"`
}

type UpdateHealthPlan struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome" validate:"required"`
	Operadora string `json:"operadora" validate:"required"`
	Validade  string `json:"validade" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=ativo inativo"`
}
