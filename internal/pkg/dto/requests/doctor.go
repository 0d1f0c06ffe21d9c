package requests

type CreateDoctor struct {
	Nome     string `json:"nome" validate:"required"`
	CRM      string `json:"crm" validate:"crm"`
	Telefone string `json:"telefone"`
}

type UpdateDoctor struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome" validate:"required"`
	CRM      string `json:"crm" validate:"crm"`
	Telefone string `json:"telefone"`
}
