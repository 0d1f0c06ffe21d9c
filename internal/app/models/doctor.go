package models

type Doctor struct {
	ID       int64   `json:"id"`
	Nome     string  `json:"nome"`
	CRM      string  `json:"crm"`
	Telefone *string `json:"telefone"`
}
