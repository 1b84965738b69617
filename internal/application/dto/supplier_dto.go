package dto

import "time"

// SupplierResponse documento de fornecedor exposto pela API.
type SupplierResponse struct {
	ID                int64     `json:"id"`
	CNPJ              string    `json:"cnpj"`
	Name              string    `json:"name"`
	TradeName         string    `json:"tradeName"`
	StateRegistration string    `json:"stateRegistration"`
	Phone             string    `json:"phone"`
	State             string    `json:"state"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// RegistryLookupResponse resultado normalizado da consulta de CNPJ no
// cadastro nacional (ReceitaWS).
type RegistryLookupResponse struct {
	CNPJ              string `json:"cnpj"`
	Name              string `json:"name"`
	State             string `json:"state"`
	Phone             string `json:"phone"`
	TradeName         string `json:"tradeName"`
	StateRegistration string `json:"stateRegistration"`
}
