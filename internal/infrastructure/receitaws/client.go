// Package receitaws implementa a consulta de CNPJ no cadastro nacional via
// API pública da ReceitaWS. Usa net/http da biblioteca padrão; não requer SDK.
package receitaws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/application/usecase"
	"github.com/seu-usuario/gestor-api/internal/domain"
)

// Client consulta dados cadastrais de um CNPJ.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ usecase.RegistryGateway = (*Client)(nil)

// NewClient constrói o cliente. token vazio usa o plano gratuito (sujeito a
// rate limit agressivo).
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// resposta relevante da ReceitaWS; o payload real tem dezenas de campos.
type lookupResponse struct {
	Status            string `json:"status"` // "OK" | "ERROR"
	Message           string `json:"message"`
	Nome              string `json:"nome"`
	Fantasia          string `json:"fantasia"`
	UF                string `json:"uf"`
	Telefone          string `json:"telefone"`
	InscricaoEstadual string `json:"inscricao_estadual"`
}

// Lookup consulta o CNPJ (já normalizado para 14 dígitos) e devolve os campos
// de fornecedor. HTTP 429 do upstream vira domain.ErrRateLimited — resultado
// distinto e visível ao usuário. Falhas não são repetidas: sobem como estão.
func (c *Client) Lookup(ctx context.Context, cnpj string) (*dto.RegistryLookupResponse, error) {
	url := fmt.Sprintf("%s/cnpj/%s", c.baseURL, cnpj)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("receitaws: montar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("receitaws: chamada HTTP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("receitaws: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("receitaws: decodificar resposta: %w", err)
	}
	if out.Status == "ERROR" {
		msg := out.Message
		if msg == "" {
			msg = "Erro ao consultar CNPJ."
		}
		return nil, &usecase.LookupFailedError{Message: msg}
	}

	return &dto.RegistryLookupResponse{
		CNPJ:              cnpj,
		Name:              out.Nome,
		State:             out.UF,
		Phone:             out.Telefone,
		TradeName:         out.Fantasia,
		StateRegistration: out.InscricaoEstadual,
	}, nil
}
