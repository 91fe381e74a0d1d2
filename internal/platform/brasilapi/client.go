// Package brasilapi is a thin client for the public BrasilAPI registry
// endpoints used to pre-fill registration forms.
package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/oficinasys/service_order_app/internal/apperrors"
)

const DefaultBaseURL = "https://brasilapi.com.br"

// Client calls the BrasilAPI CNPJ and CEP endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client against the given base URL. An empty baseURL
// falls back to the public endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CNPJResult is the subset of the CNPJ registry payload the application uses.
type CNPJResult struct {
	CNPJ         string `json:"cnpj"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia"`
	Email        string `json:"email"`
	Phone        string `json:"ddd_telefone_1"`
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	District     string `json:"bairro"`
	City         string `json:"municipio"`
	State        string `json:"uf"`
}

// CEPResult is the subset of the CEP registry payload the application uses.
type CEPResult struct {
	CEP      string `json:"cep"`
	Street   string `json:"street"`
	District string `json:"neighborhood"`
	City     string `json:"city"`
	State    string `json:"state"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: registry has no record for %s", apperrors.ErrNotFound, path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode registry response: %w", err)
	}
	return nil
}

// FetchCNPJ retrieves company registration data for a bare-digit CNPJ.
func (c *Client) FetchCNPJ(ctx context.Context, cnpj string) (*CNPJResult, error) {
	var result CNPJResult
	if err := c.get(ctx, "/api/cnpj/v1/"+cnpj, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchCEP retrieves address data for a bare-digit postal code.
func (c *Client) FetchCEP(ctx context.Context, cep string) (*CEPResult, error) {
	var result CEPResult
	if err := c.get(ctx, "/api/cep/v2/"+cep, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
