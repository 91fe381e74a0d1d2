package brasilapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinasys/service_order_app/internal/apperrors"
)

func TestFetchCNPJ(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cnpj/v1/11222333000181", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cnpj": "11222333000181",
			"razao_social": "ACME PECAS LTDA",
			"nome_fantasia": "ACME",
			"email": "contato@acme.com.br",
			"ddd_telefone_1": "1133334444",
			"cep": "01310100",
			"logradouro": "Avenida Paulista",
			"numero": "1000",
			"bairro": "Bela Vista",
			"municipio": "Sao Paulo",
			"uf": "SP"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result, err := client.FetchCNPJ(context.Background(), "11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "ACME PECAS LTDA", result.RazaoSocial)
	assert.Equal(t, "ACME", result.NomeFantasia)
	assert.Equal(t, "Avenida Paulista", result.Street)
	assert.Equal(t, "SP", result.State)
}

func TestFetchCEP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cep/v2/01310100", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cep": "01310100",
			"street": "Avenida Paulista",
			"neighborhood": "Bela Vista",
			"city": "Sao Paulo",
			"state": "SP"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result, err := client.FetchCEP(context.Background(), "01310100")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", result.Street)
	assert.Equal(t, "Sao Paulo", result.City)
}

func TestFetchCNPJNotRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchCNPJ(context.Background(), "11222333000181")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFetchCEPNotRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchCEP(context.Background(), "01310100")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFetchCNPJUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchCNPJ(context.Background(), "11222333000181")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "status 500")
}
