package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/services"
	"github.com/oficinasys/service_order_app/internal/platform/brasilapi"
)

func TestLookupCNPJNotRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := services.NewLookupService(brasilapi.NewClient(server.URL, time.Second))
	_, err := svc.LookupCNPJ(context.Background(), "11.222.333/0001-81")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrLookupUnavailable)
}

func TestLookupCEPNotRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := services.NewLookupService(brasilapi.NewClient(server.URL, time.Second))
	_, err := svc.LookupCEP(context.Background(), "01310-100")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLookupCNPJUpstreamDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := services.NewLookupService(brasilapi.NewClient(server.URL, time.Second))
	_, err := svc.LookupCNPJ(context.Background(), "11222333000181")
	assert.ErrorIs(t, err, apperrors.ErrLookupUnavailable)
}

func TestLookupCNPJFormatsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cnpj": "11.222.333/0001-81",
			"razao_social": "ACME PECAS LTDA",
			"ddd_telefone_1": "(11) 3333-4444",
			"cep": "01310-100",
			"municipio": "Sao Paulo",
			"uf": "SP"
		}`))
	}))
	defer server.Close()

	svc := services.NewLookupService(brasilapi.NewClient(server.URL, time.Second))
	result, err := svc.LookupCNPJ(context.Background(), "11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", result.CNPJ)
	assert.Equal(t, "1133334444", result.Phone)
	assert.Equal(t, "01310100", result.CEP)
	assert.Equal(t, "ACME PECAS LTDA", result.LegalName)
}

func TestLookupCNPJRejectsBadDocument(t *testing.T) {
	svc := services.NewLookupService(brasilapi.NewClient("http://127.0.0.1:0", time.Second))
	_, err := svc.LookupCNPJ(context.Background(), "11222333000100")
	assert.ErrorIs(t, err, services.ErrInvalidCNPJ)
}
