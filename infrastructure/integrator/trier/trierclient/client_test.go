package trierclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sgf-sync-api/internal/config"
)

func testConfig(baseURL string) config.Trier {
	return config.Trier{
		BaseURL:           baseURL,
		AccessToken:       "token-de-teste",
		PageSize:          999,
		RequestTimeout:    5 * time.Second,
		RetryCycles:       2,
		AttemptsPerCycle:  3,
		RetryAttemptDelay: time.Millisecond,
		RetryCycleDelay:   time.Millisecond,
	}
}

func makePage(size, offset int) []map[string]any {
	page := make([]map[string]any, 0, size)
	for i := 0; i < size; i++ {
		page = append(page, map[string]any{"numeroNota": fmt.Sprintf("%d", offset+i)})
	}
	return page
}

func TestFetchAllPages_PercorreTodasAsPaginas(t *testing.T) {
	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Query().Get("primeiroRegistro"))

		assert.Equal(t, "Bearer token-de-teste", r.Header.Get("Authorization"))
		assert.Equal(t, "999", r.URL.Query().Get("quantidadeRegistros"))

		first := r.URL.Query().Get("primeiroRegistro")
		var page []map[string]any
		switch first {
		case "0":
			page = makePage(999, 0)
		case "999":
			page = makePage(999, 999)
		case "1998":
			page = makePage(500, 1998)
		default:
			t.Fatalf("paginação inesperada: primeiroRegistro=%s", first)
		}

		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	records, err := client.FetchAllPages(context.Background(), "/rest/integracao/venda/obter-alterados-v1", url.Values{})
	require.NoError(t, err)

	assert.Len(t, records, 2498)
	assert.Equal(t, []string{"0", "999", "1998"}, requests)
}

func TestFetchAllPages_PaginaVaziaEncerraSemErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	records, err := client.FetchAllPages(context.Background(), "/rest/integracao/compra/obter-alterados-v1", url.Values{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchPage_EsgotaCiclosDeRetentativa(t *testing.T) {
	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.FetchPage(context.Background(), "/rest/integracao/venda/obter-alterados-v1", url.Values{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)

	// 2 ciclos de 3 tentativas
	assert.Equal(t, 6, attempts)
}

func TestFetchPage_RecuperaAposFalhaTransitoria(t *testing.T) {
	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(makePage(1, 0))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	page, err := client.FetchPage(context.Background(), "/rest/integracao/venda/obter-alterados-v1", url.Values{}, nil)
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, 3, attempts)
}

func TestFetchPage_TokenSempreSobrepoeCabecalhoDoChamador(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-de-teste", r.Header.Get("Authorization"))
		assert.Equal(t, "valor-extra", r.Header.Get("X-Extra"))
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	headers := http.Header{}
	headers.Set("Authorization", "Bearer token-forjado")
	headers.Set("X-Extra", "valor-extra")

	_, err := client.FetchPage(context.Background(), "/rest/integracao/venda/obter-alterados-v1", url.Values{}, headers)
	require.NoError(t, err)
}

func TestFetchPage_ContextoCanceladoInterrompeRetentativas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.RetryAttemptDelay = time.Minute
	client := NewClient(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.FetchPage(ctx, "/rest/integracao/venda/obter-alterados-v1", url.Values{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
