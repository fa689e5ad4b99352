package trierclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/internal/config"
)

// ErrFetchFailed indica que todas as retentativas se esgotaram. É
// distinto de uma resposta vazia bem-sucedida: quem chama decide entre
// abortar a janela (erro) e encerrar a paginação (página vazia).
var ErrFetchFailed = errors.New("todas as tentativas de requisição falharam")

// Parâmetros de paginação do gateway Trier SGF.
const (
	paramFirstRecord = "primeiroRegistro"
	paramPageCount   = "quantidadeRegistros"
)

type Client interface {
	FetchPage(ctx context.Context, endpoint string, params url.Values, headers http.Header) ([]json.RawMessage, error)
	FetchAllPages(ctx context.Context, endpoint string, params url.Values) ([]json.RawMessage, error)
}

type TrierClient struct {
	httpClient *http.Client
	cfg        config.Trier
}

func NewClient(cfg config.Trier) Client {
	return &TrierClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		cfg: cfg,
	}
}

// FetchPage realiza um GET autenticado com a política de retentativas:
// ciclos de tentativas com pausa curta entre tentativas e pausa longa
// entre ciclos. Qualquer erro de rede ou status fora de 2xx conta como
// tentativa falha.
func (c *TrierClient) FetchPage(ctx context.Context, endpoint string, params url.Values, headers http.Header) ([]json.RawMessage, error) {
	var lastErr error

	for cycle := 1; cycle <= c.cfg.RetryCycles; cycle++ {
		for attempt := 1; attempt <= c.cfg.AttemptsPerCycle; attempt++ {
			page, err := c.doRequest(ctx, endpoint, params, headers)
			if err == nil {
				return page, nil
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			lastErr = err
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"cycle":    cycle,
				"attempt":  attempt,
			}).WithError(err).Warn("Tentativa de requisição falhou")

			if attempt < c.cfg.AttemptsPerCycle {
				if err := sleepContext(ctx, c.cfg.RetryAttemptDelay); err != nil {
					return nil, err
				}
			}
		}

		if cycle < c.cfg.RetryCycles {
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"cycle":    cycle,
				"delay":    c.cfg.RetryCycleDelay.String(),
			}).Warn("Ciclo de requisições falhou, aguardando antes do próximo ciclo")
			if err := sleepContext(ctx, c.cfg.RetryCycleDelay); err != nil {
				return nil, err
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"attempts": c.cfg.RetryCycles * c.cfg.AttemptsPerCycle,
	}).Error("Todas as tentativas de requisição falharam")

	return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, endpoint, lastErr)
}

// FetchAllPages percorre um endpoint paginado acumulando os registros.
// Uma página menor que o tamanho de página, ou vazia, encerra a busca;
// uma falha de página propaga o erro.
func (c *TrierClient) FetchAllPages(ctx context.Context, endpoint string, params url.Values) ([]json.RawMessage, error) {
	all := make([]json.RawMessage, 0)
	firstRecord := 0

	for {
		pageParams := url.Values{}
		for key, values := range params {
			pageParams[key] = values
		}
		pageParams.Set(paramFirstRecord, strconv.Itoa(firstRecord))
		pageParams.Set(paramPageCount, strconv.Itoa(c.cfg.PageSize))

		page, err := c.FetchPage(ctx, endpoint, pageParams, nil)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		all = append(all, page...)

		if len(page) < c.cfg.PageSize {
			break
		}
		firstRecord += c.cfg.PageSize
	}

	return all, nil
}

func (c *TrierClient) doRequest(ctx context.Context, endpoint string, params url.Values, headers http.Header) ([]json.RawMessage, error) {
	target, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	target.Path, err = url.JoinPath(target.Path, endpoint)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o caminho do endpoint: %w", err)
	}
	target.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Cabeçalhos do chamador complementam os padrões, mas o token de
	// autorização é sempre o configurado.
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var page []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return page, nil
}

func sleepContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
