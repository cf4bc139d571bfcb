package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/metrics"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"golang.org/x/time/rate"
)

// Response é o corpo já lido de uma resposta HTTP
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client executa as requisições de um adaptador com limite de taxa e métricas por operação
type Client struct {
	platform   domain.Platform
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(platform domain.Platform, cfg config.Adapter) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		platform:   platform,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// Do envia a requisição e lê o corpo inteiro. Falhas de transporte voltam como NETWORK_ERROR;
// respostas não 2xx são devolvidas sem erro para que o adaptador interprete o corpo.
func (c *Client) Do(ctx context.Context, req *http.Request, operation string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrNetwork, "limite de requisições").WithPlatform(c.platform.String())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req.WithContext(ctx))
	metrics.AdapterLatency.WithLabelValues(c.platform.String(), operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AdapterRequests.WithLabelValues(c.platform.String(), operation, metrics.OutcomeError).Inc()
		return nil, apiErrors.Wrap(err, apiErrors.ErrNetwork, fmt.Sprintf("erro de rede em %s", operation)).
			WithPlatform(c.platform.String())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.AdapterRequests.WithLabelValues(c.platform.String(), operation, metrics.OutcomeError).Inc()
		return nil, apiErrors.Wrap(err, apiErrors.ErrNetwork, "erro ao ler resposta").WithPlatform(c.platform.String())
	}

	outcome := metrics.OutcomeSuccess
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = metrics.OutcomeError
	}
	metrics.AdapterRequests.WithLabelValues(c.platform.String(), operation, outcome).Inc()

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// APIError é o erro genérico para respostas não 2xx
func APIError(platform domain.Platform, operation string, resp *Response) *apiErrors.CoreError {
	body := string(resp.Body)
	if len(body) > 512 {
		body = body[:512]
	}

	code := apiErrors.ErrAPI
	if resp.StatusCode == http.StatusUnauthorized {
		code = apiErrors.ErrTokenExpired
	}

	return apiErrors.Wrap(
		errors.New(body),
		code,
		fmt.Sprintf("erro na resposta da API em %s. Status: %d", operation, resp.StatusCode),
	).WithPlatform(platform.String())
}
