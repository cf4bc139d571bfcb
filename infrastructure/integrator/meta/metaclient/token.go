package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetLongLivedToken obtém um token de longa duração do Meta
// usando um token de curta duração
func (c *MetaClient) GetLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "token de acesso não pode ser vazio").
			WithPlatform(domain.PlatformMeta.String())
	}
	if c.Cfg.AppID == "" || c.Cfg.AppSecret == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "META_APP_ID/META_APP_SECRET não configurados").
			WithPlatform(domain.PlatformMeta.String())
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.Cfg.AppID)
	params.Add("client_secret", c.Cfg.AppSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/oauth/access_token?%s", c.Cfg.URL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, req, "token_exchange")
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		logrus.Errorf("Erro obtendo token longa duração. Status: %d", resp.StatusCode)
		return nil, apiErrors.Wrap(
			errors.New(string(resp.Body)),
			apiErrors.ErrTokenExchangeFailed,
			fmt.Sprintf("erro ao obter token de longa duração. Status: %d", resp.StatusCode),
		).WithPlatform(domain.PlatformMeta.String())
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(resp.Body, &tokenResp); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrTokenExchangeFailed, "erro ao decodificar resposta").
			WithPlatform(domain.PlatformMeta.String())
	}

	if tokenResp.AccessToken == "" {
		return nil, apiErrors.New(apiErrors.ErrTokenExchangeFailed, "token retornado pela API é vazio").
			WithPlatform(domain.PlatformMeta.String())
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration calcula a data de expiração do token com base no tempo de expiração em segundos
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	// Renova um dia antes da expiração real
	buffer := int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return now.Add(time.Duration(safeExpiresIn) * time.Second)
}
