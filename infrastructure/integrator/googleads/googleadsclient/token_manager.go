package googleadsclient

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
)

// Margem mínima de validade para reutilizar um access token
const expiryMargin = 5 * time.Minute

type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context, refreshToken string) (*googleadsdomain.TokenResponse, error)
}

type storedToken struct {
	accessToken string
	expiresAt   time.Time
}

// TokenManager guarda os access tokens por refresh token e renova quando necessário.
// mu protege apenas o mapa; renovações concorrentes do mesmo refresh token
// compartilham uma única chamada.
type TokenManager struct {
	refresher TokenRefresher
	mu        sync.Mutex
	tokens    map[string]storedToken
	refreshes singleflight.Group
	now       func() time.Time
}

func NewTokenManager(refresher TokenRefresher) *TokenManager {
	return &TokenManager{
		refresher: refresher,
		tokens:    make(map[string]storedToken),
		now:       time.Now,
	}
}

// Store registra um access token recém obtido, por exemplo na troca do código de autorização
func (tm *TokenManager) Store(refreshToken, accessToken string, expiresIn int64) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.tokens[refreshToken] = storedToken{
		accessToken: accessToken,
		expiresAt:   tm.now().Add(time.Duration(expiresIn) * time.Second),
	}
}

// GetValidAccessToken devolve o token guardado se ainda faltar mais que a margem
// para expirar; caso contrário renova e guarda o novo token.
func (tm *TokenManager) GetValidAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if accessToken, ok := tm.cached(refreshToken); ok {
		return accessToken, nil
	}

	ch := tm.refreshes.DoChan(refreshToken, func() (any, error) {
		return tm.refresh(context.WithoutCancel(ctx), refreshToken)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-ch:
		if result.Err != nil {
			return "", result.Err
		}
		return result.Val.(string), nil
	}
}

func (tm *TokenManager) cached(refreshToken string) (string, bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	stored, ok := tm.tokens[refreshToken]
	if !ok || stored.expiresAt.Sub(tm.now()) <= expiryMargin {
		return "", false
	}
	return stored.accessToken, true
}

func (tm *TokenManager) refresh(ctx context.Context, refreshToken string) (string, error) {
	if accessToken, ok := tm.cached(refreshToken); ok {
		return accessToken, nil
	}

	logrus.Debug("google ads: access token ausente ou perto de expirar, renovando")

	tokenResp, err := tm.refresher.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	tm.Store(refreshToken, tokenResp.AccessToken, tokenResp.ExpiresIn)

	return tokenResp.AccessToken, nil
}
