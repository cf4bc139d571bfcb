package domain

import "time"

type ConnectionStatus string

const (
	ConnectionStatusConnected    ConnectionStatus = "connected"
	ConnectionStatusDisconnected ConnectionStatus = "disconnected"
	ConnectionStatusError        ConnectionStatus = "error"
)

// AccountInfo são os metadados da conta de anúncios retornados pela rede
type AccountInfo struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Currency string `json:"currency,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// PlatformConnection é o estado de conexão de um tenant com uma rede.
// Existe no máximo um registro por (tenant, plataforma) e ele é sobrescrito a cada verificação.
type PlatformConnection struct {
	Platform      Platform         `json:"platform"`
	Status        ConnectionStatus `json:"status"`
	LastConnected *time.Time       `json:"lastConnected,omitempty"`
	Error         string           `json:"error,omitempty"`
	AccountInfo   *AccountInfo     `json:"accountInfo,omitempty"`
}

func NewConnectedStatus(platform Platform, info *AccountInfo, at time.Time) *PlatformConnection {
	return &PlatformConnection{
		Platform:      platform,
		Status:        ConnectionStatusConnected,
		LastConnected: &at,
		AccountInfo:   info,
	}
}

func NewErrorStatus(platform Platform, err error) *PlatformConnection {
	return &PlatformConnection{
		Platform: platform,
		Status:   ConnectionStatusError,
		Error:    err.Error(),
	}
}

func NewDisconnectedStatus(platform Platform) *PlatformConnection {
	return &PlatformConnection{
		Platform: platform,
		Status:   ConnectionStatusDisconnected,
	}
}

// PlatformCredentials guarda o blob opaco de credenciais de uma rede.
// Cada adaptador decodifica Data para o seu tipo de credencial.
type PlatformCredentials struct {
	Platform Platform          `json:"platform"`
	Data     map[string]string `json:"data"`
}

func (c PlatformCredentials) Get(key string) string {
	if c.Data == nil {
		return ""
	}
	return c.Data[key]
}
