package metadomain

// Credentials do tenant no Meta. AccountID é o id numérico sem o prefixo act_.
type Credentials struct {
	AccessToken   string `mapstructure:"access_token"`
	AccountID     string `mapstructure:"account_id"`
	ExchangeToken string `mapstructure:"exchange_token"`
}

type AdAccount struct {
	ID           string `json:"id"`
	AccountID    string `json:"account_id"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	TimezoneName string `json:"timezone_name"`
}
