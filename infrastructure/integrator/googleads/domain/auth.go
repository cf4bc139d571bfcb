package googleadsdomain

// Credentials é o blob de credenciais do tenant decodificado para a rede principal
type Credentials struct {
	CustomerID      string `mapstructure:"customer_id"`
	LoginCustomerID string `mapstructure:"login_customer_id"`
	RefreshToken    string `mapstructure:"refresh_token"`
	AccessToken     string `mapstructure:"access_token"`
	Email           string `mapstructure:"email"`
	Code            string `mapstructure:"code"`
	RedirectURI     string `mapstructure:"redirect_uri"`
}

// TokenResponse representa a resposta do endpoint de token OAuth2
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
}

// ProfileClaims são os dados de perfil lidos do id_token OpenID
type ProfileClaims struct {
	Subject string
	Email   string
	Name    string
}
