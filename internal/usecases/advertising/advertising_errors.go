package advertising

import "errors"

var (
	ErrCompanyRequired       = errors.New("companyId obrigatório")
	ErrNoCredentials         = errors.New("plataforma não conectada")
	ErrHistoryUnavailable    = errors.New("histórico de analytics não configurado")
	ErrGoogleAdsNotAvailable = errors.New("integração com o Google Ads não configurada")
)
