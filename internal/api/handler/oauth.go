package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/middleware"
)

// AuthURLGenerator monta a URL de consentimento OAuth da rede principal
type AuthURLGenerator interface {
	GenerateAuthURL(companyID, redirectURI string) (string, error)
}

// GetGoogleAdsAuthURL devolve a URL de consentimento. O código recebido no retorno
// deve ser enviado em authData.code no connect da plataforma.
func GetGoogleAdsAuthURL(generator AuthURLGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := middleware.CompanyID(r.Context())

		authURL, err := generator.GenerateAuthURL(companyID, r.URL.Query().Get("redirectUri"))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": companyID,
				"error":      err.Error(),
			}).Error("Erro ao gerar URL de autorização do Google Ads")

			apiErr := apiErrors.FromError(err, apiErrors.ErrConfiguration)
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"url": authURL})
	})
}
