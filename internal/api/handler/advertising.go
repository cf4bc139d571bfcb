package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/advertising"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/middleware"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

const defaultHistoryLimit = 30

type connectRequest struct {
	AuthData map[string]string `json:"authData"`
}

type customerRequest struct {
	CustomerID string `json:"customerId"`
}

func platformParam(r *http.Request) domain.Platform {
	return domain.Platform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))
}

func ConnectPlatform(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req connectRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp := service.ConnectPlatform(r.Context(), middleware.CompanyID(r.Context()), platformParam(r), req.AuthData)
		writeResponse(w, resp, http.StatusOK)
	})
}

func ListConnections(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := service.GetAllPlatformConnections(r.Context(), middleware.CompanyID(r.Context()))
		writeResponse(w, resp, http.StatusOK)
	})
}

func ListCampaigns(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := service.GetAllCampaigns(r.Context(), middleware.CompanyID(r.Context()))
		writeResponse(w, resp, http.StatusOK)
	})
}

func CreateCampaign(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft domain.CampaignDraft
		if !decodeBody(w, r, &draft) {
			return
		}

		resp := service.CreateCampaign(r.Context(), middleware.CompanyID(r.Context()), platformParam(r), draft)
		writeResponse(w, resp, http.StatusCreated)
	})
}

func CreateComprehensiveCampaign(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var spec domain.ComprehensiveCampaignSpec
		if !decodeBody(w, r, &spec) {
			return
		}

		resp := service.CreateComprehensiveCampaign(r.Context(), middleware.CompanyID(r.Context()), spec)
		writeResponse(w, resp, http.StatusCreated)
	})
}

// GetUnifiedAnalytics aceita startDate e endDate (YYYY-MM-DD). Sem datas usa os últimos 30 dias.
func GetUnifiedAnalytics(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		start, end, err := utils.ParseDateRange(query.Get("startDate"), query.Get("endDate"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		var dateRange *domain.DateRange
		if start != nil {
			dateRange = &domain.DateRange{StartDate: *start, EndDate: *end}
		}

		resp := service.GetUnifiedAnalytics(r.Context(), middleware.CompanyID(r.Context()), dateRange)
		writeResponse(w, resp, http.StatusOK)
	})
}

func GetAnalyticsHistory(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultHistoryLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		resp := service.GetAnalyticsHistory(r.Context(), middleware.CompanyID(r.Context()), limit)
		writeResponse(w, resp, http.StatusOK)
	})
}

func SendManagerInvitation(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req customerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp := service.SendManagerInvitation(r.Context(), middleware.CompanyID(r.Context()), req.CustomerID)
		writeResponse(w, resp, http.StatusOK)
	})
}

func ReactivateManagerLink(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req customerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp := service.ReactivateManagerLink(r.Context(), middleware.CompanyID(r.Context()), req.CustomerID)
		writeResponse(w, resp, http.StatusOK)
	})
}

func AcceptManagerInvitation(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req customerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp := service.AcceptManagerInvitation(r.Context(), middleware.CompanyID(r.Context()), req.CustomerID)
		writeResponse(w, resp, http.StatusOK)
	})
}

// CheckManagerLink usa o customerId da query ou, sem ele, a conta conectada do tenant
func CheckManagerLink(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := r.URL.Query().Get("customerId")

		resp := service.CheckManagerLink(r.Context(), middleware.CompanyID(r.Context()), customerID)
		writeResponse(w, resp, http.StatusOK)
	})
}

func GetServiceStatus(service advertising.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, service.GetServiceStatus(), http.StatusOK)
	})
}
