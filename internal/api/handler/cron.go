package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeAnalyticsCleanup = "analytics-cleanup"
	CronJobTypeAll              = "all"
)

// CronJob é o contrato das rotinas agendadas expostas para execução manual
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	AnalyticsCleanup CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")

		var started bool
		switch cronType {
		case CronJobTypeAnalyticsCleanup, CronJobTypeAll:
			if services.AnalyticsCleanup == nil {
				apiErrors.WriteError(w, apiErrors.ErrConfiguration, "Serviço de limpeza de analytics não disponível", nil)
				return
			}
			started = services.AnalyticsCleanup.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: analytics-cleanup, all", nil)
			return
		}

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AnalyticsCleanup != nil {
			status[CronJobTypeAnalyticsCleanup] = services.AnalyticsCleanup.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
