package handler

import (
	"net/http"

	"github.com/mlourenci/despensa-api/internal/scheduler"
	"github.com/mlourenci/despensa-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobServices contém os serviços de cron que podem ser disparados
// manualmente
type CronJobServices struct {
	AnalysisDigestService *scheduler.AnalysisDigestService
}

// RunCronJob dispara manualmente o digest de análises
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if services.AnalysisDigestService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de digest de análises não disponível", nil)
			return
		}

		services.AnalysisDigestService.TriggerManualDigest()

		response := map[string]any{
			"message": "Digest de análises iniciado com sucesso",
		}
		writeJSON(w, response)
	}
}

// GetCronStatus retorna o status do agendador do digest
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.AnalysisDigestService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de digest de análises não disponível", nil)
			return
		}

		writeJSON(w, map[string]any{
			"digest": services.AnalysisDigestService.Status(),
		})
	}
}
