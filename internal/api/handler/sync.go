package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/internal/scheduler"
	"github.com/vfg2006/sgf-sync-api/pkg/apiErrors"
)

// RunSyncTask antecipa a execução de uma tarefa do ciclo contínuo. A
// tarefa roda no laço do agendador, nunca na goroutine da requisição.
func RunSyncTask(sched *scheduler.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskName := httprouter.ParamsFromContext(r.Context()).ByName("task")
		if taskName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tarefa de sincronização não especificada", nil)
			return
		}

		if err := sched.RunNow(taskName); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownSyncTask, err.Error(), nil)
			return
		}

		logrus.WithField("task", taskName).Info("Execução manual de tarefa solicitada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		response := map[string]any{
			"message": "Tarefa agendada para a próxima verificação",
			"task":    taskName,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("Erro ao escrever a resposta do disparo manual")
		}
	}
}

// GetSyncStatus devolve a fotografia das tarefas do agendador.
func GetSyncStatus(sched *scheduler.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sched.Status()); err != nil {
			logrus.WithError(err).Warn("Erro ao escrever a resposta de status")
		}
	}
}
