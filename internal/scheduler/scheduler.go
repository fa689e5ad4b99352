// Package scheduler mantém o ciclo de atualização contínua: um único
// laço verifica periodicamente quais tarefas venceram e as executa uma
// de cada vez, na ordem de registro. Não há concorrência entre
// tarefas; duas sincronizações nunca escrevem no banco ao mesmo tempo.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
)

// Task é uma unidade de trabalho agendável. Run recebe o contexto do
// laço e devolve o erro da execução; o agendador registra a falha e
// segue para a próxima tarefa.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// TaskStatus é a fotografia de uma tarefa para fins de inspeção.
type TaskStatus struct {
	Name      string    `json:"name"`
	Interval  string    `json:"interval"`
	NextRun   time.Time `json:"nextRun"`
	LastRun   time.Time `json:"lastRun,omitempty"`
	LastRunID string    `json:"lastRunId,omitempty"`
	LastError string    `json:"lastError,omitempty"`
}

type taskState struct {
	task      Task
	nextRun   time.Time
	lastRun   time.Time
	lastRunID string
	lastError string
}

type Scheduler struct {
	mu    sync.Mutex
	tasks []*taskState
	poll  time.Duration
	now   func() time.Time
}

func New(poll time.Duration, tasks ...Task) *Scheduler {
	scheduler := &Scheduler{
		poll: poll,
		now:  time.Now,
	}
	for _, task := range tasks {
		scheduler.tasks = append(scheduler.tasks, &taskState{task: task})
	}

	return scheduler
}

// Start roda o laço de agendamento até o contexto ser cancelado. Todas
// as tarefas nascem vencidas, então a primeira verificação executa o
// ciclo completo.
func (s *Scheduler) Start(ctx context.Context) {
	logrus.Info("Entrando no ciclo de atualização contínua")

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	s.runDue(ctx)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Ciclo de atualização encerrado")
			return
		case <-ticker.C:
			s.runDue(ctx)
		}
	}
}

// runDue executa, na ordem de registro, toda tarefa cujo horário
// venceu, reagendando cada uma a partir do instante da verificação.
func (s *Scheduler) runDue(ctx context.Context) {
	now := s.now()

	for _, state := range s.tasks {
		s.mu.Lock()
		due := !now.Before(state.nextRun)
		s.mu.Unlock()

		if !due {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		s.runTask(ctx, state, now)
	}
}

func (s *Scheduler) runTask(ctx context.Context, state *taskState, now time.Time) {
	runID, err := gonanoid.New()
	if err != nil {
		runID = now.Format("20060102150405")
	}

	logger := logrus.WithFields(logrus.Fields{
		"task":   state.task.Name,
		"run_id": runID,
	})
	logger.Info("Executando tarefa agendada")

	runErr := s.safeRun(ctx, state.task, logger)

	s.mu.Lock()
	state.lastRun = now
	state.lastRunID = runID
	state.lastError = ""
	if runErr != nil {
		state.lastError = runErr.Error()
	}
	state.nextRun = now.Add(state.task.Interval)
	nextRun := state.nextRun
	s.mu.Unlock()

	if runErr != nil {
		logger.WithError(runErr).Error("Tarefa falhou")
	}
	logger.WithField("next_run", nextRun.Format(time.RFC3339)).Info("Próxima execução agendada")
}

// safeRun isola a execução: um pânico dentro da tarefa vira um erro
// registrado em vez de derrubar o laço inteiro.
func (s *Scheduler) safeRun(ctx context.Context, task Task, logger *logrus.Entry) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("pânico na tarefa %s: %v", task.Name, recovered)
			logger.WithField("panic", recovered).Error("Tarefa interrompida por pânico")
		}
	}()

	return task.Run(ctx)
}

// RunNow antecipa uma tarefa para a próxima verificação do laço. A
// execução continua acontecendo no laço, nunca na goroutine de quem
// chama.
func (s *Scheduler) RunNow(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, state := range s.tasks {
		if state.task.Name == name {
			state.nextRun = time.Time{}
			return nil
		}
	}

	return fmt.Errorf("tarefa desconhecida: %s", name)
}

// Status devolve a fotografia de todas as tarefas registradas.
func (s *Scheduler) Status() []TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]TaskStatus, 0, len(s.tasks))
	for _, state := range s.tasks {
		statuses = append(statuses, TaskStatus{
			Name:      state.task.Name,
			Interval:  state.task.Interval.String(),
			NextRun:   state.nextRun,
			LastRun:   state.lastRun,
			LastRunID: state.lastRunID,
			LastError: state.lastError,
		})
	}

	return statuses
}
