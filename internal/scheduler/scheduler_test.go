package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
}

func TestRunDue_ExecutaTarefasVencidasNaOrdemDeRegistro(t *testing.T) {
	var order []string

	sched := New(time.Second,
		Task{Name: "primeira", Interval: time.Hour, Run: func(context.Context) error {
			order = append(order, "primeira")
			return nil
		}},
		Task{Name: "segunda", Interval: time.Hour, Run: func(context.Context) error {
			order = append(order, "segunda")
			return nil
		}},
	)
	sched.now = fixedNow

	sched.runDue(context.Background())

	assert.Equal(t, []string{"primeira", "segunda"}, order)
}

func TestRunDue_ReagendaAPartirDoInstanteDaVerificacao(t *testing.T) {
	sched := New(time.Second, Task{
		Name:     "vendas",
		Interval: 30 * time.Minute,
		Run:      func(context.Context) error { return nil },
	})
	sched.now = fixedNow

	sched.runDue(context.Background())

	statuses := sched.Status()
	require.Len(t, statuses, 1)
	assert.Equal(t, fixedNow().Add(30*time.Minute), statuses[0].NextRun)
	assert.Equal(t, fixedNow(), statuses[0].LastRun)
	assert.NotEmpty(t, statuses[0].LastRunID)
}

func TestRunDue_TarefaAindaNoPrazoNaoExecuta(t *testing.T) {
	executions := 0

	sched := New(time.Second, Task{
		Name:     "vendas",
		Interval: 30 * time.Minute,
		Run: func(context.Context) error {
			executions++
			return nil
		},
	})

	current := fixedNow()
	sched.now = func() time.Time { return current }

	sched.runDue(context.Background())
	require.Equal(t, 1, executions)

	current = current.Add(10 * time.Minute)
	sched.runDue(context.Background())
	assert.Equal(t, 1, executions)

	current = current.Add(21 * time.Minute)
	sched.runDue(context.Background())
	assert.Equal(t, 2, executions)
}

func TestRunDue_FalhaDeUmaTarefaNaoImpedeAsDemais(t *testing.T) {
	var order []string

	sched := New(time.Second,
		Task{Name: "quebrada", Interval: time.Hour, Run: func(context.Context) error {
			order = append(order, "quebrada")
			return errors.New("gateway indisponível")
		}},
		Task{Name: "saudavel", Interval: time.Hour, Run: func(context.Context) error {
			order = append(order, "saudavel")
			return nil
		}},
	)
	sched.now = fixedNow

	sched.runDue(context.Background())

	assert.Equal(t, []string{"quebrada", "saudavel"}, order)

	statuses := sched.Status()
	assert.Equal(t, "gateway indisponível", statuses[0].LastError)
	assert.Empty(t, statuses[1].LastError)
}

func TestRunDue_PanicoViraErroRegistrado(t *testing.T) {
	sched := New(time.Second, Task{
		Name:     "instavel",
		Interval: time.Hour,
		Run: func(context.Context) error {
			panic("índice fora do intervalo")
		},
	})
	sched.now = fixedNow

	require.NotPanics(t, func() {
		sched.runDue(context.Background())
	})

	statuses := sched.Status()
	assert.Contains(t, statuses[0].LastError, "índice fora do intervalo")
	assert.Equal(t, fixedNow().Add(time.Hour), statuses[0].NextRun)
}

func TestRunDue_ErroAnteriorLimpoAposExecucaoComSucesso(t *testing.T) {
	fail := true

	sched := New(time.Second, Task{
		Name:     "vendas",
		Interval: 30 * time.Minute,
		Run: func(context.Context) error {
			if fail {
				return errors.New("falha transitória")
			}
			return nil
		},
	})

	current := fixedNow()
	sched.now = func() time.Time { return current }

	sched.runDue(context.Background())
	require.Equal(t, "falha transitória", sched.Status()[0].LastError)

	fail = false
	current = current.Add(time.Hour)
	sched.runDue(context.Background())
	assert.Empty(t, sched.Status()[0].LastError)
}

func TestRunNow_AntecipaATarefaParaAProximaVerificacao(t *testing.T) {
	executions := 0

	sched := New(time.Second, Task{
		Name:     "vendas",
		Interval: time.Hour,
		Run: func(context.Context) error {
			executions++
			return nil
		},
	})

	current := fixedNow()
	sched.now = func() time.Time { return current }

	sched.runDue(context.Background())
	require.Equal(t, 1, executions)

	current = current.Add(time.Minute)
	sched.runDue(context.Background())
	require.Equal(t, 1, executions)

	require.NoError(t, sched.RunNow("vendas"))
	sched.runDue(context.Background())
	assert.Equal(t, 2, executions)
}

func TestRunNow_TarefaDesconhecidaDevolveErro(t *testing.T) {
	sched := New(time.Second, Task{
		Name:     "vendas",
		Interval: time.Hour,
		Run:      func(context.Context) error { return nil },
	})

	err := sched.RunNow("inexistente")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inexistente")
}

func TestRunDue_ContextoCanceladoInterrompeOCiclo(t *testing.T) {
	executions := 0

	sched := New(time.Second, Task{
		Name:     "vendas",
		Interval: time.Hour,
		Run: func(context.Context) error {
			executions++
			return nil
		},
	})
	sched.now = fixedNow

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sched.runDue(ctx)

	assert.Zero(t, executions)
}
