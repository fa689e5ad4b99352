package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

const checkpointsTable = "sync_checkpoints"

const checkpointsTableDDL = `
	CREATE TABLE IF NOT EXISTS sync_checkpoints (
		task_id             TEXT PRIMARY KEY,
		last_completed_date TEXT NOT NULL,
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// CheckpointRepository guarda o marcador de retomada de cada tarefa
// longa. "Salvo ou não" é a única garantia: quem chama precisa tolerar
// reprocessar a última janela não confirmada.
type CheckpointRepository interface {
	Save(ctx context.Context, taskID, lastCompletedDate string) error
	Load(ctx context.Context, taskID string) (*domain.Checkpoint, error)
	Clear(ctx context.Context, taskID string) error
}

type checkpointRepository struct {
	conn *postgres.Connection
}

func NewCheckpointRepository(conn *postgres.Connection) CheckpointRepository {
	return &checkpointRepository{conn: conn}
}

func (r *checkpointRepository) Save(ctx context.Context, taskID, lastCompletedDate string) error {
	if _, err := r.conn.ExecContext(ctx, checkpointsTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", checkpointsTable, err)
	}

	query, args, err := squirrel.
		Insert(checkpointsTable).
		Columns("task_id", "last_completed_date").
		Values(taskID, lastCompletedDate).
		Suffix(`
			ON CONFLICT (task_id) DO UPDATE SET
				last_completed_date = EXCLUDED.last_completed_date,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar checkpoint da tarefa '%s': %w", taskID, err)
	}
	return nil
}

func (r *checkpointRepository) Load(ctx context.Context, taskID string) (*domain.Checkpoint, error) {
	query, args, err := squirrel.
		Select("task_id", "last_completed_date", "updated_at").
		From(checkpointsTable).
		Where(squirrel.Eq{"task_id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	checkpoint := &domain.Checkpoint{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(&checkpoint.TaskID, &checkpoint.LastCompletedDate, &checkpoint.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler checkpoint da tarefa '%s': %w", taskID, err)
	}

	return checkpoint, nil
}

func (r *checkpointRepository) Clear(ctx context.Context, taskID string) error {
	query, args, err := squirrel.
		Delete(checkpointsTable).
		Where(squirrel.Eq{"task_id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if isUndefinedTable(err) {
			return nil
		}
		return fmt.Errorf("erro ao remover checkpoint da tarefa '%s': %w", taskID, err)
	}
	return nil
}
