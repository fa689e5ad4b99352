package domain

import "time"

// Checkpoint é o marcador durável de progresso de uma tarefa longa.
// Guarda a data de início da última janela concluída com sucesso;
// a retomada parte de LastCompletedDate + tamanho da janela.
type Checkpoint struct {
	TaskID            string    `json:"taskId"`
	LastCompletedDate string    `json:"lastCompletedDate"`
	UpdatedAt         time.Time `json:"updatedAt,omitempty"`
}
