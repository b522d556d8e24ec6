package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueAlertas = "jobs:alertas_estoque"

// Job é o envelope genérico das tarefas assíncronas.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher publica tarefas em listas Redis. O pool de workers consome via
// BRPOP. Implementa service.PublicadorAlertas.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// PublicarAlertaEstoque enfileira um alerta de estoque baixo.
func (d *Dispatcher) PublicarAlertaEstoque(ctx context.Context, alerta service.AlertaEstoqueBaixo) error {
	return d.enqueue(ctx, QueueAlertas, "alerta_estoque", alerta)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool sobe numWorkers goroutines consumindo a fila de alertas.
// Cada uma bloqueia em BRPOP, zero CPU quando ociosa.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int) {
	alertas := NewAlertaWorker(rdb)
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, alertas, i)
	}
	log.Info().Msgf("pool de workers iniciado com %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, alertas *AlertaWorker, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d encerrando", id)
			return
		default:
			// Pop bloqueante: espera até 5s e volta a checar o ctx.
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueAlertas).Result()
			if err != nil {
				continue
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, alertas, result[1])
		}
	}
}

func processJob(ctx context.Context, alertas *AlertaWorker, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("job com payload inválido")
		return
	}
	switch job.Type {
	case "alerta_estoque":
		alertas.Process(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Msg("tipo de job desconhecido")
	}
}
