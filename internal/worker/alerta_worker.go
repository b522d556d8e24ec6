package worker

import (
	"context"
	"encoding/json"

	"github.com/flavyo560/Controle-de-estoque/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// historicoAlertas guarda os últimos alertas processados para o painel da
// gerência consultar sem bater no banco.
const (
	historicoAlertas    = "alertas:historico"
	historicoAlertasMax = 100
)

// AlertaWorker processa alertas de estoque baixo: registra no log e mantém o
// histórico recente no Redis.
type AlertaWorker struct {
	rdb *redis.Client
}

func NewAlertaWorker(rdb *redis.Client) *AlertaWorker {
	return &AlertaWorker{rdb: rdb}
}

func (w *AlertaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var alerta service.AlertaEstoqueBaixo
	if err := json.Unmarshal(raw, &alerta); err != nil {
		log.Error().Err(err).Msg("alerta_worker: payload inválido")
		return
	}

	log.Warn().
		Str("produto_id", alerta.ProdutoID.String()).
		Str("descricao", alerta.Descricao).
		Int("quantidade", alerta.Quantidade).
		Int("estoque_minimo", alerta.EstoqueMinimo).
		Msg("estoque baixo")

	if err := w.rdb.LPush(ctx, historicoAlertas, raw).Err(); err != nil {
		log.Error().Err(err).Msg("alerta_worker: falha ao gravar histórico")
		return
	}
	_ = w.rdb.LTrim(ctx, historicoAlertas, 0, historicoAlertasMax-1).Err()
}
