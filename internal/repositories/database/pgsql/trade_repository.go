package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nmishr/currency_exchange/internal/core/domain"
	"github.com/nmishr/currency_exchange/internal/utils/mapping"
)

// PgxTradeRepository implements the repositories.TradeRepositoryFacade interface using pgxpool.
type PgxTradeRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTradeRepository creates a new PgxTradeRepository.
func NewPgxTradeRepository(pool *pgxpool.Pool) *PgxTradeRepository {
	return &PgxTradeRepository{pool: pool}
}

// SaveTrade appends a new trade record.
func (r *PgxTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	modelTrade := mapping.ToModelTrade(trade)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO trades (trade_id, client_id, amount, source_currency, target_currency, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		modelTrade.TradeID, modelTrade.ClientID, modelTrade.Amount,
		modelTrade.SourceCurrency, modelTrade.TargetCurrency, modelTrade.ExecutedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save trade: %w", err)
	}
	return nil
}
