package usecase

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// rollback is safe to defer after a commit; pgx reports ErrTxClosed
// which is not worth logging.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
