package logic

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schema string

// Migrate creates the relational schema. It is idempotent.
func Migrate(ctx context.Context, pg PgPool) error {
	if _, err := pg.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
