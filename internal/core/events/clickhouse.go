package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/store"
)

// DefaultTable is where the ClickHouse sink writes when no table is configured
const DefaultTable = "chargemap_events"

// TableDDL returns the create statement for the events table
func TableDDL(table string) string {
	if table == "" {
		table = DefaultTable
	}
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	event       LowCardinality(String),
	occurred_at DateTime64(3, 'UTC'),
	subject     String,
	user_id     String,
	count       Int32,
	payload     String
) ENGINE = MergeTree
ORDER BY (event, occurred_at)`, table)
}

// Clickhouse appends events to a MergeTree table
type Clickhouse struct {
	CH    store.Clickhouse
	Table string
}

// NewClickhouse returns a sink on table, DefaultTable when empty
func NewClickhouse(ch store.Clickhouse, table string) *Clickhouse {
	if table == "" {
		table = DefaultTable
	}
	return &Clickhouse{CH: ch, Table: table}
}

// Publish implements Publisher
func (c *Clickhouse) Publish(ctx context.Context, e Event) error {
	if c == nil || c.CH == nil {
		return nil
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "encode %s", e.EventName())
	}
	f := FieldsOf(e)
	row := []any{e.EventName(), e.OccurredAt().UTC().Truncate(time.Millisecond), f.Subject, f.UserID, int32(f.Count), string(payload)}
	if err := c.CH.Insert(ctx, c.Table, [][]any{row}); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "insert %s", e.EventName())
	}
	return nil
}
