// Package repokit holds the seams SQL repos bind to and the startup dependency guard
package repokit

import "chargemap/internal/platform/store"

// Queryer is what a bound repo runs statements against, a pool or a tx
type Queryer = store.RowQuerier

// TxRunner opens transactions; the postgres adapter implements it
type TxRunner = store.TxRunner

type (
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)
