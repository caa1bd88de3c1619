// Package memstore provides in-memory implementations of the persistence
// ports: the order and customer repositories and the combined product catalog
// and stock ledger. All stores are safe for concurrent use; aggregates are
// stored and returned as independent copies.
package memstore

import "ordering/internal/core/ports"

var (
	_ ports.OrderRepository    = (*OrderRepository)(nil)
	_ ports.CustomerRepository = (*CustomerRepository)(nil)
	_ ports.ProductCatalog     = (*Inventory)(nil)
	_ ports.InventoryLedger    = (*Inventory)(nil)
)
