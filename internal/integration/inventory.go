package integration

import (
	"fmt"

	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"
)

// InventoryFlow is the read-through stock query.
type InventoryFlow struct {
	ns netsuite.API
}

func NewInventoryFlow(ns netsuite.API) *InventoryFlow {
	return &InventoryFlow{ns: ns}
}

// Stock returns the units available for a sku. A missing sku surfaces as
// netsuite.ErrNotFound, which the endpoint treats as benign.
func (f *InventoryFlow) Stock(sku string) (*models.StockMessage, error) {
	item, err := f.ns.FindInventoryItemBySKU(sku)
	if err != nil {
		if err == netsuite.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up stock for %s: %w", sku, err)
	}
	return &models.StockMessage{SKU: item.ItemID, Quantity: item.QuantityAvailable}, nil
}
