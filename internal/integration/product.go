package integration

import (
	"fmt"
	"time"

	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"
)

// ProductFlow pulls the NetSuite item catalog incrementally.
type ProductFlow struct {
	ns netsuite.API
}

func NewProductFlow(ns netsuite.API) *ProductFlow {
	return &ProductFlow{ns: ns}
}

// Pull lists inventory items modified since the watermark and returns the
// advanced watermark alongside the outbound product messages.
func (f *ProductFlow) Pull(since time.Time) ([]models.ProductMessage, time.Time, error) {
	items, err := f.ns.SearchInventoryItems(since)
	if err != nil {
		return nil, since, fmt.Errorf("failed to list products: %w", err)
	}

	next := since
	messages := make([]models.ProductMessage, 0, len(items))
	for _, item := range items {
		messages = append(messages, models.ProductMessage{
			SKU:         item.ItemID,
			Name:        item.DisplayName,
			Description: item.SalesDescription,
			Price:       item.BasePrice,
			UpdatedAt:   item.LastModifiedDate,
		})
		if modified, err := time.Parse(netsuite.DateLayout, item.LastModifiedDate); err == nil {
			if watermark := modified.Add(time.Second); watermark.After(next) {
				next = watermark
			}
		}
	}

	return messages, next, nil
}
