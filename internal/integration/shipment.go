package integration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nsbridge/internal/logger"
	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"
	"nsbridge/internal/refdata"
)

// ShipmentFlow handles storefront shipment pushes and the periodic pull of
// NetSuite-originated fulfillments.
type ShipmentFlow struct {
	ns     netsuite.API
	logger *logger.Logger
}

func NewShipmentFlow(ns netsuite.API, logger *logger.Logger) *ShipmentFlow {
	return &ShipmentFlow{ns: ns, logger: logger}
}

// Import fulfills the sales order a shipment event points at. While the
// order is pending fulfillment an item fulfillment is created; once pending
// billing (originally, or because we just fulfilled it) an invoice follows.
func (f *ShipmentFlow) Import(shipment models.Shipment) (*netsuite.SalesOrder, error) {
	ref := shipment.OrderRef()
	order, err := f.ns.FindSalesOrderByExternalID(ref)
	if errors.Is(err, netsuite.ErrNotFound) {
		return nil, &netsuite.RecordNotFoundError{Kind: netsuite.KindSalesOrder, ID: "order " + ref}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up sales order %s: %w", ref, err)
	}

	fulfilled := false
	if order.Status == netsuite.StatusPendingFulfillment {
		fulfillment := &netsuite.ItemFulfillment{
			CreatedFrom:            &netsuite.RecordRef{InternalID: order.InternalID},
			TransactionShipAddress: buildShipAddress(shipment.ShippingAddress),
		}
		if err := f.ns.AddItemFulfillment(fulfillment); err != nil {
			return nil, fmt.Errorf("failed to fulfill order %s: %w", ref, err)
		}
		fulfilled = true
		f.logger.Info("created item fulfillment for order %s", ref)
	}

	if fulfilled || order.Status == netsuite.StatusPendingBilling {
		invoice := &netsuite.Invoice{
			TaxRate:     0,
			IsTaxable:   false,
			CreatedFrom: &netsuite.RecordRef{InternalID: order.InternalID},
		}
		if err := f.ns.AddInvoice(invoice); err != nil {
			return nil, fmt.Errorf("failed to invoice order %s: %w", ref, err)
		}
		f.logger.Info("created invoice for order %s", ref)
	}

	return order, nil
}

// Pull lists fulfillments modified since the watermark and shapes them into
// outbound shipment messages. The returned watermark is the max last
// modified date plus one second. Each referenced sales order is fetched at
// most once per pull.
func (f *ShipmentFlow) Pull(since time.Time) ([]models.ShipmentMessage, time.Time, error) {
	fulfillments, err := f.ns.SearchItemFulfillments(since)
	if err != nil {
		return nil, since, fmt.Errorf("failed to list fulfillments: %w", err)
	}

	orders := map[string]*netsuite.SalesOrder{}
	next := since
	messages := make([]models.ShipmentMessage, 0, len(fulfillments))

	for i := range fulfillments {
		fulfillment := &fulfillments[i]

		var externalID string
		if fulfillment.CreatedFrom != nil && fulfillment.CreatedFrom.InternalID != "" {
			order, ok := orders[fulfillment.CreatedFrom.InternalID]
			if !ok {
				order, err = f.ns.GetSalesOrder(fulfillment.CreatedFrom.InternalID)
				if err != nil {
					return nil, since, fmt.Errorf("failed to fetch sales order for fulfillment %s: %w", fulfillment.InternalID, err)
				}
				orders[fulfillment.CreatedFrom.InternalID] = order
			}
			externalID = order.ExternalID
		}

		message := models.ShipmentMessage{
			ID:              fulfillment.InternalID,
			OrderID:         externalID,
			Cost:            fulfillment.ShippingCost,
			Status:          strings.TrimPrefix(fulfillment.ShipStatus, "_"),
			ShippedAt:       fulfillment.TranDate,
			ShippingAddress: buildOutboundAddress(fulfillment.TransactionShipAddress),
			Items:           buildShipmentItems(fulfillment.ItemList),
		}
		if fulfillment.ShipMethod != nil {
			message.ShippingMethod = fulfillment.ShipMethod.Name
		}
		if fulfillment.PackageList != nil {
			tracking := make([]string, 0, len(fulfillment.PackageList.Packages))
			for _, pkg := range fulfillment.PackageList.Packages {
				if pkg.PackageTrackingNumber != "" {
					tracking = append(tracking, pkg.PackageTrackingNumber)
				}
			}
			message.Tracking = strings.Join(tracking, ", ")
		}

		if modified, err := time.Parse(netsuite.DateLayout, fulfillment.LastModifiedDate); err == nil {
			if watermark := modified.Add(time.Second); watermark.After(next) {
				next = watermark
			}
		}

		messages = append(messages, message)
	}

	return messages, next, nil
}

func buildShipmentItems(list *netsuite.FulfillmentItemList) []models.ShipmentItem {
	if list == nil {
		return nil
	}
	items := make([]models.ShipmentItem, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, models.ShipmentItem{
			Name:      item.Item.Name,
			ProductID: item.Item.Name,
			Quantity:  int(item.Quantity),
		})
	}
	return items
}

func buildOutboundAddress(addr *netsuite.ShipAddress) *models.Address {
	if addr == nil || addr.ShipAddressee == "" {
		return nil
	}
	firstname, lastname := splitName(addr.ShipAddressee)
	return &models.Address{
		Firstname: firstname,
		Lastname:  lastname,
		Address1:  addr.ShipAddr1,
		Address2:  addr.ShipAddr2,
		Zipcode:   addr.ShipZip,
		City:      addr.ShipCity,
		State:     refdata.StateByName(addr.ShipState),
		Country:   refdata.NormalizeCountry(addr.ShipCountry),
		Phone:     addr.ShipPhone,
	}
}

func splitName(addressee string) (string, string) {
	parts := strings.SplitN(addressee, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
