package integration

import (
	"errors"
	"fmt"
	"time"

	"nsbridge/internal/config"
	"nsbridge/internal/logger"
	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"
	"nsbridge/internal/refdata"
)

// WatermarkParameter is the response parameter the product pull advances.
const WatermarkParameter = "netsuite.last_updated_after"

// Coordinator dispatches inbound events to the right flow, applies the
// idempotence rules and shapes the response summary. It holds no state of
// its own; NetSuite is the system of record.
type Coordinator struct {
	config    *config.Config
	logger    *logger.Logger
	orders    *OrderFlow
	refunds   *RefundFlow
	shipments *ShipmentFlow
	inventory *InventoryFlow
	products  *ProductFlow
}

func NewCoordinator(cfg *config.Config, ns netsuite.API, logger *logger.Logger) *Coordinator {
	mapper := refdata.NewMapper(cfg, ns)
	return &Coordinator{
		config:    cfg,
		logger:    logger,
		orders:    NewOrderFlow(ns, mapper, logger),
		refunds:   NewRefundFlow(ns, mapper, logger),
		shipments: NewShipmentFlow(ns, logger),
		inventory: NewInventoryFlow(ns),
		products:  NewProductFlow(ns),
	}
}

// Shipments exposes the shipment flow for the pull worker.
func (c *Coordinator) Shipments() *ShipmentFlow {
	return c.shipments
}

// ImportOrder handles /add_order: import when new, otherwise reconcile the
// paid state.
func (c *Coordinator) ImportOrder(event models.OrderEvent) (*models.Result, error) {
	return c.createOrUpdateOrder(event.Order)
}

// UpdateOrder handles /update_order: cancellation when the event is marked
// cancelled, otherwise the same path as /add_order.
func (c *Coordinator) UpdateOrder(event models.OrderEvent) (*models.Result, error) {
	if event.Canceled() {
		return c.cancelOrder(event)
	}
	return c.createOrUpdateOrder(event.Order)
}

func (c *Coordinator) createOrUpdateOrder(order models.Order) (*models.Result, error) {
	existing, err := c.orders.Imported(order.Number)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		salesOrder, err := c.orders.Import(order)
		if err != nil {
			return nil, err
		}
		if Paid(order) {
			if _, err := c.orders.CreateDeposit(order, salesOrder); err != nil {
				return nil, err
			}
		}
		return &models.Result{
			Summary: fmt.Sprintf("Order %s sent to NetSuite # %s", salesOrder.ExternalID, salesOrder.TranID),
		}, nil
	}

	if !Paid(order) {
		return &models.Result{}, nil
	}

	// The deposit may already exist from an earlier delivery of this event.
	deposit, err := c.orders.DepositFor(order.Number)
	if err != nil {
		return nil, err
	}
	if deposit != nil {
		return &models.Result{}, nil
	}

	if _, err := c.orders.CreateDeposit(order, existing); err != nil {
		return nil, err
	}
	return &models.Result{
		Summary: fmt.Sprintf("Customer Deposit created for NetSuite Sales Order %s", existing.ExternalID),
	}, nil
}

func (c *Coordinator) cancelOrder(event models.OrderEvent) (*models.Result, error) {
	number := event.Order.Number
	salesOrder, err := c.orders.Imported(number)
	if err != nil {
		return nil, err
	}
	if salesOrder == nil {
		return nil, &netsuite.RecordNotFoundError{Kind: netsuite.KindSalesOrder, ID: "order " + number}
	}

	if event.BalanceDue() {
		// The customer was never charged, so closing is enough.
		if err := c.orders.Close(salesOrder); err != nil {
			return nil, err
		}
		return &models.Result{
			Summary: fmt.Sprintf("NetSuite Sales Order %s was closed", number),
		}, nil
	}

	if err := c.refunds.Process(event.Order, salesOrder); err != nil {
		return nil, err
	}
	return &models.Result{
		Summary: fmt.Sprintf("Customer Refund created and NetSuite Sales Order %s was closed", number),
	}, nil
}

// ImportShipment handles /shipments pushes.
func (c *Coordinator) ImportShipment(event models.ShipmentEvent) (*models.Result, error) {
	order, err := c.shipments.Import(event.Shipment)
	if err != nil {
		return nil, err
	}
	return &models.Result{
		Summary: fmt.Sprintf("Order %s fulfilled in NetSuite # %s", order.ExternalID, order.TranID),
	}, nil
}

// QueryInventory handles /inventory_stock. A missing sku is benign and
// yields an empty success.
func (c *Coordinator) QueryInventory(query models.InventoryQuery) (*models.Result, error) {
	stock, err := c.inventory.Stock(query.SKU)
	if errors.Is(err, netsuite.ErrNotFound) {
		return &models.Result{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.Result{
		Messages: []models.Message{{Topic: "stock:actual", Payload: stock}},
		Notices: []models.Notification{{
			Type:    "info",
			Message: fmt.Sprintf("%g units available of %s according to NetSuite", stock.Quantity, stock.SKU),
		}},
	}, nil
}

// PullProducts handles /products, advancing the configured watermark in the
// response parameters.
func (c *Coordinator) PullProducts() (*models.Result, error) {
	since := c.watermark()
	products, next, err := c.products.Pull(since)
	if err != nil {
		return nil, err
	}

	result := &models.Result{}
	if len(products) == 0 {
		return result, nil
	}

	for _, product := range products {
		result.Messages = append(result.Messages, models.Message{Topic: "product:import", Payload: product})
	}
	result.Parameters = map[string]string{WatermarkParameter: next.UTC().Format(netsuite.DateLayout)}
	result.Notices = []models.Notification{{
		Type:    "info",
		Message: fmt.Sprintf("%d items found in NetSuite", len(products)),
	}}
	return result, nil
}

func (c *Coordinator) watermark() time.Time {
	if c.config.LastUpdatedAfter == "" {
		return time.Time{}
	}
	since, err := time.Parse(netsuite.DateLayout, c.config.LastUpdatedAfter)
	if err != nil {
		c.logger.Warn("invalid %s value %q, pulling from the beginning", WatermarkParameter, c.config.LastUpdatedAfter)
		return time.Time{}
	}
	return since
}
