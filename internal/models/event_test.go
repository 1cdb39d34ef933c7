package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderEventCanceled(t *testing.T) {
	assert.True(t, OrderEvent{Status: "canceled"}.Canceled())
	assert.True(t, OrderEvent{Status: "cancelled"}.Canceled())
	assert.False(t, OrderEvent{Status: "complete"}.Canceled())
	assert.False(t, OrderEvent{}.Canceled())
}

func TestOrderEventBalanceDue(t *testing.T) {
	assert.True(t, OrderEvent{Original: &Original{PaymentState: "balance_due"}}.BalanceDue())
	assert.False(t, OrderEvent{Original: &Original{PaymentState: "paid"}}.BalanceDue())
	assert.False(t, OrderEvent{}.BalanceDue())
}

func TestOrderEventKind(t *testing.T) {
	assert.Equal(t, EventCancelOrder, OrderEvent{Status: "canceled"}.Kind())
	assert.Equal(t, EventUpdateOrder, OrderEvent{}.Kind())
}

func TestShipmentOrderRef(t *testing.T) {
	assert.Equal(t, "R1001", Shipment{OrderNumber: "R1001", OrderID: "900"}.OrderRef())
	assert.Equal(t, "900", Shipment{OrderID: "900"}.OrderRef())
	assert.Equal(t, "", Shipment{}.OrderRef())
}

func TestOrderEventDecodes(t *testing.T) {
	body := `{
		"order": {
			"number": "R1001",
			"email": "buyer@example.com",
			"placed_on": "2014-02-03T17:29:15Z",
			"line_items": [{"sku": "A", "quantity": 2, "price": 10}],
			"totals": {"order": 22, "tax": 2, "discount": 0, "shipping": 5},
			"payments": [{"payment_method": "Check", "status": "completed"}],
			"shipments": [{"shipping_method": "UPS Ground"}]
		},
		"status": "cancelled",
		"original": {"payment_state": "balance_due"}
	}`

	var event OrderEvent
	require.NoError(t, json.Unmarshal([]byte(body), &event))

	assert.Equal(t, "R1001", event.Order.Number)
	assert.Equal(t, 2, event.Order.LineItems[0].Quantity)
	assert.Equal(t, 22.0, event.Order.Totals.Order)
	assert.Equal(t, "UPS Ground", event.Order.Shipments[0].ShippingMethod)
	assert.True(t, event.Canceled())
	assert.True(t, event.BalanceDue())
}
