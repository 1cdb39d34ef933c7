package models

// EventKind discriminates inbound webhook events once, at parse time, so the
// handlers never probe payload fields to figure out what they received.
type EventKind int

const (
	EventAddOrder EventKind = iota
	EventUpdateOrder
	EventCancelOrder
	EventShipment
	EventInventoryQuery
	EventProductPull
)

func (k EventKind) String() string {
	switch k {
	case EventAddOrder:
		return "add_order"
	case EventUpdateOrder:
		return "update_order"
	case EventCancelOrder:
		return "cancel_order"
	case EventShipment:
		return "shipment"
	case EventInventoryQuery:
		return "inventory_query"
	case EventProductPull:
		return "product_pull"
	}
	return "unknown"
}

type Address struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	Zipcode   string `json:"zipcode"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type LineItem struct {
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Totals struct {
	Order    float64 `json:"order"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
}

type Payment struct {
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

type OrderShipment struct {
	ShippingMethod string `json:"shipping_method"`
}

// Order is the storefront order payload. Number is the external id every
// NetSuite record created for this order carries.
type Order struct {
	Number          string          `json:"number"`
	Email           string          `json:"email"`
	PlacedOn        string          `json:"placed_on"`
	LineItems       []LineItem      `json:"line_items"`
	Totals          Totals          `json:"totals"`
	BillingAddress  Address         `json:"billing_address"`
	ShippingAddress Address         `json:"shipping_address"`
	Payments        []Payment       `json:"payments"`
	Shipments       []OrderShipment `json:"shipments,omitempty"`
}

// Original carries the storefront's previous order state on update events.
type Original struct {
	PaymentState string `json:"payment_state"`
}

// OrderEvent is the body of /add_order and /update_order. Status is the
// explicit cancellation marker ("canceled"/"cancelled").
type OrderEvent struct {
	Order    Order     `json:"order"`
	Status   string    `json:"status,omitempty"`
	Original *Original `json:"original,omitempty"`
}

func (e OrderEvent) Canceled() bool {
	return e.Status == "canceled" || e.Status == "cancelled"
}

// BalanceDue reports that the storefront never charged the customer, so a
// cancellation needs no offsetting refund.
func (e OrderEvent) BalanceDue() bool {
	return e.Original != nil && e.Original.PaymentState == "balance_due"
}

func (e OrderEvent) Kind() EventKind {
	if e.Canceled() {
		return EventCancelOrder
	}
	return EventUpdateOrder
}

// Shipment is the payload of /shipments push events.
type Shipment struct {
	OrderNumber     string  `json:"order_number,omitempty"`
	OrderID         string  `json:"order_id,omitempty"`
	ShippingAddress Address `json:"shipping_address"`
}

// OrderRef returns the external id the shipment points at, preferring the
// order number over the legacy order id field.
func (s Shipment) OrderRef() string {
	if s.OrderNumber != "" {
		return s.OrderNumber
	}
	return s.OrderID
}

type ShipmentEvent struct {
	Shipment Shipment `json:"shipment"`
}

type InventoryQuery struct {
	SKU string `json:"sku"`
}
