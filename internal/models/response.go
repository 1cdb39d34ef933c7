package models

// Notification is one entry of the response envelope's notifications list.
type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Message is an outbound storefront message, e.g. {"message": "stock:actual",
// "payload": {...}}.
type Message struct {
	Topic   string      `json:"message"`
	Payload interface{} `json:"payload"`
}

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Summary       string            `json:"summary,omitempty"`
	Notifications []Notification    `json:"notifications,omitempty"`
	Messages      []Message         `json:"messages,omitempty"`
	Parameters    map[string]string `json:"parameters,omitempty"`
}

// Result is what an integration flow hands back to the HTTP layer on success.
type Result struct {
	Summary    string
	Messages   []Message
	Notices    []Notification
	Parameters map[string]string
}

func (r *Result) Response() Response {
	if r == nil {
		return Response{}
	}
	return Response{
		Summary:       r.Summary,
		Notifications: r.Notices,
		Messages:      r.Messages,
		Parameters:    r.Parameters,
	}
}

// StockMessage is the payload of a stock:actual message.
type StockMessage struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// ProductMessage is the payload of a product:import message.
type ProductMessage struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// ShipmentItem is one line of an outbound shipment:confirm message.
type ShipmentItem struct {
	Name      string `json:"name"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ShipmentMessage is the payload of a shipment:confirm message built from a
// NetSuite item fulfillment.
type ShipmentMessage struct {
	ID              string         `json:"id"`
	OrderID         string         `json:"order_id"`
	Cost            float64        `json:"cost"`
	Status          string         `json:"status"`
	ShippingMethod  string         `json:"shipping_method,omitempty"`
	Tracking        string         `json:"tracking,omitempty"`
	ShippedAt       string         `json:"shipped_at,omitempty"`
	ShippingAddress *Address       `json:"shipping_address,omitempty"`
	Items           []ShipmentItem `json:"items"`
}
