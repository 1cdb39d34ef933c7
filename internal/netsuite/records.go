package netsuite

import "time"

// Timestamp layout NetSuite uses on transaction dates.
const DateLayout = time.RFC3339

// Sales order status strings the shipment flow branches on.
const (
	StatusPendingFulfillment = "Pending Fulfillment"
	StatusPendingBilling     = "Pending Billing"
)

// RecordRef points at another NetSuite record by internal or external id.
type RecordRef struct {
	InternalID string `xml:"internalId,attr,omitempty"`
	ExternalID string `xml:"externalId,attr,omitempty"`
	Type       string `xml:"type,attr,omitempty"`
	Name       string `xml:"name,omitempty"`
}

type SalesOrderItem struct {
	Item     RecordRef `xml:"item"`
	Quantity int       `xml:"quantity,omitempty"`
	Amount   float64   `xml:"amount,omitempty"`
	Rate     float64   `xml:"rate,omitempty"`
	TaxRate1 float64   `xml:"taxRate1"`
}

type SalesOrderItemList struct {
	Items []SalesOrderItem `xml:"item"`
}

type BillAddress struct {
	BillAddressee string `xml:"billAddressee,omitempty"`
	BillAddr1     string `xml:"billAddr1,omitempty"`
	BillAddr2     string `xml:"billAddr2,omitempty"`
	BillZip       string `xml:"billZip,omitempty"`
	BillCity      string `xml:"billCity,omitempty"`
	BillState     string `xml:"billState,omitempty"`
	BillCountry   string `xml:"billCountry,omitempty"`
	BillPhone     string `xml:"billPhone,omitempty"`
}

type ShipAddress struct {
	ShipAddressee string `xml:"shipAddressee,omitempty"`
	ShipAddr1     string `xml:"shipAddr1,omitempty"`
	ShipAddr2     string `xml:"shipAddr2,omitempty"`
	ShipZip       string `xml:"shipZip,omitempty"`
	ShipCity      string `xml:"shipCity,omitempty"`
	ShipState     string `xml:"shipState,omitempty"`
	ShipCountry   string `xml:"shipCountry,omitempty"`
	ShipPhone     string `xml:"shipPhone,omitempty"`
}

// SalesOrder is the transaction record the whole order lifecycle hangs off.
// ExternalID is always the storefront order number.
type SalesOrder struct {
	InternalID             string              `xml:"internalId,attr,omitempty"`
	ExternalID             string              `xml:"externalId,attr,omitempty"`
	OrderStatus            string              `xml:"orderStatus,omitempty"`
	CustomForm             *RecordRef          `xml:"customForm,omitempty"`
	Entity                 *RecordRef          `xml:"entity,omitempty"`
	TranDate               string              `xml:"tranDate,omitempty"`
	TranID                 string              `xml:"tranId,omitempty"`
	ItemList               *SalesOrderItemList `xml:"itemList,omitempty"`
	TransactionBillAddress *BillAddress        `xml:"transactionBillAddress,omitempty"`
	TransactionShipAddress *ShipAddress        `xml:"transactionShipAddress,omitempty"`
	ShippingCost           float64             `xml:"shippingCost,omitempty"`
	ShipMethod             *RecordRef          `xml:"shipMethod,omitempty"`
	Status                 string              `xml:"status,omitempty"`
	LastModifiedDate       string              `xml:"lastModifiedDate,omitempty"`
}

type Addressbook struct {
	DefaultShipping bool   `xml:"defaultShipping"`
	Addr1           string `xml:"addr1,omitempty"`
	Addr2           string `xml:"addr2,omitempty"`
	Zip             string `xml:"zip,omitempty"`
	City            string `xml:"city,omitempty"`
	State           string `xml:"state,omitempty"`
	Country         string `xml:"country,omitempty"`
	Phone           string `xml:"phone,omitempty"`
}

type AddressbookList struct {
	Addressbooks []Addressbook `xml:"addressbook"`
}

// Customer's ExternalID is the storefront email.
type Customer struct {
	InternalID      string           `xml:"internalId,attr,omitempty"`
	ExternalID      string           `xml:"externalId,attr,omitempty"`
	Email           string           `xml:"email,omitempty"`
	FirstName       string           `xml:"firstName,omitempty"`
	LastName        string           `xml:"lastName,omitempty"`
	IsPerson        bool             `xml:"isPerson"`
	AddressbookList *AddressbookList `xml:"addressbookList,omitempty"`
}

// CustomerDeposit records money received against a sales order before
// invoicing.
type CustomerDeposit struct {
	InternalID    string     `xml:"internalId,attr,omitempty"`
	ExternalID    string     `xml:"externalId,attr,omitempty"`
	SalesOrder    *RecordRef `xml:"salesOrder,omitempty"`
	Payment       float64    `xml:"payment,omitempty"`
	PaymentMethod *RecordRef `xml:"paymentMethod,omitempty"`
	TranDate      string     `xml:"tranDate,omitempty"`
}

type CustomerRefundDeposit struct {
	Doc    string  `xml:"doc"`
	Apply  bool    `xml:"apply"`
	Amount float64 `xml:"amount,omitempty"`
}

type CustomerRefundDepositList struct {
	Deposits []CustomerRefundDeposit `xml:"customerRefundApplyDeposit"`
}

// CustomerRefund offsets a prior deposit when an order is cancelled after
// payment.
type CustomerRefund struct {
	InternalID    string                     `xml:"internalId,attr,omitempty"`
	ExternalID    string                     `xml:"externalId,attr,omitempty"`
	Customer      *RecordRef                 `xml:"customer,omitempty"`
	PaymentMethod *RecordRef                 `xml:"paymentMethod,omitempty"`
	DepositList   *CustomerRefundDepositList `xml:"depositList,omitempty"`
}

type Package struct {
	PackageTrackingNumber string `xml:"packageTrackingNumber,omitempty"`
}

type PackageList struct {
	Packages []Package `xml:"package"`
}

type FulfillmentItem struct {
	Item     RecordRef `xml:"item"`
	Quantity float64   `xml:"quantity,omitempty"`
}

type FulfillmentItemList struct {
	Items []FulfillmentItem `xml:"item"`
}

// ItemFulfillment represents goods shipped against a sales order.
type ItemFulfillment struct {
	InternalID             string               `xml:"internalId,attr,omitempty"`
	ExternalID             string               `xml:"externalId,attr,omitempty"`
	CreatedFrom            *RecordRef           `xml:"createdFrom,omitempty"`
	TransactionShipAddress *ShipAddress         `xml:"transactionShipAddress,omitempty"`
	ShipStatus             string               `xml:"shipStatus,omitempty"`
	ShipMethod             *RecordRef           `xml:"shipMethod,omitempty"`
	ShippingCost           float64              `xml:"shippingCost,omitempty"`
	TranDate               string               `xml:"tranDate,omitempty"`
	LastModifiedDate       string               `xml:"lastModifiedDate,omitempty"`
	PackageList            *PackageList         `xml:"packageList,omitempty"`
	ItemList               *FulfillmentItemList `xml:"itemList,omitempty"`
}

// Invoice bills a fulfilled sales order. Taxes stay zeroed so storefront
// totals survive the round trip.
type Invoice struct {
	InternalID  string     `xml:"internalId,attr,omitempty"`
	ExternalID  string     `xml:"externalId,attr,omitempty"`
	TaxRate     float64    `xml:"taxRate"`
	IsTaxable   bool       `xml:"isTaxable"`
	CreatedFrom *RecordRef `xml:"createdFrom,omitempty"`
}

type InventoryItem struct {
	InternalID        string  `xml:"internalId,attr,omitempty"`
	ItemID            string  `xml:"itemId,omitempty"`
	DisplayName       string  `xml:"displayName,omitempty"`
	SalesDescription  string  `xml:"salesDescription,omitempty"`
	BasePrice         float64 `xml:"basePrice,omitempty"`
	QuantityAvailable float64 `xml:"quantityAvailable,omitempty"`
	LastModifiedDate  string  `xml:"lastModifiedDate,omitempty"`
}

// NonInventoryItem backs the synthetic tax/discount sales-order lines.
type NonInventoryItem struct {
	InternalID  string `xml:"internalId,attr,omitempty"`
	ItemID      string `xml:"itemId,omitempty"`
	DisplayName string `xml:"displayName,omitempty"`
}
