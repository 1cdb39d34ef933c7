package integration

import (
	"errors"
	"fmt"

	"nsbridge/internal/logger"
	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"
	"nsbridge/internal/refdata"
)

// Paid reports whether the storefront considers the order settled: at least
// one payment and every payment completed. An order with no payments is not
// paid.
func Paid(order models.Order) bool {
	if len(order.Payments) == 0 {
		return false
	}
	for _, payment := range order.Payments {
		if payment.Status != "completed" {
			return false
		}
	}
	return true
}

// OrderFlow imports storefront orders into NetSuite and keeps the paid state
// in sync through customer deposits.
type OrderFlow struct {
	ns     netsuite.API
	mapper *refdata.Mapper
	logger *logger.Logger
}

func NewOrderFlow(ns netsuite.API, mapper *refdata.Mapper, logger *logger.Logger) *OrderFlow {
	return &OrderFlow{ns: ns, mapper: mapper, logger: logger}
}

// Imported returns the sales order previously created for this storefront
// number, or nil when the order was never imported.
func (f *OrderFlow) Imported(number string) (*netsuite.SalesOrder, error) {
	order, err := f.ns.FindSalesOrderByExternalID(number)
	if errors.Is(err, netsuite.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up sales order %s: %w", number, err)
	}
	return order, nil
}

// DepositFor returns the customer deposit carrying this order number, or nil
// when none exists yet.
func (f *OrderFlow) DepositFor(number string) (*netsuite.CustomerDeposit, error) {
	deposit, err := f.ns.FindCustomerDepositByExternalID(number)
	if errors.Is(err, netsuite.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer deposit %s: %w", number, err)
	}
	return deposit, nil
}

// Import assembles and submits the NetSuite sales order for a storefront
// order, then re-fetches it for the NetSuite-assigned transaction number.
func (f *OrderFlow) Import(order models.Order) (*netsuite.SalesOrder, error) {
	// Resolve the shipping method first: a missing mapping must fail the
	// event before anything is written to NetSuite.
	shipMethodID, err := f.shippingID(order)
	if err != nil {
		return nil, err
	}

	customer, err := f.resolveCustomer(order)
	if err != nil {
		return nil, err
	}

	salesOrder := &netsuite.SalesOrder{
		OrderStatus: "_pendingFulfillment",
		// Basic Sales Order Form
		CustomForm: &netsuite.RecordRef{InternalID: "164"},
		ExternalID: order.Number,
		Entity:     &netsuite.RecordRef{ExternalID: customer.ExternalID},
		TranDate:   order.PlacedOn,
	}

	itemList, err := f.buildItemList(order)
	if err != nil {
		return nil, err
	}
	salesOrder.ItemList = itemList

	salesOrder.ShippingCost = order.Totals.Shipping
	salesOrder.ShipMethod = &netsuite.RecordRef{InternalID: shipMethodID}
	salesOrder.TransactionBillAddress = buildBillAddress(order.BillingAddress)
	salesOrder.TransactionShipAddress = buildShipAddress(order.ShippingAddress)

	if err := f.ns.AddSalesOrder(salesOrder); err != nil {
		return nil, fmt.Errorf("failed to import order %s: %w", order.Number, err)
	}

	fetched, err := f.ns.FindSalesOrderByExternalID(order.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch imported order %s: %w", order.Number, err)
	}
	salesOrder.InternalID = fetched.InternalID
	salesOrder.TranID = fetched.TranID
	salesOrder.Status = fetched.Status

	f.logger.Info("imported order %s as NetSuite sales order %s", order.Number, salesOrder.TranID)
	return salesOrder, nil
}

// CreateDeposit records the order total as a customer deposit against the
// sales order.
func (f *OrderFlow) CreateDeposit(order models.Order, salesOrder *netsuite.SalesOrder) (*netsuite.CustomerDeposit, error) {
	if len(order.Payments) == 0 {
		return nil, fmt.Errorf("order %s has no payments to deposit", order.Number)
	}
	methodID, err := f.mapper.PaymentMethodID(order.Payments[0].PaymentMethod)
	if err != nil {
		return nil, err
	}

	deposit := &netsuite.CustomerDeposit{
		ExternalID:    order.Number,
		SalesOrder:    &netsuite.RecordRef{InternalID: salesOrder.InternalID},
		Payment:       order.Totals.Order,
		PaymentMethod: &netsuite.RecordRef{InternalID: methodID},
		TranDate:      order.PlacedOn,
	}
	if err := f.ns.AddCustomerDeposit(deposit); err != nil {
		return nil, fmt.Errorf("failed to create customer deposit for order %s: %w", order.Number, err)
	}

	f.logger.Info("created customer deposit for order %s", order.Number)
	return deposit, nil
}

// Close transitions the sales order to its terminal closed status.
func (f *OrderFlow) Close(salesOrder *netsuite.SalesOrder) error {
	if err := f.ns.CloseSalesOrder(salesOrder); err != nil {
		return fmt.Errorf("failed to close sales order %s: %w", salesOrder.ExternalID, err)
	}
	return nil
}

func (f *OrderFlow) shippingID(order models.Order) (string, error) {
	if len(order.Shipments) == 0 {
		return "", fmt.Errorf("order %s carries no shipping method", order.Number)
	}
	return f.mapper.ShippingID(order.Shipments[0].ShippingMethod)
}

// resolveCustomer finds the NetSuite customer for the order's email or
// creates one, reconciling the address book either way.
func (f *OrderFlow) resolveCustomer(order models.Order) (*netsuite.Customer, error) {
	customer, err := f.ns.FindCustomerByExternalID(order.Email)
	if err != nil && !errors.Is(err, netsuite.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up customer %s: %w", order.Email, err)
	}

	if customer != nil {
		if err := f.reconcileAddressbook(customer, order.ShippingAddress); err != nil {
			return nil, err
		}
		return customer, nil
	}

	created := &netsuite.Customer{
		Email:      order.Email,
		ExternalID: order.Email,
		IsPerson:   true,
		FirstName:  nameOrPlaceholder(order.ShippingAddress.Firstname),
		LastName:   nameOrPlaceholder(order.ShippingAddress.Lastname),
	}
	if order.ShippingAddress.Address1 != "" {
		created.AddressbookList = &netsuite.AddressbookList{
			Addressbooks: []netsuite.Addressbook{toAddressbook(order.ShippingAddress, true)},
		}
	}

	if err := f.ns.AddCustomer(created); err != nil {
		return nil, fmt.Errorf("failed to create customer %s: %w", order.Email, err)
	}

	f.logger.Info("created customer %s", order.Email)
	return created, nil
}

// reconcileAddressbook makes the inbound shipping address the customer's
// default-shipping entry unless an equal entry already exists.
func (f *OrderFlow) reconcileAddressbook(customer *netsuite.Customer, addr models.Address) error {
	entry := toAddressbook(addr, true)

	var existing []netsuite.Addressbook
	if customer.AddressbookList != nil {
		existing = customer.AddressbookList.Addressbooks
	}

	if len(existing) == 0 {
		customer.AddressbookList = &netsuite.AddressbookList{Addressbooks: []netsuite.Addressbook{entry}}
		return f.updateAddressbook(customer)
	}

	for _, have := range existing {
		if sameAddress(have, entry) {
			return nil
		}
	}

	book := make([]netsuite.Addressbook, 0, len(existing)+1)
	book = append(book, entry)
	for _, have := range existing {
		have.DefaultShipping = false
		book = append(book, have)
	}
	customer.AddressbookList = &netsuite.AddressbookList{Addressbooks: book}
	return f.updateAddressbook(customer)
}

func (f *OrderFlow) updateAddressbook(customer *netsuite.Customer) error {
	update := &netsuite.Customer{
		InternalID:      customer.InternalID,
		ExternalID:      customer.ExternalID,
		IsPerson:        customer.IsPerson,
		AddressbookList: customer.AddressbookList,
	}
	if err := f.ns.UpdateCustomer(update); err != nil {
		return fmt.Errorf("failed to update addresses for customer %s: %w", customer.ExternalID, err)
	}
	return nil
}

// buildItemList turns storefront line items into sales-order lines and
// appends synthetic tax/discount lines so NetSuite totals match the
// storefront's. Every line zeroes taxRate1 to keep NetSuite from computing
// its own taxes.
func (f *OrderFlow) buildItemList(order models.Order) (*netsuite.SalesOrderItemList, error) {
	items := make([]netsuite.SalesOrderItem, 0, len(order.LineItems)+2)

	for _, line := range order.LineItems {
		inventoryItem, err := f.ns.FindInventoryItemBySKU(line.SKU)
		if errors.Is(err, netsuite.ErrNotFound) {
			return nil, &netsuite.RecordNotFoundError{Kind: netsuite.KindInventoryItem, ID: line.SKU}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up item %s: %w", line.SKU, err)
		}
		items = append(items, netsuite.SalesOrderItem{
			Item:     netsuite.RecordRef{InternalID: inventoryItem.InternalID},
			Quantity: line.Quantity,
			Amount:   float64(line.Quantity) * line.Price,
			TaxRate1: 0,
		})
	}

	synthetics := []struct {
		kind  string
		value float64
	}{
		{"tax", order.Totals.Tax},
		{"discount", order.Totals.Discount},
	}
	for _, synthetic := range synthetics {
		if synthetic.value <= 0 {
			continue
		}
		itemID, err := f.mapper.ItemFor(synthetic.kind)
		if err != nil {
			return nil, err
		}
		items = append(items, netsuite.SalesOrderItem{
			Item: netsuite.RecordRef{InternalID: itemID},
			Rate: synthetic.value,
		})
	}

	return &netsuite.SalesOrderItemList{Items: items}, nil
}

// sameAddress ignores the default-shipping flag and compares phones digits
// only.
func sameAddress(a, b netsuite.Addressbook) bool {
	return a.Addr1 == b.Addr1 &&
		a.Addr2 == b.Addr2 &&
		a.Zip == b.Zip &&
		a.City == b.City &&
		a.State == b.State &&
		a.Country == b.Country &&
		refdata.DigitsOnly(a.Phone) == refdata.DigitsOnly(b.Phone)
}

func toAddressbook(addr models.Address, defaultShipping bool) netsuite.Addressbook {
	return netsuite.Addressbook{
		DefaultShipping: defaultShipping,
		Addr1:           addr.Address1,
		Addr2:           addr.Address2,
		Zip:             addr.Zipcode,
		City:            addr.City,
		State:           refdata.StateByName(addr.State),
		Country:         refdata.CountryByISO(addr.Country),
		Phone:           refdata.DigitsOnly(addr.Phone),
	}
}

func buildBillAddress(addr models.Address) *netsuite.BillAddress {
	return &netsuite.BillAddress{
		BillAddressee: addr.Firstname + " " + addr.Lastname,
		BillAddr1:     addr.Address1,
		BillAddr2:     addr.Address2,
		BillZip:       addr.Zipcode,
		BillCity:      addr.City,
		BillState:     refdata.StateByName(addr.State),
		BillCountry:   refdata.CountryByISO(addr.Country),
		BillPhone:     refdata.DigitsOnly(addr.Phone),
	}
}

func buildShipAddress(addr models.Address) *netsuite.ShipAddress {
	return &netsuite.ShipAddress{
		ShipAddressee: addr.Firstname + " " + addr.Lastname,
		ShipAddr1:     addr.Address1,
		ShipAddr2:     addr.Address2,
		ShipZip:       addr.Zipcode,
		ShipCity:      addr.City,
		ShipState:     refdata.StateByName(addr.State),
		ShipCountry:   refdata.CountryByISO(addr.Country),
		ShipPhone:     refdata.DigitsOnly(addr.Phone),
	}
}

func nameOrPlaceholder(name string) string {
	if name == "" {
		return "N/A"
	}
	return name
}
