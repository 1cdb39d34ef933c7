package integration_test

import (
	"testing"

	"nsbridge/internal/config"
	"nsbridge/internal/integration"
	"nsbridge/internal/logger"
	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"
	"nsbridge/internal/netsuite/netsuitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ShippingMethods: map[string]int{"UPS Ground": 3},
		PaymentMethods:  map[string]int{"Check": 7},
	}
}

func newCoordinator(ns *netsuitetest.MockAPI) *integration.Coordinator {
	return integration.NewCoordinator(testConfig(), ns, logger.New("error"))
}

func paidOrder() models.Order {
	return models.Order{
		Number:   "R1001",
		Email:    "buyer@example.com",
		PlacedOn: "2014-02-03T17:29:15Z",
		LineItems: []models.LineItem{
			{SKU: "A", Quantity: 2, Price: 10},
		},
		Totals: models.Totals{Order: 22, Tax: 2, Shipping: 5},
		BillingAddress: models.Address{
			Firstname: "Luis", Lastname: "Braga",
			Address1: "1 Main St", Zipcode: "21230", City: "Baltimore",
			State: "Maryland", Country: "US", Phone: "(410) 555-0134",
		},
		ShippingAddress: models.Address{
			Firstname: "Luis", Lastname: "Braga",
			Address1: "1 Main St", Zipcode: "21230", City: "Baltimore",
			State: "Maryland", Country: "US", Phone: "(410) 555-0134",
		},
		Payments:  []models.Payment{{PaymentMethod: "Check", Status: "completed"}},
		Shipments: []models.OrderShipment{{ShippingMethod: "UPS Ground"}},
	}
}

// The customer record NetSuite already holds for the fixture order, with the
// same shipping address on file.
func existingCustomer() *netsuite.Customer {
	return &netsuite.Customer{
		InternalID: "c1",
		ExternalID: "buyer@example.com",
		Email:      "buyer@example.com",
		IsPerson:   true,
		AddressbookList: &netsuite.AddressbookList{
			Addressbooks: []netsuite.Addressbook{{
				DefaultShipping: true,
				Addr1:           "1 Main St",
				Zip:             "21230",
				City:            "Baltimore",
				State:           "MD",
				Country:         "_unitedStates",
				Phone:           "410-555-0134",
			}},
		},
	}
}

func TestPaid(t *testing.T) {
	assert.False(t, integration.Paid(models.Order{}))
	assert.False(t, integration.Paid(models.Order{
		Payments: []models.Payment{{Status: "pending"}},
	}))
	assert.False(t, integration.Paid(models.Order{
		Payments: []models.Payment{{Status: "completed"}, {Status: "pending"}},
	}))
	assert.True(t, integration.Paid(models.Order{
		Payments: []models.Payment{{Status: "completed"}, {Status: "completed"}},
	}))
}

func TestImportOrderCreatesSalesOrderAndDeposit(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").Return(nil, netsuite.ErrNotFound).Once()
	ns.On("FindCustomerByExternalID", "buyer@example.com").Return(existingCustomer(), nil)
	ns.On("FindInventoryItemBySKU", "A").Return(&netsuite.InventoryItem{InternalID: "12", ItemID: "A"}, nil)
	ns.On("FindNonInventoryItemByName", "Spree Tax").Return(&netsuite.NonInventoryItem{InternalID: "77"}, nil)

	var sent *netsuite.SalesOrder
	ns.On("AddSalesOrder", mock.AnythingOfType("*netsuite.SalesOrder")).
		Run(func(args mock.Arguments) { sent = args.Get(0).(*netsuite.SalesOrder) }).
		Return(nil)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", TranID: "SO-501", Status: netsuite.StatusPendingFulfillment}, nil).Once()

	var deposit *netsuite.CustomerDeposit
	ns.On("AddCustomerDeposit", mock.AnythingOfType("*netsuite.CustomerDeposit")).
		Run(func(args mock.Arguments) { deposit = args.Get(0).(*netsuite.CustomerDeposit) }).
		Return(nil)

	result, err := newCoordinator(ns).ImportOrder(models.OrderEvent{Order: paidOrder()})
	require.NoError(t, err)
	assert.Equal(t, "Order R1001 sent to NetSuite # SO-501", result.Summary)

	require.NotNil(t, sent)
	assert.Equal(t, "R1001", sent.ExternalID)
	assert.Equal(t, "_pendingFulfillment", sent.OrderStatus)
	assert.Equal(t, "164", sent.CustomForm.InternalID)
	assert.Equal(t, "buyer@example.com", sent.Entity.ExternalID)
	assert.Equal(t, "2014-02-03T17:29:15Z", sent.TranDate)

	require.Len(t, sent.ItemList.Items, 2)
	line := sent.ItemList.Items[0]
	assert.Equal(t, "12", line.Item.InternalID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 20.0, line.Amount)
	assert.Equal(t, 0.0, line.TaxRate1)
	tax := sent.ItemList.Items[1]
	assert.Equal(t, "77", tax.Item.InternalID)
	assert.Equal(t, 2.0, tax.Rate)
	assert.Equal(t, 0.0, tax.TaxRate1)

	assert.Equal(t, 5.0, sent.ShippingCost)
	assert.Equal(t, "3", sent.ShipMethod.InternalID)
	assert.Equal(t, "MD", sent.TransactionBillAddress.BillState)
	assert.Equal(t, "_unitedStates", sent.TransactionShipAddress.ShipCountry)
	assert.Equal(t, "4105550134", sent.TransactionShipAddress.ShipPhone)
	assert.Equal(t, "Luis Braga", sent.TransactionShipAddress.ShipAddressee)

	require.NotNil(t, deposit)
	assert.Equal(t, "R1001", deposit.ExternalID)
	assert.Equal(t, "501", deposit.SalesOrder.InternalID)
	assert.Equal(t, 22.0, deposit.Payment)
	assert.Equal(t, "7", deposit.PaymentMethod.InternalID)

	// The existing address matched, so the customer was left alone.
	ns.AssertNotCalled(t, "AddCustomer", mock.Anything)
	ns.AssertNotCalled(t, "UpdateCustomer", mock.Anything)
	ns.AssertExpectations(t)
}

func TestImportOrderUnpaidSkipsDeposit(t *testing.T) {
	order := paidOrder()
	order.Payments = nil

	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").Return(nil, netsuite.ErrNotFound).Once()
	ns.On("FindCustomerByExternalID", "buyer@example.com").Return(existingCustomer(), nil)
	ns.On("FindInventoryItemBySKU", "A").Return(&netsuite.InventoryItem{InternalID: "12"}, nil)
	ns.On("FindNonInventoryItemByName", "Spree Tax").Return(&netsuite.NonInventoryItem{InternalID: "77"}, nil)
	ns.On("AddSalesOrder", mock.Anything).Return(nil)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", TranID: "SO-501"}, nil).Once()

	result, err := newCoordinator(ns).ImportOrder(models.OrderEvent{Order: order})
	require.NoError(t, err)
	assert.Equal(t, "Order R1001 sent to NetSuite # SO-501", result.Summary)
	ns.AssertNotCalled(t, "AddCustomerDeposit", mock.Anything)
}

func TestImportOrderRedeliveryIsNoOp(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", ExternalID: "R1001", TranID: "SO-501"}, nil)
	ns.On("FindCustomerDepositByExternalID", "R1001").
		Return(&netsuite.CustomerDeposit{InternalID: "d1"}, nil)

	result, err := newCoordinator(ns).ImportOrder(models.OrderEvent{Order: paidOrder()})
	require.NoError(t, err)
	assert.Empty(t, result.Summary)

	ns.AssertNotCalled(t, "AddSalesOrder", mock.Anything)
	ns.AssertNotCalled(t, "AddCustomerDeposit", mock.Anything)
}

func TestUpdateOrderUnpaidExistingIsNoOp(t *testing.T) {
	order := paidOrder()
	order.Payments = []models.Payment{{PaymentMethod: "Check", Status: "pending"}}

	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", ExternalID: "R1001"}, nil)

	result, err := newCoordinator(ns).UpdateOrder(models.OrderEvent{Order: order})
	require.NoError(t, err)
	assert.Empty(t, result.Summary)

	ns.AssertNotCalled(t, "FindCustomerDepositByExternalID", mock.Anything)
	ns.AssertNotCalled(t, "AddCustomerDeposit", mock.Anything)
}

func TestUpdateOrderAddsDepositOncePaymentCompletes(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", ExternalID: "R1001", TranID: "SO-501"}, nil)
	ns.On("FindCustomerDepositByExternalID", "R1001").Return(nil, netsuite.ErrNotFound)

	var deposit *netsuite.CustomerDeposit
	ns.On("AddCustomerDeposit", mock.AnythingOfType("*netsuite.CustomerDeposit")).
		Run(func(args mock.Arguments) { deposit = args.Get(0).(*netsuite.CustomerDeposit) }).
		Return(nil)

	result, err := newCoordinator(ns).UpdateOrder(models.OrderEvent{Order: paidOrder()})
	require.NoError(t, err)
	assert.Equal(t, "Customer Deposit created for NetSuite Sales Order R1001", result.Summary)

	require.NotNil(t, deposit)
	assert.Equal(t, "501", deposit.SalesOrder.InternalID)
	assert.Equal(t, 22.0, deposit.Payment)
}

func TestCancelBalanceDueClosesWithoutRefund(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", ExternalID: "R1001"}, nil)
	ns.On("CloseSalesOrder", mock.AnythingOfType("*netsuite.SalesOrder")).Return(nil)

	event := models.OrderEvent{
		Order:    paidOrder(),
		Status:   "canceled",
		Original: &models.Original{PaymentState: "balance_due"},
	}
	result, err := newCoordinator(ns).UpdateOrder(event)
	require.NoError(t, err)
	assert.Equal(t, "NetSuite Sales Order R1001 was closed", result.Summary)

	ns.AssertNotCalled(t, "AddCustomerRefund", mock.Anything)
	ns.AssertExpectations(t)
}

func TestCancelPaidRefundsDepositThenCloses(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", ExternalID: "R1001"}, nil)
	ns.On("FindCustomerDepositByExternalID", "R1001").
		Return(&netsuite.CustomerDeposit{InternalID: "d1", Payment: 22}, nil)
	ns.On("FindCustomerByExternalID", "buyer@example.com").
		Return(&netsuite.Customer{InternalID: "c1", ExternalID: "buyer@example.com"}, nil)

	var calls []string
	var refund *netsuite.CustomerRefund
	ns.On("AddCustomerRefund", mock.AnythingOfType("*netsuite.CustomerRefund")).
		Run(func(args mock.Arguments) {
			calls = append(calls, "refund")
			refund = args.Get(0).(*netsuite.CustomerRefund)
		}).
		Return(nil)
	ns.On("CloseSalesOrder", mock.AnythingOfType("*netsuite.SalesOrder")).
		Run(func(args mock.Arguments) { calls = append(calls, "close") }).
		Return(nil)

	event := models.OrderEvent{Order: paidOrder(), Status: "cancelled"}
	result, err := newCoordinator(ns).UpdateOrder(event)
	require.NoError(t, err)
	assert.Equal(t, "Customer Refund created and NetSuite Sales Order R1001 was closed", result.Summary)

	assert.Equal(t, []string{"refund", "close"}, calls)
	require.NotNil(t, refund)
	assert.Equal(t, "R1001", refund.ExternalID)
	assert.Equal(t, "c1", refund.Customer.InternalID)
	assert.Equal(t, "7", refund.PaymentMethod.InternalID)
	require.Len(t, refund.DepositList.Deposits, 1)
	applied := refund.DepositList.Deposits[0]
	assert.Equal(t, "d1", applied.Doc)
	assert.True(t, applied.Apply)
	assert.Equal(t, 22.0, applied.Amount)
}

func TestCancelUnknownOrderFails(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").Return(nil, netsuite.ErrNotFound)

	event := models.OrderEvent{Order: paidOrder(), Status: "canceled"}
	_, err := newCoordinator(ns).UpdateOrder(event)
	require.Error(t, err)

	var notFound *netsuite.RecordNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "NetSuite Sales Order not found for order R1001", err.Error())
}

func TestUnknownShippingMethodWritesNothing(t *testing.T) {
	order := paidOrder()
	order.Shipments = []models.OrderShipment{{ShippingMethod: "Teleport"}}

	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").Return(nil, netsuite.ErrNotFound)

	_, err := newCoordinator(ns).ImportOrder(models.OrderEvent{Order: order})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Teleport")
	assert.Contains(t, err.Error(), "UPS Ground")

	ns.AssertNotCalled(t, "FindCustomerByExternalID", mock.Anything)
	ns.AssertNotCalled(t, "AddCustomer", mock.Anything)
	ns.AssertNotCalled(t, "AddSalesOrder", mock.Anything)
	ns.AssertNotCalled(t, "AddCustomerDeposit", mock.Anything)
}

func TestImportOrderUnknownSKUFails(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").Return(nil, netsuite.ErrNotFound)
	ns.On("FindCustomerByExternalID", "buyer@example.com").Return(existingCustomer(), nil)
	ns.On("FindInventoryItemBySKU", "A").Return(nil, netsuite.ErrNotFound)

	_, err := newCoordinator(ns).ImportOrder(models.OrderEvent{Order: paidOrder()})
	require.Error(t, err)

	var notFound *netsuite.RecordNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "NetSuite Inventory Item not found for A", err.Error())
	ns.AssertNotCalled(t, "AddSalesOrder", mock.Anything)
}

func TestImportOrderCreatesMissingCustomer(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").Return(nil, netsuite.ErrNotFound).Once()
	ns.On("FindCustomerByExternalID", "buyer@example.com").Return(nil, netsuite.ErrNotFound)

	var created *netsuite.Customer
	ns.On("AddCustomer", mock.AnythingOfType("*netsuite.Customer")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*netsuite.Customer) }).
		Return(nil)
	ns.On("FindInventoryItemBySKU", "A").Return(&netsuite.InventoryItem{InternalID: "12"}, nil)
	ns.On("FindNonInventoryItemByName", "Spree Tax").Return(&netsuite.NonInventoryItem{InternalID: "77"}, nil)
	ns.On("AddSalesOrder", mock.Anything).Return(nil)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", TranID: "SO-501"}, nil).Once()
	ns.On("AddCustomerDeposit", mock.Anything).Return(nil)

	_, err := newCoordinator(ns).ImportOrder(models.OrderEvent{Order: paidOrder()})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "buyer@example.com", created.ExternalID)
	assert.True(t, created.IsPerson)
	assert.Equal(t, "Luis", created.FirstName)
	require.NotNil(t, created.AddressbookList)
	require.Len(t, created.AddressbookList.Addressbooks, 1)
	entry := created.AddressbookList.Addressbooks[0]
	assert.True(t, entry.DefaultShipping)
	assert.Equal(t, "MD", entry.State)
	assert.Equal(t, "_unitedStates", entry.Country)
	assert.Equal(t, "4105550134", entry.Phone)
}

func TestImportOrderPlaceholdsMissingCustomerNames(t *testing.T) {
	order := paidOrder()
	order.ShippingAddress.Firstname = ""
	order.ShippingAddress.Lastname = ""

	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").Return(nil, netsuite.ErrNotFound).Once()
	ns.On("FindCustomerByExternalID", "buyer@example.com").Return(nil, netsuite.ErrNotFound)

	var created *netsuite.Customer
	ns.On("AddCustomer", mock.AnythingOfType("*netsuite.Customer")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*netsuite.Customer) }).
		Return(nil)
	ns.On("FindInventoryItemBySKU", "A").Return(&netsuite.InventoryItem{InternalID: "12"}, nil)
	ns.On("FindNonInventoryItemByName", "Spree Tax").Return(&netsuite.NonInventoryItem{InternalID: "77"}, nil)
	ns.On("AddSalesOrder", mock.Anything).Return(nil)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", TranID: "SO-501"}, nil).Once()
	ns.On("AddCustomerDeposit", mock.Anything).Return(nil)

	_, err := newCoordinator(ns).ImportOrder(models.OrderEvent{Order: order})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "N/A", created.FirstName)
	assert.Equal(t, "N/A", created.LastName)
}

func TestImportOrderPrependsNewDefaultShippingAddress(t *testing.T) {
	order := paidOrder()
	order.ShippingAddress.Address1 = "9 Harbor Way"

	ns := new(netsuitetest.MockAPI)
	ns.On("FindSalesOrderByExternalID", "R1001").Return(nil, netsuite.ErrNotFound).Once()
	ns.On("FindCustomerByExternalID", "buyer@example.com").Return(existingCustomer(), nil)

	var updated *netsuite.Customer
	ns.On("UpdateCustomer", mock.AnythingOfType("*netsuite.Customer")).
		Run(func(args mock.Arguments) { updated = args.Get(0).(*netsuite.Customer) }).
		Return(nil)
	ns.On("FindInventoryItemBySKU", "A").Return(&netsuite.InventoryItem{InternalID: "12"}, nil)
	ns.On("FindNonInventoryItemByName", "Spree Tax").Return(&netsuite.NonInventoryItem{InternalID: "77"}, nil)
	ns.On("AddSalesOrder", mock.Anything).Return(nil)
	ns.On("FindSalesOrderByExternalID", "R1001").
		Return(&netsuite.SalesOrder{InternalID: "501", TranID: "SO-501"}, nil).Once()
	ns.On("AddCustomerDeposit", mock.Anything).Return(nil)

	_, err := newCoordinator(ns).ImportOrder(models.OrderEvent{Order: order})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "c1", updated.InternalID)
	require.NotNil(t, updated.AddressbookList)
	require.Len(t, updated.AddressbookList.Addressbooks, 2)
	assert.Equal(t, "9 Harbor Way", updated.AddressbookList.Addressbooks[0].Addr1)
	assert.True(t, updated.AddressbookList.Addressbooks[0].DefaultShipping)
	assert.Equal(t, "1 Main St", updated.AddressbookList.Addressbooks[1].Addr1)
	assert.False(t, updated.AddressbookList.Addressbooks[1].DefaultShipping)
}
