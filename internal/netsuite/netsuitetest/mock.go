// Package netsuitetest provides a testify mock of the NetSuite client
// surface for flow and handler tests.
package netsuitetest

import (
	"time"

	"nsbridge/internal/netsuite"

	"github.com/stretchr/testify/mock"
)

type MockAPI struct {
	mock.Mock
}

var _ netsuite.API = (*MockAPI)(nil)

func (m *MockAPI) FindSalesOrderByExternalID(externalID string) (*netsuite.SalesOrder, error) {
	args := m.Called(externalID)
	order, _ := args.Get(0).(*netsuite.SalesOrder)
	return order, args.Error(1)
}

func (m *MockAPI) GetSalesOrder(internalID string) (*netsuite.SalesOrder, error) {
	args := m.Called(internalID)
	order, _ := args.Get(0).(*netsuite.SalesOrder)
	return order, args.Error(1)
}

func (m *MockAPI) AddSalesOrder(order *netsuite.SalesOrder) error {
	return m.Called(order).Error(0)
}

func (m *MockAPI) CloseSalesOrder(order *netsuite.SalesOrder) error {
	return m.Called(order).Error(0)
}

func (m *MockAPI) FindCustomerByExternalID(email string) (*netsuite.Customer, error) {
	args := m.Called(email)
	customer, _ := args.Get(0).(*netsuite.Customer)
	return customer, args.Error(1)
}

func (m *MockAPI) AddCustomer(customer *netsuite.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *MockAPI) UpdateCustomer(customer *netsuite.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *MockAPI) FindCustomerDepositByExternalID(externalID string) (*netsuite.CustomerDeposit, error) {
	args := m.Called(externalID)
	deposit, _ := args.Get(0).(*netsuite.CustomerDeposit)
	return deposit, args.Error(1)
}

func (m *MockAPI) AddCustomerDeposit(deposit *netsuite.CustomerDeposit) error {
	return m.Called(deposit).Error(0)
}

func (m *MockAPI) AddCustomerRefund(refund *netsuite.CustomerRefund) error {
	return m.Called(refund).Error(0)
}

func (m *MockAPI) AddItemFulfillment(fulfillment *netsuite.ItemFulfillment) error {
	return m.Called(fulfillment).Error(0)
}

func (m *MockAPI) AddInvoice(invoice *netsuite.Invoice) error {
	return m.Called(invoice).Error(0)
}

func (m *MockAPI) FindInventoryItemBySKU(sku string) (*netsuite.InventoryItem, error) {
	args := m.Called(sku)
	item, _ := args.Get(0).(*netsuite.InventoryItem)
	return item, args.Error(1)
}

func (m *MockAPI) FindNonInventoryItemByName(name string) (*netsuite.NonInventoryItem, error) {
	args := m.Called(name)
	item, _ := args.Get(0).(*netsuite.NonInventoryItem)
	return item, args.Error(1)
}

func (m *MockAPI) AddNonInventoryItem(item *netsuite.NonInventoryItem) error {
	return m.Called(item).Error(0)
}

func (m *MockAPI) SearchItemFulfillments(since time.Time) ([]netsuite.ItemFulfillment, error) {
	args := m.Called(since)
	fulfillments, _ := args.Get(0).([]netsuite.ItemFulfillment)
	return fulfillments, args.Error(1)
}

func (m *MockAPI) SearchInventoryItems(since time.Time) ([]netsuite.InventoryItem, error) {
	args := m.Called(since)
	items, _ := args.Get(0).([]netsuite.InventoryItem)
	return items, args.Error(1)
}
