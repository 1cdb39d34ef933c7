package netsuite

import "time"

// API is the surface the integration flows use. *Client implements it; tests
// substitute a mock.
type API interface {
	FindSalesOrderByExternalID(externalID string) (*SalesOrder, error)
	GetSalesOrder(internalID string) (*SalesOrder, error)
	AddSalesOrder(order *SalesOrder) error
	CloseSalesOrder(order *SalesOrder) error

	FindCustomerByExternalID(email string) (*Customer, error)
	AddCustomer(customer *Customer) error
	UpdateCustomer(customer *Customer) error

	FindCustomerDepositByExternalID(externalID string) (*CustomerDeposit, error)
	AddCustomerDeposit(deposit *CustomerDeposit) error
	AddCustomerRefund(refund *CustomerRefund) error

	AddItemFulfillment(fulfillment *ItemFulfillment) error
	AddInvoice(invoice *Invoice) error

	FindInventoryItemBySKU(sku string) (*InventoryItem, error)
	FindNonInventoryItemByName(name string) (*NonInventoryItem, error)
	AddNonInventoryItem(item *NonInventoryItem) error

	SearchItemFulfillments(since time.Time) ([]ItemFulfillment, error)
	SearchInventoryItems(since time.Time) ([]InventoryItem, error)
}

var _ API = (*Client)(nil)
