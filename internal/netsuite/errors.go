package netsuite

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by lookups that are allowed to miss. Callers that
// expect the record to exist wrap it into a RecordNotFoundError.
var ErrNotFound = errors.New("record not found")

// Record kinds used in RecordNotFoundError messages.
const (
	KindSalesOrder      = "Sales Order"
	KindCustomer        = "Customer"
	KindCustomerDeposit = "Customer Deposit"
	KindInventoryItem   = "Inventory Item"
)

// RecordNotFoundError is fatal to the event: a record the flow depends on is
// missing from NetSuite. ID is the storefront identifier that was looked up.
type RecordNotFoundError struct {
	Kind string
	ID   string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("NetSuite %s not found for %s", e.Kind, e.ID)
}

// ValidationError carries the message fields of every ERROR-type status
// detail a NetSuite write returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}
