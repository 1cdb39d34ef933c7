package integration

import (
	"errors"
	"fmt"

	"nsbridge/internal/logger"
	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"
	"nsbridge/internal/refdata"
)

// RefundFlow offsets a paid order's deposit with a customer refund when the
// storefront cancels the order.
type RefundFlow struct {
	ns     netsuite.API
	mapper *refdata.Mapper
	logger *logger.Logger
}

func NewRefundFlow(ns netsuite.API, mapper *refdata.Mapper, logger *logger.Logger) *RefundFlow {
	return &RefundFlow{ns: ns, mapper: mapper, logger: logger}
}

// Process creates a customer refund linking the customer, the payment method
// and the prior deposit, then closes the sales order. Closing is not
// re-attempted on failure.
func (f *RefundFlow) Process(order models.Order, salesOrder *netsuite.SalesOrder) error {
	deposit, err := f.ns.FindCustomerDepositByExternalID(order.Number)
	if errors.Is(err, netsuite.ErrNotFound) {
		return &netsuite.RecordNotFoundError{Kind: netsuite.KindCustomerDeposit, ID: "order " + order.Number}
	}
	if err != nil {
		return fmt.Errorf("failed to look up customer deposit %s: %w", order.Number, err)
	}

	customer, err := f.ns.FindCustomerByExternalID(order.Email)
	if errors.Is(err, netsuite.ErrNotFound) {
		return &netsuite.RecordNotFoundError{Kind: netsuite.KindCustomer, ID: order.Email}
	}
	if err != nil {
		return fmt.Errorf("failed to look up customer %s: %w", order.Email, err)
	}

	if len(order.Payments) == 0 {
		return fmt.Errorf("order %s has no payment method to refund against", order.Number)
	}
	methodID, err := f.mapper.PaymentMethodID(order.Payments[0].PaymentMethod)
	if err != nil {
		return err
	}

	refund := &netsuite.CustomerRefund{
		ExternalID:    order.Number,
		Customer:      &netsuite.RecordRef{InternalID: customer.InternalID},
		PaymentMethod: &netsuite.RecordRef{InternalID: methodID},
		DepositList: &netsuite.CustomerRefundDepositList{
			Deposits: []netsuite.CustomerRefundDeposit{{
				Doc:    deposit.InternalID,
				Apply:  true,
				Amount: deposit.Payment,
			}},
		},
	}
	if err := f.ns.AddCustomerRefund(refund); err != nil {
		return fmt.Errorf("failed to create customer refund for order %s: %w", order.Number, err)
	}

	f.logger.Info("created customer refund for order %s", order.Number)

	if err := f.ns.CloseSalesOrder(salesOrder); err != nil {
		return fmt.Errorf("failed to close sales order %s: %w", salesOrder.ExternalID, err)
	}
	return nil
}
