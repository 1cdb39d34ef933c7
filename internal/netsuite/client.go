package netsuite

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"nsbridge/internal/config"
	"nsbridge/internal/logger"
)

// Client talks to the NetSuite SuiteTalk SOAP endpoint pinned by the config
// package. One client is built at process start and shared by every request;
// credentials never change during event handling.
type Client struct {
	endpoint   string
	email      string
	password   string
	account    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(cfg *config.Config, logger *logger.Logger) *Client {
	return &Client{
		endpoint: fmt.Sprintf("https://webservices.na1.netsuite.com/services/NetSuitePort_%s", config.APIVersion),
		email:    cfg.NetSuiteEmail,
		password: cfg.NetSuitePassword,
		account:  cfg.NetSuiteAccount,
		httpClient: &http.Client{
			Timeout: config.ReadTimeout * time.Second,
		},
		logger: logger,
	}
}

// call wraps one SOAP operation in an envelope with the passport header and
// returns the raw response body.
func (c *Client) call(action string, op interface{}) ([]byte, error) {
	opXML, err := xml.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", action, err)
	}

	envelope := requestEnvelope{
		Xmlns: envelopeNS,
		Header: requestHeader{
			Passport: passport{
				Xmlns:    messagesNS,
				Email:    c.email,
				Password: c.password,
				Account:  c.account,
			},
		},
		Body: requestBody{Inner: opXML},
	}

	data, err := xml.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	req, err := http.NewRequest("POST", c.endpoint, bytes.NewBuffer(append([]byte(xml.Header), data...)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var fault soapFault
		if xml.Unmarshal(body, &fault) == nil && fault.String != "" {
			return nil, fmt.Errorf("NetSuite fault: %s", fault.String)
		}
		return nil, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func readError(st status) error {
	if st.notFound() {
		return ErrNotFound
	}
	msgs := st.errorMessages()
	if len(msgs) == 0 {
		msgs = []string{"NetSuite read failed"}
	}
	return &ValidationError{Messages: msgs}
}

func writeError(st status) error {
	if st.IsSuccess {
		return nil
	}
	msgs := st.errorMessages()
	if len(msgs) == 0 {
		msgs = []string{"NetSuite rejected the record"}
	}
	return &ValidationError{Messages: msgs}
}

func (c *Client) get(recordType, internalID, externalID string) ([]byte, error) {
	return c.call("get", getRequest{
		Xmlns: messagesNS,
		BaseRef: RecordRef{
			InternalID: internalID,
			ExternalID: externalID,
			Type:       recordType,
		},
	})
}

// FindSalesOrderByExternalID looks a sales order up by the storefront order
// number. Missing orders yield ErrNotFound.
func (c *Client) FindSalesOrderByExternalID(externalID string) (*SalesOrder, error) {
	body, err := c.get("salesOrder", "", externalID)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Status status      `xml:"Body>getResponse>readResponse>status"`
		Record *SalesOrder `xml:"Body>getResponse>readResponse>record"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Status.IsSuccess {
		return nil, readError(resp.Status)
	}
	return resp.Record, nil
}

// GetSalesOrder fetches a sales order by NetSuite internal id.
func (c *Client) GetSalesOrder(internalID string) (*SalesOrder, error) {
	body, err := c.get("salesOrder", internalID, "")
	if err != nil {
		return nil, err
	}
	var resp struct {
		Status status      `xml:"Body>getResponse>readResponse>status"`
		Record *SalesOrder `xml:"Body>getResponse>readResponse>record"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Status.IsSuccess {
		return nil, readError(resp.Status)
	}
	return resp.Record, nil
}

func (c *Client) FindCustomerByExternalID(email string) (*Customer, error) {
	body, err := c.get("customer", "", email)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Status status    `xml:"Body>getResponse>readResponse>status"`
		Record *Customer `xml:"Body>getResponse>readResponse>record"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Status.IsSuccess {
		return nil, readError(resp.Status)
	}
	return resp.Record, nil
}

func (c *Client) FindCustomerDepositByExternalID(externalID string) (*CustomerDeposit, error) {
	body, err := c.get("customerDeposit", "", externalID)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Status status           `xml:"Body>getResponse>readResponse>status"`
		Record *CustomerDeposit `xml:"Body>getResponse>readResponse>record"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Status.IsSuccess {
		return nil, readError(resp.Status)
	}
	return resp.Record, nil
}

// add submits a record and returns the NetSuite-assigned internal id.
func (c *Client) add(recordType string, record interface{}) (string, error) {
	body, err := c.call("add", addRequest{
		Xmlns:      messagesNS,
		RecordType: recordType,
		Record:     record,
	})
	if err != nil {
		return "", err
	}
	var resp struct {
		Status  status    `xml:"Body>addResponse>writeResponse>status"`
		BaseRef RecordRef `xml:"Body>addResponse>writeResponse>baseRef"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if err := writeError(resp.Status); err != nil {
		return "", err
	}
	c.logger.Debug("added %s internalId=%s", recordType, resp.BaseRef.InternalID)
	return resp.BaseRef.InternalID, nil
}

func (c *Client) update(recordType string, record interface{}) error {
	body, err := c.call("update", updateRequest{
		Xmlns:      messagesNS,
		RecordType: recordType,
		Record:     record,
	})
	if err != nil {
		return err
	}
	var resp struct {
		Status status `xml:"Body>updateResponse>writeResponse>status"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return writeError(resp.Status)
}

func (c *Client) AddCustomer(customer *Customer) error {
	id, err := c.add("customer", customer)
	if err != nil {
		return err
	}
	customer.InternalID = id
	return nil
}

func (c *Client) UpdateCustomer(customer *Customer) error {
	return c.update("customer", customer)
}

func (c *Client) AddSalesOrder(order *SalesOrder) error {
	id, err := c.add("salesOrder", order)
	if err != nil {
		return err
	}
	order.InternalID = id
	return nil
}

// CloseSalesOrder transitions the order to its terminal closed status. It is
// never retried; a failure surfaces to the caller.
func (c *Client) CloseSalesOrder(order *SalesOrder) error {
	return c.update("salesOrder", &SalesOrder{
		InternalID:  order.InternalID,
		ExternalID:  order.ExternalID,
		OrderStatus: "_closed",
	})
}

func (c *Client) AddCustomerDeposit(deposit *CustomerDeposit) error {
	id, err := c.add("customerDeposit", deposit)
	if err != nil {
		return err
	}
	deposit.InternalID = id
	return nil
}

func (c *Client) AddCustomerRefund(refund *CustomerRefund) error {
	id, err := c.add("customerRefund", refund)
	if err != nil {
		return err
	}
	refund.InternalID = id
	return nil
}

func (c *Client) AddItemFulfillment(fulfillment *ItemFulfillment) error {
	id, err := c.add("itemFulfillment", fulfillment)
	if err != nil {
		return err
	}
	fulfillment.InternalID = id
	return nil
}

func (c *Client) AddInvoice(invoice *Invoice) error {
	id, err := c.add("invoice", invoice)
	if err != nil {
		return err
	}
	invoice.InternalID = id
	return nil
}

func (c *Client) AddNonInventoryItem(item *NonInventoryItem) error {
	id, err := c.add("nonInventorySaleItem", item)
	if err != nil {
		return err
	}
	item.InternalID = id
	return nil
}

// FindInventoryItemBySKU resolves a storefront sku to an inventory item.
func (c *Client) FindInventoryItemBySKU(sku string) (*InventoryItem, error) {
	body, err := c.call("search", searchRequest{
		Xmlns:      messagesNS,
		RecordType: "inventoryItem",
		Basic: searchBasic{
			ItemID: &searchStringField{Operator: "is", Value: sku},
		},
	})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Status  status          `xml:"Body>searchResponse>searchResult>status"`
		Records []InventoryItem `xml:"Body>searchResponse>searchResult>recordList>record"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Status.IsSuccess {
		return nil, readError(resp.Status)
	}
	if len(resp.Records) == 0 {
		return nil, ErrNotFound
	}
	return &resp.Records[0], nil
}

func (c *Client) FindNonInventoryItemByName(name string) (*NonInventoryItem, error) {
	body, err := c.call("search", searchRequest{
		Xmlns:      messagesNS,
		RecordType: "nonInventorySaleItem",
		Basic: searchBasic{
			DisplayName: &searchStringField{Operator: "is", Value: name},
		},
	})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Status  status             `xml:"Body>searchResponse>searchResult>status"`
		Records []NonInventoryItem `xml:"Body>searchResponse>searchResult>recordList>record"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Status.IsSuccess {
		return nil, readError(resp.Status)
	}
	if len(resp.Records) == 0 {
		return nil, ErrNotFound
	}
	return &resp.Records[0], nil
}

// SearchItemFulfillments lists fulfillments modified on or after the
// watermark.
func (c *Client) SearchItemFulfillments(since time.Time) ([]ItemFulfillment, error) {
	body, err := c.call("search", searchRequest{
		Xmlns:      messagesNS,
		RecordType: "itemFulfillment",
		Basic: searchBasic{
			LastModifiedDate: &searchDateField{Operator: "onOrAfter", Value: since.UTC().Format(DateLayout)},
		},
	})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Status  status            `xml:"Body>searchResponse>searchResult>status"`
		Records []ItemFulfillment `xml:"Body>searchResponse>searchResult>recordList>record"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Status.IsSuccess {
		return nil, readError(resp.Status)
	}
	return resp.Records, nil
}

// SearchInventoryItems lists items modified on or after the watermark, for
// the product pull.
func (c *Client) SearchInventoryItems(since time.Time) ([]InventoryItem, error) {
	body, err := c.call("search", searchRequest{
		Xmlns:      messagesNS,
		RecordType: "inventoryItem",
		Basic: searchBasic{
			LastModifiedDate: &searchDateField{Operator: "onOrAfter", Value: since.UTC().Format(DateLayout)},
		},
	})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Status  status          `xml:"Body>searchResponse>searchResult>status"`
		Records []InventoryItem `xml:"Body>searchResponse>searchResult>recordList>record"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Status.IsSuccess {
		return nil, readError(resp.Status)
	}
	return resp.Records, nil
}
