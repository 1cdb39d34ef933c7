package netsuite

import "encoding/xml"

const (
	envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	messagesNS = "urn:messages_2013_2.platform.webservices.netsuite.com"
)

// NetSuite record-not-found status code on reads that miss.
const codeRecordNotFound = "RCRD_DSNT_EXIST"

type requestEnvelope struct {
	XMLName xml.Name      `xml:"Envelope"`
	Xmlns   string        `xml:"xmlns,attr"`
	Header  requestHeader `xml:"Header"`
	Body    requestBody   `xml:"Body"`
}

type requestHeader struct {
	Passport passport `xml:"passport"`
}

// passport is the per-request credentials header the 2013_2 endpoint expects.
type passport struct {
	Xmlns    string `xml:"xmlns,attr"`
	Email    string `xml:"email"`
	Password string `xml:"password"`
	Account  string `xml:"account"`
}

type requestBody struct {
	Inner []byte `xml:",innerxml"`
}

type getRequest struct {
	XMLName xml.Name  `xml:"get"`
	Xmlns   string    `xml:"xmlns,attr"`
	BaseRef RecordRef `xml:"baseRef"`
}

type addRequest struct {
	XMLName    xml.Name    `xml:"add"`
	Xmlns      string      `xml:"xmlns,attr"`
	RecordType string      `xml:"recordType,attr"`
	Record     interface{} `xml:"record"`
}

type updateRequest struct {
	XMLName    xml.Name    `xml:"update"`
	Xmlns      string      `xml:"xmlns,attr"`
	RecordType string      `xml:"recordType,attr"`
	Record     interface{} `xml:"record"`
}

type searchRequest struct {
	XMLName    xml.Name    `xml:"search"`
	Xmlns      string      `xml:"xmlns,attr"`
	RecordType string      `xml:"recordType,attr"`
	Basic      searchBasic `xml:"searchRecord>basic"`
}

type searchStringField struct {
	Operator string `xml:"operator,attr"`
	Value    string `xml:"searchValue"`
}

type searchDateField struct {
	Operator string `xml:"operator,attr"`
	Value    string `xml:"searchValue"`
}

type searchBasic struct {
	ItemID           *searchStringField `xml:"itemId,omitempty"`
	DisplayName      *searchStringField `xml:"displayName,omitempty"`
	LastModifiedDate *searchDateField   `xml:"lastModifiedDate,omitempty"`
}

type statusDetail struct {
	Type    string `xml:"type,attr"`
	Code    string `xml:"code"`
	Message string `xml:"message"`
}

type status struct {
	IsSuccess bool           `xml:"isSuccess,attr"`
	Details   []statusDetail `xml:"statusDetail"`
}

func (s status) notFound() bool {
	for _, d := range s.Details {
		if d.Code == codeRecordNotFound {
			return true
		}
	}
	return false
}

// errorMessages returns the messages of ERROR-type details only; NetSuite
// mixes warnings into the same list.
func (s status) errorMessages() []string {
	var msgs []string
	for _, d := range s.Details {
		if d.Type == "ERROR" && d.Message != "" {
			msgs = append(msgs, d.Message)
		}
	}
	return msgs
}

type soapFault struct {
	Code   string `xml:"Body>Fault>faultcode"`
	String string `xml:"Body>Fault>faultstring"`
}
