// Package jsonapi holds the JSON:API envelope types shared by the remote
// resource client and the development resource server.
//
// The wire shape is the usual {data, included} document where data is
// either a single resource object or an array of them:
//
//	{"data": [{"type": "orders", "id": "7", "attributes": {...}}, ...],
//	 "included": [{"type": "menu_item", "id": "3", "attributes": {...}}]}
//
// Resource ids arrive as JSON strings from some servers and as numbers
// from others; ID normalizes both to int64.
package jsonapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ContentType is the JSON:API media type sent and accepted on every
// request.
const ContentType = "application/vnd.api+json"

// ID is a resource identifier. It unmarshals from either a JSON string
// ("42") or a JSON number (42) and marshals as a string, which is what
// the JSON:API convention prescribes.
type ID int64

// UnmarshalJSON accepts "42", 42, and 42.0.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("jsonapi: invalid resource id %s: %w", data, err)
	}
	*id = ID(n)
	return nil
}

// MarshalJSON encodes the id as a JSON string.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(id), 10))), nil
}

// Number is a numeric attribute that tolerates string encodings
// ("3.50" as well as 3.5). Missing or null values decode to zero.
type Number float64

// UnmarshalJSON accepts numbers and quoted numbers.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

// Money is a decimal amount that marshals with exactly two fraction
// digits, matching how the resource server stores order totals.
type Money float64

// MarshalJSON encodes the amount as an unquoted two-decimal number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(m), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts numbers and quoted numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Money(n)
	return nil
}

// Resource is one {type, id, attributes} object.
type Resource struct {
	Type       string          `json:"type"`
	ID         ID              `json:"id,omitempty"`
	Attributes json.RawMessage `json:"attributes"`
}

// Document is the top-level envelope. Data holds either a Resource or a
// []Resource; Included carries side-loaded related resources.
type Document struct {
	Data     json.RawMessage `json:"data"`
	Included []Resource      `json:"included,omitempty"`
}

// DecodeMany parses a collection document. A document whose data member
// is absent or not an array yields an empty slice, never an error: the
// caller treats malformed or empty bodies as "no data".
func DecodeMany(body []byte) ([]Resource, []Resource) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, nil
	}
	var many []Resource
	if err := json.Unmarshal(doc.Data, &many); err != nil {
		return nil, doc.Included
	}
	return many, doc.Included
}

// DecodeOne parses a single-resource document. Missing or malformed data
// yields a zero Resource.
func DecodeOne(body []byte) Resource {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return Resource{}
	}
	var one Resource
	if err := json.Unmarshal(doc.Data, &one); err != nil {
		return Resource{}
	}
	return one
}

// IncludedMap indexes included resources by "type:id" for cross-reference
// lookups.
func IncludedMap(included []Resource) map[string]Resource {
	m := make(map[string]Resource, len(included))
	for _, r := range included {
		m[r.Type+":"+strconv.FormatInt(int64(r.ID), 10)] = r
	}
	return m
}

// EncodeOne wraps a resource in a single-resource document body.
func EncodeOne(r Resource) ([]byte, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Document{Data: raw})
}

// EncodeMany wraps resources in a collection document body.
func EncodeMany(rs []Resource, included []Resource) ([]byte, error) {
	if rs == nil {
		rs = []Resource{}
	}
	raw, err := json.Marshal(rs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Document{Data: raw, Included: included})
}
