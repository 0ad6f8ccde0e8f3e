/*
 * Record - DNS record request payload.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package doapi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// RecordType is one of the DNS record types supported by the API. Its
// textual form is identical to its wire representation.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeTXT   RecordType = "TXT"
)

// String returns the uppercase tag name of the record type.
func (t RecordType) String() string {
	return string(t)
}

// Valid checks if a record type belongs to the supported set.
func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeA, RecordTypeAAAA, RecordTypeCNAME, RecordTypeMX,
		RecordTypeNS, RecordTypeSRV, RecordTypeTXT:
		return true
	default:
		return false
	}
}

// EncodingPolicy selects how absent optional fields of a Record are
// serialized.
type EncodingPolicy int

const (
	// EncodeNullAbsent serializes absent optional fields as JSON null.
	EncodeNullAbsent EncodingPolicy = iota
	// EncodeOmitAbsent omits absent optional fields from the payload.
	EncodeOmitAbsent
)

// Record is the payload for creating or updating a DNS record. Which
// optional fields are required depends on the record type (e.g. priority
// for MX and SRV, port and weight for SRV); the API rejects invalid
// combinations, the client does not.
type Record struct {
	// Type is the record type. RecordType's String method yields a value
	// suitable for this field.
	Type string `json:"type"`
	// Name is the host name, alias or service being defined by the record
	// (A, AAAA, CNAME, TXT, SRV).
	Name *string `json:"name"`
	// Priority of the host (MX, SRV).
	Priority *uint64 `json:"priority"`
	// Port the service is accessible on (SRV).
	Port *uint64 `json:"port"`
	// Data is variable data depending on the record type
	// (A, AAAA, CNAME, MX, TXT, SRV, NS).
	Data *string `json:"data"`
	// Weight of records with the same priority (SRV).
	Weight *uint64 `json:"weight"`
}

// omittingRecord mirrors Record with absent fields dropped from the
// payload instead of being rendered as null.
type omittingRecord struct {
	Type     string  `json:"type"`
	Name     *string `json:"name,omitempty"`
	Priority *uint64 `json:"priority,omitempty"`
	Port     *uint64 `json:"port,omitempty"`
	Data     *string `json:"data,omitempty"`
	Weight   *uint64 `json:"weight,omitempty"`
}

// Encode serializes the record to its JSON wire form according to the
// given policy.
func (r Record) Encode(policy EncodingPolicy) ([]byte, error) {
	var payload any = r
	if policy == EncodeOmitAbsent {
		payload = omittingRecord(r)
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("cannot encode record: %w", err)
	}
	return encoded, nil
}

// String renders the record as a fixed multi-line report, with a literal
// "None" for every absent optional field.
func (r Record) String() string {
	return fmt.Sprintf("Record Type: %s\n"+
		"Name: %s\n"+
		"Data: %s\n"+
		"Priority: %s\n"+
		"Port: %s\n"+
		"Weight: %s\n",
		r.Type,
		stringOrNone(r.Name),
		stringOrNone(r.Data),
		uintOrNone(r.Priority),
		uintOrNone(r.Port),
		uintOrNone(r.Weight))
}

// stringOrNone renders an optional string, with "None" when absent.
func stringOrNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}

// uintOrNone renders an optional number, with "None" when absent.
func uintOrNone(n *uint64) string {
	if n == nil {
		return "None"
	}
	return strconv.FormatUint(*n, 10)
}

// String returns a pointer suitable for the optional fields of a Record.
func String(s string) *string {
	return &s
}

// Uint64 returns a pointer suitable for the optional fields of a Record.
func Uint64(n uint64) *uint64 {
	return &n
}
