package models

import "encoding/json"

// RolloutWriteRequest is the request body for storing a rollout record
// swagger:model
type RolloutWriteRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// WhitelistFields holds the whitelist fields as they may appear either at the
// top level of the request or nested under "value".
type WhitelistFields struct {
	Key     string `json:"key"`
	IPv4    string `json:"ipv4"`
	IPv6    string `json:"ipv6"`
	Comment string `json:"comment"`
}

// WhitelistWriteRequest is the request body for creating or updating a whitelist entry
// swagger:model
type WhitelistWriteRequest struct {
	WhitelistFields
	Value *WhitelistFields `json:"value,omitempty"`
}

// WhitelistDeleteRequest is the request body for deleting a whitelist entry
// swagger:model
type WhitelistDeleteRequest struct {
	Key string `json:"key"`
}
