package dto

import "encoding/json"

// DataUserRequest represents the POST /dataUser body. The id arrives as a
// JSON number; json.Number keeps non-numeric payloads distinguishable from
// a missing field.
type DataUserRequest struct {
	IDUser json.Number `json:"idUser"`
}

// LastChargeRequest represents the POST /fechaCargo body.
type LastChargeRequest struct {
	IDUser json.Number `json:"idUser"`
}

// LastChargeResponse carries the most recent charge timestamp.
type LastChargeResponse struct {
	Status string `json:"status"`
	Fecha  string `json:"fecha"`
}
