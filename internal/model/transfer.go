package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Transfer is a stored transfer record.
//
// Document holds the raw inbound request. Asset is the resolved asset reference encoded as a
// JSON document, and Contents is the fetched payload associated with the transfer. Both are
// nil until populated.
type Transfer struct {
	ID        string          `json:"id"`
	Document  json.RawMessage `json:"document"`
	Asset     json.RawMessage `json:"asset"`
	Contents  json.RawMessage `json:"contents"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TransferRequest is the inbound payload of POST /v1/transfer.
type TransferRequest struct {
	ID       string `json:"id" validate:"omitempty,max=255"`
	Endpoint string `json:"endpoint" validate:"required,url"`
	AuthKey  string `json:"authKey"`
	AuthCode string `json:"authCode"`
}

// UnmarshalJSON accepts the id as a JSON string or number; 7 and "7" are the same id.
func (r *TransferRequest) UnmarshalJSON(b []byte) error {
	type plain TransferRequest
	aux := struct {
		*plain
		ID json.RawMessage `json:"id"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("id must be a string or a number, got %s", raw)
	}
	return n.String(), nil
}
