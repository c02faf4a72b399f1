package domain

import (
	"bytes"
	"encoding/json"
)

// OrderPage normalizes the admin orders endpoint, which returns either a
// bare array or a paged envelope depending on server version.
type OrderPage struct {
	Content       []AdminOrderSummary `json:"content"`
	Number        int                 `json:"number,omitempty"`
	TotalPages    int                 `json:"totalPages,omitempty"`
	TotalElements int                 `json:"totalElements,omitempty"`
}

func (p *OrderPage) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = OrderPage{}
		return nil
	}
	if trimmed[0] == '[' {
		var content []AdminOrderSummary
		if err := json.Unmarshal(trimmed, &content); err != nil {
			return err
		}
		*p = OrderPage{Content: content}
		return nil
	}

	type envelope OrderPage // shed the method to avoid recursion
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	*p = OrderPage(env)
	return nil
}
