package models

import "encoding/json"

// Response envelopes. Each endpoint documents which one it uses; there is no
// generic unwrapping.

// DataEnvelope is the {"data": ...} shape.
type DataEnvelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NestedList is the [[...], ...] shape, where the payload is the first
// element. Trailing elements (driver field metadata) are ignored.
type NestedList[T any] struct {
	Rows []T
}

// First returns the payload list, or nil when the outer array is empty.
func (n NestedList[T]) First() []T {
	return n.Rows
}

func (n *NestedList[T]) UnmarshalJSON(b []byte) error {
	var outer []json.RawMessage
	if err := json.Unmarshal(b, &outer); err != nil {
		return err
	}
	n.Rows = nil
	if len(outer) == 0 {
		return nil
	}
	return json.Unmarshal(outer[0], &n.Rows)
}

func (n NestedList[T]) MarshalJSON() ([]byte, error) {
	rows := n.Rows
	if rows == nil {
		rows = []T{}
	}
	return json.Marshal([]any{rows})
}

// MessageResponse is returned by write endpoints. Message carries success and
// business outcomes alike; Error is set on failures.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ExistsResponse is returned by the role existence checks.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
