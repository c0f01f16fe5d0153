package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type RequestStartSearch struct {
	Day   int `json:"day"`
	Month int `json:"month"`
}
