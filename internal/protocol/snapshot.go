package protocol

type PieceLite struct {
	ID        string `json:"id"`
	CellCount int    `json:"cellCount"`
	Variants  int    `json:"variants"`
}

type BoardSnapshot struct {
	BoardWidth      int         `json:"boardWidth"`
	BoardHeight     int         `json:"boardHeight"`
	Rows            []string    `json:"rows"`
	Day             int         `json:"day"`
	Month           int         `json:"month"`
	Pieces          []PieceLite `json:"pieces"`
	ProtocolVersion string      `json:"protocolVersion"`
}
