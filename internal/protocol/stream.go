package protocol

type Envelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type SearchStarted struct {
	Day   int `json:"day"`
	Month int `json:"month"`
}

type SolutionFound struct {
	Number int      `json:"number"`
	Rows   []string `json:"rows"`
	Calls  int      `json:"calls"`
}

type SearchFinished struct {
	Solutions int `json:"solutions"`
	Calls     int `json:"calls"`
}

type SearchRejected struct {
	Reason string `json:"reason"`
}
