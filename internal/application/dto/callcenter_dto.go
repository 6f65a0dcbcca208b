package dto

// CallDTO one voice call as reported by the calling platform.
// Timestamps are Unix milliseconds; zero means "not reported".
type CallDTO struct {
	CallID              string `json:"callId"`
	AgentID             string `json:"agentId,omitempty"`
	FromNumber          string `json:"fromNumber,omitempty"`
	ToNumber            string `json:"toNumber,omitempty"`
	Direction           string `json:"direction,omitempty"`
	CallStatus          string `json:"callStatus"`
	DisconnectionReason string `json:"disconnectionReason,omitempty"`
	StartTimestamp      int64  `json:"startTimestamp,omitempty"`
	EndTimestamp        int64  `json:"endTimestamp,omitempty"`
}

// CallListResponse body of GET /api/call-center/calls. Configured is false
// when no API key is stored; Error carries an upstream failure without
// turning it into a request failure.
type CallListResponse struct {
	Configured bool      `json:"configured"`
	Calls      []CallDTO `json:"calls,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// CallStatsResponse body of GET /api/call-center/stats, computed in-process
// over the fetched calls.
type CallStatsResponse struct {
	Configured bool `json:"configured"`

	TotalCalls int `json:"totalCalls"`
	TodayCalls int `json:"todayCalls"`
	WeekCalls  int `json:"weekCalls"`

	// Average over calls that report both start and end timestamps.
	AvgDurationSeconds float64 `json:"avgDurationSeconds"`

	ConnectedCalls int `json:"connectedCalls"`
	FailedCalls    int `json:"failedCalls"`

	// round(connected / total * 100); 0 when there are no calls.
	SuccessRate int `json:"successRate"`

	Error string `json:"error,omitempty"`
}
