package constants

// Redis key prefixes for risk velocity counters
const (
	KeyRiskAttemptsUser = "risk:attempts:user:"
	KeyRiskAttemptsIP   = "risk:attempts:ip:"
)
