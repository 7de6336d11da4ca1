package diagnosis

const (
	// ReasonInsufficientAllowance is reported when the spender was not approved for the input amount
	ReasonInsufficientAllowance = "Insufficient allowance"
	// ReasonMinimumReturn is reported when the conversion would have returned less than requested
	ReasonMinimumReturn = "Minimum Return"

	// UnknownCauseInfo is the info of a diagnosis where no rule matched
	UnknownCauseInfo = "cause unknown"
)

// Report is the outcome of a diagnosis
type Report struct {
	FailureReason string `json:"failureReason,omitempty"`
	Info          string `json:"info"`
}

// IsUnknown reports whether no failure cause was identified
func (r *Report) IsUnknown() bool {
	return r.FailureReason == ""
}

func unknownCause() *Report {
	return &Report{Info: UnknownCauseInfo}
}
