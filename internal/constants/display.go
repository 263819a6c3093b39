package constants

// Display limits and classification cutoffs.
const (
	// MaxStreamCards caps how many status cards a single response carries.
	// TV clients truncate long stream lists, so keep it small.
	MaxStreamCards = 3

	// DefaultVisibilityThresholdDays hides cards for accounts with more
	// days remaining than this when visibility mode is "threshold".
	// Earlier revisions shipped with 3; current default is 30.
	DefaultVisibilityThresholdDays = 30

	// Urgency tier cutoffs, inclusive upper bounds on days remaining.
	ExpiredMaxDays  = 0
	CriticalMaxDays = 3
	WarningMaxDays  = 14
)
