package engine

// Rules holds configurable match settings.
type Rules struct {
	TargetScore  int   // cumulative score that ends the match
	ActionLogCap int   // retained action-log entries; oldest dropped beyond this
	Seed         int64 // shuffle seed; 0 picks a time-based seed
}

// DefaultRules returns the standard match settings.
func DefaultRules() Rules {
	return Rules{
		TargetScore:  11,
		ActionLogCap: 200,
	}
}
