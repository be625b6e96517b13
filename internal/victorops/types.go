package victorops

// TeamScheduleResponse is the payload of /v2/team/{team}/oncall/schedule.
type TeamScheduleResponse struct {
	Team      TeamRef          `json:"team"`
	Schedules []PolicySchedule `json:"schedules"`
}

// TeamRef identifies the team a schedule belongs to.
type TeamRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PolicySchedule is one escalation policy's schedule block within a team,
// with any active overrides for its window.
type PolicySchedule struct {
	Policy    PolicyRef       `json:"policy"`
	Schedule  []ShiftSchedule `json:"schedule"`
	Overrides []Override      `json:"overrides"`
}

// PolicyRef identifies an escalation policy.
type PolicyRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ShiftSchedule is a named recurring shift and its upcoming rolls.
type ShiftSchedule struct {
	ShiftName string `json:"shiftName"`
	Rolls     []Roll `json:"rolls"`
}

// Roll is one scheduled on-call assignment. Start and End are ISO-8601
// timestamps with offset, exactly as the API returns them.
type Roll struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	OnCallUser UserRef `json:"onCallUser"`
}

// UserRef carries the username of an on-call user inside schedule payloads.
type UserRef struct {
	Username string `json:"username"`
}

// Override is a temporary substitution of one user for another.
type Override struct {
	Start              string  `json:"start"`
	End                string  `json:"end"`
	OrigOnCallUser     UserRef `json:"origOnCallUser"`
	OverrideOnCallUser UserRef `json:"overrideOnCallUser"`
}

// usersResponse wraps the /v2/user payload. Users are decoded loosely so the
// display field can be selected by name at runtime.
type usersResponse struct {
	Users []map[string]any `json:"users"`
}
