package schedule

// FieldUsername is the directory field that needs no lookup: usernames
// resolve to themselves.
const FieldUsername = "username"

// Directory maps usernames to display names. A nil Directory resolves every
// username to itself.
type Directory map[string]string

// BuildDirectory extracts the given display field from the raw user payloads.
// Users without a username are skipped; a missing or empty display field
// falls back to the username.
func BuildDirectory(users []map[string]any, field string) Directory {
	dir := make(Directory, len(users))
	for _, u := range users {
		username, _ := u[FieldUsername].(string)
		if username == "" {
			continue
		}
		display, _ := u[field].(string)
		if display == "" {
			display = username
		}
		dir[username] = display
	}
	return dir
}

// Resolve returns the display name for a username, or the username itself
// when unknown.
func (d Directory) Resolve(username string) string {
	if name, ok := d[username]; ok {
		return name
	}
	return username
}
