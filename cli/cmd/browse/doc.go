// Package browse is an interactive prompt for looking up records by base
// name. Candidates are fuzzy matched as the user types; Tab and Shift-Tab
// cycle through them, Enter prints the selected record, and Ctrl-C, Ctrl-D or
// Esc on an empty line exits.
package browse
