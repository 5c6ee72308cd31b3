package model

// Event is one scheduled happening. Date and Time stay in the form-shaped
// string format they arrive in; the application never does calendar
// arithmetic on them.
type Event struct {
	ID          int
	Name        string
	Date        string
	Time        string
	Location    string
	Description *string
}
