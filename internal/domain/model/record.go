package model

// Record is a problem page in the remote database.
type Record struct {
	ID  string
	URL string
}

// RecordUpdate holds the properties rewritten when a problem is solved again.
type RecordUpdate struct {
	Difficulty string
	Tags       []string
}

// NewRecord holds the properties of a problem seen for the first time.
type NewRecord struct {
	Title      string
	Slug       string
	Link       string
	Difficulty string
	Tags       []string
	// Summary is optional body text for the page.
	Summary string
}
