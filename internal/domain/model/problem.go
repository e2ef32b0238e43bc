package model

// Problem represents LeetCode problem metadata used to enrich new records.
type Problem struct {
	ID         int
	Title      string
	Slug       string
	Difficulty string
	Link       string
	Content    string
	Topics     []string
	// PaidOnly problems come back without content.
	PaidOnly bool
}
