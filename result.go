package cjkdoc

import "time"

// Result is the outcome of one conversion session. Sessions never return
// errors directly; failures are reported through OK, Message and Err.
type Result struct {
	OK      bool
	Message string

	// Err is the coded error behind a failed session.
	Err error

	Format Format
	Input  string
	Output string

	// Converted lists the members that were converted, slash-separated and
	// relative to the archive root.
	Converted []string

	// Lossy lists converted members that were not valid UTF-8.
	Lossy []string

	// Malformed lists members that were well-formed XML before conversion
	// and are not afterwards.
	Malformed []string

	// Warnings holds non-fatal problems such as incomplete cleanup.
	Warnings []string

	Duration time.Duration
}

// Fragments returns the number of converted members.
func (r *Result) Fragments() int {
	return len(r.Converted)
}
