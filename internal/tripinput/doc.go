// Package tripinput validates raw trip input before it reaches the
// reimbursement core. It groups a flat token list into fixed-size tuples,
// checks every cost flag and date, and either returns the whole batch as
// trip.Raw values or rejects it with every problem it found.
package tripinput
