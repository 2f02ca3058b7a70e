// Package app contains the application lifecycle. It defines the App struct,
// its configuration, and the run that takes one batch of trips from raw
// input to a printed reimbursement report, decoupled from any specific
// entrypoint like a CLI.
package app
