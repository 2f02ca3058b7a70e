// Package config defines the format-agnostic input model of a reimbursement
// run, along with the Loader interface for reading it from files.
//
// Concrete loaders, such as the HCL one, live in separate packages so the
// app package depends only on this model.
package config
