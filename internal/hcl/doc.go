// Package hcl loads trip batches from HCL files. A trips file declares
// `trip` blocks, in the order they should be reimbursed, and optional
// `rates` blocks that override the default per-diem amounts.
//
// The loader only translates HCL into tripinput.Tuple values and a
// reimburse.RateTable; validation of cost flags and dates is left to the
// tripinput package so that file and command-line input share one set of
// rules.
package hcl
