// Package document drives page reconstruction across whole documents.
//
// The core pipeline is a pure per-page function, so pages can be analyzed
// independently and in parallel. [Process] fans one analyzer out over all
// pages with a bounded worker group and honors context cancellation
// between pages; the per-page pipeline itself never blocks and needs no
// cancellation point.
package document
