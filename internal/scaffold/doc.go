// Package scaffold materializes a planned project layout on disk.
//
// Materialize refuses to touch an existing project root. Once it starts
// creating entries it stops at the first failure and leaves everything it
// already created in place; there is no rollback.
package scaffold
