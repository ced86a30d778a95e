// Package cashbook provides the core of a local-first personal ledger of income
// and expense entries. It is designed to keep the user's data in a single,
// human-readable CSV file that can be read and edited by hand.
//
// The core functionalities include:
//   - Records: a single Record type tagged with a closed Kind (Income or Expense).
//   - Validation: pure functions that turn raw user input into well-formed
//     descriptions and strictly positive values.
//   - Ledger: the in-memory, ordered collection of records and its id generator,
//     with create, find, update and delete operations.
//   - Persistence: encoding and decoding of the ledger to and from CSV, with an
//     atomic whole-file replace on save.
//   - Accounting: totals per kind and the income versus expense comparison.
//
// This package serves as the foundational logic for the `cb` command-line
// tool.
package cashbook
