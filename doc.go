// Package wealth implements a single-user personal finance tracker. It is
// designed to be local-first: all state lives in one JSON snapshot on the
// user's device, and every computation runs synchronously over it.
//
// The core functionalities include:
//   - Persistent Store: loading, saving and exporting the whole application
//     snapshot, with demo-data seeding on first run.
//   - Domain Aggregates: pure reads computing net worth, per-account
//     balances, monthly cashflow, category breakdowns and the savings rate
//     from the transaction log.
//   - Import Pipeline: column-mapping inference, date and amount
//     normalization, deduplication, fixed-rate currency conversion and
//     rule-based categorization of uploaded tabular files.
//   - Holdings and Subscriptions: investment positions valued at
//     deterministic mock prices, and recurring charges feeding a monthly
//     burn-rate estimate.
//
// This package serves as the foundational logic for the `wt` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package wealth
