// Package spendwise provides the domain logic of a local-first personal
// expense tracker: user accounts, credentials, an append-only expense ledger,
// and the aggregation reports built on top of it.
//
// The core functionalities include:
//   - Account Store: a single JSON document mapping each email to its user
//     record (credentials, onboarding settings, balances, expense list),
//     rewritten wholesale and atomically on every mutation.
//   - Credential Management: signup validation, salted password hashing, and
//     explicit session values returned to the caller instead of ambient
//     current-user state.
//   - Expense Ledger: append-only spend events that debit the matching
//     account balance; entries are never edited or deleted.
//   - Aggregation Reports: trailing-window summaries with category and
//     account breakdowns, custom date-range filtering, substring search,
//     recency listings and budget consumption status.
//
// This package serves as the foundational logic for the `sw` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package spendwise
