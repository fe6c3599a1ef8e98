// Package order provides the installation order aggregate and the order half of the
// status registry.
//
// The package includes:
//   - Order: the aggregate root (identity, scope, priority, QR token, status)
//   - Status: the nine backend statuses, their labels and the legal-pair table
//   - QRToken: the single-use proof-of-presence token and its scan payload format
//   - Priority: Normal or Urgent, informational only
//
// Which role may drive which legal pair is decided by the workflow services in
// internal/core/domain/services, never here.
package order
