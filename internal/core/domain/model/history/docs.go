// Package history holds the order audit trail entry. Entries are produced as data by
// the workflow services and appended by the application layer in the same unit of
// work as the change they describe.
package history
