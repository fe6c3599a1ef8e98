// Package services provides the workflow domain services of the installation
// system. They decide every order and task status change and never persist anything
// themselves: each operation takes snapshots of the aggregates it needs and returns
// new snapshots, history entries and cascade requests as data.
//
// The package includes:
//   - RoleCapability: the single transition rule table, consulted by both engines and the HTTP layer
//   - OrderWorkflow: role-gated order transitions and the system cascade
//   - TaskWorkflow: technician assignment and the task lifecycle
//   - QRClosure: token issue, QR verification and the administrative override close
package services
