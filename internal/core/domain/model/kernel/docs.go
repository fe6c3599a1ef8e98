// Package kernel holds the primitives shared by every aggregate of the installation
// workflow: identifiers (UUID), backend roles (Role) and the identity a request is
// made under (Actor).
package kernel
