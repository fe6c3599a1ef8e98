// Package task provides the technician task entity and the task half of the status
// registry: the strictly sequential progression with OnHold and Returned detours.
package task
