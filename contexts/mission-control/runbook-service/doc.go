// Package runbookservice maps operator reason codes to remediation runbooks.
// Pure lookup with no ledger interaction; it only shares the query surface.
package runbookservice
