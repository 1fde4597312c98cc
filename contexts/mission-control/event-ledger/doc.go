// Package eventledger contains the FlexyFins implementation of the
// Mission Event Ledger.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package eventledger
