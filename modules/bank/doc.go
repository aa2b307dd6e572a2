// Package bank is the worked example for validated properties: a small
// in-memory entity whose name is normalized (whitespace collapsed) and
// validated (non-empty, length-bounded) on construction and on every
// rename. It shows the intended wiring of pkg/property, pkg/validator,
// pkg/sanitizer, pkg/identity, pkg/config and pkg/i18n in one place.
//
//	seq := identity.NewSequence()
//
//	b, err := bank.New(seq, "\tACME\t \tBank ")
//	// b.Name() == "ACME Bank"
//
//	old, err := b.Rename("Monopoly Bank")
//	// old == "ACME Bank"
//
//	_, err = b.Rename("bit")
//	// err carries bank.CodeNameLength; b.Name() is still "Monopoly Bank"
//
// There is no persistence and no locking here. The entity assumes a
// single-writer caller, matching the contracts of the property container
// and the identity sequence it is built on.
package bank
