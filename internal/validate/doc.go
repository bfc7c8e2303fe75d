// Package validate implements regex-validated text inputs with
// edge-triggered change notification, and groups that aggregate the
// validity of several inputs.
//
// The package is UI-free: an Input only tracks text, validity and the
// border color the host should currently paint with. Rendering belongs
// to the host (see internal/tui).
package validate
