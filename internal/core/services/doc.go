// Package services implements the driving port interfaces.
// Services contain the core translation logic and orchestrate
// calls to driven ports (namespace handlers, concordance store).
//
// Services are pure Go with no CGO or external dependencies.
package services
