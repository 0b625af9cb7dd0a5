// Package services implements the driving port interfaces.
// Services contain the core business logic: request validation, filter
// composition, hybrid query composition, group policy, chunk reassembly
// and result shaping. They orchestrate calls to driven ports (adapters)
// and hold no state across requests.
package services
