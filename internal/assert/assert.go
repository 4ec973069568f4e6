// Package assert provides debug-build assertions.
//
// Assertions are compiled in only with the apportiondebug build tag:
//
//	go test -tags apportiondebug ./...
//
// In regular builds every function is a no-op so release behavior never aborts.
package assert
