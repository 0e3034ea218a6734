// Package memory provides in-memory implementations of driven port interfaces.
// They back tests of the services and driving adapters.
package memory
