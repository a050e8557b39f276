// Package actions maps external action names to the handlers that
// implement them.
//
// A Registry holds two tables: external name to handler identifier, and
// handler identifier to the bound Handler. Every registry starts with the
// default action ("run" -> "run"); the name "run" can never be registered
// explicitly. Handlers are bound as ordinary function values when the
// owning component is constructed, so resolving an action is a plain
// lookup.
package actions
