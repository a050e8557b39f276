// Package types defines the core types shared by the action registry, the
// dispatcher and the component: Action, Handler and ExecutionMode.
package types
