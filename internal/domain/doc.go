// Package domain contains shared domain types used across sub-packages.
// Binding records live in domain/binding, local and resolved settings in
// domain/settings, and the precedence logic in domain/resolver. This root
// package holds sentinel errors and the typed errors that wrap them.
package domain
