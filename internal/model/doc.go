// Package model defines domain data structures used across the app: the
// selected local file, the transfer window state and transfer records with
// their status enums. Structures are plain values so the UI can render a
// snapshot without holding locks.
package model
