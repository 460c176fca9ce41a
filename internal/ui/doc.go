// Package ui contains the Fyne-based window of the application. It renders the
// upload and download sections, forwards user input to the transfer service
// and re-renders from the state snapshots the service publishes. All UI
// strings are localized via Localization.
package ui
