// Package app is roster's composition root.
//
// Run loads config.toml and prefs.toml, opens the zap log file, builds the
// randomuser client, the state store seeded from the stored preferences, the
// page Loader and the action simulator, and hands them to the Bubble Tea UI.
//
//	config ─┐
//	prefs  ─┼─→ state.Store ─→ ui.Run
//	client ─┴─→ Loader ───────↗
//
// Loader is the only path from the network into the store. It converts a
// fetch into state.PageLoaded or state.PageFailed tagged with the request
// sequence number, and the UI dispatches the result on its own loop.
package app
