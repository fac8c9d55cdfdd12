// Package ui provides the terminal dashboard for browsing the employee
// directory.
//
// The interface is a Bubble Tea program. Model keeps a cached copy of the
// state.Store snapshot and re-derives the visible records after every
// dispatch, so the screen only ever shows what the store accepted.
//
// # Event Flow
//
//  1. Init requests page 1 and starts the UI tick.
//  2. Key presses dispatch store actions synchronously inside Update and
//     return commands for the slow parts: page fetches and simulated actions.
//  3. Those commands answer with pageMsg or actionDoneMsg, which are
//     dispatched in turn. Answers for superseded page requests are dropped
//     by the store.
//  4. The tick re-renders so toasts expire, and refreshes the activity
//     overlay while it is open.
//
// # Screens
//
//   - Table: responsive columns, sortable by name, email or age
//   - Grid: employee cards
//   - Detail: every attribute of one record, with action shortcuts
//   - Actions menu: edit, flag or delete the selected record
//   - Activity: tail of the structured log file
//   - Help: all key bindings
//
// Action triggers are disabled while any action is in flight. The key
// bindings are switched off so they neither match nor render as active.
package ui
