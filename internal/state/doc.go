// Package state holds roster's view state and the transitions that change it.
//
// # Overview
//
// Snapshot is the whole picture the UI renders: the records of the current
// page, paging and loading flags, the search and sort controls, the view mode,
// the in-flight action and the notification history. Every change goes
// through Reduce, a pure function from (Snapshot, Action) to the next
// Snapshot. Store wraps Reduce behind a mutex so the Bubble Tea loop and
// background commands can share it.
//
//	UI key press ──→ store.Dispatch(RequestPage{...}) ──→ loader command
//	                                                          │
//	store.Dispatch(PageLoaded{Seq: n}) ←──────────────────────┘
//
// # Page requests
//
// RequestPage clamps the target into [1, TotalPages] and bumps Seq. PageLoaded
// and PageFailed carry the Seq they answer; anything but the latest is
// dropped, so the most recently requested page always wins regardless of
// response order. A failure clears the records and sets PageError.
//
// # Actions
//
// At most one action may be in flight across the whole directory.
// BeginAction is rejected while another is pending or when the record is not
// held. FinishAction clears the pending slot, removes the record on a
// successful delete and appends a notice. Failures set ActionError, which the
// UI shows as a dismissible banner distinct from PageError.
//
// # Derived values
//
// Visible, TotalPages, HasPrev, HasNext, ActionsDisabled, IsPending and
// LatestNotice are computed from the snapshot on demand and never stored.
package state
