package state

import (
	"fmt"
	"time"

	"github.com/five82/roster/internal/directory"
)

// Action is a typed state transition. Only the types in this file implement it.
type Action interface {
	action()
}

// RequestPage asks for a page. Force reloads the current page.
type RequestPage struct {
	Page  int
	Force bool
}

// PageLoaded delivers a fetched page for request Seq.
type PageLoaded struct {
	Seq       uint64
	Page      int
	Employees []directory.Employee
	Total     int
	At        time.Time
}

// PageFailed reports a failed fetch for request Seq.
type PageFailed struct {
	Seq uint64
	Err error
	At  time.Time
}

// SetSearch replaces the search term.
type SetSearch struct {
	Term string
}

// ToggleSort flips the order on the active key or selects a new key ascending.
type ToggleSort struct {
	Key directory.SortKey
}

// SetSort selects key and order outright.
type SetSort struct {
	Key   directory.SortKey
	Order directory.SortOrder
}

// ToggleView switches between table and grid.
type ToggleView struct{}

// SetView selects a view mode.
type SetView struct {
	Mode ViewMode
}

// BeginAction marks an action on record ID as in flight. It is rejected
// while another action is pending or a page is loading.
type BeginAction struct {
	Kind ActionKind
	ID   string
}

// FinishAction completes the in-flight action. A nil Err is success.
type FinishAction struct {
	Kind ActionKind
	ID   string
	Name string
	Err  error
	At   time.Time
}

// DismissActionError hides the action error banner.
type DismissActionError struct{}

func (RequestPage) action()        {}
func (PageLoaded) action()         {}
func (PageFailed) action()         {}
func (SetSearch) action()          {}
func (ToggleSort) action()         {}
func (SetSort) action()            {}
func (ToggleView) action()         {}
func (SetView) action()            {}
func (BeginAction) action()        {}
func (FinishAction) action()       {}
func (DismissActionError) action() {}

// Reduce applies a to s and reports whether anything changed. It never
// mutates s; a rejected or stale action returns s unchanged and false.
func Reduce(s Snapshot, a Action) (Snapshot, bool) {
	switch a := a.(type) {
	case RequestPage:
		return requestPage(s, a)

	case PageLoaded:
		if a.Seq != s.Seq || !s.Loading {
			return s, false
		}
		next := s.clone()
		next.Employees = directory.Clone(a.Employees)
		if a.Page > 0 {
			next.Page = a.Page
		}
		if a.Total > 0 {
			next.Total = a.Total
		}
		next.Loading = false
		next.PageError = nil
		next.LastUpdated = a.At
		return next, true

	case PageFailed:
		if a.Seq != s.Seq || !s.Loading {
			return s, false
		}
		next := s.clone()
		next.Employees = nil
		next.Loading = false
		next.PageError = a.Err
		if next.PageError == nil {
			next.PageError = fmt.Errorf("fetch page %d failed", s.Page)
		}
		next.LastUpdated = a.At
		return next, true

	case SetSearch:
		if a.Term == s.Search {
			return s, false
		}
		next := s.clone()
		next.Search = a.Term
		return next, true

	case ToggleSort:
		next := s.clone()
		if s.Key == a.Key {
			next.Order = s.Order.Flip()
		} else {
			next.Key = a.Key
			next.Order = directory.Ascending
		}
		return next, true

	case SetSort:
		if s.Key == a.Key && s.Order == a.Order {
			return s, false
		}
		next := s.clone()
		next.Key = a.Key
		next.Order = a.Order
		return next, true

	case ToggleView:
		next := s.clone()
		if s.View == GridView {
			next.View = TableView
		} else {
			next.View = GridView
		}
		return next, true

	case SetView:
		if s.View == a.Mode {
			return s, false
		}
		next := s.clone()
		next.View = a.Mode
		return next, true

	case BeginAction:
		if s.ActionsBlocked() || a.ID == "" {
			return s, false
		}
		if directory.IndexByID(s.Employees, a.ID) < 0 {
			return s, false
		}
		next := s.clone()
		next.Pending = Pending{Kind: a.Kind, ID: a.ID}
		next.ActionError = nil
		return next, true

	case FinishAction:
		return finishAction(s, a)

	case DismissActionError:
		if s.ActionError == nil {
			return s, false
		}
		next := s.clone()
		next.ActionError = nil
		return next, true
	}
	return s, false
}

func requestPage(s Snapshot, a RequestPage) (Snapshot, bool) {
	target := clampPage(a.Page, s.TotalPages())
	first := s.Seq == 0
	if !first && !a.Force && target == s.Page {
		return s, false
	}
	next := s.clone()
	next.Page = target
	next.Seq = s.Seq + 1
	next.Loading = true
	next.PageError = nil
	return next, true
}

func finishAction(s Snapshot, a FinishAction) (Snapshot, bool) {
	if !s.IsPending(a.ID, a.Kind) {
		return s, false
	}
	next := s.clone()
	next.Pending = Pending{}

	if a.Err != nil {
		msg := fmt.Sprintf("Failed to %s employee", a.Kind)
		next.ActionError = fmt.Errorf("%s: %w", msg, a.Err)
		next.Notices = appendNotice(next.Notices, Notice{Level: LevelError, Message: msg, At: a.At})
		return next, true
	}

	if a.Kind == ActionDelete {
		// The page may have changed while the action ran.
		if directory.IndexByID(next.Employees, a.ID) < 0 {
			msg := fmt.Sprintf("Employee no longer on this page: %s", a.Name)
			next.Notices = appendNotice(next.Notices, Notice{Level: LevelInfo, Message: msg, At: a.At})
			return next, true
		}
		next.Employees = directory.Without(next.Employees, a.ID)
	}
	msg := fmt.Sprintf("%s employee: %s", a.Kind.pastTense(), a.Name)
	next.Notices = appendNotice(next.Notices, Notice{Level: LevelSuccess, Message: msg, At: a.At})
	return next, true
}

func appendNotice(history []Notice, n Notice) []Notice {
	history = append(history, n)
	if over := len(history) - MaxNotices; over > 0 {
		history = append(history[:0:0], history[over:]...)
	}
	return history
}

func clampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
