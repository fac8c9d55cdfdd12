package state

import (
	"time"

	"golang.org/x/text/language"

	"github.com/five82/roster/internal/directory"
)

// MaxNotices bounds the notification history.
const MaxNotices = 50

// ViewMode selects how the visible records are laid out.
type ViewMode int

const (
	TableView ViewMode = iota
	GridView
)

func (v ViewMode) String() string {
	if v == GridView {
		return "grid"
	}
	return "table"
}

// ActionKind is one of the simulated record mutations.
type ActionKind int

const (
	ActionEdit ActionKind = iota
	ActionFlag
	ActionDelete
)

// ActionKinds lists the kinds in menu order.
var ActionKinds = []ActionKind{ActionEdit, ActionFlag, ActionDelete}

func (k ActionKind) String() string {
	switch k {
	case ActionFlag:
		return "flag"
	case ActionDelete:
		return "delete"
	default:
		return "edit"
	}
}

// Title is the menu label.
func (k ActionKind) Title() string {
	switch k {
	case ActionFlag:
		return "Flag"
	case ActionDelete:
		return "Delete"
	default:
		return "Edit"
	}
}

func (k ActionKind) pastTense() string {
	switch k {
	case ActionFlag:
		return "Flagged"
	case ActionDelete:
		return "Deleted"
	default:
		return "Edited"
	}
}

// Pending is the in-flight action. A zero value means none.
type Pending struct {
	Kind ActionKind
	ID   string
}

// Active reports whether an action is in flight.
func (p Pending) Active() bool {
	return p.ID != ""
}

// Level classifies a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is one toast message.
type Notice struct {
	Level   Level
	Message string
	At      time.Time
}

// Snapshot is the complete view state. Values returned by Store are copies.
type Snapshot struct {
	Employees []directory.Employee // records of the current page, fetch order
	Page      int                  // 0 until the first request
	PageSize  int
	Total     int
	Loading   bool
	Seq       uint64 // id of the latest page request

	Search string
	Key    directory.SortKey
	Order  directory.SortOrder
	Locale language.Tag
	View   ViewMode

	Pending     Pending
	PageError   error
	ActionError error
	Notices     []Notice
	LastUpdated time.Time
}

// New returns the initial snapshot for a directory with the given display page
// size and assumed total.
func New(pageSize, total int, locale language.Tag) Snapshot {
	if pageSize <= 0 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	return Snapshot{
		PageSize: pageSize,
		Total:    total,
		Key:      directory.SortByName,
		Order:    directory.Ascending,
		Locale:   locale,
	}
}

// Query returns the pipeline query for the current controls.
func (s Snapshot) Query() directory.Query {
	return directory.Query{Search: s.Search, Key: s.Key, Order: s.Order, Locale: s.Locale}
}

// Visible runs the sort and filter pipeline over the held records.
func (s Snapshot) Visible() []directory.Employee {
	return directory.Apply(s.Employees, s.Query())
}

// TotalPages is ceil(Total/PageSize), never less than one.
func (s Snapshot) TotalPages() int {
	size := s.PageSize
	if size <= 0 {
		size = 1
	}
	pages := (s.Total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// HasPrev reports whether a previous page exists.
func (s Snapshot) HasPrev() bool {
	return s.Page > 1
}

// HasNext reports whether a next page exists.
func (s Snapshot) HasNext() bool {
	return s.Page < s.TotalPages()
}

// ActionsDisabled is true while any action is in flight.
func (s Snapshot) ActionsDisabled() bool {
	return s.Pending.Active()
}

// ActionsBlocked is true while an action is in flight or a page is loading.
// Records held during a load belong to the previous page and are not shown.
func (s Snapshot) ActionsBlocked() bool {
	return s.ActionsDisabled() || s.Loading
}

// IsPending reports whether the given record has the given action in flight.
func (s Snapshot) IsPending(id string, kind ActionKind) bool {
	return s.Pending.Active() && s.Pending.ID == id && s.Pending.Kind == kind
}

// Employee looks up a held record by id.
func (s Snapshot) Employee(id string) (directory.Employee, bool) {
	idx := directory.IndexByID(s.Employees, id)
	if idx < 0 {
		return directory.Employee{}, false
	}
	return s.Employees[idx], true
}

// LatestNotice returns the newest notice if it is younger than ttl.
func (s Snapshot) LatestNotice(now time.Time, ttl time.Duration) (Notice, bool) {
	if len(s.Notices) == 0 {
		return Notice{}, false
	}
	n := s.Notices[len(s.Notices)-1]
	if now.Sub(n.At) >= ttl {
		return Notice{}, false
	}
	return n, true
}

func (s Snapshot) clone() Snapshot {
	dup := s
	dup.Employees = directory.Clone(s.Employees)
	if len(s.Notices) > 0 {
		dup.Notices = make([]Notice, len(s.Notices))
		copy(dup.Notices, s.Notices)
	}
	return dup
}
