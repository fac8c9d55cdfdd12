package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/randomuser"
	"github.com/five82/roster/internal/state"
)

var (
	fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	bobZed      = directory.Employee{ID: "a", First: "Bob", Last: "Zed", Email: "bob@example.com", City: "Oslo", Country: "Norway", Age: 40}
	amyAardvark = directory.Employee{ID: "b", First: "Amy", Last: "Aardvark", Email: "amy@example.com", City: "Lyon", Country: "France", Age: 30}
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Store == nil {
		opts.Store = state.NewStore(state.New(10, 1000, language.Und), zap.NewNop())
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return next.(Model)
}

// loadPage requests page and answers it with records, as the loader would.
func loadPage(t *testing.T, m Model, page int, records ...directory.Employee) Model {
	t.Helper()
	next, _ := m.Update(requestMsg{page: page, force: true})
	m = next.(Model)
	snap := m.store.Snapshot()
	if !snap.Loading {
		t.Fatalf("page %d request was not accepted", page)
	}
	next, _ = m.Update(pageMsg{action: state.PageLoaded{
		Seq: snap.Seq, Page: snap.Page, Employees: records, Total: 1000, At: fixedNow,
	}})
	return next.(Model)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key in turn and returns the resulting model along with
// the last command.
func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyPress(k))
		m = next.(Model)
	}
	return m, cmd
}

func visibleIDs(m Model) []string {
	out := make([]string, 0, len(m.visible))
	for _, e := range m.visible {
		out = append(out, e.ID)
	}
	return out
}

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestModel_SortKeysToggleDirection(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	if diff := cmp.Diff([]string{"b", "a"}, visibleIDs(m)); diff != "" {
		t.Fatalf("initial order mismatch (-want +got):\n%s", diff)
	}
	if got := headerTitles(tableColumns(m.width), m.snapshot)[0]; got != "Name ▲" {
		t.Fatalf("name header = %q, want %q", got, "Name ▲")
	}

	m, _ = press(m, "1")
	if diff := cmp.Diff([]string{"a", "b"}, visibleIDs(m)); diff != "" {
		t.Fatalf("descending order mismatch (-want +got):\n%s", diff)
	}
	if got := headerTitles(tableColumns(m.width), m.snapshot)[0]; got != "Name ▼" {
		t.Fatalf("name header = %q, want %q", got, "Name ▼")
	}

	m, _ = press(m, "3")
	if m.snapshot.Key != directory.SortByAge || m.snapshot.Order != directory.Ascending {
		t.Fatalf("sort = %v %v, want age ascending", m.snapshot.Key, m.snapshot.Order)
	}
	if diff := cmp.Diff([]string{"b", "a"}, visibleIDs(m)); diff != "" {
		t.Fatalf("age order mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_SortKeysIgnoredInGrid(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)
	seq := m.snapshot.Seq

	m, _ = press(m, "v")
	if m.snapshot.View != state.GridView {
		t.Fatalf("view = %v, want grid", m.snapshot.View)
	}
	if m.snapshot.Seq != seq || m.snapshot.Loading {
		t.Fatalf("toggling the view started a fetch")
	}

	m, _ = press(m, "2")
	if m.snapshot.Key != directory.SortByName {
		t.Fatalf("sort key changed in grid view: %v", m.snapshot.Key)
	}
	if !strings.Contains(plainView(m), "Age 30") {
		t.Fatalf("grid view does not render cards:\n%s", plainView(m))
	}
}

func TestModel_ActionTriggersDisabledWhilePending(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	m, cmd := press(m, "D")
	if cmd == nil {
		t.Fatalf("first delete returned no command")
	}
	pending := m.snapshot.Pending
	if pending.ID != "b" || pending.Kind != state.ActionDelete {
		t.Fatalf("pending = %+v, want delete of b", pending)
	}
	if m.keys.Delete.Enabled() || m.keys.Menu.Enabled() {
		t.Fatalf("action bindings still enabled while pending")
	}

	m, cmd = press(m, "j", "D")
	if cmd != nil {
		t.Fatalf("second delete returned a command")
	}
	if m.snapshot.Pending != pending {
		t.Fatalf("pending changed to %+v", m.snapshot.Pending)
	}

	m, _ = press(m, "a")
	if m.overlay != overlayNone {
		t.Fatalf("actions menu opened while an action is pending")
	}
	if !strings.Contains(plainView(m), "Deleting...") {
		t.Fatalf("header does not show the pending action")
	}
}

func TestModel_ActionTriggersDisabledWhileLoading(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	m, _ = press(m, "]")
	if !m.snapshot.Loading {
		t.Fatalf("next page not loading")
	}
	view := plainView(m)
	if strings.Contains(view, "Amy") {
		t.Fatalf("previous page visible behind the spinner:\n%s", view)
	}
	if !strings.Contains(view, "- of - shown") {
		t.Fatalf("header still counts the previous page:\n%s", view)
	}
	if m.keys.Delete.Enabled() || m.keys.Menu.Enabled() {
		t.Fatalf("action bindings enabled while loading")
	}

	m, cmd := press(m, "D")
	if cmd != nil || m.snapshot.Pending.Active() {
		t.Fatalf("delete accepted on a hidden record: pending=%+v", m.snapshot.Pending)
	}
	m, _ = press(m, "enter")
	if m.overlay != overlayNone {
		t.Fatalf("detail opened for a hidden record")
	}

	carol := directory.Employee{ID: "c", First: "Carol", Last: "Ng", Email: "carol@example.com", Age: 51}
	next, _ := m.Update(pageMsg{action: state.PageLoaded{
		Seq: m.snapshot.Seq, Page: 2, Employees: []directory.Employee{carol}, Total: 1000, At: fixedNow,
	}})
	m = next.(Model)
	if !m.keys.Delete.Enabled() {
		t.Fatalf("action bindings still disabled after the page landed")
	}
	if !strings.Contains(plainView(m), "1 of 1 shown") {
		t.Fatalf("header does not count the new page:\n%s", plainView(m))
	}

	m, _ = press(m, "D")
	if !m.snapshot.IsPending("c", state.ActionDelete) {
		t.Fatalf("pending = %+v, want delete of c", m.snapshot.Pending)
	}
}

func TestModel_DeleteRemovesRecordAndShowsToast(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	m, _ = press(m, "D")
	next, _ := m.Update(actionDoneMsg{result: state.FinishAction{
		Kind: state.ActionDelete, ID: "b", Name: amyAardvark.DisplayName(), At: fixedNow,
	}})
	m = next.(Model)

	if diff := cmp.Diff([]string{"a"}, visibleIDs(m)); diff != "" {
		t.Fatalf("visible after delete mismatch (-want +got):\n%s", diff)
	}
	if m.snapshot.Pending.Active() || !m.keys.Delete.Enabled() {
		t.Fatalf("actions still disabled after the result")
	}
	view := plainView(m)
	if got := strings.Count(view, "Deleted employee: Amy Aardvark"); got != 1 {
		t.Fatalf("toast count = %d, want 1:\n%s", got, view)
	}

	m.now = func() time.Time { return fixedNow.Add(DefaultNoticeTTL) }
	if strings.Contains(plainView(m), "Deleted employee") {
		t.Fatalf("toast still shown after it expired")
	}
}

func TestModel_ActionFailureShowsBanner(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	m, _ = press(m, "F")
	next, _ := m.Update(actionDoneMsg{result: state.FinishAction{
		Kind: state.ActionFlag, ID: "b", Name: amyAardvark.DisplayName(), Err: errors.New("boom"), At: fixedNow,
	}})
	m = next.(Model)

	view := plainView(m)
	if !strings.Contains(view, "Failed to flag employee") || !strings.Contains(view, "x to dismiss") {
		t.Fatalf("banner missing:\n%s", view)
	}
	if len(m.visible) != 2 {
		t.Fatalf("failed action changed the records: %v", visibleIDs(m))
	}

	m, _ = press(m, "x")
	if m.snapshot.ActionError != nil {
		t.Fatalf("x did not dismiss the banner")
	}
}

func TestModel_PageFailureRendersOnce(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	m, cmd := press(m, "]")
	if cmd == nil || !m.snapshot.Loading || m.snapshot.Page != 2 {
		t.Fatalf("next page not requested: page=%d loading=%v", m.snapshot.Page, m.snapshot.Loading)
	}
	next, _ := m.Update(pageMsg{action: state.PageFailed{
		Seq: m.snapshot.Seq,
		Err: &randomuser.StatusError{URL: "/api/", StatusCode: 500},
		At:  fixedNow,
	}})
	m = next.(Model)

	view := plainView(m)
	if got := strings.Count(view, "Failed to load employees"); got != 1 {
		t.Fatalf("error shown %d times, want 1:\n%s", got, view)
	}
	if !strings.Contains(view, "HTTP 500") {
		t.Fatalf("status code missing from error:\n%s", view)
	}
	for _, name := range []string{"Amy", "Bob"} {
		if strings.Contains(view, name) {
			t.Fatalf("stale record %q rendered alongside the error", name)
		}
	}

	m, cmd = press(m, "r")
	if cmd == nil || !m.snapshot.Loading || m.snapshot.PageError != nil {
		t.Fatalf("retry did not start a new request")
	}
}

func TestModel_PagingClampsAtBounds(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed)
	seq := m.snapshot.Seq

	m, cmd := press(m, "[")
	if cmd != nil || m.snapshot.Seq != seq || m.snapshot.Page != 1 {
		t.Fatalf("previous page on page 1 issued a request: page=%d seq=%d", m.snapshot.Page, m.snapshot.Seq)
	}

	m = loadPage(t, m, 100, bobZed)
	seq = m.snapshot.Seq
	m, cmd = press(m, "]")
	if cmd != nil || m.snapshot.Seq != seq || m.snapshot.Page != 100 {
		t.Fatalf("next page on the last page issued a request: page=%d seq=%d", m.snapshot.Page, m.snapshot.Seq)
	}
	if !strings.Contains(plainView(m), "Page 100 of 100") {
		t.Fatalf("footer does not show the last page:\n%s", plainView(m))
	}
}

func TestModel_StalePageIgnored(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed)

	m, _ = press(m, "]")
	stale := m.snapshot.Seq
	m, _ = press(m, "]")
	if m.snapshot.Page != 3 {
		t.Fatalf("page = %d, want 3", m.snapshot.Page)
	}

	next, _ := m.Update(pageMsg{action: state.PageLoaded{Seq: stale, Page: 2, Employees: []directory.Employee{amyAardvark}, Total: 1000}})
	m = next.(Model)
	if !m.snapshot.Loading || directory.IndexByID(m.snapshot.Employees, "b") >= 0 {
		t.Fatalf("superseded page was applied: loading=%v visible=%v", m.snapshot.Loading, visibleIDs(m))
	}
}

func TestModel_SearchFiltersLive(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	m, _ = press(m, "/", "a", "m", "y")
	if !m.searching || m.snapshot.Search != "amy" {
		t.Fatalf("search = %q (searching=%v), want amy", m.snapshot.Search, m.searching)
	}
	if diff := cmp.Diff([]string{"b"}, visibleIDs(m)); diff != "" {
		t.Fatalf("filtered mismatch (-want +got):\n%s", diff)
	}

	m, _ = press(m, "enter")
	if m.searching || m.snapshot.Search != "amy" {
		t.Fatalf("enter should keep the term and leave the box")
	}

	m, _ = press(m, "/", "x", "y", "z")
	if !strings.Contains(plainView(m), `No employees match "amyxyz"`) {
		t.Fatalf("empty result message missing:\n%s", plainView(m))
	}

	m, _ = press(m, "esc")
	if m.searching || m.snapshot.Search != "" || len(m.visible) != 2 {
		t.Fatalf("esc did not clear the search: %q %v", m.snapshot.Search, visibleIDs(m))
	}
}

func TestModel_DetailOverlay(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	m, _ = press(m, "enter")
	if m.overlay != overlayDetail || m.detailID != "b" {
		t.Fatalf("detail not opened for b: overlay=%v id=%q", m.overlay, m.detailID)
	}
	if !strings.Contains(plainView(m), "amy@example.com") {
		t.Fatalf("detail missing email:\n%s", plainView(m))
	}

	m, _ = press(m, "D")
	if !m.snapshot.IsPending("b", state.ActionDelete) {
		t.Fatalf("delete from detail did not start")
	}
	next, _ := m.Update(actionDoneMsg{result: state.FinishAction{
		Kind: state.ActionDelete, ID: "b", Name: amyAardvark.DisplayName(), At: fixedNow,
	}})
	m = next.(Model)
	if m.overlay != overlayNone {
		t.Fatalf("detail stayed open for a deleted record")
	}
}

func TestModel_ActionsMenu(t *testing.T) {
	m := loadPage(t, newTestModel(t, Options{}), 1, bobZed, amyAardvark)

	m, _ = press(m, "a")
	if m.overlay != overlayMenu {
		t.Fatalf("menu not opened")
	}
	m, cmd := press(m, "j", "enter")
	if cmd == nil || m.overlay != overlayNone {
		t.Fatalf("menu did not run the action")
	}
	if !m.snapshot.IsPending("b", state.ActionFlag) {
		t.Fatalf("pending = %+v, want flag of b", m.snapshot.Pending)
	}
}

func TestModel_OverlaysClose(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(m, "?")
	if m.overlay != overlayHelp || !strings.Contains(plainView(m), "Keyboard Shortcuts") {
		t.Fatalf("help not shown")
	}
	m, _ = press(m, "z")
	if m.overlay != overlayNone {
		t.Fatalf("help not closed by any key")
	}

	m, _ = press(m, "L")
	if m.overlay != overlayActivity || !strings.Contains(plainView(m), "No activity yet") {
		t.Fatalf("activity overlay not shown:\n%s", plainView(m))
	}
	m, _ = press(m, "esc")
	if m.overlay != overlayNone {
		t.Fatalf("activity overlay not closed")
	}
}

func TestModel_ThemeCycleSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, Options{PrefsPath: path})

	m, _ = press(m, "T")
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	m, _ = press(m, "v")

	got, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if got.Theme != "Kanagawa" || !got.GridView() {
		t.Fatalf("saved prefs = %+v", got)
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q before the first resize", got)
	}
}
