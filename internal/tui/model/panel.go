package model

import (
	"context"
	"encoding/json"
	"strings"

	"coursectl/internal/api"
	"coursectl/internal/tui/design"
	"coursectl/pkg/logging"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const numericCharLimit = 9

// Store is the backend surface a panel needs. *api.Endpoint satisfies it.
type Store[T api.Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload interface{}) (T, error)
	Get(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
}

// Field describes one create-form input.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Default     string
	// Numeric inputs drop every non-digit rune and hold at most
	// numericCharLimit digits, so the value always fits an int.
	Numeric bool
}

// Draft holds the current form values keyed by Field.Key.
type Draft map[string]string

// Column describes one table column. A zero Width shares the space left
// over by the fixed columns.
type Column[T any] struct {
	Title string
	Width int
	Value func(T) string
}

// Resource describes how a Panel presents and creates one record type.
type Resource[T api.Record] struct {
	Name        string
	Title       string
	Singular    string
	Subsystem   string
	Fields      []Field
	Required    string
	Columns     []Column[T]
	Payload     func(Draft) (interface{}, error)
	Label       func(T) string
	EmptyText   string
	Lookup      bool
	LookupLabel string
	LookupHint  string
}

// ResourcePanel is the type-erased view of a mounted Panel used by the
// shell, the controller and the view.
type ResourcePanel interface {
	Title() string
	Singular() string
	Epoch() int

	Load() tea.Cmd
	Create() tea.Cmd
	Remove(id string) tea.Cmd
	Lookup() tea.Cmd
	ClearLookup()
	Apply(msg PanelMsg) string

	Loading() bool
	CanCreate() bool
	CanRefresh() bool
	CanRemove() bool
	CanLookup() bool
	SupportsLookup() bool

	FocusNext() tea.Cmd
	FocusPrev() tea.Cmd
	FocusForm() tea.Cmd
	FocusLookup() tea.Cmd
	FocusTable()
	InputFocused() bool
	LookupFocused() bool
	TableFocused() bool
	FieldFocused(i int) bool
	UpdateFocused(msg tea.Msg) tea.Cmd

	SetSize(width, height int)
	Fields() []Field
	Draft() Draft
	SetDraft(key, value string)
	SetLookupDraft(id string)
	InputView(i int) string
	LookupInputView() string
	LookupLabel() string
	LookupHint() string
	LookupJSON() (string, bool)
	TableView() string
	Len() int
	EmptyText() string
	SelectedID() string
	SelectedLabel() string
}

// Panel is one mounted instance of a resource tab.
type Panel[T api.Record] struct {
	res   Resource[T]
	store Store[T]

	Items        []T
	Inputs       []textinput.Model
	LookupInput  textinput.Model
	LookupResult *T
	Table        table.Model

	focus    int
	inFlight int
	epoch    int
	report   func(string)
	width    int
	height   int
}

// NewPanel builds a panel for res backed by store. report receives the
// display text of every failure.
func NewPanel[T api.Record](res Resource[T], store Store[T], epoch int, report func(string)) *Panel[T] {
	p := &Panel[T]{
		res:    res,
		store:  store,
		Items:  []T{},
		epoch:  epoch,
		report: report,
	}

	for _, f := range res.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 256
		if f.Numeric {
			ti.CharLimit = numericCharLimit
		}
		ti.Width = 40
		ti.SetValue(f.Default)
		p.Inputs = append(p.Inputs, ti)
	}

	if res.Lookup {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "paste GUID"
		ti.CharLimit = 128
		ti.Width = 40
		p.LookupInput = ti
	}

	p.Table = table.New(
		table.WithColumns(p.columns(80)),
		table.WithHeight(5),
	)
	p.Table.SetStyles(design.TableStyles(false))
	p.setFocus(p.tableIndex())
	return p
}

func (p *Panel[T]) Title() string { return p.res.Title }
func (p *Panel[T]) Singular() string { return p.res.Singular }
func (p *Panel[T]) Epoch() int { return p.epoch }

// Load fetches the whole collection and replaces Items on success.
func (p *Panel[T]) Load() tea.Cmd {
	p.inFlight++
	if p.res.Lookup {
		p.LookupResult = nil
	}
	logging.Info(p.res.Subsystem, "Loading %s", p.res.Name)

	store, epoch := p.store, p.epoch
	return func() tea.Msg {
		items, err := store.List(context.Background())
		return LoadedMsg[T]{MountEpoch: epoch, Items: items, Err: err}
	}
}

// Create submits the drafts. It does nothing unless CanCreate.
func (p *Panel[T]) Create() tea.Cmd {
	if !p.CanCreate() {
		return nil
	}
	payload, err := p.res.Payload(p.Draft())
	if err != nil {
		p.fail("create", err)
		return nil
	}
	p.inFlight++
	logging.Info(p.res.Subsystem, "Creating %s", p.res.Singular)

	store, epoch := p.store, p.epoch
	return func() tea.Msg {
		item, err := store.Create(context.Background(), payload)
		return CreatedMsg[T]{MountEpoch: epoch, Item: item, Err: err}
	}
}

// Remove deletes the record with id.
func (p *Panel[T]) Remove(id string) tea.Cmd {
	p.inFlight++
	logging.Info(p.res.Subsystem, "Deleting %s %s", p.res.Singular, id)

	store, epoch := p.store, p.epoch
	return func() tea.Msg {
		err := store.Delete(context.Background(), id)
		return RemovedMsg[T]{MountEpoch: epoch, ID: id, Err: err}
	}
}

// Lookup fetches the record named by the lookup draft into LookupResult.
func (p *Panel[T]) Lookup() tea.Cmd {
	if !p.CanLookup() {
		return nil
	}
	id := strings.TrimSpace(p.LookupInput.Value())
	p.inFlight++
	p.LookupResult = nil
	p.layout()
	logging.Info(p.res.Subsystem, "Looking up %s %s", p.res.Singular, id)

	store, epoch := p.store, p.epoch
	return func() tea.Msg {
		item, err := store.Get(context.Background(), id)
		return LookedUpMsg[T]{MountEpoch: epoch, ID: id, Item: item, Err: err}
	}
}

// ClearLookup empties the lookup slot. It never issues a request.
func (p *Panel[T]) ClearLookup() {
	p.LookupResult = nil
	p.layout()
}

// Apply folds a completion into the panel and returns a short success
// summary, or "" when the cycle failed or the message is not ours.
func (p *Panel[T]) Apply(msg PanelMsg) string {
	switch msg := msg.(type) {
	case LoadedMsg[T]:
		p.done()
		if msg.Err != nil {
			p.fail("load", msg.Err)
			return ""
		}
		p.Items = msg.Items
		if p.Items == nil {
			p.Items = []T{}
		}
		p.syncTable()
		logging.Info(p.res.Subsystem, "Loaded %d %s", len(p.Items), p.res.Name)
		return ""

	case CreatedMsg[T]:
		p.done()
		if msg.Err != nil {
			p.fail("create", msg.Err)
			return ""
		}
		p.Items = append([]T{msg.Item}, p.Items...)
		p.resetDrafts()
		p.syncTable()
		p.Table.SetCursor(0)
		logging.Info(p.res.Subsystem, "Created %s %s", p.res.Singular, msg.Item.RecordID())
		return "Created " + p.res.Singular + " " + p.label(msg.Item)

	case RemovedMsg[T]:
		p.done()
		if msg.Err != nil {
			p.fail("delete", msg.Err)
			return ""
		}
		kept := p.Items[:0:0]
		for _, item := range p.Items {
			if item.RecordID() != msg.ID {
				kept = append(kept, item)
			}
		}
		p.Items = kept
		p.syncTable()
		logging.Info(p.res.Subsystem, "Deleted %s %s", p.res.Singular, msg.ID)
		return "Deleted " + p.res.Singular + " " + msg.ID

	case LookedUpMsg[T]:
		p.done()
		if msg.Err != nil {
			p.fail("lookup", msg.Err)
			return ""
		}
		item := msg.Item
		p.LookupResult = &item
		p.layout()
		logging.Info(p.res.Subsystem, "Found %s %s", p.res.Singular, msg.ID)
		return ""
	}
	return ""
}

func (p *Panel[T]) done() {
	if p.inFlight > 0 {
		p.inFlight--
	}
}

func (p *Panel[T]) fail(op string, err error) {
	logging.Error(p.res.Subsystem, err, "Failed to %s %s", op, p.res.Singular)
	if p.report != nil {
		p.report(err.Error())
	}
}

func (p *Panel[T]) label(item T) string {
	if p.res.Label != nil {
		if l := p.res.Label(item); l != "" {
			return l
		}
	}
	return item.RecordID()
}

// Loading reports whether any request of this panel is in flight.
func (p *Panel[T]) Loading() bool { return p.inFlight > 0 }

// CanCreate is true when the required field is non-blank and nothing is in flight.
func (p *Panel[T]) CanCreate() bool {
	if p.Loading() {
		return false
	}
	return strings.TrimSpace(p.Draft()[p.res.Required]) != ""
}

// CanRefresh is true when nothing is in flight.
func (p *Panel[T]) CanRefresh() bool { return !p.Loading() }

// CanRemove is true when nothing is in flight.
func (p *Panel[T]) CanRemove() bool { return !p.Loading() }

// CanLookup is true for panels with a lookup whose id draft is non-blank
// while nothing is in flight.
func (p *Panel[T]) CanLookup() bool {
	if !p.res.Lookup || p.Loading() {
		return false
	}
	return strings.TrimSpace(p.LookupInput.Value()) != ""
}

// SupportsLookup reports whether the resource offers find-by-id.
func (p *Panel[T]) SupportsLookup() bool { return p.res.Lookup }

// Focus order: form fields, then the lookup input, then the table.

func (p *Panel[T]) lookupIndex() int {
	if !p.res.Lookup {
		return -1
	}
	return len(p.Inputs)
}

func (p *Panel[T]) tableIndex() int {
	if p.res.Lookup {
		return len(p.Inputs) + 1
	}
	return len(p.Inputs)
}

func (p *Panel[T]) setFocus(i int) tea.Cmd {
	n := p.tableIndex() + 1
	p.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range p.Inputs {
		if j == p.focus {
			cmd = p.Inputs[j].Focus()
		} else {
			p.Inputs[j].Blur()
		}
	}
	if p.res.Lookup {
		if p.focus == p.lookupIndex() {
			cmd = p.LookupInput.Focus()
		} else {
			p.LookupInput.Blur()
		}
	}
	if p.focus == p.tableIndex() {
		p.Table.Focus()
	} else {
		p.Table.Blur()
	}
	p.Table.SetStyles(design.TableStyles(p.Table.Focused()))
	return cmd
}

func (p *Panel[T]) FocusNext() tea.Cmd { return p.setFocus(p.focus + 1) }
func (p *Panel[T]) FocusPrev() tea.Cmd { return p.setFocus(p.focus - 1) }
func (p *Panel[T]) FocusForm() tea.Cmd { return p.setFocus(0) }
func (p *Panel[T]) FocusTable() { p.setFocus(p.tableIndex()) }
func (p *Panel[T]) TableFocused() bool { return p.focus == p.tableIndex() }
func (p *Panel[T]) LookupFocused() bool { return p.res.Lookup && p.focus == p.lookupIndex() }
func (p *Panel[T]) FieldFocused(i int) bool { return i == p.focus && i < len(p.Inputs) }

func (p *Panel[T]) FocusLookup() tea.Cmd {
	if !p.res.Lookup {
		return nil
	}
	return p.setFocus(p.lookupIndex())
}

func (p *Panel[T]) InputFocused() bool { return !p.TableFocused() }

// UpdateFocused forwards msg to whichever control has focus.
func (p *Panel[T]) UpdateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case p.TableFocused():
		p.Table, cmd = p.Table.Update(msg)
	case p.LookupFocused():
		p.LookupInput, cmd = p.LookupInput.Update(msg)
	default:
		if p.res.Fields[p.focus].Numeric {
			var ok bool
			if msg, ok = digitsOnly(msg); !ok {
				return nil
			}
		}
		p.Inputs[p.focus], cmd = p.Inputs[p.focus].Update(msg)
	}
	return cmd
}

// digitsOnly strips non-digit runes from typed or pasted text. It reports
// false when nothing is left to insert.
func digitsOnly(msg tea.Msg) (tea.Msg, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || (k.Type != tea.KeyRunes && k.Type != tea.KeySpace) {
		return msg, true
	}
	var digits []rune
	for _, r := range k.Runes {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return nil, false
	}
	k.Type = tea.KeyRunes
	k.Runes = digits
	return k, true
}

func (p *Panel[T]) Fields() []Field { return p.res.Fields }

// Draft returns the current form values keyed by field.
func (p *Panel[T]) Draft() Draft {
	d := make(Draft, len(p.Inputs))
	for i, f := range p.res.Fields {
		d[f.Key] = p.Inputs[i].Value()
	}
	return d
}

// SetDraft overwrites one form value. Numeric fields keep only digits.
func (p *Panel[T]) SetDraft(key, value string) {
	for i, f := range p.res.Fields {
		if f.Key != key {
			continue
		}
		if f.Numeric {
			value = strings.Map(func(r rune) rune {
				if r >= '0' && r <= '9' {
					return r
				}
				return -1
			}, value)
		}
		p.Inputs[i].SetValue(value)
		return
	}
}

// SetLookupDraft overwrites the lookup id. Panels without a lookup ignore it.
func (p *Panel[T]) SetLookupDraft(id string) {
	if p.res.Lookup {
		p.LookupInput.SetValue(id)
	}
}

func (p *Panel[T]) resetDrafts() {
	for i, f := range p.res.Fields {
		p.Inputs[i].SetValue(f.Default)
	}
}

func (p *Panel[T]) InputView(i int) string { return p.Inputs[i].View() }
func (p *Panel[T]) LookupInputView() string { return p.LookupInput.View() }
func (p *Panel[T]) LookupLabel() string { return p.res.LookupLabel }
func (p *Panel[T]) LookupHint() string { return p.res.LookupHint }

// LookupJSON renders the lookup result as indented JSON.
func (p *Panel[T]) LookupJSON() (string, bool) {
	if p.LookupResult == nil {
		return "", false
	}
	data, err := json.MarshalIndent(p.LookupResult, "", "  ")
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (p *Panel[T]) TableView() string { return p.Table.View() }
func (p *Panel[T]) Len() int { return len(p.Items) }
func (p *Panel[T]) EmptyText() string { return p.res.EmptyText }

func (p *Panel[T]) selected() (T, bool) {
	i := p.Table.Cursor()
	if i < 0 || i >= len(p.Items) {
		var zero T
		return zero, false
	}
	return p.Items[i], true
}

// SelectedID returns the id of the highlighted row, or "".
func (p *Panel[T]) SelectedID() string {
	if item, ok := p.selected(); ok {
		return item.RecordID()
	}
	return ""
}

// SelectedLabel is the display label of the highlighted row, or "".
func (p *Panel[T]) SelectedLabel() string {
	if item, ok := p.selected(); ok {
		return p.label(item)
	}
	return ""
}

func (p *Panel[T]) syncTable() {
	rows := make([]table.Row, 0, len(p.Items))
	for _, item := range p.Items {
		row := make(table.Row, len(p.res.Columns))
		for i, c := range p.res.Columns {
			row[i] = c.Value(item)
		}
		rows = append(rows, row)
	}
	p.Table.SetRows(rows)
	if n := len(rows); n > 0 && p.Table.Cursor() >= n {
		p.Table.SetCursor(n - 1)
	}
	if p.Table.Cursor() < 0 && len(rows) > 0 {
		p.Table.SetCursor(0)
	}
}

// SetSize records the space available to the panel body and lays out
// the table within it.
func (p *Panel[T]) SetSize(width, height int) {
	p.width, p.height = width, height
	p.layout()
}

// Section heights as rendered by the view.
const (
	sectionChrome   = 3 // border and title
	formExtraLines  = 2 // blank line and buttons
	lookupBaseLines = 4 // input, blank, buttons, blank
	listChrome      = 4 // border, title and the loading line
	minTableHeight  = 3
)

func (p *Panel[T]) layout() {
	if p.width <= 0 {
		return
	}
	inner := p.width - 4
	if inner < 20 {
		inner = 20
	}
	p.Table.SetColumns(p.columns(inner))
	p.Table.SetWidth(inner)

	used := sectionChrome + len(p.Inputs) + formExtraLines
	if p.res.Lookup {
		used += sectionChrome + lookupBaseLines
		if s, ok := p.LookupJSON(); ok {
			used += strings.Count(s, "\n") + 1
		} else {
			used++
		}
	}
	used += listChrome

	h := p.height - used
	if h < minTableHeight {
		h = minTableHeight
	}
	p.Table.SetHeight(h)
}

func (p *Panel[T]) columns(width int) []table.Column {
	fixed, flex := 0, 0
	for _, c := range p.res.Columns {
		if c.Width > 0 {
			fixed += c.Width
		} else {
			flex++
		}
	}
	// Each cell carries one space of padding on both sides.
	remaining := width - fixed - 2*len(p.res.Columns)
	flexWidth := 10
	if flex > 0 && remaining/flex > flexWidth {
		flexWidth = remaining / flex
	}

	cols := make([]table.Column, len(p.res.Columns))
	for i, c := range p.res.Columns {
		w := c.Width
		if w == 0 {
			w = flexWidth
		}
		cols[i] = table.Column{Title: c.Title, Width: w}
	}
	return cols
}
