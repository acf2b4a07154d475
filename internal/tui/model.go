// Package tui implements the interactive hex editor behind "jpglitch edit".
//
// The Model subscribes to a buffer.Buffer as a listener, so the view always
// shows the current snapshot and active offset however they changed. TUI state
// is only touched from the bubbletea event loop.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/buffer"
	"github.com/yaklabco/jpglitch/pkg/fsutil"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
	"github.com/yaklabco/jpglitch/pkg/navigate"
)

const (
	// chromeLines is the header, status line and help footer.
	chromeLines = 3

	// defaultRows is shown before the first window size message arrives.
	defaultRows = 16
)

// Options configures the editor.
type Options struct {
	// Path is where ctrl+s writes. Empty disables saving.
	Path string

	// Info describes the file as it was read, so saves can detect outside changes.
	Info *fsutil.FileInfo

	// Backups controls the backup made before the first save.
	Backups fsutil.BackupConfig

	// Jumpable lists the regions tab cycles through. Empty means navigate.DefaultJumpable.
	Jumpable []jpegmap.Region

	// Styles renders the grid. Nil means colored default styles.
	Styles *pretty.Styles
}

// savedMsg reports the outcome of a save started with ctrl+s.
type savedMsg struct {
	snapshot *buffer.Snapshot
	result   fsutil.SaveResult
	err      error
}

// Model is the bubbletea model for the editor.
type Model struct {
	ctx  context.Context //nolint:containedctx // Saves run as tea.Cmds outside Update.
	buf  *buffer.Buffer
	opts Options

	keys   keyMap
	help   help.Model
	styles *pretty.Styles
	dump   *pretty.HexDump

	snapshot *buffer.Snapshot
	saved    *buffer.Snapshot
	index    *navigate.Index
	jumpable []jpegmap.Region
	jumpIdx  int

	cursor     int
	lowNibble  bool
	insertMode bool

	// pendingInsert marks the byte under the cursor as inserted by the first
	// digit in insert mode.
	pendingInsert bool

	top    int
	height int

	status      string
	confirmQuit bool
	quitting    bool

	unsubscribe func()
}

// New creates an editor over buf and subscribes it to buffer changes.
// Call Close to unsubscribe.
func New(ctx context.Context, buf *buffer.Buffer, opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = pretty.NewStyles(true)
	}

	jumpable := opts.Jumpable
	if len(jumpable) == 0 {
		jumpable = navigate.DefaultJumpable()
	}

	model := &Model{
		ctx:      ctx,
		buf:      buf,
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   styles,
		dump:     pretty.NewHexDump(styles, 0),
		jumpable: jumpable,
	}

	model.SnapshotChanged(buf.Current())
	model.saved = model.snapshot
	model.ActiveOffsetChanged(buf.ActiveOffset())
	model.unsubscribe = buf.Subscribe(model)

	return model
}

// Close stops listening to the buffer.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// SnapshotChanged implements buffer.Listener. Any new snapshot, including one
// restored by undo or redo, abandons a half-typed byte.
func (m *Model) SnapshotChanged(snapshot *buffer.Snapshot) {
	m.snapshot = snapshot
	m.lowNibble = false
	m.pendingInsert = false

	var layout *jpegmap.Layout
	if snapshot != nil {
		layout = snapshot.Layout
	}
	m.index = navigate.NewIndex(layout, m.jumpable...)
}

// ActiveOffsetChanged implements buffer.Listener.
func (m *Model) ActiveOffsetChanged(offset int) {
	m.cursor = offset
	m.lowNibble = false
	m.scrollToCursor()
}

// Cursor returns the offset of the highlighted byte.
func (m *Model) Cursor() int {
	return m.cursor
}

// InsertMode reports whether hex digits insert new bytes.
func (m *Model) InsertMode() bool {
	return m.insertMode
}

// JumpRegion returns the region n and N jump between.
func (m *Model) JumpRegion() jpegmap.Region {
	return m.jumpable[m.jumpIdx]
}

// Dirty reports whether the current content differs from the last save.
func (m *Model) Dirty() bool {
	return m.snapshot != m.saved
}

// Status returns the message shown on the status line.
func (m *Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dump = pretty.NewHexDump(m.styles, pretty.BytesPerRow(msg.Width))
		m.scrollToCursor()
		return m, nil

	case savedMsg:
		m.handleSaved(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if !key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = false
	}
	m.status = ""

	bytesPerRow := m.dump.BytesPerRow()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.Dirty() && !m.confirmQuit {
			m.confirmQuit = true
			m.status = "unsaved changes; press q again to quit"
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keys.Right):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.Up):
		m.moveTo(m.cursor - bytesPerRow)
	case key.Matches(msg, m.keys.Down):
		m.moveTo(m.cursor + bytesPerRow)
	case key.Matches(msg, m.keys.PageUp):
		m.moveTo(m.cursor - bytesPerRow*m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveTo(m.cursor + bytesPerRow*m.visibleRows())
	case key.Matches(msg, m.keys.Home):
		m.moveTo(0)
	case key.Matches(msg, m.keys.End):
		m.moveTo(m.snapshot.Len() - 1)

	case key.Matches(msg, m.keys.Nibble):
		m.typeNibble(msg.String())

	case key.Matches(msg, m.keys.Insert):
		m.insertMode = !m.insertMode
		m.lowNibble = false
		m.pendingInsert = false

	case key.Matches(msg, m.keys.Delete):
		if !m.buf.Delete(m.cursor, 1) {
			m.status = "nothing to delete"
		}

	case key.Matches(msg, m.keys.Undo):
		if !m.buf.Undo() {
			m.status = "nothing to undo"
		}
	case key.Matches(msg, m.keys.Redo):
		if !m.buf.Redo() {
			m.status = "nothing to redo"
		}

	case key.Matches(msg, m.keys.CycleJump):
		m.jumpIdx = (m.jumpIdx + 1) % len(m.jumpable)
	case key.Matches(msg, m.keys.JumpNext):
		m.jump(m.index.FindNext)
	case key.Matches(msg, m.keys.JumpPrev):
		m.jump(m.index.FindPrevious)

	case key.Matches(msg, m.keys.Save):
		return m, m.save()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// moveTo moves the active offset through the buffer, which clamps it.
func (m *Model) moveTo(offset int) {
	m.buf.SetActiveOffset(offset)
	m.lowNibble = false
}

// typeNibble applies one hex digit at the cursor. The first digit of a byte sets
// (or, in insert mode, inserts a byte with) the high nibble; the second sets the
// low nibble and advances the cursor. An inserted byte is a single undo step.
func (m *Model) typeNibble(digit string) {
	parsed, err := strconv.ParseUint(digit, 16, 8)
	if err != nil {
		return
	}
	value := byte(parsed)

	if !m.lowNibble {
		inserting := m.insertMode || m.snapshot.Len() == 0
		if inserting {
			m.buf.Insert(m.cursor, []byte{value << 4})
		} else {
			m.buf.SetNibble(m.cursor, true, value)
		}
		m.lowNibble = true
		m.pendingInsert = inserting
		return
	}

	offset := m.cursor
	if m.pendingInsert {
		// Swap the half-typed byte for the whole one in a single snapshot.
		high := m.snapshot.Data[offset] &^ 0x0F
		m.buf.Undo()
		m.buf.Insert(offset, []byte{high | value})
	} else {
		m.buf.SetNibble(offset, false, value)
	}
	m.lowNibble = false
	m.pendingInsert = false
	m.buf.SetActiveOffset(offset + 1)
}

// jump moves to the next or previous run of the selected region.
func (m *Model) jump(find func(jpegmap.Region, int) (int, bool)) {
	region := m.JumpRegion()
	offset, ok := find(region, m.cursor)
	if !ok {
		m.status = fmt.Sprintf("no %s in this file", region)
		return
	}
	m.moveTo(offset)
}

// save returns a command writing the current snapshot to disk.
func (m *Model) save() tea.Cmd {
	if m.opts.Path == "" {
		m.status = "no file to save to"
		return nil
	}

	ctx, path, info, backups := m.ctx, m.opts.Path, m.opts.Info, m.opts.Backups
	snapshot := m.snapshot

	return func() tea.Msg {
		result, err := fsutil.Save(ctx, path, snapshot.Data, info, backups)
		return savedMsg{snapshot: snapshot, result: result, err: err}
	}
}

func (m *Model) handleSaved(msg savedMsg) {
	if msg.err != nil {
		m.status = "save failed: " + msg.err.Error()
		return
	}

	m.saved = msg.snapshot
	m.opts.Info = msg.result.Info

	switch {
	case msg.result.BackedUp:
		m.status = fmt.Sprintf("saved %s (backup %s)", m.opts.Path,
			fsutil.BackupPath(m.opts.Path, m.opts.Backups.Mode))
	case msg.result.Written:
		m.status = "saved " + m.opts.Path
	default:
		m.status = "no changes to save"
	}
}

func (m *Model) visibleRows() int {
	if m.height <= chromeLines {
		return defaultRows
	}
	return m.height - chromeLines
}

// scrollToCursor keeps the cursor row inside the visible window.
func (m *Model) scrollToCursor() {
	if m.dump == nil {
		return
	}

	bytesPerRow := m.dump.BytesPerRow()
	row := m.dump.RowStart(m.cursor)
	window := bytesPerRow * m.visibleRows()

	switch {
	case row < m.top:
		m.top = row
	case row >= m.top+window:
		m.top = row - window + bytesPerRow
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(m.header())
	builder.WriteString("\n")

	var data []byte
	var layout *jpegmap.Layout
	if m.snapshot != nil {
		data, layout = m.snapshot.Data, m.snapshot.Layout
	}

	bytesPerRow := m.dump.BytesPerRow()
	last := m.top + bytesPerRow*m.visibleRows()
	for row := m.top; row < last && (row < len(data) || row == 0); row += bytesPerRow {
		builder.WriteString(m.dump.FormatRow(data, layout, row, m.cursor))
		builder.WriteString("\n")
	}

	builder.WriteString(m.statusLine())
	builder.WriteString("\n")
	builder.WriteString(m.help.View(m.keys))

	return builder.String()
}

func (m *Model) header() string {
	name := m.opts.Path
	if m.snapshot != nil && m.snapshot.Name != "" {
		name = m.snapshot.Name
	}

	title := m.styles.FilePath.Render(name)
	if m.Dirty() {
		title += m.styles.Warning.Render(" [modified]")
	}

	mode := "overwrite"
	if m.insertMode {
		mode = "insert"
	}

	region := m.snapshot.RegionAt(m.cursor)
	label := region.String()
	if m.snapshot != nil {
		if run, ok := m.snapshot.Layout.RunAt(m.cursor); ok {
			label = fmt.Sprintf("%s 0x%08x-0x%08x", region, run.StartOffset, run.EndOffset)
		}
	}
	position := fmt.Sprintf("0x%08x/0x%08x", m.cursor, m.snapshot.Len())

	return fmt.Sprintf("%s  %s  %s  %s",
		title,
		m.styles.Dim.Render(mode),
		m.styles.Offset.Render(position),
		m.styles.Region(region).Render(label),
	)
}

func (m *Model) statusLine() string {
	region := m.JumpRegion()
	jump := fmt.Sprintf("jump: %s (%d)", region, m.index.Count(region))
	line := m.styles.Region(region).Render(jump)

	if m.status != "" {
		line += "  " + m.styles.Bold.Render(m.status)
	}
	return line
}
