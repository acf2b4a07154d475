package tui_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jpglitch/internal/tui"
	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/buffer"
	"github.com/yaklabco/jpglitch/pkg/fsutil"
	"github.com/yaklabco/jpglitch/pkg/glitch"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// commentJPEG is SOI, a "hi" comment, a scan header, eight bytes of scan data and EOI.
func commentJPEG() []byte {
	return []byte{
		0xFF, 0xD8,
		0xFF, 0xFE, 0x00, 0x04, 'h', 'i',
		0xFF, 0xDA, 0x00, 0x02,
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80,
		0xFF, 0xD9,
	}
}

func newEditor(t *testing.T, opts tui.Options) (*tui.Model, *buffer.Buffer) {
	t.Helper()

	buf := buffer.New(buffer.Options{})
	buf.Load(commentJPEG(), "photo.jpg")

	if opts.Styles == nil {
		opts.Styles = pretty.NewStyles(false)
	}

	model := tui.New(context.Background(), buf, opts)
	t.Cleanup(model.Close)
	return model, buf
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// press feeds each message to the model and returns the last command.
func press(model *tui.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = model.Update(msg)
	}
	return cmd
}

func TestModel_Movement(t *testing.T) {
	t.Parallel()

	model, _ := newEditor(t, tui.Options{})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"right", keyType(tea.KeyRight), 1},
		{"l", runes("l"), 2},
		{"left", keyType(tea.KeyLeft), 1},
		{"h", runes("h"), 0},
		{"left clamps at start", keyType(tea.KeyLeft), 0},
		{"down moves a row", keyType(tea.KeyDown), 16},
		{"k moves up a row", runes("k"), 0},
		{"end", keyType(tea.KeyEnd), 21},
		{"home", keyType(tea.KeyHome), 0},
		{"page down clamps at last byte", keyType(tea.KeyPgDown), 21},
		{"page up clamps at first byte", keyType(tea.KeyPgUp), 0},
	}

	// Steps depend on each other, so they run in order.
	for _, testCase := range tests {
		press(model, testCase.msg)
		assert.Equal(t, testCase.want, model.Cursor(), testCase.name)
	}
}

func TestModel_OverwriteNibbles(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{})
	buf.SetActiveOffset(12)
	require.Equal(t, 12, model.Cursor())

	press(model, runes("a"))
	assert.Equal(t, byte(0xA0), buf.Current().Data[12])
	assert.Equal(t, 12, model.Cursor(), "first digit stays on the byte")

	press(model, runes("B"))
	assert.Equal(t, byte(0xAB), buf.Current().Data[12])
	assert.Equal(t, 13, model.Cursor())
	assert.True(t, model.Dirty())
	assert.Equal(t, len(commentJPEG()), buf.Len())
}

func TestModel_UndoRedo(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{})
	buf.SetActiveOffset(12)
	press(model, runes("a"), runes("b"))

	press(model, runes("u"))
	assert.Equal(t, byte(0xA0), buf.Current().Data[12])

	press(model, keyType(tea.KeyCtrlZ))
	assert.Equal(t, byte(0x10), buf.Current().Data[12])
	assert.False(t, model.Dirty(), "undoing every edit returns to the saved content")

	press(model, runes("u"))
	assert.Equal(t, "nothing to undo", model.Status())

	press(model, keyType(tea.KeyCtrlR), keyType(tea.KeyCtrlY))
	assert.Equal(t, byte(0xAB), buf.Current().Data[12])

	press(model, keyType(tea.KeyCtrlR))
	assert.Equal(t, "nothing to redo", model.Status())
}

func TestModel_InsertMode(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{})
	buf.SetActiveOffset(20)

	press(model, runes("i"))
	require.True(t, model.InsertMode())

	press(model, runes("c"), runes("d"))
	current := buf.Current()
	assert.Equal(t, len(commentJPEG())+1, current.Len())
	assert.Equal(t, byte(0xCD), current.Data[20])
	assert.Equal(t, []byte{0xFF, 0xD9}, current.Data[21:])
	assert.Equal(t, 21, model.Cursor())
	assert.Equal(t, jpegmap.ScanData, current.RegionAt(20))

	press(model, runes("i"))
	assert.False(t, model.InsertMode())
}

func TestModel_InsertedByteIsOneUndoStep(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{})

	press(model, runes("i"), runes("1"), runes("2"))
	require.Equal(t, len(commentJPEG())+1, buf.Len())
	assert.Equal(t, byte(0x12), buf.Current().Data[0])
	assert.Equal(t, 1, model.Cursor())
	assert.Equal(t, 2, buf.HistoryLen())

	press(model, runes("u"))
	assert.Equal(t, commentJPEG(), buf.Current().Data)
	assert.False(t, model.Dirty())

	press(model, keyType(tea.KeyCtrlR))
	assert.Equal(t, byte(0x12), buf.Current().Data[0])
	assert.Equal(t, len(commentJPEG())+1, buf.Len())
}

func TestModel_HistoryAbandonsHalfTypedByte(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keys    []tea.Msg
		want    byte
		wantLen int
	}{
		{
			name:    "undo",
			keys:    []tea.Msg{runes("1"), runes("u"), runes("2")},
			want:    0x28,
			wantLen: len(commentJPEG()),
		},
		{
			name:    "redo",
			keys:    []tea.Msg{runes("1"), runes("u"), keyType(tea.KeyCtrlR), runes("3")},
			want:    0x38,
			wantLen: len(commentJPEG()),
		},
		{
			name:    "delete",
			keys:    []tea.Msg{runes("1"), runes("x"), runes("2")},
			want:    0x29,
			wantLen: len(commentJPEG()) - 1,
		},
		{
			name:    "undo of a half-typed insert",
			keys:    []tea.Msg{runes("i"), runes("1"), runes("u"), runes("2")},
			want:    0x20,
			wantLen: len(commentJPEG()) + 1,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			model, buf := newEditor(t, tui.Options{})
			buf.SetActiveOffset(6)

			press(model, testCase.keys...)

			assert.Equal(t, testCase.want, buf.Current().Data[6])
			assert.Equal(t, testCase.wantLen, buf.Len())
			assert.Equal(t, 6, model.Cursor(), "the next digit starts a new byte")
		})
	}
}

func TestModel_Delete(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{})
	buf.SetActiveOffset(6)

	press(model, runes("x"))
	assert.Equal(t, len(commentJPEG())-1, buf.Len())
	assert.Equal(t, byte('i'), buf.Current().Data[6])

	press(model, keyType(tea.KeyDelete))
	assert.Equal(t, len(commentJPEG())-2, buf.Len())
}

func TestModel_Jump(t *testing.T) {
	t.Parallel()

	model, _ := newEditor(t, tui.Options{
		Jumpable: []jpegmap.Region{jpegmap.Comment, jpegmap.EndMarker, jpegmap.HuffmanTable},
	})
	require.Equal(t, jpegmap.Comment, model.JumpRegion())

	press(model, runes("n"))
	assert.Equal(t, 2, model.Cursor())

	press(model, keyType(tea.KeyTab))
	assert.Equal(t, jpegmap.EndMarker, model.JumpRegion())

	press(model, runes("n"))
	assert.Equal(t, 20, model.Cursor())

	press(model, runes("N"))
	assert.Equal(t, 20, model.Cursor(), "a single run is its own previous")

	press(model, keyType(tea.KeyTab))
	assert.Equal(t, jpegmap.HuffmanTable, model.JumpRegion())
	press(model, runes("n"))
	assert.Equal(t, 20, model.Cursor())
	assert.Equal(t, "no huffman-table in this file", model.Status())

	press(model, keyType(tea.KeyTab))
	assert.Equal(t, jpegmap.Comment, model.JumpRegion(), "tab wraps around")
}

func TestModel_JumpFollowsEdits(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{Jumpable: []jpegmap.Region{jpegmap.Comment}})

	press(model, runes("n"))
	require.Equal(t, 2, model.Cursor())

	require.True(t, buf.Delete(2, 6))
	buf.SetActiveOffset(0)

	press(model, runes("n"))
	assert.Equal(t, 0, model.Cursor())
	assert.Equal(t, "no comment in this file", model.Status())
}

func TestModel_SeesExternalChanges(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{})

	changed, err := glitch.Apply(buf, glitch.Options{Mode: glitch.ModeZero, Count: 2, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, 2, changed)

	assert.True(t, model.Dirty())
}

func TestModel_CloseUnsubscribes(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{})
	model.Close()

	buf.SetActiveOffset(5)
	assert.Equal(t, 0, model.Cursor())

	model.Close()
}

func TestModel_Save(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, commentJPEG(), 0o644))

	data, info, err := fsutil.ReadFile(context.Background(), path, 0)
	require.NoError(t, err)

	buf := buffer.New(buffer.Options{})
	buf.Load(data, path)
	model := tui.New(context.Background(), buf, tui.Options{
		Path:    path,
		Info:    info,
		Backups: fsutil.DefaultBackupConfig(),
		Styles:  pretty.NewStyles(false),
	})
	t.Cleanup(model.Close)

	buf.SetActiveOffset(12)
	press(model, runes("0"), runes("0"))
	require.True(t, model.Dirty())

	cmd := press(model, keyType(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	press(model, cmd())

	assert.False(t, model.Dirty())
	assert.Contains(t, model.Status(), "saved "+path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), written[12])

	backup, err := os.ReadFile(path + fsutil.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, commentJPEG(), backup)

	// A second save uses the refreshed file info, so it is not seen as an outside change.
	press(model, runes("1"), runes("1"))
	cmd = press(model, keyType(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	press(model, cmd())
	assert.Equal(t, "saved "+path, model.Status())
}

func TestModel_SaveDetectsOutsideChanges(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, commentJPEG(), 0o644))

	data, info, err := fsutil.ReadFile(context.Background(), path, 0)
	require.NoError(t, err)

	buf := buffer.New(buffer.Options{})
	buf.Load(data, path)
	model := tui.New(context.Background(), buf, tui.Options{Path: path, Info: info, Styles: pretty.NewStyles(false)})
	t.Cleanup(model.Close)

	require.NoError(t, os.WriteFile(path, []byte("replaced by someone else"), 0o644))

	press(model, runes("7"), runes("7"))
	cmd := press(model, keyType(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	press(model, cmd())

	assert.Contains(t, model.Status(), "save failed")
	assert.True(t, model.Dirty())
}

func TestModel_SaveWithoutPath(t *testing.T) {
	t.Parallel()

	model, _ := newEditor(t, tui.Options{})

	cmd := press(model, keyType(tea.KeyCtrlS))
	assert.Nil(t, cmd)
	assert.Equal(t, "no file to save to", model.Status())
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	t.Run("clean quits at once", func(t *testing.T) {
		t.Parallel()

		model, _ := newEditor(t, tui.Options{})
		cmd := press(model, runes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, model.View())
	})

	t.Run("dirty asks for confirmation", func(t *testing.T) {
		t.Parallel()

		model, _ := newEditor(t, tui.Options{})
		press(model, runes("a"))

		cmd := press(model, runes("q"))
		assert.Nil(t, cmd)
		assert.Contains(t, model.Status(), "unsaved changes")

		cmd = press(model, runes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("other keys cancel confirmation", func(t *testing.T) {
		t.Parallel()

		model, _ := newEditor(t, tui.Options{})
		press(model, runes("a"))
		press(model, runes("q"), keyType(tea.KeyRight))

		assert.Nil(t, press(model, runes("q")))
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		t.Parallel()

		model, _ := newEditor(t, tui.Options{})
		press(model, runes("a"))

		cmd := press(model, keyType(tea.KeyCtrlC))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	model, buf := newEditor(t, tui.Options{})

	view := model.View()
	assert.Contains(t, view, "photo.jpg")
	assert.Contains(t, view, "overwrite")
	assert.Contains(t, view, "0x00000000/0x00000016")
	assert.Contains(t, view, "start-marker 0x00000000-0x00000002")
	assert.Contains(t, view, "00000000  ff d8 ff fe 00 04 68 69 ff da 00 02 10 20 30 40")
	assert.Contains(t, view, "00000010  50 60 70 80 ff d9")
	assert.Contains(t, view, "jump: start-marker (1)")
	assert.NotContains(t, view, "[modified]")

	press(model, tea.WindowSizeMsg{Width: 60, Height: 20})
	buf.SetActiveOffset(8)
	press(model, runes("i"), runes("a"))

	view = model.View()
	assert.Contains(t, view, "00000008  a0 ff da 00 02 10 20 30")
	assert.Contains(t, view, "insert")
	assert.Contains(t, view, "[modified]")
}

func TestModel_ScrollsWithCursor(t *testing.T) {
	t.Parallel()

	buf := buffer.New(buffer.Options{})
	data := make([]byte, 1024)
	copy(data, commentJPEG())
	buf.Load(data, "big.jpg")

	model := tui.New(context.Background(), buf, tui.Options{Styles: pretty.NewStyles(false)})
	t.Cleanup(model.Close)

	press(model, tea.WindowSizeMsg{Width: 100, Height: 7})
	press(model, keyType(tea.KeyEnd))

	view := model.View()
	assert.Contains(t, view, "000003f0")
	assert.NotContains(t, view, "00000000  ")
}
