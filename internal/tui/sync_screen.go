package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/equanote/equanote/internal/service"
	"github.com/equanote/equanote/models"
)

type pane int

const (
	paneBooks pane = iota
	paneFormulas
)

// syncScreenModel is the main screen: the book list on top, the selected
// book's formulas below it with checkbox selection, and the sync actions
// bound to single keys. Coordinator state changes arrive as syncStateMsg
// pushed from the coordinator listener.
type syncScreenModel struct {
	ctx         context.Context
	services    *service.ClientServices
	coordinator *service.SyncCoordinator

	books    []models.Book
	formulas []models.Formula
	bookIdx  int
	formIdx  int
	focus    pane
	loading  bool

	state       service.SyncState
	uploadBar   progress.Model
	syncBar     progress.Model
	localStatus string
	errMsg      string
}

type booksLoadedMsg struct {
	books []models.Book
	err   error
}

type formulasLoadedMsg struct {
	bookID   int64
	formulas []models.Formula
	err      error
}

type syncStateMsg struct {
	state service.SyncState
}

type syncActionDoneMsg struct{}

type clipboardMsg struct {
	err error
}

func newSyncScreenModel(ctx context.Context, services *service.ClientServices) syncScreenModel {
	return syncScreenModel{
		ctx:         ctx,
		services:    services,
		coordinator: services.Coordinator,
		loading:     true,
		uploadBar:   progress.New(progress.WithDefaultGradient()),
		syncBar:     progress.New(progress.WithDefaultGradient()),
	}
}

func (m syncScreenModel) Init() tea.Cmd {
	return m.cmdLoadBooks()
}

func (m syncScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case booksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.books = msg.books
		m.bookIdx = clampIndex(m.bookIdx, len(m.books))
		if len(m.books) == 0 {
			m.formulas = nil
			return m, nil
		}
		return m, m.cmdSelectBook(m.books[m.bookIdx].ID)

	case formulasLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.bookID != m.currentBookID() {
			// Stale load from a book the cursor already left.
			return m, nil
		}
		m.formulas = msg.formulas
		m.formIdx = clampIndex(m.formIdx, len(m.formulas))
		return m, nil

	case syncStateMsg:
		m.state = msg.state
		return m, nil

	case syncActionDoneMsg:
		// Re-read local rows: a finished action may have cleared dirty flags.
		return m, m.cmdLoadBooks()

	case clipboardMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.localStatus = "formula copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m syncScreenModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.focus == paneBooks {
			m.focus = paneFormulas
		} else {
			m.focus = paneBooks
		}
		return m, nil
	case "up", "k":
		return m.moveCursor(-1)
	case "down", "j":
		return m.moveCursor(1)
	case "enter":
		if m.focus == paneBooks && len(m.books) > 0 {
			return m, m.cmdSelectBook(m.books[m.bookIdx].ID)
		}
		return m, nil
	case " ":
		if m.focus == paneFormulas && len(m.formulas) > 0 {
			m.coordinator.ToggleFormulaSelection(m.formulas[m.formIdx].ID)
		}
		return m, nil
	case "a":
		ids := make([]int64, 0, len(m.formulas))
		for _, f := range m.formulas {
			ids = append(ids, f.ID)
		}
		if m.coordinator.SelectedFormulaCount() == len(ids) && len(ids) > 0 {
			m.coordinator.DeselectAllFormulas()
		} else {
			m.coordinator.SelectAllFormulas(ids)
		}
		return m, nil
	case "u":
		if m.busy() {
			return m, nil
		}
		return m, m.cmdRunAction(m.coordinator.UploadSelectedFormulas)
	case "s":
		if m.busy() {
			return m, nil
		}
		return m, m.cmdRunAction(m.coordinator.PerformFullSync)
	case "d":
		if m.busy() {
			return m, nil
		}
		return m, m.cmdRunAction(m.coordinator.DownloadFromRemote)
	case "c":
		if m.focus == paneFormulas && len(m.formulas) > 0 {
			return m, m.cmdCopyFormula(m.formulas[m.formIdx])
		}
		return m, nil
	case "esc":
		m.coordinator.ClearError()
		m.coordinator.ClearSyncMessage()
		m.localStatus = ""
		m.errMsg = ""
		return m, nil
	}
	return m, nil
}

func (m syncScreenModel) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if m.focus == paneBooks {
		next := clampIndex(m.bookIdx+delta, len(m.books))
		if next != m.bookIdx {
			m.bookIdx = next
			m.formIdx = 0
			return m, m.cmdSelectBook(m.books[m.bookIdx].ID)
		}
		return m, nil
	}

	m.formIdx = clampIndex(m.formIdx+delta, len(m.formulas))
	return m, nil
}

func (m syncScreenModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("equanote"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(statusStyle.Render("loading..."))
		return appStyle.Render(b.String())
	}

	b.WriteString(m.renderBooks())
	b.WriteString("\n")
	b.WriteString(m.renderFormulas())
	b.WriteString("\n")
	b.WriteString(m.renderSyncState())

	help := "tab panes • space select • a all • u upload • s full sync • d download • c copy • esc clear • q quit"
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(help))

	return appStyle.Render(b.String())
}

func (m syncScreenModel) renderBooks() string {
	var b strings.Builder
	b.WriteString("books\n")
	if len(m.books) == 0 {
		b.WriteString(helpStyle.Render("  (no books yet)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, book := range m.books {
		cursor := "  "
		if i == m.bookIdx && m.focus == paneBooks {
			cursor = "> "
		}
		line := cursor + book.Name + syncBadge(book.NeedsUpload(), book.RemoteID)
		if i == m.bookIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m syncScreenModel) renderFormulas() string {
	var b strings.Builder
	b.WriteString("formulas\n")
	if len(m.formulas) == 0 {
		b.WriteString(helpStyle.Render("  (no formulas in this book)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, formula := range m.formulas {
		cursor := "  "
		if i == m.formIdx && m.focus == paneFormulas {
			cursor = "> "
		}
		check := "[ ] "
		if m.coordinator.IsFormulaSelected(formula.ID) {
			check = "[x] "
		}
		line := cursor + check + formula.Name + syncBadge(formula.NeedsUpload(), formula.RemoteID)
		if i == m.formIdx && m.focus == paneFormulas {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m syncScreenModel) renderSyncState() string {
	var b strings.Builder

	switch {
	case m.state.IsUploading:
		b.WriteString("uploading ")
		b.WriteString(m.uploadBar.ViewAs(m.state.UploadProgress))
		b.WriteString("\n")
	case m.state.IsFullSyncing:
		b.WriteString("syncing ")
		b.WriteString(m.syncBar.ViewAs(m.state.SyncProgress))
		b.WriteString("\n")
	case m.state.IsDownloading:
		b.WriteString(statusStyle.Render("downloading..."))
		b.WriteString("\n")
	}

	if m.state.SyncMessage != "" {
		b.WriteString(statusStyle.Render(m.state.SyncMessage))
		b.WriteString("\n")
	}
	if m.localStatus != "" {
		b.WriteString(statusStyle.Render(m.localStatus))
		b.WriteString("\n")
	}
	if m.state.Error != "" {
		b.WriteString(errorStyle.Render(m.state.Error))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (m syncScreenModel) busy() bool {
	return m.state.IsUploading || m.state.IsFullSyncing || m.state.IsDownloading
}

func (m syncScreenModel) currentBookID() int64 {
	if len(m.books) == 0 {
		return 0
	}
	return m.books[m.bookIdx].ID
}

func (m syncScreenModel) cmdLoadBooks() tea.Cmd {
	return func() tea.Msg {
		books, err := m.services.Books.GetAll(m.ctx)
		return booksLoadedMsg{books: books, err: err}
	}
}

func (m syncScreenModel) cmdSelectBook(bookID int64) tea.Cmd {
	m.coordinator.SelectBook(bookID)
	return func() tea.Msg {
		formulas, err := m.services.Formulas.GetByBook(m.ctx, bookID)
		return formulasLoadedMsg{bookID: bookID, formulas: formulas, err: err}
	}
}

// cmdRunAction runs a coordinator action in the background; intermediate
// state arrives through the listener, the done message triggers a reload of
// local rows.
func (m syncScreenModel) cmdRunAction(action func(context.Context)) tea.Cmd {
	return func() tea.Msg {
		action(m.ctx)
		return syncActionDoneMsg{}
	}
}

func (m syncScreenModel) cmdCopyFormula(formula models.Formula) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(formula.FormulaText)}
	}
}

func syncBadge(needsUpload bool, remoteID string) string {
	switch {
	case needsUpload && remoteID == "":
		return dirtyStyle.Render("  • local only")
	case needsUpload:
		return dirtyStyle.Render("  • modified")
	default:
		return ""
	}
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
