package ui

import (
	"context"
	"fmt"

	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/repositories"
	"github.com/avelasco/reel/internal/tasks"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	WatchlistView
	AddView
	ConfirmClearView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	users   *repositories.UserRepository
	entries tasks.EntryStore
	engine  *tasks.WatchlistEngine
	width   int
	height  int

	usernameInput textinput.Model
	passwordInput textinput.Model
	titleInput    textinput.Model
	passwordFocus bool
	addStatus     models.Status

	user      *models.User
	entryList list.Model
	listReady bool

	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	addResult    *tasks.FetchAddResult
	addErr       error
	adding       bool

	status string
	err    error
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, users *repositories.UserRepository, entries tasks.EntryStore, engine *tasks.WatchlistEngine) *Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	title := textinput.New()
	title.Placeholder = "movie title"

	return &Model{
		ctx:           ctx,
		view:          LoginView,
		users:         users,
		entries:       entries,
		engine:        engine,
		usernameInput: username,
		passwordInput: password,
		titleInput:    title,
		addStatus:     models.WantToWatch,
		help:          help.New(),
		keys:          newKeyMap(),
	}
}

// Init satisfies [tea.Model]. The login form owns the first frame.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.entryList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case WatchlistView:
			return m.handleWatchlistKeys(msg)
		case AddView:
			return m.handleAddKeys(msg)
		case ConfirmClearView:
			return m.handleConfirmClearKeys(msg)
		}

	case loginDoneMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("login failed: %v", msg.err))
			return m, nil
		}
		m.user = msg.user
		m.status = ""
		m.view = WatchlistView
		return m, m.loadEntries()

	case entriesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.entries))
		for i, entry := range msg.entries {
			items[i] = entryItem{entry: entry}
		}
		if m.listReady {
			m.entryList.SetItems(items)
		} else {
			m.entryList = list.New(items, list.NewDefaultDelegate(), 0, 0)
			m.entryList.Title = fmt.Sprintf("%s's Watchlist", m.user.Username())
			m.entryList.SetSize(m.width-4, m.height-8)
			m.listReady = true
		}
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		m.status = m.progress.Message
		return m, m.waitForProgress()

	case addDoneMsg:
		m.adding = false
		if m.progressChan != nil {
			m.progressChan = nil
		}
		switch {
		case msg.err != nil:
			m.status = styles.err.Render(fmt.Sprintf("add failed: %v", msg.err))
		case msg.result == nil:
			m.status = ""
		case msg.result.Duplicate:
			m.status = styles.warn.Render(fmt.Sprintf("%s is already on the list", msg.result.Movie.Title))
		default:
			m.status = styles.ok.Render(fmt.Sprintf("added %s", msg.result.Movie.Title))
		}
		m.view = WatchlistView
		return m, m.loadEntries()

	case entryUpdatedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(msg.err.Error())
			return m, nil
		}
		m.status = ""
		return m, m.loadEntries()

	case clearedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("clear failed: %v", msg.err))
		} else {
			m.status = styles.ok.Render(fmt.Sprintf("removed %d entries", msg.count))
		}
		m.view = WatchlistView
		return m, m.loadEntries()
	}

	return m.updateInputs(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case LoginView:
		return m.renderLogin()
	case WatchlistView:
		return m.renderWatchlist()
	case AddView:
		return m.renderAdd()
	case ConfirmClearView:
		return m.renderConfirmClear()
	default:
		return ""
	}
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.passwordFocus = !m.passwordFocus
		if m.passwordFocus {
			m.usernameInput.Blur()
			return m, m.passwordInput.Focus()
		}
		m.passwordInput.Blur()
		return m, m.usernameInput.Focus()
	case "enter":
		return m, m.login(false)
	case "ctrl+n":
		return m, m.login(true)
	}

	return m.updateInputs(msg)
}

func (m *Model) handleWatchlistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entryList.FilterState() == list.Filtering {
		return m.updateList(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.titleInput.SetValue("")
		m.addStatus = models.WantToWatch
		m.view = AddView
		return m, m.titleInput.Focus()
	case "w":
		if entry := m.selectedEntry(); entry != nil {
			return m, m.toggleStatus(entry)
		}
	case "d":
		if entry := m.selectedEntry(); entry != nil {
			return m, m.deleteEntry(entry)
		}
	case "1", "2", "3", "4", "5":
		if entry := m.selectedEntry(); entry != nil {
			rating := int(msg.String()[0] - '0')
			return m, m.rateEntry(entry, &rating)
		}
	case "0":
		if entry := m.selectedEntry(); entry != nil {
			return m, m.rateEntry(entry, nil)
		}
	case "C":
		m.view = ConfirmClearView
		return m, nil
	}

	return m.updateList(msg)
}

func (m *Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = WatchlistView
		return m, nil
	case "tab":
		if m.addStatus == models.WantToWatch {
			m.addStatus = models.Watched
		} else {
			m.addStatus = models.WantToWatch
		}
		return m, nil
	case "enter":
		title := m.titleInput.Value()
		if title == "" {
			return m, nil
		}
		return m, m.startAdd(title, m.addStatus)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmClearKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = WatchlistView
		return m, nil
	case "y":
		return m, m.clearAll()
	}
	return m, nil
}

func (m *Model) selectedEntry() *models.Entry {
	selected := m.entryList.SelectedItem()
	if selected == nil {
		return nil
	}
	if item, ok := selected.(entryItem); ok {
		return item.entry
	}
	return nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.listReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	return m, cmd
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.view {
	case LoginView:
		m.usernameInput, cmd = m.usernameInput.Update(msg)
		cmds = append(cmds, cmd)
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		cmds = append(cmds, cmd)
	case AddView:
		m.titleInput, cmd = m.titleInput.Update(msg)
		cmds = append(cmds, cmd)
	case WatchlistView:
		return m.updateList(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) login(register bool) tea.Cmd {
	username := m.usernameInput.Value()
	password := m.passwordInput.Value()

	return func() tea.Msg {
		if register {
			user, err := m.users.Create(username, password)
			return loginDoneMsg{user: user, err: err}
		}
		user, err := m.users.Authenticate(username, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (m *Model) loadEntries() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.entries.List(m.user.ID())
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) toggleStatus(entry *models.Entry) tea.Cmd {
	next := models.Watched
	if entry.Status() == models.Watched {
		next = models.WantToWatch
	}
	return func() tea.Msg {
		return entryUpdatedMsg{err: m.entries.UpdateStatus(entry.ID(), next)}
	}
}

func (m *Model) rateEntry(entry *models.Entry, rating *int) tea.Cmd {
	return func() tea.Msg {
		return entryUpdatedMsg{err: m.entries.UpdateRating(entry.ID(), rating)}
	}
}

func (m *Model) deleteEntry(entry *models.Entry) tea.Cmd {
	return func() tea.Msg {
		return entryUpdatedMsg{err: m.entries.Delete(entry.ID())}
	}
}

func (m *Model) startAdd(title string, status models.Status) tea.Cmd {
	m.adding = true
	m.progressChan = make(chan tasks.ProgressUpdate, 10)

	go func() {
		result, err := m.engine.FetchAndAdd(m.ctx, m.progressChan, m.user.ID(), title, status)
		m.addResult = result
		m.addErr = err
		close(m.progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return addDoneMsg{result: m.addResult, err: m.addErr}
		}

		update, ok := <-m.progressChan
		if !ok {
			return addDoneMsg{result: m.addResult, err: m.addErr}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) clearAll() tea.Cmd {
	return func() tea.Msg {
		count, err := m.engine.ClearAll(m.ctx, m.user.ID())
		return clearedMsg{count: count, err: err}
	}
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Sign in")
	form := fmt.Sprintf("%s\n%s\n", m.usernameInput.View(), m.passwordInput.View())

	enterKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in"))
	registerKey := key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "register"))
	tabKey := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field"))
	helpView := m.help.ShortHelpView([]key.Binding{enterKey, registerKey, tabKey})

	out := fmt.Sprintf("%s\n%s\n%s", title, form, helpView)
	if m.status != "" {
		out = fmt.Sprintf("%s\n\n%s", out, m.status)
	}
	return out
}

func (m *Model) renderWatchlist() string {
	if !m.listReady {
		return "Loading watchlist..."
	}

	helpKeys := []key.Binding{m.keys.add, m.keys.toggle, m.keys.rate, m.keys.delete, m.keys.clear, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	out := fmt.Sprintf("%s\n\n%s", m.entryList.View(), helpView)
	if m.status != "" {
		out = fmt.Sprintf("%s\n%s", out, m.status)
	}
	return out
}

func (m *Model) renderAdd() string {
	title := styles.title.Render("Add a movie")

	if m.adding {
		message := m.progress.Message
		if message == "" {
			message = "Looking up title..."
		}
		return fmt.Sprintf("%s\n%s", title, message)
	}

	statusLine := fmt.Sprintf("Add as: %s", styles.ok.Render(string(m.addStatus)))

	enterKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "look up"))
	statusKey := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch status"))
	helpView := m.help.ShortHelpView([]key.Binding{enterKey, statusKey, m.keys.back})

	return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, m.titleInput.View(), statusLine, helpView)
}

func (m *Model) renderConfirmClear() string {
	title := styles.title.Render("Clear the entire watchlist?")
	warning := styles.warn.Render(fmt.Sprintf("This removes all %d entries for %s.", len(m.entryList.Items()), m.user.Username()))

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no})

	return fmt.Sprintf("%s\n%s\n\n%s", title, warning, helpView)
}
