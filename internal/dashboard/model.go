package dashboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/edvin/minio-lite-admin/internal/model"
	"github.com/edvin/minio-lite-admin/internal/store"
)

// keyFilters is the order tab cycles through on the access keys view.
var keyFilters = []string{
	model.KeyFilterAll,
	model.KeyFilterUsers,
	model.KeyFilterServiceAccounts,
	model.KeyFilterSTS,
}

var filterLabels = map[string]string{
	model.KeyFilterAll:             "All",
	model.KeyFilterUsers:           "Users",
	model.KeyFilterServiceAccounts: "Service Accounts",
	model.KeyFilterSTS:             "STS",
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctx    context.Context
	stores *Stores
	router *Router
	doc    *Document
	start  string
	route  Route

	serverInfo      store.State[*model.ServerInfo]
	dataUsage       store.State[*model.DataUsage]
	accessKeys      store.State[model.AccessKeysResponse]
	siteReplication store.State[*model.SiteReplicationInfo]
	buckets         store.State[*model.BucketsResponse]

	filter        int
	selected      int
	pendingDelete string
	status        string
	statusErr     bool

	spinner  spinner.Model
	usageBar progress.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a dashboard model that opens at startPath.
func NewModel(ctx context.Context, stores *Stores, startPath string) Model {
	if startPath == "" {
		startPath = "/"
	}

	doc := &Document{}
	router := NewRouter(DefaultRoutes())
	router.BeforeEach(TitleHook(doc))

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	return Model{
		ctx:             ctx,
		stores:          stores,
		router:          router,
		doc:             doc,
		start:           startPath,
		serverInfo:      stores.ServerInfo.State(),
		dataUsage:       stores.DataUsage.State(),
		accessKeys:      stores.AccessKeys.State(),
		siteReplication: stores.SiteReplication.State(),
		buckets:         stores.Buckets.State(),
		spinner:         sp,
		usageBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

// Init navigates to the start route and starts the spinner.
func (m Model) Init() tea.Cmd {
	start := m.start
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return NavigateMsg{Path: start} },
	)
}

// Title returns the current window title.
func (m Model) Title() string {
	return m.doc.Title()
}

// Route returns the active route.
func (m Model) Route() Route {
	return m.route
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.usageBar.Width = min(40, max(10, msg.Width-30))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		return m.navigate(msg.Path)

	case ServerInfoMsg:
		m.serverInfo = store.State[*model.ServerInfo](msg)
		return m, nil

	case DataUsageMsg:
		m.dataUsage = store.State[*model.DataUsage](msg)
		return m, nil

	case AccessKeysMsg:
		m.accessKeys = store.State[model.AccessKeysResponse](msg)
		m.clampSelection()
		return m, nil

	case SiteReplicationMsg:
		m.siteReplication = store.State[*model.SiteReplicationInfo](msg)
		return m, nil

	case BucketsMsg:
		m.buckets = store.State[*model.BucketsResponse](msg)
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("%s %s failed: %v", msg.action, msg.accessKey, msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("%s %s", msg.accessKey, msg.action), false)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) navigate(path string) (tea.Model, tea.Cmd) {
	route, err := m.router.Navigate(path)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.route = route
	m.selected = 0
	m.pendingDelete = ""
	m.status = ""
	return m, tea.Batch(tea.SetWindowTitle(m.doc.Title()), m.activate())
}

// activate fetches the data the active view renders.
func (m Model) activate() tea.Cmd {
	ctx, s := m.ctx, m.stores
	switch m.route.View {
	case ViewDashboard:
		return func() tea.Msg {
			store.FetchAll(ctx,
				func(ctx context.Context) error { _, err := s.ServerInfo.Activate(ctx); return err },
				func(ctx context.Context) error { _, err := s.DataUsage.Activate(ctx); return err },
				func(ctx context.Context) error { _, err := s.Buckets.Activate(ctx); return err },
			)
			return nil
		}
	case ViewAccessKeys:
		opts := s.AccessKeys.Options()
		opts.Type = keyFilters[m.filter]
		return func() tea.Msg {
			s.AccessKeys.Fetch(ctx, opts)
			return nil
		}
	case ViewSiteReplication:
		return func() tea.Msg {
			s.SiteReplication.Activate(ctx)
			return nil
		}
	}
	return nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "x" {
		m.pendingDelete = ""
	}

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3":
		pages := m.router.Pages()
		i := int(key[0] - '1')
		if i < len(pages) {
			return m.navigate(pages[i].Path)
		}
		return m, nil

	case "r":
		return m, m.activate()
	}

	if m.route.View != ViewAccessKeys {
		return m, nil
	}

	keys := m.accessKeys.Data.AccessKeys
	switch key {
	case "tab":
		m.filter = (m.filter + 1) % len(keyFilters)
		m.selected = 0
		return m, m.activate()

	case "shift+tab":
		m.filter = (m.filter + len(keyFilters) - 1) % len(keyFilters)
		m.selected = 0
		return m, m.activate()

	case "j", "down":
		if m.selected < len(keys)-1 {
			m.selected++
		}
		return m, nil

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "g", "home":
		m.selected = 0
		return m, nil

	case "G", "end":
		if len(keys) > 0 {
			m.selected = len(keys) - 1
		}
		return m, nil

	case "e":
		return m.toggleSelected()

	case "x":
		return m.deleteSelected()
	}

	return m, nil
}

func (m Model) selectedKey() (model.AccessKeyInfo, bool) {
	keys := m.accessKeys.Data.AccessKeys
	if m.selected < 0 || m.selected >= len(keys) {
		return model.AccessKeyInfo{}, false
	}
	return keys[m.selected], true
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	k, ok := m.selectedKey()
	if !ok {
		return m, nil
	}
	if k.Type != model.KeyTypeServiceAccount {
		m.setStatus("only service accounts can be enabled or disabled", true)
		return m, nil
	}

	next := model.AccountDisabled
	if k.AccountStatus != model.AccountEnabled {
		next = model.AccountEnabled
	}

	ctx, s := m.ctx, m.stores
	m.setStatus(fmt.Sprintf("setting %s to %s", k.AccessKey, next), false)
	return m, func() tea.Msg {
		_, err := s.AccessKeys.UpdateServiceAccount(ctx, k.AccessKey, model.UpdateServiceAccountRequest{NewStatus: next})
		return mutationDoneMsg{action: next, accessKey: k.AccessKey, err: err}
	}
}

// deleteSelected asks for confirmation on the first press and deletes on
// the second.
func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	k, ok := m.selectedKey()
	if !ok {
		return m, nil
	}
	if k.Type != model.KeyTypeServiceAccount {
		m.setStatus("only service accounts can be deleted", true)
		return m, nil
	}
	if m.pendingDelete != k.AccessKey {
		m.pendingDelete = k.AccessKey
		m.setStatus(fmt.Sprintf("press x again to delete %s", k.AccessKey), false)
		return m, nil
	}

	m.pendingDelete = ""
	ctx, s := m.ctx, m.stores
	m.setStatus(fmt.Sprintf("deleting %s", k.AccessKey), false)
	return m, func() tea.Msg {
		_, err := s.AccessKeys.DeleteServiceAccount(ctx, k.AccessKey)
		return mutationDoneMsg{action: "deleted", accessKey: k.AccessKey, err: err}
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) clampSelection() {
	n := len(m.accessKeys.Data.AccessKeys)
	if m.selected >= n {
		m.selected = max(0, n-1)
	}
}
