package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/vkgrab-cli/vkgrab/auth"
	"github.com/vkgrab-cli/vkgrab/constant"
	"github.com/vkgrab-cli/vkgrab/internal/ui"
	"github.com/vkgrab-cli/vkgrab/key"
	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/style"
	"github.com/vkgrab-cli/vkgrab/util"
	"github.com/vkgrab-cli/vkgrab/vk"
)

// statefulBubble encapsulates the application state, including component
// models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool
	busy          bool // Protects against rapid input during async ops

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	cookiesC  textarea.Model
	resultsC  list.Model
	progressC progress.Model
	helpC     help.Model

	client      *vk.Client
	credentials auth.Credentials

	currentVideo    *source.Video
	currentVariant  *source.Variant
	downloadedPath  string
	downloadPercent int
	progressStatus  string
	lastError       error

	fetchedVideoChannel     chan *source.Video
	downloadProgressChannel chan int
	downloadDoneChannel     chan string
	errorChannel            chan error

	width, height int
	notifier      *ui.Notifier

	options *Options
}

// raiseError dispatches a terminal error and transitions the application
// to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application
// workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState transitions to a target state, recording the previous state
// in the navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Do not push these states to history
	if !lo.Contains([]state{
		loadingState,
		downloadState,
	}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in
// the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		s := b.statesHistory.Pop()
		b.setState(s)
	}
}

// resize propagates terminal dimension changes to all child component
// models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.resultsC.SetSize(listWidth, listHeight)
	b.resultsC.Help.Width = listWidth

	b.progressC.Width = styledWidth
	b.inputC.Width = styledWidth
	b.cookiesC.SetWidth(styledWidth)

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

// startLoading enters a concurrent loading state, initializing visual
// indicators across child components.
func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	b.busy = true
	return b.resultsC.StartSpinner()
}

// stopLoading exits the loading state and synchronizes child component
// visual indicators.
func (b *statefulBubble) stopLoading() tea.Cmd {
	b.loading = false
	b.busy = false
	b.resultsC.StopSpinner()
	return nil
}

// setCredentials replaces the session cookies used by the client.
func (b *statefulBubble) setCredentials(credentials auth.Credentials) {
	b.credentials = credentials
	b.client = vk.New(credentials)
}

// newBubble performs a complete initialization of the application's
// primary UI model.
func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,

		fetchedVideoChannel:     make(chan *source.Video),
		downloadProgressChannel: make(chan int),
		downloadDoneChannel:     make(chan string),
		errorChannel:            make(chan error),

		notifier: &ui.Notifier{},
	}

	bubble.setCredentials(options.Credentials)

	makeList := func(title string, description bool, titleStyle lipgloss.Style) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		listC.Styles.Title = titleStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("https://vk.com/video... (v%s)", constant.Version)
	bubble.inputC.CharLimit = 200
	bubble.inputC.Prompt = viper.GetString(key.TUIPromptString)

	bubble.cookiesC = textarea.New()
	bubble.cookiesC.Placeholder = "remixsid=...; remixdsid=..."
	bubble.cookiesC.SetHeight(5)

	bubble.progressC = progress.New(progress.WithDefaultGradient())

	bubble.resultsC = makeList("Available Qualities", viper.GetBool(key.TUIShowURLs),
		lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1),
	)
	bubble.resultsC.SetStatusBarItemName("variant", "variants")

	bubble.options = options

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
