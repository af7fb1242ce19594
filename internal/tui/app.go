package tui

import (
	"context"
	"math"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/propcompare/internal/catalog"
	"github.com/jask/propcompare/internal/compare"
	"github.com/jask/propcompare/internal/config"
	"github.com/jask/propcompare/internal/details"
	"github.com/jask/propcompare/internal/listing"
	"github.com/jask/propcompare/internal/mortgage"
	"github.com/jask/propcompare/internal/notify"
	"github.com/jask/propcompare/internal/prefs"
)

const capacityMessage = "You can compare up to 3 properties at a time. Please remove a property before adding a new one."

// App is the comparison screen: a summary strip of selected listings above
// either the side-by-side table or the one-card-at-a-time view.
type App struct {
	ctx      context.Context
	cfg      config.Config
	log      *zap.Logger
	source   catalog.Source
	prefs    *prefs.Store
	catalog  *catalog.Catalog
	store    *compare.Store
	notices  *notify.Center
	keys     keyMap
	modal    modalState
	picker   *pickerState
	mortgage mortgageState
	details  viewport.Model
	layout   layoutMode
	focus    int
	showHelp bool
	width    int
	height   int
	status   string
}

type modalState string

const (
	modalNone     modalState = ""
	modalPicker   modalState = "picker"
	modalMortgage modalState = "mortgage"
	modalDetails  modalState = "details"
)

type layoutMode string

const (
	layoutAuto   layoutMode = prefs.LayoutAuto
	layoutTable  layoutMode = prefs.LayoutTable
	layoutMobile layoutMode = prefs.LayoutMobile
)

type mortgageState struct {
	property listing.Property
	params   mortgage.Params
	result   mortgage.Result
	err      error
}

// New builds the app. The catalog is read from source when the program starts.
func New(ctx context.Context, cfg config.Config, source catalog.Source, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.UI.CurrencySymbol == "" {
		cfg.UI.CurrencySymbol = "₹"
	}
	return &App{
		ctx:     ctx,
		cfg:     cfg,
		log:     logger.Named("tui"),
		source:  source,
		notices: notify.NewCenter(cfg.UI.NoticeTimeout),
		keys:    defaultKeys(),
		layout:  layoutAuto,
	}
}

// WithPrefs restores the saved layout and remembers later layout changes.
func (a *App) WithPrefs(store *prefs.Store) *App {
	a.prefs = store
	p, err := store.Load()
	if err != nil {
		a.log.Warn("load prefs", zap.String("path", store.Path()), zap.Error(err))
		return a
	}
	a.layout = layoutMode(p.Layout)
	return a
}

func (a *App) savePrefs() tea.Cmd {
	if a.prefs == nil {
		return nil
	}
	store, p := a.prefs, prefs.Prefs{Layout: string(a.layout)}
	return func() tea.Msg {
		if err := store.Save(p); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadCatalog()
}

func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		c, err := catalog.Load(a.ctx, a.source)
		if err != nil {
			return errMsg{err}
		}
		return catalogMsg{catalog: c}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case catalogMsg:
		a.catalog = m.catalog
		a.store = compare.NewStore(a.catalog)
		a.store.SetCurrency(a.cfg.UI.CurrencySymbol)
		a.focus = 0
		a.log.Info("catalog loaded", zap.Int("properties", a.catalog.Len()))
	case errMsg:
		a.status = "error: " + m.Error()
		a.log.Error("command failed", zap.Error(m.error))
	case notify.ExpiredMsg:
		a.notices.Expire(m.ID)
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.store == nil {
			if key.Matches(m, a.keys.Quit) {
				return a, tea.Quit
			}
			return a, nil
		}
		switch a.modal {
		case modalPicker:
			return a, a.handlePickerKey(m)
		case modalMortgage:
			return a, a.handleMortgageKey(m)
		case modalDetails:
			return a, a.handleDetailsKey(m)
		}
		return a.handleMainKey(m)
	}
	return a, nil
}

func (a *App) handleMainKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Add):
		a.openPicker()
	case key.Matches(m, a.keys.Left):
		if a.focus > 0 {
			a.focus--
		}
	case key.Matches(m, a.keys.Right):
		if a.focus < a.maxFocus() {
			a.focus++
		}
	case key.Matches(m, a.keys.Remove):
		ids := a.store.IDs()
		if a.focus < len(ids) {
			a.remove(ids[a.focus])
		}
	case key.Matches(m, a.keys.Select):
		if a.focus >= a.store.Len() {
			a.openPicker()
		} else {
			a.store.SetCursor(a.focus)
		}
	case key.Matches(m, a.keys.Prev):
		a.store.Navigate(compare.Prev)
	case key.Matches(m, a.keys.Next):
		a.store.Navigate(compare.Next)
	case key.Matches(m, a.keys.Layout):
		if a.mobileLayout() {
			a.layout = layoutTable
		} else {
			a.layout = layoutMobile
		}
		return a, a.savePrefs()
	case key.Matches(m, a.keys.Mortgage):
		a.openMortgage()
	case key.Matches(m, a.keys.Details):
		a.openDetails()
	case key.Matches(m, a.keys.Clear):
		a.store.Clear()
		a.focus = 0
		a.status = "selection cleared"
	case key.Matches(m, a.keys.Help):
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) tea.Cmd {
	p := a.picker
	if p.filtering {
		switch m.Type {
		case tea.KeyEsc, tea.KeyEnter:
			p.filtering = false
		case tea.KeyUp:
			p.up()
		case tea.KeyDown:
			p.down()
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			if r := []rune(p.query); len(r) > 0 {
				p.setQuery(string(r[:len(r)-1]), a.catalog)
			}
		case tea.KeySpace:
			p.setQuery(p.query+" ", a.catalog)
		case tea.KeyRunes:
			p.setQuery(p.query+string(m.Runes), a.catalog)
		}
		return nil
	}
	switch {
	case key.Matches(m, a.keys.Close):
		a.modal = modalNone
		a.picker = nil
	case key.Matches(m, a.keys.Up):
		p.up()
	case key.Matches(m, a.keys.Down):
		p.down()
	case key.Matches(m, a.keys.Toggle):
		if prop, ok := p.current(); ok {
			return a.toggle(prop.ID)
		}
	case key.Matches(m, a.keys.Filter):
		p.filtering = true
	case m.Type == tea.KeyBackspace:
		if p.query != "" {
			p.setQuery("", a.catalog)
		}
	}
	return nil
}

func (a *App) handleMortgageKey(m tea.KeyMsg) tea.Cmd {
	st := &a.mortgage
	switch {
	case key.Matches(m, a.keys.Close), key.Matches(m, a.keys.Mortgage), key.Matches(m, a.keys.Quit):
		a.modal = modalNone
		return nil
	case key.Matches(m, a.keys.RateUp):
		st.params.InterestRate = math.Min(mortgage.MaxRate, st.params.InterestRate+0.25)
	case key.Matches(m, a.keys.RateDown):
		st.params.InterestRate = math.Max(mortgage.MinRate, st.params.InterestRate-0.25)
	case key.Matches(m, a.keys.TermUp):
		st.params.Years = min(mortgage.MaxYears, st.params.Years+1)
	case key.Matches(m, a.keys.TermDown):
		st.params.Years = max(mortgage.MinYears, st.params.Years-1)
	default:
		return nil
	}
	st.result, st.err = mortgage.Calculate(st.params)
	return nil
}

func (a *App) handleDetailsKey(m tea.KeyMsg) tea.Cmd {
	if key.Matches(m, a.keys.Close) || key.Matches(m, a.keys.Details) || key.Matches(m, a.keys.Quit) {
		a.modal = modalNone
		return nil
	}
	var cmd tea.Cmd
	a.details, cmd = a.details.Update(m)
	return cmd
}

// toggle routes a picker selection through the store. A full selection
// raises the capacity notice and leaves everything else as it was.
func (a *App) toggle(id int) tea.Cmd {
	res := a.store.Toggle(id)
	a.log.Debug("toggle", zap.Int("id", id), zap.Stringer("result", res), zap.Ints("selected", a.store.IDs()))
	switch res {
	case compare.Rejected:
		_, cmd := a.notices.Show(notify.Warning, capacityMessage)
		return cmd
	case compare.Added, compare.Removed:
		a.clampFocus()
	}
	return nil
}

func (a *App) remove(id int) {
	p, _ := a.catalog.ByID(id)
	if a.store.Remove(id) {
		a.status = "removed " + p.Title
		a.log.Debug("remove", zap.Int("id", id), zap.Ints("selected", a.store.IDs()))
	}
	a.clampFocus()
}

func (a *App) openPicker() {
	a.picker = newPicker(a.catalog)
	a.modal = modalPicker
	a.status = ""
}

// target is the focused card's property. In the paged view, or with the add
// slot focused, it is the card at the store's cursor.
func (a *App) target() (listing.Property, bool) {
	sel := a.store.Selected()
	if len(sel) == 0 {
		return listing.Property{}, false
	}
	if a.focus < len(sel) && !a.mobileLayout() {
		return sel[a.focus], true
	}
	return sel[a.store.Cursor()], true
}

func (a *App) openDetails() {
	prop, ok := a.target()
	if !ok {
		a.status = "add a property first"
		return
	}
	w := min(a.canvasWidth()-8, 80)
	h := 20
	if a.height > 0 {
		h = max(5, min(a.height-8, 30))
	}
	body, err := details.Render(prop, a.cfg.UI.CurrencySymbol, w-2, "dark")
	if err != nil {
		a.status = "error: " + err.Error()
		a.log.Error("render details", zap.Int("id", prop.ID), zap.Error(err))
		return
	}
	a.details = viewport.New(w, h)
	a.details.SetContent(body)
	a.modal = modalDetails
}

func (a *App) openMortgage() {
	prop, ok := a.target()
	if !ok {
		a.status = "add a property first"
		return
	}
	mc := a.cfg.Mortgage
	params := mortgage.ForProperty(prop.Price, mc.DownPaymentPct, mc.InterestRate, mc.TermYears)
	res, err := mortgage.Calculate(params)
	a.mortgage = mortgageState{property: prop, params: params, result: res, err: err}
	a.modal = modalMortgage
}

// maxFocus is the last focusable summary slot; the add slot follows the
// cards while there is room.
func (a *App) maxFocus() int {
	n := a.store.Len()
	if n < compare.MaxSelected {
		return n
	}
	return n - 1
}

func (a *App) clampFocus() {
	if a.focus > a.maxFocus() {
		a.focus = a.maxFocus()
	}
	if a.focus < 0 {
		a.focus = 0
	}
}

func (a *App) mobileLayout() bool {
	switch a.layout {
	case layoutMobile:
		return true
	case layoutTable:
		return false
	}
	return a.width > 0 && a.width < a.cfg.UI.MobileBreakpoint
}

func (a *App) View() string {
	if a.store == nil {
		out := titleStyle.Render("Compare Properties") + "\n"
		if a.status != "" {
			return out + a.status + "\n" + footerStyle.Render(helpLine(a.keys.Quit))
		}
		return out + subtleStyle.Render("Loading catalog...")
	}
	base := a.renderMain()
	if a.modal == modalNone {
		return base
	}
	modal := a.renderModal()
	if a.width == 0 || a.height == 0 {
		return base + "\n\n" + modal
	}
	return centerOverlay(base, modal, a.width, a.height)
}

// messages
type catalogMsg struct {
	catalog *catalog.Catalog
}

type errMsg struct{ error }
