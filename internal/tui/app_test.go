package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/propcompare/internal/catalog"
	"github.com/jask/propcompare/internal/compare"
	"github.com/jask/propcompare/internal/config"
	"github.com/jask/propcompare/internal/listing"
	"github.com/jask/propcompare/internal/notify"
	"github.com/jask/propcompare/internal/prefs"
)

type staticSource struct {
	props []listing.Property
	err   error
}

func (s staticSource) List(context.Context) ([]listing.Property, error) {
	return s.props, s.err
}

func fixtures() []listing.Property {
	return []listing.Property{
		{ID: 1, Title: "Luxury Apartment", Location: "Mumbai, Maharashtra", Price: 9500000, BHK: 3, Sqft: 1800, RERAApproved: true, Amenities: []string{"Gym", "Club House"}, YearBuilt: 2020, Furnishing: "Semi-Furnished", Parking: 2},
		{ID: 2, Title: "Modern Villa", Location: "Bangalore, Karnataka", Price: 12000000, BHK: 4, Sqft: 2500, RERAApproved: true, Amenities: []string{"Garden"}, YearBuilt: 2021, Furnishing: "Fully Furnished", Parking: 3},
		{ID: 3, Title: "Budget Flat", Location: "Pune, Maharashtra", Price: 4500000, BHK: 2, Sqft: 950, Amenities: []string{"Security"}, YearBuilt: 2018, Furnishing: "Unfurnished", Parking: 1},
		{ID: 4, Title: "Penthouse", Location: "Gurgaon, Haryana", Price: 25000000, BHK: 5, Sqft: 4200, RERAApproved: true, YearBuilt: 2022, Furnishing: "Fully Furnished", Parking: 4},
	}
}

func testConfig() config.Config {
	return config.Config{
		UI:       config.UIConfig{CurrencySymbol: "₹", MobileBreakpoint: 100},
		Mortgage: config.MortgageConfig{DownPaymentPct: 0.2, InterestRate: 8.5, TermYears: 20},
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

// loadedApp returns an app that has received its catalog and a wide window.
func loadedApp(t *testing.T) *App {
	t.Helper()
	a := New(context.Background(), testConfig(), staticSource{props: fixtures()}, nil)
	msg := a.Init()()
	_, ok := msg.(catalogMsg)
	require.True(t, ok, "expected catalogMsg, got %T", msg)
	a.Update(msg)
	a.Update(tea.WindowSizeMsg{Width: 200, Height: 60})
	return a
}

func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

// pick opens the picker, toggles the rows at the given positions and closes it.
func pick(a *App, rows ...int) tea.Cmd {
	send(a, runes("a"))
	var last tea.Cmd
	pos := 0
	for _, r := range rows {
		for ; pos < r; pos++ {
			send(a, downKey)
		}
		for ; pos > r; pos-- {
			send(a, tea.KeyMsg{Type: tea.KeyUp})
		}
		if cmd := send(a, enterKey); cmd != nil {
			last = cmd
		}
	}
	send(a, escKey)
	return last
}

func TestViewBeforeCatalogLoads(t *testing.T) {
	a := New(context.Background(), testConfig(), staticSource{}, nil)
	require.Contains(t, a.View(), "Loading catalog")
}

func TestCatalogErrorShowsStatus(t *testing.T) {
	a := New(context.Background(), testConfig(), staticSource{err: errors.New("disk gone")}, nil)
	msg := a.Init()()
	a.Update(msg)
	require.Nil(t, a.store)
	require.Contains(t, a.View(), "disk gone")
}

func TestEmptySelectionShowsPrompt(t *testing.T) {
	a := loadedApp(t)
	view := a.View()
	require.Contains(t, view, "Add Properties")
	require.NotContains(t, view, "Features")
}

func TestPickerAddsPropertiesToTable(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0, 1)

	require.Equal(t, []int{1, 2}, a.store.IDs())
	require.Equal(t, modalNone, a.modal)
	view := a.View()
	require.Contains(t, view, "Features")
	require.Contains(t, view, "₹95.00 L")
	require.Contains(t, view, "₹1.20 Cr")
	require.Contains(t, view, compare.AddCaption(2))
	require.Contains(t, view, "RERA Approved")
}

func TestPickerToggleRemovesSelected(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0, 1, 0)
	require.Equal(t, []int{2}, a.store.IDs())
}

func TestFourthSelectionRaisesCapacityNotice(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0, 1, 2)
	require.Equal(t, 3, a.store.Len())

	send(a, runes("a"))
	send(a, downKey, downKey, downKey)
	cmd := send(a, enterKey)
	require.NotNil(t, cmd)
	require.Equal(t, []int{1, 2, 3}, a.store.IDs())

	n, ok := a.notices.Current()
	require.True(t, ok)
	require.Equal(t, notify.Warning, n.Level)
	require.Equal(t, capacityMessage, n.Text)
	require.Contains(t, a.View(), "You can compare up to 3 properties")

	send(a, notify.ExpiredMsg{ID: n.ID + 1})
	_, ok = a.notices.Current()
	require.True(t, ok, "stale expiry must not clear a newer notice")

	send(a, notify.ExpiredMsg{ID: n.ID})
	_, ok = a.notices.Current()
	require.False(t, ok)
}

func TestFullSelectionHidesAddSlot(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0, 1, 2)
	require.NotContains(t, a.View(), "Add Property to Compare")
	require.Equal(t, 2, a.maxFocus())
}

func TestNarrowWindowUsesPagedView(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0, 1)
	send(a, tea.WindowSizeMsg{Width: 80, Height: 40})

	require.True(t, a.mobileLayout())
	require.Contains(t, a.View(), "1 of 2")

	send(a, runes("]"))
	require.Equal(t, 1, a.store.Cursor())
	require.Contains(t, a.View(), "2 of 2")

	send(a, runes("]"))
	require.Equal(t, 1, a.store.Cursor())

	send(a, runes("["), runes("["))
	require.Equal(t, 0, a.store.Cursor())
}

func TestLayoutToggleOverridesWidth(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0)
	require.False(t, a.mobileLayout())
	send(a, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, a.mobileLayout())
	send(a, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, a.mobileLayout())
}

func TestLayoutChoiceIsRemembered(t *testing.T) {
	store := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	a := loadedApp(t).WithPrefs(store)
	pick(a, 0)

	cmd := send(a, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	require.Nil(t, cmd())

	b := New(context.Background(), testConfig(), staticSource{props: fixtures()}, nil).WithPrefs(store)
	require.Equal(t, layoutMobile, b.layout)
}

func TestRemoveFocusedCardClampsCursor(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0, 1)
	send(a, tea.WindowSizeMsg{Width: 80, Height: 40})
	send(a, runes("]"))
	require.Equal(t, 1, a.store.Cursor())

	send(a, runes("l"), runes("x"))
	require.Equal(t, []int{1}, a.store.IDs())
	require.Equal(t, 0, a.store.Cursor())
	require.Contains(t, a.View(), "1 of 1")

	send(a, runes("h"), runes("x"))
	require.Equal(t, 0, a.store.Len())
	require.Contains(t, a.View(), "Add Properties")
}

func TestPickerFilterNarrowsRows(t *testing.T) {
	a := loadedApp(t)
	send(a, runes("a"), runes("/"))
	require.True(t, a.picker.filtering)
	send(a, runes("pune"))
	require.Len(t, a.picker.rows, 1)
	require.Equal(t, 3, a.picker.rows[0].ID)

	send(a, enterKey, enterKey)
	require.Equal(t, []int{3}, a.store.IDs())

	send(a, runes("/"), runes("zzzz"))
	require.Empty(t, a.picker.rows)
	require.Contains(t, a.View(), "no matching properties")
}

func TestMortgageModalRecalculates(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0)
	send(a, runes("m"))
	require.Equal(t, modalMortgage, a.modal)
	require.NoError(t, a.mortgage.err)
	before := a.mortgage.result.MonthlyPayment
	require.Positive(t, before)
	require.Contains(t, a.View(), "Monthly payment")

	send(a, runes("+"))
	require.InDelta(t, 8.75, a.mortgage.params.InterestRate, 1e-9)
	require.Greater(t, a.mortgage.result.MonthlyPayment, before)

	send(a, escKey)
	require.Equal(t, modalNone, a.modal)
}

func TestMortgageNeedsSelection(t *testing.T) {
	a := loadedApp(t)
	send(a, runes("m"))
	require.Equal(t, modalNone, a.modal)
	require.Equal(t, "add a property first", a.status)
}

func TestDetailsModalShowsFocusedProperty(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0, 1)
	send(a, runes("l"), runes("d"))
	require.Equal(t, modalDetails, a.modal)
	require.Contains(t, a.details.View(), "Modern Villa")

	send(a, runes("d"))
	require.Equal(t, modalNone, a.modal)
}

func TestSourceIsReadThroughCatalog(t *testing.T) {
	c, err := catalog.Load(context.Background(), staticSource{props: fixtures()})
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())
}

func TestDetailsNeedsSelection(t *testing.T) {
	a := loadedApp(t)
	send(a, runes("d"))
	require.Equal(t, modalNone, a.modal)
	require.Equal(t, "add a property first", a.status)
}

func TestLayoutToggleWithoutPrefsReturnsNoCommand(t *testing.T) {
	a := loadedApp(t)
	pick(a, 0)
	require.Nil(t, send(a, tea.KeyMsg{Type: tea.KeyTab}))
	require.Equal(t, layoutMobile, a.layout)
}

func TestConfiguredCurrencyReachesListingPrices(t *testing.T) {
	cfg := testConfig()
	cfg.UI.CurrencySymbol = "Rs "
	a := New(context.Background(), cfg, staticSource{props: fixtures()}, nil)
	a.Update(a.Init()())
	a.Update(tea.WindowSizeMsg{Width: 200, Height: 60})

	send(a, runes("a"))
	require.Contains(t, a.View(), "Rs 95.00 L")
	send(a, enterKey, escKey)

	view := a.View()
	require.Contains(t, view, "Rs 95.00 L")
	require.NotContains(t, view, "₹")

	send(a, runes("d"))
	require.Equal(t, modalDetails, a.modal)
	body := a.details.View()
	require.Contains(t, body, "5,278")
	require.NotContains(t, body, "₹")
}
