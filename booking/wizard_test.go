package booking

import (
	"errors"
	"math"
	"testing"
	"time"

	"barbershop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		Services: []models.Service{
			{ID: "1", Name: "Corte Clássico", Price: 50, Active: true},
			{ID: "2", Name: "Barba Real", Price: 35, Active: true, Options: []string{"Navalha", "Máquina"}},
			{ID: "3", Name: "Corte Infantil", Price: 40, Active: true, IsChild: true},
			{ID: "4", Name: "Química", Price: 90, Active: true, NotForChildren: true},
			{ID: "5", Name: "", Price: 0, Active: true},
			{ID: "6", Name: "Antigo", Price: 10, Active: false},
		},
		Cuts: []models.CutStyle{
			{ID: "c1", Name: "Pompadour", Active: true, Options: []string{"Alto", "Baixo"}},
			{ID: "c2", Name: "Militar", Active: true},
			{ID: "c3", Name: "", Active: false},
		},
		Products: []models.Product{
			{ID: "p1", Name: "Pomada Matte", Price: 45, Active: true, Options: []string{"100g", "200g"}},
			{ID: "p2", Name: "Óleo para Barba", Price: 35, Active: true, NotForChildren: true},
			{ID: "p3", Name: "", Active: false},
		},
	}
}

func fixedClock() time.Time {
	return time.Date(2026, time.March, 7, 15, 4, 0, 0, time.UTC)
}

func newTestWizard(productsEnabled bool) *Wizard {
	return New(testCatalog(), Options{
		BusinessName:    "Fio & Navalha",
		Phone:           "+55 (11) 94136-1777",
		ProductsEnabled: productsEnabled,
		Clock:           fixedClock,
	}, nil)
}

func TestNewFiltersInactiveAndBlankRows(t *testing.T) {
	w := newTestWizard(true)

	ids := func(services []models.Service) []string {
		var out []string
		for _, s := range services {
			out = append(out, s.ID)
		}
		return out
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(w.VisibleServices()))
	assert.Len(t, w.Cuts(), 2)
	assert.Len(t, w.VisibleProducts(), 2)
	assert.Equal(t, StepServices, w.Step())
}

func TestToggleServiceUpdatesTotal(t *testing.T) {
	w := newTestWizard(false)

	require.NoError(t, w.ToggleService("1"))
	assert.Equal(t, 50, w.Total())

	require.NoError(t, w.ToggleService("2"))
	assert.Equal(t, 85, w.Total())

	require.NoError(t, w.ToggleService("1"))
	assert.Equal(t, 35, w.Total())
	assert.Len(t, w.Appointment().Services, 1)
}

func TestToggleServiceClearsOption(t *testing.T) {
	w := newTestWizard(false)
	require.NoError(t, w.ToggleService("2"))
	require.NoError(t, w.SelectServiceOption("2", "Navalha"))
	assert.Equal(t, "Navalha", w.serviceOptions["2"])

	require.NoError(t, w.ToggleService("2"))
	require.NoError(t, w.ToggleService("2"))
	_, ok := w.serviceOptions["2"]
	assert.False(t, ok)
}

func TestSelectServiceOptionErrors(t *testing.T) {
	w := newTestWizard(false)
	assert.ErrorIs(t, w.SelectServiceOption("2", "Navalha"), ErrServiceNotSelected)

	require.NoError(t, w.ToggleService("2"))
	assert.ErrorIs(t, w.SelectServiceOption("2", "Tesoura"), ErrUnknownOption)
	assert.ErrorIs(t, w.ToggleService("99"), ErrUnknownService)
	assert.ErrorIs(t, w.ToggleService("5"), ErrUnknownService)
}

func TestChildAndAdultFlags(t *testing.T) {
	tests := []struct {
		name      string
		selected  []string
		wantAdult bool
		wantChild bool
	}{
		{"nothing selected", nil, false, false},
		{"adult only", []string{"1"}, true, false},
		{"child only", []string{"3"}, false, true},
		{"both", []string{"1", "3"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWizard(false)
			for _, id := range tt.selected {
				require.NoError(t, w.ToggleService(id))
			}
			assert.Equal(t, tt.wantAdult, w.HasAdultCut())
			assert.Equal(t, tt.wantChild, w.HasChildCut())

			v := w.Snapshot()
			assert.Equal(t, tt.wantAdult, v.AdultStyle != nil)
			assert.Equal(t, tt.wantChild, v.ChildStyle != nil)
		})
	}
}

func TestChildServiceHidesAdultOnlyItems(t *testing.T) {
	w := newTestWizard(true)
	require.NoError(t, w.ToggleService("3"))

	for _, s := range w.VisibleServices() {
		assert.NotEqual(t, "4", s.ID)
	}
	assert.ErrorIs(t, w.ToggleService("4"), ErrServiceUnavailable)

	require.NoError(t, w.Continue())
	products := w.VisibleProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.ErrorIs(t, w.ToggleProduct("p2"), ErrProductUnavailable)
}

func TestAddingChildServiceDropsAdultOnlySelections(t *testing.T) {
	w := newTestWizard(true)
	require.NoError(t, w.ToggleService("4"))
	require.NoError(t, w.Continue())
	require.NoError(t, w.ToggleProduct("p2"))
	require.NoError(t, w.Back())

	require.NoError(t, w.ToggleService("3"))

	a := w.Appointment()
	require.Len(t, a.Services, 1)
	assert.Equal(t, "3", a.Services[0].ID)
	assert.Empty(t, a.Products)
	assert.Equal(t, 40, w.Total())
}

func TestProductQuantityClamps(t *testing.T) {
	w := newTestWizard(true)
	require.NoError(t, w.ToggleService("1"))
	require.NoError(t, w.Continue())
	require.Equal(t, StepProducts, w.Step())

	require.NoError(t, w.ToggleProduct("p1"))
	assert.Equal(t, 95, w.Total())

	require.NoError(t, w.ChangeProductQuantity("p1", 1))
	assert.Equal(t, 90, w.ProductsTotal())

	require.NoError(t, w.ChangeProductQuantity("p1", 200))
	assert.Equal(t, 99, w.productLines["p1"].Quantity)
	assert.Equal(t, 45*99, w.ProductsTotal())

	require.NoError(t, w.ChangeProductQuantity("p1", -98))
	assert.Equal(t, 1, w.productLines["p1"].Quantity)

	require.NoError(t, w.ChangeProductQuantity("p1", -1))
	assert.Empty(t, w.Appointment().Products)
	_, ok := w.productLines["p1"]
	assert.False(t, ok)
	assert.Equal(t, 50, w.Total())

	assert.ErrorIs(t, w.ChangeProductQuantity("p1", 1), ErrProductNotSelected)

	require.NoError(t, w.ToggleProduct("p1"))
	require.NoError(t, w.ChangeProductQuantity("p1", math.MaxInt))
	require.Len(t, w.Appointment().Products, 1)
	assert.Equal(t, 99, w.productLines["p1"].Quantity)

	require.NoError(t, w.ChangeProductQuantity("p1", math.MinInt))
	assert.Empty(t, w.Appointment().Products)
}

func TestToggleProductClearsLine(t *testing.T) {
	w := newTestWizard(true)
	require.NoError(t, w.ToggleService("1"))
	require.NoError(t, w.Continue())

	require.NoError(t, w.ToggleProduct("p1"))
	require.NoError(t, w.SelectProductOption("p1", "200g"))
	require.NoError(t, w.ChangeProductQuantity("p1", 2))
	require.NoError(t, w.ToggleProduct("p1"))
	require.NoError(t, w.ToggleProduct("p1"))

	assert.Equal(t, productLine{Quantity: 1}, w.productLines["p1"])
}

func TestProductAndServiceOptionsDoNotCollide(t *testing.T) {
	catalog := testCatalog()
	catalog.Products = append(catalog.Products, models.Product{ID: "2", Name: "Cera", Price: 20, Active: true, Options: []string{"Navalha"}})
	w := New(catalog, Options{ProductsEnabled: true}, nil)

	require.NoError(t, w.ToggleService("2"))
	require.NoError(t, w.SelectServiceOption("2", "Máquina"))
	require.NoError(t, w.Continue())
	require.NoError(t, w.ToggleProduct("2"))
	require.NoError(t, w.SelectProductOption("2", "Navalha"))
	require.NoError(t, w.ToggleProduct("2"))

	assert.Equal(t, "Máquina", w.serviceOptions["2"])
}

func TestStyleSelectionResetsOption(t *testing.T) {
	w := newTestWizard(false)
	require.NoError(t, w.ToggleService("1"))

	assert.True(t, w.adult.Choice.IsDecideOnSite())
	assert.ErrorIs(t, w.SelectAdultStyleOption("Alto"), ErrNoStyleChosen)

	require.NoError(t, w.SelectAdultStyle(Chosen("c1")))
	require.NoError(t, w.SelectAdultStyleOption("Alto"))
	assert.Equal(t, "Alto", w.adult.Option)

	require.NoError(t, w.SelectAdultStyle(Chosen("c1")))
	assert.Equal(t, "", w.adult.Option)

	require.NoError(t, w.SelectAdultStyleOption("Baixo"))
	require.NoError(t, w.SelectAdultStyle(DecideOnSite()))
	assert.Equal(t, "", w.adult.Option)

	assert.ErrorIs(t, w.SelectAdultStyle(Chosen("c3")), ErrUnknownCut)
	assert.ErrorIs(t, w.SelectChildStyle(Chosen("c2")), ErrStylePickerHidden)
}

func TestChildStyleIndependentOfAdult(t *testing.T) {
	w := newTestWizard(false)
	require.NoError(t, w.ToggleService("1"))
	require.NoError(t, w.ToggleService("3"))

	require.NoError(t, w.SelectAdultStyle(Chosen("c1")))
	require.NoError(t, w.SelectAdultStyleOption("Alto"))
	require.NoError(t, w.SelectChildStyle(Chosen("c2")))

	assert.Equal(t, "c1", w.adult.Choice.CutID)
	assert.Equal(t, "Alto", w.adult.Option)
	assert.Equal(t, "c2", w.child.Choice.CutID)
	assert.Equal(t, "", w.child.Option)
}

func TestInitialSelectionPresetsAdultStyle(t *testing.T) {
	w := New(testCatalog(), Options{}, &Initial{ID: "c2", Name: "Militar", TechnicalName: "Buzz Cut"})
	require.NoError(t, w.ToggleService("1"))

	v := w.Snapshot()
	require.NotNil(t, v.AdultStyle)
	assert.Equal(t, "c2", v.AdultStyle.CutID)
	assert.Equal(t, "Militar", v.AdultStyle.Label)
	assert.True(t, w.child.Choice.IsDecideOnSite())
}

func TestInitialSelectionUnknownCutRendersDecideOnSite(t *testing.T) {
	w := New(testCatalog(), Options{}, &Initial{ID: "gone"})
	require.NoError(t, w.ToggleService("1"))

	assert.Equal(t, decideOnSiteLabel, w.Snapshot().AdultStyle.Label)
}

func TestContinueRequiresService(t *testing.T) {
	w := newTestWizard(true)
	err := w.Continue()
	assert.ErrorIs(t, err, ErrNoServiceSelected)
	assert.Equal(t, StepServices, w.Step())
}

func TestStepTransitions(t *testing.T) {
	t.Run("products enabled", func(t *testing.T) {
		w := newTestWizard(true)
		require.NoError(t, w.ToggleService("1"))
		require.NoError(t, w.Continue())
		assert.Equal(t, StepProducts, w.Step())
		require.NoError(t, w.SkipProducts())
		assert.Equal(t, StepDay, w.Step())
		require.NoError(t, w.Back())
		assert.Equal(t, StepProducts, w.Step())
		require.NoError(t, w.Back())
		assert.Equal(t, StepServices, w.Step())
		assert.ErrorIs(t, w.Back(), ErrWrongStep)
	})

	t.Run("products disabled", func(t *testing.T) {
		w := newTestWizard(false)
		require.NoError(t, w.ToggleService("1"))
		require.NoError(t, w.Continue())
		assert.Equal(t, StepDay, w.Step())
		assert.ErrorIs(t, w.SkipProducts(), ErrWrongStep)
		assert.Empty(t, w.VisibleProducts())
		require.NoError(t, w.Back())
		assert.Equal(t, StepServices, w.Step())
	})

	t.Run("time and contact go back one step", func(t *testing.T) {
		w := newTestWizard(false)
		require.NoError(t, w.ToggleService("1"))
		require.NoError(t, w.Continue())
		require.NoError(t, w.ChooseDay(DayTomorrow))
		require.NoError(t, w.ChooseTime("14:00"))
		assert.Equal(t, StepContact, w.Step())
		require.NoError(t, w.Back())
		assert.Equal(t, StepTime, w.Step())
		require.NoError(t, w.Back())
		assert.Equal(t, StepDay, w.Step())
	})
}

func TestChooseDay(t *testing.T) {
	t.Run("today fills date", func(t *testing.T) {
		w := newTestWizard(false)
		require.NoError(t, w.ToggleService("1"))
		require.NoError(t, w.Continue())
		require.NoError(t, w.ChooseDay(DayToday))
		assert.Equal(t, StepTime, w.Step())
		assert.Equal(t, "07/03/2026", w.Appointment().SpecificDate)
	})

	t.Run("other day waits for a date", func(t *testing.T) {
		w := newTestWizard(false)
		require.NoError(t, w.ToggleService("1"))
		require.NoError(t, w.Continue())
		require.NoError(t, w.ChooseDay(DayOther))
		assert.Equal(t, StepDay, w.Step())
		assert.ErrorIs(t, w.ChooseDate("21/03/2026"), ErrInvalidDate)
		require.NoError(t, w.ChooseDate("2026-03-21"))
		assert.Equal(t, StepTime, w.Step())
		assert.Equal(t, "21/03/2026", w.Appointment().SpecificDate)
	})

	t.Run("date needs other day", func(t *testing.T) {
		w := newTestWizard(false)
		require.NoError(t, w.ToggleService("1"))
		require.NoError(t, w.Continue())
		assert.ErrorIs(t, w.ChooseDate("2026-03-21"), ErrDateNotExpected)
		assert.ErrorIs(t, w.ChooseDay(DayType("Ontem")), ErrUnknownDay)
	})

	t.Run("tomorrow clears an earlier date", func(t *testing.T) {
		w := newTestWizard(false)
		require.NoError(t, w.ToggleService("1"))
		require.NoError(t, w.Continue())
		require.NoError(t, w.ChooseDay(DayToday))
		require.NoError(t, w.Back())
		require.NoError(t, w.ChooseDay(DayTomorrow))
		assert.Equal(t, "", w.Appointment().SpecificDate)
	})
}

func TestChooseTimeRejectsUnknownSlot(t *testing.T) {
	w := newTestWizard(false)
	require.NoError(t, w.ToggleService("1"))
	require.NoError(t, w.Continue())
	require.NoError(t, w.ChooseDay(DayTomorrow))

	assert.ErrorIs(t, w.ChooseTime("12:00"), ErrUnknownTimeSlot)
	assert.Equal(t, StepTime, w.Step())
	assert.Len(t, TimeSlots, 10)
}

func walkToContact(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.Continue())
	if w.Step() == StepProducts {
		require.NoError(t, w.SkipProducts())
	}
	require.NoError(t, w.ChooseDay(DayToday))
	require.NoError(t, w.ChooseTime("10:00"))
}

func TestConfirmValidation(t *testing.T) {
	tests := []struct {
		name       string
		services   []string
		clientName string
		childName  string
		want       FieldErrors
	}{
		{"blank client name", []string{"1"}, "   ", "", FieldErrors{ClientName: true}},
		{"child name required", []string{"3"}, "João", "", FieldErrors{ChildName: true}},
		{"both missing", []string{"1", "3"}, "", " ", FieldErrors{ClientName: true, ChildName: true}},
		{"child name ignored without child service", []string{"1"}, "João", "", FieldErrors{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWizard(false)
			for _, id := range tt.services {
				require.NoError(t, w.ToggleService(id))
			}
			walkToContact(t, w)
			require.NoError(t, w.SetClientName(tt.clientName))
			require.NoError(t, w.SetChildName(tt.childName))

			d, err := w.Confirm()
			if tt.want == (FieldErrors{}) {
				require.NoError(t, err)
				assert.NotEmpty(t, d.URL)
				assert.True(t, d.ClearHandoff)
				assert.True(t, w.Closed())
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, verr.Fields)
			assert.Equal(t, tt.want, w.Errors())
			assert.Empty(t, d.URL)
			assert.Equal(t, StepContact, w.Step())
			assert.False(t, w.Closed())
		})
	}
}

func TestConfirmRecomputesFlags(t *testing.T) {
	w := newTestWizard(false)
	require.NoError(t, w.ToggleService("3"))
	walkToContact(t, w)

	_, err := w.Confirm()
	require.Error(t, err)
	assert.Equal(t, FieldErrors{ClientName: true, ChildName: true}, w.Errors())

	require.NoError(t, w.SetClientName("Ana"))
	assert.False(t, w.Errors().ClientName)
	assert.True(t, w.Errors().ChildName)

	_, err = w.Confirm()
	require.Error(t, err)
	assert.Equal(t, FieldErrors{ChildName: true}, w.Errors())

	require.NoError(t, w.SetChildName("Pedro"))
	_, err = w.Confirm()
	require.NoError(t, err)

	assert.ErrorIs(t, w.Back(), ErrClosed)
	_, err = w.Confirm()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestActionsOnWrongStep(t *testing.T) {
	w := newTestWizard(true)
	assert.ErrorIs(t, w.ToggleProduct("p1"), ErrWrongStep)
	assert.ErrorIs(t, w.ChooseDay(DayToday), ErrWrongStep)
	assert.ErrorIs(t, w.ChooseTime("10:00"), ErrWrongStep)
	assert.ErrorIs(t, w.SetClientName("x"), ErrWrongStep)
	_, err := w.Confirm()
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestEnforcedChildCutToggle(t *testing.T) {
	opts := Options{ChildCutEnabled: false}
	w := New(testCatalog(), opts, nil)
	require.NoError(t, w.ToggleService("3"), "toggle is ignored unless enforced")

	opts.EnforceChildCutToggle = true
	w = New(testCatalog(), opts, nil)
	assert.ErrorIs(t, w.ToggleService("3"), ErrServiceUnavailable)
	for _, s := range w.VisibleServices() {
		assert.False(t, s.IsChild)
	}
}

func TestSnapshotReflectsSelections(t *testing.T) {
	w := newTestWizard(true)
	assert.False(t, w.Snapshot().Loading)

	require.NoError(t, w.ToggleService("2"))
	require.NoError(t, w.SelectServiceOption("2", "Navalha"))
	require.NoError(t, w.Continue())
	require.NoError(t, w.ToggleProduct("p1"))
	require.NoError(t, w.ChangeProductQuantity("p1", 2))

	v := w.Snapshot()
	assert.Equal(t, StepProducts, v.Step)
	assert.Equal(t, "products", v.StepName)
	assert.Equal(t, 35, v.ServicesTotal)
	assert.Equal(t, 135, v.ProductsTotal)
	assert.Equal(t, 170, v.Total)

	for _, s := range v.Services {
		if s.ID == "2" {
			assert.True(t, s.Selected)
			assert.Equal(t, "Navalha", s.Option)
		}
	}
	for _, p := range v.Products {
		if p.ID == "p1" {
			assert.True(t, p.Selected)
			assert.Equal(t, 3, p.Quantity)
			assert.Equal(t, 135, p.Subtotal)
		}
	}

	empty := New(Catalog{}, Options{}, nil)
	assert.True(t, empty.Snapshot().Loading)
}
