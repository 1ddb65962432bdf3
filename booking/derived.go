package booking

import "barbershop-backend/models"

// HasChildCut reports whether at least one selected service is a child
// service.
func (w *Wizard) HasChildCut() bool {
	for _, s := range w.appointment.Services {
		if s.IsChild {
			return true
		}
	}
	return false
}

// HasAdultCut reports whether at least one selected service is not a child
// service. Both flags can be true at once.
func (w *Wizard) HasAdultCut() bool {
	for _, s := range w.appointment.Services {
		if !s.IsChild {
			return true
		}
	}
	return false
}

func (w *Wizard) showChildStyles() bool {
	return w.HasChildCut() && w.opts.childServicesAllowed()
}

func (w *Wizard) ServicesTotal() int {
	total := 0
	for _, s := range w.appointment.Services {
		total += s.Price
	}
	return total
}

func (w *Wizard) ProductsTotal() int {
	total := 0
	for _, p := range w.appointment.Products {
		total += p.Price * w.productLines[p.ID].quantity()
	}
	return total
}

func (w *Wizard) Total() int {
	return w.ServicesTotal() + w.ProductsTotal()
}

// VisibleServices is the services list as shown on step one.
func (w *Wizard) VisibleServices() []models.Service {
	var out []models.Service
	for _, s := range w.services {
		if w.serviceVisible(s) {
			out = append(out, s)
		}
	}
	return out
}

// VisibleProducts is the products list as shown on step two. Adult-only
// products are left out entirely while a child service is selected.
func (w *Wizard) VisibleProducts() []models.Product {
	if !w.opts.ProductsEnabled {
		return nil
	}
	var out []models.Product
	for _, p := range w.products {
		if w.productVisible(p) {
			out = append(out, p)
		}
	}
	return out
}

// Cuts is the list offered by both style pickers.
func (w *Wizard) Cuts() []models.CutStyle {
	return append([]models.CutStyle(nil), w.cuts...)
}

type ServiceView struct {
	models.Service
	Selected bool   `json:"selected"`
	Option   string `json:"selectedOption,omitempty"`
}

type ProductView struct {
	models.Product
	Selected bool   `json:"selected"`
	Quantity int    `json:"quantity"`
	Option   string `json:"selectedOption,omitempty"`
	Subtotal int    `json:"subtotal"`
}

type StyleView struct {
	DecideOnSite bool   `json:"decideOnSite"`
	CutID        string `json:"cutId,omitempty"`
	Option       string `json:"option,omitempty"`
	Label        string `json:"label"`
}

// View is everything a screen needs to render the current state. It is
// rebuilt from the selections on every call.
type View struct {
	Step     Step   `json:"step"`
	StepName string `json:"stepName"`
	Loading  bool   `json:"loading"`

	Services []ServiceView     `json:"services"`
	Cuts     []models.CutStyle `json:"cuts"`
	Products []ProductView     `json:"products"`

	ProductsEnabled bool       `json:"productsEnabled"`
	HasAdultCut     bool       `json:"hasAdultCut"`
	HasChildCut     bool       `json:"hasChildCut"`
	AdultStyle      *StyleView `json:"adultStyle,omitempty"`
	ChildStyle      *StyleView `json:"childStyle,omitempty"`

	DayOptions   []DayType `json:"dayOptions"`
	DayType      DayType   `json:"dayType,omitempty"`
	SpecificDate string    `json:"specificDate,omitempty"`
	TimeSlots    []string  `json:"timeSlots"`
	Time         string    `json:"time,omitempty"`
	ClientName   string    `json:"clientName"`
	ChildName    string    `json:"childName"`

	ServicesTotal int `json:"servicesTotal"`
	ProductsTotal int `json:"productsTotal"`
	Total         int `json:"total"`

	Errors FieldErrors `json:"errors"`
}

func (w *Wizard) Snapshot() View {
	v := View{
		Step:            w.step,
		StepName:        w.step.String(),
		Loading:         len(w.services) == 0,
		Cuts:            w.Cuts(),
		ProductsEnabled: w.opts.ProductsEnabled,
		HasAdultCut:     w.HasAdultCut(),
		HasChildCut:     w.HasChildCut(),
		DayOptions:      DayOptions,
		DayType:         w.appointment.DayType,
		SpecificDate:    w.appointment.SpecificDate,
		TimeSlots:       TimeSlots,
		Time:            w.appointment.Time,
		ClientName:      w.appointment.ClientName,
		ChildName:       w.childName,
		ServicesTotal:   w.ServicesTotal(),
		ProductsTotal:   w.ProductsTotal(),
		Total:           w.Total(),
		Errors:          w.errs,
	}
	for _, s := range w.VisibleServices() {
		_, selected := w.selectedService(s.ID)
		v.Services = append(v.Services, ServiceView{Service: s, Selected: selected, Option: w.serviceOptions[s.ID]})
	}
	for _, p := range w.VisibleProducts() {
		pv := ProductView{Product: p, Quantity: 1}
		if _, ok := w.selectedProduct(p.ID); ok {
			line := w.productLines[p.ID]
			pv.Selected = true
			pv.Quantity = line.quantity()
			pv.Option = line.Option
			pv.Subtotal = p.Price * pv.Quantity
		}
		v.Products = append(v.Products, pv)
	}
	if v.HasAdultCut {
		sv := w.styleView(w.adult)
		v.AdultStyle = &sv
	}
	if w.showChildStyles() {
		sv := w.styleView(w.child)
		v.ChildStyle = &sv
	}
	return v
}

func (w *Wizard) styleView(sel styleSelection) StyleView {
	sv := StyleView{DecideOnSite: sel.Choice.IsDecideOnSite(), Label: w.styleLabel(sel)}
	if !sv.DecideOnSite {
		sv.CutID = sel.Choice.CutID
		sv.Option = sel.Option
	}
	return sv
}
