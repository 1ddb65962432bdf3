// Package booking implements the visitor booking flow: a single-session
// state machine that walks through service and style selection, optional
// products, day, time and contact details, then renders the outbound
// booking message.
package booking

import (
	"time"

	"barbershop-backend/models"
)

// Step identifies a screen of the booking flow.
type Step int

const (
	StepServices Step = iota + 1
	StepProducts
	StepDay
	StepTime
	StepContact
)

func (s Step) String() string {
	switch s {
	case StepServices:
		return "services"
	case StepProducts:
		return "products"
	case StepDay:
		return "day"
	case StepTime:
		return "time"
	case StepContact:
		return "contact"
	default:
		return "unknown"
	}
}

// DayType is the relative day a visitor picks on the day step.
type DayType string

const (
	DayToday    DayType = "Hoje"
	DayTomorrow DayType = "Amanhã"
	DayOther    DayType = "Outro dia"
)

// DayOptions lists the day choices in display order.
var DayOptions = []DayType{DayToday, DayTomorrow, DayOther}

// TimeSlots are the bookable start times. There is no 12:00 slot (lunch).
var TimeSlots = []string{
	"09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

const (
	maxProductQuantity = 99
	displayDateLayout  = "02/01/2006"
	isoDateLayout      = "2006-01-02"
)

// Catalog is the raw collections fetched from the data gateway, including
// inactive and blank placeholder rows.
type Catalog struct {
	Services []models.Service
	Cuts     []models.CutStyle
	Products []models.Product
}

// Options is the shop configuration the wizard is built with. It is never
// mutated; a settings change means building a new wizard.
type Options struct {
	BusinessName    string
	Phone           string
	ProductsEnabled bool
	ChildCutEnabled bool
	// EnforceChildCutToggle makes ChildCutEnabled=false hide child services
	// and the child style picker. Off by default: the toggle is informational.
	EnforceChildCutToggle bool
	MessagingEndpoint     string
	Clock                 func() time.Time
}

func (o Options) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

func (o Options) childServicesAllowed() bool {
	return !o.EnforceChildCutToggle || o.ChildCutEnabled
}

// Initial is a style the visitor picked on a previous screen. It presets the
// adult style selection.
type Initial struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TechnicalName string `json:"technicalName"`
}

// Appointment is the in-progress booking. It is never persisted.
type Appointment struct {
	Services     []models.Service
	Products     []models.Product
	DayType      DayType
	SpecificDate string
	Time         string
	ClientName   string
}

type productLine struct {
	Quantity int
	Option   string
}

type styleSelection struct {
	Choice StyleChoice
	Option string
}

// FieldErrors flags the contact fields that failed the last confirm attempt.
type FieldErrors struct {
	ClientName bool `json:"clientName"`
	ChildName  bool `json:"childName"`
}

// Wizard holds one visitor's booking flow. It is not safe for concurrent use;
// callers serialize access per session.
type Wizard struct {
	opts Options

	services []models.Service
	cuts     []models.CutStyle
	products []models.Product

	step        Step
	appointment Appointment

	serviceOptions map[string]string
	productLines   map[string]productLine
	adult          styleSelection
	child          styleSelection
	childName      string
	errs           FieldErrors
	closed         bool
}

// New builds a wizard on step one. Catalog rows that are inactive or have a
// blank name are dropped. initial may be nil.
func New(catalog Catalog, opts Options, initial *Initial) *Wizard {
	w := &Wizard{
		opts:           opts,
		step:           StepServices,
		serviceOptions: make(map[string]string),
		productLines:   make(map[string]productLine),
		adult:          styleSelection{Choice: DecideOnSite()},
		child:          styleSelection{Choice: DecideOnSite()},
	}
	for _, s := range catalog.Services {
		if s.Listed() {
			w.services = append(w.services, s)
		}
	}
	for _, c := range catalog.Cuts {
		if c.Listed() {
			w.cuts = append(w.cuts, c)
		}
	}
	for _, p := range catalog.Products {
		if p.Listed() {
			w.products = append(w.products, p)
		}
	}
	if initial != nil && initial.ID != "" {
		w.adult.Choice = Chosen(initial.ID)
	}
	return w
}

func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) Closed() bool { return w.closed }

// Appointment returns a copy of the in-progress booking.
func (w *Wizard) Appointment() Appointment {
	a := w.appointment
	a.Services = append([]models.Service(nil), a.Services...)
	a.Products = append([]models.Product(nil), a.Products...)
	return a
}

func (w *Wizard) Errors() FieldErrors { return w.errs }

func (w *Wizard) guard(step Step) error {
	if w.closed {
		return ErrClosed
	}
	if w.step != step {
		return ErrWrongStep
	}
	return nil
}

// Continue leaves the services step (towards products, or straight to the
// day step when products are disabled) or the products step.
func (w *Wizard) Continue() error {
	if w.closed {
		return ErrClosed
	}
	switch w.step {
	case StepServices:
		if len(w.appointment.Services) == 0 {
			return ErrNoServiceSelected
		}
		if w.opts.ProductsEnabled {
			w.step = StepProducts
		} else {
			w.step = StepDay
		}
		return nil
	case StepProducts:
		w.step = StepDay
		return nil
	default:
		return ErrWrongStep
	}
}

// SkipProducts moves on from the products step. Products already picked stay
// in the booking.
func (w *Wizard) SkipProducts() error {
	if err := w.guard(StepProducts); err != nil {
		return err
	}
	w.step = StepDay
	return nil
}

func (w *Wizard) Back() error {
	if w.closed {
		return ErrClosed
	}
	switch w.step {
	case StepProducts:
		w.step = StepServices
	case StepDay:
		if w.opts.ProductsEnabled {
			w.step = StepProducts
		} else {
			w.step = StepServices
		}
	case StepTime:
		w.step = StepDay
	case StepContact:
		w.step = StepTime
	default:
		return ErrWrongStep
	}
	return nil
}

// ChooseDay records the relative day. Today fills in the current date;
// today and tomorrow advance to the time step at once, while "other day"
// waits for ChooseDate.
func (w *Wizard) ChooseDay(day DayType) error {
	if err := w.guard(StepDay); err != nil {
		return err
	}
	switch day {
	case DayToday:
		w.appointment.SpecificDate = w.opts.now().Format(displayDateLayout)
		w.step = StepTime
	case DayTomorrow:
		w.appointment.SpecificDate = ""
		w.step = StepTime
	case DayOther:
		w.appointment.SpecificDate = ""
	default:
		return ErrUnknownDay
	}
	w.appointment.DayType = day
	return nil
}

// ChooseDate takes a calendar date as yyyy-mm-dd after "other day" was
// picked, stores it as dd/mm/yyyy and advances to the time step.
func (w *Wizard) ChooseDate(iso string) error {
	if err := w.guard(StepDay); err != nil {
		return err
	}
	if w.appointment.DayType != DayOther {
		return ErrDateNotExpected
	}
	d, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return ErrInvalidDate
	}
	w.appointment.SpecificDate = d.Format(displayDateLayout)
	w.step = StepTime
	return nil
}

func (w *Wizard) ChooseTime(slot string) error {
	if err := w.guard(StepTime); err != nil {
		return err
	}
	for _, s := range TimeSlots {
		if s == slot {
			w.appointment.Time = slot
			w.step = StepContact
			return nil
		}
	}
	return ErrUnknownTimeSlot
}

// SetClientName updates the client name and clears its error flag.
func (w *Wizard) SetClientName(name string) error {
	if err := w.guard(StepContact); err != nil {
		return err
	}
	w.appointment.ClientName = name
	w.errs.ClientName = false
	return nil
}

func (w *Wizard) SetChildName(name string) error {
	if err := w.guard(StepContact); err != nil {
		return err
	}
	w.childName = name
	w.errs.ChildName = false
	return nil
}

// Dispatch is the outcome of a successful confirm: the composed message and
// the deep link that hands it to the messaging app.
type Dispatch struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	// ClearHandoff tells the caller to drop the pre-selected style record.
	ClearHandoff bool `json:"-"`
}

// Confirm validates the contact fields and, when they pass, composes the
// message and closes the wizard. Both field flags are recomputed on every
// call.
func (w *Wizard) Confirm() (Dispatch, error) {
	if err := w.guard(StepContact); err != nil {
		return Dispatch{}, err
	}
	w.errs = w.validate()
	if w.errs.ClientName || w.errs.ChildName {
		return Dispatch{}, &ValidationError{Fields: w.errs}
	}
	msg := w.Message()
	w.closed = true
	return Dispatch{
		Message:      msg,
		URL:          DeepLink(w.opts.MessagingEndpoint, w.opts.Phone, msg),
		ClearHandoff: true,
	}, nil
}
