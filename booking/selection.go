package booking

import (
	"strings"

	"barbershop-backend/models"
)

// ToggleService adds or removes a service on the services step. Removing a
// service drops its sub-option. Adding the first child service also drops
// adult-only services and products already picked.
func (w *Wizard) ToggleService(id string) error {
	if err := w.guard(StepServices); err != nil {
		return err
	}
	for i, s := range w.appointment.Services {
		if s.ID == id {
			w.appointment.Services = append(w.appointment.Services[:i:i], w.appointment.Services[i+1:]...)
			delete(w.serviceOptions, id)
			return nil
		}
	}
	svc, ok := w.findService(id)
	if !ok {
		return ErrUnknownService
	}
	if !w.serviceVisible(svc) {
		return ErrServiceUnavailable
	}
	w.appointment.Services = append(w.appointment.Services, svc)
	if svc.IsChild {
		w.dropAdultOnly()
	}
	return nil
}

func (w *Wizard) SelectServiceOption(id, option string) error {
	if err := w.guard(StepServices); err != nil {
		return err
	}
	svc, ok := w.selectedService(id)
	if !ok {
		return ErrServiceNotSelected
	}
	if !hasOption(svc.Options, option) {
		return ErrUnknownOption
	}
	w.serviceOptions[id] = option
	return nil
}

// ToggleProduct adds a product with quantity 1 or removes it together with
// its quantity and sub-option.
func (w *Wizard) ToggleProduct(id string) error {
	if err := w.guard(StepProducts); err != nil {
		return err
	}
	if w.removeProduct(id) {
		return nil
	}
	p, ok := w.findProduct(id)
	if !ok {
		return ErrUnknownProduct
	}
	if !w.productVisible(p) {
		return ErrProductUnavailable
	}
	w.appointment.Products = append(w.appointment.Products, p)
	w.productLines[id] = productLine{Quantity: 1}
	return nil
}

// ChangeProductQuantity adds delta to a selected product's quantity. The
// result is capped at 99; reaching zero or less removes the product.
func (w *Wizard) ChangeProductQuantity(id string, delta int) error {
	if err := w.guard(StepProducts); err != nil {
		return err
	}
	if _, ok := w.selectedProduct(id); !ok {
		return ErrProductNotSelected
	}
	line := w.productLines[id]
	delta = max(-maxProductQuantity, min(delta, maxProductQuantity))
	next := line.quantity() + delta
	if next <= 0 {
		w.removeProduct(id)
		return nil
	}
	line.Quantity = min(next, maxProductQuantity)
	w.productLines[id] = line
	return nil
}

func (w *Wizard) SelectProductOption(id, option string) error {
	if err := w.guard(StepProducts); err != nil {
		return err
	}
	p, ok := w.selectedProduct(id)
	if !ok {
		return ErrProductNotSelected
	}
	if !hasOption(p.Options, option) {
		return ErrUnknownOption
	}
	line := w.productLines[id]
	line.Option = option
	w.productLines[id] = line
	return nil
}

// SelectAdultStyle picks the adult style and resets its sub-option.
func (w *Wizard) SelectAdultStyle(choice StyleChoice) error {
	if err := w.guard(StepServices); err != nil {
		return err
	}
	if !w.HasAdultCut() {
		return ErrStylePickerHidden
	}
	return w.selectStyle(&w.adult, choice)
}

func (w *Wizard) SelectAdultStyleOption(option string) error {
	if err := w.guard(StepServices); err != nil {
		return err
	}
	if !w.HasAdultCut() {
		return ErrStylePickerHidden
	}
	return w.selectStyleOption(&w.adult, option)
}

// SelectChildStyle picks the child style and resets its sub-option.
func (w *Wizard) SelectChildStyle(choice StyleChoice) error {
	if err := w.guard(StepServices); err != nil {
		return err
	}
	if !w.HasChildCut() {
		return ErrStylePickerHidden
	}
	return w.selectStyle(&w.child, choice)
}

func (w *Wizard) SelectChildStyleOption(option string) error {
	if err := w.guard(StepServices); err != nil {
		return err
	}
	if !w.HasChildCut() {
		return ErrStylePickerHidden
	}
	return w.selectStyleOption(&w.child, option)
}

func (w *Wizard) selectStyle(sel *styleSelection, choice StyleChoice) error {
	if !choice.IsDecideOnSite() {
		if _, ok := w.findCut(choice.CutID); !ok {
			return ErrUnknownCut
		}
	}
	sel.Choice = choice
	sel.Option = ""
	return nil
}

func (w *Wizard) selectStyleOption(sel *styleSelection, option string) error {
	if sel.Choice.IsDecideOnSite() {
		return ErrNoStyleChosen
	}
	cut, ok := w.findCut(sel.Choice.CutID)
	if !ok {
		return ErrUnknownCut
	}
	if !hasOption(cut.Options, option) {
		return ErrUnknownOption
	}
	sel.Option = option
	return nil
}

func (w *Wizard) validate() FieldErrors {
	return FieldErrors{
		ClientName: strings.TrimSpace(w.appointment.ClientName) == "",
		ChildName:  w.HasChildCut() && strings.TrimSpace(w.childName) == "",
	}
}

// dropAdultOnly removes selected services and products flagged as not for
// children, so the booking never holds items the lists no longer show.
func (w *Wizard) dropAdultOnly() {
	kept := w.appointment.Services[:0]
	for _, s := range w.appointment.Services {
		if s.NotForChildren {
			delete(w.serviceOptions, s.ID)
			continue
		}
		kept = append(kept, s)
	}
	w.appointment.Services = kept

	for _, p := range append([]models.Product(nil), w.appointment.Products...) {
		if p.NotForChildren {
			w.removeProduct(p.ID)
		}
	}
}

func (w *Wizard) removeProduct(id string) bool {
	for i, p := range w.appointment.Products {
		if p.ID == id {
			w.appointment.Products = append(w.appointment.Products[:i:i], w.appointment.Products[i+1:]...)
			delete(w.productLines, id)
			return true
		}
	}
	return false
}

func (w *Wizard) serviceVisible(s models.Service) bool {
	if s.IsChild && !w.opts.childServicesAllowed() {
		return false
	}
	return !(w.HasChildCut() && s.NotForChildren)
}

func (w *Wizard) productVisible(p models.Product) bool {
	return !(w.HasChildCut() && p.NotForChildren)
}

func (w *Wizard) findService(id string) (models.Service, bool) {
	for _, s := range w.services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func (w *Wizard) selectedService(id string) (models.Service, bool) {
	for _, s := range w.appointment.Services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func (w *Wizard) findProduct(id string) (models.Product, bool) {
	for _, p := range w.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (w *Wizard) selectedProduct(id string) (models.Product, bool) {
	for _, p := range w.appointment.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (w *Wizard) findCut(id string) (models.CutStyle, bool) {
	for _, c := range w.cuts {
		if c.ID == id {
			return c, true
		}
	}
	return models.CutStyle{}, false
}

func (l productLine) quantity() int {
	if l.Quantity < 1 {
		return 1
	}
	return l.Quantity
}

func hasOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
