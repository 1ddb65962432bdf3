package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"barbershop-backend/booking"
	"barbershop-backend/models"
	"barbershop-backend/services"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const visitorCookie = "visitor_id"

// visitorID returns the visitor cookie, issuing one on first contact.
func visitorID(c *gin.Context) string {
	if v, err := c.Cookie(visitorCookie); err == nil && v != "" {
		return v
	}
	v := uuid.NewString()
	c.SetCookie(visitorCookie, v, 365*24*3600, "/", "", c.Request.TLS != nil, true)
	return v
}

// BookingController runs booking wizards server-side, one session per
// visitor flow.
type BookingController struct {
	Provider services.Provider
	Handoff  services.HandoffStore
	Sessions *services.SessionStore
	Metrics  *services.BookingMetrics
	Notifier services.Notifier
	Logger   *zap.Logger

	MessagingEndpoint     string
	EnforceChildCutToggle bool
	Clock                 func() time.Time
}

// ActionInput is one wizard interaction. Which fields matter depends on Type.
type ActionInput struct {
	Type   string `json:"type" binding:"required"`
	ID     string `json:"id"`
	Option string `json:"option"`
	Delta  int    `json:"delta"`
	Day    string `json:"day"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Name   string `json:"name"`
}

var errUnknownAction = errors.New("unknown action type")

// loadCatalog fetches everything the wizard needs concurrently. A failed
// fetch leaves that list empty; settings fall back to the defaults.
func (bc *BookingController) loadCatalog(ctx context.Context) (models.ShopSettings, booking.Catalog) {
	var (
		wg       sync.WaitGroup
		settings models.ShopSettings
		catalog  booking.Catalog
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		s, err := bc.Provider.GetSettings(ctx)
		if err != nil {
			bc.Logger.Warn("booking: settings fetch failed", zap.Error(err))
			s = services.DefaultSettings()
		}
		settings = s
	}()
	go func() {
		defer wg.Done()
		rows, err := bc.Provider.GetServices(ctx)
		if err != nil {
			bc.Logger.Warn("booking: services fetch failed", zap.Error(err))
			return
		}
		catalog.Services = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := bc.Provider.GetCuts(ctx)
		if err != nil {
			bc.Logger.Warn("booking: cuts fetch failed", zap.Error(err))
			return
		}
		catalog.Cuts = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := bc.Provider.GetProducts(ctx)
		if err != nil {
			bc.Logger.Warn("booking: products fetch failed", zap.Error(err))
			return
		}
		catalog.Products = rows
	}()
	wg.Wait()
	return settings, catalog
}

func (bc *BookingController) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()
	visitor := visitorID(c)

	settings, catalog := bc.loadCatalog(ctx)

	initial, err := bc.Handoff.Get(ctx, visitor)
	if err != nil {
		bc.Logger.Warn("booking: hand-off read failed", zap.String("visitor", visitor), zap.Error(err))
		initial = nil
	}

	w := booking.New(catalog, booking.Options{
		BusinessName:          settings.Name,
		Phone:                 settings.Phone,
		ProductsEnabled:       settings.ProductsEnabled,
		ChildCutEnabled:       settings.ChildCutEnabled,
		EnforceChildCutToggle: bc.EnforceChildCutToggle,
		MessagingEndpoint:     bc.MessagingEndpoint,
		Clock:                 bc.Clock,
	}, initial)
	view := w.Snapshot()

	sess := bc.Sessions.Create(visitor, settings.Phone, w)
	bc.Metrics.SessionStarted()

	c.JSON(http.StatusCreated, gin.H{"id": sess.ID, "view": view})
}

func (bc *BookingController) GetSession(c *gin.Context) {
	var view booking.View
	found, _ := bc.Sessions.Do(c.Param("id"), func(w *booking.Wizard) error {
		view = w.Snapshot()
		return nil
	})
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Booking session not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (bc *BookingController) Act(c *gin.Context) {
	var input ActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var view booking.View
	found, err := bc.Sessions.Do(c.Param("id"), func(w *booking.Wizard) error {
		err := applyAction(w, input)
		view = w.Snapshot()
		return err
	})
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Booking session not found")
		return
	}
	if err != nil {
		if errors.Is(err, booking.ErrNoServiceSelected) {
			bc.Metrics.EmptySelection()
		}
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (bc *BookingController) Confirm(c *gin.Context) {
	id := c.Param("id")
	sess, ok := bc.Sessions.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Booking session not found")
		return
	}

	var dispatch booking.Dispatch
	err := sess.Do(time.Now(), func(w *booking.Wizard) error {
		d, err := w.Confirm()
		dispatch = d
		return err
	})

	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		bc.Metrics.ValidationFailed(verr.Fields.ClientName, verr.Fields.ChildName)
		utils.RespondWithFields(c, http.StatusUnprocessableEntity, "Preencha os campos obrigatórios", verr.Fields)
		return
	}
	if err != nil {
		respondWizardError(c, err)
		return
	}

	if dispatch.ClearHandoff {
		if err := bc.Handoff.Clear(c.Request.Context(), sess.VisitorID); err != nil {
			bc.Logger.Warn("booking: hand-off clear failed", zap.String("visitor", sess.VisitorID), zap.Error(err))
		}
	}
	bc.Sessions.Delete(id)
	bc.Metrics.Dispatched()
	bc.Notifier.BookingDispatched(sess.ShopPhone, dispatch.Message)

	bc.Logger.Info("booking dispatched", zap.String("session", id))
	c.JSON(http.StatusOK, dispatch)
}

func (bc *BookingController) DeleteSession(c *gin.Context) {
	bc.Sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func styleChoice(id string) booking.StyleChoice {
	if id == "" {
		return booking.DecideOnSite()
	}
	return booking.Chosen(id)
}

func applyAction(w *booking.Wizard, in ActionInput) error {
	switch in.Type {
	case "toggle_service":
		return w.ToggleService(in.ID)
	case "service_option":
		return w.SelectServiceOption(in.ID, in.Option)
	case "toggle_product":
		return w.ToggleProduct(in.ID)
	case "product_quantity":
		return w.ChangeProductQuantity(in.ID, in.Delta)
	case "product_option":
		return w.SelectProductOption(in.ID, in.Option)
	case "adult_style":
		return w.SelectAdultStyle(styleChoice(in.ID))
	case "adult_style_option":
		return w.SelectAdultStyleOption(in.Option)
	case "child_style":
		return w.SelectChildStyle(styleChoice(in.ID))
	case "child_style_option":
		return w.SelectChildStyleOption(in.Option)
	case "continue":
		return w.Continue()
	case "skip_products":
		return w.SkipProducts()
	case "back":
		return w.Back()
	case "day":
		return w.ChooseDay(booking.DayType(in.Day))
	case "date":
		return w.ChooseDate(in.Date)
	case "time":
		return w.ChooseTime(in.Time)
	case "client_name":
		return w.SetClientName(in.Name)
	case "child_name":
		return w.SetChildName(in.Name)
	default:
		return errUnknownAction
	}
}

func respondWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNoServiceSelected):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Selecione um serviço")
	case errors.Is(err, booking.ErrClosed),
		errors.Is(err, booking.ErrWrongStep),
		errors.Is(err, booking.ErrServiceUnavailable),
		errors.Is(err, booking.ErrProductUnavailable),
		errors.Is(err, booking.ErrServiceNotSelected),
		errors.Is(err, booking.ErrProductNotSelected),
		errors.Is(err, booking.ErrStylePickerHidden),
		errors.Is(err, booking.ErrNoStyleChosen),
		errors.Is(err, booking.ErrDateNotExpected):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}
}
