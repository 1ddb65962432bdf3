package booking

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultBusinessName      = "Barbearia"
	DefaultSlug              = "barbearia"
	DefaultMessagingEndpoint = "https://wa.me"

	messagePrefix     = "agendamento-"
	decideOnSiteLabel = "Definir na hora / Escolher no local"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)
	nonWordRun    = regexp.MustCompile(`[^\w\-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
	nonDigit      = regexp.MustCompile(`\D`)

	uriComponent = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")
)

// Slug turns a business name into the identifier used on the first line of
// the booking message: "Fio & Navalha" becomes "fio-e-navalha". An empty
// name yields DefaultSlug.
func Slug(text string) string {
	if text == "" {
		return DefaultSlug
	}
	s := StripAccents(strings.ToLower(text))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-e-")
	s = nonWordRun.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// StripAccents decomposes s and drops combining marks.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// PhoneDigits keeps only the digits of a phone number.
func PhoneDigits(phone string) string {
	return nonDigit.ReplaceAllString(phone, "")
}

// DeepLink builds <endpoint>/<digits>?text=<message>, encoding the message
// the way encodeURIComponent does: spaces as %20 and !'()* left as is.
func DeepLink(endpoint, phone, message string) string {
	if endpoint == "" {
		endpoint = DefaultMessagingEndpoint
	}
	text := uriComponent.Replace(url.QueryEscape(message))
	return strings.TrimRight(endpoint, "/") + "/" + PhoneDigits(phone) + "?text=" + text
}

func formatPrice(amount int) string {
	return fmt.Sprintf("R$ %d,00", amount)
}

func withOption(name, option string) string {
	if option == "" {
		return name
	}
	return name + " (" + option + ")"
}

func (w *Wizard) styleLabel(sel styleSelection) string {
	if sel.Choice.IsDecideOnSite() {
		return decideOnSiteLabel
	}
	cut, ok := w.findCut(sel.Choice.CutID)
	if !ok {
		return decideOnSiteLabel
	}
	return withOption(cut.Name, sel.Option)
}

// Message renders the booking as the text sent to the shop. It depends only
// on the current selections.
func (w *Wizard) Message() string {
	shopName := w.opts.BusinessName
	if shopName == "" {
		shopName = DefaultBusinessName
	}
	a := w.appointment
	hasChild := w.HasChildCut()

	var b strings.Builder
	b.WriteString(messagePrefix + Slug(shopName) + "\n")
	fmt.Fprintf(&b, "✂️ *Agendamento – %s*\n\n", shopName)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", a.ClientName)
	if hasChild && w.childName != "" {
		fmt.Fprintf(&b, "👶 *Cliente Infantil:* %s\n", w.childName)
	}
	b.WriteString("\n")

	if len(a.Services) > 0 {
		b.WriteString("💈 *Serviços:*\n")
		lines := make([]string, 0, len(a.Services))
		for _, s := range a.Services {
			lines = append(lines, fmt.Sprintf("* %s – %s", withOption(s.Name, w.serviceOptions[s.ID]), formatPrice(s.Price)))
		}
		b.WriteString(strings.Join(lines, "\n") + "\n\n")
	}

	if len(a.Products) > 0 {
		b.WriteString("🛍️ *Produtos:*\n")
		lines := make([]string, 0, len(a.Products))
		for _, p := range a.Products {
			line := w.productLines[p.ID]
			qty := line.quantity()
			lines = append(lines, fmt.Sprintf("* %s x%d – %s", withOption(p.Name, line.Option), qty, formatPrice(p.Price*qty)))
		}
		b.WriteString(strings.Join(lines, "\n") + "\n\n")
	}

	if w.HasAdultCut() {
		b.WriteString("✂️ *Estilo(s) de Corte:*\n")
		b.WriteString("- " + w.styleLabel(w.adult) + "\n\n")
	}
	if hasChild {
		b.WriteString("✂️ *Estilo(s) de Corte Infantil:*\n")
		b.WriteString("- " + w.styleLabel(w.child) + "\n\n")
	}

	fmt.Fprintf(&b, "💰 *Total:* %s\n\n", formatPrice(w.Total()))
	date := a.SpecificDate
	if date == "" {
		date = string(a.DayType)
	}
	fmt.Fprintf(&b, "📅 *Data:* %s\n", date)
	fmt.Fprintf(&b, "🕒 *Horário:* %s", a.Time)
	return b.String()
}
