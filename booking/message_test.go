package booking

import (
	"net/url"
	"strings"
	"testing"

	"barbershop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fio & Navalha", "fio-e-navalha"},
		{"", DefaultSlug},
		{"Barbearia São João", "barbearia-sao-joao"},
		{"  Dom   Pedro!! ", "dom-pedro"},
		{"Corte--&--Cia", "corte-e-cia"},
		{"Ação Çedilha", "acao-cedilha"},
		{"Fio\u00a0Navalha", "fio-navalha"},
		{"Dom\u2003Pedro", "dom-pedro"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestDeepLink(t *testing.T) {
	link := DeepLink("", "+55 (11) 94136-1777", "olá mundo & 1+1")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511941361777?text="))
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "olá mundo & 1+1", u.Query().Get("text"))

	assert.True(t, strings.HasPrefix(DeepLink("https://api.whatsapp.com/send/", "11", "x"), "https://api.whatsapp.com/send/11?text="))
}

func TestDeepLinkKeepsURIComponentMarks(t *testing.T) {
	link := DeepLink("", "1", "*x* (a)!'~ 100%21")
	assert.Equal(t, "https://wa.me/1?text=*x*%20(a)!'~%20100%2521", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "*x* (a)!'~ 100%21", u.Query().Get("text"))
}

func TestMessageEndToEnd(t *testing.T) {
	catalog := Catalog{
		Services: []models.Service{{ID: "1", Name: "Corte Clássico", Price: 50, Active: true}},
	}
	w := New(catalog, Options{BusinessName: "Dom Pedro", Phone: "5511941361777", Clock: fixedClock}, nil)

	require.NoError(t, w.ToggleService("1"))
	require.NoError(t, w.Continue())
	require.NoError(t, w.ChooseDay(DayToday))
	require.NoError(t, w.ChooseTime("10:00"))
	require.NoError(t, w.SetClientName("João"))

	d, err := w.Confirm()
	require.NoError(t, err)

	lines := strings.Split(d.Message, "\n")
	assert.Equal(t, "agendamento-dom-pedro", lines[0])
	assert.Equal(t, "✂️ *Agendamento – Dom Pedro*", lines[1])
	assert.Contains(t, lines, "👤 *Cliente:* João")
	assert.Contains(t, lines, "* Corte Clássico – R$ 50,00")
	assert.Contains(t, lines, "💰 *Total:* R$ 50,00")
	assert.Contains(t, lines, "📅 *Data:* 07/03/2026")
	assert.Equal(t, "🕒 *Horário:* 10:00", lines[len(lines)-1])
	assert.Contains(t, lines, "- "+decideOnSiteLabel)
	assert.NotContains(t, d.Message, "Cliente Infantil")
	assert.NotContains(t, d.Message, "Produtos")
	assert.NotContains(t, d.Message, "Corte Infantil:*")

	u, err := url.Parse(d.URL)
	require.NoError(t, err)
	assert.Equal(t, "/5511941361777", u.Path)
	assert.Equal(t, d.Message, u.Query().Get("text"))
}

func TestMessageFullBooking(t *testing.T) {
	w := newTestWizard(true)
	require.NoError(t, w.ToggleService("1"))
	require.NoError(t, w.ToggleService("2"))
	require.NoError(t, w.SelectServiceOption("2", "Navalha"))
	require.NoError(t, w.ToggleService("3"))
	require.NoError(t, w.SelectAdultStyle(Chosen("c1")))
	require.NoError(t, w.SelectAdultStyleOption("Alto"))
	require.NoError(t, w.Continue())
	require.NoError(t, w.ToggleProduct("p1"))
	require.NoError(t, w.SelectProductOption("p1", "200g"))
	require.NoError(t, w.ChangeProductQuantity("p1", 1))
	require.NoError(t, w.Continue())
	require.NoError(t, w.ChooseDay(DayOther))
	require.NoError(t, w.ChooseDate("2026-03-21"))
	require.NoError(t, w.ChooseTime("19:00"))
	require.NoError(t, w.SetClientName("Carlos"))
	require.NoError(t, w.SetChildName("Lucas"))

	want := strings.Join([]string{
		"agendamento-fio-e-navalha",
		"✂️ *Agendamento – Fio & Navalha*",
		"",
		"👤 *Cliente:* Carlos",
		"👶 *Cliente Infantil:* Lucas",
		"",
		"💈 *Serviços:*",
		"* Corte Clássico – R$ 50,00",
		"* Barba Real (Navalha) – R$ 35,00",
		"* Corte Infantil – R$ 40,00",
		"",
		"🛍️ *Produtos:*",
		"* Pomada Matte (200g) x2 – R$ 90,00",
		"",
		"✂️ *Estilo(s) de Corte:*",
		"- Pompadour (Alto)",
		"",
		"✂️ *Estilo(s) de Corte Infantil:*",
		"- Definir na hora / Escolher no local",
		"",
		"💰 *Total:* R$ 215,00",
		"",
		"📅 *Data:* 21/03/2026",
		"🕒 *Horário:* 19:00",
	}, "\n")
	assert.Equal(t, want, w.Message())
}

func TestMessageFallsBackToDayLabel(t *testing.T) {
	w := New(testCatalog(), Options{}, nil)
	require.NoError(t, w.ToggleService("3"))
	require.NoError(t, w.Continue())
	require.NoError(t, w.ChooseDay(DayTomorrow))
	require.NoError(t, w.ChooseTime("09:00"))

	msg := w.Message()
	assert.True(t, strings.HasPrefix(msg, "agendamento-barbearia\n✂️ *Agendamento – Barbearia*"))
	assert.Contains(t, msg, "📅 *Data:* Amanhã\n")
	assert.NotContains(t, msg, "*Estilo(s) de Corte:*")
	assert.Contains(t, msg, "*Estilo(s) de Corte Infantil:*")
	assert.NotContains(t, msg, "Cliente Infantil", "child line needs a child name")
}
