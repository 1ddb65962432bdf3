package services

import (
	"fmt"

	"barbershop-backend/models"
)

// Seed content served when the store has nothing for the site yet. Blank
// inactive rows are the empty slots the admin panel fills in.

func DefaultSettings() models.ShopSettings {
	return models.ShopSettings{
		Name:             "Dom Pedro",
		Subtitle:         "Tradição, elegância e o verdadeiro corte clássico.",
		Phone:            "5511941361777",
		Instagram:        "barbeariadompedro",
		Address:          "Rua do Imperador, 400 - Centro Histórico, SP",
		MapLink:          "https://www.google.com/maps",
		GoogleMapsURL:    "https://goo.gl/maps/example",
		LogoURL:          "/logo.png",
		AppIconURL:       "/logo.png",
		HeroImage:        "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?auto=format&fit=crop&q=80&w=1600",
		OpeningHoursText: "Seg–Sex: 09h às 20h | Sáb: 09h às 18h",

		WhatsappLink:  "https://wa.me/5511941361777",
		InstagramLink: "https://instagram.com/barbeariadompedro",

		ProductsEnabled: true,
		ChildCutEnabled: true,

		HeroButtonTextSchedule: "Agendar Horário",
		HeroButtonTextCuts:     "Ver Cortes",
		Feature1Title:          "Qualidade Premium",
		Feature1Description:    "Produtos selecionados e técnicas tradicionais para o homem moderno.",
		Feature2Title:          "Pontualidade",
		Feature2Description:    "Respeitamos seu tempo. Agendamento preciso e sem espera desnecessária.",
		Feature3Title:          "Ambiente Relaxante",
		Feature3Description:    "Café, conversa boa e um ambiente climatizado para você relaxar.",
		FooterQuote:            "\"O estilo é a roupa do pensamento.\"",
	}
}

func DefaultServices() []models.Service {
	services := []models.Service{
		{ID: "1", Name: "Corte Clássico", Price: 50, DurationMinutes: 45, Description: "Tesoura e máquina com acabamento impecável.", Icon: "hair", Active: true},
		{ID: "2", Name: "Barba Real", Price: 35, DurationMinutes: 30, Description: "Toalha quente, navalha e pós-barba premium.", Icon: "beard", Active: true},
		{ID: "3", Name: "Combo Dom Pedro", Price: 75, DurationMinutes: 75, Description: "A experiência completa: Cabelo e Barba.", Icon: "combo", Active: true},
		{ID: "4", Name: "Corte Infantil", Price: 40, DurationMinutes: 30, Description: "Para os pequenos cavalheiros (até 12 anos).", Icon: "hair", Active: true, IsChild: true},
		{ID: "5", Name: "Camuflagem de Grisalhos", Price: 45, DurationMinutes: 30, Description: "Tonalização sutil para reduzir fios brancos.", Icon: "hair", Active: true},
		{ID: "6", Name: "Acabamento (Pezinho)", Price: 20, DurationMinutes: 15, Description: "Manutenção do contorno e limpeza do pescoço.", Icon: "eyebrow", Active: true},
		{ID: "7", Name: "Sobrancelha", Price: 15, DurationMinutes: 10, Description: "Alinhamento na navalha ou pinça.", Icon: "eyebrow", Active: true},
	}
	for i := 1; i <= 20; i++ {
		services = append(services, models.Service{ID: fmt.Sprintf("extra-%d", i), DurationMinutes: 30, Icon: "default"})
	}
	return withEmptyOptions(services)
}

func DefaultCuts() []models.CutStyle {
	const img = "https://images.unsplash.com/photo-%s?auto=format&fit=crop&q=80&w=600"
	cuts := []models.CutStyle{
		{ID: "1", Name: "Executive Contour", TechnicalName: "Clássico Lateral", ImageURL: fmt.Sprintf(img, "1622286342621-4bd786c2447c")},
		{ID: "2", Name: "Pompadour", TechnicalName: "Topete Alto", ImageURL: fmt.Sprintf(img, "1512690196236-4074256637b5")},
		{ID: "3", Name: "Slick Back", TechnicalName: "Penteado para Trás", ImageURL: fmt.Sprintf(img, "1503951914875-452162b0f3f1")},
		{ID: "4", Name: "Americano", TechnicalName: "Taper Fade", ImageURL: fmt.Sprintf(img, "1599351431202-1e0f0137899a")},
		{ID: "5", Name: "Degradê Navalhado", TechnicalName: "Razor Fade", ImageURL: fmt.Sprintf(img, "1585747860715-2ba37e788b70")},
		{ID: "6", Name: "Militar", TechnicalName: "Buzz Cut", ImageURL: fmt.Sprintf(img, "1605497788044-5a32c7078486")},
		{ID: "7", Name: "Social", TechnicalName: "Clássico Tesoura", ImageURL: fmt.Sprintf(img, "1517832606299-7ae9b720a186")},
		{ID: "8", Name: "Black Power", TechnicalName: "Nudred / Sponge", Category: models.CategoryCurly, ImageURL: fmt.Sprintf(img, "1514059074073-677a284e937d")},
		{ID: "9", Name: "Flat Top", TechnicalName: "Topo Reto", ImageURL: fmt.Sprintf(img, "1520338661084-680395057c93")},
	}
	for i := range cuts {
		cuts[i].Active = true
		if cuts[i].Category == "" {
			cuts[i].Category = models.CategoryGeneral
		}
	}
	for i := 1; i <= 20; i++ {
		cuts = append(cuts, models.CutStyle{ID: fmt.Sprintf("extra-c%d", i), Category: models.CategoryGeneral})
	}
	for i := range cuts {
		cuts[i].Options = []string{}
	}
	return cuts
}

func DefaultProducts() []models.Product {
	const img = "https://images.unsplash.com/photo-%s?auto=format&fit=crop&q=80&w=600"
	products := []models.Product{
		{ID: "prod-1", Name: "Pomada Matte", Description: "Alta fixação e efeito seco.", Price: 45, ImageURL: fmt.Sprintf(img, "1626895360980-d66a6a235338"), Active: true},
		{ID: "prod-2", Name: "Óleo para Barba", Description: "Hidratação e perfume amadeirado.", Price: 35, ImageURL: fmt.Sprintf(img, "1626285861696-9f0bf5a49c6d"), Active: true},
		{ID: "prod-3", Name: "Shampoo Mentolado", Description: "Limpeza profunda e refrescância.", Price: 30, ImageURL: fmt.Sprintf(img, "1608248597279-f99d160bfbc8"), Active: true},
	}
	for i := 4; i <= 15; i++ {
		products = append(products, models.Product{ID: fmt.Sprintf("prod-%d", i)})
	}
	for i := range products {
		products[i].Options = []string{}
	}
	return products
}

func withEmptyOptions(services []models.Service) []models.Service {
	for i := range services {
		services[i].Options = []string{}
	}
	return services
}
