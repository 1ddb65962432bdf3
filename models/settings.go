package models

import "time"

// ShopSettings holds the shop's display, contact and branding fields plus
// the global toggles read by the booking flow. One row per site key.
type ShopSettings struct {
	SiteKey string `gorm:"type:text;primaryKey" json:"-"`

	Name             string `gorm:"type:text" json:"name"`
	Subtitle         string `gorm:"type:text" json:"subtitle"`
	Phone            string `gorm:"type:text" json:"phone"`
	Instagram        string `gorm:"type:text" json:"instagram"`
	Address          string `gorm:"type:text" json:"address"`
	MapLink          string `gorm:"type:text" json:"mapLink"`
	GoogleMapsURL    string `gorm:"type:text" json:"googleMapsUrl"`
	LogoURL          string `gorm:"type:text" json:"logoUrl"`
	AppIconURL       string `gorm:"type:text" json:"appIconUrl"`
	HeroImage        string `gorm:"type:text" json:"heroImage"`
	OpeningHoursText string `gorm:"type:text" json:"openingHoursText"`

	WhatsappLink  string `gorm:"type:text" json:"whatsappLink"`
	InstagramLink string `gorm:"type:text" json:"instagramLink"`
	FacebookLink  string `gorm:"type:text" json:"facebookLink"`

	ProductsEnabled bool `json:"productsEnabled"`
	ChildCutEnabled bool `json:"childCutEnabled"`

	HeroButtonTextSchedule string `gorm:"type:text" json:"heroButtonTextSchedule"`
	HeroButtonTextCuts     string `gorm:"type:text" json:"heroButtonTextCuts"`
	Feature1Title          string `gorm:"type:text" json:"feature1Title"`
	Feature1Description    string `gorm:"type:text" json:"feature1Description"`
	Feature2Title          string `gorm:"type:text" json:"feature2Title"`
	Feature2Description    string `gorm:"type:text" json:"feature2Description"`
	Feature3Title          string `gorm:"type:text" json:"feature3Title"`
	Feature3Description    string `gorm:"type:text" json:"feature3Description"`
	FooterQuote            string `gorm:"type:text" json:"footerQuote"`

	UpdatedAt time.Time `json:"-"`
}

func (ShopSettings) TableName() string { return "shop_settings" }
