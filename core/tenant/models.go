package tenant

type (
	// Meta is the tenant metadata served by /v1/meta: identity, branding,
	// locale and feature switches for one institution.
	Meta struct {
		ID        int                    `json:"id"`
		Domain    string                 `json:"domain"`
		Name      string                 `json:"name"`
		ShortName string                 `json:"short_name,omitempty"`
		Branding  Branding               `json:"branding"`
		Locale    Locale                 `json:"locale"`
		Currency  Currency               `json:"currency"`
		Features  map[string]bool        `json:"features,omitempty"`
		Policy    map[string]interface{} `json:"policy,omitempty"`
		Status    *MetaStatus            `json:"status,omitempty"`
	}

	Branding struct {
		LogoURL        string `json:"logo_url,omitempty"`
		FaviconURL     string `json:"favicon_url,omitempty"`
		PrimaryColor   string `json:"primary_color,omitempty"`
		SecondaryColor string `json:"secondary_color,omitempty"`
	}

	Locale struct {
		Default      string   `json:"default,omitempty"`
		Supported    []string `json:"supported,omitempty"`
		NumberSystem string   `json:"number_system,omitempty"`
		CalendarMode string   `json:"calendar_mode,omitempty"`
		Timezone     string   `json:"timezone,omitempty"`
		DateFormat   string   `json:"date_format,omitempty"`
		TimeFormat   string   `json:"time_format,omitempty"`
	}

	Currency struct {
		Code     string `json:"code,omitempty"`
		Symbol   string `json:"symbol,omitempty"`
		Position string `json:"position,omitempty"` // prefix | suffix
	}

	MetaStatus struct {
		Active      *bool `json:"active,omitempty"`
		Maintenance bool  `json:"maintenance,omitempty"`
	}
)

// Inactive reports whether the backend explicitly flagged the tenant as
// inactive. An absent status block means active: only an explicit
// active=false blocks navigation.
func (m *Meta) Inactive() bool {
	return m != nil && m.Status != nil && m.Status.Active != nil && !*m.Status.Active
}

type (
	// InstituteProfile is the public-facing identity of the institution,
	// editable by admins.
	InstituteProfile struct {
		Names   *InstituteNames  `json:"names"`
		Contact InstituteContact `json:"contact"`
	}

	InstituteNames struct {
		EN string `json:"en,omitempty"`
		BN string `json:"bn,omitempty"`
		AR string `json:"ar,omitempty"`
	}

	InstituteContact struct {
		Address string           `json:"address"`
		Phone   string           `json:"phone,omitempty"`
		Email   string           `json:"email,omitempty"`
		Website string           `json:"website,omitempty"`
		Social  *InstituteSocial `json:"social,omitempty"`
	}

	InstituteSocial struct {
		Facebook string `json:"facebook,omitempty"`
		YouTube  string `json:"youtube,omitempty"`
		WhatsApp string `json:"whatsapp,omitempty"`
	}
)
