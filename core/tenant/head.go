package tenant

// DefaultTitle is the page title shown before tenant branding loads (or
// when loading it failed and the shell renders with defaults).
const DefaultTitle = "Ihsan EMS"

// PageHead is the derived document head for the portal shell: title,
// favicon and brand CSS custom properties.
type PageHead struct {
	Title   string
	Favicon string
	Lang    string
	CSSVars map[string]string
}

// HeadFor derives the page head from tenant metadata. A nil meta yields
// the default head so the shell always renders.
func HeadFor(meta *Meta) PageHead {
	head := PageHead{
		Title:   DefaultTitle,
		CSSVars: make(map[string]string),
	}
	if meta == nil {
		return head
	}
	if meta.Name != "" {
		head.Title = meta.Name + " — " + DefaultTitle
	}
	head.Favicon = meta.Branding.FaviconURL
	head.Lang = meta.Locale.Default
	if meta.Branding.PrimaryColor != "" {
		head.CSSVars["--brand-primary"] = meta.Branding.PrimaryColor
	}
	if meta.Branding.SecondaryColor != "" {
		head.CSSVars["--brand-secondary"] = meta.Branding.SecondaryColor
	}
	return head
}
