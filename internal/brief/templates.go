// Package brief turns questionnaire answers into a Markdown marketing or
// project brief. Each template is a questionnaire category; the generator
// normalizes the template-specific answer fields and assembles the document
// from section templates.
package brief

// Template identifiers. These double as the briefing category stored with
// each saved brief.
const (
	TemplateWebDevelopment         = "web-development"
	TemplateTechProductSaaS        = "tech-product-saas"
	TemplatePersonalTechBrand      = "personal-tech-brand"
	TemplateTechSolopreneurWebsite = "tech-solopreneur-website"
	TemplateIndieTechMarketing     = "indie-tech-marketing"
	TemplateTechContentStrategy    = "tech-content-strategy"

	// Legacy identifiers still accepted by the normalizer for briefs created
	// before the template lineup was trimmed.
	TemplateBrandIdentity            = "brand-identity"
	TemplateDigitalMarketingCampaign = "digital-marketing-campaign"
	TemplateProductMarketingLaunch   = "product-marketing-launch"
)

// Template describes a brief template offered to users.
type Template struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	BestFor       string `json:"bestFor"`
	QuestionCount int    `json:"questionCount"`
	Description   string `json:"description,omitempty"`
}

// Templates is the catalog of offered templates, in display order.
var Templates = []Template{
	{
		ID:            TemplateWebDevelopment,
		Title:         "Web Development",
		BestFor:       "Need a website, web application, or online platform built from scratch or redesigned.",
		QuestionCount: 15,
		Description:   "This template helps you define requirements for web development projects including frontend, backend, and infrastructure needs.",
	},
	{
		ID:            TemplateTechProductSaaS,
		Title:         "Tech Product/SaaS",
		BestFor:       "Building a tech product or SaaS solution as a solopreneur and need to clarify your product vision.",
		QuestionCount: 12,
		Description:   "This template helps tech solopreneurs define their product strategy, core features, and launch plan for a new SaaS or tech product.",
	},
	{
		ID:            TemplatePersonalTechBrand,
		Title:         "Personal Tech Brand",
		BestFor:       "Establishing your personal brand as a tech professional or thought leader in your technical domain.",
		QuestionCount: 10,
		Description:   "This template helps tech professionals define their personal brand strategy, positioning, and content approach to build authority in their niche.",
	},
	{
		ID:            TemplateTechSolopreneurWebsite,
		Title:         "Tech Solopreneur Website",
		BestFor:       "Creating a professional website for your solo tech business, consultancy, or portfolio.",
		QuestionCount: 12,
		Description:   "This template helps tech solopreneurs plan an effective website that showcases their work, attracts clients, and converts visitors.",
	},
	{
		ID:            TemplateIndieTechMarketing,
		Title:         "Indie Tech Marketing",
		BestFor:       "Planning a marketing campaign for your indie tech product launch or growth initiative.",
		QuestionCount: 11,
		Description:   "This template helps indie tech creators plan focused marketing campaigns with limited resources to maximize impact and results.",
	},
	{
		ID:            TemplateTechContentStrategy,
		Title:         "Tech Content Strategy",
		BestFor:       "Creating a sustainable content strategy to build authority and attract clients or users to your tech business.",
		QuestionCount: 10,
		Description:   "This template helps tech solopreneurs develop a focused content strategy that builds credibility and attracts their target audience.",
	},
}

// TemplateByID returns the catalog entry for id, or false when unknown.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// TemplateTitle returns the display title for a template, falling back to
// the raw identifier for legacy categories not in the catalog.
func TemplateTitle(id string) string {
	if t, ok := TemplateByID(id); ok {
		return t.Title
	}
	return id
}
