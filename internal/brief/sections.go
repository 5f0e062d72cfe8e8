package brief

import (
	"strings"

	"github.com/brieffast/brieffast-server/internal/markdown"
	"github.com/brieffast/brieffast-server/internal/model"
)

// SectionBody is a template-specific rendering of a section. A nil
// Condition means the section is always included for that template.
type SectionBody struct {
	Condition func(answers model.AnswerSet) bool
	Content   func(answers model.AnswerSet) string
}

// Section assembles one brief section. The base Condition/Content handle
// most templates through the field normalizer; templates whose rendering
// diverges register a full replacement body in Overrides, and templates
// that only append extra fields register them in Extras.
type Section struct {
	ID        string
	Title     string
	Condition func(answers model.AnswerSet, templateID string) bool
	Content   func(answers model.AnswerSet, templateID string) string
	Overrides map[string]SectionBody
	Extras    map[string]func(answers model.AnswerSet) string
}

func (s Section) include(answers model.AnswerSet, templateID string) bool {
	if o, ok := s.Overrides[templateID]; ok {
		return o.Condition == nil || o.Condition(answers)
	}
	return s.Condition == nil || s.Condition(answers, templateID)
}

func (s Section) render(answers model.AnswerSet, templateID string) string {
	if o, ok := s.Overrides[templateID]; ok {
		return o.Content(answers)
	}
	out := s.Content(answers, templateID)
	if extra, ok := s.Extras[templateID]; ok {
		out += extra(answers)
	}
	return out
}

var projectOverviewSection = Section{
	ID:    "project-overview",
	Title: "Project Overview",
	Content: func(answers model.AnswerSet, templateID string) string {
		var b strings.Builder
		b.WriteString(markdown.FieldText("Project Name", Field("projectName", answers, templateID)))
		b.WriteString(markdown.FieldText("Description", Field("projectDescription", answers, templateID)))
		return b.String()
	},
	Extras: map[string]func(model.AnswerSet) string{
		TemplateProductMarketingLaunch: func(answers model.AnswerSet) string {
			return markdown.ConditionalFieldText("Product Type", Field("productType", answers, TemplateProductMarketingLaunch))
		},
		TemplateDigitalMarketingCampaign: func(answers model.AnswerSet) string {
			return markdown.ConditionalField("Campaign Type", answers.Get("campaignType"))
		},
		TemplateWebDevelopment: func(answers model.AnswerSet) string {
			return markdown.ConditionalFieldText("Project Type", Field("productType", answers, TemplateWebDevelopment))
		},
	},
	Overrides: map[string]SectionBody{
		TemplateIndieTechMarketing: {
			Content: func(answers model.AnswerSet) string {
				var b strings.Builder
				b.WriteString(markdown.FieldText("Project Name", "Marketing Campaign"))
				if specifics := answers.Get("campaign-specifics"); !specifics.IsEmpty() && !specifics.Equals("Campaign specifics") {
					b.WriteString(markdown.Field("Description", specifics))
				}
				if obj := answers.Get("campaign-objective"); !obj.IsEmpty() {
					b.WriteString(markdown.FieldText("Campaign Objective", Label(CampaignObjectives, obj.String())))
				}
				if dur := answers.Get("campaign-duration"); !dur.IsEmpty() {
					b.WriteString(markdown.FieldText("Campaign Duration", Label(Timelines, dur.String())))
				}
				return b.String()
			},
		},
		TemplatePersonalTechBrand: {
			Content: func(answers model.AnswerSet) string {
				var b strings.Builder
				name := answers.Get("brand-name")
				if name.IsEmpty() {
					name = model.Text("Personal Brand")
				}
				b.WriteString(markdown.Field("Project Name", name))
				b.WriteString(markdown.ConditionalField("Tech Niche/Specialty", answers.Get("tech-niche")))
				if exp := answers.Get("primary-expertise"); !exp.IsEmpty() {
					b.WriteString(markdown.FieldText("Primary Expertise", otherOrLabel(exp, Expertise, answers, "primary-expertise-other")))
				}
				b.WriteString(markdown.ConditionalField("Value Proposition", answers.Get("value-proposition")))
				return b.String()
			},
		},
	},
}

var projectGoalsSection = Section{
	ID:    "project-goals",
	Title: "Goals & Objectives",
	Condition: func(answers model.AnswerSet, templateID string) bool {
		return Field("targetAudience", answers, templateID) != "" ||
			Field("successMetrics", answers, templateID) != "" ||
			Field("campaignObjectives", answers, templateID) != ""
	},
	Content: func(answers model.AnswerSet, templateID string) string {
		var b strings.Builder
		b.WriteString(markdown.ConditionalFieldText("Target Audience", Field("targetAudience", answers, templateID)))
		if templateID == TemplateDigitalMarketingCampaign || templateID == TemplateProductMarketingLaunch {
			if objectives := Field("campaignObjectives", answers, templateID); objectives != "" {
				b.WriteString("**Objectives:**\n" + objectives + "\n")
			}
		}
		b.WriteString(markdown.ConditionalFieldText("Success Metrics", Field("successMetrics", answers, templateID)))
		return b.String()
	},
	Overrides: map[string]SectionBody{
		TemplateIndieTechMarketing: {
			Condition: func(answers model.AnswerSet) bool {
				return answers.Has("target-audience") || answers.Has("selling-proposition") ||
					answers.Has("call-to-action") || answers.Has("success-metrics")
			},
			Content: func(answers model.AnswerSet) string {
				var b strings.Builder
				b.WriteString(markdown.ConditionalField("Target Audience", answers.Get("target-audience")))
				b.WriteString(markdown.ConditionalField("Unique Selling Proposition", answers.Get("selling-proposition")))
				b.WriteString(markdown.ConditionalField("Call to Action", answers.Get("call-to-action")))
				if metrics := answers.Get("success-metrics"); !metrics.IsEmpty() {
					if metrics.IsList() {
						b.WriteString("**Success Metrics:**\n")
						b.WriteString(labeledBullets(metrics, SuccessMetrics, answers, "success-metrics-other"))
						b.WriteString("\n")
					} else {
						b.WriteString(markdown.Field("Success Metrics", metrics))
					}
				}
				return b.String()
			},
		},
		TemplatePersonalTechBrand: {
			Condition: func(answers model.AnswerSet) bool {
				return answers.Has("target-audience") || answers.Has("brand-personality") ||
					answers.Has("success-metrics")
			},
			Content: func(answers model.AnswerSet) string {
				var b strings.Builder
				b.WriteString(markdown.ConditionalField("Target Audience", answers.Get("target-audience")))
				if traits := answers.Get("brand-personality"); traits.IsList() && !traits.IsEmpty() {
					b.WriteString("**Brand Personality:**\n")
					b.WriteString(labeledBullets(traits, PersonalityTraits, answers, "brand-personality-other"))
					b.WriteString("\n")
				}
				if metrics := answers.Get("success-metrics"); metrics.IsList() && !metrics.IsEmpty() {
					b.WriteString("**Success Metrics:**\n")
					b.WriteString(labeledBullets(metrics, PersonalBrandMetrics, answers, "success-metrics-other"))
					b.WriteString("\n")
				}
				return b.String()
			},
		},
	},
}

var technicalRequirementsSection = Section{
	ID:    "technical-requirements",
	Title: "Technical Requirements",
	Condition: func(answers model.AnswerSet, templateID string) bool {
		switch templateID {
		case TemplateWebDevelopment, TemplateTechProductSaaS, TemplateIndieTechMarketing:
			return Field("techStack", answers, templateID) != ""
		}
		return false
	},
	Content: func(answers model.AnswerSet, templateID string) string {
		label := "Technology Stack"
		if templateID == TemplateIndieTechMarketing {
			label = "Primary Marketing Channel"
		}
		return markdown.ConditionalFieldText(label, Field("techStack", answers, templateID))
	},
	Extras: map[string]func(model.AnswerSet) string{
		TemplateWebDevelopment: func(answers model.AnswerSet) string {
			var b strings.Builder
			b.WriteString(markdown.ConditionalField("Hosting Requirements", answers.Get("hosting")))
			if features := answers.Get("features"); features.IsList() && !features.IsEmpty() {
				b.WriteString("**Features Required:**\n")
				b.WriteString(markdown.List(features.Strings()))
			}
			return b.String()
		},
		TemplateTechProductSaaS: func(answers model.AnswerSet) string {
			var b strings.Builder
			if integrations := answers.Get("integrations"); integrations.IsList() && !integrations.IsEmpty() {
				b.WriteString("**Required Integrations:**\n")
				b.WriteString(markdown.List(integrations.Strings()))
			}
			return b.String()
		},
		TemplateIndieTechMarketing: func(answers model.AnswerSet) string {
			var b strings.Builder
			if channels := answers.Get("marketing-channels"); channels.IsList() {
				b.WriteString("**Additional Marketing Channels:**\n")
				b.WriteString(markdown.MappedList(channels.Strings(), Channels, answers.Get("marketing-channels-other"), "other"))
			}
			return b.String()
		},
	},
}

var timelineBudgetSection = Section{
	ID:    "timeline-budget",
	Title: "Timeline & Budget",
	Condition: func(answers model.AnswerSet, templateID string) bool {
		return Field("timeline", answers, templateID) != "" ||
			Field("budget", answers, templateID) != ""
	},
	Content: func(answers model.AnswerSet, templateID string) string {
		var b strings.Builder
		b.WriteString(markdown.ConditionalFieldText("Timeline", Field("timeline", answers, templateID)))
		b.WriteString(markdown.ConditionalFieldText("Budget", Field("budget", answers, templateID)))
		return b.String()
	},
	Extras: map[string]func(model.AnswerSet) string{
		TemplateDigitalMarketingCampaign: func(answers model.AnswerSet) string {
			var b strings.Builder
			if channels := answers.Get("marketingChannels"); channels.IsList() && !channels.IsEmpty() {
				b.WriteString("**Marketing Channels:**\n")
				b.WriteString(markdown.MappedList(channels.Strings(), CampaignChannels, answers.Get("otherChannel"), "other"))
			}
			return b.String()
		},
	},
	Overrides: map[string]SectionBody{
		TemplateIndieTechMarketing: {
			Condition: func(answers model.AnswerSet) bool {
				return Field("timeline", answers, TemplateIndieTechMarketing) != "" ||
					Field("budget", answers, TemplateIndieTechMarketing) != "" ||
					answers.Has("target-numbers") ||
					Field("followUpStrategy", answers, TemplateIndieTechMarketing) != ""
			},
			// Campaign duration already appears in the overview, so the
			// timeline field is omitted here.
			Content: func(answers model.AnswerSet) string {
				var b strings.Builder
				b.WriteString(markdown.ConditionalFieldText("Budget", Field("budget", answers, TemplateIndieTechMarketing)))
				b.WriteString(markdown.ConditionalField("Target Numbers", answers.Get("target-numbers")))
				b.WriteString(markdown.ConditionalFieldText("Follow-up Strategy", Field("followUpStrategy", answers, TemplateIndieTechMarketing)))
				return b.String()
			},
		},
		TemplatePersonalTechBrand: {
			Condition: func(answers model.AnswerSet) bool {
				return answers.Has("budget-allocation") || answers.Has("networking-strategy")
			},
			Content: func(answers model.AnswerSet) string {
				var b strings.Builder
				if alloc := answers.Get("budget-allocation"); !alloc.IsEmpty() {
					b.WriteString(markdown.FieldText("Budget", Label(Budgets, alloc.String())))
				}
				if strategies := answers.Get("networking-strategy"); strategies.IsList() && !strategies.IsEmpty() {
					b.WriteString("**Networking Strategy:**\n")
					b.WriteString(labeledBullets(strategies, NetworkingStrategies, answers, "networking-strategy-other"))
					b.WriteString("\n")
				}
				return b.String()
			},
		},
	},
}

var additionalInfoSection = Section{
	ID:    "additional-info",
	Title: "Additional Information",
	Condition: func(answers model.AnswerSet, templateID string) bool {
		switch templateID {
		case TemplateBrandIdentity:
			return answers.Has("brandValues") || answers.Has("competitorAnalysis")
		case TemplateProductMarketingLaunch:
			return answers.Has("marketingAssets") || answers.Has("competitors")
		}
		return answers.Has("additionalNotes") || answers.Has("additional-info")
	},
	Content: func(answers model.AnswerSet, templateID string) string {
		var b strings.Builder
		switch templateID {
		case TemplateBrandIdentity:
			b.WriteString(markdown.ConditionalField("Brand Values", answers.Get("brandValues")))
			b.WriteString(markdown.ConditionalField("Competitor Analysis", answers.Get("competitorAnalysis")))
		case TemplateProductMarketingLaunch:
			if assets := answers.Get("marketingAssets"); assets.IsList() && !assets.IsEmpty() {
				b.WriteString("**Required Marketing Assets:**\n")
				b.WriteString(markdown.MappedList(assets.Strings(), MarketingAssets, answers.Get("otherAsset"), "other"))
			}
			b.WriteString(markdown.ConditionalField("Competitors", answers.Get("competitors")))
		}
		notes := answers.Get("additionalNotes")
		if notes.IsEmpty() {
			notes = answers.Get("additional-info")
		}
		b.WriteString(markdown.ConditionalField("Additional Notes", notes))
		return b.String()
	},
}

// sections in document order.
var sections = []Section{
	projectOverviewSection,
	projectGoalsSection,
	technicalRequirementsSection,
	timelineBudgetSection,
	additionalInfoSection,
}

// generateSections assembles the brief from section templates, emitting a
// heading for each section whose condition holds.
func generateSections(answers model.AnswerSet, templateID string) string {
	var b strings.Builder
	for _, s := range sections {
		if !s.include(answers, templateID) {
			continue
		}
		b.WriteString(markdown.Section(s.Title))
		b.WriteString(s.render(answers, templateID))
	}
	out := b.String()

	// A marketing brief with nothing but empty sections still gets a
	// minimal overview from the raw answers.
	if templateID == TemplateIndieTechMarketing && strings.TrimSpace(out) == "" {
		var fb strings.Builder
		fb.WriteString(markdown.Section("Project Overview"))
		name := answers.Get("campaign-specifics")
		if name.IsEmpty() {
			name = model.Text("Untitled Project")
		}
		fb.WriteString(markdown.Field("Project Name", name))
		fb.WriteString(markdown.ConditionalField("Campaign Objective", answers.Get("campaign-objective")))
		if answers.Has("target-audience") {
			fb.WriteString(markdown.Section("Goals & Objectives"))
			fb.WriteString(markdown.Field("Target Audience", answers.Get("target-audience")))
		}
		if answers.Has("primary-channel") {
			fb.WriteString(markdown.Section("Technical Requirements"))
			fb.WriteString(markdown.Field("Primary Marketing Channel", answers.Get("primary-channel")))
		}
		return fb.String()
	}
	return out
}
