package brief

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brieffast/brieffast-server/internal/model"
)

// Formatter transforms a raw answer into display text. Formatters receive
// the full answer set so "other" selections can pull the free-text
// companion field.
type Formatter func(v model.Value, templateID string, answers model.AnswerSet) string

// FieldMapping normalizes one logical field across templates. Each template
// lists its candidate answer keys in priority order; the first non-empty
// answer wins. Templates absent from the table resolve to Default.
type FieldMapping struct {
	Key       string
	Fields    map[string][]string
	Formatter Formatter
	Default   string
}

// Resolve returns the normalized display value for answers under templateID.
// An empty string means the field is unavailable for this brief.
func (m FieldMapping) Resolve(answers model.AnswerSet, templateID string) string {
	ids, ok := m.Fields[templateID]
	if !ok {
		return m.Default
	}
	for _, id := range ids {
		v := answers.Get(id)
		if v.IsEmpty() {
			continue
		}
		if m.Formatter != nil {
			return m.Formatter(v, templateID, answers)
		}
		return v.String()
	}
	return m.Default
}

// Field resolves a named mapping. Unknown keys resolve to "".
func Field(key string, answers model.AnswerSet, templateID string) string {
	m, ok := fieldMappings[key]
	if !ok {
		return ""
	}
	return m.Resolve(answers, templateID)
}

// labeledBullets renders list items as "- Label" lines, substituting the
// free-text companion answer for the "other" item when one was given.
func labeledBullets(v model.Value, labels map[string]string, answers model.AnswerSet, otherField string) string {
	var b strings.Builder
	for _, item := range v.Strings() {
		if item == "other" && answers.Has(otherField) {
			fmt.Fprintf(&b, "- %s\n", answers.Get(otherField).String())
			continue
		}
		fmt.Fprintf(&b, "- %s\n", Label(labels, item))
	}
	return b.String()
}

// otherOrLabel resolves a single-choice answer: the companion free-text
// field when "other" was picked, the table label otherwise.
func otherOrLabel(v model.Value, labels map[string]string, answers model.AnswerSet, otherField string) string {
	if v.Equals("other") && answers.Has(otherField) {
		return answers.Get(otherField).String()
	}
	return Label(labels, v.String())
}

func formatDollars(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)
	out := "$" + strings.Join(groups, ",") + frac
	if neg {
		out = "-" + out
	}
	return out
}

var fieldMappings = map[string]FieldMapping{
	"projectName": {
		Key: "projectName",
		Fields: map[string][]string{
			TemplateIndieTechMarketing:       {"project-name"},
			TemplateTechProductSaaS:          {"product-name", "project-name"},
			TemplateWebDevelopment:           {"project-name"},
			TemplateBrandIdentity:            {"brand-name", "project-name"},
			TemplateDigitalMarketingCampaign: {"campaign-name"},
			TemplateProductMarketingLaunch:   {"product-name"},
			TemplatePersonalTechBrand:        {"brand-name"},
			TemplateTechSolopreneurWebsite:   {"custom-project-name", "website-purpose"},
			TemplateTechContentStrategy:      {"content-purpose", "custom-project-name"},
		},
		Default: "Untitled Project",
	},

	"projectDescription": {
		Key: "projectDescription",
		Fields: map[string][]string{
			TemplateIndieTechMarketing:       {"campaign-specifics"},
			TemplateTechProductSaaS:          {"product-description", "project-description"},
			TemplateWebDevelopment:           {"project-description"},
			TemplateBrandIdentity:            {"company-description", "brand-description"},
			TemplateDigitalMarketingCampaign: {"campaign-description", "campaign-specifics"},
			TemplateProductMarketingLaunch:   {"product-description"},
			TemplatePersonalTechBrand:        {"brand-description"},
			TemplateTechSolopreneurWebsite:   {"primary-call-to-action"},
			TemplateTechContentStrategy:      {"topic-areas", "current-status"},
		},
	},

	"targetAudience": {
		Key: "targetAudience",
		Fields: map[string][]string{
			TemplateIndieTechMarketing:       {"target-audience"},
			TemplateTechProductSaaS:          {"target-users", "target-audience"},
			TemplateWebDevelopment:           {"target-audience"},
			TemplateBrandIdentity:            {"target-audience"},
			TemplateDigitalMarketingCampaign: {"target-audience"},
			TemplateProductMarketingLaunch:   {"target-audience"},
			TemplatePersonalTechBrand:        {"target-audience"},
			TemplateTechSolopreneurWebsite:   {"target-audience"},
			TemplateTechContentStrategy:      {"target-audience"},
		},
	},

	"successMetrics": {
		Key: "successMetrics",
		Fields: map[string][]string{
			TemplateIndieTechMarketing:       {"success-metrics"},
			TemplateTechProductSaaS:          {"success-metrics", "success-indicators"},
			TemplateWebDevelopment:           {"success-metrics"},
			TemplateBrandIdentity:            {"success-metrics"},
			TemplateDigitalMarketingCampaign: {"campaign-kpis", "success-metrics"},
			TemplateProductMarketingLaunch:   {"launch-kpis", "success-metrics"},
			TemplatePersonalTechBrand:        {"success-metrics"},
			TemplateTechSolopreneurWebsite:   {"success-metrics"},
			TemplateTechContentStrategy:      {"success-metrics"},
		},
		Formatter: func(v model.Value, _ string, answers model.AnswerSet) string {
			if v.IsList() {
				return labeledBullets(v, SuccessMetrics, answers, "success-metrics-other")
			}
			return v.String()
		},
	},

	"budget": {
		Key: "budget",
		Fields: map[string][]string{
			TemplateIndieTechMarketing:       {"budget-allocation", "budget-range"},
			TemplateTechProductSaaS:          {"budget-range"},
			TemplateWebDevelopment:           {"budget-range"},
			TemplateBrandIdentity:            {"budget-range"},
			TemplateDigitalMarketingCampaign: {"campaign-budget", "budget-range"},
			TemplateProductMarketingLaunch:   {"marketing-budget", "budget-range"},
			TemplatePersonalTechBrand:        {"budget-allocation"},
			TemplateTechSolopreneurWebsite:   {"budget-range"},
		},
		Formatter: func(v model.Value, _ string, _ model.AnswerSet) string {
			switch v.Kind() {
			case model.KindNumber:
				return formatDollars(v.Num())
			case model.KindText:
				return Label(Budgets, v.String())
			default:
				return v.String()
			}
		},
	},

	"timeline": {
		Key: "timeline",
		Fields: map[string][]string{
			TemplateIndieTechMarketing:       {"campaign-duration", "development-timeline"},
			TemplateTechProductSaaS:          {"development-timeline", "timeline"},
			TemplateWebDevelopment:           {"timeline"},
			TemplateBrandIdentity:            {"timeline"},
			TemplateDigitalMarketingCampaign: {"campaign-duration", "timeline"},
			TemplateProductMarketingLaunch:   {"launch-date", "timeline"},
			TemplateTechSolopreneurWebsite:   {"timeline"},
		},
		Formatter: func(v model.Value, _ string, _ model.AnswerSet) string {
			if v.Kind() == model.KindText {
				return Label(Timelines, v.String())
			}
			return v.String()
		},
	},

	"techStack": {
		Key: "techStack",
		Fields: map[string][]string{
			TemplateIndieTechMarketing: {"primary-channel"},
			TemplateTechProductSaaS:    {"technologies", "tech-requirements"},
			TemplateWebDevelopment:     {"technologies"},
		},
		Formatter: func(v model.Value, templateID string, answers model.AnswerSet) string {
			if v.IsList() {
				return labeledBullets(v, Technologies, answers, "technologies-other")
			}
			if templateID == TemplateIndieTechMarketing && v.Kind() == model.KindText {
				return otherOrLabel(v, Channels, answers, "primary-channel-other")
			}
			return v.String()
		},
	},

	"productType": {
		Key: "productType",
		Fields: map[string][]string{
			TemplateTechProductSaaS:        {"product-type"},
			TemplateProductMarketingLaunch: {"product-type"},
			TemplateWebDevelopment:         {"project-type"},
		},
		Formatter: func(v model.Value, templateID string, answers model.AnswerSet) string {
			if v.Equals("other") {
				otherField := "product-type-other"
				if templateID == TemplateWebDevelopment {
					otherField = "project-type-other"
				}
				if answers.Has(otherField) {
					return answers.Get(otherField).String()
				}
			}
			return Label(ProductTypes, v.String())
		},
	},

	"campaignObjectives": {
		Key: "campaignObjectives",
		Fields: map[string][]string{
			TemplateDigitalMarketingCampaign: {"campaign-objectives"},
			TemplateProductMarketingLaunch:   {"launch-objectives"},
			TemplateIndieTechMarketing:       {"campaign-objective"},
		},
		Formatter: func(v model.Value, templateID string, answers model.AnswerSet) string {
			if !v.IsList() && templateID == TemplateIndieTechMarketing {
				return otherOrLabel(v, CampaignObjectives, answers, "campaign-objective-other")
			}
			if v.IsList() {
				otherField := ""
				switch templateID {
				case TemplateDigitalMarketingCampaign:
					otherField = "campaign-objectives-other"
				case TemplateProductMarketingLaunch:
					otherField = "launch-objectives-other"
				}
				return labeledBullets(v, CampaignObjectivesMulti, answers, otherField)
			}
			return v.String()
		},
	},

	"sellingProposition": {
		Key:    "sellingProposition",
		Fields: map[string][]string{TemplateIndieTechMarketing: {"selling-proposition"}},
	},

	"callToAction": {
		Key:    "callToAction",
		Fields: map[string][]string{TemplateIndieTechMarketing: {"call-to-action"}},
	},

	"followUpStrategy": {
		Key:    "followUpStrategy",
		Fields: map[string][]string{TemplateIndieTechMarketing: {"follow-up-strategy"}},
	},

	"techNiche": {
		Key:    "techNiche",
		Fields: map[string][]string{TemplatePersonalTechBrand: {"tech-niche"}},
	},

	"primaryExpertise": {
		Key:    "primaryExpertise",
		Fields: map[string][]string{TemplatePersonalTechBrand: {"primary-expertise"}},
		Formatter: func(v model.Value, _ string, answers model.AnswerSet) string {
			return otherOrLabel(v, Expertise, answers, "primary-expertise-other")
		},
	},

	"valueProposition": {
		Key:    "valueProposition",
		Fields: map[string][]string{TemplatePersonalTechBrand: {"value-proposition"}},
	},

	"brandPersonality": {
		Key:    "brandPersonality",
		Fields: map[string][]string{TemplatePersonalTechBrand: {"brand-personality"}},
		Formatter: func(v model.Value, _ string, answers model.AnswerSet) string {
			if !v.IsList() {
				return v.String()
			}
			return labeledBullets(v, PersonalityTraits, answers, "brand-personality-other")
		},
	},

	"visualIdentity": {
		Key:    "visualIdentity",
		Fields: map[string][]string{TemplatePersonalTechBrand: {"visual-identity"}},
		Formatter: func(v model.Value, _ string, answers model.AnswerSet) string {
			if !v.IsList() {
				return v.String()
			}
			return labeledBullets(v, VisualIdentity, answers, "visual-identity-other")
		},
	},

	"primaryPlatform": {
		Key:    "primaryPlatform",
		Fields: map[string][]string{TemplatePersonalTechBrand: {"primary-platform"}},
		Formatter: func(v model.Value, _ string, answers model.AnswerSet) string {
			return otherOrLabel(v, Platforms, answers, "primary-platform-other")
		},
	},

	"contentTypes": {
		Key:    "contentTypes",
		Fields: map[string][]string{TemplatePersonalTechBrand: {"content-types"}},
		Formatter: func(v model.Value, _ string, answers model.AnswerSet) string {
			if !v.IsList() {
				return v.String()
			}
			return labeledBullets(v, ContentTypes, answers, "content-types-other")
		},
	},

	"networkingStrategy": {
		Key:    "networkingStrategy",
		Fields: map[string][]string{TemplatePersonalTechBrand: {"networking-strategy"}},
		Formatter: func(v model.Value, _ string, answers model.AnswerSet) string {
			if !v.IsList() {
				return v.String()
			}
			return labeledBullets(v, NetworkingStrategies, answers, "networking-strategy-other")
		},
	},
}

// FieldKeys lists the declared normalizer keys in no particular order.
func FieldKeys() []string {
	keys := make([]string, 0, len(fieldMappings))
	for k := range fieldMappings {
		keys = append(keys, k)
	}
	return keys
}
