package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brieffast/brieffast-server/internal/model"
)

func TestFieldCandidateOrder(t *testing.T) {
	// tech-product-saas prefers product-name over project-name.
	answers := model.AnswerSet{
		"product-name": model.Text("Acme SaaS"),
		"project-name": model.Text("fallback"),
	}
	assert.Equal(t, "Acme SaaS", Field("projectName", answers, TemplateTechProductSaaS))

	// First candidate empty falls through to the second.
	answers = model.AnswerSet{
		"product-name": model.Text(""),
		"project-name": model.Text("fallback"),
	}
	assert.Equal(t, "fallback", Field("projectName", answers, TemplateTechProductSaaS))
}

func TestFieldDefaults(t *testing.T) {
	assert.Equal(t, "Untitled Project", Field("projectName", model.AnswerSet{}, TemplateWebDevelopment))

	// Template not in the mapping table resolves to the default too.
	assert.Equal(t, "Untitled Project", Field("projectName", model.AnswerSet{}, "unknown-template"))

	// Mappings without a default resolve to "".
	assert.Equal(t, "", Field("projectDescription", model.AnswerSet{}, TemplateWebDevelopment))
	assert.Equal(t, "", Field("timeline", model.AnswerSet{}, TemplatePersonalTechBrand))
}

func TestFieldUnknownKey(t *testing.T) {
	assert.Equal(t, "", Field("noSuchKey", model.AnswerSet{}, TemplateWebDevelopment))
}

func TestBudgetFormatter(t *testing.T) {
	answers := model.AnswerSet{"budget-range": model.Text("10k-25k")}
	assert.Equal(t, "$10,000 - $25,000", Field("budget", answers, TemplateWebDevelopment))

	// Unknown codes pass through untranslated.
	answers = model.AnswerSet{"budget-range": model.Text("mystery")}
	assert.Equal(t, "mystery", Field("budget", answers, TemplateWebDevelopment))

	// Numeric budgets are formatted as dollars.
	answers = model.AnswerSet{"budget-range": model.Number(12500)}
	assert.Equal(t, "$12,500", Field("budget", answers, TemplateWebDevelopment))

	// indie prefers budget-allocation over budget-range.
	answers = model.AnswerSet{
		"budget-allocation": model.Text("minimal"),
		"budget-range":      model.Text("10k-25k"),
	}
	assert.Equal(t, "Minimal budget (<$500)", Field("budget", answers, TemplateIndieTechMarketing))
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$0", formatDollars(0))
	assert.Equal(t, "$999", formatDollars(999))
	assert.Equal(t, "$1,000", formatDollars(1000))
	assert.Equal(t, "$1,234,567", formatDollars(1234567))
	assert.Equal(t, "$1,234.5", formatDollars(1234.5))
	assert.Equal(t, "-$5,000", formatDollars(-5000))
}

func TestSuccessMetricsFormatter(t *testing.T) {
	answers := model.AnswerSet{
		"success-metrics": model.List("signups", "other", "mystery"),
	}
	got := Field("successMetrics", answers, TemplateIndieTechMarketing)
	assert.Equal(t, "- Signups/registrations\n- other\n- mystery\n", got)

	answers["success-metrics-other"] = model.Text("Podcast invites")
	got = Field("successMetrics", answers, TemplateIndieTechMarketing)
	assert.Equal(t, "- Signups/registrations\n- Podcast invites\n- mystery\n", got)

	// Free-text metrics stay as-is.
	answers = model.AnswerSet{"success-metrics": model.Text("10k MRR")}
	assert.Equal(t, "10k MRR", Field("successMetrics", answers, TemplateWebDevelopment))
}

func TestTechStackFormatter(t *testing.T) {
	answers := model.AnswerSet{"technologies": model.List("react", "node")}
	assert.Equal(t, "- React\n- Node.js\n", Field("techStack", answers, TemplateWebDevelopment))

	// indie resolves the primary channel radio instead.
	answers = model.AnswerSet{"primary-channel": model.Text("hacker-news")}
	assert.Equal(t, "Hacker News", Field("techStack", answers, TemplateIndieTechMarketing))

	answers = model.AnswerSet{
		"primary-channel":       model.Text("other"),
		"primary-channel-other": model.Text("Discord servers"),
	}
	assert.Equal(t, "Discord servers", Field("techStack", answers, TemplateIndieTechMarketing))
}

func TestProductTypeFormatter(t *testing.T) {
	answers := model.AnswerSet{"project-type": model.Text("ecommerce")}
	assert.Equal(t, "E-commerce Site", Field("productType", answers, TemplateWebDevelopment))

	answers = model.AnswerSet{
		"project-type":       model.Text("other"),
		"project-type-other": model.Text("Browser extension"),
	}
	assert.Equal(t, "Browser extension", Field("productType", answers, TemplateWebDevelopment))

	// "other" without a companion answer falls back to the raw code.
	answers = model.AnswerSet{"product-type": model.Text("other")}
	assert.Equal(t, "other", Field("productType", answers, TemplateTechProductSaaS))
}

func TestCampaignObjectivesFormatter(t *testing.T) {
	answers := model.AnswerSet{"campaign-objective": model.Text("launch")}
	assert.Equal(t, "Product/feature launch", Field("campaignObjectives", answers, TemplateIndieTechMarketing))

	answers = model.AnswerSet{
		"campaign-objectives":       model.List("brand-awareness", "other"),
		"campaign-objectives-other": model.Text("Win an award"),
	}
	got := Field("campaignObjectives", answers, TemplateDigitalMarketingCampaign)
	assert.Equal(t, "- Brand Awareness\n- Win an award\n", got)
}

func TestPersonalBrandFormatters(t *testing.T) {
	answers := model.AnswerSet{
		"primary-expertise":   model.Text("data-ai"),
		"brand-personality":   model.List("technical", "educator"),
		"primary-platform":    model.Text("github"),
		"content-types":       model.List("blogs", "open-source"),
		"networking-strategy": model.List("meetups"),
	}
	assert.Equal(t, "Data Science/AI", Field("primaryExpertise", answers, TemplatePersonalTechBrand))
	assert.Equal(t, "- Technical authority\n- Educator/mentor\n", Field("brandPersonality", answers, TemplatePersonalTechBrand))
	assert.Equal(t, "GitHub", Field("primaryPlatform", answers, TemplatePersonalTechBrand))
	assert.Equal(t, "- Blog posts/articles\n- Open source contributions\n", Field("contentTypes", answers, TemplatePersonalTechBrand))
	assert.Equal(t, "- Local tech meetups\n", Field("networkingStrategy", answers, TemplatePersonalTechBrand))
}

func TestLabelFallback(t *testing.T) {
	assert.Equal(t, "React", Label(Technologies, "react"))
	assert.Equal(t, "made-up", Label(Technologies, "made-up"))
}
