package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brieffast/brieffast-server/internal/model"
)

func webDevAnswers() model.AnswerSet {
	return model.AnswerSet{
		"project-name":        model.Text("Acme Relaunch"),
		"project-description": model.Text("Rebuild the marketing site with a CMS behind it."),
		"project-type":        model.Text("website-redesign"),
		"primary-goals":       model.List("lead-generation", "other"),
		"primary-goals-other": model.Text("Hire more engineers"),
		"target-audience":     model.Text("CTOs at mid-size companies"),
		"success-metrics":     model.Text("Double inbound leads"),
		"technologies":        model.List("react", "no-preference", "other"),
		"technologies-other":  model.Text("Astro"),
		"features":            model.List("cms", "contact-form", "other"),
		"features-other":      model.Text("Careers board"),
		"hosting":             model.Text("need-recommendations"),
		"design-preferences":  model.Text("need-inspiration"),
		"inspiration-sites":   model.Text("linear.app, stripe.com"),
		"responsive-design":   model.List("mobile", "desktop"),
		"accessibility":       model.Text("wcag-aa"),
		"timeline":            model.Text("3-6-months"),
		"start-date":          model.Text("2026-10-01"),
		"budget-range":        model.Text("25k-50k"),
		"additional-info":     model.Text("Existing brand guidelines apply."),
	}
}

func TestWebDevelopmentBrief(t *testing.T) {
	md := webDevelopmentBrief(webDevAnswers())

	want := "# Web Development Brief\n\n" +
		"## Project Overview\n\n" +
		"**Project Name:** Acme Relaunch\n\n" +
		"**Project Description:**\nRebuild the marketing site with a CMS behind it.\n\n" +
		"**Project Type:** website-redesign\n\n" +
		"## Project Goals\n\n" +
		"**Primary Goals:**\n\n" +
		"- Generate leads\n" +
		"- Hire more engineers\n\n" +
		"**Target Audience:**\n\nCTOs at mid-size companies\n\n" +
		"**Success Metrics:**\n\nDouble inbound leads\n\n" +
		"## Technical Requirements\n\n" +
		"**Preferred Technologies:**\n\n" +
		"- react\n" +
		"- No specific technology preference\n" +
		"- Astro\n\n" +
		"**Required Features:**\n\n" +
		"- Content management system\n" +
		"- Contact form\n" +
		"- Careers board\n\n" +
		"**Hosting Preferences:** Client needs hosting recommendations\n\n" +
		"## Design & User Experience\n\n" +
		"**Design Preferences:** Client needs inspiration from existing sites\n\n" +
		"**Inspiration Websites:**\n\nlinear.app, stripe.com\n\n" +
		"**Responsive Design Requirements:**\n\n" +
		"- mobile-friendly\n" +
		"- desktop-friendly\n\n" +
		"**Accessibility Requirements:** WCAG 2.1 AA compliance required\n\n" +
		"## Timeline & Budget\n\n" +
		"**Project Timeline:** 3-6 months\n\n" +
		"**Desired Start Date:** 2026-10-01\n\n" +
		"**Budget Range:** $25,000 - $50,000\n\n" +
		"## Additional Information\n\nExisting brand guidelines apply.\n\n"

	assert.Equal(t, want, md)

	// Same answers, same document.
	assert.Equal(t, md, webDevelopmentBrief(webDevAnswers()))
}

func TestWebDevelopmentBriefMissingAnswers(t *testing.T) {
	md := webDevelopmentBrief(model.AnswerSet{})

	// Fixed headings are always present with N/A placeholders for the basics.
	assert.Contains(t, md, "**Project Name:** N/A")
	assert.Contains(t, md, "**Project Description:**\nN/A")
	assert.Contains(t, md, "## Project Goals")
	assert.Contains(t, md, "## Technical Requirements")
	assert.Contains(t, md, "## Design & User Experience")
	assert.Contains(t, md, "## Timeline & Budget")
	assert.NotContains(t, md, "## Additional Information")
	assert.NotContains(t, md, "**Project Type:**")
}

func TestWebDevelopmentBriefOtherProjectType(t *testing.T) {
	md := webDevelopmentBrief(model.AnswerSet{
		"project-type":       model.Text("other"),
		"project-type-other": model.Text("Kiosk app"),
	})
	assert.Contains(t, md, "**Project Type:** other - Kiosk app\n\n")
}
