package brief

import (
	"fmt"
	"strings"

	"github.com/brieffast/brieffast-server/internal/model"
)

// legacyGenerator is a long-form generator predating the section engine.
// The registry keys the category; registered categories bypass the section
// engine entirely.
type legacyGenerator func(answers model.AnswerSet) string

var legacyGenerators = map[string]legacyGenerator{
	TemplateWebDevelopment: webDevelopmentBrief,
}

func orNA(v model.Value) string {
	if v.IsEmpty() {
		return "N/A"
	}
	return v.String()
}

// webDevelopmentBrief renders the full fixed-layout web development brief,
// including the document title heading. Sections appear in fixed order and
// the overview, goals, technical, design and timeline headings are always
// present even when their answers are missing.
func webDevelopmentBrief(answers model.AnswerSet) string {
	var b strings.Builder

	b.WriteString("# Web Development Brief\n\n")

	b.WriteString("## Project Overview\n\n")
	fmt.Fprintf(&b, "**Project Name:** %s\n\n", orNA(answers.Get("project-name")))
	fmt.Fprintf(&b, "**Project Description:**\n%s\n\n", orNA(answers.Get("project-description")))

	if pt := answers.Get("project-type"); !pt.IsEmpty() {
		fmt.Fprintf(&b, "**Project Type:** %s", pt.String())
		if pt.Equals("other") && answers.Has("project-type-other") {
			fmt.Fprintf(&b, " - %s", answers.Get("project-type-other").String())
		}
		b.WriteString("\n\n")
	}

	b.WriteString("## Project Goals\n\n")
	if goals := answers.Get("primary-goals"); goals.IsList() && !goals.IsEmpty() {
		b.WriteString("**Primary Goals:**\n\n")
		for _, goal := range goals.Strings() {
			if goal == "other" {
				if answers.Has("primary-goals-other") {
					fmt.Fprintf(&b, "- %s\n", answers.Get("primary-goals-other").String())
				}
				continue
			}
			fmt.Fprintf(&b, "- %s\n", Label(PrimaryGoals, goal))
		}
		b.WriteString("\n")
	}
	if audience := answers.Get("target-audience"); !audience.IsEmpty() {
		fmt.Fprintf(&b, "**Target Audience:**\n\n%s\n\n", audience.String())
	}
	if metrics := answers.Get("success-metrics"); !metrics.IsEmpty() {
		fmt.Fprintf(&b, "**Success Metrics:**\n\n%s\n\n", metrics.String())
	}

	b.WriteString("## Technical Requirements\n\n")
	if techs := answers.Get("technologies"); techs.IsList() && !techs.IsEmpty() {
		b.WriteString("**Preferred Technologies:**\n\n")
		for _, tech := range techs.Strings() {
			switch {
			case tech == "other":
				if answers.Has("technologies-other") {
					fmt.Fprintf(&b, "- %s\n", answers.Get("technologies-other").String())
				}
			case tech == "no-preference":
				b.WriteString("- No specific technology preference\n")
			default:
				fmt.Fprintf(&b, "- %s\n", tech)
			}
		}
		b.WriteString("\n")
	}
	if features := answers.Get("features"); features.IsList() && !features.IsEmpty() {
		b.WriteString("**Required Features:**\n\n")
		for _, feature := range features.Strings() {
			if feature == "other" {
				if answers.Has("features-other") {
					fmt.Fprintf(&b, "- %s\n", answers.Get("features-other").String())
				}
				continue
			}
			fmt.Fprintf(&b, "- %s\n", Label(Features, feature))
		}
		b.WriteString("\n")
	}
	if hosting := answers.Get("hosting"); !hosting.IsEmpty() {
		fmt.Fprintf(&b, "**Hosting Preferences:** %s\n\n", Label(HostingPreferences, hosting.String()))
	}

	b.WriteString("## Design & User Experience\n\n")
	if prefs := answers.Get("design-preferences"); !prefs.IsEmpty() {
		fmt.Fprintf(&b, "**Design Preferences:** %s\n\n", Label(DesignPreferences, prefs.String()))
		if prefs.Equals("need-inspiration") && answers.Has("inspiration-sites") {
			fmt.Fprintf(&b, "**Inspiration Websites:**\n\n%s\n\n", answers.Get("inspiration-sites").String())
		}
	}
	if responsive := answers.Get("responsive-design"); responsive.IsList() && !responsive.IsEmpty() {
		b.WriteString("**Responsive Design Requirements:**\n\n")
		for _, device := range responsive.Strings() {
			fmt.Fprintf(&b, "- %s-friendly\n", device)
		}
		b.WriteString("\n")
	}
	if access := answers.Get("accessibility"); !access.IsEmpty() {
		fmt.Fprintf(&b, "**Accessibility Requirements:** %s\n\n", Label(Accessibility, access.String()))
	}

	b.WriteString("## Timeline & Budget\n\n")
	if timeline := answers.Get("timeline"); !timeline.IsEmpty() {
		fmt.Fprintf(&b, "**Project Timeline:** %s\n\n", Label(Timelines, timeline.String()))
	}
	if start := answers.Get("start-date"); !start.IsEmpty() {
		fmt.Fprintf(&b, "**Desired Start Date:** %s\n\n", start.String())
	}
	if budget := answers.Get("budget-range"); !budget.IsEmpty() {
		fmt.Fprintf(&b, "**Budget Range:** %s\n\n", Label(Budgets, budget.String()))
	}

	if info := answers.Get("additional-info"); !info.IsEmpty() {
		fmt.Fprintf(&b, "## Additional Information\n\n%s\n\n", info.String())
	}

	return b.String()
}
