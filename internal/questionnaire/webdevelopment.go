package questionnaire

import "github.com/brieffast/brieffast-server/internal/model"

// WebDevelopment is the questionnaire behind the web-development template.
var WebDevelopment = Questionnaire{
	ID:          "web-development-questionnaire",
	TemplateID:  "web-development",
	Title:       "Web Development Brief",
	Description: "Create a detailed brief for your web development project",
	Steps: []Step{
		{ID: 1, Title: "Project Basics", Description: "Let's start with the basic information about your project"},
		{ID: 2, Title: "Project Goals", Description: "What are you trying to achieve with this project?"},
		{ID: 3, Title: "Technical Requirements", Description: "Let's get into the technical details of your project"},
		{ID: 4, Title: "Design & UX", Description: "Tell us about your design and user experience preferences"},
		{ID: 5, Title: "Timeline & Budget", Description: "When do you need this completed and what's your budget?"},
	},
	Questions: []Question{
		{
			ID:          "project-name",
			Type:        TypeText,
			Label:       "Project Name",
			Placeholder: "e.g., Company Website Redesign",
			Validation:  []Rule{{Type: RuleRequired, Message: "Project name is required"}},
			Step:        1,
		},
		{
			ID:          "project-description",
			Type:        TypeTextarea,
			Label:       "Project Description",
			Placeholder: "Briefly describe your project...",
			Validation: []Rule{
				{Type: RuleRequired, Message: "Project description is required"},
				{Type: RuleMinLength, Limit: 50, Message: "Please provide at least 50 characters"},
			},
			Step: 1,
		},
		{
			ID:    "project-type",
			Type:  TypeRadio,
			Label: "Project Type",
			Options: []Option{
				{Label: "New Website", Value: "new-website"},
				{Label: "Website Redesign", Value: "website-redesign"},
				{Label: "Web Application", Value: "web-application"},
				{Label: "E-commerce Site", Value: "ecommerce"},
				{Label: "Landing Page", Value: "landing-page"},
				{Label: "Other", Value: "other"},
			},
			Validation: []Rule{{Type: RuleRequired, Message: "Please select a project type"}},
			Step:       1,
		},
		{
			ID:         "project-type-other",
			Type:       TypeText,
			Label:      "Please specify the project type",
			Conditions: []Condition{{QuestionID: "project-type", Operator: OpEq, Value: model.Text("other")}},
			Validation: []Rule{{Type: RuleRequired, Message: "Please specify the project type"}},
			Step:       1,
		},

		{
			ID:       "primary-goals",
			Type:     TypeMultiSelect,
			Label:    "Primary Goals",
			HelpText: "What are the main goals of this project?",
			Options: []Option{
				{Label: "Increase brand awareness", Value: "brand-awareness"},
				{Label: "Generate leads", Value: "lead-generation"},
				{Label: "Sell products/services", Value: "sales"},
				{Label: "Provide information", Value: "information"},
				{Label: "Improve user experience", Value: "ux"},
				{Label: "Other", Value: "other"},
			},
			Validation: []Rule{{Type: RuleRequired, Message: "Please select at least one goal"}},
			Step:       2,
		},
		{
			ID:         "primary-goals-other",
			Type:       TypeText,
			Label:      "Please specify your other goal(s)",
			Conditions: []Condition{{QuestionID: "primary-goals", Operator: OpIncludes, Value: model.Text("other")}},
			Validation: []Rule{{Type: RuleRequired, Message: "Please specify your other goal(s)"}},
			Step:       2,
		},
		{
			ID:          "target-audience",
			Type:        TypeTextarea,
			Label:       "Target Audience",
			Placeholder: "Describe your target audience (age, interests, demographics, etc.)",
			Validation:  []Rule{{Type: RuleRequired, Message: "Target audience is required"}},
			Step:        2,
		},
		{
			ID:          "success-metrics",
			Type:        TypeTextarea,
			Label:       "Success Metrics",
			Placeholder: "How will you measure the success of this project?",
			Validation:  []Rule{{Type: RuleRequired, Message: "Success metrics are required"}},
			Step:        2,
		},

		{
			ID:       "technologies",
			Type:     TypeMultiSelect,
			Label:    "Preferred Technologies",
			HelpText: "Select any specific technologies you want to use",
			Options: []Option{
				{Label: "React", Value: "react"},
				{Label: "Angular", Value: "angular"},
				{Label: "Vue.js", Value: "vue"},
				{Label: "Node.js", Value: "node"},
				{Label: "PHP", Value: "php"},
				{Label: "WordPress", Value: "wordpress"},
				{Label: "Shopify", Value: "shopify"},
				{Label: "No preference", Value: "no-preference"},
				{Label: "Other", Value: "other"},
			},
			Step: 3,
		},
		{
			ID:         "technologies-other",
			Type:       TypeText,
			Label:      "Please specify other technologies",
			Conditions: []Condition{{QuestionID: "technologies", Operator: OpIncludes, Value: model.Text("other")}},
			Validation: []Rule{{Type: RuleRequired, Message: "Please specify the other technologies"}},
			Step:       3,
		},
		{
			ID:       "features",
			Type:     TypeMultiSelect,
			Label:    "Required Features",
			HelpText: "Select the features you need in your project",
			Options: []Option{
				{Label: "User authentication", Value: "auth"},
				{Label: "Content management system", Value: "cms"},
				{Label: "E-commerce functionality", Value: "ecommerce"},
				{Label: "Blog", Value: "blog"},
				{Label: "Search functionality", Value: "search"},
				{Label: "Contact form", Value: "contact-form"},
				{Label: "Social media integration", Value: "social-media"},
				{Label: "Analytics", Value: "analytics"},
				{Label: "Other", Value: "other"},
			},
			Validation: []Rule{{Type: RuleRequired, Message: "Please select at least one feature"}},
			Step:       3,
		},
		{
			ID:         "features-other",
			Type:       TypeTextarea,
			Label:      "Please describe other features",
			Conditions: []Condition{{QuestionID: "features", Operator: OpIncludes, Value: model.Text("other")}},
			Validation: []Rule{{Type: RuleRequired, Message: "Please describe the other features"}},
			Step:       3,
		},
		{
			ID:    "hosting",
			Type:  TypeRadio,
			Label: "Hosting Preferences",
			Options: []Option{
				{Label: "I need hosting recommendations", Value: "need-recommendations"},
				{Label: "I have my own hosting", Value: "own-hosting"},
				{Label: "Not sure yet", Value: "not-sure"},
			},
			Step: 3,
		},

		{
			ID:    "design-preferences",
			Type:  TypeRadio,
			Label: "Design Preferences",
			Options: []Option{
				{Label: "I have brand guidelines to follow", Value: "brand-guidelines"},
				{Label: "I need a completely new design", Value: "new-design"},
				{Label: "I have design mockups ready", Value: "mockups-ready"},
				{Label: "I need inspiration from existing sites", Value: "need-inspiration"},
			},
			Validation: []Rule{{Type: RuleRequired, Message: "Please select a design preference"}},
			Step:       4,
		},
		{
			ID:          "inspiration-sites",
			Type:        TypeTextarea,
			Label:       "Inspiration Websites",
			Placeholder: "List any websites you like the design/functionality of...",
			Conditions:  []Condition{{QuestionID: "design-preferences", Operator: OpEq, Value: model.Text("need-inspiration")}},
			Validation:  []Rule{{Type: RuleRequired, Message: "Please provide at least one inspiration website"}},
			Step:        4,
		},
		{
			ID:    "responsive-design",
			Type:  TypeCheckbox,
			Label: "Responsive Design Requirements",
			Options: []Option{
				{Label: "Mobile-friendly", Value: "mobile"},
				{Label: "Tablet-friendly", Value: "tablet"},
				{Label: "Desktop-friendly", Value: "desktop"},
			},
			Validation: []Rule{{Type: RuleRequired, Message: "Please select at least one device type"}},
			Step:       4,
		},
		{
			ID:    "accessibility",
			Type:  TypeRadio,
			Label: "Accessibility Requirements",
			Options: []Option{
				{Label: "WCAG 2.1 AA compliance required", Value: "wcag-aa"},
				{Label: "WCAG 2.1 AAA compliance required", Value: "wcag-aaa"},
				{Label: "Basic accessibility is fine", Value: "basic"},
				{Label: "Not a priority", Value: "not-priority"},
			},
			Step: 4,
		},

		{
			ID:    "timeline",
			Type:  TypeRadio,
			Label: "Project Timeline",
			Options: []Option{
				{Label: "Less than 1 month", Value: "less-than-1-month"},
				{Label: "1-3 months", Value: "1-3-months"},
				{Label: "3-6 months", Value: "3-6-months"},
				{Label: "More than 6 months", Value: "more-than-6-months"},
				{Label: "No specific deadline", Value: "no-deadline"},
			},
			Validation: []Rule{{Type: RuleRequired, Message: "Please select a timeline"}},
			Step:       5,
		},
		{
			ID:         "start-date",
			Type:       TypeDate,
			Label:      "Desired Start Date",
			Validation: []Rule{{Type: RuleRequired, Message: "Please select a start date"}},
			Step:       5,
		},
		{
			ID:    "budget-range",
			Type:  TypeRadio,
			Label: "Budget Range",
			Options: []Option{
				{Label: "Less than $5,000", Value: "less-than-5k"},
				{Label: "$5,000 - $10,000", Value: "5k-10k"},
				{Label: "$10,000 - $25,000", Value: "10k-25k"},
				{Label: "$25,000 - $50,000", Value: "25k-50k"},
				{Label: "More than $50,000", Value: "more-than-50k"},
				{Label: "Not sure / Need guidance", Value: "not-sure"},
			},
			Validation: []Rule{{Type: RuleRequired, Message: "Please select a budget range"}},
			Step:       5,
		},
		{
			ID:          "additional-info",
			Type:        TypeTextarea,
			Label:       "Additional Information",
			Placeholder: "Any other details you'd like to share about your project...",
			Step:        5,
		},
	},
}
