package brief

// Canonical code-to-label tables. The questionnaire stores option codes;
// generators render the human-readable label and fall back to the raw code
// for anything unrecognized. One table per domain concept, shared by the
// normalizer, the section engine and the legacy generator.

// Label translates a code through a table, falling back to the code itself.
func Label(table map[string]string, code string) string {
	if l, ok := table[code]; ok {
		return l
	}
	return code
}

// Budgets covers both questionnaire budget ranges and the allocation-style
// answers used by the marketing and personal-brand templates.
var Budgets = map[string]string{
	"less-than-5k":  "Less than $5,000",
	"5k-10k":        "$5,000 - $10,000",
	"10k-25k":       "$10,000 - $25,000",
	"25k-50k":       "$25,000 - $50,000",
	"more-than-50k": "More than $50,000",
	"not-sure":      "Not sure / Need guidance",

	"time-only":   "Time only - no monetary budget",
	"no-budget":   "No budget - using free resources only",
	"minimal":     "Minimal budget (<$500)",
	"moderate":    "Moderate budget ($500-$2000)",
	"significant": "Significant budget (>$2000)",
}

// Timelines covers project timelines, campaign durations and development
// timelines across templates.
var Timelines = map[string]string{
	"less-than-1-month":  "Less than 1 month",
	"1-3-months":         "1-3 months",
	"3-6-months":         "3-6 months",
	"more-than-6-months": "More than 6 months",
	"no-deadline":        "No specific deadline",

	"one-time": "One-time event/announcement",
	"short":    "Short campaign (1-2 weeks)",
	"medium":   "Medium campaign (2-4 weeks)",
	"extended": "Extended campaign (1-3 months)",
	"ongoing":  "Ongoing/evergreen",

	"1-month":       "1 month or less",
	"6-plus-months": "6+ months",
}

var Technologies = map[string]string{
	"react":         "React",
	"angular":       "Angular",
	"vue":           "Vue.js",
	"node":          "Node.js",
	"php":           "PHP",
	"wordpress":     "WordPress",
	"shopify":       "Shopify",
	"no-preference": "No specific technology preference",
}

// Channels covers both the primary marketing channel radio and the
// additional-channels multi-select.
var Channels = map[string]string{
	"product-hunt":    "Product Hunt",
	"twitter":         "Twitter/X",
	"linkedin":        "LinkedIn",
	"reddit":          "Reddit",
	"hacker-news":     "Hacker News",
	"dev-communities": "Developer communities",
	"email":           "Email newsletter",
	"content":         "Content marketing/blog",
}

var ProductTypes = map[string]string{
	"saas":        "Software as a Service (SaaS)",
	"mobile-app":  "Mobile Application",
	"desktop-app": "Desktop Application",
	"api":         "API/Developer Tool",
	"hardware":    "Hardware/IoT Product",

	"new-website":      "New Website",
	"website-redesign": "Website Redesign",
	"web-application":  "Web Application",
	"ecommerce":        "E-commerce Site",
	"landing-page":     "Landing Page",
}

// CampaignObjectives translates the single-choice objective used by the
// indie-tech-marketing template.
var CampaignObjectives = map[string]string{
	"launch":      "Product/feature launch",
	"acquisition": "User/customer acquisition",
	"awareness":   "Brand awareness",
	"leads":       "Lead generation",
	"retention":   "Retention/engagement",
}

// CampaignObjectivesMulti translates the multi-select objectives used by the
// campaign and launch templates.
var CampaignObjectivesMulti = map[string]string{
	"brand-awareness":    "Brand Awareness",
	"lead-generation":    "Lead Generation",
	"sales-conversion":   "Sales Conversion",
	"customer-retention": "Customer Retention",
	"product-launch":     "Product Launch",
}

var SuccessMetrics = map[string]string{
	"signups":      "Signups/registrations",
	"traffic":      "Website traffic",
	"engagement":   "Social media engagement",
	"product-hunt": "Product Hunt upvotes/ranking",
	"downloads":    "Downloads/installations",
	"mentions":     "Media/blog mentions",
	"revenue":      "Direct revenue",

	"views":       "Page views/traffic",
	"subscribers": "Email subscribers",
	"social":      "Social sharing/engagement",
	"leads":       "Lead generation",
	"seo":         "SEO rankings/backlinks",
	"community":   "Community growth",
}

var PersonalBrandMetrics = map[string]string{
	"portfolio":   "Complete professional portfolio",
	"network":     "Expanded professional network",
	"recognition": "Industry recognition",
	"speaking":    "Speaking opportunities",
	"clients":     "Client/job opportunities",
	"followers":   "Social media following",
}

var Expertise = map[string]string{
	"development":    "Software Development",
	"design":         "Design/UX",
	"devops":         "DevOps/Infrastructure",
	"data-ai":        "Data Science/AI",
	"tech-marketing": "Technical Marketing",
	"product":        "Product Management",
}

var PersonalityTraits = map[string]string{
	"technical":    "Technical authority",
	"approachable": "Approachable expert",
	"innovative":   "Innovative thinker",
	"pragmatic":    "Pragmatic problem-solver",
	"educator":     "Educator/mentor",
	"bold":         "Bold/challenging status quo",
}

var VisualIdentity = map[string]string{
	"logo":             "Logo",
	"colors":           "Color scheme",
	"typography":       "Typography system",
	"photos":           "Profile photos",
	"social-templates": "Social media templates",
	"presentations":    "Presentation templates",
}

var Platforms = map[string]string{
	"twitter":  "Twitter/X",
	"linkedin": "LinkedIn",
	"github":   "GitHub",
	"blog":     "Personal blog/website",
	"youtube":  "YouTube",
}

var ContentTypes = map[string]string{
	"blogs":           "Blog posts/articles",
	"videos":          "Video tutorials/talks",
	"newsletters":     "Email newsletters",
	"podcasts":        "Podcasts/audio content",
	"courses":         "Courses/educational content",
	"open-source":     "Open source contributions",
	"speaking-events": "Speaking at events/conferences",
}

var NetworkingStrategies = map[string]string{
	"conferences":     "Industry conferences",
	"communities":     "Online tech communities",
	"mentorship":      "Mentorship programs",
	"co-creation":     "Co-creation with peers",
	"industry-groups": "Industry groups/associations",
	"meetups":         "Local tech meetups",
}

// CampaignChannels translates the digital-marketing-campaign channel
// multi-select (distinct from the indie marketing Channels table).
var CampaignChannels = map[string]string{
	"social-media": "Social Media",
	"email":        "Email Marketing",
	"content":      "Content Marketing",
	"seo":          "Search Engine Optimization",
	"ppc":          "Pay-Per-Click Advertising",
	"influencer":   "Influencer Marketing",
}

var MarketingAssets = map[string]string{
	"landing-page":    "Landing Page",
	"social-media":    "Social Media Assets",
	"email-templates": "Email Templates",
	"press-release":   "Press Release",
	"product-videos":  "Product Videos",
	"case-studies":    "Case Studies",
}

var PrimaryGoals = map[string]string{
	"brand-awareness": "Increase brand awareness",
	"lead-generation": "Generate leads",
	"sales":           "Sell products/services",
	"information":     "Provide information",
	"ux":              "Improve user experience",
}

var Features = map[string]string{
	"auth":         "User authentication",
	"cms":          "Content management system",
	"ecommerce":    "E-commerce functionality",
	"blog":         "Blog",
	"search":       "Search functionality",
	"contact-form": "Contact form",
	"social-media": "Social media integration",
	"analytics":    "Analytics",
}

var HostingPreferences = map[string]string{
	"need-recommendations": "Client needs hosting recommendations",
	"own-hosting":          "Client has their own hosting",
	"not-sure":             "Client is not sure about hosting yet",
}

var DesignPreferences = map[string]string{
	"brand-guidelines": "Client has brand guidelines to follow",
	"new-design":       "Client needs a completely new design",
	"mockups-ready":    "Client has design mockups ready",
	"need-inspiration": "Client needs inspiration from existing sites",
}

var Accessibility = map[string]string{
	"wcag-aa":      "WCAG 2.1 AA compliance required",
	"wcag-aaa":     "WCAG 2.1 AAA compliance required",
	"basic":        "Basic accessibility is fine",
	"not-priority": "Accessibility is not a priority",
}
