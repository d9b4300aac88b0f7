package catalogs

import (
	"fmt"
	"time"

	"github.com/example/launchlist/internal/models"
)

// Local SEO catalog categories.
const (
	CategoryWebsite   models.Category = "website"
	CategoryGBP       models.Category = "gbp"
	CategoryContent   models.Category = "content"
	CategoryCitations models.Category = "citations"
	CategoryReviews   models.Category = "reviews"
	CategoryLinks     models.Category = "links"
)

// LocalSEOStorageKey is the persistence key of the local SEO checklist.
const LocalSEOStorageKey = "local-seo-checklist-state"

// reviewPeriod is the distance between launch date and review date in the trailer.
const reviewPeriod = 6 * 30 * 24 * time.Hour

// LocalSEO is the local search launch checklist.
var LocalSEO = models.MustCatalog(models.CatalogDefinition{
	Slug:        "local-seo",
	Name:        "Local SEO Launch Checklist",
	Subtitle:    "2026 Edition",
	ReportTitle: "Local SEO Launch Checklist Report – 2026 Edition",
	StorageKey:  LocalSEOStorageKey,
	Categories: []models.CategoryLabel{
		{Category: CategoryWebsite, Label: "Website Structure & On-Page"},
		{Category: CategoryGBP, Label: "Google Business Profile"},
		{Category: CategoryContent, Label: "Content Strategy"},
		{Category: CategoryCitations, Label: "Citations & Directories"},
		{Category: CategoryReviews, Label: "Reviews & Social Proof"},
		{Category: CategoryLinks, Label: "Link Building"},
	},
	Tasks:   localSEOTasks,
	Trailer: localSEOTrailer,
})

func localSEOTrailer(now time.Time) []models.TrailerBlock {
	return []models.TrailerBlock{{
		Heading: "The Brutal Truth",
		Paragraphs: []string{
			"Most businesses fail because they half-do 4-5 of these items for 6 weeks and quit.",
			"Do **every item** on this list **every month** for **6 straight months** → results compound dramatically.",
			fmt.Sprintf("Launch date: %s\n6-month review date: %s", shortDate(now), shortDate(now.Add(reviewPeriod))),
			"Print it. Pin it. Track it. Go dominate your city.",
		},
	}}
}

// shortDate formats t as M/D/YYYY.
func shortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

var localSEOTasks = []models.Task{
	{
		ID:          "web-address-footer",
		Title:       "Full Address in Footer",
		Description: "Put your full physical address (street, city, state, ZIP) in the footer of every page.",
		Category:    CategoryWebsite,
		Prompt:      "Add my full business address (street, city, state, ZIP) to the footer component that appears on every page of my website. Make it styled consistently and include proper Schema.org markup for the address.",
	},
	{
		ID:          "web-phone-visible",
		Title:       "Phone Number Above Fold",
		Description: "Make your phone number visible without scrolling (header / top bar / sticky CTA).",
		Category:    CategoryWebsite,
		Prompt:      "Add my business phone number to the header or create a sticky top bar that keeps it visible above the fold at all times. Make it clickable with tel: link for mobile users.",
	},
	{
		ID:          "web-title-keyword",
		Title:       "Front-load Keywords in Title",
		Description: "Front-load your main keyword in the <title> tag. Example: \"Tree Removal Sacramento | Fast 24/7 Service\"",
		Category:    CategoryWebsite,
		Prompt:      "Review all page titles and rewrite them to front-load my primary service keyword + city name. Keep titles under 60 characters and make them compelling for local search. Show me the updated title tags.",
	},
	{
		ID:          "web-h1-keyword",
		Title:       "H1 with Keyword + City",
		Description: "Every important H1 should contain the primary keyword + city. Example: \"Emergency Tree Removal in Sacramento\"",
		Category:    CategoryWebsite,
		Prompt:      "Audit all H1 tags across my site and ensure each includes my primary service keyword + city name naturally. Rewrite them to be compelling while maintaining SEO best practices.",
	},
	{
		ID:          "web-url-slugs",
		Title:       "Descriptive URL Slugs",
		Description: "URL slugs must be descriptive, readable, and keyword-inclusive. Good: /tree-removal-sacramento",
		Category:    CategoryWebsite,
		Prompt:      "Review all URL slugs and make them descriptive, lowercase, hyphen-separated, and keyword-rich. Convert any generic slugs (like /service-1 or /page-2) into semantic URLs that include service and location keywords.",
	},
	{
		ID:          "web-no-cannibalization",
		Title:       "Avoid Keyword Cannibalization",
		Description: "Never build two pages targeting the same service + city keyword combo (Google ranks neither).",
		Category:    CategoryWebsite,
		Prompt:      "Analyze my site structure and identify any pages targeting the same service + city keyword combination. Help me consolidate duplicate pages or differentiate them with unique keyword variations to avoid cannibalization.",
	},
	{
		ID:          "web-indexed",
		Title:       "Confirm Site Indexing",
		Description: "Search \"site:yourdomain.com\" in Google to confirm indexing. Fix in Search Console if missing.",
		Category:    CategoryWebsite,
		Prompt:      "Check if my site is properly indexed by Google. Generate a sitemap.xml file, add it to robots.txt, and show me how to submit it to Google Search Console. Ensure there are no noindex tags blocking important pages.",
	},
	{
		ID:          "web-404-check",
		Title:       "Check for 404 Errors",
		Description: "Check for 404 errors weekly using Google Search Console Coverage report or crawler.",
		Category:    CategoryWebsite,
		Prompt:      "Help me set up 404 error monitoring. Create a custom 404 page with helpful navigation. Show me how to check for broken links using Google Search Console and fix or redirect any 404 errors.",
	},
	{
		ID:          "gbp-link-location",
		Title:       "Link GBP to Location Page",
		Description: "Link Google Business Profile to your location/service-area page, NOT the homepage.",
		Category:    CategoryGBP,
		Prompt:      "Create a dedicated location/service-area landing page optimized for my city that I can link from my Google Business Profile. Include address, service areas, embedded map, hours, and local content.",
	},
	{
		ID:          "gbp-weekly-photo",
		Title:       "Upload Photo Every Week",
		Description: "Upload at least one new photo every single week (progress shots, team, vehicles, completed jobs).",
		Category:    CategoryGBP,
		Prompt:      "Create a photo upload checklist and template for weekly Google Business Profile updates. Include categories: project progress, completed work, team photos, equipment/vehicles, and behind-the-scenes content.",
	},
	{
		ID:          "gbp-reply-reviews",
		Title:       "Reply to Every Review",
		Description: "Reply to every review (good or bad) within 24 hours.",
		Category:    CategoryGBP,
		Prompt:      "Generate review response templates for positive and negative reviews. Include personalization points, thank you messages, and professional responses to criticism. Make them natural, not robotic.",
	},
	{
		ID:          "gbp-products-section",
		Title:       "Complete Products Section",
		Description: "Fill out the Products section completely with descriptions, photos, and price ranges.",
		Category:    CategoryGBP,
		Prompt:      "Create a structured list of my services formatted for Google Business Profile Products section. Include compelling descriptions, price ranges, and what photos I should take for each service offering.",
	},
	{
		ID:          "gbp-primary-category",
		Title:       "Match Competitor Categories",
		Description: "Match your primary GBP category to what the top 3 ranking competitors use.",
		Category:    CategoryGBP,
		Prompt:      "Research the top 3 competitors in my area and identify what primary Google Business Profile categories they use. Recommend which category I should select and any relevant secondary categories.",
	},
	{
		ID:          "gbp-keyword-posts",
		Title:       "Keywords in GBP Posts",
		Description: "Put your main keyword + city naturally in every GBP post/update.",
		Category:    CategoryGBP,
		Prompt:      "Generate 4-6 Google Business Profile post templates that naturally include my service keyword + city. Include call-to-actions, seasonal angles, and promotional messaging that I can reuse monthly.",
	},
	{
		ID:          "content-commercial-intent",
		Title:       "Target Commercial Intent Keywords",
		Description: "Target \"service + city\" searches only (e.g., \"tree removal sacramento\"). Avoid \"how to\" or DIY queries.",
		Category:    CategoryContent,
		Prompt:      "Analyze my content strategy and identify any pages targeting informational or DIY keywords. Help me pivot to commercial intent keywords (service + city) that attract ready-to-buy customers, not DIY researchers.",
	},
	{
		ID:          "content-no-generic-blogs",
		Title:       "Skip Generic Blog Posts",
		Description: "Stop writing generic blog posts. Focus on service pages, location pages, reviews, and before/afters.",
		Category:    CategoryContent,
		Prompt:      "Audit my blog content and identify low-value generic posts. Help me create high-converting content templates: service pages, neighborhood/location pages, customer success stories, and before/after project showcases.",
	},
	{
		ID:          "citations-yelp",
		Title:       "Yelp Listing",
		Description: "Create/claim/verify consistent NAP (Name, Address, Phone) listing on Yelp.",
		Category:    CategoryCitations,
		Prompt:      "Create a business profile template with consistent NAP (Name, Address, Phone) information formatted correctly for Yelp. Include category selection, business description, and photo recommendations.",
	},
	{
		ID:          "citations-bbb",
		Title:       "Better Business Bureau",
		Description: "Create/claim/verify consistent NAP listing on BBB.",
		Category:    CategoryCitations,
		Prompt:      "Generate my business information formatted for Better Business Bureau submission. Ensure NAP consistency with my Google Business Profile and website. Include business description and accreditation benefits.",
	},
	{
		ID:          "citations-yellowpages",
		Title:       "YellowPages Listing",
		Description: "Create/claim/verify consistent NAP listing on YellowPages.",
		Category:    CategoryCitations,
		Prompt:      "Format my business details for YellowPages directory submission. Ensure exact NAP match with other listings. Include relevant categories and compelling business description.",
	},
	{
		ID:          "citations-chamber",
		Title:       "Local Chamber of Commerce",
		Description: "Create/claim/verify listing on Local Chamber of Commerce.",
		Category:    CategoryCitations,
		Prompt:      "Help me find my local Chamber of Commerce website and prepare my business profile information for membership and directory listing. Include networking and local link building benefits.",
	},
	{
		ID:          "citations-bing",
		Title:       "Bing Places Verification",
		Description: "Get verified on Bing Places (LLMs and map results still pull heavily from Bing).",
		Category:    CategoryCitations,
		Prompt:      "Create my business profile for Bing Places with consistent NAP information. Show me the verification process and why Bing matters for LLM citations and voice search results.",
	},
	{
		ID:          "reviews-systematic-requests",
		Title:       "Systematic Review Requests",
		Description: "Ask every single customer for a Google review (text, email, QR code, post-service automation).",
		Category:    CategoryReviews,
		Prompt:      "Create a systematic review request system: follow-up email template, SMS text message, QR code for Google review link, and ideal timing for asking after service completion. Make it easy and non-pushy.",
	},
	{
		ID:          "links-homepage-focus",
		Title:       "Focus Backlinks on Homepage",
		Description: "Send 80-90% of your early backlinks to the homepage.",
		Category:    CategoryLinks,
		Prompt:      "Create a local link building strategy focused on getting backlinks to my homepage. Identify opportunities: local sponsorships, community partnerships, supplier directories, and local business associations.",
	},
	{
		ID:          "links-branded-anchors",
		Title:       "Use Branded Anchor Text",
		Description: "Use mostly branded anchor text like \"[Business Name]\" or \"visit [Business Name]\" (safest and powerful).",
		Category:    CategoryLinks,
		Prompt:      "Generate a list of safe branded anchor text variations I can use in outreach and link building. Include business name variations, URLs, and natural branded phrases that avoid over-optimization penalties.",
	},
}
