package catalogs

import "github.com/example/launchlist/internal/models"

// Go-live catalog categories.
const (
	CategorySEO           models.Category = "seo"
	CategoryLegal         models.Category = "legal"
	CategoryAccessibility models.Category = "accessibility"
	CategoryTechnical     models.Category = "technical"
)

// GoLiveStorageKey is the persistence key of the go-live checklist.
const GoLiveStorageKey = "go-live-checklist-state"

// GoLive is the production-readiness checklist.
var GoLive = models.MustCatalog(models.CatalogDefinition{
	Slug:        "go-live",
	Name:        "Go-Live Checklist",
	Subtitle:    "Production readiness tracker",
	ReportTitle: "Go-Live Checklist Report",
	StorageKey:  GoLiveStorageKey,
	Categories: []models.CategoryLabel{
		{Category: CategorySEO, Label: "SEO & Discoverability"},
		{Category: CategoryLegal, Label: "Legal & Compliance"},
		{Category: CategoryAccessibility, Label: "Accessibility & UX"},
		{Category: CategoryTechnical, Label: "Technical Performance"},
	},
	Tasks: goLiveTasks,
})

var goLiveTasks = []models.Task{
	{
		ID:          "seo-meta-tags",
		Title:       "SEO Meta Tags",
		Description: "Optimized title tags and meta descriptions for every page.",
		Category:    CategorySEO,
		Prompt:      "Audit all pages in my app and add optimized title tags (50-60 characters) and meta descriptions (150-160 characters) for every route. Include primary keywords naturally and make them compelling for click-through. Show me the implementation in my framework.",
	},
	{
		ID:          "seo-og-images",
		Title:       "Social Preview (OG) Images",
		Description: "High-quality images for social sharing (1200x630px).",
		Category:    CategorySEO,
		Prompt:      "Add Open Graph meta tags to all pages for social media sharing. Include og:image (1200x630px), og:title, og:description, og:url, and Twitter Card tags. Generate a template I can reuse across my site.",
	},
	{
		ID:          "seo-sitemap",
		Title:       "Sitemap & Robots.txt",
		Description: "Automated XML sitemap and crawler instructions.",
		Category:    CategorySEO,
		Prompt:      "Generate an automated XML sitemap for all my routes and create a robots.txt file with proper crawler directives. Make it dynamic so new pages are automatically included. Show me how to implement this in my framework and where to host the files.",
	},
	{
		ID:          "seo-structured-data",
		Title:       "Structured Data",
		Description: "Schema.org JSON-LD for rich search results.",
		Category:    CategorySEO,
		Prompt:      "Add Schema.org JSON-LD structured data to my pages. Include Organization, WebSite, and relevant schemas for my content type (Article, Product, Service, etc.). Make it validate in Google's Rich Results Test.",
	},
	{
		ID:          "seo-canonical",
		Title:       "Canonical Links",
		Description: "Defined preferred URLs to prevent duplicate content.",
		Category:    CategorySEO,
		Prompt:      "Add canonical link tags to all pages to prevent duplicate content issues. Handle URL parameters, trailing slashes, and www vs non-www consistently. Show me how to implement this dynamically in my framework.",
	},
	{
		ID:          "seo-performance",
		Title:       "Core Web Vitals",
		Description: "Optimized LCP, FID, and CLS scores for better rankings.",
		Category:    CategorySEO,
		Prompt:      "Analyze my site for Core Web Vitals. Optimize LCP (Largest Contentful Paint) by lazy-loading images and preloading critical resources. Minimize CLS (Cumulative Layout Shift) by setting image dimensions. Improve FID (First Input Delay) by reducing JavaScript execution time.",
	},
	{
		ID:          "legal-terms",
		Title:       "Terms of Service",
		Description: "Legal agreement for user interaction.",
		Category:    CategoryLegal,
		Prompt:      "Create a Terms of Service page for my application. Include sections on user responsibilities, acceptable use, intellectual property, limitations of liability, and dispute resolution. Generate a template appropriate for my app type and add a dedicated route for it.",
	},
	{
		ID:          "legal-privacy",
		Title:       "Privacy Policy",
		Description: "GDPR/CCPA compliant data handling disclosures.",
		Category:    CategoryLegal,
		Prompt:      "Generate a GDPR and CCPA compliant Privacy Policy for my application. Include data collection practices, cookie usage, third-party services, user rights, and data retention policies. Create a dedicated page and add it to my footer navigation.",
	},
	{
		ID:          "legal-cookies",
		Title:       "Cookie Consent",
		Description: "Proper disclosure and tracking management.",
		Category:    CategoryLegal,
		Prompt:      "Implement a cookie consent banner that complies with GDPR and CCPA. Allow users to accept/reject non-essential cookies. Store consent preferences and only load analytics/tracking scripts after explicit consent. Show me a clean, non-intrusive implementation.",
	},
	{
		ID:          "legal-form-feedback",
		Title:       "Form Feedback",
		Description: "Clear success/error messaging and validation.",
		Category:    CategoryLegal,
		Prompt:      "Review all forms in my application and ensure they have clear validation, error messages, and success feedback. Add loading states during submission and prevent double-submissions. Make error messages specific and actionable for users.",
	},
	{
		ID:          "legal-contact",
		Title:       "Contact Information",
		Description: "Accessible contact page and support email address.",
		Category:    CategoryLegal,
		Prompt:      "Create a professional Contact page with multiple contact methods (email, contact form, physical address if applicable). Make it easily accessible from the footer and ensure the email addresses are functional and monitored.",
	},
	{
		ID:          "legal-dmca",
		Title:       "DMCA Compliance",
		Description: "Copyright takedown process and designated agent.",
		Category:    CategoryLegal,
		Prompt:      "Create a DMCA compliance page with takedown procedures and designated agent contact information. If my app has user-generated content, explain the safe harbor provisions and counter-notice process. Add this to my legal pages.",
	},
	{
		ID:          "a11y-wcag",
		Title:       "WCAG Compliance",
		Description: "High color contrast and accessible font sizes.",
		Category:    CategoryAccessibility,
		Prompt:      "Audit my site for WCAG 2.1 AA compliance. Check color contrast ratios (minimum 4.5:1 for normal text, 3:1 for large text), ensure readable font sizes (minimum 16px), and fix any accessibility violations. Use tools like axe DevTools or Lighthouse to identify issues.",
	},
	{
		ID:          "a11y-aria",
		Title:       "ARIA Labels",
		Description: "Proper semantic HTML and screen-reader support.",
		Category:    CategoryAccessibility,
		Prompt:      "Review all interactive elements and add proper ARIA labels where needed. Ensure semantic HTML is used (nav, main, header, footer, article). Add aria-label to icon buttons, aria-describedby for form hints, and role attributes where appropriate. Test with a screen reader.",
	},
	{
		ID:          "a11y-responsive",
		Title:       "Responsive Design",
		Description: "Fully tested on mobile, tablet, and desktop.",
		Category:    CategoryAccessibility,
		Prompt:      "Test my application on mobile (320px-480px), tablet (768px-1024px), and desktop (1280px+) viewports. Fix any layout issues, ensure touch targets are at least 44x44px, and make sure content is readable at all screen sizes without horizontal scrolling.",
	},
	{
		ID:          "a11y-404",
		Title:       "Custom 404 Page",
		Description: "A helpful, branded error page to keep users on-site.",
		Category:    CategoryAccessibility,
		Prompt:      "Create a custom 404 error page that matches my brand. Include a friendly message, navigation links back to key pages, and possibly a search function. Make it helpful rather than frustrating. Show me how to set it up in my framework.",
	},
	{
		ID:          "a11y-keyboard",
		Title:       "Keyboard Navigation",
		Description: "All interactive elements accessible via keyboard.",
		Category:    CategoryAccessibility,
		Prompt:      "Test my entire application using only keyboard navigation (Tab, Shift+Tab, Enter, Space, Arrow keys). Ensure all interactive elements are reachable and functional. Fix any keyboard traps, add proper tabindex where needed, and ensure modals can be closed with Escape.",
	},
	{
		ID:          "a11y-focus",
		Title:       "Focus Indicators",
		Description: "Clear visual focus states for all interactive elements.",
		Category:    CategoryAccessibility,
		Prompt:      "Add visible focus indicators to all interactive elements (links, buttons, form inputs). Use focus-visible to show focus only for keyboard users. Make focus states clear and high-contrast (e.g., outline or ring with good color contrast). Never use outline: none without a replacement.",
	},
	{
		ID:          "tech-ssl",
		Title:       "SSL / HTTPS",
		Description: "Secure connection verification.",
		Category:    CategoryTechnical,
		Prompt:      "Ensure my site is served over HTTPS with a valid SSL certificate. Set up automatic redirects from HTTP to HTTPS. Add HSTS headers for security. If using a hosting platform, show me how to enable SSL. Check for mixed content warnings.",
	},
	{
		ID:          "tech-browsers",
		Title:       "Cross-Browser Check",
		Description: "Verification on Chrome, Safari, Firefox, and Edge.",
		Category:    CategoryTechnical,
		Prompt:      "Test my application in Chrome, Safari, Firefox, and Edge. Check for browser-specific CSS issues, JavaScript compatibility, and feature support. Add polyfills if needed for older browsers. Use tools like BrowserStack or real devices for testing.",
	},
	{
		ID:          "tech-code-hygiene",
		Title:       "Code Hygiene",
		Description: "Removal of console.log, dead code, and unused packages.",
		Category:    CategoryTechnical,
		Prompt:      "Scan my codebase for console.log statements, commented-out code, unused imports, and dead code. Remove all debugging code. Run a dependency audit to find unused packages and remove them. Set up ESLint rules to prevent console.log in production.",
	},
	{
		ID:          "tech-optimization",
		Title:       "Asset Optimization",
		Description: "Minified assets and optimized image formats (WebP/AVIF).",
		Category:    CategoryTechnical,
		Prompt:      "Optimize all images by converting to WebP or AVIF format with proper fallbacks. Enable code minification and compression in my build process. Set up lazy loading for images below the fold. Add proper caching headers for static assets. Show me the build configuration.",
	},
	{
		ID:          "tech-monitoring",
		Title:       "Error Monitoring",
		Description: "Production error tracking (Sentry, LogRocket, etc.).",
		Category:    CategoryTechnical,
		Prompt:      "Set up error monitoring with Sentry or a similar service. Add error boundaries in React to catch component errors gracefully. Configure source maps for debugging. Set up alerts for critical errors. Include user context in error reports for easier debugging.",
	},
	{
		ID:          "tech-backup",
		Title:       "Backup Strategy",
		Description: "Automated database backups and disaster recovery plan.",
		Category:    CategoryTechnical,
		Prompt:      "Set up automated daily database backups with point-in-time recovery. Store backups in a separate location from the main database. Create a disaster recovery plan with RTO/RPO targets. Test the restore process to ensure backups are functional. Document the recovery procedure.",
	},
}
