package seed

import (
	"github.com/hirewise/sitecms/internal/content"
	"github.com/hirewise/sitecms/internal/db"
)

// DefaultCatalog returns the declarative definition of the marketing site.
// Ingestion reconciles it against the store; editing live pages afterwards
// is the admin surface's job, not this catalogue's.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Title: "Home",
			Slug:  "home",
			SEO: db.SEO{
				Title:       "HireWise — Hire Smarter with AI",
				Description: "HireWise screens, ranks and schedules candidates so your team spends its time on the conversations that matter.",
				Keywords:    "hiring, recruiting, applicant tracking, AI screening",
			},
			Sections: []SectionEntry{
				{
					Name: "Hero",
					Type: content.TypeHero,
					Content: map[string]any{
						"heading":           "Hire Smarter with AI",
						"subheading":        "Screen, rank and schedule candidates in hours, not weeks.",
						"ctaText":           "Start free trial",
						"ctaLink":           "/signup",
						"backgroundImage":   "/static/img/hero-team.jpg",
						"backgroundOverlay": true,
						"textAlignment":     "center",
					},
				},
				{
					Name: "Why HireWise",
					Type: content.TypeFeatures,
					Content: map[string]any{
						"heading": "Everything your hiring pipeline needs",
						"columns": 3,
						"layout":  "cards",
						"items": []map[string]any{
							{"title": "Smart screening", "description": "Every application scored against your role profile within minutes.", "icon": "filter"},
							{"title": "One-click scheduling", "description": "Candidates pick interview slots straight from your team's calendars.", "icon": "calendar"},
							{"title": "Pipeline analytics", "description": "See where candidates drop off and which sources actually convert.", "icon": "chart"},
						},
					},
				},
				{
					Name: "Bottom CTA",
					Type: content.TypeCTA,
					Content: map[string]any{
						"heading":    "Ready to meet your next hire?",
						"subheading": "Free for your first three roles. No credit card required.",
						"ctaText":    "Get started",
						"ctaLink":    "/signup",
					},
				},
			},
		},
		{
			Title: "Product",
			Slug:  "product",
			SEO: db.SEO{
				Title:       "Product — HireWise",
				Description: "A closer look at screening, scheduling and analytics in HireWise.",
				Keywords:    "product, features, screening, scheduling",
			},
			Sections: []SectionEntry{
				{
					Name: "Screening",
					Type: content.TypeTextWithImage,
					Content: map[string]any{
						"heading":       "Screening that reads every application",
						"content":       "Paste a job description and HireWise builds a role profile from it.\n\nEvery incoming application is compared against that profile — skills, experience, and the signals your best hires had. The ranked shortlist lands in your inbox each morning.",
						"image":         "/static/img/product-screening.png",
						"imagePosition": "right",
					},
				},
				{
					Name: "Integrations",
					Type: content.TypeGrid,
					Content: map[string]any{
						"heading":    "Plays well with your stack",
						"subheading": "Native integrations, no middleware required.",
						"columns":    4,
						"layout":     "grid",
						"items": []map[string]any{
							{"title": "Google Calendar", "description": "Two-way interview sync."},
							{"title": "Slack", "description": "Pipeline alerts where your team already is."},
							{"title": "Greenhouse", "description": "Import existing candidates in one click."},
							{"title": "LinkedIn", "description": "Source directly into a role."},
						},
					},
				},
				{
					Name: "Product CTA",
					Type: content.TypeCTA,
					Content: map[string]any{
						"heading": "See it on your own roles",
						"ctaText": "Book a demo",
						"ctaLink": "/contact",
					},
				},
			},
		},
		{
			Title: "Pricing",
			Slug:  "pricing",
			SEO: db.SEO{
				Title:       "Pricing — HireWise",
				Description: "Simple per-seat pricing that scales from a single founder to a full talent team.",
				Keywords:    "pricing, plans, free trial",
			},
			Sections: []SectionEntry{
				{
					Name: "Plans",
					Type: content.TypePricing,
					Content: map[string]any{
						"plans": []map[string]any{
							{
								"name":     "Starter",
								"price":    "$0",
								"period":   "forever",
								"features": []string{"3 open roles", "AI screening", "Email support"},
								"ctaText":  "Start free",
								"ctaLink":  "/signup",
							},
							{
								"name":        "Growth",
								"price":       "$79",
								"period":      "per seat / month",
								"features":    []string{"Unlimited roles", "Interview scheduling", "Pipeline analytics", "Slack integration"},
								"ctaText":     "Start trial",
								"ctaLink":     "/signup?plan=growth",
								"highlighted": true,
							},
							{
								"name":     "Enterprise",
								"price":    "Custom",
								"period":   "annual billing",
								"features": []string{"SSO & audit log", "Dedicated success manager", "Custom data retention"},
								"ctaText":  "Talk to sales",
								"ctaLink":  "/contact",
							},
						},
					},
				},
				{
					Name: "Pricing FAQ",
					Type: content.TypeFAQ,
					Content: map[string]any{
						"items": []map[string]any{
							{"question": "Can I change plans later?", "answer": "Yes — upgrades apply immediately, downgrades at the end of the billing period."},
							{"question": "Is there a free trial on paid plans?", "answer": "Growth comes with a 14-day trial, no credit card required."},
						},
					},
				},
			},
		},
		{
			Title: "About Us",
			Slug:  "about",
			SEO: db.SEO{
				Title:       "About — HireWise",
				Description: "The team building HireWise and why we started.",
				Keywords:    "about, team, company",
			},
			Sections: []SectionEntry{
				{
					Name: "Our story",
					Type: content.TypeText,
					Content: map[string]any{
						"heading": "We were the bottleneck in our own hiring",
						"content": "HireWise started in 2023 when our founders spent an entire quarter screening applications for two engineering roles.\n\nThe tooling assumed a recruiting department. We had three people and a spreadsheet. So we built the product we wished existed: one that does the reading, keeps candidates warm, and leaves the judgement to humans.",
					},
				},
				{
					Name: "Remote first",
					Type: content.TypeTextWithImage,
					Content: map[string]any{
						"heading":       "A small team across six time zones",
						"content":       "We are twelve people, remote first, and we hire the way we tell our customers to: a clear role profile, a fair process, and fast decisions.",
						"image":         "/static/img/team-offsite.jpg",
						"imagePosition": "left",
					},
				},
			},
		},
		{
			Title: "FAQ",
			Slug:  "faq",
			SEO: db.SEO{
				Title:       "FAQ — HireWise",
				Description: "Common questions about HireWise, answered.",
				Keywords:    "faq, help, questions",
			},
			Sections: []SectionEntry{
				{
					Name: "General",
					Type: content.TypeFAQ,
					Content: map[string]any{
						"items": []map[string]any{
							{"question": "Where is my candidate data stored?", "answer": "In the EU (Frankfurt) by default. Enterprise plans can choose a region."},
							{"question": "Do candidates know AI is involved?", "answer": "Yes. Every candidate-facing email discloses that screening is AI-assisted and reviewed by a human."},
							{"question": "Can I export my data?", "answer": "At any time, in CSV or JSON, from the workspace settings."},
						},
					},
				},
				{
					Name: "Still stuck",
					Type: content.TypeCTA,
					Content: map[string]any{
						"heading": "Didn't find your answer?",
						"ctaText": "Contact support",
						"ctaLink": "/contact",
					},
				},
			},
		},
		{
			Title: "Contact",
			Slug:  "contact",
			SEO: db.SEO{
				Title:       "Contact — HireWise",
				Description: "Talk to the HireWise team about demos, pricing or support.",
				Keywords:    "contact, demo, support",
			},
			Sections: []SectionEntry{
				{
					Name: "Intro",
					Type: content.TypeText,
					Content: map[string]any{
						"heading": "Get in touch",
						"content": "Questions about the product, a demo for your team, or anything else — we answer within one business day.",
					},
				},
				{
					Name: "Contact form",
					Type: content.TypeContactForm,
					Content: map[string]any{
						"formFields": []map[string]any{
							{"name": "name", "label": "Your name", "type": "text", "required": true},
							{"name": "email", "label": "Work email", "type": "email", "required": true},
							{"name": "company", "label": "Company", "type": "text", "required": false},
							{"name": "message", "label": "How can we help?", "type": "textarea", "required": true},
						},
					},
				},
			},
		},
		{
			Title:      "Careers",
			Slug:       "careers",
			LegacySlug: "career",
			SEO: db.SEO{
				Title:       "Careers — HireWise",
				Description: "Open roles at HireWise. Remote first, async friendly.",
				Keywords:    "careers, jobs, hiring",
			},
			Sections: []SectionEntry{
				{
					Name: "Careers hero",
					Type: content.TypeHero,
					Content: map[string]any{
						"heading":       "Help us fix hiring",
						"subheading":    "Remote first. Async friendly. Serious about craft.",
						"textAlignment": "left",
					},
				},
				{
					Name: "Benefits",
					Type: content.TypeGrid,
					Content: map[string]any{
						"heading": "What we offer",
						"columns": 2,
						"layout":  "cards",
						"items": []map[string]any{
							{"title": "Work anywhere", "description": "Fully remote with a yearly all-hands offsite."},
							{"title": "Hardware budget", "description": "Pick your own setup, refreshed every three years."},
							{"title": "Learning stipend", "description": "Books, courses and conferences on us."},
							{"title": "Real ownership", "description": "Meaningful equity for every role."},
						},
					},
				},
				{
					Name: "Open roles CTA",
					Type: content.TypeCTA,
					Content: map[string]any{
						"heading": "See open roles",
						"ctaText": "View positions",
						"ctaLink": "/careers/openings",
					},
				},
			},
		},
	}
}
