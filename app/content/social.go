package content

import "time"

// SocialPosts returns the static mock social feed. Post dates are spaced one
// hour apart ending at the current time, matching what a live social source
// would deliver.
func SocialPosts() []NormalizedContent {
	now := time.Now().UTC()

	return []NormalizedContent{
		{
			ID:          "social-1",
			Type:        TypeSocial,
			Title:       "Just deployed my new React app!",
			Description: "After weeks of hard work, I finally deployed my first full-stack application. The feeling is incredible! 🚀",
			Meta: Meta{
				Author: "Sarah Dev",
				Date:   now.Format(time.RFC3339),
			},
		},
		{
			ID:          "social-2",
			Type:        TypeSocial,
			Title:       "Hot take: TypeScript is a must-have",
			Description: "I can't imagine going back to vanilla JavaScript after using TypeScript. The type safety and IntelliSense alone are worth it.",
			Meta: Meta{
				Author: "Mike Code",
				Date:   now.Add(-1 * time.Hour).Format(time.RFC3339),
			},
		},
		{
			ID:          "social-3",
			Type:        TypeSocial,
			Title:       "Weekend project idea",
			Description: "Thinking of building a dashboard that aggregates all my favorite content sources. Anyone interested in collaborating?",
			Meta: Meta{
				Author: "Alex Builder",
				Date:   now.Add(-2 * time.Hour).Format(time.RFC3339),
			},
		},
		{
			ID:          "social-4",
			Type:        TypeSocial,
			Title:       "UI/UX Design Tips",
			Description: "Glass morphism is trending again! Here's how to implement it effectively without compromising accessibility.",
			Meta: Meta{
				Author: "Design Guru",
				Date:   now.Add(-3 * time.Hour).Format(time.RFC3339),
			},
		},
	}
}
