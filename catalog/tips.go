// catalog/tips.go - Auric tip fixtures
package catalog

import (
	"moneytree/models"
)

func Tips() []models.AuricTip {
	return []models.AuricTip{
		{
			ID:       "welcome-1",
			Content:  "Welcome to MoneyTree! I'm Auric, your financial wisdom dragon. Let's build your treasure of knowledge together and watch your wealth grow like golden scales on my back! 🐲✨",
			Category: models.TipWelcome,
			Context:  "first_visit",
			IsActive: true,
		},
		{
			ID:       "welcome-2",
			Content:  "Hello again, my treasure seeker! Ready to add more golden knowledge to your hoard? Every quest you complete makes both of us stronger! 💰",
			Category: models.TipWelcome,
			Context:  "returning_user",
			IsActive: true,
		},
		{
			ID:       "motivational-1",
			Content:  "Fantastic work! You're building your financial wisdom like a true treasure hoarder! 🐲✨ Keep it up!",
			Category: models.TipMotivational,
			Context:  "quest_complete",
			IsActive: true,
		},
		{
			ID:       "motivational-2",
			Content:  "Remember, building wealth is like growing my golden scales - it takes time, patience, and consistent effort. Every lesson you complete adds to your treasure! 💰",
			Category: models.TipMotivational,
			Context:  "daily_encouragement",
			IsActive: true,
		},
		{
			ID:       "motivational-3",
			Content:  "You're on fire! That streak is making my scales shimmer with pride. Keep up the excellent learning habits! 🔥",
			Category: models.TipMotivational,
			Context:  "streak_encouragement",
			IsActive: true,
		},
		{
			ID:       "educational-1",
			Content:  "Take your time thinking about this one! Remember, higher potential rewards often come with higher risks. What do you think offers the most growth potential?",
			Category: models.TipEducational,
			Context:  "investment_question",
			IsActive: true,
		},
		{
			ID:       "educational-2",
			Content:  "Think about this like organizing a treasure hoard - you want different types of treasures (diversification) so if one loses value, others can make up for it! 🏆",
			Category: models.TipEducational,
			Context:  "diversification_question",
			IsActive: true,
		},
		{
			ID:       "educational-3",
			Content:  "Emergency funds are like having a secret stash of treasure for when unexpected dragons attack your finances! Always keep some gold safely tucked away. 🛡️",
			Category: models.TipEducational,
			Context:  "emergency_fund_question",
			IsActive: true,
		},
		{
			ID:       "celebration-1",
			Content:  "ROAR! 🐲 You've mastered another quest! My scales are practically glowing with pride. Your financial wisdom treasure grows stronger!",
			Category: models.TipCelebration,
			Context:  "quest_completion",
			IsActive: true,
		},
		{
			ID:       "celebration-2",
			Content:  "Achievement unlocked! *happy dragon noises* 🎉 You're becoming quite the financial wizard. I knew you had it in you!",
			Category: models.TipCelebration,
			Context:  "achievement_unlock",
			IsActive: true,
		},
	}
}
