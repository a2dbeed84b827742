// catalog/achievements.go - Achievement fixtures
package catalog

import (
	"moneytree/models"
)

func Achievements() []models.Achievement {
	return []models.Achievement{
		{
			ID:          "budget-master",
			Title:       "Budget Master",
			Description: "Complete all budgeting lessons",
			Icon:        "🛡️",
			Category:    "budgeting",
			Requirements: models.Requirements{
				Type:     models.RequirementCompleteCategory,
				Category: "budgeting",
			},
			XPReward:   100,
			CoinReward: 50,
			IsActive:   true,
		},
		{
			ID:          "golden-investor",
			Title:       "Golden Investor",
			Description: "7-day streak & investment mastery",
			Icon:        "👑",
			Category:    "investing",
			Requirements: models.Requirements{
				Type:     models.RequirementStreakAndCategory,
				Streak:   7,
				Category: "investing",
			},
			XPReward:   200,
			CoinReward: 100,
			IsActive:   true,
		},
		{
			ID:          "savings-sage",
			Title:       "Savings Sage",
			Description: "Master emergency funds & savings",
			Icon:        "💎",
			Category:    "savings",
			Requirements: models.Requirements{
				Type:     models.RequirementCompleteCategory,
				Category: "savings",
			},
			XPReward:   150,
			CoinReward: 75,
			IsActive:   true,
		},
	}
}
