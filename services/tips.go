// services/tips.go - Auric tip selection
package services

import (
	"math/rand"

	"moneytree/models"
)

// PickTip selects one tip from the given candidates, optionally narrowed by
// category and context. Context matches are preferred; if none exist the
// category pool is used. Randomness is injected so selection is testable.
func PickTip(rnd *rand.Rand, tips []models.AuricTip, category, context string) (models.AuricTip, bool) {
	pool := tips
	if category != "" {
		pool = nil
		for _, tip := range tips {
			if tip.Category == category {
				pool = append(pool, tip)
			}
		}
	}
	if len(pool) == 0 {
		return models.AuricTip{}, false
	}

	if context != "" {
		var contextPool []models.AuricTip
		for _, tip := range pool {
			if tip.Context == context {
				contextPool = append(contextPool, tip)
			}
		}
		if len(contextPool) > 0 {
			pool = contextPool
		}
	}

	return pool[rnd.Intn(len(pool))], true
}
