// catalog/quests.go - Canonical quest fixtures
package catalog

import (
	"moneytree/models"
)

// Quests returns the built-in quest catalog. One definition per quest id;
// YAML files under the catalog directory may replace individual entries.
func Quests() []models.Quest {
	return []models.Quest{
		{
			ID:               "investment-fundamentals",
			Title:            "Investment Fundamentals Quest",
			Description:      "Master the basics of investing and portfolio management",
			Category:         "investing",
			Difficulty:       2,
			EstimatedMinutes: 20,
			XPReward:         150,
			CoinReward:       50,
			IsActive:         true,
			Questions: []models.Question{
				{
					ID:       "1",
					Question: "Which investment option typically offers the highest potential returns but also comes with the highest risk?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Savings account with guaranteed interest", Explanation: "Federally insured, typically 0.5-2% annual return"},
						{ID: "B", Text: "Individual growth stocks", Explanation: "Can provide high returns but values can fluctuate significantly"},
						{ID: "C", Text: "Government treasury bonds", Explanation: "Backed by government, stable but lower returns"},
						{ID: "D", Text: "Certificate of Deposit (CD)", Explanation: "Fixed-term deposit with guaranteed return"},
					},
					CorrectAnswer: "B",
					Explanation:   "Individual growth stocks offer the highest potential returns but also carry the most risk due to market volatility.",
					AuricHint:     "Think about this like different types of treasure - some are safe but small, others are huge but guarded by dangerous dragons! 🐲",
				},
				{
					ID:       "2",
					Question: "What is diversification in investing?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Putting all money in one stock", Explanation: "This actually increases risk by concentrating it"},
						{ID: "B", Text: "Spreading investments across different assets", Explanation: "This reduces overall portfolio risk"},
						{ID: "C", Text: "Only investing in bonds", Explanation: "This limits growth potential"},
						{ID: "D", Text: "Timing the market perfectly", Explanation: "This is nearly impossible to do consistently"},
					},
					CorrectAnswer: "B",
					Explanation:   "Diversification helps reduce risk by spreading investments across different asset classes, sectors, and securities.",
					AuricHint:     "Think about this like organizing a treasure hoard - you want different types of treasures so if one loses value, others can make up for it! 🏆",
				},
				{
					ID:       "3",
					Question: "What does 'compound interest' mean?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Interest paid only on the original amount", Explanation: "This is simple interest, not compound interest"},
						{ID: "B", Text: "Interest paid on both principal and accumulated interest", Explanation: "This is the power of compound interest"},
						{ID: "C", Text: "Interest that decreases over time", Explanation: "This is not how compound interest works"},
						{ID: "D", Text: "Interest paid only once per year", Explanation: "This describes frequency, not the compounding effect"},
					},
					CorrectAnswer: "B",
					Explanation:   "Compound interest is earnings on both your original money and on the earnings you've already accumulated.",
					AuricHint:     "Compound interest is like my treasure hoard growing - the bigger it gets, the faster it grows! It's magical! ✨",
				},
				{
					ID:       "4",
					Question: "What is a mutual fund?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "A single company's stock", Explanation: "This describes individual stocks, not mutual funds"},
						{ID: "B", Text: "A pool of money from many investors to buy securities", Explanation: "This is exactly what a mutual fund is"},
						{ID: "C", Text: "A government savings bond", Explanation: "This is a different type of investment"},
						{ID: "D", Text: "A high-risk cryptocurrency", Explanation: "This is not what mutual funds are"},
					},
					CorrectAnswer: "B",
					Explanation:   "Mutual funds pool money from many investors to purchase a diversified portfolio of stocks, bonds, or other securities.",
					AuricHint:     "Think of it like many dragons pooling their treasure together to buy bigger, better investments! 🐲💰",
				},
				{
					ID:       "5",
					Question: "What is the relationship between risk and return in investing?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Higher risk always guarantees higher returns", Explanation: "Risk doesn't guarantee returns, it just creates potential"},
						{ID: "B", Text: "There's no relationship between risk and return", Explanation: "There is definitely a relationship"},
						{ID: "C", Text: "Generally, higher potential returns come with higher risk", Explanation: "This is the fundamental risk-return relationship"},
						{ID: "D", Text: "Lower risk always means higher returns", Explanation: "This is backwards - lower risk typically means lower returns"},
					},
					CorrectAnswer: "C",
					Explanation:   "In general, investments with higher potential returns also carry higher risk of loss.",
					AuricHint:     "The biggest treasures are usually guarded by the fiercest dragons - greater rewards require braving greater risks! 🐲⚔️",
				},
				{
					ID:       "6",
					Question: "What is dollar-cost averaging?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Investing a lump sum all at once", Explanation: "This is the opposite of dollar-cost averaging"},
						{ID: "B", Text: "Investing the same amount regularly over time", Explanation: "This is exactly what dollar-cost averaging is"},
						{ID: "C", Text: "Only buying stocks when prices are low", Explanation: "This describes market timing, not dollar-cost averaging"},
						{ID: "D", Text: "Investing only in US dollar denominated assets", Explanation: "This has nothing to do with dollar-cost averaging"},
					},
					CorrectAnswer: "B",
					Explanation:   "Dollar-cost averaging involves investing a fixed amount regularly, regardless of market conditions.",
					AuricHint:     "It's like adding the same amount of gold to your hoard every month - sometimes gold is expensive, sometimes cheap, but it averages out! 📈",
				},
				{
					ID:       "7",
					Question: "What is a stock market index?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "A single company's stock price", Explanation: "This describes individual stocks, not an index"},
						{ID: "B", Text: "A measure of a group of stocks' performance", Explanation: "This is what a stock market index measures"},
						{ID: "C", Text: "The total amount of money in the stock market", Explanation: "This is not what an index measures"},
						{ID: "D", Text: "The number of companies in existence", Explanation: "This is not related to stock market indices"},
					},
					CorrectAnswer: "B",
					Explanation:   "A stock market index tracks the performance of a group of stocks, representing a portion of the overall market.",
					AuricHint:     "Think of it like a treasure chest inventory - it tells you how well a collection of different treasures is doing overall! 📊",
				},
				{
					ID:       "8",
					Question: "What does it mean when a stock pays dividends?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "The company is losing money", Explanation: "Dividend payments don't indicate losses"},
						{ID: "B", Text: "The company shares profits with shareholders", Explanation: "This is exactly what dividends are"},
						{ID: "C", Text: "The stock price will definitely increase", Explanation: "Dividends don't guarantee price increases"},
						{ID: "D", Text: "The company is about to go bankrupt", Explanation: "Dividends are actually a sign of profitability"},
					},
					CorrectAnswer: "B",
					Explanation:   "Dividends are payments made by companies to their shareholders, typically from profits.",
					AuricHint:     "It's like the company sharing some of its treasure hoard with everyone who owns a piece of it! Very generous! 💎",
				},
			},
			EducationalSections: []models.EducationalSection{
				{
					ID:           "1",
					Title:        "Understanding Risk vs. Reward",
					Content:      "Before we dive into investing, let me explain a fundamental principle: the relationship between risk and potential reward. Generally, the higher the potential return of an investment, the higher the risk involved.",
					ImageURL:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
					AuricComment: "Think of it like treasure hunting - the biggest treasures are usually in the most dangerous places! But with knowledge, we can be smart treasure hunters! 🐲⚔️",
					Examples: map[string][]string{
						"Low Risk (1-4% returns)":    {"Savings accounts", "Government bonds", "CDs"},
						"Medium Risk (4-8% returns)": {"Corporate bonds", "Balanced mutual funds", "Blue-chip stocks"},
						"High Risk (8%+ potential)":  {"Growth stocks", "Small-cap funds", "Real estate investment"},
					},
				},
				{
					ID:           "2",
					Title:        "The Magic of Compound Interest",
					Content:      "Compound interest is often called the 'eighth wonder of the world.' It's when you earn returns not just on your original investment, but also on all the returns you've earned previously.",
					ImageURL:     "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
					AuricComment: "This is my favorite magic! It's like my treasure hoard growing bigger and bigger, and the bigger it gets, the faster it grows! Time is our best friend here! ✨📈",
					KeyPoints: []string{
						"Start investing as early as possible",
						"Even small amounts can grow significantly over time",
						"Time is more important than timing",
						"Reinvest your earnings to maximize the effect",
					},
				},
				{
					ID:           "3",
					Title:        "Diversification: Don't Put All Eggs in One Basket",
					Content:      "Diversification means spreading your investments across different types of assets, industries, and even countries. This helps reduce risk because different investments often perform differently under various market conditions.",
					ImageURL:     "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
					AuricComment: "Smart dragons don't keep all their treasure in one cave! Spread it around - some in gold, some in gems, some in different kingdoms. That way, if one cave gets robbed, you still have treasure elsewhere! 🏰💎",
					Examples: map[string][]string{
						"Asset Types": {"Stocks", "Bonds", "Real Estate", "Commodities"},
						"Geographic":  {"US Markets", "International Developed", "Emerging Markets"},
						"Sectors":     {"Technology", "Healthcare", "Finance", "Consumer Goods"},
					},
				},
			},
		},
		{
			ID:               "emergency-fund-basics",
			Title:            "Emergency Fund Basics Quiz",
			Description:      "Learn the importance of emergency funds and how to build one",
			Category:         "savings",
			Difficulty:       1,
			EstimatedMinutes: 12,
			XPReward:         100,
			CoinReward:       30,
			IsActive:         true,
			Questions: []models.Question{
				{
					ID:       "1",
					Question: "What is the primary purpose of an emergency fund?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "To restrict spending completely", Explanation: "Emergency funds aren't about restricting spending"},
						{ID: "B", Text: "To cover unexpected expenses without debt", Explanation: "This is the main purpose - financial security"},
						{ID: "C", Text: "To invest in stocks", Explanation: "Emergency funds should be liquid and safe, not invested"},
						{ID: "D", Text: "To pay regular monthly bills", Explanation: "This is what your regular budget is for"},
					},
					CorrectAnswer: "B",
					Explanation:   "Emergency funds provide financial security by covering unexpected expenses like medical bills, car repairs, or job loss without going into debt.",
					AuricHint:     "Emergency funds are like having a secret stash of treasure for when unexpected dragons attack your finances! Always keep some gold safely tucked away. 🛡️",
				},
				{
					ID:       "2",
					Question: "How much should you typically save in an emergency fund?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "One month of expenses", Explanation: "This might not be enough for major emergencies"},
						{ID: "B", Text: "3-6 months of expenses", Explanation: "This is the standard recommendation for most people"},
						{ID: "C", Text: "One year of expenses", Explanation: "This might be more than necessary for most people"},
						{ID: "D", Text: "Whatever you can spare", Explanation: "While any amount helps, there are better guidelines"},
					},
					CorrectAnswer: "B",
					Explanation:   "Most financial experts recommend saving 3-6 months of living expenses in your emergency fund to cover most unexpected situations.",
					AuricHint:     "Think of it as having enough treasure to keep your dragon cave running for 3-6 months if you can't hunt for more gold! 🐲🏠",
				},
				{
					ID:       "3",
					Question: "Where should you keep your emergency fund?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "In a high-yield savings account", Explanation: "This provides safety and easy access while earning some return"},
						{ID: "B", Text: "Invested in stocks", Explanation: "Too risky - the value could drop when you need the money"},
						{ID: "C", Text: "In cash under your mattress", Explanation: "This doesn't earn any return and isn't secure"},
						{ID: "D", Text: "In a retirement account", Explanation: "This money isn't easily accessible for emergencies"},
					},
					CorrectAnswer: "A",
					Explanation:   "Emergency funds should be kept in easily accessible, low-risk accounts like high-yield savings accounts.",
					AuricHint:     "Keep your emergency treasure somewhere safe but reachable - not buried so deep you can't get to it quickly when dragons attack! 🏦✨",
				},
				{
					ID:       "4",
					Question: "When should you use your emergency fund?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "For vacation expenses", Explanation: "Vacations are planned expenses, not emergencies"},
						{ID: "B", Text: "For a new TV on sale", Explanation: "Sales on wants are not legitimate emergencies"},
						{ID: "C", Text: "For unexpected medical bills", Explanation: "This is exactly what emergency funds are for"},
						{ID: "D", Text: "For holiday gifts", Explanation: "Holidays are predictable and should be budgeted for"},
					},
					CorrectAnswer: "C",
					Explanation:   "Emergency funds should only be used for true unexpected expenses that threaten your financial stability.",
					AuricHint:     "Only raid your emergency treasure stash when there's a real financial dragon attacking - not when you just want something shiny! 🐲⚔️",
				},
				{
					ID:       "5",
					Question: "What should you do after using money from your emergency fund?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Leave it empty until next year", Explanation: "This leaves you vulnerable to the next emergency"},
						{ID: "B", Text: "Replace it as soon as possible", Explanation: "This maintains your financial safety net"},
						{ID: "C", Text: "Use the rest for other expenses", Explanation: "This defeats the purpose of having an emergency fund"},
						{ID: "D", Text: "Invest what's left", Explanation: "Emergency funds should remain liquid and accessible"},
					},
					CorrectAnswer: "B",
					Explanation:   "After using emergency funds, prioritize replenishing them to maintain your financial safety net.",
					AuricHint:     "After using some emergency treasure, work hard to fill that treasure chest back up! You never know when the next dragon might come around! 💰🔄",
				},
				{
					ID:       "6",
					Question: "Which of these is NOT typically considered an emergency expense?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Job loss", Explanation: "This is a major emergency that affects income"},
						{ID: "B", Text: "Major car repair", Explanation: "Unexpected car repairs are legitimate emergencies"},
						{ID: "C", Text: "Annual property taxes", Explanation: "These are predictable and should be budgeted for annually"},
						{ID: "D", Text: "Emergency room visit", Explanation: "Unexpected medical expenses are true emergencies"},
					},
					CorrectAnswer: "C",
					Explanation:   "Annual property taxes are predictable expenses that should be planned for in your regular budget, not covered by emergency funds.",
					AuricHint:     "Property taxes come every year like clockwork - that's not a surprise dragon attack, that's a scheduled treasure payment! Plan for it! 📅💰",
				},
				{
					ID:       "7",
					Question: "What's a good first step if you don't have any emergency savings?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Wait until you have more income", Explanation: "Starting small is better than not starting at all"},
						{ID: "B", Text: "Save $1,000 as quickly as possible", Explanation: "This creates a starter emergency fund for most common emergencies"},
						{ID: "C", Text: "Focus only on paying off debt first", Explanation: "Having some emergency savings prevents new debt"},
						{ID: "D", Text: "Invest in stocks instead", Explanation: "Stocks are too risky for emergency money"},
					},
					CorrectAnswer: "B",
					Explanation:   "A starter emergency fund of $1,000 can cover many common emergencies and prevent you from going into debt.",
					AuricHint:     "Every great treasure hoard starts with a single gold coin! Start with 1,000 pieces of treasure - it's enough to handle most small dragon attacks! 🐲🏆",
				},
			},
			EducationalSections: []models.EducationalSection{
				{
					ID:           "1",
					Title:        "Why Emergency Funds Matter",
					Content:      "Life is full of unexpected expenses. Your car breaks down, you have a medical emergency, or you lose your job. An emergency fund is your financial safety net that helps you handle these situations without going into debt or derailing your long-term financial goals.",
					ImageURL:     "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
					AuricComment: "Think of your emergency fund as your financial armor! Just like how I keep some treasure hidden away for when other dragons challenge me, you need treasure set aside for life's unexpected battles! 🛡️🐲",
					Examples: map[string][]string{
						"Common Emergencies": {"Job loss", "Medical emergencies", "Major car repairs", "Home repairs", "Family emergencies"},
						"Why It Matters":     {"Prevents debt", "Reduces stress", "Maintains financial stability", "Protects other goals"},
					},
				},
				{
					ID:           "2",
					Title:        "Building Your Emergency Fund",
					Content:      "Building an emergency fund doesn't happen overnight, but every dollar you save brings you closer to financial security. Start small and build gradually - even $25-50 per month adds up over time.",
					ImageURL:     "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
					AuricComment: "Building an emergency fund is like growing a dragon's hoard - start with small treasures and keep adding to it! Before you know it, you'll have a mighty treasure pile! 💰📈",
					KeyPoints: []string{
						"Start with a goal of $1,000",
						"Save consistently, even small amounts",
						"Keep it in a separate, easily accessible account",
						"Gradually build to 3-6 months of expenses",
						"Don't invest emergency funds - keep them safe!",
					},
				},
			},
		},
		{
			ID:               "budgeting-mastery",
			Title:            "Budgeting Mastery Challenge",
			Description:      "Master the art of budgeting and expense tracking",
			Category:         "budgeting",
			Difficulty:       2,
			EstimatedMinutes: 18,
			XPReward:         120,
			CoinReward:       40,
			IsActive:         true,
			Questions: []models.Question{
				{
					ID:       "1",
					Question: "What is the 50/30/20 budgeting rule?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "50% savings, 30% needs, 20% wants", Explanation: "This would be very difficult for most people to achieve"},
						{ID: "B", Text: "50% needs, 30% wants, 20% savings", Explanation: "This is the correct 50/30/20 rule allocation"},
						{ID: "C", Text: "50% wants, 30% needs, 20% savings", Explanation: "This prioritizes wants over needs incorrectly"},
						{ID: "D", Text: "Equal thirds for all categories", Explanation: "This isn't the 50/30/20 rule"},
					},
					CorrectAnswer: "B",
					Explanation:   "The 50/30/20 rule suggests allocating 50% of after-tax income to needs, 30% to wants, and 20% to savings and debt repayment.",
					AuricHint:     "Think of it like organizing your treasure hoard - half for essential dragon needs, some for fun dragon wants, and always save some treasure for the future! 🐲💰",
				},
				{
					ID:       "2",
					Question: "Which of these is considered a 'need' rather than a 'want'?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Netflix subscription", Explanation: "This is entertainment, which is a want"},
						{ID: "B", Text: "Grocery food", Explanation: "Basic food is essential for survival - definitely a need"},
						{ID: "C", Text: "Designer clothing", Explanation: "While clothing is a need, designer brands are usually wants"},
						{ID: "D", Text: "Dining at restaurants", Explanation: "This is convenient but not essential - it's a want"},
					},
					CorrectAnswer: "B",
					Explanation:   "Grocery food is a basic necessity for survival and health, making it a clear need rather than want.",
					AuricHint:     "Even us dragons need to eat! Basic food for survival is always a need, but fancy dragon delicacies? Those are wants! 🍖🐲",
				},
				{
					ID:       "3",
					Question: "What's the first step in creating a budget?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Set spending limits for each category", Explanation: "You need to know your income first"},
						{ID: "B", Text: "Track your current spending habits", Explanation: "While important, you should know your income first"},
						{ID: "C", Text: "Calculate your total monthly income", Explanation: "You must know how much money you have coming in first"},
						{ID: "D", Text: "List all your financial goals", Explanation: "Goals are important but come after understanding your income"},
					},
					CorrectAnswer: "C",
					Explanation:   "Before you can allocate money to different categories, you need to know exactly how much money you have available each month.",
					AuricHint:     "Before I can organize my treasure hoard, I need to know how much treasure I actually have! Count your golden income first! 💰🔢",
				},
				{
					ID:       "4",
					Question: "How often should you review and adjust your budget?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Once a year", Explanation: "This isn't frequent enough to stay on track"},
						{ID: "B", Text: "Monthly", Explanation: "Regular monthly reviews help you stay on track and make adjustments"},
						{ID: "C", Text: "Only when something major changes", Explanation: "Regular reviews are better than waiting for big changes"},
						{ID: "D", Text: "Never - set it once and forget it", Explanation: "Budgets need regular attention and adjustments"},
					},
					CorrectAnswer: "B",
					Explanation:   "Monthly budget reviews help you track your progress, identify issues, and make necessary adjustments to stay on track.",
					AuricHint:     "I check on my treasure hoard every month to make sure no sneaky thieves took anything! Same with your budget - regular check-ups keep everything secure! 🔍🐲",
				},
				{
					ID:       "5",
					Question: "What should you do if you consistently overspend in a budget category?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Ignore it and hope it gets better", Explanation: "Ignoring the problem won't solve it"},
						{ID: "B", Text: "Give up on budgeting entirely", Explanation: "This throws away a valuable financial tool"},
						{ID: "C", Text: "Analyze why and adjust your budget or habits", Explanation: "This addresses the root cause of the overspending"},
						{ID: "D", Text: "Just use credit cards to cover the difference", Explanation: "This creates debt and doesn't solve the underlying issue"},
					},
					CorrectAnswer: "C",
					Explanation:   "Consistent overspending indicates either unrealistic budget allocations or spending habits that need adjustment.",
					AuricHint:     "If I keep losing treasure from one part of my hoard, I need to figure out why! Is there a hole in my cave? Are my estimates wrong? Smart dragons adapt their treasure management! 🐲🔧",
				},
				{
					ID:       "6",
					Question: "What is zero-based budgeting?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Having zero dollars left over", Explanation: "This is close but not quite the complete definition"},
						{ID: "B", Text: "Assigning every dollar a purpose until income minus expenses equals zero", Explanation: "This is exactly what zero-based budgeting means"},
						{ID: "C", Text: "Starting your budget from scratch each month", Explanation: "While you do start fresh, the key is the zero balance"},
						{ID: "D", Text: "Having no budget categories", Explanation: "This is the opposite of zero-based budgeting"},
					},
					CorrectAnswer: "B",
					Explanation:   "Zero-based budgeting means giving every dollar of your income a specific job until your income minus all assigned expenses equals zero.",
					AuricHint:     "It's like making sure every single piece of treasure in your hoard has a specific purpose - none just lying around doing nothing! Every gold coin gets a job! 🐲💼",
				},
				{
					ID:       "7",
					Question: "Which expense tracking method is most effective?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "Only tracking large expenses", Explanation: "Small expenses add up and should be tracked too"},
						{ID: "B", Text: "Estimating expenses from memory", Explanation: "Memory is unreliable for accurate tracking"},
						{ID: "C", Text: "Recording all expenses as they happen", Explanation: "Real-time tracking provides the most accurate picture"},
						{ID: "D", Text: "Only tracking monthly bills", Explanation: "This misses variable and discretionary spending"},
					},
					CorrectAnswer: "C",
					Explanation:   "Recording expenses as they happen provides the most accurate and complete picture of your spending patterns.",
					AuricHint:     "I keep track of every treasure that comes into and leaves my hoard right when it happens! Fresh memory makes for accurate treasure records! 📝🐲",
				},
				{
					ID:       "8",
					Question: "What percentage of income should ideally go to housing costs?",
					Options: []models.AnswerOption{
						{ID: "A", Text: "No more than 28-30%", Explanation: "This is the recommended guideline for housing affordability"},
						{ID: "B", Text: "Around 50%", Explanation: "This would leave too little for other needs and savings"},
						{ID: "C", Text: "Whatever you can afford", Explanation: "There are specific guidelines for housing affordability"},
						{ID: "D", Text: "At least 40%", Explanation: "This is higher than recommended and could strain your budget"},
					},
					CorrectAnswer: "A",
					Explanation:   "Financial experts generally recommend spending no more than 28-30% of gross income on housing to maintain a balanced budget.",
					AuricHint:     "Even dragon caves shouldn't take up too much of your treasure! Keep housing costs reasonable so you have plenty left for other needs and growing your hoard! 🏠🐲",
				},
			},
			EducationalSections: []models.EducationalSection{
				{
					ID:           "1",
					Title:        "Budgeting Fundamentals",
					Content:      "A budget is simply a plan for your money. It tells your money where to go instead of wondering where it went. Think of it as a roadmap for your financial journey - it helps you reach your destinations (financial goals) efficiently.",
					ImageURL:     "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
					AuricComment: "A budget is like having a master plan for organizing your treasure hoard! Without it, treasures just pile up randomly and you can't find what you need when you need it! 🐲📋",
					KeyPoints: []string{
						"A budget is a spending plan, not a restriction",
						"It helps you prioritize what's important to you",
						"Budgets should be realistic and flexible",
						"They help you reach your financial goals faster",
					},
				},
				{
					ID:           "2",
					Title:        "Needs vs. Wants: The Foundation of Smart Budgeting",
					Content:      "Understanding the difference between needs and wants is crucial for effective budgeting. Needs are expenses required for basic living and working, while wants are things that enhance your lifestyle but aren't essential.",
					ImageURL:     "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
					AuricComment: "Even dragons must distinguish between essential cave maintenance and shiny decorative treasures! Needs keep you alive and functional, wants make life more enjoyable! 🐲✨",
					Examples: map[string][]string{
						"Needs": {"Housing", "Basic food", "Transportation", "Insurance", "Utilities", "Minimum debt payments"},
						"Wants": {"Entertainment", "Dining out", "Designer items", "Hobbies", "Subscriptions", "Luxury upgrades"},
					},
				},
				{
					ID:           "3",
					Title:        "Popular Budgeting Methods",
					Content:      "There are several effective budgeting approaches. The key is finding one that fits your lifestyle and personality. Some people prefer detailed tracking, while others need simpler systems.",
					ImageURL:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
					AuricComment: "Different dragons organize their hoards differently! Some sort by treasure type, others by value, some keep it simple. Find the treasure management system that works for your dragon style! 🐲💎",
					Examples: map[string][]string{
						"50/30/20 Rule":   {"50% Needs", "30% Wants", "20% Savings & Debt"},
						"Zero-Based":      {"Every dollar assigned", "Income - Expenses = 0", "Intentional spending"},
						"Envelope Method": {"Cash for categories", "Visual spending limits", "Physical boundaries"},
					},
				},
			},
		},
	}
}
