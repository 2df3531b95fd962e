package insight

import (
	"math"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// Template is an immutable recommendation text. The bank below is
// built once at process start and never mutated.
type Template struct {
	Title       string
	Description string
	Actions     []string
}

type templateKey struct {
	category domain.Category
	sub      string
}

var genericTemplate = Template{
	Title:       "Review and Optimize",
	Description: "Review this area of the business and identify optimization opportunities.",
	Actions: []string{
		"Gather the relevant metrics for a deeper look",
		"Compare against the previous quarter",
		"Set one measurable improvement target",
	},
}

var templateBank = map[templateKey]map[domain.Severity][]Template{
	{domain.CategoryRevenue, "decline"}: {
		domain.SeverityCritical: {
			{
				Title:       "Stop the Revenue Slide",
				Description: "Revenue has fallen sharply for consecutive months. Treat this as the top business priority and intervene now.",
				Actions: []string{
					"Call your top 10 customers this week to understand churn risk",
					"Audit recent pricing or product changes that coincide with the drop",
					"Launch a win-back offer for lapsed customers",
					"Cut discretionary spend until revenue stabilizes",
				},
			},
			{
				Title:       "Emergency Revenue Recovery",
				Description: "Sustained steep decline threatens cash flow. Focus the whole team on recovery actions with weekly checkpoints.",
				Actions: []string{
					"Set a weekly revenue recovery target and review it every Monday",
					"Identify the three largest lost accounts and attempt recovery",
					"Accelerate invoicing and tighten payment terms",
				},
			},
		},
		domain.SeverityHigh: {
			{
				Title:       "Reverse the Downward Trend",
				Description: "Revenue is trending down month over month. Act before the decline compounds.",
				Actions: []string{
					"Segment revenue by product and location to find the source of the drop",
					"Increase outreach to dormant customers",
					"Review competitor pricing for recent undercuts",
				},
			},
		},
		domain.SeverityMedium: {
			{
				Title:       "Watch the Revenue Dip",
				Description: "Revenue has softened over recent months. Monitor closely and address the likely causes early.",
				Actions: []string{
					"Track weekly sales against the same period last year",
					"Ask frontline staff for demand-side feedback",
					"Prepare a promotion to run if the dip continues next month",
				},
			},
		},
	},
	{domain.CategoryRevenue, "growth"}: {
		domain.SeverityHigh: {
			{
				Title:       "Capitalize on Strong Growth",
				Description: "Revenue is growing quickly. Reinvest while the momentum lasts and make sure operations can keep up.",
				Actions: []string{
					"Confirm inventory and staffing can support the higher volume",
					"Increase marketing spend on the channels driving the growth",
					"Lock in supplier pricing before volume discounts lapse",
				},
			},
		},
		domain.SeverityMedium: {
			{
				Title:       "Sustain the Growth Trend",
				Description: "Revenue is rising steadily. Identify what is working and double down on it.",
				Actions: []string{
					"Attribute the growth to specific products or campaigns",
					"Document the winning playbook so it is repeatable",
					"Set a stretch target for the next quarter",
				},
			},
			{
				Title:       "Build on Positive Momentum",
				Description: "Consecutive months of growth give you room to invest. Choose one growth bet and fund it.",
				Actions: []string{
					"Shortlist expansion options: new product, new location, or new channel",
					"Model the cash impact of each option",
					"Commit to the best option within 30 days",
				},
			},
		},
		domain.SeverityLow: {
			{
				Title:       "Keep the Growth Going",
				Description: "Modest but consistent growth. Maintain current strategy and watch for acceleration opportunities.",
				Actions: []string{
					"Keep marketing spend steady",
					"Survey recent customers on what brought them in",
				},
			},
		},
	},
	{domain.CategoryPricing, ""}: {
		domain.SeverityHigh: {
			{
				Title:       "Reprice Before the Market Moves",
				Description: "The size of the recent revenue swing suggests your prices are out of step with demand. A structured pricing review is overdue.",
				Actions: []string{
					"Benchmark every product's price against the top three competitors",
					"Test a price change on your highest-volume product",
					"Introduce a premium tier for your best sellers",
				},
			},
		},
		domain.SeverityMedium: {
			{
				Title:       "Run a Pricing Review",
				Description: "Recent revenue movement indicates pricing leverage you are not using. Review prices product by product.",
				Actions: []string{
					"List products unchanged in price for over a year",
					"Estimate price elasticity from recent promotions",
					"Adjust two or three prices and measure the response",
				},
			},
			{
				Title:       "Align Prices with Demand",
				Description: "Demand has shifted; prices have not. Small targeted adjustments can recover margin without losing volume.",
				Actions: []string{
					"Raise prices on products with waiting lists or frequent stockouts",
					"Bundle slow movers with popular items",
					"Review discount policies for margin leakage",
				},
			},
		},
		domain.SeverityLow: {
			{
				Title:       "Keep Pricing Under Review",
				Description: "No urgent pricing action needed, but schedule a periodic review so drift does not accumulate.",
				Actions: []string{
					"Add a quarterly pricing review to the calendar",
					"Track competitor price changes monthly",
				},
			},
		},
	},
	{domain.CategoryProduct, ""}: {
		domain.SeverityCritical: {
			{
				Title:       "Fix the Margin Gap",
				Description: "The spread between your best and worst margins is extreme. Low-margin products are subsidized by your winners.",
				Actions: []string{
					"Reprice or discontinue the lowest-margin products",
					"Shift shelf space and promotion to high-margin items",
					"Renegotiate supplier costs on thin-margin lines",
				},
			},
		},
		domain.SeverityHigh: {
			{
				Title:       "Rebalance the Product Mix",
				Description: "Margins vary widely across the portfolio. Steer sales toward the products that actually make money.",
				Actions: []string{
					"Train staff to recommend high-margin alternatives",
					"Raise prices on low-margin products with loyal demand",
					"Feature high-margin products in marketing",
				},
			},
			{
				Title:       "Prune Low-Margin Products",
				Description: "A few products earn most of the profit while others barely break even. Trim the tail.",
				Actions: []string{
					"Rank every product by margin contribution",
					"Set a minimum acceptable margin and flag products below it",
					"Phase out or reprice the flagged products",
				},
			},
		},
		domain.SeverityMedium: {
			{
				Title:       "Tune the Product Portfolio",
				Description: "Margin differences across products suggest room to optimize the mix without drastic changes.",
				Actions: []string{
					"Promote the top-margin product more prominently",
					"Review costs on the weakest margin product",
					"Revisit the mix next quarter",
				},
			},
		},
		domain.SeverityLow: {
			{
				Title:       "Monitor Product Margins",
				Description: "Margins are reasonably balanced. Keep tracking them so outliers are caught early.",
				Actions: []string{
					"Add margin per product to the monthly report",
					"Flag any product whose margin drops below 15%",
				},
			},
		},
	},
	{domain.CategoryRegional, ""}: {
		domain.SeverityCritical: {
			{
				Title:       "Urgent: Reduce Revenue Concentration",
				Description: "Nearly all revenue comes from a handful of locations. Losing one would be an existential risk.",
				Actions: []string{
					"Build a contingency plan for losing the top location",
					"Start active expansion into at least one new market",
					"Diversify the customer base within existing locations",
				},
			},
		},
		domain.SeverityHigh: {
			{
				Title:       "Spread the Revenue Base",
				Description: "Revenue is heavily concentrated in a few locations. Grow the smaller ones to reduce dependency.",
				Actions: []string{
					"Set growth targets for the bottom half of locations",
					"Reallocate marketing budget toward underweight markets",
					"Investigate why the smaller locations underperform",
				},
			},
			{
				Title:       "Grow Beyond the Leader",
				Description: "One location dominates revenue. Replicate what makes it work in the others.",
				Actions: []string{
					"Document the top location's practices and apply them elsewhere",
					"Pilot the playbook in the second-strongest location",
					"Track the revenue gap monthly",
				},
			},
		},
		domain.SeverityMedium: {
			{
				Title:       "Balance Regional Performance",
				Description: "Revenue leans on a few strong locations. A gradual diversification push will lower risk.",
				Actions: []string{
					"Compare per-location revenue trends over six months",
					"Run a local promotion in the weakest market",
					"Review whether product mix fits each location",
				},
			},
			{
				Title:       "Strengthen Secondary Markets",
				Description: "Secondary locations have room to grow. Closing part of the gap meaningfully reduces concentration risk.",
				Actions: []string{
					"Interview customers in secondary markets about unmet needs",
					"Test localized offers in two smaller locations",
				},
			},
		},
		domain.SeverityLow: {
			{
				Title:       "Keep an Eye on Concentration",
				Description: "Revenue distribution is acceptable but worth monitoring as the business grows.",
				Actions: []string{
					"Add the concentration ratio to the quarterly review",
					"Note any single location exceeding a third of revenue",
				},
			},
		},
	},
	{domain.CategoryPlanning, ""}: {
		domain.SeverityHigh: {
			{
				Title:       "Plan Around Strong Seasonality",
				Description: "Your revenue cycle has pronounced peaks and troughs. Cash, stock and staffing should follow the cycle, not fight it.",
				Actions: []string{
					"Build a month-by-month cash flow forecast around the cycle",
					"Pre-order inventory ahead of the peak month",
					"Plan flexible staffing for the peak and trough",
					"Schedule maintenance and training in the trough",
				},
			},
		},
		domain.SeverityMedium: {
			{
				Title:       "Use the Seasonal Pattern",
				Description: "A clear seasonal pattern exists in your revenue. Plan promotions and purchasing around it.",
				Actions: []string{
					"Time major promotions to start just before the peak month",
					"Negotiate supplier terms that flex with the season",
					"Smooth the trough with counter-seasonal offers",
				},
			},
			{
				Title:       "Prepare for the Peak",
				Description: "Revenue concentrates in predictable months. Preparation ahead of the peak is the cheapest growth available.",
				Actions: []string{
					"Review last peak's stockouts and staffing gaps",
					"Set peak-month revenue targets and prerequisites",
				},
			},
		},
		domain.SeverityLow: {
			{
				Title:       "Note the Seasonal Tilt",
				Description: "Mild seasonality present. Worth factoring into planning, not worth restructuring around.",
				Actions: []string{
					"Annotate the calendar with historical peak and trough months",
					"Revisit once more data accumulates",
				},
			},
		},
	},
}

// SelectTemplate deterministically picks a template for the given
// category and severity. Fallback order: requested severity, then the
// category's medium bucket, then the generic template. The index is
// pure arithmetic over the driving magnitude, so identical inputs
// always pick the same template.
func SelectTemplate(category domain.Category, sub string, severity domain.Severity, magnitude float64) Template {
	buckets, ok := templateBank[templateKey{category, sub}]
	if !ok {
		return genericTemplate
	}

	templates := buckets[severity]
	if len(templates) == 0 {
		templates = buckets[domain.SeverityMedium]
	}
	if len(templates) == 0 {
		return genericTemplate
	}

	index := int(math.Floor(math.Abs(magnitude)*10)) % len(templates)
	return templates[index]
}
