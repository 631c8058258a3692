package industries

import "github.com/edufolio/edufolio/internal/domain"

// Industry is one GICS-style industry group with per-bucket guidance
type Industry struct {
	Name            string                   `json:"name"`
	Description     string                   `json:"description"`
	Recommendations domain.RecommendationSet `json:"recommendations"`
}

// Sector groups the industries that belong to one top-level sector
type Sector struct {
	Sector     string     `json:"sector"`
	Industries []Industry `json:"industries"`
}

func rec(category domain.RecommendationCategory, rationale string) domain.Recommendation {
	return domain.Recommendation{Category: category, Rationale: rationale}
}

// industrySectors is the curated industry guide. The rationale texts are
// teaching material and intentionally editorial.
var industrySectors = []Sector{
	{
		Sector: "Information Technology",
		Industries: []Industry{
			{
				Name:        "Software & Services",
				Description: "Companies that develop and provide software, IT services, and data processing.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.Recommended, "Many established software companies have strong recurring revenue models, providing stability and cash flow."),
					domain.BucketBalanced:     rec(domain.HighlyRecommended, "Offers a mix of stable, mature companies and high-growth cloud players, fitting well in a balanced approach."),
					domain.BucketGrowth:       rec(domain.HighlyRecommended, "Secular growth from cloud computing, AI, and digital transformation continues to drive high-margin, recurring revenue streams."),
					domain.BucketAggressive:   rec(domain.HighlyRecommended, "A primary area for finding high-growth, disruptive companies that can deliver significant long-term returns."),
				},
			},
			{
				Name:        "Semiconductors & Semiconductor Equipment",
				Description: "Producers of semiconductors and the equipment used to manufacture them.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.Neutral, "While essential, this industry is highly cyclical and volatile, making it less suitable for a primary focus in conservative strategies."),
					domain.BucketBalanced:     rec(domain.Recommended, "Provides exposure to a key technology growth driver. Its cyclical nature should be balanced within a diversified portfolio."),
					domain.BucketGrowth:       rec(domain.Recommended, "A core component for technology exposure, benefiting from long-term demand in AI, automotive, and IoT."),
					domain.BucketAggressive:   rec(domain.HighlyRecommended, "Offers high growth potential tied to major secular trends. Cyclical downturns can be viewed as buying opportunities."),
				},
			},
			{
				Name:        "Technology Hardware & Equipment",
				Description: "Manufacturers of personal computers, networking equipment, and electronic components.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.Neutral, "Mature markets and cyclical demand make this less stable than other tech sub-sectors like enterprise software."),
					domain.BucketBalanced:     rec(domain.Neutral, "Can be subject to intense competition and margin pressure. Brand strength is a key factor."),
					domain.BucketGrowth:       rec(domain.Neutral, "Innovation cycles can create opportunities, but market saturation in areas like PCs limits overall growth."),
					domain.BucketAggressive:   rec(domain.ConsiderCaution, "Often lower-margin and more capital-intensive than software, offering less attractive risk/reward for aggressive growth."),
				},
			},
			{
				Name:        "Cybersecurity",
				Description: "Companies focused on providing security for computer systems and networks.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.Recommended, "Cybersecurity spending is becoming non-discretionary, providing a defensive quality within the tech sector."),
					domain.BucketBalanced:     rec(domain.HighlyRecommended, "Benefits from a strong, undeniable secular growth trend as cyber threats increase in sophistication."),
					domain.BucketGrowth:       rec(domain.HighlyRecommended, "A high-growth area of IT spending. Leading firms are poised for significant expansion."),
					domain.BucketAggressive:   rec(domain.HighlyRecommended, "Offers exposure to a fast-growing industry with constant innovation and potential for market share disruption."),
				},
			},
		},
	},
	{
		Sector: "Health Care",
		Industries: []Industry{
			{
				Name:        "Pharmaceuticals, Biotechnology & Life Sciences",
				Description: "Companies involved in the research, development, and production of pharmaceuticals and biotech products.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.Recommended, "Large pharmaceutical companies offer stable demand and dividends, forming a defensive bedrock."),
					domain.BucketBalanced:     rec(domain.Recommended, "A mix of stable pharma and growth-oriented biotech provides a good balance for this profile."),
					domain.BucketGrowth:       rec(domain.HighlyRecommended, "Innovation in biotech and life sciences presents significant long-term growth opportunities."),
					domain.BucketAggressive:   rec(domain.HighlyRecommended, "Biotechnology in particular offers high-risk, high-reward opportunities based on clinical trial outcomes."),
				},
			},
			{
				Name:        "Health Care Equipment & Services",
				Description: "Manufacturers of medical devices and providers of health care services.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.HighlyRecommended, "Demand for healthcare is non-cyclical, making this a very stable and defensive sector."),
					domain.BucketBalanced:     rec(domain.HighlyRecommended, "Benefits from demographic tailwinds (aging populations) and consistent demand, offering reliable growth."),
					domain.BucketGrowth:       rec(domain.Recommended, "Provides steady, consistent growth, though perhaps less explosive than successful biotech."),
					domain.BucketAggressive:   rec(domain.Neutral, "The growth profile, while steady, may be too slow for an aggressive strategy seeking maximum returns."),
				},
			},
			{
				Name:        "Health Information Technology",
				Description: "Companies providing IT solutions for the healthcare industry, including electronic health records and analytics.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.Neutral, "An emerging industry that is less proven than traditional healthcare, introducing more risk."),
					domain.BucketBalanced:     rec(domain.Recommended, "A growth-oriented segment within a defensive sector, offering a compelling blend of themes."),
					domain.BucketGrowth:       rec(domain.HighlyRecommended, "Growing demand for efficiency and data-driven insights in healthcare creates a long-term growth runway."),
					domain.BucketAggressive:   rec(domain.Recommended, "A solid growth industry, but may be outpaced by more disruptive tech fields."),
				},
			},
		},
	},
	{
		Sector: "Financials",
		Industries: []Industry{
			{
				Name:        "Financial Technology (FinTech)",
				Description: "Companies combining financial services with innovative technology.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.ConsiderCaution, "A disruptive and high-growth area that comes with higher volatility and regulatory risk than traditional financials."),
					domain.BucketBalanced:     rec(domain.Recommended, "Offers exposure to innovation in a large, established sector. Best represented by profitable, leading companies."),
					domain.BucketGrowth:       rec(domain.HighlyRecommended, "High growth potential by disrupting traditional finance. A key area for growth-focused investors."),
					domain.BucketAggressive:   rec(domain.HighlyRecommended, "An area ripe for finding disruptive companies that are fundamentally changing a massive industry."),
				},
			},
			{
				Name:        "Banks",
				Description: "Commercial banks providing a range of financial services.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.Recommended, "Large, well-capitalized banks can provide stability and dividend income, though they are sensitive to the economy."),
					domain.BucketBalanced:     rec(domain.Neutral, "Performance is closely tied to the economic cycle and interest rates, which can create volatility."),
					domain.BucketGrowth:       rec(domain.ConsiderCaution, "Generally a mature, slower-growth industry compared to technology or healthcare."),
					domain.BucketAggressive:   rec(domain.NotRecommended, "The slow growth and cyclical nature of banking make it a poor fit for an aggressive strategy."),
				},
			},
		},
	},
	{
		Sector: "Consumer Discretionary",
		Industries: []Industry{
			{
				Name:        "Retailing",
				Description: "Specialty, multiline, and internet-based retailers.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.ConsiderCaution, "Intensely competitive landscape with low margins and high sensitivity to the economy."),
					domain.BucketBalanced:     rec(domain.Neutral, "Highly dependent on consumer confidence. Best approached through dominant market leaders."),
					domain.BucketGrowth:       rec(domain.Recommended, "E-commerce leaders continue to have a long runway for growth as retail shifts online."),
					domain.BucketAggressive:   rec(domain.Recommended, "Opportunity to find high-growth e-commerce players or turnaround stories in traditional retail."),
				},
			},
		},
	},
	{
		Sector: "Consumer Staples",
		Industries: []Industry{
			{
				Name:        "Food, Beverage & Tobacco",
				Description: "Producers of food, drinks, and tobacco products.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.HighlyRecommended, "A classic defensive industry with consistent demand regardless of the economic climate. Provides stability."),
					domain.BucketBalanced:     rec(domain.Recommended, "Forms a stable, defensive core for a portfolio, balancing out more cyclical holdings."),
					domain.BucketGrowth:       rec(domain.Neutral, "Growth is typically slow and steady, which may not meet the objectives of a growth-focused strategy."),
					domain.BucketAggressive:   rec(domain.NotRecommended, "The low-growth, defensive nature of this industry can be a drag on a portfolio seeking high returns."),
				},
			},
		},
	},
	{
		Sector: "Utilities",
		Industries: []Industry{
			{
				Name:        "Electric Utilities",
				Description: "Companies that generate and distribute electricity.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.HighlyRecommended, "A classic defensive sector with regulated returns and stable dividends, ideal for capital preservation and income."),
					domain.BucketBalanced:     rec(domain.Recommended, "Provides a low-volatility anchor and reliable income stream to a balanced portfolio."),
					domain.BucketGrowth:       rec(domain.ConsiderCaution, "The regulated, slow-growth nature of utilities is generally not aligned with growth objectives."),
					domain.BucketAggressive:   rec(domain.NotRecommended, "This sector is among the least likely to produce the high growth sought by aggressive investors."),
				},
			},
			{
				Name:        "Renewable Energy",
				Description: "Companies focused on alternative energy sources like solar and wind.",
				Recommendations: domain.RecommendationSet{
					domain.BucketConservative: rec(domain.Neutral, "While a growth area, many companies are not yet consistently profitable and can be volatile."),
					domain.BucketBalanced:     rec(domain.Recommended, "A way to add a growth theme to a portfolio, positioned to benefit from global decarbonization efforts."),
					domain.BucketGrowth:       rec(domain.HighlyRecommended, "A secular growth industry supported by government incentives and falling costs."),
					domain.BucketAggressive:   rec(domain.HighlyRecommended, "Offers high-growth potential, particularly in companies with breakthrough technology or strong project pipelines."),
				},
			},
		},
	},
}

// Sectors returns the industry guide in presentation order
func Sectors() []Sector {
	out := make([]Sector, len(industrySectors))
	copy(out, industrySectors)
	return out
}
