package universe

import (
	"hash/fnv"
	"math/rand"

	"github.com/edufolio/edufolio/internal/domain"
)

// TrackedTicker is one of the symbols the screener follows live. Sector and
// display name fill gaps when the quote API omits them.
type TrackedTicker struct {
	Ticker  string
	Sector  string
	Display string
}

// trackedTickers is the live screener watchlist
var trackedTickers = []TrackedTicker{
	{Ticker: "AAPL", Sector: "Technology", Display: "Apple Inc."},
	{Ticker: "MSFT", Sector: "Technology", Display: "Microsoft Corp."},
	{Ticker: "NVDA", Sector: "Technology", Display: "NVIDIA Corporation"},
	{Ticker: "AMZN", Sector: "Consumer Discretionary", Display: "Amazon.com, Inc."},
	{Ticker: "META", Sector: "Communication Services", Display: "Meta Platforms, Inc."},
	{Ticker: "JPM", Sector: "Financials", Display: "JPMorgan Chase & Co."},
	{Ticker: "UNH", Sector: "Healthcare", Display: "UnitedHealth Group"},
	{Ticker: "PG", Sector: "Consumer Staples", Display: "Procter & Gamble Co."},
	{Ticker: "XOM", Sector: "Energy", Display: "Exxon Mobil Corp."},
	{Ticker: "V", Sector: "Financials", Display: "Visa Inc."},
}

// Article is a market-wide news story for the news feed
type Article struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Published string `json:"published"`
	Snippet   string `json:"snippet"`
}

var newsArticles = []Article{
	{
		ID:        "1",
		Title:     "Federal Reserve Hints at Slower Pace of Interest Rate Hikes",
		Source:    "Bloomberg",
		Published: "45 minutes ago",
		Snippet:   "Officials suggest that the central bank may scale back the size of its rate increases as it assesses the impact on the economy.",
	},
	{
		ID:        "2",
		Title:     "Tech Stocks Rally on Positive Earnings Surprises",
		Source:    "Reuters",
		Published: "2 hours ago",
		Snippet:   "Major technology companies reported better-than-expected quarterly earnings, boosting investor confidence in the sector.",
	},
	{
		ID:        "3",
		Title:     "Oil Prices Fluctuate Amidst Geopolitical Tensions",
		Source:    "Wall Street Journal",
		Published: "5 hours ago",
		Snippet:   "Crude oil prices saw a volatile trading session as markets weighed supply concerns against fears of a global economic slowdown.",
	},
	{
		ID:        "4",
		Title:     "Consumer Spending Shows Resilience Despite Inflation",
		Source:    "CNBC",
		Published: "8 hours ago",
		Snippet:   "The latest retail sales data indicates that consumers are continuing to spend, though a shift towards essential goods is noted.",
	},
	{
		ID:        "5",
		Title:     "Global Supply Chain Pressures Begin to Ease",
		Source:    "Financial Times",
		Published: "1 day ago",
		Snippet:   "Shipping costs and delivery times are declining from their peaks, signaling a potential normalization of global trade flows.",
	},
}

// fp builds an optional float, keeping the fixture table readable
func fp(v float64) *float64 { return &v }

func rec(category domain.RecommendationCategory, rationale string) domain.Recommendation {
	return domain.Recommendation{Category: category, Rationale: rationale}
}

// fixtureSeed carries the authored portion of a fixture stock; the chart
// series are generated deterministically from the ticker at startup.
type fixtureSeed struct {
	domain.StockDetail
}

// seriesParams derives the synthetic walk parameters from the ticker so the
// fixture charts are stable across restarts but distinct per stock. Everything
// comes off the hash, so ticker length does not matter.
func seriesParams(ticker string) (trend, volatility float64, seed int64) {
	h := fnv.New64a()
	h.Write([]byte(ticker))
	sum := h.Sum64()

	trend = float64(sum%5)*0.005 - 0.01
	volatility = 0.02 + float64((sum>>8)%5)*0.01
	return trend, volatility, int64(sum)
}

// syntheticWalk produces a monthly close series starting at startPrice.
// Prices are floored at a cent so a bad walk cannot flatline the chart.
func syntheticWalk(startPrice float64, months int, trend, volatility float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	closes := make([]float64, 0, months)

	price := startPrice
	for i := 0; i < months; i++ {
		price += price * (trend + (rng.Float64()-0.5)*volatility)
		if price < 0.01 {
			price = 0.01
		}
		closes = append(closes, price)
	}
	return closes
}

// fixtureSeeds holds the authored stock universe used when live data is
// unavailable or disabled. Recommendation sets are hand-written rather than
// scored, so teaching examples stay stable regardless of market moves.
var fixtureSeeds = []fixtureSeed{
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "AAPL", Company: "Apple Inc.", Sector: "Technology", Price: 172.25, Change: 1.5,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Recommended, "Strong financials and a loyal customer base provide stability, making it a suitable core holding even for conservative investors."),
				domain.BucketBalanced:     rec(domain.HighlyRecommended, "A blend of stability from its ecosystem and growth from its services division makes it an ideal holding."),
				domain.BucketGrowth:       rec(domain.HighlyRecommended, "Dominant tech leader with consistent innovation and a powerful, high-margin ecosystem driving long-term growth."),
				domain.BucketAggressive:   rec(domain.Recommended, "A core holding for growth, though its large size may temper the explosive growth potential sought by aggressive investors."),
			},
		},
		Profile:           "Apple Inc. designs, manufactures, and markets smartphones, personal computers, tablets, wearables, and accessories worldwide.",
		MarketCap:         "2.8T",
		PERatio:           fp(28.5),
		EPS:               6.04,
		Beta:              fp(1.2),
		DividendYieldPct:  fp(0.5),
		ESGRating:         domain.ESGAverage,
		News:              []domain.NewsItem{{Title: "Apple Unveils New Vision Pro Headset", Source: "TechCrunch", Date: "2 days ago"}},
		ForecastRationale: "Based on strong brand loyalty and continued innovation in high-margin products, our model projects steady growth, though potential regulatory scrutiny presents a risk.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "MSFT", Company: "Microsoft Corp.", Sector: "Technology", Price: 305.41, Change: -0.2,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Recommended, "Dominant in enterprise software with recurring revenue streams, offering defensive characteristics for a tech stock."),
				domain.BucketBalanced:     rec(domain.HighlyRecommended, "Combines a stable, profitable software business with the high-growth cloud (Azure), offering an excellent balance of risk and reward."),
				domain.BucketGrowth:       rec(domain.HighlyRecommended, "A key player in two major growth areas: cloud computing and AI. Azure's continued expansion is a significant catalyst."),
				domain.BucketAggressive:   rec(domain.Recommended, "Provides strong, stable growth, but may not have the hyper-growth potential of smaller, more focused tech companies."),
			},
		},
		Profile:           "Microsoft Corporation develops, licenses, and supports software, services, devices, and solutions worldwide.",
		MarketCap:         "2.5T",
		PERatio:           fp(35.2),
		EPS:               8.68,
		Beta:              fp(0.9),
		DividendYieldPct:  fp(0.9),
		ESGRating:         domain.ESGLeader,
		News:              []domain.NewsItem{{Title: "Microsoft's AI Investments Paying Off", Source: "Bloomberg", Date: "1 day ago"}},
		ForecastRationale: "Continued cloud adoption and leadership in enterprise AI are expected to drive earnings. The model anticipates robust growth, assuming macroeconomic stability.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "NVDA", Company: "NVIDIA Corporation", Sector: "Technology", Price: 455.10, Change: 3.1,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.ConsiderCaution, "Extreme volatility and a very high valuation are inconsistent with capital preservation goals, despite its strong market position."),
				domain.BucketBalanced:     rec(domain.Recommended, "Offers significant growth exposure to the AI trend, but should be a smaller position due to its high volatility."),
				domain.BucketGrowth:       rec(domain.HighlyRecommended, "Unquestioned leader in GPUs, the core hardware powering the AI revolution. A key holding for growth-oriented portfolios."),
				domain.BucketAggressive:   rec(domain.HighlyRecommended, "A primary driver of portfolio growth. Its leadership in the secular AI trend presents a compelling, albeit high-risk, opportunity."),
			},
		},
		Profile:           "NVIDIA Corporation provides graphics, and compute and networking solutions in the United States, Taiwan, China, and internationally.",
		MarketCap:         "1.1T",
		PERatio:           fp(65.7),
		EPS:               6.92,
		Beta:              fp(1.7),
		DividendYieldPct:  fp(0.03),
		ESGRating:         domain.ESGAverage,
		News:              []domain.NewsItem{{Title: "NVIDIA Shatters Earnings Expectations on AI Chip Demand", Source: "Reuters", Date: "3 days ago"}},
		ForecastRationale: "The forecast is exceptionally strong, driven by the AI secular trend. However, its high valuation and potential for new competition create significant volatility risk.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "CRM", Company: "Salesforce, Inc.", Sector: "Technology", Price: 212.80, Change: 1.8,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Neutral, "Growth-focused valuation may not be suitable. Prefer companies with more stable earnings and dividends."),
				domain.BucketBalanced:     rec(domain.Recommended, "Leader in the CRM space with strong recurring revenue, providing a good balance of growth and stability."),
				domain.BucketGrowth:       rec(domain.HighlyRecommended, "Dominant market position and expansion into new cloud services provide a long runway for growth."),
				domain.BucketAggressive:   rec(domain.Recommended, "A core growth holding, but may not be as disruptive as newer, smaller cloud companies."),
			},
		},
		Profile:           "Salesforce, Inc. provides Customer Relationship Management (CRM) technology that brings companies and customers together worldwide.",
		MarketCap:         "205B",
		PERatio:           fp(110.2),
		EPS:               1.93,
		Beta:              fp(1.1),
		DividendYieldPct:  fp(0),
		ESGRating:         domain.ESGLeader,
		News:              []domain.NewsItem{{Title: "Salesforce Beats Earnings Estimates", Source: "CNBC", Date: "4 days ago"}},
		ForecastRationale: "Continued adoption of cloud-based business solutions is a primary growth driver. The forecast is positive, assuming the company maintains its market leadership.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "ADBE", Company: "Adobe Inc.", Sector: "Technology", Price: 520.45, Change: -0.5,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Recommended, "Strong moat in creative software with a subscription model provides stable, predictable revenue."),
				domain.BucketBalanced:     rec(domain.HighlyRecommended, "A high-quality company with dominant products, offering a blend of stability and long-term growth."),
				domain.BucketGrowth:       rec(domain.HighlyRecommended, "Leader in digital media and marketing software, benefiting from the growth of digital content creation."),
				domain.BucketAggressive:   rec(domain.Recommended, "A stellar long-term compounder, but its mature status may mean slower growth than emerging tech."),
			},
		},
		Profile:           "Adobe Inc. operates as a diversified software company worldwide. It operates through three segments: Digital Media, Digital Experience, and Publishing and Advertising.",
		MarketCap:         "235B",
		PERatio:           fp(45.1),
		EPS:               11.54,
		Beta:              fp(1.3),
		DividendYieldPct:  fp(0),
		ESGRating:         domain.ESGLeader,
		News:              []domain.NewsItem{{Title: "Adobe Launches New AI-Powered Features", Source: "TechCrunch", Date: "1 week ago"}},
		ForecastRationale: "The model anticipates continued strong performance driven by its subscription model and leadership in creative software. AI integration is a key future catalyst.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "AMZN", Company: "Amazon.com, Inc.", Sector: "Consumer Discretionary", Price: 134.25, Change: 2.1,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.ConsiderCaution, "High valuation and focus on growth over profits make it less suitable for investors prioritizing capital preservation."),
				domain.BucketBalanced:     rec(domain.Recommended, "Leadership in e-commerce and cloud (AWS) offers diversified growth, justifying its place in a balanced portfolio."),
				domain.BucketGrowth:       rec(domain.HighlyRecommended, "Dominance in two high-growth sectors, e-commerce and cloud computing, with continuous investment in new ventures."),
				domain.BucketAggressive:   rec(domain.HighlyRecommended, "Represents a core holding for an aggressive strategy, with AWS providing a platform for continued high-growth and innovation."),
			},
		},
		Profile:           "Amazon.com, Inc. engages in the retail sale of consumer products and subscriptions in North America and internationally.",
		MarketCap:         "1.4T",
		PERatio:           fp(60.5),
		EPS:               2.22,
		Beta:              fp(1.3),
		DividendYieldPct:  fp(0),
		ESGRating:         domain.ESGLaggard,
		News:              []domain.NewsItem{{Title: "Amazon's AWS Announces New AI Services", Source: "The Verge", Date: "Yesterday"}},
		ForecastRationale: "Growth is predicated on the continued expansion of AWS and recovery in e-commerce. The model is positive but notes that high valuation may limit short-term upside.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "TSLA", Company: "Tesla, Inc.", Sector: "Consumer Discretionary", Price: 250.10, Change: -2.5,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.NotRecommended, "Extremely high volatility and valuation driven by sentiment make it unsuitable for capital preservation."),
				domain.BucketBalanced:     rec(domain.ConsiderCaution, "While a leader in EVs, its volatility is too high for a core position in a balanced portfolio."),
				domain.BucketGrowth:       rec(domain.Recommended, "A leader in a major secular growth trend (EVs), but high valuation and competition require careful position sizing."),
				domain.BucketAggressive:   rec(domain.HighlyRecommended, "A high-risk, high-reward play on the future of transportation and energy. Volatility is expected."),
			},
		},
		Profile:           "Tesla, Inc. designs, develops, manufactures, leases, and sells electric vehicles, and energy generation and storage systems.",
		MarketCap:         "780B",
		PERatio:           fp(75.3),
		EPS:               3.32,
		Beta:              fp(2.0),
		DividendYieldPct:  fp(0),
		ESGRating:         domain.ESGAverage,
		News:              []domain.NewsItem{{Title: "Tesla Announces Price Cuts to Boost Demand", Source: "Reuters", Date: "2 days ago"}},
		ForecastRationale: "Forecast is highly dependent on execution of production ramps and maintaining market share. The wide range of outcomes reflects its high volatility and sentiment-driven nature.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "UNH", Company: "UnitedHealth Group", Sector: "Healthcare", Price: 502.50, Change: 0.7,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.HighlyRecommended, "A leader in the stable health insurance industry with a track record of consistent growth and dividend increases."),
				domain.BucketBalanced:     rec(domain.HighlyRecommended, "Offers a blend of defensive healthcare exposure with strong, consistent earnings growth from its Optum division."),
				domain.BucketGrowth:       rec(domain.Recommended, "A reliable compounder that provides stability to a growth portfolio, though not a hyper-growth stock."),
				domain.BucketAggressive:   rec(domain.Neutral, "While a great company, its growth rate may be too moderate for a portfolio focused on maximum capital appreciation."),
			},
		},
		Profile:           "UnitedHealth Group Incorporated operates as a diversified health care company in the United States.",
		MarketCap:         "460B",
		PERatio:           fp(22.5),
		EPS:               22.30,
		Beta:              fp(0.75),
		DividendYieldPct:  fp(1.5),
		ESGRating:         domain.ESGAverage,
		News:              []domain.NewsItem{{Title: "UnitedHealth Beats Earnings on Strong Optum Growth", Source: "MarketWatch", Date: "5 days ago"}},
		ForecastRationale: "The forecast is positive, driven by consistent growth in the Optum division and stable demand in the insurance segment. Demographic tailwinds from an aging population provide long-term support.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "JNJ", Company: "Johnson & Johnson", Sector: "Healthcare", Price: 165.50, Change: 0.3,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.HighlyRecommended, "A defensive healthcare giant with a long history of stable earnings and reliable dividends, ideal for capital preservation."),
				domain.BucketBalanced:     rec(domain.Recommended, "Provides a stable anchor to a portfolio with reliable dividends and lower volatility."),
				domain.BucketGrowth:       rec(domain.Neutral, "Mature company with slower growth prospects compared to biotech or medical device innovators."),
				domain.BucketAggressive:   rec(domain.NotRecommended, "Low growth profile is not suitable for an aggressive strategy seeking high capital appreciation."),
			},
		},
		Profile:           "Johnson & Johnson researches, develops, manufactures, and sells various products in the healthcare field worldwide.",
		MarketCap:         "430B",
		PERatio:           fp(24.8),
		EPS:               6.67,
		Beta:              fp(0.5),
		DividendYieldPct:  fp(2.9),
		ESGRating:         domain.ESGLeader,
		News:              []domain.NewsItem{{Title: "J&J spins off consumer health unit", Source: "Associated Press", Date: "1 week ago"}},
		ForecastRationale: "Forecast anticipates steady but slow growth, driven by its pharmaceutical and medical devices segments. Its defensive nature makes it resilient in downturns.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "V", Company: "Visa Inc.", Sector: "Financials", Price: 235.10, Change: 1.1,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Recommended, "Dominant market position and strong financials offer stability, though its valuation is growth-oriented."),
				domain.BucketBalanced:     rec(domain.HighlyRecommended, "A global payments leader that benefits from the secular shift to digital payments, offering consistent, high-margin growth."),
				domain.BucketGrowth:       rec(domain.HighlyRecommended, "Capital-light business model with a powerful network effect drives strong, consistent earnings growth."),
				domain.BucketAggressive:   rec(domain.Recommended, "A core growth holding, but its large size may prevent the hyper-growth seen in smaller fintech disruptors."),
			},
		},
		Profile:           "Visa Inc. operates as a payments technology company worldwide.",
		MarketCap:         "480B",
		PERatio:           fp(30.1),
		EPS:               7.81,
		Beta:              fp(0.95),
		DividendYieldPct:  fp(0.8),
		ESGRating:         domain.ESGLeader,
		News:              []domain.NewsItem{{Title: "Visa sees continued growth in travel spending", Source: "Reuters", Date: "4 days ago"}},
		ForecastRationale: "Positive outlook based on the ongoing global shift from cash to digital payments and the recovery in cross-border travel. Resilient business model.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "PG", Company: "Procter & Gamble", Sector: "Consumer Staples", Price: 152.40, Change: 0.1,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.HighlyRecommended, "A leading consumer staples company with strong brand loyalty, offering resilience during economic downturns and reliable dividends."),
				domain.BucketBalanced:     rec(domain.Recommended, "Provides a defensive foundation to a portfolio, ensuring stability when more cyclical stocks may falter."),
				domain.BucketGrowth:       rec(domain.NotRecommended, "Very slow growth profile is not aligned with the goals of a growth-oriented investor."),
				domain.BucketAggressive:   rec(domain.NotRecommended, "The defensive and low-growth nature of this stock makes it unsuitable for an aggressive portfolio."),
			},
		},
		Profile:           "The Procter & Gamble Company provides branded consumer packaged goods to consumers in North and Latin America, Europe, Asia Pacific, India, the Middle East, and Africa.",
		MarketCap:         "360B",
		PERatio:           fp(25.5),
		EPS:               5.98,
		Beta:              fp(0.4),
		DividendYieldPct:  fp(2.4),
		ESGRating:         domain.ESGAverage,
		News:              []domain.NewsItem{{Title: "P&G raises sales forecast on price hikes", Source: "Bloomberg", Date: "6 days ago"}},
		ForecastRationale: "Model predicts slow and steady growth, driven by brand power and pricing ability. It is considered a defensive holding that should perform well in a recession.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "JPM", Company: "JPMorgan Chase & Co.", Sector: "Financials", Price: 140.80, Change: -0.8,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Recommended, "A well-managed, diversified financial powerhouse that offers stability and a solid dividend yield for income-focused investors."),
				domain.BucketBalanced:     rec(domain.Recommended, "Offers a reasonable blend of income and value, but its performance is highly tied to the economic cycle."),
				domain.BucketGrowth:       rec(domain.Neutral, "As a mature company, its growth is limited compared to other sectors. Better growth opportunities exist elsewhere."),
				domain.BucketAggressive:   rec(domain.ConsiderCaution, "The banking sector's cyclicality and low growth profile make it a poor fit for aggressive growth strategies."),
			},
		},
		Profile:           "JPMorgan Chase & Co. is a financial holding company that provides financial and investment banking services.",
		MarketCap:         "410B",
		PERatio:           fp(10.2),
		EPS:               13.80,
		Beta:              fp(1.1),
		DividendYieldPct:  fp(2.8),
		ESGRating:         domain.ESGAverage,
		News:              []domain.NewsItem{{Title: "JPMorgan CEO warns of economic headwinds", Source: "CNBC", Date: "2 days ago"}},
		ForecastRationale: "Forecast is neutral, reflecting the balance between a strong market position and macroeconomic uncertainty. Performance will be heavily influenced by interest rate policy.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "XOM", Company: "Exxon Mobil Corp.", Sector: "Energy", Price: 115.60, Change: 1.2,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Neutral, "While it offers a high dividend, the energy sector is extremely volatile and subject to commodity price swings."),
				domain.BucketBalanced:     rec(domain.Recommended, "Provides a hedge against inflation and exposure to the energy sector, but should be position-sized carefully due to volatility."),
				domain.BucketGrowth:       rec(domain.ConsiderCaution, "A cyclical industry that is not aligned with long-term secular growth trends like technology or healthcare."),
				domain.BucketAggressive:   rec(domain.ConsiderCaution, "More of a value/cyclical play than a high-growth investment. Unfavorable for long-term aggressive growth."),
			},
		},
		Profile:           "Exxon Mobil Corporation engages in the exploration and production of crude oil and natural gas, and manufacture of petroleum products.",
		MarketCap:         "470B",
		PERatio:           fp(8.5),
		EPS:               13.60,
		Beta:              fp(0.8),
		DividendYieldPct:  fp(3.1),
		ESGRating:         domain.ESGLaggard,
		News:              []domain.NewsItem{{Title: "Oil prices rise on supply cut concerns", Source: "Reuters", Date: "1 day ago"}},
		ForecastRationale: "The forecast is highly dependent on global oil prices. While currently profitable, the long-term outlook is clouded by the transition to renewable energy.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "CVX", Company: "Chevron Corp.", Sector: "Energy", Price: 162.30, Change: 1.5,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Neutral, "Similar to XOM, the high dividend is attractive but comes with significant commodity-driven volatility."),
				domain.BucketBalanced:     rec(domain.Recommended, "Offers strong cash flows and dividends, acting as a portfolio diversifier, but is subject to cyclical risk."),
				domain.BucketGrowth:       rec(domain.NotRecommended, "A mature, cyclical business that does not fit a growth-oriented investment thesis."),
				domain.BucketAggressive:   rec(domain.NotRecommended, "Poor fit for an aggressive strategy due to its cyclical nature and lack of secular growth drivers."),
			},
		},
		Profile:           "Chevron Corporation engages in integrated energy and chemicals operations worldwide.",
		MarketCap:         "310B",
		PERatio:           fp(9.8),
		EPS:               16.56,
		Beta:              fp(0.9),
		DividendYieldPct:  fp(3.7),
		ESGRating:         domain.ESGLaggard,
		News:              []domain.NewsItem{{Title: "Chevron boosts dividend and share buybacks", Source: "Wall Street Journal", Date: "3 days ago"}},
		ForecastRationale: "The outlook is tied to energy prices and global economic demand. The company's focus on shareholder returns is a positive, but cyclical risks remain high.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "CAT", Company: "Caterpillar Inc.", Sector: "Industrials", Price: 255.40, Change: 2.1,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.ConsiderCaution, "A highly cyclical business that is very sensitive to the global economic outlook. Not ideal for capital preservation."),
				domain.BucketBalanced:     rec(domain.Recommended, "A global leader that serves as a good barometer for economic activity. Best bought early in an economic cycle."),
				domain.BucketGrowth:       rec(domain.Neutral, "Growth is cyclical, not secular. Not as reliable for long-term growth as other sectors."),
				domain.BucketAggressive:   rec(domain.Neutral, "While it can perform well in an expansion, it lacks the disruptive potential sought by aggressive investors."),
			},
		},
		Profile:           "Caterpillar Inc. manufactures and sells construction and mining equipment, diesel and natural gas engines, industrial gas turbines, and diesel-electric locomotives worldwide.",
		MarketCap:         "130B",
		PERatio:           fp(15.2),
		EPS:               16.80,
		Beta:              fp(1.0),
		DividendYieldPct:  fp(2.0),
		ESGRating:         domain.ESGAverage,
		News:              []domain.NewsItem{{Title: "Caterpillar reports strong demand from construction sector", Source: "Bloomberg", Date: "4 days ago"}},
		ForecastRationale: "Forecast is positive but cautious, reflecting strong current demand but acknowledging high sensitivity to a potential economic slowdown. A classic cyclical stock.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "BA", Company: "The Boeing Company", Sector: "Industrials", Price: 210.90, Change: -1.2,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.NotRecommended, "High debt load, operational issues, and cyclicality make this stock far too risky for a conservative portfolio."),
				domain.BucketBalanced:     rec(domain.ConsiderCaution, "A high-risk turnaround play. Potential upside is significant but depends on resolving production and safety concerns."),
				domain.BucketGrowth:       rec(domain.Recommended, "A duopoly in a massive industry. If it can overcome its current challenges, the long-term growth could be substantial."),
				domain.BucketAggressive:   rec(domain.HighlyRecommended, "A high-risk, high-reward investment. A successful turnaround could lead to massive returns, which fits an aggressive profile."),
			},
		},
		Profile: "The Boeing Company designs, manufactures, and sells commercial airplanes, defense, space, and security systems worldwide.",
		// Negative trailing earnings, so no meaningful P/E
		MarketCap:         "125B",
		PERatio:           nil,
		EPS:               -8.30,
		Beta:              fp(1.5),
		DividendYieldPct:  fp(0),
		ESGRating:         domain.ESGLaggard,
		News:              []domain.NewsItem{{Title: "Boeing faces new questions over 737 MAX production", Source: "Reuters", Date: "1 day ago"}},
		ForecastRationale: "The forecast has a very wide range of outcomes. A successful resolution of its production issues could lead to significant upside, but continued problems present a major risk.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "DIS", Company: "The Walt Disney Company", Sector: "Communication Services", Price: 85.50, Change: 0.5,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Neutral, "The company is in a turnaround phase and faces challenges in its streaming business, reducing its defensive appeal."),
				domain.BucketBalanced:     rec(domain.Recommended, "Iconic brands and assets provide a solid foundation, but the transition to streaming profitability is a key variable."),
				domain.BucketGrowth:       rec(domain.Recommended, "A bet on the power of its content and brand to win in the streaming wars and drive parks attendance."),
				domain.BucketAggressive:   rec(domain.Recommended, "A turnaround story with potential for significant upside if streaming becomes profitable and parks growth continues."),
			},
		},
		Profile:           "The Walt Disney Company operates as an entertainment company worldwide.",
		MarketCap:         "155B",
		PERatio:           fp(35.1),
		EPS:               2.44,
		Beta:              fp(1.2),
		DividendYieldPct:  fp(0),
		ESGRating:         domain.ESGLeader,
		News:              []domain.NewsItem{{Title: "Disney+ to crack down on password sharing", Source: "Variety", Date: "3 days ago"}},
		ForecastRationale: "The forecast is cautiously optimistic, assuming a path to profitability for its streaming segment and continued strength in its Parks division. The stock's performance hinges on execution.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "NFLX", Company: "Netflix, Inc.", Sector: "Communication Services", Price: 410.20, Change: -1.8,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.NotRecommended, "A high-growth, high-volatility stock in a competitive industry. Unsuitable for capital preservation."),
				domain.BucketBalanced:     rec(domain.ConsiderCaution, "While a market leader, the \"streaming wars\" create significant uncertainty and risk."),
				domain.BucketGrowth:       rec(domain.Recommended, "A pioneer and leader in a global secular growth industry. Its focus on original content is a key differentiator."),
				domain.BucketAggressive:   rec(domain.HighlyRecommended, "Despite competition, it remains the leader in streaming with significant pricing power and global scale."),
			},
		},
		Profile:           "Netflix, Inc. provides entertainment services. It offers TV series, documentaries, feature films, and mobile games across a wide variety of genres and languages.",
		MarketCap:         "180B",
		PERatio:           fp(32.5),
		EPS:               12.62,
		Beta:              fp(1.3),
		DividendYieldPct:  fp(0),
		ESGRating:         domain.ESGAverage,
		News:              []domain.NewsItem{{Title: "Netflix ad-supported tier gains traction", Source: "The Hollywood Reporter", Date: "1 week ago"}},
		ForecastRationale: "The forecast is positive, based on continued subscriber growth, particularly in international markets, and the success of its ad-supported tier. Competition remains a key risk.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "PLD", Company: "Prologis, Inc.", Sector: "Real Estate", Price: 118.40, Change: 0.9,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Recommended, "A high-quality real estate investment trust (REIT) providing stable, dividend-based income."),
				domain.BucketBalanced:     rec(domain.HighlyRecommended, "A leader in a critical part of the e-commerce supply chain (logistics warehouses), offering a blend of income and growth."),
				domain.BucketGrowth:       rec(domain.Recommended, "Benefits from the secular growth of e-commerce, which drives demand for its warehouse properties."),
				domain.BucketAggressive:   rec(domain.Neutral, "While a great company, REITs are generally not suited for aggressive growth strategies due to their moderate growth profiles."),
			},
		},
		Profile:           "Prologis, Inc. is the global leader in logistics real estate with a focus on high-barrier, high-growth markets.",
		MarketCap:         "110B",
		PERatio:           fp(30.2),
		EPS:               3.92,
		Beta:              fp(0.9),
		DividendYieldPct:  fp(2.9),
		ESGRating:         domain.ESGLeader,
		News:              []domain.NewsItem{{Title: "E-commerce growth continues to fuel warehouse demand", Source: "Real Estate Weekly", Date: "5 days ago"}},
		ForecastRationale: "The forecast is positive, driven by the long-term secular trend of e-commerce. The company's global scale and quality portfolio provide a competitive advantage.",
	}},
	{StockDetail: domain.StockDetail{
		Stock: domain.Stock{
			Ticker: "LIN", Company: "Linde plc", Sector: "Materials", Price: 395.70, Change: 0.6,
			Recommendations: domain.RecommendationSet{
				domain.BucketConservative: rec(domain.Recommended, "A defensive industrial company with a wide moat and stable, recurring revenues from long-term contracts."),
				domain.BucketBalanced:     rec(domain.HighlyRecommended, "Offers a unique combination of defensive stability and exposure to long-term growth themes like hydrogen energy."),
				domain.BucketGrowth:       rec(domain.Recommended, "A high-quality compounder that provides steady growth, though less explosive than technology stocks."),
				domain.BucketAggressive:   rec(domain.Neutral, "A great business, but its growth rate is likely too moderate for an aggressive investment strategy."),
			},
		},
		Profile:           "Linde plc operates as an industrial gas and engineering company in North and South America, Europe, the Middle East, Africa, and Asia Pacific.",
		MarketCap:         "190B",
		PERatio:           fp(33.1),
		EPS:               11.95,
		Beta:              fp(0.8),
		DividendYieldPct:  fp(1.3),
		ESGRating:         domain.ESGLeader,
		News:              []domain.NewsItem{{Title: "Linde announces new green hydrogen project", Source: "Chemical & Engineering News", Date: "1 week ago"}},
		ForecastRationale: "The forecast is positive, based on its stable business model and growth opportunities in healthcare and clean energy. It's considered a high-quality, lower-risk industrial holding.",
	}},
}
