package scorers

import "github.com/edufolio/edufolio/internal/domain"

// FundamentalMetrics are the inputs to recommendation scoring. Nil means the
// figure is unknown; a zero is a real reported value and still scores.
type FundamentalMetrics struct {
	PE            *float64
	Beta          *float64
	DividendYield *float64 // fractional, 0.02 = 2%
}

// RecommendationScorer grades a stock's fit for each risk bucket from its
// valuation, volatility, and income fundamentals.
type RecommendationScorer struct{}

// NewRecommendationScorer creates a new recommendation scorer
func NewRecommendationScorer() *RecommendationScorer {
	return &RecommendationScorer{}
}

// bucketThresholds define where the score ladder sits per bucket. Looser
// buckets tolerate lower scores before a caution flag.
var bucketThresholds = map[domain.RiskBucket]struct {
	strong  float64
	caution float64
}{
	domain.BucketConservative: {strong: 1, caution: -0.5},
	domain.BucketBalanced:     {strong: 0.5, caution: -1},
	domain.BucketGrowth:       {strong: 0, caution: -1.5},
	domain.BucketAggressive:   {strong: -0.5, caution: -2},
}

// Score computes the raw fundamentals score for one bucket.
// Components:
// - Valuation: P/E below 15 is rewarded, above 40 penalized
// - Stability: beta below 1 rewarded, above 1.3 penalized
// - Income: meaningful dividends rewarded for income-oriented buckets,
//   a zero dividend penalized for Conservative
func (rs *RecommendationScorer) Score(m FundamentalMetrics, bucket domain.RiskBucket) float64 {
	score := 0.0

	if m.PE != nil {
		if *m.PE < 15 {
			score += 1
		} else if *m.PE > 40 {
			score -= 1.5
		}
	}

	if m.Beta != nil {
		if *m.Beta < 1 {
			score += 1
		} else if *m.Beta > 1.3 {
			score -= 1
		}
	}

	if m.DividendYield != nil {
		if *m.DividendYield > 0.02 && (bucket == domain.BucketConservative || bucket == domain.BucketBalanced) {
			score += 0.5
		}
		if *m.DividendYield == 0 && bucket == domain.BucketConservative {
			score -= 0.5
		}
	}

	return score
}

// Recommend maps the raw score onto the bucket's recommendation ladder
func (rs *RecommendationScorer) Recommend(m FundamentalMetrics, bucket domain.RiskBucket) domain.Recommendation {
	score := rs.Score(m, bucket)
	t := bucketThresholds[bucket]

	switch {
	case score >= t.strong+0.5:
		return domain.Recommendation{
			Category:  domain.HighlyRecommended,
			Rationale: "Valuation, stability, and income metrics align well with this risk profile.",
		}
	case score >= t.strong:
		return domain.Recommendation{
			Category:  domain.Recommended,
			Rationale: "Core fundamentals look healthy for the risk level.",
		}
	case score > t.caution:
		return domain.Recommendation{
			Category:  domain.Neutral,
			Rationale: "Mixed signals across valuation, volatility, and dividends.",
		}
	case score > t.caution-0.5:
		return domain.Recommendation{
			Category:  domain.ConsiderCaution,
			Rationale: "Volatility or valuation flags mean this deserves careful sizing.",
		}
	default:
		return domain.Recommendation{
			Category:  domain.NotRecommended,
			Rationale: "Current metrics do not fit the desired balance of risk and reward.",
		}
	}
}

// RecommendAll grades the stock against every risk bucket
func (rs *RecommendationScorer) RecommendAll(m FundamentalMetrics) domain.RecommendationSet {
	set := make(domain.RecommendationSet, len(domain.AllBuckets))
	for _, bucket := range domain.AllBuckets {
		set[bucket] = rs.Recommend(m, bucket)
	}
	return set
}
