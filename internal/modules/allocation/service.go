package allocation

import (
	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/domain"
)

// Service provides the ETF core portfolio model
type Service struct {
	log zerolog.Logger
}

// NewService creates a new allocation service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "allocation").Logger(),
	}
}

// TargetAllocation returns a copy of the ETF weights for the bucket
func (s *Service) TargetAllocation(bucket domain.RiskBucket) map[string]float64 {
	targets, ok := targetAllocations[bucket]
	if !ok {
		s.log.Warn().Str("bucket", string(bucket)).Msg("Unknown bucket, using Balanced targets")
		targets = targetAllocations[domain.BucketBalanced]
	}

	weights := make(map[string]float64, len(targets))
	for ticker, weight := range targets {
		weights[ticker] = weight
	}
	return weights
}

// CorePortfolio builds the ETF core portfolio for the bucket, combining the
// target weights with the published metrics.
func (s *Service) CorePortfolio(bucket domain.RiskBucket) domain.Portfolio {
	metrics, ok := coreMetrics[bucket]
	if !ok {
		metrics = coreMetrics[domain.BucketBalanced]
	}

	return domain.Portfolio{
		Weights:        s.TargetAllocation(bucket),
		ExpectedReturn: metrics.expectedReturn,
		Volatility:     metrics.volatility,
		SharpeRatio:    metrics.sharpeRatio,
	}
}

// AssetDescriptions returns the ETF building blocks in presentation order
func (s *Service) AssetDescriptions() []domain.AssetDescription {
	descriptions := make([]domain.AssetDescription, 0, len(assetOrder))
	for _, ticker := range assetOrder {
		if desc, ok := assetDescriptions[ticker]; ok {
			descriptions = append(descriptions, desc)
		}
	}
	return descriptions
}

// DescribeAsset returns the description for one ETF ticker
func (s *Service) DescribeAsset(ticker string) (domain.AssetDescription, bool) {
	desc, ok := assetDescriptions[ticker]
	return desc, ok
}
