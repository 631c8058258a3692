package chat

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/domain"
)

const fallbackReply = "Tell me a ticker and I will pull fresh stats from Yahoo Finance to break it down in plain English."

// tickerPattern matches short all-caps words after the message is uppercased,
// so both "AAPL" and "aapl" qualify.
var tickerPattern = regexp.MustCompile(`\b[A-Z]{1,5}\b`)

// stopWords are short words that look like tickers after uppercasing but
// never are. Without this list "WHAT ABOUT TESLA" resolves "WHAT" first.
var stopWords = map[string]bool{
	"A": true, "I": true, "ABOUT": true, "AND": true, "ARE": true, "BUY": true,
	"CAN": true, "DO": true, "DOES": true, "FOR": true, "GOOD": true, "HOW": true,
	"IS": true, "IT": true, "ME": true, "MY": true, "OF": true, "ON": true,
	"SELL": true, "SHARE": true, "STOCK": true, "TELL": true, "THE": true,
	"THINK": true, "TO": true, "WHAT": true, "WHY": true, "WITH": true, "YOU": true,
}

// companySuffixes are dropped when matching company names, so "apple"
// matches "Apple Inc.".
var companySuffixes = map[string]bool{
	"inc": true, "inc.": true, "corp": true, "corp.": true, "corporation": true,
	"co": true, "co.": true, "company": true, "plc": true, "ltd": true,
	"ltd.": true, "group": true, "holdings": true, "&": true,
}

// MarketSource supplies stock lookups and the known universe for
// company-name matching.
type MarketSource interface {
	StockDetail(ctx context.Context, ticker string) (*domain.StockDetail, error)
	FixtureStocks() []domain.Stock
}

// Service answers free-form investor questions with templated educational
// responses. There is no language model behind it; replies are assembled
// from live stock data and the canned explanation texts.
type Service struct {
	market MarketSource
	log    zerolog.Logger
}

// NewService creates a new chat service
func NewService(market MarketSource, log zerolog.Logger) *Service {
	return &Service{
		market: market,
		log:    log.With().Str("service", "chat").Logger(),
	}
}

// Respond builds a reply for one message. Resolution order: stress-test
// intent, ticker symbols in the message, company names, then the generic
// prompt for a ticker. A risk profile personalizes the stock stance.
func (s *Service) Respond(ctx context.Context, message string, profile *domain.RiskProfile) string {
	if strings.Contains(strings.ToLower(message), "stress") {
		return StressTestExplanation()
	}

	for _, candidate := range s.tickerCandidates(message) {
		detail, err := s.market.StockDetail(ctx, candidate)
		if err != nil {
			continue
		}
		return s.stockReply(detail, profile)
	}

	if ticker := s.matchCompany(message); ticker != "" {
		if detail, err := s.market.StockDetail(ctx, ticker); err == nil {
			return s.stockReply(detail, profile)
		}
	}

	return fallbackReply
}

// tickerCandidates extracts ticker-looking words in message order
func (s *Service) tickerCandidates(message string) []string {
	matches := tickerPattern.FindAllString(strings.ToUpper(message), -1)
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		if !stopWords[m] {
			candidates = append(candidates, m)
		}
	}
	return candidates
}

// matchCompany scans the known universe for a company name mentioned in the
// message.
func (s *Service) matchCompany(message string) string {
	words := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(message)) {
		words[strings.Trim(w, ".,!?")] = true
	}

	for _, stock := range s.market.FixtureStocks() {
		for _, part := range strings.Fields(strings.ToLower(stock.Company)) {
			part = strings.Trim(part, ".,")
			if len(part) < 3 || companySuffixes[part] {
				continue
			}
			if words[part] {
				return stock.Ticker
			}
		}
	}
	return ""
}

func (s *Service) stockReply(detail *domain.StockDetail, profile *domain.RiskProfile) string {
	riskNote := "Set your risk profile to see a personalized stance."
	if profile != nil {
		rec := detail.Recommendations[profile.Bucket]
		riskNote = "For your " + string(profile.Bucket) + " profile, the system currently tags it as \"" +
			string(rec.Category) + "\" because " + rec.Rationale
	}

	return "Here is what I found for " + detail.Company + " (" + detail.Ticker + "): it trades around $" +
		strconv.FormatFloat(detail.Price, 'f', 2, 64) + " with a P/E near " + formatPE(detail.PERatio) + ". " + riskNote
}

func formatPE(pe *float64) string {
	if pe == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*pe, 'f', -1, 64)
}
