package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	quoteURL        = "https://query1.finance.yahoo.com/v7/finance/quote"
	quoteSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/"
	chartURL        = "https://query1.finance.yahoo.com/v8/finance/chart/"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// Client is a Yahoo Finance API client. All calls go through a shared rate
// limiter so batch refreshes cannot hammer the upstream API.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewClient creates a new Yahoo Finance client
func NewClient(requestsPerSec float64, log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), 1),
		log:     log.With().Str("client", "yahoo").Logger(),
	}
}

// yahooQuoteResponse represents the response from the quote API
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []map[string]interface{} `json:"result"`
		Error  interface{}              `json:"error"`
	} `json:"quoteResponse"`
}

// GetQuotes fetches current quote data for a batch of symbols in one request.
// Symbols missing from the response are simply absent from the result map.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) (map[string]*QuoteSnapshot, error) {
	if len(symbols) == 0 {
		return map[string]*QuoteSnapshot{}, nil
	}

	params := url.Values{}
	params.Add("symbols", strings.Join(symbols, ","))
	params.Add("fields", "symbol,shortName,longName,regularMarketPrice,regularMarketChangePercent,"+
		"trailingPE,forwardPE,epsTrailingTwelveMonths,beta,beta3Year,dividendYield,"+
		"trailingAnnualDividendYield,marketCap,sector")

	body, err := c.get(ctx, quoteURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var result yahooQuoteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse quote response: %w", err)
	}

	if result.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteResponse.Error)
	}

	quotes := make(map[string]*QuoteSnapshot, len(result.QuoteResponse.Result))
	for _, info := range result.QuoteResponse.Result {
		symbol := getString(info, "symbol", "")
		if symbol == "" {
			continue
		}

		name := getString(info, "shortName", "")
		if name == "" {
			name = getString(info, "longName", symbol)
		}

		quotes[symbol] = &QuoteSnapshot{
			Symbol:                      symbol,
			ShortName:                   name,
			Sector:                      getString(info, "sector", ""),
			RegularMarketPrice:          getFloat64(info, "regularMarketPrice"),
			RegularMarketChangePct:      getFloat64(info, "regularMarketChangePercent"),
			TrailingPE:                  getFloat64(info, "trailingPE"),
			ForwardPE:                   getFloat64(info, "forwardPE"),
			EPS:                         getFloat64(info, "epsTrailingTwelveMonths"),
			Beta:                        getFloat64(info, "beta"),
			Beta3Year:                   getFloat64(info, "beta3Year"),
			DividendYield:               getFloat64(info, "dividendYield"),
			TrailingAnnualDividendYield: getFloat64(info, "trailingAnnualDividendYield"),
			MarketCap:                   getInt64(info, "marketCap"),
		}
	}

	c.log.Debug().
		Int("requested", len(symbols)).
		Int("returned", len(quotes)).
		Msg("Fetched quote batch")

	return quotes, nil
}

// quoteSummaryResponse mirrors the nested quoteSummary payload. Values are
// wrapped in {raw, fmt} objects, hence the map-based extraction below.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile         map[string]interface{} `json:"assetProfile"`
			SummaryDetail        map[string]interface{} `json:"summaryDetail"`
			DefaultKeyStatistics map[string]interface{} `json:"defaultKeyStatistics"`
			FinancialData        map[string]interface{} `json:"financialData"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"quoteSummary"`
}

// GetQuoteSummary fetches profile and key-statistics data for one symbol
func (c *Client) GetQuoteSummary(ctx context.Context, symbol string) (*SummarySnapshot, error) {
	params := url.Values{}
	params.Add("modules", "assetProfile,summaryDetail,defaultKeyStatistics,financialData")

	reqURL := quoteSummaryURL + url.PathEscape(symbol) + "?" + params.Encode()

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var result quoteSummaryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse quoteSummary response: %w", err)
	}

	if result.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteSummary.Error)
	}

	if len(result.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no quoteSummary data returned for symbol %s", symbol)
	}

	r := result.QuoteSummary.Result[0]

	snap := &SummarySnapshot{
		Symbol:           symbol,
		LongSummary:      getString(r.AssetProfile, "longBusinessSummary", ""),
		Sector:           getString(r.AssetProfile, "sector", ""),
		Industry:         getString(r.AssetProfile, "industry", ""),
		TrailingPE:       getRawFloat64(r.SummaryDetail, "trailingPE"),
		ForwardPE:        getRawFloat64(r.SummaryDetail, "forwardPE"),
		Beta:             getRawFloat64(r.SummaryDetail, "beta"),
		Beta3Year:        getRawFloat64(r.DefaultKeyStatistics, "beta3Year"),
		DividendYield:    getRawFloat64(r.SummaryDetail, "dividendYield"),
		TrailingDivYield: getRawFloat64(r.SummaryDetail, "trailingAnnualDividendYield"),
		EPS:              getRawFloat64(r.DefaultKeyStatistics, "trailingEps"),
		MarketCap:        getRawInt64(r.SummaryDetail, "marketCap"),
		RevenueGrowth:    getRawFloat64(r.FinancialData, "revenueGrowth"),
	}

	// Key statistics carry trailingPE for some symbols the summary lacks
	if snap.TrailingPE == nil {
		snap.TrailingPE = getRawFloat64(r.DefaultKeyStatistics, "trailingPE")
	}
	if snap.ForwardPE == nil {
		snap.ForwardPE = getRawFloat64(r.DefaultKeyStatistics, "forwardPE")
	}

	return snap, nil
}

// GetHistoricalPrices fetches historical OHLCV bars from the chart API.
//
// Supports ranges: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max
// and intervals: 1d, 1wk, 1mo
func (c *Client) GetHistoricalPrices(ctx context.Context, symbol, rng, interval string) ([]HistoricalPrice, error) {
	params := url.Values{}
	params.Add("range", rng)
	params.Add("interval", interval)

	reqURL := chartURL + url.PathEscape(symbol) + "?" + params.Encode()

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var result struct {
		Chart struct {
			Result []struct {
				Timestamp  []int64 `json:"timestamp"`
				Indicators struct {
					Quote []struct {
						Open   []float64 `json:"open"`
						High   []float64 `json:"high"`
						Low    []float64 `json:"low"`
						Close  []float64 `json:"close"`
						Volume []int64   `json:"volume"`
					} `json:"quote"`
					AdjClose []struct {
						AdjClose []float64 `json:"adjclose"`
					} `json:"adjclose"`
				} `json:"indicators"`
			} `json:"result"`
			Error interface{} `json:"error"`
		} `json:"chart"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse chart response: %w", err)
	}

	if result.Chart.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.Chart.Error)
	}

	if len(result.Chart.Result) == 0 {
		c.log.Warn().Str("symbol", symbol).Msg("No historical data returned")
		return []HistoricalPrice{}, nil
	}

	chartData := result.Chart.Result[0]
	timestamps := chartData.Timestamp
	if len(chartData.Indicators.Quote) == 0 {
		c.log.Warn().Str("symbol", symbol).Msg("No quote data in chart response")
		return []HistoricalPrice{}, nil
	}

	quote := chartData.Indicators.Quote[0]

	var adjCloseData []float64
	if len(chartData.Indicators.AdjClose) > 0 {
		adjCloseData = chartData.Indicators.AdjClose[0].AdjClose
	}

	var prices []HistoricalPrice
	for i := range timestamps {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			continue
		}

		// Yahoo fills missing bars with zeroed rows
		if quote.Open[i] == 0 && quote.High[i] == 0 && quote.Low[i] == 0 && quote.Close[i] == 0 {
			continue
		}

		adjClose := quote.Close[i]
		if i < len(adjCloseData) && adjCloseData[i] != 0 {
			adjClose = adjCloseData[i]
		}

		volume := int64(0)
		if i < len(quote.Volume) {
			volume = quote.Volume[i]
		}

		prices = append(prices, HistoricalPrice{
			Date:     time.Unix(timestamps[i], 0),
			Open:     quote.Open[i],
			High:     quote.High[i],
			Low:      quote.Low[i],
			Close:    quote.Close[i],
			Volume:   volume,
			AdjClose: adjClose,
		})
	}

	c.log.Debug().
		Str("symbol", symbol).
		Str("range", rng).
		Int("count", len(prices)).
		Msg("Fetched historical prices")

	return prices, nil
}

// get performs a rate-limited GET with browser headers and retries on
// transient failures with exponential backoff.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	const maxRetries = 3

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}

		body, err := c.doGet(ctx, reqURL)
		if err == nil {
			return body, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}

		if attempt < maxRetries-1 {
			waitTime := time.Duration(1<<uint(attempt)) * time.Second
			c.log.Warn().Err(err).
				Int("attempt", attempt+1).
				Dur("wait", waitTime).
				Msg("Request failed, retrying")

			select {
			case <-time.After(waitTime):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

func (c *Client) doGet(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Yahoo rejects requests without browser headers
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// Helper functions to safely extract values from map

func getFloat64(m map[string]interface{}, key string) *float64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return &v
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func getInt64(m map[string]interface{}, key string) *int64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			i := int64(v)
			return &i
		case int:
			i := int64(v)
			return &i
		case int64:
			return &v
		}
	}
	return nil
}

func getString(m map[string]interface{}, key string, defaultVal string) string {
	if val, ok := m[key]; ok && val != nil {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return defaultVal
}

// getRawFloat64 extracts a value wrapped in a quoteSummary {raw, fmt} object
func getRawFloat64(m map[string]interface{}, key string) *float64 {
	if m == nil {
		return nil
	}
	if val, ok := m[key]; ok && val != nil {
		if wrapped, ok := val.(map[string]interface{}); ok {
			return getFloat64(wrapped, "raw")
		}
		return getFloat64(m, key)
	}
	return nil
}

func getRawInt64(m map[string]interface{}, key string) *int64 {
	if m == nil {
		return nil
	}
	if val, ok := m[key]; ok && val != nil {
		if wrapped, ok := val.(map[string]interface{}); ok {
			return getInt64(wrapped, "raw")
		}
		return getInt64(m, key)
	}
	return nil
}
