package common

const (
	// ContextKeyUserID is the echo context key the auth middleware stores
	// the authenticated user id under.
	ContextKeyUserID = "user_id"

	// DefaultSearchLimit bounds nearest-neighbor vector searches.
	DefaultSearchLimit = 5
	// DefaultHistoryLimit bounds conversation-history reads.
	DefaultHistoryLimit = 10

	// DefaultGenerateMaxTokens bounds text-generation requests.
	DefaultGenerateMaxTokens = 150

	// MarketDataCacheKeyPrefix prefixes the latest-price cache keys.
	MarketDataCacheKeyPrefix = "market:latest:"
)
