package domain

// QueryStatus is the lifecycle stage of a WitOracle query
type QueryStatus string

const (
	QueryStatusVoid      QueryStatus = "Void"
	QueryStatusPosted    QueryStatus = "Posted"
	QueryStatusReported  QueryStatus = "Reported"
	QueryStatusFinalized QueryStatus = "Finalized"
	QueryStatusDelayed   QueryStatus = "Delayed"
	QueryStatusExpired   QueryStatus = "Expired"
	QueryStatusDisputed  QueryStatus = "Disputed"
)

// DecodeQueryStatus maps the on-chain enum value to a QueryStatus.
func DecodeQueryStatus(status uint8) QueryStatus {
	switch status {
	case 1:
		return QueryStatusPosted
	case 2:
		return QueryStatusReported
	case 3:
		return QueryStatusFinalized
	case 4:
		return QueryStatusDelayed
	case 5:
		return QueryStatusExpired
	case 6:
		return QueryStatusDisputed
	default:
		return QueryStatusVoid
	}
}

// PriceFeedMappingAlgorithm tells how a routed price feed combines its dependencies
type PriceFeedMappingAlgorithm string

const (
	MappingNone     PriceFeedMappingAlgorithm = "None"
	MappingFallback PriceFeedMappingAlgorithm = "Fallback"
	MappingHottest  PriceFeedMappingAlgorithm = "Hottest"
	MappingProduct  PriceFeedMappingAlgorithm = "Product"
)

func DecodePriceFeedMappingAlgorithm(algorithm uint8) PriceFeedMappingAlgorithm {
	switch algorithm {
	case 1:
		return MappingFallback
	case 2:
		return MappingHottest
	case 3:
		return MappingProduct
	default:
		return MappingNone
	}
}

// PriceFeedMapper describes a price feed derived from other feeds
type PriceFeedMapper struct {
	Algorithm    PriceFeedMappingAlgorithm `json:"algorithm"`
	Dependencies []string                  `json:"dependencies"`
}
