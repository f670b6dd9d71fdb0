package domain

import "encoding/json"

// DataPushReport describes the resolution of one Data Request Transaction in the
// Witnet blockchain, as served by Witnet RPC nodes.
type DataPushReport struct {
	// Hash of the Data Request Transaction that produced the result
	Hash *string `json:"hash,omitempty" yaml:"hash,omitempty"`

	Query  *ReportQuery  `json:"query,omitempty" yaml:"query,omitempty"`
	Result *ReportResult `json:"result,omitempty" yaml:"result,omitempty"`
}

// ReportQuery holds the RAD hash and SLA parameters of the solved query.
type ReportQuery struct {
	RadHash       *string `json:"rad_hash,omitempty" yaml:"rad_hash,omitempty"`
	Witnesses     uint16  `json:"witnesses,omitempty" yaml:"witnesses,omitempty"`
	UnitaryReward uint64  `json:"unitary_reward,omitempty" yaml:"unitary_reward,omitempty"`
}

// ReportResult holds the CBOR-encoded result and the timestamp it was produced at.
type ReportResult struct {
	CborBytes *string `json:"cbor_bytes,omitempty" yaml:"cbor_bytes,omitempty"`
	Timestamp uint64  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// QueryParams are the SLA parameters committed on chain alongside a report.
type QueryParams struct {
	ResultMaxSize uint16
	Witnesses     uint16
	UnitaryReward uint64
}

// QueryParamsTuple is the positional (resultMaxSize, witnesses, unitaryReward)
// shape of QueryParams.
type QueryParamsTuple struct {
	ResultMaxSize uint16
	Witnesses     uint16
	UnitaryReward uint64
}

// MarshalJSON renders the tuple as a positional array
func (t QueryParamsTuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.ResultMaxSize, t.Witnesses, t.UnitaryReward})
}

// ReportTuple is the positional shape of a DataPushReport as consumed by
// WitOracle contracts. Hex fields keep their "0x" prefix.
type ReportTuple struct {
	DrTxHash        string
	QueryRadHash    string
	QueryParams     QueryParamsTuple
	ResultTimestamp uint64
	ResultCborBytes string
}

// MarshalJSON renders the tuple as a positional array
func (t ReportTuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.DrTxHash, t.QueryRadHash, t.QueryParams, t.ResultTimestamp, t.ResultCborBytes})
}
