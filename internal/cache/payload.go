package cache

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"cotviz-api/internal/types"
)

// EncodeAnalysis serializes an analysis payload for Redis storage. Msgpack
// keeps the cached blob compact compared to re-encoding JSON.
func EncodeAnalysis(resp *types.AnalyzeResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("cache: nil analysis payload")
	}
	data, err := msgpack.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("cache: encode analysis: %w", err)
	}
	return string(data), nil
}

// EncodeHistory serializes a history listing for Redis storage.
func EncodeHistory(resp *types.HistoryResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("cache: nil history payload")
	}
	data, err := msgpack.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("cache: encode history: %w", err)
	}
	return string(data), nil
}

// DecodeHistory deserializes a cached history listing.
func DecodeHistory(raw string) (*types.HistoryResponse, error) {
	if raw == "" {
		return nil, fmt.Errorf("cache: empty history payload")
	}
	var resp types.HistoryResponse
	if err := msgpack.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("cache: decode history: %w", err)
	}
	return &resp, nil
}

// DecodeAnalysis deserializes a cached analysis payload.
func DecodeAnalysis(raw string) (*types.AnalyzeResponse, error) {
	if raw == "" {
		return nil, fmt.Errorf("cache: empty analysis payload")
	}
	var resp types.AnalyzeResponse
	if err := msgpack.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("cache: decode analysis: %w", err)
	}
	return &resp, nil
}
