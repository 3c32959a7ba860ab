package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/Odongfelix/jweb/internal/core/domain"
)

const (
	sortAsc  = "asc"
	sortDesc = "desc"
)

// EncodePageToken creates an opaque token for the page following the given one.
// The sort order is carried along so the next page is cut from the same ordering.
func EncodePageToken(next domain.PageRequest) string {
	dir := sortAsc
	if next.SortDesc {
		dir = sortDesc
	}
	return EncodeMultiFieldToken(strconv.Itoa(next.Offset), strconv.Itoa(next.Limit), next.SortBy, dir)
}

// DecodePageToken parses a token produced by EncodePageToken.
func DecodePageToken(token string) (domain.PageRequest, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.PageRequest{}, err
	}
	if len(parts) != 4 {
		return domain.PageRequest{}, fmt.Errorf("invalid pagination token format (split)")
	}

	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return domain.PageRequest{}, fmt.Errorf("invalid pagination token format (offset parse)")
	}
	limit, err := strconv.Atoi(parts[1])
	if err != nil || limit <= 0 {
		return domain.PageRequest{}, fmt.Errorf("invalid pagination token format (limit parse)")
	}

	var desc bool
	switch parts[3] {
	case sortAsc:
	case sortDesc:
		desc = true
	default:
		return domain.PageRequest{}, fmt.Errorf("invalid pagination token format (sort direction)")
	}

	return domain.PageRequest{Offset: offset, Limit: limit, SortBy: parts[2], SortDesc: desc}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
