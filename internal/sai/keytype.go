package sai

// keytype.go — wire type resolution for keys and action parameters.
//
// A bit-width plus two naming hints (the header the field lives in and the
// field name itself) map to a SAI C type tag. The hint checks are heuristic
// substring containment on the names exactly as they appear in the P4Info
// document; the width-then-hint precedence below is load-bearing and must
// not be reordered (a 32-bit field named "dst_addr" is an IP address, a
// 32-bit field named "vni" is a plain uint32).

import "strings"

// Match kinds recognized on a match field, after lowercasing.
const (
	matchExact     = "exact"
	matchLPM       = "lpm"
	matchList      = "list"
	matchRangeList = "range_list"
)

// ipHint reports whether a 32-bit value is address-like: "addr" in the
// field name or "ip" in the header name.
func ipHint(header, field string) bool {
	return strings.Contains(field, "addr") || strings.Contains(header, "ip")
}

// macHint reports whether a 48-bit value is MAC-like: "addr" in the field
// name or "mac" in the header name.
func macHint(header, field string) bool {
	return strings.Contains(field, "addr") || strings.Contains(header, "mac")
}

// keyType resolves the scalar (exact match) type for a key or action
// parameter.
func keyType(width int, header, field string) (string, error) {
	switch {
	case width == 1:
		return "bool", nil
	case width <= 8:
		return "sai_uint8_t", nil
	case width <= 16:
		return "sai_uint16_t", nil
	case width == 32 && ipHint(header, field):
		return "sai_ip_address_t", nil
	case width <= 32:
		return "sai_uint32_t", nil
	case width == 48 && macHint(header, field):
		return "sai_mac_t", nil
	case width <= 64:
		return "sai_uint64_t", nil
	}
	return "", &UnsupportedWidthError{Width: width, Header: header, Field: field, Mode: matchExact}
}

// lpmType resolves the longest-prefix-match type. Only 32-bit
// address-like keys have a prefix representation.
func lpmType(width int, header, field string) (string, error) {
	if width == 32 && ipHint(header, field) {
		return "sai_ip_prefix_t", nil
	}
	return "", &UnsupportedWidthError{Width: width, Header: header, Field: field, Mode: matchLPM}
}

// listType resolves the list-membership type. Same bands as keyType, but
// width 1 folds into the u8 list (there is no bool list).
func listType(width int, header, field string) (string, error) {
	switch {
	case width <= 8:
		return "sai_u8_list_t", nil
	case width <= 16:
		return "sai_u16_list_t", nil
	case width == 32 && ipHint(header, field):
		return "sai_ip_address_list_t", nil
	case width <= 32:
		return "sai_u32_list_t", nil
	case width <= 64:
		return "sai_u64_list_t", nil
	}
	return "", &UnsupportedWidthError{Width: width, Header: header, Field: field, Mode: matchList}
}

// rangeListType resolves the range-membership type. Band structure follows
// listType. Note the 32-bit address tag is "ipaddr", not "ip_address" —
// that asymmetry is in the published SAI type names.
func rangeListType(width int, header, field string) (string, error) {
	switch {
	case width <= 8:
		return "sai_u8_range_list_t", nil
	case width <= 16:
		return "sai_u16_range_list_t", nil
	case width == 32 && ipHint(header, field):
		return "sai_ipaddr_range_list_t", nil
	case width <= 32:
		return "sai_u32_range_list_t", nil
	case width <= 64:
		return "sai_u64_range_list_t", nil
	}
	return "", &UnsupportedWidthError{Width: width, Header: header, Field: field, Mode: matchRangeList}
}
