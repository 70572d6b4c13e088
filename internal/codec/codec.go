// Package codec holds the fixed translation tables between the database's
// integer enum encoding and the string values the frontend speaks.
package codec

import (
	"strings"

	"nichebridge/internal/domain"
)

// Database page_process_status codes the bridge knows about.
const (
	StatusUnprocessed = 0  // INITIAL_PENDING
	StatusSaved       = 11 // INITIAL_SUCCESS
	StatusDeleted     = 13 // DELETED
)

var statusToUI = map[int]string{
	StatusUnprocessed: "unprocessed",
	StatusSaved:       "saved",
	StatusDeleted:     "deleted",
}

var statusToDB = map[string]int{
	"unprocessed": StatusUnprocessed,
	"saved":       StatusSaved,
	"deleted":     StatusDeleted,
}

var creativeTypeToUI = map[int64]string{
	0: "image",
	1: "video",
	2: "carousel",
}

// StatusToUI maps a database status code to its frontend string. Unknown codes
// render as "unprocessed"; dirty data must not break the listing.
func StatusToUI(code int) string {
	if s, ok := statusToUI[code]; ok {
		return s
	}
	return "unprocessed"
}

// StatusToDB maps a frontend status string to its database code. Unknown
// strings are rejected; write paths must not persist codes outside the enum.
func StatusToDB(status string) (int, error) {
	code, ok := statusToDB[status]
	if !ok {
		return 0, domain.ErrInvalidStatus
	}
	return code, nil
}

// StatusToDBOrDefault is the read-path variant of StatusToDB: unknown strings
// resolve to the unprocessed code instead of erroring.
func StatusToDBOrDefault(status string) int {
	return statusToDB[status]
}

// CreativeTypeToUI maps a creative_type column value to its frontend string.
// NULL (nil) and unmapped values default to "image".
func CreativeTypeToUI(code *int64) string {
	if code == nil {
		return "image"
	}
	if s, ok := creativeTypeToUI[*code]; ok {
		return s
	}
	return "image"
}

// CountryIndex resolves a country code to its position in the fixed country
// list, case-insensitively. Unknown codes resolve to 0 ("ALL").
func CountryIndex(country string) int {
	upper := strings.ToUpper(country)
	for i, c := range countries {
		if c == upper {
			return i
		}
	}
	return 0
}

// countries is the canonical country vocabulary shared with the scraper; a
// search term stores an index into this list, not the code itself.
var countries = []string{
	"ALL", "BR", "IN", "GB", "US", "CA", "AR", "AU", "AT", "BE", "CL", "CN",
	"CO", "HR", "DK", "DO", "EG", "FI", "FR", "DE", "GR", "HK", "ID", "IE",
	"IL", "IT", "JP", "JO", "KW", "LB", "MY", "MX", "NL", "NZ", "NG", "NO",
	"PK", "PA", "PE", "PH", "PL", "RU", "SA", "RS", "SG", "ZA", "KR", "ES",
	"SE", "CH", "TW", "TH", "TR", "AE", "VE", "PT", "LU", "BG", "CZ", "SI",
	"IS", "SK", "LT", "TT", "BD", "LK", "KE", "HU", "MA", "CY", "JM", "EC",
	"RO", "BO", "GT", "CR", "QA", "SV", "HN", "NI", "PY", "UY", "PR", "BA",
	"PS", "TN", "BH", "VN", "GH", "MU", "UA", "MT", "BS", "MV", "OM", "MK",
	"LV", "EE", "IQ", "DZ", "AL", "NP", "MO", "ME", "SN", "GE", "BN", "UG",
	"GP", "BB", "AZ", "TZ", "LY", "MQ", "CM", "BW", "ET", "KZ", "NA", "MG",
	"NC", "MD", "FJ", "BY", "JE", "GU", "YE", "ZM", "IM", "HT", "KH", "AW",
	"PF", "AF", "BM", "GY", "AM", "MW", "AG", "RW", "GG", "GM", "FO", "LC",
	"KY", "BJ", "AD", "GD", "VI", "BZ", "VC", "MN", "MZ", "ML", "AO", "GF",
	"UZ", "DJ", "BF", "MC", "TG", "GL", "GA", "GI", "CD", "KG", "PG", "BT",
	"KN", "SZ", "LS", "LA", "LI", "MP", "SR", "SC", "VG", "TC", "DM", "MR",
	"AX", "SM", "SL", "NE", "CG", "AI", "YT", "CV", "GN", "TM", "BI", "TJ",
	"VU", "SB", "ER", "WS", "AS", "FK", "GQ", "TO", "KM", "PW", "FM", "CF",
	"SO", "MH", "VA", "TD", "KI", "ST", "TV", "NR", "RE", "LR", "ZW", "CI",
	"MM", "AN", "AQ", "BQ", "BV", "IO", "CX", "CC", "CK", "CW", "TF", "GW",
	"HM", "XK", "MS", "NU", "NF", "PN", "BL", "SH", "MF", "PM", "SX", "GS",
	"SD", "SS", "SJ", "TL", "TK", "UM", "WF", "EH",
}
