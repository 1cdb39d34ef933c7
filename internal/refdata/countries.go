package refdata

import "strings"

// ISO 3166-1 alpha-2 -> NetSuite country enumeration, per the 2013_2 schema
// browser's platformCommonTyp:Country.
var countryCodes = map[string]string{
	"AR": "_argentina",
	"AT": "_austria",
	"AU": "_australia",
	"BE": "_belgium",
	"BR": "_brazil",
	"CA": "_canada",
	"CH": "_switzerland",
	"CL": "_chile",
	"CN": "_china",
	"CO": "_colombia",
	"CZ": "_czechRepublic",
	"DE": "_germany",
	"DK": "_denmark",
	"ES": "_spain",
	"FI": "_finland",
	"FR": "_france",
	"GB": "_unitedKingdom",
	"GR": "_greece",
	"HK": "_hongKong",
	"HU": "_hungary",
	"ID": "_indonesia",
	"IE": "_ireland",
	"IL": "_israel",
	"IN": "_india",
	"IT": "_italy",
	"JP": "_japan",
	"KR": "_republicOfKorea",
	"MX": "_mexico",
	"MY": "_malaysia",
	"NL": "_netherlands",
	"NO": "_norway",
	"NZ": "_newZealand",
	"PE": "_peru",
	"PH": "_philippines",
	"PL": "_poland",
	"PT": "_portugal",
	"RU": "_russianFederation",
	"SE": "_sweden",
	"SG": "_singapore",
	"TH": "_thailand",
	"TR": "_turkey",
	"TW": "_taiwan",
	"US": "_unitedStates",
	"VN": "_vietnam",
	"ZA": "_southAfrica",
}

// CountryByISO maps a storefront ISO country code to the NetSuite enum value.
// Unknown codes pass through so NetSuite reports the mismatch.
func CountryByISO(iso string) string {
	if code, ok := countryCodes[strings.ToUpper(strings.TrimSpace(iso))]; ok {
		return code
	}
	return iso
}

// NormalizeCountry converts a NetSuite country enum coming back on outbound
// data, e.g. _unitedStates -> UnitedStates.
func NormalizeCountry(name string) string {
	name = strings.TrimPrefix(name, "_")
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
