package normalize

// airlineNames maps IATA airline codes to display names.
var airlineNames = map[string]string{
	"AA": "American Airlines",
	"AF": "Air France",
	"AZ": "ITA Airways",
	"BA": "British Airways",
	"CX": "Cathay Pacific",
	"DL": "Delta Air Lines",
	"EK": "Emirates",
	"ET": "Ethiopian Airlines",
	"EY": "Etihad Airways",
	"FR": "Ryanair",
	"FZ": "FlyDubai",
	"GA": "Garuda Indonesia",
	"IB": "Iberia",
	"JL": "Japan Airlines",
	"KL": "KLM",
	"KQ": "Kenya Airways",
	"LH": "Lufthansa",
	"LX": "Swiss International Air Lines",
	"MS": "EgyptAir",
	"NH": "ANA",
	"OS": "Austrian Airlines",
	"PC": "Pegasus Airlines",
	"QF": "Qantas",
	"QR": "Qatar Airways",
	"RJ": "Royal Jordanian",
	"SQ": "Singapore Airlines",
	"SV": "Saudia",
	"TK": "Turkish Airlines",
	"U2": "EasyJet",
	"UA": "United Airlines",
	"VN": "Vietnam Airlines",
	"W6": "Wizz Air",
}

// airlineAlliances maps IATA airline codes to their alliance.
var airlineAlliances = map[string]string{
	"AA": "oneworld",
	"AF": "SkyTeam",
	"AZ": "SkyTeam",
	"BA": "oneworld",
	"CX": "oneworld",
	"DL": "SkyTeam",
	"ET": "Star Alliance",
	"GA": "SkyTeam",
	"IB": "oneworld",
	"JL": "oneworld",
	"KL": "SkyTeam",
	"KQ": "SkyTeam",
	"LH": "Star Alliance",
	"LX": "Star Alliance",
	"MS": "Star Alliance",
	"NH": "Star Alliance",
	"OS": "Star Alliance",
	"QF": "oneworld",
	"QR": "oneworld",
	"RJ": "oneworld",
	"SQ": "Star Alliance",
	"SV": "SkyTeam",
	"TK": "Star Alliance",
	"UA": "Star Alliance",
	"VN": "SkyTeam",
}

// AirlineName returns the display name for an IATA airline code.
// Unknown codes pass through unchanged.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return code
}

// AirlineAlliance returns the alliance for an IATA airline code, or an
// empty string when the airline belongs to none.
func AirlineAlliance(code string) string {
	return airlineAlliances[code]
}
