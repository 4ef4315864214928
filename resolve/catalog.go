package resolve

type Zone struct {
	Name  string
	Label string
}

type Region struct {
	Key   string
	Title string
	Zones []Zone
}

// Regions groups every recognized timezone for browsing.
var Regions = []Region{
	{Key: "north_america", Title: "🇺🇸 North America", Zones: []Zone{
		{"America/New_York", "Eastern Time (US & Canada)"},
		{"America/Chicago", "Central Time (US & Canada)"},
		{"America/Denver", "Mountain Time (US & Canada)"},
		{"America/Phoenix", "Arizona (No DST)"},
		{"America/Los_Angeles", "Pacific Time (US & Canada)"},
		{"America/Anchorage", "Alaska Time"},
		{"Pacific/Honolulu", "Hawaii Time"},
		{"America/Toronto", "Eastern Canada"},
		{"America/Vancouver", "Pacific Canada"},
		{"America/Winnipeg", "Central Canada"},
		{"America/Edmonton", "Mountain Canada"},
		{"America/Halifax", "Atlantic Canada"},
		{"America/St_Johns", "Newfoundland"},
	}},
	{Key: "south_america", Title: "🇲🇽 Central & South America", Zones: []Zone{
		{"America/Mexico_City", "Mexico Central"},
		{"America/Tijuana", "Mexico Pacific"},
		{"America/Cancun", "Mexico Eastern"},
		{"America/Guatemala", "Guatemala"},
		{"America/Costa_Rica", "Costa Rica"},
		{"America/Panama", "Panama"},
		{"America/Bogota", "Colombia"},
		{"America/Caracas", "Venezuela"},
		{"America/Lima", "Peru"},
		{"America/La_Paz", "Bolivia"},
		{"America/Santiago", "Chile"},
		{"America/Argentina/Buenos_Aires", "Argentina"},
		{"America/Sao_Paulo", "Brazil (São Paulo)"},
		{"America/Manaus", "Brazil (Amazonas)"},
	}},
	{Key: "europe", Title: "🇬🇧 Europe & UK", Zones: []Zone{
		{"Europe/London", "United Kingdom (GMT/BST)"},
		{"Europe/Dublin", "Ireland"},
		{"Europe/Paris", "France (CET)"},
		{"Europe/Berlin", "Germany (CET)"},
		{"Europe/Amsterdam", "Netherlands (CET)"},
		{"Europe/Brussels", "Belgium (CET)"},
		{"Europe/Madrid", "Spain (CET)"},
		{"Europe/Rome", "Italy (CET)"},
		{"Europe/Vienna", "Austria (CET)"},
		{"Europe/Zurich", "Switzerland (CET)"},
		{"Europe/Stockholm", "Sweden (CET)"},
		{"Europe/Oslo", "Norway (CET)"},
		{"Europe/Copenhagen", "Denmark (CET)"},
		{"Europe/Warsaw", "Poland (CET)"},
		{"Europe/Prague", "Czech Republic (CET)"},
		{"Europe/Budapest", "Hungary (CET)"},
		{"Europe/Athens", "Greece (EET)"},
		{"Europe/Helsinki", "Finland (EET)"},
		{"Europe/Moscow", "Russia (MSK)"},
		{"Europe/Kyiv", "Ukraine (EET)"},
		{"Europe/Istanbul", "Turkey (TRT)"},
	}},
	{Key: "asia_pacific", Title: "🇯🇵 Asia & Pacific", Zones: []Zone{
		{"Asia/Tokyo", "Japan (JST)"},
		{"Asia/Seoul", "South Korea (KST)"},
		{"Asia/Shanghai", "China (CST)"},
		{"Asia/Hong_Kong", "Hong Kong"},
		{"Asia/Taipei", "Taiwan"},
		{"Asia/Singapore", "Singapore"},
		{"Asia/Manila", "Philippines"},
		{"Asia/Jakarta", "Indonesia (Western)"},
		{"Asia/Bangkok", "Thailand"},
		{"Asia/Ho_Chi_Minh", "Vietnam"},
		{"Asia/Kuala_Lumpur", "Malaysia"},
		{"Asia/Kolkata", "India (IST)"},
		{"Asia/Karachi", "Pakistan"},
		{"Asia/Dhaka", "Bangladesh"},
		{"Asia/Kathmandu", "Nepal"},
		{"Asia/Colombo", "Sri Lanka"},
		{"Asia/Almaty", "Kazakhstan"},
		{"Asia/Tashkent", "Uzbekistan"},
	}},
	{Key: "africa_middle_east", Title: "🌍 Africa & Middle East", Zones: []Zone{
		{"Africa/Cairo", "Egypt"},
		{"Africa/Lagos", "Nigeria (West Africa)"},
		{"Africa/Johannesburg", "South Africa"},
		{"Africa/Nairobi", "Kenya (East Africa)"},
		{"Africa/Casablanca", "Morocco"},
		{"Africa/Tunis", "Tunisia"},
		{"Africa/Algiers", "Algeria"},
		{"Asia/Dubai", "UAE"},
		{"Asia/Riyadh", "Saudi Arabia"},
		{"Asia/Qatar", "Qatar"},
		{"Asia/Baghdad", "Iraq"},
		{"Asia/Tehran", "Iran"},
		{"Asia/Jerusalem", "Israel"},
		{"Asia/Beirut", "Lebanon"},
		{"Asia/Damascus", "Syria"},
	}},
	{Key: "oceania", Title: "🌊 Oceania & Islands", Zones: []Zone{
		{"Australia/Sydney", "Australia Eastern"},
		{"Australia/Melbourne", "Australia Eastern"},
		{"Australia/Brisbane", "Australia Eastern (No DST)"},
		{"Australia/Adelaide", "Australia Central"},
		{"Australia/Perth", "Australia Western"},
		{"Australia/Darwin", "Australia Central (No DST)"},
		{"Pacific/Auckland", "New Zealand"},
		{"Pacific/Fiji", "Fiji"},
		{"Pacific/Guam", "Guam"},
		{"Pacific/Tahiti", "French Polynesia"},
		{"Pacific/Marquesas", "Marquesas Islands"},
		{"Pacific/Galapagos", "Galapagos Islands"},
		{"Pacific/Easter", "Easter Island"},
	}},
	{Key: "utc", Title: "⏰ UTC & Standard Times", Zones: []Zone{
		{"UTC", "Coordinated Universal Time"},
		{"GMT", "Greenwich Mean Time"},
		{"EST", "Eastern Standard Time (no DST)"},
		{"MST", "Mountain Standard Time (no DST)"},
		{"CET", "Central European Time"},
		{"EET", "Eastern European Time"},
	}},
}

// Catalog is every recognized timezone name in region order.
var Catalog = func() []string {
	var names []string
	seen := map[string]bool{}
	for _, r := range Regions {
		for _, z := range r.Zones {
			if !seen[z.Name] {
				seen[z.Name] = true
				names = append(names, z.Name)
			}
		}
	}
	return names
}()

// RegionByKey returns the region registered under key.
func RegionByKey(key string) (Region, bool) {
	for _, r := range Regions {
		if r.Key == key {
			return r, true
		}
	}
	return Region{}, false
}
