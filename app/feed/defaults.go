package feed

// Defaults returns the built-in feed catalog, used when no feeds file
// is configured.
func Defaults() []Config {
	return []Config{
		{URL: "https://www.zerohedge.com/rss/all", Name: "ZeroHedge", Category: "Alternative", Enabled: true, Color: "#FF0000"},
		{URL: "https://thegrayzone.com/feed/", Name: "The Grayzone", Category: "Alternative", Enabled: true, Color: "#808080"},
		{URL: "https://unlimitedhangout.com/feed/", Name: "Unlimited Hangout", Category: "Alternative", Enabled: true, Color: "#800080"},
		{URL: "https://www.globalresearch.ca/feed", Name: "Global Research", Category: "Alternative", Enabled: true, Color: "#008000"},
		{URL: "https://brownstone.org/feed/", Name: "Brownstone Institute", Category: "Alternative", Enabled: true, Color: "#8B4513"},
		{URL: "https://antiwar.com/feed/", Name: "Antiwar.com", Category: "Alternative", Enabled: true, Color: "#FF4500"},
		{URL: "https://www.reuters.com/rssFeed/worldNews", Name: "Reuters World", Category: "Mainstream", Enabled: true, Color: "#FF8C00"},
		{URL: "https://www.federalregister.gov/rss/documents.xml", Name: "Federal Register", Category: "Government", Enabled: true, Color: "#0000FF"},
	}
}
