// Package category holds the fixed keyword taxonomy and the classifiers
// that match transaction descriptions against it. The taxonomy is built
// once at startup and read-only afterwards, so it is safe for concurrent
// use without locking.
package category

// Subcategory is a leaf taxonomy entry carrying the keyword set.
type Subcategory struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Parent is a second-level grouping under a main category.
type Parent struct {
	Key           string        `json:"key"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Main is a top-level taxonomy bucket (expenses or income).
type Main struct {
	Key     string   `json:"key"`
	Parents []Parent `json:"categories"`
}

// Special is a flat top-level category with no parent/subcategory levels.
// Specials are checked before the hierarchical walk.
type Special struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Taxonomy is the process-wide category tree. Slice ordering is the
// classifier's tie-break: definition order must be preserved exactly.
type Taxonomy struct {
	Specials []Special `json:"specials"`
	Mains    []Main    `json:"mains"`
}

// Default is the built-in taxonomy for Norwegian bank statements.
var Default = &Taxonomy{
	Specials: []Special{
		{
			Key:      "transfers",
			Name:     "Transfers",
			Keywords: []string{"overføring", "til konto", "fra konto", "egen konto", "dnb", "sparekonto", "transfer"},
		},
		{
			Key:      "investments",
			Name:     "Investments",
			Keywords: []string{"nordnet", "aksje", "fond", "etf", "sbanken invest", "stock", "fund"},
		},
	},
	Mains: []Main{
		{
			Key: "expenses",
			Parents: []Parent{
				{
					Key:  "daily_living",
					Name: "Daily Living",
					Subcategories: []Subcategory{
						{Key: "groceries", Name: "Groceries", Keywords: []string{"kiwi", "bunnpris", "rema", "coop", "meny", "matkroken", "hagkaup", "mega", "joker"}},
						{Key: "dining_out", Name: "Dining Out", Keywords: []string{"espresso", "starbucks", "peppes", "pizzabakeren", "burger", "via napoli", "mc donalds", "kebab", "restaurant", "kafe"}},
					},
				},
				{
					Key:  "housing",
					Name: "Housing",
					Subcategories: []Subcategory{
						{Key: "rent", Name: "Rent", Keywords: []string{"leie", "husleie", "bolig"}},
						{Key: "utilities", Name: "Utilities", Keywords: []string{"strøm", "elinett", "electric", "vann", "water", "renovasjon", "avfall", "kommunale avgifter"}},
					},
				},
				{
					Key:  "transportation",
					Name: "Transportation",
					Subcategories: []Subcategory{
						{Key: "public_transport", Name: "Public Transport", Keywords: []string{"ruter", "vy", "ruterappen", "flytoget", "t-bane", "buss", "trikk", "tog", "train", "bus", "tram"}},
						{Key: "taxis", Name: "Taxis & Rides", Keywords: []string{"taxi", "bolt", "yango", "uber"}},
						{Key: "car", Name: "Car Expenses", Keywords: []string{"bensin", "drivstoff", "fuel", "bomring", "toll", "parkering", "parking", "bilservice", "verksted"}},
					},
				},
				{
					Key:  "shopping",
					Name: "Shopping",
					Subcategories: []Subcategory{
						{Key: "clothing", Name: "Clothing", Keywords: []string{"zara", "h&m", "bikbok", "hm", "weekday", "monki", "cubus", "dress", "klær"}},
						{Key: "electronics", Name: "Electronics", Keywords: []string{"elkjøp", "power", "komplett", "kjell", "apple store", "samsung"}},
						{Key: "home_goods", Name: "Home Goods", Keywords: []string{"ikea", "clas ohlson", "kid", "princess", "jysk", "nille", "jernia", "søstrene grene"}},
					},
				},
				{
					Key:  "health",
					Name: "Health",
					Subcategories: []Subcategory{
						{Key: "medical", Name: "Medical", Keywords: []string{"lege", "legesenter", "doctor", "tannlege", "dentist", "fysioterapi", "kiropraktor", "apotek", "pharmacy", "vitusapotek"}},
						{Key: "selfcare", Name: "Self Care", Keywords: []string{"frisør", "jasmin frisor", "hudpleie", "spa", "massage", "massasje", "salon", "salong"}},
						{Key: "fitness", Name: "Fitness", Keywords: []string{"sats", "elixia", "treningssenter", "gym", "trening"}},
					},
				},
				{
					Key:  "entertainment",
					Name: "Entertainment",
					Subcategories: []Subcategory{
						{Key: "streaming", Name: "Streaming Services", Keywords: []string{"spotify", "netflix", "viaplay", "youtube", "hbo", "disney+", "amazon prime"}},
						{Key: "events", Name: "Events & Tickets", Keywords: []string{"kino", "nordisk film kino", "colosseum", "event", "konsert", "concert", "teater", "theater", "billetter", "tickets"}},
						{Key: "hobbies", Name: "Hobbies", Keywords: []string{"bøker", "books", "ark", "norli", "spill", "games", "hobby"}},
					},
				},
				{
					Key:  "travel",
					Name: "Travel",
					Subcategories: []Subcategory{
						{Key: "flights", Name: "Flights", Keywords: []string{"sas", "norwegian", "widerøe", "ryanair", "lufthansa", "klm", "flight", "fly"}},
						{Key: "hotels", Name: "Hotels", Keywords: []string{"hotel", "hotell", "airbnb", "booking.com", "hotels.com", "expedia", "overnatting"}},
						{Key: "vacation", Name: "Vacation Activities", Keywords: []string{"tour", "tur", "opplevelse", "experience", "sightseeing"}},
					},
				},
				{
					Key:  "subscriptions",
					Name: "Subscriptions & Services",
					Subcategories: []Subcategory{
						{Key: "telecom", Name: "Telecom", Keywords: []string{"ice", "telenor", "telia", "mobilabonnement", "phone", "internet", "mobil"}},
						{Key: "software", Name: "Software & Apps", Keywords: []string{"google", "apple.com/bill", "microsoft", "app store", "play store", "adobe", "icloud"}},
						{Key: "insurance", Name: "Insurance", Keywords: []string{"gjensidige", "if", "tryg", "fremtind", "forsikring", "insurance"}},
					},
				},
			},
		},
		{
			Key: "income",
			Parents: []Parent{
				{
					Key:  "earnings",
					Name: "Earnings",
					Subcategories: []Subcategory{
						{Key: "salary", Name: "Salary", Keywords: []string{"lønn", "salary", "utbetaling", "fra arbeidsgiver", "arbeid", "universitetet", "studentsamskipnaden", "sio"}},
						{Key: "benefits", Name: "Benefits & Support", Keywords: []string{"nav", "stipend", "stønad", "lånekassen", "scholarship", "lånekasse", "statens lånekasse"}},
					},
				},
				{
					Key:  "other_income",
					Name: "Other Income",
					Subcategories: []Subcategory{
						{Key: "refunds", Name: "Refunds", Keywords: []string{"refusjon", "tilbakebetaling", "refund", "return"}},
						{Key: "gifts", Name: "Gifts", Keywords: []string{"gave", "gift", "vipps fra", "vippsbetaling mottatt", "betaling fra"}},
						{Key: "investments", Name: "Investment Returns", Keywords: []string{"utbytte", "dividend", "rente", "interest", "avkastning", "return"}},
					},
				},
			},
		},
	},
}

// FlatEntry pairs a legacy flat category with its keyword list.
type FlatEntry struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// FlatTable returns the legacy single-tier table in match order.
func FlatTable() []FlatEntry {
	return flatKeywords
}

// flatKeywords is the legacy single-tier table, kept for the older API
// surface. First match wins, in this order.
var flatKeywords = []FlatEntry{
	{"groceries", []string{"kiwi", "bunnpris", "rema", "coop", "meny", "matkroken", "hagkaup"}},
	{"subscriptions", []string{"spotify", "netflix", "viaplay", "youtube", "sats", "apple", "gjensidige", "google"}},
	{"clothing", []string{"zara", "h&m", "bikbok", "hm", "weekday", "monki"}},
	{"selfcare", []string{"frisør", "jasmin frisor", "hudpleie", "apotek", "spa"}},
	{"food_and_drink", []string{"espresso", "starbucks", "peppes", "pizzabakeren", "burger", "via napoli", "mc donalds", "kebab"}},
	{"transport", []string{"ruter", "vy", "bolt", "yango", "ruterappen", "flytoget"}},
	{"utilities", []string{"ice", "telenor", "telia", "leie", "strøm", "elinett", "husleie"}},
	{"entertainment", []string{"kino", "nordisk film kino", "colosseum", "event", "konsert"}},
	{"shopping", []string{"normal", "duty free", "wh smith", "tise", "vitusapotek", "nille", "clas ohlson", "jysk"}},
	{"investing", []string{"nordnet", "aksje", "fond", "etf", "sbanken invest"}},
	{"salary", []string{"lønn", "salary", "utbetaling", "fra arbeidsgiver", "arbeid", "universitetet", "studentsamskipnaden", "sio"}},
	{"refunds", []string{"refusjon", "tilbakebetaling", "vipps fra", "vippsbetaling mottatt", "betaling fra"}},
	{"benefits", []string{"nav", "stipend", "stønad", "lånekassen", "scholarship", "lånekasse", "statens lånekasse"}},
	{"transfers", []string{"overføring", "til konto", "fra konto", "egen konto", "dnb", "sparekonto"}},
}
