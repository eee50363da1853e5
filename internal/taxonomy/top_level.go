package taxonomy

import "github.com/cartwise/backend/internal/domain"

// topLevelCategories are the department roots shown first in every listing.
var topLevelCategories = []domain.CategoryEntry{
	{ID: "abcat0100000", Name: "TV & Home Theater", Keywords: []string{"television", "televisions", "home theater", "home cinema"}},
	{ID: "abcat0500000", Name: "Computers & Tablets", Keywords: []string{"computers", "pc", "tablets", "computing"}},
	{ID: "abcat0800000", Name: "Cell Phones", Keywords: []string{"mobile phones", "smartphones", "cellphones", "mobile"}},
	{ID: "abcat0400000", Name: "Cameras, Camcorders & Drones", Keywords: []string{"cameras", "photography", "camcorders", "drones"}},
	{ID: "abcat0700000", Name: "Video Games", Keywords: []string{"games", "consoles", "video game consoles", "gamer"}},
	{ID: "abcat0900000", Name: "Appliances", Keywords: []string{"home appliances", "kitchen appliances", "major appliances"}},
	{ID: "abcat0200000", Name: "Audio", Keywords: []string{"sound", "speakers", "headphones", "music gear"}},
	{ID: "pcmcat254000050002", Name: "Smart Home, Security & WiFi", Keywords: []string{"smart home", "home automation", "connected home", "home security"}},
	{ID: "abcat0300000", Name: "Car Electronics & GPS", Keywords: []string{"car audio", "gps", "car electronics", "vehicle electronics"}},
	{ID: "pcmcat332000050000", Name: "Health, Wellness & Fitness", Keywords: []string{"fitness", "wellness", "health", "personal care"}},
	{ID: "abcat0600000", Name: "Movies & Music", Keywords: []string{"movies", "blu ray", "dvds", "vinyl records"}},
	{ID: "pcmcat748300666861", Name: "Wearable Technology", Keywords: []string{"wearables", "smartwatches", "fitness trackers"}},
	{ID: "pcmcat1563299784494", Name: "Office Supplies & Ink", Keywords: []string{"office supplies", "printer ink", "toner", "paper"}},
	{ID: "pcmcat1496260231998", Name: "Electric Transportation", Keywords: []string{"electric scooters", "ebikes", "hoverboards", "electric bikes"}},
}
