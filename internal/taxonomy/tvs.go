package taxonomy

import "github.com/cartwise/backend/internal/domain"

var tvCategories = []domain.CategoryEntry{
	{ID: "abcat0101000", Name: "TVs", ParentName: "TV & Home Theater", Keywords: []string{"tv", "television set", "smart tv", "flat screen"}},
	{ID: "pcmcat1514910449960", Name: "OLED TVs", ParentName: "TVs", Keywords: []string{"oled", "oled tv", "oled television"}},
	{ID: "pcmcat1514910449961", Name: "QLED TVs", ParentName: "TVs", Keywords: []string{"qled", "qled tv", "quantum dot"}},
	{ID: "pcmcat333800050003", Name: "4K Ultra HD TVs", ParentName: "TVs", Keywords: []string{"4k tv", "ultra hd", "uhd tv", "4k television"}},
	{ID: "pcmcat1563300455297", Name: "8K TVs", ParentName: "TVs", Keywords: []string{"8k", "8k tv"}},
	{ID: "pcmcat220700050011", Name: "Projectors & Screens", ParentName: "TV & Home Theater", Keywords: []string{"projector", "projection screen", "home projector"}},
	{ID: "pcmcat241600050001", Name: "Sound Bars", ParentName: "TV & Home Theater", Keywords: []string{"soundbar", "sound bar", "tv speaker"}},
	{ID: "abcat0203000", Name: "Home Theater Systems", ParentName: "TV & Home Theater", Keywords: []string{"surround sound", "home theater system", "av receiver", "receiver"}},
	{ID: "abcat0106004", Name: "TV Mounts", ParentName: "TV & Home Theater", Keywords: []string{"wall mount", "tv bracket", "tv wall mount"}},
	{ID: "abcat0106002", Name: "TV Stands & Furniture", ParentName: "TV & Home Theater", Keywords: []string{"tv stand", "media console", "entertainment center"}},
	{ID: "pcmcat161100050040", Name: "Streaming Media Players", ParentName: "TV & Home Theater", Keywords: []string{"streaming device", "roku", "fire stick", "apple tv", "chromecast"}},
	{ID: "abcat0102000", Name: "Blu ray & DVD Players", ParentName: "TV & Home Theater", Keywords: []string{"blu ray player", "dvd player", "disc player"}},
	{ID: "pcmcat1509635993025", Name: "TV Antennas", ParentName: "TV & Home Theater", Keywords: []string{"antenna", "hdtv antenna", "digital antenna"}},
	{ID: "abcat0107034", Name: "Universal Remotes", ParentName: "TV & Home Theater", Keywords: []string{"remote control", "universal remote", "tv remote"}},
}
