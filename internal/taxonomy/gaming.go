package taxonomy

import "github.com/cartwise/backend/internal/domain"

var gamingCategories = []domain.CategoryEntry{
	{ID: "pcmcat1565886226766", Name: "PC Gaming", ParentName: "Video Games", Keywords: []string{"pc games", "gaming pc", "gaming rig", "pc gamer"}},
	{ID: "pcmcat287600050002", Name: "Gaming Laptops", ParentName: "Laptops", Keywords: []string{"gaming notebook", "gamer laptop"}},
	{ID: "pcmcat1565886226767", Name: "Gaming Desktops", ParentName: "PC Gaming", Keywords: []string{"gaming tower", "gamer desktop"}},
	{ID: "pcmcat1565886226768", Name: "Gaming Monitors", ParentName: "PC Gaming", Keywords: []string{"high refresh monitor", "144hz monitor", "esports monitor"}},
	{ID: "pcmcat1565886226769", Name: "Gaming Keyboards & Mice", ParentName: "PC Gaming", Keywords: []string{"mechanical keyboard", "gamer keyboard", "rgb keyboard"}},
	{ID: "pcmcat230800050019", Name: "Gaming Headsets", ParentName: "PC Gaming", Keywords: []string{"gaming headphones", "headset", "gamer headset"}},
	{ID: "pcmcat295700050012", Name: "PlayStation 5", ParentName: "Video Games", Keywords: []string{"ps5", "playstation", "sony console", "dualsense"}},
	{ID: "pcmcat1586900952752", Name: "Xbox Series XS", ParentName: "Video Games", Keywords: []string{"xbox", "xbox series", "microsoft console"}},
	{ID: "pcmcat1484077694025", Name: "Nintendo Switch", ParentName: "Video Games", Keywords: []string{"switch", "nintendo", "switch oled", "joycon"}},
	{ID: "abcat0703000", Name: "Video Game Consoles", ParentName: "Video Games", Keywords: []string{"console", "game console", "gaming console"}},
	{ID: "pcmcat1492808199261", Name: "Virtual Reality", ParentName: "Video Games", Keywords: []string{"vr", "vr headset", "meta quest", "oculus"}},
	{ID: "abcat0715000", Name: "Controllers & Gamepads", ParentName: "Video Games", Keywords: []string{"controller", "gamepad", "joystick", "game controller"}},
	{ID: "pcmcat1589826386536", Name: "Gaming Chairs", ParentName: "PC Gaming", Keywords: []string{"gamer chair", "ergonomic gaming chair"}},
	{ID: "pcmcat1492808199262", Name: "Handheld Gaming PCs", ParentName: "PC Gaming", Keywords: []string{"steam deck", "rog ally", "handheld console"}},
}
