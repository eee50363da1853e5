package taxonomy

import "github.com/cartwise/backend/internal/domain"

var cableCategories = []domain.CategoryEntry{
	{ID: "abcat0107000", Name: "Cables & Connectors", ParentName: "TV & Home Theater", Keywords: []string{"cables", "cords", "connectors", "adapters"}},
	{ID: "abcat0107020", Name: "HDMI Cables", ParentName: "Cables & Connectors", Keywords: []string{"hdmi", "hdmi cord", "4k hdmi", "hdmi cable"}},
	{ID: "pcmcat1507826378408", Name: "USB Cables", ParentName: "Cables & Connectors", Keywords: []string{"usb", "usb cable", "usb cord", "charging cable"}},
	{ID: "pcmcat1507826378409", Name: "USB C Cables", ParentName: "USB Cables", Keywords: []string{"usb c", "type c", "usbc", "usb c cable"}},
	{ID: "pcmcat1507826378410", Name: "Lightning Cables", ParentName: "USB Cables", Keywords: []string{"lightning", "iphone cable", "apple charging cable"}},
	{ID: "abcat0107015", Name: "Audio Cables", ParentName: "Cables & Connectors", Keywords: []string{"optical cable", "aux cable", "rca cable", "speaker wire"}},
	{ID: "abcat0503013", Name: "Ethernet Cables", ParentName: "Cables & Connectors", Keywords: []string{"cat6", "cat5e", "lan cable", "patch cable"}},
	{ID: "pcmcat1507826378411", Name: "Display Cables", ParentName: "Cables & Connectors", Keywords: []string{"displayport", "dvi cable", "vga cable", "monitor cable"}},
	{ID: "abcat0107048", Name: "Power Cables & Extension Cords", ParentName: "Cables & Connectors", Keywords: []string{"extension cord", "power cord", "power strip", "surge protector"}},
	{ID: "pcmcat1507826378412", Name: "Adapters & Dongles", ParentName: "Cables & Connectors", Keywords: []string{"adapter", "dongle", "usb hub", "converter"}},
}
