package taxonomy

import "github.com/cartwise/backend/internal/domain"

var smartHomeCategories = []domain.CategoryEntry{
	{ID: "pcmcat1476977522176", Name: "Smart Speakers & Displays", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"smart speaker", "alexa", "echo", "google home", "smart display"}},
	{ID: "pcmcat254000050003", Name: "Smart Lighting", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"smart bulb", "smart lights", "philips hue", "light strip"}},
	{ID: "pcmcat254000050004", Name: "Smart Thermostats", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"thermostat", "nest thermostat", "ecobee"}},
	{ID: "pcmcat1461530457530", Name: "Security Cameras", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"security camera", "surveillance camera", "outdoor camera", "home camera"}},
	{ID: "pcmcat1461530457531", Name: "Video Doorbells", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"doorbell", "video doorbell", "ring doorbell"}},
	{ID: "pcmcat1461530457532", Name: "Smart Locks", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"smart lock", "keyless entry", "door lock"}},
	{ID: "pcmcat1461530457533", Name: "Smart Plugs & Switches", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"smart plug", "smart outlet", "light switch", "dimmer"}},
	{ID: "pcmcat1461530457534", Name: "Mesh WiFi Systems", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"mesh router", "whole home wifi", "eero", "wifi extender"}},
	{ID: "pcmcat1461530457535", Name: "Home Security Systems", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"alarm system", "security system", "home alarm", "motion sensor"}},
	{ID: "pcmcat1461530457536", Name: "Robot Vacuums", ParentName: "Smart Home, Security & WiFi", Keywords: []string{"roomba", "robotic vacuum", "robot mop"}},
}
