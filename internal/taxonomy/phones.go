package taxonomy

import "github.com/cartwise/backend/internal/domain"

var phoneCategories = []domain.CategoryEntry{
	{ID: "pcmcat209400050001", Name: "All Cell Phones with Plans", ParentName: "Cell Phones", Keywords: []string{"phone plan", "carrier phones", "cell phone plans"}},
	{ID: "pcmcat156400050037", Name: "Unlocked Cell Phones", ParentName: "Cell Phones", Keywords: []string{"unlocked phone", "sim free phone", "unlocked"}},
	{ID: "pcmcat305200050000", Name: "iPhone", ParentName: "Cell Phones", Keywords: []string{"apple phone", "iphone pro", "iphone max"}},
	{ID: "pcmcat1505326434742", Name: "Samsung Galaxy", ParentName: "Cell Phones", Keywords: []string{"galaxy phone", "samsung phone", "android phone"}},
	{ID: "pcmcat1505326434743", Name: "Google Pixel", ParentName: "Cell Phones", Keywords: []string{"pixel phone", "google phone"}},
	{ID: "pcmcat171900050028", Name: "Prepaid Phones", ParentName: "Cell Phones", Keywords: []string{"prepaid", "no contract phone", "pay as you go"}},
	{ID: "abcat0811002", Name: "Cell Phone Accessories", ParentName: "Cell Phones", Keywords: []string{"phone accessories", "mobile accessories"}},
	{ID: "abcat0811006", Name: "Phone Cases", ParentName: "Cell Phone Accessories", Keywords: []string{"phone case", "iphone case", "protective case", "phone cover"}},
	{ID: "pcmcat191200050015", Name: "Screen Protectors", ParentName: "Cell Phone Accessories", Keywords: []string{"screen protector", "tempered glass", "screen guard"}},
	{ID: "abcat0811007", Name: "Phone Chargers", ParentName: "Cell Phone Accessories", Keywords: []string{"phone charger", "wall charger", "car charger", "fast charger"}},
	{ID: "pcmcat1486063391218", Name: "Wireless Chargers", ParentName: "Cell Phone Accessories", Keywords: []string{"wireless charging", "qi charger", "magsafe charger", "charging pad"}},
	{ID: "pcmcat1497978395014", Name: "Portable Power Banks", ParentName: "Cell Phone Accessories", Keywords: []string{"power bank", "portable charger", "battery pack"}},
}
