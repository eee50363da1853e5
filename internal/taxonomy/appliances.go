package taxonomy

import "github.com/cartwise/backend/internal/domain"

var applianceCategories = []domain.CategoryEntry{
	{ID: "abcat0901000", Name: "Refrigerators", ParentName: "Appliances", Keywords: []string{"refrigerator", "fridge", "french door fridge", "mini fridge"}},
	{ID: "abcat0910000", Name: "Washers & Dryers", ParentName: "Appliances", Keywords: []string{"washer", "dryer", "washing machine", "laundry"}},
	{ID: "abcat0905001", Name: "Dishwashers", ParentName: "Appliances", Keywords: []string{"dishwasher", "dish washer"}},
	{ID: "abcat0904000", Name: "Ranges, Cooktops & Ovens", ParentName: "Appliances", Keywords: []string{"range", "stove", "oven", "cooktop", "wall oven"}},
	{ID: "abcat0903000", Name: "Microwaves", ParentName: "Appliances", Keywords: []string{"microwave", "microwave oven", "countertop microwave"}},
	{ID: "abcat0912000", Name: "Small Kitchen Appliances", ParentName: "Appliances", Keywords: []string{"kitchen gadgets", "countertop appliances"}},
	{ID: "abcat0912015", Name: "Coffee Makers", ParentName: "Small Kitchen Appliances", Keywords: []string{"coffee maker", "espresso machine", "coffee machine", "keurig"}},
	{ID: "pcmcat1497981458658", Name: "Air Fryers", ParentName: "Small Kitchen Appliances", Keywords: []string{"air fryer", "airfryer", "convection fryer"}},
	{ID: "abcat0912008", Name: "Blenders", ParentName: "Small Kitchen Appliances", Keywords: []string{"blender", "smoothie maker", "juicer"}},
	{ID: "abcat0912020", Name: "Toasters & Toaster Ovens", ParentName: "Small Kitchen Appliances", Keywords: []string{"toaster", "toaster oven"}},
	{ID: "abcat0911000", Name: "Vacuums & Floor Care", ParentName: "Appliances", Keywords: []string{"vacuum", "robot vacuum", "cordless vacuum", "carpet cleaner"}},
	{ID: "abcat0907000", Name: "Air Conditioners", ParentName: "Appliances", Keywords: []string{"air conditioner", "ac unit", "portable ac", "window ac"}},
	{ID: "pcmcat367400050001", Name: "Air Purifiers", ParentName: "Appliances", Keywords: []string{"air purifier", "air cleaner", "hepa filter"}},
	{ID: "abcat0908000", Name: "Freezers", ParentName: "Appliances", Keywords: []string{"freezer", "chest freezer", "upright freezer"}},
}
