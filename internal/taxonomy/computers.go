package taxonomy

import "github.com/cartwise/backend/internal/domain"

var computerCategories = []domain.CategoryEntry{
	{ID: "abcat0502000", Name: "Laptops", ParentName: "Computers & Tablets", Keywords: []string{"laptop", "notebook", "notebooks", "laptop computer", "portable computer"}},
	{ID: "pcmcat247400050000", Name: "MacBooks", ParentName: "Laptops", Keywords: []string{"macbook", "macbook air", "macbook pro", "apple laptop"}},
	{ID: "pcmcat228000050030", Name: "Convertible Laptops", ParentName: "Laptops", Keywords: []string{"2 in 1 laptop", "touchscreen laptop", "flip laptop"}},
	{ID: "pcmcat287600050003", Name: "Chromebooks", ParentName: "Laptops", Keywords: []string{"chromebook", "chrome os laptop"}},
	{ID: "abcat0501000", Name: "Desktop Computers", ParentName: "Computers & Tablets", Keywords: []string{"desktop", "desktops", "tower pc", "all in one computer"}},
	{ID: "pcmcat209000050006", Name: "Tablets", ParentName: "Computers & Tablets", Keywords: []string{"tablet", "android tablet", "slate"}},
	{ID: "pcmcat209000050007", Name: "iPad", ParentName: "Tablets", Keywords: []string{"apple tablet", "ipad pro", "ipad air", "ipad mini"}},
	{ID: "abcat0509000", Name: "Monitors", ParentName: "Computers & Tablets", Keywords: []string{"monitor", "computer monitor", "display", "screen"}},
	{ID: "abcat0513000", Name: "Computer Accessories & Peripherals", ParentName: "Computers & Tablets", Keywords: []string{"peripherals", "computer accessories", "pc accessories"}},
	{ID: "abcat0513004", Name: "Mice & Keyboards", ParentName: "Computer Accessories & Peripherals", Keywords: []string{"computer mouse", "wireless mouse", "keyboard", "keyboards", "mice"}},
	{ID: "pcmcat1490114431556", Name: "Laptop Accessories", ParentName: "Computer Accessories & Peripherals", Keywords: []string{"laptop bag", "laptop stand", "docking station", "laptop charger"}},
	{ID: "abcat0504001", Name: "Hard Drives & Storage", ParentName: "Computers & Tablets", Keywords: []string{"external hard drive", "ssd", "hard drive", "flash drive", "storage"}},
	{ID: "abcat0503002", Name: "Networking", ParentName: "Computers & Tablets", Keywords: []string{"router", "wifi router", "modem", "mesh wifi", "ethernet"}},
	{ID: "abcat0511001", Name: "Printers", ParentName: "Computers & Tablets", Keywords: []string{"printer", "inkjet", "laser printer", "all in one printer"}},
	{ID: "pcmcat335400050008", Name: "3D Printers", ParentName: "Printers", Keywords: []string{"3d printing", "filament", "resin printer"}},
	{ID: "abcat0507000", Name: "Computer Components", ParentName: "Computers & Tablets", Keywords: []string{"cpu", "processor", "motherboard", "ram", "memory", "power supply"}},
	{ID: "abcat0507002", Name: "Graphics Cards", ParentName: "Computer Components", Keywords: []string{"gpu", "video card", "nvidia", "radeon"}},
	{ID: "abcat0508000", Name: "Software", ParentName: "Computers & Tablets", Keywords: []string{"antivirus", "office software", "operating system", "windows"}},
	{ID: "pcmcat1502138451024", Name: "Webcams", ParentName: "Computer Accessories & Peripherals", Keywords: []string{"webcam", "web camera", "streaming camera"}},
	{ID: "pcmcat197300050020", Name: "Computer Speakers", ParentName: "Computer Accessories & Peripherals", Keywords: []string{"pc speakers", "desktop speakers"}},
}
