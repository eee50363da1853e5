package taxonomy

import "github.com/cartwise/backend/internal/domain"

var cameraCategories = []domain.CategoryEntry{
	{ID: "abcat0401000", Name: "Digital Cameras", ParentName: "Cameras, Camcorders & Drones", Keywords: []string{"camera", "digital camera", "point and shoot"}},
	{ID: "pcmcat180400050000", Name: "Mirrorless Cameras", ParentName: "Digital Cameras", Keywords: []string{"mirrorless", "mirrorless camera", "interchangeable lens camera"}},
	{ID: "abcat0401005", Name: "DSLR Cameras", ParentName: "Digital Cameras", Keywords: []string{"dslr", "dslr camera", "slr"}},
	{ID: "abcat0410018", Name: "Camera Lenses", ParentName: "Cameras, Camcorders & Drones", Keywords: []string{"lens", "lenses", "zoom lens", "prime lens"}},
	{ID: "abcat0403000", Name: "Camcorders", ParentName: "Cameras, Camcorders & Drones", Keywords: []string{"camcorder", "video camera", "handycam"}},
	{ID: "pcmcat321000050004", Name: "Action Cameras", ParentName: "Cameras, Camcorders & Drones", Keywords: []string{"gopro", "action cam", "body camera", "helmet camera"}},
	{ID: "pcmcat369900050001", Name: "Drones", ParentName: "Cameras, Camcorders & Drones", Keywords: []string{"drone", "quadcopter", "fpv drone", "camera drone"}},
	{ID: "pcmcat1563301289117", Name: "Instant Cameras", ParentName: "Digital Cameras", Keywords: []string{"instant camera", "polaroid", "instax"}},
	{ID: "abcat0410000", Name: "Camera Accessories", ParentName: "Cameras, Camcorders & Drones", Keywords: []string{"tripod", "camera bag", "memory card", "camera battery"}},
	{ID: "abcat0410012", Name: "Tripods & Gimbals", ParentName: "Camera Accessories", Keywords: []string{"tripod", "gimbal", "monopod", "stabilizer"}},
}
