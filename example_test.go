package pathgeom_test

import (
	"fmt"

	"github.com/pathgeom/pathgeom"
)

func ExampleResample() {
	pts := []pathgeom.Point{pathgeom.Pt(0, 0), pathgeom.Pt(10, 0)}
	resampled, _ := pathgeom.Resample(pts, 5, 0, true)
	for _, pt := range resampled {
		fmt.Printf("%g,%g ", pt.X, pt.Y)
	}
	// Output: 0,0 2.5,0 5,0 7.5,0 10,0
}

func ExamplePathSample_Truncate() {
	ps := pathgeom.NewPathSample([]pathgeom.Point{
		pathgeom.Pt(0, 0), pathgeom.Pt(3, 0), pathgeom.Pt(3, 4),
	})
	fmt.Println(pathgeom.PolylineLength(ps.Truncate(5)))
	// Output: 5
}
