package diagram_test

import (
	"fmt"

	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/geo"
)

func ExampleNew() {
	// A 14x10 inch canvas addressed in 0-10 data coordinates.
	d, err := diagram.New(diagram.Canvas{
		Width: 14, Height: 10,
		XMin: 0, XMax: 10, YMin: 0, YMax: 10,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// One container, two chips inside it, and a coupling arrow.
	java := diagram.MustColor("#FF6B35")
	_ = d.AddContainer(5, 4.75, 9, 7.5, diagram.ShapeStyle{Fill: java, Opacity: 0.3, StrokeWidth: 2, Stroke: java})
	_ = d.AddChip(3.5, 5, 0.8, 0.3, "AuditFile", diagram.ShapeStyle{})
	_ = d.AddChip(6.5, 5, 0.8, 0.3, "DatabaseAuditWriter", diagram.ShapeStyle{})
	_ = d.AddConnector(geo.Pt(5, 6), geo.Pt(5, 5.3), diagram.KindCoupling, diagram.ConnectorStyle{})
	_ = d.AddAnnotation(5, 8.2, "Java Audit System", diagram.AnnotationStyle{
		Font: diagram.Font{Size: 16, Bold: true},
	})

	fmt.Println("Phase:", d.Phase())
	fmt.Println("Shapes:", len(d.Shapes()))
	fmt.Println("Connectors:", len(d.Connectors()))
	fmt.Println("Annotations:", len(d.Annotations()))
	// Output:
	// Phase: populating
	// Shapes: 3
	// Connectors: 1
	// Annotations: 1
}

func ExampleDiagram_MarkExported() {
	d, _ := diagram.New(diagram.Canvas{
		Width: 14, Height: 10,
		XMin: 0, XMax: 10, YMin: 0, YMax: 10,
	})
	_ = d.AddChip(5, 5, 1, 0.5, "core", diagram.ShapeStyle{})

	// The export package seals the diagram before writing the artifact.
	if err := d.MarkExported(); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Further population fails: diagrams are single use.
	err := d.AddChip(6, 5, 1, 0.5, "late", diagram.ShapeStyle{})
	fmt.Println(err)
	// Output:
	// DIAGRAM_EXPORTED: diagram already exported
}
