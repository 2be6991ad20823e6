package gallery

import "github.com/archplot/archplot/pkg/specfile"

// currentArchitecture shows the monolithic audit system: one process with
// the proxy, audit, and credential layers stacked inside it and coupling
// arrows between them.
var currentArchitecture = &Entry{
	Name:        "current-architecture",
	Title:       "Current Monolithic Java Audit System",
	Description: "One Java process containing the MITM proxy, audit logging, and credential injection layers, with the coupling paths between them.",
	Spec:        currentSpec,
}

func currentSpec() specfile.Spec {
	return specfile.Spec{
		Name: "current-architecture",
		Canvas: specfile.Canvas{
			Width:  14,
			Height: 10,
			XMax:   10,
			YMax:   10,
		},
		Containers: []specfile.Container{
			// Java Audit System
			{X: 5, Y: 4.75, Width: 9, Height: 7.5, Fill: "#FF6B35", StrokeWidth: 2, Opacity: 0.3},
			// MITM Proxy Layer
			{X: 5, Y: 6.9, Width: 8, Height: 1.8, Fill: "#F7931E", Opacity: 0.7},
			// Audit Logging Layer
			{X: 5, Y: 4.4, Width: 8, Height: 1.8, Fill: "#4ECDC4", Opacity: 0.7},
			// Credential Injection Service
			{X: 5, Y: 2.1, Width: 8, Height: 1.2, Fill: "#45B7D1", Opacity: 0.7},
		},
		Chips: []specfile.Chip{
			{X: 1.5, Y: 6.8, Width: 0.8, Height: 0.3, Label: "MonitorSSHAudit", StrokeWidth: 0.5},
			{X: 3.5, Y: 6.8, Width: 0.8, Height: 0.3, Label: "MonitorVNCAudit", StrokeWidth: 0.5},
			{X: 5.5, Y: 6.8, Width: 0.8, Height: 0.3, Label: "Rdp2ProxyHandler", StrokeWidth: 0.5},
			{X: 7.5, Y: 6.8, Width: 0.8, Height: 0.3, Label: "SessionInfo", StrokeWidth: 0.5},
			{X: 1.5, Y: 4.3, Width: 0.8, Height: 0.3, Label: "AuditFile", StrokeWidth: 0.5},
			{X: 3.5, Y: 4.3, Width: 0.8, Height: 0.3, Label: "DatabaseAuditWriter", StrokeWidth: 0.5},
			{X: 5.5, Y: 4.3, Width: 0.8, Height: 0.3, Label: "TerminalAuditWriter", StrokeWidth: 0.5},
			{X: 7.5, Y: 4.3, Width: 0.8, Height: 0.3, Label: "GuessingConnectionLinker", StrokeWidth: 0.5},
		},
		Connectors: []specfile.Connector{
			// Tight coupling between the layers
			{From: specfile.Point{X: 5, Y: 6}, To: specfile.Point{X: 5, Y: 5.3}, Kind: "coupling"},
			{From: specfile.Point{X: 5, Y: 6}, To: specfile.Point{X: 5, Y: 2.7}, Kind: "coupling"},
			{From: specfile.Point{X: 5, Y: 3.5}, To: specfile.Point{X: 5, Y: 2.7}, Kind: "coupling"},
			// Clients entering the proxy layer
			{From: specfile.Point{X: 0.8, Y: 7}, To: specfile.Point{X: 1, Y: 7}, Kind: "flow"},
		},
		Annotations: []specfile.Annotation{
			{X: 5, Y: 9.5, Text: "Current Monolithic Java Audit System", Size: 18, Bold: true},
			{X: 5, Y: 8.2, Text: "Java Audit System", Size: 16, Bold: true},
			{X: 5, Y: 7.5, Text: "MITM Proxy Layer", Size: 14, Bold: true},
			{X: 5, Y: 5, Text: "Audit Logging Layer", Size: 14, Bold: true},
			{X: 5, Y: 2.5, Text: "Credential Injection Service", Size: 14, Bold: true},
			{X: 5, Y: 1.9, Text: "CredentialInjectionService.java (Parent Integration)", Size: 10},
			{X: 5.5, Y: 5.7, Text: "Tight\nCoupling", Size: 10,
				Box: &specfile.Box{Fill: "red", Opacity: 0.3}},
			{X: 0.2, Y: 7, Text: "Client\nConnections", Size: 10,
				Box: &specfile.Box{Fill: "lightblue", Pad: 2}},
			{X: 0.5, Y: 0.5, Align: "left", VAlign: "bottom", Size: 10,
				Text: "Problems with Current Architecture:\n" +
					"• Tight coupling between MITM and audit\n" +
					"• Single point of failure\n" +
					"• Difficult to add web client support\n" +
					"• Complex threading model\n" +
					"• Data loss risk from coupling",
				Box: &specfile.Box{Fill: "yellow", Opacity: 0.7}},
		},
	}
}
