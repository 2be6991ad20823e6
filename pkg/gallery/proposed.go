package gallery

import "github.com/archplot/archplot/pkg/specfile"

// proposedArchitecture shows the split design: the proxy rewritten as its
// own process, the audit process kept as-is, and an IPC seam between them.
var proposedArchitecture = &Entry{
	Name:        "proposed-architecture",
	Title:       "Proposed Separated Architecture: Rust MITM + Java Audit",
	Description: "The MITM proxy as a separate Rust process talking to the unchanged Java audit process over a narrow IPC interface.",
	Spec:        proposedSpec,
}

func proposedSpec() specfile.Spec {
	return specfile.Spec{
		Name: "proposed-architecture",
		Canvas: specfile.Canvas{
			Width:  16,
			Height: 12,
			XMax:   12,
			YMax:   10,
		},
		Containers: []specfile.Container{
			// Rust MITM process (left)
			{X: 2.75, Y: 6.75, Width: 4.5, Height: 3.5, Fill: "#CE422B", StrokeWidth: 2, Opacity: 0.3},
			// Java audit process (right)
			{X: 9.25, Y: 6.75, Width: 4.5, Height: 3.5, Fill: "#FF6B35", StrokeWidth: 2, Opacity: 0.3},
			// IPC interface (center)
			{X: 6, Y: 7, Width: 1.5, Height: 2, Fill: "#96CEB4", StrokeWidth: 2, Opacity: 0.8},
		},
		Chips: []specfile.Chip{
			{X: 1.5, Y: 7.5, Width: 0.8, Height: 0.5, Label: "SSH MITM\n(russh)", StrokeWidth: 0.5, FontSize: 9},
			{X: 4, Y: 7.5, Width: 0.8, Height: 0.5, Label: "RDP MITM\n(IronRDP)", StrokeWidth: 0.5, FontSize: 9},
			{X: 1.5, Y: 6.5, Width: 0.8, Height: 0.5, Label: "WebSocket\nStreaming", StrokeWidth: 0.5, FontSize: 9},
			{X: 4, Y: 6.5, Width: 0.8, Height: 0.5, Label: "Credential Lookup\nvia IPC", StrokeWidth: 0.5, FontSize: 9},
			{X: 2.75, Y: 5.5, Width: 0.8, Height: 0.5, Label: "Protocol State\nManagement", StrokeWidth: 0.5, FontSize: 9},
			{X: 8, Y: 7.5, Width: 0.8, Height: 0.5, Label: "AuditFile.java", Fill: "#4ECDC4", StrokeWidth: 0.5, Opacity: 0.8},
			{X: 10.5, Y: 7.5, Width: 0.8, Height: 0.5, Label: "DatabaseAuditWriter.java", Fill: "#4ECDC4", StrokeWidth: 0.5, Opacity: 0.8},
			{X: 8, Y: 6.5, Width: 0.8, Height: 0.5, Label: "TerminalAuditWriter.java", Fill: "#4ECDC4", StrokeWidth: 0.5, Opacity: 0.8},
			{X: 10.5, Y: 6.5, Width: 0.8, Height: 0.5, Label: "GuessingConnectionLinker.java", Fill: "#4ECDC4", StrokeWidth: 0.5, Opacity: 0.8},
			{X: 9.25, Y: 5.5, Width: 0.8, Height: 0.5, Label: "CredentialInjectionService.java", Fill: "#4ECDC4", StrokeWidth: 0.5, Opacity: 0.8},
		},
		Connectors: []specfile.Connector{
			// Bidirectional IPC between the processes
			{From: specfile.Point{X: 5, Y: 7}, To: specfile.Point{X: 5.25, Y: 7}, Kind: "ipc"},
			{From: specfile.Point{X: 6.75, Y: 7}, To: specfile.Point{X: 7, Y: 7}, Kind: "ipc"},
			{From: specfile.Point{X: 7, Y: 6.5}, To: specfile.Point{X: 6.75, Y: 6.5}, Kind: "ipc"},
			{From: specfile.Point{X: 5.25, Y: 6.5}, To: specfile.Point{X: 5, Y: 6.5}, Kind: "ipc"},
			// Clients entering the proxy
			{From: specfile.Point{X: 0.8, Y: 7}, To: specfile.Point{X: 0.5, Y: 7}, Kind: "flow"},
			{From: specfile.Point{X: 0.8, Y: 5.5}, To: specfile.Point{X: 0.5, Y: 6}, Kind: "flow", Color: "#45B7D1"},
			// Audit process writing to external systems
			{From: specfile.Point{X: 9.25, Y: 5}, To: specfile.Point{X: 9.25, Y: 4.7}, Kind: "external"},
			{From: specfile.Point{X: 10.5, Y: 5}, To: specfile.Point{X: 11, Y: 4.7}, Kind: "external"},
			// Process separation
			{From: specfile.Point{X: 5.75, Y: 4.5}, To: specfile.Point{X: 5.75, Y: 8.5}, Kind: "boundary", Opacity: 0.7},
		},
		Annotations: []specfile.Annotation{
			{X: 6, Y: 9.5, Text: "Proposed Separated Architecture: Rust MITM + Java Audit", Size: 18, Bold: true},
			{X: 2.75, Y: 8.2, Text: "Rust MITM Process", Size: 16, Bold: true, Color: "white"},
			{X: 9.25, Y: 8.2, Text: "Java Audit Process", Size: 16, Bold: true},
			{X: 8, Y: 7.35, Text: "(UNCHANGED)", Size: 7, Italic: true, Bold: true, Color: "green"},
			{X: 10.5, Y: 7.35, Text: "(UNCHANGED)", Size: 7, Italic: true, Bold: true, Color: "green"},
			{X: 8, Y: 6.35, Text: "(UNCHANGED)", Size: 7, Italic: true, Bold: true, Color: "green"},
			{X: 10.5, Y: 6.35, Text: "(UNCHANGED)", Size: 7, Italic: true, Bold: true, Color: "green"},
			{X: 9.25, Y: 5.35, Text: "(UNCHANGED)", Size: 7, Italic: true, Bold: true, Color: "green"},
			{X: 6, Y: 7.5, Text: "IPC Interface", Size: 12, Bold: true},
			{X: 6, Y: 7.2, Text: "• Credential Lookup", Size: 8},
			{X: 6, Y: 7, Text: "• Audit Events", Size: 8},
			{X: 6, Y: 6.8, Text: "• Session Lifecycle", Size: 8},
			{X: 6, Y: 6.6, Text: "• WebSocket Data", Size: 8},
			{X: 0.2, Y: 7, Text: "Native\nClients", Size: 10,
				Box: &specfile.Box{Fill: "lightblue", Pad: 2}},
			{X: 0.2, Y: 5.5, Text: "Web\nClients", Size: 10,
				Box: &specfile.Box{Fill: "#45B7D1", Pad: 2}},
			{X: 9.25, Y: 4.5, Text: "Database", Size: 10,
				Box: &specfile.Box{Fill: "lightgray", Pad: 2}},
			{X: 11, Y: 4.5, Text: "Audit Files", Size: 10,
				Box: &specfile.Box{Fill: "lightgray", Pad: 2}},
			{X: 0.5, Y: 3.5, Align: "left", VAlign: "top", Size: 11,
				Text: "Benefits of Separated Architecture:\n" +
					"• Loose coupling via IPC interface\n" +
					"• Independent failure domains\n" +
					"• Web client support built-in\n" +
					"• Rust memory safety and performance\n" +
					"• Preserved audit architecture (95% unchanged)\n" +
					"• Minimal risk to existing functionality",
				Box: &specfile.Box{Fill: "lightgreen", Opacity: 0.7}},
			{X: 6.5, Y: 3.5, Align: "left", VAlign: "top", Size: 11,
				Text: "Technical Implementation:\n" +
					"• IPC: Unix Domain Sockets / Named Pipes\n" +
					"• Serialization: MessagePack (binary)\n" +
					"• Error Handling: Timeout + Retry + Fallback\n" +
					"• Performance: <10ms IPC overhead\n" +
					"• Compatibility: 100% audit format preservation",
				Box: &specfile.Box{Fill: "lightyellow", Opacity: 0.7}},
			{X: 6, Y: 8.7, Text: "↕ Bidirectional IPC", Size: 10,
				Box: &specfile.Box{Fill: "green", Opacity: 0.3, Pad: 2}},
			{X: 5.75, Y: 4.2, Text: "Process Boundary", Size: 10, Bold: true, Color: "red"},
		},
	}
}
