package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/plantgo/internal/plant"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	instanceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RenderReport writes one section per model instance. Styling is applied
// only when styled is set.
func RenderReport(w io.Writer, p *plant.Plant, styled bool) {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	title := fmt.Sprintf("Plant: %d model instances, %d bodies, %d joints, %d frames, %d joint actuators",
		p.NumModelInstances(), p.NumBodies(), p.NumJoints(), p.NumFrames(), p.NumJointActuators())
	fmt.Fprintln(w, render(titleStyle, title))

	for _, s := range p.Summary() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, render(instanceStyle, fmt.Sprintf("[%d] %s", int(s.Index), s.Name)))
		for _, row := range []struct {
			label string
			names []string
		}{
			{"bodies", s.Bodies},
			{"joints", s.Joints},
			{"frames", s.Frames},
			{"actuators", s.JointActuators},
		} {
			if len(row.names) == 0 {
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", render(labelStyle, row.label+":"), render(nameStyle, strings.Join(row.names, ", ")))
		}
	}
}
