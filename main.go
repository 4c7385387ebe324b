package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := InitLogger("terrain_visualizer.log"); err != nil {
		log.Fatal(err)
	}
	defer CloseLogger()

	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
