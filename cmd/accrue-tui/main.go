package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/accrue/internal/calculation"
	"github.com/rgehrsitz/accrue/internal/config"
	"github.com/rgehrsitz/accrue/internal/tui"
)

func main() {
	// Optional config file path
	parser := config.NewInputParser()
	cfg := config.DefaultConfiguration()
	if len(os.Args) > 1 {
		loaded, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := parser.ApplyEnvironment(cfg, ""); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	calc, err := calculation.NewCalculatorFromConfig(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(calc), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
