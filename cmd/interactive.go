package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"

	"ownerhunter/internal/types"
)

// interactiveSelect lets user move through the provided lines with arrow keys and press Enter to
// view full target details. It expects len(targets)==len(lines). onSelect reads its prompts
// from the same stdin reader as the selector.
func interactiveSelect(targets []types.TargetRecord, lines []string, onSelect func(types.TargetRecord, *bufio.Reader)) {
	if len(targets) == 0 {
		return
	}

	if runtime.GOOS == "windows" {
		enableVT()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Println("(interactive selection not supported on this terminal)")
		return
	}
	defer term.Restore(fd, oldState)

	reader := bufio.NewReader(os.Stdin)

	selected := 0

	redraw := func() {
		// Clear screen (ANSI reset to top + clear screen)
		fmt.Print("\033[H\033[2J")
		for i, l := range lines {
			prefix := "  "
			if i == selected {
				prefix = "> "
			}
			// Raw mode needs an explicit carriage return.
			fmt.Print(prefix + l + "\r\n")
		}
		fmt.Print("(↑/↓ to navigate, Enter to view details, Esc to quit)\r\n")
	}

	// choose leaves raw mode while the details and the save prompt are on screen.
	choose := func() bool {
		term.Restore(fd, oldState)
		fmt.Println()
		onSelect(targets[selected], reader)

		fmt.Print("\n(press Enter to return)")
		_, _ = reader.ReadBytes('\n')

		oldState, err = term.MakeRaw(fd)
		if err != nil {
			return false
		}
		redraw()
		return true
	}

	move := func(delta int) {
		next := selected + delta
		if next >= 0 && next < len(targets) {
			selected = next
			redraw()
		}
	}

	redraw()

	for {
		b1, err := reader.ReadByte()
		if err != nil {
			return
		}
		// Windows console arrow sequences (0 or 224, then code)
		if b1 == 0 || b1 == 224 {
			b2, _ := reader.ReadByte()
			switch b2 {
			case 72: // up
				move(-1)
			case 80: // down
				move(1)
			case 13: // Enter
				if !choose() {
					return
				}
			}
			continue
		}

		switch b1 {
		case 27: // ESC or ANSI sequence
			if reader.Buffered() == 0 {
				fmt.Print("\r\n")
				return
			}
			b2, _ := reader.ReadByte()
			if b2 != '[' || reader.Buffered() == 0 {
				continue
			}
			b3, _ := reader.ReadByte()
			switch b3 {
			case 'A':
				move(-1)
			case 'B':
				move(1)
			}
		case '\r', '\n':
			if !choose() {
				return
			}
		case 3: // Ctrl-C
			fmt.Print("\r\n")
			return
		}
	}
}
