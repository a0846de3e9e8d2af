// Package repl provides the interactive terminal loop for the FAQ assistant.
//
// Exit handling is thread-safe and uses os.Exit() instead of panic() to
// avoid conflicts with go-prompt's internal signal handling, which can
// otherwise cause "close of closed channel" panics on Windows.
package repl

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	prompt "github.com/c-bata/go-prompt"

	"faqbot-cli/internal/command"
	"faqbot-cli/internal/config"
)

var (
	// Global flag to track if we're in the exit process
	exiting   = false
	exitMutex sync.Mutex
)

// Start runs the interactive loop until the user types an exit keyword.
func Start(handler *command.Handler, cfg *config.Config) {
	printBanner(cfg)

	p := prompt.New(
		func(in string) {
			if !handler.Execute(in) {
				// Use thread-safe exit handling
				exitMutex.Lock()
				if exiting {
					exitMutex.Unlock()
					return
				}
				exiting = true
				exitMutex.Unlock()

				// Only fix terminal on WSL
				if isWSL() {
					fixWSLTerminal()
				}
				// Use os.Exit instead of panic to avoid go-prompt's signal handler conflicts
				os.Exit(0)
			}
		},
		completer,
		prompt.OptionLivePrefix(func() (string, bool) {
			return cfg.REPL.Prompt, true
		}),
	)

	p.Run()
}

func printBanner(cfg *config.Config) {
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Printf("%s\n", strings.ToUpper(cfg.Name))
	fmt.Println(line)
	fmt.Println("\nWelcome! I can answer questions about:")
	fmt.Println("  - Course information (DAI011)")
	fmt.Println("  - Assessments and grading")
	fmt.Println("  - Python libraries for AI")
	fmt.Println("  - Project guidance")
	fmt.Println("  - GitHub and version control")
	fmt.Println("\nType 'quit' or 'exit' to end the conversation.")
	fmt.Println(line)
	fmt.Println()
}

// isWSL checks if we're running in Windows Subsystem for Linux
func isWSL() bool {
	return os.Getenv("WSL_DISTRO_NAME") != "" || os.Getenv("WSLENV") != ""
}

// fixWSLTerminal restores terminal input visibility for WSL
func fixWSLTerminal() {
	cmd := exec.Command("reset")
	_ = cmd.Run()

	cmd = exec.Command("stty", "echo")
	_ = cmd.Run()

	fmt.Print("\033[?25h") // Show cursor
	fmt.Print("\033[0m")   // Reset attributes
}

func completer(d prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "commands", Description: "Show available commands"},
		{Text: "stats", Description: "Show conversation statistics"},
		{Text: "history", Description: "Show the conversation so far"},
		{Text: "intents", Description: "List the topics the assistant knows"},
		{Text: "clear", Description: "Start a fresh session"},
		{Text: "exit", Description: "End the conversation"},
		{Text: "quit", Description: "End the conversation"},
	}
	return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
}
