package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"faqbot-cli/internal/audit"
	"faqbot-cli/internal/bot"
	"faqbot-cli/internal/command"
	"faqbot-cli/internal/config"
	"faqbot-cli/internal/repl"
)

const helpText = `faqbot-cli - Terminal FAQ assistant for the AI programming course

USAGE:
    faqbot-cli [OPTIONS]

DESCRIPTION:
    A rule-based course assistant that answers questions about:
    - Course information (DAI011)
    - Assessments and grading
    - Python libraries for AI
    - Project guidance
    - GitHub and version control

    Without options it starts an interactive session. Type 'quit' or
    'exit' to end the conversation and print session statistics.

OPTIONS:
    --config <path>          Path to configuration file (YAML or JSON)
    --message <text>         Answer a single message and exit (for scripting)
    --transcript <path>      Append a JSON-lines transcript of the session
    --help                   Show this help message

EXAMPLES:
    # Start interactive mode
    faqbot-cli

    # One-shot answer for scripting
    faqbot-cli --message "Tell me about DAI011"

    # Interactive mode with a transcript file
    faqbot-cli --transcript ./session.log

INTERACTIVE COMMANDS:
    commands                 Show available commands
    stats                    Show conversation statistics
    history                  Show the conversation so far
    intents                  List the topics the assistant knows
    clear                    Start a fresh session
    exit/quit                End the conversation (also: bye, goodbye)
`

func main() {
	flag.Usage = func() {
		fmt.Print(helpText)
	}

	configPath := flag.String("config", "", "Path to configuration file")
	message := flag.String("message", "", "Answer a single message and exit")
	transcriptPath := flag.String("transcript", "", "Append a JSON-lines transcript of the session")
	helpFlag := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *helpFlag {
		fmt.Print(helpText)
		os.Exit(0)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}
	if *transcriptPath != "" {
		cfg.Transcript.Enabled = true
		cfg.Transcript.Path = *transcriptPath
	}

	// A broken catalog is a build defect, catch it before the first prompt.
	if err := bot.ValidateTable(bot.IntentTable); err != nil {
		log.Fatalf("Invalid intent catalog: %v", err)
	}

	transcript := audit.NewLogger(cfg.TranscriptPath())
	defer transcript.Close()

	responder := bot.NewResponder()
	handler := command.NewHandler(responder, transcript)

	if *message != "" {
		fmt.Println(responder.Chat(*message))
		return
	}

	repl.Start(handler, cfg)
}
