package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bizvalid/bizvalid/callback"
	"github.com/bizvalid/bizvalid/config"
	"github.com/bizvalid/bizvalid/llm/openai"
	"github.com/bizvalid/bizvalid/tool/search"
	"github.com/bizvalid/bizvalid/validator"
)

func main() {
	fmt.Println("🚀 Business Validator AI Agent")
	fmt.Println(strings.Repeat("=", 40))

	fmt.Print("Enter your business idea: ")
	reader := bufio.NewReader(os.Stdin)
	idea, _ := reader.ReadString('\n')
	idea = strings.TrimSpace(idea)
	if idea == "" {
		fmt.Println("Please provide a business idea to validate.")
		return
	}

	// Internal failures are reported to the user; the process still
	// exits normally.
	if err := run(idea); err != nil {
		fmt.Printf("❌ Error during validation: %v\n", err)
		fmt.Println("Please check your OpenAI API key and try again.")
	}
}

func run(idea string) error {
	cfg, err := config.Load(os.Getenv("BIZVALID_CONFIG"))
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		fmt.Println("Warning: No OpenAI API key found. Please set OPENAI_API_KEY environment variable.")
	}

	client, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
	)
	if err != nil {
		return err
	}

	handler := callback.NewConsoleHandler(os.Stdout, cfg.Verbose)
	v, err := validator.New(
		validator.WithLLM(client),
		validator.WithSearchProvider(search.NewDuckDuckGo()),
		validator.WithCallback(handler),
		validator.WithMaxTurn(cfg.MaxTurn),
		validator.WithSearchTopK(cfg.SearchTopK),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Starting business validation for: %s\n", idea)
	fmt.Println(strings.Repeat("=", 60))

	report, err := v.Validate(context.Background(), idea)
	if err != nil {
		return err
	}

	filename, err := validator.SaveReport(report, "")
	if err != nil {
		return err
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✅ Business validation completed!")
	fmt.Printf("📄 Report saved to: %s\n", filename)
	fmt.Println(strings.Repeat("=", 60))
	return nil
}
