package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"cotviz-api/pkg/confkit"
	llmpkg "cotviz-api/pkg/llm"
	visualizerpkg "cotviz-api/pkg/visualizer"
)

func fatalf(format string, args ...interface{}) {
	logx.Errorf(format, args...)
	os.Exit(1)
}

const answerPreviewLimit = 100

func answerPreview(answer string) string {
	runes := []rune(answer)
	if len(runes) <= answerPreviewLimit {
		return answer
	}
	return string(runes[:answerPreviewLimit]) + "..."
}

func printAnalysis(analysis *visualizerpkg.Analysis) {
	fmt.Printf("\nIdentified %d thinking stages\n", len(analysis.Stages))
	for _, stage := range analysis.Stages {
		label := visualizerpkg.DisplayLabel(stage.Category)
		fmt.Printf("  [%4.1fs - %4.1fs] %-15s %s\n", stage.Start, stage.End, label, stage.Content)
	}

	fmt.Println("\nCategory totals:")
	for _, total := range analysis.Totals {
		fmt.Printf("  %-15s %.1fs\n", total.Label, total.Duration)
	}

	fmt.Printf("\nAnswer: %s\n", answerPreview(analysis.Answer))
	fmt.Println(strings.Repeat("-", 50))
}

func main() {
	var (
		llmPath        = flag.String("llm-config", "etc/llm.yaml", "path to llm client configuration")
		visualizerPath = flag.String("visualizer-config", "etc/visualizer.yaml", "path to visualizer configuration")
	)
	flag.Parse()
	logx.MustSetup(logx.LogConf{})
	logx.DisableStat()

	confkit.LoadDotenvOnce()

	llmCfg, err := llmpkg.LoadConfig(*llmPath)
	if err != nil {
		fatalf("load llm config: %v", err)
	}
	llmClient, err := llmpkg.NewClient(llmCfg)
	if err != nil {
		fatalf("initialise llm client: %v", err)
	}
	defer func() {
		_ = llmClient.Close()
	}()

	vizCfg, err := visualizerpkg.LoadConfig(*visualizerPath)
	if err != nil {
		fatalf("load visualizer config: %v", err)
	}
	engine, err := visualizerpkg.NewEngine(vizCfg, llmClient)
	if err != nil {
		fatalf("initialise visualizer engine: %v", err)
	}

	fmt.Println("Chain-of-Thought Visualizer")
	fmt.Println("Enter queries to see AI reasoning patterns")
	fmt.Println("Type 'quit' to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Query: ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(query) {
		case "quit", "exit", "q":
			return
		case "":
			continue
		}

		fmt.Printf("Processing: %s\n", query)
		analysis, err := engine.Analyze(context.Background(), query)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		printAnalysis(analysis)
	}
	if err := scanner.Err(); err != nil {
		fatalf("read input: %v", err)
	}
}
