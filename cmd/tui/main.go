package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"voldash/internal/config"
	"voldash/internal/dataset"
	"voldash/internal/series"
)

const previewRows = 3

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config yaml")
	flag.Parse()
	path := locateConfig(*configPath)

	reader := bufio.NewReader(os.Stdin)

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	for {
		fmt.Println("\n=== voldash Control ===")
		fmt.Println("1) Show configuration summary")
		fmt.Println("2) Edit seed and dataset lengths")
		fmt.Println("3) Preview a dataset")
		fmt.Println("4) Save config")
		fmt.Println("5) Launch API server")
		fmt.Println("6) Run export")
		fmt.Println("7) Reload config from disk")
		fmt.Println("0) Exit")
		fmt.Print("Select option: ")

		input, _ := reader.ReadString('\n')
		choice := strings.TrimSpace(input)

		switch choice {
		case "1":
			printSummary(cfg)
		case "2":
			editGenerator(reader, cfg)
		case "3":
			preview(reader, cfg)
		case "4":
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "not saving invalid config: %v\n", err)
			} else if err := config.Save(path, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
			} else {
				fmt.Println("config saved")
			}
		case "5":
			launch(reader, "./cmd/voldash", path)
		case "6":
			launch(reader, "./cmd/export", path)
		case "7":
			reloaded, err := config.Load(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
			} else {
				cfg = reloaded
				fmt.Println("config reloaded")
			}
		case "0":
			return
		default:
			fmt.Println("unknown option")
		}
	}
}

func printSummary(cfg *config.Config) {
	fmt.Println("\n--- Configuration Summary ---")
	fmt.Printf("API: %s | metrics: %s | log level: %s\n", cfg.App.ListenAddr, cfg.App.MetricsAddr, cfg.App.LogLevel)
	if cfg.Generator.Seed == 0 {
		fmt.Println("Seed: clock")
	} else {
		fmt.Printf("Seed: %d\n", cfg.Generator.Seed)
	}
	lengths, err := cfg.Generator.DomainLengths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lengths: %v\n", err)
		return
	}
	for _, d := range series.Domains() {
		anchor := d.DefaultAnchor().Format("2006-01-02")
		if raw, ok := cfg.Generator.Anchors[d.String()]; ok {
			anchor = raw
		}
		fmt.Printf("  %-26s %-9s %5d from %s\n", d, d.Cadence(), lengths[d], anchor)
	}
	fmt.Printf("Heartbeat: %s\n", cfg.Stream.Heartbeat())
	fmt.Printf("Export: %s -> %s (precision %d)\n", strings.Join(cfg.Export.Formats, ", "), cfg.Export.Dir, cfg.Export.Precision)
}

func editGenerator(reader *bufio.Reader, cfg *config.Config) {
	fmt.Println("\n--- Edit Generator ---")
	cfg.Generator.Seed = int64(promptInt(reader, "Seed (0 = clock)", int(cfg.Generator.Seed)))

	lengths, err := cfg.Generator.DomainLengths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lengths: %v\n", err)
		return
	}
	if cfg.Generator.Lengths == nil {
		cfg.Generator.Lengths = map[string]int{}
	}
	for _, d := range series.Domains() {
		n := promptInt(reader, d.String(), lengths[d])
		if n < 0 {
			fmt.Println("length must be non-negative, keeping", lengths[d])
			n = lengths[d]
		}
		cfg.Generator.Lengths[d.String()] = n
	}
}

func preview(reader *bufio.Reader, cfg *config.Config) {
	fmt.Print("Dataset key: ")
	line, _ := reader.ReadString('\n')
	d, err := series.ParseDomain(line)
	if err != nil {
		fmt.Println(err)
		return
	}
	opts, err := cfg.Generator.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generator options: %v\n", err)
		return
	}
	lengths, err := cfg.Generator.DomainLengths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lengths: %v\n", err)
		return
	}
	table, err := dataset.Build(context.Background(), series.NewGenerator(opts...), lengths, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		return
	}
	sum, err := table.Summary(d)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("\n%s: %d periods, %s .. %s\n", d, sum.Count, sum.First, sum.Last)
	names := make([]string, 0, len(sum.Numeric))
	for name := range sum.Numeric {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := sum.Numeric[name]
		fmt.Printf("  %-24s avg %12.4f  min %12.4f  max %12.4f\n", name, st.Mean, st.Min, st.Max)
	}
	for name, counts := range sum.Categorical {
		fmt.Printf("  %-24s %v\n", name, counts)
	}

	head, err := table.Head(d, previewRows)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("\nFirst records:")
	for _, rec := range head.Records {
		parts := make([]string, 0, len(rec.Fields()))
		for _, f := range rec.Fields() {
			parts = append(parts, fmt.Sprintf("%s=%v", f.Name, f.Value))
		}
		fmt.Println("  " + strings.Join(parts, " "))
	}
}

func launch(reader *bufio.Reader, pkg, configPath string) {
	fmt.Printf("Launching %s (Ctrl+C to stop)...\n", pkg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "run", pkg, "-config", configPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start %s: %v\n", pkg, err)
		return
	}

	go func() {
		_ = cmd.Wait()
		cancel()
	}()

	fmt.Print("\nPress ENTER to stop and return to menu...")
	_, _ = reader.ReadString('\n')
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	fmt.Printf("%s [%d]: ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	val, err := strconv.Atoi(line)
	if err != nil {
		fmt.Printf("invalid number, keeping %d\n", current)
		return current
	}
	return val
}

func locateConfig(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(path)
}
