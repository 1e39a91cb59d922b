package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

// CLI flags
var (
	apiURL = flag.String("api-url", "http://localhost:8000", "uncyclo API base URL")
	runs   = flag.Int("runs", 3, "Number of runs per section for averaging")
	output = flag.String("output", "benchmark-results.json", "JSON output file path")
)

// --- Response types (mirrors models package) ---

type sectionRoute struct {
	Path    string `json:"path"`
	Site    string `json:"site"`
	Heading string `json:"heading"`
}

type sectionsResponse struct {
	Sections []sectionRoute `json:"sections"`
}

type runResult struct {
	Run        int    `json:"run"`
	Found      bool   `json:"found"`
	StatusCode int    `json:"status_code"`
	LatencyMs  int64  `json:"latency_ms"`
	BodyBytes  int    `json:"body_bytes"`
	Error      string `json:"error,omitempty"`
}

type sectionAverages struct {
	LatencyMs float64 `json:"latency_ms"`
	BodyBytes float64 `json:"body_bytes"`
}

type sectionResult struct {
	Path     string           `json:"path"`
	Site     string           `json:"site"`
	Runs     []runResult      `json:"runs"`
	Averages *sectionAverages `json:"averages"`
}

type benchmarkReport struct {
	Timestamp      string          `json:"timestamp"`
	APIURL         string          `json:"api_url"`
	RunsPerSection int             `json:"runs_per_section"`
	Results        []sectionResult `json:"results"`
}

var client = &http.Client{Timeout: 30 * time.Second}

func main() {
	flag.Parse()

	fmt.Println("=== uncyclo Benchmark Suite ===")
	fmt.Printf("API URL:      %s\n", *apiURL)
	fmt.Printf("Runs/section: %d\n", *runs)
	fmt.Printf("Output:       %s\n", *output)
	fmt.Println()

	routes, err := listSections(*apiURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot list sections at %s: %v\n", *apiURL, err)
		fmt.Fprintf(os.Stderr, "Make sure uncyclo is running (go run ./cmd/uncyclo)\n")
		os.Exit(1)
	}

	report := benchmarkReport{
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		APIURL:         *apiURL,
		RunsPerSection: *runs,
	}

	for _, r := range routes {
		fmt.Printf("Benchmarking [%s] %s ...\n", r.Site, r.Path)
		sr := sectionResult{Path: r.Path, Site: r.Site}

		for i := 1; i <= *runs; i++ {
			fmt.Printf("  Run %d/%d ... ", i, *runs)
			rr := benchmarkSection(*apiURL+r.Path, i)
			if rr.Found {
				fmt.Printf("OK  %dms  %d bytes\n", rr.LatencyMs, rr.BodyBytes)
			} else {
				fmt.Printf("FAILED: %s\n", rr.Error)
			}
			sr.Runs = append(sr.Runs, rr)
		}

		sr.Averages = computeAverages(sr.Runs)
		report.Results = append(report.Results, sr)
		fmt.Println()
	}

	printTable(report.Results)

	if err := writeJSON(*output, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing JSON output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nDetailed results written to %s\n", *output)
}

func listSections(baseURL string) ([]sectionRoute, error) {
	resp, err := client.Get(baseURL + "/sections")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var sr sectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return sr.Sections, nil
}

// benchmarkSection calls one section endpoint. Section endpoints always
// answer 200; a body with an "error" key is a miss.
func benchmarkSection(url string, run int) runResult {
	rr := runResult{Run: run}

	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		rr.Error = fmt.Sprintf("request failed: %v", err)
		return rr
	}
	defer resp.Body.Close()

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		rr.Error = fmt.Sprintf("decode error: %v", err)
		return rr
	}
	rr.LatencyMs = time.Since(start).Milliseconds()
	rr.StatusCode = resp.StatusCode

	if msg, isErr := body["error"]; isErr {
		var s string
		json.Unmarshal(msg, &s)
		rr.Error = s
		return rr
	}

	for _, v := range body {
		rr.BodyBytes += len(v)
	}
	rr.Found = true
	return rr
}

func computeAverages(runs []runResult) *sectionAverages {
	var found int
	var avg sectionAverages

	for _, r := range runs {
		if !r.Found {
			continue
		}
		found++
		avg.LatencyMs += float64(r.LatencyMs)
		avg.BodyBytes += float64(r.BodyBytes)
	}

	if found == 0 {
		return nil
	}

	n := float64(found)
	avg.LatencyMs /= n
	avg.BodyBytes /= n
	return &avg
}

func printTable(results []sectionResult) {
	fmt.Println(strings.Repeat("─", 70))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Section\tSite\tAvg Latency\tBody Bytes\tFound\n")
	fmt.Fprintf(w, "───────\t────\t───────────\t──────────\t─────\n")

	for _, r := range results {
		if r.Averages == nil {
			fmt.Fprintf(w, "%s\t%s\tFAILED\t-\t0/%d\n", r.Path, r.Site, len(r.Runs))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%dms\t%s\t%d/%d\n",
			r.Path,
			r.Site,
			int64(r.Averages.LatencyMs),
			formatInt(int(r.Averages.BodyBytes)),
			foundCount(r.Runs),
			len(r.Runs),
		)
	}

	w.Flush()
	fmt.Println(strings.Repeat("─", 70))
}

func foundCount(runs []runResult) int {
	n := 0
	for _, r := range runs {
		if r.Found {
			n++
		}
	}
	return n
}

func formatInt(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

func writeJSON(path string, report benchmarkReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
