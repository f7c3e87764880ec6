package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type probe struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Expect   int    `json:"expect"`
	Critical bool   `json:"critical"`
}

type result struct {
	Probe    probe
	Status   int
	Match    bool
	Err      error
	Duration time.Duration
}

// Default probes cover the public read surface. Authenticated routes need a
// token and are exercised through the targets file instead.
var defaultProbes = []probe{
	{Method: http.MethodGet, Path: "/health", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/ready", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/metrics", Expect: http.StatusOK},
	{Method: http.MethodGet, Path: "/api/people", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/api/people/umpires", Expect: http.StatusOK},
	{Method: http.MethodGet, Path: "/api/people/commitee-members", Expect: http.StatusOK},
	{Method: http.MethodGet, Path: "/api/clubs", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/api/teams", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/api/players/applications", Expect: http.StatusOK},
	{Method: http.MethodGet, Path: "/api/players/player-transfers", Expect: http.StatusOK},
}

func main() {
	var (
		base        string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&targetsPath, "targets", "", "Optional JSON file overriding the default probes")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	probes := defaultProbes
	if targetsPath != "" {
		loaded, err := loadProbes(targetsPath)
		if err != nil {
			log.Fatalf("failed to load targets: %v", err)
		}
		probes = loaded
	}

	client := &http.Client{Timeout: timeout}
	var failures int

	for _, p := range probes {
		res := run(client, base, p)
		printResult(res)
		if (res.Err != nil || !res.Match) && p.Critical {
			failures++
		}
	}

	fmt.Printf("Critical failures: %d\n", failures)
	if failures > 0 {
		os.Exit(1)
	}
}

func loadProbes(path string) ([]probe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg struct {
		Probes []probe `json:"probes"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Probes) == 0 {
		return nil, fmt.Errorf("no probes defined in %s", path)
	}
	return cfg.Probes, nil
}

func run(client *http.Client, base string, p probe) result {
	res := result{Probe: p}

	method := strings.ToUpper(strings.TrimSpace(p.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := p.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close() //nolint:errcheck

	res.Status = resp.StatusCode
	expect := p.Expect
	if expect == 0 {
		expect = http.StatusOK
	}
	res.Match = res.Status == expect
	return res
}

func printResult(res result) {
	status := "ok"
	if res.Err != nil {
		status = fmt.Sprintf("error: %v", res.Err)
	} else if !res.Match {
		status = fmt.Sprintf("status %d", res.Status)
	}
	fmt.Printf("%-6s %-40s %-12s %s\n", res.Probe.Method, res.Probe.Path, res.Duration.Round(time.Millisecond), status)
}
