package main

import (
	"flag"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jroosing/idnakit/internal/idna"
)

func main() {
	var (
		name        = flag.String("name", "bücher.example", "Domain to convert")
		unicode     = flag.Bool("unicode", false, "Benchmark ToUnicode instead of ToASCII")
		concurrency = flag.Int("concurrency", 200, "Number of concurrent workers")
		requests    = flag.Int("requests", 200000, "Total number of conversions")
	)
	flag.Parse()

	flags := idna.DefaultFlags()

	conc := *concurrency
	if conc < 1 {
		conc = 1
	}
	total := *requests
	if total < 1 {
		total = 1
	}
	per := total / conc
	rem := total % conc

	lat := make([]float64, 0, total)
	var latMu sync.Mutex

	t0 := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < conc; i++ {
		n := per
		if i < rem {
			n++
		}
		if n <= 0 {
			continue
		}
		wg.Add(1)
		go func(num int) {
			defer wg.Done()
			local := make([]float64, 0, num)
			for j := 0; j < num; j++ {
				start := time.Now()
				if *unicode {
					_, _ = idna.ToUnicode(*name, flags)
				} else {
					_, _ = idna.ToASCII(*name, flags)
				}
				local = append(local, float64(time.Since(start).Nanoseconds())/1000.0)
			}
			latMu.Lock()
			lat = append(lat, local...)
			latMu.Unlock()
		}(n)
	}
	wg.Wait()
	elapsed := time.Since(t0).Seconds()

	if len(lat) == 0 {
		fmt.Printf("no conversions performed\n")
		return
	}
	sort.Float64s(lat)
	p50 := percentile(lat, 50)
	p95 := percentile(lat, 95)
	p99 := percentile(lat, 99)
	qps := float64(len(lat)) / elapsed

	fmt.Printf("name=%q unicode=%v concurrency=%d conversions=%d\n", *name, *unicode, conc, len(lat))
	fmt.Printf("elapsed_s=%.3f conversions_per_s=%.1f\n", elapsed, qps)
	fmt.Printf("latency_us p50=%.3f p95=%.3f p99=%.3f min=%.3f max=%.3f\n", p50, p95, p99, lat[0], lat[len(lat)-1])
}

func percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted))*float64(p)/100.0) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
