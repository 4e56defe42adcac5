package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/astro/shooter"
)

type Report struct {
	// Configuration
	Level          string
	Seed           uint64
	Physics        bool
	Duration       time.Duration
	GCPauseMetrics bool

	// Results
	Ticks           int64
	TotalTime       time.Duration
	SimulatedTime   time.Duration
	TickTime        Stats
	Entities        int
	PeakEntities    int
	PeakProjectiles int
	Score           shooter.Scoreboard
	MemStatsStart   runtime.MemStats
	MemStatsEnd     runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min, s.Max = s.Samples[0], s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Soak Report

## Run
- **Level:** {{.Level}}
- **Seed:** {{.Seed}}
- **Physics:** {{.Physics}}
- **Ticks:** {{.Ticks}} ({{.SimulatedTime}} simulated in {{.TotalTime}})

## Tick Time
- **Avg:** {{.TickTime.Avg}}
- **Min:** {{.TickTime.Min}}
- **Max:** {{.TickTime.Max}}

## World
- Entities at end:  {{.Entities}}
- Peak entities:    {{.PeakEntities}}
- Peak projectiles: {{.PeakProjectiles}}

## Score
- Kills {{.Score.Kills}}, deaths {{.Score.Deaths}}, best streak {{.Score.BestStreak}}
- Shots {{.Score.Shots}} by the player, {{.Score.EnemyShots}} by enemies

## Memory (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Total Alloc: {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}} (delta {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}})
- Num GC:      {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}} (delta {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}})
{{if .GCPauseMetrics}}
## GC Pauses
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
