package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/ziggurat/sim"
	"github.com/plus3/ziggurat/stack"
)

type Report struct {
	// Configuration
	Duration time.Duration
	TickRate int
	Seed     uint64

	// Results
	TotalTicks      int
	WallTime        time.Duration
	Drops           int
	LevelsCompleted int
	Collapses       int
	RunsEnded       int
	Final           stack.RunState
	SchedulerStats  *sim.SchedulerStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Ziggurat Simulation Report

## Run Configuration
- **Simulated Duration:** {{.Duration}}
- **Tick Rate:** {{.TickRate}} Hz
- **Seed:** {{.Seed}}

## Outcome
- **Total Ticks:** {{.TotalTicks}}
- **Wall Time:** {{.WallTime}}
- **Pieces Dropped:** {{.Drops}}
- **Levels Completed:** {{.LevelsCompleted}}
- **Collapses:** {{.Collapses}}
- **Runs Ended:** {{.RunsEnded}}

## Final Run State
- **Score:** {{.Final.Score}}
- **Lives:** {{.Final.Lives}}
- **Level:** {{lvl .Final.LevelIndex}}
- **Total Placements:** {{.Final.TotalPlacements}}
- **Reward Events:** {{.Final.RewardEvents}}

## System Timings
{{range .SchedulerStats.Systems -}}
- **{{.Name}}:** avg {{.AvgDuration}} min {{.MinDuration}} max {{.MaxDuration}} ({{.ExecutionCount}} runs)
{{end}}`

	fm := template.FuncMap{
		"lvl": func(index int) string {
			return fmt.Sprintf("%d", index+1)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
