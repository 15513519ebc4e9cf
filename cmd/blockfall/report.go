package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Report summarizes a finished session.
type Report struct {
	Frontend string
	Played   time.Duration

	Score     int
	Level     int
	Lines     int
	Pieces    int
	HighScore int
	NewHigh   bool

	Scheduler *loop.SchedulerStats
}

func NewReport(frontend string, played time.Duration, e *tetris.Engine, stats *loop.SchedulerStats) *Report {
	return &Report{
		Frontend:  frontend,
		Played:    played,
		Score:     e.Score(),
		Level:     e.Level(),
		Lines:     e.Lines(),
		Pieces:    e.Pieces(),
		HighScore: e.HighScore(),
		NewHigh:   e.Score() > 0 && e.Score() >= e.HighScore(),
		Scheduler: stats,
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# blockfall session

- **Frontend:** {{.Frontend}}
- **Played:** {{round .Played}}
- **Score:** {{.Score}}{{if .NewHigh}} (new high score){{end}}
- **High Score:** {{.HighScore}}
- **Level:** {{.Level}}
- **Lines:** {{.Lines}}
- **Pieces:** {{.Pieces}}
{{with .Scheduler}}
## Frame loop
- **Frames:** {{.Frames}}
- **System runs:** {{.TotalExecutions}}
{{range .Systems}}  - {{.Name}}: avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{end}}{{end}}`

	fm := template.FuncMap{
		"round": func(d time.Duration) time.Duration {
			return d.Round(time.Millisecond)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
