package main

import (
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// exportReporter renders the orchestrator's per-page progress callback as a
// spinner with a running member count. The API exposes no reliable total, so
// there is no percentage to show.
type exportReporter struct {
	progress *mpb.Progress
	spinner  *mpb.Bar
}

func newExportReporter() *exportReporter {
	p := mpb.New(mpb.WithWidth(60))
	s := p.AddSpinner(-1,
		mpb.PrependDecorators(
			decor.Name("fetching members", decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.CurrentNoUnit("%d fetched", decor.WCSyncSpace),
		),
	)
	return &exportReporter{progress: p, spinner: s}
}

// Update is called after each page with the running count.
func (r *exportReporter) Update(fetched int) {
	r.spinner.SetCurrent(int64(fetched))
}

// Done completes the spinner and flushes the render loop.
func (r *exportReporter) Done(ok bool) {
	if ok {
		r.spinner.SetTotal(r.spinner.Current(), true)
	} else {
		r.spinner.Abort(true)
	}
	r.progress.Wait()
}
