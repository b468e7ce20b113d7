package archive

import (
	"context"
	"sort"

	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/parser"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Source string
	Set    *game.ChartSet
	Err    error
}

// Loader decodes archives off the caller's goroutine.
type Loader struct {
	Parser parser.Parser
	Jobs   int // concurrent decodes, <= 0 means 1
}

func (l *Loader) load(ctx context.Context, source string) (*game.ChartSet, error) {
	if IsURL(source) {
		return Fetch(ctx, source, l.Parser)
	}
	return Open(source, l.Parser)
}

// Start begins loading every source and returns immediately. Results arrive in
// completion order and the channel is closed once all sources are done. A
// failing source does not stop the others.
func (l *Loader) Start(ctx context.Context, sources []string) <-chan Result {
	results := make(chan Result, len(sources))
	jobs := l.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	go func() {
		defer close(results)
		for _, source := range sources {
			source := source
			g.Go(func() error {
				set, err := l.load(ctx, source)
				results <- Result{Source: source, Set: set, Err: err}
				return nil
			})
		}
		g.Wait()
	}()
	return results
}

// LoadAll blocks until every source has been tried. Sets are sorted by name.
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]*game.ChartSet, []error) {
	sets := []*game.ChartSet{}
	errs := []error{}
	for r := range l.Start(ctx, sources) {
		if nil != r.Err {
			errs = append(errs, r.Err)
			continue
		}
		sets = append(sets, r.Set)
	}
	sort.SliceStable(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets, errs
}
