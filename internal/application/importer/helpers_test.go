package importer

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchbook/internal/application/styles"
	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/document/memdoc"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/lospec"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

type stubFetcher struct {
	mu       sync.Mutex
	palettes map[string]palette.Palette
	errs     map[string]error
	calls    []string
}

func (f *stubFetcher) Fetch(_ context.Context, id palette.SourceID) (palette.Palette, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, id.Slug)
	if err, ok := f.errs[id.Slug]; ok {
		return palette.Palette{}, err
	}
	if p, ok := f.palettes[id.Slug]; ok {
		return p.Clone(), nil
	}
	return palette.Palette{}, &lospec.FetchError{Kind: lospec.KindNotFound, Status: 404, StatusText: "Not Found", Slug: id.Slug}
}

func (f *stubFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// blockingFetcher holds every fetch until release is closed.
type blockingFetcher struct {
	started chan string
	release chan struct{}
	result  palette.Palette
}

func newBlockingFetcher(result palette.Palette) *blockingFetcher {
	return &blockingFetcher{started: make(chan string, 8), release: make(chan struct{}), result: result}
}

func (f *blockingFetcher) Fetch(_ context.Context, id palette.SourceID) (palette.Palette, error) {
	f.started <- id.Slug
	<-f.release
	return f.result.Clone(), nil
}

// gatedDocument holds the first style write until release is closed and
// records every write error.
type gatedDocument struct {
	*memdoc.Document
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu   sync.Mutex
	errs []error
}

func newGatedDocument() *gatedDocument {
	return &gatedDocument{Document: memdoc.New(nil), entered: make(chan struct{}), release: make(chan struct{})}
}

func (d *gatedDocument) CreateSolidStyle(ctx context.Context, name string, rgb color.RGB) (ports.StyleHandle, error) {
	d.once.Do(func() {
		close(d.entered)
		<-d.release
	})
	h, err := d.Document.CreateSolidStyle(ctx, name, rgb)
	if err != nil {
		d.mu.Lock()
		d.errs = append(d.errs, err)
		d.mu.Unlock()
	}
	return h, err
}

func (d *gatedDocument) Errors() []error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]error(nil), d.errs...)
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type stateLog struct {
	mu     sync.Mutex
	states []State
}

func (l *stateLog) observe(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.states = append(l.states, s)
}

func (l *stateLog) phases() []Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Phase, 0, len(l.states))
	for _, s := range l.states {
		out = append(out, s.Phase)
	}
	return out
}

type fixture struct {
	orch     *Orchestrator
	clock    *ManualClock
	doc      *memdoc.Document
	notifier *recordingNotifier
	log      *stateLog
}

func newPipeline(t *testing.T, fetcher lospec.Fetcher, doc ports.StyleDocument, notifier ports.Notifier) *Pipeline {
	t.Helper()
	mat, err := styles.NewMaterializer(styles.Options{Document: doc, Notifier: notifier})
	require.NoError(t, err)
	p, err := NewPipeline(PipelineOptions{Fetcher: fetcher, Materializer: mat})
	require.NoError(t, err)
	return p
}

func newPipelineWith(t *testing.T, fetcher lospec.Fetcher, doc ports.StyleDocument, pub ports.EventPublisher, metrics ports.MetricsCollector) *Pipeline {
	t.Helper()
	mat, err := styles.NewMaterializer(styles.Options{Document: doc, Publisher: pub, Metrics: metrics})
	require.NoError(t, err)
	opts := PipelineOptions{Fetcher: fetcher, Materializer: mat}
	if pub != nil {
		opts.Publisher = pub
	}
	if metrics != nil {
		opts.Metrics = metrics
	}
	p, err := NewPipeline(opts)
	require.NoError(t, err)
	return p
}

// newFixture builds an orchestrator with a manual clock. inline selects a
// runner that fetches on the calling goroutine.
func newFixture(t *testing.T, fetcher lospec.Fetcher, inline bool) *fixture {
	t.Helper()
	f := &fixture{
		clock:    NewManualClock(),
		doc:      memdoc.New(nil),
		notifier: &recordingNotifier{},
		log:      &stateLog{},
	}
	opts := Options{
		Pipeline: newPipeline(t, fetcher, f.doc, f.notifier),
		Clock:    f.clock,
		Observer: f.log.observe,
	}
	if inline {
		opts.Go = func(fn func()) { fn() }
	}
	orch, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(orch.Close)
	f.orch = orch
	return f
}

var demo = palette.Palette{Name: "Demo", Colors: []string{"FF0000", "00FF00"}}
