// Package autosuggest implements the AutoSuggest family:
// fish-shell style "ghost text" suggestions drawn past the cursor, computed
// from a document snapshot rather than live buffer state so concurrent
// edits can't race the suggestion computation. The Threaded variant is
// grounded on peco's pipeline package (pipeline/pipeline.go), which already
// provides the cancellable, channel-handoff shape a background worker
// needs; ptk reuses that same "post the result back, don't touch shared
// state off the owning goroutine" discipline.
package autosuggest

import (
	"context"
	"strings"

	"github.com/relstor/ptk/document"
	"github.com/relstor/ptk/filter"
	"github.com/relstor/ptk/history"
)

// Buffer is the minimal view an AutoSuggest needs of the editing buffer it
// is attached to. document.Buffer satisfies this.
type Buffer interface {
	Text() string
}

// AutoSuggest computes a Suggestion from a document snapshot. Implementations
// MUST read from the supplied document, not from buf.Text(), to stay correct
// under concurrent edits.
type AutoSuggest interface {
	GetSuggestion(buf Buffer, doc *document.Document) *document.Suggestion
	GetSuggestionAsync(ctx context.Context, buf Buffer, doc *document.Document) *Future
}

// Future is a lazy handle to an in-flight or completed GetSuggestionAsync
// call. Wait blocks (respecting ctx) until a result is available; a panic
// raised by the underlying provider is recovered on the worker side and
// re-raised from Wait, matching the "exceptions propagate to
// caller" policy for Threaded providers.
type Future struct {
	done  chan struct{}
	value *document.Suggestion
	err   error
	panicVal any
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(v *document.Suggestion) {
	f.value = v
	close(f.done)
}

func (f *Future) resolveErr(err error) {
	f.err = err
	close(f.done)
}

func (f *Future) resolvePanic(p any) {
	f.panicVal = p
	close(f.done)
}

// Wait blocks until the Future resolves or ctx is cancelled (returning
// ctx.Err() in that case). A recovered panic from the provider is
// re-panicked here, on the caller's goroutine.
func (f *Future) Wait(ctx context.Context) (*document.Suggestion, error) {
	select {
	case <-f.done:
		if f.panicVal != nil {
			panic(f.panicVal)
		}
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func immediateFuture(v *document.Suggestion) *Future {
	f := newFuture()
	f.resolve(v)
	return f
}

// currentLine returns the text after the last newline in doc's text, per
// the definition of "current line" for suggestion purposes.
func currentLine(doc *document.Document) string {
	text := doc.Text()
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		return text[i+1:]
	}
	return text
}

// syncOverAsync runs get synchronously and wraps the result in an
// already-resolved Future -- the default GetSuggestionAsync implementation
// for variants with no genuine concurrency of their own (Dummy, FromHistory,
// Conditional, Dynamic -- only Threaded actually hops to a worker goroutine).
func syncOverAsync(get func() *document.Suggestion) *Future {
	return immediateFuture(get())
}

// Dummy never suggests anything.
type Dummy struct{}

func (Dummy) GetSuggestion(Buffer, *document.Document) *document.Suggestion { return nil }
func (d Dummy) GetSuggestionAsync(_ context.Context, buf Buffer, doc *document.Document) *Future {
	return syncOverAsync(func() *document.Suggestion { return d.GetSuggestion(buf, doc) })
}

// FromHistory suggests the suffix of the most recent history line whose
// prefix (ordinal, case-sensitive) matches the current line.
type FromHistory struct {
	History history.History
}

func NewFromHistory(h history.History) *FromHistory {
	return &FromHistory{History: h}
}

func (f *FromHistory) GetSuggestion(_ Buffer, doc *document.Document) *document.Suggestion {
	line := currentLine(doc)
	if strings.TrimSpace(line) == "" {
		return nil
	}

	entries := f.History.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		// Within each entry, iterate lines in reverse.
		lines := strings.Split(entries[i], "\n")
		for j := len(lines) - 1; j >= 0; j-- {
			if strings.HasPrefix(lines[j], line) {
				return &document.Suggestion{Text: lines[j][len(line):]}
			}
		}
	}
	return nil
}

func (f *FromHistory) GetSuggestionAsync(_ context.Context, buf Buffer, doc *document.Document) *Future {
	return syncOverAsync(func() *document.Suggestion { return f.GetSuggestion(buf, doc) })
}

// Conditional defers to Inner only while Filter evaluates true.
type Conditional struct {
	Inner  AutoSuggest
	Filter filter.Filter
}

func NewConditional(inner AutoSuggest, f filter.Filter) *Conditional {
	return &Conditional{Inner: inner, Filter: f}
}

func (c *Conditional) GetSuggestion(buf Buffer, doc *document.Document) *document.Suggestion {
	if !c.Filter.Invoke() {
		return nil
	}
	return c.Inner.GetSuggestion(buf, doc)
}

func (c *Conditional) GetSuggestionAsync(ctx context.Context, buf Buffer, doc *document.Document) *Future {
	if !c.Filter.Invoke() {
		return immediateFuture(nil)
	}
	return c.Inner.GetSuggestionAsync(ctx, buf, doc)
}

// Dynamic re-evaluates Callable on every call; a nil return from Callable
// means "no suggestion available right now", never a panic.
type Dynamic struct {
	Callable func(buf Buffer, doc *document.Document) AutoSuggest
}

func NewDynamic(fn func(buf Buffer, doc *document.Document) AutoSuggest) *Dynamic {
	return &Dynamic{Callable: fn}
}

func (d *Dynamic) resolve(buf Buffer, doc *document.Document) AutoSuggest {
	if d.Callable == nil {
		return nil
	}
	return d.Callable(buf, doc)
}

func (d *Dynamic) GetSuggestion(buf Buffer, doc *document.Document) *document.Suggestion {
	inner := d.resolve(buf, doc)
	if inner == nil {
		return nil
	}
	return inner.GetSuggestion(buf, doc)
}

func (d *Dynamic) GetSuggestionAsync(ctx context.Context, buf Buffer, doc *document.Document) *Future {
	inner := d.resolve(buf, doc)
	if inner == nil {
		return immediateFuture(nil)
	}
	return inner.GetSuggestionAsync(ctx, buf, doc)
}

// Threaded delegates GetSuggestion directly (it already runs on whatever
// goroutine the caller chose) but offloads GetSuggestionAsync's call onto a
// worker goroutine, matching pipeline's "producer goroutine, channel
// handoff" shape. A panic raised by Inner is recovered on the worker
// goroutine and re-panicked from Future.Wait, on the caller's goroutine,
// per the "exceptions propagate to caller" policy.
type Threaded struct {
	Inner AutoSuggest
}

func NewThreaded(inner AutoSuggest) *Threaded {
	return &Threaded{Inner: inner}
}

func (t *Threaded) GetSuggestion(buf Buffer, doc *document.Document) *document.Suggestion {
	return t.Inner.GetSuggestion(buf, doc)
}

func (t *Threaded) GetSuggestionAsync(ctx context.Context, buf Buffer, doc *document.Document) *Future {
	f := newFuture()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.resolvePanic(r)
			}
		}()
		select {
		case <-ctx.Done():
			f.resolveErr(ctx.Err())
			return
		default:
		}
		f.resolve(t.Inner.GetSuggestion(buf, doc))
	}()
	return f
}
