package viewmodels

import (
	"context"
	"fmt"
	"log"
	"sync"

	"reposearch/internal/config"
	"reposearch/internal/domain"
	"reposearch/internal/eventbus"
	"reposearch/internal/resource"
	"reposearch/internal/savedstate"
	"reposearch/internal/ui/state"
	"reposearch/internal/usecase"
)

// Searcher starts a repository search.
type Searcher interface {
	Invoke(ctx context.Context, params usecase.SearchParams) <-chan resource.Resource[usecase.SearchResult]
}

// Options configures a SearchViewModel.
type Options struct {
	Labels      config.Labels
	Page        int
	PerPage     int
	EventBuffer int
	SavedState  savedstate.Handle // optional
	Bus         eventbus.EventBus // optional
}

type searchResult struct {
	generation uint64
	query      string
	res        resource.Resource[usecase.SearchResult]
}

// SearchViewModel maps UiActions to the search screen's state cells.
// All cell writes happen on the goroutine running Run.
type SearchViewModel struct {
	searcher Searcher
	opts     Options

	text   *state.Cell[TextUiModel]
	list   *state.Cell[[]domain.Repo]
	alert  *state.Cell[AlertText]
	button *state.Cell[ButtonLabel]
	search *state.Cell[SearchState]
	events *state.EventChannel[SingleEvent]

	actions chan UiAction
	results chan searchResult
	done    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
	startOnce sync.Once

	// Owned by Run
	generation   uint64
	cancelSearch context.CancelFunc
}

// NewSearchViewModel creates a view model. The search text starts from the
// saved state when one is present.
func NewSearchViewModel(searcher Searcher, opts Options) *SearchViewModel {
	initialText := ""
	if opts.SavedState != nil {
		if saved, ok := opts.SavedState.Get(savedstate.KeySearchText); ok {
			initialText = saved
		}
	}

	return &SearchViewModel{
		searcher: searcher,
		opts:     opts,
		text:     state.NewValueCell(TextUiModel{Text: initialText}),
		list:     state.NewCell([]domain.Repo{}, reposEqual),
		alert:    state.NewValueCell(AlertText{Kind: AlertNone}),
		button:   state.NewValueCell(searchButton(opts.Labels)),
		search:   state.NewCell(SearchState{}, func(a, b SearchState) bool { return false }),
		events:   state.NewEventChannel[SingleEvent]("SearchViewModel", opts.EventBuffer),
		actions:  make(chan UiAction, 16),
		results:  make(chan searchResult, 4),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// SearchText is the search box cell.
func (vm *SearchViewModel) SearchText() state.Observable[TextUiModel] { return vm.text }

// List is the result list cell.
func (vm *SearchViewModel) List() state.Observable[[]domain.Repo] { return vm.list }

// Alert is the status line cell.
func (vm *SearchViewModel) Alert() state.Observable[AlertText] { return vm.alert }

// Button is the search button cell.
func (vm *SearchViewModel) Button() state.Observable[ButtonLabel] { return vm.button }

// SearchState is the latest search invocation.
func (vm *SearchViewModel) SearchState() state.Observable[SearchState] { return vm.search }

// Events carries one-shot effects. It is closed when Run returns.
func (vm *SearchViewModel) Events() <-chan SingleEvent { return vm.events.Events() }

// Done is closed once Run has returned.
func (vm *SearchViewModel) Done() <-chan struct{} { return vm.stopped }

// Dispatch queues an action. It returns false once the view model is
// closed.
func (vm *SearchViewModel) Dispatch(action UiAction) bool {
	select {
	case <-vm.done:
		return false
	case <-vm.stopped:
		return false
	default:
	}

	select {
	case vm.actions <- action:
		return true
	case <-vm.done:
		return false
	case <-vm.stopped:
		return false
	}
}

// Close stops Run and cancels the in-flight search.
func (vm *SearchViewModel) Close() {
	vm.closeOnce.Do(func() { close(vm.done) })
}

// Run processes actions and search results until ctx ends or Close is
// called. It must be called once.
func (vm *SearchViewModel) Run(ctx context.Context) error {
	started := false
	vm.startOnce.Do(func() { started = true })
	if !started {
		return fmt.Errorf("view model already running")
	}

	defer close(vm.stopped)
	defer vm.teardown()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-vm.done:
			return nil
		case action := <-vm.actions:
			vm.handle(ctx, action)
		case result := <-vm.results:
			vm.apply(result)
		}
	}
}

func (vm *SearchViewModel) handle(ctx context.Context, action UiAction) {
	switch a := action.(type) {
	case TextChanged:
		vm.text.Set(TextUiModel{Text: a.Text})
		if vm.opts.SavedState != nil {
			vm.opts.SavedState.Set(savedstate.KeySearchText, a.Text)
		}
		vm.publish(eventbus.QueryChangedEvent{Text: a.Text})
	case Search:
		vm.startSearch(ctx, a.Query)
	case SelectItem:
		vm.events.Send(GoToDetail{URL: a.Repo.URL, Repo: a.Repo})
	default:
		log.Printf("SearchViewModel: unknown action %T", action)
	}
}

// startSearch supersedes the in-flight search with a new one.
func (vm *SearchViewModel) startSearch(ctx context.Context, query string) {
	if vm.cancelSearch != nil {
		vm.cancelSearch()
	}

	vm.generation++
	gen := vm.generation

	searchCtx, cancel := context.WithCancel(ctx)
	vm.cancelSearch = cancel

	params := usecase.SearchParams{Query: query, Page: vm.opts.Page, PerPage: vm.opts.PerPage}
	vm.publish(eventbus.SearchRequestedEvent{Query: query, Page: params.Page, PerPage: params.PerPage})

	stream := vm.searcher.Invoke(searchCtx, params)
	go vm.forward(gen, query, stream)
}

func (vm *SearchViewModel) forward(gen uint64, query string, stream <-chan resource.Resource[usecase.SearchResult]) {
	for res := range stream {
		select {
		case vm.results <- searchResult{generation: gen, query: query, res: res}:
		case <-vm.stopped:
			return
		}
	}
}

// apply recomputes every cell from the latest search result. Results from
// superseded searches are ignored.
func (vm *SearchViewModel) apply(r searchResult) {
	if r.generation != vm.generation {
		log.Printf("SearchViewModel: discarding %s for superseded query %q", r.res, r.query)
		return
	}

	vm.list.Set(listOf(r.res))
	vm.alert.Set(alertOf(r.res, vm.opts.Labels))
	vm.button.Set(buttonOf(r.res, vm.opts.Labels))
	vm.search.Set(SearchState{Generation: r.generation, Query: r.query, Result: r.res})

	switch v := r.res.(type) {
	case resource.Success[usecase.SearchResult]:
		vm.publish(eventbus.SearchSucceededEvent{Query: r.query, Count: len(v.Data.Repos)})
	case resource.Error[usecase.SearchResult]:
		log.Printf("SearchViewModel: search %q failed: %v", r.query, v.Err)
		vm.publish(eventbus.SearchFailedEvent{Query: r.query, Err: v.Err})
	}
}

func (vm *SearchViewModel) teardown() {
	if vm.cancelSearch != nil {
		vm.cancelSearch()
		vm.cancelSearch = nil
	}
	vm.events.Close()
	vm.text.Close()
	vm.list.Close()
	vm.alert.Close()
	vm.button.Close()
	vm.search.Close()
}

func (vm *SearchViewModel) publish(event eventbus.DomainEvent) {
	if vm.opts.Bus != nil {
		vm.opts.Bus.Publish(event)
	}
}

// SearchAndWait dispatches a Search for query and blocks until that search
// reaches Success or Error. Run must be active.
func (vm *SearchViewModel) SearchAndWait(ctx context.Context, query string) (resource.Resource[usecase.SearchResult], error) {
	updates, unsubscribe := vm.search.Subscribe()
	defer unsubscribe()

	var after uint64
	select {
	case current, ok := <-updates:
		if !ok {
			return nil, fmt.Errorf("view model closed")
		}
		after = current.Generation
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if !vm.Dispatch(Search{Query: query}) {
		return nil, fmt.Errorf("view model closed")
	}

	for {
		select {
		case s, ok := <-updates:
			if !ok {
				return nil, fmt.Errorf("view model closed")
			}
			if s.Generation > after && s.Query == query && s.Result != nil && resource.IsTerminal[usecase.SearchResult](s.Result) {
				return s.Result, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
