package viewmodels

import "reposearch/internal/domain"

// UiAction is a user input fed to the SearchViewModel.
type UiAction interface {
	isUiAction()
}

// TextChanged reports a new value of the search box.
type TextChanged struct {
	Text string
}

// Search requests a search for Query.
type Search struct {
	Query string
}

// SelectItem reports that a result row was chosen.
type SelectItem struct {
	Repo domain.Repo
}

func (TextChanged) isUiAction() {}
func (Search) isUiAction()      {}
func (SelectItem) isUiAction()  {}

// SingleEvent is a one-shot effect for the view.
type SingleEvent interface {
	isSingleEvent()
}

// GoToDetail asks the view to show the repository at URL.
type GoToDetail struct {
	URL  string
	Repo domain.Repo
}

func (GoToDetail) isSingleEvent() {}

func (e GoToDetail) String() string { return "GoToDetail(" + e.URL + ")" }
