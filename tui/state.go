package tui

type state int

const (
	loadingState state = iota
	errorState
	urlState
	cookiesState
	resultsState
	downloadState
)
