package quizrun

// attemptSavedMsg reports the result of persisting a finalized attempt.
type attemptSavedMsg struct {
	err error
}
