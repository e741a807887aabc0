// internal/game/presenter.go
package game

// Summary is the end-of-game recap shown once every pair is found.
type Summary struct {
	Moves          int    `json:"moves"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	Time           string `json:"time"`
	Stars          int    `json:"stars"`
}

// Presenter draws the game. The Game calls it while holding its lock, so implementations
// must return promptly and must not call back into the Game.
type Presenter interface {
	// RenderGrid (re)builds the grid; every card arrives face-down in deck order.
	RenderGrid(cards []CardView)
	SetCardState(card CardView)
	UpdateMoves(count int)
	UpdateTimer(formatted string)
	UpdateStars(rating int)
	ShowSummary(summary Summary)
	HideSummary()
}

// NopPresenter ignores every update.
type NopPresenter struct{}

func (NopPresenter) RenderGrid([]CardView) {}
func (NopPresenter) SetCardState(CardView) {}
func (NopPresenter) UpdateMoves(int) {}
func (NopPresenter) UpdateTimer(string) {}
func (NopPresenter) UpdateStars(int) {}
func (NopPresenter) ShowSummary(Summary) {}
func (NopPresenter) HideSummary() {}

type multiPresenter []Presenter

// Presenters fans every update out to each non-nil presenter, in order.
func Presenters(ps ...Presenter) Presenter {
	out := make(multiPresenter, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (m multiPresenter) RenderGrid(cards []CardView) {
	for _, p := range m {
		p.RenderGrid(cards)
	}
}

func (m multiPresenter) SetCardState(card CardView) {
	for _, p := range m {
		p.SetCardState(card)
	}
}

func (m multiPresenter) UpdateMoves(count int) {
	for _, p := range m {
		p.UpdateMoves(count)
	}
}

func (m multiPresenter) UpdateTimer(formatted string) {
	for _, p := range m {
		p.UpdateTimer(formatted)
	}
}

func (m multiPresenter) UpdateStars(rating int) {
	for _, p := range m {
		p.UpdateStars(rating)
	}
}

func (m multiPresenter) ShowSummary(summary Summary) {
	for _, p := range m {
		p.ShowSummary(summary)
	}
}

func (m multiPresenter) HideSummary() {
	for _, p := range m {
		p.HideSummary()
	}
}
