// internal/game/log_presenter.go
package game

import (
	"github.com/sirupsen/logrus"
)

// LogPresenter writes every update to a logrus entry at debug level. Combine it with a
// drawing presenter through Presenters.
type LogPresenter struct {
	log *logrus.Entry
}

func NewLogPresenter(log *logrus.Entry) *LogPresenter {
	return &LogPresenter{log: log}
}

func (p *LogPresenter) RenderGrid(cards []CardView) {
	p.log.WithField("cards", len(cards)).Debug("render grid")
}

func (p *LogPresenter) SetCardState(card CardView) {
	p.log.WithFields(logrus.Fields{"idx": card.Index, "state": card.State}).Debug("card state")
}

func (p *LogPresenter) UpdateMoves(count int) {
	p.log.WithField("moves", count).Debug("moves")
}

func (p *LogPresenter) UpdateTimer(formatted string) {
	p.log.WithField("time", formatted).Debug("timer")
}

func (p *LogPresenter) UpdateStars(rating int) {
	p.log.WithField("stars", rating).Debug("stars")
}

func (p *LogPresenter) ShowSummary(s Summary) {
	p.log.WithFields(logrus.Fields{
		"moves": s.Moves,
		"time":  s.Time,
		"stars": s.Stars,
	}).Debug("show summary")
}

func (p *LogPresenter) HideSummary() {
	p.log.Debug("hide summary")
}
