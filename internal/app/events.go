// internal/app/events.go
package app

import (
	"github.com/sirupsen/logrus"

	"go-td-sim/internal/event"
)

// eventLogger пишет доменные события в лог сессии.
type eventLogger struct {
	log logrus.FieldLogger
}

func (l *eventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.WaveData:
		entry := l.log.WithFields(logrus.Fields{"wave": data.Number, "target": data.Target})
		if e.Type == event.WaveStarted {
			entry.Info("wave started")
		} else {
			entry.Debug("wave fully spawned")
		}
	case event.EnemyData:
		entry := l.log.WithFields(logrus.Fields{"enemy_id": data.ID, "kind": data.Kind, "entry": data.Entry})
		if e.Type == event.EnemyLeaked {
			entry.Info("enemy leaked")
		} else {
			entry.WithField("reward", data.Reward).Debug("enemy killed")
		}
	case event.TowerData:
		l.log.WithFields(logrus.Fields{
			"tower_id": data.ID,
			"kind":     data.Kind,
			"x":        data.X,
			"y":        data.Y,
			"level":    data.Level,
			"cost":     data.Cost,
		}).Debug(string(e.Type))
	default:
		if e.Type == event.SessionOver {
			l.log.Info("session over")
		}
	}
}
