// Package notify publishes album activity to a Redis channel consumed by
// the external notification service.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Activity struct {
	AlbumID     string    `json:"albumId"`
	Kind        string    `json:"kind"`
	RefID       string    `json:"refId,omitempty"`
	Actor       string    `json:"actor,omitempty"`
	DateCreated time.Time `json:"datecreated"`
}

type Notifier struct {
	rdb     *redis.Client
	channel string
	log     *logrus.Entry
}

func NewNotifier(rdb *redis.Client, channel string, log *logrus.Entry) *Notifier {
	return &Notifier{rdb: rdb, channel: channel, log: log}
}

// AlbumActivity fires one notification. Failures are logged and swallowed;
// notifications never block or fail the request that produced them.
func (n *Notifier) AlbumActivity(ctx context.Context, albumID, kind, refID, actor string) {
	if n == nil || n.rdb == nil {
		return
	}
	activity := Activity{
		AlbumID:     albumID,
		Kind:        kind,
		RefID:       refID,
		Actor:       actor,
		DateCreated: time.Now(),
	}
	data, err := json.Marshal(activity)
	if err != nil {
		n.log.WithError(err).Error("Error marshaling notification data")
		return
	}
	if err := n.rdb.Publish(ctx, n.channel, data).Err(); err != nil {
		n.log.WithError(err).Error("Error publishing notification to Redis")
	}
}
