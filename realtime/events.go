package realtime

// Event names, shared verbatim between server and clients.
const (
	EventMediaUploaded    = "media_uploaded"
	EventMediaDeleted     = "media_deleted"
	EventMediaLiked       = "media_liked"
	EventMediaUnliked     = "media_unliked"
	EventCommentAdded     = "comment_added"
	EventCommentDeleted   = "comment_deleted"
	EventChallengeCreated = "challenge_created"
	EventChallengeDeleted = "challenge_deleted"
	EventSettingsUpdated  = "settings_updated"
	EventSettingsDeleted  = "settings_deleted"
)

// Publisher broadcasts an event to every viewer of one album. Delivery is
// fire-and-forget, at most once, no replay; late joiners reconcile by
// refetching the media list.
type Publisher interface {
	Publish(albumID, event string, payload interface{})
}
