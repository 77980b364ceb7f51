package ports

type Topic = string
type Event = []string
type EventBus interface {
	Shutdown()
	Pub(Topic, Event)
	Sub(Topic) chan Event
	Unsub(chan Event)
}

const (
	// Event is list of root directories to (re)measure
	TopicRootUpdated Topic = "root-updated"
	// Event is [root, size in bytes, snapshot id]
	TopicUsageUpdated Topic = "usage-updated"
	// Event is [root, size in bytes, quota in bytes]
	TopicQuotaExceeded Topic = "quota-exceeded"
)
