package notifier

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// DefaultChannel канал Redis для событий резерваций
const DefaultChannel = "reservation-events"

const (
	publishTimeout = 2 * time.Second
	queueSize      = 256
)

// Publisher часть *redis.Client, нужная для публикации
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type message struct {
	event domain.ReservationEvent
	data  []byte
}

// Notifier публикует события переходов в Redis pub/sub.
// Публикация идёт в фоне через очередь, ошибки только логируются и никогда не откатывают резервацию.
type Notifier struct {
	publisher Publisher
	channel   string
	log       Logger

	queue     chan message
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

// New создает новый Notifier и запускает фоновую публикацию. Остановка через Close
func New(publisher Publisher, channel string, log Logger) *Notifier {
	if channel == "" {
		channel = DefaultChannel
	}
	n := &Notifier{
		publisher: publisher,
		channel:   channel,
		log:       log,
		queue:     make(chan message, queueSize),
		done:      make(chan struct{}),
	}
	go n.run()
	return n
}

// Notify ставит событие в очередь и сразу возвращает управление.
// Если очередь заполнена, событие отбрасывается
func (n *Notifier) Notify(_ context.Context, event domain.ReservationEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		n.log.Error("Notify: failed to marshal event %s/%d: %v", event.Kind, event.ReservationID, err)
		return
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.log.Warn("Notify: notifier is closed, dropping %s %s/%d", event.Event, event.Kind, event.ReservationID)
		return
	}

	select {
	case n.queue <- message{event: event, data: data}:
	default:
		n.log.Warn("Notify: queue is full, dropping %s %s/%d", event.Event, event.Kind, event.ReservationID)
	}
}

// Close перестаёт принимать события и ждёт, пока очередь будет опубликована
func (n *Notifier) Close() {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		n.closed = true
		close(n.queue)
		n.mu.Unlock()
	})
	<-n.done
}

func (n *Notifier) run() {
	defer close(n.done)
	for msg := range n.queue {
		n.publish(msg)
	}
}

func (n *Notifier) publish(msg message) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	event := msg.event
	if err := n.publisher.Publish(ctx, n.channel, msg.data).Err(); err != nil {
		n.log.Error("Notify: failed to publish %s %s/%d to %s: %v",
			event.Event, event.Kind, event.ReservationID, n.channel, err)
		return
	}

	n.log.Info("Notify: published %s %s/%d status=%s", event.Event, event.Kind, event.ReservationID, event.Status)
}
