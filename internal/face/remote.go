package face

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// DefaultTopic is the MQTT topic the camera helper publishes verdicts on.
const DefaultTopic = "productivity/monitor/face"

// verdictPayload is the camera helper's message format.
type verdictPayload struct {
	Focused bool `json:"focused"`
}

// Remote consumes focus verdicts published by the camera helper.
type Remote struct {
	client paho.Client

	mu        sync.Mutex
	focused   bool
	updatedAt time.Time

	ttl time.Duration
	now func() time.Time
}

// NewRemote connects to the broker and subscribes to the verdict topic.
// Verdicts older than ttl are treated as absent.
func NewRemote(broker, topic string, ttl time.Duration) (*Remote, error) {
	r := &Remote{
		ttl: ttl,
		now: time.Now,
	}

	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("prodmon-face").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	sub := client.Subscribe(topic, 0, func(_ paho.Client, msg paho.Message) {
		r.handle(msg.Payload())
	})
	if !sub.WaitTimeout(10 * time.Second) {
		client.Disconnect(250)
		return nil, fmt.Errorf("subscribe timeout")
	}
	if err := sub.Error(); err != nil {
		client.Disconnect(250)
		return nil, fmt.Errorf("subscribe %s: %w", topic, err)
	}

	r.client = client
	return r, nil
}

// handle applies one verdict message.
func (r *Remote) handle(data []byte) {
	var p verdictPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("face: bad verdict payload: %v", err)
		return
	}
	r.mu.Lock()
	r.focused = p.Focused
	r.updatedAt = r.now()
	r.mu.Unlock()
}

// Focused returns the latest verdict, or false when the feed has never
// reported or has gone stale.
func (r *Remote) Focused() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updatedAt.IsZero() || r.now().Sub(r.updatedAt) > r.ttl {
		return false, nil
	}
	return r.focused, nil
}

// Close disconnects from the broker.
func (r *Remote) Close() error {
	if r.client != nil {
		r.client.Disconnect(1000)
	}
	return nil
}
